package roster_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aegee-muenchen/dirsync/pkg/domain/model"
	"github.com/aegee-muenchen/dirsync/pkg/domain/types"
	"github.com/aegee-muenchen/dirsync/pkg/service/roster"
	"github.com/m-mizutani/gt"
)

func TestClientLogin(t *testing.T) {
	t.Run("returns access token on success", func(t *testing.T) {
		var gotMethod, gotPath string
		var gotBody map[string]string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotMethod = r.Method
			gotPath = r.URL.Path
			_ = json.NewDecoder(r.Body).Decode(&gotBody)
			_ = json.NewEncoder(w).Encode(map[string]any{
				"success":      true,
				"access_token": "tok-123",
			})
		}))
		defer server.Close()

		client := roster.New(roster.WithBaseURL(server.URL))
		token, err := client.Login(context.Background(), "ann", "secret")
		gt.NoError(t, err)
		gt.Equal(t, token, "tok-123")
		gt.Equal(t, gotMethod, http.MethodPost)
		gt.Equal(t, gotPath, "/login")
		gt.Equal(t, gotBody["username"], "ann")
		gt.Equal(t, gotBody["password"], "secret")
	})

	t.Run("propagates server message on failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]any{
				"success": false,
				"message": "User or password not matching",
			})
		}))
		defer server.Close()

		client := roster.New(roster.WithBaseURL(server.URL))
		_, err := client.Login(context.Background(), "ann", "wrong")
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrRosterAuth))
	})
}

func TestClientMembers(t *testing.T) {
	t.Run("sends token header and decodes members", func(t *testing.T) {
		var gotPath, gotToken string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotToken = r.Header.Get("X-Auth-Token")
			_ = json.NewEncoder(w).Encode(map[string]any{
				"success": true,
				"data": []map[string]any{
					{
						"id":      1,
						"body_id": 117,
						"user_id": 42,
						"user": map[string]any{
							"id":         42,
							"email":      "ann@x.de",
							"first_name": "Ann",
							"last_name":  "Lee",
							"active":     true,
						},
					},
				},
			})
		}))
		defer server.Close()

		client := roster.New(roster.WithBaseURL(server.URL))
		members, err := client.Members(context.Background(), types.BodyID(117), "tok-123")
		gt.NoError(t, err)
		gt.Equal(t, gotPath, "/bodies/117/members")
		gt.Equal(t, gotToken, "tok-123")
		gt.Equal(t, len(members), 1)
		gt.Equal(t, members[0].User.Email, "ann@x.de")
		gt.Equal(t, members[0].User.FullName(), "Ann Lee")
		gt.Equal(t, members[0].BodyID, types.BodyID(117))
	})

	t.Run("non-success response becomes fetch error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]any{
				"success": false,
				"message": "Token expired",
			})
		}))
		defer server.Close()

		client := roster.New(roster.WithBaseURL(server.URL))
		_, err := client.Members(context.Background(), types.BodyID(117), "stale")
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrRosterFetch))
	})
}
