package roster

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/aegee-muenchen/dirsync/pkg/domain/model"
	"github.com/aegee-muenchen/dirsync/pkg/domain/types"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// DefaultBaseURL is the production MyAEGEE core API
const DefaultBaseURL = "https://my.aegee.eu/api/core"

// Client talks to the MyAEGEE core API
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client
type Option func(*Client)

// WithBaseURL overrides the API base URL
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient overrides the underlying HTTP client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// New creates a roster API client
func New(opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Success     bool   `json:"success"`
	AccessToken string `json:"access_token"`
	Message     string `json:"message"`
}

type membersResponse struct {
	Success bool                 `json:"success"`
	Data    []model.RosterMember `json:"data"`
	Message string               `json:"message"`
}

// Login exchanges credentials for an access token. A non-success response
// carries the server's message.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	body, err := json.Marshal(loginRequest{Username: username, Password: password})
	if err != nil {
		return "", goerr.Wrap(err, "failed to encode login request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/login", bytes.NewReader(body))
	if err != nil {
		return "", goerr.Wrap(err, "failed to create login request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", goerr.Wrap(model.ErrRosterAuth, "login request failed", goerr.V("cause", err.Error()))
	}
	defer resp.Body.Close()

	var login loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&login); err != nil {
		return "", goerr.Wrap(model.ErrRosterAuth, "failed to decode login response", goerr.V("cause", err.Error()))
	}
	if !login.Success {
		return "", goerr.Wrap(model.ErrRosterAuth, "login rejected", goerr.V("message", login.Message))
	}

	ctxlog.From(ctx).Debug("roster login succeeded", "username", username)
	return login.AccessToken, nil
}

// Members lists all membership records of a body. The access token goes
// in the X-Auth-Token header.
func (c *Client) Members(ctx context.Context, bodyID types.BodyID, accessToken string) ([]model.RosterMember, error) {
	url := c.baseURL + "/bodies/" + bodyID.String() + "/members"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create members request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Auth-Token", accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, goerr.Wrap(model.ErrRosterFetch, "members request failed",
			goerr.V("body_id", bodyID), goerr.V("cause", err.Error()))
	}
	defer resp.Body.Close()

	var members membersResponse
	if err := json.NewDecoder(resp.Body).Decode(&members); err != nil {
		return nil, goerr.Wrap(model.ErrRosterFetch, "failed to decode members response",
			goerr.V("body_id", bodyID), goerr.V("cause", err.Error()))
	}
	if !members.Success {
		return nil, goerr.Wrap(model.ErrRosterFetch, "members fetch rejected",
			goerr.V("body_id", bodyID), goerr.V("message", members.Message))
	}

	ctxlog.From(ctx).Debug("fetched roster members",
		"body_id", bodyID, "count", len(members.Data))
	return members.Data, nil
}
