package model

import (
	"log/slog"

	"github.com/aegee-muenchen/dirsync/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// RosterAccount identifies the roster login and the body to reconcile
type RosterAccount struct {
	Username string
	Password string
	BodyID   types.BodyID
}

// Validate validates the account
func (a *RosterAccount) Validate() error {
	if a.Username == "" || a.Password == "" {
		return goerr.New("roster username and password are required")
	}
	if a.BodyID <= 0 {
		return goerr.New("roster body ID is required", goerr.V("body_id", a.BodyID))
	}
	return nil
}

// LogValue returns structured log value. The password never appears.
func (a RosterAccount) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("username", a.Username),
		slog.Bool("has_password", a.Password != ""),
		slog.Int("body_id", a.BodyID.Int()),
	)
}
