package config

import (
	"log/slog"

	"github.com/aegee-muenchen/dirsync/pkg/domain/model"
	"github.com/aegee-muenchen/dirsync/pkg/domain/types"
	"github.com/aegee-muenchen/dirsync/pkg/service/roster"
	"github.com/urfave/cli/v3"
)

// defaultBodyID is AEGEE-München's antenna on MyAEGEE
const defaultBodyID = 117

// Roster holds roster API configuration
type Roster struct {
	Username string
	Password string
	BodyID   int
	BaseURL  string
}

// Flags returns CLI flags for Roster configuration. Username and password
// also honor the legacy MYAEGEE_* environment variables.
func (r *Roster) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "myaegee-user",
			Usage:       "MyAEGEE username",
			Category:    "Roster",
			Sources:     cli.EnvVars("DIRSYNC_MYAEGEE_USER", "MYAEGEE_USER"),
			Destination: &r.Username,
		},
		&cli.StringFlag{
			Name:        "myaegee-pass",
			Usage:       "MyAEGEE password",
			Category:    "Roster",
			Sources:     cli.EnvVars("DIRSYNC_MYAEGEE_PASS", "MYAEGEE_PASS"),
			Destination: &r.Password,
		},
		&cli.IntFlag{
			Name:        "body-id",
			Usage:       "MyAEGEE antenna body ID",
			Category:    "Roster",
			Value:       defaultBodyID,
			Sources:     cli.EnvVars("DIRSYNC_BODY_ID"),
			Destination: &r.BodyID,
		},
		&cli.StringFlag{
			Name:        "roster-url",
			Usage:       "MyAEGEE core API base URL",
			Category:    "Roster",
			Value:       roster.DefaultBaseURL,
			Sources:     cli.EnvVars("DIRSYNC_ROSTER_URL"),
			Destination: &r.BaseURL,
		},
	}
}

// Account returns the roster account the subcommand reconciles
func (r *Roster) Account() model.RosterAccount {
	return model.RosterAccount{
		Username: r.Username,
		Password: r.Password,
		BodyID:   types.BodyID(r.BodyID),
	}
}

// Configure creates the roster API client
func (r *Roster) Configure() *roster.Client {
	return roster.New(roster.WithBaseURL(r.BaseURL))
}

// Validate validates the roster configuration
func (r *Roster) Validate() error {
	account := r.Account()
	return account.Validate()
}

// LogValue returns structured log value. The password never appears.
func (r Roster) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("username", r.Username),
		slog.Bool("has_password", r.Password != ""),
		slog.Int("body_id", r.BodyID),
		slog.String("base_url", r.BaseURL),
	)
}
