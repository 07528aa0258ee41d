package config

import (
	"context"
	"log/slog"
	"os"

	"github.com/aegee-muenchen/dirsync/pkg/domain/model"
	"github.com/aegee-muenchen/dirsync/pkg/service/directory"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// Directory holds directory service configuration
type Directory struct {
	CredentialsFile string
	TokenFile       string
	Customer        string
}

// Flags returns CLI flags for Directory configuration
func (d *Directory) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "credentials-file",
			Usage:       "OAuth client secrets JSON for the directory service",
			Category:    "Directory",
			Value:       "credentials.json",
			Sources:     cli.EnvVars("DIRSYNC_CREDENTIALS_FILE"),
			Destination: &d.CredentialsFile,
		},
		&cli.StringFlag{
			Name:        "token-file",
			Usage:       "Local cache for the delegated OAuth token",
			Category:    "Directory",
			Value:       "token.json",
			Sources:     cli.EnvVars("DIRSYNC_TOKEN_FILE"),
			Destination: &d.TokenFile,
		},
		&cli.StringFlag{
			Name:        "customer",
			Usage:       "Directory customer ID",
			Category:    "Directory",
			Value:       directory.DefaultCustomer,
			Sources:     cli.EnvVars("DIRSYNC_CUSTOMER"),
			Destination: &d.Customer,
		},
	}
}

// Configure runs the OAuth flow and creates the directory client
func (d *Directory) Configure(ctx context.Context) (*directory.Client, error) {
	credentials, err := os.ReadFile(d.CredentialsFile)
	if err != nil {
		return nil, goerr.Wrap(model.ErrDirectoryCredential, "failed to read client secrets",
			goerr.V("path", d.CredentialsFile), goerr.V("cause", err.Error()))
	}

	store := directory.NewFileTokenStore(d.TokenFile)
	auth, err := directory.NewAuthenticator(credentials, store)
	if err != nil {
		return nil, err
	}
	tokenSource, err := auth.TokenSource(ctx)
	if err != nil {
		return nil, err
	}

	return directory.NewClient(ctx, tokenSource, directory.WithCustomer(d.Customer))
}

// LogValue returns structured log value
func (d Directory) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("credentials_file", d.CredentialsFile),
		slog.String("token_file", d.TokenFile),
		slog.String("customer", d.Customer),
	)
}
