package directory

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/aegee-muenchen/dirsync/pkg/domain/interfaces"
	"github.com/aegee-muenchen/dirsync/pkg/domain/model"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	admin "google.golang.org/api/admin/directory/v1"
)

// Scopes requested for the delegated credential. Reconciliation only
// reads, so both are readonly.
var Scopes = []string{
	admin.AdminDirectoryUserReadonlyScope,
	admin.AdminDirectoryGroupMemberReadonlyScope,
}

// Authenticator runs the installed-app OAuth flow: a cached token is
// loaded from the store and transparently refreshed; when none is usable
// the user authorizes in a browser and pastes the code back.
type Authenticator struct {
	config *oauth2.Config
	store  interfaces.CredentialStore
	in     io.Reader
	out    io.Writer
}

// AuthOption configures an Authenticator
type AuthOption func(*Authenticator)

// WithPrompt overrides where the authorization prompt is written and the
// code is read from
func WithPrompt(in io.Reader, out io.Writer) AuthOption {
	return func(a *Authenticator) {
		a.in = in
		a.out = out
	}
}

// NewAuthenticator parses the client-secrets JSON and prepares the flow
func NewAuthenticator(credentialsJSON []byte, store interfaces.CredentialStore, opts ...AuthOption) (*Authenticator, error) {
	config, err := google.ConfigFromJSON(credentialsJSON, Scopes...)
	if err != nil {
		return nil, goerr.Wrap(model.ErrDirectoryCredential, "failed to parse client secrets",
			goerr.V("cause", err.Error()))
	}

	a := &Authenticator{
		config: config,
		store:  store,
		in:     os.Stdin,
		out:    os.Stdout,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// TokenSource returns a source that refreshes the cached token as needed
// and persists every renewal back to the store
func (a *Authenticator) TokenSource(ctx context.Context) (oauth2.TokenSource, error) {
	token, err := a.store.Load()
	if err != nil {
		ctxlog.From(ctx).Info("no cached directory credential, starting authorization flow")
		token, err = a.authorize(ctx)
		if err != nil {
			return nil, err
		}
		if err := a.store.Save(token); err != nil {
			return nil, err
		}
	}

	return &savingTokenSource{
		source: a.config.TokenSource(ctx, token),
		store:  a.store,
		last:   token.AccessToken,
	}, nil
}

// authorize walks the user through the auth-code exchange
func (a *Authenticator) authorize(ctx context.Context) (*oauth2.Token, error) {
	url := a.config.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	fmt.Fprintf(a.out, "Go to the following link in your browser then type the authorization code:\n%v\n", url)

	var code string
	if _, err := fmt.Fscan(a.in, &code); err != nil {
		return nil, goerr.Wrap(model.ErrDirectoryCredential, "failed to read authorization code",
			goerr.V("cause", err.Error()))
	}

	token, err := a.config.Exchange(ctx, code)
	if err != nil {
		return nil, goerr.Wrap(model.ErrDirectoryCredential, "failed to exchange authorization code",
			goerr.V("cause", err.Error()))
	}
	return token, nil
}

// savingTokenSource persists the token whenever the underlying source
// hands back a refreshed one
type savingTokenSource struct {
	source oauth2.TokenSource
	store  interfaces.CredentialStore
	last   string
}

func (s *savingTokenSource) Token() (*oauth2.Token, error) {
	token, err := s.source.Token()
	if err != nil {
		return nil, goerr.Wrap(model.ErrDirectoryCredential, "failed to obtain directory token",
			goerr.V("cause", err.Error()))
	}
	if token.AccessToken != s.last {
		if err := s.store.Save(token); err != nil {
			return nil, err
		}
		s.last = token.AccessToken
	}
	return token, nil
}
