package interfaces

//go:generate moq -out mocks/credential_mock.go -pkg mocks . CredentialStore

import "golang.org/x/oauth2"

// CredentialStore persists the delegated OAuth token between runs
type CredentialStore interface {
	// Load returns the cached token, or an error when none is cached
	Load() (*oauth2.Token, error)

	// Save persists the token for the next run
	Save(token *oauth2.Token) error
}
