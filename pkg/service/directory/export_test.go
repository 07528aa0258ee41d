package directory

import (
	"github.com/aegee-muenchen/dirsync/pkg/domain/interfaces"
	"golang.org/x/oauth2"
)

// Export internal helpers for testing
var (
	DecodeEmails    = decodeEmails
	ToDirectoryUser = toDirectoryUser
)

// NewSavingTokenSource exposes the persisting token source for testing
func NewSavingTokenSource(source oauth2.TokenSource, store interfaces.CredentialStore, last string) oauth2.TokenSource {
	return &savingTokenSource{source: source, store: store, last: last}
}
