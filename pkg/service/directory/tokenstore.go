package directory

import (
	"encoding/json"
	"os"

	"github.com/aegee-muenchen/dirsync/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/oauth2"
)

// FileTokenStore persists the delegated OAuth token as JSON in a local
// file between runs. The tool is not expected to run concurrently against
// the same file, so no locking is applied.
type FileTokenStore struct {
	path string
}

// NewFileTokenStore creates a token store backed by the given file
func NewFileTokenStore(path string) *FileTokenStore {
	return &FileTokenStore{path: path}
}

// Load reads the cached token. A missing file is an error; the caller
// falls back to the interactive flow.
func (s *FileTokenStore) Load() (*oauth2.Token, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, goerr.Wrap(model.ErrDirectoryCredential, "failed to read token cache",
			goerr.V("path", s.path), goerr.V("cause", err.Error()))
	}

	var token oauth2.Token
	if err := json.Unmarshal(data, &token); err != nil {
		return nil, goerr.Wrap(model.ErrDirectoryCredential, "failed to parse token cache",
			goerr.V("path", s.path), goerr.V("cause", err.Error()))
	}
	return &token, nil
}

// Save writes the token back for the next run
func (s *FileTokenStore) Save(token *oauth2.Token) error {
	data, err := json.Marshal(token)
	if err != nil {
		return goerr.Wrap(model.ErrDirectoryCredential, "failed to encode token",
			goerr.V("path", s.path))
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return goerr.Wrap(model.ErrDirectoryCredential, "failed to write token cache",
			goerr.V("path", s.path), goerr.V("cause", err.Error()))
	}
	return nil
}
