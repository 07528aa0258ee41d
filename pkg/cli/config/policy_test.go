package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aegee-muenchen/dirsync/pkg/cli/config"
	"github.com/aegee-muenchen/dirsync/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func TestPolicyConfigure(t *testing.T) {
	t.Run("defaults without file or flags", func(t *testing.T) {
		var cfg config.Policy
		policy, err := cfg.Configure()
		gt.NoError(t, err)
		gt.Equal(t, policy.MembersGroup, types.GroupAddress("members@aegee-muenchen.de"))
		gt.True(t, policy.Excluded("it@aegee-muenchen.de"))
	})

	t.Run("file replaces defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "policy.yml")
		content := `members_group: members@other.org
actives_group: actives@other.org
domain: other.org
excluded_emails:
  - board@other.org
`
		gt.NoError(t, os.WriteFile(path, []byte(content), 0600))

		cfg := config.Policy{File: path}
		policy, err := cfg.Configure()
		gt.NoError(t, err)
		gt.Equal(t, policy.MembersGroup, types.GroupAddress("members@other.org"))
		gt.Equal(t, policy.Domain, "other.org")
		gt.True(t, policy.Excluded("board@other.org"))
		gt.False(t, policy.Excluded("it@aegee-muenchen.de"))
	})

	t.Run("flags override file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "policy.yml")
		content := `members_group: members@other.org
actives_group: actives@other.org
`
		gt.NoError(t, os.WriteFile(path, []byte(content), 0600))

		cfg := config.Policy{
			File:         path,
			MembersGroup: "override@other.org",
		}
		policy, err := cfg.Configure()
		gt.NoError(t, err)
		gt.Equal(t, policy.MembersGroup, types.GroupAddress("override@other.org"))
		gt.Equal(t, policy.ActivesGroup, types.GroupAddress("actives@other.org"))
	})

	t.Run("incomplete file fails validation", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "policy.yml")
		gt.NoError(t, os.WriteFile(path, []byte("domain: other.org\n"), 0600))

		cfg := config.Policy{File: path}
		_, err := cfg.Configure()
		gt.Error(t, err)
	})

	t.Run("missing file is an error", func(t *testing.T) {
		cfg := config.Policy{File: filepath.Join(t.TempDir(), "absent.yml")}
		_, err := cfg.Configure()
		gt.Error(t, err)
	})
}
