package config_test

import (
	"testing"

	"github.com/aegee-muenchen/dirsync/pkg/cli/config"
	"github.com/aegee-muenchen/dirsync/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func TestRosterValidate(t *testing.T) {
	t.Run("complete credentials pass", func(t *testing.T) {
		cfg := config.Roster{Username: "ann", Password: "secret", BodyID: 117}
		gt.NoError(t, cfg.Validate())
	})

	t.Run("missing username fails", func(t *testing.T) {
		cfg := config.Roster{Password: "secret", BodyID: 117}
		gt.Error(t, cfg.Validate())
	})

	t.Run("missing password fails", func(t *testing.T) {
		cfg := config.Roster{Username: "ann", BodyID: 117}
		gt.Error(t, cfg.Validate())
	})

	t.Run("zero body ID fails", func(t *testing.T) {
		cfg := config.Roster{Username: "ann", Password: "secret"}
		gt.Error(t, cfg.Validate())
	})
}

func TestRosterAccount(t *testing.T) {
	cfg := config.Roster{Username: "ann", Password: "secret", BodyID: 117}
	account := cfg.Account()
	gt.Equal(t, account.Username, "ann")
	gt.Equal(t, account.BodyID, types.BodyID(117))
}
