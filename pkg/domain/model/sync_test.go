package model_test

import (
	"testing"

	"github.com/aegee-muenchen/dirsync/pkg/domain/model"
	"github.com/m-mizutani/gt"
)

func TestSyncPolicyValidate(t *testing.T) {
	t.Run("defaults are valid", func(t *testing.T) {
		policy := model.DefaultSyncPolicy()
		gt.NoError(t, policy.Validate())
	})

	t.Run("members group is required", func(t *testing.T) {
		policy := model.DefaultSyncPolicy()
		policy.MembersGroup = ""
		gt.Error(t, policy.Validate())
	})

	t.Run("actives group is required", func(t *testing.T) {
		policy := model.DefaultSyncPolicy()
		policy.ActivesGroup = ""
		gt.Error(t, policy.Validate())
	})
}

func TestSyncPolicyExcluded(t *testing.T) {
	policy := model.SyncPolicy{
		MembersGroup:   "members@x.de",
		ActivesGroup:   "actives@x.de",
		ExcludedEmails: []string{"info@x.de", "president@x.de"},
	}

	gt.True(t, policy.Excluded("info@x.de"))
	gt.True(t, policy.Excluded("INFO@X.DE"))
	gt.False(t, policy.Excluded("someone@x.de"))

	gt.True(t, policy.ExcludedAny([]string{"someone@x.de", "president@x.de"}))
	gt.False(t, policy.ExcludedAny([]string{"someone@x.de"}))
	gt.False(t, policy.ExcludedAny(nil))
}
