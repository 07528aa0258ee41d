package model

import (
	"log/slog"
	"strings"

	"github.com/aegee-muenchen/dirsync/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// SyncPolicy names the directory groups to reconcile against and the
// addresses excluded from "extra" reporting (shared/role mailboxes).
// It is explicit configuration handed to the reconcile usecase so tests
// can substitute fixtures.
type SyncPolicy struct {
	MembersGroup   types.GroupAddress `yaml:"members_group"`
	ActivesGroup   types.GroupAddress `yaml:"actives_group"`
	Domain         string             `yaml:"domain"`
	ExcludedEmails []string           `yaml:"excluded_emails"`
}

// DefaultSyncPolicy returns the policy for AEGEE-München, the body this
// tool was written for
func DefaultSyncPolicy() SyncPolicy {
	return SyncPolicy{
		MembersGroup: "members@aegee-muenchen.de",
		ActivesGroup: "actives@aegee-muenchen.de",
		Domain:       "aegee-muenchen.de",
		ExcludedEmails: []string{
			"admin@aegee-muenchen.de",
			"archive@aegee-muenchen.de",
			"events@aegee-muenchen.de",
			"european.affairs@aegee-muenchen.de",
			"externalrelations@aegee-muenchen.de",
			"info@aegee-muenchen.de",
			"internalrelations@aegee-muenchen.de",
			"it@aegee-muenchen.de",
			"publicrelations@aegee-muenchen.de",
			"president@aegee-muenchen.de",
			"projectmanager@aegee-muenchen.de",
			"secretary@aegee-muenchen.de",
			"su@aegee-muenchen.de",
			"treasurer@aegee-muenchen.de",
		},
	}
}

// Validate validates the policy
func (p *SyncPolicy) Validate() error {
	if p.MembersGroup == "" {
		return goerr.New("members group address is required")
	}
	if p.ActivesGroup == "" {
		return goerr.New("actives group address is required")
	}
	return nil
}

// Excluded reports whether the address is a known role mailbox that must
// never appear in an "extra" report. Comparison is case-insensitive.
func (p *SyncPolicy) Excluded(email string) bool {
	for _, e := range p.ExcludedEmails {
		if strings.EqualFold(e, email) {
			return true
		}
	}
	return false
}

// ExcludedAny reports whether any of the addresses is excluded
func (p *SyncPolicy) ExcludedAny(emails []string) bool {
	for _, e := range emails {
		if p.Excluded(e) {
			return true
		}
	}
	return false
}

// LogValue returns structured log value
func (p SyncPolicy) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("members_group", p.MembersGroup.String()),
		slog.String("actives_group", p.ActivesGroup.String()),
		slog.String("domain", p.Domain),
		slog.Int("excluded", len(p.ExcludedEmails)),
	)
}
