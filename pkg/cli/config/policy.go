package config

import (
	"log/slog"
	"os"

	"github.com/aegee-muenchen/dirsync/pkg/domain/model"
	"github.com/aegee-muenchen/dirsync/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// Policy holds sync-policy configuration: the groups to reconcile
// against and the role mailboxes excluded from "extra" reports. A YAML
// file can replace the built-in defaults; flags override individual
// fields on top.
type Policy struct {
	File           string
	MembersGroup   string
	ActivesGroup   string
	Domain         string
	ExcludedEmails []string
}

// Flags returns CLI flags for Policy configuration
func (p *Policy) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "policy-file",
			Usage:       "YAML file with groups, domain and excluded addresses",
			Category:    "Sync policy",
			Sources:     cli.EnvVars("DIRSYNC_POLICY_FILE"),
			Destination: &p.File,
		},
		&cli.StringFlag{
			Name:        "members-group",
			Usage:       "Directory group holding all members",
			Category:    "Sync policy",
			Sources:     cli.EnvVars("DIRSYNC_MEMBERS_GROUP"),
			Destination: &p.MembersGroup,
		},
		&cli.StringFlag{
			Name:        "actives-group",
			Usage:       "Directory group holding active members",
			Category:    "Sync policy",
			Sources:     cli.EnvVars("DIRSYNC_ACTIVES_GROUP"),
			Destination: &p.ActivesGroup,
		},
		&cli.StringFlag{
			Name:        "domain",
			Usage:       "Organization mail domain shown in reports",
			Category:    "Sync policy",
			Sources:     cli.EnvVars("DIRSYNC_DOMAIN"),
			Destination: &p.Domain,
		},
		&cli.StringSliceFlag{
			Name:        "exclude",
			Usage:       "Role mailbox excluded from extra-user reports (repeatable)",
			Category:    "Sync policy",
			Sources:     cli.EnvVars("DIRSYNC_EXCLUDE"),
			Destination: &p.ExcludedEmails,
		},
	}
}

// Configure resolves the effective sync policy
func (p *Policy) Configure() (model.SyncPolicy, error) {
	policy := model.DefaultSyncPolicy()

	if p.File != "" {
		loaded, err := loadPolicyFile(p.File)
		if err != nil {
			return model.SyncPolicy{}, err
		}
		policy = loaded
	}

	if p.MembersGroup != "" {
		policy.MembersGroup = types.GroupAddress(p.MembersGroup)
	}
	if p.ActivesGroup != "" {
		policy.ActivesGroup = types.GroupAddress(p.ActivesGroup)
	}
	if p.Domain != "" {
		policy.Domain = p.Domain
	}
	if len(p.ExcludedEmails) > 0 {
		policy.ExcludedEmails = p.ExcludedEmails
	}

	if err := policy.Validate(); err != nil {
		return model.SyncPolicy{}, goerr.Wrap(err, "invalid sync policy",
			goerr.V("file", p.File))
	}
	return policy, nil
}

func loadPolicyFile(path string) (model.SyncPolicy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.SyncPolicy{}, goerr.Wrap(err, "failed to read policy file",
			goerr.V("path", path))
	}

	var policy model.SyncPolicy
	if err := yaml.Unmarshal(data, &policy); err != nil {
		return model.SyncPolicy{}, goerr.Wrap(err, "failed to parse policy file",
			goerr.V("path", path))
	}
	return policy, nil
}

// LogValue returns structured log value
func (p Policy) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("file", p.File),
		slog.String("members_group", p.MembersGroup),
		slog.String("actives_group", p.ActivesGroup),
		slog.String("domain", p.Domain),
		slog.Int("excluded", len(p.ExcludedEmails)),
	)
}
