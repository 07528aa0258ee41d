package usecase

import (
	"context"

	"github.com/aegee-muenchen/dirsync/pkg/domain/interfaces"
	"github.com/aegee-muenchen/dirsync/pkg/domain/model"
	"github.com/aegee-muenchen/dirsync/pkg/service/match"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// Reconcile computes the difference reports between the roster and the
// directory. It holds no state between runs: every report is a pure
// function of the two fetched collections plus the sync policy.
type Reconcile struct {
	roster    interfaces.RosterClient
	directory interfaces.DirectoryClient
	policy    model.SyncPolicy
	account   model.RosterAccount
	matcher   *match.Matcher
}

// Option configures a Reconcile usecase
type Option func(*Reconcile)

// WithMatcher substitutes the matching engine
func WithMatcher(m *match.Matcher) Option {
	return func(uc *Reconcile) {
		uc.matcher = m
	}
}

// NewReconcile creates the reconciliation usecase
func NewReconcile(
	roster interfaces.RosterClient,
	directory interfaces.DirectoryClient,
	policy model.SyncPolicy,
	account model.RosterAccount,
	opts ...Option,
) *Reconcile {
	uc := &Reconcile{
		roster:    roster,
		directory: directory,
		policy:    policy,
		account:   account,
		matcher:   match.New(),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// MembersSyncResult carries the two members-group reports
type MembersSyncResult struct {
	// Missing lists roster members absent from the members group
	Missing *model.Report
	// Extra lists group members unknown to the roster
	Extra *model.Report
}

// ActivesSyncResult carries the three directory-account reports
type ActivesSyncResult struct {
	// MissingAccounts lists roster members without any directory account
	MissingAccounts *model.Report
	// ExtraAccounts lists directory accounts unknown to the roster
	ExtraAccounts *model.Report
	// NotInActives lists directory users absent from the actives group
	NotInActives *model.Report
}

// fetchRoster logs in and fetches the body's membership. Both steps are
// fail-fast: reconciliation needs the complete collection.
func (uc *Reconcile) fetchRoster(ctx context.Context) ([]model.RosterMember, error) {
	token, err := uc.roster.Login(ctx, uc.account.Username, uc.account.Password)
	if err != nil {
		return nil, err
	}
	members, err := uc.roster.Members(ctx, uc.account.BodyID, token)
	if err != nil {
		return nil, err
	}
	return members, nil
}

// MembersSync reconciles the roster against the members group: who is
// missing from the group, and who is in the group but not on the roster.
func (uc *Reconcile) MembersSync(ctx context.Context) (*MembersSyncResult, error) {
	logger := ctxlog.From(ctx)

	members, err := uc.fetchRoster(ctx)
	if err != nil {
		return nil, err
	}
	groupMembers, err := uc.directory.GroupMembers(ctx, uc.policy.MembersGroup)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to fetch members group",
			goerr.V("group", uc.policy.MembersGroup))
	}

	logger.Debug("reconciling members group",
		"roster_members", len(members),
		"group_members", len(groupMembers),
	)

	var missing []model.Record
	for _, member := range members {
		if !uc.matcher.AgainstGroup(member, groupMembers).Matched() {
			missing = append(missing, member)
		}
	}

	var extra []model.Record
	for _, record := range groupMembers {
		if uc.policy.Excluded(record.Email) {
			continue
		}
		if !uc.matcher.GroupMemberOnRoster(record, members) {
			extra = append(extra, record)
		}
	}

	return &MembersSyncResult{
		Missing: model.NewReport("missing-from-group", missing, len(members)),
		Extra:   model.NewReport("extra-in-group", extra, len(groupMembers)),
	}, nil
}

// ActivesSync reconciles the roster against the full directory: who lacks
// a directory account, which accounts are unknown to the roster, and which
// accounts are absent from the actives group (by internal ID, not email).
func (uc *Reconcile) ActivesSync(ctx context.Context) (*ActivesSyncResult, error) {
	logger := ctxlog.From(ctx)

	members, err := uc.fetchRoster(ctx)
	if err != nil {
		return nil, err
	}
	users, err := uc.directory.Users(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to fetch directory users")
	}
	actives, err := uc.directory.GroupMembers(ctx, uc.policy.ActivesGroup)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to fetch actives group",
			goerr.V("group", uc.policy.ActivesGroup))
	}

	logger.Debug("reconciling directory accounts",
		"roster_members", len(members),
		"directory_users", len(users),
		"actives_members", len(actives),
	)

	var missing []model.Record
	for _, member := range members {
		if !uc.matcher.AgainstUsers(member, users).Matched() {
			missing = append(missing, member)
		}
	}

	var extra []model.Record
	for _, user := range users {
		if uc.policy.ExcludedAny(user.Addresses()) {
			continue
		}
		if !uc.matcher.UserOnRoster(user, members) {
			extra = append(extra, user.WithDomain(uc.policy.Domain))
		}
	}

	var notInActives []model.Record
	for _, user := range users {
		inGroup := false
		for _, active := range actives {
			if active.ID != "" && active.ID == user.ID {
				inGroup = true
				break
			}
		}
		if !inGroup {
			notInActives = append(notInActives, user.WithDomain(uc.policy.Domain))
		}
	}

	return &ActivesSyncResult{
		MissingAccounts: model.NewReport("missing-directory-account", missing, len(members)),
		ExtraAccounts:   model.NewReport("extra-directory-account", extra, len(users)),
		NotInActives:    model.NewReport("not-in-actives-group", notInActives, len(users)),
	}, nil
}
