package match

import (
	"strings"

	"github.com/aegee-muenchen/dirsync/pkg/domain/model"
	"github.com/aegee-muenchen/dirsync/pkg/domain/types"
	"github.com/pmezard/go-difflib/difflib"
)

// DefaultNameThreshold is the similarity ratio a fuzzy name comparison
// must strictly exceed to count as a match
const DefaultNameThreshold = 0.9

// Matcher decides whether a roster member and a directory record refer to
// the same person. Strategies are ordered and short-circuiting: exact
// email, alias-normalized email, then fuzzy name. Exact identity is never
// overridden by a fuzzy guess.
type Matcher struct {
	threshold float64
}

// Option configures a Matcher
type Option func(*Matcher)

// WithNameThreshold overrides the fuzzy-name similarity threshold
func WithNameThreshold(threshold float64) Option {
	return func(m *Matcher) {
		m.threshold = threshold
	}
}

// New creates a Matcher
func New(opts ...Option) *Matcher {
	m := &Matcher{
		threshold: DefaultNameThreshold,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// AgainstGroup matches a roster member against a group's membership
// records. Group members carry no name, so only the email strategies
// apply.
func (m *Matcher) AgainstGroup(member model.RosterMember, records []model.DirectoryGroupMember) model.MatchResult {
	email := member.User.Email
	if email == "" {
		return model.Unmatched
	}
	for _, rec := range records {
		if rec.Email != "" && strings.EqualFold(email, rec.Email) {
			return model.MatchedBy(types.MatchEmailExact)
		}
	}
	for _, rec := range records {
		if rec.Email != "" && NormalizeEmail(email) == NormalizeEmail(rec.Email) {
			return model.MatchedBy(types.MatchEmailAlias)
		}
	}
	return model.Unmatched
}

// AgainstUsers matches a roster member against full directory accounts,
// comparing against every address a user owns and falling back to a fuzzy
// full-name comparison.
func (m *Matcher) AgainstUsers(member model.RosterMember, users []model.DirectoryUser) model.MatchResult {
	if email := member.User.Email; email != "" {
		for _, user := range users {
			for _, addr := range user.Addresses() {
				if strings.EqualFold(email, addr) {
					return model.MatchedBy(types.MatchEmailExact)
				}
			}
		}
		normalized := NormalizeEmail(email)
		for _, user := range users {
			for _, addr := range user.Addresses() {
				if normalized == NormalizeEmail(addr) {
					return model.MatchedBy(types.MatchEmailAlias)
				}
			}
		}
	}
	if name := member.User.FullName(); name != "" {
		for _, user := range users {
			if m.namesSimilar(name, user.FullName) {
				return model.MatchedBy(types.MatchNameFuzzy)
			}
		}
	}
	return model.Unmatched
}

// GroupMemberOnRoster is the reverse existence check: does any roster
// member's email equal this group record's email, exactly or
// alias-normalized?
func (m *Matcher) GroupMemberOnRoster(record model.DirectoryGroupMember, members []model.RosterMember) bool {
	if record.Email == "" {
		return false
	}
	normalized := NormalizeEmail(record.Email)
	for _, member := range members {
		email := member.User.Email
		if email == "" {
			continue
		}
		if strings.EqualFold(email, record.Email) || NormalizeEmail(email) == normalized {
			return true
		}
	}
	return false
}

// UserOnRoster reports whether any roster member matches the directory
// account by email (exact or alias-normalized, over all owned addresses)
// or by fuzzy name.
func (m *Matcher) UserOnRoster(user model.DirectoryUser, members []model.RosterMember) bool {
	addrs := user.Addresses()
	normalized := make([]string, len(addrs))
	for i, addr := range addrs {
		normalized[i] = NormalizeEmail(addr)
	}
	for _, member := range members {
		if email := member.User.Email; email != "" {
			memberNorm := NormalizeEmail(email)
			for i, addr := range addrs {
				if strings.EqualFold(email, addr) || memberNorm == normalized[i] {
					return true
				}
			}
		}
		if name := member.User.FullName(); name != "" && m.namesSimilar(name, user.FullName) {
			return true
		}
	}
	return false
}

// namesSimilar compares two names with a character-level
// longest-matching-blocks ratio. No normalization is applied here; casing
// and punctuation differences reduce the ratio naturally, and the email
// strategies already handle casing.
func (m *Matcher) namesSimilar(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	sm := difflib.NewMatcher(strings.Split(a, ""), strings.Split(b, ""))
	return sm.Ratio() > m.threshold
}
