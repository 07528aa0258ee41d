package match_test

import (
	"testing"

	"github.com/aegee-muenchen/dirsync/pkg/domain/model"
	"github.com/aegee-muenchen/dirsync/pkg/domain/types"
	"github.com/aegee-muenchen/dirsync/pkg/service/match"
	"github.com/m-mizutani/gt"
)

func rosterMember(first, last, email string) model.RosterMember {
	return model.RosterMember{
		User: model.RosterUser{
			FirstName: first,
			LastName:  last,
			Email:     email,
		},
	}
}

func directoryUser(fullName string, addresses ...string) model.DirectoryUser {
	user := model.DirectoryUser{FullName: fullName}
	for _, addr := range addresses {
		user.Emails = append(user.Emails, model.DirectoryEmail{Address: addr})
	}
	if len(addresses) > 0 {
		user.PrimaryEmail = addresses[0]
	}
	return user
}

func TestMatcherAgainstGroup(t *testing.T) {
	m := match.New()

	t.Run("exact email wins", func(t *testing.T) {
		member := rosterMember("Ann", "Lee", "a@x.de")
		records := []model.DirectoryGroupMember{{Email: "a@x.de"}}
		result := m.AgainstGroup(member, records)
		gt.True(t, result.Matched())
		gt.Equal(t, result.Kind, types.MatchEmailExact)
	})

	t.Run("exact match is case-insensitive", func(t *testing.T) {
		member := rosterMember("Ann", "Lee", "A@X.de")
		records := []model.DirectoryGroupMember{{Email: "a@x.DE"}}
		result := m.AgainstGroup(member, records)
		gt.Equal(t, result.Kind, types.MatchEmailExact)
	})

	t.Run("alias domain matches after normalization", func(t *testing.T) {
		member := rosterMember("Carl", "Otto", "c@gmail.com")
		records := []model.DirectoryGroupMember{{Email: "c@googlemail.com"}}
		result := m.AgainstGroup(member, records)
		gt.Equal(t, result.Kind, types.MatchEmailAlias)
	})

	t.Run("alias normalization applies to both sides", func(t *testing.T) {
		member := rosterMember("Carl", "Otto", "c@googlemail.com")
		records := []model.DirectoryGroupMember{{Email: "c@gmail.com"}}
		result := m.AgainstGroup(member, records)
		gt.Equal(t, result.Kind, types.MatchEmailAlias)
	})

	t.Run("no match", func(t *testing.T) {
		member := rosterMember("Bo", "Ng", "b@x.de")
		records := []model.DirectoryGroupMember{{Email: "a@x.de"}}
		result := m.AgainstGroup(member, records)
		gt.False(t, result.Matched())
		gt.Equal(t, result.Kind, types.MatchNone)
	})

	t.Run("empty member email never matches", func(t *testing.T) {
		member := rosterMember("No", "Mail", "")
		records := []model.DirectoryGroupMember{{Email: ""}, {Email: "a@x.de"}}
		result := m.AgainstGroup(member, records)
		gt.False(t, result.Matched())
	})
}

func TestMatcherAgainstUsers(t *testing.T) {
	m := match.New()

	t.Run("matches any owned address", func(t *testing.T) {
		member := rosterMember("Ann", "Lee", "ann.alias@x.de")
		users := []model.DirectoryUser{
			directoryUser("Ann Lee", "ann@x.de", "ann.alias@x.de"),
		}
		result := m.AgainstUsers(member, users)
		gt.Equal(t, result.Kind, types.MatchEmailExact)
	})

	t.Run("alias email beats fuzzy name", func(t *testing.T) {
		member := rosterMember("Ann", "Lee", "c@gmail.com")
		users := []model.DirectoryUser{
			directoryUser("Ann Lee", "c@googlemail.com"),
		}
		result := m.AgainstUsers(member, users)
		gt.Equal(t, result.Kind, types.MatchEmailAlias)
	})

	t.Run("fuzzy name as last resort", func(t *testing.T) {
		member := rosterMember("Jon", "Smith", "jon@elsewhere.org")
		users := []model.DirectoryUser{
			directoryUser("John Smith", "john.smith@x.de"),
		}
		result := m.AgainstUsers(member, users)
		gt.Equal(t, result.Kind, types.MatchNameFuzzy)
	})

	t.Run("identical names always match", func(t *testing.T) {
		member := rosterMember("Ann", "Lee", "")
		users := []model.DirectoryUser{directoryUser("Ann Lee")}
		result := m.AgainstUsers(member, users)
		gt.Equal(t, result.Kind, types.MatchNameFuzzy)
	})

	t.Run("dissimilar names stay unmatched", func(t *testing.T) {
		member := rosterMember("Ann", "Lee", "ann@elsewhere.org")
		users := []model.DirectoryUser{
			directoryUser("Bernadette Vogelsang", "bv@x.de"),
		}
		result := m.AgainstUsers(member, users)
		gt.False(t, result.Matched())
	})
}

func TestMatcherThresholdIsStrict(t *testing.T) {
	// 9 of 10 characters match on both sides: ratio is exactly 0.9 and
	// must not count as a match
	m := match.New()
	member := rosterMember("abcde", "ghij", "")
	users := []model.DirectoryUser{directoryUser("abcde ghiX")}
	gt.False(t, m.AgainstUsers(member, users).Matched())

	// a slightly lower threshold flips the same pair to a match
	loose := match.New(match.WithNameThreshold(0.85))
	gt.True(t, loose.AgainstUsers(member, users).Matched())
}

func TestMatcherReversePasses(t *testing.T) {
	m := match.New()
	members := []model.RosterMember{
		rosterMember("Ann", "Lee", "a@x.de"),
		rosterMember("Carl", "Otto", "c@gmail.com"),
	}

	t.Run("group member found on roster", func(t *testing.T) {
		gt.True(t, m.GroupMemberOnRoster(model.DirectoryGroupMember{Email: "a@x.de"}, members))
	})

	t.Run("group member found via alias", func(t *testing.T) {
		gt.True(t, m.GroupMemberOnRoster(model.DirectoryGroupMember{Email: "c@googlemail.com"}, members))
	})

	t.Run("group member not on roster", func(t *testing.T) {
		gt.False(t, m.GroupMemberOnRoster(model.DirectoryGroupMember{Email: "z@x.de"}, members))
	})

	t.Run("group member without email never matches", func(t *testing.T) {
		gt.False(t, m.GroupMemberOnRoster(model.DirectoryGroupMember{}, members))
	})

	t.Run("user found by email", func(t *testing.T) {
		gt.True(t, m.UserOnRoster(directoryUser("Someone Else", "a@x.de"), members))
	})

	t.Run("user found by fuzzy name", func(t *testing.T) {
		gt.True(t, m.UserOnRoster(directoryUser("Carl Otto", "carl@x.de"), members))
	})

	t.Run("user unknown to roster", func(t *testing.T) {
		gt.False(t, m.UserOnRoster(directoryUser("Nadia Quast", "nq@x.de"), members))
	})
}
