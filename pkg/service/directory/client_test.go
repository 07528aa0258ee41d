package directory_test

import (
	"testing"

	"github.com/aegee-muenchen/dirsync/pkg/domain/types"
	"github.com/aegee-muenchen/dirsync/pkg/service/directory"
	"github.com/m-mizutani/gt"
	admin "google.golang.org/api/admin/directory/v1"
)

func TestDecodeEmails(t *testing.T) {
	t.Run("decodes address list", func(t *testing.T) {
		raw := []interface{}{
			map[string]interface{}{"address": "ann@x.de", "type": "work"},
			map[string]interface{}{"address": "ann@googlemail.com"},
		}
		emails := directory.DecodeEmails(raw)
		gt.Equal(t, len(emails), 2)
		gt.Equal(t, emails[0].Address, "ann@x.de")
		gt.Equal(t, emails[0].Type, "work")
		gt.Equal(t, emails[1].Address, "ann@googlemail.com")
	})

	t.Run("nil input", func(t *testing.T) {
		gt.Equal(t, len(directory.DecodeEmails(nil)), 0)
	})

	t.Run("unexpected shape is dropped", func(t *testing.T) {
		gt.Equal(t, len(directory.DecodeEmails("bogus")), 0)
	})
}

func TestToDirectoryUser(t *testing.T) {
	u := &admin.User{
		Id:           "uid-1",
		PrimaryEmail: "ann@x.de",
		Suspended:    false,
		Name:         &admin.UserName{FullName: "Ann Lee"},
		Emails: []interface{}{
			map[string]interface{}{"address": "ann@x.de", "primary": true},
		},
	}

	user := directory.ToDirectoryUser(u)
	gt.Equal(t, user.ID, types.DirectoryUserID("uid-1"))
	gt.Equal(t, user.FullName, "Ann Lee")
	gt.Equal(t, user.PrimaryEmail, "ann@x.de")
	gt.Equal(t, len(user.Emails), 1)
	gt.Equal(t, user.Emails[0].Address, "ann@x.de")
}
