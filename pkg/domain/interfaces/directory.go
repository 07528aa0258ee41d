package interfaces

//go:generate moq -out mocks/directory_mock.go -pkg mocks . DirectoryClient

import (
	"context"

	"github.com/aegee-muenchen/dirsync/pkg/domain/model"
	"github.com/aegee-muenchen/dirsync/pkg/domain/types"
)

// DirectoryClient fetches account and group-membership records from the
// directory service
type DirectoryClient interface {
	// Users lists all directory users of the customer, ordered by email
	Users(ctx context.Context) ([]model.DirectoryUser, error)

	// GroupMembers lists the members of a group identified by its address
	GroupMembers(ctx context.Context, group types.GroupAddress) ([]model.DirectoryGroupMember, error)
}
