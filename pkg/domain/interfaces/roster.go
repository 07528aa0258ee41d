package interfaces

//go:generate moq -out mocks/roster_mock.go -pkg mocks . RosterClient

import (
	"context"

	"github.com/aegee-muenchen/dirsync/pkg/domain/model"
	"github.com/aegee-muenchen/dirsync/pkg/domain/types"
)

// RosterClient fetches membership records from the roster API
type RosterClient interface {
	// Login exchanges credentials for an access token
	Login(ctx context.Context, username, password string) (string, error)

	// Members lists all membership records of a body
	Members(ctx context.Context, bodyID types.BodyID, accessToken string) ([]model.RosterMember, error)
}
