package model

import (
	"fmt"
	"strings"

	"github.com/aegee-muenchen/dirsync/pkg/domain/types"
)

// RosterUser is the person record carried inside a roster membership
type RosterUser struct {
	ID                int    `json:"id"`
	Username          string `json:"username"`
	Email             string `json:"email"`
	NotificationEmail string `json:"notification_email"`
	PrimaryEmail      string `json:"primary_email"`
	FirstName         string `json:"first_name"`
	LastName          string `json:"last_name"`
	Active            bool   `json:"active"`
	GsuiteID          string `json:"gsuite_id"`
}

// FullName joins first and last name the way the directory stores them
func (u RosterUser) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// RosterMember is one membership record of a body
type RosterMember struct {
	ID      int          `json:"id"`
	BodyID  types.BodyID `json:"body_id"`
	UserID  int          `json:"user_id"`
	Comment string       `json:"comment"`
	User    RosterUser   `json:"user"`
}

// DisplayLabel renders the member for report output
func (m RosterMember) DisplayLabel() string {
	return fmt.Sprintf("%s (%s)", m.User.FullName(), m.User.Email)
}

// SortKey orders roster members alphabetically by email
func (m RosterMember) SortKey() string {
	return m.User.Email
}
