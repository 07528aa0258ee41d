package model

import (
	"fmt"
	"strings"

	"github.com/aegee-muenchen/dirsync/pkg/domain/types"
)

// DirectoryEmail is one address owned by a directory user
type DirectoryEmail struct {
	Address string `json:"address"`
	Type    string `json:"type"`
}

// DirectoryUser is a full directory account record. A user may own
// several addresses (primary + aliases).
type DirectoryUser struct {
	ID           types.DirectoryUserID `json:"id"`
	FullName     string                `json:"full_name"`
	PrimaryEmail string                `json:"primary_email"`
	Emails       []DirectoryEmail      `json:"emails"`
	Suspended    bool                  `json:"suspended"`

	// orgDomain restricts which addresses DisplayLabel shows; personal
	// alias addresses stay out of the printed reports
	orgDomain string
}

// Addresses returns all addresses owned by the user
func (u DirectoryUser) Addresses() []string {
	addrs := make([]string, 0, len(u.Emails))
	for _, e := range u.Emails {
		if e.Address != "" {
			addrs = append(addrs, e.Address)
		}
	}
	return addrs
}

// OrgEmails returns the user's addresses under the given domain
func (u DirectoryUser) OrgEmails(domain string) []string {
	if domain == "" {
		return u.Addresses()
	}
	suffix := "@" + strings.ToLower(domain)
	var addrs []string
	for _, a := range u.Addresses() {
		if strings.HasSuffix(strings.ToLower(a), suffix) {
			addrs = append(addrs, a)
		}
	}
	return addrs
}

// WithDomain returns a copy whose DisplayLabel only shows addresses
// under the given organization domain
func (u DirectoryUser) WithDomain(domain string) DirectoryUser {
	u.orgDomain = domain
	return u
}

// DisplayLabel renders the user for report output
func (u DirectoryUser) DisplayLabel() string {
	return fmt.Sprintf("%s (%s)", u.FullName, strings.Join(u.OrgEmails(u.orgDomain), ", "))
}

// SortKey orders directory users alphabetically by primary email
func (u DirectoryUser) SortKey() string {
	if u.PrimaryEmail != "" {
		return u.PrimaryEmail
	}
	return u.FullName
}

// DirectoryGroupMember is the lightweight record returned when listing a
// group's members. It carries no name.
type DirectoryGroupMember struct {
	ID     types.DirectoryUserID `json:"id"`
	Email  string                `json:"email"`
	Role   string                `json:"role"`
	Type   string                `json:"type"`
	Status string                `json:"status"`
}

// DisplayLabel renders the group member for report output
func (m DirectoryGroupMember) DisplayLabel() string {
	return m.Email
}

// SortKey orders group members alphabetically by email
func (m DirectoryGroupMember) SortKey() string {
	return m.Email
}
