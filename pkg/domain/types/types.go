package types

import "strconv"

// BodyID identifies a MyAEGEE body (antenna)
type BodyID int

// Int returns the int representation
func (id BodyID) Int() int {
	return int(id)
}

// String returns the string representation
func (id BodyID) String() string {
	return strconv.Itoa(int(id))
}

// GroupAddress is the email address identifying a directory group
type GroupAddress string

// String returns the string representation
func (a GroupAddress) String() string {
	return string(a)
}

// DirectoryUserID is the directory service's internal user identifier
type DirectoryUserID string

// String returns the string representation
func (id DirectoryUserID) String() string {
	return string(id)
}

// MatchKind describes which strategy matched a roster member to a
// directory record
type MatchKind string

const (
	// MatchNone means no strategy produced a match
	MatchNone MatchKind = ""
	// MatchEmailExact is case-insensitive equality of raw addresses
	MatchEmailExact MatchKind = "email_exact"
	// MatchEmailAlias is equality after alias-domain normalization
	MatchEmailAlias MatchKind = "email_alias"
	// MatchNameFuzzy is a similarity-ratio match on full names
	MatchNameFuzzy MatchKind = "name_fuzzy"
)

// String returns the string representation
func (k MatchKind) String() string {
	return string(k)
}
