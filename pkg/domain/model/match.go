package model

import "github.com/aegee-muenchen/dirsync/pkg/domain/types"

// MatchResult is the outcome of matching one roster member against a
// collection of directory records. It is derived per run and never stored.
type MatchResult struct {
	Kind types.MatchKind
}

// Matched reports whether any strategy succeeded
func (r MatchResult) Matched() bool {
	return r.Kind != types.MatchNone
}

// Unmatched is the zero result
var Unmatched = MatchResult{Kind: types.MatchNone}

// MatchedBy builds a successful result
func MatchedBy(kind types.MatchKind) MatchResult {
	return MatchResult{Kind: kind}
}
