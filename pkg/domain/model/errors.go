package model

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for source adapter failures. Any of these aborts the
// run; no partial report is produced.
var (
	ErrRosterAuth          = goerr.New("roster authentication failed")
	ErrRosterFetch         = goerr.New("roster members fetch failed")
	ErrDirectoryCredential = goerr.New("directory credential error")
)
