package apperr

import (
	"context"

	"github.com/m-mizutani/ctxlog"
)

// Handle logs an unrecoverable application error. The CLI exits nonzero
// afterwards; reports are never printed partially.
func Handle(ctx context.Context, err error) {
	ctxlog.From(ctx).Error("reconciliation aborted", "error", err)
}
