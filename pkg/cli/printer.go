package cli

import (
	"fmt"
	"io"

	"github.com/aegee-muenchen/dirsync/pkg/domain/model"
	"github.com/aegee-muenchen/dirsync/pkg/usecase"
)

// printer renders reconciliation reports for a human operator. Output
// ordering is deterministic: reports sort their records by email.
type printer struct {
	w io.Writer
}

func newPrinter(w io.Writer) *printer {
	return &printer{w: w}
}

// section prints one report: headline plus record lines when something is
// unmatched, a celebratory line otherwise
func (p *printer) section(report *model.Report, headline, emptyLine string) {
	if report.Empty() {
		fmt.Fprintln(p.w, emptyLine)
	} else {
		fmt.Fprintln(p.w, headline)
		for _, record := range report.Unmatched {
			fmt.Fprintf(p.w, "* %s\n", record.DisplayLabel())
		}
	}
	fmt.Fprintln(p.w)
}

// MembersSync prints the missing/extra reports for the members group
func (p *printer) MembersSync(result *usecase.MembersSyncResult, policy model.SyncPolicy) {
	p.section(result.Missing,
		fmt.Sprintf("Members missing from %s (matched %s members):", policy.MembersGroup, result.Missing.Summary()),
		fmt.Sprintf("All MyAEGEE members included in %s!", policy.MembersGroup),
	)
	p.section(result.Extra,
		fmt.Sprintf("Extra users in %s (matched %s users):", policy.MembersGroup, result.Extra.Summary()),
		fmt.Sprintf("No extra users in %s!", policy.MembersGroup),
	)
}

// ActivesSync prints the account and actives-group reports
func (p *printer) ActivesSync(result *usecase.ActivesSyncResult, policy model.SyncPolicy) {
	p.section(result.MissingAccounts,
		fmt.Sprintf("Members without directory account (matched %s users):", result.MissingAccounts.Summary()),
		"All MyAEGEE members have a directory account!",
	)
	p.section(result.ExtraAccounts,
		fmt.Sprintf("Extra users in the directory (matched %s users):", result.ExtraAccounts.Summary()),
		"No extra users in the directory!",
	)
	p.section(result.NotInActives,
		fmt.Sprintf("Directory users not included in %s (found %s active users):", policy.ActivesGroup, result.NotInActives.Summary()),
		fmt.Sprintf("All directory users included in %s!", policy.ActivesGroup),
	)
}
