package model

import (
	"fmt"
	"sort"
)

// Record is the display variant over the three record kinds that can
// appear in a report: RosterMember, DirectoryUser and
// DirectoryGroupMember all implement it.
type Record interface {
	DisplayLabel() string
	SortKey() string
}

// Report is one named difference list plus the size of the collection it
// was computed from. Immutable once built.
type Report struct {
	Title     string
	Unmatched []Record
	Total     int
}

// NewReport builds a report with its unmatched records sorted by SortKey
// so the output is deterministic and diffable
func NewReport(title string, unmatched []Record, total int) *Report {
	sorted := make([]Record, len(unmatched))
	copy(sorted, unmatched)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].SortKey() < sorted[j].SortKey()
	})
	return &Report{
		Title:     title,
		Unmatched: sorted,
		Total:     total,
	}
}

// MatchedCount returns how many records of the source collection matched
func (r *Report) MatchedCount() int {
	return r.Total - len(r.Unmatched)
}

// Summary renders the human-readable "X/Y" matched counter
func (r *Report) Summary() string {
	return fmt.Sprintf("%d/%d", r.MatchedCount(), r.Total)
}

// Empty reports whether every record matched
func (r *Report) Empty() bool {
	return len(r.Unmatched) == 0
}
