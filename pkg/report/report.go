// Package report turns the reconciliation state into flat tables ready
// for export.
package report

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/gnames/authcheck/pkg/aggregate"
	"github.com/gnames/authcheck/pkg/model"
	"github.com/gnames/authcheck/pkg/state"
)

// Kind is a type of report.
type Kind string

const (
	Violations  Kind = "violations"
	Authors     Kind = "authors"
	Submissions Kind = "submissions"
	Conflicts   Kind = "conflicts"
	SummaryKind Kind = "summary"
)

// Kinds lists supported report kinds.
var Kinds = []Kind{Violations, Authors, Submissions, Conflicts, SummaryKind}

// Table is a report with a header and string cells.
type Table struct {
	Kind   Kind
	Header []string
	Rows   [][]string
}

// NewKind parses a report kind.
func NewKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if !slices.Contains(Kinds, k) {
		return "", UnknownKindError(s)
	}
	return k, nil
}

// Build creates a report of the given kind from a recomputed State.
func Build(s state.State, kind Kind, quota int) (Table, error) {
	switch kind {
	case Violations:
		return violations(s, quota), nil
	case Authors:
		return authors(s), nil
	case Submissions:
		return submissions(s), nil
	case Conflicts:
		return conflicts(s), nil
	case SummaryKind:
		return summary(s, quota), nil
	default:
		return Table{}, UnknownKindError(string(kind))
	}
}

func violations(s state.State, quota int) Table {
	res := Table{
		Kind: Violations,
		Header: []string{
			"Name", "Email", "Organization", "Papers", "Paper IDs",
			"Over Quota Paper IDs",
		},
		Rows: [][]string{},
	}
	for _, a := range s.Violators() {
		var over []int
		if len(a.PaperIDs) > quota {
			over = a.PaperIDs[quota:]
		}
		res.Rows = append(res.Rows, []string{
			a.Name, a.Email, a.Organization,
			strconv.Itoa(a.PaperCount),
			joinInts(a.PaperIDs),
			joinInts(over),
		})
	}
	return res
}

func authors(s state.State) Table {
	res := Table{
		Kind: Authors,
		Header: []string{
			"Name", "Email", "Organization", "Papers", "Paper IDs",
			"Has Warning", "Email Conflict", "Potential Duplicate",
		},
		Rows: [][]string{},
	}
	for _, a := range aggregate.Sorted(s.Authors) {
		res.Rows = append(res.Rows, []string{
			a.Name, a.Email, a.Organization,
			strconv.Itoa(a.PaperCount),
			joinInts(a.PaperIDs),
			yesNo(a.HasWarning),
			yesNo(a.HasEmailConflict),
			yesNo(a.HasPotentialDuplicate),
		})
	}
	return res
}

// submissions keeps the original columns and adds the warning
// annotation.
func submissions(s state.State) Table {
	header := slices.Clone(model.Columns)
	header = append(header, "Has Warning", "Warning Authors")
	res := Table{Kind: Submissions, Header: header, Rows: [][]string{}}

	for _, p := range s.Papers {
		row := make([]string, 0, len(header))
		for _, col := range model.Columns {
			row = append(row, p.Fields.Get(col))
		}
		if row[0] == "" {
			row[0] = strconv.Itoa(p.PaperID)
		}
		row = append(row, yesNo(p.HasWarning), warningAuthors(p))
		res.Rows = append(res.Rows, row)
	}
	return res
}

func conflicts(s state.State) Table {
	res := Table{
		Kind:   Conflicts,
		Header: []string{"Type", "Key", "Values"},
		Rows:   [][]string{},
	}
	for _, email := range sortedKeys(s.EmailConflicts) {
		res.Rows = append(res.Rows, []string{
			"email", email, strings.Join(s.EmailConflicts[email], "; "),
		})
	}
	for _, v := range s.NameConflicts {
		res.Rows = append(res.Rows, []string{
			"name", v.Name, strings.Join(v.Emails, "; "),
		})
	}
	return res
}

func summary(s state.State, quota int) Table {
	sum := state.Summarize(s, quota)
	view := "all datasets"
	if ds, ok := s.Dataset(s.CurrentDatasetID); ok {
		view = ds.Label
	}
	rows := [][]string{
		{"View", view},
		{"Quota", strconv.Itoa(quota)},
		{"Datasets", strconv.Itoa(sum.DatasetsNum)},
		{"Papers", strconv.Itoa(sum.PapersNum)},
		{"Authors", strconv.Itoa(sum.AuthorsNum)},
		{"Over quota", strconv.Itoa(sum.ViolatorsNum)},
		{"At quota", strconv.Itoa(sum.AtLimitNum)},
		{"Under quota", strconv.Itoa(sum.UnderLimitNum)},
		{"Papers with warnings", strconv.Itoa(sum.FlaggedPapersNum)},
		{"E-mail conflicts", strconv.Itoa(sum.EmailConflictsNum)},
		{"Name conflicts", strconv.Itoa(sum.NameConflictsNum)},
		{"Merges", strconv.Itoa(sum.MergesNum)},
		{"Potential duplicates", strconv.Itoa(sum.DuplicatesNum)},
	}
	return Table{Kind: SummaryKind, Header: []string{"Metric", "Value"}, Rows: rows}
}

// warningAuthors formats entries as "Name <email> (3 of 4)".
func warningAuthors(p model.Submission) string {
	res := make([]string, len(p.WarningAuthors))
	for i, w := range p.WarningAuthors {
		res[i] = fmt.Sprintf("%s <%s> (%d of %d)",
			w.Name, w.Email, w.PaperRank, w.PaperCount)
	}
	return strings.Join(res, "; ")
}

func joinInts(ints []int) string {
	res := make([]string, len(ints))
	for i, v := range ints {
		res[i] = strconv.Itoa(v)
	}
	return strings.Join(res, ", ")
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func sortedKeys(m map[string][]string) []string {
	res := make([]string, 0, len(m))
	for k := range m {
		res = append(res, k)
	}
	slices.Sort(res)
	return res
}
