// Package record converts keyed spreadsheet rows into submissions.
package record

import (
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/gnames/authcheck/pkg/model"
	"github.com/gnames/authcheck/pkg/parse"
)

// Stats summarizes a conversion of rows to submissions.
type Stats struct {
	RowsNum        int
	SkippedNum     int
	SubmissionsNum int
	// UnknownNamesNum counts author positions that had an e-mail but no
	// name.
	UnknownNamesNum int
	// DroppedNamesNum counts names that had no e-mail to key them.
	DroppedNamesNum int
}

// Build converts a row into a submission. It returns false when the row
// has no usable paper identifier.
func Build(row model.Row) (model.Submission, bool) {
	if !hasPaperID(row) {
		return model.Submission{}, false
	}
	sub, _ := build(row)
	return sub, true
}

// BuildAll converts rows into submissions, skipping rows without a paper
// identifier. It returns NoDataError if no valid row remains.
func BuildAll(rows []model.Row) ([]model.Submission, Stats, error) {
	st := Stats{RowsNum: len(rows)}
	res := make([]model.Submission, 0, len(rows))
	for _, row := range rows {
		if !hasPaperID(row) {
			st.SkippedNum++
			continue
		}
		sub, bs := build(row)
		st.UnknownNamesNum += bs.unknown
		st.DroppedNamesNum += bs.dropped
		res = append(res, sub)
	}
	st.SubmissionsNum = len(res)

	if len(res) == 0 {
		return nil, st, NoDataError(st.RowsNum)
	}
	return res, st, nil
}

// PaperID parses a paper identifier. Spreadsheet readers often deliver
// numbers as "12.0", those are accepted when they hold an integer value.
func PaperID(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if i, err := strconv.Atoi(s); err == nil {
		return i, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return int(f), true
}

func hasPaperID(row model.Row) bool {
	_, ok := PaperID(row.Get(model.ColPaperID))
	return ok
}

type buildStats struct {
	unknown, dropped int
}

func build(row model.Row) (model.Submission, buildStats) {
	var bs buildStats
	id, _ := PaperID(row.Get(model.ColPaperID))

	names, namesIdx := parse.AuthorNames(row.Get(model.ColAuthorNames))
	emails, emailsIdx := parse.AuthorEmails(row.Get(model.ColAuthorEmails))
	orgs, orgsIdx := parse.AuthorOrganizations(row.Get(model.ColPaperAuthors))

	sub := model.Submission{
		PaperID:                    id,
		Title:                      row.Get(model.ColPaperTitle),
		Track:                      row.Get(model.ColTrackName),
		Status:                     row.Get(model.ColStatus),
		AuthorNames:                make([]string, 0, len(emails)),
		AuthorEmails:               make([]string, 0, len(emails)),
		AuthorOrganizations:        make([]string, 0, len(emails)),
		CorrespondingAuthorIndices: []int{},
		WarningAuthors:             []model.WarningAuthor{},
		Fields:                     copyRow(row),
	}

	corresponding := parse.MergeIndices(namesIdx, emailsIdx, orgsIdx)
	for i, email := range emails {
		name := entryAt(names, i)
		// an author without e-mail cannot be keyed
		if email == "" {
			if name != "" {
				bs.dropped++
			}
			continue
		}
		if name == "" {
			name = model.UnknownAuthor
			bs.unknown++
		}
		if slices.Contains(corresponding, i) {
			sub.CorrespondingAuthorIndices = append(
				sub.CorrespondingAuthorIndices, len(sub.AuthorEmails),
			)
		}
		sub.AuthorNames = append(sub.AuthorNames, name)
		sub.AuthorEmails = append(sub.AuthorEmails, email)
		sub.AuthorOrganizations = append(
			sub.AuthorOrganizations, entryAt(orgs, i),
		)
	}
	for _, name := range names[min(len(emails), len(names)):] {
		if name != "" {
			bs.dropped++
		}
	}

	return sub, bs
}

func entryAt(entries []string, i int) string {
	if i < len(entries) {
		return entries[i]
	}
	return ""
}

func copyRow(row model.Row) model.Row {
	res := make(model.Row, len(row))
	for k, v := range row {
		res[k] = v
	}
	return res
}
