package report

import (
	"strconv"
	"strings"
	"time"

	"github.com/gnames/authcheck/pkg/state"
)

// DatasetsTable lists imported datasets. The current one is marked with
// '*', the combined view marks none.
func DatasetsTable(s state.State) Table {
	res := Table{
		Kind: "datasets",
		Header: []string{
			"Current", "ID", "Label", "File", "Imported", "Papers", "Authors",
		},
		Rows: [][]string{},
	}
	for _, ds := range s.Datasets {
		mark := ""
		if ds.ID == s.CurrentDatasetID {
			mark = "*"
		}
		res.Rows = append(res.Rows, []string{
			mark, ds.ID, ds.Label, ds.FileName,
			ds.ImportedAt.Local().Format(time.DateTime),
			strconv.Itoa(len(ds.Submissions)),
			strconv.Itoa(len(ds.Authors)),
		})
	}
	return res
}

// MergesTable lists merge groups in the order they were created.
func MergesTable(s state.State) Table {
	res := Table{
		Kind:   "merges",
		Header: []string{"Primary Email", "Primary Name", "Merged", "Note"},
		Rows:   [][]string{},
	}
	for _, m := range s.AuthorMerges {
		merged := make([]string, len(m.MergedEmails))
		for i, email := range m.MergedEmails {
			merged[i] = email
			if i < len(m.MergedNames) && m.MergedNames[i] != "" {
				merged[i] = m.MergedNames[i] + " <" + email + ">"
			}
		}
		res.Rows = append(res.Rows, []string{
			m.PrimaryEmail, m.PrimaryName, strings.Join(merged, "; "), m.Note,
		})
	}
	return res
}
