package record

import (
	"fmt"

	"github.com/gnames/authcheck/pkg/errcode"
	"github.com/gnames/gn"
)

// NoDataError is returned when none of the rows has a paper identifier.
// It usually means the header was not detected or the column names do not
// match the expected ones.
func NoDataError(rowsNum int) error {
	msg := `No submissions found in <em>%d</em> rows

<em>Possible causes:</em>
  - The header row was not detected
  - The file uses different column names

<em>How to fix:</em>
  1. Make sure the sheet has a <em>Paper ID</em> column
  2. Make sure author data is in <em>Author Names</em>, <em>Author Emails</em>
     and <em>Authors</em> columns`

	return &gn.Error{
		Code: errcode.NoDataError,
		Msg:  msg,
		Vars: []any{rowsNum},
		Err:  fmt.Errorf("no valid rows among %d rows", rowsNum),
	}
}
