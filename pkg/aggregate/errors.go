package aggregate

import (
	"fmt"

	"github.com/gnames/authcheck/pkg/errcode"
	"github.com/gnames/gn"
)

// NoAuthorsError is returned when submissions exist but none of them
// carries an author e-mail.
func NoAuthorsError(subsNum int) error {
	msg := `No authors found in <em>%d</em> submissions

<em>How to fix:</em>
  - Make sure author e-mails are in the <em>Author Emails</em> column
  - Make sure e-mails are separated by <em>;</em>`

	return &gn.Error{
		Code: errcode.NoAuthorsError,
		Msg:  msg,
		Vars: []any{subsNum},
		Err:  fmt.Errorf("no authors in %d submissions", subsNum),
	}
}
