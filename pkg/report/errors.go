package report

import (
	"fmt"

	"github.com/gnames/authcheck/pkg/errcode"
	"github.com/gnames/gn"
)

// UnknownKindError is returned for an unsupported report kind.
func UnknownKindError(kind string) error {
	msg := `Unknown report kind <em>%s</em>

Supported kinds: violations, authors, submissions, conflicts, summary`

	return &gn.Error{
		Code: errcode.ReportUnknownKindError,
		Msg:  msg,
		Vars: []any{kind},
		Err:  fmt.Errorf("unknown report kind %q", kind),
	}
}
