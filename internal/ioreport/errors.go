package ioreport

import (
	"errors"
	"fmt"

	"github.com/gnames/authcheck/pkg/errcode"
	"github.com/gnames/gn"
)

func UnknownFormatError(format string) error {
	return &gn.Error{
		Code: errcode.ReportUnknownFormatError,
		Msg:  "Unknown report format <em>%s</em>, use table, csv or json",
		Vars: []any{format},
		Err:  errors.New("unknown report format " + format),
	}
}

func WriteError(target string, err error) error {
	return &gn.Error{
		Code: errcode.ReportWriteError,
		Msg:  "Cannot write report <em>%s</em>",
		Vars: []any{target},
		Err:  fmt.Errorf("cannot write report %s: %w", target, err),
	}
}
