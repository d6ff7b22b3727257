package iosheet

import (
	"errors"
	"fmt"

	"github.com/gnames/authcheck/pkg/errcode"
	"github.com/gnames/gn"
)

func ReadError(path string, err error) error {
	msg := "Cannot read sheet <em>%s</em>"
	return &gn.Error{
		Code: errcode.SheetReadError,
		Msg:  msg,
		Vars: []any{path},
		Err:  fmt.Errorf("cannot read sheet %s: %w", path, err),
	}
}

func HeaderNotFoundError(path string) error {
	msg := `Header row not found in <em>%s</em>

<em>How to fix:</em>
  - Make sure one of the rows has a <em>Paper ID</em> column`

	return &gn.Error{
		Code: errcode.SheetHeaderNotFoundError,
		Msg:  msg,
		Vars: []any{path},
		Err:  fmt.Errorf("no header row in %s", path),
	}
}

func UnsupportedFormatError(path string) error {
	msg := `Unsupported sheet format <em>%s</em>

<em>How to fix:</em>
  - Export the sheet as CSV (.csv) or tab-separated (.tsv)`

	return &gn.Error{
		Code: errcode.SheetUnsupportedFormatError,
		Msg:  msg,
		Vars: []any{path},
		Err:  errors.New("unsupported sheet format " + path),
	}
}
