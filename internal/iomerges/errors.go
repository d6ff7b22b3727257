package iomerges

import (
	"fmt"

	"github.com/gnames/authcheck/pkg/errcode"
	"github.com/gnames/gn"
)

func ReadError(path string, err error) error {
	msg := `Cannot read merges from <em>%s</em>

<em>Expected format:</em>
  - primary_email: ann@uni.edu
    primary_name: Ann Lee
    merged:
      - email: alee@gmail.com
        name: A. Lee`

	return &gn.Error{
		Code: errcode.MergesFileReadError,
		Msg:  msg,
		Vars: []any{path},
		Err:  fmt.Errorf("cannot read merges %s: %w", path, err),
	}
}

func WriteError(path string, err error) error {
	return &gn.Error{
		Code: errcode.MergesFileWriteError,
		Msg:  "Cannot write merges to <em>%s</em>",
		Vars: []any{path},
		Err:  fmt.Errorf("cannot write merges %s: %w", path, err),
	}
}
