package state

import (
	"errors"
	"fmt"

	"github.com/gnames/authcheck/pkg/errcode"
	"github.com/gnames/gn"
)

// DatasetNotFoundError is returned for an unknown dataset ID.
func DatasetNotFoundError(id string) error {
	msg := `Dataset <em>%s</em> not found

<em>How to fix:</em>
  - Run <em>authcheck datasets</em> to see imported datasets`

	return &gn.Error{
		Code: errcode.DatasetNotFoundError,
		Msg:  msg,
		Vars: []any{id},
		Err:  fmt.Errorf("dataset %q not found", id),
	}
}

// EmptyEmailError is returned when an action needs an e-mail and gets
// none.
func EmptyEmailError() error {
	return &gn.Error{
		Code: errcode.EmptyEmailError,
		Msg:  "E-mail is empty",
		Err:  errors.New("empty email"),
	}
}
