package merge

import (
	"fmt"

	"github.com/gnames/authcheck/pkg/errcode"
	"github.com/gnames/gn"
)

// OverlapError is returned when an e-mail would belong to two merge
// groups at once.
func OverlapError(email, primary1, primary2 string) error {
	msg := `E-mail <em>%s</em> already belongs to the merge of <em>%s</em>

<em>How to fix:</em>
  - Remove it from that merge first, or
  - Add the other identities to the existing merge instead`

	return &gn.Error{
		Code: errcode.MergeOverlapError,
		Msg:  msg,
		Vars: []any{email, primary1},
		Err: fmt.Errorf("email %s is in merges of %s and %s",
			email, primary1, primary2),
	}
}

// InvalidError is returned for a merge group that breaks its invariants.
func InvalidError(primary, reason string) error {
	msg := "Invalid merge for <em>%s</em>: %s"

	return &gn.Error{
		Code: errcode.MergeInvalidError,
		Msg:  msg,
		Vars: []any{primary, reason},
		Err:  fmt.Errorf("invalid merge %q: %s", primary, reason),
	}
}

// NotFoundError is returned when no merge group contains the e-mail.
func NotFoundError(email string) error {
	msg := "E-mail <em>%s</em> is not part of any merge"

	return &gn.Error{
		Code: errcode.MergeNotFoundError,
		Msg:  msg,
		Vars: []any{email},
		Err:  fmt.Errorf("email %s is not merged", email),
	}
}
