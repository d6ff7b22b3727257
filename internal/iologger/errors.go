package iologger

import (
	"fmt"

	"github.com/gnames/authcheck/pkg/errcode"
	"github.com/gnames/gn"
)

// OpenLogFileError is returned when the log file cannot be opened for
// appending.
func OpenLogFileError(path string, err error) error {
	msg := `Cannot open log file <em>%s</em>

Set <em>log.destination</em> to 'stderr' or 'stdout' in config.yaml,
or use AUTHCHECK_LOG_DESTINATION, to log without a file.`

	return &gn.Error{
		Code: errcode.OpenLogFileError,
		Msg:  msg,
		Vars: []any{path},
		Err:  fmt.Errorf("cannot open log file %s: %w", path, err),
	}
}
