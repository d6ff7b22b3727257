package iostore

import (
	"errors"
	"fmt"

	"github.com/gnames/authcheck/pkg/errcode"
	"github.com/gnames/gn"
)

// OpenError is returned when a store cannot be opened or migrated.
func OpenError(backend, name string, err error) error {
	msg := `Cannot open <em>%s</em> store <em>%s</em>

<em>How to fix:</em>
  - Check store settings in <em>~/.config/authcheck/config.yaml</em>
  - For postgres make sure the database exists and is running`

	return &gn.Error{
		Code: errcode.StoreOpenError,
		Msg:  msg,
		Vars: []any{backend, name},
		Err:  fmt.Errorf("cannot open %s store %s: %w", backend, name, err),
	}
}

// LoadError is returned when a snapshot cannot be read.
func LoadError(name string, err error) error {
	return &gn.Error{
		Code: errcode.StoreLoadError,
		Msg:  "Cannot load saved state from <em>%s</em>",
		Vars: []any{name},
		Err:  fmt.Errorf("cannot load snapshot from %s: %w", name, err),
	}
}

// SaveError is returned when a snapshot cannot be written.
func SaveError(name string, err error) error {
	return &gn.Error{
		Code: errcode.StoreSaveError,
		Msg:  "Cannot save state to <em>%s</em>",
		Vars: []any{name},
		Err:  fmt.Errorf("cannot save snapshot to %s: %w", name, err),
	}
}

// UnknownBackendError is returned for an unsupported store backend.
func UnknownBackendError(backend string) error {
	return &gn.Error{
		Code: errcode.StoreUnknownBackendError,
		Msg:  "Unknown store backend <em>%s</em>, use sqlite or postgres",
		Vars: []any{backend},
		Err:  errors.New("unknown store backend " + backend),
	}
}
