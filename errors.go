package undofsm

import (
	"errors"

	"github.com/comalice/undofsm/internal/primitives"
)

// Error kinds. Each typed error matches its sentinel with errors.Is.
type (
	ConfigError            = primitives.ConfigError
	InvalidStateError      = primitives.InvalidStateError
	InvalidTransitionError = primitives.InvalidTransitionError
)

var (
	ErrConfig            = primitives.ErrConfig
	ErrInvalidState      = primitives.ErrInvalidState
	ErrInvalidTransition = primitives.ErrInvalidTransition
)

// IsConfigError reports whether err is or wraps a *ConfigError.
func IsConfigError(err error) bool {
	var e *ConfigError
	return errors.As(err, &e)
}

// IsInvalidStateError reports whether err is or wraps an *InvalidStateError.
func IsInvalidStateError(err error) bool {
	var e *InvalidStateError
	return errors.As(err, &e)
}

// IsInvalidTransitionError reports whether err is or wraps an *InvalidTransitionError.
func IsInvalidTransitionError(err error) bool {
	var e *InvalidTransitionError
	return errors.As(err, &e)
}
