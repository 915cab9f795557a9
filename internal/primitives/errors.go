package primitives

import (
	"errors"
	"fmt"
)

var (
	ErrConfig            = errors.New("invalid machine configuration")
	ErrInvalidState      = errors.New("invalid state")
	ErrInvalidTransition = errors.New("invalid transition")
)

// ConfigError reports a configuration rejected at construction or load time.
type ConfigError struct {
	Reason string
	Err    error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("config: %s: %v", e.Reason, e.Err)
	}
	return "config: " + e.Reason
}

func (e *ConfigError) Is(target error) bool { return target == ErrConfig }

func (e *ConfigError) Unwrap() error { return e.Err }

// InvalidStateError reports a jump to a state that is not declared.
type InvalidStateError struct {
	State string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("state %q is not declared", e.State)
}

func (e *InvalidStateError) Is(target error) bool { return target == ErrInvalidState }

// InvalidTransitionError reports an event with no rule in the current state.
type InvalidTransitionError struct {
	State string
	Event string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("no transition from state %q for event %q", e.State, e.Event)
}

func (e *InvalidTransitionError) Is(target error) bool { return target == ErrInvalidTransition }

func configErrorf(format string, args ...any) *ConfigError {
	return &ConfigError{Reason: fmt.Sprintf(format, args...)}
}
