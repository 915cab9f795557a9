package undofsm

import "log/slog"

// Option applies configuration to Machine via functional options pattern.
type Option func(*Machine)

// WithLogger sets the logger for the machine. Transitions are logged at Debug.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Machine) {
		if logger != nil {
			m.logger = logger
		}
	}
}
