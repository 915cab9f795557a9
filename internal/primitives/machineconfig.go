// Package primitives defines the foundational data structures for the FSM engine.
//
// MachineConfig represents the top-level configuration of a machine: an
// optional ID, the initial state and a flat map of all states by name.
package primitives

import (
	"sort"
)

// MachineConfig defines the complete machine configuration.
type MachineConfig struct {
	ID      string                  `json:"id,omitempty" yaml:"id,omitempty"`
	Initial string                  `json:"initial" yaml:"initial"`
	States  map[string]*StateConfig `json:"states" yaml:"states"`
}

// Validate validates the entire machine configuration:
// - Non-empty Initial
// - Non-empty States
// - Initial exists in States
// - All individual states validate
// - All transition targets exist in States
func (m *MachineConfig) Validate() error {
	if len(m.States) == 0 {
		return configErrorf("states map is required and cannot be empty")
	}
	if m.Initial == "" {
		return configErrorf("initial state is required")
	}
	if _, ok := m.States[m.Initial]; !ok {
		return configErrorf("initial state %q not found in states", m.Initial)
	}

	for _, name := range m.StateNames() {
		state := m.States[name]
		if err := state.Validate(); err != nil {
			return &ConfigError{Reason: "state " + quote(name), Err: err}
		}
		for _, event := range state.Events() {
			target := state.Transitions[event]
			if _, ok := m.States[target]; !ok {
				return configErrorf("invalid transition target %q (state %q, event %q)", target, name, event)
			}
		}
	}

	return nil
}

// StateNames returns every declared state name in sorted order.
func (m *MachineConfig) StateNames() []string {
	names := make([]string, 0, len(m.States))
	for name := range m.States {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// StatesWithEvent returns the sorted names of states that define a
// transition for event. The result is never nil.
func (m *MachineConfig) StatesWithEvent(event string) []string {
	names := []string{}
	for name, state := range m.States {
		if _, ok := state.Target(event); ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// HasState reports whether name is declared.
func (m *MachineConfig) HasState(name string) bool {
	_, ok := m.States[name]
	return ok
}

// Target resolves the destination of event from state.
func (m *MachineConfig) Target(state, event string) (string, bool) {
	s, ok := m.States[state]
	if !ok {
		return "", false
	}
	return s.Target(event)
}

// Clone returns a deep copy that shares nothing with m.
func (m MachineConfig) Clone() MachineConfig {
	out := MachineConfig{
		ID:      m.ID,
		Initial: m.Initial,
		States:  make(map[string]*StateConfig, len(m.States)),
	}
	for name, state := range m.States {
		out.States[name] = state.Clone()
	}
	return out
}

func quote(s string) string {
	return `"` + s + `"`
}
