package primitives

import (
	"errors"
	"fmt"
	"sort"
)

// StateConfig defines one state and its outgoing event transitions.
// A state without transitions is terminal.
type StateConfig struct {
	Transitions map[string]string `json:"transitions,omitempty" yaml:"transitions,omitempty"`
}

// NewStateConfig creates an empty StateConfig.
func NewStateConfig() *StateConfig {
	return &StateConfig{}
}

// WithTransitions sets the event-to-target map.
func (s *StateConfig) WithTransitions(on map[string]string) *StateConfig {
	s.Transitions = make(map[string]string, len(on))
	for k, v := range on {
		s.Transitions[k] = v
	}
	return s
}

// AddTransition adds or replaces the transition for an event.
func (s *StateConfig) AddTransition(event, target string) *StateConfig {
	if s.Transitions == nil {
		s.Transitions = make(map[string]string)
	}
	s.Transitions[event] = target
	return s
}

// Target returns the destination for event, if any.
func (s *StateConfig) Target(event string) (string, bool) {
	if s == nil {
		return "", false
	}
	target, ok := s.Transitions[event]
	return target, ok
}

// Events returns the sorted event names handled by this state.
func (s *StateConfig) Events() []string {
	if s == nil {
		return nil
	}
	events := make([]string, 0, len(s.Transitions))
	for event := range s.Transitions {
		events = append(events, event)
	}
	sort.Strings(events)
	return events
}

// Clone returns a deep copy. A nil state clones to an empty one.
func (s *StateConfig) Clone() *StateConfig {
	out := NewStateConfig()
	if s != nil && s.Transitions != nil {
		out.WithTransitions(s.Transitions)
	}
	return out
}

// Validate checks the state's own fields. Targets are checked by MachineConfig.
func (s *StateConfig) Validate() error {
	if s == nil {
		return nil
	}
	for event, target := range s.Transitions {
		if event == "" {
			return errors.New("empty event name in transitions")
		}
		if target == "" {
			return fmt.Errorf("empty target for event %q", event)
		}
	}
	return nil
}
