// Package undofsm is a finite-state-machine engine driven by a declarative
// configuration, with linear undo/redo over the transition history.
//
// A Machine is owned by a single caller and is not safe for concurrent use;
// callers sharing one across goroutines must serialize access.
package undofsm

import (
	"log/slog"

	"github.com/comalice/undofsm/internal/core"
	"github.com/comalice/undofsm/internal/production"
)

// Machine tracks the current state of a configured state graph.
type Machine struct {
	config  Config
	current string
	history *core.History
	logger  *slog.Logger
}

// New validates config and returns a Machine in the initial state.
// The configuration is copied; later changes to it have no effect.
func New(config Config, opts ...Option) (*Machine, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	m := &Machine{
		config:  config.Clone(),
		current: config.Initial,
		history: core.NewHistory(),
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.config.ID != "" {
		m.logger = m.logger.With("machine", m.config.ID)
	}
	return m, nil
}

// MustNew is like New but panics on an invalid configuration.
func MustNew(config Config, opts ...Option) *Machine {
	m, err := New(config, opts...)
	if err != nil {
		panic(err)
	}
	return m
}

// State returns the current state.
func (m *Machine) State() string {
	return m.current
}

// Initial returns the configured initial state.
func (m *Machine) Initial() string {
	return m.config.Initial
}

// Config returns a copy of the machine's configuration.
func (m *Machine) Config() Config {
	return m.config.Clone()
}

// ChangeState jumps to target regardless of transition rules. The previous
// state is recorded for Undo. The redo stack is kept: a direct jump is not
// treated as a new branch, unlike Trigger.
func (m *Machine) ChangeState(target string) error {
	if !m.config.HasState(target) {
		err := &InvalidStateError{State: target}
		m.logger.Debug("change state rejected", "from", m.current, "error", err)
		return err
	}
	m.moveTo(target, "change")
	return nil
}

// Trigger follows the transition for event from the current state and
// discards the redo stack.
func (m *Machine) Trigger(event string) error {
	target, ok := m.config.Target(m.current, event)
	if !ok {
		err := &InvalidTransitionError{State: m.current, Event: event}
		m.logger.Debug("trigger rejected", "from", m.current, "event", event, "error", err)
		return err
	}
	m.moveTo(target, "trigger")
	m.history.DropForward()
	return nil
}

// Reset returns to the initial state. History and redo stacks are kept, so
// Undo after Reset may return to a state visited before the reset.
func (m *Machine) Reset() {
	m.logger.Debug("reset", "from", m.current, "to", m.config.Initial)
	m.current = m.config.Initial
}

// ResetFull returns to the initial state and clears both stacks.
func (m *Machine) ResetFull() {
	m.Reset()
	m.history.Clear()
}

// States returns every configured state name, sorted.
func (m *Machine) States() []string {
	return m.config.StateNames()
}

// StatesFor returns the sorted names of states that have a transition for
// event. The result is empty, not nil, when none match.
func (m *Machine) StatesFor(event string) []string {
	return m.config.StatesWithEvent(event)
}

// Undo steps back to the previous state. It reports false and does nothing
// when the machine is in its initial state or the history is empty.
func (m *Machine) Undo() bool {
	if !m.CanUndo() {
		return false
	}
	prev, _ := m.history.StepBack(m.current)
	m.logger.Debug("undo", "from", m.current, "to", prev)
	m.current = prev
	return true
}

// Redo re-applies the most recently undone step. It reports false when there
// is nothing to redo.
func (m *Machine) Redo() bool {
	next, ok := m.history.StepForward(m.current)
	if !ok {
		return false
	}
	m.logger.Debug("redo", "from", m.current, "to", next)
	m.current = next
	return true
}

// CanUndo reports whether Undo would succeed.
func (m *Machine) CanUndo() bool {
	return m.current != m.config.Initial && m.history.BackLen() > 0
}

// CanRedo reports whether Redo would succeed.
func (m *Machine) CanRedo() bool {
	return m.history.ForwardLen() > 0
}

// ClearHistory empties the history and redo stacks.
func (m *Machine) ClearHistory() {
	m.history.Clear()
}

// History returns the back stack, oldest first.
func (m *Machine) History() []string {
	return m.history.Back()
}

// RedoStack returns the forward stack, oldest first.
func (m *Machine) RedoStack() []string {
	return m.history.Forward()
}

// Visualize returns a Graphviz DOT rendering with the current state highlighted.
func (m *Machine) Visualize() string {
	v := &production.DefaultVisualizer{}
	return v.ExportDOT(m.config, m.current)
}

// ExportJSON returns the machine's configuration as indented JSON.
func (m *Machine) ExportJSON() ([]byte, error) {
	v := &production.DefaultVisualizer{}
	return v.ExportJSON(m.config)
}

func (m *Machine) moveTo(target, op string) {
	m.history.Record(m.current)
	m.logger.Debug("transition", "op", op, "from", m.current, "to", target)
	m.current = target
}
