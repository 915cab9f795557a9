// Package primitives provides the declarative data structures behind the
// FSM engine: the machine configuration, its validation, a fluent builder
// and YAML/JSON loading.
//
// Core invariants:
// - A validated MachineConfig names an Initial state that is declared
// - Every transition target is a declared state
// - Event names are non-empty
package primitives
