// Package primitives includes builder helpers for MachineConfig.
package primitives

// MachineBuilder builds a MachineConfig fluently.
type MachineBuilder struct {
	config *MachineConfig
}

// NewMachineBuilder creates a new MachineBuilder with the given initial state.
func NewMachineBuilder(initial string) *MachineBuilder {
	return &MachineBuilder{
		config: &MachineConfig{
			Initial: initial,
			States:  make(map[string]*StateConfig),
		},
	}
}

// ID sets the machine label.
func (b *MachineBuilder) ID(id string) *MachineBuilder {
	b.config.ID = id
	return b
}

// State declares a state, or returns the existing one.
func (b *MachineBuilder) State(name string) *StateBuilder {
	s, ok := b.config.States[name]
	if !ok {
		s = NewStateConfig()
		b.config.States[name] = s
	}
	return &StateBuilder{state: s, mb: b}
}

// Build validates and returns a copy of the configuration.
func (b *MachineBuilder) Build() (MachineConfig, error) {
	if err := b.config.Validate(); err != nil {
		return MachineConfig{}, err
	}
	return b.config.Clone(), nil
}

// MustBuild is like Build but panics on an invalid configuration.
func (b *MachineBuilder) MustBuild() MachineConfig {
	config, err := b.Build()
	if err != nil {
		panic(err)
	}
	return config
}

// StateBuilder for fluent transitions.
type StateBuilder struct {
	state *StateConfig
	mb    *MachineBuilder
}

// Transition adds transition.
func (sb *StateBuilder) Transition(event, target string) *StateBuilder {
	sb.state.AddTransition(event, target)
	return sb
}

// State switches to (or declares) another state.
func (sb *StateBuilder) State(name string) *StateBuilder {
	return sb.mb.State(name)
}

// Done returns the parent builder.
func (sb *StateBuilder) Done() *MachineBuilder {
	return sb.mb
}
