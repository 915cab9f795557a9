package undofsm

import "github.com/comalice/undofsm/internal/primitives"

// Config describes the state graph a Machine drives.
type Config = primitives.MachineConfig

// StateConfig describes one state's event transitions.
type StateConfig = primitives.StateConfig

// ConfigBuilder builds a Config fluently.
type ConfigBuilder = primitives.MachineBuilder

// NewConfigBuilder starts a Config whose initial state is initial.
func NewConfigBuilder(initial string) *ConfigBuilder {
	return primitives.NewMachineBuilder(initial)
}

// NewStateConfig returns an empty state definition.
func NewStateConfig() *StateConfig {
	return primitives.NewStateConfig()
}

// ParseConfig decodes and validates a YAML or JSON machine definition.
func ParseConfig(data []byte) (Config, error) {
	return primitives.ParseConfig(data)
}

// LoadConfigFile reads, decodes and validates a machine definition file.
func LoadConfigFile(path string) (Config, error) {
	return primitives.LoadConfigFile(path)
}
