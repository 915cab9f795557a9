package primitives

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ParseConfig decodes a YAML (or JSON) machine definition and validates it.
// Unknown fields are rejected.
func ParseConfig(data []byte) (MachineConfig, error) {
	var config MachineConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&config); err != nil {
		if errors.Is(err, io.EOF) {
			return MachineConfig{}, configErrorf("empty document")
		}
		return MachineConfig{}, &ConfigError{Reason: "yaml unmarshal", Err: err}
	}
	if err := config.Validate(); err != nil {
		return MachineConfig{}, err
	}
	return config, nil
}

// LoadConfigFile reads and parses a machine definition from disk.
func LoadConfigFile(path string) (MachineConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return MachineConfig{}, fmt.Errorf("read %s: %w", path, err)
	}
	config, err := ParseConfig(data)
	if err != nil {
		return MachineConfig{}, fmt.Errorf("load %s: %w", path, err)
	}
	return config, nil
}

// MarshalYAMLBytes encodes the configuration as YAML.
func (m MachineConfig) MarshalYAMLBytes() ([]byte, error) {
	data, err := yaml.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("yaml marshal: %w", err)
	}
	return data, nil
}
