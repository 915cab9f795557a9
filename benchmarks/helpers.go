// Package benchmarks provides shared helpers for benchmark tests.
package benchmarks

import (
	"fmt"

	"github.com/comalice/undofsm"
)

// GenFlatConfig creates a flat machine with n states cycling via "tick" events.
// Every state also jumps back to s0 on "home".
func GenFlatConfig(n int) undofsm.Config {
	if n < 1 {
		n = 1
	}
	b := undofsm.NewConfigBuilder("s0").ID(fmt.Sprintf("flat_%d", n))
	for i := 0; i < n; i++ {
		b.State(fmt.Sprintf("s%d", i)).
			Transition("tick", fmt.Sprintf("s%d", (i+1)%n)).
			Transition("home", "s0")
	}
	return b.MustBuild()
}

// GenConfigYAML generates YAML bytes for a flat config of the given size.
func GenConfigYAML(numStates int) []byte {
	data, err := GenFlatConfig(numStates).MarshalYAMLBytes()
	if err != nil {
		panic(err)
	}
	return data
}
