// Package production provides production integrations for the FSM engine:
// Graphviz DOT and JSON export of machine configurations.
package production

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/comalice/undofsm/internal/primitives"
)

// DefaultVisualizer renders machine configurations.
type DefaultVisualizer struct{}

// ExportDOT generates Graphviz DOT source for the machine. The current state
// is filled and the initial state is double-circled. Output is deterministic.
func (v *DefaultVisualizer) ExportDOT(config primitives.MachineConfig, current string) string {
	name := config.ID
	if name == "" {
		name = "FSM"
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "digraph %q {\n", name)
	buf.WriteString(`  rankdir=LR;
  node [shape=circle, fontsize=10];
  edge [fontsize=9];
`)

	states := config.StateNames()
	for _, state := range states {
		buf.WriteString(renderState(state, state == config.Initial, state == current))
	}

	for _, edge := range collectEdges(config) {
		fmt.Fprintf(&buf, "  %q -> %q [label=%q];\n", edge.From, edge.To, edge.Label)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// ExportJSON serializes the machine config to JSON.
func (v *DefaultVisualizer) ExportJSON(config primitives.MachineConfig) ([]byte, error) {
	return json.MarshalIndent(config, "", "  ")
}

// Edge represents a transition edge.
type Edge struct {
	From  string
	To    string
	Label string
}

// collectEdges collects all transitions, ordered by source then event.
func collectEdges(config primitives.MachineConfig) []Edge {
	var edges []Edge
	for _, from := range config.StateNames() {
		state := config.States[from]
		for _, event := range state.Events() {
			edges = append(edges, Edge{
				From:  from,
				To:    state.Transitions[event],
				Label: event,
			})
		}
	}
	return edges
}

func renderState(id string, initial, active bool) string {
	attrs := ""
	if initial {
		attrs += " shape=doublecircle"
	}
	if active {
		attrs += " style=filled fillcolor=lightgreen"
	}
	return fmt.Sprintf("  %q [label=%q%s];\n", id, id, attrs)
}
