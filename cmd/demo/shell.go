package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/comalice/undofsm"
)

const helpText = `commands:
  state              print the current state
  trigger <event>    follow a transition
  change <state>     jump to a state
  undo | redo        step through history
  reset              return to the initial state, keep history
  reset-full         return to the initial state, drop history
  states [event]     list all states, or those handling event
  history            print the history and redo stacks
  clear              drop history
  dot                print a Graphviz rendering
  dump               print the machine definition as YAML
  json               print the machine definition as JSON
  quit`

var errQuit = errors.New("quit")

// runShell reads commands from in until EOF, quit or ctx cancellation.
func runShell(ctx context.Context, m *undofsm.Machine, in io.Reader, out io.Writer) error {
	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- sc.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			fmt.Fprintln(out, "Shutting down gracefully...")
			return nil
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-scanErr:
					return err
				default:
					return nil
				}
			}
			if err := execute(m, line, out); err != nil {
				if errors.Is(err, errQuit) {
					return nil
				}
				fmt.Fprintf(out, "error: %v\n", err)
			}
		}
	}
}

func execute(m *undofsm.Machine, line string, out io.Writer) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "state":
		fmt.Fprintln(out, m.State())
	case "trigger", "change":
		if len(args) != 1 {
			return fmt.Errorf("usage: %s <name>", cmd)
		}
		var err error
		if cmd == "trigger" {
			err = m.Trigger(args[0])
		} else {
			err = m.ChangeState(args[0])
		}
		if err != nil {
			return err
		}
		fmt.Fprintln(out, m.State())
	case "undo":
		printStep(out, m.Undo(), m.State(), "nothing to undo")
	case "redo":
		printStep(out, m.Redo(), m.State(), "nothing to redo")
	case "reset":
		m.Reset()
		fmt.Fprintln(out, m.State())
	case "reset-full":
		m.ResetFull()
		fmt.Fprintln(out, m.State())
	case "states":
		if len(args) == 0 {
			fmt.Fprintln(out, strings.Join(m.States(), " "))
		} else {
			fmt.Fprintln(out, strings.Join(m.StatesFor(args[0]), " "))
		}
	case "history":
		fmt.Fprintf(out, "back: [%s]\nredo: [%s]\n", strings.Join(m.History(), " "), strings.Join(m.RedoStack(), " "))
	case "clear":
		m.ClearHistory()
	case "dot":
		fmt.Fprint(out, m.Visualize())
	case "dump":
		data, err := m.Config().MarshalYAMLBytes()
		if err != nil {
			return err
		}
		if _, err := out.Write(data); err != nil {
			return err
		}
	case "json":
		data, err := m.ExportJSON()
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(out, "%s\n", data); err != nil {
			return err
		}
	case "help":
		fmt.Fprintln(out, helpText)
	case "quit", "exit":
		return errQuit
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
	return nil
}

func printStep(out io.Writer, ok bool, state, miss string) {
	if !ok {
		fmt.Fprintln(out, miss)
		return
	}
	fmt.Fprintln(out, state)
}
