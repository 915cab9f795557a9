// Package core provides the runtime core tier of the FSM engine.
// History tracks the linear back/forward stacks used for undo and redo.
// Not safe for concurrent use; it is owned by a single Machine.
package core

// History records visited states (back stack) and undone states (forward
// stack). Both stacks push and pop at the end; index 0 is the oldest entry.
type History struct {
	back    []string
	forward []string
}

// NewHistory creates an empty History.
func NewHistory() *History {
	return &History{}
}

// Record pushes a state that is being left onto the back stack.
func (h *History) Record(state string) {
	h.back = append(h.back, state)
}

// StepBack pops the most recent back entry and pushes current onto the
// forward stack. Returns false and changes nothing if the back stack is empty.
func (h *History) StepBack(current string) (string, bool) {
	prev, ok := pop(&h.back)
	if !ok {
		return "", false
	}
	h.forward = append(h.forward, current)
	return prev, true
}

// StepForward pops the most recent forward entry and pushes current onto the
// back stack. Returns false and changes nothing if the forward stack is empty.
func (h *History) StepForward(current string) (string, bool) {
	next, ok := pop(&h.forward)
	if !ok {
		return "", false
	}
	h.back = append(h.back, current)
	return next, true
}

// DropForward discards the forward stack.
func (h *History) DropForward() {
	h.forward = h.forward[:0]
}

// Clear discards both stacks.
func (h *History) Clear() {
	h.back = h.back[:0]
	h.forward = h.forward[:0]
}

// BackLen returns the depth of the back stack.
func (h *History) BackLen() int { return len(h.back) }

// ForwardLen returns the depth of the forward stack.
func (h *History) ForwardLen() int { return len(h.forward) }

// Back returns a copy of the back stack, oldest first.
func (h *History) Back() []string {
	return append([]string(nil), h.back...)
}

// Forward returns a copy of the forward stack, oldest first.
func (h *History) Forward() []string {
	return append([]string(nil), h.forward...)
}

func pop(stack *[]string) (string, bool) {
	s := *stack
	if len(s) == 0 {
		return "", false
	}
	top := s[len(s)-1]
	*stack = s[:len(s)-1]
	return top, true
}
