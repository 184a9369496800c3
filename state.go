package cnl

import (
	"strings"

	"golang.org/x/exp/slices"
)

// --- Parsing state ---------------------------------------------------------

// State is the parsing state: a stack of opaque state names. The first
// element is the bottom of the stack, the last element is the top.
//
// States are values. Operations on a state never modify it, but return a new
// stack instead.
type State []string

// Clone returns a copy of s which shares no memory with s.
func (s State) Clone() State {
	if s == nil {
		return State{}
	}
	return slices.Clone(s)
}

// Equal reports whether two states hold the same names in the same order.
// A nil state equals an empty state.
func (s State) Equal(other State) bool {
	return slices.Equal(s, other)
}

// Top returns the topmost state name, or "" for an empty stack.
func (s State) Top() string {
	if len(s) == 0 {
		return ""
	}
	return s[len(s)-1]
}

// Suffix returns the n topmost entries of s.
func (s State) Suffix(n int) State {
	if n > len(s) {
		n = len(s)
	}
	return s[len(s)-n:]
}

func (s State) String() string {
	return "[" + strings.Join(s, " ") + "]"
}

// --- Actions ---------------------------------------------------------------

// ActionKind discriminates the two operations on a state stack.
type ActionKind int8

// Kinds of state actions.
const (
	PushAction ActionKind = iota
	PopAction
)

// Action is an operation on a parsing state. Tactics carry a list of actions
// which are applied after a successful match.
type Action struct {
	Kind  ActionKind
	Value string // name to push, unused for pop
}

// Push creates an action which pushes name onto the state stack.
func Push(name string) Action {
	return Action{Kind: PushAction, Value: name}
}

// Pop creates an action which removes the topmost state.
func Pop() Action {
	return Action{Kind: PopAction}
}

func (a Action) String() string {
	if a.Kind == PopAction {
		return "-"
	}
	return "+" + a.Value
}

// Resolve folds a list of actions over a state and returns the resulting
// state. state is never modified. Popping an empty stack is a no-op.
func Resolve(state State, actions ...Action) State {
	r := state.Clone()
	for _, a := range actions {
		switch a.Kind {
		case PopAction:
			if len(r) > 0 {
				r = r[:len(r)-1]
			}
		case PushAction:
			r = append(r, a.Value)
		}
	}
	if len(actions) > 0 {
		tracer().Debugf("resolve %v %v => %v", state, actions, r)
	}
	return r
}

// --- Structure -------------------------------------------------------------

// Structure tags a tactic as a structural boundary of the document.
type Structure int8

// Structural boundaries a tactic may mark.
const (
	NoStructure Structure = iota
	BeginOfParagraph
	EndOfParagraph
	LineEnd
)

func (s Structure) String() string {
	switch s {
	case BeginOfParagraph:
		return "begin_of_paragraph"
	case EndOfParagraph:
		return "end_of_paragraph"
	case LineEnd:
		return "line_end"
	}
	return "none"
}

// --- Spans -----------------------------------------------------------------

// Span is a small type for capturing a run of input positions. A span denotes
// a start position and the position just behind the end.
type Span [2]int // (x…y)

// From returns the start value of a span.
func (s Span) From() int {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() int {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() int {
	return s[1] - s[0]
}

// IsNull reports whether the span is empty.
func (s Span) IsNull() bool {
	return s[0] == s[1]
}
