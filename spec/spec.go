package spec

import (
	"fmt"
	"strings"

	"github.com/npillmayer/cnl"
)

// --- State filters ---------------------------------------------------------

// FilterKind discriminates state filters.
type FilterKind int8

// Universal filters accept any state, exact filters a specific stack suffix.
const (
	Universal FilterKind = iota
	Exact
)

// Filter is the state filter of a tactic, determining from which parsing
// states a tactic is reachable.
type Filter struct {
	Kind   FilterKind
	States []string // for exact filters; empty means: only from the empty state
}

// UniversalFilter returns the filter '*'.
func UniversalFilter() Filter {
	return Filter{Kind: Universal}
}

// ExactFilter returns a filter for a stack ending with states.
// Calling it without arguments creates the empty filter.
func ExactFilter(states ...string) Filter {
	return Filter{Kind: Exact, States: states}
}

// IsEmpty is true for the empty filter.
func (f Filter) IsEmpty() bool {
	return f.Kind == Exact && len(f.States) == 0
}

// Name returns the grammar symbol tactics with this filter are reduced to.
// Tactics sharing a filter share a name.
func (f Filter) Name() string {
	if f.Kind == Universal {
		return "ANYTHING"
	}
	if len(f.States) == 0 {
		return "FILTER_DEFAULT"
	}
	return "FILTER:" + strings.Join(f.States, " ")
}

// Accepts reports whether a parsing state satisfies the filter.
func (f Filter) Accepts(state cnl.State) bool {
	if f.Kind == Universal {
		return true
	}
	if len(f.States) == 0 {
		return len(state) == 0
	}
	if len(f.States) > len(state) {
		return false
	}
	return state.Suffix(len(f.States)).Equal(f.States)
}

func (f Filter) String() string {
	if f.Kind == Universal {
		return "*"
	}
	return strings.Join(f.States, " ")
}

// --- Header and footer -----------------------------------------------------

// Header is the first section of a pattern.
type Header struct {
	Filter Filter
}

// Footer is the last section of a pattern.
type Footer struct {
	Structure cnl.Structure
	Actions   []cnl.Action
}

func (f Footer) String() string {
	var b strings.Builder
	switch f.Structure {
	case cnl.BeginOfParagraph:
		b.WriteByte('>')
	case cnl.EndOfParagraph:
		b.WriteByte('<')
	case cnl.LineEnd:
		b.WriteByte('#')
	}
	for _, a := range f.Actions {
		b.WriteString(a.String())
	}
	return b.String()
}

// --- Content nodes ---------------------------------------------------------

// Node is a content node of a pattern. It is one of *Text, *Reference,
// *Iteration, *Either or *Sequence.
type Node interface {
	fmt.Stringer
	isNode()
}

// Text is literal text. Every space in Value matches one or more spaces
// of input.
type Text struct {
	Value string
}

// Reference is a named capture of a run of text.
type Reference struct {
	Name string
}

// Iteration matches its body zero or more times.
type Iteration struct {
	Body Node
}

// Either is an ordered alternation.
type Either struct {
	Branches []Node
}

// Sequence is the body of a group holding more than one node.
type Sequence struct {
	Nodes []Node
}

func (*Text) isNode()      {}
func (*Reference) isNode() {}
func (*Iteration) isNode() {}
func (*Either) isNode()    {}
func (*Sequence) isNode()  {}

func (t *Text) String() string {
	return escape(t.Value)
}

func (r *Reference) String() string {
	return "|" + r.Name + "|"
}

func (it *Iteration) String() string {
	if e, ok := it.Body.(*Either); ok {
		return "[" + branches(e.Branches) + "]*"
	}
	return "[" + it.Body.String() + "]*"
}

func (e *Either) String() string {
	return "[" + branches(e.Branches) + "]"
}

func (s *Sequence) String() string {
	var b strings.Builder
	for _, n := range s.Nodes {
		b.WriteString(n.String())
	}
	return b.String()
}

func branches(nodes []Node) string {
	s := make([]string, len(nodes))
	for i, n := range nodes {
		s[i] = n.String()
	}
	return strings.Join(s, "/")
}

func escape(s string) string {
	var b strings.Builder
	for _, r := range s {
		if strings.ContainsRune(`|[]/\{}`, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// References lists the references inside a node, in left-to-right order.
// A name occurring more than once is listed more than once.
func References(n Node) []*Reference {
	var refs []*Reference
	var collect func(Node)
	collect = func(n Node) {
		switch x := n.(type) {
		case *Reference:
			refs = append(refs, x)
		case *Iteration:
			collect(x.Body)
		case *Either:
			for _, b := range x.Branches {
				collect(b)
			}
		case *Sequence:
			for _, c := range x.Nodes {
				collect(c)
			}
		}
	}
	collect(n)
	return refs
}

// --- Specification ---------------------------------------------------------

// Specification is the parsed form of a tactic pattern.
type Specification struct {
	Header  Header
	Content []Node
	Footer  Footer
}

// IsFallback is true for a specification with empty content. Fallback
// tactics match the empty input.
func (s *Specification) IsFallback() bool {
	return len(s.Content) == 0
}

// References lists all references of the content, in left-to-right order.
func (s *Specification) References() []*Reference {
	return References(&Sequence{Nodes: s.Content})
}

// String returns the canonical pattern for s.
func (s *Specification) String() string {
	return "{" + s.Header.Filter.String() + "|" + (&Sequence{Nodes: s.Content}).String() +
		"|" + s.Footer.String() + "}"
}
