package tactic

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/npillmayer/cnl"
	"github.com/npillmayer/cnl/spec"
)

// --- Captures --------------------------------------------------------------

// Capture is the text captured by a reference. A reference occurring exactly
// once, outside of any iteration, captures a single string. All other
// references capture a list of strings, in order of occurrence.
type Capture struct {
	values []string
	list   bool
}

// Single creates a capture holding one string.
func Single(v string) Capture {
	return Capture{values: []string{v}}
}

// List creates a capture holding a list of strings.
func List(vs ...string) Capture {
	return Capture{values: append([]string{}, vs...), list: true}
}

// IsList is true for list captures.
func (c Capture) IsList() bool {
	return c.list
}

// Value returns the captured string. For lists, the values are joined by a
// space.
func (c Capture) Value() string {
	return strings.Join(c.values, " ")
}

// Values returns the captured strings. Single captures return a
// slice of length 1.
func (c Capture) Values() []string {
	return append([]string{}, c.values...)
}

// Equal reports whether two captures are of the same kind and hold the
// same strings.
func (c Capture) Equal(other Capture) bool {
	if c.list != other.list || len(c.values) != len(other.values) {
		return false
	}
	for i := range c.values {
		if c.values[i] != other.values[i] {
			return false
		}
	}
	return true
}

func (c Capture) String() string {
	if c.list {
		return fmt.Sprintf("%q", c.values)
	}
	return fmt.Sprintf("%q", c.Value())
}

// Captures maps reference names to captured text.
type Captures map[string]Capture

// Get returns the value of a capture, or "" if name has not been captured.
func (c Captures) Get(name string) string {
	if capt, ok := c[name]; ok {
		return capt.Value()
	}
	return ""
}

// List returns the values of a capture, or nil if name has not been captured.
func (c Captures) List(name string) []string {
	if capt, ok := c[name]; ok {
		return capt.Values()
	}
	return nil
}

// Names returns the names of all captures, sorted alphabetically.
func (c Captures) Names() []string {
	set := treeset.NewWithStringComparator()
	for name := range c {
		set.Add(name)
	}
	names := make([]string, 0, set.Size())
	for _, n := range set.Values() {
		names = append(names, n.(string))
	}
	return names
}

// Equal reports whether two sets of captures are equal.
func (c Captures) Equal(other Captures) bool {
	if len(c) != len(other) {
		return false
	}
	for name, capt := range c {
		if o, ok := other[name]; !ok || !capt.Equal(o) {
			return false
		}
	}
	return true
}

func (c Captures) String() string {
	var b strings.Builder
	b.WriteString("{")
	for i, name := range c.Names() {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s: %v", name, c[name])
	}
	b.WriteString("}")
	return b.String()
}

// --- Tactics ---------------------------------------------------------------

// Transformer creates output code from the captures of a match.
type Transformer func(Captures) string

// Tactic is a named pattern with a transformer. Tactics are created by
// registering them with a Registry.
type Tactic struct {
	Name        string
	Textual     string              // pattern as written by the author
	Spec        *spec.Specification // parsed pattern
	Transformer Transformer
	index       int       // order of registration
	frag        *fragment // compiled grammar fragment
}

// Index returns the position of the tactic within its registry. Lower
// indices take precedence if more than one tactic matches.
func (t *Tactic) Index() int {
	return t.index
}

// Code applies the transformer to captures. If the result ends with a
// period, a space is appended.
func (t *Tactic) Code(captures Captures) string {
	if t.Transformer == nil {
		return ""
	}
	code := t.Transformer(captures)
	if strings.HasSuffix(code, ".") {
		code += " "
	}
	return code
}

// IsFallback is true for tactics with empty content. They match the empty
// input and are used to change state where no other tactic applies.
func (t *Tactic) IsFallback() bool {
	return t.Spec.IsFallback()
}

// Structure returns the structural role of the tactic.
func (t *Tactic) Structure() cnl.Structure {
	return t.Spec.Footer.Structure
}

// Actions returns the state actions applied after a match.
func (t *Tactic) Actions() []cnl.Action {
	return t.Spec.Footer.Actions
}

// Filter returns the state filter of the tactic.
func (t *Tactic) Filter() spec.Filter {
	return t.Spec.Header.Filter
}

// Symbols returns the symbol table of the compiled grammar fragment.
func (t *Tactic) Symbols() *SymbolTable {
	if t.frag == nil {
		return nil
	}
	return t.frag.symbols
}

func (t *Tactic) String() string {
	name := t.Name
	if name == "" {
		name = "<anonymous>"
	}
	return fmt.Sprintf("%s%s", name, t.Spec)
}

// Result is a successful match of a tactic.
type Result struct {
	Tactic   *Tactic
	Captures Captures
}

// Code returns the output code for the match.
func (r Result) Code() string {
	return r.Tactic.Code(r.Captures)
}

// Match is the value a composed grammar reduces its start symbol to: a result,
// together with the parsing state after the tactic's actions have been applied.
type Match struct {
	Result
	State cnl.State
}
