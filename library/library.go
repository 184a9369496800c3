package library

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/npillmayer/cnl"
	"github.com/npillmayer/cnl/chunk"
	"github.com/npillmayer/cnl/tactic"
)

// ErrUnknownLibrary is returned by Lookup for names not in the catalog.
var ErrUnknownLibrary = errors.New("unknown tactic library")

// StartState is the name of the state every library starts in.
const StartState = "START"

// Library is a named, frozen set of tactics.
type Library struct {
	Name     string
	Initial  cnl.State
	Registry *tactic.Registry
}

// Tactics returns the tactics of the library in order of precedence.
func (l *Library) Tactics() []*tactic.Tactic {
	return l.Registry.Tactics()
}

// Parser returns a chunk parser for documents written with this library.
func (l *Library) Parser() *chunk.Parser {
	return chunk.NewParser(l.Tactics(), l.Initial)
}

func (l *Library) String() string {
	return fmt.Sprintf("library %s (%d tactics)", l.Name, l.Registry.Size())
}

type entry struct {
	once    sync.Once
	lib     *Library
	define  func(*tactic.Registry)
	aliases []string
}

var catalog = map[string]*entry{
	"demo":   {define: defineDemo},
	"french": {define: defineFrench, aliases: []string{"fr"}},
}

func (e *entry) load(name string) *Library {
	e.once.Do(func() {
		r := tactic.NewRegistry()
		e.define(r)
		e.lib = &Library{
			Name:     name,
			Initial:  cnl.State{StartState},
			Registry: r.Freeze(),
		}
		tracer().Infof("loaded %v", e.lib)
	})
	return e.lib
}

// Demo returns the demo library.
func Demo() *Library {
	return catalog["demo"].load("demo")
}

// French returns the French library.
func French() *Library {
	return catalog["french"].load("french")
}

// Lookup finds a library by name or alias. Case is ignored.
func Lookup(name string) (*Library, error) {
	name = strings.ToLower(name)
	for n, e := range catalog {
		if n == name {
			return e.load(n), nil
		}
		for _, a := range e.aliases {
			if a == name {
				return e.load(n), nil
			}
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownLibrary, name)
}

// Names returns the names of all libraries, sorted.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for n := range catalog {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// constant returns a transformer producing fixed code.
func constant(code string) tactic.Transformer {
	return func(tactic.Captures) string {
		return code
	}
}

// format returns a transformer which fills in captures, in the order given
// by names.
func format(f string, names ...string) tactic.Transformer {
	return func(c tactic.Captures) string {
		args := make([]interface{}, len(names))
		for i, n := range names {
			args[i] = c.Get(n)
		}
		return fmt.Sprintf(f, args...)
	}
}
