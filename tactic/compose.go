package tactic

import (
	"errors"
	"fmt"

	"github.com/npillmayer/cnl"
	"github.com/npillmayer/cnl/lr"
	"github.com/npillmayer/cnl/spec"
	"github.com/npillmayer/schuko/gconf"
)

// ErrMixedRegistries is returned when composing tactics from different
// registries, as their grammar symbols may clash.
var ErrMixedRegistries = errors.New("tactics from different registries")

// mainTag tags the alternatives of the start symbol. It carries the parsing
// state the grammar has been composed for.
type mainTag struct {
	state cnl.State
}

// ReachableFilters returns the state filters which are reachable from
// state: the universal filter, one exact filter for every non-empty suffix of
// the state stack, and the empty filter if the stack is empty.
func ReachableFilters(state cnl.State) []spec.Filter {
	filters := []spec.Filter{spec.UniversalFilter()}
	for n := len(state); n > 0; n-- {
		filters = append(filters, spec.ExactFilter(state.Suffix(n)...))
	}
	if len(state) == 0 {
		filters = append(filters, spec.ExactFilter())
	}
	return filters
}

// Compose creates a grammar from the fragments of a list of tactics. The
// grammar's start symbol "main" derives every tactic reachable from state.
//
// If configuration flag 'cnl-dump-grammar' is set, the grammar will be
// written to the trace.
func Compose(tactics []*Tactic, state cnl.State) (*lr.Grammar, error) {
	b := lr.NewGrammarBuilder("cnl")
	b.SetStart(StartSymbol)
	b.AddAll(sharedProductions())
	indices := make(map[int]*Tactic, len(tactics))
	defined := make(map[string]bool)
	for _, t := range tactics {
		if other, ok := indices[t.index]; ok && other != t {
			return nil, fmt.Errorf("composing %v and %v: %w", other, t, ErrMixedRegistries)
		} else if ok {
			continue // listed twice
		}
		indices[t.index] = t
		b.AddAll(t.frag.productions)
		defined[t.frag.start] = true
	}
	tag := &mainTag{state: state.Clone()}
	for _, f := range ReachableFilters(state) {
		if !defined[f.Name()] {
			continue
		}
		b.LHS(StartSymbol).N(f.Name()).Tag(tag).End()
	}
	g, err := b.Grammar()
	if err != nil {
		return nil, err
	}
	if gconf.GetBool("cnl-dump-grammar") {
		g.Dump()
	}
	return g, nil
}
