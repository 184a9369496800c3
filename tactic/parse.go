package tactic

import (
	"fmt"

	"github.com/npillmayer/cnl"
	"github.com/npillmayer/cnl/lr/earley"
	"github.com/npillmayer/cnl/lr/scanner"
)

// Parsed is the result of ParseCNL.
type Parsed struct {
	Offset int // number of runes consumed
	Result
	State cnl.State // state after the tactic's actions
}

// ParseCNL finds the shortest prefix of text which matches a tactic
// reachable from state. Offsets are counted in runes.
//
// A match of the empty prefix is kept as a fallback only: it is returned
// if no non-empty prefix matches. If more than one tactic matches a prefix,
// the one registered first wins.
func ParseCNL(tactics []*Tactic, text string, state cnl.State) (Parsed, bool) {
	g, err := Compose(tactics, state)
	if err != nil {
		tracer().Errorf("cannot parse: %v", err)
		return Parsed{}, false
	}
	p := earley.NewParser(g)
	var fallback *Parsed
	if m := Matches(p); len(m) > 0 {
		fallback = &Parsed{Offset: 0, Result: m[0].Result, State: m[0].State}
	}
	runes := []rune(text)
	for i, r := range runes {
		if err := p.Feed(scanner.CharToken(r, i)); err != nil {
			break
		}
		if !p.Accepted() {
			continue
		}
		if m := Matches(p); len(m) > 0 {
			tracer().Debugf("%q matches %v", string(runes[:i+1]), m[0].Tactic)
			return Parsed{Offset: i + 1, Result: m[0].Result, State: m[0].State}, true
		}
	}
	if fallback != nil {
		return *fallback, true
	}
	return Parsed{}, false
}

// Chained is the result of ParseChained.
type Chained struct {
	Offset    int       // number of runes consumed
	Results   []Result  // matches in order
	Ends      []int     // Ends[i] is the offset where match i ends
	State     cnl.State // state after all matches
	Structure cnl.Structure
}

// Last returns the last match, if any.
func (c Chained) Last() (Result, bool) {
	if len(c.Results) == 0 {
		return Result{}, false
	}
	return c.Results[len(c.Results)-1], true
}

func (c Chained) String() string {
	return fmt.Sprintf("chain(%d matches, offset %d, ends %v, state %v)",
		len(c.Results), c.Offset, c.Ends, c.State)
}

// maxEmptyMatches limits the number of consecutive matches of the empty
// prefix within a chain.
const maxEmptyMatches = 64

// ParseChained repeatedly calls ParseCNL on the unparsed rest of text,
// threading the parsing state. It stops if no tactic matches, or, unless
// ignoreStructure is set, after a tactic with a structural role.
//
// Fallback tactics may match the empty prefix repeatedly. With trimEmptyEnd
// set, trailing matches ending at the same offset are trimmed to the first
// one and the state is recomputed. A chain also stops when a match of the
// empty prefix would occur a second time at the same offset in the same
// state.
func ParseChained(tactics []*Tactic, text string, state cnl.State,
	ignoreStructure, trimEmptyEnd bool) Chained {
	//
	runes := []rune(text)
	chain := Chained{State: state.Clone()}
	seen := make(map[string]bool)
	empty := 0
	for {
		parsed, ok := ParseCNL(tactics, string(runes[chain.Offset:]), chain.State)
		if !ok {
			break
		}
		if parsed.Offset == 0 {
			key := fmt.Sprintf("%d%v", chain.Offset, chain.State)
			if seen[key] || empty >= maxEmptyMatches {
				tracer().Debugf("chain stops at repeated empty match %v", parsed.Tactic)
				break
			}
			seen[key] = true
			empty++
		} else {
			empty = 0
		}
		chain.Offset += parsed.Offset
		chain.Ends = append(chain.Ends, chain.Offset)
		chain.State = parsed.State
		chain.Results = append(chain.Results, parsed.Result)
		if !ignoreStructure && parsed.Tactic.Structure() != cnl.NoStructure {
			break
		}
	}
	if n := len(chain.Ends); trimEmptyEnd && n > 0 {
		first := n - 1
		for first > 0 && chain.Ends[first-1] == chain.Ends[n-1] {
			first--
		}
		if first != n-1 {
			chain.Results = chain.Results[:first+1]
			chain.Ends = chain.Ends[:first+1]
			var actions []cnl.Action
			for _, r := range chain.Results {
				actions = append(actions, r.Tactic.Actions()...)
			}
			chain.State = cnl.Resolve(state, actions...)
		}
	}
	if last, ok := chain.Last(); ok {
		chain.Structure = last.Tactic.Structure()
	}
	return chain
}
