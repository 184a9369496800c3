package tactic

import (
	"sort"
	"strings"

	"github.com/npillmayer/cnl"
	"github.com/npillmayer/cnl/lr"
	"github.com/npillmayer/cnl/lr/earley"
	"github.com/npillmayer/cnl/lr/scanner"
)

// capture is a single occurrence of a reference within a match.
type capture struct {
	name, value string
}

// Captured text is trimmed of spaces, as spaces around a reference may be
// derived either by the reference or by the surrounding text.

// value is the value of a node in a derivation: the text it spans (with stop
// signals removed) and the references captured within it, left to right.
type value struct {
	text     string
	captures []capture
}

// matcher is a derivation listener creating Match values for a composed
// grammar.
type matcher struct{}

var _ earley.Listener = matcher{}

func (matcher) Terminal(sym *lr.Symbol, tok scanner.Token, span cnl.Span, level int) interface{} {
	if tok.IsStop() {
		return value{}
	}
	return value{text: tok.Lexeme}
}

func (matcher) Reduce(rule *lr.Rule, rhs []*earley.RuleNode, span cnl.Span, level int) interface{} {
	switch tag := rule.Tag.(type) {
	case *mainTag:
		r := rhs[0].Value.(Result)
		return Match{Result: r, State: cnl.Resolve(tag.state, r.Tactic.Actions()...)}
	case *topTag:
		v := concat(rhs)
		return Result{Tactic: tag.tactic, Captures: tag.tactic.frag.group(v.captures)}
	case *refTag:
		v := concat(rhs)
		return value{text: v.text, captures: []capture{{name: tag.name, value: strings.Trim(v.text, " ")}}}
	}
	return concat(rhs)
}

func concat(nodes []*earley.RuleNode) value {
	var b strings.Builder
	var caps []capture
	for _, n := range nodes {
		if v, ok := n.Value.(value); ok {
			b.WriteString(v.text)
			caps = append(caps, v.captures...)
		}
	}
	return value{text: b.String(), captures: caps}
}

// group collects the occurrences of references by name. A reference of
// single cardinality occurring once results in a single capture, everything
// else in a list.
func (frag *fragment) group(caps []capture) Captures {
	values := make(map[string][]string)
	for _, c := range caps {
		values[c.name] = append(values[c.name], c.value)
	}
	captures := make(Captures, len(values))
	for name, vs := range values {
		if frag.cardinality[name] == SingleCapture && len(vs) == 1 {
			captures[name] = Single(vs[0])
		} else {
			captures[name] = List(vs...)
		}
	}
	return captures
}

// Matches returns the matches of the input fed to p so far, ordered by
// precedence of their tactics. p has to be working on a grammar created by
// Compose.
func Matches(p *earley.Parser) []Match {
	roots := p.Derivations(matcher{})
	matches := make([]Match, 0, len(roots))
	for _, root := range roots {
		if m, ok := root.Value.(Match); ok {
			matches = append(matches, m)
		}
	}
	sortMatches(matches)
	return matches
}

func sortMatches(matches []Match) {
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Tactic.index < matches[j].Tactic.index
	})
}
