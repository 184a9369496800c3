package predict

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/cnf/structhash"
	"github.com/npillmayer/cnl"
	"github.com/npillmayer/cnl/lr"
	"github.com/npillmayer/cnl/lr/earley"
	"github.com/npillmayer/cnl/lr/scanner"
	"github.com/npillmayer/cnl/tactic"
)

// DefaultMaxIterations is used if Predict is called with a non-positive
// number of iterations.
const DefaultMaxIterations = 32

// StepKind tells literal text from reference placeholders.
type StepKind int8

// Kinds of prediction steps.
const (
	Literal StepKind = iota
	Reference
)

// Step is a single element of a prediction. For references, Value is the
// name of the reference.
type Step struct {
	Kind  StepKind
	Value string
}

func (s Step) String() string {
	if s.Kind == Reference {
		return "<" + s.Value + ">"
	}
	return fmt.Sprintf("%q", s.Value)
}

// Steps is a prediction.
type Steps []Step

// Text renders a prediction, replacing references by their names in angle
// brackets.
func (s Steps) Text() string {
	var b strings.Builder
	for _, step := range s {
		if step.Kind == Reference {
			b.WriteString("<" + step.Value + ">")
		} else {
			b.WriteString(step.Value)
		}
	}
	return b.String()
}

func (s Steps) String() string {
	parts := make([]string, len(s))
	for i, step := range s {
		parts[i] = step.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// Predict returns possible continuations of text, parsed from state.
//
// Besides state itself, every state reachable from it by empty matches of
// fallback tactics is tried. The result is false if text cannot be parsed
// from any of these states. A successful parse may well result in an empty
// list of predictions.
func Predict(tactics []*tactic.Tactic, text string, state cnl.State, maxIter int) ([]Steps, bool) {
	if maxIter <= 0 {
		maxIter = DefaultMaxIterations
	}
	candidates := []cnl.State{state}
	chain := tactic.ParseChained(tactics, "", state, false, false)
	s := state
	for _, r := range chain.Results {
		s = cnl.Resolve(s, r.Tactic.Actions()...)
		candidates = append(candidates, s)
	}
	var all []Steps
	parsed := false
	for _, c := range candidates {
		steps, ok := predictFrom(tactics, text, c, maxIter)
		if !ok {
			tracer().Debugf("%q cannot be parsed from state %v", text, c)
			continue
		}
		parsed = true
		all = append(all, steps...)
	}
	if !parsed {
		return nil, false
	}
	return dedupe(all), true
}

// seed is a prediction in progress.
type seed struct {
	snap      earley.Snapshot
	steps     Steps
	completed bool
}

func predictFrom(tactics []*tactic.Tactic, text string, state cnl.State, maxIter int) ([]Steps, bool) {
	g, err := tactic.Compose(tactics, state)
	if err != nil {
		tracer().Errorf("cannot predict: %v", err)
		return nil, false
	}
	p := earley.NewParser(g)
	for i, r := range []rune(text) {
		if err := p.Feed(scanner.CharToken(r, i)); err != nil {
			return nil, false
		}
	}
	origin := p.Save()
	accepted := p.Accepted()
	seeds := []seed{{snap: origin, completed: accepted}}
	if p.Feed(scanner.StopToken(p.Position())) == nil {
		seeds = append(seeds, seed{snap: p.Save(), completed: p.Accepted()})
	}
	for n := 0; n < maxIter && len(seeds) > 0; n++ {
		var next []seed
		for _, s := range seeds {
			if s.completed && len(s.steps) > 0 {
				next = append(next, s)
				continue
			}
			next = append(next, expand(p, s)...)
		}
		seeds = dedupeSeeds(next)
	}
	if len(seeds) == 0 {
		return []Steps{}, accepted
	}
	predictions := make([]Steps, 0, len(seeds))
	for _, s := range seeds {
		if len(s.steps) == 1 && s.steps[0].Kind == Literal && s.steps[0].Value == " " {
			continue
		}
		predictions = append(predictions, s.steps)
	}
	return predictions, true
}

// expand extends a seed by one step for every open item at its position.
func expand(p *earley.Parser, s seed) []seed {
	p.Restore(s.snap)
	var out []seed
	for _, item := range p.Open() {
		sym := item.PeekSymbol()
		if sym.Class == lr.Literal && !tactic.IsLeadRule(item.Rule()) {
			p.Restore(s.snap)
			stop := scanner.StopToken(p.Position())
			if p.Feed(stop) != nil {
				p.Restore(s.snap)
			}
			if p.Feed(scanner.CharToken(sym.Rune, p.Position())) != nil {
				continue
			}
			out = append(out, s.extend(p, Step{Kind: Literal, Value: string(sym.Rune)}))
		} else if name, ok := tactic.ReferenceOf(item.Rule()); ok && item.Dot() == 0 &&
			sym.Name == tactic.CaptureSymbol {
			p.Restore(s.snap)
			if p.Feed(scanner.StopToken(p.Position())) != nil {
				continue
			}
			out = append(out, s.extend(p, Step{Kind: Reference, Value: name}))
		}
	}
	return out
}

// extend creates a successor seed from the current parser state.
func (s seed) extend(p *earley.Parser, step Step) seed {
	steps := make(Steps, len(s.steps), len(s.steps)+1)
	copy(steps, s.steps)
	return seed{
		snap:      p.Save(),
		steps:     merge(append(steps, step)),
		completed: p.Accepted(),
	}
}

var whitespace = regexp.MustCompile(`[ \t]+`)

// merge joins adjacent literal steps, collapsing runs of whitespace.
func merge(steps Steps) Steps {
	var out Steps
	for _, step := range steps {
		if n := len(out); n > 0 && step.Kind == Literal && out[n-1].Kind == Literal {
			out[n-1].Value += step.Value
		} else {
			out = append(out, step)
		}
	}
	for i := range out {
		if out[i].Kind == Literal {
			out[i].Value = whitespace.ReplaceAllString(out[i].Value, " ")
		}
	}
	return out
}

func keyOf(steps Steps) string {
	h, err := structhash.Hash(steps, 1)
	if err != nil {
		return steps.String()
	}
	return h
}

// dedupeSeeds keeps the first seed for every list of steps.
func dedupeSeeds(seeds []seed) []seed {
	seen := make(map[string]bool, len(seeds))
	out := seeds[:0]
	for _, s := range seeds {
		k := keyOf(s.steps)
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, s)
	}
	return out
}

func dedupe(all []Steps) []Steps {
	seen := make(map[string]bool, len(all))
	out := make([]Steps, 0, len(all))
	for _, steps := range all {
		k := keyOf(steps)
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, steps)
	}
	return out
}
