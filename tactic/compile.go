package tactic

import (
	"fmt"

	"github.com/npillmayer/cnl/lr"
	"github.com/npillmayer/cnl/spec"
)

// Names of the grammar symbols shared by all tactics.
const (
	StartSymbol   = "main"
	Space1Symbol  = "SPACE1"  // exactly one space
	Space0Symbol  = "SPACE0"  // zero or more spaces
	CaptureSymbol = "CAPTURE" // text up to the end of input or a stop signal
	LeadSymbol    = "LEAD"    // spaces in front of a tactic
)

// Cardinality tells whether a reference captures a single string or a list.
type Cardinality int8

// Cardinalities of references.
const (
	SingleCapture Cardinality = iota
	ListCapture
)

type cardinalities map[string]Cardinality

// with returns a copy of c with an occurrence of reference name added.
// The first occurrence outside of iterations is single, every other
// occurrence turns the reference into a list.
func (c cardinalities) with(name string, inIteration bool) cardinalities {
	next := make(cardinalities, len(c)+1)
	for k, v := range c {
		next[k] = v
	}
	if _, seen := c[name]; seen || inIteration {
		next[name] = ListCapture
	} else {
		next[name] = SingleCapture
	}
	return next
}

// fragment is the compiled grammar of a single tactic.
type fragment struct {
	start       string // name of the filter symbol
	productions []lr.Production
	cardinality cardinalities
	symbols     *SymbolTable
}

// Rule tags. Derivation listeners use them to build match values.
type (
	refTag  struct{ name string }
	topTag  struct{ tactic *Tactic }
	leadTag struct{}
)

// IsLeadRule is true for rules consuming spaces in front of a tactic.
func IsLeadRule(r *lr.Rule) bool {
	_, ok := r.Tag.(leadTag)
	return ok
}

// ReferenceOf returns the name of the reference a rule captures, if any.
func ReferenceOf(r *lr.Rule) (string, bool) {
	if t, ok := r.Tag.(*refTag); ok {
		return t.name, true
	}
	return "", false
}

// sharedProductions are the productions every composed grammar contains.
//
//    SPACE1  → ' '
//    SPACE0  → SPACE1 SPACE0 | ε
//    CAPTURE → TEXT CAPTURE | TEXT|STOP
//    LEAD    → ' ' LEAD | ε
//
func sharedProductions() []lr.Production {
	return []lr.Production{
		{LHS: Space1Symbol, RHS: []lr.Term{lr.L(' ')}},
		{LHS: Space0Symbol, RHS: []lr.Term{lr.N(Space1Symbol), lr.N(Space0Symbol)}},
		{LHS: Space0Symbol},
		{LHS: CaptureSymbol, RHS: []lr.Term{lr.AnyText(), lr.N(CaptureSymbol)}},
		{LHS: CaptureSymbol, RHS: []lr.Term{lr.AnyTextOrStop()}},
		{LHS: LeadSymbol, RHS: []lr.Term{lr.L(' '), lr.N(LeadSymbol)}, Tag: leadTag{}},
		{LHS: LeadSymbol, Tag: leadTag{}},
	}
}

// compile creates the grammar fragment for a tactic. The fragment's start
// rule has the tactic's filter symbol as its LHS. Non-fallback tactics may
// be preceded by spaces.
func compile(t *Tactic) *fragment {
	c := &compiler{symtab: NewSymbolTable(fmt.Sprintf("t%d", t.index))}
	frag := &fragment{
		start:   t.Filter().Name(),
		symbols: c.symtab,
	}
	var rhs []lr.Term
	if !t.IsFallback() {
		rhs = append(rhs, lr.N(LeadSymbol))
	}
	var prods []lr.Production
	card := cardinalities{}
	for _, n := range t.Spec.Content {
		sym, ps, cd := c.node(n, false, card)
		rhs = append(rhs, lr.N(sym))
		prods = append(prods, ps...)
		card = cd
	}
	top := lr.Production{LHS: frag.start, RHS: rhs, Tag: &topTag{tactic: t}}
	frag.productions = append([]lr.Production{top}, prods...)
	frag.cardinality = card
	tracer().Debugf("compiled %v into %d productions", t, len(frag.productions))
	return frag
}

// compiler is a visitor over pattern nodes. For every node it returns the
// symbol deriving the node, the productions for it, and the cardinalities of
// references including those of the node.
type compiler struct {
	symtab *SymbolTable
}

func (c *compiler) node(n spec.Node, inIteration bool, card cardinalities) (string, []lr.Production, cardinalities) {
	switch n := n.(type) {
	case *spec.Text:
		sym, p := c.text(n)
		return sym, []lr.Production{p}, card
	case *spec.Reference:
		tag := c.symtab.DefineTag(ReferenceTag, n.Name)
		p := lr.Production{
			LHS: tag.Name(),
			RHS: []lr.Term{lr.N(CaptureSymbol)},
			Tag: &refTag{name: n.Name},
		}
		return tag.Name(), []lr.Production{p}, card.with(n.Name, inIteration)
	case *spec.Iteration:
		tag := c.symtab.DefineTag(IterationTag, nil)
		inner, ps, cd := c.node(n.Body, true, card)
		prods := []lr.Production{
			{LHS: tag.Name()},
			{LHS: tag.Name(), RHS: []lr.Term{lr.N(tag.Name()), lr.N(inner)}},
		}
		return tag.Name(), append(prods, ps...), cd
	case *spec.Either:
		tag := c.symtab.DefineTag(EitherTag, len(n.Branches))
		var prods, sub []lr.Production
		for _, branch := range n.Branches {
			sym, ps, cd := c.node(branch, inIteration, card)
			prods = append(prods, lr.Production{LHS: tag.Name(), RHS: []lr.Term{lr.N(sym)}})
			sub = append(sub, ps...)
			card = cd
		}
		return tag.Name(), append(prods, sub...), card
	case *spec.Sequence:
		tag := c.symtab.DefineTag(SequenceTag, nil)
		var rhs []lr.Term
		var sub []lr.Production
		for _, m := range n.Nodes {
			sym, ps, cd := c.node(m, inIteration, card)
			rhs = append(rhs, lr.N(sym))
			sub = append(sub, ps...)
			card = cd
		}
		p := lr.Production{LHS: tag.Name(), RHS: rhs}
		return tag.Name(), append([]lr.Production{p}, sub...), card
	}
	panic(fmt.Sprintf("unknown pattern node type %T", n))
}

// text creates a symbol for a text node. Characters become literals, every
// space matches one or more spaces.
func (c *compiler) text(t *spec.Text) (string, lr.Production) {
	tag := c.symtab.DefineTag(TextTag, t.Value)
	var rhs []lr.Term
	for _, r := range t.Value {
		if r == ' ' {
			rhs = append(rhs, lr.N(Space1Symbol), lr.N(Space0Symbol))
		} else {
			rhs = append(rhs, lr.L(r))
		}
	}
	return tag.Name(), lr.Production{LHS: tag.Name(), RHS: rhs}
}
