package lr

import (
	"fmt"
)

// --- Productions -----------------------------------------------------------

// Term is a plain data representation of a right-hand-side symbol.
type Term struct {
	Class SymbolClass
	Name  string // for non-terminals
	Rune  rune   // for literals
}

// N is a term for non-terminal name.
func N(name string) Term {
	return Term{Class: NonTerminal, Name: name}
}

// L is a term for the literal r.
func L(r rune) Term {
	return Term{Class: Literal, Rune: r}
}

// AnyText is a term matching any rune of text.
func AnyText() Term {
	return Term{Class: Text}
}

// AnyTextOrStop is a term matching any rune of text, or the stop signal.
func AnyTextOrStop() Term {
	return Term{Class: TextOrStop}
}

func (t Term) String() string {
	switch t.Class {
	case Literal:
		return literalName(t.Rune)
	case Text:
		return TextName
	case TextOrStop:
		return TextOrStopName
	}
	return t.Name
}

// Production is a plain data representation of a rule. Productions may be
// stored and added to different grammar builders.
type Production struct {
	LHS string
	RHS []Term
	Tag interface{}
}

func (p Production) String() string {
	return fmt.Sprintf("%s ::= %v", p.LHS, p.RHS)
}

// --- Grammar Builder -------------------------------------------------------

// GrammarBuilder is a builder type for grammars.
//
// A typical usage is:
//
//    b := lr.NewGrammarBuilder("G")
//    b.LHS("S").N("A").L('a').End()
//    b.LHS("A").Epsilon()
//    g, err := b.Grammar()
//
// The LHS of the first rule is the start symbol, unless another start symbol
// is set with SetStart.
type GrammarBuilder struct {
	g       *Grammar
	used    map[string]bool // non-terminals referenced on a RHS
	defined map[string]bool // non-terminals with at least one rule
}

// NewGrammarBuilder gets a new grammar builder, given the name of the grammar to build.
func NewGrammarBuilder(gname string) *GrammarBuilder {
	return &GrammarBuilder{
		g:       newGrammar(gname),
		used:    make(map[string]bool),
		defined: make(map[string]bool),
	}
}

func (gb *GrammarBuilder) symbol(t Term) *Symbol {
	name := t.String()
	if sym, ok := gb.g.symbols[name]; ok {
		return sym
	}
	sym := &Symbol{
		Name:  name,
		Value: len(gb.g.bySerial),
		Class: t.Class,
		Rune:  t.Rune,
	}
	gb.g.symbols[name] = sym
	gb.g.bySerial = append(gb.g.bySerial, sym)
	return sym
}

// SetStart sets the start symbol of the grammar.
func (gb *GrammarBuilder) SetStart(name string) *GrammarBuilder {
	gb.g.start = gb.symbol(N(name))
	return gb
}

// LHS starts a rule given the name of its left hand side symbol.
func (gb *GrammarBuilder) LHS(name string) *RuleBuilder {
	lhs := gb.symbol(N(name))
	if gb.g.start == nil {
		gb.g.start = lhs
	}
	return &RuleBuilder{gb: gb, rule: &Rule{LHS: lhs}}
}

// Add appends a rule for a production.
func (gb *GrammarBuilder) Add(p Production) *Rule {
	rb := gb.LHS(p.LHS)
	for _, t := range p.RHS {
		rb.term(t)
	}
	rb.Tag(p.Tag)
	return rb.End()
}

// AddAll appends rules for a list of productions.
func (gb *GrammarBuilder) AddAll(ps []Production) {
	for _, p := range ps {
		gb.Add(p)
	}
}

func (gb *GrammarBuilder) appendRule(r *Rule) *Rule {
	r.Serial = gb.g.rules.Size()
	gb.g.rules.Add(r)
	gb.g.lhsRules[r.LHS.Value] = append(gb.g.lhsRules[r.LHS.Value], r)
	gb.defined[r.LHS.Name] = true
	for _, sym := range r.rhs {
		if !sym.IsTerminal() {
			gb.used[sym.Name] = true
		}
	}
	return r
}

// Grammar returns the (completed) grammar. It returns an error if a
// non-terminal is referenced, but has no rules. The start symbol need not
// have rules; such a grammar accepts nothing.
func (gb *GrammarBuilder) Grammar() (*Grammar, error) {
	if gb.g.start == nil {
		return nil, fmt.Errorf("grammar %s has no start symbol", gb.g.Name)
	}
	for name := range gb.used {
		if !gb.defined[name] {
			return nil, fmt.Errorf("grammar %s: %w: %s", gb.g.Name, ErrUndefinedSymbol, name)
		}
	}
	gb.g.computeNullables()
	return gb.g, nil
}

// --- Rule Builder ----------------------------------------------------------

// RuleBuilder is a builder type for rules.
type RuleBuilder struct {
	gb   *GrammarBuilder
	rule *Rule
}

func (rb *RuleBuilder) term(t Term) *RuleBuilder {
	rb.rule.rhs = append(rb.rule.rhs, rb.gb.symbol(t))
	return rb
}

// N appends a non-terminal to the builder.
func (rb *RuleBuilder) N(name string) *RuleBuilder {
	return rb.term(N(name))
}

// L appends a literal to the builder.
func (rb *RuleBuilder) L(r rune) *RuleBuilder {
	return rb.term(L(r))
}

// Lit appends one literal per rune of s.
func (rb *RuleBuilder) Lit(s string) *RuleBuilder {
	for _, r := range s {
		rb.term(L(r))
	}
	return rb
}

// Text appends a terminal matching any rune of text.
func (rb *RuleBuilder) Text() *RuleBuilder {
	return rb.term(AnyText())
}

// TextOrStop appends a terminal matching any rune of text, or the stop signal.
func (rb *RuleBuilder) TextOrStop() *RuleBuilder {
	return rb.term(AnyTextOrStop())
}

// Tag attaches client data to the rule.
func (rb *RuleBuilder) Tag(tag interface{}) *RuleBuilder {
	rb.rule.Tag = tag
	return rb
}

// End a rule.
func (rb *RuleBuilder) End() *Rule {
	return rb.gb.appendRule(rb.rule)
}

// Epsilon sets epsilon as the RHS of a production.
// This must be called directly after rb.LHS(...).
// It closes the rule, thus no call to End() or EOF() must follow.
func (rb *RuleBuilder) Epsilon() *Rule {
	rb.rule.rhs = nil
	return rb.gb.appendRule(rb.rule)
}
