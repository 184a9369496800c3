package lr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/npillmayer/cnl/lr/scanner"
	"golang.org/x/tools/container/intsets"
)

// --- Symbols ---------------------------------------------------------------

// SymbolClass categorizes grammar symbols.
type SymbolClass int8

// Symbol classes. Every class except NonTerminal denotes a terminal.
const (
	NonTerminal SymbolClass = iota
	Literal                 // a single rune
	Text                    // any rune of text
	TextOrStop              // any rune of text, or the stop signal
)

// Symbol is a grammar symbol. Value is a serial ID, unique within its grammar.
type Symbol struct {
	Name  string
	Value int
	Class SymbolClass
	Rune  rune // for literals
}

// IsTerminal returns true if this symbol represents a terminal.
func (s *Symbol) IsTerminal() bool {
	return s.Class != NonTerminal
}

// Matches reports whether an input token is accepted by a terminal symbol.
// Non-terminals match nothing.
func (s *Symbol) Matches(tok scanner.Token) bool {
	switch s.Class {
	case Literal:
		return tok.Type == scanner.Char && tok.Rune() == s.Rune
	case Text:
		return tok.Type == scanner.Char
	case TextOrStop:
		return tok.Type == scanner.Char || tok.Type == scanner.Stop
	}
	return false
}

func (s *Symbol) String() string {
	return s.Name
}

// Names for terminal symbol classes.
const (
	TextName       = "TEXT"
	TextOrStopName = "TEXT|STOP"
)

func literalName(r rune) string {
	return fmt.Sprintf("%q", r)
}

// --- Rules -----------------------------------------------------------------

// Rule is a type for rules of a grammar. Rules cannot be shared between grammars.
type Rule struct {
	Serial int         // order number of this rule within a grammar
	LHS    *Symbol     // symbol of left hand side
	rhs    []*Symbol   // right hand side
	Tag    interface{} // client data, interpreted by derivation listeners
}

// RHS returns the right-hand-side of a rule.
func (r *Rule) RHS() []*Symbol {
	return r.rhs
}

// IsEps returns true if r is an epsilon-production.
func (r *Rule) IsEps() bool {
	return len(r.rhs) == 0
}

func (r *Rule) String() string {
	return fmt.Sprintf("%s ::= %v", r.LHS, r.rhs)
}

// --- Grammar ---------------------------------------------------------------

// Grammar is a type for a grammar. Usually created using a GrammarBuilder.
type Grammar struct {
	Name      string
	rules     *arraylist.List    // rules in order of definition
	symbols   map[string]*Symbol // all symbols by name
	bySerial  []*Symbol          // all symbols by value
	lhsRules  map[int][]*Rule    // rules by LHS symbol value
	start     *Symbol
	nullables intsets.Sparse
}

func newGrammar(name string) *Grammar {
	return &Grammar{
		Name:     name,
		rules:    arraylist.New(),
		symbols:  make(map[string]*Symbol),
		lhsRules: make(map[int][]*Rule),
	}
}

// Start returns the start symbol of the grammar.
func (g *Grammar) Start() *Symbol {
	return g.start
}

// Size returns the number of rules in the grammar.
func (g *Grammar) Size() int {
	return g.rules.Size()
}

// Rule gets a grammar rule by serial number.
func (g *Grammar) Rule(no int) *Rule {
	r, ok := g.rules.Get(no)
	if !ok {
		return nil
	}
	return r.(*Rule)
}

// RulesFor returns all rules with LHS sym, in order of definition.
func (g *Grammar) RulesFor(sym *Symbol) []*Rule {
	return g.lhsRules[sym.Value]
}

// Symbol returns the symbol with a given name, or nil.
func (g *Grammar) Symbol(name string) *Symbol {
	return g.symbols[name]
}

// SymbolByValue returns the symbol with serial ID v, or nil.
func (g *Grammar) SymbolByValue(v int) *Symbol {
	if v < 0 || v >= len(g.bySerial) {
		return nil
	}
	return g.bySerial[v]
}

// IsNullable reports whether sym derives the empty string.
func (g *Grammar) IsNullable(sym *Symbol) bool {
	return !sym.IsTerminal() && g.nullables.Has(sym.Value)
}

// EachNonTerminal iterates over all non-terminal symbols of the grammar,
// in order of creation.
func (g *Grammar) EachNonTerminal(mapper func(sym *Symbol)) {
	for _, sym := range g.bySerial {
		if !sym.IsTerminal() {
			mapper(sym)
		}
	}
}

// EachRule iterates over all rules of the grammar, in order of definition.
func (g *Grammar) EachRule(mapper func(r *Rule)) {
	g.rules.Each(func(_ int, r interface{}) {
		mapper(r.(*Rule))
	})
}

// Dump is a debugging helper, writing all rules to the trace.
func (g *Grammar) Dump() {
	tracer().Debugf("--- %s --------------------------------------------", g.Name)
	tracer().Debugf("start symbol is %s", g.start)
	g.EachRule(func(r *Rule) {
		tracer().Debugf("%3d: %s", r.Serial, r)
	})
	tracer().Debugf("-------------------------------------------------------")
}

// String returns all rules, one per line.
func (g *Grammar) String() string {
	var b strings.Builder
	g.EachRule(func(r *Rule) {
		fmt.Fprintf(&b, "%3d: %s\n", r.Serial, r)
	})
	return b.String()
}

// computeNullables computes the set of nullable non-terminals with a
// fixpoint iteration.
func (g *Grammar) computeNullables() {
	changed := true
	for changed {
		changed = false
		g.EachRule(func(r *Rule) {
			if g.nullables.Has(r.LHS.Value) {
				return
			}
			for _, sym := range r.rhs {
				if !g.IsNullable(sym) {
					return
				}
			}
			g.nullables.Insert(r.LHS.Value)
			changed = true
		})
	}
}

// ErrUndefinedSymbol is returned for grammars referencing a non-terminal
// which has no rule.
var ErrUndefinedSymbol = errors.New("undefined non-terminal")
