package earley

import (
	"errors"
	"testing"

	"github.com/npillmayer/cnl"
	"github.com/npillmayer/cnl/lr"
	"github.com/npillmayer/cnl/lr/scanner"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func exprGrammar(t *testing.T) *lr.Grammar {
	b := lr.NewGrammarBuilder("Expr")
	b.LHS("S").N("E").End()
	b.LHS("E").N("E").L('+').N("T").End()
	b.LHS("E").N("T").End()
	b.LHS("T").N("T").L('*').N("F").End()
	b.LHS("T").N("F").End()
	for _, d := range "0123456789" {
		b.LHS("F").L(d).End()
	}
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func feed(t *testing.T, p *Parser, input string) {
	t.Helper()
	s := scanner.Runes(input)
	for tok := s.NextToken(); tok.Type != scanner.EOF; tok = s.NextToken() {
		if err := p.Feed(tok); err != nil {
			t.Fatalf("feeding %q: %v", input, err)
		}
	}
}

type evaluator struct{}

func (evaluator) Terminal(sym *lr.Symbol, tok scanner.Token, span cnl.Span, level int) interface{} {
	return tok.Rune()
}

func (evaluator) Reduce(rule *lr.Rule, rhs []*RuleNode, span cnl.Span, level int) interface{} {
	switch len(rhs) {
	case 1:
		if r, ok := rhs[0].Value.(rune); ok {
			return int(r - '0')
		}
		return rhs[0].Value
	case 3:
		a, b := rhs[0].Value.(int), rhs[2].Value.(int)
		if rhs[1].Value.(rune) == '+' {
			return a + b
		}
		return a * b
	}
	return nil
}

func TestEarleyExpression(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cnl.lr")
	defer teardown()
	//
	g := exprGrammar(t)
	p := NewParser(g)
	if p.Accepted() {
		t.Errorf("empty input should not be accepted")
	}
	feed(t, p, "1+2*3")
	if !p.Accepted() {
		t.Fatalf("expected input to be accepted")
	}
	tracer().SetTraceLevel(tracing.LevelDebug)
	p.DumpChart()
	root := p.WalkDerivation(evaluator{})
	if root == nil {
		t.Fatalf("expected a derivation")
	}
	if v, ok := root.Value.(int); !ok || v != 7 {
		t.Errorf("expected 1+2*3 to evaluate to 7, got %v", root.Value)
	}
	if root.Extent != (cnl.Span{0, 5}) {
		t.Errorf("expected root to span 0…5, is %v", root.Extent)
	}
}

func TestEarleyNoParse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cnl.lr")
	defer teardown()
	//
	p := NewParser(exprGrammar(t))
	feed(t, p, "1+")
	err := p.Feed(scanner.CharToken('+', 2))
	if !errors.Is(err, ErrNoParse) {
		t.Fatalf("expected ErrNoParse, got %v", err)
	}
	if p.Position() != 2 {
		t.Errorf("parser should be left unchanged at position 2, is at %d", p.Position())
	}
	feed(t, p, "4")
	if !p.Accepted() {
		t.Errorf("expected 1+4 to be accepted after failed feed")
	}
}

func TestEarleySnapshots(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cnl.lr")
	defer teardown()
	//
	p := NewParser(exprGrammar(t))
	feed(t, p, "2*")
	snap := p.Save()
	feed(t, p, "3")
	if !p.Accepted() {
		t.Fatalf("expected 2*3 to be accepted")
	}
	clone := p.Clone()
	p.Restore(snap)
	if p.Position() != 2 || p.Accepted() {
		t.Errorf("restored parser should be at position 2, not accepting")
	}
	feed(t, p, "4+1")
	if v := p.WalkDerivation(evaluator{}).Value.(int); v != 9 {
		t.Errorf("expected 2*4+1 = 9, got %d", v)
	}
	if v := clone.WalkDerivation(evaluator{}).Value.(int); v != 6 {
		t.Errorf("clone should be unaffected by restore, expected 6, got %d", v)
	}
}

type counter struct {
	reduced []string
}

func (c *counter) Terminal(sym *lr.Symbol, tok scanner.Token, span cnl.Span, level int) interface{} {
	return tok.Lexeme
}

func (c *counter) Reduce(rule *lr.Rule, rhs []*RuleNode, span cnl.Span, level int) interface{} {
	c.reduced = append(c.reduced, rule.LHS.Name)
	s := ""
	for _, n := range rhs {
		if n.Value != nil {
			s += n.Value.(string)
		}
	}
	return s
}

func TestEarleyNullable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cnl.lr")
	defer teardown()
	//
	b := lr.NewGrammarBuilder("Nullable")
	b.LHS("S").N("A").N("B").L('x').N("A").End()
	b.LHS("A").L('a').N("A").End()
	b.LHS("A").Epsilon()
	b.LHS("B").Epsilon()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	p := NewParser(g)
	feed(t, p, "x")
	if !p.Accepted() {
		t.Fatalf("expected x to be accepted")
	}
	feed(t, p, "aa")
	if !p.Accepted() {
		t.Fatalf("expected xaa to be accepted")
	}
	c := &counter{}
	root := p.WalkDerivation(c)
	if root == nil || root.Value.(string) != "xaa" {
		t.Fatalf("expected derivation yielding xaa, got %v", root)
	}
	if c.reduced[len(c.reduced)-1] != "S" {
		t.Errorf("expected start symbol to be reduced last, got %v", c.reduced)
	}
}

func TestEarleyOpenItems(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cnl.lr")
	defer teardown()
	//
	b := lr.NewGrammarBuilder("Open")
	b.LHS("S").Lit("ab").End()
	b.LHS("S").Lit("ac").End()
	g, _ := b.Grammar()
	p := NewParser(g)
	feed(t, p, "a")
	open := p.Open()
	if len(open) != 2 {
		t.Fatalf("expected 2 open items, got %d", len(open))
	}
	expect := map[rune]bool{'b': true, 'c': true}
	for _, item := range open {
		if !expect[item.PeekSymbol().Rune] {
			t.Errorf("unexpected open item %v", item)
		}
	}
	if s := itemSetString(open); s == "" {
		t.Errorf("expected item set to print")
	}
}

func TestEarleyMultipleDerivations(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cnl.lr")
	defer teardown()
	//
	b := lr.NewGrammarBuilder("Ambig")
	b.SetStart("S")
	b.LHS("S").N("X").End()
	b.LHS("S").N("Y").End()
	b.LHS("X").Lit("ab").End()
	b.LHS("Y").L('a').Text().End()
	g, _ := b.Grammar()
	p := NewParser(g)
	feed(t, p, "ab")
	roots := p.Derivations(&counter{})
	if len(roots) != 2 {
		t.Fatalf("expected 2 derivations, got %d", len(roots))
	}
	for _, root := range roots {
		if root.Symbol().Name != "S" || root.Value.(string) != "ab" {
			t.Errorf("unexpected derivation root %v = %v", root.Symbol(), root.Value)
		}
	}
}

// lister collects the items of list L as a slice of strings.
type lister struct{}

func (lister) Terminal(sym *lr.Symbol, tok scanner.Token, span cnl.Span, level int) interface{} {
	return tok.Lexeme
}

func (lister) Reduce(rule *lr.Rule, rhs []*RuleNode, span cnl.Span, level int) interface{} {
	switch rule.LHS.Name {
	case "S":
		return rhs[0].Value
	case "L":
		if len(rhs) == 0 {
			return []string{}
		}
		return append(rhs[0].Value.([]string), rhs[1].Value.(string))
	}
	s := ""
	for _, n := range rhs {
		s += n.Value.(string)
	}
	return s
}

func TestEarleyRepetitions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cnl.lr")
	defer teardown()
	//
	b := lr.NewGrammarBuilder("List")
	b.SetStart("S")
	b.LHS("S").N("L").L('.').End()
	b.LHS("L").N("L").N("I").End()
	b.LHS("L").Epsilon()
	b.LHS("I").L('v').N("C").L(',').End()
	b.LHS("C").Text().N("C").End()
	b.LHS("C").Text().End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	p := NewParser(g)
	feed(t, p, "v1,v2,v3,.")
	root := p.WalkDerivation(lister{})
	if root == nil {
		t.Fatalf("expected input to be accepted")
	}
	items := root.Value.([]string)
	if len(items) != 3 || items[0] != "v1," || items[1] != "v2," || items[2] != "v3," {
		t.Errorf("expected one list item per repetition, got %v", items)
	}
}
