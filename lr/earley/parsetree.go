package earley

import (
	"fmt"
	"sort"

	"github.com/npillmayer/cnl"
	"github.com/npillmayer/cnl/lr"
	"github.com/npillmayer/cnl/lr/scanner"
	"github.com/npillmayer/schuko/gconf"
)

// --- Derivation listener ---------------------------------------------------

// Listener is a type for walking a derivation.
type Listener interface {
	Reduce(rule *lr.Rule, rhs []*RuleNode, span cnl.Span, level int) interface{}
	Terminal(sym *lr.Symbol, token scanner.Token, span cnl.Span, level int) interface{}
}

// RuleNode represents a node occurring during a derivation walk.
type RuleNode struct {
	sym    *lr.Symbol
	Extent cnl.Span    // span of input symbols this rule reduced
	Value  interface{} // user defined value
}

// Symbol returns the grammar symbol a RuleNode refers to.
// It is either a terminal or the LHS of a reduced rule.
func (rnode *RuleNode) Symbol() *lr.Symbol {
	return rnode.sym
}

// --- Tree Walker -----------------------------------------------------------

// Derivations walks one derivation for every completed start rule at the
// current input position, in order of rule serial numbers. It uses a
// listener, which gets called for every terminal and for every non-terminal
// reduction. The root nodes of the derivations are returned.
func (p *Parser) Derivations(listener Listener) []*RuleNode {
	tracer().Debugf("=== Walk ===============================")
	var roots []*RuleNode
	for _, item := range p.completedStartItems() {
		root, ok := p.walk(item, p.Position(), walkset{}, listener, 0)
		if !ok {
			stuck(fmt.Sprintf("no derivation for completed item %v", item))
			continue
		}
		roots = append(roots, root)
	}
	tracer().Debugf("========================================")
	return roots
}

// WalkDerivation walks the first derivation of the input. It returns nil if
// the input has not been accepted.
func (p *Parser) WalkDerivation(listener Listener) *RuleNode {
	items := p.completedStartItems()
	if len(items) == 0 {
		return nil
	}
	root, ok := p.walk(items[0], p.Position(), walkset{}, listener, 0)
	if !ok {
		stuck(fmt.Sprintf("no derivation for completed item %v", items[0]))
		return nil
	}
	return root
}

/*
Walk backwards over the items of Earley columns.

Imagine we have an item like this ('a', 'b', and 'c' are symbols, and 'i' is an integer):

    Foo -> a b c •  (i)

The fact that this item even exists means the following items also exist somewhere:

    Foo ->   a   b • c  (i)
    Foo ->   a • b   c  (i)
    Foo -> • a   b   c  (i)

To advance an item one step, you need two things: an un-advanced version of the
item, and a completed something: either a completed item, or a successful scan.
Walking from right to left, for a non-terminal c ending at position j we look
for a completed item [c → … •, k] in column j, for which the un-advanced item
[Foo → a b • c, i] is present in column k. For a terminal, the un-advanced item
has to be present in column j-1.

Ambiguity is resolved by preferring the candidate with the lowest origin, then
the one with the lowest rule serial. The exception is the last symbol of a
left-recursive rule (L → L … x): here the candidate with the highest origin
wins, so lists derive as many repetitions as possible. Candidates which would lead to a cycle
within the derivation are skipped.
*/
func (p *Parser) walk(item lr.Item, pos int, active walkset,
	listener Listener, level int) (*RuleNode, bool) {
	//
	rule := item.Rule()
	rhs := rule.RHS()
	extent := cnl.Span{item.Origin, pos}
	key := walkKey{rule: rule.Serial, from: item.Origin, to: pos}
	if active.contains(key) {
		return nil, false
	}
	active.add(key)
	defer active.delete(key)
	tracer().Debugf("Walk from item=%s (%d…%d)", item, item.Origin, pos)
	ruleNodes := make([]*RuleNode, len(rhs)) // we will collect |RHS| children nodes
	if !p.walkRHS(item, len(rhs)-1, pos, ruleNodes, active, listener, level) {
		return nil, false
	}
	value := listener.Reduce(rule, ruleNodes, extent, level)
	tracer().Debugf("Tree node    %d|-----%s-----|%d", extent.From(), rule.LHS.Name, extent.To())
	return &RuleNode{sym: rule.LHS, Extent: extent, Value: value}, true
}

// walkRHS collects children for RHS symbols 0…n of item, where symbol n ends
// at input position pos. It backtracks over candidate completions.
func (p *Parser) walkRHS(item lr.Item, n int, pos int, nodes []*RuleNode, active walkset,
	listener Listener, level int) bool {
	//
	if n < 0 {
		return pos == item.Origin
	}
	B := item.Rule().RHS()[n]
	if B.IsTerminal() {
		if pos <= item.Origin {
			return false
		}
		prefix := lr.NewItem(item.Rule(), n, item.Origin)
		if !p.columns[pos-1].contains(prefix) || !B.Matches(p.tokens[pos-1]) {
			return false
		}
		span := cnl.Span{pos - 1, pos}
		value := listener.Terminal(B, p.tokens[pos-1], span, level+1)
		nodes[n] = &RuleNode{sym: B, Extent: span, Value: value}
		return p.walkRHS(item, n-1, pos-1, nodes, active, listener, level)
	}
	for _, cand := range p.candidates(item, n, pos) {
		child, ok := p.walk(cand, pos, active, listener, level+1)
		if !ok {
			continue
		}
		nodes[n] = child
		if p.walkRHS(item, n-1, cand.Origin, nodes, active, listener, level) {
			return true
		}
	}
	tracer().Debugf("no completion for %s in %v ending at %d", B, item, pos)
	return false
}

// candidates returns all items [B → … •, k] in column pos, where B is symbol
// #n of item's RHS and [item.rule, dot n, item.Origin] is present in column k.
func (p *Parser) candidates(item lr.Item, n int, pos int) []lr.Item {
	B := item.Rule().RHS()[n]
	prefix := lr.NewItem(item.Rule(), n, item.Origin)
	c := p.columns[pos]
	var R []lr.Item
	for i := 0; i < c.size(); i++ {
		jtem := c.item(i)
		if !itemCompletes(jtem, B) || jtem.Origin < item.Origin {
			continue
		}
		if n == 0 && jtem.Origin != item.Origin { // leftmost symbol must reach left side of span
			continue
		}
		if p.columns[jtem.Origin].contains(prefix) {
			R = append(R, jtem)
		}
	}
	repeat := n > 0 && n == len(item.Rule().RHS())-1 && isLeftRecursive(item.Rule())
	sort.SliceStable(R, func(i, j int) bool {
		if R[i].Origin != R[j].Origin {
			return (R[i].Origin < R[j].Origin) != repeat
		}
		return R[i].Rule().Serial < R[j].Rule().Serial
	})
	return R
}

func isLeftRecursive(rule *lr.Rule) bool {
	rhs := rule.RHS()
	return len(rhs) > 1 && rhs[0].Value == rule.LHS.Value
}

// Does item complete a rule with LHS B ?
func itemCompletes(item lr.Item, B *lr.Symbol) bool {
	return item.IsComplete() && item.Rule().LHS.Value == B.Value
}

func stuck(msg string) bool {
	tracer().Errorf(msg)
	if gconf.GetBool("panic-on-parser-stuck") {
		panic(`Earley-parser is stuck.

Configuration flag panic-on-parser-stuck is set to true. It is aimed at helping 
to debug a parser and do a post-mortem of why it got stuck. However, if this is
a production environment and you did not expect this to panic, please unset
panic-on-parser-stuck to its default (false).

` + msg)
	}
	return true
}
