package earley

import (
	"errors"
	"fmt"
	"sort"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/npillmayer/cnl/lr"
	"github.com/npillmayer/cnl/lr/scanner"
	"golang.org/x/tools/container/intsets"
)

// ErrNoParse is returned when fed input cannot continue any derivation.
var ErrNoParse = errors.New("no parse")

// Parser is an Earley parser for a grammar. Create one with NewParser.
type Parser struct {
	g       *lr.Grammar
	columns []*column       // columns[k] holds the items after k tokens
	tokens  []scanner.Token // tokens[k] is the token between columns k and k+1
}

// NewParser creates an Earley parser for a grammar. The parser is
// initialized at input position 0, i.e. clients may inspect the chart for
// the empty input immediately.
func NewParser(g *lr.Grammar) *Parser {
	p := &Parser{g: g}
	c0 := newColumn()
	for _, r := range g.RulesFor(g.Start()) {
		c0.add(lr.StartItem(r, 0))
	}
	p.closure(c0, 0)
	p.columns = []*column{c0}
	return p
}

// Grammar returns the grammar the parser is working with.
func (p *Parser) Grammar() *lr.Grammar {
	return p.g
}

// Position returns the number of tokens fed so far.
func (p *Parser) Position() int {
	return len(p.columns) - 1
}

// TokenAt returns the input token at position pos.
func (p *Parser) TokenAt(pos int) (scanner.Token, bool) {
	if pos >= 0 && pos < len(p.tokens) {
		return p.tokens[pos], true
	}
	return scanner.Token{Type: scanner.EOF}, false
}

// Feed advances the parser by one token. If no item is able to
// consume the token, ErrNoParse is returned and the parser is left unchanged.
func (p *Parser) Feed(tok scanner.Token) error {
	k := p.Position()
	cur := p.columns[k]
	next := newColumn()
	for i := 0; i < cur.size(); i++ {
		item := cur.item(i)
		if sym := item.PeekSymbol(); sym != nil && sym.IsTerminal() && sym.Matches(tok) {
			next.add(item.Advance())
		}
	}
	if next.size() == 0 {
		tracer().Debugf("token %v at position %d does not continue any item", tok, k)
		return fmt.Errorf("%w: unexpected %v at position %d", ErrNoParse, tok, k)
	}
	p.closure(next, k+1)
	p.columns = append(p.columns, next)
	p.tokens = append(p.tokens, tok)
	return nil
}

// closure computes predictions and completions for column c at position k.
// Items are appended to c while iterating, so this is a simple worklist
// algorithm.
func (p *Parser) closure(c *column, k int) {
	for i := 0; i < c.size(); i++ {
		item := c.item(i)
		sym := item.PeekSymbol()
		if sym == nil { // completion
			origin := c
			if item.Origin < k {
				origin = p.columns[item.Origin]
			}
			lhs := item.Rule().LHS.Value
			for j := 0; j < len(origin.waiting[lhs]); j++ {
				c.add(origin.waiting[lhs][j].Advance())
			}
			continue
		}
		if sym.IsTerminal() {
			continue
		}
		if !c.predicted.Has(sym.Value) { // prediction
			c.predicted.Insert(sym.Value)
			for _, r := range p.g.RulesFor(sym) {
				c.add(lr.StartItem(r, k))
			}
		}
		if p.g.IsNullable(sym) {
			c.add(item.Advance())
		}
	}
}

// Accepted is true if the input fed so far is a sentence of the grammar.
func (p *Parser) Accepted() bool {
	return len(p.completedStartItems()) > 0
}

func (p *Parser) completedStartItems() []lr.Item {
	var items []lr.Item
	c := p.columns[p.Position()]
	for i := 0; i < c.size(); i++ {
		item := c.item(i)
		if item.IsComplete() && item.Origin == 0 && item.Rule().LHS == p.g.Start() {
			items = append(items, item)
		}
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Rule().Serial < items[j].Rule().Serial
	})
	return items
}

// Open returns the items at the current position which are still in progress,
// i.e. expect another symbol. The returned slice is a copy.
func (p *Parser) Open() []lr.Item {
	var items []lr.Item
	c := p.columns[p.Position()]
	for i := 0; i < c.size(); i++ {
		if item := c.item(i); !item.IsComplete() {
			items = append(items, item)
		}
	}
	return items
}

// --- Snapshots -------------------------------------------------------------

// Snapshot is a saved parser state. See Save and Restore.
type Snapshot struct {
	columns []*column
	tokens  []scanner.Token
}

// Position returns the input position of the snapshot.
func (s Snapshot) Position() int {
	return len(s.columns) - 1
}

// Save returns a snapshot of the current parser state.
// As columns are immutable, this is O(columns).
func (p *Parser) Save() Snapshot {
	return Snapshot{
		columns: append([]*column(nil), p.columns...),
		tokens:  append([]scanner.Token(nil), p.tokens...),
	}
}

// Restore resets the parser to a previously saved state.
func (p *Parser) Restore(s Snapshot) {
	p.columns = append([]*column(nil), s.columns...)
	p.tokens = append([]scanner.Token(nil), s.tokens...)
}

// Clone returns an independent copy of the parser.
func (p *Parser) Clone() *Parser {
	s := p.Save()
	return &Parser{g: p.g, columns: s.columns, tokens: s.tokens}
}

// --- Chart columns ---------------------------------------------------------

type itemKey struct {
	rule, dot, origin int
}

func keyOf(item lr.Item) itemKey {
	return itemKey{rule: item.Rule().Serial, dot: item.Dot(), origin: item.Origin}
}

// column is an Earley set. Items are kept in order of insertion.
type column struct {
	items     *arraylist.List      // of lr.Item
	index     map[itemKey]struct{} // for duplicate checks
	waiting   map[int][]lr.Item    // items by the non-terminal they expect
	predicted intsets.Sparse       // non-terminals already predicted
}

func newColumn() *column {
	return &column{
		items:   arraylist.New(),
		index:   make(map[itemKey]struct{}),
		waiting: make(map[int][]lr.Item),
	}
}

func (c *column) add(item lr.Item) bool {
	key := keyOf(item)
	if _, ok := c.index[key]; ok {
		return false
	}
	c.index[key] = struct{}{}
	c.items.Add(item)
	if sym := item.PeekSymbol(); sym != nil && !sym.IsTerminal() {
		c.waiting[sym.Value] = append(c.waiting[sym.Value], item)
	}
	return true
}

func (c *column) contains(item lr.Item) bool {
	_, ok := c.index[keyOf(item)]
	return ok
}

func (c *column) size() int {
	return c.items.Size()
}

func (c *column) item(i int) lr.Item {
	item, _ := c.items.Get(i)
	return item.(lr.Item)
}
