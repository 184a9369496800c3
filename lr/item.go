package lr

import (
	"bytes"
	"fmt"
)

// Item is an Earley item: a rule, a position within the rule's RHS (the
// dot) and the input position where recognition of the rule started.
type Item struct {
	rule   *Rule
	dot    int
	Origin int
}

// StartItem returns an item for r with the dot in front of the RHS.
func StartItem(r *Rule, origin int) Item {
	return Item{rule: r, Origin: origin}
}

// NewItem returns an item for r with the dot in front of RHS symbol #dot.
func NewItem(r *Rule, dot int, origin int) Item {
	if dot > len(r.rhs) {
		dot = len(r.rhs)
	}
	return Item{rule: r, dot: dot, Origin: origin}
}

// Rule returns the grammar rule of this item.
func (i Item) Rule() *Rule {
	return i.rule
}

// Dot returns the position of the dot within the RHS.
func (i Item) Dot() int {
	return i.dot
}

// PeekSymbol returns the symbol after the dot, or nil for completed items.
func (i Item) PeekSymbol() *Symbol {
	if i.rule == nil || i.dot >= len(i.rule.rhs) {
		return nil
	}
	return i.rule.rhs[i.dot]
}

// IsComplete is true if the dot is behind the RHS.
func (i Item) IsComplete() bool {
	return i.PeekSymbol() == nil
}

// Advance returns an item with the dot moved one symbol to the right.
func (i Item) Advance() Item {
	if i.IsComplete() {
		return i
	}
	return Item{rule: i.rule, dot: i.dot + 1, Origin: i.Origin}
}

// Prefix returns the symbols of the RHS in front of the dot.
func (i Item) Prefix() []*Symbol {
	return i.rule.rhs[:i.dot]
}

func (i Item) String() string {
	var b bytes.Buffer
	b.WriteString(fmt.Sprintf("%s ➞", i.rule.LHS))
	for n, sym := range i.rule.rhs {
		if n == i.dot {
			b.WriteString(" •")
		}
		b.WriteString(" " + sym.Name)
	}
	if i.IsComplete() {
		b.WriteString(" •")
	}
	b.WriteString(fmt.Sprintf(" (%d)", i.Origin))
	return b.String()
}
