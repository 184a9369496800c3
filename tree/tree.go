package tree

import (
	"fmt"
	"strings"
)

// Root is the root node of a document.
type Root struct {
	Content *Content
}

// Content is a list of paragraphs.
type Content struct {
	Paragraphs []*Paragraph
}

// Paragraph is a line, optionally followed by indented content.
type Paragraph struct {
	Line    *Line
	Content *Content // nil for paragraphs without children
}

// Line is a single line of text, without indentation.
type Line struct {
	Value string
}

// HasContent is true if the paragraph has children.
func (p *Paragraph) HasContent() bool {
	return p.Content != nil && len(p.Content.Paragraphs) > 0
}

// NewParagraph creates a paragraph with a line and optional children.
func NewParagraph(line string, children ...*Paragraph) *Paragraph {
	p := &Paragraph{Line: &Line{Value: line}}
	if len(children) > 0 {
		p.Content = &Content{Paragraphs: children}
	}
	return p
}

// NewRoot creates a document from a list of paragraphs.
func NewRoot(paragraphs ...*Paragraph) *Root {
	return &Root{Content: &Content{Paragraphs: paragraphs}}
}

// --- Positions -------------------------------------------------------------

// Slots of a paragraph.
const (
	LineSlot    = 0
	ContentSlot = 1
)

// Position addresses a node of a document tree. The empty position is the
// root.
type Position []int

// Paragraph returns the position of paragraph i within the content at p.
func (p Position) Paragraph(i int) Position {
	return p.append(i)
}

// Line returns the position of the line of the paragraph at p.
func (p Position) Line() Position {
	return p.append(LineSlot)
}

// Content returns the position of the content of the paragraph at p.
func (p Position) Content() Position {
	return p.append(ContentSlot)
}

func (p Position) append(n int) Position {
	q := make(Position, len(p)+1)
	copy(q, p)
	q[len(p)] = n
	return q
}

// Equal is true if both positions address the same node.
func (p Position) Equal(q Position) bool {
	return Compare(p, q) == 0
}

func (p Position) String() string {
	return fmt.Sprint([]int(p))
}

// Compare orders positions. Positions are compared element by element. If
// one position is a prefix of the other, the shorter one is greater: nodes
// are ordered after their descendants.
func Compare(a, b Position) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] < b[i] {
			return -1
		} else if a[i] > b[i] {
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return 1
	case len(a) > len(b):
		return -1
	}
	return 0
}

// --- Walking ---------------------------------------------------------------

// Lines calls f for every line of the document, in document order.
func Lines(root *Root, f func(pos Position, level int, line *Line)) {
	if root == nil || root.Content == nil {
		return
	}
	walkLines(Position{}, 0, root.Content, f)
}

func walkLines(pos Position, level int, c *Content, f func(Position, int, *Line)) {
	for i, para := range c.Paragraphs {
		ppos := pos.Paragraph(i)
		f(ppos.Line(), level, para.Line)
		if para.Content != nil {
			walkLines(ppos.Content(), level+1, para.Content, f)
		}
	}
}

// LineAt returns the line at a line position, or nil.
func LineAt(root *Root, pos Position) *Line {
	var line *Line
	Lines(root, func(p Position, _ int, l *Line) {
		if line == nil && p.Equal(pos) {
			line = l
		}
	})
	return line
}

// --- Text ------------------------------------------------------------------

// ToText writes a document as text, one line per paragraph, indented by
// tabs.
func ToText(root *Root) string {
	var lines []string
	Lines(root, func(_ Position, level int, line *Line) {
		lines = append(lines, strings.Repeat("\t", level)+line.Value)
	})
	return strings.Join(lines, "\n")
}
