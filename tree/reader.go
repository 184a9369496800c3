package tree

import (
	"errors"
	"fmt"
	"strings"
)

// ErrIndentation is returned for texts with invalid indentation.
var ErrIndentation = errors.New("invalid indentation")

// LineError is an indentation error at a line of text. Line is zero-based.
type LineError struct {
	Line int
	Msg  string
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v: %s", e.Line+1, ErrIndentation, e.Msg)
}

// Unwrap makes LineError match ErrIndentation.
func (e *LineError) Unwrap() error {
	return ErrIndentation
}

// FromText reads a document from a text. Every line of the text is a
// paragraph, nested by leading tabs. A line may be indented at most one tab
// more than the line before. Non-breaking spaces are replaced by spaces.
func FromText(text string) (*Root, error) {
	r := &reader{lines: strings.Split(text, "\n")}
	root := NewRoot()
	for r.next < len(r.lines) {
		para, err := r.paragraph(0)
		if err != nil {
			return nil, err
		}
		root.Content.Paragraphs = append(root.Content.Paragraphs, para)
	}
	tracer().Debugf("read document with %d lines", len(r.lines))
	return root, nil
}

// MustFromText is like FromText, but panics on errors.
func MustFromText(text string) *Root {
	root, err := FromText(text)
	if err != nil {
		panic(err)
	}
	return root
}

type reader struct {
	lines []string
	next  int // index of next line to read
}

// paragraph reads the paragraph starting at the next line, which has to be
// indented by level tabs, together with its children.
func (r *reader) paragraph(level int) (*Paragraph, error) {
	lineno := r.next
	text := r.lines[lineno]
	if indent := indentation(text); indent > level {
		return nil, &LineError{Line: lineno, Msg: "unexpected extra indentation"}
	} else if indent < level {
		return nil, &LineError{Line: lineno, Msg: "unexpected dedent"}
	}
	para := NewParagraph(strings.ReplaceAll(text[level:], "\u00a0", " "))
	r.next++
	for r.next < len(r.lines) {
		indent := indentation(r.lines[r.next])
		if indent <= level {
			break
		}
		if indent > level+1 {
			return nil, &LineError{Line: r.next,
				Msg: fmt.Sprintf("got %d tabs, expected at most %d", indent, level+1)}
		}
		child, err := r.paragraph(level + 1)
		if err != nil {
			return nil, err
		}
		if para.Content == nil {
			para.Content = &Content{}
		}
		para.Content.Paragraphs = append(para.Content.Paragraphs, child)
	}
	return para, nil
}

// indentation counts the leading tabs of a line.
func indentation(line string) int {
	n := 0
	for n < len(line) && line[n] == '\t' {
		n++
	}
	return n
}
