package spec

import (
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/cnl"
)

// Parse parses a tactic pattern. Surrounding whitespace is ignored.
// Malformed patterns result in an error of type *Error.
func Parse(textual string) (*Specification, error) {
	src := strings.TrimSpace(textual)
	tracer().Debugf("parsing pattern %q", src)
	if !strings.HasPrefix(src, "{") {
		return nil, errorAt(src, 0, "missing opening brace")
	}
	if len(src) < 2 || !strings.HasSuffix(src, "}") {
		return nil, errorAt(src, len(src), "missing closing brace")
	}
	inner := src[1 : len(src)-1]
	first := strings.IndexByte(inner, '|')
	if first < 0 {
		return nil, errorAt(src, 1, "missing separator after header")
	}
	last := strings.LastIndexByte(inner, '|')
	if last == first {
		return nil, errorAt(src, len(src)-1, "missing separator before footer")
	}
	s := &Specification{}
	var err error
	if s.Header, err = parseHeader(src, inner[:first], 1); err != nil {
		return nil, err
	}
	cp := contentParser{pattern: src, text: inner[first+1 : last], base: first + 2}
	if s.Content, err = cp.parse(); err != nil {
		return nil, err
	}
	if s.Footer, err = parseFooter(src, inner[last+1:], last+2); err != nil {
		return nil, err
	}
	return s, nil
}

// --- Header and footer -----------------------------------------------------

func parseHeader(pattern, section string, base int) (Header, error) {
	toks, err := tokenize(section)
	if err != nil {
		return Header{}, err
	}
	var states []string
	for _, tok := range toks {
		switch int(tok.Type) {
		case tokStar:
			if len(toks) > 1 {
				return Header{}, errorAt(pattern, base+tok.Span.From(), "'*' must stand alone in a header")
			}
			return Header{Filter: UniversalFilter()}, nil
		case tokName:
			states = append(states, tok.Lexeme)
		default:
			return Header{}, errorAt(pattern, base+tok.Span.From(), "invalid state name %q", tok.Lexeme)
		}
	}
	return Header{Filter: ExactFilter(states...)}, nil
}

func parseFooter(pattern, section string, base int) (Footer, error) {
	toks, err := tokenize(section)
	if err != nil {
		return Footer{}, err
	}
	f := Footer{}
	for i := 0; i < len(toks); i++ {
		tok := toks[i]
		at := base + tok.Span.From()
		switch int(tok.Type) {
		case tokBegin, tokEnd, tokLineEnd:
			if i > 0 {
				return Footer{}, errorAt(pattern, at, "structure marker %q must come first", tok.Lexeme)
			}
			f.Structure = structureOf(int(tok.Type))
		case tokPop:
			f.Actions = append(f.Actions, cnl.Pop())
		case tokPush:
			if i+1 >= len(toks) || int(toks[i+1].Type) != tokName {
				return Footer{}, errorAt(pattern, at, "'+' must be followed by a state name")
			}
			i++
			f.Actions = append(f.Actions, cnl.Push(toks[i].Lexeme))
		case tokName:
			return Footer{}, errorAt(pattern, at, "state name %q without '+'", tok.Lexeme)
		default:
			return Footer{}, errorAt(pattern, at, "bad footer character %q", tok.Lexeme)
		}
	}
	return f, nil
}

func structureOf(tokType int) cnl.Structure {
	switch tokType {
	case tokBegin:
		return cnl.BeginOfParagraph
	case tokEnd:
		return cnl.EndOfParagraph
	case tokLineEnd:
		return cnl.LineEnd
	}
	return cnl.NoStructure
}

// --- Content ---------------------------------------------------------------

// contentParser is a small recursive descent parser over the content section.
// Positions are byte offsets into text; base maps them into the pattern.
type contentParser struct {
	pattern string
	text    string
	base    int
	pos     int
}

func (p *contentParser) parse() ([]Node, error) {
	nodes, stop, err := p.sequence(false)
	if err != nil {
		return nil, err
	}
	if stop != 0 { // cannot happen outside of groups
		return nil, p.errorf(p.pos, "unexpected %q", stop)
	}
	return nodes, nil
}

func (p *contentParser) errorf(pos int, format string, args ...interface{}) *Error {
	return errorAt(p.pattern, p.base+pos, format, args...)
}

func (p *contentParser) peek() (rune, int) {
	if p.pos >= len(p.text) {
		return utf8.RuneError, 0
	}
	return utf8.DecodeRuneInString(p.text[p.pos:])
}

func isEscapable(r rune) bool {
	return strings.ContainsRune(`|[]/\{}`, r)
}

// sequence reads nodes until the end of the content or, inside a group, until
// a ']' or '/', which is returned as stop (and consumed).
func (p *contentParser) sequence(inGroup bool) ([]Node, rune, error) {
	var nodes []Node
	var text strings.Builder
	flush := func() {
		if text.Len() > 0 {
			nodes = append(nodes, &Text{Value: text.String()})
			text.Reset()
		}
	}
	for p.pos < len(p.text) {
		r, w := p.peek()
		switch {
		case r == '\\':
			p.pos += w
			if next, nw := p.peek(); nw > 0 && isEscapable(next) {
				text.WriteRune(next)
				p.pos += nw
			} else {
				text.WriteRune('\\')
			}
		case r == '|':
			flush()
			ref, err := p.reference()
			if err != nil {
				return nil, 0, err
			}
			nodes = append(nodes, ref)
		case r == '[':
			flush()
			group, err := p.group()
			if err != nil {
				return nil, 0, err
			}
			if group != nil {
				nodes = append(nodes, group)
			}
		case r == ']' || (r == '/' && inGroup):
			if !inGroup {
				return nil, 0, p.errorf(p.pos, "unbalanced group: unexpected ']'")
			}
			p.pos += w
			flush()
			return nodes, r, nil
		default:
			text.WriteRune(r)
			p.pos += w
		}
	}
	if inGroup {
		return nil, 0, p.errorf(p.pos, "unbalanced group: missing ']'")
	}
	flush()
	return nodes, 0, nil
}

// reference reads |name|. The current position is at the opening bar.
func (p *contentParser) reference() (*Reference, error) {
	start := p.pos
	p.pos++
	end := strings.IndexByte(p.text[p.pos:], '|')
	if end < 0 {
		return nil, p.errorf(start, "unterminated reference")
	}
	name := p.text[p.pos : p.pos+end]
	p.pos += end + 1
	if strings.TrimSpace(name) == "" {
		return nil, p.errorf(start, "empty reference name")
	}
	return &Reference{Name: name}, nil
}

// group reads [ … ] or [ … ]*, with branches separated by '/'.
// The current position is at the opening bracket.
func (p *contentParser) group() (Node, error) {
	p.pos++
	var alts []Node
	for {
		nodes, stop, err := p.sequence(true)
		if err != nil {
			return nil, err
		}
		alts = append(alts, wrap(nodes))
		if stop == ']' {
			break
		}
	}
	var body Node
	if len(alts) == 1 {
		body = alts[0]
	} else {
		body = &Either{Branches: alts}
	}
	if r, w := p.peek(); w > 0 && r == '*' {
		p.pos += w
		return &Iteration{Body: body}, nil
	}
	if s, ok := body.(*Sequence); ok && len(s.Nodes) == 0 {
		return nil, nil // "[]" matches nothing and is dropped
	}
	return body, nil
}

func wrap(nodes []Node) Node {
	if len(nodes) == 1 {
		return nodes[0]
	}
	return &Sequence{Nodes: nodes}
}
