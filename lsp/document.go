package lsp

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf16"

	"github.com/npillmayer/cnl"
	"github.com/npillmayer/cnl/chunk"
	"github.com/npillmayer/cnl/library"
	"github.com/npillmayer/cnl/predict"
	"github.com/npillmayer/cnl/tree"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// Document is the parsed state of an open text document.
type Document struct {
	URI     protocol.DocumentUri
	Version protocol.Integer
	Text    string
	root    *tree.Root
	err     error // error reading the tree
	chunks  []chunk.Chunk
	sorted  []chunk.Chunk // chunks in order of position
	lines   []lineInfo    // indexed by line number
	lineNo  map[string]int
}

type lineInfo struct {
	pos   tree.Position
	level int
	value string
}

// NewDocument parses text with the tactics of lib.
func NewDocument(lib *library.Library, uri protocol.DocumentUri, version protocol.Integer, text string) *Document {
	d := &Document{URI: uri, Version: version, Text: text, lineNo: make(map[string]int)}
	d.root, d.err = tree.FromText(text)
	if d.err != nil {
		tracer().Debugf("%s: %v", uri, d.err)
		return d
	}
	tree.Lines(d.root, func(pos tree.Position, level int, line *tree.Line) {
		d.lineNo[pos.String()] = len(d.lines)
		d.lines = append(d.lines, lineInfo{pos: pos, level: level, value: line.Value})
	})
	d.chunks = lib.Parser().Parse(d.root)
	d.sorted = append([]chunk.Chunk(nil), d.chunks...)
	chunk.Sort(d.sorted)
	tracer().Debugf("%s: %d lines, %d chunks", uri, len(d.lines), len(d.chunks))
	return d
}

// Chunks returns the chunks of the document. They are nil if the document
// could not be read.
func (d *Document) Chunks() []chunk.Chunk {
	return d.chunks
}

// Diagnostics reports indentation errors and error chunks.
func (d *Document) Diagnostics() []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}
	if d.err != nil {
		line := 0
		var lerr *tree.LineError
		if errors.As(d.err, &lerr) {
			line = lerr.Line
		}
		r := protocol.Range{
			Start: protocol.Position{Line: protocol.UInteger(line)},
			End:   protocol.Position{Line: protocol.UInteger(line + 1)},
		}
		return append(diagnostics, diagnostic(r, d.err.Error()))
	}
	for _, c := range d.chunks {
		if !c.IsError() {
			continue
		}
		msg := c.Reason.Message()
		if len(c.StateBefore) > 0 {
			msg = fmt.Sprintf("%s (state %v)", msg, c.StateBefore)
		}
		diagnostics = append(diagnostics, diagnostic(d.rangeOf(c.Range), msg))
	}
	return diagnostics
}

func diagnostic(r protocol.Range, msg string) protocol.Diagnostic {
	severity := protocol.DiagnosticSeverityError
	source := lsName
	return protocol.Diagnostic{
		Range:    r,
		Severity: &severity,
		Source:   &source,
		Message:  msg,
	}
}

// rangeOf maps a chunk range to a range of the text. Chunks at the level
// of a paragraph cover the paragraph's line.
func (d *Document) rangeOf(rng chunk.Range) protocol.Range {
	pos := rng.Parent
	whole := len(pos)%2 == 1
	if whole {
		pos = pos.Line()
	}
	n, ok := d.lineNo[pos.String()]
	if !ok {
		return protocol.Range{}
	}
	li := d.lines[n]
	runes := []rune(li.value)
	from, to := rng.Start, rng.End
	if whole || from < 0 || to > len(runes) {
		from, to = 0, len(runes)
	}
	return protocol.Range{
		Start: protocol.Position{Line: protocol.UInteger(n), Character: column(li.level, runes[:from])},
		End:   protocol.Position{Line: protocol.UInteger(n), Character: column(li.level, runes[:to])},
	}
}

// column counts UTF-16 code units, including the indentation.
func column(level int, prefix []rune) protocol.UInteger {
	return protocol.UInteger(level + len(utf16.Encode(prefix)))
}

// stateAt returns the parsing state at the start of line n, i.e. the state
// after all chunks positioned in front of the line.
func (d *Document) stateAt(lib *library.Library, n int) cnl.State {
	if d.err != nil || n >= len(d.lines) {
		return chunk.StateAfter(lib.Initial, d.chunks)
	}
	pos := d.lines[n].pos
	var before []chunk.Chunk
	for _, c := range d.sorted {
		if tree.Compare(c.Range.Parent, pos) >= 0 {
			break
		}
		before = append(before, c)
	}
	return chunk.StateAfter(lib.Initial, before)
}

// prefix returns the text of line n in front of a cursor, without
// indentation. character counts UTF-16 code units.
func (d *Document) prefix(n int, character protocol.UInteger) string {
	lines := strings.Split(d.Text, "\n")
	if n < 0 || n >= len(lines) {
		return ""
	}
	var runes []rune
	units := 0
	for _, r := range lines[n] {
		if units >= int(character) {
			break
		}
		units += len(utf16.Encode([]rune{r}))
		runes = append(runes, r)
	}
	return strings.TrimLeft(string(runes), "\t")
}

// Completions predicts continuations of the text in front of a cursor.
func (d *Document) Completions(lib *library.Library, pos protocol.Position, maxIter int) []protocol.CompletionItem {
	n := int(pos.Line)
	text := d.prefix(n, pos.Character)
	state := d.stateAt(lib, n)
	predictions, ok := predict.Predict(lib.Tactics(), text, state, maxIter)
	if !ok {
		tracer().Debugf("no predictions for %q in state %v", text, state)
		return nil
	}
	items := make([]protocol.CompletionItem, 0, len(predictions))
	kind := protocol.CompletionItemKindSnippet
	format := protocol.InsertTextFormatSnippet
	for _, steps := range predictions {
		label := steps.Text()
		insert := snippet(steps)
		detail := fmt.Sprintf("state %v", state)
		items = append(items, protocol.CompletionItem{
			Label:            label,
			Kind:             &kind,
			Detail:           &detail,
			InsertText:       &insert,
			InsertTextFormat: &format,
		})
	}
	return items
}

// Hover describes the chunks under a cursor: the tactic matched there and
// the code generated for it, or the reason of an error.
func (d *Document) Hover(pos protocol.Position) (*protocol.Hover, bool) {
	n := int(pos.Line)
	if d.err != nil || n >= len(d.lines) {
		return nil, false
	}
	li := d.lines[n]
	groups, err := chunk.GroupByMain(chunk.LineChunks(d.chunks, li.pos, li.value))
	if err != nil {
		tracer().Errorf("%s, line %d: %v", d.URI, n, err)
		return nil, false
	}
	offset := len([]rune(d.prefix(n, pos.Character)))
	for _, g := range groups {
		if offset < g.Main.Range.Start || offset >= g.Main.Range.End {
			continue
		}
		rng := d.rangeOf(g.Main.Range)
		return &protocol.Hover{
			Contents: protocol.MarkupContent{
				Kind:  protocol.MarkupKindPlainText,
				Value: describe(g, li.value),
			},
			Range: &rng,
		}, true
	}
	return nil, false
}

func describe(g chunk.Group, line string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%q", g.Text(line))
	for _, c := range g.Chunks {
		if c.IsError() {
			fmt.Fprintf(&b, "\nerror: %s", c.Reason.Message())
			continue
		}
		name := "?"
		if c.Tactic != nil {
			name = c.Tactic.Name
		}
		fmt.Fprintf(&b, "\n%s %s", c.Kind, name)
		if code := strings.TrimSpace(c.Code); code != "" {
			fmt.Fprintf(&b, ": %s", code)
		}
	}
	return b.String()
}

var snippetEscaper = strings.NewReplacer(`\`, `\\`, `$`, `\$`, `}`, `\}`)

// snippet renders a prediction as a snippet with numbered placeholders.
func snippet(steps predict.Steps) string {
	var b strings.Builder
	n := 0
	for _, s := range steps {
		if s.Kind == predict.Reference {
			n++
			fmt.Fprintf(&b, "${%d:%s}", n, snippetEscaper.Replace(s.Value))
		} else {
			b.WriteString(snippetEscaper.Replace(s.Value))
		}
	}
	return b.String()
}
