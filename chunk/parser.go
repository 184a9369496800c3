package chunk

import (
	"strings"

	"github.com/npillmayer/cnl"
	"github.com/npillmayer/cnl/tactic"
	"github.com/npillmayer/cnl/tree"
)

// Parser creates chunks for document trees. A parser is stateless between
// calls to Parse.
type Parser struct {
	tactics []*tactic.Tactic
	initial cnl.State
}

// NewParser creates a chunk parser for a set of tactics, starting every
// document in parsing state initial.
func NewParser(tactics []*tactic.Tactic, initial cnl.State) *Parser {
	return &Parser{
		tactics: tactics,
		initial: initial.Clone(),
	}
}

// Parse classifies every line of a document. Chunks are returned in document
// order; chunks of a paragraph's children precede chunks at the paragraph's
// own position.
func (p *Parser) Parse(root *tree.Root) []Chunk {
	if root == nil || root.Content == nil {
		return nil
	}
	chunks := p.content(p.initial, tree.Position{}, root.Content)
	end := StateAfter(p.initial, chunks)
	for i, c := range chunks {
		if !c.Fatal {
			continue
		}
		tracer().Infof("fatal chunk at %v, following chunks will be fatal", c.Range)
		for j := i; j < len(chunks); j++ {
			if chunks[j].Kind != CommentChunk {
				chunks[j] = newFatal(end, chunks[j].Range)
			}
		}
		break
	}
	return chunks
}

// content parses a list of paragraphs, threading the parsing state.
func (p *Parser) content(state cnl.State, pos tree.Position, c *tree.Content) []Chunk {
	var chunks []Chunk
	for i, para := range c.Paragraphs {
		pchunks := p.paragraph(state, pos.Paragraph(i), para)
		state = StateAfter(state, pchunks)
		chunks = append(chunks, pchunks...)
	}
	return chunks
}

func (p *Parser) paragraph(state cnl.State, pos tree.Position, para *tree.Paragraph) []Chunk {
	head := p.line(state, pos.Line(), para.Line)
	if lastStructure(head) != cnl.BeginOfParagraph {
		head = append(head, p.empty(StateAfter(state, head), pos)...)
	}
	begun := lastStructure(head) == cnl.BeginOfParagraph
	var body []Chunk
	if para.HasContent() {
		body = p.content(StateAfter(state, head), pos.Content(), para.Content)
		if !begun {
			for i, c := range body {
				if c.Kind != CommentChunk {
					body[i] = newError(ChildWithoutParagraphBegin, c.StateBefore, c.Range)
				}
			}
		}
	}
	body = append(body, p.empty(StateAfter(StateAfter(state, head), body), pos)...)
	if para.HasContent() && lastStructure(body) != cnl.EndOfParagraph {
		tracer().Debugf("paragraph %v is not closed", pos)
		rng := Range{Parent: pos, Start: -1, End: -1}
		body = append(body, newFatal(StateAfter(StateAfter(state, head), body), rng))
	}
	return append(head, body...)
}

// empty matches tactics against the empty input at the position of a
// paragraph.
func (p *Parser) empty(state cnl.State, pos tree.Position) []Chunk {
	chain := tactic.ParseChained(p.tactics, "", state, false, true)
	return p.chunksFor(chain, state, pos)
}

func (p *Parser) line(state cnl.State, pos tree.Position, line *tree.Line) []Chunk {
	chain := tactic.ParseChained(p.tactics, line.Value, state, true, true)
	chunks := p.chunksFor(chain, state, pos)
	if n := len([]rune(line.Value)); chain.Offset < n {
		rng := Range{Parent: pos, Start: chain.Offset, End: n}
		chunks = append(chunks, newError(TacticNotRecognized, StateAfter(state, chunks), rng))
	}
	stop := -1
	for i, c := range chunks {
		if isComment(c) {
			chunks[i].Kind = CommentChunk
		} else if stop < 0 && c.Kind == TacticChunk &&
			c.Tactic.Structure() != cnl.NoStructure && !c.Tactic.IsFallback() {
			stop = i
		}
	}
	if stop >= 0 {
		for i := stop + 1; i < len(chunks); i++ {
			if chunks[i].Kind != CommentChunk {
				tracer().Debugf("%v follows a line end", chunks[i])
				chunks[i] = newError(TacticAfterLineEnd, chunks[i].StateBefore, chunks[i].Range)
			}
		}
	}
	return chunks
}

// chunksFor creates tactic chunks for the results of a chained parse.
func (p *Parser) chunksFor(chain tactic.Chained, state cnl.State, pos tree.Position) []Chunk {
	chunks := make([]Chunk, 0, len(chain.Results))
	start := 0
	for i, r := range chain.Results {
		rng := Range{Parent: pos, Start: start, End: chain.Ends[i]}
		chunks = append(chunks, newTactic(r, state, rng))
		state = cnl.Resolve(state, r.Tactic.Actions()...)
		start = chain.Ends[i]
	}
	return chunks
}

// isComment is true for tactics named "comment", regardless of case.
func isComment(c Chunk) bool {
	return c.Kind == TacticChunk && strings.EqualFold(c.Tactic.Name, "comment")
}

// lastStructure returns the structure of the last tactic chunk.
func lastStructure(chunks []Chunk) cnl.Structure {
	for i := len(chunks) - 1; i >= 0; i-- {
		if chunks[i].Kind == TacticChunk {
			return chunks[i].Tactic.Structure()
		}
	}
	return cnl.NoStructure
}
