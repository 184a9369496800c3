package chunk

import (
	"fmt"
	"sort"
	"strings"

	"github.com/npillmayer/cnl"
	"github.com/npillmayer/cnl/tactic"
	"github.com/npillmayer/cnl/tree"
)

// Kind is the kind of a chunk.
type Kind int8

// Kinds of chunks.
const (
	TacticChunk Kind = iota
	CommentChunk
	ErrorChunk
)

func (k Kind) String() string {
	switch k {
	case TacticChunk:
		return "tactic"
	case CommentChunk:
		return "comment"
	case ErrorChunk:
		return "error"
	}
	return "?"
}

// Reason explains an error chunk.
type Reason string

// Reasons for errors.
const (
	TacticNotRecognized        Reason = "tactic_not_recognized"
	TacticAfterLineEnd         Reason = "tactic_after_line_end"
	ChildWithoutParagraphBegin Reason = "child_without_paragraph_begin"
	ParagraphAlreadyEnded      Reason = "paragraph_already_ended" // currently never produced
	FatalError                 Reason = "fatal"
)

var messages = map[Reason]string{
	TacticNotRecognized:        "tactic not recognized",
	TacticAfterLineEnd:         "tactic after the end of a line",
	ChildWithoutParagraphBegin: "indented line without a paragraph begin",
	ParagraphAlreadyEnded:      "paragraph already ended",
	FatalError:                 "fatal error, text from here on is not trusted",
}

// Message describes the reason in words.
func (r Reason) Message() string {
	if m, ok := messages[r]; ok {
		return m
	}
	return string(r)
}

// Range is a span of a line, or, for paragraph level chunks, a collapsed
// position relative to a paragraph.
type Range struct {
	Parent tree.Position
	Start  int
	End    int
}

// IsCollapsed is true for empty ranges.
func (r Range) IsCollapsed() bool {
	return r.Start == r.End
}

func (r Range) String() string {
	return fmt.Sprintf("%v(%d…%d)", r.Parent, r.Start, r.End)
}

// Chunk is a classified span of text.
type Chunk struct {
	Kind        Kind
	Range       Range
	StateBefore cnl.State       // parsing state in front of the chunk
	Tactic      *tactic.Tactic  // tactics and comments only
	Captures    tactic.Captures // tactics and comments only
	Code        string          // output of the tactic's transformer
	Reason      Reason          // errors only
	Fatal       bool
}

func newTactic(r tactic.Result, state cnl.State, rng Range) Chunk {
	return Chunk{
		Kind:        TacticChunk,
		Range:       rng,
		StateBefore: state,
		Tactic:      r.Tactic,
		Captures:    r.Captures,
		Code:        r.Code(),
	}
}

func newError(reason Reason, state cnl.State, rng Range) Chunk {
	return Chunk{Kind: ErrorChunk, Range: rng, StateBefore: state, Reason: reason}
}

func newFatal(state cnl.State, rng Range) Chunk {
	return Chunk{Kind: ErrorChunk, Range: rng, StateBefore: state, Reason: FatalError, Fatal: true}
}

// IsError is true for error chunks.
func (c Chunk) IsError() bool {
	return c.Kind == ErrorChunk
}

func (c Chunk) String() string {
	switch c.Kind {
	case ErrorChunk:
		return fmt.Sprintf("error[%s %v]", c.Reason, c.Range)
	default:
		name := "?"
		if c.Tactic != nil {
			name = c.Tactic.Name
		}
		return fmt.Sprintf("%s[%s %v]", c.Kind, name, c.Range)
	}
}

// StateAfter applies the actions of all tactic chunks to state. Comments and
// errors do not change the parsing state.
func StateAfter(state cnl.State, chunks []Chunk) cnl.State {
	var actions []cnl.Action
	for _, c := range chunks {
		if c.Kind == TacticChunk {
			actions = append(actions, c.Tactic.Actions()...)
		}
	}
	return cnl.Resolve(state, actions...)
}

// Code concatenates the code of all tactic and comment chunks.
func Code(chunks []Chunk) string {
	var b strings.Builder
	for _, c := range chunks {
		if c.Kind != ErrorChunk {
			b.WriteString(c.Code)
		}
	}
	return b.String()
}

// Sort orders chunks by position of their parent node and offset. Chunks of
// a paragraph are placed after the chunks of the paragraph's lines.
func Sort(chunks []Chunk) {
	sort.SliceStable(chunks, func(i, j int) bool {
		a, b := chunks[i].Range, chunks[j].Range
		if c := tree.Compare(a.Parent, b.Parent); c != 0 {
			return c < 0
		}
		return a.Start < b.Start
	})
}
