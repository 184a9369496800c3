/*
Package scanner defines the token stream consumed by the chart parser of
package lr/earley, and an adapter for lexmachine.

Input for the chart parser is text, fed one rune at a time. Besides runes
there is one more token: the stop signal. Feeding it closes an open capture,
which otherwise would greedily continue to consume text.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"fmt"
	"unicode/utf8"

	"github.com/npillmayer/cnl"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cnl.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("cnl.scanner")
}

// TokType is a category type for a Token. Lexmachine scanners use the token
// IDs they have been configured with; these are expected to be non-negative.
type TokType int

// Token categories used by the chart parser.
const (
	EOF  TokType = -1 // end of input
	Char TokType = -2 // a single rune of text
	Stop TokType = -3 // the stop signal, closing an open capture
)

// Token is an input token. It is produced either by a RuneTokenizer, or by
// a lexmachine scanner.
//
//    Type   = Char      // category of this token
//    Lexeme = "a"       // lexeme as it appeared in the input stream
//    Span   = 67…68     // occurred from position 67 in the input stream
//
type Token struct {
	Type   TokType
	Lexeme string
	Span   cnl.Span
}

// CharToken creates a token for rune r at position pos.
func CharToken(r rune, pos int) Token {
	return Token{Type: Char, Lexeme: string(r), Span: cnl.Span{pos, pos + 1}}
}

// StopToken creates a stop signal at position pos. It has no extent.
func StopToken(pos int) Token {
	return Token{Type: Stop, Span: cnl.Span{pos, pos}}
}

// Rune returns the first rune of the lexeme, or utf8.RuneError.
func (t Token) Rune() rune {
	r, _ := utf8.DecodeRuneInString(t.Lexeme)
	return r
}

// IsStop is true for the stop signal.
func (t Token) IsStop() bool {
	return t.Type == Stop
}

func (t Token) String() string {
	switch t.Type {
	case EOF:
		return "<eof>"
	case Stop:
		return "<stop>"
	case Char:
		return fmt.Sprintf("%q", t.Lexeme)
	}
	return fmt.Sprintf("<%d|%s>", t.Type, t.Lexeme)
}

// Tokenizer is a scanner interface.
type Tokenizer interface {
	NextToken() Token
	SetErrorHandler(func(error))
}

// Default error reporting function for scanners
func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// --- Rune tokenizer ----------------------------------------------------------

// RuneTokenizer splits a string into single-rune tokens. Positions are rune
// offsets, not byte offsets.
type RuneTokenizer struct {
	runes []rune
	pos   int
	Error func(error) // error handler
}

var _ Tokenizer = (*RuneTokenizer)(nil)

// Runes creates a tokenizer for input.
func Runes(input string) *RuneTokenizer {
	return &RuneTokenizer{
		runes: []rune(input),
		Error: logError,
	}
}

// SetErrorHandler sets an error handler for the scanner.
// A RuneTokenizer never fails, but we honour the Tokenizer contract.
func (t *RuneTokenizer) SetErrorHandler(h func(error)) {
	if h == nil {
		t.Error = logError
		return
	}
	t.Error = h
}

// NextToken is part of the Tokenizer interface.
func (t *RuneTokenizer) NextToken() Token {
	if t.pos >= len(t.runes) {
		return Token{Type: EOF, Span: cnl.Span{t.pos, t.pos}}
	}
	tok := CharToken(t.runes[t.pos], t.pos)
	t.pos++
	return tok
}

// Offset returns the number of runes delivered so far.
func (t *RuneTokenizer) Offset() int {
	return t.pos
}

// Len returns the length of the input in runes.
func (t *RuneTokenizer) Len() int {
	return len(t.runes)
}

// Lexeme is a helper function to receive a string from a token value.
func Lexeme(token interface{}) string {
	switch t := token.(type) {
	case string:
		return t
	case []byte:
		return string(t)
	case Token:
		return t.Lexeme
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", t)
	}
}
