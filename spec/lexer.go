package spec

import (
	"sync"

	"github.com/npillmayer/cnl/lr/scanner"
	"github.com/timtadh/lexmachine"
)

// Headers and footers are tokenized with lexmachine; content is parsed by
// hand, as it toggles between text and references.

const (
	tokStar int = iota + 1
	tokName
	tokBegin
	tokEnd
	tokLineEnd
	tokPop
	tokPush
	tokIllegal
)

var tokenIds = map[string]int{
	"*":       tokStar,
	"NAME":    tokName,
	">":       tokBegin,
	"<":       tokEnd,
	"#":       tokLineEnd,
	"-":       tokPop,
	"+":       tokPush,
	"ILLEGAL": tokIllegal,
}

var lexerOnce sync.Once
var headerLexer *scanner.LMAdapter
var lexerErr error

func sectionLexer() (*scanner.LMAdapter, error) {
	lexerOnce.Do(func() {
		init := func(lexer *lexmachine.Lexer) {
			lexer.Add([]byte(`( |\t|\n|\r)+`), scanner.Skip)
			lexer.Add([]byte(`([a-z]|[A-Z]|[0-9]|_)+`), scanner.MakeToken("NAME", tokenIds["NAME"]))
		}
		literals := []string{"*", ">", "<", "#", "-", "+"}
		headerLexer, lexerErr = scanner.NewLMAdapter(func(lexer *lexmachine.Lexer) {
			init(lexer)
			for _, lit := range literals { // literals have to precede the catch-all
				lexer.Add([]byte(`\`+lit), scanner.MakeToken(lit, tokenIds[lit]))
			}
			lexer.Add([]byte(`.`), scanner.MakeToken("ILLEGAL", tokenIds["ILLEGAL"]))
		}, nil, nil, tokenIds)
	})
	return headerLexer, lexerErr
}

// tokenize splits a header or footer section into tokens. Token spans are
// relative to the section.
func tokenize(section string) ([]scanner.Token, error) {
	lm, err := sectionLexer()
	if err != nil {
		return nil, err
	}
	scan, err := lm.Scanner(section)
	if err != nil {
		return nil, err
	}
	var toks []scanner.Token
	for tok := scan.NextToken(); tok.Type != scanner.EOF; tok = scan.NextToken() {
		toks = append(toks, tok)
	}
	return toks, nil
}
