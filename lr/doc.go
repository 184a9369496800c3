/*
Package lr implements grammars for chart parsing.

Building a Grammar

Grammars are specified using a grammar builder object. Clients add
rules, consisting of non-terminal symbols and terminals. Terminals are
either single runes, or one of two character classes: any rune of text
(Text), or any rune of text as well as the stop signal (TextOrStop).
Grammars may contain epsilon-productions.

Example:

    b := lr.NewGrammarBuilder("G")
    b.LHS("S").N("A").L('a').End()   // S  ->  A 'a'
    b.LHS("A").N("B").N("D").End()   // A  ->  B D
    b.LHS("B").L('b').End()          // B  ->  'b'
    b.LHS("B").Epsilon()             // B  ->
    b.LHS("D").Text().End()          // D  ->  TEXT
    b.LHS("D").Epsilon()             // D  ->

This results in the following trivial grammar:

   b.Grammar().Dump()

   0: [S] ::= [A 'a']
   1: [A] ::= [B D]
   2: [B] ::= ['b']
   3: [B] ::= []
   4: [D] ::= [TEXT]
   5: [D] ::= []

Rules may carry a tag. Tags are opaque to the grammar and the parser; they
are for derivation listeners, which interpret them to compute semantic
values.

Grammars may also be assembled from productions, which are a plain data
representation of rules. Productions are handy for caching grammar fragments
and composing them into different grammars later.

Grammar Analysis

After the grammar is complete, the builder determines all nullable
non-terminals. The chart parser needs them to predict correctly over
epsilon-productions.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lr

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cnl.lr'.
func tracer() tracing.Trace {
	return tracing.Select("cnl.lr")
}
