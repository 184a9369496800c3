/*
Package tactic compiles tactics into grammars and parses text with them.

A tactic is a pattern (see package spec) together with a transformer, which
turns the captured references of a match into output code. Tactics are
collected in a Registry. Every tactic is compiled into a grammar fragment
exactly once, at registration time.

For parsing, the fragments of a set of tactics are composed into a single
grammar, with start symbol "main". Which fragments are reachable from "main"
depends on the current parsing state: a tactic is reachable if its state
filter is universal, or if the state stack ends with the filter's state
names, or if both the filter and the stack are empty.

ParseCNL finds the shortest prefix of a text matching a tactic. ParseChained
repeats ParseCNL on the rest of the text, threading the parsing state from
match to match.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tactic

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cnl.tactic'.
func tracer() tracing.Trace {
	return tracing.Select("cnl.tactic")
}
