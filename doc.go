/*
Package cnl is a compiler and incremental parser for a controlled natural
language of proof tactics.

Authors define tactics as small textual patterns. The patterns are compiled
into one context-free grammar, which in turn is used to classify every span of
a hierarchical, tab-indented document as a recognized tactic, a transparent
comment or an error. A prediction engine lists legal continuations of partially
typed input. Package structure is as follows:

■ spec: Package spec parses the pattern language tactics are written in.

■ lr: Package lr provides grammar symbols, rules and items, together with an
incremental Earley chart parser in sub-package earley.

■ tactic: Package tactic holds tactics, the tactic registry, the grammar
compiler and the chained parser.

■ tree, chunk and predict: the document tree, the tree-level chunk parser and
the prediction engine.

The base package contains the parsing state stack and other data types which
are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cnl

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cnl'.
func tracer() tracing.Trace {
	return tracing.Select("cnl")
}
