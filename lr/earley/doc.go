/*
Package earley provides an incremental Earley parser.

Earley parsing can handle every context-free grammar, including ambiguous
ones and grammars with epsilon-productions. Input is fed one token at a time,
and after every token clients may inspect the chart: completed derivations
of the start symbol (results) as well as items still in progress together
with the symbol they expect next. The latter allows to predict what input
may follow.

Chart columns are never modified once they are complete. This makes saving,
restoring and cloning a parser cheap, which is convenient for speculative
feeding.

Nullable symbols are handled following
"Practical Earley Parsing" by John Aycock and R. Nigel Horspool
(The Computer Journal, Vol. 45, No. 6, 2002): whenever a nullable
non-terminal is predicted, the predicting item is advanced over it at once.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package earley

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cnl.lr'.
func tracer() tracing.Trace {
	return tracing.Select("cnl.lr")
}
