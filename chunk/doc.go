/*
Package chunk classifies the text of a document tree.

A chunk is a span of a line which has been recognized as a tactic, as a
comment, or which is erroneous. Parsing a document results in a flat list of
chunks, covering every line from offset 0 without gaps.

Structure is checked on top of the tactics: a paragraph with children has
to be opened by a tactic marked as begin of paragraph, and its last tactic
has to be marked as end of paragraph. Tactics may be matched by the empty
input at paragraph boundaries to satisfy these conditions; such chunks
have collapsed ranges. A structural violation results in a fatal chunk, and
every non-comment chunk after a fatal one is fatal, too.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package chunk

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cnl.chunk'.
func tracer() tracing.Trace {
	return tracing.Select("cnl.chunk")
}
