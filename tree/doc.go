/*
Package tree holds the document tree tactics are parsed from.

Documents are tab-indented texts. Every line starts a paragraph; lines
indented by one more tab than their predecessor form the content of the
preceding paragraph:

    Procédons par analyse de cas.
    	- Si x > 0.
    		On a donc y.
    	- Si x <= 0.

Nodes are addressed by positions. A position alternates between the index of
a paragraph and a slot: slot 0 is the paragraph's line, slot 1 its content.
[0 1 1 0] is the line of the second child of the first paragraph.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cnl.tree'.
func tracer() tracing.Trace {
	return tracing.Select("cnl.tree")
}
