/*
Package lsp implements a language server for controlled natural language
documents.

The server keeps the text of every open document, re-parses it on every
change and publishes error chunks as diagnostics. Completion requests are
answered with predictions for the text in front of the cursor, rendered as
snippets with a placeholder for every reference.

Documents are indented by tabs, one tab per level of nesting, as read by
package tree.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lsp

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cnl.lsp'.
func tracer() tracing.Trace {
	return tracing.Select("cnl.lsp")
}
