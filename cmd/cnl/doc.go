/*
Command cnl parses documents written in a controlled natural language.

Usage:

    cnl parse   [--lib demo|french] <file>     classify every line, print code
    cnl tree    [--lib demo|french] <file>     show document tree with chunks
    cnl predict [--state s1,s2] <text>         predict continuations of text
    cnl tactics [--lib demo|french]            list tactics of a library
    cnl repl    [--lib demo|french]            interactive chained parsing
    cnl lsp     [--lib demo|french]            language server on stdin/stdout

Tracing goes to stderr, with level set by --trace [Debug|Info|Error].

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cnl.cmd'.
func tracer() tracing.Trace {
	return tracing.Select("cnl.cmd")
}
