/*
Package spec implements the pattern language tactics are written in.

A tactic pattern has the form

    {HEADER|CONTENT|FOOTER}

The header is a state filter: '*' makes a tactic reachable from any parsing
state, an empty header makes it reachable only from the empty state, and a
space-separated list of state names requires the state stack to end with
exactly these names.

The content alternates between text and references, separated by '|':

    destruct |identifier|.

is the text "destruct ", a reference named "identifier" and the text ".".
Text may contain groups: "[ … ]*" is an iteration, "[ a / b ]" is an
alternation. A backslash escapes one of | [ ] / \ { }; any other backslash
is taken literally.

The footer starts with an optional structure marker, followed by state
actions:

    >      begin of paragraph
    <      end of paragraph
    #      hard line end
    -      pop the topmost state
    +name  push state 'name'

Example:

    spec.Parse("{reasoning|destruct |identifier|.|>+destruction}")

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package spec

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cnl.spec'.
func tracer() tracing.Trace {
	return tracing.Select("cnl.spec")
}
