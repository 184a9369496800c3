/*
Package predict suggests how a partial input may be continued.

Given a prefix of a line of text, Predict explores the Earley parser for the
composed grammar of a set of tactics. Every open item expecting a literal
rune extends a prediction by that rune; every open item at the start of a
reference extends it by a placeholder for the reference. The exploration
stops after a configurable number of steps.

A prediction is a list of steps, where adjacent literal steps are merged:

    [ "destruct ", <identifier>, "." ]

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package predict

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cnl.predict'.
func tracer() tracing.Trace {
	return tracing.Select("cnl.predict")
}
