/*
Package library provides ready-made sets of tactics.

Demo is a small set of tactics resembling the tactic language of a proof
assistant. French is a set of tactics for writing proofs in plain French.
Both libraries start in parsing state [START] and use the following main
states:

    reasoning   main reasoning state
    case        a case analysis is in progress (French)
    destruction a destruction is in progress (Demo)
    end         the goal is supposedly proven

Libraries are created on first use and their registries are frozen.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package library

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cnl.library'.
func tracer() tracing.Trace {
	return tracing.Select("cnl.library")
}
