package main

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/npillmayer/cnl"
	"github.com/npillmayer/cnl/library"
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/schukonf/koanfadapter"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/pterm/pterm"
	"github.com/spf13/pflag"
)

// options are the global command line flags.
type options struct {
	lib     string
	trace   string
	library *library.Library
}

// Flags named like configuration keys are visible to all packages through
// gconf.
func (o *options) addFlags(flags *pflag.FlagSet) {
	flags.StringVarP(&o.lib, "lib", "l", "french", "tactic library (demo, french)")
	flags.StringVar(&o.trace, "trace", "Error", "trace level [Debug|Info|Error]")
	flags.Bool("cnl-dump-grammar", false, "trace composed grammars")
	flags.Bool("panic-on-parser-stuck", false, "panic if a derivation cannot be reconstructed")
}

// setup installs tracing and configuration and loads the tactic library.
func (o *options) setup(flags *pflag.FlagSet) error {
	initDisplay()
	conf, err := o.config(flags)
	if err != nil {
		return err
	}
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	gconf.Initialize(conf)
	tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.GetAdapter()))
	tracer().SetTraceLevel(tracing.TraceLevelFromString(o.trace))
	tracer().Infof("trace level is %s", o.trace)
	lib, err := library.Lookup(o.lib)
	if err != nil {
		return err
	}
	o.library = lib
	return nil
}

// config creates the application configuration from command line flags.
// No configuration files are read.
func (o *options) config(flags *pflag.FlagSet) (*koanfadapter.KConf, error) {
	k := koanf.New(".")
	if err := k.Load(posflag.Provider(flags, ".", k), nil); err != nil {
		return nil, fmt.Errorf("reading command line flags: %w", err)
	}
	conf := koanfadapter.New(k, "", nil)
	conf.Set("tracingsyntax", o.trace)
	return conf, nil
}

// parseState reads a parsing state from a comma separated list of state
// names. An empty string yields the library's initial state.
func parseState(s string, lib *library.Library) cnl.State {
	s = strings.TrimSpace(s)
	if s == "" {
		return lib.Initial.Clone()
	}
	if s == "[]" {
		return cnl.State{}
	}
	var state cnl.State
	for _, name := range strings.Split(s, ",") {
		if name = strings.TrimSpace(name); name != "" {
			state = append(state, name)
		}
	}
	return state
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}
