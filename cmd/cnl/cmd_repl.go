package main

import (
	"fmt"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/cnl"
	"github.com/npillmayer/cnl/library"
	"github.com/npillmayer/cnl/predict"
	"github.com/npillmayer/cnl/tactic"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func newREPLCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Parse lines interactively, threading the parsing state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			gtrace.SyntaxTracer = gologadapter.New()
			gtrace.SyntaxTracer.SetTraceLevel(tracing.TraceLevelFromString(opts.trace))
			rl, err := readline.New("cnl> ")
			if err != nil {
				return err
			}
			defer rl.Close()
			pterm.Info.Println("Welcome to the CNL REPL, using " + opts.library.String())
			pterm.Info.Println("Enter text, or :help for commands. Quit with <ctrl>D")
			intp := newIntp(opts.library)
			intp.loop(rl)
			return nil
		},
	}
}

// intp is the REPL interpreter. It keeps the parsing state between lines.
type intp struct {
	lib   *library.Library
	state cnl.State
	code  strings.Builder
}

func newIntp(lib *library.Library) *intp {
	return &intp{lib: lib, state: lib.Initial.Clone()}
}

func (intp *intp) loop(rl *readline.Instance) {
	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if quit := intp.eval(line); quit {
			break
		}
	}
	fmt.Println("Good bye!")
}

// eval executes a command or parses a line of text. It returns true if the
// user wants to quit.
func (intp *intp) eval(line string) bool {
	if !strings.HasPrefix(line, ":") {
		intp.parse(line)
		return false
	}
	cmd, arg := line, ""
	if i := strings.IndexByte(line, ' '); i > 0 {
		cmd, arg = line[:i], strings.TrimSpace(line[i+1:])
	}
	switch cmd {
	case ":quit", ":q":
		return true
	case ":state":
		if arg != "" {
			intp.state = parseState(arg, intp.lib)
		}
		pterm.Info.Println(fmt.Sprintf("state %v", intp.state))
	case ":reset":
		intp.state = intp.lib.Initial.Clone()
		intp.code.Reset()
		pterm.Info.Println(fmt.Sprintf("state %v", intp.state))
	case ":code":
		pterm.Println(intp.code.String())
	case ":predict":
		intp.predict(arg)
	case ":help":
		pterm.Println(":state [s1,s2]  show or set the parsing state")
		pterm.Println(":reset          reset state and code")
		pterm.Println(":code           show code generated so far")
		pterm.Println(":predict text   predict continuations of text")
		pterm.Println(":quit           leave the REPL")
	default:
		pterm.Error.Println("unknown command " + cmd)
	}
	return false
}

func (intp *intp) parse(line string) {
	chain := tactic.ParseChained(intp.lib.Tactics(), line, intp.state, true, true)
	start := 0
	for i, r := range chain.Results {
		pterm.Info.Println(fmt.Sprintf("%d…%d %s %v → %q", start, chain.Ends[i],
			r.Tactic.Name, r.Captures, r.Code()))
		intp.code.WriteString(r.Code())
		start = chain.Ends[i]
	}
	if n := len([]rune(line)); chain.Offset < n {
		pterm.Error.Println(fmt.Sprintf("%d…%d not recognized: %q", chain.Offset, n,
			string([]rune(line)[chain.Offset:])))
	}
	intp.state = chain.State
	pterm.Info.Println(fmt.Sprintf("state %v", intp.state))
}

func (intp *intp) predict(text string) {
	predictions, ok := predict.Predict(intp.lib.Tactics(), text, intp.state, predict.DefaultMaxIterations)
	if !ok {
		pterm.Error.Println(fmt.Sprintf("%q cannot be parsed in state %v", text, intp.state))
		return
	}
	for _, p := range predictions {
		pterm.Println(text + p.Text())
	}
}
