package chunk

import (
	"strings"
	"testing"

	"github.com/npillmayer/cnl"
	"github.com/npillmayer/cnl/tactic"
	"github.com/npillmayer/cnl/tree"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

type expect struct {
	kind       Kind
	parent     tree.Position
	start, end int
	reason     Reason
}

func check(t *testing.T, chunks []Chunk, expected []expect) {
	t.Helper()
	if len(chunks) != len(expected) {
		t.Fatalf("expected %d chunks, got %d: %v", len(expected), len(chunks), chunks)
	}
	for i, x := range expected {
		c := chunks[i]
		if c.Kind != x.kind || !c.Range.Parent.Equal(x.parent) ||
			c.Range.Start != x.start || c.Range.End != x.end || c.Reason != x.reason {
			t.Errorf("chunk #%d: expected %s %v %d…%d %q, got %v", i, x.kind, x.parent,
				x.start, x.end, x.reason, c)
		}
	}
}

func parse(t *testing.T, r *tactic.Registry, initial cnl.State, text string) []Chunk {
	t.Helper()
	root, err := tree.FromText(text)
	if err != nil {
		t.Fatal(err)
	}
	return NewParser(r.Tactics(), initial).Parse(root)
}

func TestLineOneTactic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cnl.chunk")
	defer teardown()
	//
	r := tactic.NewRegistry()
	r.MustRegister("", "{|Hello World !|}", func(tactic.Captures) string { return "" })
	chunks := parse(t, r, nil, "Hello World !")
	check(t, chunks, []expect{{TacticChunk, tree.Position{0, 0}, 0, 13, ""}})
}

func TestLineMultipleTactics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cnl.chunk")
	defer teardown()
	//
	r := tactic.NewRegistry()
	r.MustRegister("", "{|Hello World !|}", nil)
	chunks := parse(t, r, nil, "Hello World !Hello World !Hello World !")
	check(t, chunks, []expect{
		{TacticChunk, tree.Position{0, 0}, 0, 13, ""},
		{TacticChunk, tree.Position{0, 0}, 13, 26, ""},
		{TacticChunk, tree.Position{0, 0}, 26, 39, ""},
	})
}

func TestLineArbitrarySpaces(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cnl.chunk")
	defer teardown()
	//
	r := tactic.NewRegistry()
	r.MustRegister("", "{|Hello World !|}", nil)
	text := "Hello World !" + strings.Repeat(" ", 6) + "Hello World !" +
		strings.Repeat(" ", 40) + "Hello World !"
	chunks := parse(t, r, nil, text)
	check(t, chunks, []expect{
		{TacticChunk, tree.Position{0, 0}, 0, 13, ""},
		{TacticChunk, tree.Position{0, 0}, 13, 32, ""},
		{TacticChunk, tree.Position{0, 0}, 32, 85, ""},
	})
}

func TestLineStates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cnl.chunk")
	defer teardown()
	//
	r := tactic.NewRegistry()
	r.MustRegister("", "{0|Hello World0 !|-+1}", nil)
	r.MustRegister("", "{1|Hello World1 !|-+2}", nil)
	r.MustRegister("", "{2|Hello World2 !|-}", nil)
	chunks := parse(t, r, cnl.State{"0"}, "Hello World0 !Hello World1 !Hello World2 !")
	check(t, chunks, []expect{
		{TacticChunk, tree.Position{0, 0}, 0, 14, ""},
		{TacticChunk, tree.Position{0, 0}, 14, 28, ""},
		{TacticChunk, tree.Position{0, 0}, 28, 42, ""},
	})
	for i, state := range []cnl.State{{"0"}, {"1"}, {"2"}} {
		if !chunks[i].StateBefore.Equal(state) {
			t.Errorf("expected chunk #%d to start in state %v, is %v", i, state, chunks[i].StateBefore)
		}
	}
	if s := StateAfter(cnl.State{"0"}, chunks); len(s) != 0 {
		t.Errorf("expected empty state after chunks, got %v", s)
	}
}

func paragraphTactics() *tactic.Registry {
	r := tactic.NewRegistry()
	r.MustRegister("", "{0|Hello World0 !|>-+1}", nil)
	r.MustRegister("", "{1|Hello World1 !|-+2}", nil)
	r.MustRegister("", "{2|Hello World2 !|<-}", nil)
	return r
}

func TestParagraphStates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cnl.chunk")
	defer teardown()
	//
	chunks := parse(t, paragraphTactics(), cnl.State{"0"},
		"Hello World0 !\n\tHello World1 !\n\tHello World2 !")
	check(t, chunks, []expect{
		{TacticChunk, tree.Position{0, 0}, 0, 14, ""},
		{TacticChunk, tree.Position{0, 1, 0, 0}, 0, 14, ""},
		{TacticChunk, tree.Position{0, 1, 1, 0}, 0, 14, ""},
	})
}

func TestParagraphStructureError(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cnl.chunk")
	defer teardown()
	//
	chunks := parse(t, paragraphTactics(), cnl.State{"0"},
		"Hello World0 !\n\tHello World1 !\nHello World2 !")
	check(t, chunks, []expect{
		{TacticChunk, tree.Position{0, 0}, 0, 14, ""},
		{TacticChunk, tree.Position{0, 1, 0, 0}, 0, 14, ""},
		{ErrorChunk, tree.Position{0}, -1, -1, FatalError},
		{ErrorChunk, tree.Position{1, 0}, 0, 14, FatalError},
	})
	if !chunks[2].Fatal || !chunks[3].Fatal {
		t.Errorf("expected chunks #2 and #3 to be fatal")
	}
}

func TestFatalContagion(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cnl.chunk")
	defer teardown()
	//
	r := paragraphTactics()
	r.MustRegister("comment", "{*|(|comment|)|}", func(c tactic.Captures) string {
		return "(*" + c.Get("comment") + "*)"
	})
	chunks := parse(t, r, cnl.State{"0"}, "Hello World0 !\n\tHello World1 !\n(c)Hello World2 !")
	check(t, chunks, []expect{
		{TacticChunk, tree.Position{0, 0}, 0, 14, ""},
		{TacticChunk, tree.Position{0, 1, 0, 0}, 0, 14, ""},
		{ErrorChunk, tree.Position{0}, -1, -1, FatalError},
		{CommentChunk, tree.Position{1, 0}, 0, 3, ""},
		{ErrorChunk, tree.Position{1, 0}, 3, 17, FatalError},
	})
	if chunks[3].Code != "(*c*)" {
		t.Errorf("expected comment code (*c*), got %q", chunks[3].Code)
	}
	if !chunks[4].StateBefore.Equal(cnl.State{}) {
		t.Errorf("expected fatal chunk to carry the final state, got %v", chunks[4].StateBefore)
	}
}

func TestLineErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cnl.chunk")
	defer teardown()
	//
	r := tactic.NewRegistry()
	r.MustRegister("Comment", "{*|(|comment|)|}", func(c tactic.Captures) string {
		return "(*" + c.Get("comment") + "*)"
	})
	r.MustRegister("stop", "{*|a.|#}", func(tactic.Captures) string { return "stop." })
	r.MustRegister("b", "{*|b.|}", func(tactic.Captures) string { return "b." })
	chunks := parse(t, r, nil, "a.(x)b.")
	check(t, chunks, []expect{
		{TacticChunk, tree.Position{0, 0}, 0, 2, ""},
		{CommentChunk, tree.Position{0, 0}, 2, 5, ""},
		{ErrorChunk, tree.Position{0, 0}, 5, 7, TacticAfterLineEnd},
	})
	if code := Code(chunks); code != "stop. (*x*)" {
		t.Errorf("expected code 'stop. (*x*)', got %q", code)
	}
	chunks = parse(t, r, nil, "b.b.xyz")
	check(t, chunks, []expect{
		{TacticChunk, tree.Position{0, 0}, 0, 2, ""},
		{TacticChunk, tree.Position{0, 0}, 2, 4, ""},
		{ErrorChunk, tree.Position{0, 0}, 4, 7, TacticNotRecognized},
	})
}

func TestMixedLineIsContiguous(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cnl.chunk")
	defer teardown()
	//
	r := tactic.NewRegistry()
	r.MustRegister("Comment", "{*|(|comment|)|}", nil)
	r.MustRegister("stop", "{*|a.|#}", nil)
	r.MustRegister("b", "{*|b.|}", nil)
	line := "b.(x)a.b.xyz"
	chunks := parse(t, r, nil, line)
	pos := tree.Position{0, 0}
	check(t, chunks, []expect{
		{TacticChunk, pos, 0, 2, ""},
		{CommentChunk, pos, 2, 5, ""},
		{TacticChunk, pos, 5, 7, ""},
		{ErrorChunk, pos, 7, 9, TacticAfterLineEnd},
		{ErrorChunk, pos, 9, 12, TacticAfterLineEnd},
	})
	groups, err := GroupByMain(LineChunks(chunks, pos, line))
	if err != nil {
		t.Fatalf("expected chunks of line to be contiguous: %v", err)
	}
	var texts []string
	for _, g := range groups {
		texts = append(texts, g.Text(line))
	}
	if strings.Join(texts, "|") != "b.|(x)|a.|b.|xyz" {
		t.Errorf("unexpected groups %q", texts)
	}
}

func TestChildWithoutBegin(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cnl.chunk")
	defer teardown()
	//
	r := tactic.NewRegistry()
	r.MustRegister("a", "{*|a|}", nil)
	r.MustRegister("b", "{*|b|<}", nil)
	chunks := parse(t, r, nil, "a\n\tb")
	check(t, chunks, []expect{
		{TacticChunk, tree.Position{0, 0}, 0, 1, ""},
		{ErrorChunk, tree.Position{0, 1, 0, 0}, 0, 1, ChildWithoutParagraphBegin},
		{ErrorChunk, tree.Position{0}, -1, -1, FatalError},
	})
}

func TestEmptyInputTactics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cnl.chunk")
	defer teardown()
	//
	r := tactic.NewRegistry()
	r.MustRegister("open", "{*|open.|>+p}", nil)
	r.MustRegister("x", "{p|x.|}", nil)
	r.MustRegister("close", "{p||<-}", nil)
	chunks := parse(t, r, nil, "open.\n\tx.")
	check(t, chunks, []expect{
		{TacticChunk, tree.Position{0, 0}, 0, 5, ""},
		{TacticChunk, tree.Position{0, 1, 0, 0}, 0, 2, ""},
		{TacticChunk, tree.Position{0, 1, 0}, 0, 0, ""},
	})
	if chunks[2].Tactic.Name != "close" || !chunks[2].StateBefore.Equal(cnl.State{"p"}) {
		t.Errorf("expected paragraph to be closed by an empty match, got %v", chunks[2])
	}
}
