package spec

import (
	"errors"
	"testing"

	"github.com/npillmayer/cnl"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestParseHeaderAndFooter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cnl.spec")
	defer teardown()
	//
	s, err := Parse("  {reasoning|destruct |identifier|.|>+destruction}  ")
	if err != nil {
		t.Fatal(err)
	}
	if s.Header.Filter.Kind != Exact || len(s.Header.Filter.States) != 1 ||
		s.Header.Filter.States[0] != "reasoning" {
		t.Errorf("unexpected header %v", s.Header.Filter)
	}
	if s.Footer.Structure != cnl.BeginOfParagraph {
		t.Errorf("expected begin of paragraph, got %v", s.Footer.Structure)
	}
	if len(s.Footer.Actions) != 1 || s.Footer.Actions[0] != cnl.Push("destruction") {
		t.Errorf("unexpected actions %v", s.Footer.Actions)
	}
	if len(s.Content) != 3 {
		t.Fatalf("expected 3 content nodes, got %d", len(s.Content))
	}
	if txt, ok := s.Content[0].(*Text); !ok || txt.Value != "destruct " {
		t.Errorf("expected text 'destruct ', got %v", s.Content[0])
	}
	if ref, ok := s.Content[1].(*Reference); !ok || ref.Name != "identifier" {
		t.Errorf("expected reference 'identifier', got %v", s.Content[1])
	}
	if txt, ok := s.Content[2].(*Text); !ok || txt.Value != "." {
		t.Errorf("expected text '.', got %v", s.Content[2])
	}
}

func TestParseFilters(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cnl.spec")
	defer teardown()
	//
	for _, x := range []struct {
		pattern string
		name    string
	}{
		{"{*| |}", "ANYTHING"},
		{"{|Hello World !|}", "FILTER_DEFAULT"},
		{"{destruction end||#-}", "FILTER:destruction end"},
		{"{START||-+reasoning}", "FILTER:START"},
	} {
		s, err := Parse(x.pattern)
		if err != nil {
			t.Errorf("%s: %v", x.pattern, err)
			continue
		}
		if n := s.Header.Filter.Name(); n != x.name {
			t.Errorf("%s: expected filter name %q, got %q", x.pattern, x.name, n)
		}
	}
}

func TestFilterAccepts(t *testing.T) {
	if !ExactFilter("b", "c").Accepts(cnl.State{"a", "b", "c"}) {
		t.Errorf("filter [b c] should accept stack [a b c]")
	}
	if ExactFilter("a", "b").Accepts(cnl.State{"a", "b", "c"}) {
		t.Errorf("filter [a b] should not accept stack [a b c]")
	}
	if !ExactFilter().Accepts(cnl.State{}) || ExactFilter().Accepts(cnl.State{"a"}) {
		t.Errorf("empty filter should accept only the empty stack")
	}
	if !UniversalFilter().Accepts(cnl.State{"x"}) {
		t.Errorf("universal filter should accept anything")
	}
}

func TestFallbackAndFooterActions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cnl.spec")
	defer teardown()
	//
	s, err := Parse("{destruction||--+end}")
	if err != nil {
		t.Fatal(err)
	}
	if !s.IsFallback() {
		t.Errorf("empty content should make a fallback tactic")
	}
	want := []cnl.Action{cnl.Pop(), cnl.Pop(), cnl.Push("end")}
	if len(s.Footer.Actions) != len(want) {
		t.Fatalf("expected %v, got %v", want, s.Footer.Actions)
	}
	for i := range want {
		if s.Footer.Actions[i] != want[i] {
			t.Errorf("action #%d: expected %v, got %v", i, want[i], s.Footer.Actions[i])
		}
	}
	s, err = Parse("{destruction end||#-}")
	if err != nil {
		t.Fatal(err)
	}
	if s.Footer.Structure != cnl.LineEnd {
		t.Errorf("expected hard line end, got %v", s.Footer.Structure)
	}
}

func TestEscapes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cnl.spec")
	defer teardown()
	//
	s, err := Parse(`{reasoning|Soit |identifier| \in |inset|.|}`)
	if err != nil {
		t.Fatal(err)
	}
	if txt, ok := s.Content[2].(*Text); !ok || txt.Value != ` \in ` {
		t.Errorf("expected text ' \\in ', got %v", s.Content[2])
	}
	s, err = Parse(`{*|\|\[x\]\/\\|}`)
	if err != nil {
		t.Fatal(err)
	}
	if len(s.Content) != 1 {
		t.Fatalf("expected a single text node, got %v", s.Content)
	}
	if txt := s.Content[0].(*Text); txt.Value != `|[x]/\` {
		t.Errorf("expected unescaped text, got %q", txt.Value)
	}
}

func TestGroups(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cnl.spec")
	defer teardown()
	//
	s, err := Parse("{*|Soient [|x|, ]*et |y|.|}")
	if err != nil {
		t.Fatal(err)
	}
	it, ok := s.Content[1].(*Iteration)
	if !ok {
		t.Fatalf("expected iteration, got %T", s.Content[1])
	}
	if seq, ok := it.Body.(*Sequence); !ok || len(seq.Nodes) != 2 {
		t.Errorf("expected body |x|, ', ' got %v", it.Body)
	}
	if refs := s.References(); len(refs) != 2 || refs[0].Name != "x" || refs[1].Name != "y" {
		t.Errorf("unexpected references %v", refs)
	}
	s, err = Parse("{*|[left/right/|other|].|}")
	if err != nil {
		t.Fatal(err)
	}
	e, ok := s.Content[0].(*Either)
	if !ok || len(e.Branches) != 3 {
		t.Fatalf("expected either with 3 branches, got %v", s.Content[0])
	}
	if _, ok := e.Branches[2].(*Reference); !ok {
		t.Errorf("expected third branch to be a reference, got %T", e.Branches[2])
	}
}

func TestCanonicalString(t *testing.T) {
	for _, p := range []string{
		"{reasoning|destruct |identifier|.|>+destruction}",
		"{*|[a/b]*c|}",
		`{*|x \| y|-}`,
		"{a b||#-}",
	} {
		s, err := Parse(p)
		if err != nil {
			t.Errorf("%s: %v", p, err)
			continue
		}
		if s.String() != p {
			t.Errorf("expected canonical form %q, got %q", p, s.String())
		}
	}
}

func TestMalformedPatterns(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cnl.spec")
	defer teardown()
	//
	for _, p := range []string{
		"",
		"*|a|}",
		"{*|a|",
		"{*}",
		"{*|a}",
		"{*|a |x|}",
		"{*|||||}",
		"{*|a [b|}",
		"{*|a ]b|}",
		"{*|a|!}",
		"{*|a|+}",
		"{*|a|x}",
		"{*|a|-<}",
		"{a-b|x|}",
		"{* a|x|}",
	} {
		_, err := Parse(p)
		if err == nil {
			t.Errorf("expected %q to be rejected", p)
			continue
		}
		var serr *Error
		if !errors.As(err, &serr) {
			t.Errorf("expected *spec.Error for %q, got %T", p, err)
			continue
		}
		t.Logf("%q => %v", p, err)
	}
}
