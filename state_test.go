package cnl

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestResolvePushPop(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cnl")
	defer teardown()
	//
	s := State{"0"}
	r := Resolve(s, Pop(), Push("1"))
	if !r.Equal(State{"1"}) {
		t.Errorf("expected [1], got %v", r)
	}
	if !s.Equal(State{"0"}) {
		t.Errorf("input state has been modified: %v", s)
	}
}

func TestResolvePopOnEmpty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cnl")
	defer teardown()
	//
	r := Resolve(State{}, Pop(), Pop(), Push("a"))
	if !r.Equal(State{"a"}) {
		t.Errorf("expected [a], got %v", r)
	}
	if r := Resolve(nil); len(r) != 0 {
		t.Errorf("expected empty state, got %v", r)
	}
}

func TestResolveDoesNotAlias(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cnl")
	defer teardown()
	//
	base := make(State, 1, 4)
	base[0] = "x"
	a := Resolve(base, Push("a"))
	b := Resolve(base, Push("b"))
	if a.Top() != "a" || b.Top() != "b" {
		t.Errorf("derived states share memory: %v, %v", a, b)
	}
}

func TestStateSuffix(t *testing.T) {
	s := State{"a", "b", "c"}
	if !s.Suffix(2).Equal(State{"b", "c"}) {
		t.Errorf("expected suffix [b c], got %v", s.Suffix(2))
	}
	if !s.Suffix(5).Equal(s) {
		t.Errorf("expected whole stack, got %v", s.Suffix(5))
	}
}
