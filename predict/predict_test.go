package predict

import (
	"testing"

	"github.com/npillmayer/cnl"
	"github.com/npillmayer/cnl/tactic"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func lit(s string) Step {
	return Step{Kind: Literal, Value: s}
}

func ref(s string) Step {
	return Step{Kind: Reference, Value: s}
}

func contains(predictions []Steps, steps Steps) bool {
	k := keyOf(steps)
	for _, p := range predictions {
		if keyOf(p) == k {
			return true
		}
	}
	return false
}

func demoTactics() []*tactic.Tactic {
	r := tactic.NewRegistry()
	r.MustRegister("destruct", "{*|destruct |identifier|.|}", nil)
	r.MustRegister("simpl", "{*|simpl.|}", nil)
	return r.Tactics()
}

func TestPredictFromScratch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cnl.predict")
	defer teardown()
	//
	predictions, ok := Predict(demoTactics(), "", nil, 32)
	if !ok {
		t.Fatalf("expected empty input to be parseable")
	}
	t.Logf("predictions = %v", predictions)
	if !contains(predictions, Steps{lit("simpl.")}) {
		t.Errorf("expected prediction 'simpl.', got %v", predictions)
	}
	if !contains(predictions, Steps{lit("destruct "), ref("identifier"), lit(".")}) {
		t.Errorf("expected prediction 'destruct <identifier>.', got %v", predictions)
	}
}

func TestPredictInsideReference(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cnl.predict")
	defer teardown()
	//
	predictions, ok := Predict(demoTactics(), "destruct x", nil, 32)
	if !ok {
		t.Fatalf("expected 'destruct x' to be parseable")
	}
	if len(predictions) != 1 || keyOf(predictions[0]) != keyOf(Steps{lit(".")}) {
		t.Errorf("expected single prediction '.', got %v", predictions)
	}
	if predictions[0].Text() != "." {
		t.Errorf("expected text '.', got %q", predictions[0].Text())
	}
}

func TestPredictUnparseable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cnl.predict")
	defer teardown()
	//
	if p, ok := Predict(demoTactics(), "xyz", nil, 32); ok {
		t.Errorf("expected 'xyz' to fail, got %v", p)
	}
}

func TestPredictThroughFallback(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cnl.predict")
	defer teardown()
	//
	r := tactic.NewRegistry()
	r.MustRegister("start", "{START||-+reasoning}", nil)
	r.MustRegister("simpl", "{reasoning|simpl.|}", nil)
	predictions, ok := Predict(r.Tactics(), "", cnl.State{"START"}, 0)
	if !ok {
		t.Fatalf("expected empty input to be parseable")
	}
	if len(predictions) != 1 || predictions[0].Text() != "simpl." {
		t.Errorf("expected prediction 'simpl.' after fallback, got %v", predictions)
	}
}

func TestPredictDropsLoneSpace(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cnl.predict")
	defer teardown()
	//
	r := tactic.NewRegistry()
	r.MustRegister("spaces", "{*| |}", nil)
	predictions, ok := Predict(r.Tactics(), "", nil, 8)
	if !ok {
		t.Fatalf("expected empty input to be parseable")
	}
	if len(predictions) != 0 {
		t.Errorf("expected no predictions, got %v", predictions)
	}
}

func TestMerge(t *testing.T) {
	steps := merge(Steps{lit("a"), lit(" "), lit("\t "), lit("b"), ref("x"), lit("c")})
	if len(steps) != 3 || steps[0].Value != "a b" || steps.Text() != "a b<x>c" {
		t.Errorf("unexpected merge result %v", steps)
	}
}
