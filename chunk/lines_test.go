package chunk

import (
	"errors"
	"testing"

	"github.com/npillmayer/cnl/tree"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func rangeChunk(pos tree.Position, from, to int) Chunk {
	return Chunk{Kind: TacticChunk, Range: Range{Parent: pos, Start: from, End: to}}
}

func TestGroupByMain(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cnl.chunk")
	defer teardown()
	//
	pos := tree.Position{0, 0}
	chunks := []Chunk{
		rangeChunk(pos, 13, 26),
		rangeChunk(tree.Position{0}, -1, -1),
		rangeChunk(pos, 0, 0),
		rangeChunk(pos, 0, 13),
		rangeChunk(pos, 13, 13),
	}
	line := LineChunks(chunks, pos, "Hello World !Hello World !")
	if len(line) != 4 || line[0].Range.End != 0 {
		t.Fatalf("expected 4 sorted line chunks, got %v", line)
	}
	groups, err := GroupByMain(line)
	if err != nil {
		t.Fatal(err)
	}
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if len(groups[0].Chunks) != 2 || len(groups[1].Chunks) != 2 {
		t.Errorf("expected collapsed chunks to join groups, got %v", groups)
	}
	if txt := groups[1].Text("Hello World !Hello World2!"); txt != "Hello World2!" {
		t.Errorf("expected text of second group to be 'Hello World2!', is %q", txt)
	}
	_, err = GroupByMain([]Chunk{rangeChunk(pos, 0, 5), rangeChunk(pos, 6, 8)})
	if !errors.Is(err, ErrNotContiguous) {
		t.Errorf("expected ErrNotContiguous, got %v", err)
	}
}

func TestEmptyLineChunks(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cnl.chunk")
	defer teardown()
	//
	line := LineChunks(nil, tree.Position{2, 0}, "héllo")
	if len(line) != 1 || line[0].Kind != CommentChunk || line[0].Range.End != 5 {
		t.Fatalf("expected a comment chunk covering the line, got %v", line)
	}
	groups, err := GroupByMain(line)
	if err != nil || len(groups) != 1 {
		t.Errorf("expected a single group, got %v, %v", groups, err)
	}
}

func TestSortChunks(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cnl.chunk")
	defer teardown()
	//
	chunks := []Chunk{
		rangeChunk(tree.Position{1, 0}, 0, 3),
		rangeChunk(tree.Position{0}, -1, -1),
		rangeChunk(tree.Position{0, 1, 0, 0}, 0, 2),
		rangeChunk(tree.Position{0, 0}, 5, 7),
		rangeChunk(tree.Position{0, 0}, 0, 5),
	}
	Sort(chunks)
	expected := []tree.Position{{0, 0}, {0, 0}, {0, 1, 0, 0}, {0}, {1, 0}}
	for i, pos := range expected {
		if !chunks[i].Range.Parent.Equal(pos) {
			t.Errorf("chunk #%d: expected position %v, got %v", i, pos, chunks[i].Range.Parent)
		}
	}
	if chunks[0].Range.Start != 0 {
		t.Errorf("expected chunks of a line to be sorted by offset")
	}
}
