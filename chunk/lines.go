package chunk

import (
	"errors"
	"fmt"
	"sort"

	"github.com/npillmayer/cnl/tree"
)

// Errors when grouping the chunks of a line.
var (
	ErrNoMainChunk   = errors.New("chunk group without main chunk")
	ErrNotContiguous = errors.New("chunk does not start at the end of the previous one")
)

// LineChunks returns the chunks of the line at pos, sorted by offset. If
// no chunk has been created for the line, a comment chunk covering text is
// returned.
func LineChunks(chunks []Chunk, pos tree.Position, text string) []Chunk {
	var line []Chunk
	for _, c := range chunks {
		if c.Range.Parent.Equal(pos) {
			line = append(line, c)
		}
	}
	if len(line) == 0 {
		rng := Range{Parent: pos, Start: 0, End: len([]rune(text))}
		return []Chunk{{Kind: CommentChunk, Range: rng}}
	}
	sort.SliceStable(line, func(i, j int) bool {
		return line[i].Range.Start < line[j].Range.Start
	})
	return line
}

// Group is a non-collapsed chunk of a line together with the collapsed
// chunks following it.
type Group struct {
	Main   Chunk
	Chunks []Chunk
}

// Text returns the part of a line covered by the group's main chunk.
func (g Group) Text(line string) string {
	runes := []rune(line)
	from, to := g.Main.Range.Start, g.Main.Range.End
	if from < 0 || to > len(runes) || from > to {
		return ""
	}
	return string(runes[from:to])
}

// GroupByMain groups the chunks of a line, sorted by offset, around their
// main (non-collapsed) chunks. Collapsed chunks in front of the first main
// chunk join its group. It is an error if main chunks do not cover the line
// contiguously from offset 0.
func GroupByMain(line []Chunk) ([]Group, error) {
	var groups [][]Chunk
	for _, c := range line {
		if len(groups) == 0 {
			groups = append(groups, []Chunk{c})
			continue
		}
		last := groups[len(groups)-1]
		if _, ok := mainChunk(last); c.Range.IsCollapsed() || !ok {
			groups[len(groups)-1] = append(last, c)
		} else {
			groups = append(groups, []Chunk{c})
		}
	}
	result := make([]Group, 0, len(groups))
	index := 0
	for _, g := range groups {
		main, ok := mainChunk(g)
		if !ok && len(groups) != 1 {
			return nil, fmt.Errorf("%w: %v", ErrNoMainChunk, g)
		} else if !ok {
			main = g[0]
		}
		if main.Range.Start != index {
			return nil, fmt.Errorf("%w: %v starts at %d, expected %d", ErrNotContiguous,
				main, main.Range.Start, index)
		}
		index = main.Range.End
		result = append(result, Group{Main: main, Chunks: g})
	}
	return result, nil
}

func mainChunk(chunks []Chunk) (Chunk, bool) {
	for _, c := range chunks {
		if !c.Range.IsCollapsed() {
			return c, true
		}
	}
	return Chunk{}, false
}
