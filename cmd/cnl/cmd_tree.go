package main

import (
	"github.com/npillmayer/cnl/chunk"
	"github.com/npillmayer/cnl/tree"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func newTreeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "tree <file>",
		Short: "Show the document tree with the chunks of every line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := readTree(args[0])
			if err != nil {
				return err
			}
			chunks := opts.library.Parser().Parse(root)
			ll := leveledChunks(root, chunks)
			tracer().Debugf("|ll| = %d", len(ll))
			pterm.DefaultTree.WithRoot(pterm.NewTreeFromLeveledList(ll)).Render()
			return nil
		},
	}
}

// leveledChunks lists the lines of a document, each followed by its chunks
// one level deeper. Chunks at the level of a paragraph follow the chunks of
// the paragraph's line.
func leveledChunks(root *tree.Root, chunks []chunk.Chunk) pterm.LeveledList {
	byParent := make(map[string][]chunk.Chunk)
	for _, c := range chunks {
		key := c.Range.Parent.String()
		byParent[key] = append(byParent[key], c)
	}
	ll := pterm.LeveledList{pterm.LeveledListItem{Level: 0, Text: "document"}}
	tree.Lines(root, func(pos tree.Position, level int, line *tree.Line) {
		ll = append(ll, pterm.LeveledListItem{Level: level + 1, Text: line.Value})
		para := pos[:len(pos)-1]
		for _, c := range append(byParent[pos.String()], byParent[para.String()]...) {
			ll = append(ll, pterm.LeveledListItem{Level: level + 2, Text: chunkLabel(c)})
		}
	})
	return ll
}
