package main

import (
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/cnl/chunk"
	"github.com/npillmayer/cnl/tree"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func newParseCmd(opts *options) *cobra.Command {
	var codeOnly bool
	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Classify the lines of a document and print the generated code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := readTree(args[0])
			if err != nil {
				return err
			}
			chunks := opts.library.Parser().Parse(root)
			if !codeOnly {
				for _, c := range chunks {
					printChunk(c)
				}
			}
			fmt.Println(chunk.Code(chunks))
			return nil
		},
	}
	cmd.Flags().BoolVar(&codeOnly, "code", false, "print generated code only")
	return cmd
}

// readTree reads a document from a file, or from stdin for "-".
func readTree(filename string) (*tree.Root, error) {
	var data []byte
	var err error
	if filename == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(filename)
	}
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	root, err := tree.FromText(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return root, nil
}

func printChunk(c chunk.Chunk) {
	if c.IsError() {
		pterm.Error.Println(chunkLabel(c))
		return
	}
	pterm.Info.Println(chunkLabel(c))
}

func chunkLabel(c chunk.Chunk) string {
	switch c.Kind {
	case chunk.ErrorChunk:
		return fmt.Sprintf("%v %s, state %v", c.Range, c.Reason.Message(), c.StateBefore)
	default:
		s := fmt.Sprintf("%v %s %s, state %v", c.Range, c.Kind, c.Tactic.Name, c.StateBefore)
		if len(c.Captures) > 0 {
			s += " " + c.Captures.String()
		}
		if c.Code != "" {
			s += fmt.Sprintf(" → %q", c.Code)
		}
		return s
	}
}
