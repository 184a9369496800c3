package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTacticsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "tactics",
		Short: "List the tactics of a library",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("%v, initial state %v\n", opts.library, opts.library.Initial)
			for _, t := range opts.library.Tactics() {
				fmt.Printf("%3d  %-20s %s\n", t.Index(), t.Name, t.Textual)
			}
			return nil
		},
	}
}
