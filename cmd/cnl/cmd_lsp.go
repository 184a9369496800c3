package main

import (
	"github.com/npillmayer/cnl/lsp"
	"github.com/spf13/cobra"
)

func newLSPCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "lsp",
		Short: "Start the language server on stdin/stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			server := lsp.NewServer(opts.library, version)
			return server.RunStdio()
		},
	}
}
