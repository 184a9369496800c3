package main

import (
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	rootCmd := &cobra.Command{
		Use:           "cnl",
		Short:         "Controlled natural language parser",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd.Flags())
		},
	}
	opts.addFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(newParseCmd(opts))
	rootCmd.AddCommand(newTreeCmd(opts))
	rootCmd.AddCommand(newPredictCmd(opts))
	rootCmd.AddCommand(newTacticsCmd(opts))
	rootCmd.AddCommand(newREPLCmd(opts))
	rootCmd.AddCommand(newLSPCmd(opts))
	return rootCmd
}
