package main

import (
	"fmt"
	"strings"

	"github.com/npillmayer/cnl/predict"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func newPredictCmd(opts *options) *cobra.Command {
	var state string
	var maxIter int
	cmd := &cobra.Command{
		Use:   "predict [text]",
		Short: "Predict how a line of text may be continued",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			s := parseState(state, opts.library)
			predictions, ok := predict.Predict(opts.library.Tactics(), text, s, maxIter)
			if !ok {
				return fmt.Errorf("%q cannot be parsed in state %v", text, s)
			}
			if len(predictions) == 0 {
				pterm.Info.Println("no predictions")
			}
			for _, p := range predictions {
				fmt.Println(text + p.Text())
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&state, "state", "s", "", "comma separated parsing state, default is the library's initial state")
	cmd.Flags().IntVar(&maxIter, "max-iter", predict.DefaultMaxIterations, "maximum number of prediction steps")
	return cmd
}
