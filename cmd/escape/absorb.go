package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/escaperoute/absorb"
	"github.com/katalvlaran/escaperoute/internal/output"
	"github.com/katalvlaran/escaperoute/scenario"
)

func (a *app) absorbCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "absorb FILE",
		Short: "Exact absorption probabilities of a chain started in state 0",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c, err := scenario.ReadChain(args[0])
			if err != nil {
				return err
			}
			res, err := absorb.Probabilities(c.Counts)
			if err != nil {
				return err
			}
			a.logger.Debug("chain solved", "scenario", c.Name, "states", res.States, "denominator", res.Denominator)

			return a.printer.Absorb(output.NewAbsorbReport(c.Name, res))
		},
	}
}
