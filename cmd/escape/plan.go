package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/escaperoute/internal/output"
	"github.com/katalvlaran/escaperoute/rescue"
	"github.com/katalvlaran/escaperoute/scenario"
)

func (a *app) planCmd() *cobra.Command {
	var (
		route     bool
		timeLimit int
	)
	cmd := &cobra.Command{
		Use:   "plan FILE",
		Short: "Pick the largest set of targets that can be rescued in time",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := scenario.ReadEscape(args[0])
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("time-limit") {
				e.TimeLimit = timeLimit
				if err := e.Validate(); err != nil {
					return err
				}
			}
			g, err := e.Graph()
			if err != nil {
				return err
			}

			opts := []rescue.Option{rescue.WithLogger(a.logger.With("scenario", e.Name))}
			if route || (!cmd.Flags().Changed("route") && a.cfg.Route) {
				opts = append(opts, rescue.WithRoute())
			}
			res, err := rescue.Solve(g, e.TimeLimit, opts...)
			if err != nil {
				return err
			}

			return a.printer.Plan(output.NewPlanReport(e.Name, g, e.TimeLimit, res))
		},
	}
	cmd.Flags().BoolVar(&route, "route", false, "print the full node walk")
	cmd.Flags().IntVar(&timeLimit, "time-limit", 0, "override the scenario time limit")

	return cmd
}
