package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/FrenchMajesty/partition"
	"github.com/FrenchMajesty/partition/internal/scenario"
)

func newApplyCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "apply <scenario.toml>",
		Short: "Replay the elements, unions and checks of a scenario file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := scenario.Load(args[0])
			if err != nil {
				return err
			}

			return withPartitioner(v, func(p *partition.Partitioner) error {
				report, err := s.Run(p)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "added %d element(s), merged %d class(es)\n", report.Added, report.Merged)
				for _, c := range report.Failed {
					fmt.Fprintf(out, "✗ %s %s: expected connected=%t\n", c.A, c.B, c.Connected)
				}
				if len(report.Failed) > 0 {
					return fmt.Errorf("%d check(s) failed", len(report.Failed))
				}
				fmt.Fprintf(out, "✓ %d check(s) passed\n", len(s.Checks))
				return nil
			})
		},
	}
}
