package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/FrenchMajesty/partition"
)

func newAddCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "add <element>...",
		Short: "Register elements as singleton classes",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withPartitioner(v, func(p *partition.Partitioner) error {
				if err := p.Add(args...); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "added %d element(s)\n", len(args))
				return nil
			})
		},
	}
}

func newUnionCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "union <a> <b>",
		Short: "Merge the classes of two elements",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withPartitioner(v, func(p *partition.Partitioner) error {
				root, err := p.Union(args[0], args[1])
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), root)
				return nil
			})
		},
	}
}

func newFindCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "find <element>",
		Short: "Print the representative of an element's class",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withPartitioner(v, func(p *partition.Partitioner) error {
				root, err := p.Find(args[0])
				if err != nil {
					return err
				}
				size, err := p.ClassSize(root)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s (%d)\n", root, size)
				return nil
			})
		},
	}
}

func newConnectedCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "connected <a> <b>",
		Short: "Report whether two elements share a class",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withPartitioner(v, func(p *partition.Partitioner) error {
				connected, err := p.Connected(args[0], args[1])
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), connected)
				return nil
			})
		},
	}
}

func newSetsCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "sets",
		Short: "List every class and its members",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withPartitioner(v, func(p *partition.Partitioner) error {
				out := cmd.OutOrStdout()
				for _, members := range p.Classes() {
					fmt.Fprintln(out, strings.Join(members, " "))
				}
				m := p.Metrics()
				fmt.Fprintf(out, "%d element(s) in %d class(es), largest %d\n", m.Elements, m.Classes, m.LargestClass)
				return nil
			})
		},
	}
}
