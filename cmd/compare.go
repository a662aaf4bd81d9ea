package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mabhi256/dsaviz/internal/algo"
	"github.com/mabhi256/dsaviz/internal/input"
	"github.com/mabhi256/dsaviz/internal/report"
	"github.com/mabhi256/dsaviz/utils"
)

var compareCmd = &cobra.Command{
	Use:   "compare [algorithm...]",
	Short: "Run several algorithms on the same array and compare their totals",
	Example: `  dsaviz compare --preset reverse --size 30
  dsaviz compare bubble merge --input "5, 1, 4, 2"`,
	ValidArgsFunction: utils.CompleteValues(algo.IDs()...),
	RunE: func(cmd *cobra.Command, args []string) error {
		algorithms := algo.ByCategory(algo.Sorting)
		if len(args) > 0 {
			algorithms = nil
			for _, id := range args {
				a, err := algo.Lookup(id)
				if err != nil {
					return err
				}
				algorithms = append(algorithms, a)
			}
		}

		arr, err := resolveInput(cmd, cfg)
		if err != nil {
			return err
		}

		rows, err := report.Compare(cmd.Context(), algorithms, arr)
		if err != nil {
			return err
		}
		logger.Debug("comparison finished", zap.Int("algorithms", len(rows)), zap.Int("size", len(arr)))

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, utils.CreateMetricDisplay("Input", input.Format(arr), utils.TextColor))
		return report.WriteComparison(out, rows)
	},
}

var explainCmd = &cobra.Command{
	Use:               "explain <algorithm>",
	Short:             "Describe how an algorithm works and what it costs",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: utils.CompleteValues(algo.IDs()...),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := algo.Lookup(args[0])
		if err != nil {
			return err
		}
		return report.WriteExplanation(cmd.OutOrStdout(), a)
	},
}

func init() {
	rootCmd.AddCommand(compareCmd, explainCmd)
}
