package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mabhi256/dsaviz/internal/edgecase"
	"github.com/mabhi256/dsaviz/internal/input"
	"github.com/mabhi256/dsaviz/utils"
)

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Show which edge case an array falls into",
	RunE: func(cmd *cobra.Command, args []string) error {
		arr, err := resolveInput(cmd, cfg)
		if err != nil {
			return err
		}

		class := edgecase.Classify(arr)
		logger.Debug("classified input", zap.Int("size", len(arr)), zap.Stringer("class", class))

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, utils.CreateMetricDisplay("Input", input.Format(arr), utils.TextColor))
		fmt.Fprintln(out, utils.CreateMetricDisplay("Edge case", class.String(), utils.AccentColor))
		if advice := class.Advice(); advice != "" {
			fmt.Fprintln(out, utils.GetClassStyle(class).Render(advice))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(classifyCmd)
}
