package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/mabhi256/dsaviz/internal/algo"
	"github.com/mabhi256/dsaviz/utils"
)

var category string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available algorithms",
	RunE: func(cmd *cobra.Command, args []string) error {
		algorithms := algo.All()
		if category != "" {
			c := algo.Category(category)
			algorithms = algo.ByCategory(c)
			if len(algorithms) == 0 {
				return fmt.Errorf("unknown category %q (valid: %v)", category, algo.Categories())
			}
		}

		rows := make([][]string, 0, len(algorithms))
		for _, a := range algorithms {
			rows = append(rows, []string{a.ID, a.Name, string(a.Category),
				a.Complexity.Best, a.Complexity.Average, a.Complexity.Worst, a.Complexity.Space})
		}

		t := table.New().
			Border(lipgloss.RoundedBorder()).
			BorderStyle(utils.MutedStyle).
			Headers("ID", "NAME", "CATEGORY", "BEST", "AVERAGE", "WORST", "SPACE").
			Rows(rows...).
			StyleFunc(func(row, col int) lipgloss.Style {
				if row == table.HeaderRow {
					return utils.TitleStyle.Padding(0, 1)
				}
				return utils.TextStyle.Padding(0, 1)
			})

		fmt.Fprintln(cmd.OutOrStdout(), t.Render())
		return nil
	},
}

func init() {
	categories := make([]string, 0, len(algo.Categories()))
	for _, c := range algo.Categories() {
		categories = append(categories, string(c))
	}
	listCmd.Flags().StringVar(&category, "category", "", "only show one category")
	listCmd.RegisterFlagCompletionFunc("category", utils.CompleteValues(categories...))
	rootCmd.AddCommand(listCmd)
}
