package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mabhi256/dsaviz/internal/algo"
	"github.com/mabhi256/dsaviz/internal/report"
	"github.com/mabhi256/dsaviz/utils"
)

var (
	outputFormat string
	outputPath   string
)

var traceCmd = &cobra.Command{
	Use:   "trace <algorithm>",
	Short: "Record an algorithm run and print or export it",
	Long: `Record every step of an algorithm run over the input array.

The cli format prints a table to stdout. json and yaml print to stdout unless
--out is given. html always writes a single-file replay page, named after the
algorithm when --out is omitted.`,
	Example: `  dsaviz trace bubble --input "5, 3, 8, 1"
  dsaviz trace binary --preset sorted --size 20 -o json
  dsaviz trace quick -o html --out quick.html`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: utils.CompleteValues(algo.IDs()...),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := report.ParseFormat(outputFormat)
		if err != nil {
			return err
		}

		a, err := algo.Lookup(args[0])
		if err != nil {
			return err
		}

		arr, err := resolveInput(cmd, cfg)
		if err != nil {
			return err
		}

		t, err := a.Generate(arr)
		if err != nil {
			return err
		}
		logger.Info("trace recorded",
			zap.String("algorithm", a.ID),
			zap.Int("size", len(arr)),
			zap.Int("steps", t.Len()))

		r := report.New(a, t)

		path := outputPath
		if path == "" && format == report.FormatHTML {
			path = report.DefaultOutputPath(a.ID, format)
		}
		if path == "" {
			return r.Write(cmd.OutOrStdout(), format)
		}

		written, err := r.WriteFile(path, format)
		if err != nil {
			return err
		}
		logger.Debug("report written", zap.String("path", written), zap.String("format", string(format)))
		fmt.Fprintln(cmd.OutOrStdout(), utils.GoodStyle.Render("✅ Trace written to "+written))
		return nil
	},
}

func init() {
	traceCmd.Flags().StringVarP(&outputFormat, "output", "o", string(report.FormatCLI), "output format: cli, json, yaml, html")
	traceCmd.Flags().StringVar(&outputPath, "out", "", "write to this file instead of stdout")
	traceCmd.RegisterFlagCompletionFunc("output", utils.CompleteValues(report.Formats()...))
	rootCmd.AddCommand(traceCmd)
}
