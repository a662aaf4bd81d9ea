package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mabhi256/dsaviz/internal/algo"
	"github.com/mabhi256/dsaviz/internal/logging"
	"github.com/mabhi256/dsaviz/internal/playback"
	"github.com/mabhi256/dsaviz/internal/tui"
	"github.com/mabhi256/dsaviz/utils"
)

var speed int

var playCmd = &cobra.Command{
	Use:   "play [algorithm]",
	Short: "Open the interactive visualizer",
	Long: `Open the interactive visualizer on one algorithm.

Keys: space play/pause, s stop, ←/→ step, home/end seek, +/- speed,
tab switch algorithm, i edit the array, r random array, e explain, q quit.`,
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: utils.CompleteValues(algo.IDs()...),
	RunE:              runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	if cmd.Flags().Changed("speed") {
		cfg.Playback.Speed = playback.ClampSpeed(speed)
	}
	// the r key keeps drawing from the same preset family
	if cmd.Flags().Changed("preset") {
		cfg.Input.Preset = presetName
	}
	if cmd.Flags().Changed("size") {
		cfg.Input.Size = size
	}
	if cmd.Flags().Changed("seed") {
		cfg.Input.Seed = seed
	}

	arr, err := resolveInput(cmd, cfg)
	if err != nil {
		return err
	}

	l, err := logging.ForTUI(cfg.Logging, verbose)
	if err != nil {
		return err
	}
	defer l.Sync()

	opts := tui.Options{
		Config: cfg,
		Logger: l,
		Input:  arr,
	}
	if len(args) > 0 {
		opts.Algorithm = args[0]
	}
	return tui.Start(opts)
}

func init() {
	playCmd.Flags().IntVar(&speed, "speed", playback.DefaultSpeed, "playback speed, 100 (slow) to 900 (fast)")
	rootCmd.AddCommand(playCmd)
}
