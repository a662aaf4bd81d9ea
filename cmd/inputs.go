package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/mabhi256/dsaviz/internal/config"
	"github.com/mabhi256/dsaviz/internal/input"
	"github.com/mabhi256/dsaviz/utils"
)

var (
	inputText  string
	inputFile  string
	presetName string
	size       int
	seed       int64
)

func addInputFlags(fs *pflag.FlagSet) {
	fs.StringVar(&inputText, "input", "", `array to run on, e.g. "5, 3, 8, 1"`)
	fs.StringVar(&inputFile, "input-file", "", "read the array from a file (commas or newlines)")
	fs.StringVar(&presetName, "preset", "", "generate the array: random, sorted, reverse or nearly")
	fs.IntVar(&size, "size", 0, "length of a generated array")
	fs.Int64Var(&seed, "seed", 0, "seed for generated arrays (0 uses the clock)")
}

func registerInputCompletions(cmd *cobra.Command) {
	cmd.RegisterFlagCompletionFunc("input-file", utils.CompleteFilesByExtension(".txt", ".csv"))

	presets := make([]string, 0, len(input.Presets()))
	for _, p := range input.Presets() {
		presets = append(presets, string(p))
	}
	cmd.RegisterFlagCompletionFunc("preset", utils.CompleteValues(presets...))
}

// resolveInput picks the array in priority order: --input, --input-file,
// --preset, the configured default, the configured preset.
func resolveInput(cmd *cobra.Command, cfg *config.Config) ([]int, error) {
	flags := cmd.Flags()

	switch {
	case flags.Changed("input"):
		return input.Parse(inputText)

	case flags.Changed("input-file"):
		data, err := os.ReadFile(inputFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read input file: %w", err)
		}
		text := strings.NewReplacer("\r\n", ",", "\n", ",").Replace(string(data))
		arr, err := input.Parse(text)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", inputFile, err)
		}
		return arr, nil

	case flags.Changed("preset"), flags.Changed("size"), cfg.Input.Default == "":
		return generate(cmd, cfg)

	default:
		return input.Parse(cfg.Input.Default)
	}
}

func generate(cmd *cobra.Command, cfg *config.Config) ([]int, error) {
	flags := cmd.Flags()

	p := input.Preset(cfg.Input.Preset)
	if flags.Changed("preset") {
		p = input.Preset(presetName)
	}

	n := cfg.Input.Size
	if flags.Changed("size") {
		n = size
	}
	if n == 0 {
		n = input.DefaultSize
	}
	if n > config.MaxSize {
		return nil, fmt.Errorf("size %d exceeds %d", n, config.MaxSize)
	}

	s := cfg.Input.Seed
	if flags.Changed("seed") {
		s = seed
	}
	if s == 0 {
		s = time.Now().UnixNano()
	}

	arr, err := input.NewGenerator(s).Preset(p, n)
	if err != nil {
		return nil, err
	}
	logger.Debug("generated input",
		zap.String("preset", string(p)),
		zap.Int("size", n),
		zap.Int64("seed", s))
	return arr, nil
}
