package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mabhi256/dsaviz/internal/config"
	"github.com/mabhi256/dsaviz/internal/logging"
	"github.com/mabhi256/dsaviz/utils"
)

var (
	cfgFile string
	verbose bool

	cfg    *config.Config
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "dsaviz",
	Short: "Step-by-step visualizer for sorting, searching and container algorithms",
	Long: `dsaviz records every comparison, swap, partition, merge, push and pop an
algorithm makes on an array, then replays the run in the terminal, exports it,
or prints it as a table.

Run without arguments to open the interactive visualizer.`,
	SilenceUsage: true,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "install" || cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		path := cfgFile
		if path == "" {
			path = config.DefaultPath()
		}
		loaded, err := config.Load(path)
		if err != nil {
			return err
		}
		// config subcommands must still work on a broken file
		if err := loaded.Validate(); err != nil && !isConfigCmd(cmd) {
			return fmt.Errorf("%s: %w", path, err)
		}
		cfg = loaded

		// The visualizer owns the terminal, so it builds its own logger.
		if isInteractive(cmd) {
			return nil
		}
		logger, err = logging.New(cfg.Logging, verbose)
		if err != nil {
			return err
		}
		logger.Debug("config loaded", zap.String("path", path))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cmd, nil)
	},
}

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install shell completions",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if !isInPath() {
			printPathInstructions(out)
			return nil
		}

		if !isShellSupported() {
			return fmt.Errorf("shell completion not supported for %s (supported: bash, zsh, fish, powershell)", detectShell())
		}

		if completionsExist() {
			fmt.Fprintln(out, "✅ Already configured!")
			return nil
		}

		fmt.Fprintln(out, "📦 Installing completions...")
		if err := installCompletions(cmd.Root(), out); err != nil {
			return fmt.Errorf("install completions: %w", err)
		}
		fmt.Fprintln(out, "✅ Done! Restart your shell to enable tab completion.")
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, utils.ErrorStyle.Render("Error: "+err.Error()))
		os.Exit(1)
	}
}

func GetRootCmd() *cobra.Command {
	return rootCmd
}

// isInteractive must not name rootCmd: rootCmd's own hooks call it.
func isInteractive(cmd *cobra.Command) bool {
	return !cmd.HasParent() || cmd.Name() == "play"
}

func isConfigCmd(cmd *cobra.Command) bool {
	return cmd.HasParent() && cmd.Parent().Name() == "config"
}

func completionPaths(home string) map[string]string {
	return map[string]string{
		"bash":       filepath.Join(home, ".local/share/bash-completion/completions/dsaviz"),
		"zsh":        filepath.Join(home, ".zsh/completions/_dsaviz"),
		"fish":       filepath.Join(home, ".config/fish/completions/dsaviz.fish"),
		"powershell": filepath.Join(home, "dsaviz_completion.ps1"),
	}
}

func completionsExist() bool {
	home, _ := os.UserHomeDir()
	_, err := os.Stat(completionPaths(home)[detectShell()])
	return err == nil
}

func isShellSupported() bool {
	shell := detectShell()
	return shell == "bash" || shell == "zsh" || shell == "fish" || shell == "powershell"
}

func detectShell() string {
	if runtime.GOOS == "windows" {
		return "powershell"
	}

	shell := filepath.Base(os.Getenv("SHELL"))
	if shell == "" || shell == "." {
		return "bash"
	}
	return shell
}

func installCompletions(root *cobra.Command, out io.Writer) error {
	home, _ := os.UserHomeDir()
	shell := detectShell()
	path := completionPaths(home)[shell]

	generators := map[string]func(io.Writer) error{
		"bash":       func(w io.Writer) error { return root.GenBashCompletionV2(w, true) },
		"zsh":        root.GenZshCompletion,
		"fish":       func(w io.Writer) error { return root.GenFishCompletion(w, true) },
		"powershell": root.GenPowerShellCompletionWithDesc,
	}
	activate := map[string]string{
		"bash":       "source " + path,
		"zsh":        fmt.Sprintf("fpath=(%s $fpath) && autoload -U compinit && compinit", filepath.Dir(path)),
		"fish":       "complete --do-complete=dsaviz",
		"powershell": ". " + path,
	}

	gen, ok := generators[shell]
	if !ok {
		return fmt.Errorf("unsupported shell: %s", shell)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := gen(file); err != nil {
		return err
	}

	fmt.Fprintf(out, "🔄 Run this command to enable completions now:\n   %s\n", activate[shell])
	return nil
}

func isInPath() bool {
	execPath, err := os.Executable()
	if err != nil {
		return false
	}
	paths := strings.Split(os.Getenv("PATH"), string(os.PathListSeparator))
	return slices.Contains(paths, filepath.Dir(execPath))
}

func printPathInstructions(out io.Writer) {
	execPath, _ := os.Executable()
	execDir := filepath.Dir(execPath)

	fmt.Fprintf(out, "❌ dsaviz not in PATH. Binary location: %s\n\n", execPath)
	if runtime.GOOS == "windows" {
		fmt.Fprintf(out, "Add to PATH: %s\n", execDir)
	} else {
		fmt.Fprintf(out, "Add to shell profile: export PATH=\"%s:$PATH\"\n", execDir)
		fmt.Fprintln(out, "Or copy to: /usr/local/bin")
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/dsaviz/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.RegisterFlagCompletionFunc("config", utils.CompleteFilesByExtension(".yaml", ".yml"))
	addInputFlags(rootCmd.PersistentFlags())
	registerInputCompletions(rootCmd)

	rootCmd.AddCommand(installCmd)
}
