package cmd

import (
	"fmt"
	"io"
	"runtime/debug"

	"github.com/spf13/cobra"
)

var (
	// This will be set by goreleaser
	version = "dev"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number and build details",
	Run: func(cmd *cobra.Command, args []string) {
		info, _ := debug.ReadBuildInfo()
		printVersion(cmd.OutOrStdout(), info)
	},
}

// printVersion writes the release version, then the toolchain and VCS
// revision when the binary carries build info.
func printVersion(w io.Writer, info *debug.BuildInfo) {
	fmt.Fprintf(w, "dsaviz version %s\n", version)
	if info == nil {
		return
	}

	fmt.Fprintf(w, "  go:       %s\n", info.GoVersion)
	var revision, modified string
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.modified":
			modified = s.Value
		}
	}
	if revision != "" {
		if len(revision) > 12 {
			revision = revision[:12]
		}
		if modified == "true" {
			revision += " (dirty)"
		}
		fmt.Fprintf(w, "  revision: %s\n", revision)
	}
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
