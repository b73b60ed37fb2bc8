package cli

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Set through -ldflags "-X github.com/vitalvas/swagdoc/internal/cli.version=...".
var (
	version = "dev"
	commit  = "none"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the swagdoc version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v, c := versionInfo()
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "swagdoc %s (%s)\n", v, c)
			return err
		},
	}
}

// versionInfo prefers ldflags values and falls back to the build info.
func versionInfo() (string, string) {
	if version != "dev" || commit != "none" {
		return version, commit
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return version, commit
	}

	v := version
	if info.Main.Version != "" && info.Main.Version != "(devel)" {
		v = info.Main.Version
	}

	c := commit
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && s.Value != "" {
			c = s.Value
			break
		}
	}
	return v, c
}
