package version

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/flarebyte/switchline/internal/buildinfo"
)

var (
	flagShort bool
	flagJSON  bool
)

type versionReport struct {
	buildinfo.Info
	Timestamp string `json:"timestamp"`
}

var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the CLI version",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if flagShort || !flagJSON {
			// Exactly one line.
			_, err := fmt.Fprintf(out, "switchline %s\n", buildinfo.Summary())
			return err
		}

		// JSON goes to stdout, a human friendly line to stderr.
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "switchline version: %s\n", buildinfo.Summary())
		return encodeJSON(out, versionReport{
			Info:      buildinfo.Current(),
			Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
		})
	},
}

func init() {
	VersionCmd.Flags().BoolVar(&flagShort, "short", false, "Print only the version string")
	VersionCmd.Flags().BoolVar(&flagJSON, "json", false, "Print detailed JSON version info")
}
