package commands

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
)

// NewVersionCommand creates the version command.
func NewVersionCommand(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(os.Stdout, "rc version %s\n", version)
			_, _ = fmt.Fprintf(os.Stdout, "  commit: %s\n", commit)
			_, _ = fmt.Fprintf(os.Stdout, "  built:  %s\n", date)
			_, _ = fmt.Fprintf(os.Stdout, "  go:     %s (%s/%s)\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
		},
	}
}
