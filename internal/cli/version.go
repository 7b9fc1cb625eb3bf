package cli

import (
	"fmt"
	"runtime"

	"github.com/MKhiriev/go-prop-config/models"
	"github.com/spf13/cobra"
)

func newVersionCommand(info models.AppBuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show propconf build information",
		Args:  cobra.NoArgs,
		// Settings are not needed to print the version.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprint(cmd.OutOrStdout(), info.String())
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
			return nil
		},
	}
}
