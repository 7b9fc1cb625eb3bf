package cli

import (
	"fmt"

	"github.com/MKhiriev/go-prop-config/internal/app"
	"github.com/MKhiriev/go-prop-config/internal/logger"
	"github.com/MKhiriev/go-prop-config/propconf"
	"github.com/spf13/cobra"
)

func newPathCommand(s *session) *cobra.Command {
	var opts propconf.PathOptions

	cmd := &cobra.Command{
		Use:   "path KEY",
		Short: "Resolve, optionally create, and validate a filesystem path",
		Long: `Resolve the path held by KEY. Backslashes become forward slashes and
directories (--dir) get a trailing slash. --create makes missing paths,
--read and --write check existence and permissions.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := s.load(cmd.Context())
			if err != nil {
				return err
			}

			p, ok, err := cfg.GetPathContext(cmd.Context(), args[0], opts)
			if err != nil {
				return err
			}
			if !ok {
				return missing(cfg, args[0])
			}

			logger.FromContext(cmd.Context()).Debug().
				Str("key", args[0]).
				Str("path", p).
				Msg(app.MsgPathResolved)

			fmt.Fprintln(cmd.OutOrStdout(), p)
			return nil
		},
	}

	f := cmd.Flags()
	f.BoolVar(&opts.Directory, "dir", false, "The path names a directory")
	f.BoolVar(&opts.Mandatory, "mandatory", false, "Fail with a configuration error when the key is missing")
	f.BoolVar(&opts.ValidateRead, "read", false, "Require the path to exist and be readable")
	f.BoolVar(&opts.ValidateWrite, "write", false, "Require the path to exist and be writable")
	f.BoolVar(&opts.Create, "create", false, "Create the path when it does not exist")
	f.StringVar(&opts.Default, "default", "", "Path printed when the key is missing")
	f.StringToStringVar(&opts.Substitutions, "sub", nil, "!{name} substitution name=value (repeatable)")
	return cmd
}
