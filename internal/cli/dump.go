package cli

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-prop-config/internal/config"
	"github.com/MKhiriev/go-prop-config/models"
	"github.com/MKhiriev/go-prop-config/propconf"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"
)

func newKeysCommand(s *session) *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:   "keys",
		Short: "Print the declared keys in declaration order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := s.load(cmd.Context())
			if err != nil {
				return err
			}

			entries, err := selectEntries(cfg, s.filter(cmd, filter))
			if err != nil {
				return err
			}
			for _, e := range entries {
				fmt.Fprintln(cmd.OutOrStdout(), e.Key)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&filter, "filter", "", "Glob over dotted keys, e.g. db.** or *.port")
	return cmd
}

func newDumpCommand(s *session) *cobra.Command {
	var filter, format string

	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Print the resolved configuration",
		Long: `Print every declared key with its resolved value in declaration order.
Formats: properties (default), json, yaml.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := s.load(cmd.Context())
			if err != nil {
				return err
			}

			entries, err := selectEntries(cfg, s.filter(cmd, filter))
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("format") {
				format = s.settings.Output.Format
			}
			return writeEntries(cmd.OutOrStdout(), format, cfg.Description(), entries)
		},
	}

	cmd.Flags().StringVar(&filter, "filter", "", "Glob over dotted keys, e.g. db.** or *.port")
	cmd.Flags().StringVar(&format, "format", config.FormatProperties, "Output format: properties, json or yaml")
	return cmd
}

// filter returns the --filter flag when given, the settings filter otherwise.
func (s *session) filter(cmd *cobra.Command, flag string) string {
	if cmd.Flags().Changed("filter") {
		return flag
	}
	return s.settings.Output.Filter
}

// selectEntries returns the entries whose key matches pattern. Dots in keys
// and in the pattern act as path separators, so "*" stays within one
// segment and "**" spans several.
func selectEntries(cfg *propconf.Config, pattern string) ([]models.RawEntry, error) {
	all := cfg.All()
	if pattern == "" {
		return all, nil
	}

	glob := keyPath(pattern)
	if !doublestar.ValidatePattern(glob) {
		return nil, fmt.Errorf("%w: malformed filter %q", config.ErrInvalidOutputConfigs, pattern)
	}

	out := make([]models.RawEntry, 0, len(all))
	for _, e := range all {
		if ok, _ := doublestar.Match(glob, keyPath(e.Key)); ok {
			out = append(out, e)
		}
	}
	return out, nil
}

func keyPath(key string) string {
	return strings.ReplaceAll(key, ".", "/")
}
