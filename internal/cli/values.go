package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newGetCommand(s *session) *cobra.Command {
	var (
		def  string
		subs map[string]string
	)

	cmd := &cobra.Command{
		Use:   "get KEY",
		Short: "Print the resolved value of a key",
		Long: `Print the resolved value of KEY. !{name} tokens are replaced with --sub
bindings until no binding applies; unmatched tokens are printed as is.
Without --default a missing key is an error.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := s.load(cmd.Context())
			if err != nil {
				return err
			}

			key := args[0]
			if !cmd.Flags().Changed("default") {
				v, err := cfg.GetStringWith(key, subs)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), v)
				return nil
			}

			v, ok, err := cfg.LookupWith(key, subs)
			if err != nil {
				return err
			}
			if !ok {
				v = def
			}
			fmt.Fprintln(cmd.OutOrStdout(), v)
			return nil
		},
	}

	cmd.Flags().StringVar(&def, "default", "", "Value printed when the key is missing")
	cmd.Flags().StringToStringVar(&subs, "sub", nil, "!{name} substitution name=value (repeatable)")
	return cmd
}

func newIntCommand(s *session) *cobra.Command {
	var def int

	cmd := &cobra.Command{
		Use:   "int KEY",
		Short: "Print the value of a key as a base-10 integer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := s.load(cmd.Context())
			if err != nil {
				return err
			}

			n, ok, err := cfg.GetInt(args[0])
			if err != nil {
				return err
			}
			if !ok {
				if !cmd.Flags().Changed("default") {
					return missing(cfg, args[0])
				}
				n = def
			}
			fmt.Fprintln(cmd.OutOrStdout(), n)
			return nil
		},
	}

	cmd.Flags().IntVar(&def, "default", 0, "Value printed when the key is missing")
	return cmd
}

func newBoolCommand(s *session) *cobra.Command {
	var def bool

	cmd := &cobra.Command{
		Use:   "bool KEY",
		Short: "Print the value of a key as a boolean",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := s.load(cmd.Context())
			if err != nil {
				return err
			}

			b, err := cfg.GetBool(args[0], def)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), b)
			return nil
		},
	}

	cmd.Flags().BoolVar(&def, "default", false, "Value printed when the key is missing")
	return cmd
}

func newListCommand(s *session) *cobra.Command {
	var sep string

	cmd := &cobra.Command{
		Use:   "list KEY",
		Short: "Print the items of a separated list value, one per line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := s.load(cmd.Context())
			if err != nil {
				return err
			}

			for _, item := range cfg.GetListSep(args[0], sep) {
				fmt.Fprintln(cmd.OutOrStdout(), item)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&sep, "sep", ",", "Item separator")
	return cmd
}
