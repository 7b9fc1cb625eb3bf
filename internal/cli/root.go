// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-prop-config/internal/app"
	"github.com/MKhiriev/go-prop-config/internal/config"
	"github.com/MKhiriev/go-prop-config/internal/logger"
	"github.com/MKhiriev/go-prop-config/internal/store"
	"github.com/MKhiriev/go-prop-config/models"
	"github.com/MKhiriev/go-prop-config/propconf"
	"github.com/spf13/cobra"
)

// session carries state shared by the commands of one invocation.
type session struct {
	flags    *config.Flags
	settings *config.StructuredConfig
	log      *logger.Logger
	cfg      *propconf.Config
}

// NewRootCommand builds the propconf command tree.
func NewRootCommand(info models.AppBuildInfo) *cobra.Command {
	s := &session{log: logger.Nop()}

	root := &cobra.Command{
		Use:   "propconf",
		Short: "propconf reads hierarchical property files",
		Long: `propconf loads a property file, resolves ${name} placeholders against
declared keys, builtins (user.home, user.dir), -D definitions, the
environment and parent scopes, and prints the resolved values.

Settings can be provided via flags, PROPCONF_* environment variables, or a
JSON settings file given with --config.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: s.setup,
	}

	s.flags = config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(
		newGetCommand(s),
		newIntCommand(s),
		newBoolCommand(s),
		newListCommand(s),
		newPathCommand(s),
		newKeysCommand(s),
		newDumpCommand(s),
		newVersionCommand(info),
	)

	return root
}

// Execute runs the command line with args and returns the process exit
// code. Errors are printed to the command's error stream.
func Execute(ctx context.Context, info models.AppBuildInfo, args []string) int {
	root := NewRootCommand(info)
	root.SetArgs(args)

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(root.ErrOrStderr(), "%s: %v\n", app.MsgCommandFailed, err)
		return 1
	}
	return 0
}

// setup merges the settings and attaches the logger to the command context.
func (s *session) setup(cmd *cobra.Command, _ []string) error {
	settings, err := config.GetStructuredConfig(s.flags)
	if err != nil {
		return err
	}

	log, err := logger.NewLogger("propconf", cmd.ErrOrStderr(), settings.Log.Level)
	if err != nil {
		return err
	}

	s.settings = settings
	s.log = log
	cmd.SetContext(log.WithContext(cmd.Context()))

	log.Debug().
		Strs("files", settings.Source.Files).
		Str("glob", settings.Source.Glob).
		Str("format", settings.Output.Format).
		Msg(app.MsgSettingsLoaded)
	return nil
}

// load reads and resolves the configured property file once per session.
func (s *session) load(ctx context.Context) (*propconf.Config, error) {
	if s.cfg != nil {
		return s.cfg, nil
	}
	if !s.settings.HasSource() {
		return nil, config.ErrNoSourceConfigured
	}

	log := logger.FromContext(ctx)

	enc, err := store.ParseEncoding(s.settings.Source.Encoding)
	if err != nil {
		return nil, err
	}

	cfg, err := propconf.Load(sourceFor(s.settings.Source),
		propconf.WithEncoding(enc),
		propconf.WithFallback(fallbackFor(s.settings.Resolver)),
		propconf.WithLogger(log.Logger),
	)
	if err != nil {
		log.Error().Err(err).Msg(app.MsgConfigurationFailed)
		return nil, err
	}

	log.Info().
		Str("source", cfg.Description()).
		Int("keys", cfg.Len()).
		Msg(app.MsgConfigurationLoaded)

	s.cfg = cfg
	return cfg, nil
}

// sourceFor turns the file candidates and the glob into one source; the
// first candidate that opens wins.
func sourceFor(src config.Source) propconf.Source {
	candidates := make([]propconf.Source, 0, len(src.Files)+1)
	for _, f := range src.Files {
		candidates = append(candidates, propconf.FileSource(f))
	}
	if src.Glob != "" {
		candidates = append(candidates, propconf.GlobSource(src.Glob))
	}

	if len(candidates) == 1 {
		return candidates[0]
	}
	return propconf.FirstAvailable(candidates...)
}

// fallbackFor builds the global fallback scope: -D definitions first, then
// the environment unless disabled.
func fallbackFor(r config.Resolver) propconf.Provider {
	providers := make([]propconf.Provider, 0, 2)
	if len(r.Defines) > 0 {
		providers = append(providers, propconf.MapProvider(r.Defines))
	}
	if !r.NoEnv {
		providers = append(providers, propconf.EnvProvider(r.EnvPrefix))
	}
	return propconf.Chain(providers...)
}

func missing(cfg *propconf.Config, key string) error {
	return &propconf.KeyError{
		Kind:   propconf.ErrMissingProperty,
		Key:    key,
		Source: cfg.Description(),
	}
}
