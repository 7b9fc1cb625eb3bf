// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-prop-config/internal/logger"
	"github.com/MKhiriev/go-prop-config/internal/store"
	"github.com/bmatcuk/doublestar/v4"
)

// validate checks that the final merged [StructuredConfig] is usable before
// any command runs.
//
// A missing property file is not a validation failure here: commands that
// do not read a file (version, help) still need settings.
//
// Returns nil if the settings are valid, or an error wrapping one of the
// ErrInvalid*Configs sentinels otherwise.
func (cfg *StructuredConfig) validate() error {
	if _, err := store.ParseEncoding(cfg.Source.Encoding); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSourceConfigs, err)
	}
	if cfg.Source.Glob != "" && !doublestar.ValidatePattern(cfg.Source.Glob) {
		return fmt.Errorf("%w: malformed glob %q", ErrInvalidSourceConfigs, cfg.Source.Glob)
	}

	if _, err := logger.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
	}

	cfg.Output.Format = strings.ToLower(strings.TrimSpace(cfg.Output.Format))
	switch cfg.Output.Format {
	case FormatProperties, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("%w: unknown format %q", ErrInvalidOutputConfigs, cfg.Output.Format)
	}
	if cfg.Output.Filter != "" && !doublestar.ValidatePattern(cfg.Output.Filter) {
		return fmt.Errorf("%w: malformed filter %q", ErrInvalidOutputConfigs, cfg.Output.Filter)
	}

	return nil
}

// HasSource reports whether any property file source is configured.
func (cfg *StructuredConfig) HasSource() bool {
	return len(cfg.Source.Files) > 0 || cfg.Source.Glob != ""
}
