// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// propconf CLI commands.
//
// All Msg* constants are human-readable message strings written into log
// entries or the error line printed on exit. Keeping them in one place
// ensures consistent wording across commands.
package app

const (
	// MsgSettingsLoaded is logged once the CLI settings have been merged and
	// validated.
	MsgSettingsLoaded = "settings loaded"

	// MsgConfigurationLoaded is logged after the property file has been read
	// and every ${name} placeholder resolved.
	MsgConfigurationLoaded = "configuration loaded"

	// MsgConfigurationFailed is logged when the property file cannot be read
	// or resolved.
	MsgConfigurationFailed = "configuration failed"

	// MsgPathResolved is logged when the path command produced a path.
	MsgPathResolved = "path resolved"

	// MsgCommandFailed prefixes the error line printed on a non-zero exit.
	MsgCommandFailed = "Error"
)
