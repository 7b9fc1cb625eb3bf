// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store implements the ordered key/value store of the configuration
// engine.
//
// A [Source] supplies a closable stream of property-file text; [Load] opens
// it exactly once, parses it into [Entries] and releases it whatever the
// outcome. Entries keep the first-seen order of keys and the last declared
// value of a repeated key. No placeholder expansion happens here.
package store

import "io"

// Source is a closable configuration input together with a description
// used in diagnostics and error messages.
//
// Open is called once per load; the returned stream is owned and closed by
// the loader.
type Source interface {
	// Open acquires the underlying resource.
	Open() (io.ReadCloser, error)

	// Description returns a human-readable name of the source,
	// e.g. "file /etc/app/app.properties".
	Description() string
}
