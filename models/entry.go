// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// RawEntry is a single key/value pair exactly as it was declared in a
// configuration source, before any placeholder resolution.
//
// Keys are case-sensitive dotted identifiers such as "db.connection.host".
type RawEntry struct {
	// Key is the declared property name.
	Key string
	// Value is the declared value with surrounding whitespace trimmed.
	// It may still contain ${name} and !{name} placeholders.
	Value string
}

// ParentScope returns the key with its final ".segment" removed, or an
// empty string when the key has no parent scope.
//
// A leading dot does not introduce a scope: ".name" has no parent.
func ParentScope(key string) string {
	i := strings.LastIndexByte(key, '.')
	if i <= 0 {
		return ""
	}
	return key[:i]
}
