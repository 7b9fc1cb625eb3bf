// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package propconf

import (
	"strconv"
	"strings"
)

// DefaultListSeparator separates list elements in [Config.GetList].
const DefaultListSeparator = ","

// GetString returns the value of key or a *KeyError matching
// ErrMissingProperty when the key is absent.
func (c *Config) GetString(key string) (string, error) {
	v, ok := c.values[key]
	if !ok {
		return "", c.missing(key)
	}
	return v, nil
}

// GetStringOr returns the value of key, or def when the key is absent.
func (c *Config) GetStringOr(key, def string) string {
	if v, ok := c.values[key]; ok {
		return v
	}
	return def
}

// GetStringWith returns the value of key with its !{name} tokens replaced
// by subs. Replacement is repeated until the value stops changing, so a
// substituted value may itself contain tokens. The scope chain is never
// consulted and unmatched tokens are kept verbatim.
func (c *Config) GetStringWith(key string, subs map[string]string) (string, error) {
	v, ok, err := c.LookupWith(key, subs)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", c.missing(key)
	}
	return v, nil
}

// LookupWith is the non-failing form of GetStringWith: it reports whether
// key is present. The only possible error matches ErrSubstitutionLimit.
func (c *Config) LookupWith(key string, subs map[string]string) (string, bool, error) {
	v, ok := c.values[key]
	if !ok {
		return "", false, nil
	}

	out, err := substituteTokens(v, subs)
	if err != nil {
		return "", false, &KeyError{Kind: ErrSubstitutionLimit, Key: key, Value: v, Source: c.description}
	}
	return out, true, nil
}

// GetInt parses the value of key as a signed 32-bit base-10 integer. An
// absent key yields (0, false, nil); a malformed or out-of-range value a
// *KeyError matching ErrInvalidFormat.
func (c *Config) GetInt(key string) (int, bool, error) {
	v, ok := c.values[key]
	if !ok {
		return 0, false, nil
	}

	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil {
		return 0, false, &KeyError{Kind: ErrInvalidFormat, Key: key, Value: v, Source: c.description, Err: err}
	}
	return int(n), true, nil
}

// GetBool parses the value of key as a boolean, returning def when the key
// is absent. Accepted forms are those of strconv.ParseBool plus
// yes/no/on/off in any case.
func (c *Config) GetBool(key string, def bool) (bool, error) {
	v, ok := c.values[key]
	if !ok {
		return def, nil
	}

	switch strings.ToLower(v) {
	case "yes", "on":
		return true, nil
	case "no", "off":
		return false, nil
	}

	b, err := strconv.ParseBool(v)
	if err != nil {
		return def, &KeyError{Kind: ErrInvalidFormat, Key: key, Value: v, Source: c.description, Err: err}
	}
	return b, nil
}

// GetList splits the value of key on commas. See [Config.GetListSep].
func (c *Config) GetList(key string) []string {
	return c.GetListSep(key, DefaultListSeparator)
}

// GetListSep splits the value of key on sep, trims every element and drops
// the elements left empty. The result is never nil; an absent key yields an
// empty slice. An empty sep means DefaultListSeparator.
func (c *Config) GetListSep(key, sep string) []string {
	out := []string{}

	v, ok := c.values[key]
	if !ok {
		return out
	}
	if sep == "" {
		sep = DefaultListSeparator
	}

	for _, e := range strings.Split(v, sep) {
		if e = strings.TrimSpace(e); e != "" {
			out = append(out, e)
		}
	}
	return out
}

func (c *Config) missing(key string) error {
	return &KeyError{Kind: ErrMissingProperty, Key: key, Source: c.description}
}
