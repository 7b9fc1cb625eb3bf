package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "settings.json")

	jsonBody := `{
		"source": {
			"files": ["app.properties", "defaults.properties"],
			"glob": "conf/**/*.properties",
			"encoding": "iso-8859-1"
		},
		"resolver": {
			"defines": {"app.home": "/srv/app"},
			"env_prefix": "APP_",
			"no_env": true
		},
		"log": {"level": "info"},
		"output": {"format": "yaml", "filter": "db.*"}
	}`

	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, []string{"app.properties", "defaults.properties"}, cfg.Source.Files)
	assert.Equal(t, "conf/**/*.properties", cfg.Source.Glob)
	assert.Equal(t, "iso-8859-1", cfg.Source.Encoding)

	assert.Equal(t, map[string]string{"app.home": "/srv/app"}, cfg.Resolver.Defines)
	assert.Equal(t, "APP_", cfg.Resolver.EnvPrefix)
	assert.True(t, cfg.Resolver.NoEnv)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "yaml", cfg.Output.Format)
	assert.Equal(t, "db.*", cfg.Output.Filter)

	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	// Act
	cfg, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	// Arrange
	p := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"source": `), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_UnknownField(t *testing.T) {
	// Arrange
	p := filepath.Join(t.TempDir(), "unknown.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"server": {"address": ":8080"}}`), 0o600))

	// Act
	_, err := parseJSON(p)

	// Assert
	assert.Error(t, err)
}

func TestParseJSON_EmptyObject(t *testing.T) {
	// Arrange
	p := filepath.Join(t.TempDir(), "empty.json")
	require.NoError(t, os.WriteFile(p, []byte(`{}`), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}
