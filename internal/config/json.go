package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// StructuredJSONConfig is the on-disk layout of the JSON settings file.
type StructuredJSONConfig struct {
	Source struct {
		Files    []string `json:"files,omitempty"`
		Glob     string   `json:"glob,omitempty"`
		Encoding string   `json:"encoding,omitempty"`
	} `json:"source,omitempty"`

	Resolver struct {
		Defines   map[string]string `json:"defines,omitempty"`
		EnvPrefix string            `json:"env_prefix,omitempty"`
		NoEnv     bool              `json:"no_env,omitempty"`
	} `json:"resolver,omitempty"`

	Log struct {
		Level string `json:"level,omitempty"`
	} `json:"log,omitempty"`

	Output struct {
		Format string `json:"format,omitempty"`
		Filter string `json:"filter,omitempty"`
	} `json:"output,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	decoder := json.NewDecoder(jsonFile)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Source: Source{
			Files:    jsonCfg.Source.Files,
			Glob:     jsonCfg.Source.Glob,
			Encoding: jsonCfg.Source.Encoding,
		},
		Resolver: Resolver{
			Defines:   jsonCfg.Resolver.Defines,
			EnvPrefix: jsonCfg.Resolver.EnvPrefix,
			NoEnv:     jsonCfg.Resolver.NoEnv,
		},
		Log: Log{
			Level: jsonCfg.Log.Level,
		},
		Output: Output{
			Format: jsonCfg.Output.Format,
			Filter: jsonCfg.Output.Filter,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}
