package config

import (
	"errors"
	"sort"
	"strings"

	"github.com/spf13/pflag"
)

// Definitions collects repeated name=value flag arguments.
// It implements the pflag.Value interface.
type Definitions map[string]string

// String renders the definitions sorted by name, comma separated.
func (d *Definitions) String() string {
	if d == nil || len(*d) == 0 {
		return ""
	}

	names := make([]string, 0, len(*d))
	for name := range *d {
		names = append(names, name)
	}
	sort.Strings(names)

	pairs := make([]string, 0, len(names))
	for _, name := range names {
		pairs = append(pairs, name+"="+(*d)[name])
	}
	return strings.Join(pairs, ",")
}

// Set parses one "name=value" argument. The value may be empty and may
// itself contain '=' or ','.
func (d *Definitions) Set(s string) error {
	name, value, found := strings.Cut(s, "=")
	if !found {
		return errors.New("need definition in a form `name=value`")
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return errors.New("definition name must not be empty")
	}

	if *d == nil {
		*d = make(Definitions)
	}
	(*d)[name] = value
	return nil
}

// Type implements pflag.Value.
func (d *Definitions) Type() string {
	return "name=value"
}

// Flags holds the values bound by [RegisterFlags] until the command line is
// parsed.
type Flags struct {
	files          []string
	glob           string
	encoding       string
	defines        Definitions
	envPrefix      string
	noEnv          bool
	logLevel       string
	jsonConfigPath string
}

// RegisterFlags registers the persistent settings flags on fs.
//
// Flags:
//
//	-f/--file property file; repeatable, the first one that opens is used
//	--glob doublestar pattern of property files, tried after --file
//	--encoding file encoding (utf-8, iso-8859-1)
//	-D/--define name=value binding for ${name}; repeatable
//	--env-prefix prefix for environment lookups of ${name}
//	--no-env do not resolve ${name} from the environment
//	--log-level diagnostic log level
//	-c/--config json file path with settings
func RegisterFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{}

	fs.StringArrayVarP(&f.files, "file", "f", nil, "Property file (repeatable; first available wins)")
	fs.StringVar(&f.glob, "glob", "", "Glob pattern of property files, tried after --file")
	fs.StringVar(&f.encoding, "encoding", "", "Property file encoding (utf-8, iso-8859-1)")
	fs.VarP(&f.defines, "define", "D", "Variable definition name=value (repeatable)")
	fs.StringVar(&f.envPrefix, "env-prefix", "", "Prefix for environment lookups of ${name}")
	fs.BoolVar(&f.noEnv, "no-env", false, "Do not resolve ${name} from the environment")
	fs.StringVar(&f.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVarP(&f.jsonConfigPath, "config", "c", "", "JSON settings file path")

	return f
}

// Config returns the parsed flag values as a [StructuredConfig].
func (f *Flags) Config() *StructuredConfig {
	var defines map[string]string
	if len(f.defines) > 0 {
		defines = make(map[string]string, len(f.defines))
		for name, value := range f.defines {
			defines[name] = value
		}
	}

	return &StructuredConfig{
		Source: Source{
			Files:    append([]string(nil), f.files...),
			Glob:     f.glob,
			Encoding: f.encoding,
		},
		Resolver: Resolver{
			Defines:   defines,
			EnvPrefix: f.envPrefix,
			NoEnv:     f.noEnv,
		},
		Log: Log{
			Level: f.logLevel,
		},
		JSONFilePath: f.jsonConfigPath,
	}
}
