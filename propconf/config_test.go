package propconf

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/MKhiriev/go-prop-config/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

// isolated keeps the host environment out of resolution.
func isolated(extra ...Option) []Option {
	return append([]Option{WithBuiltins(MapProvider{}), WithFallback(MapProvider{})}, extra...)
}

func loadString(t *testing.T, text string, opts ...Option) *Config {
	t.Helper()
	cfg, err := Load(ReaderSource(strings.NewReader(text), "test properties"), isolated(opts...)...)
	require.NoError(t, err)
	return cfg
}

// ── Load ──────────────────────────────────────────────────────────────────────

func TestLoad_PlainValuesAreTrimmed(t *testing.T) {
	cfg := loadString(t, "  name =   value with spaces   \nport:8080\n")

	v, err := cfg.GetString("name")
	require.NoError(t, err)
	assert.Equal(t, "value with spaces", v)

	v, err = cfg.GetString("port")
	require.NoError(t, err)
	assert.Equal(t, "8080", v)
}

func TestLoad_ParentScopeFallback(t *testing.T) {
	cfg := loadString(t, "a.b.x=inner\na.b.c=${x}/leaf\n")

	v, err := cfg.GetString("a.b.c")
	require.NoError(t, err)
	assert.Equal(t, "inner/leaf", v)
}

func TestLoad_UnresolvedVariable(t *testing.T) {
	_, err := Load(ReaderSource(strings.NewReader("a.b.c=${nowhere}"), "test"), isolated()...)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnresolvedVariable)

	var varErr *VariableError
	require.ErrorAs(t, err, &varErr)
	assert.Equal(t, "nowhere", varErr.Variable)
	assert.Equal(t, "a.b.c", varErr.Key)
}

func TestLoad_GlobalFallback(t *testing.T) {
	cfg := loadString(t, "dir=${APP_HOME}/data", WithFallback(MapProvider{"APP_HOME": "/srv/app"}))
	assert.Equal(t, "/srv/app/data", cfg.GetStringOr("dir", ""))
}

func TestLoad_EnvironmentFallbackByDefault(t *testing.T) {
	t.Setenv("PROPCONF_TEST_ROOT", "/from/env")

	cfg, err := Load(ReaderSource(strings.NewReader("dir=${PROPCONF_TEST_ROOT}/x"), "env test"))
	require.NoError(t, err)
	assert.Equal(t, "/from/env/x", cfg.GetStringOr("dir", ""))
}

func TestLoad_CyclicVariable(t *testing.T) {
	_, err := Load(ReaderSource(strings.NewReader("a=${b}\nb=${a}\n"), "test"), isolated()...)
	assert.ErrorIs(t, err, ErrCyclicVariable)
}

func TestLoad_Idempotent(t *testing.T) {
	text := "z=${y}!\ny=${x}\nx=1\ns.t.u=${v}\ns.v=2\n"

	first := loadString(t, text)
	second := loadString(t, text)

	assert.Equal(t, first.String(), second.String())
	assert.Equal(t, first.All(), second.All())
}

func TestLoadFile_Missing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.properties")

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfigLoad)

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, "file "+path, loadErr.Source)
}

func TestLoad_FirstAvailableDescription(t *testing.T) {
	fsys := fstest.MapFS{"defaults.properties": &fstest.MapFile{Data: []byte("k=packaged")}}
	missing := filepath.Join(t.TempDir(), "override.properties")

	cfg, err := Load(FirstAvailable(FileSource(missing), FSSource(fsys, "defaults.properties")), isolated()...)
	require.NoError(t, err)

	assert.Equal(t, "resource defaults.properties", cfg.Description())
	assert.Equal(t, "packaged", cfg.GetStringOr("k", ""))
}

func TestLoad_LogsThroughZerolog(t *testing.T) {
	var buf bytes.Buffer
	l := zerolog.New(&buf).Level(zerolog.DebugLevel)

	loadString(t, "k=v", WithLogger(l))

	assert.Contains(t, buf.String(), "configuration source loaded")
	assert.Contains(t, buf.String(), `"component":"propconf"`)
}

// ── New and introspection ─────────────────────────────────────────────────────

func TestNew_FromEntries(t *testing.T) {
	cfg, err := New("inline", []models.RawEntry{
		{Key: "b", Value: "${a}2"},
		{Key: "a", Value: "1"},
		{Key: "blank", Value: "  "},
	}, isolated()...)
	require.NoError(t, err)

	assert.Equal(t, []string{"b", "a", "blank"}, cfg.Keys())
	assert.Equal(t, 3, cfg.Len())
	assert.Equal(t, "12", cfg.GetStringOr("b", ""))

	assert.True(t, cfg.Declared("blank"))
	assert.False(t, cfg.Declared("nope"))
	_, present := cfg.Lookup("blank")
	assert.False(t, present)

	assert.Equal(t, "inline\n\tb=12\n\ta=1\n\tblank=", cfg.String())
}

func TestConfig_KeysReturnsCopy(t *testing.T) {
	cfg := loadString(t, "a=1")
	keys := cfg.Keys()
	keys[0] = "changed"
	assert.Equal(t, []string{"a"}, cfg.Keys())
}

func TestConfig_AccessTimeTokensSurviveLoad(t *testing.T) {
	cfg := loadString(t, "base=/data\nfile=${base}/!{tenant}.db\n")
	assert.Equal(t, "/data/!{tenant}.db", cfg.GetStringOr("file", ""))
}

func TestConfig_HomeBuiltin(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	cfg, err := Load(ReaderSource(strings.NewReader("cache=${user.home}.cache"), "home"), WithFallback(nil))
	require.NoError(t, err)

	want := models.NormalizePath(home, models.DirectoryPath) + ".cache"
	assert.Equal(t, want, cfg.GetStringOr("cache", ""))
}

func TestConfig_EachStopsEarly(t *testing.T) {
	cfg := loadString(t, "a=1\nb=\nc=3\n")

	var seen []string
	cfg.Each(func(key, value string) bool {
		seen = append(seen, key+"="+value)
		return key != "b"
	})
	assert.Equal(t, []string{"a=1", "b="}, seen)
}

func TestLoad_ParentScopeWinsOverEnvironment(t *testing.T) {
	t.Setenv("PATH", "/usr/bin:/bin")
	t.Setenv("USER", "envuser")

	cfg, err := Load(ReaderSource(strings.NewReader(
		"app.path=/opt/app\napp.user=svc\napp.log.file=${path}/logs\napp.log.owner=${user}\n"),
		"scoped"), WithBuiltins(MapProvider{}))
	require.NoError(t, err)

	assert.Equal(t, "/opt/app/logs", cfg.GetStringOr("app.log.file", ""))
	assert.Equal(t, "svc", cfg.GetStringOr("app.log.owner", ""))
}

func TestConfig_DeclaredMatchesKeys(t *testing.T) {
	cfg := loadString(t, "a=1\nb=\na.b=${a}\n")

	for _, k := range cfg.Keys() {
		assert.True(t, cfg.Declared(k), k)
	}
	assert.False(t, cfg.Declared("a.c"))
	assert.False(t, cfg.Declared(""))
}
