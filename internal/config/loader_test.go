package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newIsolatedLoader avoids the global viper instance so tests do not leak
// state into each other.
func newIsolatedLoader() *Loader {
	return &Loader{v: viper.New()}
}

// chdir switches the working directory for the duration of the test,
// restoring the original directory on cleanup (t.Chdir needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	orig, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(orig) })
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	// Run from an empty directory so no stray lembar.yaml is picked up.
	chdir(t, t.TempDir())

	cfg, err := newIsolatedLoader().Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, -11.0, cfg.Geo.MinLat)
}

func TestLoadWithFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lembar.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
log_level: debug
geo:
  min_lat: -9
report:
  template_path: /srv/template.xlsx
server:
  port: 9090
`), 0o644))

	cfg, err := newIsolatedLoader().LoadWithFile(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, -9.0, cfg.Geo.MinLat)
	// Values the file does not mention keep their defaults.
	assert.Equal(t, 6.0, cfg.Geo.MaxLat)
	assert.Equal(t, "/srv/template.xlsx", cfg.Report.TemplatePath)
	assert.Equal(t, 9090, cfg.Server.Port)
}

func TestLoadWithFile_Errors(t *testing.T) {
	t.Run("empty path", func(t *testing.T) {
		_, err := newIsolatedLoader().LoadWithFile("")
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := newIsolatedLoader().LoadWithFile(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "lembar.yaml")
		require.NoError(t, os.WriteFile(path, []byte("log_level: [broken"), 0o644))
		_, err := newIsolatedLoader().LoadWithFile(path)
		assert.Error(t, err)
	})

	t.Run("invalid values rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "lembar.yaml")
		require.NoError(t, os.WriteFile(path, []byte("log_level: loud"), 0o644))
		_, err := newIsolatedLoader().LoadWithFile(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "validation")
	})
}

func TestLoad_EnvOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("LEMBAR_LOG_LEVEL", "warn")
	t.Setenv("LEMBAR_SERVER_PORT", "9999")
	t.Setenv("LEMBAR_GEO_MIN_LAT", "-8.5")

	cfg, err := newIsolatedLoader().Load()
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 9999, cfg.Server.Port)
	assert.Equal(t, -8.5, cfg.Geo.MinLat)
}

func TestLoad_FileBeatsDefault(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "lembar.yaml"),
		[]byte("server:\n  port: 7070\n"), 0o644))
	chdir(t, dir)

	cfg, err := newIsolatedLoader().Load()
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Server.Port)
}
