package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/shapeshow/config"
	"github.com/plus3/shapeshow/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())

	shape, err := cfg.InitialShape()
	require.NoError(t, err)
	assert.Equal(t, scene.Cube, shape)

	assert.Equal(t, scene.DefaultSettings(), cfg.Settings())
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shapeshow.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
window:
  width: 640
spin:
  rate: 2.5
camera:
  start: [1, 3, 0]
shape:
  initial: torus
material:
  alpha_mode: opaque
  release_orphans: true
log:
  level: debug
`), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 640, cfg.Window.Width)
	assert.Equal(t, 720, cfg.Window.Height, "untouched keys keep defaults")

	shape, err := cfg.InitialShape()
	require.NoError(t, err)
	assert.Equal(t, scene.Torus, shape)

	level, err := cfg.LogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)

	settings := cfg.Settings()
	assert.Equal(t, float32(2.5), settings.SpinRate)
	assert.Equal(t, mgl32.Vec3{1, 3, 0}, settings.CameraStart)
	assert.Equal(t, scene.AlphaOpaque, settings.AlphaMode)
	assert.True(t, settings.ReleaseOrphans)
}

func TestParseEmptyDocument(t *testing.T) {
	cfg, err := config.Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"unknown key", "window:\n  depth: 3\n", "depth"},
		{"bad size", "window:\n  width: 0\n", "window size"},
		{"bad tps", "window:\n  tps: -1\n", "window.tps"},
		{"unknown shape", "shape:\n  initial: cone\n", "cone"},
		{"pyramid", "shape:\n  initial: Pyramid\n", "not yet implemented"},
		{"alpha mode", "material:\n  alpha_mode: additive\n", "additive"},
		{"log level", "log:\n  level: loud\n", "log.level"},
		{"fov", "camera:\n  fov_degrees: 180\n", "fov_degrees"},
		{"camera on target", "camera:\n  start: [0, 0, -5]\n", "must differ"},
		{"short vector", "camera:\n  start: [0, 1]\n", "parsing config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadWrapsPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("spin: [oops"), 0o644))

	_, err := config.Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}
