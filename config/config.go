// Package config loads the demo's optional YAML configuration.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/shapeshow/scene"
	"gopkg.in/yaml.v3"
)

// DefaultPath is where Load looks when no -config flag is given.
const DefaultPath = "shapeshow.yaml"

type Window struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	TPS    int    `yaml:"tps"`
}

type Spin struct {
	// Rate is in radians per second.
	Rate float32 `yaml:"rate"`
}

type Camera struct {
	Start      [3]float32 `yaml:"start"`
	Target     [3]float32 `yaml:"target"`
	Speed      float32    `yaml:"speed"`
	FovDegrees float32    `yaml:"fov_degrees"`
}

type Shape struct {
	Initial  string     `yaml:"initial"`
	Position [3]float32 `yaml:"position"`
}

type Material struct {
	AlphaMode      string `yaml:"alpha_mode"`
	ReleaseOrphans bool   `yaml:"release_orphans"`
}

type Debug struct {
	Stats bool `yaml:"stats"`
}

type Log struct {
	Level string `yaml:"level"`
}

// Config is the whole file. Omitted keys keep their Default values.
type Config struct {
	Window   Window   `yaml:"window"`
	Spin     Spin     `yaml:"spin"`
	Camera   Camera   `yaml:"camera"`
	Shape    Shape    `yaml:"shape"`
	Material Material `yaml:"material"`
	Debug    Debug    `yaml:"debug"`
	Log      Log      `yaml:"log"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Window:   Window{Width: 1280, Height: 720, Title: "shapeshow", TPS: 60},
		Spin:     Spin{Rate: 1},
		Camera:   Camera{Start: [3]float32{0, 2, 0}, Target: [3]float32{0, 0, -5}, Speed: 4, FovDegrees: 45},
		Shape:    Shape{Initial: "Cube", Position: [3]float32{0, 0, -5}},
		Material: Material{AlphaMode: "blend"},
		Debug:    Debug{Stats: true},
		Log:      Log{Level: "info"},
	}
}

// Load reads path over Default. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	cfg, err = Parse(data)
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over Default and validates the result. Unknown keys
// are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate reports every invalid value, joined.
func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Window.TPS <= 0 {
		errs = append(errs, fmt.Errorf("window.tps %d must be positive", c.Window.TPS))
	}
	if c.Camera.Speed < 0 {
		errs = append(errs, fmt.Errorf("camera.speed %v must not be negative", c.Camera.Speed))
	}
	if c.Camera.FovDegrees <= 0 || c.Camera.FovDegrees >= 180 {
		errs = append(errs, fmt.Errorf("camera.fov_degrees %v must be in (0, 180)", c.Camera.FovDegrees))
	}
	if c.Camera.Start == c.Camera.Target {
		errs = append(errs, errors.New("camera.start and camera.target must differ"))
	}
	if _, err := c.InitialShape(); err != nil {
		errs = append(errs, fmt.Errorf("shape.initial: %w", err))
	}
	if _, err := c.AlphaMode(); err != nil {
		errs = append(errs, fmt.Errorf("material.alpha_mode: %w", err))
	}
	if _, err := c.LogLevel(); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	return errors.Join(errs...)
}

// InitialShape parses Shape.Initial. Pyramid has no mesh and is refused here
// rather than at startup.
func (c Config) InitialShape() (scene.Shape, error) {
	s, err := scene.ParseShape(c.Shape.Initial)
	if err != nil {
		return s, err
	}
	if s == scene.Pyramid {
		return s, errors.New("Pyramid is not yet implemented")
	}
	return s, nil
}

func (c Config) AlphaMode() (scene.AlphaMode, error) {
	switch strings.ToLower(c.Material.AlphaMode) {
	case "blend":
		return scene.AlphaBlend, nil
	case "opaque":
		return scene.AlphaOpaque, nil
	}
	return 0, fmt.Errorf("unknown alpha mode %q", c.Material.AlphaMode)
}

func (c Config) LogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelInfo, err
	}
	return level, nil
}

// Settings converts the validated config into scene settings.
func (c Config) Settings() scene.Settings {
	alpha, _ := c.AlphaMode()
	return scene.Settings{
		SpinRate:       c.Spin.Rate,
		CameraSpeed:    c.Camera.Speed,
		CameraStart:    mgl32.Vec3(c.Camera.Start),
		CameraTarget:   mgl32.Vec3(c.Camera.Target),
		FovY:           mgl32.DegToRad(c.Camera.FovDegrees),
		ShapePosition:  mgl32.Vec3(c.Shape.Position),
		AlphaMode:      alpha,
		ReleaseOrphans: c.Material.ReleaseOrphans,
	}
}
