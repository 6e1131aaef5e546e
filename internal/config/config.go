package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/san-kum/orrery/internal/orrery"
	"github.com/san-kum/orrery/internal/scene"
	"gopkg.in/yaml.v3"
)

const (
	DefaultFOV       = 75.0
	DefaultNear      = 0.1
	DefaultFar       = 2000.0
	DefaultFrameRate = 60
	DefaultWidth     = 1280
	DefaultHeight    = 720
)

var (
	DefaultCameraPosition = [3]float64{0, 70, 250}
	DefaultZoomOffset     = [3]float64{0, 20, 50}
)

type Config struct {
	Window    WindowConfig   `yaml:"window" toml:"window"`
	Camera    CameraConfig   `yaml:"camera" toml:"camera"`
	Controls  ControlsConfig `yaml:"controls" toml:"controls"`
	Stars     StarsConfig    `yaml:"stars" toml:"stars"`
	Sun       SunConfig      `yaml:"sun" toml:"sun"`
	Zoom      ZoomConfig     `yaml:"zoom" toml:"zoom"`
	FrameRate int            `yaml:"frame_rate" toml:"frame_rate"`
	Planets   []PlanetConfig `yaml:"planets" toml:"planets"`
}

type WindowConfig struct {
	Width  int    `yaml:"width" toml:"width"`
	Height int    `yaml:"height" toml:"height"`
	Title  string `yaml:"title" toml:"title"`
}

type CameraConfig struct {
	FOV      float64    `yaml:"fov" toml:"fov"`
	Near     float64    `yaml:"near" toml:"near"`
	Far      float64    `yaml:"far" toml:"far"`
	Position [3]float64 `yaml:"position" toml:"position"`
}

type ControlsConfig struct {
	Damping       bool    `yaml:"damping" toml:"damping"`
	DampingFactor float64 `yaml:"damping_factor" toml:"damping_factor"`
	MinDistance   float64 `yaml:"min_distance" toml:"min_distance"`
	MaxDistance   float64 `yaml:"max_distance" toml:"max_distance"`
}

type StarsConfig struct {
	Count  int     `yaml:"count" toml:"count"`
	Spread float64 `yaml:"spread" toml:"spread"`
	Size   float64 `yaml:"size" toml:"size"`
	Seed   int64   `yaml:"seed" toml:"seed"`
}

type SunConfig struct {
	Radius float64 `yaml:"radius" toml:"radius"`
	Color  uint32  `yaml:"color" toml:"color"`
}

type ZoomConfig struct {
	Offset [3]float64 `yaml:"offset" toml:"offset"`
}

type PlanetConfig struct {
	Name     string  `yaml:"name" toml:"name"`
	Size     float64 `yaml:"size" toml:"size"`
	Distance float64 `yaml:"distance" toml:"distance"`
	Color    uint32  `yaml:"color" toml:"color"`
	Speed    float64 `yaml:"speed" toml:"speed"`
}

func DefaultConfig() *Config {
	cfg := &Config{
		Window: WindowConfig{Width: DefaultWidth, Height: DefaultHeight, Title: "orrery"},
		Camera: CameraConfig{
			FOV:      DefaultFOV,
			Near:     DefaultNear,
			Far:      DefaultFar,
			Position: DefaultCameraPosition,
		},
		Controls: ControlsConfig{
			Damping:       true,
			DampingFactor: 0.05,
			MinDistance:   50,
			MaxDistance:   1000,
		},
		Stars: StarsConfig{
			Count:  scene.DefaultStarCount,
			Spread: scene.DefaultStarSpread,
			Size:   scene.DefaultStarSize,
			Seed:   1,
		},
		Sun:       SunConfig{Radius: scene.DefaultSunRadius, Color: uint32(scene.DefaultSunColor)},
		Zoom:      ZoomConfig{Offset: DefaultZoomOffset},
		FrameRate: DefaultFrameRate,
	}
	for _, d := range scene.DefaultPlanets() {
		cfg.Planets = append(cfg.Planets, PlanetConfig{
			Name:     d.Name,
			Size:     d.Size,
			Distance: d.Distance,
			Color:    uint32(d.Color),
			Speed:    d.Speed,
		})
	}
	return cfg
}

// Load reads a YAML or TOML file over the defaults. A planets list in the
// file replaces the built-in one.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, err
		}
	case ".yaml", ".yml", "":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: unsupported config format %q", orrery.ErrInvalidConfig, filepath.Ext(path))
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	var (
		data []byte
		err  error
	)
	if strings.ToLower(filepath.Ext(path)) == ".toml" {
		var b strings.Builder
		err = toml.NewEncoder(&b).Encode(cfg)
		data = []byte(b.String())
	} else {
		data, err = yaml.Marshal(cfg)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", orrery.ErrInvalidConfig, c.Window.Width, c.Window.Height)
	case c.Camera.FOV <= 0 || c.Camera.FOV >= 180:
		return fmt.Errorf("%w: camera fov %.1f", orrery.ErrInvalidConfig, c.Camera.FOV)
	case c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near:
		return fmt.Errorf("%w: camera clip range [%.2f, %.2f]", orrery.ErrInvalidConfig, c.Camera.Near, c.Camera.Far)
	case c.Controls.MinDistance <= 0 || c.Controls.MaxDistance < c.Controls.MinDistance:
		return fmt.Errorf("%w: controls distance range [%.1f, %.1f]", orrery.ErrInvalidConfig, c.Controls.MinDistance, c.Controls.MaxDistance)
	case c.Controls.Damping && (c.Controls.DampingFactor <= 0 || c.Controls.DampingFactor > 1):
		return fmt.Errorf("%w: damping factor %.3f", orrery.ErrInvalidConfig, c.Controls.DampingFactor)
	case c.Stars.Count < 0 || c.Stars.Spread < 0:
		return fmt.Errorf("%w: starfield count %d spread %.1f", orrery.ErrInvalidConfig, c.Stars.Count, c.Stars.Spread)
	case c.Sun.Radius <= 0:
		return fmt.Errorf("%w: sun radius %.1f", orrery.ErrInvalidConfig, c.Sun.Radius)
	case c.FrameRate <= 0:
		return fmt.Errorf("%w: frame rate %d", orrery.ErrInvalidConfig, c.FrameRate)
	}
	return scene.Validate(c.Descriptors())
}

func (c *Config) Descriptors() []scene.PlanetDescriptor {
	out := make([]scene.PlanetDescriptor, len(c.Planets))
	for i, p := range c.Planets {
		out[i] = scene.PlanetDescriptor{
			Name:     p.Name,
			Size:     p.Size,
			Distance: p.Distance,
			Color:    orrery.Color(p.Color),
			Speed:    p.Speed,
		}
	}
	return out
}

func (c *Config) SceneOptions() scene.Options {
	return scene.Options{
		StarCount:  c.Stars.Count,
		StarSpread: c.Stars.Spread,
		StarSize:   c.Stars.Size,
		Seed:       c.Stars.Seed,
		SunRadius:  c.Sun.Radius,
		SunColor:   orrery.Color(c.Sun.Color),
	}
}

func (c *Config) CameraPosition() orrery.Vec3 {
	p := c.Camera.Position
	return orrery.V(p[0], p[1], p[2])
}

func (c *Config) ZoomOffset() orrery.Vec3 {
	o := c.Zoom.Offset
	return orrery.V(o[0], o[1], o[2])
}
