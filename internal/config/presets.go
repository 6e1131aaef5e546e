package config

import "sort"

var Presets = map[string]func() *Config{
	"classic": DefaultConfig,
	"inner": func() *Config {
		cfg := DefaultConfig()
		cfg.Planets = cfg.Planets[:4]
		cfg.Camera.Position = [3]float64{0, 60, 180}
		cfg.Stars.Count = 5000
		return cfg
	},
	"outer": func() *Config {
		cfg := DefaultConfig()
		cfg.Planets = cfg.Planets[4:]
		cfg.Camera.Position = [3]float64{0, 150, 600}
		return cfg
	},
	"still": func() *Config {
		cfg := DefaultConfig()
		for i := range cfg.Planets {
			cfg.Planets[i].Speed = 0
		}
		return cfg
	},
	"sparse": func() *Config {
		cfg := DefaultConfig()
		cfg.Stars.Count = 1500
		return cfg
	},
}

// GetPreset returns a fresh config for the named preset, or nil.
func GetPreset(name string) *Config {
	build, ok := Presets[name]
	if !ok {
		return nil
	}
	return build()
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
