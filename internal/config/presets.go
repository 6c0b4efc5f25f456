package config

import "sort"

var Presets = map[string]*Config{
	"default": DefaultConfig(),
	"calm": {
		Theme: DefaultTheme, TileSize: DefaultTileSize, FPS: 20,
		Timing: TimingConfig{MinDelay: 20000, MaxDelay: 120000, FlipDuration: 900},
	},
	"lively": {
		Theme: DefaultTheme, TileSize: DefaultTileSize, FPS: 30,
		Timing: TimingConfig{MinDelay: 1000, MaxDelay: 8000, FlipDuration: 350},
	},
	"frantic": {
		Theme: DefaultTheme, TileSize: DefaultTileSize, FPS: 60,
		Timing: TimingConfig{MinDelay: 200, MaxDelay: 1500, FlipDuration: 200},
	},
	"mosaic": {
		Theme: DefaultTheme, TileSize: 60, FPS: 30,
		Timing: TimingConfig{MinDelay: DefaultMinDelayMs, MaxDelay: DefaultMaxDelayMs, FlipDuration: DefaultFlipDuration},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

// ListPresets returns preset names in sorted order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
