// Package config defines the slider demo configuration format and helpers for
// loading or saving it to disk.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/edward-ap/rangeslider/internal/slider"
)

const (
	// AppID is the stable application identifier used for config storage.
	AppID = "rangeslider"
	// AppConfigSubdir is the OS-specific directory that holds the config file.
	AppConfigSubdir = "RangeSlider"
	// AppConfigName is the JSON file stored on disk.
	AppConfigName = "sliderdemo.json"

	// DefaultWidth is the preferred window width.
	DefaultWidth = 480
	// DefaultHeight is the preferred window height.
	DefaultHeight = 360
	// DefaultVolume sets the safe initial playback level.
	DefaultVolume = 70
	// DefaultStreamURL is a known-good stream for the controlled volume slider.
	DefaultStreamURL = "https://26413.live.streamtheworld.com/WMGKFMAACIHR.aac"
)

// SliderConfig describes one slider shown by the demo. Fields omitted from the
// JSON keep their defaults.
type SliderConfig struct {
	Label        string   `json:"label"`
	Min          float64  `json:"min"`
	Max          float64  `json:"max"`
	Step         float64  `json:"step"`
	Disabled     bool     `json:"disabled,omitempty"`
	ReadOnly     bool     `json:"readOnly,omitempty"`
	Value        *float64 `json:"value,omitempty"`
	DefaultValue *float64 `json:"defaultValue,omitempty"`
}

// DefaultSliderConfig returns an uncontrolled slider over the default bounds.
func DefaultSliderConfig() SliderConfig {
	b := slider.DefaultBounds()
	return SliderConfig{Label: "Slider", Min: b.Min, Max: b.Max, Step: b.Step}
}

// UnmarshalJSON decodes on top of DefaultSliderConfig so a missing "max" means
// 100 rather than 0.
func (s *SliderConfig) UnmarshalJSON(b []byte) error {
	type plain SliderConfig
	p := plain(DefaultSliderConfig())
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	*s = SliderConfig(p)
	return nil
}

// Bounds returns the slider domain.
func (s SliderConfig) Bounds() slider.Bounds {
	return slider.Bounds{Min: s.Min, Max: s.Max, Step: s.Step}
}

// Props converts the entry into engine props. Callbacks are left to the host.
func (s SliderConfig) Props() slider.Props {
	p := slider.Props{
		Bounds:   s.Bounds(),
		Disabled: s.Disabled,
		ReadOnly: s.ReadOnly,
	}
	if s.Value != nil {
		p.Value = slider.Float(*s.Value)
	}
	if s.DefaultValue != nil {
		p.DefaultValue = slider.Float(*s.DefaultValue)
	}
	return p
}

// Config aggregates every demo preference.
type Config struct {
	StreamURL   string         `json:"streamUrl"`
	Volume      int            `json:"volume"`
	SmallHandle bool           `json:"smallHandle,omitempty"`
	WindowW     int            `json:"windowW"`
	WindowH     int            `json:"windowH"`
	Sliders     []SliderConfig `json:"sliders"`
}

// ConfigDir resolves the writable directory that should contain the config file.
func ConfigDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, AppConfigSubdir), nil
}

// ConfigPath is a helper that returns the full path to the config file.
func ConfigPath() (string, error) {
	d, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(d, AppConfigName), nil
}

// Load reads the config from disk, writing and returning defaults when no
// file exists yet.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg := newDefaultConfig()
			// Try saving an initial config, but still return defaults even if it fails.
			_ = cfg.Save()
			return cfg, nil
		}
		return nil, err
	}

	cfg := &Config{}
	if err := json.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("config parse error: %w", err)
	}
	cfg.applyRuntimeDefaults()
	return cfg, nil
}

// Save persists the configuration to disk, creating directories as needed.
func (c *Config) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

// AppID returns the stable identifier used by the GUI framework.
func (c *Config) AppID() string { return AppID }

// newDefaultConfig builds an in-memory config showing each slider flavor.
func newDefaultConfig() *Config {
	cfg := &Config{
		StreamURL: DefaultStreamURL,
		Volume:    DefaultVolume,
		WindowW:   DefaultWidth,
		WindowH:   DefaultHeight,
		Sliders: []SliderConfig{
			{Label: "Uncontrolled", Min: 0, Max: 100, Step: 1, DefaultValue: slider.Float(25)},
			{Label: "Coarse steps", Min: 0, Max: 10, Step: 5},
			{Label: "Fine, negative range", Min: -1, Max: 1, Step: 0.05, DefaultValue: slider.Float(0)},
			{Label: "Read-only", Min: 0, Max: 100, Step: 1, ReadOnly: true, DefaultValue: slider.Float(60)},
			{Label: "Disabled", Min: 0, Max: 100, Step: 1, Disabled: true, DefaultValue: slider.Float(40)},
		},
	}
	cfg.applyRuntimeDefaults()
	return cfg
}

// applyRuntimeDefaults normalizes config values after a load or when defaults
// are constructed, so every slider satisfies slider.Bounds.Validate.
func (c *Config) applyRuntimeDefaults() {
	if strings.TrimSpace(c.StreamURL) == "" {
		c.StreamURL = DefaultStreamURL
	}
	if c.Volume < 0 || c.Volume > 100 {
		c.Volume = DefaultVolume
	}
	if c.WindowW <= 0 {
		c.WindowW = DefaultWidth
	}
	if c.WindowH <= 0 {
		c.WindowH = DefaultHeight
	}
	if c.Sliders == nil {
		c.Sliders = []SliderConfig{}
	}
	for i := range c.Sliders {
		s := &c.Sliders[i]
		if strings.TrimSpace(s.Label) == "" {
			s.Label = fmt.Sprintf("Slider %d", i+1)
		}
		if !(s.Step > 0) {
			s.Step = slider.DefaultStep
		}
		if s.Max < s.Min {
			s.Min, s.Max = s.Max, s.Min
		}
	}
}
