package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/marcus/gridmenu/pkg/menu"
)

const configFile = ".gridmenu/config.json"

// Backends a menu can run on.
const (
	BackendTcell = "tcell"
	BackendTea   = "tea"
)

// Colors is a foreground/background pair, as stored in the config file.
type Colors = menu.Colors

// Config holds user preferences for running menus.
type Config struct {
	Backend          string            `json:"backend,omitempty"`
	Blocking         bool              `json:"blocking,omitempty"`
	ScrollIntervalMS int               `json:"scroll_interval_ms,omitempty"`
	LogLevel         string            `json:"log_level,omitempty"`
	Palette          map[string]Colors `json:"palette,omitempty"`
	Background       *Colors           `json:"background,omitempty"`
}

// Background is the name SetColor and ClearColor accept for the screen
// background, which is not a menu slot.
const Background = "background"

// DefaultBackground is the engine's default fill behind the menu.
var DefaultBackground = menu.DefaultBackground

// BackendOrDefault returns the configured backend, tcell when unset.
func (c *Config) BackendOrDefault() string {
	if c.Backend == "" {
		return BackendTcell
	}
	return c.Backend
}

// ScrollInterval returns the configured scroll pace, or the engine default.
func (c *Config) ScrollInterval() time.Duration {
	if c.ScrollIntervalMS <= 0 {
		return menu.DefaultScrollInterval
	}
	return time.Duration(c.ScrollIntervalMS) * time.Millisecond
}

// ResolvedPalette overlays the configured colours on the default palette,
// keyed by slot.
func (c *Config) ResolvedPalette() map[menu.ColorSlot]Colors {
	out := menu.DefaultPalette()
	for name, colors := range c.Palette {
		if slot, ok := menu.ParseColorSlot(name); ok {
			out[slot] = colors
		}
	}
	return out
}

// BackgroundOrDefault returns the configured background fill.
func (c *Config) BackgroundOrDefault() Colors {
	if c.Background == nil {
		return DefaultBackground
	}
	return *c.Background
}

// Load reads the config from disk
func Load(baseDir string) (*Config, error) {
	configPath := filepath.Join(baseDir, configFile)

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes the config to disk
func Save(baseDir string, cfg *Config) error {
	configPath := filepath.Join(baseDir, configFile)

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}

// SetBackend sets the default backend
func SetBackend(baseDir string, backend string) error {
	if backend != BackendTcell && backend != BackendTea {
		return fmt.Errorf("unknown backend %q (want %s or %s)", backend, BackendTcell, BackendTea)
	}

	cfg, err := Load(baseDir)
	if err != nil {
		return err
	}

	cfg.Backend = backend
	return Save(baseDir, cfg)
}

// GetBackend returns the default backend
func GetBackend(baseDir string) (string, error) {
	cfg, err := Load(baseDir)
	if err != nil {
		return "", err
	}
	return cfg.BackendOrDefault(), nil
}

// SetColor sets the colours of one slot ("title", "item", "footer",
// "selected", "disabled") or of the background
func SetColor(baseDir string, slot string, colors Colors) error {
	isBackground := strings.EqualFold(strings.TrimSpace(slot), Background)
	s, ok := menu.ParseColorSlot(slot)
	if !ok && !isBackground {
		return fmt.Errorf("unknown colour slot %q", slot)
	}

	cfg, err := Load(baseDir)
	if err != nil {
		return err
	}

	if isBackground {
		cfg.Background = &colors
		return Save(baseDir, cfg)
	}
	if cfg.Palette == nil {
		cfg.Palette = make(map[string]Colors)
	}
	cfg.Palette[s.String()] = colors
	return Save(baseDir, cfg)
}

// ClearColor drops a slot override so the default applies again
func ClearColor(baseDir string, slot string) error {
	cfg, err := Load(baseDir)
	if err != nil {
		return err
	}

	slot = strings.ToLower(strings.TrimSpace(slot))
	if slot == Background {
		cfg.Background = nil
	}
	delete(cfg.Palette, slot)
	return Save(baseDir, cfg)
}
