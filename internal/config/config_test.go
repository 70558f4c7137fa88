package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/marcus/gridmenu/pkg/menu"
)

func TestLoad(t *testing.T) {
	t.Run("existing file", func(t *testing.T) {
		dir := t.TempDir()
		configDir := filepath.Join(dir, ".gridmenu")
		if err := os.MkdirAll(configDir, 0755); err != nil {
			t.Fatalf("setup: mkdir failed: %v", err)
		}

		expected := &Config{
			Backend:          BackendTea,
			Blocking:         true,
			ScrollIntervalMS: 200,
			LogLevel:         "debug",
			Palette:          map[string]Colors{"title": {Fg: "1", Bg: "0"}},
		}

		data, err := json.MarshalIndent(expected, "", "  ")
		if err != nil {
			t.Fatalf("setup: marshal failed: %v", err)
		}

		if err := os.WriteFile(filepath.Join(configDir, "config.json"), data, 0644); err != nil {
			t.Fatalf("setup: write failed: %v", err)
		}

		cfg, err := Load(dir)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}

		if cfg.Backend != expected.Backend {
			t.Errorf("Backend: got %q, want %q", cfg.Backend, expected.Backend)
		}
		if cfg.Blocking != expected.Blocking {
			t.Errorf("Blocking: got %v, want %v", cfg.Blocking, expected.Blocking)
		}
		if cfg.ScrollInterval() != 200*time.Millisecond {
			t.Errorf("ScrollInterval: got %v, want 200ms", cfg.ScrollInterval())
		}
		if cfg.LogLevel != expected.LogLevel {
			t.Errorf("LogLevel: got %q, want %q", cfg.LogLevel, expected.LogLevel)
		}
		if cfg.Palette["title"] != expected.Palette["title"] {
			t.Errorf("Palette[title]: got %+v, want %+v", cfg.Palette["title"], expected.Palette["title"])
		}
	})

	t.Run("non-existent file returns empty config", func(t *testing.T) {
		dir := t.TempDir()

		cfg, err := Load(dir)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}

		if cfg == nil {
			t.Fatal("Load returned nil config")
		}
		if cfg.BackendOrDefault() != BackendTcell {
			t.Errorf("BackendOrDefault: got %q, want %q", cfg.BackendOrDefault(), BackendTcell)
		}
		if cfg.ScrollInterval() != menu.DefaultScrollInterval {
			t.Errorf("ScrollInterval: got %v, want %v", cfg.ScrollInterval(), menu.DefaultScrollInterval)
		}
	})

	t.Run("invalid JSON returns error", func(t *testing.T) {
		dir := t.TempDir()
		configDir := filepath.Join(dir, ".gridmenu")
		if err := os.MkdirAll(configDir, 0755); err != nil {
			t.Fatalf("setup: mkdir failed: %v", err)
		}

		if err := os.WriteFile(filepath.Join(configDir, "config.json"), []byte("not valid json{"), 0644); err != nil {
			t.Fatalf("setup: write failed: %v", err)
		}

		_, err := Load(dir)
		if err == nil {
			t.Fatal("Load should fail for invalid JSON")
		}
	})
}

func TestSave(t *testing.T) {
	t.Run("creates directories and writes valid JSON", func(t *testing.T) {
		dir := t.TempDir()

		cfg := &Config{Backend: BackendTea, ScrollIntervalMS: 50}

		if err := Save(dir, cfg); err != nil {
			t.Fatalf("Save failed: %v", err)
		}

		// Verify file exists
		configPath := filepath.Join(dir, ".gridmenu", "config.json")
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			t.Fatal("config file not created")
		}

		data, err := os.ReadFile(configPath)
		if err != nil {
			t.Fatalf("read config failed: %v", err)
		}

		var loaded Config
		if err := json.Unmarshal(data, &loaded); err != nil {
			t.Fatalf("config is not valid JSON: %v", err)
		}

		if loaded.Backend != cfg.Backend {
			t.Errorf("Backend: got %q, want %q", loaded.Backend, cfg.Backend)
		}
	})

	t.Run("overwrites existing file", func(t *testing.T) {
		dir := t.TempDir()

		if err := Save(dir, &Config{Backend: BackendTea}); err != nil {
			t.Fatalf("first Save failed: %v", err)
		}
		if err := Save(dir, &Config{Backend: BackendTcell}); err != nil {
			t.Fatalf("second Save failed: %v", err)
		}

		loaded, err := Load(dir)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if loaded.Backend != BackendTcell {
			t.Errorf("Backend: got %q, want %q", loaded.Backend, BackendTcell)
		}
	})
}

func TestBackend(t *testing.T) {
	t.Run("SetBackend/GetBackend round trip", func(t *testing.T) {
		dir := t.TempDir()

		if err := SetBackend(dir, BackendTea); err != nil {
			t.Fatalf("SetBackend failed: %v", err)
		}

		got, err := GetBackend(dir)
		if err != nil {
			t.Fatalf("GetBackend failed: %v", err)
		}
		if got != BackendTea {
			t.Errorf("GetBackend: got %q, want %q", got, BackendTea)
		}
	})

	t.Run("unknown backend rejected", func(t *testing.T) {
		dir := t.TempDir()

		if err := SetBackend(dir, "gdi"); err == nil {
			t.Fatal("SetBackend should reject unknown backend")
		}
	})

	t.Run("SetBackend preserves other config fields", func(t *testing.T) {
		dir := t.TempDir()

		if err := Save(dir, &Config{LogLevel: "warn", Blocking: true}); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
		if err := SetBackend(dir, BackendTea); err != nil {
			t.Fatalf("SetBackend failed: %v", err)
		}

		cfg, err := Load(dir)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if cfg.LogLevel != "warn" || !cfg.Blocking {
			t.Errorf("other fields lost: %+v", cfg)
		}
	})
}

func TestPalette(t *testing.T) {
	t.Run("defaults cover every slot", func(t *testing.T) {
		cfg := &Config{}
		p := cfg.ResolvedPalette()
		for _, slot := range menu.Slots() {
			if _, ok := p[slot]; !ok {
				t.Errorf("no colours for slot %v", slot)
			}
		}
		if p[menu.SlotSelected] != (Colors{Fg: "7", Bg: "2"}) {
			t.Errorf("selected: got %+v", p[menu.SlotSelected])
		}
	})

	t.Run("SetColor overrides one slot", func(t *testing.T) {
		dir := t.TempDir()

		if err := SetColor(dir, "Selected", Colors{Fg: "#ffffff", Bg: "1"}); err != nil {
			t.Fatalf("SetColor failed: %v", err)
		}

		cfg, err := Load(dir)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		p := cfg.ResolvedPalette()
		if p[menu.SlotSelected] != (Colors{Fg: "#ffffff", Bg: "1"}) {
			t.Errorf("selected: got %+v", p[menu.SlotSelected])
		}
		if p[menu.SlotTitle] != (Colors{Fg: "2", Bg: "4"}) {
			t.Errorf("title changed: got %+v", p[menu.SlotTitle])
		}
	})

	t.Run("ClearColor restores default", func(t *testing.T) {
		dir := t.TempDir()

		if err := SetColor(dir, "item", Colors{Fg: "1"}); err != nil {
			t.Fatalf("SetColor failed: %v", err)
		}
		if err := ClearColor(dir, "item"); err != nil {
			t.Fatalf("ClearColor failed: %v", err)
		}

		cfg, err := Load(dir)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if got := cfg.ResolvedPalette()[menu.SlotItem]; got != (Colors{Fg: "7", Bg: "4"}) {
			t.Errorf("item: got %+v", got)
		}
	})

	t.Run("background override", func(t *testing.T) {
		dir := t.TempDir()

		if got := (&Config{}).BackgroundOrDefault(); got != DefaultBackground {
			t.Errorf("default background: got %+v", got)
		}
		if err := SetColor(dir, "Background", Colors{Bg: "0"}); err != nil {
			t.Fatalf("SetColor failed: %v", err)
		}
		cfg, err := Load(dir)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if got := cfg.BackgroundOrDefault(); got != (Colors{Bg: "0"}) {
			t.Errorf("background: got %+v", got)
		}

		if err := ClearColor(dir, "background"); err != nil {
			t.Fatalf("ClearColor failed: %v", err)
		}
		cfg, err = Load(dir)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if cfg.Background != nil {
			t.Errorf("background not cleared: %+v", cfg.Background)
		}
	})

	t.Run("unknown slot rejected", func(t *testing.T) {
		if err := SetColor(t.TempDir(), "border", Colors{}); err == nil {
			t.Fatal("SetColor should reject unknown slot")
		}
	})
}
