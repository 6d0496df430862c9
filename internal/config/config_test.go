package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != "8080" {
		t.Errorf("default port mismatch: %s", cfg.Server.Port)
	}
	if cfg.Game.VisionRadius != 8 {
		t.Errorf("default vision radius mismatch: %d", cfg.Game.VisionRadius)
	}
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.toml")
	data := `
[server]
port = "9000"
tick_rate = "100ms"

[game]
map_width = 60
seed = 13
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != "9000" {
		t.Errorf("port not overridden: %s", cfg.Server.Port)
	}
	if cfg.Server.TickRate != 100*time.Millisecond {
		t.Errorf("tick rate not overridden: %v", cfg.Server.TickRate)
	}
	if cfg.Game.MapWidth != 60 {
		t.Errorf("map width not overridden: %d", cfg.Game.MapWidth)
	}
	// Незатронутые поля остаются дефолтными
	if cfg.Game.MapHeight != 25 {
		t.Errorf("untouched field must keep its default, got %d", cfg.Game.MapHeight)
	}
	if cfg.Game.Seed != 13 {
		t.Errorf("seed not overridden: %d", cfg.Game.Seed)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/server.toml"); err == nil {
		t.Error("missing config file must be an error")
	}
}
