package config

import (
	"encoding/json"
	"errors"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/opd-ai/go-duel/pkg/entity"
	"github.com/opd-ai/go-duel/pkg/input"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config == nil {
		t.Fatal("DefaultConfig returned nil")
	}
	if err := config.Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() = %v", err)
	}

	if config.Playfield.Width != 640 || config.Playfield.Height != 480 {
		t.Errorf("Expected playfield 640x480, got %vx%v", config.Playfield.Width, config.Playfield.Height)
	}

	p := config.Physics
	if p.ShipSpeed != 100 || p.ShipRotationSpeed != 5 || p.ShipRadius != 10 {
		t.Errorf("unexpected ship physics %+v", p)
	}
	if p.ProjectileSpeed != 150 || p.ProjectileRadius != 3 {
		t.Errorf("unexpected projectile physics %+v", p)
	}
	if p.ProjectileCapacity != entity.DefaultProjectileCapacity {
		t.Errorf("Expected capacity %d, got %d", entity.DefaultProjectileCapacity, p.ProjectileCapacity)
	}
	if p.MaxDeltaTime != 0 {
		t.Errorf("Expected delta clamp disabled, got %v", p.MaxDeltaTime)
	}

	one, two := config.Players[0], config.Players[1]
	if one.SpawnX != 170 || one.SpawnY != 240 || one.Heading != math.Pi {
		t.Errorf("unexpected player one spawn %+v", one)
	}
	if two.SpawnX != 470 || two.SpawnY != 240 || two.Heading != 0 {
		t.Errorf("unexpected player two spawn %+v", two)
	}

	bindings, err := config.Bindings()
	if err != nil {
		t.Fatalf("Bindings() failed: %v", err)
	}
	if bindings != input.DefaultBindings() {
		t.Errorf("Bindings() = %+v, want defaults", bindings)
	}

	ship, projectile, err := one.Colors()
	if err != nil {
		t.Fatalf("Colors() failed: %v", err)
	}
	blue := color.RGBA{0, 0, 255, 255}
	if ship != blue || projectile != blue {
		t.Errorf("player one colors = %v/%v, want blue", ship, projectile)
	}

	stats := config.ShipStats()
	if stats.Speed != 100 || stats.RotationSpeed != 5 || stats.Radius != 10 {
		t.Errorf("ShipStats() = %+v", stats)
	}
}

func TestLoadConfig_Success(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "duel.json")

	testConfig := DefaultConfig()
	testConfig.Playfield.Width = 800
	testConfig.Physics.ProjectileCapacity = 8
	testConfig.Players[1].Name = "Green"
	testConfig.Players[1].ShipColor = "#0F0"

	if err := SaveConfig(testConfig, configPath); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	loaded, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if loaded.Playfield.Width != 800 {
		t.Errorf("Expected width 800, got %v", loaded.Playfield.Width)
	}
	if loaded.Physics.ProjectileCapacity != 8 {
		t.Errorf("Expected capacity 8, got %d", loaded.Physics.ProjectileCapacity)
	}
	if loaded.Players[1].Name != "Green" || loaded.Players[1].ShipColor != "#0F0" {
		t.Errorf("player two not round-tripped: %+v", loaded.Players[1])
	}
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "partial.json")
	if err := os.WriteFile(configPath, []byte(`{"physics":{"shipSpeed":250}}`), 0o644); err != nil {
		t.Fatal(err)
	}

	loaded, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if loaded.Physics.ShipSpeed != 250 {
		t.Errorf("Expected ship speed 250, got %v", loaded.Physics.ShipSpeed)
	}
	if loaded.Physics.ProjectileSpeed != 150 || loaded.Playfield.Width != 640 {
		t.Error("unspecified fields should keep their defaults")
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name        string
		content     string
		errContains string
	}{
		{"invalid json", `{"playfield":`, "failed to parse"},
		{"negative speed", `{"physics":{"shipSpeed":-1}}`, "shipSpeed"},
		{"spawn outside", `{"players":[{"name":"A","spawnX":900,"spawnY":10,"shipColor":"#fff","projectileColor":"#fff","keys":{"forward":"w","left":"a","backward":"s","right":"d","fire":"space"}},{"name":"B","spawnX":10,"spawnY":10,"shipColor":"#fff","projectileColor":"#fff","keys":{"forward":"up","left":"left","backward":"down","right":"right","fire":"semicolon"}}]}`, "spawn point"},
		{"bad key", `{"players":[{"name":"A","spawnX":1,"spawnY":1,"shipColor":"#fff","projectileColor":"#fff","keys":{"forward":"q","left":"a","backward":"s","right":"d","fire":"space"}},{"name":"B","spawnX":10,"spawnY":10,"shipColor":"#fff","projectileColor":"#fff","keys":{"forward":"up","left":"left","backward":"down","right":"right","fire":"semicolon"}}]}`, "unknown key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, strings.ReplaceAll(tt.name, " ", "_")+".json")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}
			_, err := LoadConfig(path)
			if err == nil {
				t.Fatal("LoadConfig() should fail")
			}
			if !strings.Contains(err.Error(), tt.errContains) {
				t.Errorf("LoadConfig() error = %v, should contain %q", err, tt.errContains)
			}
		})
	}
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected a not-exist error, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *GameConfig)
	}{
		{"zero width", func(c *GameConfig) { c.Playfield.Width = 0 }},
		{"huge height", func(c *GameConfig) { c.Playfield.Height = 1e6 }},
		{"zero rotation", func(c *GameConfig) { c.Physics.ShipRotationSpeed = 0 }},
		{"nan radius", func(c *GameConfig) { c.Physics.ShipRadius = math.NaN() }},
		{"zero capacity", func(c *GameConfig) { c.Physics.ProjectileCapacity = 0 }},
		{"negative clamp", func(c *GameConfig) { c.Physics.MaxDeltaTime = -1 }},
		{"empty name", func(c *GameConfig) { c.Players[0].Name = "" }},
		{"bad color", func(c *GameConfig) { c.Players[1].ProjectileColor = "red" }},
		{"infinite heading", func(c *GameConfig) { c.Players[0].Heading = math.Inf(1) }},
		{"duplicate key", func(c *GameConfig) { c.Players[0].Keys.Fire = "w" }},
		{"shared key", func(c *GameConfig) { c.Players[1].Keys.Fire = "space" }},
		{"fire on escape", func(c *GameConfig) { c.Players[0].Keys.Fire = "escape" }},
		{"turn on escape", func(c *GameConfig) { c.Players[1].Keys.Left = "escape" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultConfig()
			tt.mutate(c)
			if err := c.Validate(); err == nil {
				t.Error("Validate() should fail")
			}
		})
	}
}

func TestConfigJSONFieldNames(t *testing.T) {
	data, err := json.Marshal(DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	for _, field := range []string{`"playfield"`, `"projectileCapacity"`, `"maxDeltaTime"`, `"projectileColor"`, `"fire":"semicolon"`} {
		if !strings.Contains(string(data), field) {
			t.Errorf("marshalled config missing %s", field)
		}
	}
}
