// pkg/config/config.go
package config

import (
	"encoding/json"
	"fmt"
	"image/color"
	"math"
	"os"

	"github.com/opd-ai/go-duel/pkg/entity"
	"github.com/opd-ai/go-duel/pkg/input"
	"github.com/opd-ai/go-duel/pkg/validation"
)

// GameConfig contains configuration for a duel
type GameConfig struct {
	Playfield PlayfieldConfig `json:"playfield"`
	Physics   PhysicsConfig   `json:"physics"`
	Players   [2]PlayerConfig `json:"players"`
}

// PlayfieldConfig is the size of the arena in world units
type PlayfieldConfig struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// PhysicsConfig contains movement, combat and timing parameters
type PhysicsConfig struct {
	ShipSpeed          float64 `json:"shipSpeed"`
	ShipRotationSpeed  float64 `json:"shipRotationSpeed"`
	ShipRadius         float64 `json:"shipRadius"`
	ProjectileSpeed    float64 `json:"projectileSpeed"`
	ProjectileRadius   float64 `json:"projectileRadius"`
	ProjectileCapacity int     `json:"projectileCapacity"`
	// MaxDeltaTime clamps the per-tick time step in seconds. 0 disables it.
	MaxDeltaTime float64 `json:"maxDeltaTime"`
}

// PlayerConfig contains configuration for one player
type PlayerConfig struct {
	Name            string    `json:"name"`
	SpawnX          float64   `json:"spawnX"`
	SpawnY          float64   `json:"spawnY"`
	Heading         float64   `json:"heading"`
	ShipColor       string    `json:"shipColor"`
	ProjectileColor string    `json:"projectileColor"`
	Keys            KeyConfig `json:"keys"`
}

// KeyConfig names the keys a player uses
type KeyConfig struct {
	Forward  string `json:"forward"`
	Left     string `json:"left"`
	Backward string `json:"backward"`
	Right    string `json:"right"`
	Fire     string `json:"fire"`
}

// LoadConfig loads a configuration from a file and validates it
func LoadConfig(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return config, nil
}

// SaveConfig saves a configuration to a file
func SaveConfig(config *GameConfig, path string) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns the stock two-player layout on a 640x480 field
func DefaultConfig() *GameConfig {
	return &GameConfig{
		Playfield: PlayfieldConfig{
			Width:  640,
			Height: 480,
		},
		Physics: PhysicsConfig{
			ShipSpeed:          100,
			ShipRotationSpeed:  5,
			ShipRadius:         10,
			ProjectileSpeed:    150,
			ProjectileRadius:   3,
			ProjectileCapacity: entity.DefaultProjectileCapacity,
			MaxDeltaTime:       0,
		},
		Players: [2]PlayerConfig{
			{
				Name:            "Blue",
				SpawnX:          170,
				SpawnY:          240,
				Heading:         math.Pi,
				ShipColor:       "#0000FF",
				ProjectileColor: "#0000FF",
				Keys: KeyConfig{
					Forward:  "w",
					Left:     "a",
					Backward: "s",
					Right:    "d",
					Fire:     "space",
				},
			},
			{
				Name:            "Red",
				SpawnX:          470,
				SpawnY:          240,
				Heading:         0,
				ShipColor:       "#FF0000",
				ProjectileColor: "#FF0000",
				Keys: KeyConfig{
					Forward:  "up",
					Left:     "left",
					Backward: "down",
					Right:    "right",
					Fire:     "semicolon",
				},
			},
		},
	}
}

// Validate checks every value in the configuration
func (c *GameConfig) Validate() error {
	pf := c.Playfield
	if err := validation.ValidateRange("playfield.width", pf.Width, 1, validation.MaxPlayfieldDimension); err != nil {
		return err
	}
	if err := validation.ValidateRange("playfield.height", pf.Height, 1, validation.MaxPlayfieldDimension); err != nil {
		return err
	}

	p := c.Physics
	positives := []struct {
		field string
		value float64
	}{
		{"physics.shipSpeed", p.ShipSpeed},
		{"physics.shipRotationSpeed", p.ShipRotationSpeed},
		{"physics.shipRadius", p.ShipRadius},
		{"physics.projectileSpeed", p.ProjectileSpeed},
		{"physics.projectileRadius", p.ProjectileRadius},
	}
	for _, v := range positives {
		if err := validation.ValidatePositive(v.field, v.value); err != nil {
			return err
		}
	}
	if err := validation.ValidateRange("physics.projectileCapacity", float64(p.ProjectileCapacity), 1, validation.MaxProjectileCapacity); err != nil {
		return err
	}
	if err := validation.ValidateNonNegative("physics.maxDeltaTime", p.MaxDeltaTime); err != nil {
		return err
	}

	for i := range c.Players {
		if err := c.Players[i].validate(pf); err != nil {
			return fmt.Errorf("players[%d]: %w", i, err)
		}
	}

	bindings, err := c.Bindings()
	if err != nil {
		return err
	}
	return validation.ValidateBindingsDisjoint(bindings)
}

func (pc *PlayerConfig) validate(pf PlayfieldConfig) error {
	if _, err := validation.ValidatePlayerName(pc.Name); err != nil {
		return err
	}
	if err := validation.ValidateSpawnPoint(pc.SpawnX, pc.SpawnY, pf.Width, pf.Height); err != nil {
		return err
	}
	if math.IsNaN(pc.Heading) || math.IsInf(pc.Heading, 0) {
		return fmt.Errorf("heading must be finite, got %v", pc.Heading)
	}
	if _, err := validation.ParseHexColor(pc.ShipColor); err != nil {
		return fmt.Errorf("shipColor: %w", err)
	}
	if _, err := validation.ParseHexColor(pc.ProjectileColor); err != nil {
		return fmt.Errorf("projectileColor: %w", err)
	}
	binding, err := pc.Binding()
	if err != nil {
		return err
	}
	return validation.ValidateBinding(binding)
}

// Binding resolves the player's key names
func (pc *PlayerConfig) Binding() (input.Binding, error) {
	names := []string{pc.Keys.Forward, pc.Keys.Left, pc.Keys.Backward, pc.Keys.Right, pc.Keys.Fire}
	keys := make([]input.Key, len(names))
	for i, name := range names {
		k, err := validation.ValidateKeyName(name)
		if err != nil {
			return input.Binding{}, err
		}
		keys[i] = k
	}
	return input.Binding{
		Forward:  keys[0],
		Left:     keys[1],
		Backward: keys[2],
		Right:    keys[3],
		Fire:     keys[4],
	}, nil
}

// Bindings resolves both players' key names
func (c *GameConfig) Bindings() ([2]input.Binding, error) {
	var out [2]input.Binding
	for i := range c.Players {
		b, err := c.Players[i].Binding()
		if err != nil {
			return out, fmt.Errorf("players[%d]: %w", i, err)
		}
		out[i] = b
	}
	return out, nil
}

// Colors returns the parsed ship and projectile colors
func (pc *PlayerConfig) Colors() (ship, projectile color.RGBA, err error) {
	if ship, err = validation.ParseHexColor(pc.ShipColor); err != nil {
		return ship, projectile, err
	}
	projectile, err = validation.ParseHexColor(pc.ProjectileColor)
	return ship, projectile, err
}

// ShipStats returns the per-ship physics parameters
func (c *GameConfig) ShipStats() entity.ShipStats {
	return entity.ShipStats{
		Speed:         c.Physics.ShipSpeed,
		RotationSpeed: c.Physics.ShipRotationSpeed,
		Radius:        c.Physics.ShipRadius,
	}
}
