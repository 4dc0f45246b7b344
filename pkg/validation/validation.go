// Package validation provides value checks for duel configuration: colors,
// numeric ranges, spawn points, key names and player names.
package validation

import (
	"fmt"
	"image/color"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/opd-ai/go-duel/pkg/input"
	"github.com/opd-ai/go-duel/pkg/physics"
)

// Limits for configurable values.
const (
	MaxPlayerNameLen      = 32
	MaxPlayfieldDimension = 10000
	MaxProjectileCapacity = 10000
)

// Renderer names accepted on the command line and in the environment.
var Renderers = []string{"engo", "ebiten", "terminal", "headless"}

var (
	// #RGB or #RRGGBB
	hexColorPattern = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

	// Alphanumerics, spaces, hyphens, underscores and basic punctuation
	validPlayerNameChars = regexp.MustCompile(`^[a-zA-Z0-9\s\-_.()]+$`)
)

// ParseHexColor validates a #RGB or #RRGGBB string and converts it to an
// opaque color.
func ParseHexColor(s string) (color.RGBA, error) {
	if !hexColorPattern.MatchString(s) {
		return color.RGBA{}, fmt.Errorf("invalid color %q (want #RGB or #RRGGBB)", s)
	}
	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

// ValidatePositive rejects zero, negative, NaN and infinite values.
func ValidatePositive(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return fmt.Errorf("%s must be a positive finite number, got %v", field, v)
	}
	return nil
}

// ValidateNonNegative rejects negative, NaN and infinite values.
func ValidateNonNegative(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return fmt.Errorf("%s must be a non-negative finite number, got %v", field, v)
	}
	return nil
}

// ValidateRange checks min <= v <= max.
func ValidateRange(field string, v, min, max float64) error {
	if math.IsNaN(v) || v < min || v > max {
		return fmt.Errorf("%s out of range: %v (must be between %v and %v)", field, v, min, max)
	}
	return nil
}

// ValidateSpawnPoint checks that a spawn point lies on the playfield,
// edges included.
func ValidateSpawnPoint(x, y, width, height float64) error {
	field := physics.NewPlayfield(width, height)
	if math.IsNaN(x) || math.IsNaN(y) || !field.Contains(physics.Vector2D{X: x, Y: y}) {
		return fmt.Errorf("spawn point (%v, %v) outside playfield %vx%v", x, y, width, height)
	}
	return nil
}

// ValidateKeyName resolves a configured key name.
func ValidateKeyName(name string) (input.Key, error) {
	key, err := input.ParseKey(name)
	if err != nil {
		return input.KeyUnknown, fmt.Errorf("invalid key binding: %w", err)
	}
	return key, nil
}

// ValidateBinding checks that a player's five keys are assigned and
// distinct. Escape is held back for quitting.
func ValidateBinding(b input.Binding) error {
	seen := make(map[input.Key]bool, 5)
	for _, k := range b.Keys() {
		if k == input.KeyUnknown {
			return fmt.Errorf("binding has an unassigned key")
		}
		if k == input.KeyEscape {
			return fmt.Errorf("key %s is reserved for quit", k)
		}
		if seen[k] {
			return fmt.Errorf("key %s bound twice", k)
		}
		seen[k] = true
	}
	return nil
}

// ValidateBindingsDisjoint checks that no key is shared between players.
func ValidateBindingsDisjoint(bindings [2]input.Binding) error {
	first := make(map[input.Key]bool, 5)
	for _, k := range bindings[0].Keys() {
		first[k] = true
	}
	for _, k := range bindings[1].Keys() {
		if first[k] {
			return fmt.Errorf("key %s bound to both players", k)
		}
	}
	return nil
}

// ValidateRenderer checks a renderer name.
func ValidateRenderer(name string) error {
	for _, r := range Renderers {
		if name == r {
			return nil
		}
	}
	return fmt.Errorf("unknown renderer %q (must be one of %s)", name, strings.Join(Renderers, ", "))
}

// ValidatePlayerName validates and trims a player name.
func ValidatePlayerName(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("player name cannot be empty")
	}

	if len(name) > MaxPlayerNameLen {
		return "", fmt.Errorf("player name too long: %d characters (max %d)", len(name), MaxPlayerNameLen)
	}

	if !utf8.ValidString(name) {
		return "", fmt.Errorf("player name contains invalid UTF-8 characters")
	}

	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", fmt.Errorf("player name cannot be only whitespace")
	}

	// Check for control characters first
	for _, r := range trimmed {
		if unicode.IsControl(r) {
			return "", fmt.Errorf("player name contains control characters")
		}
	}

	if !validPlayerNameChars.MatchString(trimmed) {
		return "", fmt.Errorf("player name contains invalid characters (only alphanumeric, spaces, hyphens, underscores, and basic punctuation allowed)")
	}

	return trimmed, nil
}
