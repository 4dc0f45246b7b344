// pkg/config/env_config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/opd-ai/go-duel/pkg/validation"
)

// Environment variable names
const (
	EnvRenderer       = "DUEL_RENDERER"
	EnvAudioEnabled   = "DUEL_AUDIO_ENABLED"
	EnvAudioVolume    = "DUEL_AUDIO_VOLUME"
	EnvFrameRate      = "DUEL_FRAME_RATE"
	EnvKeyHoldTimeout = "DUEL_KEY_HOLD_TIMEOUT"
	EnvMaxDeltaTime   = "DUEL_MAX_DELTA_TIME"
	EnvWindowTitle    = "DUEL_WINDOW_TITLE"
	EnvWindowScale    = "DUEL_WINDOW_SCALE"
)

// EnvironmentConfig holds process settings read from DUEL_* variables.
// These describe how the game is presented, not the rules of the duel.
type EnvironmentConfig struct {
	Renderer       string
	AudioEnabled   bool
	AudioVolume    float64
	FrameRate      int
	KeyHoldTimeout time.Duration
	MaxDeltaTime   time.Duration
	WindowTitle    string
	WindowScale    float64
}

// ValidationError reports the first invalid environment setting
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s (%v): %s", e.Field, e.Value, e.Message)
}

// DefaultEnvironmentConfig returns the settings used when no variable is set
func DefaultEnvironmentConfig() *EnvironmentConfig {
	return &EnvironmentConfig{
		Renderer:       "engo",
		AudioEnabled:   true,
		AudioVolume:    0.5,
		FrameRate:      60,
		KeyHoldTimeout: 500 * time.Millisecond,
		MaxDeltaTime:   0,
		WindowTitle:    "Duel",
		WindowScale:    1,
	}
}

// LoadConfigFromEnv reads DUEL_* variables over the defaults. Malformed
// numbers fall back to the default; out-of-range values are an error.
func LoadConfigFromEnv() (*EnvironmentConfig, error) {
	def := DefaultEnvironmentConfig()
	config := &EnvironmentConfig{
		Renderer:       getEnvOrDefault(EnvRenderer, def.Renderer),
		AudioEnabled:   getEnvAsBoolOrDefault(EnvAudioEnabled, def.AudioEnabled),
		AudioVolume:    getEnvAsFloatOrDefault(EnvAudioVolume, def.AudioVolume),
		FrameRate:      getEnvAsIntOrDefault(EnvFrameRate, def.FrameRate),
		KeyHoldTimeout: getEnvAsDurationOrDefault(EnvKeyHoldTimeout, def.KeyHoldTimeout),
		MaxDeltaTime:   getEnvAsDurationOrDefault(EnvMaxDeltaTime, def.MaxDeltaTime),
		WindowTitle:    getEnvOrDefault(EnvWindowTitle, def.WindowTitle),
		WindowScale:    getEnvAsFloatOrDefault(EnvWindowScale, def.WindowScale),
	}

	if err := validateEnvironmentConfig(config); err != nil {
		return nil, fmt.Errorf("environment configuration: %w", err)
	}
	return config, nil
}

// Validate checks the environment settings
func (c *EnvironmentConfig) Validate() error {
	return validateEnvironmentConfig(c)
}

func validateEnvironmentConfig(c *EnvironmentConfig) error {
	if err := validation.ValidateRenderer(c.Renderer); err != nil {
		return &ValidationError{Field: "Renderer", Value: c.Renderer, Message: err.Error()}
	}
	if err := validation.ValidateRange("volume", c.AudioVolume, 0, 1); err != nil {
		return &ValidationError{Field: "AudioVolume", Value: c.AudioVolume, Message: "must be between 0 and 1"}
	}
	if c.FrameRate < 1 || c.FrameRate > 240 {
		return &ValidationError{Field: "FrameRate", Value: c.FrameRate, Message: "must be between 1 and 240"}
	}
	if c.KeyHoldTimeout < 10*time.Millisecond || c.KeyHoldTimeout > 2*time.Second {
		return &ValidationError{Field: "KeyHoldTimeout", Value: c.KeyHoldTimeout, Message: "must be between 10ms and 2s"}
	}
	if c.MaxDeltaTime < 0 || c.MaxDeltaTime > time.Second {
		return &ValidationError{Field: "MaxDeltaTime", Value: c.MaxDeltaTime, Message: "must be between 0 and 1s"}
	}
	if c.WindowTitle == "" {
		return &ValidationError{Field: "WindowTitle", Value: c.WindowTitle, Message: "cannot be empty"}
	}
	if err := validation.ValidateRange("scale", c.WindowScale, 0.25, 8); err != nil {
		return &ValidationError{Field: "WindowScale", Value: c.WindowScale, Message: "must be between 0.25 and 8"}
	}
	return nil
}

// ApplyEnvironmentOverrides copies environment settings that affect the
// simulation into a game configuration.
func ApplyEnvironmentOverrides(gameConfig *GameConfig, env *EnvironmentConfig) {
	if env.MaxDeltaTime > 0 {
		gameConfig.Physics.MaxDeltaTime = env.MaxDeltaTime.Seconds()
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}
	return defaultValue
}

func getEnvAsBoolOrDefault(key string, defaultValue bool) bool {
	if v, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return v
	}
	return defaultValue
}

func getEnvAsFloatOrDefault(key string, defaultValue float64) float64 {
	if v, err := strconv.ParseFloat(os.Getenv(key), 64); err == nil {
		return v
	}
	return defaultValue
}

func getEnvAsDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if v, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return v
	}
	return defaultValue
}
