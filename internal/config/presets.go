package config

import (
	"fmt"
	"os"
	"strings"
)

// EnvDifficulty is the environment variable that selects a difficulty
// preset and bypasses the interactive menu.
const EnvDifficulty = "FLUPPY_DIFFICULTY"

// DefaultPresetName is the preset used when an override cannot be resolved.
const DefaultPresetName = "normal"

// UnknownPresetError reports a difficulty override that matches no
// configured preset. Callers recover by falling back to the default preset.
type UnknownPresetError struct {
	Name string
}

func (e *UnknownPresetError) Error() string {
	return fmt.Sprintf("unknown difficulty preset %q", e.Name)
}

// Resolve returns the preset with the given name, case-insensitively.
// Returns an UnknownPresetError if no preset matches.
func (c *Config) Resolve(name string) (Preset, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, p := range c.Presets {
		if strings.ToLower(p.Name) == key {
			return p, nil
		}
	}
	return Preset{}, &UnknownPresetError{Name: name}
}

// DefaultPreset returns the default preset, or the first configured preset
// if the default name is missing. A config with no presets at all yields
// the zero preset rather than panicking.
func (c *Config) DefaultPreset() Preset {
	if p, err := c.Resolve(DefaultPresetName); err == nil {
		return p
	}
	if len(c.Presets) == 0 {
		return Preset{}
	}
	return c.Presets[0]
}

// PresetNames returns the preset names in configured (difficulty) order.
func (c *Config) PresetNames() []string {
	names := make([]string, len(c.Presets))
	for i, p := range c.Presets {
		names[i] = p.Name
	}
	return names
}

// PresetFromEnv resolves the preset named by the FLUPPY_DIFFICULTY
// environment variable. Returns (preset, true, nil) when set and valid,
// (default, true, err) when set but unknown, and ok=false when unset.
func (c *Config) PresetFromEnv() (Preset, bool, error) {
	value := os.Getenv(EnvDifficulty)
	if value == "" {
		return Preset{}, false, nil
	}
	p, err := c.Resolve(value)
	if err != nil {
		return c.DefaultPreset(), true, err
	}
	return p, true, nil
}
