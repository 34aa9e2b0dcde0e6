package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
)

// Theme modes accepted by Config.Theme.
const (
	ThemeSystem = "system"
	ThemeLight  = "light"
	ThemeDark   = "dark"
)

const (
	// DefaultFaceSize is the default edge length of the die image, in pixels.
	DefaultFaceSize = 200
	// MinFaceSize is the smallest die image edge that is still usable on a phone.
	MinFaceSize = 48
	// MaxFaceSize caps the die image edge.
	MaxFaceSize = 2048
	// faceSpacing separates the die image from the Roll button.
	faceSpacing = 16
)

// Config holds the launch options for the GUI.
type Config struct {
	Theme    string  // one of ThemeSystem, ThemeLight, ThemeDark
	Seed     uint64  // 0 means nondeterministic rolls
	FaceSize float32 // edge of the die image
	LogSize  int     // status messages kept in memory
}

// DefaultConfig returns the options used when no flags are given.
func DefaultConfig() Config {
	return Config{
		Theme:    ThemeSystem,
		FaceSize: DefaultFaceSize,
		LogSize:  DefaultMaxLogMessages,
	}
}

// Validate reports options that cannot be defaulted.
func (c Config) Validate() error {
	switch c.Theme {
	case ThemeSystem, ThemeLight, ThemeDark:
		return nil
	default:
		return fmt.Errorf("unknown theme %q (want %s, %s or %s)", c.Theme, ThemeSystem, ThemeLight, ThemeDark)
	}
}

// withDefaults replaces out-of-range sizes with their defaults.
func (c Config) withDefaults() Config {
	if c.Theme == "" {
		c.Theme = ThemeSystem
	}
	// written so that NaN fails the range check
	if !(c.FaceSize >= MinFaceSize && c.FaceSize <= MaxFaceSize) {
		fyne.LogError(fmt.Sprintf("Face size must be between %d and %d. Defaulting to %d. Got: %g", MinFaceSize, MaxFaceSize, DefaultFaceSize, c.FaceSize), nil)
		c.FaceSize = DefaultFaceSize
	}
	if c.LogSize <= 0 || c.LogSize > MaxLogMessages {
		fyne.LogError(fmt.Sprintf("Log size must be between 1 and %d. Defaulting to %d. Got: %d", MaxLogMessages, DefaultMaxLogMessages, c.LogSize), nil)
		c.LogSize = DefaultMaxLogMessages
	}
	return c
}
