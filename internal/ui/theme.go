package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// primaryColor is the accent used for the Roll button.
var primaryColor = color.NRGBA{R: 0x66, G: 0x50, B: 0xa4, A: 0xff}

// diceTheme wraps an existing theme, sets the primary colour and can pin
// the light or dark variant regardless of the system setting.
type diceTheme struct {
	fyne.Theme
	variant fyne.ThemeVariant
	pinned  bool
}

// Ensure diceTheme implements fyne.Theme
var _ fyne.Theme = (*diceTheme)(nil)

// Color returns the primary colour override and resolves everything else
// against the pinned variant, if any.
func (t *diceTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	if name == theme.ColorNamePrimary {
		return primaryColor
	}
	if t.pinned {
		variant = t.variant
	}
	return t.Theme.Color(name, variant)
}

func (t *diceTheme) Font(style fyne.TextStyle) fyne.Resource {
	return t.Theme.Font(style)
}

func (t *diceTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.Theme.Icon(name)
}

func (t *diceTheme) Size(name fyne.ThemeSizeName) float32 {
	return t.Theme.Size(name)
}

// NewDiceTheme creates the application theme on top of baseTheme.
// mode is one of ThemeSystem, ThemeLight or ThemeDark.
func NewDiceTheme(baseTheme fyne.Theme, mode string) fyne.Theme {
	t := &diceTheme{Theme: baseTheme}
	switch mode {
	case ThemeLight:
		t.pinned, t.variant = true, theme.VariantLight
	case ThemeDark:
		t.pinned, t.variant = true, theme.VariantDark
	}
	return t
}
