// Package theme provides the light and dark application themes.
package theme

import (
	"image/color"

	"stretchtimer/internal/core/model"

	"fyne.io/fyne/v2"
	fynetheme "fyne.io/fyne/v2/theme"
)

type palette struct {
	background color.NRGBA
	foreground color.NRGBA
	accent     color.NRGBA
	card       color.NRGBA
	success    color.NRGBA
	warning    color.NRGBA
	step       color.NRGBA
}

var (
	lightPalette = palette{
		background: color.NRGBA{R: 0xf0, G: 0xf4, B: 0xf8, A: 0xff},
		foreground: color.NRGBA{R: 0x1a, G: 0x20, B: 0x2c, A: 0xff},
		accent:     color.NRGBA{R: 0x42, G: 0x99, B: 0xe1, A: 0xff},
		card:       color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		success:    color.NRGBA{R: 0x48, G: 0xbb, B: 0x78, A: 0xff},
		warning:    color.NRGBA{R: 0xed, G: 0x89, B: 0x36, A: 0xff},
		step:       color.NRGBA{R: 0xf7, G: 0xfa, B: 0xfc, A: 0xff},
	}
	darkPalette = palette{
		background: color.NRGBA{R: 0x1a, G: 0x20, B: 0x2c, A: 0xff},
		foreground: color.NRGBA{R: 0xe2, G: 0xe8, B: 0xf0, A: 0xff},
		accent:     color.NRGBA{R: 0x63, G: 0xb3, B: 0xed, A: 0xff},
		card:       color.NRGBA{R: 0x2d, G: 0x37, B: 0x48, A: 0xff},
		success:    color.NRGBA{R: 0x68, G: 0xd3, B: 0x91, A: 0xff},
		warning:    color.NRGBA{R: 0xf6, G: 0xad, B: 0x55, A: 0xff},
		step:       color.NRGBA{R: 0x37, G: 0x41, B: 0x51, A: 0xff},
	}
)

// Theme forces one variant regardless of the desktop preference.
type Theme struct {
	variant fyne.ThemeVariant
	colors  palette
}

var _ fyne.Theme = (*Theme)(nil)

// New returns the fyne theme for the given setting.
func New(setting model.Theme) *Theme {
	if setting == model.ThemeDark {
		return &Theme{variant: fynetheme.VariantDark, colors: darkPalette}
	}
	return &Theme{variant: fynetheme.VariantLight, colors: lightPalette}
}

// Color implements fyne.Theme.
func (appTheme *Theme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case fynetheme.ColorNameBackground:
		return appTheme.colors.background
	case fynetheme.ColorNameForeground:
		return appTheme.colors.foreground
	case fynetheme.ColorNamePrimary, fynetheme.ColorNameFocus:
		return appTheme.colors.accent
	case fynetheme.ColorNameButton, fynetheme.ColorNameMenuBackground,
		fynetheme.ColorNameOverlayBackground, fynetheme.ColorNameHeaderBackground:
		return appTheme.colors.card
	case fynetheme.ColorNameInputBackground:
		return appTheme.colors.step
	case fynetheme.ColorNameSuccess:
		return appTheme.colors.success
	case fynetheme.ColorNameWarning:
		return appTheme.colors.warning
	}
	return fynetheme.DefaultTheme().Color(name, appTheme.variant)
}

// Font implements fyne.Theme.
func (appTheme *Theme) Font(style fyne.TextStyle) fyne.Resource {
	return fynetheme.DefaultTheme().Font(style)
}

// Icon implements fyne.Theme.
func (appTheme *Theme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return fynetheme.DefaultTheme().Icon(name)
}

// Size implements fyne.Theme.
func (appTheme *Theme) Size(name fyne.ThemeSizeName) float32 {
	return fynetheme.DefaultTheme().Size(name)
}

// ToggleLabel is the caption of the button that switches away from setting.
func ToggleLabel(setting model.Theme) string {
	if setting == model.ThemeDark {
		return "Light"
	}
	return "Dark"
}
