package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"github.com/gogpu/gg"

	"CanvasCreator/internal/state"
)

// appTheme maps a state.Theme style onto the Fyne color names and delegates
// everything else to the default theme.
type appTheme struct {
	base    fyne.Theme
	variant fyne.ThemeVariant
	style   state.Style
}

func newAppTheme(t state.Theme) *appTheme {
	variant := theme.VariantLight
	if t == state.ThemeDark {
		variant = theme.VariantDark
	}
	return &appTheme{
		base:    theme.DefaultTheme(),
		variant: variant,
		style:   t.Style(),
	}
}

func hexColor(s string) color.Color {
	return gg.Hex(s).Color()
}

func (t *appTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return hexColor(t.style.Background)
	case theme.ColorNameForeground:
		return hexColor(t.style.Text)
	case theme.ColorNameHeaderBackground, theme.ColorNameMenuBackground:
		return hexColor(t.style.Header)
	case theme.ColorNameInputBackground, theme.ColorNameOverlayBackground:
		return hexColor(t.style.Card)
	case theme.ColorNameSeparator, theme.ColorNameInputBorder:
		return hexColor(t.style.Border)
	case theme.ColorNameButton:
		return hexColor(t.style.Default)
	case theme.ColorNamePrimary:
		return hexColor(t.style.Primary)
	case theme.ColorNameSuccess:
		return hexColor(t.style.Success)
	case theme.ColorNameError:
		return hexColor(t.style.Danger)
	}
	return t.base.Color(name, t.variant)
}

func (t *appTheme) Font(style fyne.TextStyle) fyne.Resource {
	return t.base.Font(style)
}

func (t *appTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

func (t *appTheme) Size(name fyne.ThemeSizeName) float32 {
	return t.base.Size(name)
}
