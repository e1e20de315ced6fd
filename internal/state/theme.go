package state

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownTheme = errors.New("unknown theme")

type Theme int

const (
	ThemeLight Theme = iota
	ThemeDark
	ThemeColorful
)

// Themes lists the variants in cycling order.
var Themes = []Theme{ThemeLight, ThemeDark, ThemeColorful}

func (t Theme) String() string {
	switch t {
	case ThemeDark:
		return "dark"
	case ThemeColorful:
		return "colorful"
	default:
		return "light"
	}
}

// Next advances to the following variant, wrapping after the last one.
func (t Theme) Next() Theme {
	for i, v := range Themes {
		if v == t {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return ThemeLight
}

func ParseTheme(name string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "light":
		return ThemeLight, nil
	case "dark":
		return ThemeDark, nil
	case "colorful":
		return ThemeColorful, nil
	}
	return ThemeLight, fmt.Errorf("%w: %q", ErrUnknownTheme, name)
}

// Style is the set of named style variables a theme applies. Window colours
// are "#RRGGBB"; the canvas entries carry alpha as "#RRGGBBAA".
type Style struct {
	Background string
	Text       string
	Header     string
	Card       string
	Border     string
	Default    string
	Primary    string
	Success    string
	Danger     string
	Canvas     string

	Grid         string
	Outline      string
	Label        string
	PreviewLabel string
}

var styles = map[Theme]Style{
	ThemeLight: {
		Background: "#F8F9FA", Text: "#343A40", Header: "#E9ECEF", Card: "#FFFFFF",
		Border: "#DEE2E6", Default: "#6C757D", Primary: "#007BFF", Success: "#28A745",
		Danger: "#DC3545", Canvas: "#FFFFFF",
		Grid: "#0000001A", Outline: "#0000004D", Label: "#000000CC", PreviewLabel: "#000000FF",
	},
	ThemeDark: {
		Background: "#212529", Text: "#F8F9FA", Header: "#343A40", Card: "#343A40",
		Border: "#495057", Default: "#6C757D", Primary: "#0D6EFD", Success: "#198754",
		Danger: "#DC3545", Canvas: "#2B3035",
		Grid: "#FFFFFF1A", Outline: "#FFFFFF4D", Label: "#FFFFFFCC", PreviewLabel: "#FFFFFFFF",
	},
	ThemeColorful: {
		Background: "#4158D0", Text: "#FFFFFF", Header: "#48A9FE", Card: "#FFFFFF33",
		Border: "#FFFFFF4D", Default: "#6C757D", Primary: "#8F94FB", Success: "#06D6A0",
		Danger: "#FF6B6B", Canvas: "#FFFFFF",
		Grid: "#7878FF1A", Outline: "#0000004D", Label: "#000000CC", PreviewLabel: "#000000FF",
	},
}

func (t Theme) Style() Style {
	if s, ok := styles[t]; ok {
		return s
	}
	return styles[ThemeLight]
}
