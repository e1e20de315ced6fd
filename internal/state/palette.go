package state

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
)

var ErrInvalidColor = errors.New("invalid color")

// Presets are the swatches offered in the toolbar, in display order.
var Presets = []string{
	"#FF6B6B", "#4ECDC4", "#FFD166", "#118AB2", "#073B4C", "#06D6A0", "#EF476F",
}

// RandomPalette is sampled once per circle when random colours are on.
var RandomPalette = []string{
	"#FF6B6B", "#4ECDC4", "#FFD166", "#118AB2", "#073B4C",
	"#06D6A0", "#EF476F", "#F78C6B", "#8338EC", "#3A86FF",
	"#FF9F1C", "#2EC4B6", "#E71D36", "#011627", "#8D99AE",
	"#D7263D", "#3F88C5", "#F4A261", "#E63946", "#A8DADC",
	"#457B9D", "#1D3557", "#FFC300", "#FF5733", "#C70039",
	"#900C3F", "#581845", "#6A0572", "#E0A800", "#17A2B8",
}

// DefaultColor is the first preset.
func DefaultColor() string { return Presets[0] }

// NormalizeColor validates a "#RRGGBB" string and upper-cases it.
func NormalizeColor(s string) (string, error) {
	s = strings.TrimSpace(s)
	if len(s) != 7 || s[0] != '#' {
		return "", fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	for _, r := range s[1:] {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return "", fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
	}
	return strings.ToUpper(s), nil
}

// RandomAt returns the n-th random palette draw for seed. The same pair always
// yields the same colour, which keeps Reduce deterministic.
func RandomAt(seed, n uint64) string {
	r := rand.New(rand.NewPCG(seed, n))
	return RandomPalette[r.IntN(len(RandomPalette))]
}
