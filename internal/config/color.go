package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Color is a straight-alpha RGBA color stored as "#AARRGGBB".
// "#RRGGBB" is accepted on input and treated as opaque.
type Color color.NRGBA

// NRGBA returns the color as a color.NRGBA.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA(c)
}

// String formats the color as "#AARRGGBB".
func (c Color) String() string {
	return fmt.Sprintf("#%02X%02X%02X%02X", c.A, c.R, c.G, c.B)
}

// ParseColor parses "#AARRGGBB" or "#RRGGBB".
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}

	switch len(hex) {
	case 6:
		return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xFF}, nil
	case 8:
		return Color{A: uint8(v >> 24), R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
	default:
		return Color{}, fmt.Errorf("invalid color %q: want #AARRGGBB or #RRGGBB", s)
	}
}

// MarshalYAML implements yaml.Marshaler.
func (c Color) MarshalYAML() (interface{}, error) {
	return c.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseColor(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// SailingMode selects which grid the hovered tile is taken from while the
// player stands in a view separate from the world, such as a boat deck.
type SailingMode string

const (
	// SailingModeDefault uses the player's own view.
	SailingModeDefault SailingMode = "DEFAULT"
	// SailingModeWorldGrid always uses the world grid.
	SailingModeWorldGrid SailingMode = "WORLD_GRID"
	// SailingModeBoth prefers the player's view and falls back to the world grid.
	SailingModeBoth SailingMode = "BOTH"
)

// UnmarshalYAML implements yaml.Unmarshaler, rejecting unknown modes.
func (m *SailingMode) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	switch mode := SailingMode(strings.ToUpper(s)); mode {
	case SailingModeDefault, SailingModeWorldGrid, SailingModeBoth:
		*m = mode
		return nil
	default:
		return fmt.Errorf("unknown sailing mode %q", s)
	}
}
