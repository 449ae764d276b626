// Package config provides the user-editable settings of the tile indicator
// overlay. Settings live in a key/value Store grouped by plugin name, so the
// same keys can be mirrored to and from a sibling group.
package config

import (
	"fmt"
	"image/color"
	"os"
	"sort"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

// GameTickLength is the duration of one discrete host time step.
const GameTickLength = 600 * time.Millisecond

// Group names used in the store.
const (
	// Group is the settings group owned by this overlay.
	Group = "cornertileindicators"
	// SiblingGroup is the group of the full-outline tile indicator plugin
	// whose settings are mirrored.
	SiblingGroup = "tileindicators"
)

// Keys that carry special meaning outside of the overlay itself.
const (
	KeyMirrorSettings = "mirrorSettings"
	// CornersOnlySuffix is contained in every corners-only key. Those keys
	// only exist in this group and are never mirrored.
	CornersOnlySuffix = "TileCornersOnly"
)

// Config holds every overlay setting. The yaml tags double as store keys.
type Config struct {
	// Hovered tile
	HighlightHoveredTile   bool        `yaml:"highlightHoveredTile"`
	HighlightHoveredColor  Color       `yaml:"highlightHoveredColor"`
	HoveredTileFillColor   Color       `yaml:"hoveredTileFillColor"`
	HoveredTileBorderWidth float64     `yaml:"hoveredTileBorderWidth"`
	HoveredTileCornersOnly bool        `yaml:"hoveredTileCornersOnly"`
	HoveredTileCornerSize  int         `yaml:"hoveredTileCornerSize"`
	HoveredTileSailingMode SailingMode `yaml:"hoveredTileSailingMode"`

	// Destination tile
	HighlightDestinationTile   bool    `yaml:"highlightDestinationTile"`
	HighlightDestinationColor  Color   `yaml:"highlightDestinationColor"`
	DestinationTileFillColor   Color   `yaml:"destinationTileFillColor"`
	DestinationTileBorderWidth float64 `yaml:"destinationTileBorderWidth"`
	DestinationTileCornersOnly bool    `yaml:"destinationTileCornersOnly"`
	DestinationTileCornerSize  int     `yaml:"destinationTileCornerSize"`

	// Current (true) tile
	HighlightCurrentTile   bool    `yaml:"highlightCurrentTile"`
	HighlightCurrentColor  Color   `yaml:"highlightCurrentColor"`
	CurrentTileFillColor   Color   `yaml:"currentTileFillColor"`
	CurrentTileBorderWidth float64 `yaml:"currentTileBorderWidth"`
	CurrentTileCornersOnly bool    `yaml:"currentTileCornersOnly"`
	CurrentTileCornerSize  int     `yaml:"currentTileCornerSize"`
	TrueTileFadeout        bool    `yaml:"trueTileFadeout"`
	TrueTileFadeoutTime    int     `yaml:"trueTileFadeoutTime"` // milliseconds

	MirrorSettings bool `yaml:"mirrorSettings"`
}

// Style is the resolved look of one highlight category for a render pass.
type Style struct {
	Enabled     bool
	Border      color.NRGBA
	Fill        color.NRGBA
	BorderWidth float64
	CornersOnly bool
	CornerSize  int // divisor applied to each edge when CornersOnly is set
}

var (
	defaultBorder = Color{R: 128, G: 128, B: 128, A: 255}
	defaultFill   = Color{A: 50}
)

// DefaultConfig returns the settings used before anything is stored.
func DefaultConfig() *Config {
	return &Config{
		HighlightHoveredTile:   false,
		HighlightHoveredColor:  defaultBorder,
		HoveredTileFillColor:   defaultFill,
		HoveredTileBorderWidth: 2,
		HoveredTileCornersOnly: true,
		HoveredTileCornerSize:  3,
		HoveredTileSailingMode: SailingModeDefault,

		HighlightDestinationTile:   true,
		HighlightDestinationColor:  defaultBorder,
		DestinationTileFillColor:   defaultFill,
		DestinationTileBorderWidth: 2,
		DestinationTileCornersOnly: true,
		DestinationTileCornerSize:  3,

		HighlightCurrentTile:   false,
		HighlightCurrentColor:  defaultBorder,
		CurrentTileFillColor:   defaultFill,
		CurrentTileBorderWidth: 2,
		CurrentTileCornersOnly: true,
		CurrentTileCornerSize:  3,
		TrueTileFadeout:        false,
		TrueTileFadeoutTime:    1800,

		MirrorSettings: false,
	}
}

// Hovered returns the hovered tile style.
func (c *Config) Hovered() Style {
	return Style{
		Enabled:     c.HighlightHoveredTile,
		Border:      c.HighlightHoveredColor.NRGBA(),
		Fill:        c.HoveredTileFillColor.NRGBA(),
		BorderWidth: c.HoveredTileBorderWidth,
		CornersOnly: c.HoveredTileCornersOnly,
		CornerSize:  c.HoveredTileCornerSize,
	}
}

// Destination returns the destination tile style.
func (c *Config) Destination() Style {
	return Style{
		Enabled:     c.HighlightDestinationTile,
		Border:      c.HighlightDestinationColor.NRGBA(),
		Fill:        c.DestinationTileFillColor.NRGBA(),
		BorderWidth: c.DestinationTileBorderWidth,
		CornersOnly: c.DestinationTileCornersOnly,
		CornerSize:  c.DestinationTileCornerSize,
	}
}

// Current returns the current tile style before any fade is applied.
func (c *Config) Current() Style {
	return Style{
		Enabled:     c.HighlightCurrentTile,
		Border:      c.HighlightCurrentColor.NRGBA(),
		Fill:        c.CurrentTileFillColor.NRGBA(),
		BorderWidth: c.CurrentTileBorderWidth,
		CornersOnly: c.CurrentTileCornersOnly,
		CornerSize:  c.CurrentTileCornerSize,
	}
}

// FadeoutTime returns the configured fade-out duration.
func (c *Config) FadeoutTime() time.Duration {
	return time.Duration(c.TrueTileFadeoutTime) * time.Millisecond
}

// Validate checks the ranges the overlay relies on. Corner sizes are used as
// divisors and must be positive.
func (c *Config) Validate() error {
	for key, size := range map[string]int{
		"hoveredTileCornerSize":     c.HoveredTileCornerSize,
		"destinationTileCornerSize": c.DestinationTileCornerSize,
		"currentTileCornerSize":     c.CurrentTileCornerSize,
	} {
		if size < 1 {
			return fmt.Errorf("%s must be at least 1, got %d", key, size)
		}
	}
	for key, width := range map[string]float64{
		"hoveredTileBorderWidth":     c.HoveredTileBorderWidth,
		"destinationTileBorderWidth": c.DestinationTileBorderWidth,
		"currentTileBorderWidth":     c.CurrentTileBorderWidth,
	} {
		if width < 0 {
			return fmt.Errorf("%s must not be negative, got %v", key, width)
		}
	}
	if c.TrueTileFadeoutTime < 0 {
		return fmt.Errorf("trueTileFadeoutTime must not be negative, got %d", c.TrueTileFadeoutTime)
	}
	return nil
}

// Keys returns every known setting key in sorted order.
func Keys() []string {
	values, err := DefaultConfig().Values()
	if err != nil {
		return nil
	}
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Values returns every setting as its store representation.
func (c *Config) Values() (map[string]string, error) {
	var node yaml.Node
	if err := node.Encode(c); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}

	values := make(map[string]string, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		values[node.Content[i].Value] = node.Content[i+1].Value
	}
	return values, nil
}

// Set parses value into the setting named key. Unknown keys are ignored and
// reported with known == false. On error c is left unchanged.
func (c *Config) Set(key, value string) (known bool, err error) {
	if !isKnownKey(key) {
		return false, nil
	}

	node := yaml.Node{
		Kind: yaml.MappingNode,
		Content: []*yaml.Node{
			{Kind: yaml.ScalarNode, Value: key},
			{Kind: yaml.ScalarNode, Value: value},
		},
	}

	next := *c
	if err := node.Decode(&next); err != nil {
		return true, fmt.Errorf("invalid value %q for %s: %w", value, key, err)
	}
	if err := next.Validate(); err != nil {
		return true, err
	}
	*c = next
	return true, nil
}

var knownKeys = sync.OnceValue(func() map[string]bool {
	known := make(map[string]bool)
	for _, k := range Keys() {
		known[k] = true
	}
	return known
})

func isKnownKey(key string) bool {
	return knownKeys()[key]
}

// LoadConfig loads settings from a YAML file on top of the defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		// Return defaults if file doesn't exist
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	config := DefaultConfig() // Start with defaults
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return config, nil
}
