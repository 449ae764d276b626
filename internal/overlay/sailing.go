package overlay

import (
	"chosenoffset.com/tileindicators/internal/config"
	"chosenoffset.com/tileindicators/internal/core/geom"
)

// SelectHoveredTile picks the hovered tile according to mode. While the
// player's grid is the world grid the mode has no effect.
func SelectHoveredTile(host Host, mode config.SailingMode) (geom.WorldPoint, bool) {
	if !host.SeparateView() {
		return host.HoveredTile(ViewPlayer)
	}

	switch mode {
	case config.SailingModeWorldGrid:
		return host.HoveredTile(ViewWorld)
	case config.SailingModeBoth:
		if tile, ok := host.HoveredTile(ViewPlayer); ok {
			return tile, true
		}
		return host.HoveredTile(ViewWorld)
	default:
		return host.HoveredTile(ViewPlayer)
	}
}
