// Package mirror keeps the overlay's settings in sync with the sibling tile
// indicator plugin: sibling values are copied in on startup and on every
// profile switch, and user edits are written back key by key.
package mirror

import (
	"strings"

	"go.uber.org/zap"

	"chosenoffset.com/tileindicators/internal/config"
)

// Mirror copies settings between the local and sibling groups.
type Mirror struct {
	manager *config.Manager
	sibling string
	log     *zap.SugaredLogger
}

// New creates a mirror between manager's group and sibling. A nil logger
// disables logging.
func New(manager *config.Manager, sibling string, log *zap.SugaredLogger) *Mirror {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Mirror{manager: manager, sibling: sibling, log: log}
}

// Start subscribes to setting and profile changes and performs the initial
// copy from the sibling group.
func (m *Mirror) Start() {
	m.manager.OnChange(m.OnConfigChanged)
	m.manager.OnProfileChange(m.OnProfileChanged)
	m.CopyFromSibling()
}

// ShouldMirror reports whether key is shared with the sibling group. The
// mirror toggle itself and corners-only keys are local to this overlay.
func ShouldMirror(key string) bool {
	return key != config.KeyMirrorSettings && !strings.Contains(key, config.CornersOnlySuffix)
}

// CopyFromSibling copies every stored sibling value into the local group when
// mirroring is enabled. Keys without a value are skipped. It returns the
// number of keys copied.
func (m *Mirror) CopyFromSibling() int {
	if !m.manager.Current().MirrorSettings {
		return 0
	}

	store := m.manager.Store()
	keys, err := store.Keys(m.sibling)
	if err != nil {
		m.log.Warnw("Failed to list sibling settings", "group", m.sibling, "error", err)
		return 0
	}

	copied := 0
	for _, key := range keys {
		if !ShouldMirror(key) {
			continue
		}
		value, ok, err := store.Get(m.sibling, key)
		if err != nil {
			m.log.Warnw("Failed to read sibling setting", "group", m.sibling, "key", key, "error", err)
			continue
		}
		if !ok {
			continue
		}
		if err := m.manager.Set(m.manager.Group(), key, value, config.OriginMirror); err != nil {
			m.log.Debugw("Skipping sibling setting", "key", key, "value", value, "error", err)
			continue
		}
		copied++
	}

	m.log.Infow("Copied sibling settings", "from", m.sibling, "keys", copied)
	return copied
}

// OnConfigChanged writes a user edit of the local group through to the
// sibling group, whether or not mirroring is enabled. Changes made by the
// mirror, a settings file or a profile switch are not written back.
func (m *Mirror) OnConfigChanged(c config.Change) {
	if c.Group != m.manager.Group() || c.Origin != config.OriginUser {
		return
	}
	if !ShouldMirror(c.Key) {
		return
	}

	if err := m.manager.Set(m.sibling, c.Key, c.Value, config.OriginMirror); err != nil {
		m.log.Warnw("Failed to mirror setting", "group", m.sibling, "key", c.Key, "error", err)
		return
	}
	m.log.Debugw("Mirrored setting", "group", m.sibling, "key", c.Key, "value", c.Value)
}

// OnProfileChanged re-copies the sibling settings for the new profile.
func (m *Mirror) OnProfileChanged() {
	m.CopyFromSibling()
}
