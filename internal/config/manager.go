package config

import (
	"fmt"

	"go.uber.org/zap"
)

// Origin tells listeners where a setting change came from.
type Origin int

const (
	// OriginUser is an edit made by the user in the local group.
	OriginUser Origin = iota
	// OriginMirror is a value copied in from another group.
	OriginMirror
	// OriginFile is a value imported from a settings file.
	OriginFile
	// OriginProfile is a value written while a profile switch is in progress.
	OriginProfile
)

func (o Origin) String() string {
	switch o {
	case OriginUser:
		return "user"
	case OriginMirror:
		return "mirror"
	case OriginFile:
		return "file"
	case OriginProfile:
		return "profile"
	default:
		return fmt.Sprintf("Origin(%d)", int(o))
	}
}

// Change describes one stored setting change.
type Change struct {
	Group  string
	Key    string
	Value  string
	Origin Origin
}

// Manager owns the live Config of the local group and broadcasts changes
// made through it. All methods must be called from the host's update thread.
type Manager struct {
	store  Store
	group  string
	config Config
	log    *zap.SugaredLogger

	changeListeners  []func(Change)
	profileListeners []func()
}

// NewManager creates a manager for group and loads its stored values on top of
// the defaults. A nil logger disables logging.
func NewManager(store Store, group string, log *zap.SugaredLogger) (*Manager, error) {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	m := &Manager{
		store: store,
		group: group,
		log:   log,
	}
	if err := m.reload(); err != nil {
		return nil, err
	}
	return m, nil
}

// Group returns the local group name.
func (m *Manager) Group() string {
	return m.group
}

// Store returns the backing store.
func (m *Manager) Store() Store {
	return m.store
}

// Current returns a copy of the live settings.
func (m *Manager) Current() Config {
	return m.config
}

// OnChange registers fn to be called after every successful Set.
func (m *Manager) OnChange(fn func(Change)) {
	m.changeListeners = append(m.changeListeners, fn)
}

// OnProfileChange registers fn to be called after SwitchProfile reloads.
func (m *Manager) OnProfileChange(fn func()) {
	m.profileListeners = append(m.profileListeners, fn)
}

// Set stores value under group/key. Writes to the local group are parsed and
// validated first; an invalid value is rejected without being stored.
func (m *Manager) Set(group, key, value string, origin Origin) error {
	if group == m.group {
		next := m.config
		known, err := next.Set(key, value)
		if err != nil {
			return err
		}
		if !known {
			m.log.Debugw("Storing unknown setting", "group", group, "key", key)
		}
		if err := m.store.Set(group, key, value); err != nil {
			return err
		}
		m.config = next
	} else if err := m.store.Set(group, key, value); err != nil {
		return err
	}

	change := Change{Group: group, Key: key, Value: value, Origin: origin}
	for _, fn := range m.changeListeners {
		fn(change)
	}
	return nil
}

// SetBool is a convenience wrapper for boolean settings of the local group.
func (m *Manager) SetBool(key string, value bool, origin Origin) error {
	return m.Set(m.group, key, fmt.Sprint(value), origin)
}

// Import writes every value of cfg into the local group.
func (m *Manager) Import(cfg *Config, origin Origin) error {
	values, err := cfg.Values()
	if err != nil {
		return err
	}
	for _, key := range Keys() {
		if err := m.Set(m.group, key, values[key], origin); err != nil {
			return fmt.Errorf("failed to import %s: %w", key, err)
		}
	}
	return nil
}

// SwitchProfile replaces the backing store, reloads the local group and
// notifies profile listeners.
func (m *Manager) SwitchProfile(store Store) error {
	m.store = store
	if err := m.reload(); err != nil {
		return err
	}
	for _, fn := range m.profileListeners {
		fn()
	}
	return nil
}

func (m *Manager) reload() error {
	cfg := DefaultConfig()
	keys, err := m.store.Keys(m.group)
	if err != nil {
		return fmt.Errorf("failed to load %s settings: %w", m.group, err)
	}

	for _, key := range keys {
		value, ok, err := m.store.Get(m.group, key)
		if err != nil {
			return fmt.Errorf("failed to load %s settings: %w", m.group, err)
		}
		if !ok {
			continue
		}
		if _, err := cfg.Set(key, value); err != nil {
			// A bad stored value falls back to the default
			m.log.Warnw("Ignoring stored setting", "group", m.group, "key", key, "error", err)
		}
	}

	m.config = *cfg
	m.log.Infow("Settings loaded", "group", m.group, "keys", len(keys))
	return nil
}
