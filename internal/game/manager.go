package game

import (
	"fmt"
	"strconv"

	"github.com/quasilyte/gdata/v2"
	"go.uber.org/zap"

	"chosenoffset.com/tileindicators/internal/config"
	"chosenoffset.com/tileindicators/internal/mirror"
)

// Manager owns the settings session of the demo: the live config, the
// sibling mirror and the list of profiles the user can cycle through.
type Manager struct {
	Config *config.Manager
	Mirror *mirror.Mirror

	profiles []string
	current  int
	storeFor func(profile string) config.Store
	log      *zap.SugaredLogger
}

// NewManager opens the first profile through storeFor and starts mirroring
// from the sibling group.
func NewManager(profiles []string, storeFor func(profile string) config.Store, log *zap.SugaredLogger) (*Manager, error) {
	if len(profiles) == 0 {
		return nil, fmt.Errorf("no settings profiles")
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	cm, err := config.NewManager(storeFor(profiles[0]), config.Group, log.Named("config"))
	if err != nil {
		return nil, fmt.Errorf("failed to open profile %q: %w", profiles[0], err)
	}

	m := &Manager{
		Config:   cm,
		Mirror:   mirror.New(cm, config.SiblingGroup, log.Named("mirror")),
		profiles: profiles,
		storeFor: storeFor,
		log:      log,
	}
	m.Mirror.Start()
	return m, nil
}

// Current implements overlay.Settings.
func (m *Manager) Current() config.Config {
	return m.Config.Current()
}

// Profile returns the name of the active profile.
func (m *Manager) Profile() string {
	return m.profiles[m.current]
}

// NextProfile switches to the next profile, wrapping around.
func (m *Manager) NextProfile() (string, error) {
	next := (m.current + 1) % len(m.profiles)
	name := m.profiles[next]
	if err := m.Config.SwitchProfile(m.storeFor(name)); err != nil {
		return m.Profile(), fmt.Errorf("failed to switch to profile %q: %w", name, err)
	}
	m.current = next
	m.log.Infow("Switched profile", "profile", name)
	return name, nil
}

// Toggle flips a boolean setting of the local group as a user edit and
// returns its new value.
func (m *Manager) Toggle(key string) (bool, error) {
	cfg := m.Config.Current()
	values, err := cfg.Values()
	if err != nil {
		return false, err
	}
	raw, ok := values[key]
	if !ok {
		return false, fmt.Errorf("unknown setting %q", key)
	}
	old, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("setting %q is not a boolean", key)
	}
	if err := m.Config.SetBool(key, !old, config.OriginUser); err != nil {
		return old, err
	}
	return !old, nil
}

// ToggleCornersOnly flips corners-only rendering for all three highlights,
// following the current tile's setting.
func (m *Manager) ToggleCornersOnly() (bool, error) {
	on, err := m.Toggle("currentTileCornersOnly")
	if err != nil {
		return false, err
	}
	for _, key := range []string{"hoveredTileCornersOnly", "destinationTileCornersOnly"} {
		if err := m.Config.SetBool(key, on, config.OriginUser); err != nil {
			return on, err
		}
	}
	return on, nil
}

// StoreFactory returns a per-profile store opener backed by gdata under
// appName. If gdata cannot be opened the settings only live for the session.
func StoreFactory(appName string, log *zap.SugaredLogger) func(profile string) config.Store {
	gm, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Warnw("Settings will not be saved", "error", err)
		stores := make(map[string]*config.MemoryStore)
		return func(profile string) config.Store {
			s, ok := stores[profile]
			if !ok {
				s = config.NewMemoryStore()
				stores[profile] = s
			}
			return s
		}
	}

	base := config.NewGdataStore(gm, config.DefaultProfile)
	return func(profile string) config.Store {
		return base.WithProfile(profile)
	}
}
