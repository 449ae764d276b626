package config

import (
	"fmt"
	"sort"

	"github.com/quasilyte/gdata/v2"
)

// Store is a persistent string key/value store partitioned into groups.
type Store interface {
	// Keys lists the keys that currently hold a value in group.
	Keys(group string) ([]string, error)
	// Get returns the value for key. ok is false when no value is stored.
	Get(group, key string) (value string, ok bool, err error)
	// Set stores value for key.
	Set(group, key, value string) error
}

// MemoryStore is an in-memory Store, used when no persistent storage is
// available and in tests.
type MemoryStore struct {
	groups map[string]map[string]string
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{groups: make(map[string]map[string]string)}
}

// Keys implements Store.
func (s *MemoryStore) Keys(group string) ([]string, error) {
	keys := make([]string, 0, len(s.groups[group]))
	for k := range s.groups[group] {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

// Get implements Store.
func (s *MemoryStore) Get(group, key string) (string, bool, error) {
	v, ok := s.groups[group][key]
	return v, ok, nil
}

// Set implements Store.
func (s *MemoryStore) Set(group, key, value string) error {
	g, ok := s.groups[group]
	if !ok {
		g = make(map[string]string)
		s.groups[group] = g
	}
	g[key] = value
	return nil
}

// GdataStore persists settings with gdata. Each (profile, group) pair maps to
// one gdata object and each key to one of its properties.
type GdataStore struct {
	manager *gdata.Manager
	profile string
}

// DefaultProfile is the profile used when none is selected.
const DefaultProfile = "default"

// NewGdataStore creates a store for the given profile.
func NewGdataStore(manager *gdata.Manager, profile string) *GdataStore {
	if profile == "" {
		profile = DefaultProfile
	}
	return &GdataStore{manager: manager, profile: profile}
}

// Profile returns the profile this store reads and writes.
func (s *GdataStore) Profile() string {
	return s.profile
}

// WithProfile returns a store over the same gdata manager for another profile.
func (s *GdataStore) WithProfile(profile string) *GdataStore {
	return NewGdataStore(s.manager, profile)
}

func (s *GdataStore) object(group string) string {
	return s.profile + "_" + group
}

// Keys implements Store.
func (s *GdataStore) Keys(group string) ([]string, error) {
	if !s.manager.ObjectExists(s.object(group)) {
		return nil, nil
	}
	keys, err := s.manager.ListObjectProps(s.object(group))
	if err != nil {
		return nil, fmt.Errorf("failed to list %s keys: %w", group, err)
	}
	sort.Strings(keys)
	return keys, nil
}

// Get implements Store.
func (s *GdataStore) Get(group, key string) (string, bool, error) {
	if !s.manager.ObjectPropExists(s.object(group), key) {
		return "", false, nil
	}
	data, err := s.manager.LoadObjectProp(s.object(group), key)
	if err != nil {
		return "", false, fmt.Errorf("failed to load %s.%s: %w", group, key, err)
	}
	return string(data), true, nil
}

// Set implements Store.
func (s *GdataStore) Set(group, key, value string) error {
	if err := s.manager.SaveObjectProp(s.object(group), key, []byte(value)); err != nil {
		return fmt.Errorf("failed to save %s.%s: %w", group, key, err)
	}
	return nil
}
