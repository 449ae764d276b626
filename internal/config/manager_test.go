package config

import (
	"errors"
	"testing"
)

func TestNewManagerLoadsStoredValues(t *testing.T) {
	store := NewMemoryStore()
	store.Set(Group, "highlightCurrentTile", "true")
	store.Set(Group, "currentTileCornerSize", "0") // invalid, falls back to default
	store.Set(Group, "unrelatedKey", "x")

	m, err := NewManager(store, Group, nil)
	if err != nil {
		t.Fatalf("NewManager() error: %v", err)
	}

	cfg := m.Current()
	if !cfg.HighlightCurrentTile {
		t.Error("Expected stored highlightCurrentTile to be applied")
	}
	if cfg.CurrentTileCornerSize != DefaultConfig().CurrentTileCornerSize {
		t.Errorf("Invalid stored corner size should fall back to default, got %d", cfg.CurrentTileCornerSize)
	}
}

func TestManagerSetNotifiesListeners(t *testing.T) {
	store := NewMemoryStore()
	m, err := NewManager(store, Group, nil)
	if err != nil {
		t.Fatal(err)
	}

	var changes []Change
	m.OnChange(func(c Change) { changes = append(changes, c) })

	if err := m.Set(Group, "trueTileFadeout", "true", OriginUser); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	if err := m.Set(SiblingGroup, "anyKey", "1", OriginMirror); err != nil {
		t.Fatalf("Set() on sibling error: %v", err)
	}

	if len(changes) != 2 {
		t.Fatalf("Expected 2 changes, got %d", len(changes))
	}
	if changes[0] != (Change{Group: Group, Key: "trueTileFadeout", Value: "true", Origin: OriginUser}) {
		t.Errorf("Unexpected first change %+v", changes[0])
	}
	if !m.Current().TrueTileFadeout {
		t.Error("Expected live config to reflect the change")
	}
	if v, ok, _ := store.Get(SiblingGroup, "anyKey"); !ok || v != "1" {
		t.Errorf("Expected sibling value stored, got %q, %v", v, ok)
	}
}

func TestManagerSetRejectsInvalidValue(t *testing.T) {
	store := NewMemoryStore()
	m, err := NewManager(store, Group, nil)
	if err != nil {
		t.Fatal(err)
	}

	notified := false
	m.OnChange(func(Change) { notified = true })

	if err := m.Set(Group, "hoveredTileCornerSize", "0", OriginUser); err == nil {
		t.Fatal("Expected error for zero corner size")
	}
	if _, ok, _ := store.Get(Group, "hoveredTileCornerSize"); ok {
		t.Error("Invalid value should not be stored")
	}
	if notified {
		t.Error("Listeners should not be notified of rejected values")
	}
}

func TestManagerSwitchProfile(t *testing.T) {
	first := NewMemoryStore()
	second := NewMemoryStore()
	second.Set(Group, "highlightHoveredTile", "true")

	m, err := NewManager(first, Group, nil)
	if err != nil {
		t.Fatal(err)
	}
	if m.Current().HighlightHoveredTile {
		t.Fatal("First profile should use defaults")
	}

	switched := 0
	m.OnProfileChange(func() { switched++ })

	if err := m.SwitchProfile(second); err != nil {
		t.Fatalf("SwitchProfile() error: %v", err)
	}
	if switched != 1 {
		t.Errorf("Expected 1 profile notification, got %d", switched)
	}
	if !m.Current().HighlightHoveredTile {
		t.Error("Expected second profile values after switch")
	}
	if m.Store() != Store(second) {
		t.Error("Expected store to be replaced")
	}
}

func TestManagerImport(t *testing.T) {
	store := NewMemoryStore()
	m, err := NewManager(store, Group, nil)
	if err != nil {
		t.Fatal(err)
	}

	cfg := DefaultConfig()
	cfg.HighlightCurrentTile = true
	cfg.CurrentTileCornerSize = 6

	if err := m.Import(cfg, OriginFile); err != nil {
		t.Fatalf("Import() error: %v", err)
	}
	if m.Current() != *cfg {
		t.Error("Expected live config to equal imported config")
	}
	keys, _ := store.Keys(Group)
	if len(keys) != len(Keys()) {
		t.Errorf("Expected every key stored, got %d of %d", len(keys), len(Keys()))
	}
}

type failingStore struct{ *MemoryStore }

func (failingStore) Keys(string) ([]string, error) { return nil, errors.New("disk on fire") }

func TestNewManagerStoreError(t *testing.T) {
	if _, err := NewManager(failingStore{NewMemoryStore()}, Group, nil); err == nil {
		t.Error("Expected error when the store cannot list keys")
	}
}
