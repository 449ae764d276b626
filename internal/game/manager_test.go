package game

import (
	"testing"

	"chosenoffset.com/tileindicators/internal/config"
)

func newTestStores(profiles ...string) (map[string]*config.MemoryStore, func(string) config.Store) {
	stores := make(map[string]*config.MemoryStore)
	for _, p := range profiles {
		stores[p] = config.NewMemoryStore()
	}
	return stores, func(p string) config.Store { return stores[p] }
}

func TestNewManagerRequiresProfile(t *testing.T) {
	_, storeFor := newTestStores()
	if _, err := NewManager(nil, storeFor, nil); err == nil {
		t.Error("Expected an error without profiles")
	}
}

func TestManagerToggle(t *testing.T) {
	_, storeFor := newTestStores("a")
	m, err := NewManager([]string{"a"}, storeFor, nil)
	if err != nil {
		t.Fatalf("NewManager() error: %v", err)
	}

	on, err := m.Toggle("trueTileFadeout")
	if err != nil {
		t.Fatalf("Toggle() error: %v", err)
	}
	if !on || !m.Current().TrueTileFadeout {
		t.Error("Expected trueTileFadeout to be on")
	}

	if _, err := m.Toggle("highlightHoveredColor"); err == nil {
		t.Error("Expected an error toggling a color")
	}
	if _, err := m.Toggle("noSuchSetting"); err == nil {
		t.Error("Expected an error toggling an unknown key")
	}
}

func TestManagerToggleCornersOnly(t *testing.T) {
	_, storeFor := newTestStores("a")
	m, err := NewManager([]string{"a"}, storeFor, nil)
	if err != nil {
		t.Fatal(err)
	}

	on, err := m.ToggleCornersOnly()
	if err != nil {
		t.Fatalf("ToggleCornersOnly() error: %v", err)
	}
	cfg := m.Current()
	if on || cfg.HoveredTileCornersOnly || cfg.DestinationTileCornersOnly || cfg.CurrentTileCornersOnly {
		t.Errorf("Expected corners-only off everywhere, got %v %v %v",
			cfg.HoveredTileCornersOnly, cfg.DestinationTileCornersOnly, cfg.CurrentTileCornersOnly)
	}
}

func TestManagerNextProfile(t *testing.T) {
	stores, storeFor := newTestStores("a", "b")
	stores["b"].Set(config.Group, "trueTileFadeout", "true")

	m, err := NewManager([]string{"a", "b"}, storeFor, nil)
	if err != nil {
		t.Fatal(err)
	}
	if m.Profile() != "a" || m.Current().TrueTileFadeout {
		t.Fatalf("Expected profile a with fade off, got %s", m.Profile())
	}

	name, err := m.NextProfile()
	if err != nil {
		t.Fatalf("NextProfile() error: %v", err)
	}
	if name != "b" || !m.Current().TrueTileFadeout {
		t.Errorf("Expected profile b with fade on, got %s", name)
	}

	if name, _ := m.NextProfile(); name != "a" {
		t.Errorf("Expected to wrap around to a, got %s", name)
	}
}

func TestManagerMirrorsSibling(t *testing.T) {
	stores, storeFor := newTestStores("a")
	stores["a"].Set(config.Group, config.KeyMirrorSettings, "true")
	stores["a"].Set(config.SiblingGroup, "highlightDestinationColor", "#FF00FF00")
	stores["a"].Set(config.SiblingGroup, "destinationTileCornersOnly", "false")

	m, err := NewManager([]string{"a"}, storeFor, nil)
	if err != nil {
		t.Fatal(err)
	}

	want, _ := config.ParseColor("#FF00FF00")
	cfg := m.Current()
	if cfg.HighlightDestinationColor != want {
		t.Errorf("Expected sibling color %v, got %v", want, cfg.HighlightDestinationColor)
	}
	if !cfg.DestinationTileCornersOnly {
		t.Error("Corners-only settings should not be copied from the sibling")
	}

	if _, err := m.Toggle("trueTileFadeout"); err != nil {
		t.Fatal(err)
	}
	if v, ok, _ := stores["a"].Get(config.SiblingGroup, "trueTileFadeout"); !ok || v != "true" {
		t.Errorf("Expected user edit to reach the sibling, got %q, %v", v, ok)
	}
}
