package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "overlay.log")

	log := New(Options{File: path, Debug: true})
	log.Debugw("Player moved", "tick", 3)
	Sync(log)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "Player moved") {
		t.Errorf("Expected debug entry in log file, got %q", data)
	}
	if !strings.Contains(string(data), "DEBUG") {
		t.Errorf("Expected capital level encoding, got %q", data)
	}
}

func TestNewInfoLevelDropsDebug(t *testing.T) {
	path := filepath.Join(t.TempDir(), "overlay.log")

	log := New(Options{File: path})
	log.Debugw("hidden")
	log.Infow("shown")
	Sync(log)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if strings.Contains(string(data), "hidden") {
		t.Error("Debug entries should be dropped at info level")
	}
	if !strings.Contains(string(data), "shown") {
		t.Error("Expected info entry in log file")
	}
}

func TestNewWithoutOutputs(t *testing.T) {
	log := New(Options{})
	log.Infow("nowhere")
	Sync(log)
	Sync(nil)
}
