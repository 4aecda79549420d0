package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/wricardo/fishtournament/board"
)

func testDir(t *testing.T) string {
	t.Helper()
	dir, err := os.MkdirTemp("", "boardpreset-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(dir) })
	return dir
}

func writePreset(t *testing.T, dir, name string, p *BoardPreset) {
	t.Helper()
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		t.Fatalf("failed to marshal preset: %v", err)
	}
	filename := name
	if filepath.Ext(filename) == "" {
		filename += ".json"
	}
	if err := os.WriteFile(filepath.Join(dir, filename), data, 0644); err != nil {
		t.Fatalf("failed to write preset file: %v", err)
	}
}

func validPreset(name string) *BoardPreset {
	return &BoardPreset{Name: name, Description: "test preset", Rows: 3, Cols: 4, FishPerTile: 2}
}

func TestNewManagerMissingDirectory(t *testing.T) {
	if _, err := NewManager("/nonexistent/path"); err == nil {
		t.Fatal("expected an error for a missing config directory")
	}
}

func TestNewManagerWithoutAnyPresetsFallsBackToBuiltin(t *testing.T) {
	dir := testDir(t)
	m, err := NewManager(dir)
	if err != nil {
		t.Fatalf("NewManager should succeed with an empty directory, got: %v", err)
	}
	if m.GetDefault() == nil {
		t.Fatal("expected a built-in default preset")
	}
}

func TestLoadConfigCaches(t *testing.T) {
	dir := testDir(t)
	writePreset(t, dir, "small", validPreset("Small"))

	m, err := NewManager(dir)
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}

	p1, err := m.LoadConfig("small")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	p2, err := m.LoadConfig("small")
	if err != nil {
		t.Fatalf("LoadConfig (cached) failed: %v", err)
	}
	if p1 != p2 {
		t.Fatal("expected the second load to return the cached pointer")
	}
}

func TestLoadConfigNotFound(t *testing.T) {
	dir := testDir(t)
	m, err := NewManager(dir)
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}
	if _, err := m.LoadConfig("missing"); err != ErrConfigNotFound {
		t.Fatalf("expected ErrConfigNotFound, got %v", err)
	}
}

func TestLoadConfigRejectsOutOfBoundsDimensions(t *testing.T) {
	dir := testDir(t)
	bad := validPreset("TooBig")
	bad.Rows = 9
	writePreset(t, dir, "toobig", bad)

	m, err := NewManager(dir)
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}
	if _, err := m.LoadConfig("toobig"); err == nil {
		t.Fatal("expected an error for an out-of-bounds board size")
	}
}

func TestBoardPresetBuildsUniformBoard(t *testing.T) {
	p := validPreset("Uniform")
	b, err := p.Board()
	if err != nil {
		t.Fatalf("Board() failed: %v", err)
	}
	if b.NumTiles() != p.Rows*p.Cols {
		t.Fatalf("expected %d tiles, got %d", p.Rows*p.Cols, b.NumTiles())
	}
}

func TestBoardPresetWithHolesPunchesHoles(t *testing.T) {
	p := validPreset("Holey")
	p.Holes = []board.Position{{Col: 0, Row: 0}}
	p.MinOneFishTiles = 1
	b, err := p.Board()
	if err != nil {
		t.Fatalf("Board() failed: %v", err)
	}
	if b.NumTiles() != p.Rows*p.Cols-1 {
		t.Fatalf("expected one hole punched, got %d tiles", b.NumTiles())
	}
}

func TestListConfigsSkipsNonJSONAndInvalidFiles(t *testing.T) {
	dir := testDir(t)
	writePreset(t, dir, "a", validPreset("A"))
	writePreset(t, dir, "b", validPreset("B"))
	invalid := validPreset("Invalid")
	invalid.Rows = 9
	writePreset(t, dir, "invalid", invalid)
	os.WriteFile(filepath.Join(dir, "readme.txt"), []byte("not json"), 0644)

	m, err := NewManager(dir)
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}
	list, err := m.ListConfigs()
	if err != nil {
		t.Fatalf("ListConfigs failed: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 presets listed, got %d", len(list))
	}
}
