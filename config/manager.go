package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/wricardo/fishtournament/board"
)

var (
	// ErrConfigNotFound is returned when a named preset has no
	// matching file in the config directory.
	ErrConfigNotFound = errors.New("config: preset not found")
	// ErrInvalidConfig is returned when a preset fails this package's
	// bounds checks at load time. Errors from board.WithHoles surface
	// from BoardPreset.Board unwrapped.
	ErrInvalidConfig = errors.New("config: invalid board preset")
)

const (
	minDimension = 2
	maxDimension = 5
	minFish      = 1
	maxFish      = 5
)

// BoardPreset describes one named board configuration: a uniform fish
// count (FishPerTile) plus an optional set of holes to punch. A preset
// with holes builds a 1-fish-per-tile board and ignores FishPerTile.
type BoardPreset struct {
	Name            string           `json:"name"`
	Description     string           `json:"description"`
	Rows            int              `json:"rows"`
	Cols            int              `json:"cols"`
	FishPerTile     int              `json:"fish_per_tile,omitempty"`
	Holes           []board.Position `json:"holes,omitempty"`
	MinOneFishTiles int              `json:"min_one_fish_tiles,omitempty"`
}

// Board materializes this preset into a playable Board.
func (p *BoardPreset) Board() (*board.Board, error) {
	if len(p.Holes) > 0 {
		return board.WithHoles(p.Rows, p.Cols, p.Holes, p.MinOneFishTiles)
	}
	fish := p.FishPerTile
	if fish == 0 {
		fish = minFish
	}
	return board.WithNoHoles(p.Rows, p.Cols, fish), nil
}

func validatePreset(p *BoardPreset) error {
	if p.Name == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidConfig)
	}
	if p.Rows < minDimension || p.Rows > maxDimension || p.Cols < minDimension || p.Cols > maxDimension {
		return fmt.Errorf("%w: rows/cols must be %d-%d, got %dx%d", ErrInvalidConfig, minDimension, maxDimension, p.Rows, p.Cols)
	}
	if len(p.Holes) == 0 && (p.FishPerTile < minFish || p.FishPerTile > maxFish) {
		return fmt.Errorf("%w: fish_per_tile must be %d-%d, got %d", ErrInvalidConfig, minFish, maxFish, p.FishPerTile)
	}
	return nil
}

// Manager loads and caches named BoardPresets from a directory of
// JSON files, double-checked-locking style so concurrent LoadConfig
// calls for the same name only hit disk once.
type Manager struct {
	configDir string
	defaults  *BoardPreset
	presets   map[string]*BoardPreset
	mu        sync.RWMutex
}

// NewManager opens configDir and attempts to load a default preset
// ("tournament-default", or the first preset found, or a built-in
// fallback if the directory is empty).
func NewManager(configDir string) (*Manager, error) {
	if _, err := os.Stat(configDir); os.IsNotExist(err) {
		return nil, fmt.Errorf("config: directory does not exist: %s", configDir)
	}

	m := &Manager{
		configDir: configDir,
		presets:   make(map[string]*BoardPreset),
	}
	if err := m.loadDefault(); err != nil {
		return nil, fmt.Errorf("config: failed to load default preset: %w", err)
	}
	return m, nil
}

// LoadConfig loads a preset by name (with or without a .json
// extension), caching the result.
func (m *Manager) LoadConfig(name string) (*BoardPreset, error) {
	m.mu.RLock()
	if p, ok := m.presets[name]; ok {
		m.mu.RUnlock()
		return p, nil
	}
	m.mu.RUnlock()

	m.mu.Lock()
	defer m.mu.Unlock()

	if p, ok := m.presets[name]; ok {
		return p, nil
	}

	filename := name
	if !strings.HasSuffix(filename, ".json") {
		filename += ".json"
	}
	data, err := os.ReadFile(filepath.Join(m.configDir, filename))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, fmt.Errorf("config: failed to read preset file: %w", err)
	}

	var preset BoardPreset
	if err := json.Unmarshal(data, &preset); err != nil {
		return nil, fmt.Errorf("config: failed to parse preset: %w", err)
	}
	if err := validatePreset(&preset); err != nil {
		return nil, err
	}

	m.presets[name] = &preset
	return &preset, nil
}

// PresetInfo summarizes one available preset for listing purposes.
type PresetInfo struct {
	Filename    string `json:"filename"`
	PresetID    string `json:"preset_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Rows        int    `json:"rows"`
	Cols        int    `json:"cols"`
}

// ListConfigs returns info on every valid preset file in the config
// directory, skipping files that fail to parse or validate.
func (m *Manager) ListConfigs() ([]*PresetInfo, error) {
	entries, err := os.ReadDir(m.configDir)
	if err != nil {
		return nil, fmt.Errorf("config: failed to read directory: %w", err)
	}

	var out []*PresetInfo
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), ".json")
		preset, err := m.LoadConfig(name)
		if err != nil {
			continue
		}
		out = append(out, &PresetInfo{
			Filename:    entry.Name(),
			PresetID:    name,
			Name:        preset.Name,
			Description: preset.Description,
			Rows:        preset.Rows,
			Cols:        preset.Cols,
		})
	}
	return out, nil
}

// GetDefault returns the tournament's default board preset.
func (m *Manager) GetDefault() *BoardPreset {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.defaults
}

// SetDefault changes the default preset by name.
func (m *Manager) SetDefault(name string) error {
	preset, err := m.LoadConfig(name)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.defaults = preset
	m.mu.Unlock()
	return nil
}

func (m *Manager) loadDefault() error {
	preset, err := m.LoadConfig("tournament-default")
	if err != nil {
		list, listErr := m.ListConfigs()
		if listErr != nil || len(list) == 0 {
			m.mu.Lock()
			m.defaults = minimalPreset()
			m.mu.Unlock()
			return nil
		}
		preset, err = m.LoadConfig(strings.TrimSuffix(list[0].Filename, ".json"))
		if err != nil {
			m.mu.Lock()
			m.defaults = minimalPreset()
			m.mu.Unlock()
			return nil
		}
	}
	m.mu.Lock()
	m.defaults = preset
	m.mu.Unlock()
	return nil
}

func minimalPreset() *BoardPreset {
	return &BoardPreset{
		Name:        "built-in-default",
		Description: "5x5 board, 3 fish per tile, no holes",
		Rows:        5,
		Cols:        5,
		FishPerTile: 3,
	}
}
