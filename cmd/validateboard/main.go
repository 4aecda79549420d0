// Command validateboard checks every board preset JSON file in a
// configs directory against the same bounds config.Manager enforces
// at load time, plus checks it doesn't make: holes inside the grid,
// min_one_fish_tiles within the tile count, and that every non-hole
// tile can reach at least one other tile in a straight line on an
// empty board. It does not check that all tiles are mutually
// reachable.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/wricardo/fishtournament/board"
)

const (
	minDimension = 2
	maxDimension = 5
	minFish      = 1
	maxFish      = 5
)

// presetFile mirrors config.BoardPreset's JSON shape. It is
// re-declared here, rather than imported, so this tool can report on
// a preset file before config.Manager would accept it as valid.
type presetFile struct {
	Name            string           `json:"name"`
	Description     string           `json:"description"`
	Rows            int              `json:"rows"`
	Cols            int              `json:"cols"`
	FishPerTile     int              `json:"fish_per_tile,omitempty"`
	Holes           []board.Position `json:"holes,omitempty"`
	MinOneFishTiles int              `json:"min_one_fish_tiles,omitempty"`
}

type validationResult struct {
	file   string
	valid  bool
	notes  []string
	errors []string
}

func main() {
	configDir := "configs"
	if len(os.Args) > 1 {
		configDir = os.Args[1]
	}

	files, err := filepath.Glob(filepath.Join(configDir, "*.json"))
	if err != nil {
		fmt.Printf("error finding preset files: %v\n", err)
		os.Exit(1)
	}

	allValid := true
	for _, file := range files {
		result := validatePresetFile(file)
		printResult(result)
		if !result.valid {
			allValid = false
		}
	}

	fmt.Println(strings.Repeat("=", 40))
	if allValid {
		fmt.Println("all board presets are valid")
		return
	}
	fmt.Println("some board presets have errors")
	os.Exit(1)
}

func validatePresetFile(path string) validationResult {
	result := validationResult{file: filepath.Base(path), valid: true}

	data, err := os.ReadFile(path)
	if err != nil {
		result.fail(fmt.Sprintf("failed to read file: %v", err))
		return result
	}

	var preset presetFile
	if err := json.Unmarshal(data, &preset); err != nil {
		result.fail(fmt.Sprintf("invalid JSON: %v", err))
		return result
	}

	if preset.Name == "" {
		result.fail("missing name")
	}
	if preset.Rows < minDimension || preset.Rows > maxDimension || preset.Cols < minDimension || preset.Cols > maxDimension {
		result.fail(fmt.Sprintf("rows/cols must be %d-%d, got %dx%d", minDimension, maxDimension, preset.Rows, preset.Cols))
	}
	if len(preset.Holes) == 0 && (preset.FishPerTile < minFish || preset.FishPerTile > maxFish) {
		result.fail(fmt.Sprintf("fish_per_tile must be %d-%d, got %d", minFish, maxFish, preset.FishPerTile))
	}
	for _, h := range preset.Holes {
		if h.Col < 0 || h.Col >= preset.Cols || h.Row < 0 || h.Row >= preset.Rows {
			result.fail(fmt.Sprintf("hole (%d,%d) falls outside the %dx%d grid", h.Col, h.Row, preset.Cols, preset.Rows))
		}
	}
	if preset.MinOneFishTiles > preset.Rows*preset.Cols-len(preset.Holes) {
		result.fail(fmt.Sprintf("min_one_fish_tiles (%d) exceeds the number of non-hole tiles (%d)", preset.MinOneFishTiles, preset.Rows*preset.Cols-len(preset.Holes)))
	}

	if !result.valid {
		return result
	}

	b, err := buildBoard(preset)
	if err != nil {
		result.fail(fmt.Sprintf("failed to build board: %v", err))
		return result
	}
	checkConnectivity(b, &result)

	result.note(fmt.Sprintf("name: %s", preset.Name))
	result.note(fmt.Sprintf("grid: %dx%d (%d tiles, %d holes)", preset.Rows, preset.Cols, b.NumTiles(), len(preset.Holes)))
	return result
}

func buildBoard(preset presetFile) (*board.Board, error) {
	if len(preset.Holes) > 0 {
		return board.WithHoles(preset.Rows, preset.Cols, preset.Holes, preset.MinOneFishTiles)
	}
	fish := preset.FishPerTile
	if fish == 0 {
		fish = minFish
	}
	return board.WithNoHoles(preset.Rows, preset.Cols, fish), nil
}

// checkConnectivity flags any tile that cannot reach, or be reached
// from, at least one other tile on an otherwise-empty board — a
// hole layout that isolates a corner produces exactly this shape.
func checkConnectivity(b *board.Board, result *validationResult) {
	if b.NumTiles() <= 1 {
		return
	}

	isolated := 0
	for _, id := range b.AllTileIds() {
		if len(b.AllReachableTiles(id, nil)) == 0 {
			isolated++
			pos := b.TilePosition(id)
			result.fail(fmt.Sprintf("tile (%d,%d) cannot reach any other tile", pos.Col, pos.Row))
		}
	}
	if isolated == 0 {
		result.note("connectivity: every tile can reach at least one other tile")
	}
}

func (r *validationResult) fail(msg string) {
	r.valid = false
	r.errors = append(r.errors, msg)
}

func (r *validationResult) note(msg string) {
	r.notes = append(r.notes, msg)
}

func printResult(r validationResult) {
	fmt.Printf("\n%s %s\n", strings.Repeat("=", 20), r.file)
	if r.valid {
		fmt.Println("VALID")
		for _, n := range r.notes {
			fmt.Println("  " + n)
		}
		return
	}
	fmt.Println("INVALID")
	for _, e := range r.errors {
		fmt.Println("  - " + e)
	}
}
