// Command boardstats prints quick, human-readable heuristics about
// board preset JSON files in a configs directory: tile/fish counts,
// how evenly fish are distributed, and how much single-move mobility
// each tile has — the board-level analogue of the grid-heuristic
// report the original project's analyze tool produced.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/wricardo/fishtournament/board"
)

type presetFile struct {
	Name            string           `json:"name"`
	Description     string           `json:"description"`
	Rows            int              `json:"rows"`
	Cols            int              `json:"cols"`
	FishPerTile     int              `json:"fish_per_tile,omitempty"`
	Holes           []board.Position `json:"holes,omitempty"`
	MinOneFishTiles int              `json:"min_one_fish_tiles,omitempty"`
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
	if len(files) == 0 {
		fmt.Printf("no preset files found in %s\n", configDir)
		return
	}

	for _, f := range files {
		fmt.Printf("\n=== %s ===\n", filepath.Base(f))
		analyzePreset(f)
	}
}

func analyzePreset(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("error reading file: %v\n", err)
		return
	}

	var preset presetFile
	if err := json.Unmarshal(data, &preset); err != nil {
		fmt.Printf("error parsing JSON: %v\n", err)
		return
	}

	var b *board.Board
	if len(preset.Holes) > 0 {
		b, err = board.WithHoles(preset.Rows, preset.Cols, preset.Holes, preset.MinOneFishTiles)
	} else {
		fish := preset.FishPerTile
		if fish == 0 {
			fish = 1
		}
		b = board.WithNoHoles(preset.Rows, preset.Cols, fish)
	}
	if err != nil {
		fmt.Printf("error building board: %v\n", err)
		return
	}

	fmt.Printf("name: %s\n", preset.Name)
	fmt.Printf("grid: %d x %d\n", preset.Rows, preset.Cols)
	fmt.Printf("holes: %d\n", len(preset.Holes))
	fmt.Printf("tiles: %d\n", b.NumTiles())

	totalFish, minFish, maxFish := fishStats(b)
	fmt.Printf("fish total: %d\n", totalFish)
	if b.NumTiles() > 0 {
		fmt.Printf("fish per tile: min %d, max %d, avg %.2f\n", minFish, maxFish, float64(totalFish)/float64(b.NumTiles()))
	}

	minReach, maxReach, avgReach := mobilityStats(b)
	fmt.Printf("single-move mobility: min %d, max %d, avg %.2f reachable tiles\n", minReach, maxReach, avgReach)

	maxPlayers := 4
	maxPlacements := maxPlayers * playerPlacementCount(maxPlayers)
	if b.NumTiles() < maxPlacements {
		fmt.Printf("WARNING: only %d tiles, too few for a %d-player game's opening placements (%d needed)\n", b.NumTiles(), maxPlayers, maxPlacements)
	} else {
		fmt.Println("capacity: enough tiles for a full 4-player game's opening placements")
	}
}

// playerPlacementCount mirrors the number of penguins a player of a
// max-sized game places, per spec.md §3 (6 - players, bottomed at 2).
func playerPlacementCount(players int) int {
	n := 6 - players
	if n < 2 {
		return 2
	}
	return n
}

func fishStats(b *board.Board) (total, min, max int) {
	first := true
	for _, id := range b.AllTileIds() {
		tile, ok := b.Tile(id)
		if !ok {
			continue
		}
		total += tile.FishCount
		if first {
			min, max = tile.FishCount, tile.FishCount
			first = false
			continue
		}
		if tile.FishCount < min {
			min = tile.FishCount
		}
		if tile.FishCount > max {
			max = tile.FishCount
		}
	}
	return total, min, max
}

func mobilityStats(b *board.Board) (min, max int, avg float64) {
	ids := b.AllTileIds()
	if len(ids) == 0 {
		return 0, 0, 0
	}

	first := true
	var total int
	for _, id := range ids {
		reachable := len(b.AllReachableTiles(id, nil))
		total += reachable
		if first {
			min, max = reachable, reachable
			first = false
			continue
		}
		if reachable < min {
			min = reachable
		}
		if reachable > max {
			max = reachable
		}
	}
	return min, max, float64(total) / float64(len(ids))
}
