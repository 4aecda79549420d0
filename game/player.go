package game

import "github.com/wricardo/fishtournament/board"

// PlayerColor is one of the four colors assigned to players in turn
// order at game start.
type PlayerColor string

const (
	Red   PlayerColor = "red"
	White PlayerColor = "white"
	Brown PlayerColor = "brown"
	Black PlayerColor = "black"
)

// turnOrderColors is the fixed color assignment order.
var turnOrderColors = []PlayerColor{Red, White, Brown, Black}

// PlayerId is an opaque, process-wide identifier stable across a
// tournament (assigned once, at signup/tournament start).
type PlayerId int

// Penguin is a movable token owned by a player, optionally sitting on
// a tile. Placed is false until the placement phase assigns it a
// Tile.
type Penguin struct {
	Tile   board.TileId
	Placed bool
}

// Player is one participant's in-game state.
type Player struct {
	Id       PlayerId
	Color    PlayerColor
	Score    int
	Penguins []Penguin
}

// Clone deep-copies a Player (its Penguins slice is never aliased
// with the original).
func (p *Player) Clone() *Player {
	np := &Player{Id: p.Id, Color: p.Color, Score: p.Score}
	np.Penguins = append(np.Penguins, p.Penguins...)
	return np
}

// AllPlaced reports whether every one of this player's penguins has
// been placed on the board.
func (p *Player) AllPlaced() bool {
	for _, pg := range p.Penguins {
		if !pg.Placed {
			return false
		}
	}
	return true
}

func newPenguins(count int) []Penguin {
	return make([]Penguin, count)
}
