package maze

import (
	"github.com/yanfrimmel/maze/internal/border"
)

// Tile colors. A tile starts in the wall color with all four walls standing;
// carving any wall away turns it into a path tile.
var (
	WallColor = border.RGBA{R: 0.31, G: 0.31, B: 0.31, A: 1} // dark gray
	PathColor = border.RGBA{R: 0.51, G: 0.41, B: 0.29, A: 1} // brown
	ExitColor = border.RGBA{R: 0.99, G: 0.98, B: 0.00, A: 1} // yellow
)

// Tile is a single maze cell. Walls holds the edges still standing as a
// border mask, which is handed to the border shader unchanged at draw time.
type Tile struct {
	Col, Row int
	Walls    border.Mask
	Color    border.RGBA
	Exit     bool
}

// NewTile creates a tile with all four walls standing.
func NewTile(col, row int) Tile {
	return Tile{
		Col:   col,
		Row:   row,
		Walls: border.All,
		Color: WallColor,
	}
}

// HasWall reports whether the given edge is still standing.
func (t *Tile) HasWall(edge border.Mask) bool {
	return t.Walls.Has(edge)
}

// RemoveWall knocks down one edge and recolors the tile as a path.
func (t *Tile) RemoveWall(edge border.Mask) {
	t.Walls = t.Walls.Without(edge)
	t.Color = PathColor
}

// MarkExit flags the tile as the maze exit.
func (t *Tile) MarkExit() {
	t.Exit = true
	t.Color = ExitColor
}
