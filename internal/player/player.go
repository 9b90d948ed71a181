// Package player implements the maze walker: continuous movement across the
// tile grid, wall collision against the current tile's border mask, and
// smooth recentering when idle or blocked.
package player

import (
	"image/color"

	"github.com/yanfrimmel/maze/internal/border"
	"github.com/yanfrimmel/maze/internal/maze"
)

// Direction is the player's movement heading.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirRight
	DirDown
	DirLeft
)

// Color is the player's fill color.
var Color = color.RGBA{R: 253, G: 249, B: 0, A: 255}

const (
	// tilesPerSecond is the movement speed in tile lengths per second.
	tilesPerSecond = 4.0
	// recenterRate controls how fast the player lerps back to the tile
	// center when stopped.
	recenterRate = 10.0
)

// Player is the maze walker. It tracks both a grid position and a pixel
// position; the pixel position moves continuously and the grid position is
// derived from it.
type Player struct {
	Col, Row  int
	X, Y      float64 // screen position, pixels
	Speed     float64 // pixels per second
	Radius    float64
	Direction Direction
}

// New places a player at the center of tile (col, row) of the grid.
func New(grid *maze.Grid, col, row int) *Player {
	x, y := grid.TileScreenPos(col, row)
	return &Player{
		Col:    col,
		Row:    row,
		X:      x + grid.TileSize/2,
		Y:      y + grid.TileSize/2,
		Speed:  grid.TileSize * tilesPerSecond,
		Radius: grid.TileSize * 0.25,
	}
}

// SetDirection sets the movement heading. DirNone from callers is ignored so
// a released on-screen button does not cancel a concurrently held key.
func (p *Player) SetDirection(dir Direction) {
	if dir == DirNone {
		return
	}
	p.Direction = dir
}

// Stop halts movement; the player recenters on its tile over the next frames.
func (p *Player) Stop() {
	p.Direction = DirNone
}

// Update advances the player by dt seconds. Movement in the current direction
// is blocked by a standing wall of the occupied tile; hitting one stops the
// player and reports blocked. Reports exit when the occupied tile is the
// maze exit.
func (p *Player) Update(dt float64, grid *maze.Grid) (exit, blocked bool) {
	if grid.At(p.Col, p.Row).Exit {
		return true, false
	}

	if p.Direction == DirNone {
		p.centerOnTile(dt, grid)
		return false, false
	}

	var dx, dy float64
	var wall border.Mask
	switch p.Direction {
	case DirUp:
		dy, wall = -1, border.Top
	case DirRight:
		dx, wall = 1, border.Right
	case DirDown:
		dy, wall = 1, border.Bottom
	case DirLeft:
		dx, wall = -1, border.Left
	}

	if grid.At(p.Col, p.Row).HasWall(wall) {
		p.Direction = DirNone
		p.centerOnTile(dt, grid)
		return false, true
	}

	p.X += dx * p.Speed * dt
	p.Y += dy * p.Speed * dt

	pos := grid.TileAtScreenPos(p.X, p.Y)
	if (pos.Col != p.Col || pos.Row != p.Row) && grid.Contains(pos.Col, pos.Row) {
		p.Col = pos.Col
		p.Row = pos.Row
	}

	return false, false
}

// centerOnTile eases the pixel position toward the center of the occupied
// tile.
func (p *Player) centerOnTile(dt float64, grid *maze.Grid) {
	x, y := grid.TileScreenPos(p.Col, p.Row)
	centerX := x + grid.TileSize/2
	centerY := y + grid.TileSize/2
	p.X += (centerX - p.X) * recenterRate * dt
	p.Y += (centerY - p.Y) * recenterRate * dt
}
