package maze

// Position identifies a tile by its column and row.
type Position struct {
	Col, Row int
}

// Grid is the maze tile grid plus its placement on screen. Tiles are stored
// row-major in a flat slice.
type Grid struct {
	Tiles []Tile
	Cols  int
	Rows  int

	// Screen layout: tile edge length in pixels and the offset that centers
	// the grid on screen.
	TileSize float64
	OriginX  float64
	OriginY  float64
}

// NewGrid sizes a grid from the screen dimensions: the bigger axis is split
// into tilesPerAxis tiles and the division remainder centers the grid. Every
// tile starts with all four walls.
func NewGrid(screenW, screenH, tilesPerAxis int) *Grid {
	axis := screenW
	if screenH > axis {
		axis = screenH
	}
	tileSize := axis / tilesPerAxis

	cols := screenW / tileSize
	rows := screenH / tileSize
	originX := (screenW % tileSize) / 2
	originY := (screenH % tileSize) / 2

	tiles := make([]Tile, 0, cols*rows)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			tiles = append(tiles, NewTile(col, row))
		}
	}

	return &Grid{
		Tiles:    tiles,
		Cols:     cols,
		Rows:     rows,
		TileSize: float64(tileSize),
		OriginX:  float64(originX),
		OriginY:  float64(originY),
	}
}

// At returns the tile at (col, row). Callers are expected to stay in bounds.
func (g *Grid) At(col, row int) *Tile {
	return &g.Tiles[row*g.Cols+col]
}

// Contains reports whether (col, row) is inside the grid.
func (g *Grid) Contains(col, row int) bool {
	return col >= 0 && col < g.Cols && row >= 0 && row < g.Rows
}

// TileScreenPos returns the top-left screen coordinate of the tile.
func (g *Grid) TileScreenPos(col, row int) (x, y float64) {
	return g.OriginX + float64(col)*g.TileSize, g.OriginY + float64(row)*g.TileSize
}

// TileAtScreenPos maps a screen coordinate to a tile position. The result may
// be out of bounds; check with Contains.
func (g *Grid) TileAtScreenPos(x, y float64) Position {
	return Position{
		Col: int((x - g.OriginX) / g.TileSize),
		Row: int((y - g.OriginY) / g.TileSize),
	}
}

// InternalWalls returns the number of wall slots between adjacent tiles.
// Each shared edge counts once.
func (g *Grid) InternalWalls() int {
	return (g.Rows-1)*g.Cols + (g.Cols-1)*g.Rows
}
