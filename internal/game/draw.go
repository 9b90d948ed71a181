package game

import (
	"fmt"
	"image/color"

	"github.com/yanfrimmel/maze/internal/border"
	"github.com/yanfrimmel/maze/internal/maze"
	"github.com/yanfrimmel/maze/internal/player"
	"github.com/yanfrimmel/maze/internal/render"
)

// gridResolution is the cell count per tile edge inside the border shader;
// flagged edges color exactly one cell-wide rows/columns.
const gridResolution = 8

// Draw renders the game to the screen.
func (m *Manager) Draw(screen render.Image) {
	screen.Fill(color.Black)

	m.drawTiles(screen)

	if m.State == StatePlaying {
		m.drawPlayer(screen)
		m.Pad.Draw(screen, m.Renderer)
	}

	fps := fmt.Sprintf("FPS: %.0f", m.Renderer.CurrentFPS())
	m.Renderer.DrawText(screen, fps, 10, 10, color.White)
}

// drawTiles issues one shader draw per tile. The tile's standing walls go in
// as the border mask; the border is always drawn in the wall color no matter
// what the tile color has become.
func (m *Manager) drawTiles(screen render.Image) {
	size := int(m.Grid.TileSize)
	for i := range m.Grid.Tiles {
		tile := &m.Grid.Tiles[i]
		x, y := m.Grid.TileScreenPos(tile.Col, tile.Row)

		geom := render.NewGeoM()
		geom.Translate(x, y)

		opts := &render.DrawRectShaderOptions{
			GeoM:     geom,
			Uniforms: border.Uniforms(gridResolution, m.Grid.TileSize, tile.Walls, tile.Color, maze.WallColor),
		}
		screen.DrawRectShader(size, size, m.BorderShader, opts)
	}
}

func (m *Manager) drawPlayer(screen render.Image) {
	m.Renderer.FillCircle(screen,
		float32(m.Player.X), float32(m.Player.Y), float32(m.Player.Radius), player.Color)
}
