// Package border implements the tile border coloring rule shared by the CPU
// and the GPU: a tile is divided into a Pixels x Pixels grid, a 4-bit mask
// flags which edges are walls, and flagged boundary rows/columns take the
// border color while everything else takes the tile color.
package border

import (
	_ "embed"
	"math"
)

// ShaderSource is the Kage fragment shader implementing the same rule on the
// GPU. Evaluate is its CPU reference; the two must stay in lockstep.
//
//go:embed border.kage
var ShaderSource []byte

// Mask flags which edges of a tile are walls. Multiple edges may be flagged
// at once, e.g. a corner tile with both a top and a left wall.
type Mask int

// Edge bit values. These are the canonical assignments; the mask is a true
// bitmask, not an exclusive enum.
const (
	Left   Mask = 1
	Top    Mask = 2
	Right  Mask = 4
	Bottom Mask = 8

	// All flags every edge.
	All = Left | Top | Right | Bottom
)

// Has reports whether edge is flagged in m.
func (m Mask) Has(edge Mask) bool {
	return m&edge != 0
}

// With returns m with edge flagged.
func (m Mask) With(edge Mask) Mask {
	return m | edge
}

// Without returns m with edge cleared.
func (m Mask) Without(edge Mask) Mask {
	return m &^ edge
}

// Count returns the number of flagged edges.
func (m Mask) Count() int {
	n := 0
	for _, edge := range []Mask{Left, Top, Right, Bottom} {
		if m.Has(edge) {
			n++
		}
	}
	return n
}

// RGBA is a color with float channels in [0, 1], matching the vec4 uniforms
// the shader takes. Alpha is passed through untouched by Evaluate.
type RGBA struct {
	R, G, B, A float64
}

// Vec4 returns the color as a flat float32 slice in shader uniform layout.
func (c RGBA) Vec4() []float32 {
	return []float32{float32(c.R), float32(c.G), float32(c.B), float32(c.A)}
}

// Evaluate maps a normalized coordinate (u, v) in [0,1)x[0,1) and an edge
// mask to the output color for that fragment. pixels is the grid resolution
// of the tile (e.g. 8 cells per side).
//
// The pixel cell is floor(uv*pixels), clamped to pixels-1 so coordinates
// approaching 1.0 stay on the last row/column. Edges are checked in the fixed
// order left, top, right, bottom and each match unconditionally overwrites
// the output, so a true corner pixel takes the later edge's color. The two
// colors are mutually exclusive outputs, never blended.
//
// Inputs are trusted per the rendering pipeline contract; there is no
// validation and no error path.
func Evaluate(u, v float64, pixels float64, mask Mask, tile, border RGBA) RGBA {
	px := int(math.Floor(u * pixels))
	py := int(math.Floor(v * pixels))
	last := int(pixels) - 1
	if px > last {
		px = last
	}
	if py > last {
		py = last
	}

	out := tile
	if mask.Has(Left) && px == 0 {
		out = border
	}
	if mask.Has(Top) && py == 0 {
		out = border
	}
	if mask.Has(Right) && px == last {
		out = border
	}
	if mask.Has(Bottom) && py == last {
		out = border
	}
	return out
}

// Uniforms builds the uniform set for one DrawRectShader call of the border
// shader. pixels is the grid resolution, tileSize the drawn rectangle size in
// screen pixels.
func Uniforms(pixels, tileSize float64, mask Mask, tile, border RGBA) map[string]interface{} {
	return map[string]interface{}{
		"Pixels":      float32(pixels),
		"TileSize":    float32(tileSize),
		"BorderSide":  int(mask),
		"TileColor":   tile.Vec4(),
		"BorderColor": border.Vec4(),
	}
}
