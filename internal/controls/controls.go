// Package controls drives the player from an on-screen directional pad and
// the keyboard. The pad is four translucent buttons in a cross layout with
// triangle glyphs, meant for touch/mouse play; WASD and the arrow keys work
// alongside it.
package controls

import (
	"image/color"

	"github.com/yanfrimmel/maze/internal/player"
	"github.com/yanfrimmel/maze/internal/render"
)

// Button shades, premultiplied alpha.
var (
	buttonColor   = color.RGBA{R: 38, G: 38, B: 38, A: 76}
	hoverColor    = color.RGBA{R: 61, G: 61, B: 61, A: 102}
	pressedColor  = color.RGBA{R: 51, G: 51, B: 51, A: 128}
	triangleColor = color.RGBA{R: 0, G: 0, B: 0, A: 51}
)

// DirectionButton is one pad button.
type DirectionButton struct {
	X, Y, W, H float64
	Direction  player.Direction

	pressed bool
	hovered bool
}

// NewDirectionButton creates a button covering the given rectangle.
func NewDirectionButton(x, y, w, h float64, dir player.Direction) *DirectionButton {
	return &DirectionButton{X: x, Y: y, W: w, H: h, Direction: dir}
}

func (b *DirectionButton) contains(x, y int) bool {
	fx, fy := float64(x), float64(y)
	return fx >= b.X && fx < b.X+b.W && fy >= b.Y && fy < b.Y+b.H
}

// Update refreshes hover/pressed state and reports whether the button is
// currently held down.
func (b *DirectionButton) Update(input render.InputManager) bool {
	x, y := input.GetCursorPosition()
	b.hovered = b.contains(x, y)
	b.pressed = b.hovered && input.IsMouseButtonPressed(render.MouseButtonLeft)
	return b.pressed
}

// Draw renders the button background and its direction glyph.
func (b *DirectionButton) Draw(dst render.Image, r render.Renderer) {
	clr := buttonColor
	if b.pressed {
		clr = pressedColor
	} else if b.hovered {
		clr = hoverColor
	}
	r.FillRect(dst, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), clr)

	cx := float32(b.X + b.W/2)
	cy := float32(b.Y + b.H/2)
	size := float32(b.W)
	if b.H < b.W {
		size = float32(b.H)
	}
	arrow := size * 0.25

	switch b.Direction {
	case player.DirUp:
		r.FillTriangle(dst, cx, cy-arrow, cx-arrow, cy+arrow, cx+arrow, cy+arrow, triangleColor)
	case player.DirRight:
		r.FillTriangle(dst, cx+arrow, cy, cx-arrow, cy-arrow, cx-arrow, cy+arrow, triangleColor)
	case player.DirDown:
		r.FillTriangle(dst, cx, cy+arrow, cx-arrow, cy-arrow, cx+arrow, cy-arrow, triangleColor)
	case player.DirLeft:
		r.FillTriangle(dst, cx-arrow, cy, cx+arrow, cy-arrow, cx+arrow, cy+arrow, triangleColor)
	}
}

// ControlPad groups the four direction buttons.
type ControlPad struct {
	Buttons [4]*DirectionButton
}

// NewControlPad lays out the cross of buttons inside a size x size square
// anchored at (x, y). Each button is a third of the square.
func NewControlPad(x, y, size float64) *ControlPad {
	b := size / 3.0
	return &ControlPad{
		Buttons: [4]*DirectionButton{
			NewDirectionButton(x+b, y, b, b, player.DirUp),
			NewDirectionButton(x+b*2, y+b, b, b, player.DirRight),
			NewDirectionButton(x+b, y+b*2, b, b, player.DirDown),
			NewDirectionButton(x, y+b, b, b, player.DirLeft),
		},
	}
}

// Update polls the buttons and the keyboard and steers the player. Keyboard
// checks run after the buttons so held keys win over a held button; key
// priority is up, right, down, left.
func (c *ControlPad) Update(input render.InputManager, p *player.Player) {
	for _, btn := range c.Buttons {
		if btn.Update(input) {
			p.SetDirection(btn.Direction)
		}
	}

	if input.IsKeyPressed(render.KeyUp) || input.IsKeyPressed(render.KeyW) {
		p.SetDirection(player.DirUp)
	} else if input.IsKeyPressed(render.KeyRight) || input.IsKeyPressed(render.KeyD) {
		p.SetDirection(player.DirRight)
	} else if input.IsKeyPressed(render.KeyDown) || input.IsKeyPressed(render.KeyS) {
		p.SetDirection(player.DirDown)
	} else if input.IsKeyPressed(render.KeyLeft) || input.IsKeyPressed(render.KeyA) {
		p.SetDirection(player.DirLeft)
	}
}

// Draw renders the pad.
func (c *ControlPad) Draw(dst render.Image, r render.Renderer) {
	for _, btn := range c.Buttons {
		btn.Draw(dst, r)
	}
}
