// Package game wires the maze, player, controls, audio and renderer into the
// game loop: an animated generation phase followed by play, looping back on
// every solved maze.
package game

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/yanfrimmel/maze/internal/audio"
	"github.com/yanfrimmel/maze/internal/config"
	"github.com/yanfrimmel/maze/internal/controls"
	"github.com/yanfrimmel/maze/internal/maze"
	"github.com/yanfrimmel/maze/internal/player"
	"github.com/yanfrimmel/maze/internal/render"
)

// State is the game phase.
type State int

const (
	// StateGenerating animates maze carving.
	StateGenerating State = iota
	// StatePlaying lets the player walk the finished maze.
	StatePlaying
)

// Manager holds the overall game state and implements render.Game.
type Manager struct {
	ScreenWidth  int
	ScreenHeight int
	State        State

	Grid   *maze.Grid
	Gen    *maze.Generator
	Player *player.Player
	Pad    *controls.ControlPad

	Renderer     render.Renderer
	InputMgr     render.InputManager
	BorderShader render.Shader
	Sounds       *audio.SoundManager

	cfg *config.Config
	rng *rand.Rand

	// Generation animation pacing: a burst of carving steps every interval.
	carveInterval float64
	stepsPerBurst int
	carveTimer    float64
}

// NewManager builds a fully wired game: compiles the border shader, lays out
// the grid and control pad, and starts the first generation.
func NewManager(cfg *config.Config, seed int64, r render.Renderer, input render.InputManager, sounds *audio.SoundManager, shaderSrc []byte) (*Manager, error) {
	shader, err := r.CompileShader(shaderSrc)
	if err != nil {
		return nil, fmt.Errorf("failed to compile border shader: %w", err)
	}

	// Original pacing: steps per burst and burst interval both derive from
	// the tile count on the bigger axis, so larger mazes carve faster.
	n := cfg.TilesPerAxis
	stepsPerBurst := n / 10
	if stepsPerBurst < 1 {
		stepsPerBurst = 1
	}

	padSize := float64(cfg.WindowHeight) * 0.25
	m := &Manager{
		ScreenWidth:   cfg.WindowWidth,
		ScreenHeight:  cfg.WindowHeight,
		Renderer:      r,
		InputMgr:      input,
		BorderShader:  shader,
		Sounds:        sounds,
		cfg:           cfg,
		rng:           rand.New(rand.NewSource(seed)),
		carveInterval: 0.1 / float64(n),
		stepsPerBurst: stepsPerBurst,
		Pad: controls.NewControlPad(
			float64(cfg.WindowWidth)-padSize-20,
			float64(cfg.WindowHeight)-padSize-20,
			padSize,
		),
	}
	m.Regenerate()

	log.Printf("Grid: %dx%d tiles of %vpx", m.Grid.Cols, m.Grid.Rows, m.Grid.TileSize)
	return m, nil
}

// Regenerate discards the maze and starts carving a fresh one. The player
// keeps its position across regenerations and simply finds itself inside the
// new maze.
func (m *Manager) Regenerate() {
	m.Grid = maze.NewGrid(m.ScreenWidth, m.ScreenHeight, m.cfg.TilesPerAxis)
	m.Gen = maze.NewGenerator(m.Grid, m.rng)
	m.carveTimer = 0
	m.State = StateGenerating

	if m.Player == nil {
		m.Player = player.New(m.Grid, 0, 0)
	} else {
		m.Player.Stop()
	}
}

// Update advances the game by one tick.
func (m *Manager) Update() error {
	// Fixed tick rate
	dt := 1.0 / 60.0

	switch m.State {
	case StateGenerating:
		m.carveTimer += dt
		for m.carveTimer >= m.carveInterval && !m.Gen.Done() {
			m.Gen.Step(m.stepsPerBurst)
			m.carveTimer -= m.carveInterval
		}
		if m.Gen.Done() {
			m.finishGeneration()
		}

	case StatePlaying:
		if m.InputMgr.IsKeyJustPressed(render.KeyR) {
			log.Printf("Regenerating maze")
			m.Regenerate()
			return nil
		}
		if m.InputMgr.IsKeyJustPressed(render.KeyM) {
			if m.Sounds.ToggleMute() {
				log.Printf("Audio muted")
			} else {
				log.Printf("Audio unmuted")
			}
		}

		m.Pad.Update(m.InputMgr, m.Player)

		exit, bumped := m.Player.Update(dt, m.Grid)
		if bumped {
			m.Sounds.Play(audio.SoundBump)
		}
		if exit {
			log.Printf("Exit reached, regenerating maze")
			m.Sounds.Play(audio.SoundWin)
			m.Regenerate()
		}
	}

	return nil
}

// finishGeneration braids the carved maze, picks the exit and hands control
// to the player.
func (m *Manager) finishGeneration() {
	fraction := m.cfg.BraidMin + m.rng.Float64()*(m.cfg.BraidMax-m.cfg.BraidMin)
	removed, attempts := m.Gen.Braid(fraction)
	exit := m.Gen.ChooseExit()

	log.Printf("Maze generation done: braided %d walls in %d attempts, exit at (%d, %d)",
		removed, attempts, exit.Col, exit.Row)

	m.Sounds.Play(audio.SoundChime)
	m.State = StatePlaying
}

// Layout returns the game's logical screen size.
func (m *Manager) Layout(outsideWidth, outsideHeight int) (int, int) {
	return m.ScreenWidth, m.ScreenHeight
}
