package player

import (
	"math"
	"testing"

	"github.com/yanfrimmel/maze/internal/border"
	"github.com/yanfrimmel/maze/internal/maze"
)

// openGrid builds a grid with every internal wall removed.
func openGrid() *maze.Grid {
	g := maze.NewGrid(300, 200, 10)
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			tile := g.At(col, row)
			if col > 0 {
				tile.RemoveWall(border.Left)
			}
			if col < g.Cols-1 {
				tile.RemoveWall(border.Right)
			}
			if row > 0 {
				tile.RemoveWall(border.Top)
			}
			if row < g.Rows-1 {
				tile.RemoveWall(border.Bottom)
			}
		}
	}
	return g
}

func TestNewCentersOnTile(t *testing.T) {
	g := openGrid()
	p := New(g, 2, 3)

	x, y := g.TileScreenPos(2, 3)
	if p.X != x+g.TileSize/2 || p.Y != y+g.TileSize/2 {
		t.Errorf("Expected player at tile center (%v, %v), got (%v, %v)",
			x+g.TileSize/2, y+g.TileSize/2, p.X, p.Y)
	}
	if p.Speed != g.TileSize*4 {
		t.Errorf("Expected speed %v, got %v", g.TileSize*4, p.Speed)
	}
	if p.Radius != g.TileSize/4 {
		t.Errorf("Expected radius %v, got %v", g.TileSize/4, p.Radius)
	}
}

func TestMovementAcrossOpenEdge(t *testing.T) {
	g := openGrid()
	p := New(g, 1, 1)
	p.SetDirection(DirRight)

	// At 4 tiles/second a quarter second crosses one tile.
	for i := 0; i < 15; i++ {
		exit, blocked := p.Update(1.0/60.0, g)
		if exit || blocked {
			t.Fatalf("Unexpected exit=%v blocked=%v while crossing open edge", exit, blocked)
		}
	}
	if p.Col != 2 || p.Row != 1 {
		t.Errorf("Expected player on tile (2, 1), got (%d, %d)", p.Col, p.Row)
	}
	if p.Direction != DirRight {
		t.Error("Expected direction preserved while moving")
	}
}

func TestBlockedByWall(t *testing.T) {
	g := openGrid()
	g.At(1, 1).Walls = g.At(1, 1).Walls.With(border.Right)

	p := New(g, 1, 1)
	p.SetDirection(DirRight)

	startX := p.X
	_, blocked := p.Update(1.0/60.0, g)
	if !blocked {
		t.Fatal("Expected wall to block movement")
	}
	if p.Direction != DirNone {
		t.Error("Expected direction cleared after hitting a wall")
	}
	if p.Col != 1 || p.Row != 1 {
		t.Errorf("Expected player to stay on tile (1, 1), got (%d, %d)", p.Col, p.Row)
	}

	// A second update only reports the bump once.
	_, blocked = p.Update(1.0/60.0, g)
	if blocked {
		t.Error("Expected no repeated bump while idle")
	}
	if math.Abs(p.X-startX) > g.TileSize/2 {
		t.Errorf("Player drifted from %v to %v while blocked", startX, p.X)
	}
}

func TestRecenterWhenIdle(t *testing.T) {
	g := openGrid()
	p := New(g, 1, 1)

	x, y := g.TileScreenPos(1, 1)
	centerX := x + g.TileSize/2
	centerY := y + g.TileSize/2

	// Nudge off center, then let the idle lerp pull the player back.
	p.X = centerX + 8
	p.Y = centerY - 8
	for i := 0; i < 120; i++ {
		p.Update(1.0/60.0, g)
	}
	if math.Abs(p.X-centerX) > 0.1 || math.Abs(p.Y-centerY) > 0.1 {
		t.Errorf("Expected player recentered near (%v, %v), got (%v, %v)",
			centerX, centerY, p.X, p.Y)
	}
}

func TestExitDetection(t *testing.T) {
	g := openGrid()
	g.At(1, 1).MarkExit()

	p := New(g, 1, 1)
	exit, _ := p.Update(1.0/60.0, g)
	if !exit {
		t.Error("Expected exit reported when standing on the exit tile")
	}
}

func TestSetDirectionIgnoresNone(t *testing.T) {
	p := &Player{Direction: DirUp}
	p.SetDirection(DirNone)
	if p.Direction != DirUp {
		t.Error("Expected DirNone to be ignored")
	}
	p.Stop()
	if p.Direction != DirNone {
		t.Error("Expected Stop to clear the direction")
	}
}

func TestStaysInsideGridBounds(t *testing.T) {
	g := openGrid()
	// Outer boundary walls are still standing in openGrid, so walking left
	// from the first column blocks immediately.
	p := New(g, 0, 0)
	p.SetDirection(DirLeft)
	_, blocked := p.Update(1.0/60.0, g)
	if !blocked {
		t.Error("Expected boundary wall to block movement")
	}
}
