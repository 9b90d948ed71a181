package maze

import (
	"math/rand"

	"github.com/yanfrimmel/maze/internal/border"
)

// Generator carves a maze into a Grid with resumable iterative backtracking.
// The walk state lives on the generator so carving can be spread across
// frames and animated; Step picks up exactly where the previous call left
// off.
type Generator struct {
	grid    *Grid
	rng     *rand.Rand
	visited map[Position]bool
	stack   []Position
	curr    Position
	started bool
}

// NewGenerator creates a generator starting from a random tile.
func NewGenerator(grid *Grid, rng *rand.Rand) *Generator {
	return &Generator{
		grid:    grid,
		rng:     rng,
		visited: make(map[Position]bool, len(grid.Tiles)),
		curr: Position{
			Col: rng.Intn(grid.Cols),
			Row: rng.Intn(grid.Rows),
		},
	}
}

// Done reports whether every tile has been carved into.
func (g *Generator) Done() bool {
	return len(g.visited) == len(g.grid.Tiles)
}

// Step advances the backtracking walk by at most maxSteps steps, carving a
// passage to a random unvisited neighbor or backtracking when stuck.
// maxSteps == 0 runs the walk to completion. Returns Done().
func (g *Generator) Step(maxSteps int) bool {
	if !g.started {
		g.started = true
		g.stack = append(g.stack, g.curr)
		g.visited[g.curr] = true
	}

	unlimited := maxSteps == 0
	for steps := 0; !g.Done() && (unlimited || steps < maxSteps); steps++ {
		neighbors := g.unvisitedNeighbors(g.curr)
		if len(neighbors) > 0 {
			next := neighbors[g.rng.Intn(len(neighbors))]
			removeWallsBetween(g.grid, g.curr, next)
			g.stack = append(g.stack, g.curr)
			g.curr = next
			g.visited[next] = true
		} else if len(g.stack) > 0 {
			g.curr = g.stack[len(g.stack)-1]
			g.stack = g.stack[:len(g.stack)-1]
		} else {
			break
		}
	}

	return g.Done()
}

// Braid knocks down a fraction of the grid's internal walls at random,
// turning the perfect maze into one with loops. Each shared edge is removed
// at most once; attempts are capped at five times the internal wall count so
// a high fraction cannot spin forever. Returns how many walls were removed
// and how many attempts that took.
func (g *Generator) Braid(fraction float64) (removed, attempts int) {
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}

	total := g.grid.InternalWalls()
	target := int(float64(total) * fraction)
	maxAttempts := total * 5

	type connection struct {
		a, b Position
	}
	seen := make(map[connection]bool, target)

	// Directions indexed 0..3: right, bottom, left, top, with the wall edge
	// of the picked tile facing each.
	deltas := [4]Position{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}
	edges := [4]border.Mask{border.Right, border.Bottom, border.Left, border.Top}

	for removed < target && attempts < maxAttempts {
		attempts++

		pos := Position{Col: g.rng.Intn(g.grid.Cols), Row: g.rng.Intn(g.grid.Rows)}
		dir := g.rng.Intn(4)
		neighbor := Position{Col: pos.Col + deltas[dir].Col, Row: pos.Row + deltas[dir].Row}
		if !g.grid.Contains(neighbor.Col, neighbor.Row) {
			continue
		}

		conn := connection{a: pos, b: neighbor}
		if conn.b.Row < conn.a.Row || (conn.b.Row == conn.a.Row && conn.b.Col < conn.a.Col) {
			conn.a, conn.b = conn.b, conn.a
		}
		if seen[conn] {
			continue
		}

		if g.grid.At(pos.Col, pos.Row).HasWall(edges[dir]) {
			removeWallsBetween(g.grid, pos, neighbor)
			seen[conn] = true
			removed++
		}
	}

	return removed, attempts
}

// ChooseExit flags a random tile as the exit and returns its position.
func (g *Generator) ChooseExit() Position {
	pos := Position{Col: g.rng.Intn(g.grid.Cols), Row: g.rng.Intn(g.grid.Rows)}
	g.grid.At(pos.Col, pos.Row).MarkExit()
	return pos
}

// unvisitedNeighbors returns the unvisited orthogonal neighbors of pos,
// scanned up, down, left, right.
func (g *Generator) unvisitedNeighbors(pos Position) []Position {
	neighbors := make([]Position, 0, 4)

	if pos.Row > 0 && !g.visited[Position{pos.Col, pos.Row - 1}] {
		neighbors = append(neighbors, Position{pos.Col, pos.Row - 1})
	}
	if pos.Row < g.grid.Rows-1 && !g.visited[Position{pos.Col, pos.Row + 1}] {
		neighbors = append(neighbors, Position{pos.Col, pos.Row + 1})
	}
	if pos.Col > 0 && !g.visited[Position{pos.Col - 1, pos.Row}] {
		neighbors = append(neighbors, Position{pos.Col - 1, pos.Row})
	}
	if pos.Col < g.grid.Cols-1 && !g.visited[Position{pos.Col + 1, pos.Row}] {
		neighbors = append(neighbors, Position{pos.Col + 1, pos.Row})
	}

	return neighbors
}

// removeWallsBetween clears both sides of the wall shared by two adjacent
// tiles.
func removeWallsBetween(grid *Grid, a, b Position) {
	if a.Row == b.Row {
		if a.Col < b.Col {
			grid.At(a.Col, a.Row).RemoveWall(border.Right)
			grid.At(b.Col, b.Row).RemoveWall(border.Left)
		} else {
			grid.At(a.Col, a.Row).RemoveWall(border.Left)
			grid.At(b.Col, b.Row).RemoveWall(border.Right)
		}
	} else {
		if a.Row < b.Row {
			grid.At(a.Col, a.Row).RemoveWall(border.Bottom)
			grid.At(b.Col, b.Row).RemoveWall(border.Top)
		} else {
			grid.At(a.Col, a.Row).RemoveWall(border.Top)
			grid.At(b.Col, b.Row).RemoveWall(border.Bottom)
		}
	}
}
