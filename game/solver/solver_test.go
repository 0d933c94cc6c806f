package solver

import (
	"testing"

	"github.com/beka-birhanu/pony-rescuer/game/maze"
	"github.com/beka-birhanu/pony-rescuer/game/wilson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// openGrid builds descriptors for a width x height grid with walls only on
// the outer boundary.
func openGrid(width, height int) [][]string {
	descriptors := make([][]string, 0, width*height)
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			var walls []string
			if row == 0 {
				walls = append(walls, "north")
			}
			if row == height-1 {
				walls = append(walls, "south")
			}
			if col == 0 {
				walls = append(walls, "west")
			}
			if col == width-1 {
				walls = append(walls, "east")
			}
			descriptors = append(descriptors, walls)
		}
	}
	return descriptors
}

func newMaze(t *testing.T, width, height int, descriptors [][]string, s maze.Snapshot) *maze.Maze {
	t.Helper()
	m, err := maze.New(width, height, descriptors)
	require.NoError(t, err)
	m.Refresh(s)
	return m
}

func TestShortestPath(t *testing.T) {
	t.Run("detours around the domokun on an open grid", func(t *testing.T) {
		m := newMaze(t, 3, 3, openGrid(3, 3), maze.Snapshot{
			Pony:    maze.CellPosition{Row: 0, Col: 0},
			Domokun: maze.CellPosition{Row: 1, Col: 1},
			Goal:    maze.CellPosition{Row: 2, Col: 2},
			State:   maze.StateActive,
		})

		path := ShortestPath(m)
		require.Len(t, path, 5, "expected a 4-edge detour")
		assert.Equal(t, m.Pony(), path[0])
		assert.Equal(t, m.Goal(), path[4])
		assert.NotContains(t, path, m.Domokun())
		for i := 1; i < len(path); i++ {
			dRow := path[i].Row - path[i-1].Row
			dCol := path[i].Col - path[i-1].Col
			assert.Equal(t, 1, dRow*dRow+dCol*dCol, "step %v->%v is not a unit step", path[i-1], path[i])
		}
	})

	t.Run("empty when the only route is blocked", func(t *testing.T) {
		m := newMaze(t, 2, 1, openGrid(2, 1), maze.Snapshot{
			Pony:    maze.CellPosition{Row: 0, Col: 0},
			Domokun: maze.CellPosition{Row: 0, Col: 1},
			Goal:    maze.CellPosition{Row: 0, Col: 1},
			State:   maze.StateActive,
		})
		assert.Empty(t, ShortestPath(m))
	})

	t.Run("single element path when already at the goal", func(t *testing.T) {
		m := newMaze(t, 3, 3, openGrid(3, 3), maze.Snapshot{
			Pony:    maze.CellPosition{Row: 2, Col: 2},
			Domokun: maze.CellPosition{Row: 0, Col: 0},
			Goal:    maze.CellPosition{Row: 2, Col: 2},
			State:   maze.StateActive,
		})
		assert.Equal(t, []maze.CellPosition{{Row: 2, Col: 2}}, ShortestPath(m))
	})

	t.Run("deterministic for a fixed maze", func(t *testing.T) {
		m := newMaze(t, 4, 4, openGrid(4, 4), maze.Snapshot{
			Pony:    maze.CellPosition{Row: 0, Col: 0},
			Domokun: maze.CellPosition{Row: 2, Col: 1},
			Goal:    maze.CellPosition{Row: 3, Col: 3},
			State:   maze.StateActive,
		})
		first := ShortestPath(m)
		for run := 0; run < 5; run++ {
			assert.Equal(t, first, ShortestPath(m))
		}
	})

	t.Run("matches exhaustive search on generated mazes", func(t *testing.T) {
		for trial := 0; trial < 10; trial++ {
			grid, err := wilson.New(6, 6)
			require.NoError(t, err)

			m := newMaze(t, 6, 6, grid.Descriptors(), maze.Snapshot{
				Pony:    maze.CellPosition{Row: 0, Col: 0},
				Domokun: maze.CellPosition{Row: 3, Col: 3},
				Goal:    maze.CellPosition{Row: 5, Col: 5},
				State:   maze.StateActive,
			})

			path := ShortestPath(m)
			want, found := exhaustiveDistance(m)
			if !found {
				assert.Empty(t, path)
				continue
			}
			require.NotEmpty(t, path)
			assert.Equal(t, want, len(path)-1, "path edge count differs from exhaustive search")
		}
	})
}

// exhaustiveDistance finds the true shortest distance from pony to goal with
// the domokun removed, by trying every simple path. Independent of the BFS
// under test; only usable on small mazes.
func exhaustiveDistance(m *maze.Maze) (int, bool) {
	best := -1
	visited := map[maze.CellPosition]bool{m.Domokun(): true}

	var walk func(pos maze.CellPosition, depth int)
	walk = func(pos maze.CellPosition, depth int) {
		if pos == m.Goal() {
			if best == -1 || depth < best {
				best = depth
			}
			return
		}
		visited[pos] = true
		for _, nbr := range m.Neighbors(pos) {
			if !visited[nbr] {
				walk(nbr, depth+1)
			}
		}
		visited[pos] = false
	}

	if m.Pony() != m.Domokun() {
		walk(m.Pony(), 0)
	}
	return best, best != -1
}

func TestEscapeMove(t *testing.T) {
	t.Run("selects the only neighbor", func(t *testing.T) {
		m := newMaze(t, 2, 1, openGrid(2, 1), maze.Snapshot{
			Pony:    maze.CellPosition{Row: 0, Col: 0},
			Domokun: maze.CellPosition{Row: 0, Col: 1},
			Goal:    maze.CellPosition{Row: 0, Col: 1},
			State:   maze.StateActive,
		})

		move, err := EscapeMove(m)
		require.NoError(t, err)
		assert.Equal(t, maze.CellPosition{Row: 0, Col: 1}, move)
	})

	t.Run("maximizes distance to the domokun", func(t *testing.T) {
		m := newMaze(t, 3, 1, openGrid(3, 1), maze.Snapshot{
			Pony:    maze.CellPosition{Row: 0, Col: 1},
			Domokun: maze.CellPosition{Row: 0, Col: 2},
			Goal:    maze.CellPosition{Row: 0, Col: 2},
			State:   maze.StateActive,
		})

		move, err := EscapeMove(m)
		require.NoError(t, err)
		assert.Equal(t, maze.CellPosition{Row: 0, Col: 0}, move)
	})

	t.Run("ties go to the candidate iterated last", func(t *testing.T) {
		// Goal and domokun share (0,0), so no path exists. South (2,1) and
		// east (1,2) are both 3 away from the domokun; east is iterated
		// later in the fixed neighbor order.
		m := newMaze(t, 3, 3, openGrid(3, 3), maze.Snapshot{
			Pony:    maze.CellPosition{Row: 1, Col: 1},
			Domokun: maze.CellPosition{Row: 0, Col: 0},
			Goal:    maze.CellPosition{Row: 0, Col: 0},
			State:   maze.StateActive,
		})

		move, err := EscapeMove(m)
		require.NoError(t, err)
		assert.Equal(t, maze.CellPosition{Row: 1, Col: 2}, move)
	})

	t.Run("returns an actual neighbor", func(t *testing.T) {
		m := newMaze(t, 3, 3, openGrid(3, 3), maze.Snapshot{
			Pony:    maze.CellPosition{Row: 0, Col: 0},
			Domokun: maze.CellPosition{Row: 2, Col: 2},
			Goal:    maze.CellPosition{Row: 2, Col: 2},
			State:   maze.StateActive,
		})

		move, err := EscapeMove(m)
		require.NoError(t, err)
		assert.Contains(t, m.Neighbors(m.Pony()), move)
	})

	t.Run("fails when the pony is walled in", func(t *testing.T) {
		descriptors := [][]string{
			{"north", "west", "south", "east"},
			{"north", "south", "east", "west"},
		}
		m := newMaze(t, 2, 1, descriptors, maze.Snapshot{
			Pony:    maze.CellPosition{Row: 0, Col: 0},
			Domokun: maze.CellPosition{Row: 0, Col: 1},
			Goal:    maze.CellPosition{Row: 0, Col: 1},
			State:   maze.StateActive,
		})

		_, err := EscapeMove(m)
		assert.ErrorIs(t, err, ErrNoNeighbors)
	})
}

func TestNextDirection(t *testing.T) {
	t.Run("follows the shortest path", func(t *testing.T) {
		m := newMaze(t, 3, 3, openGrid(3, 3), maze.Snapshot{
			Pony:    maze.CellPosition{Row: 0, Col: 0},
			Domokun: maze.CellPosition{Row: 1, Col: 1},
			Goal:    maze.CellPosition{Row: 2, Col: 2},
			State:   maze.StateActive,
		})

		direction, err := NextDirection(m)
		require.NoError(t, err)

		// The chosen direction must land exactly on the path's second cell.
		path := ShortestPath(m)
		require.Greater(t, len(path), 1)
		assert.Equal(t, path[1], m.Pony().Add(maze.Directions[direction]))
	})

	t.Run("maps deltas onto all four directions", func(t *testing.T) {
		center := maze.CellPosition{Row: 1, Col: 1}
		cases := map[maze.Direction]maze.CellPosition{
			maze.North: {Row: 0, Col: 1},
			maze.South: {Row: 2, Col: 1},
			maze.East:  {Row: 1, Col: 2},
			maze.West:  {Row: 1, Col: 0},
		}
		for want, goal := range cases {
			m := newMaze(t, 3, 3, openGrid(3, 3), maze.Snapshot{
				Pony:    center,
				Domokun: maze.CellPosition{Row: 2, Col: 2},
				Goal:    goal,
				State:   maze.StateActive,
			})
			direction, err := NextDirection(m)
			require.NoError(t, err)
			assert.Equal(t, want, direction)
		}
	})

	t.Run("falls back to the escape move", func(t *testing.T) {
		m := newMaze(t, 2, 1, openGrid(2, 1), maze.Snapshot{
			Pony:    maze.CellPosition{Row: 0, Col: 0},
			Domokun: maze.CellPosition{Row: 0, Col: 1},
			Goal:    maze.CellPosition{Row: 0, Col: 1},
			State:   maze.StateActive,
		})

		direction, err := NextDirection(m)
		require.NoError(t, err)
		assert.Equal(t, maze.East, direction)
	})

	t.Run("fails when no move exists at all", func(t *testing.T) {
		descriptors := [][]string{
			{"north", "west", "south", "east"},
			{"north", "south", "east", "west"},
		}
		m := newMaze(t, 2, 1, descriptors, maze.Snapshot{
			Pony:    maze.CellPosition{Row: 0, Col: 0},
			Domokun: maze.CellPosition{Row: 0, Col: 1},
			Goal:    maze.CellPosition{Row: 0, Col: 1},
			State:   maze.StateActive,
		})

		_, err := NextDirection(m)
		assert.ErrorIs(t, err, ErrNoNeighbors)
	})
}
