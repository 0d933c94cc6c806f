/*
Package solver picks the pony's next move.

It searches the maze graph breadth-first for the shortest path from the pony
to the end point, treating the domokun's current cell as removed from the
graph. When no such path exists it falls back to the neighbor that puts the
most Manhattan distance between the pony and the domokun. The search is
repeated from scratch on every cycle because the domokun moves between
cycles; the graph itself is never mutated.
*/
package solver

import (
	"errors"
	"fmt"

	"github.com/beka-birhanu/pony-rescuer/game/maze"
)

var (
	// ErrInvalidMove reports a planned step that is not a single-cell move in
	// one of the four directions. It indicates a corrupted graph or snapshot.
	ErrInvalidMove = errors.New("planned move is not a unit step")

	// ErrNoNeighbors reports a pony position with no open passage at all.
	ErrNoNeighbors = errors.New("pony has no reachable neighbor")
)

// Navigator exposes the neighbor query the search walks over.
type Navigator interface {
	Neighbors(maze.CellPosition) []maze.CellPosition
}

// Search runs a breadth-first search over nav from start to goal, skipping
// the blocked positions entirely. It returns the shortest path including
// both endpoints, or nil when the goal is unreachable. With nav returning
// neighbors in a fixed order the result is deterministic.
func Search(nav Navigator, start, goal maze.CellPosition, blocked ...maze.CellPosition) []maze.CellPosition {
	for _, b := range blocked {
		if start == b || goal == b {
			return nil
		}
	}
	if start == goal {
		return []maze.CellPosition{start}
	}

	visited := map[maze.CellPosition]bool{start: true}
	for _, b := range blocked {
		visited[b] = true
	}
	parent := make(map[maze.CellPosition]maze.CellPosition)
	queue := []maze.CellPosition{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, nbr := range nav.Neighbors(current) {
			if visited[nbr] {
				continue
			}
			visited[nbr] = true
			parent[nbr] = current
			if nbr == goal {
				return rebuild(parent, start, goal)
			}
			queue = append(queue, nbr)
		}
	}

	return nil
}

// rebuild walks the parent links back from goal to start and reverses them.
func rebuild(parent map[maze.CellPosition]maze.CellPosition, start, goal maze.CellPosition) []maze.CellPosition {
	path := []maze.CellPosition{goal}
	for pos := goal; pos != start; {
		pos = parent[pos]
		path = append(path, pos)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// ShortestPath returns the shortest path from the pony to the end point
// with the domokun's cell removed from the graph, or nil when the end point
// is unreachable.
func ShortestPath(m *maze.Maze) []maze.CellPosition {
	return Search(m, m.Pony(), m.Goal(), m.Domokun())
}

// EscapeMove selects the pony's neighbor with the largest Manhattan
// distance to the domokun. Ties go to the candidate iterated last, matching
// a stable sort keyed on distance. Used only when ShortestPath comes up
// empty.
func EscapeMove(m *maze.Maze) (maze.CellPosition, error) {
	candidates := m.Neighbors(m.Pony())
	if len(candidates) == 0 {
		return maze.CellPosition{}, fmt.Errorf("%w: at %v", ErrNoNeighbors, m.Pony())
	}

	domokun := m.Domokun()
	best := candidates[0]
	bestDist := manhattan(best, domokun)
	for _, candidate := range candidates[1:] {
		if dist := manhattan(candidate, domokun); dist >= bestDist {
			best, bestDist = candidate, dist
		}
	}
	return best, nil
}

func manhattan(a, b maze.CellPosition) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// NextDirection picks the pony's next move: the first step of the shortest
// path to the end point when one exists, otherwise the escape move. The
// chosen cell is mapped to a direction through the deltas in
// maze.Directions; any other delta fails with ErrInvalidMove.
func NextDirection(m *maze.Maze) (maze.Direction, error) {
	pony := m.Pony()

	var target maze.CellPosition
	if path := ShortestPath(m); len(path) > 1 {
		target = path[1]
	} else {
		escape, err := EscapeMove(m)
		if err != nil {
			return "", err
		}
		target = escape
	}

	delta := maze.CellPosition{Row: target.Row - pony.Row, Col: target.Col - pony.Col}
	for dir, d := range maze.Directions {
		if delta == d {
			return dir, nil
		}
	}
	return "", fmt.Errorf("%w: %v to %v", ErrInvalidMove, pony, target)
}
