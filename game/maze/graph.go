/*
Package maze provides the navigable representation of a challenge maze.

It decodes the flat, row-major wall descriptors served by the challenge API
into an undirected adjacency graph over cell positions, and wraps that graph
together with the mutable occupant state (pony, domokun, end point) behind
neighbor and refresh queries. The graph is built once per maze and never
changes afterwards; only the occupants move.
*/
package maze

import (
	"errors"
	"fmt"
)

// Direction names a side of a cell. The values match the challenge wire
// protocol and are sent verbatim as move commands.
type Direction string

const (
	North Direction = "north"
	South Direction = "south"
	East  Direction = "east"
	West  Direction = "west"
)

// Directions maps each direction to its position delta.
var Directions = map[Direction]CellPosition{
	North: {Row: -1, Col: 0},
	South: {Row: 1, Col: 0},
	East:  {Row: 0, Col: 1},
	West:  {Row: 0, Col: -1},
}

// directionOrder fixes the neighbor iteration order so path tie-breaks are
// reproducible across runs.
var directionOrder = [4]Direction{North, South, East, West}

var (
	ErrCellCountMismatch = errors.New("wall descriptor count does not match maze dimensions")
	ErrInvalidDimensions = errors.New("invalid maze dimensions")
)

// CellPosition identifies a cell by its row and column. It is a value type
// and doubles as the graph vertex identifier.
type CellPosition struct {
	Row int
	Col int
}

// Add returns the position shifted by the given delta.
func (p CellPosition) Add(delta CellPosition) CellPosition {
	return CellPosition{Row: p.Row + delta.Row, Col: p.Col + delta.Col}
}

// Graph is an undirected adjacency structure over cell positions. An edge
// between two grid-adjacent cells exists iff the wall on their shared side
// is open.
type Graph struct {
	width     int
	height    int
	adjacency map[CellPosition]map[CellPosition]struct{}
}

// DecodeGraph converts the flat row-major sequence of wall descriptors into
// a Graph. Each cell declares edges only through its west and north sides;
// the matching east and south sides of the neighboring cells are implied,
// so every shared wall is processed once. Descriptors whose open side would
// point outside the grid are ignored rather than decoded into an
// out-of-bounds neighbor.
func DecodeGraph(width, height int, descriptors [][]string) (*Graph, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if len(descriptors) != width*height {
		return nil, fmt.Errorf("%w: got %d cells for a %dx%d maze", ErrCellCountMismatch, len(descriptors), width, height)
	}

	g := &Graph{
		width:     width,
		height:    height,
		adjacency: make(map[CellPosition]map[CellPosition]struct{}, width*height),
	}

	for idx, descriptor := range descriptors {
		cell := CellFromDescriptor(descriptor)
		pos := CellPosition{Row: idx / width, Col: idx % width}
		if !cell.WestWall {
			g.connect(pos, CellPosition{Row: pos.Row, Col: pos.Col - 1})
		}
		if !cell.NorthWall {
			g.connect(pos, CellPosition{Row: pos.Row - 1, Col: pos.Col})
		}
	}

	return g, nil
}

// connect records a bidirectional edge. Edges touching positions outside
// the grid are dropped, which keeps malformed boundary descriptors from
// corrupting the graph.
func (g *Graph) connect(a, b CellPosition) {
	if !g.InBound(a.Row, a.Col) || !g.InBound(b.Row, b.Col) {
		return
	}
	if g.adjacency[a] == nil {
		g.adjacency[a] = make(map[CellPosition]struct{}, 4)
	}
	if g.adjacency[b] == nil {
		g.adjacency[b] = make(map[CellPosition]struct{}, 4)
	}
	g.adjacency[a][b] = struct{}{}
	g.adjacency[b][a] = struct{}{}
}

// Width returns the number of columns in the grid.
func (g *Graph) Width() int { return g.width }

// Height returns the number of rows in the grid.
func (g *Graph) Height() int { return g.height }

// InBound checks whether the given row and column fall inside the grid.
func (g *Graph) InBound(row, col int) bool {
	return row >= 0 && row < g.height && col >= 0 && col < g.width
}

// Neighbors returns the positions reachable from pos in one step, in the
// fixed north, south, east, west order. A position with no recorded edges
// yields an empty slice.
func (g *Graph) Neighbors(pos CellPosition) []CellPosition {
	edges := g.adjacency[pos]
	if len(edges) == 0 {
		return nil
	}
	result := make([]CellPosition, 0, len(edges))
	for _, dir := range directionOrder {
		candidate := pos.Add(Directions[dir])
		if _, ok := edges[candidate]; ok {
			result = append(result, candidate)
		}
	}
	return result
}

// Adjacent reports whether an open passage connects a and b.
func (g *Graph) Adjacent(a, b CellPosition) bool {
	_, ok := g.adjacency[a][b]
	return ok
}
