/*
Package wilson generates random rectangular mazes with Wilson's algorithm.

Every cell starts fully walled; loop-erased random walks carve open passages
until the whole grid is connected, which guarantees a perfect maze (exactly
one path between any two cells). The result is a wall grid in the same shape
the challenge wire protocol uses, so generated mazes can be served to the
same solver that plays the remote challenge.
*/
package wilson

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/beka-birhanu/pony-rescuer/game/maze"
)

const maxMazeDimension = 25

// Maze is a generated rectangular maze of walled cells.
type Maze struct {
	Width  int
	Height int
	Grid   [][]*maze.Cell
}

type move struct {
	from      maze.CellPosition
	to        maze.CellPosition
	direction maze.Direction
}

// New initializes a new maze of the given dimensions and generates its layout.
func New(width, height int) (*Maze, error) {
	if min(width, height) <= 0 || max(width, height) > maxMazeDimension {
		return nil, fmt.Errorf("invalid maze dimensions: %dx%d", width, height)
	}

	grid := make([][]*maze.Cell, height)
	for i := range grid {
		grid[i] = make([]*maze.Cell, width)
		for j := range grid[i] {
			grid[i][j] = &maze.Cell{
				NorthWall: true,
				SouthWall: true,
				EastWall:  true,
				WestWall:  true,
			}
		}
	}

	m := &Maze{
		Width:  width,
		Height: height,
		Grid:   grid,
	}
	m.generateMaze()
	return m, nil
}

// randomCellPosition generates a random position within the maze.
func (m *Maze) randomCellPosition() maze.CellPosition {
	return maze.CellPosition{Row: rand.Intn(m.Height), Col: rand.Intn(m.Width)}
}

// randomUnvisitedCellPosition selects a random position that has not been visited.
func (m *Maze) randomUnvisitedCellPosition(visited map[maze.CellPosition]struct{}) maze.CellPosition {
	for {
		pos := m.randomCellPosition()
		if _, included := visited[pos]; !included {
			return pos
		}
	}
}

// neighbors finds all grid-adjacent positions of a cell, walls ignored.
func (m *Maze) neighbors(pos maze.CellPosition) []move {
	var result []move
	for dir, delta := range maze.Directions {
		neighbor := pos.Add(delta)
		if neighbor.Row >= 0 && neighbor.Row < m.Height && neighbor.Col >= 0 && neighbor.Col < m.Width {
			result = append(result, move{from: pos, to: neighbor, direction: dir})
		}
	}
	return result
}

// openWall removes the wall between two adjacent cells in the specified direction.
func (m *Maze) openWall(mv move) {
	switch mv.direction {
	case maze.North:
		m.Grid[mv.from.Row][mv.from.Col].NorthWall = false
		m.Grid[mv.to.Row][mv.to.Col].SouthWall = false
	case maze.South:
		m.Grid[mv.from.Row][mv.from.Col].SouthWall = false
		m.Grid[mv.to.Row][mv.to.Col].NorthWall = false
	case maze.East:
		m.Grid[mv.from.Row][mv.from.Col].EastWall = false
		m.Grid[mv.to.Row][mv.to.Col].WestWall = false
	case maze.West:
		m.Grid[mv.from.Row][mv.from.Col].WestWall = false
		m.Grid[mv.to.Row][mv.to.Col].EastWall = false
	}
}

// randomWalk performs a loop-erased random walk starting from an unvisited cell.
func (m *Maze) randomWalk(visited map[maze.CellPosition]struct{}) map[maze.CellPosition]move {
	start := m.randomUnvisitedCellPosition(visited)
	visits := make(map[maze.CellPosition]move)
	cell := start

	for {
		neighbors := m.neighbors(cell)
		randomNeighbor := neighbors[rand.Intn(len(neighbors))]
		visits[cell] = randomNeighbor
		if _, included := visited[randomNeighbor.to]; included {
			break
		}
		cell = randomNeighbor.to
	}

	return visits
}

// generateMaze carves the maze by repeated loop-erased random walks.
func (m *Maze) generateMaze() {
	visited := make(map[maze.CellPosition]struct{})
	visited[m.randomCellPosition()] = struct{}{}

	for len(visited) < m.Width*m.Height {
		for cell, mv := range m.randomWalk(visited) {
			m.openWall(mv)
			visited[cell] = struct{}{}
		}
	}
}

// Descriptors returns the wall grid as flat row-major wire descriptors.
func (m *Maze) Descriptors() [][]string {
	descriptors := make([][]string, 0, m.Width*m.Height)
	for row := 0; row < m.Height; row++ {
		for col := 0; col < m.Width; col++ {
			descriptors = append(descriptors, m.Grid[row][col].Descriptor())
		}
	}
	return descriptors
}

// Render provides a textual representation of the maze, drawing the given
// marker runes inside their cells.
func (m *Maze) Render(markers map[maze.CellPosition]rune) string {
	var output strings.Builder

	// Top boundary
	output.WriteString("+" + strings.Repeat("---+", m.Width) + "\n")

	for row := 0; row < m.Height; row++ {
		// Cell rows
		cellRow := "|"
		for col := 0; col < m.Width; col++ {
			cell := m.Grid[row][col]
			body := "   "
			if marker, ok := markers[maze.CellPosition{Row: row, Col: col}]; ok {
				body = " " + string(marker) + " "
			}
			if !cell.EastWall {
				cellRow += body + " "
			} else {
				cellRow += body + "|"
			}
		}
		output.WriteString(cellRow + "\n")

		// Wall rows
		wallRow := "+"
		for col := 0; col < m.Width; col++ {
			if !m.Grid[row][col].SouthWall {
				wallRow += "   +"
			} else {
				wallRow += "---+"
			}
		}
		output.WriteString(wallRow + "\n")
	}

	return output.String()
}

// String provides a textual representation of the maze without occupants.
func (m *Maze) String() string {
	return m.Render(nil)
}
