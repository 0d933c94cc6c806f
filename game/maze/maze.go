package maze

import "fmt"

// State is the lifecycle status of a maze.
type State string

const (
	// StateActive means play continues.
	StateActive State = "active"
	// StateWon means the pony reached the end point.
	StateWon State = "won"
	// StateOver means the domokun caught the pony.
	StateOver State = "over"
)

// Snapshot is the mutable occupant state of a maze at one point in time.
type Snapshot struct {
	Pony    CellPosition
	Domokun CellPosition
	Goal    CellPosition
	State   State
}

// Maze wraps the static adjacency graph of a maze together with the latest
// occupant snapshot. The graph never changes after construction; Refresh
// only overwrites the snapshot.
type Maze struct {
	graph    *Graph
	snapshot Snapshot
}

// New decodes the wall descriptors into a graph and returns a Maze holding
// it. The occupant snapshot starts zeroed; call Refresh before planning.
func New(width, height int, descriptors [][]string) (*Maze, error) {
	graph, err := DecodeGraph(width, height, descriptors)
	if err != nil {
		return nil, err
	}
	return &Maze{graph: graph}, nil
}

// Refresh overwrites the occupant snapshot. The graph is untouched.
func (m *Maze) Refresh(s Snapshot) {
	m.snapshot = s
}

// RefreshFromIndices overwrites the occupant snapshot from the flat
// row-major cell indices used by the wire protocol.
func (m *Maze) RefreshFromIndices(pony, domokun, goal int, state State) error {
	for _, idx := range []int{pony, domokun, goal} {
		if idx < 0 || idx >= m.graph.width*m.graph.height {
			return fmt.Errorf("cell index %d is out of bounds for a %dx%d maze", idx, m.graph.width, m.graph.height)
		}
	}
	m.Refresh(Snapshot{
		Pony:    m.Locate(pony),
		Domokun: m.Locate(domokun),
		Goal:    m.Locate(goal),
		State:   state,
	})
	return nil
}

// Locate converts a flat row-major cell index to a position.
func (m *Maze) Locate(index int) CellPosition {
	return CellPosition{Row: index / m.graph.width, Col: index % m.graph.width}
}

// Neighbors returns the positions reachable from pos in one step.
func (m *Maze) Neighbors(pos CellPosition) []CellPosition {
	return m.graph.Neighbors(pos)
}

// Width returns the number of columns in the maze.
func (m *Maze) Width() int { return m.graph.width }

// Height returns the number of rows in the maze.
func (m *Maze) Height() int { return m.graph.height }

// Pony returns the pony's current position.
func (m *Maze) Pony() CellPosition { return m.snapshot.Pony }

// Domokun returns the domokun's current position.
func (m *Maze) Domokun() CellPosition { return m.snapshot.Domokun }

// Goal returns the end point position.
func (m *Maze) Goal() CellPosition { return m.snapshot.Goal }

// State returns the current lifecycle status.
func (m *Maze) State() State { return m.snapshot.State }
