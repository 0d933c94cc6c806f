package i

import (
	"context"

	"github.com/beka-birhanu/pony-rescuer/game/maze"
)

// MazeState is one raw state snapshot of a hosted maze, as served by the
// challenge protocol. Positions are flat row-major cell indices.
type MazeState struct {
	Width       int
	Height      int
	Pony        int
	Domokun     int
	Goal        int
	Descriptors [][]string
	State       maze.State
	StateResult string
}

// MazeSession creates, queries, and mutates maze state on a maze host. The
// solver core never performs I/O itself; all round trips go through this
// interface.
type MazeSession interface {
	// Create starts a new maze and returns its identifier.
	Create(ctx context.Context, width, height int, name string, difficulty int) (string, error)

	// State fetches the current snapshot of the maze.
	State(ctx context.Context, mazeID string) (*MazeState, error)

	// Move submits a direction command for the pony. The post-move snapshot
	// must be fetched with State afterwards.
	Move(ctx context.Context, mazeID string, direction maze.Direction) error

	// Print fetches a printable rendering of the maze.
	Print(ctx context.Context, mazeID string) (string, error)
}
