// Package mazeapi serves the pony challenge wire protocol on top of the
// local arena, so the solver can play against the same endpoints offline.
package mazeapi

// CreateRequest represents a request to host a new maze.
type CreateRequest struct {
	Width      int    `json:"maze-width" binding:"required"`
	Height     int    `json:"maze-height" binding:"required"`
	PlayerName string `json:"maze-player-name" binding:"required"`
	Difficulty int    `json:"difficulty"`
}

// CreateResponse carries the identifier of the hosted maze.
type CreateResponse struct {
	MazeID string `json:"maze_id"`
}

// GameStateResponse carries the lifecycle portion of a snapshot.
type GameStateResponse struct {
	State       string `json:"state"`
	StateResult string `json:"state-result"`
}

// StateResponse represents one full snapshot of a hosted maze. Occupant
// positions are single-element arrays of flat row-major cell indices.
type StateResponse struct {
	Pony      []int             `json:"pony"`
	Domokun   []int             `json:"domokun"`
	EndPoint  []int             `json:"end-point"`
	Size      []int             `json:"size"`
	Data      [][]string        `json:"data"`
	MazeID    string            `json:"maze_id"`
	GameState GameStateResponse `json:"game-state"`
}

// MoveRequest represents a direction command for the pony.
type MoveRequest struct {
	Direction string `json:"direction" binding:"required"`
}
