package ponyapi

// createRequest is the body of a maze creation call.
type createRequest struct {
	Width      int    `json:"maze-width"`
	Height     int    `json:"maze-height"`
	PlayerName string `json:"maze-player-name"`
	Difficulty int    `json:"difficulty"`
}

// createResponse carries the identifier of a freshly created maze.
type createResponse struct {
	MazeID string `json:"maze_id"`
}

// gameState carries the lifecycle portion of a state snapshot.
type gameState struct {
	State       string `json:"state"`
	StateResult string `json:"state-result"`
}

// stateResponse is one full state snapshot. Occupant positions arrive as
// single-element arrays of flat row-major cell indices.
type stateResponse struct {
	Pony      []int      `json:"pony"`
	Domokun   []int      `json:"domokun"`
	EndPoint  []int      `json:"end-point"`
	Size      []int      `json:"size"`
	Data      [][]string `json:"data"`
	GameState gameState  `json:"game-state"`
}

// moveRequest is the body of a move command.
type moveRequest struct {
	Direction string `json:"direction"`
}
