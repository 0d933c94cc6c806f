package service

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"

	"github.com/beka-birhanu/pony-rescuer/game/maze"
	"github.com/beka-birhanu/pony-rescuer/game/solver"
	"github.com/beka-birhanu/pony-rescuer/game/wilson"
	"github.com/beka-birhanu/pony-rescuer/service/i"
	"github.com/google/uuid"
)

// Arena-related errors.
var (
	ErrMazeNotFound      = errors.New("maze not found")
	ErrInvalidDifficulty = errors.New("difficulty out of range")
	ErrInvalidDimension  = errors.New("maze dimension out of range")
)

// Arena constants mirroring the challenge protocol's supported ranges.
const (
	minDimension  = 15
	maxDimension  = 25
	minDifficulty = 0
	maxDifficulty = 3

	resultMoveAccepted = "Move accepted"
	resultMoveBlocked  = "Can't walk in there"
	resultWon          = "You won. Game ended"
	resultOver         = "You lost. Killed by monster"
)

// hostedMaze is one maze instance hosted by the arena.
type hostedMaze struct {
	playerName  string
	difficulty  int
	grid        *wilson.Maze
	graph       *maze.Graph
	pony        maze.CellPosition
	domokun     maze.CellPosition
	goal        maze.CellPosition
	state       maze.State
	stateResult string
	sync.RWMutex
}

// Arena hosts maze instances speaking the same state shapes as the remote
// challenge, so the solver can play offline. The domokun chases the pony
// along its own shortest path with probability difficulty/3 per turn; at
// difficulty 0 it never moves.
type Arena struct {
	mazes  map[uuid.UUID]*hostedMaze
	logger i.Logger
	mu     sync.RWMutex
}

// NewArena creates an empty Arena.
func NewArena(logger i.Logger) (*Arena, error) {
	if logger == nil {
		return nil, errors.New("logger must not be nil")
	}
	return &Arena{
		mazes:  make(map[uuid.UUID]*hostedMaze),
		logger: logger,
	}, nil
}

// Create generates a new maze instance and returns its identifier. The
// pony starts on a random cell, the end point on a cell farthest from it,
// and the domokun on a random cell distinct from both.
func (a *Arena) Create(width, height int, name string, difficulty int) (uuid.UUID, error) {
	if difficulty < minDifficulty || difficulty > maxDifficulty {
		return uuid.Nil, fmt.Errorf("%w: %d", ErrInvalidDifficulty, difficulty)
	}
	for _, dim := range []int{width, height} {
		if dim < minDimension || dim > maxDimension {
			return uuid.Nil, fmt.Errorf("%w: %d", ErrInvalidDimension, dim)
		}
	}

	grid, err := wilson.New(width, height)
	if err != nil {
		return uuid.Nil, err
	}
	graph, err := maze.DecodeGraph(width, height, grid.Descriptors())
	if err != nil {
		return uuid.Nil, err
	}

	pony := maze.CellPosition{Row: rand.Intn(height), Col: rand.Intn(width)}
	goal := farthestFrom(graph, pony)
	domokun := pony
	for domokun == pony || domokun == goal {
		domokun = maze.CellPosition{Row: rand.Intn(height), Col: rand.Intn(width)}
	}

	id := uuid.New()
	instance := &hostedMaze{
		playerName:  name,
		difficulty:  difficulty,
		grid:        grid,
		graph:       graph,
		pony:        pony,
		domokun:     domokun,
		goal:        goal,
		state:       maze.StateActive,
		stateResult: "Maze created",
	}

	a.mu.Lock()
	a.mazes[id] = instance
	a.mu.Unlock()

	a.logger.Info(fmt.Sprintf("hosting %dx%d maze %s for %s at difficulty %d", width, height, id, name, difficulty))
	return id, nil
}

// State returns the current snapshot of a hosted maze.
func (a *Arena) State(id uuid.UUID) (*i.MazeState, error) {
	instance, err := a.instance(id)
	if err != nil {
		return nil, err
	}

	instance.RLock()
	defer instance.RUnlock()
	return &i.MazeState{
		Width:       instance.grid.Width,
		Height:      instance.grid.Height,
		Pony:        instance.index(instance.pony),
		Domokun:     instance.index(instance.domokun),
		Goal:        instance.index(instance.goal),
		Descriptors: instance.grid.Descriptors(),
		State:       instance.state,
		StateResult: instance.stateResult,
	}, nil
}

// Move applies one pony move to a hosted maze and advances the domokun.
// Moves into walls are rejected without ending the game; the returned
// message mirrors the challenge protocol's state-result.
func (a *Arena) Move(id uuid.UUID, direction maze.Direction) (string, error) {
	delta, ok := maze.Directions[direction]
	if !ok {
		return "", fmt.Errorf("unknown direction %q", direction)
	}

	instance, err := a.instance(id)
	if err != nil {
		return "", err
	}

	instance.Lock()
	defer instance.Unlock()

	if instance.state != maze.StateActive {
		return instance.stateResult, nil
	}

	target := instance.pony.Add(delta)
	if !instance.graph.Adjacent(instance.pony, target) {
		instance.stateResult = resultMoveBlocked
		return instance.stateResult, nil
	}

	instance.pony = target
	if instance.pony == instance.goal {
		instance.state = maze.StateWon
		instance.stateResult = resultWon
		return instance.stateResult, nil
	}

	instance.stepDomokun()
	if instance.domokun == instance.pony {
		instance.state = maze.StateOver
		instance.stateResult = resultOver
		return instance.stateResult, nil
	}

	instance.stateResult = resultMoveAccepted
	return instance.stateResult, nil
}

// Print returns a printable rendering of a hosted maze with its occupants.
func (a *Arena) Print(id uuid.UUID) (string, error) {
	instance, err := a.instance(id)
	if err != nil {
		return "", err
	}

	instance.RLock()
	defer instance.RUnlock()

	markers := map[maze.CellPosition]rune{
		instance.goal:    'E',
		instance.pony:    'P',
		instance.domokun: 'D',
	}
	return instance.grid.Render(markers), nil
}

func (a *Arena) instance(id uuid.UUID) (*hostedMaze, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	instance, ok := a.mazes[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMazeNotFound, id)
	}
	return instance, nil
}

// farthestFrom finds a cell with maximal graph distance from start, by
// flood filling and keeping the last cell dequeued.
func farthestFrom(g *maze.Graph, start maze.CellPosition) maze.CellPosition {
	visited := map[maze.CellPosition]bool{start: true}
	queue := []maze.CellPosition{start}
	farthest := start
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		farthest = current
		for _, nbr := range g.Neighbors(current) {
			if !visited[nbr] {
				visited[nbr] = true
				queue = append(queue, nbr)
			}
		}
	}
	return farthest
}

// stepDomokun advances the domokun one cell toward the pony along the
// shortest path, with probability difficulty/3. Must be called with the
// instance lock held.
func (h *hostedMaze) stepDomokun() {
	if h.difficulty == 0 || rand.Float64() >= float64(h.difficulty)/float64(maxDifficulty) {
		return
	}
	chase := solver.Search(h.graph, h.domokun, h.pony)
	if len(chase) > 1 {
		h.domokun = chase[1]
	}
}

// index converts a position to the flat row-major cell index.
func (h *hostedMaze) index(pos maze.CellPosition) int {
	return pos.Row*h.grid.Width + pos.Col
}
