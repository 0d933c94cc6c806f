// Package service hosts the application services: the rescue game loop
// driving the solver against a maze session, and the arena hosting local
// maze instances.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/beka-birhanu/pony-rescuer/game/maze"
	"github.com/beka-birhanu/pony-rescuer/game/solver"
	"github.com/beka-birhanu/pony-rescuer/service/i"
)

// Rescue drives one pony through a maze: render the current state, plan a
// move, submit it, refresh, until the game leaves the active state.
type Rescue struct {
	session  i.MazeSession
	renderer i.Renderer
	logger   i.Logger
}

// RescueConfig holds the collaborators for creating a Rescue.
type RescueConfig struct {
	Session  i.MazeSession
	Renderer i.Renderer
	Logger   i.Logger
}

// NewRescue creates a Rescue from the given configuration.
func NewRescue(cfg RescueConfig) (*Rescue, error) {
	if cfg.Session == nil {
		return nil, errors.New("maze session must not be nil")
	}
	if cfg.Renderer == nil {
		return nil, errors.New("renderer must not be nil")
	}
	if cfg.Logger == nil {
		return nil, errors.New("logger must not be nil")
	}
	return &Rescue{
		session:  cfg.Session,
		renderer: cfg.Renderer,
		logger:   cfg.Logger,
	}, nil
}

// Run creates a maze and plays it to completion, returning the final
// lifecycle state.
func (r *Rescue) Run(ctx context.Context, width, height int, name string, difficulty int) (maze.State, error) {
	mazeID, err := r.session.Create(ctx, width, height, name, difficulty)
	if err != nil {
		return "", err
	}

	state, err := r.session.State(ctx, mazeID)
	if err != nil {
		return "", err
	}

	m, err := maze.New(state.Width, state.Height, state.Descriptors)
	if err != nil {
		return "", fmt.Errorf("decoding maze %s: %w", mazeID, err)
	}
	if err := m.RefreshFromIndices(state.Pony, state.Domokun, state.Goal, state.State); err != nil {
		return "", fmt.Errorf("refreshing maze %s: %w", mazeID, err)
	}

	for m.State() == maze.StateActive {
		if err := ctx.Err(); err != nil {
			return m.State(), err
		}

		r.renderFrame(ctx, mazeID)

		direction, err := solver.NextDirection(m)
		if err != nil {
			return m.State(), fmt.Errorf("planning move in maze %s: %w", mazeID, err)
		}

		if err := r.session.Move(ctx, mazeID, direction); err != nil {
			return m.State(), err
		}

		state, err = r.session.State(ctx, mazeID)
		if err != nil {
			return m.State(), err
		}
		if err := m.RefreshFromIndices(state.Pony, state.Domokun, state.Goal, state.State); err != nil {
			return m.State(), fmt.Errorf("refreshing maze %s: %w", mazeID, err)
		}
	}

	r.renderFrame(ctx, mazeID)
	r.logOutcome(name, m.State())
	return m.State(), nil
}

// renderFrame draws the host's rendering of the maze. Display problems are
// not worth aborting a rescue over.
func (r *Rescue) renderFrame(ctx context.Context, mazeID string) {
	frame, err := r.session.Print(ctx, mazeID)
	if err != nil {
		r.logger.Warning(fmt.Sprintf("fetching maze frame: %v", err))
		return
	}
	if err := r.renderer.Render(frame); err != nil {
		r.logger.Warning(fmt.Sprintf("rendering maze frame: %v", err))
	}
}

func (r *Rescue) logOutcome(name string, state maze.State) {
	switch state {
	case maze.StateWon:
		r.logger.Info(fmt.Sprintf("%s escaped! Rainbows to all!", name))
	case maze.StateOver:
		r.logger.Info(fmt.Sprintf("%s was caught by the domokun. Shame!", name))
	default:
		r.logger.Warning(fmt.Sprintf("game for %s ended in unexpected state %q", name, state))
	}
}
