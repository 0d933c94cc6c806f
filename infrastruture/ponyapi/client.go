// Package ponyapi implements the i.MazeSession interface against the pony
// challenge HTTP protocol. It owns every network round trip the solver
// needs: maze creation, state fetches, move submission, and the printable
// rendering endpoint.
package ponyapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/beka-birhanu/pony-rescuer/game/maze"
	"github.com/beka-birhanu/pony-rescuer/service/i"
)

// Client talks to a maze host speaking the pony challenge protocol.
type Client struct {
	baseURL string
	http    *http.Client
	logger  i.Logger
}

// Config holds settings for creating a new Client.
type Config struct {
	BaseURL string        // Root of the challenge API, without trailing slash
	Timeout time.Duration // Per-request timeout
	Logger  i.Logger
}

// New creates a Client from the given configuration.
func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("challenge base URL must not be empty")
	}
	if cfg.Logger == nil {
		return nil, fmt.Errorf("logger must not be nil")
	}
	return &Client{
		baseURL: cfg.BaseURL,
		http:    &http.Client{Timeout: cfg.Timeout},
		logger:  cfg.Logger,
	}, nil
}

// Create starts a new maze and returns its identifier.
func (c *Client) Create(ctx context.Context, width, height int, name string, difficulty int) (string, error) {
	body := createRequest{
		Width:      width,
		Height:     height,
		PlayerName: name,
		Difficulty: difficulty,
	}

	var response createResponse
	if err := c.postJSON(ctx, c.baseURL+"/maze", body, &response); err != nil {
		return "", fmt.Errorf("creating maze: %w", err)
	}

	c.logger.Info(fmt.Sprintf("created %dx%d maze %s for %s", width, height, response.MazeID, name))
	return response.MazeID, nil
}

// State fetches the current snapshot of the maze.
func (c *Client) State(ctx context.Context, mazeID string) (*i.MazeState, error) {
	var response stateResponse
	if err := c.getJSON(ctx, c.baseURL+"/maze/"+mazeID, &response); err != nil {
		return nil, fmt.Errorf("fetching maze state: %w", err)
	}

	if len(response.Pony) == 0 || len(response.Domokun) == 0 || len(response.EndPoint) == 0 || len(response.Size) < 2 {
		return nil, fmt.Errorf("fetching maze state: incomplete snapshot for maze %s", mazeID)
	}

	return &i.MazeState{
		Width:       response.Size[0],
		Height:      response.Size[1],
		Pony:        response.Pony[0],
		Domokun:     response.Domokun[0],
		Goal:        response.EndPoint[0],
		Descriptors: response.Data,
		State:       maze.State(response.GameState.State),
		StateResult: response.GameState.StateResult,
	}, nil
}

// Move submits a direction command for the pony.
func (c *Client) Move(ctx context.Context, mazeID string, direction maze.Direction) error {
	body := moveRequest{Direction: string(direction)}
	if err := c.postJSON(ctx, c.baseURL+"/maze/"+mazeID, body, nil); err != nil {
		return fmt.Errorf("moving %s: %w", direction, err)
	}
	return nil
}

// Print fetches the host's printable rendering of the maze.
func (c *Client) Print(ctx context.Context, mazeID string) (string, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/maze/"+mazeID+"/print", nil)
	if err != nil {
		return "", fmt.Errorf("printing maze: %w", err)
	}

	response, err := c.http.Do(request)
	if err != nil {
		return "", fmt.Errorf("printing maze: %w", err)
	}
	defer func() { _ = response.Body.Close() }()

	if err := checkStatus(response); err != nil {
		return "", fmt.Errorf("printing maze: %w", err)
	}

	frame, err := io.ReadAll(response.Body)
	if err != nil {
		return "", fmt.Errorf("printing maze: %w", err)
	}
	return string(frame), nil
}

// postJSON sends body as JSON and, when result is non-nil, decodes the
// response into it.
func (c *Client) postJSON(ctx context.Context, url string, body, result any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	setHeaders(request)

	response, err := c.http.Do(request)
	if err != nil {
		return err
	}
	defer func() { _ = response.Body.Close() }()

	if err := checkStatus(response); err != nil {
		return err
	}
	if result == nil {
		return nil
	}
	return json.NewDecoder(response.Body).Decode(result)
}

// getJSON fetches url and decodes the JSON response into result.
func (c *Client) getJSON(ctx context.Context, url string, result any) error {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	setHeaders(request)

	response, err := c.http.Do(request)
	if err != nil {
		return err
	}
	defer func() { _ = response.Body.Close() }()

	if err := checkStatus(response); err != nil {
		return err
	}
	return json.NewDecoder(response.Body).Decode(result)
}

func setHeaders(request *http.Request) {
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Accept", "application/json")
}

func checkStatus(response *http.Response) error {
	if response.StatusCode >= 200 && response.StatusCode < 300 {
		return nil
	}
	body, _ := io.ReadAll(io.LimitReader(response.Body, 512))
	return fmt.Errorf("maze host returned %s: %s", response.Status, bytes.TrimSpace(body))
}
