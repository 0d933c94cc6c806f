package mazeapi

import (
	"errors"
	"net/http"

	"github.com/beka-birhanu/pony-rescuer/game/maze"
	"github.com/beka-birhanu/pony-rescuer/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MazeController exposes the arena's maze lifecycle over HTTP.
type MazeController struct {
	arena *service.Arena
}

// NewMazeController initializes a MazeController.
func NewMazeController(arena *service.Arena) (*MazeController, error) {
	if arena == nil {
		return nil, errors.New("arena must not be nil")
	}
	return &MazeController{arena: arena}, nil
}

// Register registers the maze routes.
func (mc *MazeController) Register(route *gin.RouterGroup) {
	mazes := route.Group("/maze")
	{
		mazes.POST("", mc.create)
		mazes.GET("/:ID", mc.state)
		mazes.POST("/:ID", mc.move)
		mazes.GET("/:ID/print", mc.print)
	}
}

// create handles maze creation requests.
func (mc *MazeController) create(ctx *gin.Context) {
	var request CreateRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := mc.arena.Create(request.Width, request.Height, request.PlayerName, request.Difficulty)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, CreateResponse{MazeID: id.String()})
}

// state handles snapshot requests.
func (mc *MazeController) state(ctx *gin.Context) {
	id, ok := mc.mazeID(ctx)
	if !ok {
		return
	}

	snapshot, err := mc.arena.State(id)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, StateResponse{
		Pony:     []int{snapshot.Pony},
		Domokun:  []int{snapshot.Domokun},
		EndPoint: []int{snapshot.Goal},
		Size:     []int{snapshot.Width, snapshot.Height},
		Data:     snapshot.Descriptors,
		MazeID:   id.String(),
		GameState: GameStateResponse{
			State:       string(snapshot.State),
			StateResult: snapshot.StateResult,
		},
	})
}

// move handles direction commands.
func (mc *MazeController) move(ctx *gin.Context) {
	id, ok := mc.mazeID(ctx)
	if !ok {
		return
	}

	var request MoveRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := mc.arena.Move(id, maze.Direction(request.Direction))
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, service.ErrMazeNotFound) {
			status = http.StatusNotFound
		}
		ctx.JSON(status, gin.H{"error": err.Error()})
		return
	}

	snapshot, err := mc.arena.State(id)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, GameStateResponse{
		State:       string(snapshot.State),
		StateResult: result,
	})
}

// print handles rendering requests, returning a plain text frame.
func (mc *MazeController) print(ctx *gin.Context) {
	id, ok := mc.mazeID(ctx)
	if !ok {
		return
	}

	frame, err := mc.arena.Print(id)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	ctx.String(http.StatusOK, frame)
}

// mazeID parses the ID path parameter, answering 400 on malformed input.
func (mc *MazeController) mazeID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid maze id"})
		return uuid.Nil, false
	}
	return id, true
}
