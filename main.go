package main

import (
	"context"
	"flag"
	"fmt"
	"net"
	"os"
	"time"

	"github.com/beka-birhanu/pony-rescuer/api"
	api_i "github.com/beka-birhanu/pony-rescuer/api/i"
	mazeapi "github.com/beka-birhanu/pony-rescuer/api/maze"
	"github.com/beka-birhanu/pony-rescuer/config"
	logger "github.com/beka-birhanu/pony-rescuer/infrastruture/log"
	"github.com/beka-birhanu/pony-rescuer/infrastruture/ponyapi"
	"github.com/beka-birhanu/pony-rescuer/infrastruture/render"
	"github.com/beka-birhanu/pony-rescuer/service"
	"github.com/beka-birhanu/pony-rescuer/service/i"
	"github.com/gin-gonic/gin"
)

// Command line options.
var (
	width      = flag.Int("width", 15, "the width of the maze (15-25)")
	height     = flag.Int("height", 15, "the height of the maze (15-25)")
	name       = flag.String("name", "Fluttershy", "the name of the pony to rescue - must be a valid pony")
	difficulty = flag.Int("difficulty", 0, "the difficulty of the adversary in the maze (0-3)")
	serve      = flag.Bool("serve", false, "host the maze arena instead of playing")
	local      = flag.Bool("local", false, "host the maze arena and play against it")
)

// Global variables for dependencies
var (
	appLogger  i.Logger
	arena      *service.Arena
	router     *api.Router
	session    i.MazeSession
	rescue     *service.Rescue
	serverAddr string
)

func initArena() {
	arenaLogger, err := logger.New("ARENA", config.ColorMagenta, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating arena logger: %v", err))
		os.Exit(1)
	}

	arena, err = service.NewArena(arenaLogger)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating arena: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Arena initialized")
}

func initRouter() {
	mazeController, err := mazeapi.NewMazeController(arena)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze controller: %v", err))
		os.Exit(1)
	}

	gin.SetMode(config.Envs.GinMode)
	serverAddr = fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort)
	router = api.NewRouter(api.Config{
		Addr:        serverAddr,
		BaseURL:     "/pony-challenge",
		Controllers: []api_i.Controller{mazeController},
	})
	appLogger.Info("Router initialized")
}

func initSession(baseURL string) {
	sessionLogger, err := logger.New("SESSION", config.ColorCyan, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating session logger: %v", err))
		os.Exit(1)
	}

	session, err = ponyapi.New(ponyapi.Config{
		BaseURL: baseURL,
		Timeout: time.Duration(config.Envs.HTTPTimeout) * time.Second,
		Logger:  sessionLogger,
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze session: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Maze session initialized")
}

func initRescue() {
	rescueLogger, err := logger.New("RESCUE", config.ColorBlue, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating rescue logger: %v", err))
		os.Exit(1)
	}

	renderer, err := render.NewTerminal(os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating renderer: %v", err))
		os.Exit(1)
	}

	rescue, err = service.NewRescue(service.RescueConfig{
		Session:  session,
		Renderer: renderer,
		Logger:   rescueLogger,
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating rescue service: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Rescue service initialized")
}

// waitForServer blocks until the arena server accepts connections.
func waitForServer(addr string) {
	for attempt := 0; attempt < 20; attempt++ {
		conn, err := net.DialTimeout("tcp", addr, 100*time.Millisecond)
		if err == nil {
			_ = conn.Close()
			return
		}
		time.Sleep(100 * time.Millisecond)
	}
	appLogger.Error(fmt.Sprintf("Arena server did not come up on %s", addr))
	os.Exit(1)
}

func validateFlags() {
	if *difficulty < 0 || *difficulty > 3 {
		appLogger.Error("Only supports difficulty 0-3")
		os.Exit(1)
	}
	if *width < 15 || *width > 25 || *height < 15 || *height > 25 {
		appLogger.Error("Only supports width and height 15-25")
		os.Exit(1)
	}
}

func main() {
	flag.Parse()

	appLogger, _ = logger.New("APP", config.ColorGreen, os.Stdout)
	validateFlags()

	if *serve || *local {
		initArena()
		initRouter()
	}

	if *serve {
		if err := router.Run(); err != nil {
			appLogger.Error(fmt.Sprintf("Starting arena server: %v", err))
			os.Exit(1)
		}
		return
	}

	baseURL := config.Envs.ChallengeBaseURL
	if *local {
		go func() {
			if err := router.Run(); err != nil {
				appLogger.Error(fmt.Sprintf("Starting arena server: %v", err))
				os.Exit(1)
			}
		}()
		waitForServer(serverAddr)
		baseURL = fmt.Sprintf("http://%s/pony-challenge", serverAddr)
	}

	initSession(baseURL)
	initRescue()

	state, err := rescue.Run(context.Background(), *width, *height, *name, *difficulty)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Rescue failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info(fmt.Sprintf("Game finished in state %q", state))
}
