package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/beka-birhanu/vinom-maze/api"
	api_i "github.com/beka-birhanu/vinom-maze/api/i"
	mazeapi "github.com/beka-birhanu/vinom-maze/api/maze"
	"github.com/beka-birhanu/vinom-maze/audio"
	"github.com/beka-birhanu/vinom-maze/config"
	"github.com/beka-birhanu/vinom-maze/game"
	logger "github.com/beka-birhanu/vinom-maze/infrastruture/log"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/terminal"
	"github.com/gdamore/tcell/v2"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Global variables for dependencies
var (
	appLogger      = zerolog.Nop()
	logFile        *os.File
	noiseBias      maze.NoiseBias
	facing         maze.Direction
	mazeLayout     *maze.Maze
	screen         tcell.Screen
	renderer       *terminal.Renderer
	bumpSound      *audio.Bump
	session        *game.Session
	mazeController api_i.Controller
	router         *api.Router
)

// fatal restores the terminal, logs err and exits.
func fatal(msg string, err error) {
	if screen != nil {
		screen.Fini()
	}
	appLogger.Error().Err(err).Msg(msg)
	fmt.Fprintf(os.Stderr, "%s: %v\n", msg, err)
	os.Exit(1)
}

func initLogLevel() {
	level, err := zerolog.ParseLevel(config.Envs.LogLevel)
	if err != nil {
		fatal("Parsing log level", err)
	}
	zerolog.SetGlobalLevel(level)
}

func initFileLogger() {
	var err error
	logFile, err = os.OpenFile(config.Envs.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fatal("Opening log file", err)
	}

	appLogger, err = logger.New("APP", "", logFile)
	if err != nil {
		fatal("Creating app logger", err)
	}
}

func initStdoutLogger() {
	var err error
	appLogger, err = logger.New("APP", config.ColorGreen, os.Stdout)
	if err != nil {
		fatal("Creating app logger", err)
	}
}

func initMazeOptions() {
	var err error
	noiseBias, err = maze.ParseNoiseBias(config.Envs.NoiseBias)
	if err != nil {
		fatal("Parsing noise bias", err)
	}

	facing, err = maze.ParseDirection(config.Envs.PlayerFacing)
	if err != nil {
		fatal("Parsing player facing", err)
	}
}

func initMaze() {
	var err error
	mazeLayout, err = maze.New(config.Envs.MazeWidth, config.Envs.MazeHeight, noiseBias, config.Envs.MazeSeed)
	if err != nil {
		fatal("Generating maze", err)
	}

	appLogger.Info().
		Str("seed", mazeLayout.Seed).
		Int("width", mazeLayout.Width).
		Int("height", mazeLayout.Height).
		Str("noise_bias", string(noiseBias)).
		Msg("Maze generated")
	appLogger.Debug().Msg("Layout\n" + mazeLayout.Grid().String())
}

func initScreen() {
	s, err := tcell.NewScreen()
	if err != nil {
		fatal("Creating screen", err)
	}
	if err := s.Init(); err != nil {
		fatal("Initializing screen", err)
	}
	screen = s
	screen.HideCursor()
	appLogger.Info().Msg("Screen initialized")
}

func initRenderer() {
	var err error
	renderer, err = terminal.NewRenderer(screen)
	if err != nil {
		fatal("Creating renderer", err)
	}
}

func initSound() {
	soundLogger, err := logger.New("AUDIO", "", logFile)
	if err != nil {
		fatal("Creating audio logger", err)
	}
	bumpSound = audio.NewBump(config.Envs.SoundEnabled, soundLogger)
	appLogger.Info().Bool("enabled", bumpSound.Enabled()).Msg("Sound initialized")
}

func initSession() {
	sessionLogger, err := logger.New("SESSION", "", logFile)
	if err != nil {
		fatal("Creating session logger", err)
	}

	session, err = game.NewSession(game.SessionConfig{
		Maze:        mazeLayout,
		Facing:      facing,
		Renderer:    renderer,
		Sound:       bumpSound,
		Logger:      sessionLogger.With().Str("seed", mazeLayout.Seed).Logger(),
		DrawingSize: config.Envs.DrawingSize,
	})
	if err != nil {
		fatal("Creating session", err)
	}
	appLogger.Info().Str("session_id", session.ID.String()).Msg("Session initialized")
}

func initMazeController() {
	controllerLogger, err := logger.New("MAZE-API", config.ColorCyan, os.Stdout)
	if err != nil {
		fatal("Creating maze controller logger", err)
	}

	mazeController = mazeapi.NewController(mazeapi.Defaults{
		Width:       config.Envs.MazeWidth,
		Height:      config.Envs.MazeHeight,
		NoiseBias:   noiseBias,
		Facing:      facing,
		DrawingSize: config.Envs.DrawingSize,
	}, controllerLogger)
	appLogger.Info().Msg("Maze controller initialized")
}

func initRouter() {
	requestLogger, err := logger.New("HTTP", config.ColorBlue, os.Stdout)
	if err != nil {
		fatal("Creating request logger", err)
	}

	gin.SetMode(config.Envs.GinMode)
	router = api.NewRouter(api.Config{
		Addr:        fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:     "/api",
		Controllers: []api_i.Controller{mazeController},
		Middlewares: []gin.HandlerFunc{api.RequestLogger(requestLogger)},
	})
	appLogger.Info().Msg("Router initialized")
}

// walk lets the player explore a freshly generated maze in the terminal.
func walk() {
	initFileLogger()
	defer logFile.Close()

	initMazeOptions()
	initMaze()
	initScreen()
	initRenderer()
	initSound()
	defer bumpSound.Close()
	initSession()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	commands := make(chan game.Command)
	go terminal.Pump(ctx, screen, commands)

	result, err := session.Run(ctx, commands)
	screen.Fini()
	screen = nil

	if err != nil && ctx.Err() == nil {
		fatal("Running session", err)
	}

	if result.Escaped {
		fmt.Printf("You escaped the maze (seed %s).\n", mazeLayout.Seed)
		return
	}
	fmt.Printf("You left the maze (seed %s).\n", mazeLayout.Seed)
}

// serve runs the debug HTTP API.
func serve() {
	initStdoutLogger()
	initMazeOptions()
	initMazeController()
	initRouter()

	// Run HTTP server
	if err := router.Run(); err != nil {
		fatal("Starting server", err)
	}
}

func main() {
	initLogLevel()

	switch config.Envs.AppMode {
	case config.ModeWalk:
		walk()
	case config.ModeServe:
		serve()
	default:
		fatal("Selecting mode", fmt.Errorf("unknown APP_MODE %q", config.Envs.AppMode))
	}
}
