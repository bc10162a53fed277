package mazeapi

import (
	"errors"
	"net/http"

	"github.com/beka-birhanu/vinom-maze/api"
	"github.com/beka-birhanu/vinom-maze/game"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Defaults fill in query parameters the client left out.
type Defaults struct {
	Width       int
	Height      int
	NoiseBias   maze.NoiseBias
	Facing      maze.Direction
	DrawingSize float64
}

// Controller serves read-only maze queries. Every request regenerates the
// maze from its seed, so nothing is stored between requests.
type Controller struct {
	defaults Defaults
	logger   zerolog.Logger
}

// NewController initializes a Controller.
func NewController(defaults Defaults, logger zerolog.Logger) *Controller {
	if defaults.DrawingSize <= 0 {
		defaults.DrawingSize = game.DefaultDrawingSize
	}
	if defaults.NoiseBias == "" {
		defaults.NoiseBias = maze.NoisePaths
	}
	if !defaults.Facing.Valid() {
		defaults.Facing = maze.South
	}
	return &Controller{
		defaults: defaults,
		logger:   logger,
	}
}

// Register registers the maze routes.
func (mc *Controller) Register(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.GET("", mc.generate)
		mazes.GET("/cell", mc.cell)
		mazes.GET("/corridor", mc.corridor)
	}
}

// generate returns the layout of the requested maze.
func (mc *Controller) generate(ctx *gin.Context) {
	var query MazeQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	m, bias, err := mc.build(query)
	if err != nil {
		mc.fail(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, &MazeResponse{
		RequestID: api.RequestID(ctx),
		Seed:      m.Seed,
		Width:     m.Width,
		Height:    m.Height,
		NoiseBias: string(bias),
		Entry:     m.Entry(),
		Exit:      m.Exit(),
		Solution:  m.Grid().Solution,
		Rows:      m.Grid().Rows(),
		Drawing:   m.String(),
	})
}

// cell returns the wall flags of one cell.
func (mc *Controller) cell(ctx *gin.Context) {
	var query CellQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	m, _, err := mc.build(query.MazeQuery)
	if err != nil {
		mc.fail(ctx, err)
		return
	}

	c, err := m.CellAt(query.X, query.Y)
	if err != nil {
		mc.fail(ctx, err)
		return
	}
	marker, err := m.Grid().At(query.X, query.Y)
	if err != nil {
		mc.fail(ctx, err)
		return
	}

	walls := make(map[string]bool, len(maze.Directions))
	for _, d := range maze.Directions {
		walls[d.String()] = c.HasWall(d)
	}

	ctx.JSON(http.StatusOK, &CellResponse{
		RequestID:  api.RequestID(ctx),
		Seed:       m.Seed,
		X:          c.X,
		Y:          c.Y,
		Marker:     marker.String(),
		Walls:      walls,
		IsEntrance: c.IsEntrance,
		IsExit:     c.IsExit,
	})
}

// corridor returns the frame a player standing at (x, y) would see.
func (mc *Controller) corridor(ctx *gin.Context) {
	var query CorridorQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	m, _, err := mc.build(query.MazeQuery)
	if err != nil {
		mc.fail(ctx, err)
		return
	}

	facing := mc.defaults.Facing
	if query.Facing != "" {
		if facing, err = maze.ParseDirection(query.Facing); err != nil {
			mc.fail(ctx, err)
			return
		}
	}

	pos := maze.CellPosition{X: query.X, Y: query.Y}
	player, err := game.NewPlayerAt(m, pos, facing)
	if err != nil {
		mc.fail(ctx, err)
		return
	}

	size := query.Size
	if size <= 0 {
		size = mc.defaults.DrawingSize
	}
	frame := game.Project(m, player, size)

	slices := make([]SliceResponse, 0, len(frame.Slices))
	for _, s := range frame.Slices {
		slices = append(slices, SliceResponse{
			Depth:    s.Depth,
			Position: s.Position,
			Size:     s.Size,
			Shapes:   s.Shapes.Names(),
		})
	}

	ctx.JSON(http.StatusOK, &CorridorResponse{
		RequestID: api.RequestID(ctx),
		Seed:      m.Seed,
		Position:  pos,
		Facing:    frame.Facing.String(),
		Slices:    slices,
	})
}

func (mc *Controller) build(query MazeQuery) (*maze.Maze, maze.NoiseBias, error) {
	width, height := query.Width, query.Height
	if width == 0 {
		width = mc.defaults.Width
	}
	if height == 0 {
		height = mc.defaults.Height
	}

	bias := mc.defaults.NoiseBias
	if query.NoiseBias != "" {
		var err error
		if bias, err = maze.ParseNoiseBias(query.NoiseBias); err != nil {
			return nil, "", err
		}
	}

	m, err := maze.New(width, height, bias, query.Seed)
	if err != nil {
		return nil, "", err
	}

	mc.logger.Debug().
		Str("seed", m.Seed).
		Int("width", width).
		Int("height", height).
		Str("noise_bias", string(bias)).
		Msg("Maze generated")
	return m, bias, nil
}

// fail maps domain errors to 400 and everything else to 500.
func (mc *Controller) fail(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, maze.ErrInvalidDimensions),
		errors.Is(err, maze.ErrInvalidNoiseBias),
		errors.Is(err, maze.ErrInvalidDirection),
		errors.Is(err, maze.ErrOutOfBounds):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		mc.logger.Error().Err(err).Msg("Maze request failed")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while building maze"})
	}
}
