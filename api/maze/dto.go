// Package mazeapi exposes maze generation and corridor projection over HTTP
// for debugging.
package mazeapi

import (
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/google/uuid"
)

// MazeQuery selects a maze. Zero values fall back to the controller defaults.
type MazeQuery struct {
	Width     int    `form:"width"`
	Height    int    `form:"height"`
	NoiseBias string `form:"noise_bias"`
	Seed      string `form:"seed"`
}

// CellQuery selects one cell of a maze.
type CellQuery struct {
	MazeQuery
	X int `form:"x"`
	Y int `form:"y"`
}

// CorridorQuery selects a viewpoint inside a maze.
type CorridorQuery struct {
	CellQuery
	Facing string  `form:"facing"`
	Size   float64 `form:"size"`
}

// MazeResponse describes a generated maze.
type MazeResponse struct {
	RequestID uuid.UUID           `json:"request_id"`
	Seed      string              `json:"seed"`
	Width     int                 `json:"width"`
	Height    int                 `json:"height"`
	NoiseBias string              `json:"noise_bias"`
	Entry     maze.CellPosition   `json:"entry"`
	Exit      maze.CellPosition   `json:"exit"`
	Solution  []maze.CellPosition `json:"solution"`
	Rows      []string            `json:"rows"`
	Drawing   string              `json:"drawing"`
}

// CellResponse describes the walls of one cell.
type CellResponse struct {
	RequestID  uuid.UUID       `json:"request_id"`
	Seed       string          `json:"seed"`
	X          int             `json:"x"`
	Y          int             `json:"y"`
	Marker     string          `json:"marker"`
	Walls      map[string]bool `json:"walls"`
	IsEntrance bool            `json:"is_entrance"`
	IsExit     bool            `json:"is_exit"`
}

// SliceResponse is one projected corridor slice.
type SliceResponse struct {
	Depth    int               `json:"depth"`
	Position maze.CellPosition `json:"position"`
	Size     float64           `json:"size"`
	Shapes   []string          `json:"shapes"`
}

// CorridorResponse is the view from a cell in one direction, nearest slice first.
type CorridorResponse struct {
	RequestID uuid.UUID         `json:"request_id"`
	Seed      string            `json:"seed"`
	Position  maze.CellPosition `json:"position"`
	Facing    string            `json:"facing"`
	Slices    []SliceResponse   `json:"slices"`
}
