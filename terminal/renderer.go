// Package terminal draws corridor frames on a tcell screen and turns key
// presses into walk commands.
package terminal

import (
	"errors"
	"math"
	"slices"

	"github.com/beka-birhanu/vinom-maze/game"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/gdamore/tcell/v2"
)

var ErrNilScreen = errors.New("screen is nil")

// shades fill walls, nearest first.
var shades = []rune{'█', '▓', '▒', '░'}

// Screen is the part of tcell.Screen the renderer draws on.
type Screen interface {
	Size() (width, height int)
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Clear()
	Show()
}

// Renderer draws corridor frames scaled from paper space to the screen.
type Renderer struct {
	screen      Screen
	wallStyle   tcell.Style
	lineStyle   tcell.Style
	ladderStyle tcell.Style
	textStyle   tcell.Style
}

// NewRenderer returns a renderer drawing on screen.
func NewRenderer(screen Screen) (*Renderer, error) {
	if screen == nil {
		return nil, ErrNilScreen
	}

	return &Renderer{
		screen:      screen,
		wallStyle:   tcell.StyleDefault.Foreground(tcell.NewRGBColor(0, 85, 102)),
		lineStyle:   tcell.StyleDefault.Foreground(tcell.ColorWhite),
		ladderStyle: tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true),
		textStyle:   tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 0, 255)),
	}, nil
}

// Render clears the screen and draws the frame far to near so nearer walls
// cover farther ones.
func (r *Renderer) Render(frame game.Frame) error {
	r.screen.Clear()

	for _, slice := range slices.Backward(frame.Slices) {
		shade := shades[min(slice.Depth, len(shades)-1)]
		for _, shape := range slice.Shapes.List() {
			quad := ShapeQuad(shape, slice.Size)
			if shape == maze.Ladder {
				r.drawLadder(quad)
				continue
			}
			r.fill(quad, shade, r.wallStyle)
			r.outline(quad)
		}
	}

	r.screen.Show()
	return nil
}

// ShowMessage prints msg centred on the bottom row until the next Render.
func (r *Renderer) ShowMessage(msg string) error {
	w, h := r.screen.Size()
	if h == 0 {
		return nil
	}

	runes := []rune(msg)
	x := max((w-len(runes))/2, 0)
	for i, ch := range runes {
		if x+i >= w {
			break
		}
		r.screen.SetContent(x+i, h-1, ch, nil, r.textStyle)
	}
	r.screen.Show()
	return nil
}

// scale returns the paper-to-screen factors.
func (r *Renderer) scale() (float64, float64) {
	w, h := r.screen.Size()
	return float64(w) / PaperWidth, float64(h) / PaperHeight
}

// cells calls draw for every screen cell whose centre lies inside quad.
func (r *Renderer) cells(quad Quad, draw func(x, y int)) {
	w, h := r.screen.Size()
	sx, sy := r.scale()
	if sx == 0 || sy == 0 {
		return
	}

	lo, hi := quad.Bounds()
	x0, x1 := max(int(math.Floor(lo.X*sx)), 0), min(int(math.Ceil(hi.X*sx)), w-1)
	y0, y1 := max(int(math.Floor(lo.Y*sy)), 0), min(int(math.Ceil(hi.Y*sy)), h-1)

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			centre := Point{X: (float64(x) + 0.5) / sx, Y: (float64(y) + 0.5) / sy}
			if quad.Contains(centre) {
				draw(x, y)
			}
		}
	}
}

func (r *Renderer) fill(quad Quad, shade rune, style tcell.Style) {
	r.cells(quad, func(x, y int) {
		r.screen.SetContent(x, y, shade, nil, style)
	})
}

// outline draws the two vertical edges of a wall.
func (r *Renderer) outline(quad Quad) {
	r.vertical(quad[0], quad[3])
	r.vertical(quad[1], quad[2])
}

func (r *Renderer) vertical(a, b Point) {
	w, h := r.screen.Size()
	sx, sy := r.scale()

	x := int(a.X * sx)
	if a.X >= PaperWidth {
		x = w - 1
	}
	if x < 0 || x >= w {
		return
	}

	y0 := max(int(math.Min(a.Y, b.Y)*sy), 0)
	y1 := min(int(math.Max(a.Y, b.Y)*sy), h-1)
	for y := y0; y <= y1; y++ {
		r.screen.SetContent(x, y, '│', nil, r.lineStyle)
	}
}

func (r *Renderer) drawLadder(quad Quad) {
	sx, _ := r.scale()
	left := int(math.Floor(quad[0].X * sx))
	right := int(math.Floor(quad[1].X * sx))

	r.cells(quad, func(x, y int) {
		switch {
		case x == left || x == right:
			r.screen.SetContent(x, y, '║', nil, r.ladderStyle)
		case y%2 == 0:
			r.screen.SetContent(x, y, '═', nil, r.ladderStyle)
		default:
			r.screen.SetContent(x, y, ' ', nil, tcell.StyleDefault)
		}
	})
}
