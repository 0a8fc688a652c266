package types

import (
	"errors"
	"fmt"
)

// Default screen geometry, matching a 640x480 window split into 20px cells.
const (
	DefaultScreenWidth  = 640
	DefaultScreenHeight = 480
	DefaultCellSize     = 20
)

// ErrInvalidGrid is returned by Validate for non-positive dimensions.
var ErrInvalidGrid = errors.New("invalid grid")

// Point is a pixel position on the board. Positions handed out by the game
// are always multiples of the grid cell size.
type Point struct {
	X, Y int
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Axis selects the horizontal or vertical extent of the grid.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

// Grid represents the game grid dimensions. Width and Height are in cells.
type Grid struct {
	Width    int
	Height   int
	CellSize int
}

// NewGrid builds a grid from a screen size in pixels.
func NewGrid(screenWidth, screenHeight, cellSize int) Grid {
	if cellSize <= 0 {
		return Grid{CellSize: cellSize}
	}
	return Grid{
		Width:    screenWidth / cellSize,
		Height:   screenHeight / cellSize,
		CellSize: cellSize,
	}
}

// DefaultGrid returns the 32x24 grid of the default window.
func DefaultGrid() Grid {
	return NewGrid(DefaultScreenWidth, DefaultScreenHeight, DefaultCellSize)
}

// Validate reports whether all dimensions are positive.
func (g Grid) Validate() error {
	if g.Width <= 0 || g.Height <= 0 || g.CellSize <= 0 {
		return fmt.Errorf("%w: %dx%d cells of %dpx", ErrInvalidGrid, g.Width, g.Height, g.CellSize)
	}
	return nil
}

// PixelWidth is the horizontal extent of the board in pixels.
func (g Grid) PixelWidth() int {
	return g.Width * g.CellSize
}

// PixelHeight is the vertical extent of the board in pixels.
func (g Grid) PixelHeight() int {
	return g.Height * g.CellSize
}

// CellCount is the number of cells on the board.
func (g Grid) CellCount() int {
	return g.Width * g.Height
}

// Cell returns the pixel position of the cell at column col and row row.
func (g Grid) Cell(col, row int) Point {
	return Point{X: col * g.CellSize, Y: row * g.CellSize}
}

// ColRow converts a pixel position back into cell coordinates.
func (g Grid) ColRow(p Point) (col, row int) {
	return p.X / g.CellSize, p.Y / g.CellSize
}

// Center returns the cell containing the middle of the screen.
func (g Grid) Center() Point {
	return Point{
		X: (g.PixelWidth() / 2) / g.CellSize * g.CellSize,
		Y: (g.PixelHeight() / 2) / g.CellSize * g.CellSize,
	}
}

// Contains reports whether p lies on the board and is aligned to a cell.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.PixelWidth() &&
		p.Y >= 0 && p.Y < g.PixelHeight() &&
		p.X%g.CellSize == 0 && p.Y%g.CellSize == 0
}

// Wrap folds a coordinate back onto the board along the given axis.
// This is the only place wrap-around arithmetic happens.
func (g Grid) Wrap(coord int, axis Axis) int {
	extent := g.PixelWidth()
	if axis == AxisY {
		extent = g.PixelHeight()
	}
	return ((coord % extent) + extent) % extent
}

// Step returns the cell reached by moving one cell from p in direction d.
func (g Grid) Step(p Point, d Direction) Point {
	v := d.ToPoint()
	return Point{
		X: g.Wrap(p.X+v.X*g.CellSize, AxisX),
		Y: g.Wrap(p.Y+v.Y*g.CellSize, AxisY),
	}
}

// Distance is the Manhattan distance between two cells, in cells, taking
// the wrap-around edges into account.
func (g Grid) Distance(p1, p2 Point) int {
	dx := abs(p1.X-p2.X) / g.CellSize
	dy := abs(p1.Y-p2.Y) / g.CellSize

	if dx > g.Width/2 {
		dx = g.Width - dx
	}
	if dy > g.Height/2 {
		dy = g.Height - dy
	}
	return dx + dy
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
