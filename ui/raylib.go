package ui

import (
	"gridsnake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const hudHeight = 30

// raylibKeys maps key codes to directions. Arrows and WASD both steer.
var raylibKeys = []struct {
	key int32
	dir types.Direction
}{
	{rl.KeyUp, types.UP},
	{rl.KeyW, types.UP},
	{rl.KeyRight, types.RIGHT},
	{rl.KeyD, types.RIGHT},
	{rl.KeyDown, types.DOWN},
	{rl.KeyS, types.DOWN},
	{rl.KeyLeft, types.LEFT},
	{rl.KeyA, types.LEFT},
}

// Window draws the board in a raylib window, one rectangle per cell at its
// pixel position, with the HUD in a bar below.
type Window struct {
	grid     types.Grid
	fontSize int32
}

// NewWindow opens a window sized to the board.
func NewWindow(grid types.Grid, title string) *Window {
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(grid.PixelWidth()), int32(grid.PixelHeight())+hudHeight, title)
	rl.SetExitKey(rl.KeyEscape)
	rl.SetTargetFPS(60)

	return &Window{grid: grid, fontSize: 20}
}

func (w *Window) Poll() ([]types.Direction, bool) {
	if rl.WindowShouldClose() || rl.IsKeyPressed(rl.KeyQ) {
		return nil, true
	}

	var dirs []types.Direction
	for _, k := range raylibKeys {
		if rl.IsKeyPressed(k.key) {
			dirs = append(dirs, k.dir)
		}
	}
	return dirs, false
}

func (w *Window) Draw(f Frame) {
	rl.BeginDrawing()
	rl.ClearBackground(toRaylib(colorBackground))

	for _, it := range f.Items {
		if it.Active {
			w.drawCell(it.Position, itemColor(it.Kind))
		}
	}
	for i, p := range f.Body {
		color := colorSnake
		if i == 0 {
			color = colorHead
		}
		w.drawCell(p, color)
	}

	barY := int32(w.grid.PixelHeight())
	rl.DrawLine(0, barY, int32(w.grid.PixelWidth()), barY, toRaylib(colorCellBorder))
	rl.DrawText(f.Status(), 5, barY+(hudHeight-w.fontSize)/2, w.fontSize, toRaylib(colorText))

	rl.EndDrawing()
}

// drawCell fills the cell at p and outlines it.
func (w *Window) drawCell(p types.Point, c RGB) {
	size := int32(w.grid.CellSize)
	rl.DrawRectangle(int32(p.X), int32(p.Y), size, size, toRaylib(c))
	rl.DrawRectangleLines(int32(p.X), int32(p.Y), size, size, toRaylib(colorCellBorder))
}

func (w *Window) Close() error {
	rl.CloseWindow()
	return nil
}

func toRaylib(c RGB) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: 255}
}
