package ui

import (
	"gridsnake/game/types"

	"github.com/gdamore/tcell/v2"
)

// Terminal draws the board with tcell. Every grid cell takes two columns so
// cells come out roughly square; the HUD goes on the line under the border.
type Terminal struct {
	screen tcell.Screen
	grid   types.Grid
	events chan tcell.Event
}

// NewTerminal takes over the controlling terminal.
func NewTerminal(grid types.Grid) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return newTerminal(screen, grid)
}

func newTerminal(screen tcell.Screen, grid types.Grid) (*Terminal, error) {
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.HideCursor()

	t := &Terminal{
		screen: screen,
		grid:   grid,
		events: make(chan tcell.Event, 100),
	}
	go t.pollEvents()
	return t, nil
}

// pollEvents feeds the channel until the screen is finalized.
func (t *Terminal) pollEvents() {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			close(t.events)
			return
		}
		t.events <- ev
	}
}

func (t *Terminal) Poll() ([]types.Direction, bool) {
	var dirs []types.Direction
	for {
		select {
		case ev, ok := <-t.events:
			if !ok {
				return dirs, true
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				dir, quit := terminalKey(ev.Key(), ev.Rune())
				if quit {
					return dirs, true
				}
				if dir != types.NONE {
					dirs = append(dirs, dir)
				}
			case *tcell.EventResize:
				t.screen.Sync()
			}
		default:
			return dirs, false
		}
	}
}

// terminalKey maps a key press to a direction or a quit request.
func terminalKey(key tcell.Key, r rune) (types.Direction, bool) {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return types.NONE, true
	case tcell.KeyUp:
		return types.UP, false
	case tcell.KeyRight:
		return types.RIGHT, false
	case tcell.KeyDown:
		return types.DOWN, false
	case tcell.KeyLeft:
		return types.LEFT, false
	case tcell.KeyRune:
		switch r {
		case 'q', 'Q':
			return types.NONE, true
		case 'w', 'W':
			return types.UP, false
		case 'd', 'D':
			return types.RIGHT, false
		case 's', 'S':
			return types.DOWN, false
		case 'a', 'A':
			return types.LEFT, false
		}
	}
	return types.NONE, false
}

func (t *Terminal) Draw(f Frame) {
	t.screen.Clear()

	cols, rows := t.grid.Width, t.grid.Height
	border := tcell.StyleDefault.Foreground(toTcell(colorCellBorder))
	for x := 0; x <= cols*2+1; x++ {
		t.screen.SetContent(x, 0, '─', nil, border)
		t.screen.SetContent(x, rows+1, '─', nil, border)
	}
	for y := 0; y <= rows+1; y++ {
		t.screen.SetContent(0, y, '│', nil, border)
		t.screen.SetContent(cols*2+1, y, '│', nil, border)
	}

	for _, it := range f.Items {
		if it.Active {
			t.drawCell(it.Position, itemColor(it.Kind))
		}
	}
	for i, p := range f.Body {
		color := colorSnake
		if i == 0 {
			color = colorHead
		}
		t.drawCell(p, color)
	}

	text := tcell.StyleDefault.Foreground(toTcell(colorText))
	for i, r := range []rune(f.Status()) {
		t.screen.SetContent(i, rows+2, r, nil, text)
	}

	t.screen.Show()
}

// drawCell paints the two columns of the grid cell at pixel position p.
func (t *Terminal) drawCell(p types.Point, c RGB) {
	col, row := t.grid.ColRow(p)
	style := tcell.StyleDefault.Foreground(toTcell(c))
	x, y := 1+col*2, 1+row
	t.screen.SetContent(x, y, '█', nil, style)
	t.screen.SetContent(x+1, y, '█', nil, style)
}

func (t *Terminal) Close() error {
	t.screen.Fini()
	return nil
}

func toTcell(c RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
