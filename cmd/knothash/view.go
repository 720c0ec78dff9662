package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/katalvlaran/knotgrid/diskgrid"
)

// viewer scrolls a disk map inside a terminal screen.
// Row 0 of the screen is the title, the last row the status line.
type viewer struct {
	grid   *diskgrid.Grid
	labels [][]int
	offX   int
	offY   int
}

func newViewer(g *diskgrid.Grid) *viewer {
	return &viewer{grid: g, labels: g.RegionLabels()}
}

func runViewer(g *diskgrid.Grid) error {
	s, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err = s.Init(); err != nil {
		return err
	}
	defer s.Fini()

	v := newViewer(g)
	for {
		v.draw(s)
		s.Show()
		switch ev := s.PollEvent().(type) {
		case *tcell.EventResize:
			s.Sync()
		case *tcell.EventKey:
			if v.handleKey(ev) {
				return nil
			}
		}
	}
}

// handleKey moves the view and reports whether the viewer should exit.
func (v *viewer) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyLeft:
		v.scroll(-1, 0)
	case tcell.KeyRight:
		v.scroll(1, 0)
	case tcell.KeyUp:
		v.scroll(0, -1)
	case tcell.KeyDown:
		v.scroll(0, 1)
	case tcell.KeyPgUp:
		v.scroll(0, -16)
	case tcell.KeyPgDn:
		v.scroll(0, 16)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return true
		case 'h':
			v.scroll(-1, 0)
		case 'l':
			v.scroll(1, 0)
		case 'k':
			v.scroll(0, -1)
		case 'j':
			v.scroll(0, 1)
		}
	}

	return false
}

func (v *viewer) scroll(dx, dy int) {
	v.offX = clampOffset(v.offX+dx, diskgrid.Cols-1)
	v.offY = clampOffset(v.offY+dy, diskgrid.Rows-1)
}

func clampOffset(v, hi int) int {
	if v < 0 {
		return 0
	}
	if v > hi {
		return hi
	}

	return v
}

func (v *viewer) draw(s tcell.Screen) {
	s.Clear()
	w, h := s.Size()
	title := fmt.Sprintf("%s | used %d | regions %d | arrows/hjkl scroll, q quit",
		v.grid.Key(), v.grid.Used(), v.grid.Regions())
	drawText(s, 0, 0, tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true), title)

	free := tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	for sy := 1; sy < h-1; sy++ {
		y := v.offY + sy - 1
		if y >= diskgrid.Rows {
			break
		}
		for sx := 0; sx < w; sx++ {
			x := v.offX + sx
			if x >= diskgrid.Cols {
				break
			}
			if l := v.labels[y][x]; l >= 0 {
				s.SetContent(sx, sy, '#', nil, tcell.StyleDefault.Foreground(regionColor(l)))
			} else {
				s.SetContent(sx, sy, '.', nil, free)
			}
		}
	}

	status := fmt.Sprintf("x %d..%d  y %d..%d", v.offX, v.offX+w-1, v.offY, v.offY+h-3)
	drawText(s, 0, h-1, tcell.StyleDefault.Foreground(tcell.ColorDarkGray), status)
}

// regionColor spreads region indices over the 216-entry color cube of the palette.
func regionColor(label int) tcell.Color {
	return tcell.PaletteColor(16 + label%216)
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range []rune(text) {
		s.SetContent(x+i, y, r, nil, style)
	}
}
