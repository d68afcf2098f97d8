package tcellui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"slotgrid/config"
	"slotgrid/grid"
	"slotgrid/keymap"
	"slotgrid/layout"
)

const (
	maxCellHeight = 3
	selectMarker  = "▶ "
)

type palette struct {
	tags      map[grid.Tag]tcell.Color
	highlight tcell.Color
	legend    tcell.Style
}

func newPalette(c config.Colors) palette {
	return palette{
		tags: map[grid.Tag]tcell.Color{
			grid.Empty: tcell.GetColor(c.Empty),
			grid.Black: tcell.GetColor(c.Black),
			grid.White: tcell.GetColor(c.White),
		},
		highlight: tcell.GetColor(c.Highlight),
		legend:    tcell.StyleDefault.Foreground(tcell.GetColor(c.Legend)),
	}
}

func (a *App) draw() {
	a.screen.Clear()

	w, h := a.screen.Size()
	frame := layout.Split(w, h, len(a.keys.Legend())+1)

	active := a.grid.Active()
	for i, col := range a.grid.Columns() {
		sel, ok := col.CurrentRow()
		a.drawColumn(col, frame.Columns[i], ok && i == active, sel)
	}
	a.drawLegend(frame.Legend)

	a.screen.Show()
}

func (a *App) drawColumn(col grid.Column, r layout.Rect, focused bool, selected int) {
	ch := r.Height / grid.Rows
	if ch > maxCellHeight {
		ch = maxCellHeight
	}
	if ch < 1 {
		ch = 1
	}

	for row, cell := range col.Cells() {
		y := r.Y + row*ch
		style := tcell.StyleDefault.Background(a.palette.tags[cell.Tag])
		isSel := focused && row == selected
		if isSel {
			style = tcell.StyleDefault.
				Background(a.palette.highlight).
				Foreground(a.palette.tags[cell.Tag]).
				Bold(true)
		}
		a.fill(layout.Rect{X: r.X, Y: y, Width: r.Width, Height: ch}, style)
		if isSel {
			a.text(r.X, y, r.Width, selectMarker+cell.Tag.String(), style)
		}
	}
}

func (a *App) drawLegend(r layout.Rect) {
	if r.Width < 2 || r.Height < 2 {
		return
	}
	st := a.palette.legend
	right, bottom := r.X+r.Width-1, r.Y+r.Height-1

	for x := r.X + 1; x < right; x++ {
		a.screen.SetContent(x, r.Y, tcell.RuneHLine, nil, st)
		a.screen.SetContent(x, bottom, tcell.RuneHLine, nil, st)
	}
	for y := r.Y + 1; y < bottom; y++ {
		a.screen.SetContent(r.X, y, tcell.RuneVLine, nil, st)
		a.screen.SetContent(right, y, tcell.RuneVLine, nil, st)
	}
	a.screen.SetContent(r.X, r.Y, tcell.RuneULCorner, nil, st)
	a.screen.SetContent(right, r.Y, tcell.RuneURCorner, nil, st)
	a.screen.SetContent(r.X, bottom, tcell.RuneLLCorner, nil, st)
	a.screen.SetContent(right, bottom, tcell.RuneLRCorner, nil, st)

	a.text(r.X+1, r.Y, r.Width-2, keymap.LegendTitle, st.Bold(true))
	for i, line := range a.keys.Legend() {
		y := r.Y + 1 + i
		if y >= bottom {
			break
		}
		a.text(r.X+1, y, r.Width-2, line, st)
	}
}

func (a *App) fill(r layout.Rect, style tcell.Style) {
	for y := r.Y; y < r.Y+r.Height; y++ {
		for x := r.X; x < r.X+r.Width; x++ {
			a.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

// text writes s from (x, y), cut at width cells.
func (a *App) text(x, y, width int, s string, style tcell.Style) {
	end := x + width
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if x+rw > end {
			return
		}
		a.screen.SetContent(x, y, r, nil, style)
		x += rw
	}
}
