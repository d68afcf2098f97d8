package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"slotgrid/grid"
	"slotgrid/keymap"
	"slotgrid/layout"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	maxCellHeight = 3
	selectMarker  = "▶ "
)

func (m Model) View() string {
	frame := layout.Split(m.width, m.height, len(m.keys.Legend())+1)
	if frame.Columns[0].Width == 0 || frame.Legend.Width < 4 {
		return "terminal too small"
	}

	columns := m.grid.Columns()
	active := m.grid.Active()

	blocks := make([]string, 0, grid.Cols+1)
	for i, col := range columns {
		sel, ok := col.CurrentRow()
		blocks = append(blocks, m.column(col, frame.Columns[i], ok && i == active, sel))
	}
	blocks = append(blocks, m.legend(frame.Legend))

	return lipgloss.NewStyle().
		Margin(frame.Columns[0].Y, 0, 0, frame.Columns[0].X).
		Render(lipgloss.JoinHorizontal(lipgloss.Top, blocks...))
}

func (m Model) column(col grid.Column, r layout.Rect, focused bool, selected int) string {
	h := r.Height / grid.Rows
	if h > maxCellHeight {
		h = maxCellHeight
	}
	if h < 1 {
		h = 1
	}

	cells := make([]string, 0, grid.Rows)
	for row, cell := range col.Cells() {
		isSel := focused && row == selected
		text := ""
		if isSel {
			text = selectMarker + cell.Tag.String()
		}
		cells = append(cells, m.styles.cell(cell.Tag, isSel, r.Width, h).Render(text))
	}
	return lipgloss.JoinVertical(lipgloss.Left, cells...)
}

func (m Model) legend(r layout.Rect) string {
	// the border takes one cell on each side
	inner := r.Width - 2
	lines := append([]string{m.styles.Title.Render(keymap.LegendTitle)}, m.keys.Legend()...)

	height := r.Height - 2
	if height < len(lines) {
		height = len(lines)
	}
	return m.styles.Legend.
		Width(inner).
		Height(height).
		Render(strings.Join(lines, "\n"))
}
