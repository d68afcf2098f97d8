// Package layout computes the frame geometry shared by the renderers.
package layout

import "slotgrid/grid"

const (
	margin        = 1
	legendPercent = 30
)

// Rect is a screen area in cells.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Frame places the three grid columns on the left half of the screen and
// the legend panel at the top of the right half.
type Frame struct {
	Columns [grid.Cols]Rect
	Legend  Rect
}

// Split lays out a width x height screen. The legend gets 30% of the
// height but at least enough rows for legendLines plus its border.
// Degenerate sizes produce empty rectangles, never negative ones.
func Split(width, height, legendLines int) Frame {
	inner := Rect{X: margin, Y: margin, Width: nonNeg(width - 2*margin), Height: nonNeg(height - 2*margin)}

	left, right := splitHorizontal(inner)

	var f Frame
	colWidth := left.Width / grid.Cols
	for i := range f.Columns {
		f.Columns[i] = Rect{
			X:      left.X + i*colWidth,
			Y:      left.Y,
			Width:  colWidth,
			Height: left.Height,
		}
	}

	legendHeight := right.Height * legendPercent / 100
	if want := legendLines + 2; legendHeight < want {
		legendHeight = min(want, right.Height)
	}
	f.Legend = Rect{
		X:      right.X,
		Y:      right.Y,
		Width:  right.Width,
		Height: legendHeight,
	}
	return f
}

func splitHorizontal(r Rect) (Rect, Rect) {
	half := r.Width / 2
	left := Rect{X: r.X, Y: r.Y, Width: half, Height: r.Height}
	right := Rect{X: r.X + half, Y: r.Y, Width: r.Width - half, Height: r.Height}
	return left, right
}

func nonNeg(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
