// Package grid holds the 3x3 slot grid and the navigation rules that move
// the focus between its columns.
package grid

// Cols is the number of columns in the grid.
const Cols = 3

// Grid owns three columns. At most one of them, the active one, has a
// selected row.
type Grid struct {
	columns    [Cols]Column
	active     int
	remembered int
}

// New returns a grid with every cell Empty and nothing selected.
func New() *Grid {
	return &Grid{}
}

// Dispatch applies a to the grid. It reports true when a asks to quit.
func (g *Grid) Dispatch(a Action) (quit bool) {
	switch a {
	case Down:
		g.Down()
	case Up:
		g.Up()
	case Right:
		g.Right()
	case Left:
		g.Left()
	case PaintWhite:
		g.Paint(White)
	case PaintBlack:
		g.Paint(Black)
	case Clear:
		g.Clear()
	case Quit:
		return true
	}
	return false
}

func (g *Grid) Down() {
	col := &g.columns[g.active]
	col.MoveDown(g.remembered)
	g.remember(col)
}

func (g *Grid) Up() {
	col := &g.columns[g.active]
	col.MoveUp(g.remembered)
	g.remember(col)
}

// Right moves the focus one column to the right, keeping the remembered row.
// It does nothing on the last column.
func (g *Grid) Right() {
	if g.active >= Cols-1 {
		return
	}
	g.switchTo(g.active + 1)
}

// Left is the mirror of Right.
func (g *Grid) Left() {
	if g.active <= 0 {
		return
	}
	g.switchTo(g.active - 1)
}

// Paint toggles the selected cell of the active column to tag.
// Without a selection nothing changes.
func (g *Grid) Paint(tag Tag) {
	if cell := g.columns[g.active].selectedCell(); cell != nil {
		cell.paint(tag)
	}
}

// Clear resets the selected cell of the active column to Empty.
func (g *Grid) Clear() {
	if cell := g.columns[g.active].selectedCell(); cell != nil {
		cell.Tag = Empty
	}
}

func (g *Grid) switchTo(next int) {
	g.columns[g.active].ClearSelection()
	g.active = next
	g.columns[g.active].MoveDown(g.remembered)
}

func (g *Grid) remember(col *Column) {
	if row, ok := col.CurrentRow(); ok {
		g.remembered = row
	}
}

// Columns returns a copy of the columns for rendering.
func (g *Grid) Columns() [Cols]Column {
	return g.columns
}

func (g *Grid) Active() int {
	return g.active
}

// Selected returns the focused position. ok is false until the first
// navigation input.
func (g *Grid) Selected() (col, row int, ok bool) {
	row, ok = g.columns[g.active].CurrentRow()
	return g.active, row, ok
}

// Focused reports whether the active column has a selection.
func (g *Grid) Focused() bool {
	_, ok := g.columns[g.active].CurrentRow()
	return ok
}

// RememberedRow is the row carried across column switches.
func (g *Grid) RememberedRow() int {
	return g.remembered
}
