package grid

// Rows is the number of cells in a column.
const Rows = 3

// Column is a fixed list of cells with an optional selected row.
type Column struct {
	cells    [Rows]Cell
	row      int
	selected bool
}

// MoveDown advances the selection by one row, stopping at the last row.
// An unselected column selects fallback instead.
func (c *Column) MoveDown(fallback int) {
	if !c.selected {
		c.selectRow(fallback)
		return
	}
	if c.row < Rows-1 {
		c.row++
	}
}

// MoveUp moves the selection back by one row, stopping at the first row.
// An unselected column selects fallback instead.
func (c *Column) MoveUp(fallback int) {
	if !c.selected {
		c.selectRow(fallback)
		return
	}
	if c.row > 0 {
		c.row--
	}
}

// CurrentRow returns the selected row. ok is false when nothing is selected.
func (c Column) CurrentRow() (row int, ok bool) {
	return c.row, c.selected
}

func (c *Column) ClearSelection() {
	c.row = 0
	c.selected = false
}

// Cell returns the cell at row, clamped to the column bounds.
func (c Column) Cell(row int) Cell {
	return c.cells[clampRow(row)]
}

func (c Column) Cells() [Rows]Cell {
	return c.cells
}

func (c *Column) selectRow(row int) {
	c.row = clampRow(row)
	c.selected = true
}

// selectedCell returns nil when the column has no selection.
func (c *Column) selectedCell() *Cell {
	if !c.selected {
		return nil
	}
	return &c.cells[c.row]
}

func clampRow(row int) int {
	if row < 0 {
		return 0
	}
	if row >= Rows {
		return Rows - 1
	}
	return row
}
