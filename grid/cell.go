package grid

// Tag is the visual state of a slot.
type Tag int

const (
	Empty Tag = iota
	Black
	White
)

func (t Tag) String() string {
	switch t {
	case Black:
		return "black"
	case White:
		return "white"
	default:
		return "empty"
	}
}

// Cell is a single slot of the grid.
type Cell struct {
	Tag Tag
}

// paint toggles the cell to tag, or back to Empty when it already carries it.
func (c *Cell) paint(tag Tag) {
	if c.Tag == tag {
		c.Tag = Empty
		return
	}
	c.Tag = tag
}
