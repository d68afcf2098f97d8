package keymap

import "fmt"

// LegendTitle heads the command panel.
const LegendTitle = "Available Commands"

// Legend is the static text of the command panel.
func (m Map) Legend() []string {
	move := fmt.Sprintf("%s %s %s %s",
		m.Left.Help().Key, m.Up.Help().Key, m.Down.Help().Key, m.Right.Help().Key)

	lines := []string{"Use " + move + " to select slot"}
	for _, b := range m.ShortHelp() {
		h := b.Help()
		lines = append(lines, fmt.Sprintf("Press '%s' to %s", h.Key, h.Desc))
	}
	return lines
}
