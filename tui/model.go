// Package tui is the bubbletea front end of the slot grid.
package tui

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"slotgrid/grid"
	"slotgrid/keymap"
	"slotgrid/logging"
)

var logCtx = logging.PackageCtx("tui")

type Model struct {
	grid   *grid.Grid
	keys   keymap.Map
	styles Styles

	// terminal dimensions (populated from WindowSizeMsg)
	width  int
	height int
}

func New(g *grid.Grid, keys keymap.Map, styles Styles) Model {
	return Model{
		grid:   g,
		keys:   keys,
		styles: styles,
		width:  defaultWidth,
		height: defaultHeight,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		a := m.keys.Action(msg)
		if a == grid.None {
			return m, nil
		}
		slog.DebugContext(logCtx, "key", "key", msg.String(), "action", a)
		if m.grid.Dispatch(a) {
			return m, tea.Quit
		}
	}
	return m, nil
}

// Run takes over the terminal until the user quits. bubbletea restores the
// terminal on every return path, panics included.
func Run(m Model, altScreen bool, opts ...tea.ProgramOption) error {
	if altScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	p := tea.NewProgram(m, opts...)
	_, err := p.Run()
	return err
}
