// Package keymap turns key names into grid actions and renders the command
// legend from the same bindings.
package keymap

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/bubbles/key"

	"slotgrid/grid"
)

// Map holds one binding per action.
type Map struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	White key.Binding
	Black key.Binding
	Clear key.Binding
	Quit  key.Binding
}

// Default is the stock layout: arrows or hjkl to move, w/b to paint, x to
// clear and q to quit.
func Default() Map {
	return Map{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "move down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous column"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next column"),
		),
		White: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "select white"),
		),
		Black: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "select black"),
		),
		Clear: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "clear slot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "exit"),
		),
	}
}

// New returns the default map with the bindings named in overrides replaced.
// Keys of overrides are action names as accepted by grid.ParseAction.
func New(overrides map[string][]string) (Map, error) {
	m := Default()

	names := make([]string, 0, len(overrides))
	for name := range overrides {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		keys := overrides[name]
		a, err := grid.ParseAction(name)
		if err != nil {
			return Map{}, fmt.Errorf("key bindings: %w", err)
		}
		if len(keys) == 0 {
			return Map{}, fmt.Errorf("key bindings: no keys given for %q", name)
		}
		b := m.binding(a)
		b.SetKeys(keyNames(keys)...)
		b.SetHelp(keys[0], b.Help().Desc)
	}

	if err := m.checkConflicts(); err != nil {
		return Map{}, err
	}
	return m, nil
}

// actions lists every bindable action in legend order.
var actions = []grid.Action{
	grid.Up, grid.Down, grid.Left, grid.Right,
	grid.PaintWhite, grid.PaintBlack, grid.Clear, grid.Quit,
}

// checkConflicts rejects a key bound to two actions; Action would only ever
// report the first of them.
func (m *Map) checkConflicts() error {
	owner := make(map[string]grid.Action)
	for _, a := range actions {
		for _, k := range m.binding(a).Keys() {
			if prev, ok := owner[k]; ok && prev != a {
				return fmt.Errorf("key bindings: %q bound to both %s and %s", k, prev, a)
			}
			owner[k] = a
		}
	}
	return nil
}

// keyNames maps config spellings to the names the terminal libraries report.
// bubbletea calls the space bar " ".
func keyNames(keys []string) []string {
	out := make([]string, len(keys))
	for i, k := range keys {
		if k == "space" {
			k = " "
		}
		out[i] = k
	}
	return out
}

func (m *Map) binding(a grid.Action) *key.Binding {
	switch a {
	case grid.Up:
		return &m.Up
	case grid.Down:
		return &m.Down
	case grid.Left:
		return &m.Left
	case grid.Right:
		return &m.Right
	case grid.PaintWhite:
		return &m.White
	case grid.PaintBlack:
		return &m.Black
	case grid.Clear:
		return &m.Clear
	case grid.Quit:
		return &m.Quit
	}
	return nil
}

// Action resolves a key press. Unbound keys give grid.None.
func (m Map) Action(k fmt.Stringer) grid.Action {
	switch {
	case key.Matches(k, m.Quit):
		return grid.Quit
	case key.Matches(k, m.Up):
		return grid.Up
	case key.Matches(k, m.Down):
		return grid.Down
	case key.Matches(k, m.Left):
		return grid.Left
	case key.Matches(k, m.Right):
		return grid.Right
	case key.Matches(k, m.White):
		return grid.PaintWhite
	case key.Matches(k, m.Black):
		return grid.PaintBlack
	case key.Matches(k, m.Clear):
		return grid.Clear
	}
	return grid.None
}

// Name is a key name in bubbletea notation ("up", "ctrl+c", "w").
type Name string

func (n Name) String() string { return string(n) }

func (m Map) ShortHelp() []key.Binding {
	return []key.Binding{m.White, m.Black, m.Clear, m.Quit}
}
