package tui_test

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slotgrid/config"
	"slotgrid/grid"
	"slotgrid/keymap"
	"slotgrid/tui"
)

var defaultColors = config.Colors{
	Empty:     "#cd3131",
	Black:     "#000000",
	White:     "#ffffff",
	Highlight: "#767676",
	Legend:    "#e5e510",
}

func newModel() (tui.Model, *grid.Grid) {
	g := grid.New()
	return tui.New(g, keymap.Default(), tui.NewStyles(defaultColors)), g
}

func send(t *testing.T, m tea.Model, msgs ...tea.Msg) (tea.Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		m, cmd = m.Update(msg)
	}
	return m, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestArrowNavigation(t *testing.T) {
	m, g := newModel()
	_, cmd := send(t, m,
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyRight},
		tea.KeyMsg{Type: tea.KeyUp},
	)
	assert.Nil(t, cmd)

	col, row, ok := g.Selected()
	require.True(t, ok)
	assert.Equal(t, 1, col)
	assert.Equal(t, 0, row)
}

func TestVimKeysAndPaint(t *testing.T) {
	m, g := newModel()
	send(t, m, runes("j"), runes("l"), runes("l"), runes("w"), runes("h"), runes("b"))

	cols := g.Columns()
	assert.Equal(t, grid.White, cols[2].Cell(0).Tag)
	assert.Equal(t, grid.Black, cols[1].Cell(0).Tag)
	assert.Equal(t, grid.Empty, cols[0].Cell(0).Tag)
}

func TestSpaceBinding(t *testing.T) {
	g := grid.New()
	keys, err := keymap.New(map[string][]string{"white": {"space"}})
	require.NoError(t, err)
	m := tui.New(g, keys, tui.NewStyles(defaultColors))

	send(t, m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeySpace})
	assert.Equal(t, grid.White, g.Columns()[0].Cell(0).Tag)
}

func TestUnknownKeysAreIgnored(t *testing.T) {
	m, g := newModel()
	_, cmd := send(t, m, runes("z"), tea.KeyMsg{Type: tea.KeyEnter}, tea.KeyMsg{Type: tea.KeyTab})
	assert.Nil(t, cmd)
	assert.False(t, g.Focused())
}

func TestQuit(t *testing.T) {
	for _, msg := range []tea.KeyMsg{runes("q"), {Type: tea.KeyCtrlC}} {
		m, _ := newModel()
		_, cmd := send(t, m, msg)
		require.NotNil(t, cmd, msg.String())
		assert.IsType(t, tea.QuitMsg{}, cmd())
	}
}

func TestView(t *testing.T) {
	m, _ := newModel()
	updated, _ := send(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	view := updated.View()
	assert.Contains(t, view, keymap.LegendTitle)
	assert.Contains(t, view, "Press 'b' to select black")
	assert.NotContains(t, view, "▶")

	updated, _ = send(t, updated, tea.KeyMsg{Type: tea.KeyDown}, runes("w"))
	view = updated.View()
	assert.Contains(t, view, "▶ white")
	assert.Equal(t, 1, strings.Count(view, "▶"))
}

func TestViewTooSmall(t *testing.T) {
	m, _ := newModel()
	updated, _ := send(t, m, tea.WindowSizeMsg{Width: 4, Height: 4})
	assert.Equal(t, "terminal too small", updated.View())
}
