package tcellui_test

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slotgrid/config"
	"slotgrid/grid"
	"slotgrid/keymap"
	"slotgrid/tcellui"
)

var colors = config.Colors{
	Empty:     "#cd3131",
	Black:     "#000000",
	White:     "#ffffff",
	Highlight: "#767676",
	Legend:    "#e5e510",
}

func start(t *testing.T) (tcell.SimulationScreen, *tcellui.App, *grid.Grid) {
	t.Helper()
	return startWith(t, keymap.Default())
}

func startWith(t *testing.T, keys keymap.Map) (tcell.SimulationScreen, *tcellui.App, *grid.Grid) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	g := grid.New()

	app, err := tcellui.Start(screen, g, keys, colors)
	require.NoError(t, err)
	t.Cleanup(app.Close)

	screen.SetSize(80, 24)
	return screen, app, g
}

func screenText(screen tcell.SimulationScreen) string {
	cells, w, _ := screen.GetContents()
	var b strings.Builder
	for i, c := range cells {
		if len(c.Runes) > 0 {
			b.WriteRune(c.Runes[0])
		} else {
			b.WriteRune(' ')
		}
		if (i+1)%w == 0 {
			b.WriteRune('\n')
		}
	}
	return b.String()
}

func TestLoopAppliesKeys(t *testing.T) {
	screen, app, g := start(t)

	screen.InjectKey(tcell.KeyDown, 0, tcell.ModNone)
	screen.InjectKey(tcell.KeyDown, 0, tcell.ModNone)
	screen.InjectKey(tcell.KeyRight, 0, tcell.ModNone)
	screen.InjectKey(tcell.KeyUp, 0, tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'w', tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	require.NoError(t, app.Loop())

	col, row, ok := g.Selected()
	require.True(t, ok)
	assert.Equal(t, 1, col)
	assert.Equal(t, 0, row)
	assert.Equal(t, grid.White, g.Columns()[1].Cell(0).Tag)
}

func TestSpaceBinding(t *testing.T) {
	keys, err := keymap.New(map[string][]string{"black": {"space"}})
	require.NoError(t, err)
	screen, app, g := startWith(t, keys)

	screen.InjectKey(tcell.KeyDown, 0, tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, ' ', tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	require.NoError(t, app.Loop())

	assert.Equal(t, grid.Black, g.Columns()[0].Cell(0).Tag)
}

func TestLoopIgnoresUnknownKeys(t *testing.T) {
	screen, app, g := start(t)

	screen.InjectKey(tcell.KeyRune, 'z', tcell.ModNone)
	screen.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)
	screen.InjectKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)

	require.NoError(t, app.Loop())
	assert.False(t, g.Focused())
}

func TestFrame(t *testing.T) {
	screen, app, _ := start(t)

	screen.InjectKey(tcell.KeyRune, 'j', tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'b', tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	require.NoError(t, app.Loop())

	text := screenText(screen)
	assert.Contains(t, text, keymap.LegendTitle)
	assert.Contains(t, text, "Press 'w' to select white")
	assert.Contains(t, text, "▶ black")
	assert.Equal(t, 1, strings.Count(text, "▶"))
}
