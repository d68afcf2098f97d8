// Package tcellui draws the slot grid straight onto a tcell screen. It is
// the low-level alternative to the bubbletea front end.
package tcellui

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gdamore/tcell/v2"

	"slotgrid/config"
	"slotgrid/grid"
	"slotgrid/keymap"
	"slotgrid/logging"
)

// ErrInputClosed is returned by Loop when the screen stops delivering events.
var ErrInputClosed = errors.New("terminal input closed")

var logCtx = logging.PackageCtx("tcellui")

type App struct {
	screen  tcell.Screen
	grid    *grid.Grid
	keys    keymap.Map
	palette palette
}

// Start initialises screen and switches the terminal to raw mode.
// Callers must Close the App on every exit path.
func Start(screen tcell.Screen, g *grid.Grid, keys keymap.Map, colors config.Colors) (*App, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("initializing screen: %w", err)
	}
	screen.HideCursor()

	return &App{
		screen:  screen,
		grid:    g,
		keys:    keys,
		palette: newPalette(colors),
	}, nil
}

// Close restores the terminal.
func (a *App) Close() {
	a.screen.Fini()
}

// Loop draws a frame, waits for the next event and applies it, until the
// quit key is pressed.
func (a *App) Loop() error {
	for {
		a.draw()

		switch ev := a.screen.PollEvent().(type) {
		case nil:
			return ErrInputClosed
		case *tcell.EventResize:
			a.screen.Sync()
		case *tcell.EventKey:
			name := keyName(ev)
			act := a.keys.Action(keymap.Name(name))
			if act == grid.None {
				continue
			}
			slog.DebugContext(logCtx, "key", "key", name, "action", act)
			if a.grid.Dispatch(act) {
				return nil
			}
		}
	}
}

// keyName spells ev the way bubbletea names keys, so one keymap serves
// both front ends.
func keyName(ev *tcell.EventKey) string {
	switch ev.Key() {
	case tcell.KeyUp:
		return "up"
	case tcell.KeyDown:
		return "down"
	case tcell.KeyLeft:
		return "left"
	case tcell.KeyRight:
		return "right"
	case tcell.KeyEnter:
		return "enter"
	case tcell.KeyEscape:
		return "esc"
	case tcell.KeyTab:
		return "tab"
	case tcell.KeyCtrlC:
		return "ctrl+c"
	case tcell.KeyRune:
		return string(ev.Rune())
	}
	return strings.ToLower(ev.Name())
}
