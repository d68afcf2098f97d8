package grid

import "fmt"

// Action is an input already decoded from a key press.
type Action int

const (
	None Action = iota
	Up
	Down
	Left
	Right
	PaintWhite
	PaintBlack
	Clear
	Quit
)

var actionNames = map[Action]string{
	None:       "none",
	Up:         "up",
	Down:       "down",
	Left:       "left",
	Right:      "right",
	PaintWhite: "white",
	PaintBlack: "black",
	Clear:      "clear",
	Quit:       "quit",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return fmt.Sprintf("action(%d)", int(a))
}

// ParseAction looks up an action by the name used in configuration files.
func ParseAction(name string) (Action, error) {
	for a, n := range actionNames {
		if n == name && a != None {
			return a, nil
		}
	}
	return None, fmt.Errorf("unknown action %q", name)
}
