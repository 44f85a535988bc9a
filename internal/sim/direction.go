package sim

import "strings"

// Direction is a decoded arrow-key command.
type Direction uint8

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

var directionNames = [...]string{
	DirNone:  "None",
	DirUp:    "Up",
	DirDown:  "Down",
	DirLeft:  "Left",
	DirRight: "Right",
}

func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return "Direction(?)"
}

// ParseDirection accepts "Up", "ArrowUp", "up" and similar spellings.
// Anything else decodes to DirNone.
func ParseDirection(name string) Direction {
	name = strings.TrimPrefix(strings.ToLower(name), "arrow")
	switch name {
	case "up":
		return DirUp
	case "down":
		return DirDown
	case "left":
		return DirLeft
	case "right":
		return DirRight
	}
	return DirNone
}

// unitSteps maps each direction to its unit step vector.
func unitSteps() map[Direction][2]float64 {
	return map[Direction][2]float64{
		DirUp:    {0, -1},
		DirDown:  {0, 1},
		DirLeft:  {-1, 0},
		DirRight: {1, 0},
	}
}
