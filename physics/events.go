package physics

import "strings"

// Events is a bitmask of what happened during one advance
type Events uint8

const (
	EventWall Events = 1 << iota
	EventPaddle
	EventScoreLeft
	EventScoreRight

	EventNone  Events = 0
	EventScore        = EventScoreLeft | EventScoreRight
)

// Has reports whether any event in mask fired
func (e Events) Has(mask Events) bool {
	return e&mask != 0
}

func (e Events) String() string {
	if e == EventNone {
		return "none"
	}
	var parts []string
	for i, name := range [...]string{"wall", "paddle", "score-left", "score-right"} {
		if e&(1<<i) != 0 {
			parts = append(parts, name)
		}
	}
	return strings.Join(parts, "|")
}
