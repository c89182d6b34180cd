// Package input samples the four game buttons as a bitmask snapshot
package input

import "strings"

// Buttons is a bitmask of pressed buttons, bit n is switch n+1
type Buttons uint8

const (
	Button1 Buttons = 1 << iota
	Button2
	Button3
	Button4

	ButtonNone Buttons = 0
	ButtonAll          = Button1 | Button2 | Button3 | Button4
)

// Has reports whether every button in mask is pressed
func (b Buttons) Has(mask Buttons) bool {
	return mask != 0 && b&mask == mask
}

// Line returns the active-low line level for mask: true while released
func (b Buttons) Line(mask Buttons) bool {
	return b&mask == 0
}

// String lists pressed switches, e.g. "SW1|SW3"
func (b Buttons) String() string {
	if b == 0 {
		return "none"
	}
	names := make([]string, 0, 4)
	for i, name := range [...]string{"SW1", "SW2", "SW3", "SW4"} {
		if b&(1<<i) != 0 {
			names = append(names, name)
		}
	}
	return strings.Join(names, "|")
}

// Reader returns a snapshot of currently pressed buttons
type Reader interface {
	Read() Buttons
}

// Fixed is a Reader that always reports the same buttons
type Fixed Buttons

func (f Fixed) Read() Buttons {
	return Buttons(f)
}
