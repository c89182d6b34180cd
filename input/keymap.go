package input

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// Action is what a key does besides pressing a button
type Action uint8

const (
	ActionNone Action = iota
	ActionPress
	ActionQuit
)

// KeyMap binds runes and special keys to buttons or quit
type KeyMap struct {
	runes map[rune]Buttons
	keys  map[tcell.Key]Buttons
	quitR map[rune]bool
	quitK map[tcell.Key]bool
}

// DefaultKeyMap binds w/Up to SW1, s/Down to SW2, q/Esc/Ctrl-C to quit
func DefaultKeyMap() *KeyMap {
	km := NewKeyMap()
	km.BindRune('w', Button1)
	km.BindKey(tcell.KeyUp, Button1)
	km.BindRune('s', Button2)
	km.BindKey(tcell.KeyDown, Button2)
	km.BindRune('e', Button3)
	km.BindRune('d', Button4)
	km.quitR['q'] = true
	km.quitK[tcell.KeyEscape] = true
	km.quitK[tcell.KeyCtrlC] = true
	return km
}

// NewKeyMap creates an empty map
func NewKeyMap() *KeyMap {
	return &KeyMap{
		runes: make(map[rune]Buttons),
		keys:  make(map[tcell.Key]Buttons),
		quitR: make(map[rune]bool),
		quitK: make(map[tcell.Key]bool),
	}
}

// BindRune maps a printable key to buttons
func (km *KeyMap) BindRune(r rune, b Buttons) {
	km.runes[r] = b
}

// BindKey maps a special key to buttons
func (km *KeyMap) BindKey(k tcell.Key, b Buttons) {
	km.keys[k] = b
}

// Bind parses a key name, single characters bind as runes and
// names such as "Up" or "Ctrl-C" resolve through tcell.KeyNames
func (km *KeyMap) Bind(name string, b Buttons) error {
	if r := []rune(name); len(r) == 1 {
		km.BindRune(r[0], b)
		return nil
	}
	k, ok := lookupKey(name)
	if !ok {
		return fmt.Errorf("unknown key name %q", name)
	}
	km.BindKey(k, b)
	return nil
}

// BindQuit parses a key name bound to quit
func (km *KeyMap) BindQuit(name string) error {
	if r := []rune(name); len(r) == 1 {
		km.quitR[r[0]] = true
		return nil
	}
	k, ok := lookupKey(name)
	if !ok {
		return fmt.Errorf("unknown key name %q", name)
	}
	km.quitK[k] = true
	return nil
}

// Resolve classifies a key event
func (km *KeyMap) Resolve(ev *tcell.EventKey) (Action, Buttons) {
	key := ev.Key()
	if key == tcell.KeyRune && ev.Modifiers()&tcell.ModCtrl != 0 {
		if r := unicode.ToLower(ev.Rune()); r >= 'a' && r <= 'z' {
			key = tcell.KeyCtrlA + tcell.Key(r-'a')
		}
	}

	if key == tcell.KeyRune {
		r := ev.Rune()
		if km.quitR[r] {
			return ActionQuit, ButtonNone
		}
		if b, ok := km.runes[r]; ok {
			return ActionPress, b
		}
		return ActionNone, ButtonNone
	}
	if km.quitK[key] {
		return ActionQuit, ButtonNone
	}
	if b, ok := km.keys[key]; ok {
		return ActionPress, b
	}
	return ActionNone, ButtonNone
}

func lookupKey(name string) (tcell.Key, bool) {
	for k, n := range tcell.KeyNames {
		if strings.EqualFold(n, name) {
			return k, true
		}
	}
	return 0, false
}
