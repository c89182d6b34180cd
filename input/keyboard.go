package input

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
)

// Keyboard turns terminal key presses into held buttons
// Terminals report no key release, so each press holds its button for the
// hold window and auto-repeat keeps it held while the key is down
type Keyboard struct {
	keys *KeyMap
	hold time.Duration
	now  func() time.Time

	mu      sync.Mutex
	expires [4]time.Time
}

// NewKeyboard creates a keyboard reader, now defaults to time.Now
func NewKeyboard(keys *KeyMap, hold time.Duration, now func() time.Time) *Keyboard {
	if keys == nil {
		keys = DefaultKeyMap()
	}
	if now == nil {
		now = time.Now
	}
	return &Keyboard{keys: keys, hold: hold, now: now}
}

// HandleEvent records a key press, returns false when the key requests quit
func (k *Keyboard) HandleEvent(ev tcell.Event) bool {
	kev, ok := ev.(*tcell.EventKey)
	if !ok {
		return true
	}

	action, buttons := k.keys.Resolve(kev)
	switch action {
	case ActionQuit:
		return false
	case ActionPress:
		k.Press(buttons)
	}
	return true
}

// Press holds buttons for the hold window from now
func (k *Keyboard) Press(b Buttons) {
	until := k.now().Add(k.hold)

	k.mu.Lock()
	defer k.mu.Unlock()
	for i := range k.expires {
		if b&(1<<i) != 0 {
			k.expires[i] = until
		}
	}
}

// Read returns buttons whose hold has not expired
func (k *Keyboard) Read() Buttons {
	now := k.now()

	k.mu.Lock()
	defer k.mu.Unlock()

	var b Buttons
	for i, exp := range k.expires {
		if now.Before(exp) {
			b |= 1 << i
		}
	}
	return b
}
