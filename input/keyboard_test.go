package input

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

type manualClock struct {
	t time.Time
}

func (c *manualClock) now() time.Time { return c.t }

func TestKeyboardHoldWindow(t *testing.T) {
	clk := &manualClock{t: time.Unix(1000, 0)}
	kb := NewKeyboard(nil, 250*time.Millisecond, clk.now)

	if !kb.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone)) {
		t.Fatal("press should not quit")
	}
	if got := kb.Read(); got != Button1 {
		t.Fatalf("Read = %v, want SW1", got)
	}

	clk.t = clk.t.Add(200 * time.Millisecond)
	kb.HandleEvent(tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone))
	if got := kb.Read(); got != Button1|Button2 {
		t.Fatalf("Read = %v, want SW1|SW2", got)
	}

	clk.t = clk.t.Add(100 * time.Millisecond)
	if got := kb.Read(); got != Button2 {
		t.Errorf("SW1 should have expired, got %v", got)
	}

	clk.t = clk.t.Add(time.Second)
	if got := kb.Read(); got != ButtonNone {
		t.Errorf("all buttons should be released, got %v", got)
	}
}

func TestKeyboardQuitKeys(t *testing.T) {
	kb := NewKeyboard(nil, time.Second, nil)

	tests := []struct {
		name string
		ev   *tcell.EventKey
	}{
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)},
		{"esc", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if kb.HandleEvent(tt.ev) {
				t.Errorf("%s should request quit", tt.name)
			}
		})
	}

	if !kb.HandleEvent(tcell.NewEventResize(80, 24)) {
		t.Error("non-key events must not quit")
	}
}

func TestKeyMapBindByName(t *testing.T) {
	km := NewKeyMap()
	if err := km.Bind("Left", Button3); err != nil {
		t.Fatalf("Bind(Left): %v", err)
	}
	if err := km.Bind("x", Button4); err != nil {
		t.Fatalf("Bind(x): %v", err)
	}
	if err := km.Bind("NoSuchKey", Button1); err == nil {
		t.Error("unknown key name accepted")
	}

	if a, b := km.Resolve(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone)); a != ActionPress || b != Button3 {
		t.Errorf("Left resolved to %v %v", a, b)
	}
	if a, b := km.Resolve(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)); a != ActionPress || b != Button4 {
		t.Errorf("x resolved to %v %v", a, b)
	}
	if a, _ := km.Resolve(tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone)); a != ActionNone {
		t.Errorf("unbound key resolved to %v", a)
	}
}

func TestButtonsLineIsActiveLow(t *testing.T) {
	pressed := Button1 | Button3
	if pressed.Line(Button1) {
		t.Error("held SW1 should pull its line low")
	}
	if !pressed.Line(Button2) {
		t.Error("released SW2 line should read high")
	}
	if pressed.String() != "SW1|SW3" {
		t.Errorf("String = %q", pressed.String())
	}
	if !pressed.Has(Button3) || pressed.Has(Button2) || pressed.Has(ButtonNone) {
		t.Error("Has mismatch")
	}
}
