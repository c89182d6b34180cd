package core

// Color stores explicit 8-bit channels, decoupled from tcell
type Color struct {
	R, G, B uint8
}

// Named colors of the handheld LCD palette
var (
	ColorBlack  = Color{0, 0, 0}
	ColorWhite  = Color{255, 255, 255}
	ColorRed    = Color{255, 0, 0}
	ColorBlue   = Color{0, 0, 255}
	ColorGreen  = Color{0, 255, 0}
	ColorOrange = Color{255, 165, 0}
	ColorPurple = Color{160, 32, 240}
)

var namedColors = map[string]Color{
	"black":  ColorBlack,
	"white":  ColorWhite,
	"red":    ColorRed,
	"blue":   ColorBlue,
	"green":  ColorGreen,
	"orange": ColorOrange,
	"purple": ColorPurple,
}

// ParseColor resolves a palette name or "#rrggbb" hex string
func ParseColor(s string) (Color, bool) {
	if c, ok := namedColors[s]; ok {
		return c, true
	}
	if len(s) != 7 || s[0] != '#' {
		return Color{}, false
	}
	var ch [3]uint8
	for i := 0; i < 3; i++ {
		hi, ok1 := hexNibble(s[1+2*i])
		lo, ok2 := hexNibble(s[2+2*i])
		if !ok1 || !ok2 {
			return Color{}, false
		}
		ch[i] = hi<<4 | lo
	}
	return Color{R: ch[0], G: ch[1], B: ch[2]}, true
}

func hexNibble(b byte) (uint8, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	}
	return 0, false
}
