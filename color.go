package cobracolor

import (
	"strconv"
	"strings"
)

// colorKind discriminates the variants of a Color value.
type colorKind uint8

const (
	colorNone colorKind = iota
	colorNamed
	colorPalette
	colorRGB
)

// Color is a terminal color in one of three address spaces: one of the 16
// classic named colors, a 256-palette index, or a 24-bit RGB triple. The
// zero value means "no color" and produces no escape codes.
type Color struct {
	kind  colorKind
	base  uint8 // named: 0-7 digit within the base/light block
	light bool  // named: use the bright 90/100 block
	index uint8 // palette: 0-255
	r     uint8
	g     uint8
	b     uint8
}

// NoColor is the absent color. It is the zero value of Color.
var NoColor = Color{}

// Single-letter color names, matching the classic 8-color order.
var namedCodes = map[byte]uint8{
	'd': 0, // dark/black
	'r': 1,
	'g': 2,
	'y': 3,
	'b': 4,
	'm': 5,
	'c': 6,
	'w': 7,
}

// Named returns one of the 16 classic colors by its short name: "d", "r",
// "g", "y", "b", "m", "c", "w", or the same prefixed with "l" for the
// bright variant ("lr" is light red). Unknown names yield NoColor.
func Named(name string) Color {
	switch len(name) {
	case 1:
		if base, ok := namedCodes[name[0]]; ok {
			return Color{kind: colorNamed, base: base}
		}
	case 2:
		if name[0] == 'l' {
			if base, ok := namedCodes[name[1]]; ok {
				return Color{kind: colorNamed, base: base, light: true}
			}
		}
	}
	return NoColor
}

// Palette returns a color from the 256-entry terminal palette. Indices
// outside [0,255] yield NoColor.
func Palette(n int) Color {
	if n < 0 || n > 255 {
		return NoColor
	}
	return Color{kind: colorPalette, index: uint8(n)}
}

// RGB returns a 24-bit truecolor value. Channels are clamped to [0,255].
func RGB(r, g, b int) Color {
	return Color{kind: colorRGB, r: clampChannel(r), g: clampChannel(g), b: clampChannel(b)}
}

func clampChannel(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// ParseColor interprets a color argument given as text: a short color name
// ("r", "lb"), a decimal palette index ("203"), or a hex triple ("#ff8800").
// Anything else yields NoColor.
func ParseColor(s string) Color {
	if s == "" {
		return NoColor
	}
	if c := Named(s); c.kind != colorNone {
		return c
	}
	if n, err := strconv.Atoi(s); err == nil {
		return Palette(n)
	}
	if len(s) == 7 && s[0] == '#' {
		if v, err := strconv.ParseUint(s[1:], 16, 32); err == nil {
			return RGB(int(v>>16&0xff), int(v>>8&0xff), int(v&0xff))
		}
	}
	return NoColor
}

// IsZero reports whether the color is absent.
func (c Color) IsZero() bool {
	return c.kind == colorNone
}

// code renders the SGR parameter fragment for the color, or "" when absent.
func (c Color) code(foreground bool) string {
	switch c.kind {
	case colorNamed:
		block := 30
		if !foreground {
			block = 40
		}
		if c.light {
			block += 60
		}
		return strconv.Itoa(block + int(c.base))
	case colorPalette:
		if foreground {
			return "38;5;" + strconv.Itoa(int(c.index))
		}
		return "48;5;" + strconv.Itoa(int(c.index))
	case colorRGB:
		sb := strings.Builder{}
		if foreground {
			sb.WriteString("38;2;")
		} else {
			sb.WriteString("48;2;")
		}
		sb.WriteString(strconv.Itoa(int(c.r)))
		sb.WriteByte(';')
		sb.WriteString(strconv.Itoa(int(c.g)))
		sb.WriteByte(';')
		sb.WriteString(strconv.Itoa(int(c.b)))
		return sb.String()
	}
	return ""
}

// Style is a single SGR text attribute.
type Style uint8

const (
	Bold Style = iota + 1
	Dim
	Italic
	Underline
	Blink
	Selected // reverse video
	Strikethrough

	styleEnd
)

var styleCodes = [...]string{
	Bold:          "1",
	Dim:           "2",
	Italic:        "3",
	Underline:     "4",
	Blink:         "5",
	Selected:      "7",
	Strikethrough: "9",
}

// ParseStyle maps a style name to its Style value. Both the short and long
// spellings of underline and strikethrough are accepted. Unknown names
// return 0, which encodes to nothing.
func ParseStyle(name string) Style {
	switch name {
	case "bold":
		return Bold
	case "dim":
		return Dim
	case "italic":
		return Italic
	case "udl", "underline":
		return Underline
	case "blink":
		return Blink
	case "selected":
		return Selected
	case "del", "delete", "strikethrough":
		return Strikethrough
	}
	return 0
}

// StyleSet is a combination of text attributes. Encoding order is fixed by
// the Style enumeration, not by the order styles were added.
type StyleSet uint8

// Styles builds a StyleSet from individual attributes. Values outside the
// known enumeration are dropped silently.
func Styles(styles ...Style) StyleSet {
	var set StyleSet
	for _, s := range styles {
		if s >= Bold && s < styleEnd {
			set |= 1 << (s - 1)
		}
	}
	return set
}

// Has reports whether the set contains the given style.
func (set StyleSet) Has(s Style) bool {
	if s < Bold || s >= styleEnd {
		return false
	}
	return set&(1<<(s-1)) != 0
}

// encode turns color and style options into the two SGR parameter fragments
// carried by a Segment. It is pure and never fails: invalid input simply
// contributes no codes.
func encode(fg, bg Color, styles StyleSet) (styleCode, colorCode string) {
	sb := strings.Builder{}
	for s := Bold; s < styleEnd; s++ {
		if !styles.Has(s) {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte(';')
		}
		sb.WriteString(styleCodes[s])
	}
	styleCode = sb.String()

	foreground := fg.code(true)
	background := bg.code(false)
	switch {
	case foreground != "" && background != "":
		colorCode = foreground + ";" + background
	case foreground != "":
		colorCode = foreground
	default:
		colorCode = background
	}
	return styleCode, colorCode
}
