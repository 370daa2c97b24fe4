package cobracolor

import (
	"math"
	"os"
	"strings"

	"golang.org/x/term"
)

// ColorLevel describes how much color the terminal is believed to support.
type ColorLevel int

const (
	// LevelNone disables color entirely.
	LevelNone ColorLevel = iota
	// LevelBasic supports the 16 classic colors.
	LevelBasic
	// Level256 supports the 256-entry palette.
	Level256
	// LevelTrueColor supports 24-bit RGB.
	LevelTrueColor
)

// String returns the level name.
func (l ColorLevel) String() string {
	switch l {
	case LevelBasic:
		return "basic"
	case Level256:
		return "256"
	case LevelTrueColor:
		return "truecolor"
	}
	return "none"
}

// DetectColorLevel inspects the environment to guess the terminal's color
// support. Environment variables only; no control-sequence round trips, so
// it is safe to call from non-interactive contexts.
func DetectColorLevel() ColorLevel {
	if os.Getenv("NO_COLOR") != "" {
		return LevelNone
	}
	if os.Getenv("FORCE_COLOR") != "" {
		return LevelTrueColor
	}
	switch strings.ToLower(os.Getenv("COLORTERM")) {
	case "truecolor", "24bit":
		return LevelTrueColor
	}
	termEnv := os.Getenv("TERM")
	switch {
	case termEnv == "" || termEnv == "dumb":
		return LevelNone
	case strings.Contains(termEnv, "256color"):
		return Level256
	}
	return LevelBasic
}

// TerminalCells returns the terminal size in character cells, or ok=false
// when stdout is not a terminal.
func TerminalCells() (cols, rows int, ok bool) {
	cols, rows, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || cols <= 0 || rows <= 0 {
		return 0, 0, false
	}
	return cols, rows, true
}

// xterm default values for the 16 classic colors, base then light.
var namedRGB = [16][3]uint8{
	{0, 0, 0},
	{205, 0, 0},
	{0, 205, 0},
	{205, 205, 0},
	{0, 0, 238},
	{205, 0, 205},
	{0, 205, 205},
	{229, 229, 229},
	{127, 127, 127},
	{255, 0, 0},
	{0, 255, 0},
	{255, 255, 0},
	{92, 92, 255},
	{255, 0, 255},
	{0, 255, 255},
	{255, 255, 255},
}

// cubeLevels are the channel values of the 6x6x6 palette cube.
var cubeLevels = [6]uint8{0, 95, 135, 175, 215, 255}

// Downsample reduces a color to what the given level can express: truecolor
// collapses to the nearest palette entry at Level256 and to the nearest of
// the 16 classic colors at LevelBasic; LevelNone removes color. The codec
// itself never downsamples; this is for callers that want output matched to
// a detected terminal.
func Downsample(c Color, level ColorLevel) Color {
	if c.kind == colorNone || level == LevelNone {
		return NoColor
	}
	switch level {
	case LevelTrueColor:
		return c
	case Level256:
		if c.kind == colorRGB {
			return Palette(nearestPaletteIndex(c.r, c.g, c.b))
		}
		return c
	default:
		if c.kind == colorNamed {
			return c
		}
		r, g, b := c.rgbValue()
		return nearestNamed(r, g, b)
	}
}

// rgbValue resolves any non-absent color to a concrete RGB triple.
func (c Color) rgbValue() (r, g, b uint8) {
	switch c.kind {
	case colorRGB:
		return c.r, c.g, c.b
	case colorPalette:
		return paletteRGB(c.index)
	case colorNamed:
		i := c.base
		if c.light {
			i += 8
		}
		v := namedRGB[i]
		return v[0], v[1], v[2]
	}
	return 0, 0, 0
}

// paletteRGB maps a 256-palette index to its RGB value.
func paletteRGB(n uint8) (r, g, b uint8) {
	switch {
	case n < 16:
		v := namedRGB[n]
		return v[0], v[1], v[2]
	case n < 232:
		i := n - 16
		return cubeLevels[i/36], cubeLevels[i/6%6], cubeLevels[i%6]
	default:
		v := 8 + 10*(n-232)
		return v, v, v
	}
}

// nearestPaletteIndex maps an RGB triple to the 6x6x6 cube, or the
// grayscale ramp when the channels agree.
func nearestPaletteIndex(r, g, b uint8) int {
	if r == g && g == b {
		if r < 8 {
			return 16 // cube black
		}
		if r > 248 {
			return 231 // cube white
		}
		return 232 + int(math.Round(float64(r-8)/247*24))
	}
	return 16 + 36*cubeIndex(r) + 6*cubeIndex(g) + cubeIndex(b)
}

func cubeIndex(v uint8) int {
	best, bestDist := 0, 1<<30
	for i, level := range cubeLevels {
		d := int(v) - int(level)
		if d*d < bestDist {
			best, bestDist = i, d*d
		}
	}
	return best
}

// nearestNamed maps an RGB triple to the closest of the 16 classic colors
// by squared distance.
func nearestNamed(r, g, b uint8) Color {
	best, bestDist := 0, 1<<30
	for i, v := range namedRGB {
		dr := int(r) - int(v[0])
		dg := int(g) - int(v[1])
		db := int(b) - int(v[2])
		if d := dr*dr + dg*dg + db*db; d < bestDist {
			best, bestDist = i, d
		}
	}
	c := Color{kind: colorNamed, base: uint8(best % 8)}
	c.light = best >= 8
	return c
}
