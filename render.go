package cobracolor

import (
	"fmt"
	"image"
	"image/color"
	"strings"
)

// Mode selects how pixels become characters.
type Mode string

const (
	// ModeASCII maps pixel brightness onto a character ramp.
	ModeASCII Mode = "ascii"
	// ModeColor renders each pixel as a space with a colored background.
	ModeColor Mode = "color"
	// ModeHalfColor packs two pixel rows into one row of upper-half-block
	// characters, foreground carrying the upper pixel and background the
	// lower. This doubles the vertical resolution per character cell.
	ModeHalfColor Mode = "half-color"
	// ModeGray is ModeColor with pixels collapsed to grayscale.
	ModeGray Mode = "gray"
	// ModeHalfGray is ModeHalfColor with pixels collapsed to grayscale.
	ModeHalfGray Mode = "half-gray"
)

// DefaultCharset is the brightness ramp for ModeASCII, darkest to lightest.
const DefaultCharset = "@%#*+=-:. "

// upperHalfBlock is U+2580, the glyph behind the half modes.
const upperHalfBlock = "▀"

// ParseMode validates a mode string. Unknown modes are a contract
// violation; everything downstream may assume the mode is one of the five.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeASCII, ModeColor, ModeHalfColor, ModeGray, ModeHalfGray:
		return Mode(s), nil
	}
	return "", fmt.Errorf("%w: unknown render mode %q (valid: ascii, color, half-color, gray, half-gray)", ErrContract, s)
}

// RenderOptions configures RenderImage.
type RenderOptions struct {
	// Mode defaults to ModeHalfColor when empty.
	Mode Mode
	// Charset is the ASCII brightness ramp; defaults to DefaultCharset.
	// Ordering is caller-defined and not validated.
	Charset string
	// Display forwards the rendered string to SmartPrint. The string is
	// returned either way.
	Display bool
}

// RenderImage converts an image into terminal character art. The pixel grid
// is assumed well-formed (decoding and resizing happen upstream); an image
// with no pixels is rejected as a contract violation, as is an unknown mode.
func RenderImage(img image.Image, opts RenderOptions) (string, error) {
	mode := opts.Mode
	if mode == "" {
		mode = ModeHalfColor
	}
	if _, err := ParseMode(string(mode)); err != nil {
		return "", err
	}
	if img == nil {
		return "", fmt.Errorf("%w: nil image", ErrContract)
	}
	bounds := img.Bounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return "", fmt.Errorf("%w: empty image bounds %v", ErrContract, bounds)
	}

	var lines []string
	switch mode {
	case ModeASCII:
		charset := opts.Charset
		if charset == "" {
			charset = DefaultCharset
		}
		lines = renderASCII(img, []rune(charset))
	case ModeColor, ModeGray:
		lines = renderBlocks(img, mode == ModeColor)
	case ModeHalfColor, ModeHalfGray:
		lines = renderHalfBlocks(img, mode == ModeHalfColor)
	}
	out := strings.Join(lines, "\n")

	if opts.Display {
		SmartPrint(out)
	}
	return out, nil
}

// renderASCII rescales the observed brightness range onto the charset and
// emits one character per pixel. A flat image maps everything to the first
// character.
func renderASCII(img image.Image, charset []rune) []string {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	lum := make([]int, w*h)
	lo, hi := 255, 0
	for y := range h {
		for x := range w {
			v := int(grayAt(img, bounds.Min.X+x, bounds.Min.Y+y))
			lum[y*w+x] = v
			lo = min(lo, v)
			hi = max(hi, v)
		}
	}

	span := hi - lo
	lines := make([]string, h)
	for y := range h {
		sb := strings.Builder{}
		sb.Grow(w)
		for x := range w {
			idx := 0
			if span > 0 {
				idx = (lum[y*w+x] - lo) * (len(charset) - 1) / span
			}
			sb.WriteRune(charset[idx])
		}
		lines[y] = sb.String()
	}
	return lines
}

// renderBlocks emits one background-colored space per pixel.
func renderBlocks(img image.Image, useColor bool) []string {
	bounds := img.Bounds()
	lines := make([]string, 0, bounds.Dy())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		segs := make([]Segment, 0, bounds.Dx())
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			_, colorCode := encode(NoColor, pixelColor(img, x, y, useColor), 0)
			segs = append(segs, Segment{text: " ", colorCode: colorCode})
		}
		lines = append(lines, Text{segs: segs}.Rich())
	}
	return lines
}

// renderHalfBlocks pairs rows (y, y+1) into upper-half-block characters.
// An odd trailing row renders foreground-only with the background unset.
func renderHalfBlocks(img image.Image, useColor bool) []string {
	bounds := img.Bounds()
	lines := make([]string, 0, (bounds.Dy()+1)/2)
	for y := bounds.Min.Y; y < bounds.Max.Y; y += 2 {
		segs := make([]Segment, 0, bounds.Dx())
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			upper := pixelColor(img, x, y, useColor)
			lower := NoColor
			if y+1 < bounds.Max.Y {
				lower = pixelColor(img, x, y+1, useColor)
			}
			_, colorCode := encode(upper, lower, 0)
			segs = append(segs, Segment{text: upperHalfBlock, colorCode: colorCode})
		}
		lines = append(lines, Text{segs: segs}.Rich())
	}
	return lines
}

// pixelColor samples one pixel as a truecolor value, collapsing to a
// replicated gray triple when color is off.
func pixelColor(img image.Image, x, y int, useColor bool) Color {
	if !useColor {
		v := int(grayAt(img, x, y))
		return RGB(v, v, v)
	}
	r, g, b, _ := img.At(x, y).RGBA()
	return RGB(int(r>>8), int(g>>8), int(b>>8))
}

// grayAt returns the 8-bit luminance of one pixel.
func grayAt(img image.Image, x, y int) uint8 {
	return color.GrayModel.Convert(img.At(x, y)).(color.Gray).Y
}
