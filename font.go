package cobracolor

import (
	"fmt"
	"image"
	"image/color"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// BannerOptions configures Banner.
type BannerOptions struct {
	// FontPath points to a TTF/OTF file. Empty uses the built-in bitmap
	// face (basicfont.Face7x13), for which FontSize is ignored.
	FontPath string
	// FontSize is the point size for TTF/OTF faces; defaults to 10.
	FontSize float64
	// Mode defaults to ModeHalfColor.
	Mode Mode
	// Charset is the ramp for ModeASCII; defaults to " #" (background
	// first, foreground last).
	Charset string
	// Fore and Back are the binarized text and background colors;
	// default white on black.
	Fore, Back color.RGBA
	// Threshold separates background from glyph after rasterization:
	// luminance strictly above it is foreground. Defaults to 5.
	Threshold uint8
	// TrimBorder crops the canvas to the glyph bounding box.
	TrimBorder bool
	// Width and Height override the auto-sized canvas.
	Width, Height int
	// Origin is the top-left corner glyph drawing starts from.
	Origin image.Point
	// Display forwards the result to SmartPrint.
	Display bool
}

// Banner rasterizes text with a font onto a grayscale canvas, optionally
// trims the border, binarizes it to two colors, and renders the result as
// character art. An unloadable font resource is a contract violation.
func Banner(text string, opts BannerOptions) (string, error) {
	face, closeFace, err := loadFace(opts.FontPath, opts.FontSize)
	if err != nil {
		return "", err
	}
	if closeFace != nil {
		defer closeFace()
	}

	canvas := rasterize(text, face, opts.Width, opts.Height, opts.Origin)

	if opts.TrimBorder {
		canvas = TrimBorder(canvas, 0)
	}

	threshold := opts.Threshold
	if threshold == 0 {
		threshold = 5
	}
	fore := opts.Fore
	if fore == (color.RGBA{}) {
		fore = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
	back := opts.Back
	if back.A == 0 {
		back.A = 255
	}
	binary := Binarize(canvas, threshold, fore, back)

	charset := opts.Charset
	if charset == "" {
		charset = " #"
	}
	return RenderImage(binary, RenderOptions{
		Mode:    opts.Mode,
		Charset: charset,
		Display: opts.Display,
	})
}

// loadFace resolves the font face: a TTF/OTF file when a path is given,
// the built-in bitmap face otherwise.
func loadFace(path string, size float64) (font.Face, func(), error) {
	if path == "" {
		return basicfont.Face7x13, nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: font file %q: %v", ErrContract, path, err)
	}
	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: font file %q: %v", ErrContract, path, err)
	}
	if size <= 0 {
		size = 10
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("%w: font file %q: %v", ErrContract, path, err)
	}
	return face, func() { face.Close() }, nil
}

// rasterize draws text in white onto a black grayscale canvas. The canvas
// is auto-sized from the face metrics unless explicit dimensions are given.
func rasterize(text string, face font.Face, width, height int, origin image.Point) *image.Gray {
	if origin.X < 0 {
		origin.X = 0
	}
	if origin.Y < 0 {
		origin.Y = 0
	}

	metrics := face.Metrics()
	ascent := metrics.Ascent.Ceil()
	if width <= 0 {
		width = origin.X + font.MeasureString(face, text).Ceil()
	}
	if height <= 0 {
		height = origin.Y + ascent + metrics.Descent.Ceil()
	}
	width = max(width, 1)
	height = max(height, 1)

	canvas := image.NewGray(image.Rect(0, 0, width, height))
	drawer := font.Drawer{
		Dst:  canvas,
		Src:  image.NewUniform(color.Gray{Y: 255}),
		Face: face,
		Dot:  fixed.P(origin.X, origin.Y+ascent),
	}
	drawer.DrawString(text)
	return canvas
}

// TrimBorder crops a grayscale image to the bounding box of pixels that
// differ from the background value. An all-background image is returned
// unchanged.
func TrimBorder(img *image.Gray, background uint8) *image.Gray {
	bounds := img.Bounds()
	minX, minY := bounds.Max.X, bounds.Max.Y
	maxX, maxY := bounds.Min.X-1, bounds.Min.Y-1
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if img.GrayAt(x, y).Y != background {
				minX = min(minX, x)
				minY = min(minY, y)
				maxX = max(maxX, x)
				maxY = max(maxY, y)
			}
		}
	}
	if maxX < minX {
		return img
	}
	bbox := image.Rect(minX, minY, maxX+1, maxY+1)
	if bbox == bounds {
		return img
	}
	return img.SubImage(bbox).(*image.Gray)
}

// Binarize thresholds an image into a two-color RGB image: pixels with
// luminance strictly above the threshold become fore, the rest back.
func Binarize(src image.Image, threshold uint8, fore, back color.RGBA) *image.RGBA {
	bounds := src.Bounds()
	dst := image.NewRGBA(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if grayAt(src, x, y) > threshold {
				dst.SetRGBA(x, y, fore)
			} else {
				dst.SetRGBA(x, y, back)
			}
		}
	}
	return dst
}
