package cobracolor

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"math"
	"os"

	"github.com/nfnt/resize"
)

// Image is a fluent builder around the character-art renderer: pick a
// source, configure dimensions and mode, then Render or Print.
type Image struct {
	source image.Image
	reader io.Reader
	path   string

	width   int
	height  int
	mode    Mode
	charset string
	display bool
}

// New creates an Image from an already decoded image.Image.
func New(img image.Image) *Image {
	if img == nil {
		return nil
	}
	return &Image{source: img, mode: ModeHalfColor}
}

// Open creates an Image from a file path. Decoding is deferred to Render.
func Open(path string) (*Image, error) {
	if path == "" {
		return nil, fmt.Errorf("path cannot be empty")
	}
	return &Image{path: path, mode: ModeHalfColor}, nil
}

// From creates an Image from an io.Reader.
func From(r io.Reader) *Image {
	if r == nil {
		return nil
	}
	return &Image{reader: r, mode: ModeHalfColor}
}

// Width sets the target width in pixels (one pixel per character column).
// When only one dimension is set, the other is derived from the source's
// aspect ratio.
func (i *Image) Width(w int) *Image {
	if w < 0 {
		w = 0
	}
	i.width = w
	return i
}

// Height sets the target height in pixels.
func (i *Image) Height(h int) *Image {
	if h < 0 {
		h = 0
	}
	i.height = h
	return i
}

// Size sets both dimensions in pixels.
func (i *Image) Size(w, h int) *Image {
	return i.Width(w).Height(h)
}

// Mode sets the render mode.
func (i *Image) Mode(m Mode) *Image {
	i.mode = m
	return i
}

// Charset sets the brightness ramp used by ModeASCII.
func (i *Image) Charset(s string) *Image {
	i.charset = s
	return i
}

// Display forwards the rendered string to SmartPrint as a side effect of
// Render.
func (i *Image) Display(d bool) *Image {
	i.display = d
	return i
}

// Render decodes, resizes, and renders the image to a string.
func (i *Image) Render() (string, error) {
	img, err := i.loadImage()
	if err != nil {
		return "", err
	}
	img = i.resize(img)
	return RenderImage(img, RenderOptions{
		Mode:    i.mode,
		Charset: i.charset,
		Display: i.display,
	})
}

// Print renders the image and writes it through the configured sink.
func (i *Image) Print() error {
	out, err := i.Render()
	if err != nil {
		return err
	}
	SmartPrint(out)
	return nil
}

// PrintFile is the one-liner: render a file with defaults and print it.
func PrintFile(path string) error {
	img, err := Open(path)
	if err != nil {
		return err
	}
	return img.Print()
}

// loadImage loads the image from the configured source.
func (i *Image) loadImage() (image.Image, error) {
	if i.source != nil {
		return i.source, nil
	}

	if i.path != "" {
		file, err := os.Open(i.path)
		if err != nil {
			return nil, fmt.Errorf("failed to open file: %w", err)
		}
		defer file.Close()

		img, _, err := image.Decode(file)
		if err != nil {
			return nil, fmt.Errorf("failed to decode image: %w", err)
		}
		i.source = img
		return img, nil
	}

	if i.reader != nil {
		img, _, err := image.Decode(i.reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode image: %w", err)
		}
		i.source = img
		return img, nil
	}

	return nil, fmt.Errorf("no image source configured")
}

// resize scales the decoded image to the requested dimensions, deriving a
// missing dimension from the source aspect ratio. With no dimensions set it
// shrinks oversized images to the terminal width when one is available.
func (i *Image) resize(img image.Image) image.Image {
	bounds := img.Bounds()
	srcW, srcH := bounds.Dx(), bounds.Dy()
	aspect := float64(srcH) / float64(srcW)

	w, h := i.width, i.height
	if w == 0 && h == 0 {
		cols, _, ok := TerminalCells()
		if !ok || srcW <= cols {
			return img
		}
		w = cols
	}
	if h == 0 {
		h = int(math.Round(aspect * float64(w)))
	} else if w == 0 {
		w = int(math.Round(float64(h) / aspect))
	}
	if w == srcW && h == srcH {
		return img
	}

	// Bilinear holds up better for heavy downscales; nearest is fastest
	// everywhere else.
	interp := resize.NearestNeighbor
	if srcW*srcH > w*h*4 {
		interp = resize.Bilinear
	}
	return resize.Resize(uint(w), uint(h), img, interp)
}
