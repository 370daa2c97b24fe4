package cobracolor

import (
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBannerBuiltinFace(t *testing.T) {
	out, err := Banner("Hi", BannerOptions{Mode: ModeASCII, Charset: " #", TrimBorder: true})
	require.NoError(t, err)

	assert.NotEmpty(t, out)
	assert.Contains(t, out, "#")
	// trimmed: no blank first or last line
	lines := strings.Split(out, "\n")
	assert.NotEqual(t, "", strings.TrimSpace(lines[0]))
	assert.NotEqual(t, "", strings.TrimSpace(lines[len(lines)-1]))
}

func TestBannerHalfGray(t *testing.T) {
	out, err := Banner("x", BannerOptions{Mode: ModeHalfGray, TrimBorder: true})
	require.NoError(t, err)
	assert.Contains(t, out, upperHalfBlock)
}

func TestBannerCustomColors(t *testing.T) {
	out, err := Banner("x", BannerOptions{
		Mode:       ModeColor,
		Fore:       color.RGBA{R: 255, A: 255},
		Back:       color.RGBA{B: 255, A: 255},
		TrimBorder: true,
	})
	require.NoError(t, err)
	assert.Contains(t, out, "48;2;255;0;0") // glyph pixels
	assert.Contains(t, out, "48;2;0;0;255") // background pixels
}

func TestBannerBadFontPath(t *testing.T) {
	_, err := Banner("x", BannerOptions{FontPath: "/definitely/not/a/font.ttf"})
	assert.ErrorIs(t, err, ErrContract)
}

func TestBannerNotAFontFile(t *testing.T) {
	_, err := Banner("x", BannerOptions{FontPath: "go.mod"})
	assert.ErrorIs(t, err, ErrContract)
}

func TestTrimBorder(t *testing.T) {
	t.Run("all background unchanged", func(t *testing.T) {
		img := image.NewGray(image.Rect(0, 0, 5, 4))
		got := TrimBorder(img, 0)
		assert.Equal(t, img.Bounds(), got.Bounds())
	})

	t.Run("crops to content bounding box", func(t *testing.T) {
		img := image.NewGray(image.Rect(0, 0, 6, 6))
		img.SetGray(2, 1, color.Gray{Y: 255})
		img.SetGray(4, 3, color.Gray{Y: 255})

		got := TrimBorder(img, 0)
		assert.Equal(t, image.Rect(2, 1, 5, 4), got.Bounds())
	})

	t.Run("nonzero background", func(t *testing.T) {
		img := image.NewGray(image.Rect(0, 0, 3, 3))
		for y := range 3 {
			for x := range 3 {
				img.SetGray(x, y, color.Gray{Y: 9})
			}
		}
		img.SetGray(1, 1, color.Gray{Y: 0})

		got := TrimBorder(img, 9)
		assert.Equal(t, image.Rect(1, 1, 2, 2), got.Bounds())
	})
}

func TestBinarize(t *testing.T) {
	fore := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	back := color.RGBA{A: 255}

	// strictly above the threshold is foreground
	img := grayImage([][]uint8{{128, 129}})
	got := Binarize(img, 128, fore, back)
	assert.Equal(t, back, got.RGBAAt(0, 0))
	assert.Equal(t, fore, got.RGBAAt(1, 0))
}
