package cobracolor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func clearColorEnv(t *testing.T) {
	t.Helper()
	t.Setenv("NO_COLOR", "")
	t.Setenv("FORCE_COLOR", "")
	t.Setenv("COLORTERM", "")
	t.Setenv("TERM", "")
}

func TestDetectColorLevel(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want ColorLevel
	}{
		{"NO_COLOR wins", map[string]string{"NO_COLOR": "1", "COLORTERM": "truecolor"}, LevelNone},
		{"FORCE_COLOR forces truecolor", map[string]string{"FORCE_COLOR": "1", "TERM": "dumb"}, LevelTrueColor},
		{"COLORTERM truecolor", map[string]string{"COLORTERM": "truecolor", "TERM": "xterm"}, LevelTrueColor},
		{"COLORTERM 24bit", map[string]string{"COLORTERM": "24bit", "TERM": "xterm"}, LevelTrueColor},
		{"256color TERM", map[string]string{"TERM": "xterm-256color"}, Level256},
		{"dumb TERM", map[string]string{"TERM": "dumb"}, LevelNone},
		{"empty TERM", nil, LevelNone},
		{"plain TERM", map[string]string{"TERM": "vt100"}, LevelBasic},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearColorEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			assert.Equal(t, tt.want, DetectColorLevel())
		})
	}
}

func TestDownsample(t *testing.T) {
	t.Run("none removes color", func(t *testing.T) {
		assert.True(t, Downsample(RGB(1, 2, 3), LevelNone).IsZero())
		assert.True(t, Downsample(Named("r"), LevelNone).IsZero())
	})

	t.Run("truecolor passes through", func(t *testing.T) {
		c := RGB(12, 34, 56)
		assert.Equal(t, c, Downsample(c, LevelTrueColor))
	})

	t.Run("rgb to palette", func(t *testing.T) {
		got := Downsample(RGB(255, 0, 0), Level256)
		assert.Equal(t, "38;5;196", got.code(true))
	})

	t.Run("gray rgb lands on the grayscale ramp", func(t *testing.T) {
		got := Downsample(RGB(128, 128, 128), Level256)
		assert.Equal(t, "38;5;244", got.code(true))
	})

	t.Run("named survives 256", func(t *testing.T) {
		assert.Equal(t, Named("y"), Downsample(Named("y"), Level256))
	})

	t.Run("rgb to basic", func(t *testing.T) {
		got := Downsample(RGB(255, 0, 0), LevelBasic)
		assert.Equal(t, "91", got.code(true)) // light red
	})

	t.Run("palette to basic", func(t *testing.T) {
		got := Downsample(Palette(1), LevelBasic)
		assert.Equal(t, "31", got.code(true))
	})

	t.Run("absent stays absent", func(t *testing.T) {
		assert.True(t, Downsample(NoColor, LevelTrueColor).IsZero())
	})
}

func TestPaletteRGBRoundTrip(t *testing.T) {
	// cube corners
	r, g, b := paletteRGB(16)
	assert.Equal(t, [3]uint8{0, 0, 0}, [3]uint8{r, g, b})
	r, g, b = paletteRGB(231)
	assert.Equal(t, [3]uint8{255, 255, 255}, [3]uint8{r, g, b})
	// grayscale ramp
	r, g, b = paletteRGB(232)
	assert.Equal(t, [3]uint8{8, 8, 8}, [3]uint8{r, g, b})
	r, g, b = paletteRGB(255)
	assert.Equal(t, [3]uint8{238, 238, 238}, [3]uint8{r, g, b})
}
