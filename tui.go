package cobracolor

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Widget is a bubbletea model that displays an Image as character art,
// re-rendering to fit whenever the window size changes.
type Widget struct {
	img      *Image
	cols     int
	rows     int
	rendered string
	err      error
}

// NewWidget wraps an Image in a Widget.
func NewWidget(img *Image) Widget {
	return Widget{img: img}
}

// NewWidgetFromFile creates a Widget for an image file.
func NewWidgetFromFile(path string) (Widget, error) {
	img, err := Open(path)
	if err != nil {
		return Widget{}, err
	}
	return NewWidget(img), nil
}

// Init implements tea.Model.
func (w Widget) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model. Window resizes trigger a re-render; q and
// ctrl+c quit.
func (w Widget) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w.cols = msg.Width
		w.rows = msg.Height
		w.rendered, w.err = w.render()
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return w, tea.Quit
		}
	}
	return w, nil
}

// View implements tea.Model.
func (w Widget) View() string {
	if w.err != nil {
		return "error: " + w.err.Error()
	}
	return w.rendered
}

// render fits the image into the current window and renders it. Half-block
// modes pack two pixel rows per character cell, so the vertical pixel
// budget is doubled before fitting.
func (w Widget) render() (string, error) {
	if w.img == nil {
		return "", fmt.Errorf("no image configured")
	}
	if w.cols <= 0 || w.rows <= 0 {
		return "", nil
	}

	src, err := w.img.loadImage()
	if err != nil {
		return "", err
	}
	bounds := src.Bounds()
	srcW, srcH := float64(bounds.Dx()), float64(bounds.Dy())

	pixelH := float64(w.rows)
	if w.img.mode == ModeHalfColor || w.img.mode == ModeHalfGray {
		pixelH *= 2
	}
	ratio := min(float64(w.cols)/srcW, pixelH/srcH)
	if ratio > 1 {
		ratio = 1
	}

	return w.img.Size(int(srcW*ratio), int(srcH*ratio)).Render()
}

// ProgramSink returns a Sink that prints above a running bubbletea program
// without disrupting its UI, the moral equivalent of a progress bar's
// write-without-breaking-the-bar function. Registering it with SetSink is
// the explicit "a UI is active" signal; there is no hidden detection.
func ProgramSink(p *tea.Program) Sink {
	return func(s string) error {
		if p == nil {
			return fmt.Errorf("no program attached to sink")
		}
		p.Println(strings.TrimSuffix(s, "\n"))
		return nil
	}
}
