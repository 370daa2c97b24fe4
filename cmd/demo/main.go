package main

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"os"

	cobracolor "github.com/tzhen/go-cobracolor"
)

func main() {
	if len(os.Args) > 1 {
		// If a file is provided, render it
		renderFile(os.Args[1])
	} else {
		// Otherwise, run the built-in demos
		demoText()
		demoTestPattern()
		demoBanner()
		demoFormat()
	}
}

func renderFile(path string) {
	fmt.Printf("Rendering image: %s\n\n", path)

	if err := cobracolor.PrintFile(path); err != nil {
		log.Fatalf("Error rendering file: %v", err)
	}

	fmt.Println("\nASCII mode:")
	img, err := cobracolor.Open(path)
	if err != nil {
		log.Fatalf("Error opening file: %v", err)
	}
	out, err := img.Width(80).Mode(cobracolor.ModeASCII).Render()
	if err != nil {
		log.Fatalf("Error rendering file: %v", err)
	}
	fmt.Println(out)
}

func demoText() {
	fmt.Println("Colored text:")

	warn := cobracolor.Ctext("WARN", cobracolor.Named("y"), cobracolor.NoColor, cobracolor.Bold)
	fmt.Println(warn.AppendString(" disk almost full").Rich())

	rainbow := cobracolor.Plaintext("")
	for i, name := range []string{"r", "y", "g", "c", "b", "m"} {
		rainbow = rainbow.Append(cobracolor.Ctext(fmt.Sprintf("block %d ", i+1), cobracolor.Named(name), cobracolor.NoColor))
	}
	fmt.Println(rainbow.Rich())
	fmt.Println("plain view:", rainbow.Plain())

	bar, err := cobracolor.Ctext("=", cobracolor.RGB(255, 128, 0), cobracolor.NoColor, cobracolor.Bold).Repeat(40)
	if err != nil {
		log.Fatalf("Error building bar: %v", err)
	}
	fmt.Println(bar.Rich())
}

func demoTestPattern() {
	fmt.Println("\nHalf-block test pattern:")

	pattern := image.NewRGBA(image.Rect(0, 0, 64, 32))
	for y := range 32 {
		for x := range 64 {
			pattern.Set(x, y, color.RGBA{
				R: uint8(x * 255 / 64),
				G: uint8(y * 255 / 32),
				B: uint8((x + y) * 255 / 96),
				A: 255,
			})
		}
	}

	out, err := cobracolor.New(pattern).Mode(cobracolor.ModeHalfColor).Render()
	if err != nil {
		log.Fatalf("Error rendering pattern: %v", err)
	}
	fmt.Println(out)
}

func demoBanner() {
	fmt.Println("\nBanner:")

	out, err := cobracolor.Banner("cobra", cobracolor.BannerOptions{
		Mode:       cobracolor.ModeHalfGray,
		TrimBorder: true,
	})
	if err != nil {
		log.Fatalf("Error rendering banner: %v", err)
	}
	fmt.Println(out)
}

func demoFormat() {
	fmt.Println("\nPretty-printed map:")

	cfg := map[string]any{
		"host":     "localhost",
		"port":     8080,
		"password": "hunter2",
		"debug":    true,
	}
	cobracolor.FormatMap(cfg, []string{"password"}, "server config", true)
}
