/*
Package cobracolor provides terminal display enhancements: composable
ANSI-colored strings, character-art image rendering, banner text, and
structured pretty-printing.

Colored text is built from immutable segments that survive composition, so
differently styled pieces can be appended and repeated without formatting
leaking across boundaries:

	warn := cobracolor.Ctext("WARN", cobracolor.Named("y"), cobracolor.NoColor, cobracolor.Bold)
	line := warn.AppendString(" disk almost full")
	fmt.Println(line.Rich())

Every Text exposes four views: Plain (no escape codes), ColorOnly,
StyleOnly, and Rich. Templates stamp many strings with one preset:

	errTpl := cobracolor.NewTemplate(cobracolor.Named("r"), cobracolor.NoColor, cobracolor.Bold)
	fmt.Println(errTpl.Format("it broke"))

Images render to character art in five modes; the half-block modes pack two
pixels into every character cell using U+2580 with independent foreground
and background colors:

	// One-liner
	cobracolor.PrintFile("gopher.png")

	// Fluent configuration
	img, _ := cobracolor.Open("gopher.png")
	out, err := img.Width(80).Mode(cobracolor.ModeHalfColor).Render()

Banner rasterizes text through a bitmap or TTF font and feeds the result
into the same renderer:

	out, err := cobracolor.Banner("hello", cobracolor.BannerOptions{
	    Mode:       cobracolor.ModeHalfGray,
	    TrimBorder: true,
	})

SmartPrint routes output through a process-wide sink so printing cooperates
with a progress bar or TUI owning the terminal; see SetSink and
ProgramSink. With no sink configured it writes straight to stdout.
*/
package cobracolor
