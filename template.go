package cobracolor

// Template stamps Text values from a fixed set of display options. The
// codes are computed once at construction; Format only builds segments, so
// a Template is safe for concurrent use.
type Template struct {
	styleCode string
	colorCode string
}

// NewTemplate creates a Template with preset foreground, background, and
// styles. As everywhere else, invalid options degrade to no effect.
func NewTemplate(fg, bg Color, styles ...Style) Template {
	styleCode, colorCode := encode(fg, bg, Styles(styles...))
	return Template{styleCode: styleCode, colorCode: colorCode}
}

// Format applies the preset options to text.
func (tpl Template) Format(text string) Text {
	if text == "" {
		return Text{segs: []Segment{{}}}
	}
	return Text{segs: []Segment{{
		text:      text,
		colorCode: tpl.colorCode,
		styleCode: tpl.styleCode,
	}}}
}
