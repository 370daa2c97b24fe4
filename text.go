package cobracolor

import (
	"errors"
	"fmt"
	"strings"
)

// ErrContract is the sentinel wrapped by every structural contract
// violation: unknown render modes, malformed grids, negative repeat counts,
// unreadable font resources. Cosmetic failures (bad color names, unknown
// styles) never produce errors; they degrade to "no effect".
var ErrContract = errors.New("contract violation")

const (
	escPrefix = "\x1b["
	escSuffix = "m"
	escReset  = "\x1b[0m"
)

// Segment is the atomic unit of a Text: a run of plain characters together
// with the pre-rendered SGR parameter fragments that color and style it.
// Segments are immutable and shared freely between Text values.
type Segment struct {
	text      string
	colorCode string
	styleCode string
}

// Plain returns the segment's text without any formatting.
func (s Segment) Plain() string { return s.text }

// Text is an ordered sequence of segments forming a composable colored
// string. The zero value is the empty string. Composition never mutates:
// Append and Repeat build new values over shared segments.
type Text struct {
	segs []Segment
}

// Ctext builds a colored Text from plain text and display options. Invalid
// colors or styles are dropped silently; the text always survives.
func Ctext(text string, fg, bg Color, styles ...Style) Text {
	var styleCode, colorCode string
	if text != "" {
		styleCode, colorCode = encode(fg, bg, Styles(styles...))
	}
	return Text{segs: []Segment{{text: text, colorCode: colorCode, styleCode: styleCode}}}
}

// Plaintext wraps an unformatted string as a Text so it can participate in
// composition.
func Plaintext(text string) Text {
	return Text{segs: []Segment{{text: text}}}
}

// Append returns a new Text whose segments are the receiver's followed by
// each operand's, in order. Segments are reused by reference.
func (t Text) Append(others ...Text) Text {
	segs := make([]Segment, 0, len(t.segs)+len(others))
	segs = append(segs, t.segs...)
	for _, o := range others {
		segs = append(segs, o.segs...)
	}
	return Text{segs: segs}
}

// AppendString appends plain, unformatted text.
func (t Text) AppendString(s string) Text {
	return t.Append(Plaintext(s))
}

// Repeat returns the Text repeated n times. n of zero yields the empty
// Text; a negative count is a contract violation.
func (t Text) Repeat(n int) (Text, error) {
	if n < 0 {
		return Text{}, fmt.Errorf("%w: repeat count %d is negative", ErrContract, n)
	}
	if n == 0 || len(t.segs) == 0 {
		return Text{}, nil
	}
	segs := make([]Segment, 0, len(t.segs)*n)
	for range n {
		segs = append(segs, t.segs...)
	}
	return Text{segs: segs}, nil
}

// ApplyTo stamps the color and/or style of one of the receiver's segments
// onto new text. It replaces string-method interception from dynamic
// languages: extract Plain, transform, re-wrap.
func (t Text) ApplyTo(text string, useColor, useStyle bool, segmentIdx int) (Text, error) {
	if segmentIdx < 0 || segmentIdx >= len(t.segs) {
		return Text{}, fmt.Errorf("%w: segment index %d out of range [0,%d)", ErrContract, segmentIdx, len(t.segs))
	}
	seg := Segment{text: text}
	if useColor {
		seg.colorCode = t.segs[segmentIdx].colorCode
	}
	if useStyle {
		seg.styleCode = t.segs[segmentIdx].styleCode
	}
	return Text{segs: []Segment{seg}}, nil
}

// Combined reports whether the Text was composed from more than one segment.
func (t Text) Combined() bool { return len(t.segs) > 1 }

// IsColored reports whether any segment carries color or style codes.
func (t Text) IsColored() bool {
	for _, seg := range t.segs {
		if seg.colorCode != "" || seg.styleCode != "" {
			return true
		}
	}
	return false
}

// Segments returns a copy of the segment sequence.
func (t Text) Segments() []Segment {
	out := make([]Segment, len(t.segs))
	copy(out, t.segs)
	return out
}

// Plain returns the concatenated text with no escape codes.
func (t Text) Plain() string { return assemble(t.segs, false, false) }

// ColorOnly returns the text with color codes applied but styles stripped.
func (t Text) ColorOnly() string { return assemble(t.segs, true, false) }

// StyleOnly returns the text with style codes applied but colors stripped.
func (t Text) StyleOnly() string { return assemble(t.segs, false, true) }

// Rich returns the fully formatted text with both colors and styles.
func (t Text) Rich() string { return assemble(t.segs, true, true) }

// Len returns the length of the plain text in bytes.
func (t Text) Len() int {
	n := 0
	for _, seg := range t.segs {
		n += len(seg.text)
	}
	return n
}

// String implements fmt.Stringer as the rich view, so a Text prints
// formatted by default.
func (t Text) String() string { return t.Rich() }

// assemble renders segments into a single string. Each segment with a
// non-empty relevant code is wrapped in its own escape/reset pair so that
// formatting never leaks across a segment boundary; the reset is always the
// full SGR reset.
func assemble(segs []Segment, useColor, useStyle bool) string {
	sb := strings.Builder{}
	for _, seg := range segs {
		if seg.text == "" {
			continue
		}
		codes := segmentCodes(seg, useColor, useStyle)
		if codes == "" {
			sb.WriteString(seg.text)
			continue
		}
		sb.WriteString(escPrefix)
		sb.WriteString(codes)
		sb.WriteString(escSuffix)
		sb.WriteString(seg.text)
		sb.WriteString(escReset)
	}
	return sb.String()
}

// segmentCodes joins the requested fragments, style first, dropping empties.
func segmentCodes(seg Segment, useColor, useStyle bool) string {
	switch {
	case useColor && useStyle:
		if seg.styleCode == "" {
			return seg.colorCode
		}
		if seg.colorCode == "" {
			return seg.styleCode
		}
		return seg.styleCode + ";" + seg.colorCode
	case useColor:
		return seg.colorCode
	case useStyle:
		return seg.styleCode
	}
	return ""
}
