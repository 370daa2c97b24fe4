package cobracolor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextViews(t *testing.T) {
	txt := Ctext("hi", Named("r"), NoColor, Bold)

	assert.Equal(t, "hi", txt.Plain())
	assert.Equal(t, "\x1b[31mhi\x1b[0m", txt.ColorOnly())
	assert.Equal(t, "\x1b[1mhi\x1b[0m", txt.StyleOnly())
	assert.Equal(t, "\x1b[1;31mhi\x1b[0m", txt.Rich())
	assert.Equal(t, txt.Rich(), txt.String())
}

func TestTextNoOptionsRichEqualsPlain(t *testing.T) {
	txt := Ctext("nothing requested", NoColor, NoColor)

	assert.Equal(t, txt.Plain(), txt.Rich())
	assert.Equal(t, txt.Plain(), txt.ColorOnly())
	assert.Equal(t, txt.Plain(), txt.StyleOnly())
	assert.False(t, txt.IsColored())
}

func TestTextColorOnlyWrapperShape(t *testing.T) {
	// colorOnly differs from plain by exactly the escape/reset wrapper
	txt := Ctext("x", Palette(100), NoColor)
	assert.Equal(t, "\x1b[38;5;100m"+txt.Plain()+"\x1b[0m", txt.ColorOnly())
	// style view is unaffected by color
	assert.Equal(t, txt.Plain(), txt.StyleOnly())
}

func TestAppend(t *testing.T) {
	a := Ctext("red", Named("r"), NoColor)
	b := Ctext("blue", Named("b"), NoColor, Bold)

	ab := a.Append(b)
	assert.Equal(t, "redblue", ab.Plain())
	assert.Equal(t, "\x1b[31mred\x1b[0m\x1b[1;34mblue\x1b[0m", ab.Rich())
	assert.True(t, ab.Combined())

	// appending plain text adds an unformatted segment
	withPlain := a.AppendString(" plain")
	assert.Equal(t, "\x1b[31mred\x1b[0m plain", withPlain.Rich())

	// operands are untouched
	assert.Equal(t, "red", a.Plain())
	assert.Len(t, a.Segments(), 1)
}

func TestAppendAssociativeOnPlain(t *testing.T) {
	a := Ctext("a", Named("r"), NoColor)
	b := Ctext("b", NoColor, Named("g"), Dim)
	c := Plaintext("c")

	left := a.Append(b).Append(c)
	right := a.Append(b.Append(c))
	assert.Equal(t, left.Plain(), right.Plain())
	assert.Equal(t, a.Plain()+b.Plain()+c.Plain(), left.Plain())
}

func TestRepeat(t *testing.T) {
	txt := Ctext("ab", Named("c"), NoColor)

	t.Run("zero yields empty", func(t *testing.T) {
		got, err := txt.Repeat(0)
		require.NoError(t, err)
		assert.Equal(t, "", got.Plain())
		assert.Equal(t, "", got.Rich())
	})

	t.Run("n copies", func(t *testing.T) {
		got, err := txt.Repeat(3)
		require.NoError(t, err)
		assert.Equal(t, "ababab", got.Plain())
		assert.Equal(t, "\x1b[36mab\x1b[0m\x1b[36mab\x1b[0m\x1b[36mab\x1b[0m", got.Rich())
	})

	t.Run("negative is a contract violation", func(t *testing.T) {
		_, err := txt.Repeat(-1)
		assert.ErrorIs(t, err, ErrContract)
	})
}

func TestEmptySegmentsContributeNothing(t *testing.T) {
	empty := Ctext("", Named("r"), NoColor, Bold)
	assert.Equal(t, "", empty.Rich())

	combined := empty.Append(Ctext("x", NoColor, NoColor))
	assert.Equal(t, "x", combined.Rich())
}

func TestApplyTo(t *testing.T) {
	txt := Ctext("orig", Named("m"), NoColor, Bold)

	restyled, err := txt.ApplyTo("new", true, false, 0)
	require.NoError(t, err)
	assert.Equal(t, "\x1b[35mnew\x1b[0m", restyled.Rich())

	styled, err := txt.ApplyTo("new", false, true, 0)
	require.NoError(t, err)
	assert.Equal(t, "\x1b[1mnew\x1b[0m", styled.Rich())

	_, err = txt.ApplyTo("new", true, true, 5)
	assert.ErrorIs(t, err, ErrContract)
}

func TestZeroTextIsEmptyString(t *testing.T) {
	var txt Text
	assert.Equal(t, "", txt.Plain())
	assert.Equal(t, "", txt.Rich())
	assert.Equal(t, 0, txt.Len())
	assert.False(t, txt.IsColored())
}
