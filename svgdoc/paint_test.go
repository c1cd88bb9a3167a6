package svgdoc

import (
	"errors"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePaint(t *testing.T) {
	for _, test := range []struct {
		in     string
		kind   PaintKind
		color  color.NRGBA
		format ColorFormat
	}{
		{"none", PaintNone, color.NRGBA{}, 0},
		{"currentColor", PaintCurrentColor, color.NRGBA{}, 0},
		{"inherit", PaintInherit, color.NRGBA{}, 0},
		{"url(#grad)", PaintURL, color.NRGBA{}, 0},
		{"red", PaintColor, color.NRGBA{0xff, 0, 0, 0xff}, FormatNamed},
		{"#0f0", PaintColor, color.NRGBA{0, 0xff, 0, 0xff}, FormatHex3},
		{"#102030", PaintColor, color.NRGBA{0x10, 0x20, 0x30, 0xff}, FormatHex6},
		{"rgb(1, 2, 3)", PaintColor, color.NRGBA{1, 2, 3, 0xff}, FormatRGB},
		{"rgb(100%,0%,50%)", PaintColor, color.NRGBA{255, 0, 128, 0xff}, FormatRGBPercent},
		{"rgba(1,2,3,0.5)", PaintColor, color.NRGBA{1, 2, 3, 128}, FormatRGBA},
	} {
		p, err := ParsePaint(test.in)
		require.NoError(t, err, test.in)
		assert.Equal(t, test.kind, p.Kind, test.in)
		assert.Equal(t, test.color, p.Color, test.in)
		assert.Equal(t, test.format, p.Format, test.in)
		// unchanged paints are written as read
		assert.Equal(t, test.in, p.String())
	}

	p, err := ParsePaint("url(#g) blue")
	require.NoError(t, err)
	assert.Equal(t, "#g", p.URL)
	assert.Equal(t, "blue", p.Fallback)

	p, err = ParsePaint("")
	require.NoError(t, err)
	assert.Equal(t, PaintUnset, p.Kind)

	for _, in := range []string{"#12", "notacolor", "rgb(1,2)", "rgb(1%,2,3)", "url(#a"} {
		_, err := ParsePaint(in)
		assert.True(t, errors.Is(err, ErrInvalidPaint), in)
	}
}

func TestPaintWithColor(t *testing.T) {
	c := color.NRGBA{0x11, 0x22, 0x33, 0xff}
	for _, test := range []struct {
		in, out string
	}{
		{"#fff", "#123"},
		{"#ffffff", "#112233"},
		{"white", "#112233"},
		{"rgb(0,0,0)", "rgb(17,34,51)"},
		{"rgb(0%,0%,0%)", "rgb(6.7%,13.3%,20%)"},
		{"none", "#112233"},
	} {
		p, err := ParsePaint(test.in)
		require.NoError(t, err)
		assert.Equal(t, test.out, p.WithColor(c).String(), test.in)
	}

	// hex3 can't express every color
	p, _ := ParsePaint("#fff")
	assert.Equal(t, "#010203", p.WithColor(color.NRGBA{1, 2, 3, 0xff}).String())

	translucent := color.NRGBA{1, 2, 3, 0x80}
	assert.Equal(t, "rgba(1,2,3,0.5)", ColorPaint(translucent).String())
	assert.Equal(t, "rgba(1,2,3,0.5)", p.WithColor(translucent).String())
}

func TestElementPaint(t *testing.T) {
	e := NewElement(KindRect, "fill", "red")
	p, err := e.Paint("fill")
	require.NoError(t, err)
	assert.Equal(t, "red", p.Name)

	e.SetPaint("stroke", ColorPaint(color.NRGBA{0, 0, 0, 0xff}))
	assert.Equal(t, "#000000", e.Attr("stroke"))
	e.SetPaint("fill", Paint{})
	assert.False(t, e.Has("fill"))
}
