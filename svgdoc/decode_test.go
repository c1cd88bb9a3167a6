package svgdoc

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `<?xml version="1.0" encoding="ISO-8859-1"?>
<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" width="200" height="100" viewBox="0 0 400 200">
  <title>Sample</title>
  <defs><linearGradient id="lg"><stop offset="0" stop-color="red"/></linearGradient></defs>
  <g id="layer" transform="translate(10 20)">
    <rect id="r" x="1" y="2" width="30" height="40" fill="url(#lg)"/>
    <circle id="c" cx="50" cy="50" r="5"/>
    <text id="t" x="0" y="80" font-size="12">Caf` + "\xe9" + `</text>
  </g>
  <image id="img" xlink:href="a.png" width="10" height="10"/>
  <blink/>
</svg>`

func TestDecode(t *testing.T) {
	doc, err := Decode(strings.NewReader(sample), DecodeOptions{})
	require.NoError(t, err)

	root := doc.Element(doc.Root())
	assert.Equal(t, KindSVG, root.Kind)
	assert.Equal(t, "0 0 400 200", root.Attr("viewBox"))
	assert.Equal(t, "http://www.w3.org/1999/xlink", root.Attr("xmlns:xlink"))

	layer := doc.Lookup("layer")
	require.NotEqual(t, NoNode, layer)
	assert.Equal(t, KindGroup, doc.Element(layer).Kind)
	assert.Len(t, doc.Children(layer), 3)

	text := doc.Element(doc.Lookup("t"))
	assert.Equal(t, KindText, text.Kind)
	assert.Equal(t, "Café", text.Text)

	img := doc.Element(doc.Lookup("img"))
	assert.Equal(t, KindImage, img.Kind)
	assert.Equal(t, "a.png", img.Attr("xlink:href"))

	title := doc.Element(doc.Children(doc.Root())[0])
	assert.Equal(t, KindUnknown, title.Kind)
	assert.Equal(t, "Sample", title.Text)

	children := doc.Children(doc.Root())
	assert.Equal(t, "blink", doc.Element(children[len(children)-1]).Tag)
}

func TestDecodeStrict(t *testing.T) {
	_, err := Decode(strings.NewReader(sample), DecodeOptions{ErrorMode: StrictErrorMode})
	assert.True(t, errors.Is(err, ErrUnsupportedElement))

	// passive elements are always accepted
	_, err = Decode(strings.NewReader(`<svg><defs/><title>a</title><rect/></svg>`),
		DecodeOptions{ErrorMode: StrictErrorMode})
	assert.NoError(t, err)
}

func TestDecodeInvalid(t *testing.T) {
	for _, in := range []string{
		"",
		"<rect/>",
		"<svg><rect></svg>",
	} {
		_, err := Decode(strings.NewReader(in), DecodeOptions{})
		assert.Error(t, err, in)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	doc, err := Decode(strings.NewReader(sample), DecodeOptions{})
	require.NoError(t, err)

	doc.Element(doc.Lookup("r")).Set("x", "5")

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, doc))
	out := buf.String()
	assert.Contains(t, out, `<rect id="r" x="5" y="2" width="30" height="40" fill="url(#lg)"/>`)
	assert.Contains(t, out, `xlink:href="a.png"`)
	assert.Contains(t, out, `<text id="t" x="0" y="80" font-size="12">Café</text>`)

	doc2, err := Decode(&buf, DecodeOptions{})
	require.NoError(t, err)
	var tags1, tags2 []string
	doc.Walk(doc.Root(), func(id NodeID, _ int) bool {
		tags1 = append(tags1, doc.Path(id))
		return true
	})
	doc2.Walk(doc2.Root(), func(id NodeID, _ int) bool {
		tags2 = append(tags2, doc2.Path(id))
		return true
	})
	assert.Equal(t, tags1, tags2)
	assert.Equal(t, doc.Element(doc.Lookup("r")).Attrs, doc2.Element(doc2.Lookup("r")).Attrs)
}
