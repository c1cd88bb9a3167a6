package shaper

import (
	"image/color"
	"io"
	"log/slog"
	"testing"

	"github.com/benoitkugler/svgedit/svgdoc"
	"github.com/benoitkugler/svgedit/svgpath"
	"github.com/benoitkugler/svgedit/svgunits"
	"github.com/benoitkugler/svgedit/svgxform"
	"github.com/benoitkugler/svgedit/textmetrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-6

var testEnv = Env{
	Units:  svgunits.Standard{},
	Text:   textmetrics.BasicProvider{},
	Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
}

func newRoot(attrs ...string) *svgdoc.Document {
	return svgdoc.NewDocument(svgdoc.NewElement(svgdoc.KindSVG, attrs...))
}

func add(t *testing.T, doc *svgdoc.Document, parent svgdoc.NodeID, k svgdoc.Kind, attrs ...string) svgdoc.NodeID {
	t.Helper()
	id, err := doc.AddChild(parent, svgdoc.NewElement(k, attrs...))
	require.NoError(t, err)
	return id
}

func shaperOf(t *testing.T, doc *svgdoc.Document, id svgdoc.NodeID) *Shaper {
	t.Helper()
	s, err := New(doc, id, testEnv)
	require.NoError(t, err)
	return s
}

func assertPoint(t *testing.T, expected, got Point, msgAndArgs ...interface{}) {
	t.Helper()
	assert.InDelta(t, expected.X, got.X, tol, msgAndArgs...)
	assert.InDelta(t, expected.Y, got.Y, tol, msgAndArgs...)
}

// builders covers every kind with a geometry
var builders = []struct {
	name  string
	build func(t *testing.T, doc *svgdoc.Document) svgdoc.NodeID
}{
	{"rect", func(t *testing.T, doc *svgdoc.Document) svgdoc.NodeID {
		return add(t, doc, doc.Root(), svgdoc.KindRect, "x", "1", "y", "2", "width", "10", "height", "5")
	}},
	{"image", func(t *testing.T, doc *svgdoc.Document) svgdoc.NodeID {
		return add(t, doc, doc.Root(), svgdoc.KindImage, "x", "-4", "y", "2", "width", "8", "height", "6")
	}},
	{"svg", func(t *testing.T, doc *svgdoc.Document) svgdoc.NodeID {
		return add(t, doc, doc.Root(), svgdoc.KindSVG, "x", "3", "y", "3", "width", "10", "height", "10", "viewBox", "0 0 1 1")
	}},
	{"circle", func(t *testing.T, doc *svgdoc.Document) svgdoc.NodeID {
		return add(t, doc, doc.Root(), svgdoc.KindCircle, "cx", "3", "cy", "4", "r", "2")
	}},
	{"ellipse", func(t *testing.T, doc *svgdoc.Document) svgdoc.NodeID {
		return add(t, doc, doc.Root(), svgdoc.KindEllipse, "cx", "3", "cy", "4", "rx", "2", "ry", "1")
	}},
	{"polyline", func(t *testing.T, doc *svgdoc.Document) svgdoc.NodeID {
		return add(t, doc, doc.Root(), svgdoc.KindPolyline, "points", "0,0 10,5 3,8")
	}},
	{"polygon", func(t *testing.T, doc *svgdoc.Document) svgdoc.NodeID {
		return add(t, doc, doc.Root(), svgdoc.KindPolygon, "points", "1 1 4 1 4 3")
	}},
	{"path", func(t *testing.T, doc *svgdoc.Document) svgdoc.NodeID {
		return add(t, doc, doc.Root(), svgdoc.KindPath, "d", "M0 0 h10 v10 a2 2 0 0 1 -2 2 H1 z")
	}},
	{"text", func(t *testing.T, doc *svgdoc.Document) svgdoc.NodeID {
		id := add(t, doc, doc.Root(), svgdoc.KindText, "x", "5", "y", "20")
		doc.Element(id).Text = "hello"
		return id
	}},
	{"group", func(t *testing.T, doc *svgdoc.Document) svgdoc.NodeID {
		g := add(t, doc, doc.Root(), svgdoc.KindGroup)
		add(t, doc, g, svgdoc.KindRect, "x", "0", "y", "0", "width", "10", "height", "10")
		add(t, doc, g, svgdoc.KindRect, "x", "20", "y", "0", "width", "10", "height", "10", "transform", "rotate(30 25 5)")
		return g
	}},
}

func TestRectScenario(t *testing.T) {
	doc := newRoot()
	id := add(t, doc, doc.Root(), svgdoc.KindRect, "x", "0", "y", "0", "width", "10", "height", "20")
	s := shaperOf(t, doc, id)

	c, err := s.Center()
	require.NoError(t, err)
	assertPoint(t, Point{5, 10}, c)

	require.NoError(t, s.SetSize(Point{20, 40}))
	el := doc.Element(id)
	assert.Equal(t, "-5", el.Attr("x"))
	assert.Equal(t, "-10", el.Attr("y"))
	assert.Equal(t, "20", el.Attr("width"))
	assert.Equal(t, "40", el.Attr("height"))

	c, err = s.Center()
	require.NoError(t, err)
	assertPoint(t, Point{5, 10}, c)
}

func TestCenterRoundTrip(t *testing.T) {
	targets := []Point{{37.5, -12.25}, {0, 0}, {-100, 3}}
	for _, b := range builders {
		doc := newRoot()
		s := shaperOf(t, doc, b.build(t, doc))
		for _, p := range targets {
			require.NoError(t, s.SetCenter(p), b.name)
			c, err := s.Center()
			require.NoError(t, err, b.name)
			assertPoint(t, p, c, b.name)
		}
	}
}

func TestCorners(t *testing.T) {
	doc := newRoot()
	id := add(t, doc, doc.Root(), svgdoc.KindEllipse, "cx", "10", "cy", "20", "rx", "4", "ry", "3")
	s := shaperOf(t, doc, id)

	for _, test := range []struct {
		get      func() (Point, error)
		expected Point
	}{
		{s.TopLeft, Point{6, 17}},
		{s.TopRight, Point{14, 17}},
		{s.BottomLeft, Point{6, 23}},
		{s.BottomRight, Point{14, 23}},
	} {
		p, err := test.get()
		require.NoError(t, err)
		assertPoint(t, test.expected, p)
	}
}

func TestResizeAnchored(t *testing.T) {
	newSize := Point{24, 18}
	corners := []func(s *Shaper) (Point, error){
		(*Shaper).TopLeft, (*Shaper).TopRight, (*Shaper).BottomLeft, (*Shaper).BottomRight,
	}
	for _, b := range builders {
		for i, cornerOf := range corners {
			doc := newRoot()
			s := shaperOf(t, doc, b.build(t, doc))

			before, err := cornerOf(s)
			require.NoError(t, err)
			// slightly off the corner, which is still the nearest reference point
			anchor := before.Add(Point{0.1, -0.1})
			require.NoError(t, s.ResizeAnchored(newSize, anchor), b.name)

			after, err := cornerOf(s)
			require.NoError(t, err)
			assertPoint(t, before, after, "%s corner %d", b.name, i)

			size, err := s.Size()
			require.NoError(t, err)
			assertPoint(t, newSize, size, b.name)
		}
	}
}

func TestResizeAnchoredCenter(t *testing.T) {
	doc := newRoot()
	id := add(t, doc, doc.Root(), svgdoc.KindPolygon, "points", "0,0 10,0 10,10")
	s := shaperOf(t, doc, id)

	require.NoError(t, s.ResizeAnchored(Point{20, 30}, Point{5.2, 4.9}))
	c, err := s.Center()
	require.NoError(t, err)
	assertPoint(t, Point{5, 5}, c)
	assert.Equal(t, "-5,-10 15,-10 15,20", doc.Element(id).Attr("points"))
}

func TestNegativeSize(t *testing.T) {
	doc := newRoot()
	s := shaperOf(t, doc, add(t, doc, doc.Root(), svgdoc.KindRect, "width", "1", "height", "1"))
	assert.ErrorIs(t, s.SetSize(Point{-1, 2}), ErrNegativeSize)
	assert.ErrorIs(t, s.ResizeAnchored(Point{1, -2}, Point{}), ErrNegativeSize)
}

func TestCirclePromotion(t *testing.T) {
	doc := newRoot()
	id := add(t, doc, doc.Root(), svgdoc.KindCircle, "cx", "0", "cy", "0", "r", "5")
	s := shaperOf(t, doc, id)
	el := doc.Element(id)

	require.NoError(t, s.SetSize(Point{20, 20}))
	assert.Equal(t, svgdoc.KindCircle, el.Kind)
	assert.Equal(t, "10", el.Attr("r"))

	require.NoError(t, s.SetSize(Point{20, 10}))
	assert.Equal(t, svgdoc.KindEllipse, el.Kind)
	assert.Equal(t, "ellipse", el.Tag)
	assert.False(t, el.Has("r"))
	assert.Equal(t, "10", el.Attr("rx"))
	assert.Equal(t, "5", el.Attr("ry"))

	// the promotion is one-way
	require.NoError(t, s.SetSize(Point{8, 8}))
	assert.Equal(t, svgdoc.KindEllipse, el.Kind)
	assert.Equal(t, "4", el.Attr("rx"))
	assert.Equal(t, "4", el.Attr("ry"))
}

func TestCirclePromotionKeepsUnit(t *testing.T) {
	doc := newRoot()
	id := add(t, doc, doc.Root(), svgdoc.KindCircle, "cx", "0", "cy", "0", "r", "1in")
	s := shaperOf(t, doc, id)

	require.NoError(t, s.SetSize(Point{192, 96}))
	el := doc.Element(id)
	assert.Equal(t, "1in", el.Attr("rx"))
	assert.Equal(t, "0.5in", el.Attr("ry"))
}

func TestEllipseDefaultRadius(t *testing.T) {
	doc := newRoot()
	s := shaperOf(t, doc, add(t, doc, doc.Root(), svgdoc.KindEllipse, "rx", "3"))
	size, err := s.Size()
	require.NoError(t, err)
	assertPoint(t, Point{6, 6}, size)
}

func TestPolylineMove(t *testing.T) {
	doc := newRoot()
	id := add(t, doc, doc.Root(), svgdoc.KindPolyline, "points", "0,0 10,5 3,8")
	s := shaperOf(t, doc, id)

	require.NoError(t, s.Move(Point{1, -2}))
	assert.Equal(t, "1,-2 11,3 4,6", doc.Element(id).Attr("points"))
}

func TestPackedPoints(t *testing.T) {
	doc := newRoot()
	g := add(t, doc, doc.Root(), svgdoc.KindGroup)
	id := add(t, doc, g, svgdoc.KindPolygon, "points", "0,0 10-5 20,5")
	add(t, doc, g, svgdoc.KindRect, "x", "0", "y", "0", "width", "4", "height", "4")

	size, err := shaperOf(t, doc, id).Size()
	require.NoError(t, err)
	assertPoint(t, Point{20, 10}, size)

	group := shaperOf(t, doc, g)
	size, err = group.Size()
	require.NoError(t, err)
	assertPoint(t, Point{20, 10}, size)
	require.NoError(t, group.Move(Point{1, 1}))
	assert.Equal(t, "translate(1 1)", doc.Element(id).Attr("transform"))

	require.NoError(t, shaperOf(t, doc, id).Move(Point{1, 1}))
	assert.Equal(t, "1,1 11,-4 21,6", doc.Element(id).Attr("points"))
}

func TestPackedTransform(t *testing.T) {
	doc := newRoot()
	id := add(t, doc, doc.Root(), svgdoc.KindRect, "width", "2", "height", "2", "transform", "translate(10-5)")
	m, err := shaperOf(t, doc, id).OwnTransform()
	require.NoError(t, err)
	assert.True(t, m.Near(svgxform.Identity.Translate(10, -5), tol))
}

func TestPathWithoutData(t *testing.T) {
	doc := newRoot()
	for _, attrs := range [][]string{nil, {"d", "  "}} {
		id := add(t, doc, doc.Root(), svgdoc.KindPath, attrs...)
		s := shaperOf(t, doc, id)
		el := doc.Element(id)
		before := el.Clone()

		require.NoError(t, s.Move(Point{2, 3}))
		require.NoError(t, s.SetSize(Point{5, 5}))
		assert.Equal(t, before, *el)
	}
}

func TestPathGeometry(t *testing.T) {
	doc := newRoot()
	id := add(t, doc, doc.Root(), svgdoc.KindPath, "d", "M0,0 H10 V10 H0 Z")
	s := shaperOf(t, doc, id)
	el := doc.Element(id)

	size, err := s.Size()
	require.NoError(t, err)
	assertPoint(t, Point{10, 10}, size)

	require.NoError(t, s.Move(Point{2, 3}))
	assert.Equal(t, "M2 3 H12 V13 H2 Z", el.Attr("d"))

	require.NoError(t, s.SetSize(Point{20, 5}))
	assert.Equal(t, "M-3 5.5 H17 V10.5 H-3 Z", el.Attr("d"))
}

func TestPathRelativeMove(t *testing.T) {
	doc := newRoot()
	id := add(t, doc, doc.Root(), svgdoc.KindPath, "d", "m1 1 h4 v4 l-2 2 z")
	s := shaperOf(t, doc, id)

	require.NoError(t, s.Move(Point{10, 0}))
	assert.Equal(t, "m11 1 h4 v4 l-2 2 z", doc.Element(id).Attr("d"))
	require.NoError(t, s.Move(Point{-10, 0}))
	assert.Equal(t, "m1 1 h4 v4 l-2 2 z", doc.Element(id).Attr("d"))
}

func TestMalformedPath(t *testing.T) {
	doc := newRoot()
	s := shaperOf(t, doc, add(t, doc, doc.Root(), svgdoc.KindPath, "d", "M0 0 K3 4"))

	_, err := s.Center()
	assert.ErrorIs(t, err, svgpath.ErrMalformedPath)
	assert.ErrorIs(t, s.Move(Point{1, 1}), svgpath.ErrMalformedPath)
}

func TestTextGeometry(t *testing.T) {
	doc := newRoot()
	id := add(t, doc, doc.Root(), svgdoc.KindText, "x", "10", "y", "20", "font-size", "26")
	el := doc.Element(id)
	el.Text = "abcd"
	s := shaperOf(t, doc, id)

	// the basic font is 7 pixels wide, 11 above the baseline and 2 below, at size 13
	size, err := s.Size()
	require.NoError(t, err)
	assertPoint(t, Point{56, 26}, size)
	c, err := s.Center()
	require.NoError(t, err)
	assertPoint(t, Point{38, 11}, c)

	require.NoError(t, s.SetSize(Point{112, 52}))
	assert.Equal(t, "52px", el.Attr("font-size"))
	assert.Equal(t, "112", el.Attr("textLength"))
	size, err = s.Size()
	require.NoError(t, err)
	assertPoint(t, Point{112, 52}, size)
	c, err = s.Center()
	require.NoError(t, err)
	assertPoint(t, Point{38, 11}, c)
}

func TestTextAnchorAndInheritance(t *testing.T) {
	doc := newRoot()
	g := add(t, doc, doc.Root(), svgdoc.KindGroup, "style", "font-size:26px;text-anchor:middle")
	id := add(t, doc, g, svgdoc.KindText, "x", "10", "y", "20")
	doc.Element(id).Text = "  ab\n cd "
	s := shaperOf(t, doc, id)

	// white spaces are collapsed: "ab cd"
	b, err := s.Bounds()
	require.NoError(t, err)
	assertPoint(t, Point{-25, -2}, b.Min)
	assertPoint(t, Point{45, 24}, b.Max)
}

func TestPercentLength(t *testing.T) {
	doc := newRoot("viewBox", "0 0 200 100")
	id := add(t, doc, doc.Root(), svgdoc.KindRect, "x", "0", "y", "0", "width", "50%", "height", "50%")
	s := shaperOf(t, doc, id)

	size, err := s.Size()
	require.NoError(t, err)
	assertPoint(t, Point{100, 50}, size)

	require.NoError(t, s.SetSize(Point{120, 50}))
	el := doc.Element(id)
	assert.Equal(t, "60%", el.Attr("width"))
	assert.Equal(t, "-10", el.Attr("x"))
}

func TestPaints(t *testing.T) {
	doc := newRoot()
	id := add(t, doc, doc.Root(), svgdoc.KindRect, "style", "fill:#ff0000;stroke:none", "width", "1", "height", "1")
	s := shaperOf(t, doc, id)
	el := doc.Element(id)

	fill, err := s.Fill()
	require.NoError(t, err)
	assert.Equal(t, svgdoc.PaintColor, fill.Kind)
	assert.Equal(t, color.NRGBA{R: 0xff, A: 0xff}, fill.Color)
	stroke, err := s.Stroke()
	require.NoError(t, err)
	assert.Equal(t, svgdoc.PaintNone, stroke.Kind)

	require.NoError(t, s.SetFill(svgdoc.ColorPaint(color.NRGBA{B: 0xff, A: 0xff})))
	assert.Equal(t, "fill:#0000ff;stroke:none", el.Attr("style"))
	assert.False(t, el.Has("fill"))

	require.NoError(t, s.SetStroke(svgdoc.Paint{Kind: svgdoc.PaintURL, URL: "#grad"}))
	stroke, err = s.Stroke()
	require.NoError(t, err)
	assert.Equal(t, svgdoc.PaintURL, stroke.Kind)
	assert.Equal(t, "#grad", stroke.URL)
}

func TestOwnTransform(t *testing.T) {
	doc := newRoot()
	id := add(t, doc, doc.Root(), svgdoc.KindRect, "width", "1", "height", "1", "transform", "translate(10 0) scale(2)")
	s := shaperOf(t, doc, id)
	el := doc.Element(id)

	m, err := s.OwnTransform()
	require.NoError(t, err)
	assert.True(t, m.Near(svgxform.Matrix2D{A: 2, D: 2, E: 10}, tol))

	require.NoError(t, s.SetOwnTransform(svgxform.Matrix2D{A: 1, B: 0, C: 0, D: 3, E: 0, F: 4}))
	assert.Equal(t, "matrix(1 0 0 3 0 4)", el.Attr("transform"))

	// the identity clears the attribute
	require.NoError(t, s.SetOwnTransform(svgxform.Identity))
	assert.False(t, el.Has("transform"))
	m, err = s.OwnTransform()
	require.NoError(t, err)
	assert.True(t, m.IsIdentity())
}

func TestMalformedTransform(t *testing.T) {
	doc := newRoot()
	id := add(t, doc, doc.Root(), svgdoc.KindRect, "width", "1", "height", "1", "transform", "rotate(1")
	s := shaperOf(t, doc, id)

	_, err := s.OwnTransform()
	assert.ErrorIs(t, err, svgxform.ErrMalformedTransform)
	_, err = s.Bounds()
	assert.ErrorIs(t, err, svgxform.ErrMalformedTransform)
}

func TestAppendTransformDescriptors(t *testing.T) {
	doc := newRoot()
	id := add(t, doc, doc.Root(), svgdoc.KindRect, "width", "1", "height", "1")
	s := shaperOf(t, doc, id)
	el := doc.Element(id)

	require.NoError(t, s.AppendTransformDescriptors([]svgxform.Descriptor{svgxform.Translate{X: 3, Y: 4}}, svgxform.Right))
	require.NoError(t, s.AppendTransformDescriptors([]svgxform.Descriptor{svgxform.Translate{X: 1, Y: -1}}, svgxform.Right))
	assert.Equal(t, "translate(4 3)", el.Attr("transform"))

	require.NoError(t, s.AppendTransformDescriptors([]svgxform.Descriptor{svgxform.Scale{X: 2, Y: 2}}, svgxform.Left))
	assert.Equal(t, "scale(2) translate(4 3)", el.Attr("transform"))

	// back to the identity
	require.NoError(t, s.AppendTransformDescriptors([]svgxform.Descriptor{svgxform.Scale{X: 0.5, Y: 0.5}}, svgxform.Left))
	require.NoError(t, s.AppendTransformDescriptors([]svgxform.Descriptor{svgxform.Translate{X: -4, Y: -3}}, svgxform.Right))
	assert.False(t, el.Has("transform"))
}

func TestComposedTransform(t *testing.T) {
	doc := newRoot("width", "200", "height", "100", "viewBox", "0 0 100 50")
	g := add(t, doc, doc.Root(), svgdoc.KindGroup, "transform", "translate(10,0)")
	rect := add(t, doc, g, svgdoc.KindRect, "width", "1", "height", "1", "transform", "scale(2)")
	inner := add(t, doc, g, svgdoc.KindSVG, "x", "5", "y", "5", "width", "10", "height", "10", "viewBox", "0 0 1 1")
	innerRect := add(t, doc, inner, svgdoc.KindRect, "width", "1", "height", "1")

	for _, test := range []struct {
		id      svgdoc.NodeID
		in, out Point
	}{
		{doc.Root(), Point{1, 1}, Point{1, 1}}, // the viewBox only applies to the content
		{g, Point{0, 0}, Point{20, 0}},
		{rect, Point{1, 1}, Point{24, 4}},
		{inner, Point{0, 0}, Point{20, 0}},
		{innerRect, Point{1, 1}, Point{50, 30}},
	} {
		m, err := shaperOf(t, doc, test.id).ComposedTransform()
		require.NoError(t, err)
		assertPoint(t, test.out, m.Apply(test.in), doc.Path(test.id))
	}
}

func TestRotate(t *testing.T) {
	doc := newRoot()
	id := add(t, doc, doc.Root(), svgdoc.KindRect, "x", "0", "y", "0", "width", "10", "height", "20")
	s := shaperOf(t, doc, id)

	require.NoError(t, s.Rotate(90))
	assert.Equal(t, "rotate(90 5 10)", doc.Element(id).Attr("transform"))

	b, err := s.Bounds()
	require.NoError(t, err)
	assertPoint(t, Point{-5, 5}, b.Min)
	assertPoint(t, Point{15, 15}, b.Max)

	// same pivot: the angles are summed
	require.NoError(t, s.Rotate(-90))
	assert.False(t, doc.Element(id).Has("transform"))
}

func TestUnsupportedKind(t *testing.T) {
	doc := newRoot()
	id, err := doc.AddChild(doc.Root(), svgdoc.Element{Tag: "foo"})
	require.NoError(t, err)
	s := shaperOf(t, doc, id)
	assert.False(t, s.Supported())

	_, err = s.Center()
	assert.ErrorIs(t, err, ErrUnsupportedShapeKind)
	_, err = s.TopLeft()
	assert.ErrorIs(t, err, ErrUnsupportedShapeKind)
	_, err = s.Fill()
	assert.ErrorIs(t, err, ErrUnsupportedShapeKind)
	_, err = s.OwnTransform()
	assert.ErrorIs(t, err, ErrUnsupportedShapeKind)
	_, err = s.ComposedTransform()
	assert.ErrorIs(t, err, ErrUnsupportedShapeKind)
	_, err = s.Outline()
	assert.ErrorIs(t, err, ErrUnsupportedShapeKind)
	assert.ErrorIs(t, s.SetCenter(Point{}), ErrUnsupportedShapeKind)
	assert.ErrorIs(t, s.SetSize(Point{1, 1}), ErrUnsupportedShapeKind)
	assert.ErrorIs(t, s.Move(Point{1, 1}), ErrUnsupportedShapeKind)
	assert.ErrorIs(t, s.Rotate(45), ErrUnsupportedShapeKind)
	assert.ErrorIs(t, s.SetFill(svgdoc.Paint{Kind: svgdoc.PaintNone}), ErrUnsupportedShapeKind)
	assert.ErrorIs(t, s.AppendTransformDescriptors(nil, svgxform.Left), ErrUnsupportedShapeKind)

	_, err = New(doc, 42, testEnv)
	assert.ErrorIs(t, err, svgdoc.ErrUnknownNode)
}

func TestOutline(t *testing.T) {
	doc := newRoot()
	rect := add(t, doc, doc.Root(), svgdoc.KindRect, "x", "0", "y", "0", "width", "10", "height", "20")
	rounded := add(t, doc, doc.Root(), svgdoc.KindRect, "x", "0", "y", "0", "width", "10", "height", "20", "rx", "20")
	circle := add(t, doc, doc.Root(), svgdoc.KindCircle, "cx", "5", "cy", "5", "r", "5")

	o, err := shaperOf(t, doc, rect).Outline()
	require.NoError(t, err)
	assert.Equal(t, "M0 0 H10 V20 H0 Z", o.String())

	for _, id := range []svgdoc.NodeID{rounded, circle} {
		s := shaperOf(t, doc, id)
		o, err = s.Outline()
		require.NoError(t, err)
		box, err := s.Bounds()
		require.NoError(t, err)
		exact := o.ExactBounds()
		assert.InDelta(t, box.Min.X, exact.Min.X, 1e-3)
		assert.InDelta(t, box.Min.Y, exact.Min.Y, 1e-3)
		assert.InDelta(t, box.Max.X, exact.Max.X, 1e-3)
		assert.InDelta(t, box.Max.Y, exact.Max.Y, 1e-3)
	}
}
