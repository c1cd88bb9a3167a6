package shaper

import (
	"github.com/benoitkugler/svgedit/svgdoc"
	"github.com/benoitkugler/svgedit/svgpath"
	"github.com/benoitkugler/svgedit/svgxform"
)

// OutlineFunc receives a painted shape, with its outline in
// its own user space and the matrix mapping it to the root space.
type OutlineFunc = func(s *Shaper, outline svgpath.Path, composed svgxform.Matrix2D) error

// WalkOutlines calls fn for each painted shape of doc, in document order.
// Containers are entered, while unknown elements (defs, clip paths...),
// texts and images are skipped.
func WalkOutlines(doc *svgdoc.Document, env Env, fn OutlineFunc) error {
	env = env.WithDefaults()
	var err error
	doc.Walk(doc.Root(), func(id svgdoc.NodeID, _ int) bool {
		if err != nil {
			return false
		}
		switch k := doc.Element(id).Kind; {
		case k.IsContainer():
			return true
		case k == svgdoc.KindUnknown, k == svgdoc.KindText, k == svgdoc.KindImage:
			return false
		}
		s := &Shaper{doc: doc, id: id, env: env}
		var outline svgpath.Path
		outline, err = s.Outline()
		if err != nil || len(outline) == 0 {
			return false
		}
		var m svgxform.Matrix2D
		if m, err = s.ComposedTransform(); err != nil {
			return false
		}
		err = fn(s, outline, m)
		return false
	})
	return err
}

// SelectionOutline returns the box of s, as a closed path in the
// user space of s, and the matrix mapping this space to the root space.
func SelectionOutline(s Shape) (svgpath.Path, svgxform.Matrix2D, error) {
	var corners [4]Point
	for i, get := range [4]func() (Point, error){s.TopLeft, s.TopRight, s.BottomRight, s.BottomLeft} {
		p, err := get()
		if err != nil {
			return nil, svgxform.Matrix2D{}, err
		}
		corners[i] = p
	}
	m, err := s.ComposedTransform()
	if err != nil {
		return nil, m, err
	}
	out := svgpath.Path{svgpath.Cmd('M', corners[0].X, corners[0].Y)}
	for _, q := range corners[1:] {
		out = append(out, svgpath.Cmd('L', q.X, q.Y))
	}
	out = append(out, svgpath.Cmd('Z'))
	return out, m, nil
}

// CanvasSize returns the size of the root element, in pixels, falling
// back on its viewBox. In this case, the viewBox origin is returned too,
// since composed transforms only use the viewBox when the size is known.
func CanvasSize(doc *svgdoc.Document, env Env) (w, h float64, origin Point) {
	env = env.WithDefaults()
	root := doc.Element(doc.Root())
	if wl, err := root.Length("width"); err == nil {
		w = env.Units.ToPixel(doc, doc.Root(), wl)
	}
	if hl, err := root.Length("height"); err == nil {
		h = env.Units.ToPixel(doc, doc.Root(), hl)
	}
	if w > 0 && h > 0 {
		return w, h, origin
	}
	if vb, err := svgxform.ParseViewBox(root.Attr("viewBox")); err == nil {
		return vb.W, vb.H, Point{X: vb.X, Y: vb.Y}
	}
	return w, h, origin
}
