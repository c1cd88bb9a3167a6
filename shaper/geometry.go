package shaper

import (
	"math"

	"github.com/benoitkugler/svgedit/svgdoc"
	"github.com/benoitkugler/svgedit/svgpath"
	"github.com/benoitkugler/svgedit/svgxform"
)

// geometry implements the native geometry of one kind of element.
type geometry interface {
	// box returns the bounding box, in the user space of the element
	box(s *Shaper) (svgxform.Box, error)
	// setSize resizes the element, keeping its center
	setSize(s *Shaper, size Point) error
	move(s *Shaper, d Point) error
	outline(s *Shaper) (svgpath.Path, error)
}

var geometries = map[svgdoc.Kind]geometry{
	svgdoc.KindSVG:      rectGeometry{},
	svgdoc.KindRect:     rectGeometry{},
	svgdoc.KindImage:    rectGeometry{},
	svgdoc.KindCircle:   ellipseGeometry{},
	svgdoc.KindEllipse:  ellipseGeometry{},
	svgdoc.KindPolyline: polyGeometry{},
	svgdoc.KindPolygon:  polyGeometry{closed: true},
	svgdoc.KindPath:     pathGeometry{},
	svgdoc.KindText:     textGeometry{},
	svgdoc.KindGroup:    groupGeometry{},
}

func geometryOf(k svgdoc.Kind) geometry {
	if g, ok := geometries[k]; ok {
		return g
	}
	return unsupported{}
}

// unsupported is used for elements without geometry.
type unsupported struct{}

func (unsupported) box(s *Shaper) (svgxform.Box, error) {
	return svgxform.Box{}, errUnsupported(s.el())
}
func (unsupported) setSize(s *Shaper, _ Point) error { return errUnsupported(s.el()) }
func (unsupported) move(s *Shaper, _ Point) error    { return errUnsupported(s.el()) }
func (unsupported) outline(s *Shaper) (svgpath.Path, error) {
	return nil, errUnsupported(s.el())
}

// ops is the minimal set of operations from which
// the derived capabilities are built.
type ops interface {
	box() (svgxform.Box, error)
	setSize(size Point) error
	move(d Point) error
}

func centerOf(o ops) (Point, error) {
	b, err := o.box()
	return b.Center(), err
}

func sizeOf(o ops) (Point, error) {
	b, err := o.box()
	return b.Size(), err
}

func setCenter(o ops, c Point) error {
	cur, err := centerOf(o)
	if err != nil {
		return err
	}
	return o.move(c.Sub(cur))
}

// boxPoint returns the point of b at the relative position (fx, fy),
// (0, 0) being the top left corner and (1, 1) the bottom right one.
func boxPoint(b svgxform.Box, fx, fy float64) Point {
	size := b.Size()
	return Point{b.Min.X + fx*size.X, b.Min.Y + fy*size.Y}
}

// corner is derived from the center and the size, so that
// it is defined for all kinds
func corner(o ops, fx, fy float64) (Point, error) {
	b, err := o.box()
	if err != nil {
		return Point{}, err
	}
	c, size := b.Center(), b.Size()
	return Point{c.X + (fx-0.5)*size.X, c.Y + (fy-0.5)*size.Y}, nil
}

var anchorPositions = [9]Point{
	{0, 0}, {0.5, 0}, {1, 0},
	{0, 0.5}, {0.5, 0.5}, {1, 0.5},
	{0, 1}, {0.5, 1}, {1, 1},
}

// nearestAnchor returns the relative position of the reference point of b
// nearest to p, among the corners, the middle of the edges and the center.
func nearestAnchor(b svgxform.Box, p Point) Point {
	best, bestDist := anchorPositions[4], math.Inf(1)
	for _, pos := range anchorPositions {
		if d := boxPoint(b, pos.X, pos.Y).Dist(p); d < bestDist {
			best, bestDist = pos, d
		}
	}
	return best
}

// resizeAnchored resizes around the center, then moves
// the shape back so that the reference point is restored.
func resizeAnchored(o ops, size, anchor Point) error {
	b, err := o.box()
	if err != nil {
		return err
	}
	pos := nearestAnchor(b, anchor)
	ref := boxPoint(b, pos.X, pos.Y)
	if err = o.setSize(size); err != nil {
		return err
	}
	nb, err := o.box()
	if err != nil {
		return err
	}
	delta := ref.Sub(boxPoint(nb, pos.X, pos.Y))
	if delta.Near(Point{}, epsilon) {
		return nil
	}
	return o.move(delta)
}

const epsilon = 1e-9

// ratio returns target / current, or 1 for a degenerate current value
func ratio(target, current float64) float64 {
	if math.Abs(current) < epsilon {
		return 1
	}
	return target / current
}

// centerShift returns the move restoring the center of b,
// once scaled by r about its top left corner.
func centerShift(b svgxform.Box, r Point) Point {
	c := b.Center()
	scaled := b.Min.Add(c.Sub(b.Min).Mul(r))
	return c.Sub(scaled)
}
