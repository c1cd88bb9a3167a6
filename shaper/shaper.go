// Package shaper gives a uniform access to the geometry of the shapes
// of a document, whatever their kind: center, size, corners, paints
// and transforms can be read and written, the edits being stored back
// in the element attributes.
//
// All the geometry is expressed in pixels, in the user space of the element,
// that is before its own transform is applied. For groups, it is the
// user space of the children, and for a MultiShaper, the one of the common parent.
package shaper

import (
	"fmt"

	"github.com/benoitkugler/svgedit/svgdoc"
	"github.com/benoitkugler/svgedit/svgpath"
	"github.com/benoitkugler/svgedit/svgxform"
)

type Point = svgxform.Point

// Shape is the capability set shared by Shaper and MultiShaper.
type Shape interface {
	Center() (Point, error)
	SetCenter(c Point) error
	Size() (Point, error)
	SetSize(size Point) error
	TopLeft() (Point, error)
	TopRight() (Point, error)
	BottomLeft() (Point, error)
	BottomRight() (Point, error)

	Fill() (svgdoc.Paint, error)
	SetFill(p svgdoc.Paint) error
	Stroke() (svgdoc.Paint, error)
	SetStroke(p svgdoc.Paint) error

	Move(delta Point) error
	ResizeAnchored(size, anchor Point) error
	Rotate(angle float64) error

	OwnTransform() (svgxform.Matrix2D, error)
	SetOwnTransform(m svgxform.Matrix2D) error
	ComposedTransform() (svgxform.Matrix2D, error)
	AppendTransformDescriptors(descs []svgxform.Descriptor, side svgxform.Side) error

	Bounds() (svgxform.Box, error)
	Outline() (svgpath.Path, error)
}

var (
	_ Shape = (*Shaper)(nil)
	_ Shape = (*MultiShaper)(nil)
)

// Shaper accesses the geometry of one element.
// The kind of the element is looked up on each call, since writing
// a size may change it (see SetSize).
type Shaper struct {
	doc *svgdoc.Document
	id  svgdoc.NodeID
	env Env
}

// New returns a Shaper for the element id. Only invalid nodes are
// rejected: elements with an unsupported kind are accepted, but
// all their capabilities fail with ErrUnsupportedShapeKind.
func New(doc *svgdoc.Document, id svgdoc.NodeID, env Env) (*Shaper, error) {
	if !doc.Valid(id) {
		return nil, fmt.Errorf("shaper: %w: %d", svgdoc.ErrUnknownNode, id)
	}
	return &Shaper{doc: doc, id: id, env: env.WithDefaults()}, nil
}

// at returns a Shaper for another node of the same document
func (s *Shaper) at(id svgdoc.NodeID) *Shaper {
	return &Shaper{doc: s.doc, id: id, env: s.env}
}

func (s *Shaper) el() *svgdoc.Element { return s.doc.Element(s.id) }

func (s *Shaper) geometry() geometry { return geometryOf(s.el().Kind) }

func (s *Shaper) ID() svgdoc.NodeID        { return s.id }
func (s *Shaper) Kind() svgdoc.Kind        { return s.el().Kind }
func (s *Shaper) Element() *svgdoc.Element { return s.el() }

// Supported is false if the capabilities of s always fail.
func (s *Shaper) Supported() bool {
	_, ok := s.geometry().(unsupported)
	return !ok
}

func (s *Shaper) box() (svgxform.Box, error) { return s.geometry().box(s) }
func (s *Shaper) move(d Point) error         { return s.geometry().move(s, d) }
func (s *Shaper) setSize(size Point) error   { return s.geometry().setSize(s, size) }

// Center returns the center of the bounding box.
func (s *Shaper) Center() (Point, error) { return centerOf(s) }

// SetCenter moves the shape so that its center is c.
func (s *Shaper) SetCenter(c Point) error { return setCenter(s, c) }

// Size returns the size of the bounding box.
func (s *Shaper) Size() (Point, error) { return sizeOf(s) }

// SetSize resizes the shape, keeping its center in place.
// Writing a non square size on a circle turns it into an ellipse.
func (s *Shaper) SetSize(size Point) error {
	if size.X < 0 || size.Y < 0 {
		return fmt.Errorf("%w: %v", ErrNegativeSize, size)
	}
	return s.setSize(size)
}

func (s *Shaper) TopLeft() (Point, error)     { return corner(s, 0, 0) }
func (s *Shaper) TopRight() (Point, error)    { return corner(s, 1, 0) }
func (s *Shaper) BottomLeft() (Point, error)  { return corner(s, 0, 1) }
func (s *Shaper) BottomRight() (Point, error) { return corner(s, 1, 1) }

// Move translates the shape by delta, updating its geometric attributes.
func (s *Shaper) Move(delta Point) error { return s.move(delta) }

// ResizeAnchored resizes the shape to size, so that the point of its
// bounding box nearest to anchor (among the corners, the middle of
// the edges and the center) stays in place.
func (s *Shaper) ResizeAnchored(size, anchor Point) error {
	if size.X < 0 || size.Y < 0 {
		return fmt.Errorf("%w: %v", ErrNegativeSize, size)
	}
	return resizeAnchored(s, size, anchor)
}

func (s *Shaper) Fill() (svgdoc.Paint, error)    { return s.paint("fill") }
func (s *Shaper) Stroke() (svgdoc.Paint, error)  { return s.paint("stroke") }
func (s *Shaper) SetFill(p svgdoc.Paint) error   { return s.setPaint("fill", p) }
func (s *Shaper) SetStroke(p svgdoc.Paint) error { return s.setPaint("stroke", p) }

func (s *Shaper) paint(name string) (svgdoc.Paint, error) {
	el := s.el()
	if !s.Supported() {
		return svgdoc.Paint{}, errUnsupported(el)
	}
	return svgdoc.ParsePaint(el.Style(name))
}

func (s *Shaper) setPaint(name string, p svgdoc.Paint) error {
	el := s.el()
	if !s.Supported() {
		return errUnsupported(el)
	}
	if p.Kind == svgdoc.PaintUnset {
		el.SetPaint(name, p)
		return nil
	}
	el.SetStyle(name, p.String())
	return nil
}

// Bounds returns the bounding box of the shape, mapped
// by its own transform (that is, in the user space of its parent).
func (s *Shaper) Bounds() (svgxform.Box, error) {
	b, err := s.box()
	if err != nil {
		return b, err
	}
	m, err := s.ownMatrix()
	if err != nil {
		return b, err
	}
	return b.Transform(m), nil
}

// Outline returns the outline of the shape, in its user space.
func (s *Shaper) Outline() (svgpath.Path, error) { return s.geometry().outline(s) }

// px resolves the length attribute name, in pixels
func (s *Shaper) px(name string) (float64, error) {
	l, err := s.el().Length(name)
	if err != nil {
		return 0, err
	}
	return s.env.Units.ToPixel(s.doc, s.id, l), nil
}

// setPx writes the length attribute name, keeping its current unit
func (s *Shaper) setPx(name string, v float64) {
	unit := svgdoc.UnitNone
	if l, err := s.el().Length(name); err == nil {
		unit = l.Unit
	}
	s.setPxUnit(name, v, unit)
}

func (s *Shaper) setPxUnit(name string, v float64, unit svgdoc.Unit) {
	s.el().SetLength(s.env.Units.FromPixel(s.doc, s.id, v, unit, name))
}

// pxs resolves several attributes at once
func (s *Shaper) pxs(names ...string) ([]float64, error) {
	out := make([]float64, len(names))
	for i, name := range names {
		v, err := s.px(name)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", s.doc.Path(s.id), err)
		}
		out[i] = v
	}
	return out, nil
}
