package shaper

import (
	"fmt"

	"github.com/benoitkugler/svgedit/svgdoc"
	"github.com/benoitkugler/svgedit/svgpath"
	"github.com/benoitkugler/svgedit/svgxform"
)

// MultiShaper accesses a selection of siblings as one shape,
// behaving as a group which is never written in the document.
// Its geometry is expressed in the user space of the common parent.
type MultiShaper struct {
	aggregate
	doc    *svgdoc.Document
	parent svgdoc.NodeID
}

// NewMulti returns a MultiShaper for the given elements, which must be
// distinct, valid and share the same parent (ErrInvalidSelection is
// returned otherwise). Elements without geometry are rejected with
// ErrUnsupportedShapeKind.
func NewMulti(doc *svgdoc.Document, ids []svgdoc.NodeID, env Env) (*MultiShaper, error) {
	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: empty selection", ErrInvalidSelection)
	}
	env = env.WithDefaults()
	out := &MultiShaper{doc: doc, parent: doc.Parent(ids[0])}
	seen := make(map[svgdoc.NodeID]bool, len(ids))
	for _, id := range ids {
		if !doc.Valid(id) {
			return nil, fmt.Errorf("%w: unknown node %d", ErrInvalidSelection, id)
		}
		if seen[id] {
			return nil, fmt.Errorf("%w: %s selected twice", ErrInvalidSelection, doc.Path(id))
		}
		seen[id] = true
		if p := doc.Parent(id); p != out.parent {
			return nil, fmt.Errorf("%w: %s and %s have different parents",
				ErrInvalidSelection, doc.Path(ids[0]), doc.Path(id))
		}
		s := &Shaper{doc: doc, id: id, env: env}
		if !s.Supported() {
			return nil, errUnsupported(s.el())
		}
		out.members = append(out.members, s)
	}
	return out, nil
}

// Members returns one Shaper per selected element, in selection order.
func (ms *MultiShaper) Members() []*Shaper { return append([]*Shaper(nil), ms.members...) }

// Parent returns the common parent of the selection.
func (ms *MultiShaper) Parent() svgdoc.NodeID { return ms.parent }

func (ms *MultiShaper) Center() (Point, error)  { return centerOf(ms) }
func (ms *MultiShaper) SetCenter(c Point) error { return setCenter(ms, c) }
func (ms *MultiShaper) Size() (Point, error)    { return sizeOf(ms) }

// SetSize scales every member around the center of the selection.
func (ms *MultiShaper) SetSize(size Point) error {
	if size.X < 0 || size.Y < 0 {
		return fmt.Errorf("%w: %v", ErrNegativeSize, size)
	}
	return ms.setSize(size)
}

func (ms *MultiShaper) TopLeft() (Point, error)     { return corner(ms, 0, 0) }
func (ms *MultiShaper) TopRight() (Point, error)    { return corner(ms, 1, 0) }
func (ms *MultiShaper) BottomLeft() (Point, error)  { return corner(ms, 0, 1) }
func (ms *MultiShaper) BottomRight() (Point, error) { return corner(ms, 1, 1) }

// Fill returns the fill of the first member.
func (ms *MultiShaper) Fill() (svgdoc.Paint, error) { return ms.members[0].Fill() }

// Stroke returns the stroke of the first member.
func (ms *MultiShaper) Stroke() (svgdoc.Paint, error) { return ms.members[0].Stroke() }

// SetFill writes p on every member.
func (ms *MultiShaper) SetFill(p svgdoc.Paint) error {
	for _, m := range ms.members {
		if err := m.SetFill(p); err != nil {
			return err
		}
	}
	return nil
}

// SetStroke writes p on every member.
func (ms *MultiShaper) SetStroke(p svgdoc.Paint) error {
	for _, m := range ms.members {
		if err := m.SetStroke(p); err != nil {
			return err
		}
	}
	return nil
}

func (ms *MultiShaper) Move(delta Point) error { return ms.move(delta) }

func (ms *MultiShaper) ResizeAnchored(size, anchor Point) error {
	if size.X < 0 || size.Y < 0 {
		return fmt.Errorf("%w: %v", ErrNegativeSize, size)
	}
	return resizeAnchored(ms, size, anchor)
}

// Rotate prepends to every member a rotation of angle degrees,
// around the center of the whole selection (computed once).
func (ms *MultiShaper) Rotate(angle float64) error {
	c, err := ms.Center()
	if err != nil {
		return err
	}
	return ms.rotate(angle, c)
}

// OwnTransform always fails with ErrUndefinedAggregateTransform.
func (ms *MultiShaper) OwnTransform() (svgxform.Matrix2D, error) {
	return svgxform.Identity, fmt.Errorf("%w: selection", ErrUndefinedAggregateTransform)
}

// SetOwnTransform always fails with ErrUndefinedAggregateTransform.
func (ms *MultiShaper) SetOwnTransform(svgxform.Matrix2D) error {
	return fmt.Errorf("%w: selection", ErrUndefinedAggregateTransform)
}

// ComposedTransform returns the composed transform of the
// common parent, which maps the selection space to the root space.
func (ms *MultiShaper) ComposedTransform() (svgxform.Matrix2D, error) {
	return ms.members[0].contentMatrix(ms.parent)
}

// AppendTransformDescriptors adds descs to the transform of every member.
func (ms *MultiShaper) AppendTransformDescriptors(descs []svgxform.Descriptor, side svgxform.Side) error {
	for _, m := range ms.members {
		if err := m.AppendTransformDescriptors(descs, side); err != nil {
			return err
		}
	}
	return nil
}

// Bounds is the union of the members bounds.
func (ms *MultiShaper) Bounds() (svgxform.Box, error) { return ms.box() }

// Outline concatenates the members outlines, in the parent space.
func (ms *MultiShaper) Outline() (svgpath.Path, error) { return ms.outline() }
