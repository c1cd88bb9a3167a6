package shaper

import (
	"fmt"

	"github.com/benoitkugler/svgedit/svgdoc"
	"github.com/benoitkugler/svgedit/svgxform"
)

func (s *Shaper) transform() (svgxform.Transform, error) {
	t, err := svgxform.ParseTransform(s.el().Attr("transform"))
	if err != nil {
		return t, fmt.Errorf("%s: %w", s.doc.Path(s.id), err)
	}
	return t, nil
}

// writeTransform stores t, removing the attribute
// when t is empty or reduces to the identity.
func (s *Shaper) writeTransform(t svgxform.Transform) {
	if t.IsEmpty() || t.Matrix().IsIdentity() {
		s.el().Del("transform")
		return
	}
	s.el().Set("transform", t.String())
}

func (s *Shaper) ownMatrix() (svgxform.Matrix2D, error) {
	t, err := s.transform()
	if err != nil {
		return svgxform.Identity, err
	}
	return t.Matrix(), nil
}

// viewportMatrix returns the map from the user space established by an
// svg element to the one of its parent: a nested svg is placed at (x, y),
// and the viewBox is mapped onto (width, height).
func (s *Shaper) viewportMatrix() (svgxform.Matrix2D, error) {
	el := s.el()
	if el.Kind != svgdoc.KindSVG {
		return svgxform.Identity, nil
	}
	var x, y float64
	if s.doc.Parent(s.id) != svgdoc.NoNode {
		v, err := s.pxs("x", "y")
		if err != nil {
			return svgxform.Identity, err
		}
		x, y = v[0], v[1]
	}
	if !el.Has("viewBox") || !el.Has("width") || !el.Has("height") {
		return svgxform.Identity.Translate(x, y), nil
	}
	vb, err := svgxform.ParseViewBox(el.Attr("viewBox"))
	if err != nil {
		return svgxform.Identity, fmt.Errorf("%s: %w", s.doc.Path(s.id), err)
	}
	ar, err := svgxform.ParseAspectRatio(el.Attr("preserveAspectRatio"))
	if err != nil {
		return svgxform.Identity, fmt.Errorf("%s: %w", s.doc.Path(s.id), err)
	}
	v, err := s.pxs("width", "height")
	if err != nil {
		return svgxform.Identity, err
	}
	return svgxform.ViewBoxTransform(vb, x, y, v[0], v[1], ar), nil
}

// contentMatrix returns the map from the user space of the children of id
// to the root space: the ancestors' content matrices, then the own
// transform of id, then its viewport mapping.
func (s *Shaper) contentMatrix(id svgdoc.NodeID) (svgxform.Matrix2D, error) {
	m := svgxform.Identity
	if id == svgdoc.NoNode {
		return m, nil
	}
	chain := append([]svgdoc.NodeID{id}, s.doc.Ancestors(id)...)
	for i := len(chain) - 1; i >= 0; i-- {
		n := s.at(chain[i])
		own, err := n.ownMatrix()
		if err != nil {
			return m, err
		}
		vp, err := n.viewportMatrix()
		if err != nil {
			return m, err
		}
		m = m.Mult(own).Mult(vp)
	}
	return m, nil
}

// OwnTransform folds the transform attribute into one matrix.
// It is not defined for groups.
func (s *Shaper) OwnTransform() (svgxform.Matrix2D, error) {
	if err := s.checkOwnTransform(); err != nil {
		return svgxform.Identity, err
	}
	return s.ownMatrix()
}

// SetOwnTransform replaces the transform attribute by m.
// The identity is not written: the attribute is removed instead.
func (s *Shaper) SetOwnTransform(m svgxform.Matrix2D) error {
	if err := s.checkOwnTransform(); err != nil {
		return err
	}
	s.writeTransform(svgxform.NewTransform(svgxform.MatrixOp(m)))
	return nil
}

func (s *Shaper) checkOwnTransform() error {
	el := s.el()
	if el.Kind == svgdoc.KindGroup {
		return fmt.Errorf("%w: <%s>", ErrUndefinedAggregateTransform, el.Tag)
	}
	if !s.Supported() {
		return errUnsupported(el)
	}
	return nil
}

// ComposedTransform returns the map from the user space of
// the element to the root space.
func (s *Shaper) ComposedTransform() (svgxform.Matrix2D, error) {
	if !s.Supported() {
		return svgxform.Identity, errUnsupported(s.el())
	}
	parent, err := s.contentMatrix(s.doc.Parent(s.id))
	if err != nil {
		return parent, err
	}
	own, err := s.ownMatrix()
	if err != nil {
		return own, err
	}
	return parent.Mult(own), nil
}

// AppendTransformDescriptors adds descs to the transform attribute,
// as a block, on the given side (see svgxform.Transform.AppendAll).
func (s *Shaper) AppendTransformDescriptors(descs []svgxform.Descriptor, side svgxform.Side) error {
	if !s.Supported() {
		return errUnsupported(s.el())
	}
	t, err := s.transform()
	if err != nil {
		return err
	}
	t.AppendAll(descs, side)
	s.writeTransform(t)
	return nil
}

// Rotate rotates the shape by angle (in degrees) around its center,
// by appending a rotate descriptor on the inner side of its transform.
func (s *Shaper) Rotate(angle float64) error {
	c, err := s.Center()
	if err != nil {
		return err
	}
	return s.AppendTransformDescriptors([]svgxform.Descriptor{
		svgxform.Rotate{Angle: angle, CX: c.X, CY: c.Y, HasPivot: true},
	}, svgxform.Right)
}
