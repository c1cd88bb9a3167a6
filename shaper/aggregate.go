package shaper

import (
	"github.com/benoitkugler/svgedit/svgpath"
	"github.com/benoitkugler/svgedit/svgxform"
)

// aggregate implements the geometry of a set of siblings, which is
// used both for the children of a group and for a MultiShaper.
// No attribute stores the geometry of an aggregate: edits are made
// by prepending descriptors to the transform of every member.
type aggregate struct {
	members []*Shaper
}

// children returns the supported children of the group s.
func children(s *Shaper) aggregate {
	var a aggregate
	for _, id := range s.doc.Children(s.id) {
		c := s.at(id)
		if !c.Supported() {
			s.env.Logger.Debug("skipping child without geometry", "node", s.doc.Path(id))
			continue
		}
		a.members = append(a.members, c)
	}
	return a
}

// box is the union of the members bounds, each one
// mapped by its own transform.
func (a aggregate) box() (svgxform.Box, error) {
	var out svgxform.Box
	for _, m := range a.members {
		b, err := m.Bounds()
		if err != nil {
			return out, err
		}
		out = out.Union(b)
	}
	return out, nil
}

func (a aggregate) prepend(descs ...svgxform.Descriptor) error {
	for _, m := range a.members {
		if err := m.AppendTransformDescriptors(descs, svgxform.Left); err != nil {
			return err
		}
	}
	return nil
}

func (a aggregate) move(d Point) error {
	if d.Near(Point{}, epsilon) {
		return nil
	}
	return a.prepend(svgxform.Translate{X: d.X, Y: d.Y})
}

// setSize scales every member about the aggregate center, with
// the ratio given by referenceRatio.
func (a aggregate) setSize(size Point) error {
	b, err := a.box()
	if err != nil || b.IsEmpty() {
		return err
	}
	cur := b.Size()
	global := Point{ratio(size.X, cur.X), ratio(size.Y, cur.Y)}
	c := b.Center()
	for _, m := range a.members {
		mb, err := m.Bounds()
		if err != nil {
			return err
		}
		own, err := m.ownMatrix()
		if err != nil {
			return err
		}
		r := referenceRatio(own, mb.Min, c, global)
		if r.Near(Point{1, 1}, epsilon) {
			continue
		}
		err = m.AppendTransformDescriptors([]svgxform.Descriptor{
			svgxform.Translate{X: c.X, Y: c.Y},
			svgxform.Scale{X: r.X, Y: r.Y},
			svgxform.Translate{X: -c.X, Y: -c.Y},
		}, svgxform.Left)
		if err != nil {
			return err
		}
	}
	return nil
}

// referenceRatio computes the scale ratio of one member, whose own
// transform is m, when the aggregate is scaled by global around fixed.
//
// Two unit segments starting at the member top left corner p, one
// along each aggregate axis, are taken before and after the global
// scaling and mapped into the member local frame, where the ratio
// of their lengths is measured. Both segments stay parallel, so the
// ratio equals global whatever m is; the member bbox still follows
// the aggregate because the scale triple is applied in the
// aggregate frame.
// A singular m or a degenerate segment gives a ratio of 1.
func referenceRatio(m svgxform.Matrix2D, p, fixed, global Point) Point {
	inv, ok := m.Invert()
	if !ok {
		return Point{1, 1}
	}
	scaled := func(q Point) Point { return fixed.Add(q.Sub(fixed).Mul(global)) }
	axisRatio := func(dir Point) float64 {
		q := p.Add(dir)
		before := inv.Apply(q).Dist(inv.Apply(p))
		if before < epsilon {
			return 1
		}
		after := inv.Apply(scaled(q)).Dist(inv.Apply(scaled(p)))
		return after / before
	}
	return Point{axisRatio(Point{1, 0}), axisRatio(Point{0, 1})}
}

// rotate prepends the same rotation, around c, to every member
func (a aggregate) rotate(angle float64, c Point) error {
	return a.prepend(svgxform.Rotate{Angle: angle, CX: c.X, CY: c.Y, HasPivot: true})
}

// outline concatenates the members outlines, mapped by their own transform
func (a aggregate) outline() (svgpath.Path, error) {
	var out svgpath.Path
	for _, m := range a.members {
		o, err := m.Outline()
		if err != nil {
			return nil, err
		}
		own, err := m.ownMatrix()
		if err != nil {
			return nil, err
		}
		out = append(out, o.Transform(own)...)
	}
	return out, nil
}

// groupGeometry is the aggregate of the children, in the
// user space of the group.
type groupGeometry struct{}

func (groupGeometry) box(s *Shaper) (svgxform.Box, error) { return children(s).box() }
func (groupGeometry) setSize(s *Shaper, size Point) error { return children(s).setSize(size) }
func (groupGeometry) move(s *Shaper, d Point) error       { return children(s).move(d) }
func (groupGeometry) outline(s *Shaper) (svgpath.Path, error) {
	return children(s).outline()
}
