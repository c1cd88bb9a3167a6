package shaper

import (
	"math"

	"github.com/benoitkugler/svgedit/svgdoc"
	"github.com/benoitkugler/svgedit/svgpath"
	"github.com/benoitkugler/svgedit/svgxform"
)

// ellipseGeometry is used for circle and ellipse elements.
type ellipseGeometry struct{}

// radii returns the center and the radii; for ellipses,
// a missing radius defaults to the other one
func (ellipseGeometry) radii(s *Shaper) (c, r Point, err error) {
	v, err := s.pxs("cx", "cy")
	if err != nil {
		return c, r, err
	}
	c = Point{v[0], v[1]}
	el := s.el()
	if el.Kind == svgdoc.KindCircle {
		v, err = s.pxs("r")
		if err != nil {
			return c, r, err
		}
		return c, Point{v[0], v[0]}, nil
	}
	v, err = s.pxs("rx", "ry")
	if err != nil {
		return c, r, err
	}
	r = Point{v[0], v[1]}
	if !el.Has("rx") {
		r.X = r.Y
	} else if !el.Has("ry") {
		r.Y = r.X
	}
	return c, r, nil
}

func (g ellipseGeometry) box(s *Shaper) (svgxform.Box, error) {
	c, r, err := g.radii(s)
	if err != nil {
		return svgxform.Box{}, err
	}
	return svgxform.BoxOf(c.Sub(r), c.Add(r)), nil
}

// setSize keeps the center, which is stored. A non square size
// promotes a circle to an ellipse, using the unit of its radius.
func (ellipseGeometry) setSize(s *Shaper, size Point) error {
	el := s.el()
	r := size.Scale(0.5)
	if el.Kind == svgdoc.KindEllipse {
		s.setPx("rx", r.X)
		s.setPx("ry", r.Y)
		return nil
	}
	if math.Abs(r.X-r.Y) < epsilon {
		s.setPx("r", r.X)
		return nil
	}
	unit := svgdoc.UnitNone
	if l, err := el.Length("r"); err == nil {
		unit = l.Unit
	}
	el.Kind, el.Tag = svgdoc.KindEllipse, svgdoc.KindEllipse.Tag()
	el.Del("r")
	s.setPxUnit("rx", r.X, unit)
	s.setPxUnit("ry", r.Y, unit)
	s.env.Logger.Debug("circle promoted to ellipse", "node", s.doc.Path(s.id), "rx", r.X, "ry", r.Y)
	return nil
}

func (ellipseGeometry) move(s *Shaper, d Point) error {
	v, err := s.pxs("cx", "cy")
	if err != nil {
		return err
	}
	s.setPx("cx", v[0]+d.X)
	s.setPx("cy", v[1]+d.Y)
	return nil
}

func (g ellipseGeometry) outline(s *Shaper) (svgpath.Path, error) {
	c, r, err := g.radii(s)
	if err != nil {
		return nil, err
	}
	return svgpath.Path{
		svgpath.Cmd('M', c.X+r.X, c.Y),
		svgpath.Cmd('A', r.X, r.Y, 0, 1, 1, c.X-r.X, c.Y),
		svgpath.Cmd('A', r.X, r.Y, 0, 1, 1, c.X+r.X, c.Y),
		svgpath.Cmd('Z'),
	}, nil
}
