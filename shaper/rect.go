package shaper

import (
	"math"

	"github.com/benoitkugler/svgedit/svgpath"
	"github.com/benoitkugler/svgedit/svgxform"
)

// rectGeometry is used for rect, image and svg elements,
// which are positioned by x, y, width and height.
type rectGeometry struct{}

func (rectGeometry) box(s *Shaper) (svgxform.Box, error) {
	v, err := s.pxs("x", "y", "width", "height")
	if err != nil {
		return svgxform.Box{}, err
	}
	return svgxform.BoxOf(Point{v[0], v[1]}, Point{v[0] + v[2], v[1] + v[3]}), nil
}

func (g rectGeometry) setSize(s *Shaper, size Point) error {
	b, err := g.box(s)
	if err != nil {
		return err
	}
	c := b.Center()
	s.setPx("x", c.X-size.X/2)
	s.setPx("y", c.Y-size.Y/2)
	s.setPx("width", size.X)
	s.setPx("height", size.Y)
	return nil
}

func (rectGeometry) move(s *Shaper, d Point) error {
	v, err := s.pxs("x", "y")
	if err != nil {
		return err
	}
	s.setPx("x", v[0]+d.X)
	s.setPx("y", v[1]+d.Y)
	return nil
}

func (g rectGeometry) outline(s *Shaper) (svgpath.Path, error) {
	b, err := g.box(s)
	if err != nil {
		return nil, err
	}
	rx, ry, err := cornerRadii(s, b.Size())
	if err != nil {
		return nil, err
	}
	return rectPath(b, rx, ry), nil
}

// cornerRadii returns the effective rx, ry of a rect:
// a missing one defaults to the other, and both are clamped to half the size
func cornerRadii(s *Shaper, size Point) (rx, ry float64, err error) {
	el := s.el()
	if el.Tag != "rect" {
		return 0, 0, nil
	}
	hasX, hasY := el.Has("rx"), el.Has("ry")
	if !hasX && !hasY {
		return 0, 0, nil
	}
	if rx, err = s.px("rx"); err != nil {
		return 0, 0, err
	}
	if ry, err = s.px("ry"); err != nil {
		return 0, 0, err
	}
	if !hasX {
		rx = ry
	} else if !hasY {
		ry = rx
	}
	rx = math.Min(math.Abs(rx), size.X/2)
	ry = math.Min(math.Abs(ry), size.Y/2)
	return rx, ry, nil
}

func rectPath(b svgxform.Box, rx, ry float64) svgpath.Path {
	x0, y0, x1, y1 := b.Min.X, b.Min.Y, b.Max.X, b.Max.Y
	if rx <= 0 || ry <= 0 {
		return svgpath.Path{
			svgpath.Cmd('M', x0, y0),
			svgpath.Cmd('H', x1),
			svgpath.Cmd('V', y1),
			svgpath.Cmd('H', x0),
			svgpath.Cmd('Z'),
		}
	}
	return svgpath.Path{
		svgpath.Cmd('M', x0+rx, y0),
		svgpath.Cmd('H', x1-rx),
		svgpath.Cmd('A', rx, ry, 0, 0, 1, x1, y0+ry),
		svgpath.Cmd('V', y1-ry),
		svgpath.Cmd('A', rx, ry, 0, 0, 1, x1-rx, y1),
		svgpath.Cmd('H', x0+rx),
		svgpath.Cmd('A', rx, ry, 0, 0, 1, x0, y1-ry),
		svgpath.Cmd('V', y0+ry),
		svgpath.Cmd('A', rx, ry, 0, 0, 1, x0+rx, y0),
		svgpath.Cmd('Z'),
	}
}
