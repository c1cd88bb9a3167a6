package shaper

import (
	"fmt"

	"github.com/benoitkugler/svgedit/svgpath"
	"github.com/benoitkugler/svgedit/svgxform"
)

// pathGeometry uses the vertexes of the normalized path
// (see svgpath.Path.Vertexes) as geometry.
type pathGeometry struct{}

func parsePath(s *Shaper) (svgpath.Path, error) {
	p, err := svgpath.Parse(s.el().Attr("d"))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.doc.Path(s.id), err)
	}
	return p, nil
}

func (pathGeometry) box(s *Shaper) (svgxform.Box, error) {
	p, err := parsePath(s)
	if err != nil {
		return svgxform.Box{}, err
	}
	return p.Bounds(), nil
}

func (pathGeometry) setSize(s *Shaper, size Point) error {
	p, err := parsePath(s)
	if err != nil {
		return err
	}
	b := p.Bounds()
	if b.IsEmpty() {
		return nil
	}
	cur := b.Size()
	r := Point{ratio(size.X, cur.X), ratio(size.Y, cur.Y)}
	p.Scale(r.X, r.Y, b.Min)
	shift := centerShift(b, r)
	p.Move(shift.X, shift.Y)
	s.el().Set("d", p.String())
	return nil
}

func (pathGeometry) move(s *Shaper, d Point) error {
	p, err := parsePath(s)
	if err != nil {
		return err
	}
	if len(p) == 0 {
		return nil
	}
	p.Move(d.X, d.Y)
	s.el().Set("d", p.String())
	return nil
}

func (pathGeometry) outline(s *Shaper) (svgpath.Path, error) { return parsePath(s) }
