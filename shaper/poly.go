package shaper

import (
	"fmt"
	"strings"

	"github.com/benoitkugler/svgedit/svgpath"
	"github.com/benoitkugler/svgedit/svgxform"
)

// polyGeometry is used for polyline and polygon elements,
// whose 'points' are plain user space coordinates.
type polyGeometry struct {
	closed bool
}

func points(s *Shaper) ([]Point, error) {
	nums, err := svgxform.ParseNumbers(s.el().Attr("points"))
	if err != nil {
		return nil, fmt.Errorf("%s: invalid points: %w", s.doc.Path(s.id), err)
	}
	// an odd coordinate is ignored, as when rendering
	out := make([]Point, len(nums)/2)
	for i := range out {
		out[i] = Point{nums[2*i], nums[2*i+1]}
	}
	return out, nil
}

func setPoints(s *Shaper, pts []Point) {
	chunks := make([]string, len(pts))
	for i, p := range pts {
		chunks[i] = svgxform.FormatNumber(p.X) + "," + svgxform.FormatNumber(p.Y)
	}
	s.el().Set("points", strings.Join(chunks, " "))
}

func (polyGeometry) box(s *Shaper) (svgxform.Box, error) {
	pts, err := points(s)
	if err != nil {
		return svgxform.Box{}, err
	}
	return svgxform.BoxOf(pts...), nil
}

// setSize scales the points about the top left corner,
// then moves them back to the initial center.
func (polyGeometry) setSize(s *Shaper, size Point) error {
	pts, err := points(s)
	if err != nil {
		return err
	}
	b := svgxform.BoxOf(pts...)
	cur := b.Size()
	r := Point{ratio(size.X, cur.X), ratio(size.Y, cur.Y)}
	shift := centerShift(b, r)
	for i, p := range pts {
		pts[i] = b.Min.Add(p.Sub(b.Min).Mul(r)).Add(shift)
	}
	setPoints(s, pts)
	return nil
}

func (polyGeometry) move(s *Shaper, d Point) error {
	pts, err := points(s)
	if err != nil {
		return err
	}
	for i := range pts {
		pts[i] = pts[i].Add(d)
	}
	setPoints(s, pts)
	return nil
}

func (g polyGeometry) outline(s *Shaper) (svgpath.Path, error) {
	pts, err := points(s)
	if err != nil || len(pts) == 0 {
		return nil, err
	}
	out := svgpath.Path{svgpath.Cmd('M', pts[0].X, pts[0].Y)}
	for _, p := range pts[1:] {
		out = append(out, svgpath.Cmd('L', p.X, p.Y))
	}
	if g.closed {
		out = append(out, svgpath.Cmd('Z'))
	}
	return out, nil
}
