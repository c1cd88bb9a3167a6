package svgpath

import (
	"github.com/benoitkugler/svgedit/svgxform"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

// toFixedP converts a point to fixed coordinates.
func toFixedP(p Point) (q fixed.Point26_6) {
	q.X = fixed.Int26_6(p.X * 64)
	q.Y = fixed.Int26_6(p.Y * 64)
	return
}

// AddTo sends the path, mapped through m, to the rasterx adder
// (a filler, a stroker or a dasher).
func (p Path) AddTo(a rasterx.Adder, m svgxform.Matrix2D) {
	var (
		started    bool
		cur, start Point
	)
	fx := func(q Point) fixed.Point26_6 { return toFixedP(m.Apply(q)) }
	ensureStarted := func() {
		if !started {
			a.Start(fx(cur))
			started = true
		}
	}
	for _, c := range p.Normalize() {
		args := c.Args
		switch c.Op {
		case 'M':
			if started {
				a.Stop(false)
				started = false
			}
			cur = Point{args[0], args[1]}
			start = cur
			ensureStarted()
		case 'L':
			ensureStarted()
			cur = Point{args[0], args[1]}
			a.Line(fx(cur))
		case 'Q':
			ensureStarted()
			cur = Point{args[2], args[3]}
			a.QuadBezier(fx(Point{args[0], args[1]}), fx(cur))
		case 'C':
			ensureStarted()
			cur = Point{args[4], args[5]}
			a.CubeBezier(fx(Point{args[0], args[1]}), fx(Point{args[2], args[3]}), fx(cur))
		case 'Z':
			if started {
				a.Stop(true)
				started = false
			}
			cur = start
		}
	}
	if started {
		a.Stop(false)
	}
}
