// Implements the 2D primitives and the affine algebra
// shared by the path processor and the shape accessors.
package svgxform

import "math"

// Point is a position or a vector, in whatever frame
// the owning attribute defines.
type Point struct{ X, Y float64 }

func (p Point) Add(q Point) Point        { return Point{p.X + q.X, p.Y + q.Y} }
func (p Point) Sub(q Point) Point        { return Point{p.X - q.X, p.Y - q.Y} }
func (p Point) Scale(f float64) Point    { return Point{p.X * f, p.Y * f} }
func (p Point) Mul(q Point) Point        { return Point{p.X * q.X, p.Y * q.Y} }
func (p Point) Neg() Point               { return Point{-p.X, -p.Y} }
func (p Point) Len() float64             { return math.Hypot(p.X, p.Y) }
func (p Point) Dist(q Point) float64     { return p.Sub(q).Len() }
func (p Point) Near(q Point, tol float64) bool {
	return math.Abs(p.X-q.X) <= tol && math.Abs(p.Y-q.Y) <= tol
}

// Box is an axis-aligned bounding box. The zero value is
// an empty box, which absorbs nothing until a point is added.
type Box struct {
	Min, Max Point
	valid    bool
}

// BoxOf returns the smallest box enclosing pts.
func BoxOf(pts ...Point) Box {
	var b Box
	for _, p := range pts {
		b = b.Extend(p)
	}
	return b
}

// IsEmpty is true when no point was ever added.
func (b Box) IsEmpty() bool { return !b.valid }

// Extend returns the box grown to include p.
func (b Box) Extend(p Point) Box {
	if !b.valid {
		return Box{Min: p, Max: p, valid: true}
	}
	b.Min.X, b.Min.Y = math.Min(b.Min.X, p.X), math.Min(b.Min.Y, p.Y)
	b.Max.X, b.Max.Y = math.Max(b.Max.X, p.X), math.Max(b.Max.Y, p.Y)
	return b
}

// Union returns the minimal box containing both.
func (b Box) Union(o Box) Box {
	if !o.valid {
		return b
	}
	return b.Extend(o.Min).Extend(o.Max)
}

func (b Box) Center() Point { return Point{(b.Min.X + b.Max.X) / 2, (b.Min.Y + b.Max.Y) / 2} }
func (b Box) Size() Point   { return b.Max.Sub(b.Min) }

// Corners returns the four corners, clockwise from the top left one.
func (b Box) Corners() [4]Point {
	return [4]Point{b.Min, {b.Max.X, b.Min.Y}, b.Max, {b.Min.X, b.Max.Y}}
}

// Transform maps the four corners of b through m and returns
// their bounding box.
func (b Box) Transform(m Matrix2D) Box {
	if !b.valid {
		return b
	}
	var out Box
	for _, c := range b.Corners() {
		out = out.Extend(m.Apply(c))
	}
	return out
}
