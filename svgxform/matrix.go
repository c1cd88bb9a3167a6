package svgxform

import (
	"fmt"
	"math"
)

// Matrix2D is the affine map
//
//	| A C E |
//	| B D F |
//	| 0 0 1 |
//
// with the same parameter order as the SVG matrix(a,b,c,d,e,f) function.
type Matrix2D struct {
	A, B, C, D, E, F float64
}

// Identity is the neutral element of Mult.
var Identity = Matrix2D{1, 0, 0, 1, 0, 0}

const epsilon = 1e-9

// Mult returns a·b, that is b applied first, then a.
func (a Matrix2D) Mult(b Matrix2D) Matrix2D {
	return Matrix2D{
		A: a.A*b.A + a.C*b.B,
		B: a.B*b.A + a.D*b.B,
		C: a.A*b.C + a.C*b.D,
		D: a.B*b.C + a.D*b.D,
		E: a.A*b.E + a.C*b.F + a.E,
		F: a.B*b.E + a.D*b.F + a.F}
}

// Transform maps the point (x1, y1).
func (a Matrix2D) Transform(x1, y1 float64) (x2, y2 float64) {
	x2 = x1*a.A + y1*a.C + a.E
	y2 = x1*a.B + y1*a.D + a.F
	return
}

// TransformVector maps (x1, y1) ignoring the translation part.
func (a Matrix2D) TransformVector(x1, y1 float64) (x2, y2 float64) {
	x2 = x1*a.A + y1*a.C
	y2 = x1*a.B + y1*a.D
	return
}

// Apply is Transform on a Point.
func (a Matrix2D) Apply(p Point) Point {
	x, y := a.Transform(p.X, p.Y)
	return Point{x, y}
}

func (a Matrix2D) Det() float64 { return a.A*a.D - a.B*a.C }

// Invert returns the inverse matrix, and false if a is singular.
func (a Matrix2D) Invert() (Matrix2D, bool) {
	det := a.Det()
	if math.Abs(det) < epsilon {
		return Identity, false
	}
	return Matrix2D{
		A: a.D / det,
		B: -a.B / det,
		C: -a.C / det,
		D: a.A / det,
		E: (a.C*a.F - a.D*a.E) / det,
		F: (a.B*a.E - a.A*a.F) / det,
	}, true
}

// IsIdentity reports whether a is the identity, up to rounding noise.
func (a Matrix2D) IsIdentity() bool {
	return a.Near(Identity, epsilon)
}

// Near compares all six parameters within tol.
func (a Matrix2D) Near(b Matrix2D, tol float64) bool {
	return math.Abs(a.A-b.A) <= tol && math.Abs(a.B-b.B) <= tol &&
		math.Abs(a.C-b.C) <= tol && math.Abs(a.D-b.D) <= tol &&
		math.Abs(a.E-b.E) <= tol && math.Abs(a.F-b.F) <= tol
}

func (a Matrix2D) Translate(x, y float64) Matrix2D {
	return a.Mult(Matrix2D{1, 0, 0, 1, x, y})
}

func (a Matrix2D) Scale(x, y float64) Matrix2D {
	return a.Mult(Matrix2D{x, 0, 0, y, 0, 0})
}

// Rotate is expressed in radians.
func (a Matrix2D) Rotate(theta float64) Matrix2D {
	sin, cos := math.Sincos(theta)
	return a.Mult(Matrix2D{cos, sin, -sin, cos, 0, 0})
}

func (a Matrix2D) SkewX(theta float64) Matrix2D {
	return a.Mult(Matrix2D{1, 0, math.Tan(theta), 1, 0, 0})
}

func (a Matrix2D) SkewY(theta float64) Matrix2D {
	return a.Mult(Matrix2D{1, math.Tan(theta), 0, 1, 0, 0})
}

func (a Matrix2D) String() string {
	return fmt.Sprintf("matrix(%s %s %s %s %s %s)", FormatNumber(a.A), FormatNumber(a.B),
		FormatNumber(a.C), FormatNumber(a.D), FormatNumber(a.E), FormatNumber(a.F))
}
