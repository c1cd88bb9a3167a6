package svgxform

import (
	"math"
	"strconv"
	"strings"
)

type kind uint8

const (
	kindMatrix kind = iota
	kindTranslate
	kindScale
	kindRotate
	kindSkewX
	kindSkewY
)

// Descriptor is one named transform operation, as written in a
// transform attribute. It is one of MatrixOp, Translate, Scale,
// Rotate, SkewX, SkewY.
type Descriptor interface {
	// Matrix returns the equivalent affine map.
	Matrix() Matrix2D
	// String returns the attribute syntax, e.g. "rotate(30 5 5)"
	String() string
	kind() kind
}

// MatrixOp is the matrix(a,b,c,d,e,f) function.
type MatrixOp Matrix2D

// Translate is translate(tx ty). A missing ty is zero.
type Translate struct{ X, Y float64 }

// Scale is scale(sx sy). A missing sy equals sx.
type Scale struct{ X, Y float64 }

// Rotate is rotate(angle [cx cy]), with the angle in degrees.
// The pivot is only meaningful when HasPivot is true.
type Rotate struct {
	Angle    float64
	CX, CY   float64
	HasPivot bool
}

// SkewX is skewX(angle), in degrees.
type SkewX struct{ Angle float64 }

// SkewY is skewY(angle), in degrees.
type SkewY struct{ Angle float64 }

func (MatrixOp) kind() kind  { return kindMatrix }
func (Translate) kind() kind { return kindTranslate }
func (Scale) kind() kind     { return kindScale }
func (Rotate) kind() kind    { return kindRotate }
func (SkewX) kind() kind     { return kindSkewX }
func (SkewY) kind() kind     { return kindSkewY }

func (m MatrixOp) Matrix() Matrix2D { return Matrix2D(m) }
func (t Translate) Matrix() Matrix2D {
	return Identity.Translate(t.X, t.Y)
}
func (s Scale) Matrix() Matrix2D { return Identity.Scale(s.X, s.Y) }
func (r Rotate) Matrix() Matrix2D {
	rad := r.Angle * math.Pi / 180
	if !r.HasPivot {
		return Identity.Rotate(rad)
	}
	return Identity.Translate(r.CX, r.CY).Rotate(rad).Translate(-r.CX, -r.CY)
}
func (s SkewX) Matrix() Matrix2D { return Identity.SkewX(s.Angle * math.Pi / 180) }
func (s SkewY) Matrix() Matrix2D { return Identity.SkewY(s.Angle * math.Pi / 180) }

// Expand returns the pivot-free form of r: translate(cx cy) rotate(a) translate(-cx -cy).
func (r Rotate) Expand() []Descriptor {
	if !r.HasPivot {
		return []Descriptor{r}
	}
	return []Descriptor{
		Translate{r.CX, r.CY},
		Rotate{Angle: r.Angle},
		Translate{-r.CX, -r.CY},
	}
}

func (m MatrixOp) String() string { return Matrix2D(m).String() }
func (t Translate) String() string { return call("translate", t.X, t.Y) }
func (s Scale) String() string {
	if s.X == s.Y {
		return call("scale", s.X)
	}
	return call("scale", s.X, s.Y)
}
func (r Rotate) String() string {
	if r.HasPivot {
		return call("rotate", r.Angle, r.CX, r.CY)
	}
	return call("rotate", r.Angle)
}
func (s SkewX) String() string { return call("skewX", s.Angle) }
func (s SkewY) String() string { return call("skewY", s.Angle) }

func call(name string, args ...float64) string {
	var sb strings.Builder
	sb.WriteString(name)
	sb.WriteByte('(')
	for i, a := range args {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(FormatNumber(a))
	}
	sb.WriteByte(')')
	return sb.String()
}

// FormatNumber writes v in its shortest decimal form, after dropping
// the rounding noise accumulated by coordinate round trips.
func FormatNumber(v float64) string {
	r := math.Round(v*1e9) / 1e9
	if r == 0 {
		r = 0 // no "-0"
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}

// merge combines two adjacent descriptors, `left` written before `right`.
// ok is false when they must stay separate.
func merge(left, right Descriptor) (out Descriptor, ok bool) {
	if left.kind() == kindMatrix || right.kind() == kindMatrix {
		return MatrixOp(left.Matrix().Mult(right.Matrix())), true
	}
	if left.kind() != right.kind() {
		return nil, false
	}
	switch l := left.(type) {
	case Translate:
		r := right.(Translate)
		return Translate{l.X + r.X, l.Y + r.Y}, true
	case Scale:
		r := right.(Scale)
		return Scale{l.X * r.X, l.Y * r.Y}, true
	case Rotate:
		r := right.(Rotate)
		if l.HasPivot != r.HasPivot || (l.HasPivot && (l.CX != r.CX || l.CY != r.CY)) {
			return nil, false
		}
		l.Angle += r.Angle
		return l, true
	case SkewX:
		return SkewX{combineSkew(l.Angle, right.(SkewX).Angle)}, true
	case SkewY:
		return SkewY{combineSkew(l.Angle, right.(SkewY).Angle)}, true
	}
	return nil, false
}

// skews along the same axis compose by adding their tangents
func combineSkew(a, b float64) float64 {
	const deg = math.Pi / 180
	return math.Atan(math.Tan(a*deg)+math.Tan(b*deg)) / deg
}
