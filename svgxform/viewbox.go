package svgxform

import (
	"fmt"
	"math"
	"strings"
)

// Align is the alignment part of a preserveAspectRatio attribute.
type Align uint8

const (
	AlignXMidYMid Align = iota // default
	AlignNone
	AlignXMinYMin
	AlignXMidYMin
	AlignXMaxYMin
	AlignXMinYMid
	AlignXMaxYMid
	AlignXMinYMax
	AlignXMidYMax
	AlignXMaxYMax
)

var alignNames = map[string]Align{
	"none":     AlignNone,
	"xminymin": AlignXMinYMin,
	"xmidymin": AlignXMidYMin,
	"xmaxymin": AlignXMaxYMin,
	"xminymid": AlignXMinYMid,
	"xmidymid": AlignXMidYMid,
	"xmaxymid": AlignXMaxYMid,
	"xminymax": AlignXMinYMax,
	"xmidymax": AlignXMidYMax,
	"xmaxymax": AlignXMaxYMax,
}

// factors returns the fraction of the free space put before the content, per axis
func (a Align) factors() (fx, fy float64) {
	switch a {
	case AlignXMinYMin:
		return 0, 0
	case AlignXMidYMin:
		return 0.5, 0
	case AlignXMaxYMin:
		return 1, 0
	case AlignXMinYMid:
		return 0, 0.5
	case AlignXMaxYMid:
		return 1, 0.5
	case AlignXMinYMax:
		return 0, 1
	case AlignXMidYMax:
		return 0.5, 1
	case AlignXMaxYMax:
		return 1, 1
	default:
		return 0.5, 0.5
	}
}

// AspectRatio is a parsed preserveAspectRatio attribute.
type AspectRatio struct {
	Align Align
	Slice bool // false for "meet"
}

// ParseAspectRatio reads a preserveAspectRatio attribute. The empty
// string gives the default, "xMidYMid meet".
func ParseAspectRatio(s string) (AspectRatio, error) {
	var out AspectRatio
	fields := strings.Fields(s)
	if len(fields) > 0 && fields[0] == "defer" {
		fields = fields[1:]
	}
	if len(fields) == 0 {
		return out, nil
	}
	al, ok := alignNames[strings.ToLower(fields[0])]
	if !ok {
		return out, fmt.Errorf("invalid preserveAspectRatio alignment %q", fields[0])
	}
	out.Align = al
	if len(fields) > 1 {
		switch fields[1] {
		case "meet":
		case "slice":
			out.Slice = true
		default:
			return out, fmt.Errorf("invalid preserveAspectRatio mode %q", fields[1])
		}
	}
	return out, nil
}

// ViewBox is the user space rectangle of a viewport element.
type ViewBox struct{ X, Y, W, H float64 }

// ParseViewBox reads a viewBox attribute.
func ParseViewBox(s string) (ViewBox, error) {
	pts, err := ParseNumbers(s)
	if err != nil {
		return ViewBox{}, err
	}
	if len(pts) != 4 {
		return ViewBox{}, fmt.Errorf("viewBox expects 4 numbers, got %d", len(pts))
	}
	return ViewBox{pts[0], pts[1], pts[2], pts[3]}, nil
}

// ViewBoxTransform returns the map from the viewBox user space to a
// viewport of size (width, height) placed at (x, y).
// A degenerate viewBox gives a plain translation.
func ViewBoxTransform(vb ViewBox, x, y, width, height float64, ar AspectRatio) Matrix2D {
	if vb.W <= 0 || vb.H <= 0 {
		return Identity.Translate(x, y)
	}
	sx, sy := width/vb.W, height/vb.H
	if ar.Align == AlignNone {
		return Identity.Translate(x-vb.X*sx, y-vb.Y*sy).Scale(sx, sy)
	}
	s := math.Min(sx, sy)
	if ar.Slice {
		s = math.Max(sx, sy)
	}
	fx, fy := ar.Align.factors()
	tx := x + (width-vb.W*s)*fx - vb.X*s
	ty := y + (height-vb.H*s)*fy - vb.Y*s
	return Matrix2D{s, 0, 0, s, tx, ty}
}
