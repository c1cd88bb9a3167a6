// Package svgstyle resolves the presentation properties used
// to preview shapes: plain color paints, opacities and stroke options.
package svgstyle

import (
	"image/color"
	"strconv"
	"strings"

	"github.com/benoitkugler/svgedit/svgdoc"
	"github.com/benoitkugler/svgedit/svgunits"
)

// StrokeOptions are the stroke properties, with
// SVG attribute values for the line join and caps.
type StrokeOptions struct {
	Width      float64
	MiterLimit float64
	LineJoin   string // "miter", "round", "bevel", "arcs" or "miter-clip"
	LineCap    string // "butt", "round" or "square"
	Dash       []float64
	DashOffset float64
}

// DefaultStrokeOptions follows the SVG initial values.
var DefaultStrokeOptions = StrokeOptions{Width: 1, MiterLimit: 4, LineJoin: "miter", LineCap: "butt"}

// Scaled returns a copy of o with its lengths multiplied by f.
func (o StrokeOptions) Scaled(f float64) StrokeOptions {
	o.Width *= f
	o.DashOffset *= f
	if o.Dash != nil {
		dash := make([]float64, len(o.Dash))
		for i, d := range o.Dash {
			dash[i] = d * f
		}
		o.Dash = dash
	}
	return o
}

// Style is the resolved presentation of one element.
type Style struct {
	FillPaint, StrokePaint svgdoc.Paint
	CurrentColor           color.NRGBA

	// Opacity is the product of the opacities of
	// the element and its ancestors.
	Opacity, FillOpacity, StrokeOpacity float64
	FillRule                            string // "nonzero" or "evenodd"
	Hidden                              bool   // display:none on the element or an ancestor
	Line                                StrokeOptions
}

var Black = color.NRGBA{A: 0xff}

// Default returns the initial values: black fill and no stroke.
func Default() Style {
	return Style{
		FillPaint:     svgdoc.ColorPaint(Black),
		StrokePaint:   svgdoc.Paint{Kind: svgdoc.PaintNone},
		CurrentColor:  Black,
		Opacity:       1,
		FillOpacity:   1,
		StrokeOpacity: 1,
		FillRule:      "nonzero",
		Line:          DefaultStrokeOptions,
	}
}

func parseFloat(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return f, err == nil
}

// readFraction accepts a number or a percentage
func readFraction(v string) (float64, bool) {
	v = strings.TrimSpace(v)
	d := 1.
	if strings.HasSuffix(v, "%") {
		d = 100
		v = strings.TrimSuffix(v, "%")
	}
	f, ok := parseFloat(v)
	return f / d, ok
}

// Resolve applies the presentation properties from the root
// down to id, like a style stack.
// Invalid values are ignored, keeping the inherited ones.
func Resolve(doc *svgdoc.Document, id svgdoc.NodeID, units svgunits.Converter) Style {
	chain := doc.Ancestors(id)
	st := Default()
	for i := len(chain) - 1; i >= -1; i-- {
		n := id
		if i >= 0 {
			n = chain[i]
		}
		st.apply(doc, n, units)
	}
	return st
}

func (st *Style) apply(doc *svgdoc.Document, id svgdoc.NodeID, units svgunits.Converter) {
	el := doc.Element(id)
	get := func(name string) (string, bool) {
		v := el.Style(name)
		return v, v != "" && v != "inherit"
	}

	if v, ok := get("display"); ok && v == "none" {
		st.Hidden = true
	}
	if v, ok := get("color"); ok {
		if p, err := svgdoc.ParsePaint(v); err == nil && p.Kind == svgdoc.PaintColor {
			st.CurrentColor = p.Color
		}
	}
	if v, ok := get("fill"); ok {
		if p, err := svgdoc.ParsePaint(v); err == nil {
			st.FillPaint = p
		}
	}
	if v, ok := get("stroke"); ok {
		if p, err := svgdoc.ParsePaint(v); err == nil {
			st.StrokePaint = p
		}
	}
	// group opacity is approximated by multiplying along the chain
	if v, ok := get("opacity"); ok {
		if f, ok := readFraction(v); ok {
			st.Opacity *= f
		}
	}
	if v, ok := get("fill-opacity"); ok {
		if f, ok := readFraction(v); ok {
			st.FillOpacity = f
		}
	}
	if v, ok := get("stroke-opacity"); ok {
		if f, ok := readFraction(v); ok {
			st.StrokeOpacity = f
		}
	}
	if v, ok := get("fill-rule"); ok {
		st.FillRule = v
	}
	if v, ok := get("stroke-width"); ok {
		if l, err := svgdoc.ParseLength("stroke-width", v); err == nil {
			st.Line.Width = units.ToPixel(doc, id, l)
		}
	}
	if v, ok := get("stroke-linejoin"); ok {
		st.Line.LineJoin = v
	}
	if v, ok := get("stroke-linecap"); ok {
		st.Line.LineCap = v
	}
	if v, ok := get("stroke-miterlimit"); ok {
		if f, ok := parseFloat(v); ok {
			st.Line.MiterLimit = f
		}
	}
	if v, ok := get("stroke-dashoffset"); ok {
		if f, ok := parseFloat(v); ok {
			st.Line.DashOffset = f
		}
	}
	if v, ok := get("stroke-dasharray"); ok {
		st.Line.Dash = ParseDashes(v)
	}
}

// ParseDashes returns nil for "none" or invalid lists.
func ParseDashes(v string) []float64 {
	if v == "none" {
		return nil
	}
	fields := strings.FieldsFunc(v, func(r rune) bool { return r == ',' || r == ' ' })
	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		d, ok := parseFloat(f)
		if !ok || d < 0 {
			return nil
		}
		out = append(out, d)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// resolveColor returns the plain color of p. Paint servers are not
// supported: their fallback is used, if any.
func (st Style) resolveColor(p svgdoc.Paint) (color.NRGBA, bool) {
	switch p.Kind {
	case svgdoc.PaintColor:
		return p.Color, true
	case svgdoc.PaintCurrentColor:
		return st.CurrentColor, true
	case svgdoc.PaintURL:
		if fb, err := svgdoc.ParsePaint(p.Fallback); err == nil && fb.Kind != svgdoc.PaintURL {
			return st.resolveColor(fb)
		}
	}
	return color.NRGBA{}, false
}

// Fill returns the fill color, or false if the element is not filled.
func (st Style) Fill() (color.NRGBA, bool) { return st.resolveColor(st.FillPaint) }

// Stroke returns the stroke color, or false if the element is not stroked.
func (st Style) Stroke() (color.NRGBA, bool) {
	if st.Line.Width <= 0 {
		return color.NRGBA{}, false
	}
	return st.resolveColor(st.StrokePaint)
}

// NonZero is true for the nonzero fill rule.
func (st Style) NonZero() bool { return st.FillRule != "evenodd" }
