// Package svgunits converts SVG lengths to and from pixels,
// resolving relative units against the element context.
package svgunits

import (
	"math"

	"github.com/benoitkugler/svgedit/svgdoc"
	"github.com/benoitkugler/svgedit/svgxform"
)

// Converter translates lengths of an element to pixels, and back.
type Converter interface {
	// ToPixel resolves l, read on the element id.
	ToPixel(doc *svgdoc.Document, id svgdoc.NodeID, l svgdoc.Length) float64
	// FromPixel returns the length equal to px pixels, expressed in unit,
	// to be stored in the attribute attr of the element id.
	FromPixel(doc *svgdoc.Document, id svgdoc.NodeID, px float64, unit svgdoc.Unit, attr string) svgdoc.Length
}

// Axis is the reference dimension used for percentages.
type Axis uint8

const (
	Horizontal Axis = iota // the viewport width
	Vertical               // the viewport height
	Diagonal               // the normalized viewport diagonal
)

// AxisOf returns the reference axis of a length attribute.
func AxisOf(attr string) Axis {
	switch attr {
	case "x", "cx", "x1", "x2", "dx", "width", "rx", "textLength":
		return Horizontal
	case "y", "cy", "y1", "y2", "dy", "height", "ry":
		return Vertical
	}
	return Diagonal
}

const (
	DefaultDPI      = 96.
	DefaultFontSize = 16.
)

// Standard resolves units as a browser would.
// Zero fields are replaced by DefaultDPI and DefaultFontSize.
type Standard struct {
	DPI      float64
	FontSize float64 // font size of the root element, in pixels
}

var _ Converter = Standard{}

func (s Standard) dpi() float64 {
	if s.DPI <= 0 {
		return DefaultDPI
	}
	return s.DPI
}

func (s Standard) rootFontSize() float64 {
	if s.FontSize <= 0 {
		return DefaultFontSize
	}
	return s.FontSize
}

// factor returns the number of pixels in one unit
func (s Standard) factor(doc *svgdoc.Document, id svgdoc.NodeID, unit svgdoc.Unit, attr string) float64 {
	dpi := s.dpi()
	switch unit {
	case svgdoc.UnitIn:
		return dpi
	case svgdoc.UnitCm:
		return dpi / 2.54
	case svgdoc.UnitMm:
		return dpi / 25.4
	case svgdoc.UnitPt:
		return dpi / 72
	case svgdoc.UnitPc:
		return dpi / 6
	case svgdoc.UnitEm, svgdoc.UnitEx, svgdoc.UnitPercent:
		var ref float64
		if attr == "font-size" {
			ref = s.ElementFontSize(doc, doc.Parent(id))
		} else if unit == svgdoc.UnitPercent {
			ref = s.percentBase(doc, id, AxisOf(attr))
		} else {
			ref = s.ElementFontSize(doc, id)
		}
		switch unit {
		case svgdoc.UnitPercent:
			return ref / 100
		case svgdoc.UnitEx:
			return ref / 2
		}
		return ref
	}
	return 1
}

// ToPixel implements Converter.
func (s Standard) ToPixel(doc *svgdoc.Document, id svgdoc.NodeID, l svgdoc.Length) float64 {
	return l.Value * s.factor(doc, id, l.Unit, l.Attr)
}

// FromPixel implements Converter. A unit which can't be resolved
// (such as a percentage of an empty viewport) gives a zero value.
func (s Standard) FromPixel(doc *svgdoc.Document, id svgdoc.NodeID, px float64, unit svgdoc.Unit, attr string) svgdoc.Length {
	out := svgdoc.Length{Unit: unit, Attr: attr}
	if f := s.factor(doc, id, unit, attr); f != 0 {
		out.Value = px / f
	}
	return out
}

// ElementFontSize returns the effective font size of id, in pixels,
// inherited from its ancestors.
func (s Standard) ElementFontSize(doc *svgdoc.Document, id svgdoc.NodeID) float64 {
	el := doc.Element(id)
	if el == nil {
		return s.rootFontSize()
	}
	v := el.Style("font-size")
	if v == "" {
		return s.ElementFontSize(doc, doc.Parent(id))
	}
	l, err := svgdoc.ParseLength("font-size", v)
	if err != nil {
		return s.ElementFontSize(doc, doc.Parent(id))
	}
	return s.ToPixel(doc, id, l)
}

// Viewport returns the user space size established by the
// nearest <svg> strictly above id, as (width, height).
func (s Standard) Viewport(doc *svgdoc.Document, id svgdoc.NodeID) (w, h float64) {
	for n := doc.Parent(id); n != svgdoc.NoNode; n = doc.Parent(n) {
		el := doc.Element(n)
		if el.Kind != svgdoc.KindSVG {
			continue
		}
		if vb, err := svgxform.ParseViewBox(el.Attr("viewBox")); err == nil && vb.W > 0 && vb.H > 0 {
			return vb.W, vb.H
		}
		wl, _ := el.Length("width")
		hl, _ := el.Length("height")
		return s.ToPixel(doc, n, wl), s.ToPixel(doc, n, hl)
	}
	return 0, 0
}

func (s Standard) percentBase(doc *svgdoc.Document, id svgdoc.NodeID, axis Axis) float64 {
	w, h := s.Viewport(doc, id)
	switch axis {
	case Horizontal:
		return w
	case Vertical:
		return h
	}
	return math.Sqrt(w*w+h*h) / math.Sqrt2
}
