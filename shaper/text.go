package shaper

import (
	"strings"

	"github.com/benoitkugler/svgedit/svgdoc"
	"github.com/benoitkugler/svgedit/svgpath"
	"github.com/benoitkugler/svgedit/svgxform"
	"github.com/benoitkugler/svgedit/textmetrics"
)

// textGeometry has no geometric attribute besides the anchor (x, y):
// its box is measured by the text metrics provider.
type textGeometry struct{}

// inherited returns the first value of the property name
// found on the element or its ancestors, and the node holding it
func inherited(s *Shaper, name string) (string, svgdoc.NodeID) {
	for n := s.id; n != svgdoc.NoNode; n = s.doc.Parent(n) {
		if v := s.doc.Element(n).Style(name); v != "" && v != "inherit" {
			return v, n
		}
	}
	return "", svgdoc.NoNode
}

// font resolves the effective font of the element
func font(s *Shaper) textmetrics.Font {
	f := textmetrics.Font{Family: textmetrics.DefaultFamily, Size: textmetrics.DefaultSize}
	if v, n := inherited(s, "font-size"); n != svgdoc.NoNode {
		if l, err := svgdoc.ParseLength("font-size", v); err == nil {
			if px := s.env.Units.ToPixel(s.doc, n, l); px > 0 {
				f.Size = px
			}
		}
	}
	if v, _ := inherited(s, "font-family"); v != "" {
		f.Family = strings.Trim(strings.TrimSpace(strings.Split(v, ",")[0]), `"'`)
	}
	switch v, _ := inherited(s, "font-weight"); v {
	case "bold", "bolder", "600", "700", "800", "900":
		f.Bold = true
	}
	switch v, _ := inherited(s, "font-style"); v {
	case "italic", "oblique":
		f.Italic = true
	}
	return f
}

// content concatenates the character data of the element
// and of its descendants (such as tspan).
func content(s *Shaper) string {
	var sb strings.Builder
	s.doc.Walk(s.id, func(n svgdoc.NodeID, _ int) bool {
		sb.WriteString(s.doc.Element(n).Text)
		return true
	})
	return sb.String()
}

func (textGeometry) box(s *Shaper) (svgxform.Box, error) {
	v, err := s.pxs("x", "y")
	if err != nil {
		return svgxform.Box{}, err
	}
	m := s.env.Text.Measure(content(s), font(s).Shorthand())
	width := m.Width
	if s.el().Has("textLength") {
		if width, err = s.px("textLength"); err != nil {
			return svgxform.Box{}, err
		}
	}
	left := v[0]
	switch anchor, _ := inherited(s, "text-anchor"); anchor {
	case "middle":
		left -= width / 2
	case "end":
		left -= width
	}
	top := v[1] - m.BaselineOffset
	return svgxform.BoxOf(Point{left, top}, Point{left + width, top + m.LineHeight}), nil
}

// setSize maps the height to a font size and the
// width to an explicit text length.
func (g textGeometry) setSize(s *Shaper, size Point) error {
	b, err := g.box(s)
	if err != nil {
		return err
	}
	fontSize := s.env.Text.HeightToFontSize(textmetrics.KindLineHeight, size.Y)
	s.el().SetStyle("font-size", svgxform.FormatNumber(fontSize)+"px")
	s.setPx("textLength", size.X)
	nb, err := g.box(s)
	if err != nil {
		return err
	}
	return g.move(s, b.Center().Sub(nb.Center()))
}

func (textGeometry) move(s *Shaper, d Point) error {
	v, err := s.pxs("x", "y")
	if err != nil {
		return err
	}
	s.setPx("x", v[0]+d.X)
	s.setPx("y", v[1]+d.Y)
	return nil
}

func (g textGeometry) outline(s *Shaper) (svgpath.Path, error) {
	b, err := g.box(s)
	if err != nil {
		return nil, err
	}
	return rectPath(b, 0, 0), nil
}
