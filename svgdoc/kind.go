// Package svgdoc holds an editable SVG document: a tree of typed
// elements stored in a flat arena, with their attributes kept as written.
package svgdoc

// Kind is the graphic kind of an element.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindSVG          // viewport
	KindGroup
	KindRect
	KindCircle
	KindEllipse
	KindPolyline
	KindPolygon
	KindPath
	KindText
	KindImage
)

var kindTags = [...]string{
	KindUnknown:  "",
	KindSVG:      "svg",
	KindGroup:    "g",
	KindRect:     "rect",
	KindCircle:   "circle",
	KindEllipse:  "ellipse",
	KindPolyline: "polyline",
	KindPolygon:  "polygon",
	KindPath:     "path",
	KindText:     "text",
	KindImage:    "image",
}

var tagKinds = map[string]Kind{}

func init() {
	for k, tag := range kindTags {
		if tag != "" {
			tagKinds[tag] = Kind(k)
		}
	}
}

// passiveTags are valid SVG elements without geometry handled
// by this package. They are kept in the tree, but are never reported
// as unsupported.
var passiveTags = map[string]bool{
	"defs": true, "title": true, "desc": true, "metadata": true, "style": true,
	"linearGradient": true, "radialGradient": true, "stop": true, "pattern": true,
	"clipPath": true, "mask": true, "marker": true, "symbol": true, "filter": true,
	"use": true, "line": true, "tspan": true, "textPath": true, "foreignObject": true,
	"switch": true, "a": true,
}

// KindOf returns the kind of the element with the given local name.
func KindOf(tag string) Kind { return tagKinds[tag] }

// Tag returns the element name for k, or an empty string for KindUnknown.
func (k Kind) Tag() string {
	if int(k) < len(kindTags) {
		return kindTags[k]
	}
	return ""
}

func (k Kind) String() string {
	if t := k.Tag(); t != "" {
		return t
	}
	return "unknown"
}

// IsContainer is true for kinds owning child elements.
func (k Kind) IsContainer() bool { return k == KindSVG || k == KindGroup }
