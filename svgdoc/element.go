package svgdoc

import "strings"

// Attr is one attribute, whose name includes the namespace
// prefix as written (e.g. "xlink:href").
type Attr struct {
	Name, Value string
}

// Element stores one node of the document. Attribute order is preserved.
type Element struct {
	Kind  Kind
	Tag   string
	Attrs []Attr
	Text  string // character data, for text content
}

// NewElement returns an element of kind k, with the given
// attributes, as name, value pairs.
func NewElement(k Kind, attrs ...string) Element {
	e := Element{Kind: k, Tag: k.Tag()}
	for i := 0; i+1 < len(attrs); i += 2 {
		e.Set(attrs[i], attrs[i+1])
	}
	return e
}

func (e *Element) index(name string) int {
	for i, a := range e.Attrs {
		if a.Name == name {
			return i
		}
	}
	return -1
}

// Get returns the value of the attribute and whether it is present.
func (e *Element) Get(name string) (string, bool) {
	if i := e.index(name); i >= 0 {
		return e.Attrs[i].Value, true
	}
	return "", false
}

// Attr returns the attribute value, or an empty string.
func (e *Element) Attr(name string) string {
	v, _ := e.Get(name)
	return v
}

// Has is true if the attribute is present.
func (e *Element) Has(name string) bool { return e.index(name) >= 0 }

// Set updates the attribute in place, or appends it.
func (e *Element) Set(name, value string) {
	if i := e.index(name); i >= 0 {
		e.Attrs[i].Value = value
		return
	}
	e.Attrs = append(e.Attrs, Attr{Name: name, Value: value})
}

// Del removes the attribute, if present.
func (e *Element) Del(name string) {
	if i := e.index(name); i >= 0 {
		e.Attrs = append(e.Attrs[:i], e.Attrs[i+1:]...)
	}
}

// ID returns the 'id' attribute.
func (e *Element) ID() string { return e.Attr("id") }

// Clone returns a deep copy of e.
func (e Element) Clone() Element {
	e.Attrs = append([]Attr(nil), e.Attrs...)
	return e
}

// Style returns the value of a presentation property, looking first
// in the 'style' attribute, then in the attribute with the same name.
func (e *Element) Style(name string) string {
	for _, pair := range strings.Split(e.Attr("style"), ";") {
		kv := strings.SplitN(pair, ":", 2)
		if len(kv) == 2 && strings.TrimSpace(kv[0]) == name {
			return strings.TrimSpace(kv[1])
		}
	}
	return e.Attr(name)
}

// SetStyle updates a presentation property where it is defined: in
// the 'style' attribute if it holds name, as an attribute otherwise.
func (e *Element) SetStyle(name, value string) {
	pairs := strings.Split(e.Attr("style"), ";")
	for i, pair := range pairs {
		kv := strings.SplitN(pair, ":", 2)
		if len(kv) == 2 && strings.TrimSpace(kv[0]) == name {
			pairs[i] = name + ":" + value
			e.Set("style", strings.Join(pairs, ";"))
			return
		}
	}
	e.Set(name, value)
}
