package svgdoc

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"golang.org/x/net/html/charset"
)

// ErrUnsupportedElement is returned in strict mode, for elements
// which are not part of the supported SVG subset.
var ErrUnsupportedElement = errors.New("svgdoc: unsupported element")

// ErrorMode is the strategy used when an unsupported element is found.
type ErrorMode uint8

const (
	// IgnoreErrorMode keeps the element in the tree, silently.
	IgnoreErrorMode ErrorMode = iota
	// WarnErrorMode keeps the element and logs a warning.
	WarnErrorMode
	// StrictErrorMode aborts the decoding.
	StrictErrorMode
)

// DecodeOptions tunes Decode.
type DecodeOptions struct {
	ErrorMode ErrorMode
	Logger    *slog.Logger // default to slog.Default()
}

const (
	nsXlink = "http://www.w3.org/1999/xlink"
	nsXML   = "http://www.w3.org/XML/1998/namespace"
)

// attrName restores the prefix of namespaced attributes
func attrName(n xml.Name) string {
	switch n.Space {
	case "":
		return n.Local
	case nsXlink, "xlink":
		return "xlink:" + n.Local
	case nsXML, "xml":
		return "xml:" + n.Local
	}
	return n.Space + ":" + n.Local
}

// Decode reads an SVG document.
// Unsupported elements are kept in the tree (as KindUnknown),
// and reported according to opts.ErrorMode.
func Decode(stream io.Reader, opts DecodeOptions) (*Document, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	decoder := xml.NewDecoder(stream)
	decoder.CharsetReader = charset.NewReaderLabel
	var (
		doc   *Document
		stack []NodeID
	)
	for {
		t, err := decoder.Token()
		if err != nil {
			if err == io.EOF {
				if doc == nil {
					return nil, errors.New("svgdoc: invalid svg document")
				}
				break
			}
			return nil, fmt.Errorf("svgdoc: %w", err)
		}
		switch se := t.(type) {
		case xml.StartElement:
			e := Element{Kind: KindOf(se.Name.Local), Tag: se.Name.Local}
			for _, attr := range se.Attr {
				e.Attrs = append(e.Attrs, Attr{Name: attrName(attr.Name), Value: attr.Value})
			}
			if e.Kind == KindUnknown && !passiveTags[se.Name.Local] {
				switch opts.ErrorMode {
				case StrictErrorMode:
					return nil, fmt.Errorf("%w: <%s>", ErrUnsupportedElement, se.Name.Local)
				case WarnErrorMode:
					logger.Warn("unsupported svg element", "tag", se.Name.Local)
				}
			}
			if doc == nil {
				if e.Kind != KindSVG {
					return nil, fmt.Errorf("svgdoc: root element is <%s>, not <svg>", se.Name.Local)
				}
				doc = NewDocument(e)
				stack = append(stack, doc.Root())
				continue
			}
			if len(stack) == 0 {
				return nil, errors.New("svgdoc: multiple root elements")
			}
			id, _ := doc.AddChild(stack[len(stack)-1], e)
			stack = append(stack, id)
		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		case xml.CharData:
			if len(stack) == 0 {
				continue
			}
			el := doc.Element(stack[len(stack)-1])
			if el.Kind == KindText || len(xmlTrim(se)) > 0 {
				el.Text += string(se)
			}
		}
	}
	return doc, nil
}

func xmlTrim(b []byte) []byte {
	for len(b) > 0 && isXMLSpace(b[0]) {
		b = b[1:]
	}
	for len(b) > 0 && isXMLSpace(b[len(b)-1]) {
		b = b[:len(b)-1]
	}
	return b
}

func isXMLSpace(c byte) bool { return c == ' ' || c == '\t' || c == '\n' || c == '\r' }

// DecodeFile reads the named SVG file.
func DecodeFile(file string, opts DecodeOptions) (*Document, error) {
	fin, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer fin.Close()
	return Decode(fin, opts)
}
