package svgdoc

import (
	"bufio"
	"encoding/xml"
	"io"
	"strings"
)

// Encode writes the document as XML, one element per line.
// Attributes are written in their original order.
func Encode(w io.Writer, doc *Document) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(xml.Header)
	if err := encodeElement(bw, doc, doc.Root(), 0); err != nil {
		return err
	}
	return bw.Flush()
}

func escape(w *bufio.Writer, s string) error {
	return xml.EscapeText(w, []byte(s))
}

func encodeElement(w *bufio.Writer, doc *Document, id NodeID, depth int) error {
	e := doc.Element(id)
	indent := strings.Repeat("  ", depth)
	w.WriteString(indent)
	w.WriteByte('<')
	w.WriteString(e.Tag)
	for _, attr := range e.Attrs {
		w.WriteByte(' ')
		w.WriteString(attr.Name)
		w.WriteString(`="`)
		if err := escape(w, attr.Value); err != nil {
			return err
		}
		w.WriteByte('"')
	}
	children := doc.Children(id)
	if len(children) == 0 && e.Text == "" {
		_, err := w.WriteString("/>\n")
		return err
	}
	w.WriteByte('>')
	if err := escape(w, e.Text); err != nil {
		return err
	}
	if len(children) != 0 {
		w.WriteByte('\n')
		for _, c := range children {
			if err := encodeElement(w, doc, c, depth+1); err != nil {
				return err
			}
		}
		w.WriteString(indent)
	}
	w.WriteString("</" + e.Tag + ">\n")
	return nil
}
