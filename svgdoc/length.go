package svgdoc

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/benoitkugler/svgedit/svgxform"
)

// ErrInvalidLength is returned when a length attribute can't be parsed.
var ErrInvalidLength = errors.New("svgdoc: invalid length")

// Unit is the unit of a length attribute.
type Unit uint8

const (
	UnitNone Unit = iota // user units
	UnitPx
	UnitPt
	UnitPc
	UnitMm
	UnitCm
	UnitIn
	UnitEm
	UnitEx
	UnitPercent
)

var unitNames = [...]string{
	UnitNone:    "",
	UnitPx:      "px",
	UnitPt:      "pt",
	UnitPc:      "pc",
	UnitMm:      "mm",
	UnitCm:      "cm",
	UnitIn:      "in",
	UnitEm:      "em",
	UnitEx:      "ex",
	UnitPercent: "%",
}

func (u Unit) String() string {
	if int(u) < len(unitNames) {
		return unitNames[u]
	}
	return "?"
}

// Length is one length attribute value, with its unit,
// and the name of the attribute it comes from (which defines
// the axis used to resolve percentages).
type Length struct {
	Value float64
	Unit  Unit
	Attr  string
}

// ParseLength parses the value of the attribute attr.
func ParseLength(attr, s string) (Length, error) {
	s = strings.TrimSpace(s)
	out := Length{Attr: attr}
	for u := UnitPx; u <= UnitPercent; u++ {
		if strings.HasSuffix(s, unitNames[u]) {
			out.Unit = u
			s = strings.TrimSpace(strings.TrimSuffix(s, unitNames[u]))
			break
		}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Length{}, fmt.Errorf("%w: %s=%q", ErrInvalidLength, attr, s)
	}
	out.Value = v
	return out, nil
}

func (l Length) String() string {
	return svgxform.FormatNumber(l.Value) + l.Unit.String()
}

// Length parses the attribute name of e. A missing attribute
// is a zero length without error.
func (e *Element) Length(name string) (Length, error) {
	v, ok := e.Get(name)
	if !ok {
		return Length{Attr: name}, nil
	}
	return ParseLength(name, v)
}

// SetLength writes l to the attribute l.Attr.
func (e *Element) SetLength(l Length) { e.Set(l.Attr, l.String()) }
