package shaper

import (
	"errors"
	"fmt"

	"github.com/benoitkugler/svgedit/svgdoc"
)

var (
	// ErrUnsupportedShapeKind is returned by every capability of
	// a Shaper built on an element without geometry definition.
	ErrUnsupportedShapeKind = errors.New("shaper: unsupported shape kind")
	// ErrInvalidSelection is returned when building a MultiShaper over
	// elements which do not share the same parent.
	ErrInvalidSelection = errors.New("shaper: invalid selection")
	// ErrUndefinedAggregateTransform is returned when reading or writing
	// the own transform of a group or of a selection.
	ErrUndefinedAggregateTransform = errors.New("shaper: undefined transform for an aggregate")
	// ErrNegativeSize is returned when writing a size with a negative component.
	ErrNegativeSize = errors.New("shaper: negative size")
)

func errUnsupported(e *svgdoc.Element) error {
	return fmt.Errorf("%w: <%s>", ErrUnsupportedShapeKind, e.Tag)
}
