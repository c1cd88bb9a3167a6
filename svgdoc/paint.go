package svgdoc

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/benoitkugler/svgedit/svgxform"
	"golang.org/x/image/colornames"
)

// ErrInvalidPaint is returned for fill or stroke values which can't be parsed.
var ErrInvalidPaint = errors.New("svgdoc: invalid paint")

// PaintKind distinguishes the values of a fill or stroke attribute.
type PaintKind uint8

const (
	PaintUnset PaintKind = iota // attribute not specified
	PaintNone
	PaintCurrentColor
	PaintInherit
	PaintURL   // reference to a paint server
	PaintColor // plain color
)

// ColorFormat records how a color was written, so that
// an edited color is serialized the same way.
type ColorFormat uint8

const (
	FormatHex6 ColorFormat = iota // #rrggbb
	FormatHex3                    // #rgb
	FormatNamed
	FormatRGB        // rgb(r, g, b)
	FormatRGBA       // rgba(r, g, b, a)
	FormatRGBPercent // rgb(r%, g%, b%)
)

// Paint is the value of a fill or stroke attribute.
type Paint struct {
	Kind     PaintKind
	URL      string // for PaintURL, such as "#grad"
	Fallback string // optional fallback following an URL
	Color    color.NRGBA
	Format   ColorFormat
	Name     string // for FormatNamed

	raw string // source text, used as long as the paint is not edited
}

// ColorPaint returns a plain color paint, written as hexadecimal
// (or rgba() if it is translucent).
func ColorPaint(c color.NRGBA) Paint {
	p := Paint{Kind: PaintColor, Color: c}
	if c.A != 0xff {
		p.Format = FormatRGBA
	}
	return p
}

// WithColor returns a copy of p, with a new color, written with the
// same format (named colors are written as hexadecimal).
func (p Paint) WithColor(c color.NRGBA) Paint {
	out := Paint{Kind: PaintColor, Color: c, Format: p.Format}
	if p.Kind != PaintColor || p.Format == FormatNamed {
		out.Format = ColorPaint(c).Format
	}
	if c.A != 0xff && out.Format != FormatRGBA {
		out.Format = FormatRGBA
	}
	return out
}

// ParsePaint parses the value of a fill or stroke attribute.
// An empty string gives an unset paint.
func ParsePaint(s string) (Paint, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Paint{}, nil
	}
	p := Paint{raw: s}
	lower := strings.ToLower(s)
	switch {
	case lower == "none":
		p.Kind = PaintNone
	case lower == "currentcolor":
		p.Kind = PaintCurrentColor
	case lower == "inherit":
		p.Kind = PaintInherit
	case strings.HasPrefix(lower, "url("):
		end := strings.IndexByte(s, ')')
		if end < 0 {
			return Paint{}, fmt.Errorf("%w: %q", ErrInvalidPaint, s)
		}
		p.Kind = PaintURL
		p.URL = strings.Trim(strings.TrimSpace(s[4:end]), `"'`)
		p.Fallback = strings.TrimSpace(s[end+1:])
	default:
		c, format, err := parseColor(lower)
		if err != nil {
			return Paint{}, fmt.Errorf("%w: %q: %s", ErrInvalidPaint, s, err)
		}
		p.Kind, p.Color, p.Format = PaintColor, c, format
		if format == FormatNamed {
			p.Name = lower
		}
	}
	return p, nil
}

func parseColor(s string) (color.NRGBA, ColorFormat, error) {
	switch {
	case strings.HasPrefix(s, "#"):
		return parseHex(s[1:])
	case strings.HasPrefix(s, "rgba(") && strings.HasSuffix(s, ")"):
		args := strings.FieldsFunc(s[5:len(s)-1], isSeparator)
		if len(args) != 4 {
			return color.NRGBA{}, 0, errors.New("rgba() expects 4 arguments")
		}
		c, _, err := parseRGB(args[:3])
		if err != nil {
			return c, 0, err
		}
		a, err := strconv.ParseFloat(args[3], 64)
		if err != nil {
			return c, 0, err
		}
		c.A = uint8(math.Round(clamp(a, 0, 1) * 255))
		return c, FormatRGBA, nil
	case strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")"):
		args := strings.FieldsFunc(s[4:len(s)-1], isSeparator)
		if len(args) != 3 {
			return color.NRGBA{}, 0, errors.New("rgb() expects 3 arguments")
		}
		return parseRGB(args)
	case s == "transparent":
		return color.NRGBA{}, FormatNamed, nil
	}
	if c, ok := colornames.Map[s]; ok {
		return color.NRGBA{c.R, c.G, c.B, c.A}, FormatNamed, nil
	}
	return color.NRGBA{}, 0, errors.New("unknown color")
}

func isSeparator(r rune) bool { return r == ',' || r == ' ' || r == '\t' || r == '\n' }

func clamp(v, min, max float64) float64 { return math.Max(min, math.Min(max, v)) }

func parseRGB(args []string) (color.NRGBA, ColorFormat, error) {
	var (
		channels [3]uint8
		percent  = strings.HasSuffix(args[0], "%")
	)
	for i, a := range args {
		if strings.HasSuffix(a, "%") != percent {
			return color.NRGBA{}, 0, errors.New("mixed percentages and integers")
		}
		v, err := strconv.ParseFloat(strings.TrimSuffix(a, "%"), 64)
		if err != nil {
			return color.NRGBA{}, 0, err
		}
		if percent {
			v = v * 255 / 100
		}
		channels[i] = uint8(math.Round(clamp(v, 0, 255)))
	}
	format := FormatRGB
	if percent {
		format = FormatRGBPercent
	}
	return color.NRGBA{channels[0], channels[1], channels[2], 0xff}, format, nil
}

func parseHex(s string) (color.NRGBA, ColorFormat, error) {
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.NRGBA{}, 0, err
	}
	switch len(s) {
	case 3:
		r, g, b := uint8(v>>8&0xf), uint8(v>>4&0xf), uint8(v&0xf)
		return color.NRGBA{r * 17, g * 17, b * 17, 0xff}, FormatHex3, nil
	case 6:
		return color.NRGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 0xff}, FormatHex6, nil
	}
	return color.NRGBA{}, 0, errors.New("invalid hexadecimal color")
}

func (p Paint) String() string {
	if p.raw != "" {
		return p.raw
	}
	switch p.Kind {
	case PaintNone:
		return "none"
	case PaintCurrentColor:
		return "currentColor"
	case PaintInherit:
		return "inherit"
	case PaintURL:
		s := "url(" + p.URL + ")"
		if p.Fallback != "" {
			s += " " + p.Fallback
		}
		return s
	case PaintColor:
		return p.formatColor()
	}
	return ""
}

func (p Paint) formatColor() string {
	c := p.Color
	switch p.Format {
	case FormatNamed:
		if p.Name != "" {
			return p.Name
		}
	case FormatHex3:
		if c.R%17 == 0 && c.G%17 == 0 && c.B%17 == 0 {
			return fmt.Sprintf("#%x%x%x", c.R/17, c.G/17, c.B/17)
		}
	case FormatRGB:
		return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
	case FormatRGBA:
		a := math.Round(float64(c.A)/255*100) / 100
		return fmt.Sprintf("rgba(%d,%d,%d,%s)", c.R, c.G, c.B, svgxform.FormatNumber(a))
	case FormatRGBPercent:
		pc := func(v uint8) string {
			return svgxform.FormatNumber(math.Round(float64(v)/255*1000)/10) + "%"
		}
		return fmt.Sprintf("rgb(%s,%s,%s)", pc(c.R), pc(c.G), pc(c.B))
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Paint parses the attribute name ("fill" or "stroke") of e.
func (e *Element) Paint(name string) (Paint, error) {
	return ParsePaint(e.Attr(name))
}

// SetPaint writes p to the attribute name, removing it for an unset paint.
func (e *Element) SetPaint(name string, p Paint) {
	if p.Kind == PaintUnset {
		e.Del(name)
		return
	}
	e.Set(name, p.String())
}
