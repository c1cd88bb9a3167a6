// Package textmetrics measures text runs, for the
// geometry of text elements.
package textmetrics

import (
	"strconv"
	"strings"
)

// Metrics are given in pixels.
type Metrics struct {
	Width          float64
	BaselineOffset float64 // distance from the top of the line box to the baseline
	LineHeight     float64
}

// MetricKind selects the vertical metric inverted by HeightToFontSize.
type MetricKind uint8

const (
	KindLineHeight MetricKind = iota
	KindBaselineOffset
)

// Provider measures text. Implementations must be safe for concurrent use.
type Provider interface {
	// Measure returns the metrics of text, drawn with the given
	// CSS font shorthand (such as "italic bold 12px serif").
	Measure(text, fontShorthand string) Metrics
	// HeightToFontSize returns the font size (in pixels) for which
	// the metric kind equals height.
	HeightToFontSize(kind MetricKind, height float64) float64
}

const (
	DefaultFamily = "sans-serif"
	DefaultSize   = 16.
)

// Font is a parsed font shorthand.
type Font struct {
	Family string
	Size   float64 // in pixels
	Bold   bool
	Italic bool
}

// Shorthand returns the CSS font shorthand for f.
func (f Font) Shorthand() string {
	var chunks []string
	if f.Italic {
		chunks = append(chunks, "italic")
	}
	if f.Bold {
		chunks = append(chunks, "bold")
	}
	chunks = append(chunks, strconv.FormatFloat(f.Size, 'f', -1, 64)+"px", f.Family)
	return strings.Join(chunks, " ")
}

// ParseFont reads a CSS font shorthand, with lenient rules :
// unknown keywords are ignored, and missing size or family are defaulted.
func ParseFont(shorthand string) Font {
	out := Font{Family: DefaultFamily, Size: DefaultSize}
	fields := strings.Fields(shorthand)
	for i, field := range fields {
		switch field {
		case "italic", "oblique":
			out.Italic = true
			continue
		case "bold", "bolder", "600", "700", "800", "900":
			out.Bold = true
			continue
		}
		size, ok := parseSize(field)
		if !ok {
			continue
		}
		out.Size = size
		if family := strings.Join(fields[i+1:], " "); family != "" {
			family = strings.TrimSpace(strings.Split(family, ",")[0])
			out.Family = strings.Trim(family, `"'`)
		}
		break
	}
	return out
}

// parseSize accepts "12px", "9pt", "1.5em" or "120%", with an optional "/line-height" suffix
func parseSize(s string) (float64, bool) {
	if i := strings.IndexByte(s, '/'); i >= 0 {
		s = s[:i]
	}
	factor := 1.
	switch {
	case strings.HasSuffix(s, "px"):
		s = strings.TrimSuffix(s, "px")
	case strings.HasSuffix(s, "pt"):
		s, factor = strings.TrimSuffix(s, "pt"), 96./72
	case strings.HasSuffix(s, "em"):
		s, factor = strings.TrimSuffix(s, "em"), DefaultSize
	case strings.HasSuffix(s, "%"):
		s, factor = strings.TrimSuffix(s, "%"), DefaultSize/100
	default:
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v <= 0 {
		return 0, false
	}
	return v * factor, true
}

// normalizeSpace collapses white spaces, as done for SVG
// text content (without xml:space="preserve").
func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
