package textmetrics

import (
	"fmt"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// faces are measured at this size (with no hinting), and
// scaled linearly
const refSize = 64

type faceKey struct {
	mono, bold, italic bool
}

// FaceProvider measures text with the Go fonts: monospace families
// use Go Mono, all others use Go Regular (or its bold/italic variants).
type FaceProvider struct {
	mu    sync.Mutex
	faces map[faceKey]font.Face
}

var _ Provider = (*FaceProvider)(nil)

// NewFaceProvider returns a provider ready to use.
func NewFaceProvider() *FaceProvider {
	return &FaceProvider{faces: make(map[faceKey]font.Face)}
}

func fontData(key faceKey) []byte {
	switch {
	case key.mono:
		return gomono.TTF
	case key.bold && key.italic:
		return gobolditalic.TTF
	case key.bold:
		return gobold.TTF
	case key.italic:
		return goitalic.TTF
	}
	return goregular.TTF
}

func isMonospace(family string) bool {
	family = strings.ToLower(family)
	return family == "monospace" || strings.Contains(family, "mono") || strings.Contains(family, "courier")
}

// face must be called with the lock held
func (fp *FaceProvider) face(f Font) (font.Face, error) {
	key := faceKey{mono: isMonospace(f.Family), bold: f.Bold, italic: f.Italic}
	if face, ok := fp.faces[key]; ok {
		return face, nil
	}
	parsed, err := opentype.Parse(fontData(key))
	if err != nil {
		return nil, fmt.Errorf("textmetrics: parsing font: %w", err)
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{Size: refSize, DPI: 72, Hinting: font.HintingNone})
	if err != nil {
		return nil, fmt.Errorf("textmetrics: creating face: %w", err)
	}
	if fp.faces == nil {
		fp.faces = make(map[faceKey]font.Face)
	}
	fp.faces[key] = face
	return face, nil
}

func toFloat(v fixed.Int26_6) float64 { return float64(v) / 64 }

// Measure implements Provider. Embedded fonts can't fail to parse, but
// the basic font is used as fallback anyway.
func (fp *FaceProvider) Measure(text, fontShorthand string) Metrics {
	f := ParseFont(fontShorthand)
	fp.mu.Lock()
	defer fp.mu.Unlock()
	face, err := fp.face(f)
	if err != nil {
		return BasicProvider{}.Measure(text, fontShorthand)
	}
	return measureFace(face, normalizeSpace(text), f.Size/refSize)
}

func measureFace(face font.Face, text string, scale float64) Metrics {
	m := face.Metrics()
	return Metrics{
		Width:          toFloat(font.MeasureString(face, text)) * scale,
		BaselineOffset: toFloat(m.Ascent) * scale,
		LineHeight:     toFloat(m.Ascent+m.Descent) * scale,
	}
}

// HeightToFontSize implements Provider.
func (fp *FaceProvider) HeightToFontSize(kind MetricKind, height float64) float64 {
	fp.mu.Lock()
	defer fp.mu.Unlock()
	face, err := fp.face(Font{Family: DefaultFamily, Size: refSize})
	if err != nil {
		return BasicProvider{}.HeightToFontSize(kind, height)
	}
	return heightToSize(measureFace(face, "", 1), kind, height, refSize)
}

// heightToSize inverts the linear relation between font size and
// the vertical metrics ref, measured at size refSize
func heightToSize(ref Metrics, kind MetricKind, height, size float64) float64 {
	unit := ref.LineHeight
	if kind == KindBaselineOffset {
		unit = ref.BaselineOffset
	}
	if unit == 0 {
		return 0
	}
	return height * size / unit
}

// BasicProvider uses the fixed size basicfont.Face7x13,
// scaled to the requested size. It is deterministic and cheap,
// which is convenient for tests.
type BasicProvider struct{}

var _ Provider = BasicProvider{}

const basicSize = 13

// Measure implements Provider.
func (BasicProvider) Measure(text, fontShorthand string) Metrics {
	f := ParseFont(fontShorthand)
	return measureFace(basicfont.Face7x13, normalizeSpace(text), f.Size/basicSize)
}

// HeightToFontSize implements Provider.
func (BasicProvider) HeightToFontSize(kind MetricKind, height float64) float64 {
	return heightToSize(measureFace(basicfont.Face7x13, "", 1), kind, height, basicSize)
}
