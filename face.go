package flow

import (
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/grindlemire/go-flow/internal/layout"
)

var _ Estimator = (*FaceEstimator)(nil)

// FaceEstimator measures text with the glyph advances of a font face. Advances
// are taken at the face's native pixel size and scaled to the node's font
// size. Line advances are cached per estimator, so reusing one across layout
// passes is cheap.
type FaceEstimator struct {
	face font.Face
	size float64

	mu       sync.Mutex
	advances map[string]fixed.Int26_6
}

// NewFaceEstimator wraps face. size is the pixel size the face was created
// at; it defaults to the face's ascent plus descent.
func NewFaceEstimator(face font.Face, size float64) *FaceEstimator {
	if size <= 0 {
		m := face.Metrics()
		size = float64((m.Ascent + m.Descent).Ceil())
	}
	return &FaceEstimator{
		face:     face,
		size:     size,
		advances: map[string]fixed.Int26_6{},
	}
}

// NewBasicFaceEstimator returns a FaceEstimator over the 7x13 bitmap face.
func NewBasicFaceEstimator() *FaceEstimator {
	return NewFaceEstimator(basicfont.Face7x13, 13)
}

// MeasureText implements Estimator.
func (f *FaceEstimator) MeasureText(text string, style TextStyle, maxWidth float64) Size {
	if style.FontSize <= 0 {
		style.FontSize = layout.DefaultFontSize
	}
	return layout.WrapLines(text, style, maxWidth, func(line string) float64 {
		return float64(f.advance(line).Ceil()) * style.FontSize / f.size
	})
}

func (f *FaceEstimator) advance(line string) fixed.Int26_6 {
	f.mu.Lock()
	defer f.mu.Unlock()
	if adv, ok := f.advances[line]; ok {
		return adv
	}
	adv := font.MeasureString(f.face, line)
	f.advances[line] = adv
	return adv
}
