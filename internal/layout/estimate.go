package layout

import (
	"math"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Default text metrics used when a node declares none.
const (
	DefaultFontSize   = 16.0
	DefaultLineHeight = 1.2
	DefaultCharWidth  = 0.6
)

// TextStyle carries the font parameters a text estimate depends on.
type TextStyle struct {
	FontSize   float64
	LineHeight float64 // multiple of FontSize
}

// Estimator estimates the intrinsic size of a text run. maxWidth <= 0 means
// unbounded; otherwise lines wider than maxWidth wrap.
type Estimator interface {
	MeasureText(text string, style TextStyle, maxWidth float64) Size
}

// CellEstimator is the baseline heuristic: every terminal cell of display
// width (as reported by go-runewidth) is CharWidth * FontSize wide.
type CellEstimator struct {
	// CharWidth is the advance of one cell as a multiple of the font size.
	CharWidth float64
}

// NewCellEstimator returns a CellEstimator with DefaultCharWidth.
func NewCellEstimator() CellEstimator {
	return CellEstimator{CharWidth: DefaultCharWidth}
}

// MeasureText implements Estimator.
func (c CellEstimator) MeasureText(text string, style TextStyle, maxWidth float64) Size {
	style = style.withDefaults()
	cw := c.CharWidth
	if cw <= 0 {
		cw = DefaultCharWidth
	}
	advance := style.FontSize * cw
	return wrapLines(text, style, maxWidth, func(line string) float64 {
		return float64(runewidth.StringWidth(line)) * advance
	})
}

// WrapLines measures text line by line with the given width function and
// wraps any line wider than maxWidth. Exposed for other Estimator
// implementations.
func WrapLines(text string, style TextStyle, maxWidth float64, width func(string) float64) Size {
	return wrapLines(text, style.withDefaults(), maxWidth, width)
}

func wrapLines(text string, style TextStyle, maxWidth float64, width func(string) float64) Size {
	if text == "" {
		return Size{}
	}
	var w float64
	lines := 0
	for _, line := range strings.Split(text, "\n") {
		lw := width(line)
		if maxWidth > 0 && lw > maxWidth {
			lines += int(math.Ceil(lw / maxWidth))
			lw = maxWidth
		} else {
			lines++
		}
		w = max(w, lw)
	}
	return NewSize(w, float64(lines)*style.FontSize*style.LineHeight)
}

func (s TextStyle) withDefaults() TextStyle {
	if s.FontSize <= 0 {
		s.FontSize = DefaultFontSize
	}
	if s.LineHeight <= 0 {
		s.LineHeight = DefaultLineHeight
	}
	return s
}
