package layout

import (
	"math"
	"testing"
)

func TestNewRect(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.X != 5 || r.Y != 10 || r.Width != 20 || r.Height != 15 {
		t.Errorf("NewRect() = %+v, want {5 10 20 15}", r)
	}
}

func TestRect_RightBottom(t *testing.T) {
	type tc struct {
		rect   Rect
		right  float64
		bottom float64
	}

	tests := map[string]tc{
		"standard rect": {
			rect:   NewRect(5, 10, 20, 15),
			right:  25,
			bottom: 25,
		},
		"negative position": {
			rect:   NewRect(-5, -5, 10, 10),
			right:  5,
			bottom: 5,
		},
		"zero size": {
			rect:   NewRect(5, 5, 0, 0),
			right:  5,
			bottom: 5,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.rect.Right(); got != tt.right {
				t.Errorf("Right() = %v, want %v", got, tt.right)
			}
			if got := tt.rect.Bottom(); got != tt.bottom {
				t.Errorf("Bottom() = %v, want %v", got, tt.bottom)
			}
		})
	}
}

func TestRect_Inset(t *testing.T) {
	type tc struct {
		rect     Rect
		insets   EdgeInsets
		expected Rect
	}

	tests := map[string]tc{
		"uniform": {
			rect:     NewRect(0, 0, 100, 80),
			insets:   InsetsAll(10),
			expected: NewRect(10, 10, 80, 60),
		},
		"trbl": {
			rect:     NewRect(10, 20, 100, 50),
			insets:   InsetsTRBL(1, 2, 3, 4),
			expected: NewRect(14, 21, 94, 46),
		},
		"larger than rect clamps to zero": {
			rect:     NewRect(0, 0, 10, 10),
			insets:   InsetsAll(8),
			expected: NewRect(8, 8, 0, 0),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.rect.Inset(tt.insets); got != tt.expected {
				t.Errorf("Inset() = %+v, want %+v", got, tt.expected)
			}
		})
	}
}

func TestRect_ContainsAndTranslate(t *testing.T) {
	r := NewRect(10, 10, 20, 20)
	if !r.Contains(10, 10) {
		t.Error("top-left corner should be inside")
	}
	if r.Contains(30, 30) {
		t.Error("bottom-right corner should be outside")
	}
	moved := r.Translate(-5, 3)
	if moved != NewRect(5, 13, 20, 20) {
		t.Errorf("Translate() = %+v, want {5 13 20 20}", moved)
	}
	if !NewRect(0, 0, 0, 5).IsEmpty() {
		t.Error("zero-width rect should be empty")
	}
}

func TestSize_ShrinkGrow(t *testing.T) {
	s := Size{Width: 30, Height: 20}
	if got := s.Shrink(InsetsSymmetric(5, 10)); got != (Size{Width: 10, Height: 10}) {
		t.Errorf("Shrink() = %+v, want {10 10}", got)
	}
	if got := s.Shrink(InsetsAll(50)); got != (Size{}) {
		t.Errorf("Shrink() past zero = %+v, want {0 0}", got)
	}
	if got := s.Grow(InsetsTRBL(1, 2, 3, 4)); got != (Size{Width: 36, Height: 24}) {
		t.Errorf("Grow() = %+v, want {36 24}", got)
	}
	if got := NewSize(-1, math.NaN()); got != (Size{}) {
		t.Errorf("NewSize(-1, NaN) = %+v, want {0 0}", got)
	}
}

func TestRatio_ZeroDenominator(t *testing.T) {
	if got := ratio(10, 0); got != 0 {
		t.Errorf("ratio(10, 0) = %v, want 0", got)
	}
	if got := ratio(math.Inf(1), 2); got != 0 {
		t.Errorf("ratio(Inf, 2) = %v, want 0", got)
	}
	if got := ratio(10, 4); got != 2.5 {
		t.Errorf("ratio(10, 4) = %v, want 2.5", got)
	}
}

func TestClamp(t *testing.T) {
	type tc struct {
		v, lo, hi, want float64
	}

	tests := map[string]tc{
		"within":            {v: 5, lo: 0, hi: 10, want: 5},
		"below":             {v: -1, lo: 0, hi: 10, want: 0},
		"above":             {v: 11, lo: 0, hi: 10, want: 10},
		"unbounded max":     {v: 1e9, lo: 0, hi: math.Inf(1), want: 1e9},
		"min wins over max": {v: 5, lo: 8, hi: 6, want: 8},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := clamp(tt.v, tt.lo, tt.hi); got != tt.want {
				t.Errorf("clamp(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
			}
		})
	}
}
