package layout

import "testing"

func TestCellEstimator_MeasureText(t *testing.T) {
	type tc struct {
		text     string
		style    TextStyle
		maxWidth float64
		want     Size
	}

	tests := map[string]tc{
		"empty text": {
			text: "",
			want: Size{},
		},
		"single line defaults": {
			text: "hello",
			want: Size{Width: 5 * 16 * 0.6, Height: 16 * 1.2},
		},
		"explicit font": {
			text:  "ab",
			style: TextStyle{FontSize: 10, LineHeight: 2},
			want:  Size{Width: 12, Height: 20},
		},
		"newlines add lines": {
			text:  "ab\nabcd",
			style: TextStyle{FontSize: 10, LineHeight: 1},
			want:  Size{Width: 24, Height: 20},
		},
		"wraps at max width": {
			text:     "abcdefghij",
			style:    TextStyle{FontSize: 10, LineHeight: 1},
			maxWidth: 25,
			want:     Size{Width: 25, Height: 30},
		},
		"wide runes count double": {
			text:  "日本",
			style: TextStyle{FontSize: 10, LineHeight: 1},
			want:  Size{Width: 24, Height: 10},
		},
	}

	est := NewCellEstimator()
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := est.MeasureText(tt.text, tt.style, tt.maxWidth)
			if !approx(got.Width, tt.want.Width) || !approx(got.Height, tt.want.Height) {
				t.Errorf("MeasureText(%q) = %+v, want %+v", tt.text, got, tt.want)
			}
		})
	}
}

func TestCellEstimator_ZeroCharWidthUsesDefault(t *testing.T) {
	got := CellEstimator{}.MeasureText("a", TextStyle{FontSize: 10, LineHeight: 1}, 0)
	if !approx(got.Width, 6) {
		t.Errorf("Width = %v, want 6", got.Width)
	}
}
