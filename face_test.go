package flow

import (
	"math"
	"testing"
)

func TestFaceEstimator_MeasureText(t *testing.T) {
	type tc struct {
		text     string
		style    TextStyle
		maxWidth float64
		want     Size
	}

	// basicfont's 7x13 face advances 7px per glyph at its native 13px
	tests := map[string]tc{
		"native size": {
			text:  "abc",
			style: TextStyle{FontSize: 13, LineHeight: 1},
			want:  Size{Width: 21, Height: 13},
		},
		"scaled": {
			text:  "abc",
			style: TextStyle{FontSize: 26, LineHeight: 1.5},
			want:  Size{Width: 42, Height: 39},
		},
		"multi line": {
			text:  "ab\nabcd",
			style: TextStyle{FontSize: 13, LineHeight: 1},
			want:  Size{Width: 28, Height: 26},
		},
		"wraps": {
			text:     "abcdefgh",
			style:    TextStyle{FontSize: 13, LineHeight: 1},
			maxWidth: 30,
			want:     Size{Width: 30, Height: 26},
		},
		"empty": {
			text:  "",
			style: TextStyle{FontSize: 13, LineHeight: 1},
			want:  Size{},
		},
	}

	est := NewBasicFaceEstimator()
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := est.MeasureText(tt.text, tt.style, tt.maxWidth)
			if math.Abs(got.Width-tt.want.Width) > 1e-9 || math.Abs(got.Height-tt.want.Height) > 1e-9 {
				t.Errorf("MeasureText(%q) = %+v, want %+v", tt.text, got, tt.want)
			}
		})
	}
}

func TestFaceEstimator_CachesAdvances(t *testing.T) {
	est := NewBasicFaceEstimator()
	est.MeasureText("hello\nhello", TextStyle{FontSize: 13}, 0)
	est.MeasureText("hello", TextStyle{FontSize: 26}, 0)

	if len(est.advances) != 1 {
		t.Errorf("cached %d advances, want 1", len(est.advances))
	}
}

func TestFaceEstimator_InEngine(t *testing.T) {
	label := Text("abc", WithID("label"), WithFontSize(13), WithProp(PropLineHeight, 1))
	root := HStack(WithID("root"), WithAlign(AlignStart), WithChildren(label))

	NewEngine(WithEstimator(NewBasicFaceEstimator())).ComputeLayout(root, Size{Width: 100, Height: 100})

	if got := label.Frame(); got != NewRect(0, 0, 21, 13) {
		t.Errorf("label frame = %+v, want 21x13 at origin", got)
	}
}
