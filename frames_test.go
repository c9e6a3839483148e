package flow

import "testing"

func TestCollectFrames(t *testing.T) {
	a := Image(WithID("a"), WithSize(30, 10))
	inner := Text("x", WithID("inner"))
	mystery := New("mystery", WithID("mystery"), WithChildren(inner))
	view := Scroll(WithID("view"))
	root := VStack(WithID("root"), WithChildren(a, mystery, view))

	ComputeLayoutClipped(root, Size{Width: 100, Height: 100})
	frames := CollectFrames(root)

	want := []FrameRecord{
		{ID: "root", Type: TypeStackVertical, Depth: 0, Width: 100, Height: 100},
		{ID: "a", Type: TypeImage, Depth: 1, Width: 100, Height: 10},
		{ID: "mystery", Type: "mystery", Depth: 1, Y: 10, Width: 100},
		{ID: "view", Type: TypeScroll, Depth: 1, Y: 10, Width: 100, Height: 100, Clip: true},
	}
	if len(frames) != len(want) {
		t.Fatalf("CollectFrames() returned %d records, want %d: %+v", len(frames), len(want), frames)
	}
	for i := range want {
		if frames[i] != want[i] {
			t.Errorf("record %d = %+v, want %+v", i, frames[i], want[i])
		}
	}
	if frames[1].Rect() != NewRect(0, 0, 100, 10) {
		t.Errorf("Rect() = %+v", frames[1].Rect())
	}
}

func TestCollectFrames_BeforeLayout(t *testing.T) {
	if got := CollectFrames(VStack(WithID("root"))); len(got) != 0 {
		t.Errorf("CollectFrames() before layout = %+v, want none", got)
	}
	if got := CollectFrames(nil); got != nil {
		t.Errorf("CollectFrames(nil) = %+v, want nil", got)
	}
}
