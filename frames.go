package flow

// FrameRecord is the flattened layout result for one positioned element.
type FrameRecord struct {
	ID     string  `json:"id"`
	Type   string  `json:"type"`
	Depth  int     `json:"depth"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Clip   bool    `json:"clip,omitempty"`
}

// Rect returns the record's frame.
func (r FrameRecord) Rect() Rect {
	return Rect{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}

// CollectFrames flattens the geometry written by the last layout pass in
// preorder. Elements that were not positioned are left out, along with
// their descendants.
func CollectFrames(root *Element) []FrameRecord {
	var out []FrameRecord
	collectFrames(root, 0, &out)
	return out
}

func collectFrames(e *Element, depth int, out *[]FrameRecord) {
	if e == nil || !e.Positioned() {
		return
	}
	f := e.Frame()
	*out = append(*out, FrameRecord{
		ID:     e.id,
		Type:   e.typ,
		Depth:  depth,
		X:      f.X,
		Y:      f.Y,
		Width:  f.Width,
		Height: f.Height,
		Clip:   e.Clipped(),
	})
	for _, child := range e.children {
		collectFrames(child, depth+1, out)
	}
}
