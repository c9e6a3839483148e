package layout

import (
	"math"
	"testing"
)

func TestCache_IndexStable(t *testing.T) {
	c := NewCache()

	a := c.Index("a")
	b := c.Index("b")
	if a == b {
		t.Fatalf("distinct ids share index %d", a)
	}
	if again := c.Index("a"); again != a {
		t.Errorf("Index(a) second call = %d, want %d", again, a)
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}
}

func TestCache_DuplicateIDsShareEntry(t *testing.T) {
	c := NewCache()
	c.At(c.Index("dup")).ContentSize = Size{Width: 1}
	c.At(c.Index("dup")).ContentSize = Size{Width: 2}

	got, ok := c.Get("dup")
	if !ok {
		t.Fatal("Get(dup) missing")
	}
	if got.ContentSize.Width != 2 {
		t.Errorf("ContentSize.Width = %v, want last write 2", got.ContentSize.Width)
	}
}

func TestCache_Reset(t *testing.T) {
	c := NewCache()
	c.At(c.Index("a")).Positioned = true

	c.Reset()

	if c.Len() != 0 {
		t.Errorf("Len() after Reset = %d, want 0", c.Len())
	}
	if _, ok := c.Get("a"); ok {
		t.Error("entry survived Reset")
	}
	fresh := c.At(c.Index("a"))
	if fresh.Positioned {
		t.Error("re-added entry carries state from before Reset")
	}
}

func TestCache_NewEntryDefaults(t *testing.T) {
	c := NewCache()
	info := c.At(c.Index("n"))

	if info.Align != AlignStretch {
		t.Errorf("Align = %v, want stretch", info.Align)
	}
	if !math.IsInf(info.MaxWidth, 1) || !math.IsInf(info.MaxHeight, 1) {
		t.Errorf("max constraints = %v/%v, want +Inf", info.MaxWidth, info.MaxHeight)
	}
	if info.FlexShrink != 1 {
		t.Errorf("FlexShrink = %v, want 1", info.FlexShrink)
	}
}

func TestCache_IndexTreePreorder(t *testing.T) {
	root := newTestNode(TypeStackVertical, "root", nil,
		newTestNode(TypeText, "a", nil,
			newTestNode(TypeText, "a1", nil)),
		newTestNode(TypeText, "b", nil),
	)

	c := NewCache()
	c.indexTree(root)

	for want, id := range []string{"root", "a", "a1", "b"} {
		got, ok := c.Lookup(id)
		if !ok || got != want {
			t.Errorf("Lookup(%s) = %d, %v; want %d", id, got, ok, want)
		}
	}
}
