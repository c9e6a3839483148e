package layout

import "math"

// Cache is the per-call LayoutInfo store. Each node id is mapped to a stable
// integer index when the tree is indexed, and entries live in a plain slice
// addressed by that index.
//
// Pointers returned by At are only valid until the next Index call that adds
// an entry.
type Cache struct {
	index map[string]int
	infos []LayoutInfo
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{index: make(map[string]int)}
}

// Reset discards every entry. Storage is reused.
func (c *Cache) Reset() {
	clear(c.index)
	c.infos = c.infos[:0]
}

// Len returns the number of distinct ids indexed.
func (c *Cache) Len() int {
	return len(c.infos)
}

// Index returns the index for id, adding a fresh entry when id is new.
// Duplicate ids resolve to the same index.
func (c *Cache) Index(id string) int {
	if i, ok := c.index[id]; ok {
		return i
	}
	i := len(c.infos)
	c.index[id] = i
	c.infos = append(c.infos, newLayoutInfo())
	return i
}

// Lookup returns the index for id without adding it.
func (c *Cache) Lookup(id string) (int, bool) {
	i, ok := c.index[id]
	return i, ok
}

// At returns the entry at index i.
func (c *Cache) At(i int) *LayoutInfo {
	return &c.infos[i]
}

// Get returns a copy of the entry for id.
func (c *Cache) Get(id string) (LayoutInfo, bool) {
	i, ok := c.index[id]
	if !ok {
		return LayoutInfo{}, false
	}
	return c.infos[i], true
}

// entry returns the entry for id, adding one if needed.
func (c *Cache) entry(id string) *LayoutInfo {
	return c.At(c.Index(id))
}

// indexTree assigns indices to every node in preorder.
func (c *Cache) indexTree(n Node) {
	c.Index(n.ID())
	for _, child := range n.Children() {
		c.indexTree(child)
	}
}

func newLayoutInfo() LayoutInfo {
	return LayoutInfo{
		Align:      AlignStretch,
		FlexShrink: 1,
		MaxWidth:   math.Inf(1),
		MaxHeight:  math.Inf(1),
	}
}
