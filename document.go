package flow

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"
)

// ErrUnknownFormat is returned for documents that are neither TOML nor JSON.
var ErrUnknownFormat = errors.New("unknown document format")

// Format names a document encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%s: %w", path, ErrUnknownFormat)
	}
}

// NodeSpec is the serialized form of one node.
type NodeSpec struct {
	ID       string         `toml:"id" json:"id,omitempty"`
	Type     string         `toml:"type" json:"type"`
	Props    map[string]any `toml:"props" json:"props,omitempty"`
	Children []NodeSpec     `toml:"children" json:"children,omitempty"`
}

// Document describes a node tree and, optionally, the container to lay it
// out in.
type Document struct {
	Name   string   `toml:"name" json:"name,omitempty"`
	Width  float64  `toml:"width" json:"width,omitempty"`
	Height float64  `toml:"height" json:"height,omitempty"`
	Root   NodeSpec `toml:"root" json:"root"`
}

// LoadDocument reads and parses the document at path.
func LoadDocument(path string) (*Document, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	doc, err := ParseDocument(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if doc.Name == "" {
		doc.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return doc, nil
}

// ParseDocument decodes data and fills in missing node ids.
func ParseDocument(data []byte, format Format) (*Document, error) {
	var doc Document
	switch format {
	case FormatTOML:
		md, err := toml.Decode(string(data), &doc)
		if err != nil {
			return nil, fmt.Errorf("decode toml: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return nil, fmt.Errorf("decode toml: unknown keys %s", strings.Join(keys, ", "))
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
	default:
		return nil, fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}

	if err := doc.Normalize(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Normalize checks that every node has a type and fills in missing ids.
// Documents decoded by other means (an HTTP body, say) must be normalized
// before they are built.
func (d *Document) Normalize() error {
	if err := d.Root.validate("root"); err != nil {
		return err
	}
	d.Root.fillIDs()
	return nil
}

// Container returns the document's declared container size, falling back to
// def for any dimension it leaves unset.
func (d *Document) Container(def Size) Size {
	s := def
	if d.Width > 0 {
		s.Width = d.Width
	}
	if d.Height > 0 {
		s.Height = d.Height
	}
	return s
}

// Build creates the element tree.
func (d *Document) Build() *Element {
	return d.Root.Element()
}

// DuplicateIDs returns every id used by more than one node, sorted. Nodes
// sharing an id share one layout cache entry.
func (d *Document) DuplicateIDs() []string {
	seen := map[string]int{}
	d.Root.walk(func(n *NodeSpec) {
		seen[n.ID]++
	})
	var dups []string
	for id, count := range seen {
		if count > 1 {
			dups = append(dups, id)
		}
	}
	slices.Sort(dups)
	return dups
}

// Count returns the number of nodes in the document.
func (d *Document) Count() int {
	count := 0
	d.Root.walk(func(*NodeSpec) { count++ })
	return count
}

// geometryProps are written by layout and never read back as input.
var geometryProps = []string{PropX, PropY, PropWidth, PropHeight}

// withoutGeometry returns props minus the written geometry, or nil when
// nothing is left.
func withoutGeometry(props map[string]any) map[string]any {
	out := maps.Clone(props)
	for _, name := range geometryProps {
		delete(out, name)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// Element builds the element subtree described by n. Geometry left over from
// an earlier layout is dropped, so only the next pass positions the tree.
func (n NodeSpec) Element() *Element {
	e := New(n.Type, WithID(n.ID), WithProps(withoutGeometry(n.Props)))
	for _, child := range n.Children {
		e.AddChild(child.Element())
	}
	return e
}

// SpecOf converts an element subtree back into its serialized form. Geometry
// written by layout is left out; use CollectFrames for that.
func SpecOf(e *Element) NodeSpec {
	n := NodeSpec{ID: e.id, Type: e.typ, Props: withoutGeometry(e.props)}
	for _, child := range e.children {
		n.Children = append(n.Children, SpecOf(child))
	}
	return n
}

func (n *NodeSpec) validate(path string) error {
	if n.Type == "" {
		return fmt.Errorf("%s: missing type", path)
	}
	for i := range n.Children {
		if err := n.Children[i].validate(fmt.Sprintf("%s.children[%d]", path, i)); err != nil {
			return err
		}
	}
	return nil
}

func (n *NodeSpec) fillIDs() {
	n.walk(func(node *NodeSpec) {
		if node.ID == "" {
			node.ID = uuid.NewString()
		}
	})
}

func (n *NodeSpec) walk(fn func(*NodeSpec)) {
	fn(n)
	for i := range n.Children {
		n.Children[i].walk(fn)
	}
}
