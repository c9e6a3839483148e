package layout

import (
	"github.com/charmbracelet/log"

	"github.com/grindlemire/go-flow/internal/debug"
)

// Engine computes layouts. It owns the per-call cache and the leaf
// measurement strategies. An Engine is not safe for concurrent use; callers
// serialize layout passes or use one Engine per goroutine.
type Engine struct {
	cache        *Cache
	measurers    map[string]MeasureFunc
	estimator    Estimator
	textDefaults TextStyle
	logger       *log.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithEstimator replaces the text size estimator.
func WithEstimator(est Estimator) Option {
	return func(e *Engine) {
		if est != nil {
			e.estimator = est
		}
	}
}

// WithTextDefaults sets the font parameters used for text nodes that declare
// no font_size or line_height. Zero fields keep the package defaults.
func WithTextDefaults(style TextStyle) Option {
	return func(e *Engine) {
		e.textDefaults = style
	}
}

// WithMeasurer registers (or replaces) the measurement strategy for a leaf type tag.
// Container tags are handled by the engine and cannot be overridden.
func WithMeasurer(typ string, fn MeasureFunc) Option {
	return func(e *Engine) {
		if fn == nil {
			delete(e.measurers, typ)
			return
		}
		e.measurers[typ] = fn
	}
}

// WithLogger sets the logger that receives debug-level pass tracing.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// New creates an Engine with the built-in measurers, a CellEstimator and the
// debug logger.
func New(opts ...Option) *Engine {
	e := &Engine{
		cache:     NewCache(),
		measurers: DefaultMeasurers(),
		estimator: NewCellEstimator(),
		logger:    debug.Logger(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ComputeLayout lays out the tree rooted at root inside a container of the
// given size and writes x, y, width and height onto every positioned node.
func ComputeLayout(root Node, container Size) {
	New().ComputeLayout(root, container)
}

// ComputeLayout runs a full pass: cache reset, measure, position, apply.
func (e *Engine) ComputeLayout(root Node, container Size) {
	if root == nil {
		return
	}
	e.run(root, container)
	e.apply(root, false)
}

// ComputeLayoutClipped is ComputeLayout that also forwards each node's clip
// request onto its visible properties as clip = 1 or 0. Scroll nodes always
// request clipping.
func (e *Engine) ComputeLayoutClipped(root Node, container Size) {
	if root == nil {
		return
	}
	e.run(root, container)
	e.apply(root, true)
}

// Info returns the LayoutInfo the last call computed for id.
func (e *Engine) Info(id string) (LayoutInfo, bool) {
	return e.cache.Get(id)
}

func (e *Engine) run(root Node, container Size) {
	container = NewSize(container.Width, container.Height)
	e.cache.Reset()
	e.cache.indexTree(root)
	e.logger.Debug("layout start", "root", root.ID(), "nodes", e.cache.Len(),
		"width", container.Width, "height", container.Height)

	e.measure(root, container)
	e.position(root, RectOf(container))
}

// apply copies every positioned frame into the node's visible properties.
func (e *Engine) apply(n Node, forwardClip bool) {
	if i, ok := e.cache.Lookup(n.ID()); ok {
		info := e.cache.At(i)
		if info.Positioned {
			f := info.Frame
			n.SetNumber(PropX, f.X)
			n.SetNumber(PropY, f.Y)
			n.SetNumber(PropWidth, f.Width)
			n.SetNumber(PropHeight, f.Height)
			if forwardClip {
				clip := 0.0
				if info.Clip {
					clip = 1
				}
				n.SetNumber(PropClip, clip)
			}
		}
	}
	for _, child := range n.Children() {
		e.apply(child, forwardClip)
	}
}
