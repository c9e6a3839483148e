package flow

// Option configures an Element.
type Option func(*Element)

// WithID sets the element's identifier.
func WithID(id string) Option {
	return func(e *Element) {
		e.id = id
	}
}

// WithProp sets a single property.
func WithProp(name string, value any) Option {
	return func(e *Element) {
		e.SetProp(name, value)
	}
}

// WithProps sets every property in props.
func WithProps(props map[string]any) Option {
	return func(e *Element) {
		for k, v := range props {
			e.SetProp(k, v)
		}
	}
}

// WithChildren appends children.
func WithChildren(children ...*Element) Option {
	return func(e *Element) {
		e.AddChild(children...)
	}
}

// --- Text Options ---

// WithText sets the text property.
func WithText(text string) Option {
	return WithProp(PropText, text)
}

// WithFontSize sets the font size used by text estimators.
func WithFontSize(size float64) Option {
	return WithProp(PropFontSize, size)
}

// --- Dimension Options ---

// WithSize sets both preferred dimensions.
func WithSize(width, height float64) Option {
	return func(e *Element) {
		e.SetProp(PropPreferredWidth, width)
		e.SetProp(PropPreferredHeight, height)
	}
}

// WithWidth sets the preferred width.
func WithWidth(width float64) Option {
	return WithProp(PropPreferredWidth, width)
}

// WithHeight sets the preferred height.
func WithHeight(height float64) Option {
	return WithProp(PropPreferredHeight, height)
}

// WithMinSize sets the minimum width and height.
func WithMinSize(width, height float64) Option {
	return func(e *Element) {
		e.SetProp(PropMinWidth, width)
		e.SetProp(PropMinHeight, height)
	}
}

// WithMaxSize sets the maximum width and height.
func WithMaxSize(width, height float64) Option {
	return func(e *Element) {
		e.SetProp(PropMaxWidth, width)
		e.SetProp(PropMaxHeight, height)
	}
}

// --- Flex Options ---

// WithFlexGrow sets the grow weight. Positive weights make the element
// flexible.
func WithFlexGrow(grow float64) Option {
	return WithProp(PropFlexGrow, grow)
}

// WithJustify sets main-axis distribution for a stack.
func WithJustify(j Justify) Option {
	return WithProp(PropJustify, j.String())
}

// WithAlign sets cross-axis alignment for a container's children.
func WithAlign(a Align) Option {
	return WithProp(PropAlign, a.String())
}

// WithAlignSelf overrides the parent's alignment for this element.
func WithAlignSelf(a Align) Option {
	return WithProp(PropAlignSelf, a.String())
}

// WithSpacing sets the gap between adjacent stack children.
func WithSpacing(spacing float64) Option {
	return WithProp(PropSpacing, spacing)
}

// WithEqualSpacing spreads free space evenly between stack children.
func WithEqualSpacing() Option {
	return WithProp(PropEqualSpacing, true)
}

// --- Spacing Options ---

// WithPadding sets equal padding on all sides.
func WithPadding(n float64) Option {
	return WithProp(PropPadding, n)
}

// WithPaddingTRBL sets padding following CSS order.
func WithPaddingTRBL(t, r, b, l float64) Option {
	return func(e *Element) {
		e.SetProp(PropPaddingTop, t)
		e.SetProp(PropPaddingRight, r)
		e.SetProp(PropPaddingBottom, b)
		e.SetProp(PropPaddingLeft, l)
	}
}

// --- Scroll Options ---

// WithScrollOffset sets the content offset of a scroll container.
func WithScrollOffset(x, y float64) Option {
	return func(e *Element) {
		e.SetProp(PropScrollX, x)
		e.SetProp(PropScrollY, y)
	}
}

// WithClip requests clipping of the element's content.
func WithClip() Option {
	return WithProp(PropClip, true)
}

// --- Constructors ---

// VStack creates a vertical stack.
func VStack(opts ...Option) *Element {
	return New(TypeStackVertical, opts...)
}

// HStack creates a horizontal stack.
func HStack(opts ...Option) *Element {
	return New(TypeStackHorizontal, opts...)
}

// Overlay creates an overlay container.
func Overlay(opts ...Option) *Element {
	return New(TypeOverlay, opts...)
}

// Scroll creates a scroll container.
func Scroll(opts ...Option) *Element {
	return New(TypeScroll, opts...)
}

// Text creates a text leaf.
func Text(text string, opts ...Option) *Element {
	return New(TypeText, append([]Option{WithText(text)}, opts...)...)
}

// Button creates a button leaf.
func Button(label string, opts ...Option) *Element {
	return New(TypeButton, append([]Option{WithText(label)}, opts...)...)
}

// Image creates an image leaf.
func Image(opts ...Option) *Element {
	return New(TypeImage, opts...)
}

// Spacer creates a spacer. Without WithFlexGrow it is a fixed child that
// measures zero.
func Spacer(opts ...Option) *Element {
	return New(TypeSpacer, opts...)
}

// Divider creates a divider.
func Divider(opts ...Option) *Element {
	return New(TypeDivider, opts...)
}
