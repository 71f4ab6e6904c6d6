package area

// Builder describes a window with optional X, Y, Width and Height. The zero
// Builder covers the full extent of whatever owner it is completed against.
type Builder struct {
	x, y          uint32
	width, height uint32

	hasWidth, hasHeight bool
}

// New returns an empty Builder.
func New() Builder {
	return Builder{}
}

// X sets the horizontal offset.
func (b Builder) X(x uint32) Builder {
	b.x = x
	return b
}

// Y sets the vertical offset.
func (b Builder) Y(y uint32) Builder {
	b.y = y
	return b
}

// Width sets the width.
func (b Builder) Width(width uint32) Builder {
	b.width = width
	b.hasWidth = true
	return b
}

// Height sets the height.
func (b Builder) Height(height uint32) Builder {
	b.height = height
	b.hasHeight = true
	return b
}

// Complete resolves the builder against owner. Unset width and height
// default to the space remaining from the offset to the owner's edge.
//
// The result is not bounds checked; callers use Within.
func (b Builder) Complete(owner Area) Area {
	a := Area{X: b.x, Y: b.y, Width: b.width, Height: b.height}

	if !b.hasWidth {
		a.Width = remaining(owner.Width, b.x)
	}
	if !b.hasHeight {
		a.Height = remaining(owner.Height, b.y)
	}

	return a
}

func remaining(size, offset uint32) uint32 {
	if offset >= size {
		return 0
	}
	return size - offset
}

// Builder returns a Builder with every field of a set.
func (a Area) Builder() Builder {
	return New().X(a.X).Y(a.Y).Width(a.Width).Height(a.Height)
}
