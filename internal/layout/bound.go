// Package layout holds the size model shared by every cell: bounds, spans,
// per-cell configuration and the backing grid the cell tree is drawn against.
package layout

// Bound is a size in character cells
type Bound struct {
	Height int
	Width  int
}

// Max returns the componentwise maximum of two bounds
func (b Bound) Max(o Bound) Bound {
	return Bound{Height: max(b.Height, o.Height), Width: max(b.Width, o.Width)}
}

// StackVertical returns the size of bounds placed one above another
func StackVertical(bounds ...Bound) Bound {
	var out Bound
	for _, b := range bounds {
		out.Height += b.Height
		out.Width = max(out.Width, b.Width)
	}
	return out
}

// StackHorizontal returns the size of bounds placed side by side
func StackHorizontal(bounds ...Bound) Bound {
	var out Bound
	for _, b := range bounds {
		out.Height = max(out.Height, b.Height)
		out.Width += b.Width
	}
	return out
}

// Bounds pairs the smallest renderable size with the preferred one
type Bounds struct {
	Min Bound
	Rec Bound
}

// Max widens both bounds to cover o
func (b Bounds) Max(o Bounds) Bounds {
	return Bounds{Min: b.Min.Max(o.Min), Rec: b.Rec.Max(o.Rec)}
}

// Required is the size a cell asks the grid for
func (b Bounds) Required() Bound {
	return b.Rec.Max(b.Min)
}
