package border

import (
	"fmt"
	"strings"

	"github.com/young1lin/cellgrid/internal/render"
)

// CellBorder is the four-sided frame of a rectangle. Height and Width count
// the frame itself, so the interior is (Height-2) x (Width-2).
type CellBorder struct {
	left   Border
	right  Border
	top    Border
	bottom Border

	height int
	width  int
}

// NewCellBorder assembles a frame from its edges. It panics when opposite
// edges disagree in length.
func NewCellBorder(left, right, top, bottom Border) CellBorder {
	if left.Len() != right.Len() || top.Len() != bottom.Len() {
		panic(fmt.Sprintf("CellBorder: inconsistent border length. Top: %d, bottom: %d, left: %d, right: %d",
			top.Len(), bottom.Len(), left.Len(), right.Len()))
	}
	return CellBorder{
		left:   left,
		right:  right,
		top:    top,
		bottom: bottom,
		height: left.Len(),
		width:  top.Len(),
	}
}

// Atomic returns a plain frame drawn with a single weight
func Atomic(height, width int, w Weight) CellBorder {
	return NewCellBorder(
		DefaultLeft(height, w),
		DefaultRight(height, w),
		DefaultTop(width, w),
		DefaultBottom(width, w),
	)
}

// Height returns the frame height, borders included
func (c CellBorder) Height() int { return c.height }

// Width returns the frame width, borders included
func (c CellBorder) Width() int { return c.width }

// Left returns the left edge
func (c CellBorder) Left() Border { return c.left }

// Right returns the right edge
func (c CellBorder) Right() Border { return c.right }

// Top returns the top edge
func (c CellBorder) Top() Border { return c.top }

// Bottom returns the bottom edge
func (c CellBorder) Bottom() Border { return c.bottom }

// CheckSize reports whether the frame has the given outer size
func (c CellBorder) CheckSize(height, width int) bool {
	return c.height == height && c.width == width
}

// AddHorizontal places other to the right of c. It returns the merged frame
// and the separator: the shared vertical edge drawn between the two.
func (c CellBorder) AddHorizontal(other CellBorder) (CellBorder, Border) {
	merged := NewCellBorder(
		c.left,
		other.right,
		c.top.AddAfter(other.top),
		c.bottom.AddAfter(other.bottom),
	)
	return merged, c.right.Combine(other.left)
}

// AddVertical places other below c. It returns the merged frame and the
// shared horizontal edge drawn between the two.
func (c CellBorder) AddVertical(other CellBorder) (CellBorder, Border) {
	merged := NewCellBorder(
		c.left.AddAfter(other.left),
		c.right.AddAfter(other.right),
		c.top,
		other.bottom,
	)
	return merged, c.bottom.Combine(other.top)
}

// Combine overlays two frames of the same size edge by edge
func (c CellBorder) Combine(other CellBorder) CellBorder {
	if c.height != other.height || c.width != other.width {
		panic(fmt.Sprintf("CellBorder: cannot combine cells of different size. Self: height %d, width %d. Other: height %d, width %d",
			c.height, c.width, other.height, other.width))
	}
	return NewCellBorder(
		c.left.Combine(other.left),
		c.right.Combine(other.right),
		c.top.Combine(other.top),
		c.bottom.Combine(other.bottom),
	)
}

// RenderView frames the given interior lines. The lines must fill the
// interior exactly.
func (c CellBorder) RenderView(lines []string) []string {
	if len(lines) != c.height-2 {
		panic(fmt.Sprintf("CellBorder: incorrect text height. Expected %d, actual %d", c.height-2, len(lines)))
	}

	left := []rune(c.left.Render(Vertical))
	right := []rune(c.right.Render(Vertical))

	view := make([]string, 0, c.height)
	view = append(view, c.top.Render(Horizontal))
	for i, line := range lines {
		if w := render.Measure(line); w != c.width-2 {
			panic(fmt.Sprintf("CellBorder: incorrect text width at line #%d. Expected %d, actual %d", i, c.width-2, w))
		}
		// The first character of each vertical edge belongs to the top rule.
		view = append(view, string(left[i+1])+line+string(right[i+1]))
	}
	view = append(view, c.bottom.Render(Horizontal))
	return view
}

// RenderEmpty frames a blank interior
func (c CellBorder) RenderEmpty() []string {
	lines := make([]string, c.height-2)
	for i := range lines {
		lines[i] = strings.Repeat(" ", c.width-2)
	}
	return c.RenderView(lines)
}
