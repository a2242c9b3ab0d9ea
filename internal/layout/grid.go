package layout

import (
	"errors"
	"fmt"
)

// DefaultMaxSpan caps the number of grid rows or columns a tree may expand to
const DefaultMaxSpan = 4096

// ErrSpanOverflow is returned when span reconciliation grows the grid past
// the configured cap.
var ErrSpanOverflow = errors.New("span exceeds limit")

// DefaultMaxSize caps the rendered height or width of a table in character
// cells.
const DefaultMaxSize = 4096

// ErrSizeOverflow is returned when a sized grid would draw past the
// configured cap.
var ErrSizeOverflow = errors.New("size exceeds limit")

// Grid is the backing store for a whole cell tree: one height per logical
// row and one width per logical column. Every entry counts the border line in
// front of its content.
type Grid struct {
	Heights []int
	Widths  []int
}

// NewGrid allocates a zeroed grid sized to the root span. A maxSpan of zero
// or less selects DefaultMaxSpan.
func NewGrid(root *Config, maxSpan int) (*Grid, error) {
	if maxSpan <= 0 {
		maxSpan = DefaultMaxSpan
	}
	if root.SpanHeight > maxSpan || root.SpanWidth > maxSpan {
		return nil, fmt.Errorf("%w: %dx%d spans, limit %d", ErrSpanOverflow, root.SpanHeight, root.SpanWidth, maxSpan)
	}
	return &Grid{
		Heights: make([]int, root.SpanHeight),
		Widths:  make([]int, root.SpanWidth),
	}, nil
}

// Size is the drawn size of the grid, closing borders included
func (g *Grid) Size() Bound {
	return Bound{Height: sum(g.Heights) + 1, Width: sum(g.Widths) + 1}
}

// CheckSize reports ErrSizeOverflow when the drawn grid is taller or wider
// than maxSize. A maxSize of zero or less selects DefaultMaxSize.
func (g *Grid) CheckSize(maxSize int) error {
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}
	size := g.Size()
	if size.Height > maxSize || size.Width > maxSize {
		return fmt.Errorf("%w: %dx%d cells, limit %d", ErrSizeOverflow, size.Height, size.Width, maxSize)
	}
	return nil
}

// Slice returns a view of the whole grid
func (g *Grid) Slice() Slice {
	return Slice{Heights: g.Heights, Widths: g.Widths}
}

// Slice is the part of the grid a cell owns. It shares storage with the grid,
// so writes through a slice are seen by every enclosing cell.
type Slice struct {
	Heights []int
	Widths  []int
}

// Rows narrows the slice to n rows starting at offset
func (s Slice) Rows(offset, n int) Slice {
	return Slice{Heights: s.Heights[offset : offset+n], Widths: s.Widths}
}

// Cols narrows the slice to n columns starting at offset
func (s Slice) Cols(offset, n int) Slice {
	return Slice{Heights: s.Heights, Widths: s.Widths[offset : offset+n]}
}

// Interior is the drawable size inside the slice: the entries' total minus
// the leading border line.
func (s Slice) Interior() Bound {
	return Bound{Height: sum(s.Heights) - 1, Width: sum(s.Widths) - 1}
}

// Fit grows the slice until it covers required on both axes
func (s Slice) Fit(required Bound) {
	IncreaseToSize(s.Heights, required.Height)
	IncreaseToSize(s.Widths, required.Width)
}

// IncreaseToSize raises entries so they sum to target, spreading the
// shortfall evenly with the remainder going to the first entries. Entries
// already reaching target are left alone.
func IncreaseToSize(entries []int, target int) {
	current := sum(entries)
	if current >= target || len(entries) == 0 {
		return
	}
	shortfall := target - current
	each, extra := shortfall/len(entries), shortfall%len(entries)
	for i := range entries {
		entries[i] += each
		if i < extra {
			entries[i]++
		}
	}
}

func sum(entries []int) int {
	total := 0
	for _, e := range entries {
		total += e
	}
	return total
}
