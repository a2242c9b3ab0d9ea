package cells

import (
	"strings"

	"github.com/young1lin/cellgrid/internal/border"
	"github.com/young1lin/cellgrid/internal/layout"
	"github.com/young1lin/cellgrid/internal/render"
)

// Row places its children side by side
type Row struct {
	cfg      *layout.Config
	children []Cell
}

// NewRow creates a row. Span properties are ignored: a row spans the sum of
// its children's columns and the least common multiple of their rows. It
// panics without children.
func NewRow(p layout.Properties, children ...Cell) *Row {
	if len(children) == 0 {
		panic("Row: at least one child is required")
	}
	cfg := layout.NewConfig(p)
	cfg.StackHorizontal(configs(children))
	return &Row{cfg: cfg, children: children}
}

// Children returns the row's cells from left to right
func (r *Row) Children() []Cell {
	return r.children
}

func (r *Row) Config() *layout.Config {
	return r.cfg
}

func (r *Row) FixupConfig(rows, cols int) {
	r.cfg.Scale(rows, cols)
	for _, child := range r.children {
		child.FixupConfig(r.cfg.SpanHeight/child.Config().SpanHeight, cols)
	}
}

func (r *Row) FixupGrid(s layout.Slice) {
	offset := 0
	for _, child := range r.children {
		n := child.Config().SpanWidth
		child.FixupGrid(s.Cols(offset, n))
		offset += n
	}
	s.Fit(r.cfg.Bounds.Required())
}

// Draw joins the children's views left to right. Children that would run
// past the row's width are dropped and the gap is left blank.
func (r *Row) Draw(s layout.Slice) View {
	size := s.Interior()
	lines := make([]strings.Builder, size.Height)

	var total border.CellBorder
	width, offset := 0, 0
	for i, child := range r.children {
		n := child.Config().SpanWidth
		view := child.Draw(s.Cols(offset, n))
		offset += n

		childWidth := view.Border().Width() - 2
		if i == 0 {
			total = view.Border()
			for j, line := range view.Lines() {
				lines[j].WriteString(line)
			}
			width = childWidth
			continue
		}
		if width+1+childWidth > size.Width {
			Logger().Info("row truncated", "drawn", i, "children", len(r.children))
			break
		}

		var sep border.Border
		total, sep = total.AddHorizontal(view.Border())
		column := []rune(sep.Render(border.Vertical))
		for j, line := range view.Lines() {
			lines[j].WriteRune(column[j+1])
			lines[j].WriteString(line)
		}
		width += 1 + childWidth
	}

	if rem := size.Width - width; rem > 0 {
		var sep border.Border
		total, sep = total.AddHorizontal(border.Atomic(size.Height+2, rem+1, border.None))
		column := []rune(sep.Render(border.Vertical))
		for j := range lines {
			lines[j].WriteRune(column[j+1])
			lines[j].WriteString(render.Blank(rem - 1))
		}
	}

	out := make([]string, len(lines))
	for j := range lines {
		out[j] = lines[j].String()
	}
	outer := border.Atomic(size.Height+2, size.Width+2, r.cfg.Border)
	return NewView(out, total.Combine(outer))
}

func (r *Row) cell() {}
