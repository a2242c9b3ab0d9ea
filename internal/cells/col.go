package cells

import (
	"github.com/young1lin/cellgrid/internal/border"
	"github.com/young1lin/cellgrid/internal/layout"
	"github.com/young1lin/cellgrid/internal/render"
)

// Col stacks its children top to bottom
type Col struct {
	cfg      *layout.Config
	children []Cell
}

// NewCol creates a column. Span properties are ignored: a column spans the
// sum of its children's rows and the least common multiple of their columns.
// It panics without children.
func NewCol(p layout.Properties, children ...Cell) *Col {
	if len(children) == 0 {
		panic("Col: at least one child is required")
	}
	cfg := layout.NewConfig(p)
	cfg.StackVertical(configs(children))
	return &Col{cfg: cfg, children: children}
}

// Children returns the column's cells from top to bottom
func (c *Col) Children() []Cell {
	return c.children
}

func (c *Col) Config() *layout.Config {
	return c.cfg
}

func (c *Col) FixupConfig(rows, cols int) {
	c.cfg.Scale(rows, cols)
	for _, child := range c.children {
		child.FixupConfig(rows, c.cfg.SpanWidth/child.Config().SpanWidth)
	}
}

func (c *Col) FixupGrid(s layout.Slice) {
	offset := 0
	for _, child := range c.children {
		n := child.Config().SpanHeight
		child.FixupGrid(s.Rows(offset, n))
		offset += n
	}
	s.Fit(c.cfg.Bounds.Required())
}

// Draw joins the children's views top to bottom. Drawing stops at the first
// child that would run past the column's height; the rest of the column is
// left blank.
func (c *Col) Draw(s layout.Slice) View {
	size := s.Interior()
	lines := make([]string, 0, size.Height)

	var total border.CellBorder
	offset := 0
	for i, child := range c.children {
		n := child.Config().SpanHeight
		view := child.Draw(s.Rows(offset, n))
		offset += n

		if i == 0 {
			total = view.Border()
			lines = append(lines, view.Lines()...)
			continue
		}
		if len(lines)+1+len(view.Lines()) > size.Height {
			Logger().Info("column truncated", "drawn", i, "children", len(c.children))
			break
		}

		var sep border.Border
		total, sep = total.AddVertical(view.Border())
		lines = append(lines, inner(sep.Render(border.Horizontal)))
		lines = append(lines, view.Lines()...)
	}

	if rem := size.Height - len(lines); rem > 0 {
		var sep border.Border
		total, sep = total.AddVertical(border.Atomic(rem+1, size.Width+2, border.None))
		lines = append(lines, inner(sep.Render(border.Horizontal)))
		blank := render.Blank(size.Width)
		for i := 1; i < rem; i++ {
			lines = append(lines, blank)
		}
	}

	outer := border.Atomic(size.Height+2, size.Width+2, c.cfg.Border)
	return NewView(lines, total.Combine(outer))
}

func (c *Col) cell() {}

// inner drops the two corner characters of a rendered rule
func inner(rule string) string {
	r := []rune(rule)
	return string(r[1 : len(r)-1])
}
