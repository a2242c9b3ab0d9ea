// Package cells builds and draws trees of text cells, rows and columns.
//
// Drawing happens in three steps driven by Table. FixupConfig walks the tree
// top-down and scales every span so siblings share one grid resolution.
// FixupGrid walks it bottom-up and grows the grid until every cell fits.
// Draw then renders each cell against its own slice of the grid and merges
// sibling borders into their parent's frame.
package cells

import (
	"fmt"

	"github.com/young1lin/cellgrid/internal/border"
	"github.com/young1lin/cellgrid/internal/layout"
	"github.com/young1lin/cellgrid/internal/render"
)

// Cell is a node of the cell tree. The set of implementations is closed:
// TextCell, Row and Col.
type Cell interface {
	// Config returns the cell's layout state
	Config() *layout.Config
	// FixupConfig multiplies the cell's span by the given ratios and
	// propagates matching ratios to its children.
	FixupConfig(rows, cols int)
	// FixupGrid grows the cell's slice of the grid to the cell's size
	FixupGrid(s layout.Slice)
	// Draw renders the cell into the interior of its slice
	Draw(s layout.Slice) View

	cell()
}

// View is a drawn cell: its interior lines and the frame around them.
type View struct {
	lines  []string
	border border.CellBorder
}

// NewView pairs lines with a frame. It panics when the lines do not fill the
// frame's interior exactly.
func NewView(lines []string, b border.CellBorder) View {
	if len(lines) != b.Height()-2 {
		panic(fmt.Sprintf("View: incorrect text height. Expected %d, actual %d", b.Height()-2, len(lines)))
	}
	for i, line := range lines {
		if w := render.Measure(line); w != b.Width()-2 {
			panic(fmt.Sprintf("View: incorrect text width at line #%d. Expected %d, actual %d", i, b.Width()-2, w))
		}
	}
	return View{lines: lines, border: b}
}

// Lines returns the interior lines
func (v View) Lines() []string {
	return v.lines
}

// Border returns the frame
func (v View) Border() border.CellBorder {
	return v.border
}

// Complete renders the frame around the lines
func (v View) Complete() []string {
	return v.border.RenderView(v.lines)
}

func configs(children []Cell) []*layout.Config {
	out := make([]*layout.Config, len(children))
	for i, child := range children {
		out[i] = child.Config()
	}
	return out
}
