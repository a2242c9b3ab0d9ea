package cells

import (
	"fmt"
	"io"

	"github.com/young1lin/cellgrid/internal/layout"
)

// Table owns a cell tree and the grid it is drawn against
type Table struct {
	root    Cell
	maxSpan int
	maxSize int
	grid    *layout.Grid
}

// TableOption configures a Table
type TableOption func(*Table)

// WithMaxSpan caps the number of grid rows and columns the tree may expand
// to. Values of zero or less select layout.DefaultMaxSpan.
func WithMaxSpan(n int) TableOption {
	return func(t *Table) {
		t.maxSpan = n
	}
}

// WithMaxSize caps the rendered height and width in character cells. Values
// of zero or less select layout.DefaultMaxSize.
func WithMaxSize(n int) TableOption {
	return func(t *Table) {
		t.maxSize = n
	}
}

// NewTable wraps a root cell
func NewTable(root Cell, opts ...TableOption) *Table {
	t := &Table{root: root}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Root returns the root cell
func (t *Table) Root() Cell {
	return t.root
}

// Layout runs both fixup passes once and returns the sized grid. Later calls
// return the same grid.
func (t *Table) Layout() (*layout.Grid, error) {
	if t.grid != nil {
		return t.grid, nil
	}

	cfg := t.root.Config()
	grid, err := layout.NewGrid(cfg, t.maxSpan)
	if err != nil {
		Logger().Warn("span limit exceeded", "rows", cfg.SpanHeight, "cols", cfg.SpanWidth)
		return nil, err
	}
	t.root.FixupConfig(1, 1)
	t.root.FixupGrid(grid.Slice())
	if err := grid.CheckSize(t.maxSize); err != nil {
		size := grid.Size()
		Logger().Warn("size limit exceeded", "height", size.Height, "width", size.Width)
		return nil, err
	}
	t.grid = grid

	Logger().Debug("layout complete", "heights", t.grid.Heights, "widths", t.grid.Widths)
	return t.grid, nil
}

// Render lays the table out and returns its rows, ready to print
func (t *Table) Render() ([]string, error) {
	grid, err := t.Layout()
	if err != nil {
		return nil, fmt.Errorf("failed to lay out table: %w", err)
	}
	return t.root.Draw(grid.Slice()).Complete(), nil
}

// Print writes the rendered table to w, one row per line
func (t *Table) Print(w io.Writer) error {
	lines, err := t.Render()
	if err != nil {
		return err
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("failed to write table: %w", err)
		}
	}
	return nil
}
