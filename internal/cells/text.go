package cells

import (
	"strings"

	"github.com/young1lin/cellgrid/internal/border"
	"github.com/young1lin/cellgrid/internal/layout"
	"github.com/young1lin/cellgrid/internal/render"
)

// TextCell is a leaf holding a block of text
type TextCell struct {
	text    string
	cfg     *layout.Config
	breaker render.LineBreaker
}

// TextOption configures a TextCell
type TextOption func(*TextCell)

// WithLineBreaker replaces the word wrapper used when drawing
func WithLineBreaker(b render.LineBreaker) TextOption {
	return func(c *TextCell) {
		c.breaker = b
	}
}

// NewText creates a text cell. Tabs become single spaces; explicit line
// breaks are kept. The cell asks for enough room to show every line unwrapped
// plus its padding.
func NewText(text string, p layout.Properties, opts ...TextOption) *TextCell {
	c := &TextCell{
		text:    strings.ReplaceAll(text, "\t", " "),
		cfg:     layout.NewConfig(p),
		breaker: render.WordWrapper{},
	}
	for _, opt := range opts {
		opt(c)
	}

	lines := strings.Split(c.text, "\n")
	widest := 0
	for _, line := range lines {
		widest = max(widest, render.Measure(line))
	}
	pad := 2 * c.cfg.Padding
	c.cfg.Include(layout.Bounds{
		Min: layout.Bound{Height: 2, Width: 2 + pad},
		Rec: layout.Bound{Height: len(lines) + 1, Width: widest + 1 + pad},
	})
	return c
}

// Text returns the cell's text after tab replacement
func (c *TextCell) Text() string {
	return c.text
}

func (c *TextCell) Config() *layout.Config {
	return c.cfg
}

func (c *TextCell) FixupConfig(rows, cols int) {
	c.cfg.Scale(rows, cols)
}

func (c *TextCell) FixupGrid(s layout.Slice) {
	s.Fit(c.cfg.Bounds.Required())
}

// Draw wraps the text to the interior width, aligns every line and centers
// the block vertically. Text that does not fit vertically is cut at the
// bottom.
func (c *TextCell) Draw(s layout.Slice) View {
	size := s.Interior()
	pad := c.cfg.Padding
	margin := render.Blank(pad)

	wrapped := c.breaker.Wrap(c.text, size.Width-2*pad)
	align := c.cfg.Alignment.Resolve(len(wrapped))

	lines := make([]string, 0, size.Height)
	if len(wrapped) > size.Height {
		Logger().Info("text truncated", "lines", len(wrapped), "height", size.Height)
		wrapped = wrapped[:size.Height]
	}
	blank := render.Blank(size.Width)
	before := (size.Height - len(wrapped)) / 2
	for i := 0; i < before; i++ {
		lines = append(lines, blank)
	}
	for _, line := range wrapped {
		lines = append(lines, render.Fit(margin+line+margin, size.Width, align))
	}
	for len(lines) < size.Height {
		lines = append(lines, blank)
	}

	return NewView(lines, border.Atomic(size.Height+2, size.Width+2, c.cfg.Border))
}

func (c *TextCell) cell() {}
