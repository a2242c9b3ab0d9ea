package layout

import (
	"fmt"
	"strings"

	"github.com/young1lin/cellgrid/internal/border"
	"github.com/young1lin/cellgrid/internal/render"
)

// Alignment is the horizontal placement of text inside a cell
type Alignment int

const (
	// AlignDefault aligns wrapped text left and single lines centered
	AlignDefault Alignment = iota
	AlignLeft
	AlignCenter
	AlignRight
)

var alignmentNames = [...]string{"default", "left", "center", "right"}

func (a Alignment) String() string {
	if a < 0 || int(a) >= len(alignmentNames) {
		return fmt.Sprintf("Alignment(%d)", int(a))
	}
	return alignmentNames[a]
}

// ParseAlignment parses an alignment name, ignoring case
func ParseAlignment(s string) (Alignment, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "centre" {
		return AlignCenter, nil
	}
	for i, n := range alignmentNames {
		if n == name {
			return Alignment(i), nil
		}
	}
	return AlignDefault, fmt.Errorf("unknown alignment %q (expected default, left, center or right)", s)
}

// MarshalText implements encoding.TextMarshaler
func (a Alignment) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (a *Alignment) UnmarshalText(text []byte) error {
	parsed, err := ParseAlignment(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Resolve picks the concrete alignment for a block of the given line count
func (a Alignment) Resolve(lines int) render.Align {
	switch a {
	case AlignLeft:
		return render.AlignLeft
	case AlignRight:
		return render.AlignRight
	case AlignCenter:
		return render.AlignCenter
	}
	if lines > 1 {
		return render.AlignLeft
	}
	return render.AlignCenter
}

// Properties are the user-facing settings of a cell. Zero values mean "not
// set": no border, default alignment, no padding, no preferred size and a
// span of one.
type Properties struct {
	Border    border.Weight
	Alignment Alignment
	Padding   int

	// Height and Width are the preferred interior size
	Height int
	Width  int

	// SpanHeight and SpanWidth only apply to text cells. Composites derive
	// their span from their children.
	SpanHeight int
	SpanWidth  int
}

// Config is the per-cell layout state. Bounds and spans are filled in while
// the tree is built and rewritten by the two fixup passes.
type Config struct {
	Border    border.Weight
	Alignment Alignment
	Padding   int

	Bounds     Bounds
	SpanHeight int
	SpanWidth  int
}

// NewConfig turns properties into a fresh config. Every cell needs at least
// room for its own frame, and the preferred size counts one border line.
func NewConfig(p Properties) *Config {
	return &Config{
		Border:    p.Border,
		Alignment: p.Alignment,
		Padding:   clampSize(p.Padding),
		Bounds: Bounds{
			Min: Bound{Height: 2, Width: 2},
			Rec: Bound{Height: clampSize(p.Height) + 1, Width: clampSize(p.Width) + 1},
		},
		SpanHeight: max(p.SpanHeight, 1),
		SpanWidth:  max(p.SpanWidth, 1),
	}
}

// clampSize keeps preferred sizes inside the range bound arithmetic can sum
// without overflowing.
func clampSize(n int) int {
	return min(max(n, 0), spanLimit)
}

// Include widens the bounds to cover b
func (c *Config) Include(b Bounds) {
	c.Bounds = c.Bounds.Max(b)
}

// Scale multiplies the span by the given row and column ratios
func (c *Config) Scale(rows, cols int) {
	c.SpanHeight *= rows
	c.SpanWidth *= cols
}

// StackVertical derives c from children placed one above another: heights
// add up, widths are reconciled to their least common multiple.
func (c *Config) StackVertical(children []*Config) {
	mins := make([]Bound, len(children))
	recs := make([]Bound, len(children))
	height, width := 0, 1
	for i, child := range children {
		mins[i] = child.Bounds.Min
		recs[i] = child.Bounds.Rec
		height = addSpan(height, child.SpanHeight)
		width = lcm(width, child.SpanWidth)
	}
	c.SpanHeight, c.SpanWidth = max(height, 1), width
	c.Include(Bounds{Min: StackVertical(mins...), Rec: StackVertical(recs...)})
}

// StackHorizontal is StackVertical for children placed side by side
func (c *Config) StackHorizontal(children []*Config) {
	mins := make([]Bound, len(children))
	recs := make([]Bound, len(children))
	height, width := 1, 0
	for i, child := range children {
		mins[i] = child.Bounds.Min
		recs[i] = child.Bounds.Rec
		height = lcm(height, child.SpanHeight)
		width = addSpan(width, child.SpanWidth)
	}
	c.SpanHeight, c.SpanWidth = height, max(width, 1)
	c.Include(Bounds{Min: StackHorizontal(mins...), Rec: StackHorizontal(recs...)})
}
