// Package border implements the line-weight algebra and the composition of
// box-drawing borders.
package border

import (
	"fmt"
	"strings"
)

// Weight is the visual thickness of a border segment.
type Weight uint8

const (
	None Weight = iota
	Light
	Heavy
	Block
)

var weightNames = [...]string{
	None:  "none",
	Light: "light",
	Heavy: "heavy",
	Block: "block",
}

// Combine returns the dominant of two weights. Block wins over everything,
// None is the identity.
func (w Weight) Combine(other Weight) Weight {
	if other > w {
		return other
	}
	return w
}

// String returns the lower-case name of the weight
func (w Weight) String() string {
	if int(w) < len(weightNames) {
		return weightNames[w]
	}
	return fmt.Sprintf("Weight(%d)", w)
}

// ParseWeight parses a weight name, case-insensitively
func ParseWeight(s string) (Weight, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range weightNames {
		if n == name {
			return Weight(i), nil
		}
	}
	return None, fmt.Errorf("unknown border weight %q (want none, light, heavy or block)", s)
}

// MarshalText implements encoding.TextMarshaler
func (w Weight) MarshalText() ([]byte, error) {
	return []byte(w.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler so weights can be read
// straight from configuration files.
func (w *Weight) UnmarshalText(text []byte) error {
	parsed, err := ParseWeight(string(text))
	if err != nil {
		return err
	}
	*w = parsed
	return nil
}

// glyphs maps four weights meeting at a point to a box-drawing character.
// Index: ((right*4 + bottom)*4 + top)*4 + left.
// Columns are grouped by top (N, L, H, B), each group by left (N, L, H, B).
var glyphs = [256]rune{
	/* right:N down:N */ ' ', '╴', '╸', '█', '╵', '┘', '┙', '█', '╹', '┚', '┛', '█', '█', '█', '█', '█',
	/* right:N down:L */ '╷', '┐', '┑', '█', '│', '┤', '┥', '█', '╿', '┦', '┩', '█', '█', '█', '█', '█',
	/* right:N down:H */ '╻', '┒', '┓', '█', '╽', '┧', '┪', '█', '┃', '┨', '┫', '█', '█', '█', '█', '█',
	/* right:N down:B */ '█', '█', '█', '█', '█', '█', '█', '█', '█', '█', '█', '█', '█', '█', '█', '█',
	/* right:L down:N */ '╶', '─', '╾', '█', '└', '┴', '┵', '█', '┖', '┸', '┹', '█', '█', '█', '█', '█',
	/* right:L down:L */ '┌', '┬', '┭', '█', '├', '┼', '┽', '█', '┞', '╀', '╃', '█', '█', '█', '█', '█',
	/* right:L down:H */ '┎', '┰', '┱', '█', '┟', '╁', '╅', '█', '┠', '╂', '╉', '█', '█', '█', '█', '█',
	/* right:L down:B */ '█', '█', '█', '█', '█', '█', '█', '█', '█', '█', '█', '█', '█', '█', '█', '█',
	/* right:H down:N */ '╺', '╼', '━', '█', '┕', '┶', '┷', '█', '┗', '┺', '┻', '█', '█', '█', '█', '█',
	/* right:H down:L */ '┍', '┮', '┯', '█', '┝', '┾', '┿', '█', '┡', '╄', '╇', '█', '█', '█', '█', '█',
	/* right:H down:H */ '┏', '┲', '┳', '█', '┢', '╆', '╈', '█', '┣', '╊', '╋', '█', '█', '█', '█', '█',
	/* right:H down:B */ '█', '█', '█', '█', '█', '█', '█', '█', '█', '█', '█', '█', '█', '█', '█', '█',
	/* right:B down:N */ '█', '█', '█', '█', '█', '█', '█', '█', '█', '█', '█', '█', '█', '█', '█', '█',
	/* right:B down:L */ '█', '█', '█', '█', '█', '█', '█', '█', '█', '█', '█', '█', '█', '█', '█', '█',
	/* right:B down:H */ '█', '█', '█', '█', '█', '█', '█', '█', '█', '█', '█', '█', '█', '█', '█', '█',
	/* right:B down:B */ '█', '█', '█', '█', '█', '█', '█', '█', '█', '█', '█', '█', '█', '█', '█', '█',
}

// Glyph returns the character drawn where lines of the given weights meet.
// All-None yields a space; any Block yields a solid block.
func Glyph(top, left, bottom, right Weight) rune {
	return glyphs[((int(right&3)*4+int(bottom&3))*4+int(top&3))*4+int(left&3)]
}
