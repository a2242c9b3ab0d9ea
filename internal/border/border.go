package border

import (
	"fmt"
	"strings"
)

// Orientation selects how a border is walked when rendered
type Orientation int

const (
	Vertical Orientation = iota
	Horizontal
)

// Fragment is a run of positions sharing one weight. LeftStart and
// RightStart are the perpendicular weights meeting the fragment at its first
// position; they only affect the glyph drawn there.
type Fragment struct {
	Length     int
	Weight     Weight
	LeftStart  Weight
	RightStart Weight
}

func (f Fragment) hinted() bool {
	return f.LeftStart != None || f.RightStart != None
}

// render draws the fragment given the weight of the line running into it.
func (f Fragment) render(sb *strings.Builder, start Weight, o Orientation) {
	switch o {
	case Vertical:
		sb.WriteRune(Glyph(start, f.LeftStart, f.Weight, f.RightStart))
		body := Glyph(f.Weight, None, f.Weight, None)
		for i := 1; i < f.Length; i++ {
			sb.WriteRune(body)
		}
	case Horizontal:
		sb.WriteRune(Glyph(f.LeftStart, start, f.RightStart, f.Weight))
		body := Glyph(None, f.Weight, None, f.Weight)
		for i := 1; i < f.Length; i++ {
			sb.WriteRune(body)
		}
	}
}

// Border is one edge of a rectangle stored as run-length encoded fragments.
// The zero value is not usable; build borders with the Default* functions.
type Border struct {
	fragments []Fragment
	length    int
}

// newBorder merges every fragment that carries no hints and continues the
// weight of its predecessor, so fragments are always maximal runs.
func newBorder(fragments []Fragment) Border {
	merged := make([]Fragment, 0, len(fragments))
	length := 0
	for _, f := range fragments {
		if f.Length <= 0 {
			panic(fmt.Sprintf("Border: fragment length must be positive, got %d", f.Length))
		}
		length += f.Length
		if n := len(merged); n > 0 && !f.hinted() && merged[n-1].Weight == f.Weight {
			merged[n-1].Length += f.Length
			continue
		}
		merged = append(merged, f)
	}
	return Border{fragments: merged, length: length}
}

// DefaultLeft returns a border of the given length that starts with a corner
// opening towards the right (or downwards, for a horizontal walk).
func DefaultLeft(length int, w Weight) Border {
	checkLength(length)
	return newBorder([]Fragment{
		{Length: length - 1, Weight: w, LeftStart: None, RightStart: w},
		{Length: 1, Weight: None, LeftStart: None, RightStart: w},
	})
}

// DefaultTop is DefaultLeft walked horizontally
func DefaultTop(length int, w Weight) Border {
	return DefaultLeft(length, w)
}

// DefaultRight returns a border of the given length whose corners open
// towards the left (or upwards, for a horizontal walk).
func DefaultRight(length int, w Weight) Border {
	checkLength(length)
	return newBorder([]Fragment{
		{Length: length - 1, Weight: w, LeftStart: w, RightStart: None},
		{Length: 1, Weight: None, LeftStart: w, RightStart: None},
	})
}

// DefaultBottom is DefaultRight walked horizontally
func DefaultBottom(length int, w Weight) Border {
	return DefaultRight(length, w)
}

func checkLength(length int) {
	if length < 2 {
		panic(fmt.Sprintf("Border: length must be at least 2, got %d", length))
	}
}

// Len returns the number of positions covered by the border
func (b Border) Len() int {
	return b.length
}

// Fragments returns a copy of the border's fragments
func (b Border) Fragments() []Fragment {
	return append([]Fragment(nil), b.fragments...)
}

// AddAfter joins other to the end of b. The last position of b and the first
// position of other become one shared junction whose weight and hints are the
// combination of both, so the result has length b.Len()+other.Len()-1.
func (b Border) AddAfter(other Border) Border {
	fragments := make([]Fragment, 0, len(b.fragments)+len(other.fragments))
	fragments = append(fragments, b.fragments...)

	last := fragments[len(fragments)-1]
	fragments = fragments[:len(fragments)-1]
	first := other.fragments[0]

	// Only a single-position fragment carries its hints at the junction.
	left, right := last.LeftStart, last.RightStart
	if last.Length > 1 {
		fragments = append(fragments, Fragment{
			Length:     last.Length - 1,
			Weight:     last.Weight,
			LeftStart:  last.LeftStart,
			RightStart: last.RightStart,
		})
		left, right = None, None
	}

	fragments = append(fragments, Fragment{
		Length:     first.Length,
		Weight:     last.Weight.Combine(first.Weight),
		LeftStart:  left.Combine(first.LeftStart),
		RightStart: right.Combine(first.RightStart),
	})
	fragments = append(fragments, other.fragments[1:]...)

	return newBorder(fragments)
}

// position is the per-character view of a border used while overlaying
type position struct {
	forward Weight
	left    Weight
	right   Weight
}

func (b Border) expand() []position {
	positions := make([]position, 0, b.length)
	for _, f := range b.fragments {
		positions = append(positions, position{forward: f.Weight, left: f.LeftStart, right: f.RightStart})
		for i := 1; i < f.Length; i++ {
			positions = append(positions, position{forward: f.Weight})
		}
	}
	return positions
}

// Combine overlays two borders describing the same physical line, as seen
// from the two cells sharing it. Both must have the same length.
func (b Border) Combine(other Border) Border {
	if b.length != other.length {
		panic(fmt.Sprintf("Border: cannot combine borders of different lengths: %d and %d", b.length, other.length))
	}

	positions := b.expand()
	for i, p := range other.expand() {
		positions[i].forward = positions[i].forward.Combine(p.forward)
		positions[i].left = positions[i].left.Combine(p.left)
		positions[i].right = positions[i].right.Combine(p.right)
	}

	fragments := make([]Fragment, 0, len(b.fragments)+len(other.fragments))
	for _, p := range positions {
		n := len(fragments)
		if n > 0 && p.left == None && p.right == None && p.forward == fragments[n-1].Weight {
			fragments[n-1].Length++
			continue
		}
		fragments = append(fragments, Fragment{Length: 1, Weight: p.forward, LeftStart: p.left, RightStart: p.right})
	}

	return Border{fragments: fragments, length: b.length}
}

// Render draws the border as a string of b.Len() characters
func (b Border) Render(o Orientation) string {
	var sb strings.Builder
	sb.Grow(b.length * 3)
	prev := None
	for _, f := range b.fragments {
		f.render(&sb, prev, o)
		prev = f.Weight
	}
	return sb.String()
}
