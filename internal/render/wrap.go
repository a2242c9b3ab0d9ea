package render

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/olekukonko/tablewriter/pkg/twwarp"
)

//go:generate mockgen -source=wrap.go -destination=mock_wrap.go -package=render

// LineBreaker splits text into lines no wider than width display columns
type LineBreaker interface {
	Wrap(text string, width int) []string
}

// raggedPenalty is added for every line that still overflows after breaking
const raggedPenalty = 1e5

// WordWrapper breaks text at spaces into lines of minimal raggedness. A
// paragraph that already fits is returned untouched. Words wider than a line
// are split between characters.
type WordWrapper struct{}

// Wrap implements LineBreaker. A width of zero or less disables wrapping.
func (WordWrapper) Wrap(text string, width int) []string {
	paragraphs := strings.Split(text, "\n")
	if width <= 0 {
		return paragraphs
	}

	var lines []string
	for _, para := range paragraphs {
		lines = append(lines, wrapParagraph(para, width)...)
	}
	return lines
}

func wrapParagraph(para string, width int) []string {
	if Measure(para) <= width {
		return []string{para}
	}

	words := splitWords(para, width)
	if len(words) == 0 {
		return []string{""}
	}

	// WrapWords cannot place a word wider than its limit.
	limit := width
	for _, w := range words {
		if n := Measure(w); n > limit {
			limit = n
		}
	}

	var lines []string
	for _, group := range twwarp.WrapWords(words, 1, limit, raggedPenalty) {
		line := strings.Join(group, " ")
		if len(lines) > 0 {
			line = strings.TrimLeft(line, " ")
		}
		for Measure(line) > width {
			head, rest := splitAt(line, width)
			if rest == "" {
				break
			}
			lines = append(lines, head)
			line = strings.TrimLeft(rest, " ")
		}
		lines = append(lines, line)
	}
	return lines
}

// splitWords cuts a paragraph at single spaces. Any further spaces of a run
// stay in front of the next word, so joining words with one space restores
// the original spacing. Words wider than width are cut into pieces.
func splitWords(para string, width int) []string {
	var words []string
	pending := 0
	for _, field := range strings.Split(para, " ") {
		if field == "" {
			pending++
			continue
		}
		word := strings.Repeat(" ", pending) + field
		pending = 0
		if Measure(word) <= width {
			words = append(words, word)
			continue
		}
		for Measure(field) > width {
			head, rest := splitAt(field, width)
			if rest == "" {
				break
			}
			words = append(words, head)
			field = rest
		}
		words = append(words, field)
	}
	return words
}

// splitAt cuts s after the last character that fits within width. At least
// one character is always taken so wrapping makes progress.
func splitAt(s string, width int) (string, string) {
	taken := 0
	used := 0
	for i, r := range s {
		rw := runewidth.RuneWidth(r)
		if used+rw > width && i > 0 {
			break
		}
		used += rw
		taken = i + len(string(r))
	}
	return s[:taken], s[taken:]
}
