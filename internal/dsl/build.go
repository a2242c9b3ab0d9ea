package dsl

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/young1lin/cellgrid/internal/border"
	"github.com/young1lin/cellgrid/internal/cells"
	"github.com/young1lin/cellgrid/internal/layout"
)

// SupportedVersions is the range of language versions this package reads
const SupportedVersions = "^1.0"

// ErrUnsupportedVersion is returned for documents outside SupportedVersions
var ErrUnsupportedVersion = errors.New("unsupported layout version")

var supported = mustConstraint(SupportedVersions)

func mustConstraint(s string) *semver.Constraints {
	c, err := semver.NewConstraint(s)
	if err != nil {
		panic(fmt.Sprintf("invalid version constraint %q: %v", s, err))
	}
	return c
}

// Defaults are applied to text cells that leave a setting out
type Defaults struct {
	Border    border.Weight
	Alignment layout.Alignment
	Padding   int
	// MaxSize bounds padding, height and width. Zero selects
	// layout.DefaultMaxSize.
	MaxSize int
}

// Error is a problem with a document that parsed but cannot be built
type Error struct {
	Pos lexer.Position
	Msg string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
}

func errorf(pos lexer.Position, format string, args ...any) error {
	return &Error{Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

// CheckVersion reports whether the document's header version is supported
func CheckVersion(doc *Document) error {
	v, err := semver.NewVersion(doc.Version)
	if err != nil {
		return fmt.Errorf("%s: invalid version %q: %w", doc.Pos, doc.Version, err)
	}
	if !supported.Check(v) {
		return fmt.Errorf("%w: %s (supported: %s)", ErrUnsupportedVersion, v, SupportedVersions)
	}
	return nil
}

// Build turns a parsed document into a cell tree
func Build(doc *Document, defaults Defaults) (cells.Cell, error) {
	if err := CheckVersion(doc); err != nil {
		return nil, err
	}
	return buildNode(doc.Root, defaults)
}

// Compile parses and builds a layout held in memory
func Compile(input string, defaults Defaults) (cells.Cell, error) {
	doc, err := ParseString(input)
	if err != nil {
		return nil, fmt.Errorf("failed to parse layout: %w", err)
	}
	return Build(doc, defaults)
}

func buildNode(n *Node, defaults Defaults) (cells.Cell, error) {
	switch {
	case n.Text != nil:
		props := layout.Properties{
			Border:    defaults.Border,
			Alignment: defaults.Alignment,
			Padding:   defaults.Padding,
		}
		if err := applyProperties(&props, n.Text.Props, true, defaults.maxSize()); err != nil {
			return nil, err
		}
		return cells.NewText(string(n.Text.Value), props), nil

	case n.Row != nil:
		props, children, err := buildGroup(n.Row, defaults)
		if err != nil {
			return nil, err
		}
		return cells.NewRow(props, children...), nil

	case n.Col != nil, n.Table != nil:
		g := n.Col
		if g == nil {
			g = n.Table
		}
		props, children, err := buildGroup(g, defaults)
		if err != nil {
			return nil, err
		}
		return cells.NewCol(props, children...), nil
	}
	return nil, errorf(n.Pos, "empty node")
}

func buildGroup(g *Group, defaults Defaults) (layout.Properties, []cells.Cell, error) {
	var props layout.Properties
	if err := applyProperties(&props, g.Props, false, defaults.maxSize()); err != nil {
		return props, nil, err
	}

	children := make([]cells.Cell, 0, len(g.Children))
	for _, child := range g.Children {
		c, err := buildNode(child, defaults)
		if err != nil {
			return props, nil, err
		}
		children = append(children, c)
	}
	return props, children, nil
}

func (d Defaults) maxSize() int {
	if d.MaxSize <= 0 {
		return layout.DefaultMaxSize
	}
	return d.MaxSize
}

func applyProperties(p *layout.Properties, props []*Property, leaf bool, maxSize int) error {
	seen := make(map[string]bool, len(props))
	for _, prop := range props {
		if seen[prop.Key] {
			return errorf(prop.Pos, "duplicate property %q", prop.Key)
		}
		seen[prop.Key] = true

		value := prop.Value.Text()
		switch prop.Key {
		case "border":
			w, err := border.ParseWeight(value)
			if err != nil {
				return errorf(prop.Pos, "%v", err)
			}
			p.Border = w
		case "align":
			a, err := layout.ParseAlignment(value)
			if err != nil {
				return errorf(prop.Pos, "%v", err)
			}
			p.Alignment = a
		case "padding", "height", "width", "span_height", "span_width":
			if !leaf && (prop.Key == "span_height" || prop.Key == "span_width") {
				return errorf(prop.Pos, "%s applies to text cells only", prop.Key)
			}
			n, err := strconv.Atoi(value)
			if err != nil || n < 0 {
				return errorf(prop.Pos, "%s must be a non-negative integer, got %q", prop.Key, value)
			}
			if n > maxSize && !strings.HasPrefix(prop.Key, "span_") {
				return errorf(prop.Pos, "%s must not exceed %d, got %d", prop.Key, maxSize, n)
			}
			setSize(p, prop.Key, n)
		default:
			return errorf(prop.Pos, "unknown property %q", prop.Key)
		}
	}
	return nil
}

func setSize(p *layout.Properties, key string, n int) {
	switch key {
	case "padding":
		p.Padding = n
	case "height":
		p.Height = n
	case "width":
		p.Width = n
	case "span_height":
		p.SpanHeight = n
	case "span_width":
		p.SpanWidth = n
	}
}
