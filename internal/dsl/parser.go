// Package dsl parses the cellgrid layout language and builds cell trees from
// it.
//
//	cellgrid 1.0
//	col [border=heavy] {
//	  row {
//	    text "Name" [padding=1]
//	    text "Value" [align=right]
//	  }
//	  text "footer"
//	}
package dsl

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var (
	dslLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
		{Name: "LineComment", Pattern: `//[^\n]*`},
		{Name: "HashComment", Pattern: `#[^\n]*`},
		{Name: "Number", Pattern: `\d+(?:\.\d+)*`},
		{Name: "String", Pattern: `"(?:\\.|[^"])*"`},
		{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_-]*`},
		{Name: "Punct", Pattern: `[][{}=]`},
	})

	documentParser = participle.MustBuild[Document](
		participle.Lexer(dslLexer),
		participle.Elide("Whitespace", "LineComment", "HashComment"),
	)
)

// Document is the root of a layout file
type Document struct {
	Pos     lexer.Position `parser:""`
	Version string         `parser:"'cellgrid' @Number"`
	Root    *Node          `parser:"@@"`
}

// Node is one cell of the layout
type Node struct {
	Pos   lexer.Position `parser:""`
	Text  *TextNode      `parser:"  'text' @@"`
	Row   *Group         `parser:"| 'row' @@"`
	Col   *Group         `parser:"| 'col' @@"`
	Table *Group         `parser:"| 'table' @@"`
}

// Kind returns the keyword the node was written with
func (n *Node) Kind() string {
	switch {
	case n == nil:
		return "unknown"
	case n.Text != nil:
		return "text"
	case n.Row != nil:
		return "row"
	case n.Col != nil:
		return "col"
	case n.Table != nil:
		return "table"
	default:
		return "unknown"
	}
}

// TextNode is a text leaf
type TextNode struct {
	Value StringLiteral `parser:"@String"`
	Props []*Property   `parser:"( '[' @@* ']' )?"`
}

// Group is a row, column or table with its children
type Group struct {
	Props    []*Property `parser:"( '[' @@* ']' )?"`
	Children []*Node     `parser:"'{' @@+ '}'"`
}

// Property is a key=value setting
type Property struct {
	Pos   lexer.Position `parser:""`
	Key   string         `parser:"@Ident '='"`
	Value *Value         `parser:"@@"`
}

// Value is a property value: a bare word, a number or a quoted string
type Value struct {
	Quoted *StringLiteral `parser:"  @String"`
	Word   *string        `parser:"| @(Ident | Number)"`
}

// Text returns the value with any quotes removed
func (v *Value) Text() string {
	if v.Quoted != nil {
		return string(*v.Quoted)
	}
	if v.Word != nil {
		return *v.Word
	}
	return ""
}

// StringLiteral unquotes Go-style strings on capture
type StringLiteral string

// Capture implements participle.Capture
func (s *StringLiteral) Capture(values []string) error {
	if len(values) == 0 {
		return fmt.Errorf("string literal capture requires value")
	}
	val, err := strconv.Unquote(values[0])
	if err != nil {
		return err
	}
	*s = StringLiteral(val)
	return nil
}

// Parse parses a layout from r. The filename is only used in positions.
func Parse(filename string, r io.Reader) (*Document, error) {
	return documentParser.Parse(filename, r)
}

// ParseString parses a layout held in memory
func ParseString(input string) (*Document, error) {
	return documentParser.ParseString("", input)
}

// Load parses the layout file at path
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open layout: %w", err)
	}
	defer f.Close()

	doc, err := Parse(path, f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse layout: %w", err)
	}
	return doc, nil
}
