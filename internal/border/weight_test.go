package border

import (
	"testing"
)

var allWeights = []Weight{None, Light, Heavy, Block}

func TestCombineAlgebra(t *testing.T) {
	for _, a := range allWeights {
		if got := a.Combine(a); got != a {
			t.Errorf("%v.Combine(%v) = %v, want idempotent", a, a, got)
		}
		if got := a.Combine(None); got != a {
			t.Errorf("%v.Combine(none) = %v, want identity", a, got)
		}
		if got := a.Combine(Block); got != Block {
			t.Errorf("%v.Combine(block) = %v, want block", a, got)
		}
		for _, b := range allWeights {
			if a.Combine(b) != b.Combine(a) {
				t.Errorf("Combine not commutative for %v, %v", a, b)
			}
			for _, c := range allWeights {
				if a.Combine(b).Combine(c) != a.Combine(b.Combine(c)) {
					t.Errorf("Combine not associative for %v, %v, %v", a, b, c)
				}
			}
		}
	}
}

func TestGlyph(t *testing.T) {
	tests := []struct {
		name                     string
		top, left, bottom, right Weight
		want                     rune
	}{
		{"empty", None, None, None, None, ' '},
		{"light horizontal", None, Light, None, Light, '─'},
		{"heavy vertical", Heavy, None, Heavy, None, '┃'},
		{"heavy top-left corner", None, None, Heavy, Heavy, '┏'},
		{"light bottom-right corner", Light, Light, None, None, '┘'},
		{"light cross", Light, Light, Light, Light, '┼'},
		{"heavy cross", Heavy, Heavy, Heavy, Heavy, '╋'},
		{"mixed down tee", Light, Heavy, Heavy, Light, '╅'},
		{"light stub left", None, Light, None, None, '╴'},
		{"heavy tee right", Heavy, None, Heavy, Light, '┠'},
		{"block absorbs", Light, Block, Light, Light, '█'},
		{"block alone", None, None, Block, None, '█'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Glyph(tt.top, tt.left, tt.bottom, tt.right)
			if got != tt.want {
				t.Errorf("Glyph(%v, %v, %v, %v) = %q, want %q", tt.top, tt.left, tt.bottom, tt.right, got, tt.want)
			}
		})
	}
}

func TestGlyphTableShape(t *testing.T) {
	seen := make(map[rune]bool)
	blocks := 0
	for _, top := range allWeights {
		for _, left := range allWeights {
			for _, bottom := range allWeights {
				for _, right := range allWeights {
					g := Glyph(top, left, bottom, right)
					hasBlock := top == Block || left == Block || bottom == Block || right == Block
					if hasBlock {
						if g != '█' {
							t.Errorf("Glyph(%v, %v, %v, %v) = %q, want block", top, left, bottom, right, g)
						}
						blocks++
						continue
					}
					if seen[g] {
						t.Errorf("glyph %q appears for more than one light/heavy combination", g)
					}
					seen[g] = true
				}
			}
		}
	}

	if len(seen) != 81 {
		t.Errorf("got %d distinct light/heavy glyphs, want 81", len(seen))
	}
	if blocks != 175 {
		t.Errorf("got %d block combinations, want 175", blocks)
	}
}

func TestParseWeight(t *testing.T) {
	tests := []struct {
		input   string
		want    Weight
		wantErr bool
	}{
		{"none", None, false},
		{"Light", Light, false},
		{" HEAVY ", Heavy, false},
		{"block", Block, false},
		{"double", None, true},
		{"", None, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseWeight(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseWeight(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseWeight(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestWeightText(t *testing.T) {
	var w Weight
	if err := w.UnmarshalText([]byte("heavy")); err != nil {
		t.Fatalf("UnmarshalText failed: %v", err)
	}
	if w != Heavy {
		t.Errorf("got %v, want heavy", w)
	}

	text, err := Block.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText failed: %v", err)
	}
	if string(text) != "block" {
		t.Errorf("MarshalText = %q, want block", text)
	}

	if err := w.UnmarshalText([]byte("thin")); err == nil {
		t.Error("expected error for unknown weight")
	}
	if got := Weight(9).String(); got != "Weight(9)" {
		t.Errorf("String() = %q", got)
	}
}
