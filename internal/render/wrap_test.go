package render

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestWordWrapperWrap(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  []string
	}{
		{
			name:  "fits on one line",
			text:  "Hello!",
			width: 9,
			want:  []string{"Hello!"},
		},
		{
			name:  "word wrap",
			text:  "Hello! My name is CLI Table",
			width: 9,
			want:  []string{"Hello! My", "name is", "CLI Table"},
		},
		{
			name:  "long word is split",
			text:  "Supadupaliciousities",
			width: 9,
			want:  []string{"Supadupal", "iciousiti", "es"},
		},
		{
			name:  "split word tail joins next word",
			text:  "abcdefg hi",
			width: 5,
			want:  []string{"abcde", "fg hi"},
		},
		{
			name:  "hard line breaks",
			text:  "one\ntwo three",
			width: 20,
			want:  []string{"one", "two three"},
		},
		{
			name:  "blank paragraph",
			text:  "a\n\nb",
			width: 5,
			want:  []string{"a", "", "b"},
		},
		{
			name:  "spacing kept when the text fits",
			text:  "a    b",
			width: 6,
			want:  []string{"a    b"},
		},
		{
			name:  "spacing kept inside a wrapped line",
			text:  "aa   bb cc",
			width: 7,
			want:  []string{"aa   bb", "cc"},
		},
		{
			name:  "spaces at a break are dropped",
			text:  "aaaa   bb",
			width: 5,
			want:  []string{"aaaa", "bb"},
		},
		{
			name:  "indentation kept on the first line",
			text:  "  ab cd",
			width: 5,
			want:  []string{"  ab", "cd"},
		},
		{
			name:  "balanced lines",
			text:  "aaa bb cc ddddd",
			width: 6,
			want:  []string{"aaa", "bb cc", "ddddd"},
		},
		{
			name:  "wide characters",
			text:  "日本語テキスト",
			width: 6,
			want:  []string{"日本語", "テキス", "ト"},
		},
		{
			name:  "wide character wider than line",
			text:  "日本",
			width: 1,
			want:  []string{"日", "本"},
		},
		{
			name:  "no wrapping",
			text:  "a long line\nsecond",
			width: 0,
			want:  []string{"a long line", "second"},
		},
		{
			name:  "empty",
			text:  "",
			width: 4,
			want:  []string{""},
		},
	}

	var w WordWrapper
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := w.Wrap(tt.text, tt.width)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Wrap(%q, %d) mismatch (-want +got):\n%s", tt.text, tt.width, diff)
			}
			if tt.width <= 0 {
				return
			}
			for _, line := range got {
				if Measure(line) > tt.width && len([]rune(line)) > 1 {
					t.Errorf("line %q wider than %d", line, tt.width)
				}
			}
		})
	}
}
