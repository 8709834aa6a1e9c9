package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jfmyers9/spotweb/pkg/spotify"
	"github.com/mattn/go-runewidth"
)

func TestPadToWidth(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		width    int
		expected string
	}{
		{
			name:     "no padding when width is 0",
			input:    "Converge",
			width:    0,
			expected: "Converge",
		},
		{
			name:     "no padding when width is negative",
			input:    "Converge",
			width:    -1,
			expected: "Converge",
		},
		{
			name:     "pad short text with spaces",
			input:    "Hi",
			width:    10,
			expected: "Hi        ",
		},
		{
			name:     "exact width unchanged",
			input:    "Botch",
			width:    5,
			expected: "Botch",
		},
		{
			name:     "truncate long text with ellipsis",
			input:    "Time Will Die and Love Will Bury It",
			width:    20,
			expected: "Time Will Die and...",
		},
		{
			name:     "handle emoji correctly",
			input:    "🎵 Music",
			width:    15,
			expected: "🎵 Music       ",
		},
		{
			name:     "handle unicode characters",
			input:    "日本語",
			width:    10,
			expected: "日本語    ",
		},
		{
			name:     "truncate unicode text",
			input:    "日本語とても長いテキスト",
			width:    10,
			expected: "日本語... ",
		},
		{
			name:     "empty string padding",
			input:    "",
			width:    5,
			expected: "     ",
		},
		{
			name:     "width smaller than ellipsis",
			input:    "Converge",
			width:    2,
			expected: "..",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := padToWidth(tt.input, tt.width)
			if result != tt.expected {
				t.Errorf("padToWidth(%q, %d) = %q, expected %q", tt.input, tt.width, result, tt.expected)
			}
			if tt.width > 0 {
				if w := runewidth.StringWidth(result); w != tt.width {
					t.Errorf("padToWidth(%q, %d) has display width %d", tt.input, tt.width, w)
				}
			}
		})
	}
}

func TestTable_Write(t *testing.T) {
	tbl := newTable("#", "NAME", "ARTISTS")
	tbl.add("1", "Concubine", "Converge")
	tbl.add("12", "日本語", "Boris, Merzbow")

	var buf bytes.Buffer
	if err := tbl.write(&buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %q", len(lines), buf.String())
	}

	// The third column starts at the same display offset on every line
	want := []string{
		"#   NAME       ARTISTS",
		"1   Concubine  Converge",
		"12  日本語     Boris, Merzbow",
	}
	for i, line := range lines {
		if line != want[i] {
			t.Errorf("line %d: expected %q, got %q", i, want[i], line)
		}
	}
}

func TestTable_Write_CapsWideCells(t *testing.T) {
	tbl := newTable("NAME", "ID")
	tbl.add(strings.Repeat("x", maxColumnWidth*2), "id")

	var buf bytes.Buffer
	if err := tbl.write(&buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, line := range strings.Split(strings.TrimRight(buf.String(), "\n"), "\n") {
		if w := runewidth.StringWidth(line); w > maxColumnWidth+2+2 {
			t.Errorf("line too wide (%d): %q", w, line)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		ms   int
		want string
	}{
		{0, "0:00"},
		{81000, "1:21"},
		{275000, "4:35"},
		{3600000, "60:00"},
	}

	for _, tt := range tests {
		if got := formatDuration(tt.ms); got != tt.want {
			t.Errorf("formatDuration(%d) = %q, expected %q", tt.ms, got, tt.want)
		}
	}
}

func TestArtistNames(t *testing.T) {
	artists := []spotify.SimpleArtist{{Name: "Converge"}, {Name: "Chelsea Wolfe"}}
	if got := artistNames(artists); got != "Converge, Chelsea Wolfe" {
		t.Errorf("unexpected names %q", got)
	}
	if got := artistNames(nil); got != "" {
		t.Errorf("expected empty names, got %q", got)
	}
}

func TestRefArg(t *testing.T) {
	if ref := refArg([]string{"jane", "doe"}, false); ref.Name != "jane doe" || ref.ID != "" {
		t.Errorf("unexpected name ref %+v", ref)
	}
	if ref := refArg([]string{"2z9Ju4CkKdGLXR7v0qTYTR"}, true); ref.ID != "2z9Ju4CkKdGLXR7v0qTYTR" {
		t.Errorf("unexpected id ref %+v", ref)
	}
}
