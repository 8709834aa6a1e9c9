package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jfmyers9/spotweb/pkg/spotify"
	"github.com/mattn/go-runewidth"
)

// maxColumnWidth caps table cells so one long title cannot push the other
// columns off screen
const maxColumnWidth = 48

// table is a column-aligned text table measured in display columns
type table struct {
	headers []string
	rows    [][]string
}

func newTable(headers ...string) *table {
	return &table{headers: headers}
}

func (t *table) add(cells ...string) {
	t.rows = append(t.rows, cells)
}

// write prints the table to w. The last column is never padded.
func (t *table) write(w io.Writer) error {
	widths := make([]int, len(t.headers))
	measure := func(cells []string) {
		for i, cell := range cells {
			if i >= len(widths) {
				break
			}
			cw := runewidth.StringWidth(cell)
			if cw > maxColumnWidth {
				cw = maxColumnWidth
			}
			if cw > widths[i] {
				widths[i] = cw
			}
		}
	}
	measure(t.headers)
	for _, row := range t.rows {
		measure(row)
	}

	line := func(cells []string) string {
		parts := make([]string, len(widths))
		for i := range widths {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			if i == len(widths)-1 {
				parts[i] = truncateToWidth(cell, maxColumnWidth)
			} else {
				parts[i] = padToWidth(cell, widths[i])
			}
		}
		return strings.TrimRight(strings.Join(parts, "  "), " ")
	}

	if _, err := fmt.Fprintln(w, line(t.headers)); err != nil {
		return err
	}
	for _, row := range t.rows {
		if _, err := fmt.Fprintln(w, line(row)); err != nil {
			return err
		}
	}
	return nil
}

// padToWidth pads or truncates text to a fixed display width.
// Width is measured in display columns, accounting for Unicode characters.
// If width <= 0, returns text unchanged.
// If text is longer than width, truncates with "..." suffix.
func padToWidth(text string, width int) string {
	if width <= 0 {
		return text
	}

	text = truncateToWidth(text, width)
	if w := runewidth.StringWidth(text); w < width {
		return text + strings.Repeat(" ", width-w)
	}
	return text
}

// truncateToWidth shortens text to at most width display columns, ending
// it with "..." when anything was cut
func truncateToWidth(text string, width int) string {
	if width <= 0 || runewidth.StringWidth(text) <= width {
		return text
	}

	const ellipsis = "..."
	ellipsisWidth := runewidth.StringWidth(ellipsis)
	if width <= ellipsisWidth {
		return runewidth.Truncate(ellipsis, width, "")
	}

	return runewidth.Truncate(text, width-ellipsisWidth, "") + ellipsis
}

// printJSON writes v as indented JSON
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// render prints v as JSON when --json is set, otherwise calls tbl
func render(w io.Writer, v any, tbl func() *table) error {
	if flagJSON {
		return printJSON(w, v)
	}
	return tbl().write(w)
}

func joinArgs(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}

func artistNames(artists []spotify.SimpleArtist) string {
	names := make([]string, len(artists))
	for i, a := range artists {
		names[i] = a.Name
	}
	return strings.Join(names, ", ")
}

// formatDuration renders milliseconds as m:ss
func formatDuration(ms int) string {
	d := time.Duration(ms) * time.Millisecond
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}
