package sitemapfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// cellPadding is the minimum gap between aligned columns.
const cellPadding = 2

func writePlain(w io.Writer, header []string, rows [][]string) error {
	lines := make([]string, 0, len(rows)+1)
	if len(header) > 0 {
		lines = append(lines, strings.Join(header, "\t"))
	}
	for _, row := range rows {
		lines = append(lines, strings.Join(row, "\t"))
	}
	if len(lines) == 0 {
		return nil
	}
	for _, line := range alignTabs(strings.Join(lines, "\n")) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// alignTabs expands the tab-separated cells of text into space-padded columns.
// Each column is as wide as its widest cell plus cellPadding; the last cell of
// a line is never padded and trailing spaces are trimmed.
func alignTabs(text string) []string {
	lines := strings.Split(text, "\n")
	cells := make([][]string, len(lines))
	var widths []int
	for i, line := range lines {
		cells[i] = strings.Split(line, "\t")
		for j, cell := range cells[i][:len(cells[i])-1] {
			if j == len(widths) {
				widths = append(widths, 0)
			}
			if cw := runewidth.StringWidth(cell); cw > widths[j] {
				widths[j] = cw
			}
		}
	}

	out := make([]string, len(lines))
	for i, row := range cells {
		var sb strings.Builder
		last := len(row) - 1
		for j, cell := range row {
			if j == last {
				sb.WriteString(cell)
				break
			}
			sb.WriteString(alignCell(cell, widths[j]+cellPadding))
		}
		out[i] = strings.TrimRight(sb.String(), " ")
	}
	return out
}
