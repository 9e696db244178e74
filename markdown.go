package sitemapfmt

import (
	"fmt"
	"io"
	"strings"
)

// writeMarkdown renders a pipe table. Without a header the separator row is
// dropped too and only data rows remain.
func writeMarkdown(w io.Writer, header []string, rows [][]string) error {
	numCols := colCount(header, rows)
	if numCols == 0 {
		return nil
	}
	header = escapeMarkdown(header)
	escaped := make([][]string, len(rows))
	for i, row := range rows {
		escaped[i] = escapeMarkdown(row)
	}
	rows = escaped

	// Minimum width 3 keeps the separator a valid "---".
	widths := computeWidths(numCols, header, rows)
	for i := range widths {
		if widths[i] < 3 {
			widths[i] = 3
		}
	}

	if len(header) > 0 {
		if err := writeMarkdownRow(w, header, widths); err != nil {
			return err
		}
		sep := make([]string, numCols)
		for i, width := range widths {
			sep[i] = strings.Repeat("-", width)
		}
		if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(sep, " | ")); err != nil {
			return err
		}
	}

	for _, row := range rows {
		if err := writeMarkdownRow(w, row, widths); err != nil {
			return err
		}
	}
	return nil
}

func writeMarkdownRow(w io.Writer, cells []string, widths []int) error {
	padded := make([]string, len(widths))
	for i, width := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		padded[i] = alignCell(cell, width)
	}
	_, err := fmt.Fprintf(w, "| %s |\n", strings.Join(padded, " | "))
	return err
}

var markdownEscaper = strings.NewReplacer("|", `\|`, "\n", " ")

func escapeMarkdown(cells []string) []string {
	if cells == nil {
		return nil
	}
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = markdownEscaper.Replace(c)
	}
	return out
}
