package sitemapfmt

import (
	"fmt"
	"io"
	"strings"
)

func writeTSV(w io.Writer, header []string, rows [][]string) error {
	if len(header) > 0 {
		if _, err := fmt.Fprintln(w, strings.Join(header, "\t")); err != nil {
			return err
		}
	}
	for _, row := range rows {
		if _, err := fmt.Fprintln(w, strings.Join(row, "\t")); err != nil {
			return err
		}
	}
	return nil
}
