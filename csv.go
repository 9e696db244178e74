package sitemapfmt

import (
	"encoding/csv"
	"fmt"
	"io"
)

func writeCSV(w io.Writer, header []string, rows [][]string) error {
	cw := csv.NewWriter(w)
	if len(header) > 0 {
		if err := cw.Write(header); err != nil {
			return fmt.Errorf("%w: %q: %w", ErrEncode, CSV, err)
		}
	}
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("%w: %q: %w", ErrEncode, CSV, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("%w: %q: %w", ErrEncode, CSV, err)
	}
	return nil
}
