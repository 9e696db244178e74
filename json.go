package sitemapfmt

import (
	"encoding/json"
	"fmt"
	"io"
)

const indent = "  "

func writeJSON(w io.Writer, src Source) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", indent)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(src); err != nil {
		return fmt.Errorf("%w: %q: %w", ErrEncode, JSON, err)
	}
	return nil
}
