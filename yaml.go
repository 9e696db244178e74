package sitemapfmt

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

func writeYAML(w io.Writer, src Source) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(len(indent))
	if err := enc.Encode(src); err != nil {
		return fmt.Errorf("%w: %q: %w", ErrEncode, YAML, err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("%w: %q: %w", ErrEncode, YAML, err)
	}
	return nil
}
