package sitemapfmt

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrUnknownField      = errors.New("unknown field")
	ErrEncode            = errors.New("encode failed")
)

// Format represents an output format.
type Format string

const (
	JSON     Format = "json"
	YAML     Format = "yaml"
	CSV      Format = "csv"
	Markdown Format = "markdown"
	Pretty   Format = "pretty"
	Plain    Format = "plain"
	TSV      Format = "tsv"
	HTML     Format = "html"
)

var formats = []Format{JSON, YAML, CSV, Markdown, Pretty, Plain, TSV, HTML}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Structured reports whether f serializes the source object itself rather
// than its selected columns.
func (f Format) Structured() bool { return f == JSON || f == YAML }

// Formats returns all supported format names.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat parses a format name.
func ParseFormat(s string) (Format, error) {
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Flags mirrors a command line that exposes one boolean per format.
type Flags struct {
	JSON     bool
	YAML     bool
	CSV      bool
	Markdown bool
	Pretty   bool
}

// SelectFormat picks exactly one format from f. When several flags are set
// the first match wins in the order JSON, YAML, CSV, Markdown, Pretty. With
// no flags set the result is Plain.
func SelectFormat(f Flags) Format {
	switch {
	case f.JSON:
		return JSON
	case f.YAML:
		return YAML
	case f.CSV:
		return CSV
	case f.Markdown:
		return Markdown
	case f.Pretty:
		return Pretty
	default:
		return Plain
	}
}

// BorderStyle controls the characters of the Pretty grid.
type BorderStyle int

const (
	BorderRounded BorderStyle = iota // ╭─╮╰╯│┬┴├┤┼
	BorderASCII                      // +-+|
	BorderHeavy                      // ┏━┓┗┛┃┳┻┣┫╋
	BorderDouble                     // ╔═╗╚╝║╦╩╠╣╬
)

// Options controls what is rendered.
type Options struct {
	// Fields selects the columns. Zero means AllFields; ParseFields never
	// returns zero, so an empty flag value is an error rather than "all".
	// Ignored by JSON and YAML.
	Fields Field

	// HideHeader drops the header row from every row-oriented format.
	HideHeader bool

	// Border is the Pretty grid style. Default: BorderRounded.
	Border BorderStyle
}

func (o Options) fields() Field {
	if o.Fields == 0 {
		return AllFields
	}
	return o.Fields
}

// Write renders src in format f and writes it to w.
//
// JSON and YAML encode src itself, so its own field names and entry order are
// kept and opts.Fields does not apply. Every other format builds the selected
// columns, transposes them into rows and hands them to [WriteRows].
func Write(w io.Writer, f Format, src Source, opts Options) error {
	switch f {
	case JSON:
		return writeJSON(w, src)
	case YAML:
		return writeYAML(w, src)
	}
	cols := BuildColumns(src, opts.fields())
	return WriteRows(w, f, cols.Headers(), cols.Rows(), opts)
}

// WriteRows renders header and rows in one of the row-oriented formats.
// JSON and YAML need the source object and return ErrUnsupportedFormat here.
func WriteRows(w io.Writer, f Format, header []string, rows [][]string, opts Options) error {
	if opts.HideHeader {
		header = nil
	}
	switch f {
	case CSV:
		return writeCSV(w, header, rows)
	case Markdown:
		return writeMarkdown(w, header, rows)
	case Pretty:
		return writeTable(w, header, rows, opts.Border)
	case Plain:
		return writePlain(w, header, rows)
	case TSV:
		return writeTSV(w, header, rows)
	case HTML:
		return writeHTML(w, header, rows)
	case JSON, YAML:
		return fmt.Errorf("%w: %q renders the source object, not rows", ErrUnsupportedFormat, f)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// Marshal renders src in format f and returns the bytes.
func Marshal(f Format, src Source, opts Options) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, f, src, opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
