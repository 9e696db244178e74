// Package sitemapfmt renders sitemap documents in multiple output formats.
//
// Supported formats are JSON, YAML, CSV, Markdown, Pretty, Plain, TSV and
// HTML. The central entry points are [Write] and [Marshal], which accept a
// [Format], a [Source] and [Options].
//
// # Data Sources
//
// A document exposes its entries as parallel sequences of display strings.
// A minimal interface is enough to render; optional interfaces add columns:
//
//   - [Source] → loc and lastmod columns (required)
//   - [ChangeFreqer] → changefreq column
//   - [Prioritizer] → priority column
//
// The sitemap package's URLSet implements all three and its Index implements
// only [Source].
//
// # Field Selection
//
// [Options].Fields picks the columns. They always appear in the order loc,
// lastmod, changefreq, priority. A requested changefreq or priority column is
// left out entirely when no entry carries a value for it:
//
//	fields, err := sitemapfmt.ParseFields("loc,priority")
//	sitemapfmt.Write(os.Stdout, sitemapfmt.CSV, set, sitemapfmt.Options{Fields: fields})
//
// [BuildColumns] and [Transpose] expose the column-major and row-major steps
// for callers that want the cells without rendering them.
//
// # JSON and YAML
//
// The structured formats encode the source value itself with two-space
// indentation, using the source's own field names. Field selection and
// header options do not apply.
//
// # CSV
//
// RFC 4180 quoting via encoding/csv. The header row is written unless
// [Options].HideHeader is set.
//
// # Plain
//
// Cells separated by tabs are expanded into space-aligned columns. Widths
// account for wide runes.
//
// # Pretty
//
// A bordered grid. [Options].Border selects the box characters (default
// [BorderRounded]).
//
// # Markdown
//
// A GitHub-flavored pipe table. Pipes inside cells are escaped.
//
// # Format Selection
//
// Use [ParseFormat] for a single format flag, or [SelectFormat] when a
// command line exposes one boolean per format:
//
//	f := sitemapfmt.SelectFormat(sitemapfmt.Flags{CSV: csvFlag, Pretty: prettyFlag})
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrUnsupportedFormat] — unknown format, or a structured format passed to [WriteRows]
//   - [ErrUnknownField] — unknown field name in [ParseFields]
//   - [ErrEncode] — the CSV, JSON or YAML encoder failed
package sitemapfmt
