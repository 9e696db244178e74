package sitemapfmt

import (
	"fmt"
	"strings"
)

// --- Data source interfaces ---

// Source provides the per-entry fields every sitemap document has. Both
// sequences are in entry order and have one element per entry. An absent
// lastmod is the empty string.
type Source interface {
	Locs() []string
	LastMods() []string
}

// ChangeFreqer provides per-entry change frequencies. Optional; the empty
// string marks an entry without one.
type ChangeFreqer interface {
	ChangeFreqs() []string
}

// Prioritizer provides per-entry priorities. Optional; the empty string marks
// an entry without one.
type Prioritizer interface {
	Priorities() []string
}

// --- Field selection ---

// Field is a set of renderable sitemap attributes.
type Field uint8

const (
	Loc Field = 1 << iota
	LastMod
	ChangeFreq
	Priority

	AllFields = Loc | LastMod | ChangeFreq | Priority
)

// fieldOrder is the canonical column order.
var fieldOrder = []Field{Loc, LastMod, ChangeFreq, Priority}

var headers = map[Field]string{
	Loc:        "loc",
	LastMod:    "lastmod",
	ChangeFreq: "changefreq",
	Priority:   "priority",
}

// Has reports whether every field in g is set in f.
func (f Field) Has(g Field) bool { return g != 0 && f&g == g }

// Header returns the column label of a single field.
func (f Field) Header() string { return headers[f] }

// String returns the comma-separated labels of the fields in f.
func (f Field) String() string {
	var names []string
	for _, fl := range fieldOrder {
		if f.Has(fl) {
			names = append(names, fl.Header())
		}
	}
	return strings.Join(names, ",")
}

// ParseFields parses a comma-separated list of field labels such as
// "loc,lastmod". "all" selects every field. A list that names no field is
// rejected rather than read as "all".
func ParseFields(s string) (Field, error) {
	var out Field
	for _, part := range strings.Split(s, ",") {
		name := strings.ToLower(strings.TrimSpace(part))
		if name == "" {
			continue
		}
		if name == "all" {
			out |= AllFields
			continue
		}
		found := false
		for _, fl := range fieldOrder {
			if fl.Header() == name {
				out |= fl
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("%w: %q", ErrUnknownField, part)
		}
	}
	if out == 0 {
		return 0, fmt.Errorf("%w: empty selection %q", ErrUnknownField, s)
	}
	return out, nil
}

// --- Column set ---

// Columns is an ordered set of labeled columns that all hold exactly Len
// cells. The row count is fixed when the set is created and every column is
// generated row by row, so a set can never hold columns of different length.
type Columns struct {
	n       int
	headers []string
	cells   [][]string
}

func newColumns(n int) *Columns {
	return &Columns{n: n}
}

// add appends a column whose i-th cell is cell(i).
func (c *Columns) add(header string, cell func(i int) string) {
	col := make([]string, c.n)
	for i := range col {
		col[i] = cell(i)
	}
	c.headers = append(c.headers, header)
	c.cells = append(c.cells, col)
}

// Len returns the number of rows.
func (c *Columns) Len() int { return c.n }

// Headers returns the column labels in column order.
func (c *Columns) Headers() []string { return c.headers }

// Cells returns the column-major cells.
func (c *Columns) Cells() [][]string { return c.cells }

// Rows returns the row-major transposition of the set.
func (c *Columns) Rows() [][]string {
	if len(c.cells) == 0 {
		return nil
	}
	return Transpose(c.cells)
}

// BuildColumns selects the columns of src named by fields, in the order loc,
// lastmod, changefreq, priority.
//
// Loc and LastMod are included whenever requested. ChangeFreq and Priority
// are included only when requested, provided by src, and present on at least
// one entry; an all-empty column is dropped rather than rendered blank.
//
// The row count is len(src.Locs()). A source whose other sequences are shorter
// than that is broken and BuildColumns panics.
func BuildColumns(src Source, fields Field) *Columns {
	locs := src.Locs()
	cols := newColumns(len(locs))

	if fields.Has(Loc) {
		cols.add(Loc.Header(), index(locs))
	}
	if fields.Has(LastMod) {
		cols.add(LastMod.Header(), index(src.LastMods()))
	}
	if cf, ok := src.(ChangeFreqer); ok && fields.Has(ChangeFreq) {
		if vals := cf.ChangeFreqs(); anyPresent(vals) {
			cols.add(ChangeFreq.Header(), index(vals))
		}
	}
	if p, ok := src.(Prioritizer); ok && fields.Has(Priority) {
		if vals := p.Priorities(); anyPresent(vals) {
			cols.add(Priority.Header(), index(vals))
		}
	}
	return cols
}

func index(seq []string) func(int) string {
	return func(i int) string { return seq[i] }
}

func anyPresent(vals []string) bool {
	for _, v := range vals {
		if v != "" {
			return true
		}
	}
	return false
}

// Transpose turns column-major cells into rows: row i holds the i-th cell of
// every column, in column order. Zero columns yield no rows. All columns must
// have the same length; Transpose panics otherwise.
func Transpose(columns [][]string) [][]string {
	if len(columns) == 0 {
		return nil
	}
	n := len(columns[0])
	for i, col := range columns {
		if len(col) != n {
			panic(fmt.Sprintf("sitemapfmt: column %d has %d cells, want %d", i, len(col), n))
		}
	}
	rows := make([][]string, n)
	for i := range rows {
		row := make([]string, len(columns))
		for j, col := range columns {
			row[j] = col[i]
		}
		rows[i] = row
	}
	return rows
}
