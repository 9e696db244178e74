// Package sitemap holds the in-memory sitemap model rendered by sitemapfmt.
//
// A document is either a [URLSet] (a full sitemap of page entries) or an
// [Index] (a sitemap index pointing at other sitemaps). Both expose their
// fields as parallel display-string sequences in entry order.
package sitemap

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/bjaus/sitemapfmt/w3c"
)

// Sentinel errors for programmatic error handling.
var (
	ErrChangeFreq = errors.New("invalid changefreq")
	ErrPriority   = errors.New("invalid priority")
)

// ChangeFreq is how often a page is likely to change.
type ChangeFreq string

const (
	Always  ChangeFreq = "always"
	Hourly  ChangeFreq = "hourly"
	Daily   ChangeFreq = "daily"
	Weekly  ChangeFreq = "weekly"
	Monthly ChangeFreq = "monthly"
	Yearly  ChangeFreq = "yearly"
	Never   ChangeFreq = "never"
)

var changeFreqs = []ChangeFreq{Always, Hourly, Daily, Weekly, Monthly, Yearly, Never}

// ParseChangeFreq parses a changefreq value. Matching ignores case and
// surrounding whitespace.
func ParseChangeFreq(s string) (ChangeFreq, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	for _, cf := range changeFreqs {
		if string(cf) == v {
			return cf, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrChangeFreq, s)
}

// String returns the changefreq value.
func (c ChangeFreq) String() string { return string(c) }

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *ChangeFreq) UnmarshalText(text []byte) error {
	v, err := ParseChangeFreq(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// Priority is the relative priority of a URL within its site, from 0.0 to 1.0.
type Priority float32

// ParsePriority parses a priority and checks its range.
func ParsePriority(s string) (Priority, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrPriority, s)
	}
	if f < 0 || f > 1 {
		return 0, fmt.Errorf("%w: %q out of range 0.0-1.0", ErrPriority, s)
	}
	return Priority(f), nil
}

// String returns the shortest decimal form, e.g. "0.5" or "1".
func (p Priority) String() string {
	return strconv.FormatFloat(float64(p), 'f', -1, 32)
}

// URL is one entry of a URLSet.
type URL struct {
	Loc        string        `json:"loc" yaml:"loc"`
	LastMod    *w3c.DateTime `json:"lastmod,omitempty" yaml:"lastmod,omitempty"`
	ChangeFreq *ChangeFreq   `json:"changefreq,omitempty" yaml:"changefreq,omitempty"`
	Priority   *Priority     `json:"priority,omitempty" yaml:"priority,omitempty"`
}

// URLSet is a full sitemap.
type URLSet struct {
	Entries []URL `json:"entries" yaml:"entries"`
}

// MarshalJSON encodes nil Entries as an empty array, matching the YAML form.
func (s URLSet) MarshalJSON() ([]byte, error) {
	type urlSet URLSet
	if s.Entries == nil {
		s.Entries = []URL{}
	}
	return marshalJSON(urlSet(s))
}

// Locs returns every entry's location.
func (s URLSet) Locs() []string {
	out := make([]string, len(s.Entries))
	for i, e := range s.Entries {
		out[i] = e.Loc
	}
	return out
}

// LastMods returns every entry's lastmod, or "" where absent.
func (s URLSet) LastMods() []string {
	out := make([]string, len(s.Entries))
	for i, e := range s.Entries {
		out[i] = display(e.LastMod)
	}
	return out
}

// ChangeFreqs returns every entry's changefreq, or "" where absent.
func (s URLSet) ChangeFreqs() []string {
	out := make([]string, len(s.Entries))
	for i, e := range s.Entries {
		out[i] = display(e.ChangeFreq)
	}
	return out
}

// Priorities returns every entry's priority, or "" where absent.
func (s URLSet) Priorities() []string {
	out := make([]string, len(s.Entries))
	for i, e := range s.Entries {
		out[i] = display(e.Priority)
	}
	return out
}

// Ref is one entry of an Index.
type Ref struct {
	Loc     string        `json:"loc" yaml:"loc"`
	LastMod *w3c.DateTime `json:"lastmod,omitempty" yaml:"lastmod,omitempty"`
}

// Index is a sitemap index.
type Index struct {
	Entries []Ref `json:"entries" yaml:"entries"`
}

// MarshalJSON encodes nil Entries as an empty array, matching the YAML form.
func (x Index) MarshalJSON() ([]byte, error) {
	type index Index
	if x.Entries == nil {
		x.Entries = []Ref{}
	}
	return marshalJSON(index(x))
}

// Locs returns every referenced sitemap's location.
func (x Index) Locs() []string {
	out := make([]string, len(x.Entries))
	for i, e := range x.Entries {
		out[i] = e.Loc
	}
	return out
}

// LastMods returns every referenced sitemap's lastmod, or "" where absent.
func (x Index) LastMods() []string {
	out := make([]string, len(x.Entries))
	for i, e := range x.Entries {
		out[i] = display(e.LastMod)
	}
	return out
}

// marshalJSON leaves HTML escaping to the outer encoder, so an encoder with
// SetEscapeHTML(false) keeps "&" in query strings readable.
func marshalJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func display[T fmt.Stringer](v *T) string {
	if v == nil {
		return ""
	}
	return (*v).String()
}
