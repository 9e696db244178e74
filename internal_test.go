package sitemapfmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAlignTabs(t *testing.T) {
	t.Parallel()
	got := alignTabs("a\tbb\tc\nccc\td\te")
	assert.Equal(t, []string{
		"a    bb  c",
		"ccc  d   e",
	}, got)
}

func TestAlignTabsRaggedLines(t *testing.T) {
	t.Parallel()
	got := alignTabs("only\nx\ty")
	assert.Equal(t, []string{"only", "x  y"}, got)
}

func TestAlignTabsWideRunes(t *testing.T) {
	t.Parallel()
	// "日本" is two full-width characters, four columns wide.
	got := alignTabs("日本\tx\nab\ty")
	assert.Equal(t, []string{"日本  x", "ab    y"}, got)
}

func TestAnyPresent(t *testing.T) {
	t.Parallel()
	assert.False(t, anyPresent(nil))
	assert.False(t, anyPresent([]string{"", ""}))
	assert.True(t, anyPresent([]string{"", "daily"}))
}

func TestColumnsAddFixesLength(t *testing.T) {
	t.Parallel()
	cols := newColumns(3)
	cols.add("n", func(i int) string { return string(rune('a' + i)) })
	assert.Equal(t, [][]string{{"a", "b", "c"}}, cols.Cells())
	assert.Equal(t, [][]string{{"a"}, {"b"}, {"c"}}, cols.Rows())
}

func TestOptionsFieldsDefault(t *testing.T) {
	t.Parallel()
	assert.Equal(t, AllFields, Options{}.fields())
	assert.Equal(t, Loc, Options{Fields: Loc}.fields())
}

func TestEscapeMarkdown(t *testing.T) {
	t.Parallel()
	assert.Nil(t, escapeMarkdown(nil))
	assert.Equal(t, []string{`a\|b`, "line one line two"}, escapeMarkdown([]string{"a|b", "line one\nline two"}))
}

func TestAlignCell(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "ab  ", alignCell("ab", 4))
	assert.Equal(t, "abcdef", alignCell("abcdef", 4))
}
