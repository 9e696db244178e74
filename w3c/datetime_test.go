package w3c_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/bjaus/sitemapfmt/w3c"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRoundTrip(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input string
		want  string
		kind  w3c.Kind
		prec  w3c.Precision
	}{
		"date":                  {input: "2024-02-27", want: "2024-02-27", kind: w3c.Date, prec: w3c.Seconds},
		"leap day":              {input: "2024-02-29", want: "2024-02-29", kind: w3c.Date, prec: w3c.Seconds},
		"midnight utc":          {input: "2024-02-27T00:00:00Z", want: "2024-02-27T00:00:00Z", kind: w3c.Instant, prec: w3c.Seconds},
		"millis utc":            {input: "2024-02-27T00:00:00.123Z", want: "2024-02-27T00:00:00.123Z", kind: w3c.Instant, prec: w3c.Millis},
		"positive offset":       {input: "2024-02-27T10:30:00+02:00", want: "2024-02-27T10:30:00+02:00", kind: w3c.Instant, prec: w3c.Seconds},
		"negative offset":       {input: "2005-01-01T08:15:30-05:00", want: "2005-01-01T08:15:30-05:00", kind: w3c.Instant, prec: w3c.Seconds},
		"millis with offset":    {input: "2024-02-27T10:30:00.500+01:00", want: "2024-02-27T10:30:00.500+01:00", kind: w3c.Instant, prec: w3c.Millis},
		"single digit fraction": {input: "2024-02-27T00:00:00.1Z", want: "2024-02-27T00:00:00.100Z", kind: w3c.Instant, prec: w3c.Millis},
		"micro truncates":       {input: "2024-02-27T00:00:00.123456Z", want: "2024-02-27T00:00:00.123Z", kind: w3c.Instant, prec: w3c.Millis},
		"zero offset numeric":   {input: "2024-02-27T00:00:00+00:00", want: "2024-02-27T00:00:00Z", kind: w3c.Instant, prec: w3c.Seconds},
		"evening millis":        {input: "2024-02-27T23:59:59.999-08:00", want: "2024-02-27T23:59:59.999-08:00", kind: w3c.Instant, prec: w3c.Millis},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			d, err := w3c.Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.String())
			assert.Equal(t, tt.kind, d.Kind())
			assert.Equal(t, tt.prec, d.Precision())
			assert.False(t, d.IsZero())
		})
	}
}

func TestParseRejects(t *testing.T) {
	t.Parallel()
	tests := map[string]string{
		"month 13":         "2024-13-01",
		"day 32":           "2024-01-32",
		"not a date":       "not-a-date",
		"missing offset":   "2024-02-27T00:00:00",
		"empty":            "",
		"short year":       "24-02-27",
		"non numeric":      "2024-0a-27T00:00:00Z",
		"slashes":          "2024/02/27",
		"date with space":  "2024-02-27 00:00:00Z",
		"one digit hour":   "2024-02-27T1:00:00Z",
		"one digit min":    "2024-02-27T10:3:00Z",
		"one digit sec":    "2024-02-27T10:30:0Z",
		"short millis":     "2024-02-27T1:00:00.123Z",
		"comma fraction":   "2024-02-27T00:00:00,123Z",
		"empty fraction":   "2024-02-27T00:00:00.Z",
		"short offset":     "2024-02-27T00:00:00+0100",
		"offset no colon":  "2024-02-27T00:00:00+01:0",
		"lowercase z":      "2024-02-27T00:00:00z",
		"trailing text":    "2024-02-27T00:00:00Zx",
		"hour 24":          "2024-02-27T24:00:00Z",
		"month 13 instant": "2024-13-27T00:00:00Z",
	}
	for name, input := range tests {
		input := input
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			d, err := w3c.Parse(input)
			require.Error(t, err)
			assert.ErrorIs(t, err, w3c.ErrInvalid)
			var pe *w3c.ParseError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, input, pe.Input)
			assert.True(t, d.IsZero())
		})
	}
}

func TestParseMillisKeepsPrecision(t *testing.T) {
	t.Parallel()
	for _, input := range []string{
		"2024-02-27T00:00:00.1Z",
		"2024-02-27T00:00:00.12Z",
		"2024-02-27T00:00:00.123Z",
		"2024-02-27T09:05:07.000+05:30",
	} {
		d, err := w3c.Parse(input)
		require.NoError(t, err, input)
		assert.Equal(t, w3c.Millis, d.Precision(), input)
		assert.Regexp(t, `T\d{2}:\d{2}:\d{2}\.\d{3}(Z|[+-]\d{2}:\d{2})$`, d.String(), input)
	}
}

func TestParseErrorMessage(t *testing.T) {
	t.Parallel()
	err := &w3c.ParseError{Input: "x"}
	assert.Equal(t, `invalid w3c date-time: "x"`, err.Error())
	assert.ErrorIs(t, err, w3c.ErrInvalid)
}

func TestMustParsePanics(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { w3c.MustParse("2024-13-01") })
	assert.NotPanics(t, func() { w3c.MustParse("2024-12-01") })
}

func TestConstructors(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "2023-07-04", w3c.NewDate(2023, time.July, 4).String())

	loc := time.FixedZone("", -3*60*60)
	ts := time.Date(2023, time.July, 4, 12, 0, 0, 250*int(time.Millisecond), loc)
	assert.Equal(t, "2023-07-04T12:00:00-03:00", w3c.NewInstant(ts, w3c.Seconds).String())
	assert.Equal(t, "2023-07-04T12:00:00.250-03:00", w3c.NewInstant(ts, w3c.Millis).String())
}

func TestZeroValue(t *testing.T) {
	t.Parallel()
	var d w3c.DateTime
	assert.True(t, d.IsZero())
	assert.Empty(t, d.String())
	assert.Equal(t, "invalid", d.Kind().String())
}

func TestKindAndPrecisionString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "date", w3c.Date.String())
	assert.Equal(t, "instant", w3c.Instant.String())
	assert.Equal(t, "seconds", w3c.Seconds.String())
	assert.Equal(t, "millis", w3c.Millis.String())
}

func TestTextMarshaling(t *testing.T) {
	t.Parallel()
	v := struct {
		LastMod w3c.DateTime `json:"lastmod"`
	}{LastMod: w3c.MustParse("2024-02-27T00:00:00.123Z")}

	data, err := json.Marshal(v)
	require.NoError(t, err)
	assert.JSONEq(t, `{"lastmod":"2024-02-27T00:00:00.123Z"}`, string(data))

	var back struct {
		LastMod w3c.DateTime `json:"lastmod"`
	}
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, v.LastMod.String(), back.LastMod.String())
	assert.Equal(t, w3c.Millis, back.LastMod.Precision())
}

func TestUnmarshalTextRejects(t *testing.T) {
	t.Parallel()
	var d w3c.DateTime
	err := d.UnmarshalText([]byte("2024-02-27T00:00:00"))
	assert.ErrorIs(t, err, w3c.ErrInvalid)
	assert.True(t, d.IsZero())
}
