package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate_Valid(t *testing.T) {
	d, err := ParseDate("15-03-2024")
	require.NoError(t, err)
	assert.Equal(t, 2024, d.Year())
	assert.Equal(t, 3, int(d.Month()))
	assert.Equal(t, 15, d.Day())
}

func TestParseDate_TrimsWhitespace(t *testing.T) {
	d, err := ParseDate("  01-01-2024  ")
	require.NoError(t, err)
	assert.Equal(t, "01-01-2024", d.String())
}

func TestParseDate_Invalid(t *testing.T) {
	cases := []string{"", "2024-03-15", "15/03/2024", "32-01-2024", "not a date"}
	for _, input := range cases {
		_, err := ParseDate(input)
		assert.Error(t, err, "input %q should be rejected", input)
	}
}

func TestDate_WithinRange_InclusiveBounds(t *testing.T) {
	start := NewDate(2024, 1, 1)
	end := NewDate(2024, 1, 31)

	assert.True(t, start.WithinRange(start, end), "start boundary is inside")
	assert.True(t, end.WithinRange(start, end), "end boundary is inside")
	assert.True(t, NewDate(2024, 1, 15).WithinRange(start, end))
	assert.False(t, NewDate(2023, 12, 31).WithinRange(start, end))
	assert.False(t, NewDate(2024, 2, 1).WithinRange(start, end))
}

func TestDate_String(t *testing.T) {
	assert.Equal(t, "05-09-2024", NewDate(2024, 9, 5).String())
}

func TestDate_JSONUsesStoredTimestampForm(t *testing.T) {
	data, err := json.Marshal(NewDate(2024, 3, 15))
	require.NoError(t, err)
	assert.Equal(t, `"2024-03-15T00:00:00"`, string(data))

	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2024-03-15T00:00:00"`), &d))
	assert.Equal(t, "15-03-2024", d.String())
}

func TestDate_UnmarshalRejectsZonedTimestamp(t *testing.T) {
	var d Date
	err := json.Unmarshal([]byte(`"2024-03-15T00:00:00Z"`), &d)
	assert.Error(t, err)
}
