package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Date
		wantErr bool
	}{
		{"valid date", "2025-12-01", NewDate(2025, time.December, 1), false},
		{"valid with whitespace", " 2025-12-01 ", NewDate(2025, time.December, 1), false},
		{"empty", "", Date{}, true},
		{"wrong layout", "01/12/2025", Date{}, true},
		{"datetime rejected", "2025-12-01T10:00:00Z", Date{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %s want %s", got, tt.want)
		})
	}
}

func TestDate_DaysUntil(t *testing.T) {
	from := NewDate(2025, time.December, 1)

	assert.Equal(t, 10, from.DaysUntil(NewDate(2025, time.December, 11)))
	assert.Equal(t, 1, from.DaysUntil(NewDate(2025, time.December, 2)))
	assert.Equal(t, 0, from.DaysUntil(from))
	assert.Equal(t, -1, from.DaysUntil(NewDate(2025, time.November, 30)))
	assert.Equal(t, 31, from.DaysUntil(NewDate(2026, time.January, 1)))
}

func TestDate_JSONRoundTrip(t *testing.T) {
	d := NewDate(2025, time.December, 1)

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2025-12-01"`, string(data))

	var parsed Date
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.True(t, parsed.Equal(d))
}

func TestDate_UnmarshalJSON_Invalid(t *testing.T) {
	var d Date
	assert.Error(t, json.Unmarshal([]byte(`"not-a-date"`), &d))
}

func TestDate_Scan(t *testing.T) {
	want := NewDate(2025, time.December, 1)

	tests := []struct {
		name  string
		value interface{}
	}{
		{"time.Time", time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC)},
		{"date string", "2025-12-01"},
		{"datetime string", "2025-12-01 00:00:00"},
		{"bytes", []byte("2025-12-01")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			require.NoError(t, d.Scan(tt.value))
			assert.True(t, d.Equal(want), "got %s want %s", d, want)
		})
	}

	var d Date
	assert.Error(t, d.Scan(42))
}

func TestDate_Value(t *testing.T) {
	v, err := NewDate(2025, time.December, 1).Value()
	require.NoError(t, err)
	assert.Equal(t, "2025-12-01", v)
}
