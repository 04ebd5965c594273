package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCalendarDate(t *testing.T) {
	tests := []struct {
		input string
		ok    bool
	}{
		{"2099-01-01", true},
		{"2026-02-28", true},
		{"2024-02-29", true},  // leap day
		{"2025-02-29", false}, // not a leap year
		{"2026-13-01", false},
		{"2026-00-10", false},
		{"2026-06-31", false},
		{"01-01-2026", false},
		{"2026/01/01", false},
		{"2026-1-1", false},
		{"", false},
		{"tomorrow", false},
	}
	for _, tt := range tests {
		d, err := ParseCalendarDate(tt.input)
		if tt.ok {
			assert.NoError(t, err, tt.input)
			assert.Equal(t, tt.input, d.String())
		} else {
			assert.Error(t, err, tt.input)
		}
	}
}

func TestCalendarDateAfter(t *testing.T) {
	a, _ := ParseCalendarDate("2026-09-01")
	b, _ := ParseCalendarDate("2026-08-31")
	assert.True(t, a.After(b))
	assert.False(t, b.After(a))
	assert.False(t, a.After(a))
}

func TestParseClockTime(t *testing.T) {
	valid := []string{"00:00", "9:30", "09:30", "19:05", "23:59"}
	for _, s := range valid {
		_, err := ParseClockTime(s)
		assert.NoError(t, err, s)
	}

	invalid := []string{"24:00", "19:60", "7pm", "19", "19:5", "", "1930"}
	for _, s := range invalid {
		_, err := ParseClockTime(s)
		assert.Error(t, err, s)
	}
}

func TestValidEmail(t *testing.T) {
	assert.True(t, ValidEmail("jane.doe@example.com"))
	assert.True(t, ValidEmail("jane+tickets@mail.example.co"))
	assert.False(t, ValidEmail("jane@"))
	assert.False(t, ValidEmail("jane@example"))
	assert.False(t, ValidEmail("@example.com"))
	assert.False(t, ValidEmail("jane doe@example.com"))
	assert.False(t, ValidEmail(""))
}

func TestValidPhone(t *testing.T) {
	assert.True(t, ValidPhone("9876543210"))
	assert.True(t, ValidPhone("+919876543210"))
	assert.True(t, ValidPhone("+1 9876543210"))
	// 11 digits pass too: the leading digit reads as an unprefixed country code.
	assert.True(t, ValidPhone("98765432101"))
	assert.False(t, ValidPhone("12345"))
	assert.False(t, ValidPhone("98765-43210"))
	assert.False(t, ValidPhone("987654321012345"))
	assert.False(t, ValidPhone(""))
}

func TestValidSeatCode(t *testing.T) {
	// The pattern caps the column at two digits, not at 10.
	valid := []string{"A1", "A10", "A11", "C3", "Z10", "Z99"}
	for _, s := range valid {
		assert.True(t, ValidSeatCode(s), s)
	}

	invalid := []string{"a1", "A0", "A100", "AA1", "1A", "A", ""}
	for _, s := range invalid {
		assert.False(t, ValidSeatCode(s), s)
	}
}
