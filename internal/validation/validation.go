// Package validation centralizes the input formats shared by every entry
// point: calendar dates, clock times, contact details, and seat codes.
package validation

import (
	"fmt"
	"regexp"
	"time"
)

const dateLayout = "2006-01-02"

var (
	clockTimeRE = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):[0-5][0-9]$`)
	emailRE     = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phoneRE     = regexp.MustCompile(`^(\+?\d{1,3}[-.\s]?)?\d{10}$`)
	seatCodeRE  = regexp.MustCompile(`^[A-Z][1-9][0-9]?$`)
)

// CalendarDate is a validated YYYY-MM-DD date. ISO ordering makes plain
// string comparison correct for before/after checks.
type CalendarDate string

// ParseCalendarDate validates s as a real calendar date in YYYY-MM-DD form.
func ParseCalendarDate(s string) (CalendarDate, error) {
	if _, err := time.Parse(dateLayout, s); err != nil {
		return "", fmt.Errorf("invalid calendar date %q: %w", s, err)
	}
	return CalendarDate(s), nil
}

func (d CalendarDate) String() string { return string(d) }

// After reports whether d falls strictly after o.
func (d CalendarDate) After(o CalendarDate) bool { return string(d) > string(o) }

// Today returns the current calendar date.
func Today() CalendarDate {
	return CalendarDate(time.Now().Format(dateLayout))
}

// ClockTime is a validated HH:MM time of day. A single-digit hour is
// accepted ("9:30").
type ClockTime string

// ParseClockTime validates s as an HH:MM time of day.
func ParseClockTime(s string) (ClockTime, error) {
	if !clockTimeRE.MatchString(s) {
		return "", fmt.Errorf("invalid clock time %q", s)
	}
	return ClockTime(s), nil
}

func (t ClockTime) String() string { return string(t) }

// ValidEmail reports whether s looks like a standard email address.
func ValidEmail(s string) bool { return emailRE.MatchString(s) }

// ValidPhone reports whether s is a 10-digit phone number, optionally
// prefixed with a country code.
func ValidPhone(s string) bool { return phoneRE.MatchString(s) }

// ValidSeatCode reports whether s is a row-letter/column-number seat code
// such as "A1" or "Z10".
func ValidSeatCode(s string) bool { return seatCodeRE.MatchString(s) }
