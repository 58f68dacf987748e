package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	// DisplayDateLayout is the canonical date form shown to the user and
	// used to correlate entries with day cells
	DisplayDateLayout = "02.01.2006."

	// StorageDateLayout sorts lexicographically in calendar order
	StorageDateLayout = "2006-01-02"

	// MonthLayout is accepted by the --month flag
	MonthLayout = "01.2006"

	// TimeLayout is the form of time_start and time_end
	TimeLayout = "15:04"
)

var (
	// ErrInvalidDate is returned when a date does not match DisplayDateLayout
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidMonth is returned when a month does not match MonthLayout
	ErrInvalidMonth = errors.New("invalid month")
)

// FormatDisplayDate renders t as DD.MM.YYYY.
func FormatDisplayDate(t time.Time) string {
	return t.Format(DisplayDateLayout)
}

// ParseDisplayDate parses a DD.MM.YYYY. date in the local time zone
func ParseDisplayDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DisplayDateLayout, strings.TrimSpace(s), time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q: expected DD.MM.YYYY.", ErrInvalidDate, s)
	}
	return t, nil
}

// ToStorageDate converts a display date into its stored YYYY-MM-DD form
func ToStorageDate(display string) (string, error) {
	t, err := ParseDisplayDate(display)
	if err != nil {
		return "", err
	}
	return t.Format(StorageDateLayout), nil
}

// FromStorageDate converts a stored YYYY-MM-DD value back to DD.MM.YYYY.
func FromStorageDate(stored string) (string, error) {
	t, err := time.ParseInLocation(StorageDateLayout, strings.TrimSpace(stored), time.Local)
	if err != nil {
		return "", fmt.Errorf("%w %q in store: expected YYYY-MM-DD", ErrInvalidDate, stored)
	}
	return FormatDisplayDate(t), nil
}

// ParseMonth parses MM.YYYY into the first day of that month
func ParseMonth(s string) (time.Time, error) {
	t, err := time.ParseInLocation(MonthLayout, strings.TrimSpace(s), time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q: expected MM.YYYY", ErrInvalidMonth, s)
	}
	return t, nil
}

// MonthBounds returns the first and last day of the month containing t
func MonthBounds(t time.Time) (time.Time, time.Time) {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	last := first.AddDate(0, 1, -1)
	return first, last
}

// DaysIn returns the number of days in the month containing t
func DaysIn(t time.Time) int {
	_, last := MonthBounds(t)
	return last.Day()
}

// SameDay reports whether a and b fall on the same calendar date
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
