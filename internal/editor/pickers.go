package editor

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"workbook/internal/models"
)

const (
	defaultHour   = 12
	defaultMinute = 0
)

// DateSeed returns the date a date picker opens on: the parsed field text,
// or today when the text is blank or malformed
func DateSeed(text string, today time.Time) time.Time {
	if strings.TrimSpace(text) == "" {
		return today
	}
	t, err := models.ParseDisplayDate(text)
	if err != nil {
		return today
	}
	return t
}

// TimeSeed returns the hour and minute a time picker opens on.
// The text is split on ':'; absent or malformed parts fall back to 12:00.
func TimeSeed(text string) (int, int) {
	text = strings.TrimSpace(text)
	if text == "" {
		return defaultHour, defaultMinute
	}

	hourText, minuteText, found := strings.Cut(text, ":")
	if !found {
		return defaultHour, defaultMinute
	}

	hour, err := strconv.Atoi(strings.TrimSpace(hourText))
	if err != nil || hour < 0 || hour > 23 {
		hour = defaultHour
	}
	minute, err := strconv.Atoi(strings.TrimSpace(minuteText))
	if err != nil || minute < 0 || minute > 59 {
		minute = defaultMinute
	}
	return hour, minute
}

// FormatDate renders a picked date in canonical DD.MM.YYYY. form
func FormatDate(year int, month time.Month, day int) string {
	return fmt.Sprintf("%02d.%02d.%04d.", day, int(month), year)
}

// FormatTime renders a picked time as HH:MM
func FormatTime(hour, minute int) string {
	return fmt.Sprintf("%02d:%02d", hour, minute)
}
