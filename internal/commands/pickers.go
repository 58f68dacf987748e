package commands

import (
	"fmt"
	"time"

	"workbook/internal/editor"
	"workbook/internal/models"
)

// pickDate prompts for a date seeded from current, or today when current
// is blank or malformed, and returns the canonical form
func (p *prompter) pickDate(label, current string) (string, error) {
	seed := editor.DateSeed(current, time.Now())
	def := editor.FormatDate(seed.Year(), seed.Month(), seed.Day())

	result, err := p.text(label, def, func(input string) error {
		_, err := models.ParseDisplayDate(input)
		return err
	})
	if err != nil {
		return "", err
	}

	picked, err := models.ParseDisplayDate(result)
	if err != nil {
		return "", err
	}
	return editor.FormatDate(picked.Year(), picked.Month(), picked.Day()), nil
}

// pickTime prompts for a time seeded from current, or 12:00
func (p *prompter) pickTime(label, current string) (string, error) {
	hour, minute := editor.TimeSeed(current)

	result, err := p.text(label, editor.FormatTime(hour, minute), func(input string) error {
		if _, err := time.Parse(models.TimeLayout, input); err != nil {
			return fmt.Errorf("expected HH:MM")
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	picked, err := time.Parse(models.TimeLayout, result)
	if err != nil {
		return "", err
	}
	return editor.FormatTime(picked.Hour(), picked.Minute()), nil
}
