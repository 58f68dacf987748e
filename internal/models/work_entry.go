// Package models defines the data structures used throughout the application
package models

import (
	"fmt"
	"strings"
)

// NoRecord is the entry id used when a form has no backing row
const NoRecord int64 = -1

// WorkEntry represents one logged work session
// Date is kept in the canonical display form DD.MM.YYYY. and times as HH:MM
type WorkEntry struct {
	ID        int64  `db:"_id" json:"id"`
	Location  string `db:"location" json:"location"`
	Date      string `db:"date" json:"date"`
	TimeStart string `db:"time_start" json:"time_start"`
	TimeEnd   string `db:"time_end" json:"time_end"`
	Vehicle   string `db:"vehicle" json:"vehicle"`
	KmStart   string `db:"km_start" json:"km_start"`
	KmEnd     string `db:"km_end" json:"km_end"`
	WorkType  string `db:"work_type" json:"work_type"`
	WorkOrder string `db:"work_order" json:"work_order"`
}

// EntrySummary is the projection the month view reads
type EntrySummary struct {
	ID       int64  `db:"_id" json:"id"`
	Location string `db:"location" json:"location"`
	Date     string `db:"date" json:"date"`
}

// String returns a human-readable representation of the work entry
func (w WorkEntry) String() string {
	return fmt.Sprintf("%s %s-%s: %s (%s, %s-%s km) %s/%s",
		w.Date,
		w.TimeStart,
		w.TimeEnd,
		w.Location,
		w.Vehicle,
		w.KmStart,
		w.KmEnd,
		w.WorkType,
		w.WorkOrder)
}

// Summary projects the entry onto the fields the month view needs
func (w WorkEntry) Summary() EntrySummary {
	return EntrySummary{ID: w.ID, Location: w.Location, Date: w.Date}
}

// MissingFields returns the label of every required field that is blank,
// in form order. Date is not part of the required set.
func (w WorkEntry) MissingFields(labels Labels) []string {
	required := []struct {
		value string
		label string
	}{
		{w.Location, labels.Location},
		{w.TimeStart, labels.TimeStart},
		{w.TimeEnd, labels.TimeEnd},
		{w.Vehicle, labels.Vehicle},
		{w.KmStart, labels.KmStart},
		{w.KmEnd, labels.KmEnd},
		{w.WorkType, labels.WorkType},
		{w.WorkOrder, labels.WorkOrder},
	}

	var missing []string
	for _, field := range required {
		if isBlank(field.value) {
			missing = append(missing, field.label)
		}
	}
	return missing
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
