package commands

import (
	"github.com/spf13/cobra"

	"workbook/internal/models"
)

// fieldFlags holds the per-field flags shared by add and edit
type fieldFlags struct {
	location  string
	date      string
	timeStart string
	timeEnd   string
	vehicle   string
	kmStart   string
	kmEnd     string
	workType  string
	workOrder string
}

func (f *fieldFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&f.location, "location", "", "Work location")
	flags.StringVar(&f.date, "date", "", "Date as DD.MM.YYYY.")
	flags.StringVar(&f.timeStart, "time-start", "", "Start time as HH:MM")
	flags.StringVar(&f.timeEnd, "time-end", "", "End time as HH:MM")
	flags.StringVar(&f.vehicle, "vehicle", "", "Vehicle used")
	flags.StringVar(&f.kmStart, "km-start", "", "Odometer reading at start")
	flags.StringVar(&f.kmEnd, "km-end", "", "Odometer reading at end")
	flags.StringVar(&f.workType, "work-type", "", "Type of work")
	flags.StringVar(&f.workOrder, "work-order", "", "Work order number")
}

// apply copies every flag the user set onto form
func (f *fieldFlags) apply(cmd *cobra.Command, form *models.WorkEntry) {
	set := map[string]struct {
		value  string
		target *string
	}{
		"location":   {f.location, &form.Location},
		"date":       {f.date, &form.Date},
		"time-start": {f.timeStart, &form.TimeStart},
		"time-end":   {f.timeEnd, &form.TimeEnd},
		"vehicle":    {f.vehicle, &form.Vehicle},
		"km-start":   {f.kmStart, &form.KmStart},
		"km-end":     {f.kmEnd, &form.KmEnd},
		"work-type":  {f.workType, &form.WorkType},
		"work-order": {f.workOrder, &form.WorkOrder},
	}

	for name, field := range set {
		if cmd.Flags().Changed(name) {
			*field.target = field.value
		}
	}
}

// promptBlank asks for every free-text field of form that is still blank
func promptBlank(p *prompter, form *models.WorkEntry, labels models.Labels) error {
	var err error
	if form.Date == "" {
		if form.Date, err = p.pickDate(labels.Date, form.Date); err != nil {
			return err
		}
	}
	if form.TimeStart == "" {
		if form.TimeStart, err = p.pickTime(labels.TimeStart, form.TimeStart); err != nil {
			return err
		}
	}
	if form.TimeEnd == "" {
		if form.TimeEnd, err = p.pickTime(labels.TimeEnd, form.TimeEnd); err != nil {
			return err
		}
	}

	text := []struct {
		label  string
		target *string
	}{
		{labels.Location, &form.Location},
		{labels.Vehicle, &form.Vehicle},
		{labels.KmStart, &form.KmStart},
		{labels.KmEnd, &form.KmEnd},
		{labels.WorkType, &form.WorkType},
		{labels.WorkOrder, &form.WorkOrder},
	}
	for _, field := range text {
		if *field.target != "" {
			continue
		}
		if *field.target, err = p.text(field.label, "", nil); err != nil {
			return err
		}
	}
	return nil
}
