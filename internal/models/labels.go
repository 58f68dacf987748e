package models

import "strings"

// Labels holds the localized strings shown around the entry form
type Labels struct {
	Location  string
	Date      string
	TimeStart string
	TimeEnd   string
	Vehicle   string
	KmStart   string
	KmEnd     string
	WorkType  string
	WorkOrder string

	IncompleteTitle   string
	IncompleteMessage string
	ChooseLocation    string

	Updated    string
	NotUpdated string
	Deleted    string
	NotDeleted string
	Created    string
}

// English is the default label set
var English = Labels{
	Location:  "Location",
	Date:      "Date",
	TimeStart: "Time start",
	TimeEnd:   "Time end",
	Vehicle:   "Vehicle",
	KmStart:   "Start kilometers",
	KmEnd:     "End kilometers",
	WorkType:  "Work type",
	WorkOrder: "Work order",

	IncompleteTitle:   "Incomplete entry",
	IncompleteMessage: "The following fields are required:",
	ChooseLocation:    "Choose location",

	Updated:    "Updated",
	NotUpdated: "Update not performed.",
	Deleted:    "Deleted",
	NotDeleted: "Delete not performed.",
	Created:    "Created",
}

// Croatian is the label set of the original logbook
var Croatian = Labels{
	Location:  "Lokacija",
	Date:      "Datum",
	TimeStart: "Vrijeme početak",
	TimeEnd:   "Vrijeme kraj",
	Vehicle:   "Vozilo",
	KmStart:   "Početni kilometri",
	KmEnd:     "Završni kilometri",
	WorkType:  "Vrsta posla",
	WorkOrder: "Radni nalog",

	IncompleteTitle:   "Nepotpun unos",
	IncompleteMessage: "Sljedeća polja su obavezna:",
	ChooseLocation:    "Odaberite lokaciju",

	Updated:    "Ažurirano",
	NotUpdated: "Ažuriranje nije provedeno.",
	Deleted:    "Izbrisano",
	NotDeleted: "Brisanje nije provedeno.",
	Created:    "Spremljeno",
}

// LabelsFor returns the label set for a locale, falling back to English
func LabelsFor(locale string) Labels {
	switch strings.ToLower(strings.TrimSpace(locale)) {
	case "hr", "hr_hr", "hr-hr":
		return Croatian
	default:
		return English
	}
}
