package commands

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"workbook/internal/calendar"
	"workbook/internal/models"
)

// seedBusyDay stores five entries on 05.03.2024. and one on 12.03.2024.
func seedBusyDay(t *testing.T, dbFile string) {
	t.Helper()
	for i := 1; i <= 5; i++ {
		addEntry(t, dbFile, fmt.Sprintf("Loc%d", i), "05.03.2024.")
	}
	addEntry(t, dbFile, "Knin", "12.03.2024.")
}

// TestMonthCommandGrid tests the month grid and its overflow marker
func TestMonthCommandGrid(t *testing.T) {
	dbFile := isolate(t)
	seedBusyDay(t, dbFile)

	out, err := execute(t, NewMonthCommand(), "--db", dbFile, "--month", "03.2024")
	if err != nil {
		t.Fatalf("month failed: %v\nOutput: %s", err, out)
	}

	for _, want := range []string{"March 2024", "Mon", "Sun", "Loc1", "Loc2", "Loc3", calendar.OverflowMarker, "Knin"} {
		if !strings.Contains(out, want) {
			t.Errorf("grid missing %q:\n%s", want, out)
		}
	}
	for _, hidden := range []string{"Loc4", "Loc5"} {
		if strings.Contains(out, hidden) {
			t.Errorf("grid should not show %q past the overflow marker:\n%s", hidden, out)
		}
	}
}

// TestMonthCommandDay tests opening a day with zero, one and several entries
func TestMonthCommandDay(t *testing.T) {
	tests := []struct {
		name      string
		day       string
		chooser   *scriptedChooser
		wantErr   error
		wantCalls int
		want      string
		notWant   string
	}{
		{
			name:      "several entries ask for a location",
			day:       "5",
			chooser:   &scriptedChooser{pick: 4},
			wantCalls: 1,
			want:      "Loc5",
		},
		{
			name:      "single entry opens directly",
			day:       "12",
			chooser:   &scriptedChooser{},
			wantCalls: 0,
			want:      "WO-42",
		},
		{
			name:      "cancelled chooser opens nothing",
			day:       "5",
			chooser:   &scriptedChooser{err: calendar.ErrCancelled},
			wantCalls: 1,
			notWant:   "WO-42",
		},
		{
			name:      "empty day",
			day:       "6",
			chooser:   &scriptedChooser{},
			wantErr:   calendar.ErrNoEntries,
			wantCalls: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dbFile := isolate(t)
			seedBusyDay(t, dbFile)
			useChooser(t, tt.chooser)

			out, err := execute(t, NewMonthCommand(), "--db", dbFile, "--month", "03.2024", "--day", tt.day)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Expected %v, got %v", tt.wantErr, err)
				}
			} else if err != nil {
				t.Fatalf("month --day failed: %v\nOutput: %s", err, out)
			}

			if tt.chooser.calls != tt.wantCalls {
				t.Errorf("chooser called %d times, want %d", tt.chooser.calls, tt.wantCalls)
			}
			if tt.want != "" && !strings.Contains(out, tt.want) {
				t.Errorf("output missing %q:\n%s", tt.want, out)
			}
			if tt.notWant != "" && strings.Contains(out, tt.notWant) {
				t.Errorf("output should not contain %q:\n%s", tt.notWant, out)
			}
		})
	}
}

// TestMonthCommandChooserItems tests the title and locations offered by the chooser
func TestMonthCommandChooserItems(t *testing.T) {
	dbFile := isolate(t)
	seedBusyDay(t, dbFile)
	chooser := &scriptedChooser{pick: 0}
	useChooser(t, chooser)

	if _, err := execute(t, NewMonthCommand(), "--db", dbFile, "--month", "03.2024", "--day", "5"); err != nil {
		t.Fatalf("month --day failed: %v", err)
	}

	if chooser.title != "Choose location" {
		t.Errorf("title = %q, want %q", chooser.title, "Choose location")
	}
	want := []string{"Loc1", "Loc2", "Loc3", "Loc4", "Loc5"}
	if strings.Join(chooser.items, ",") != strings.Join(want, ",") {
		t.Errorf("items = %v, want %v", chooser.items, want)
	}
}

// TestMonthCommandInvalidInput tests malformed months and out-of-range days
func TestMonthCommandInvalidInput(t *testing.T) {
	dbFile := isolate(t)

	_, err := execute(t, NewMonthCommand(), "--db", dbFile, "--month", "13.2024")
	if !errors.Is(err, models.ErrInvalidMonth) {
		t.Errorf("Expected ErrInvalidMonth, got %v", err)
	}

	_, err = execute(t, NewMonthCommand(), "--db", dbFile, "--month", "02.2023", "--day", "29")
	if err == nil || !strings.Contains(err.Error(), "not in 02.2023") {
		t.Errorf("Expected day out of range error, got %v", err)
	}
}

// TestMonthCommandList tests the entry listing below the grid
func TestMonthCommandList(t *testing.T) {
	dbFile := isolate(t)
	seedBusyDay(t, dbFile)
	addEntry(t, dbFile, "Zadar", "01.04.2024.")

	out, err := execute(t, NewMonthCommand(), "--db", dbFile, "--month", "03.2024", "--list")
	if err != nil {
		t.Fatalf("month --list failed: %v", err)
	}
	for _, want := range []string{"Loc4", "Loc5", "WO-42", "Work order"} {
		if !strings.Contains(out, want) {
			t.Errorf("listing missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Zadar") {
		t.Errorf("listing should stay within the month:\n%s", out)
	}
}
