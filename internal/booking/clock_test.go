package booking

import (
	"errors"
	"testing"
	"time"
)

func TestMinutesOfDay(t *testing.T) {
	valid := []struct {
		in   string
		want int
	}{
		{"00:00", 0},
		{"09:30", 570},
		{"12:00", 720},
		{"23:59", 1439},
	}
	for _, tt := range valid {
		got, err := minutesOfDay(tt.in)
		if err != nil {
			t.Errorf("%q: unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%q: expected %d, got %d", tt.in, tt.want, got)
		}
	}

	invalid := []string{
		"",
		"9:30",
		"09:3",
		"0930",
		"24:00",
		"07:60",
		"ab:cd",
		"07-30",
		"07:30:00",
		" 9:30",
	}
	for _, in := range invalid {
		if _, err := minutesOfDay(in); !errors.Is(err, ErrInvalidTime) {
			t.Errorf("%q: expected ErrInvalidTime, got %v", in, err)
		}
	}
}

func TestCanonicalDate(t *testing.T) {
	valid := []string{"2030-04-15", "2024-02-29", "2030-12-31"}
	for _, in := range valid {
		got, err := canonicalDate(in)
		if err != nil {
			t.Errorf("%q: unexpected error: %v", in, err)
			continue
		}
		if got != in {
			t.Errorf("%q: expected unchanged, got %q", in, got)
		}
	}

	invalid := []string{
		"",
		"2030-02-30",
		"2030-13-01",
		"2025-02-29",
		"15-04-2030",
		"2030/04/15",
		"20300415",
		"2030-4-15",
		"next tuesday",
	}
	for _, in := range invalid {
		if _, err := canonicalDate(in); !errors.Is(err, ErrInvalidDate) {
			t.Errorf("%q: expected ErrInvalidDate, got %v", in, err)
		}
	}
}

func TestSlotStart(t *testing.T) {
	got := slotStart("2030-04-15", 570)
	want := time.Date(2030, 4, 15, 9, 30, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}
