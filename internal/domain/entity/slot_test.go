package entity

import (
	"reflect"
	"testing"
	"time"
)

var lunchBreak = &Blackout{StartTime: "11:00", EndTime: "13:00"}

func slotStarts(slots []Slot) []string {
	starts := make([]string, 0, len(slots))
	for _, s := range slots {
		starts = append(starts, s.StartTime)
	}
	return starts
}

func TestGenerateSlots_FullDayWithLunchBreak(t *testing.T) {
	slots := GenerateSlots("08:00", "17:00", 30*time.Minute, lunchBreak)

	want := []string{
		"08:00", "08:30", "09:00", "09:30", "10:00", "10:30",
		"13:00", "13:30", "14:00", "14:30", "15:00", "15:30", "16:00", "16:30",
	}
	if got := slotStarts(slots); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected starts %v, got %v", want, got)
	}

	for _, s := range slots {
		if s.StartTime == "11:00" || s.StartTime == "12:30" {
			t.Fatalf("slot %s overlaps the lunch break", s.StartTime)
		}
	}
}

func TestGenerateSlots_WindowEndBoundary(t *testing.T) {
	// A slot ending exactly at the window end is kept.
	slots := GenerateSlots("08:00", "09:00", 30*time.Minute, lunchBreak)
	want := []string{"08:00", "08:30"}
	if got := slotStarts(slots); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected starts %v, got %v", want, got)
	}
	if slots[1].EndTime != "09:00" {
		t.Fatalf("expected last slot to end at the window boundary, got %s", slots[1].EndTime)
	}

	// A trailing partial increment is dropped silently.
	slots = GenerateSlots("08:00", "08:50", 30*time.Minute, lunchBreak)
	if got := slotStarts(slots); !reflect.DeepEqual(got, []string{"08:00"}) {
		t.Fatalf("expected only 08:00, got %v", got)
	}
}

func TestGenerateSlots_BlackoutBoundaries(t *testing.T) {
	slots := GenerateSlots("09:00", "14:00", 30*time.Minute, lunchBreak)

	want := []string{"09:00", "09:30", "10:00", "10:30", "13:00", "13:30"}
	if got := slotStarts(slots); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected starts %v, got %v", want, got)
	}

	// 10:30-11:00 ends exactly at the blackout start and 13:00-13:30 starts
	// exactly at the blackout end; both must be offered.
	if slots[3].EndTime != "11:00" {
		t.Fatalf("expected slot ending at 11:00, got %s", slots[3].EndTime)
	}
	if slots[4].StartTime != "13:00" {
		t.Fatalf("expected slot starting at 13:00, got %s", slots[4].StartTime)
	}
}

func TestGenerateSlots_NoBlackout(t *testing.T) {
	slots := GenerateSlots("10:00", "12:00", 30*time.Minute, nil)
	want := []string{"10:00", "10:30", "11:00", "11:30"}
	if got := slotStarts(slots); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected starts %v, got %v", want, got)
	}
}

func TestGenerateSlots_InvalidWindows(t *testing.T) {
	cases := []struct {
		name       string
		start, end string
	}{
		{"inverted", "17:00", "08:00"},
		{"zero length", "08:00", "08:00"},
		{"unparsable start", "abc", "17:00"},
		{"unparsable end", "08:00", ""},
	}
	for _, tc := range cases {
		if slots := GenerateSlots(tc.start, tc.end, 30*time.Minute, lunchBreak); len(slots) != 0 {
			t.Errorf("%s: expected empty sequence, got %d slots", tc.name, len(slots))
		}
	}

	if slots := GenerateSlots("08:00", "17:00", 0, lunchBreak); len(slots) != 0 {
		t.Error("expected empty sequence for non-positive duration")
	}
}

func TestGenerateSlots_Properties(t *testing.T) {
	duration := 30 * time.Minute
	slots := GenerateSlots("08:00", "17:00", duration, lunchBreak)

	prev := -1
	for _, s := range slots {
		start, err := ParseClock(s.StartTime)
		if err != nil {
			t.Fatalf("unparsable slot start %q: %v", s.StartTime, err)
		}
		end, err := ParseClock(s.EndTime)
		if err != nil {
			t.Fatalf("unparsable slot end %q: %v", s.EndTime, err)
		}
		if end-start != int(duration/time.Minute) {
			t.Fatalf("slot %s-%s does not have the configured duration", s.StartTime, s.EndTime)
		}
		if start <= prev {
			t.Fatalf("slot starts are not strictly ascending at %s", s.StartTime)
		}
		prev = start
	}

	// Pure function: regenerating yields an identical sequence.
	again := GenerateSlots("08:00", "17:00", duration, lunchBreak)
	if !reflect.DeepEqual(slots, again) {
		t.Fatal("regenerating slots for the same window changed the result")
	}
}

func TestParseClock(t *testing.T) {
	cases := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"08:00", 480, false},
		{"08:30:00", 510, false},
		{"00:00", 0, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"08:60", 0, true},
		{"8", 0, true},
		{"", 0, true},
	}
	for _, tc := range cases {
		got, err := ParseClock(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseClock(%q): expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseClock(%q): unexpected error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseClock(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeClock(t *testing.T) {
	if got := NormalizeClock("08:30:00"); got != "08:30" {
		t.Errorf("expected 08:30, got %q", got)
	}
	if got := NormalizeClock("nonsense"); got != "" {
		t.Errorf("expected empty string for invalid input, got %q", got)
	}
}
