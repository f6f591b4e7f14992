package entity

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Slot is a fixed-duration bookable interval derived from a DoctorSchedule
// window. Slots are regenerated on every request and never persisted.
type Slot struct {
	StartTime string `json:"start_time"` // Format: HH:MM
	EndTime   string `json:"end_time"`   // Format: HH:MM
}

// Blackout is a recurring interval (lunch break) during which no slots are
// offered. The overlap test is half-open: a slot ending exactly at the
// blackout start, or starting exactly at the blackout end, is kept.
type Blackout struct {
	StartTime string // Format: HH:MM
	EndTime   string // Format: HH:MM
}

// ParseClock converts "HH:MM" or "HH:MM:SS" to minutes since midnight.
func ParseClock(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("invalid clock value %q", s)
	}
	hh, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid clock value %q", s)
	}
	mm, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid clock value %q", s)
	}
	if hh < 0 || hh > 23 || mm < 0 || mm > 59 {
		return 0, fmt.Errorf("clock value %q out of range", s)
	}
	return hh*60 + mm, nil
}

// FormatClock converts minutes since midnight to "HH:MM".
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// NormalizeClock reduces "HH:MM" or "HH:MM:SS" (as read back from a time
// column) to "HH:MM". Returns "" for values that do not parse.
func NormalizeClock(s string) string {
	minutes, err := ParseClock(s)
	if err != nil {
		return ""
	}
	return FormatClock(minutes)
}

// GenerateSlots derives the ordered slot grid for a working window.
//
// The walk starts at startTime and advances in fixed duration increments; a
// candidate is emitted only while its end stays within the window
// (candidate_end <= endTime), so a trailing partial increment is dropped
// silently. Candidates overlapping the blackout interval are skipped.
// Pure function of its inputs: an inverted or unparsable window yields an
// empty sequence, never an error.
func GenerateSlots(startTime, endTime string, duration time.Duration, blackout *Blackout) []Slot {
	start, err := ParseClock(startTime)
	if err != nil {
		return nil
	}
	end, err := ParseClock(endTime)
	if err != nil {
		return nil
	}

	step := int(duration / time.Minute)
	if step <= 0 {
		return nil
	}

	blackoutStart, blackoutEnd := -1, -1
	if blackout != nil {
		bs, err1 := ParseClock(blackout.StartTime)
		be, err2 := ParseClock(blackout.EndTime)
		if err1 == nil && err2 == nil {
			blackoutStart, blackoutEnd = bs, be
		}
	}

	var slots []Slot
	for cur := start; cur+step <= end; cur += step {
		curEnd := cur + step
		if blackoutStart >= 0 && !(curEnd <= blackoutStart || cur >= blackoutEnd) {
			continue
		}
		slots = append(slots, Slot{StartTime: FormatClock(cur), EndTime: FormatClock(curEnd)})
	}
	return slots
}
