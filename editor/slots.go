package editor

import (
	"fmt"
	"time"
)

// Slot duration bounds in minutes.
const (
	MinSlotDuration = 5
	MaxSlotDuration = 120
)

// Slot is one half-open booking interval [Start, End).
type Slot struct {
	Start time.Time
	End   time.Time
}

// ClampSlotDuration folds a requested duration into the supported range.
// Both the preview and the later creation request go through this same
// function so the two can never disagree on slot shape.
func ClampSlotDuration(minutes int) int {
	if minutes < MinSlotDuration {
		return MinSlotDuration
	}
	if minutes > MaxSlotDuration {
		return MaxSlotDuration
	}
	return minutes
}

// PreviewSlots computes the discrete slots the scheduling sub-view offers
// for a day: starting at startTime, slots of the clamped duration are
// emitted until a candidate's end would pass endTime. A partial trailing
// slot is never emitted; that is a boundary rule, not rounding.
//
// startTime and endTime use the "15:04" wall-clock layout and are anchored
// to day's date and location.
func PreviewSlots(day time.Time, startTime, endTime string, durationMinutes int) ([]Slot, error) {
	start, err := anchorClock(day, startTime)
	if err != nil {
		return nil, err
	}
	end, err := anchorClock(day, endTime)
	if err != nil {
		return nil, err
	}
	if !end.After(start) {
		return nil, ErrTimeWindowInvalid
	}

	duration := time.Duration(ClampSlotDuration(durationMinutes)) * time.Minute

	var slots []Slot
	for current := start; !current.Add(duration).After(end); current = current.Add(duration) {
		slots = append(slots, Slot{Start: current, End: current.Add(duration)})
	}
	return slots, nil
}

func anchorClock(day time.Time, clock string) (time.Time, error) {
	parsed, err := time.Parse("15:04", clock)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrTimeWindowInvalid, clock)
	}
	return time.Date(day.Year(), day.Month(), day.Day(),
		parsed.Hour(), parsed.Minute(), 0, 0, day.Location()), nil
}
