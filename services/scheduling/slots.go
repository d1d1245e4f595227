package scheduling

import (
	"time"

	"worklink/models"
)

// GenerateSlots produces the full ordered list of fixed-duration candidate
// windows that fit inside the professional's working hours on the given date.
// Slots are back-to-back; the last slot must end at or before the window end,
// so no truncated slot is ever emitted. The result is not filtered for
// conflicts — this function knows nothing about existing bookings.
//
// A disabled weekday yields an empty sequence; so does a duration longer than
// the working window. Both are normal outcomes, not errors.
func GenerateSlots(schedule *models.WeeklySchedule, date time.Time, durationMinutes int) ([]models.CandidateSlot, error) {
	if durationMinutes <= 0 {
		return nil, NewValidationError("duration must be positive, got %d", durationMinutes)
	}

	entry := schedule.EntryFor(date.Weekday())
	if !entry.Enabled {
		return nil, nil
	}
	if entry.Start >= entry.End {
		return nil, NewValidationError("schedule entry for %s has start %d >= end %d",
			date.Weekday(), entry.Start, entry.End)
	}

	midnight := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())

	var slots []models.CandidateSlot
	for start := entry.Start; start+durationMinutes <= entry.End; start += durationMinutes {
		slots = append(slots, models.CandidateSlot{
			StartTime: midnight.Add(time.Duration(start) * time.Minute),
			EndTime:   midnight.Add(time.Duration(start+durationMinutes) * time.Minute),
			Available: true,
		})
	}
	return slots, nil
}
