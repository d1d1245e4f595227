package scheduling

import (
	"testing"
	"time"

	"worklink/models"
)

// monday is 2026-03-02, a Monday.
var monday = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

func nineToFiveSchedule(professionalID string) *models.WeeklySchedule {
	ws := models.DefaultWeeklySchedule(professionalID)
	return ws
}

func TestGenerateSlots_FullDay(t *testing.T) {
	ws := nineToFiveSchedule("pro-1")

	slots, err := GenerateSlots(ws, monday, 60)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 8 {
		t.Fatalf("expected 8 slots for 09:00-17:00 at 60 min, got %d", len(slots))
	}
	for i, slot := range slots {
		wantStart := monday.Add(time.Duration(9+i) * time.Hour)
		if !slot.StartTime.Equal(wantStart) {
			t.Errorf("slot %d: expected start %s, got %s", i, wantStart, slot.StartTime)
		}
		if !slot.EndTime.Equal(wantStart.Add(time.Hour)) {
			t.Errorf("slot %d: expected end %s, got %s", i, wantStart.Add(time.Hour), slot.EndTime)
		}
	}
	// Last slot must end exactly at 17:00; no 17:00-start slot exists.
	last := slots[len(slots)-1]
	if !last.EndTime.Equal(monday.Add(17 * time.Hour)) {
		t.Errorf("expected last slot to end at 17:00, got %s", last.EndTime)
	}
}

func TestGenerateSlots_NoPartialSlotAtWindowEnd(t *testing.T) {
	ws := nineToFiveSchedule("pro-1")

	// 90-minute slots in an 8-hour window: 5 fit (09:00..16:00), the sixth
	// would end at 17:30 and must not be emitted.
	slots, err := GenerateSlots(ws, monday, 90)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 5 {
		t.Fatalf("expected 5 slots, got %d", len(slots))
	}
	if got := slots[4].EndTime; !got.Equal(monday.Add(16*time.Hour + 30*time.Minute)) {
		t.Errorf("expected last slot to end 16:30, got %s", got)
	}
}

func TestGenerateSlots_DisabledDayIsEmpty(t *testing.T) {
	ws := nineToFiveSchedule("pro-1")
	sunday := monday.AddDate(0, 0, -1)

	for _, duration := range []int{30, 60, 240, 480} {
		slots, err := GenerateSlots(ws, sunday, duration)
		if err != nil {
			t.Fatalf("duration %d: unexpected error: %v", duration, err)
		}
		if len(slots) != 0 {
			t.Errorf("duration %d: expected no slots on a disabled day, got %d", duration, len(slots))
		}
	}
}

func TestGenerateSlots_DurationExceedsWindow(t *testing.T) {
	ws := nineToFiveSchedule("pro-1")

	// 480 minutes exactly fills 09:00-17:00; one slot.
	slots, err := GenerateSlots(ws, monday, 480)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 1 {
		t.Fatalf("expected exactly one 8-hour slot, got %d", len(slots))
	}

	// 481 minutes does not fit; empty, not an error.
	slots, err = GenerateSlots(ws, monday, 481)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 0 {
		t.Fatalf("expected no slots when duration exceeds window, got %d", len(slots))
	}
}

func TestGenerateSlots_InvalidInput(t *testing.T) {
	ws := nineToFiveSchedule("pro-1")

	for _, duration := range []int{0, -30} {
		if _, err := GenerateSlots(ws, monday, duration); !isValidationError(err) {
			t.Errorf("duration %d: expected ValidationError, got %v", duration, err)
		}
	}

	bad := nineToFiveSchedule("pro-1")
	bad.Entries[int(time.Monday)] = models.ScheduleEntry{Enabled: true, Start: 17 * 60, End: 9 * 60}
	if _, err := GenerateSlots(bad, monday, 60); !isValidationError(err) {
		t.Errorf("expected ValidationError for inverted entry, got %v", err)
	}
}

func TestGenerateSlots_Deterministic(t *testing.T) {
	ws := nineToFiveSchedule("pro-1")

	first, err := GenerateSlots(ws, monday, 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := GenerateSlots(ws, monday, 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(first) != len(second) {
		t.Fatalf("expected identical output, got %d vs %d slots", len(first), len(second))
	}
	for i := range first {
		if !first[i].StartTime.Equal(second[i].StartTime) || !first[i].EndTime.Equal(second[i].EndTime) {
			t.Errorf("slot %d differs between identical calls", i)
		}
	}
}

func isValidationError(err error) bool {
	if err == nil {
		return false
	}
	_, ok := err.(*ValidationError)
	return ok
}
