package scheduling

import (
	"testing"
	"time"

	"worklink/models"
)

func commitmentAt(start, end time.Time, status string) models.Commitment {
	return models.Commitment{
		ID:             "c-" + start.Format("1504"),
		ProfessionalID: "pro-1",
		ClientID:       "client-1",
		StartTime:      start,
		EndTime:        end,
		Date:           start.Format("2006-01-02"),
		Status:         status,
	}
}

func hourSlots(day time.Time, startHour, count int) []models.CandidateSlot {
	slots := make([]models.CandidateSlot, 0, count)
	for i := 0; i < count; i++ {
		start := day.Add(time.Duration(startHour+i) * time.Hour)
		slots = append(slots, models.CandidateSlot{StartTime: start, EndTime: start.Add(time.Hour)})
	}
	return slots
}

func TestFilterAvailable_RemovesOverlaps(t *testing.T) {
	slots := hourSlots(monday, 9, 8) // 09:00 .. 16:00 starts
	commitments := []models.Commitment{
		commitmentAt(monday.Add(10*time.Hour), monday.Add(11*time.Hour), models.CommitmentActive),
	}

	kept := FilterAvailable(slots, commitments, 0, 8)
	if len(kept) != 7 {
		t.Fatalf("expected 7 slots after removing the 10:00 overlap, got %d", len(kept))
	}
	for _, slot := range kept {
		if slot.StartTime.Equal(monday.Add(10 * time.Hour)) {
			t.Errorf("10:00 slot should have been excluded")
		}
	}
	// Touching endpoints are compatible: 09:00-10:00 and 11:00-12:00 survive.
	if !kept[0].StartTime.Equal(monday.Add(9 * time.Hour)) {
		t.Errorf("expected 09:00 slot kept, got %s", kept[0].StartTime)
	}
	if !kept[1].StartTime.Equal(monday.Add(11 * time.Hour)) {
		t.Errorf("expected 11:00 slot kept, got %s", kept[1].StartTime)
	}
}

func TestFilterAvailable_BufferExclusion(t *testing.T) {
	// One commitment 10:00-11:00 with a 15-minute buffer: a 60-minute slot
	// starting 11:10 is excluded, one starting 11:15 is kept.
	commitments := []models.Commitment{
		commitmentAt(monday.Add(10*time.Hour), monday.Add(11*time.Hour), models.CommitmentActive),
	}
	at1110 := monday.Add(11*time.Hour + 10*time.Minute)
	at1115 := monday.Add(11*time.Hour + 15*time.Minute)
	slots := []models.CandidateSlot{
		{StartTime: at1110, EndTime: at1110.Add(time.Hour)},
		{StartTime: at1115, EndTime: at1115.Add(time.Hour)},
	}

	kept := FilterAvailable(slots, commitments, 15, 8)
	if len(kept) != 1 {
		t.Fatalf("expected exactly one slot kept, got %d", len(kept))
	}
	if !kept[0].StartTime.Equal(at1115) {
		t.Errorf("expected the 11:15 slot kept, got %s", kept[0].StartTime)
	}

	// The buffer pads the leading edge too: a slot ending within 15 minutes
	// before the commitment's start is excluded.
	at0850 := monday.Add(8*time.Hour + 50*time.Minute)
	leading := []models.CandidateSlot{{StartTime: at0850, EndTime: at0850.Add(time.Hour)}}
	if kept := FilterAvailable(leading, commitments, 15, 8); len(kept) != 0 {
		t.Errorf("expected slot ending 09:50 excluded by leading buffer, got %d kept", len(kept))
	}
}

func TestFilterAvailable_DailyCapExcludesEverything(t *testing.T) {
	slots := hourSlots(monday, 9, 8)
	commitments := []models.Commitment{
		// 07:00-08:00 does not overlap any candidate, but it fills the cap.
		commitmentAt(monday.Add(7*time.Hour), monday.Add(8*time.Hour), models.CommitmentActive),
	}

	kept := FilterAvailable(slots, commitments, 0, 1)
	if len(kept) != 0 {
		t.Fatalf("expected no slots once the daily cap is reached, got %d", len(kept))
	}
}

func TestFilterAvailable_CancelledCommitmentsIgnored(t *testing.T) {
	slots := hourSlots(monday, 9, 8)
	commitments := []models.Commitment{
		commitmentAt(monday.Add(10*time.Hour), monday.Add(11*time.Hour), models.CommitmentCancelled),
	}

	kept := FilterAvailable(slots, commitments, 30, 1)
	if len(kept) != len(slots) {
		t.Fatalf("cancelled commitments must not block slots or count toward the cap; got %d of %d", len(kept), len(slots))
	}
}

func TestFilterAvailable_OrderPreservedAndPure(t *testing.T) {
	slots := hourSlots(monday, 9, 8)
	commitments := []models.Commitment{
		commitmentAt(monday.Add(12*time.Hour), monday.Add(13*time.Hour), models.CommitmentActive),
	}

	first := FilterAvailable(slots, commitments, 0, 8)
	second := FilterAvailable(slots, commitments, 0, 8)

	if len(first) != len(second) {
		t.Fatalf("identical inputs must give identical output, got %d vs %d", len(first), len(second))
	}
	for i := 1; i < len(first); i++ {
		if !first[i-1].StartTime.Before(first[i].StartTime) {
			t.Errorf("output order not preserved at index %d", i)
		}
	}
	// Input slots are untouched.
	for i, slot := range slots {
		if slot.Available {
			t.Errorf("input slot %d was mutated", i)
		}
	}
}
