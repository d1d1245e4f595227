package scheduling

import (
	"context"
	"testing"
	"time"

	"worklink/models"
)

func TestGetAvailableSlots_DefaultScheduleCreatedOnFirstAccess(t *testing.T) {
	svc, _ := newTestService(time.Second)
	ctx := context.Background()

	slots, err := svc.GetAvailableSlots(ctx, "pro-1", monday, 60)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 8 {
		t.Fatalf("expected 8 slots from the default Mon-Fri schedule, got %d", len(slots))
	}

	schedule, err := svc.GetSchedule(ctx, "pro-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !schedule.EntryFor(time.Monday).Enabled || schedule.EntryFor(time.Sunday).Enabled {
		t.Errorf("default schedule should enable weekdays and disable weekends")
	}
}

func TestGetAvailableSlots_ExcludesReservedWindow(t *testing.T) {
	svc, _ := newTestService(time.Second)
	ctx := context.Background()

	if _, err := svc.Reserve(ctx, ReservationRequest{
		ProfessionalID: "pro-1",
		ClientID:       "client-1",
		StartTime:      monday.Add(10 * time.Hour),
		EndTime:        monday.Add(11 * time.Hour),
	}); err != nil {
		t.Fatalf("reservation failed: %v", err)
	}

	slots, err := svc.GetAvailableSlots(ctx, "pro-1", monday, 60)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 7 {
		t.Fatalf("expected 7 slots after reserving 10:00, got %d", len(slots))
	}
	for _, slot := range slots {
		if slot.StartTime.Equal(monday.Add(10 * time.Hour)) {
			t.Errorf("reserved 10:00 slot still offered")
		}
	}
}

func TestGetAvailableSlots_CancellationReopensSlot(t *testing.T) {
	svc, _ := newTestService(time.Second)
	ctx := context.Background()

	commitment, err := svc.Reserve(ctx, ReservationRequest{
		ProfessionalID: "pro-1",
		ClientID:       "client-1",
		StartTime:      monday.Add(10 * time.Hour),
		EndTime:        monday.Add(11 * time.Hour),
	})
	if err != nil {
		t.Fatalf("reservation failed: %v", err)
	}
	if _, err := svc.CancelReservation(ctx, commitment.ID); err != nil {
		t.Fatalf("cancellation failed: %v", err)
	}

	slots, err := svc.GetAvailableSlots(ctx, "pro-1", monday, 60)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	found := false
	for _, slot := range slots {
		if slot.StartTime.Equal(monday.Add(10 * time.Hour)) {
			found = true
		}
	}
	if !found {
		t.Errorf("cancelled window should be offered again")
	}
	if len(slots) != 8 {
		t.Errorf("expected the full 8 slots after cancellation, got %d", len(slots))
	}
}

func TestGetAvailableSlots_DisabledDay(t *testing.T) {
	svc, _ := newTestService(time.Second)
	ctx := context.Background()

	saturday := monday.AddDate(0, 0, 5)
	slots, err := svc.GetAvailableSlots(ctx, "pro-1", saturday, 60)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 0 {
		t.Fatalf("expected no slots on a disabled day, got %d", len(slots))
	}
}

func TestSetSchedule_Validation(t *testing.T) {
	svc, _ := newTestService(time.Second)
	ctx := context.Background()

	bad := models.DefaultWeeklySchedule("pro-1")
	bad.Entries[int(time.Tuesday)] = models.ScheduleEntry{Enabled: true, Start: 18 * 60, End: 9 * 60}
	if err := svc.SetSchedule(ctx, bad); !isValidationError(err) {
		t.Errorf("expected ValidationError for inverted entry, got %v", err)
	}

	bad = models.DefaultWeeklySchedule("pro-1")
	bad.BufferMinutes = -5
	if err := svc.SetSchedule(ctx, bad); !isValidationError(err) {
		t.Errorf("expected ValidationError for negative buffer, got %v", err)
	}

	bad = models.DefaultWeeklySchedule("pro-1")
	bad.MaxBookingsPerDay = 0
	if err := svc.SetSchedule(ctx, bad); !isValidationError(err) {
		t.Errorf("expected ValidationError for zero daily cap, got %v", err)
	}

	// A disabled entry's times are ignored entirely.
	ok := models.DefaultWeeklySchedule("pro-1")
	ok.Entries[int(time.Sunday)] = models.ScheduleEntry{Enabled: false, Start: 23 * 60, End: 1 * 60}
	if err := svc.SetSchedule(ctx, ok); err != nil {
		t.Errorf("disabled entry must not be validated, got %v", err)
	}
}

func TestListCommitments_Window(t *testing.T) {
	svc, _ := newTestService(time.Second)
	ctx := context.Background()

	for hour := 9; hour < 12; hour++ {
		if _, err := svc.Reserve(ctx, ReservationRequest{
			ProfessionalID: "pro-1",
			ClientID:       "client-1",
			StartTime:      monday.Add(time.Duration(hour) * time.Hour),
			EndTime:        monday.Add(time.Duration(hour+1) * time.Hour),
		}); err != nil {
			t.Fatalf("reservation at %d:00 failed: %v", hour, err)
		}
	}

	commitments, err := svc.ListCommitments(ctx, "pro-1", monday.Add(10*time.Hour), monday.Add(11*time.Hour))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(commitments) != 1 {
		t.Fatalf("expected 1 commitment in [10:00, 11:00), got %d", len(commitments))
	}

	if _, err := svc.ListCommitments(ctx, "pro-1", monday.Add(11*time.Hour), monday.Add(10*time.Hour)); !isValidationError(err) {
		t.Errorf("expected ValidationError for inverted window, got %v", err)
	}
}
