package scheduling

import (
	"context"
	"time"

	"worklink/models"
	"worklink/utils"

	"go.uber.org/zap"
)

// GetAvailableSlots composes the read path: generate candidate slots from the
// weekly schedule, fetch the date's commitments from the conflict index, and
// keep only the slots that survive overlap, buffer, and daily-cap checks.
func (s *DefaultSchedulingService) GetAvailableSlots(ctx context.Context, professionalID string, date time.Time, durationMinutes int) ([]models.CandidateSlot, error) {
	if professionalID == "" {
		return nil, NewValidationError("professional id is required")
	}

	schedule, err := s.GetSchedule(ctx, professionalID)
	if err != nil {
		return nil, err
	}

	candidates, err := GenerateSlots(schedule, date, durationMinutes)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return []models.CandidateSlot{}, nil
	}

	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)
	commitments, err := s.CommitmentRepo.FindOverlapping(ctx, professionalID, dayStart, dayEnd)
	if err != nil {
		return nil, &StorageError{Op: "fetch commitments", Err: err}
	}

	available := FilterAvailable(candidates, commitments, schedule.BufferMinutes, schedule.MaxBookingsPerDay)
	utils.GetLogger().Debug("computed available slots",
		zap.String("professionalID", professionalID),
		zap.String("date", dayStart.Format("2006-01-02")),
		zap.Int("candidates", len(candidates)),
		zap.Int("available", len(available)))
	return available, nil
}
