package scheduling

import (
	"context"
	"time"

	commitmentRepo "worklink/database/repository/commitment"
	scheduleRepo "worklink/database/repository/schedule"
	"worklink/models"
	"worklink/utils"

	"go.uber.org/zap"
)

// DefaultSchedulingService is the production implementation of SchedulingService.
type DefaultSchedulingService struct {
	ScheduleRepo   scheduleRepo.ScheduleRepository
	CommitmentRepo commitmentRepo.CommitmentRepository
	Locker         ExclusionLocker
	Notifier       OutcomeNotifier
}

// GetSchedule fetches the professional's weekly schedule, creating it with
// platform defaults on first access.
func (s *DefaultSchedulingService) GetSchedule(ctx context.Context, professionalID string) (*models.WeeklySchedule, error) {
	if professionalID == "" {
		return nil, NewValidationError("professional id is required")
	}

	schedule, err := s.ScheduleRepo.Get(ctx, professionalID)
	if err != nil {
		return nil, &StorageError{Op: "fetch schedule", Err: err}
	}
	if schedule != nil {
		return schedule, nil
	}

	schedule = models.DefaultWeeklySchedule(professionalID)
	if err := s.ScheduleRepo.Replace(ctx, schedule); err != nil {
		return nil, &StorageError{Op: "store default schedule", Err: err}
	}
	utils.GetLogger().Info("created default schedule",
		zap.String("professionalID", professionalID))
	return schedule, nil
}

// SetSchedule validates and replaces the professional's schedule wholesale.
func (s *DefaultSchedulingService) SetSchedule(ctx context.Context, schedule *models.WeeklySchedule) error {
	if err := validateSchedule(schedule); err != nil {
		return err
	}
	if err := s.ScheduleRepo.Replace(ctx, schedule); err != nil {
		return &StorageError{Op: "replace schedule", Err: err}
	}
	return nil
}

// ListCommitments returns the professional's commitments intersecting [from, to).
func (s *DefaultSchedulingService) ListCommitments(ctx context.Context, professionalID string, from, to time.Time) ([]models.Commitment, error) {
	if professionalID == "" {
		return nil, NewValidationError("professional id is required")
	}
	if !from.Before(to) {
		return nil, NewValidationError("window start must precede window end")
	}
	commitments, err := s.CommitmentRepo.ListWindow(ctx, professionalID, from, to)
	if err != nil {
		return nil, &StorageError{Op: "list commitments", Err: err}
	}
	return commitments, nil
}

func validateSchedule(schedule *models.WeeklySchedule) error {
	if schedule == nil || schedule.ProfessionalID == "" {
		return NewValidationError("professional id is required")
	}
	if schedule.BufferMinutes < 0 {
		return NewValidationError("buffer minutes must be non-negative, got %d", schedule.BufferMinutes)
	}
	if schedule.MaxBookingsPerDay <= 0 {
		return NewValidationError("max bookings per day must be positive, got %d", schedule.MaxBookingsPerDay)
	}
	for day, entry := range schedule.Entries {
		if !entry.Enabled {
			// Disabled entries never affect generation; their times are ignored.
			continue
		}
		if entry.Start < 0 || entry.End > 24*60 {
			return NewValidationError("entry for %s is outside the day, got [%d, %d]",
				time.Weekday(day), entry.Start, entry.End)
		}
		if entry.Start >= entry.End {
			return NewValidationError("entry for %s has start %d >= end %d",
				time.Weekday(day), entry.Start, entry.End)
		}
	}
	return nil
}
