package scheduling

import (
	"context"
	"errors"
	"time"

	"worklink/models"
	"worklink/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Reserve durably claims the requested window as a new active Commitment.
//
// The availability the caller saw may be stale by the time it confirms, so the
// whole check runs again under a per-professional exclusion lock: overlap and
// buffer against the current committed state, then the daily cap. Under
// concurrent attempts for intersecting windows at most one insert succeeds;
// the rest fail with ConflictError.
func (s *DefaultSchedulingService) Reserve(ctx context.Context, req ReservationRequest) (*models.Commitment, error) {
	if err := validateReservation(req); err != nil {
		return nil, err
	}

	schedule, err := s.GetSchedule(ctx, req.ProfessionalID)
	if err != nil {
		return nil, err
	}

	release, err := s.Locker.Acquire(ctx, "reserve:"+req.ProfessionalID)
	if err != nil {
		if errors.Is(err, utils.ErrLockNotAcquired) {
			return nil, &TimeoutError{Scope: req.ProfessionalID}
		}
		return nil, &StorageError{Op: "acquire reservation lock", Err: err}
	}
	defer release()

	buffer := time.Duration(schedule.BufferMinutes) * time.Minute
	conflicting, err := s.CommitmentRepo.FindOverlapping(ctx, req.ProfessionalID,
		req.StartTime.Add(-buffer), req.EndTime.Add(buffer))
	if err != nil {
		return nil, &StorageError{Op: "re-check commitments", Err: err}
	}
	if len(conflicting) > 0 {
		reason := classifyConflict(req.StartTime, req.EndTime, conflicting)
		s.notify(ctx, rejectedOutcome(req, reason))
		return nil, &ConflictError{Reason: reason}
	}

	date := req.StartTime.Format("2006-01-02")
	count, err := s.CommitmentRepo.CountActiveOnDate(ctx, req.ProfessionalID, date)
	if err != nil {
		return nil, &StorageError{Op: "count daily commitments", Err: err}
	}
	if schedule.MaxBookingsPerDay > 0 && count >= schedule.MaxBookingsPerDay {
		s.notify(ctx, rejectedOutcome(req, ReasonDailyCapReached))
		return nil, &ConflictError{Reason: ReasonDailyCapReached}
	}

	commitment := &models.Commitment{
		ID:             uuid.New().String(),
		ProfessionalID: req.ProfessionalID,
		ClientID:       req.ClientID,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		Date:           date,
		Status:         models.CommitmentActive,
		Note:           req.Note,
		CreatedAt:      time.Now(),
	}
	if err := s.CommitmentRepo.Insert(ctx, commitment); err != nil {
		return nil, &StorageError{Op: "insert commitment", Err: err}
	}

	utils.GetLogger().Info("slot reserved",
		zap.String("commitmentID", commitment.ID),
		zap.String("professionalID", commitment.ProfessionalID),
		zap.Time("start", commitment.StartTime),
		zap.Time("end", commitment.EndTime))

	s.notify(ctx, models.ReservationOutcome{
		CommitmentID:   commitment.ID,
		ProfessionalID: commitment.ProfessionalID,
		ClientID:       commitment.ClientID,
		StartTime:      commitment.StartTime,
		EndTime:        commitment.EndTime,
		Event:          "reserved",
	})
	return commitment, nil
}

// CancelReservation transitions an active commitment to cancelled, freeing
// its interval for future candidates. The record is retained.
func (s *DefaultSchedulingService) CancelReservation(ctx context.Context, commitmentID string) (*models.Commitment, error) {
	if commitmentID == "" {
		return nil, NewValidationError("commitment id is required")
	}

	commitment, err := s.CommitmentRepo.GetByID(ctx, commitmentID)
	if err != nil {
		return nil, &StorageError{Op: "fetch commitment", Err: err}
	}
	if commitment.Status != models.CommitmentActive {
		return nil, NewValidationError("commitment %s is not active", commitmentID)
	}

	if err := s.CommitmentRepo.Cancel(ctx, commitmentID); err != nil {
		return nil, &StorageError{Op: "cancel commitment", Err: err}
	}
	now := time.Now()
	commitment.Status = models.CommitmentCancelled
	commitment.CancelledAt = &now

	utils.GetLogger().Info("commitment cancelled",
		zap.String("commitmentID", commitmentID),
		zap.String("professionalID", commitment.ProfessionalID))

	s.notify(ctx, models.ReservationOutcome{
		CommitmentID:   commitment.ID,
		ProfessionalID: commitment.ProfessionalID,
		ClientID:       commitment.ClientID,
		StartTime:      commitment.StartTime,
		EndTime:        commitment.EndTime,
		Event:          "cancelled",
	})
	return commitment, nil
}

func (s *DefaultSchedulingService) notify(ctx context.Context, outcome models.ReservationOutcome) {
	if s.Notifier == nil {
		return
	}
	s.Notifier.NotifyOutcome(ctx, outcome)
}

func rejectedOutcome(req ReservationRequest, reason string) models.ReservationOutcome {
	return models.ReservationOutcome{
		ProfessionalID: req.ProfessionalID,
		ClientID:       req.ClientID,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		Event:          "rejected",
		Reason:         reason,
	}
}

func validateReservation(req ReservationRequest) error {
	if req.ProfessionalID == "" {
		return NewValidationError("professional id is required")
	}
	if req.ClientID == "" {
		return NewValidationError("client id is required")
	}
	if req.StartTime.IsZero() || req.EndTime.IsZero() {
		return NewValidationError("start and end times are required")
	}
	if !req.StartTime.Before(req.EndTime) {
		return NewValidationError("start time must precede end time")
	}
	return nil
}
