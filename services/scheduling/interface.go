package scheduling

import (
	"context"
	"time"

	"worklink/models"
)

// SchedulingService is the availability and reservation core consumed by the
// HTTP layer.
type SchedulingService interface {
	GetSchedule(ctx context.Context, professionalID string) (*models.WeeklySchedule, error)
	SetSchedule(ctx context.Context, schedule *models.WeeklySchedule) error
	GetAvailableSlots(ctx context.Context, professionalID string, date time.Time, durationMinutes int) ([]models.CandidateSlot, error)
	Reserve(ctx context.Context, req ReservationRequest) (*models.Commitment, error)
	CancelReservation(ctx context.Context, commitmentID string) (*models.Commitment, error)
	ListCommitments(ctx context.Context, professionalID string, from, to time.Time) ([]models.Commitment, error)
}

// ReservationRequest carries one attempt to claim a slot.
type ReservationRequest struct {
	ProfessionalID string    `json:"professionalId"`
	ClientID       string    `json:"clientId"`
	StartTime      time.Time `json:"startTime"`
	EndTime        time.Time `json:"endTime"`
	Note           string    `json:"note,omitempty"`
}

// ExclusionLocker serializes reservation attempts that share a key. Acquire
// blocks until the lock is held or the locker's wait bound elapses, in which
// case it returns utils.ErrLockNotAcquired.
type ExclusionLocker interface {
	Acquire(ctx context.Context, key string) (release func(), err error)
}

// OutcomeNotifier is informed, after the fact, of settled reservation
// attempts and cancellations. Delivery itself is out of scope here.
type OutcomeNotifier interface {
	NotifyOutcome(ctx context.Context, outcome models.ReservationOutcome)
}
