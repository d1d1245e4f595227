package commitmentRepo

import (
	"context"
	"time"

	"worklink/models"
)

// CommitmentRepository is the calendar conflict index and commitment store.
// It must be read-your-writes consistent: a commitment inserted through this
// repository is visible to the next FindOverlapping call.
type CommitmentRepository interface {
	Insert(ctx context.Context, commitment *models.Commitment) error
	GetByID(ctx context.Context, id string) (*models.Commitment, error)
	// FindOverlapping returns the active commitments for the professional whose
	// half-open windows intersect [windowStart, windowEnd).
	FindOverlapping(ctx context.Context, professionalID string, windowStart, windowEnd time.Time) ([]models.Commitment, error)
	// CountActiveOnDate counts active commitments on a "2006-01-02" date.
	CountActiveOnDate(ctx context.Context, professionalID, date string) (int, error)
	// Cancel flips an active commitment to cancelled. The record is retained.
	Cancel(ctx context.Context, id string) error
	// ListWindow returns commitments of any status in the window, newest first.
	ListWindow(ctx context.Context, professionalID string, windowStart, windowEnd time.Time) ([]models.Commitment, error)
}
