package models

import "time"

// Commitment statuses. A commitment is created active and can only transition
// to cancelled; cancelled records are retained for history.
const (
	CommitmentActive    = "active"
	CommitmentCancelled = "cancelled"
)

// Commitment is a persisted, exclusively-claimed booking occupying a time
// window for a professional.
type Commitment struct {
	ID             string     `bson:"id" json:"id"`
	ProfessionalID string     `bson:"professional_id" json:"professionalId"`
	ClientID       string     `bson:"client_id" json:"clientId"`
	StartTime      time.Time  `bson:"start_time" json:"startTime"`
	EndTime        time.Time  `bson:"end_time" json:"endTime"`
	Date           string     `bson:"date" json:"date"` // "2006-01-02", denormalized for daily-cap queries
	Status         string     `bson:"status" json:"status"`
	Note           string     `bson:"note,omitempty" json:"note,omitempty"`
	CreatedAt      time.Time  `bson:"created_at" json:"createdAt"`
	CancelledAt    *time.Time `bson:"cancelled_at,omitempty" json:"cancelledAt,omitempty"`
}

// Overlaps reports whether the commitment's half-open window [StartTime, EndTime)
// shares any instant with [start, end). Touching endpoints do not overlap.
func (c *Commitment) Overlaps(start, end time.Time) bool {
	return c.StartTime.Before(end) && start.Before(c.EndTime)
}
