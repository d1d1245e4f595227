package models

import "time"

// CandidateSlot is a fixed-duration window that could be booked. It is a
// transient projection computed per query and is never persisted; only the
// chosen slot, once reserved, becomes a Commitment.
type CandidateSlot struct {
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Available bool      `json:"available"`
}

// SlotSession caches one availability query so the confirm step can refer
// back to the slots the client was shown.
type SlotSession struct {
	ProfessionalID  string          `json:"professionalId"`
	Date            string          `json:"date"`
	DurationMinutes int             `json:"durationMinutes"`
	Slots           []CandidateSlot `json:"slots"`
}

// ReservationOutcome is the event payload handed to the notification module
// after a reservation attempt or cancellation has settled.
type ReservationOutcome struct {
	CommitmentID   string    `json:"commitmentId,omitempty"`
	ProfessionalID string    `json:"professionalId"`
	ClientID       string    `json:"clientId"`
	StartTime      time.Time `json:"startTime"`
	EndTime        time.Time `json:"endTime"`
	Event          string    `json:"event"`            // "reserved" | "cancelled" | "rejected"
	Reason         string    `json:"reason,omitempty"` // conflict reason for rejected attempts
}
