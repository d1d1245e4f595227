package scheduling

import (
	"time"

	"worklink/models"
)

// FilterAvailable returns the subset of candidate slots that are genuinely
// bookable against the professional's existing commitments, preserving order.
// A candidate is dropped when it overlaps an active commitment, when it falls
// within bufferMinutes of an active commitment's boundary, or when the daily
// cap is already reached (in which case every candidate is dropped).
//
// Only commitments with status active participate; cancelled records never
// block a slot. Pure function: no I/O, no mutation of its inputs.
func FilterAvailable(candidates []models.CandidateSlot, commitments []models.Commitment, bufferMinutes, maxBookingsPerDay int) []models.CandidateSlot {
	active := make([]models.Commitment, 0, len(commitments))
	for _, c := range commitments {
		if c.Status == models.CommitmentActive {
			active = append(active, c)
		}
	}

	if maxBookingsPerDay > 0 && len(active) >= maxBookingsPerDay {
		return []models.CandidateSlot{}
	}

	buffer := time.Duration(bufferMinutes) * time.Minute
	kept := make([]models.CandidateSlot, 0, len(candidates))
	for _, slot := range candidates {
		if conflictsWithAny(slot.StartTime, slot.EndTime, active, buffer) {
			continue
		}
		slot.Available = true
		kept = append(kept, slot)
	}
	return kept
}

// conflictsWithAny pads each commitment by buffer on both sides and applies
// the half-open overlap test: [a1,a2) and [b1,b2) overlap iff a1 < b2 && b1 < a2.
func conflictsWithAny(start, end time.Time, commitments []models.Commitment, buffer time.Duration) bool {
	for _, c := range commitments {
		if start.Before(c.EndTime.Add(buffer)) && c.StartTime.Add(-buffer).Before(end) {
			return true
		}
	}
	return false
}

// classifyConflict distinguishes a raw overlap from a buffer-only violation
// for a window already known to conflict with one of the commitments.
func classifyConflict(start, end time.Time, commitments []models.Commitment) string {
	for _, c := range commitments {
		if c.Overlaps(start, end) {
			return ReasonOverlap
		}
	}
	return ReasonBufferViolation
}
