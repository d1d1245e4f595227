package models

import "time"

// ScheduleEntry describes one weekday of a professional's recurring availability.
// Start and End are minutes from midnight (e.g., 540 for 9:00 AM).
type ScheduleEntry struct {
	Enabled bool `bson:"enabled" json:"enabled"`
	Start   int  `bson:"start" json:"start"`
	End     int  `bson:"end" json:"end"`
}

// WeeklySchedule is a professional's recurring weekly availability configuration.
// Entries is indexed by time.Weekday (0 = Sunday ... 6 = Saturday).
type WeeklySchedule struct {
	ProfessionalID    string           `bson:"professional_id" json:"professionalId"`
	Entries           [7]ScheduleEntry `bson:"entries" json:"entries"`
	BufferMinutes     int              `bson:"buffer_minutes" json:"bufferMinutes"`
	MaxBookingsPerDay int              `bson:"max_bookings_per_day" json:"maxBookingsPerDay"`
	UpdatedAt         time.Time        `bson:"updated_at" json:"updatedAt"`
}

// EntryFor returns the schedule entry governing the given weekday.
func (ws *WeeklySchedule) EntryFor(day time.Weekday) ScheduleEntry {
	return ws.Entries[int(day)]
}

// DefaultWeeklySchedule returns the platform default: Monday through Friday
// 09:00-17:00 enabled, weekends disabled, no buffer, 8 bookings per day.
func DefaultWeeklySchedule(professionalID string) *WeeklySchedule {
	ws := &WeeklySchedule{
		ProfessionalID:    professionalID,
		BufferMinutes:     0,
		MaxBookingsPerDay: 8,
		UpdatedAt:         time.Now(),
	}
	for day := time.Monday; day <= time.Friday; day++ {
		ws.Entries[int(day)] = ScheduleEntry{Enabled: true, Start: 9 * 60, End: 17 * 60}
	}
	return ws
}
