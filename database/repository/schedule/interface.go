package scheduleRepo

import (
	"context"

	"worklink/models"
)

// ScheduleRepository persists each professional's weekly availability
// configuration. There is exactly one schedule per professional; updates
// replace the document wholesale.
type ScheduleRepository interface {
	// Get returns the schedule for the professional, or (nil, nil) when none
	// has been stored yet.
	Get(ctx context.Context, professionalID string) (*models.WeeklySchedule, error)
	Replace(ctx context.Context, schedule *models.WeeklySchedule) error
}
