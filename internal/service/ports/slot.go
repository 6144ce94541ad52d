package ports

import (
	"context"
	"time"
)

type SlotRepo interface {
	// BookedSlots counts active bookings per "HH:MM" for one location and day.
	BookedSlots(ctx context.Context, locationID string, date string, now time.Time) (map[string]int, error)
	// ActiveByLocation counts active bookings per location for one day.
	ActiveByLocation(ctx context.Context, date string, now time.Time) (map[string]int, error)
}
