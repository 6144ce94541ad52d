package memory

import (
	"context"
	"time"
)

type SlotRepository struct {
	store *Store
}

func (r *SlotRepository) BookedSlots(_ context.Context, locationID, date string, now time.Time) (map[string]int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	booked := make(map[string]int)
	for _, b := range r.store.bookings {
		if b.LocationID == locationID && b.Date == date && b.ActiveAt(now) {
			booked[b.Time]++
		}
	}
	return booked, nil
}

func (r *SlotRepository) ActiveByLocation(_ context.Context, date string, now time.Time) (map[string]int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	active := make(map[string]int)
	for _, b := range r.store.bookings {
		if b.Date == date && b.ActiveAt(now) {
			active[b.LocationID]++
		}
	}
	return active, nil
}
