package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

// activeBooking matches slot bookings that still occupy their slot at $now.
const activeBooking = `(state = 'completed' OR (state = 'held' AND expires_at >= %s))`

type SlotRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewSlotRepo(db *dbpg.DB) *SlotRepository {
	return &SlotRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *SlotRepository) BookedSlots(ctx context.Context, locationID, date string, now time.Time) (map[string]int, error) {
	query := `SELECT slot_time, COUNT(*)
			  FROM slot_bookings
			  WHERE location_id = $1 AND slot_date = $2::date AND ` + fmt.Sprintf(activeBooking, "$3") + `
			  GROUP BY slot_time`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, locationID, date, now)
	if err != nil {
		return nil, fmt.Errorf("count booked slots: %w", err)
	}
	defer rows.Close()

	booked := make(map[string]int)
	for rows.Next() {
		var clock string
		var n int
		if err = rows.Scan(&clock, &n); err != nil {
			return nil, fmt.Errorf("scan booked slot: %w", err)
		}
		booked[clock] = n
	}

	return booked, rows.Err()
}

func (r *SlotRepository) ActiveByLocation(ctx context.Context, date string, now time.Time) (map[string]int, error) {
	query := `SELECT location_id, COUNT(*)
			  FROM slot_bookings
			  WHERE slot_date = $1::date AND ` + fmt.Sprintf(activeBooking, "$2") + `
			  GROUP BY location_id`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, date, now)
	if err != nil {
		return nil, fmt.Errorf("count active bookings: %w", err)
	}
	defer rows.Close()

	active := make(map[string]int)
	for rows.Next() {
		var locationID string
		var n int
		if err = rows.Scan(&locationID, &n); err != nil {
			return nil, fmt.Errorf("scan active bookings: %w", err)
		}
		active[locationID] = n
	}

	return active, rows.Err()
}
