// Package memory keeps sessions, locations and slot bookings in process
// memory. It follows the same contracts as the Postgres repositories and is
// used for single-node runs and tests.
package memory

import (
	"sync"

	"github.com/stpnv0/SafeMeet/internal/domain"
)

type Store struct {
	mu        sync.RWMutex
	sessions  map[string]*domain.BookingSession
	locations map[string]*domain.Location
	bookings  []*domain.SlotBooking
}

func New() *Store {
	return &Store{
		sessions:  make(map[string]*domain.BookingSession),
		locations: make(map[string]*domain.Location),
	}
}

func (s *Store) Sessions() *SessionRepository {
	return &SessionRepository{store: s}
}

func (s *Store) Locations() *LocationRepository {
	return &LocationRepository{store: s}
}

func (s *Store) Slots() *SlotRepository {
	return &SlotRepository{store: s}
}
