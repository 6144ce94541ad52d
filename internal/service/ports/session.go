package ports

import (
	"context"
	"time"

	"github.com/stpnv0/SafeMeet/internal/domain"
)

type SessionRepo interface {
	Create(ctx context.Context, s *domain.BookingSession) error
	GetByID(ctx context.Context, id string) (*domain.BookingSession, error)
	Update(ctx context.Context, s *domain.BookingSession, expectedVersion int) error
	Confirm(ctx context.Context, s *domain.BookingSession, expectedVersion int, booking *domain.SlotBooking) error
	List(ctx context.Context, filter domain.SessionFilter) ([]*domain.BookingSession, error)
	ListAwaitingReview(ctx context.Context, now time.Time, limit int, offset int) ([]*domain.BookingSession, error)
	ListExpirable(ctx context.Context, now time.Time, limit int) ([]*domain.BookingSession, error)
	CountByStatus(ctx context.Context, now time.Time) (map[domain.SessionStatus]int, error)
	CompletedThroughput(ctx context.Context) ([]domain.Throughput, error)
}
