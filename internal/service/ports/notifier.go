package ports

import (
	"context"

	"github.com/stpnv0/SafeMeet/internal/domain"
)

type SessionNotifier interface {
	NotifyReviewApproved(ctx context.Context, s *domain.BookingSession)
	NotifyReviewRejected(ctx context.Context, s *domain.BookingSession)
	NotifyConfirmed(ctx context.Context, s *domain.BookingSession, loc *domain.Location)
	NotifyCancelled(ctx context.Context, s *domain.BookingSession)
	NotifyExpired(ctx context.Context, s *domain.BookingSession)
}
