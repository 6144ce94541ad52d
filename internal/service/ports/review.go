package ports

import (
	"context"

	"github.com/stpnv0/SafeMeet/internal/domain"
)

// ReviewDecider applies reviewer decisions to the session state machine.
type ReviewDecider interface {
	Approve(ctx context.Context, id string, reviewer string) (*domain.BookingSession, error)
	Reject(ctx context.Context, id string, reviewer string, reason string) (*domain.BookingSession, error)
}
