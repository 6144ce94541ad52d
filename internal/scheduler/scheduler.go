package scheduler

import (
	"context"
	"time"

	"github.com/stpnv0/SafeMeet/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const maxRounds = 10

type sessionExpirer interface {
	ExpireStale(ctx context.Context, limit int) ([]*domain.BookingSession, error)
}

// Scheduler periodically expires sessions past their deadline so their held
// slots are released and expiry events go out without waiting for a read.
type Scheduler struct {
	sessionService sessionExpirer
	interval       time.Duration
	batchSize      int
	logger         logger.Logger
}

func New(
	sessionService sessionExpirer,
	interval time.Duration,
	batchSize int,
	logger logger.Logger,
) *Scheduler {
	if batchSize <= 0 {
		batchSize = 100
	}
	return &Scheduler{
		sessionService: sessionService,
		interval:       interval,
		batchSize:      batchSize,
		logger:         logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
		logger.Int("batch_size", s.batchSize),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

// tick expires stale sessions batch by batch. A full batch means a backlog
// remains, so it keeps going up to maxRounds batches per tick.
func (s *Scheduler) tick(ctx context.Context) int {
	total := 0
	for round := 0; round < maxRounds; round++ {
		if ctx.Err() != nil {
			break
		}

		expired, err := s.sessionService.ExpireStale(ctx, s.batchSize)
		if err != nil {
			s.logger.Error("failed to expire stale sessions",
				logger.String("error", err.Error()),
				logger.Int("expired_so_far", total),
			)
			break
		}

		for _, sess := range expired {
			s.logger.Info("session expired",
				logger.String("session_id", sess.ID),
				logger.String("location_id", sess.LocationID),
			)
		}
		total += len(expired)

		if len(expired) < s.batchSize {
			break
		}
	}

	if total > 0 {
		s.logger.Info("expiry sweep finished", logger.Int("expired", total))
	}
	return total
}
