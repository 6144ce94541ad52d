package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stpnv0/SafeMeet/internal/domain"
	"github.com/stpnv0/SafeMeet/internal/scheduler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func expiredBatch(n int) []*domain.BookingSession {
	out := make([]*domain.BookingSession, n)
	for i := range out {
		out[i] = &domain.BookingSession{ID: "s" + string(rune('a'+i)), Status: domain.StatusExpired, LocationID: "loc-1"}
	}
	return out
}

func TestScheduler_Tick_SingleBatch(t *testing.T) {
	expirer := mocks.NewMockSessionExpirer(t)
	s := New(expirer, time.Minute, 0, newTestLogger(t))

	expirer.EXPECT().ExpireStale(mock.Anything, 100).Return(expiredBatch(2), nil).Once()

	assert.Equal(t, 2, s.tick(context.Background()))
}

func TestScheduler_Tick_DrainsBacklog(t *testing.T) {
	expirer := mocks.NewMockSessionExpirer(t)
	s := New(expirer, time.Minute, 3, newTestLogger(t))

	expirer.EXPECT().ExpireStale(mock.Anything, 3).Return(expiredBatch(3), nil).Twice()
	expirer.EXPECT().ExpireStale(mock.Anything, 3).Return(expiredBatch(1), nil).Once()

	assert.Equal(t, 7, s.tick(context.Background()))
	expirer.AssertNumberOfCalls(t, "ExpireStale", 3)
}

func TestScheduler_Tick_BoundedRounds(t *testing.T) {
	expirer := mocks.NewMockSessionExpirer(t)
	s := New(expirer, time.Minute, 2, newTestLogger(t))

	expirer.EXPECT().ExpireStale(mock.Anything, 2).Return(expiredBatch(2), nil).Times(maxRounds)

	assert.Equal(t, 2*maxRounds, s.tick(context.Background()))
}

func TestScheduler_Tick_StopsOnErrorMidBacklog(t *testing.T) {
	expirer := mocks.NewMockSessionExpirer(t)
	s := New(expirer, time.Minute, 2, newTestLogger(t))

	expirer.EXPECT().ExpireStale(mock.Anything, 2).Return(expiredBatch(2), nil).Once()
	expirer.EXPECT().ExpireStale(mock.Anything, 2).Return(nil, errors.New("db error")).Once()

	assert.Equal(t, 2, s.tick(context.Background()))
	expirer.AssertNumberOfCalls(t, "ExpireStale", 2)
}

func TestScheduler_Tick_PartialBatchEndsSweep(t *testing.T) {
	expirer := mocks.NewMockSessionExpirer(t)
	s := New(expirer, time.Minute, 5, newTestLogger(t))

	// sessions that failed to expire are skipped, so the batch comes back short
	expirer.EXPECT().ExpireStale(mock.Anything, 5).Return(expiredBatch(4), nil).Once()

	assert.Equal(t, 4, s.tick(context.Background()))
}

func TestScheduler_Tick_CancelledContext(t *testing.T) {
	expirer := mocks.NewMockSessionExpirer(t)
	s := New(expirer, time.Minute, 5, newTestLogger(t))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Zero(t, s.tick(ctx))
	expirer.AssertNotCalled(t, "ExpireStale", mock.Anything, mock.Anything)
}

func TestScheduler_StartRunsOnInterval(t *testing.T) {
	expirer := mocks.NewMockSessionExpirer(t)
	s := New(expirer, 20*time.Millisecond, 25, newTestLogger(t))

	expirer.EXPECT().ExpireStale(mock.Anything, 25).Return(nil, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 70*time.Millisecond)
	defer cancel()

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop after context deadline")
	}
	assert.GreaterOrEqual(t, len(expirer.Calls), 1)
}
