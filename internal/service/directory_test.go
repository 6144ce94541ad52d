package service

import (
	"context"
	"testing"
	"time"

	"github.com/stpnv0/SafeMeet/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectoryService_Stats(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	done := f.timeSelected(t, "14:00")
	_, err := f.svc.Confirm(ctx, done.ID)
	require.NoError(t, err)
	_, err = f.svc.MarkCompleted(ctx, done.ID, "operator-1")
	require.NoError(t, err)

	held := f.timeSelected(t, "15:00")
	_, err = f.svc.Confirm(ctx, held.ID)
	require.NoError(t, err)

	f.create(t)
	cancelled := f.create(t)
	_, err = f.svc.Cancel(ctx, cancelled.ID, "", "buyer")
	require.NoError(t, err)

	dir := NewDirectoryService(f.store.Sessions(), f.store.Locations(), f.store.Slots(), DefaultRules())
	dir.now = f.clock.Now

	stats, err := dir.Stats(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, stats.ByStatus[domain.StatusCompleted])
	assert.Equal(t, 1, stats.ByStatus[domain.StatusConfirmed])
	assert.Equal(t, 1, stats.ByStatus[domain.StatusPendingVerification])
	assert.Equal(t, 1, stats.ByStatus[domain.StatusCancelled])
	assert.Equal(t, 0, stats.ByStatus[domain.StatusExpired])
	assert.Len(t, stats.ByStatus, len(domain.AllStatuses))

	require.Len(t, stats.Utilization, 2)
	var central domain.LocationUtilization
	for _, u := range stats.Utilization {
		if u.LocationID == "loc-1" {
			central = u
		}
	}
	// 10:00-20:00 on a 30 minute grid is 20 slots
	assert.Equal(t, 20, central.Capacity)
	assert.Equal(t, 2, central.Booked)
	assert.Equal(t, testDate, central.Date)
	assert.InDelta(t, 10.0, central.Percent, 0.001)

	require.Len(t, stats.Throughput, 1)
	assert.Equal(t, domain.Throughput{Currency: "EUR", Count: 1, Total: 125050, Average: 125050}, stats.Throughput[0])
}

func TestDirectoryService_StatsCountsLazyExpiry(t *testing.T) {
	f := newFixture(t, nil)
	f.create(t)

	dir := NewDirectoryService(f.store.Sessions(), f.store.Locations(), f.store.Slots(), DefaultRules())
	dir.now = func() time.Time { return testNow.Add(25 * time.Hour) }

	stats, err := dir.Stats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, stats.ByStatus[domain.StatusExpired])
	assert.Equal(t, 0, stats.ByStatus[domain.StatusPendingVerification])
}

func TestDirectoryService_Sessions(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	a := f.approved(t)
	_, err := f.svc.SelectLocation(ctx, a.ID, "loc-1")
	require.NoError(t, err)
	f.create(t)

	dir := NewDirectoryService(f.store.Sessions(), f.store.Locations(), f.store.Slots(), DefaultRules())
	dir.now = f.clock.Now

	all, err := dir.Sessions(ctx, domain.SessionFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	byLoc, err := dir.Sessions(ctx, domain.SessionFilter{LocationID: "loc-1"})
	require.NoError(t, err)
	require.Len(t, byLoc, 1)
	assert.Equal(t, a.ID, byLoc[0].ID)

	paged, err := dir.Sessions(ctx, domain.SessionFilter{Limit: 1, Offset: 1})
	require.NoError(t, err)
	assert.Len(t, paged, 1)

	_, err = dir.Sessions(ctx, domain.SessionFilter{Status: "lost"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	dir.now = func() time.Time { return testNow.Add(48 * time.Hour) }
	expired, err := dir.Sessions(ctx, domain.SessionFilter{})
	require.NoError(t, err)
	for _, s := range expired {
		assert.Equal(t, domain.StatusExpired, s.Status)
	}
}
