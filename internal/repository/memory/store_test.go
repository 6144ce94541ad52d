package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stpnv0/SafeMeet/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2026, 5, 14, 8, 0, 0, 0, time.UTC)

func seed(t *testing.T, capacity int) (*Store, *domain.BookingSession, *domain.BookingSession) {
	t.Helper()
	st := New()
	ctx := context.Background()

	require.NoError(t, st.Locations().Create(ctx, &domain.Location{
		ID: "loc-1", Name: "Station", CapacityPerSlot: capacity, Enabled: true,
	}))

	mk := func(id string) *domain.BookingSession {
		s := &domain.BookingSession{
			ID:        id,
			Status:    domain.StatusTimeSelected,
			Amount:    1000,
			Currency:  "EUR",
			Meetup:    &domain.Meetup{LocationID: "loc-1", Date: "2026-05-14", Time: "14:00"},
			Version:   1,
			CreatedAt: base,
			ExpiresAt: base.Add(24 * time.Hour),
		}
		require.NoError(t, st.Sessions().Create(ctx, s))
		return s
	}
	return st, mk("s1"), mk("s2")
}

func booking(s *domain.BookingSession, code string) *domain.SlotBooking {
	return &domain.SlotBooking{
		ID:               "b-" + s.ID,
		SessionID:        s.ID,
		LocationID:       "loc-1",
		Date:             "2026-05-14",
		Time:             "14:00",
		ConfirmationCode: code,
		State:            domain.SlotHeld,
		ExpiresAt:        s.ExpiresAt,
		CreatedAt:        base,
	}
}

func confirmed(s *domain.BookingSession) *domain.BookingSession {
	c := s.Clone()
	c.Status = domain.StatusConfirmed
	return c
}

func TestConfirm_RespectsCapacity(t *testing.T) {
	st, s1, s2 := seed(t, 1)
	repo := st.Sessions()
	ctx := context.Background()

	require.NoError(t, repo.Confirm(ctx, confirmed(s1), 1, booking(s1, "AAAAAA")))
	err := repo.Confirm(ctx, confirmed(s2), 1, booking(s2, "BBBBBB"))

	assert.ErrorIs(t, err, domain.ErrSlotNoLongerAvailable)
	got, err := repo.GetByID(ctx, "s2")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusTimeSelected, got.Status)

	booked, err := st.Slots().BookedSlots(ctx, "loc-1", "2026-05-14", base)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"14:00": 1}, booked)
}

func TestConfirm_DuplicateCode(t *testing.T) {
	st, s1, s2 := seed(t, 2)
	repo := st.Sessions()
	ctx := context.Background()

	require.NoError(t, repo.Confirm(ctx, confirmed(s1), 1, booking(s1, "AAAAAA")))
	err := repo.Confirm(ctx, confirmed(s2), 1, booking(s2, "AAAAAA"))

	assert.ErrorIs(t, err, domain.ErrDuplicateConfirmationCode)
	assert.NoError(t, repo.Confirm(ctx, confirmed(s2), 1, booking(s2, "BBBBBB")))
}

func TestUpdate_VersionConflict(t *testing.T) {
	st, s1, _ := seed(t, 1)
	repo := st.Sessions()
	ctx := context.Background()

	next := s1.Clone()
	next.Status = domain.StatusCancelled
	require.NoError(t, repo.Update(ctx, next, 1))

	assert.ErrorIs(t, repo.Update(ctx, next, 1), domain.ErrConcurrentUpdate)
	got, err := repo.GetByID(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 2, got.Version)
}

func TestUpdate_CancelReleasesOnlyOwnSlot(t *testing.T) {
	st, s1, s2 := seed(t, 2)
	repo := st.Sessions()
	ctx := context.Background()

	require.NoError(t, repo.Confirm(ctx, confirmed(s1), 1, booking(s1, "AAAAAA")))
	require.NoError(t, repo.Confirm(ctx, confirmed(s2), 1, booking(s2, "BBBBBB")))

	cancelled := confirmed(s1)
	cancelled.Status = domain.StatusCancelled
	require.NoError(t, repo.Update(ctx, cancelled, 2))

	booked, err := st.Slots().BookedSlots(ctx, "loc-1", "2026-05-14", base)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"14:00": 1}, booked)
}

func TestUpdate_CompletedKeepsSlotAfterExpiry(t *testing.T) {
	st, s1, _ := seed(t, 1)
	repo := st.Sessions()
	ctx := context.Background()

	require.NoError(t, repo.Confirm(ctx, confirmed(s1), 1, booking(s1, "AAAAAA")))
	done := confirmed(s1)
	done.Status = domain.StatusCompleted
	require.NoError(t, repo.Update(ctx, done, 2))

	later := base.Add(48 * time.Hour)
	booked, err := st.Slots().BookedSlots(ctx, "loc-1", "2026-05-14", later)
	require.NoError(t, err)
	assert.Equal(t, 1, booked["14:00"])

	active, err := st.Slots().ActiveByLocation(ctx, "2026-05-14", later)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"loc-1": 1}, active)
}

func TestHeldSlotLapsesWithSession(t *testing.T) {
	st, s1, _ := seed(t, 1)
	ctx := context.Background()

	require.NoError(t, st.Sessions().Confirm(ctx, confirmed(s1), 1, booking(s1, "AAAAAA")))

	booked, err := st.Slots().BookedSlots(ctx, "loc-1", "2026-05-14", s1.ExpiresAt.Add(time.Second))
	require.NoError(t, err)
	assert.Empty(t, booked)
}

func TestListAndCounts(t *testing.T) {
	st, s1, _ := seed(t, 1)
	repo := st.Sessions()
	ctx := context.Background()

	done := s1.Clone()
	done.Status = domain.StatusCompleted
	require.NoError(t, repo.Update(ctx, done, 1))

	list, err := repo.List(ctx, domain.SessionFilter{Status: domain.StatusCompleted})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "s1", list[0].ID)

	counts, err := repo.CountByStatus(ctx, base.Add(25*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, counts[domain.StatusCompleted])
	assert.Equal(t, 1, counts[domain.StatusExpired])

	tp, err := repo.CompletedThroughput(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Throughput{{Currency: "EUR", Count: 1, Total: 1000}}, tp)

	exp, err := repo.ListExpirable(ctx, base.Add(25*time.Hour), 10)
	require.NoError(t, err)
	require.Len(t, exp, 1)
	assert.Equal(t, "s2", exp[0].ID)
}

func TestLocations(t *testing.T) {
	st := New()
	repo := st.Locations()
	ctx := context.Background()

	require.NoError(t, repo.Ensure(ctx, &domain.Location{ID: "a", Name: "Alpha", Enabled: true}))
	require.NoError(t, repo.Ensure(ctx, &domain.Location{ID: "a", Name: "Changed", Enabled: true}))
	require.NoError(t, repo.Create(ctx, &domain.Location{ID: "b", Name: "Beta", Enabled: true}))
	assert.ErrorIs(t, repo.Create(ctx, &domain.Location{ID: "b"}), domain.ErrValidation)

	got, err := repo.GetByID(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "Alpha", got.Name)

	_, err = repo.SetEnabled(ctx, "b", false)
	require.NoError(t, err)

	enabled, err := repo.List(ctx, true)
	require.NoError(t, err)
	require.Len(t, enabled, 1)
	assert.Equal(t, "a", enabled[0].ID)

	_, err = repo.GetByID(ctx, "zzz")
	assert.ErrorIs(t, err, domain.ErrLocationNotFound)
}
