package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/stpnv0/SafeMeet/internal/domain"
)

type SessionRepository struct {
	store *Store
}

func (r *SessionRepository) Create(_ context.Context, s *domain.BookingSession) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.sessions[s.ID]; ok {
		return fmt.Errorf("%w: session %s already exists", domain.ErrValidation, s.ID)
	}
	r.store.sessions[s.ID] = s.Clone()
	return nil
}

func (r *SessionRepository) GetByID(_ context.Context, id string) (*domain.BookingSession, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	s, ok := r.store.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return s.Clone(), nil
}

func (r *SessionRepository) Update(_ context.Context, s *domain.BookingSession, expectedVersion int) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if err := r.checkVersion(s.ID, expectedVersion); err != nil {
		return err
	}

	stored := s.Clone()
	stored.Version = expectedVersion + 1
	r.store.sessions[s.ID] = stored

	switch s.Status {
	case domain.StatusCompleted:
		r.setSlotState(s.ID, domain.SlotCompleted)
	case domain.StatusCancelled, domain.StatusExpired:
		r.setSlotState(s.ID, domain.SlotReleased)
	}
	return nil
}

func (r *SessionRepository) Confirm(_ context.Context, s *domain.BookingSession, expectedVersion int, b *domain.SlotBooking) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if err := r.checkVersion(s.ID, expectedVersion); err != nil {
		return err
	}

	loc, ok := r.store.locations[b.LocationID]
	if !ok {
		return domain.ErrLocationNotFound
	}

	taken := 0
	for _, existing := range r.store.bookings {
		if existing.State != domain.SlotReleased && existing.ConfirmationCode == b.ConfirmationCode {
			return domain.ErrDuplicateConfirmationCode
		}
		if existing.LocationID == b.LocationID && existing.Date == b.Date &&
			existing.Time == b.Time && existing.ActiveAt(b.CreatedAt) {
			taken++
		}
	}
	if taken >= loc.Capacity() {
		return domain.ErrSlotNoLongerAvailable
	}

	booking := *b
	r.store.bookings = append(r.store.bookings, &booking)

	stored := s.Clone()
	stored.Version = expectedVersion + 1
	r.store.sessions[s.ID] = stored
	return nil
}

func (r *SessionRepository) List(_ context.Context, f domain.SessionFilter) ([]*domain.BookingSession, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var out []*domain.BookingSession
	for _, s := range r.store.sessions {
		if f.Status != "" && s.Status != f.Status {
			continue
		}
		if f.LocationID != "" && s.LocationID != f.LocationID {
			continue
		}
		out = append(out, s.Clone())
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return paginate(out, f.Limit, f.Offset), nil
}

func (r *SessionRepository) ListAwaitingReview(_ context.Context, now time.Time, limit, offset int) ([]*domain.BookingSession, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var out []*domain.BookingSession
	for _, s := range r.store.sessions {
		if s.Status == domain.StatusVerificationSubmitted && !s.ExpiredAt(now) {
			out = append(out, s.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return submittedAt(out[i]).Before(submittedAt(out[j]))
	})
	return paginate(out, limit, offset), nil
}

func (r *SessionRepository) ListExpirable(_ context.Context, now time.Time, limit int) ([]*domain.BookingSession, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var out []*domain.BookingSession
	for _, s := range r.store.sessions {
		if s.ExpiredAt(now) {
			out = append(out, s.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ExpiresAt.Before(out[j].ExpiresAt) })
	return paginate(out, limit, 0), nil
}

func (r *SessionRepository) CountByStatus(_ context.Context, now time.Time) (map[domain.SessionStatus]int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	counts := make(map[domain.SessionStatus]int)
	for _, s := range r.store.sessions {
		counts[s.EffectiveStatus(now)]++
	}
	return counts, nil
}

func (r *SessionRepository) CompletedThroughput(_ context.Context) ([]domain.Throughput, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	byCurrency := make(map[string]*domain.Throughput)
	for _, s := range r.store.sessions {
		if s.Status != domain.StatusCompleted {
			continue
		}
		t, ok := byCurrency[s.Currency]
		if !ok {
			t = &domain.Throughput{Currency: s.Currency}
			byCurrency[s.Currency] = t
		}
		t.Count++
		t.Total += s.Amount
	}

	out := make([]domain.Throughput, 0, len(byCurrency))
	for _, t := range byCurrency {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Currency < out[j].Currency })
	return out, nil
}

func (r *SessionRepository) checkVersion(id string, expected int) error {
	cur, ok := r.store.sessions[id]
	if !ok {
		return domain.ErrSessionNotFound
	}
	if cur.Version != expected {
		return domain.ErrConcurrentUpdate
	}
	return nil
}

func (r *SessionRepository) setSlotState(sessionID string, state domain.SlotState) {
	for _, b := range r.store.bookings {
		if b.SessionID == sessionID && b.State != domain.SlotReleased {
			b.State = state
		}
	}
}

func submittedAt(s *domain.BookingSession) time.Time {
	if s.Verification == nil || s.Verification.SubmittedAt == nil {
		return s.CreatedAt
	}
	return *s.Verification.SubmittedAt
}

func paginate[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return nil
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}
