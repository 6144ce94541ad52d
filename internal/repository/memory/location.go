package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/stpnv0/SafeMeet/internal/domain"
)

type LocationRepository struct {
	store *Store
}

func (r *LocationRepository) Create(_ context.Context, l *domain.Location) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.locations[l.ID]; ok {
		return fmt.Errorf("%w: location %s already exists", domain.ErrValidation, l.ID)
	}
	r.store.locations[l.ID] = l.Clone()
	return nil
}

func (r *LocationRepository) Ensure(_ context.Context, l *domain.Location) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.locations[l.ID]; !ok {
		r.store.locations[l.ID] = l.Clone()
	}
	return nil
}

func (r *LocationRepository) GetByID(_ context.Context, id string) (*domain.Location, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	l, ok := r.store.locations[id]
	if !ok {
		return nil, domain.ErrLocationNotFound
	}
	return l.Clone(), nil
}

func (r *LocationRepository) List(_ context.Context, onlyEnabled bool) ([]*domain.Location, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]*domain.Location, 0, len(r.store.locations))
	for _, l := range r.store.locations {
		if onlyEnabled && !l.Enabled {
			continue
		}
		out = append(out, l.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *LocationRepository) SetEnabled(_ context.Context, id string, enabled bool) (*domain.Location, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	l, ok := r.store.locations[id]
	if !ok {
		return nil, domain.ErrLocationNotFound
	}
	l.Enabled = enabled
	l.UpdatedAt = time.Now().UTC()
	return l.Clone(), nil
}
