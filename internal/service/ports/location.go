package ports

import (
	"context"

	"github.com/stpnv0/SafeMeet/internal/domain"
)

type LocationRepo interface {
	Create(ctx context.Context, l *domain.Location) error
	Ensure(ctx context.Context, l *domain.Location) error
	GetByID(ctx context.Context, id string) (*domain.Location, error)
	List(ctx context.Context, onlyEnabled bool) ([]*domain.Location, error)
	SetEnabled(ctx context.Context, id string, enabled bool) (*domain.Location, error)
}
