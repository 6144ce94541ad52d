package ports

import (
	"context"

	"github.com/stpnv0/SafeMeet/internal/domain"
)

type EventPublisher interface {
	Publish(ctx context.Context, e domain.LifecycleEvent) error
}
