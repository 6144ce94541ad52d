// Package events publishes session lifecycle events to a message broker.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/stpnv0/SafeMeet/internal/domain"
)

const DefaultPrefix = "safemeet"

// Subject builds the routing key for e, for example "safemeet.session.confirm".
func Subject(prefix string, e domain.LifecycleEvent) string {
	prefix = strings.Trim(prefix, ".")
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return fmt.Sprintf("%s.session.%s", prefix, e.Type)
}

func encode(e domain.LifecycleEvent) ([]byte, error) {
	payload, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("marshal event: %w", err)
	}
	return payload, nil
}

// Noop drops every event. Used when no broker is configured.
type Noop struct{}

func (Noop) Publish(context.Context, domain.LifecycleEvent) error { return nil }

func (Noop) Close() error { return nil }
