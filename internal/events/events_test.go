package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stpnv0/SafeMeet/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubject(t *testing.T) {
	e := domain.LifecycleEvent{Type: domain.EventConfirm}

	assert.Equal(t, "safemeet.session.confirm", Subject("", e))
	assert.Equal(t, "shop.session.confirm", Subject("shop.", e))
}

func TestEncode(t *testing.T) {
	at := time.Date(2026, 5, 14, 12, 0, 0, 0, time.UTC)
	e := domain.LifecycleEvent{
		ID:         "evt-1",
		Type:       domain.EventCancel,
		SessionID:  "s1",
		From:       domain.StatusConfirmed,
		To:         domain.StatusCancelled,
		OccurredAt: at,
	}

	payload, err := encode(e)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(payload, &got))
	assert.Equal(t, "cancel", got["type"])
	assert.Equal(t, "confirmed", got["from"])
	assert.Equal(t, "cancelled", got["to"])
	assert.NotContains(t, got, "location_id")
}

func TestNoop(t *testing.T) {
	var n Noop

	assert.NoError(t, n.Publish(context.Background(), domain.LifecycleEvent{}))
	assert.NoError(t, n.Close())
}
