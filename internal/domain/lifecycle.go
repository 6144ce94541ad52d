package domain

import "time"

// LifecycleEvent is published after every persisted session transition.
type LifecycleEvent struct {
	ID         string        `json:"id"`
	Type       SessionEvent  `json:"type"`
	SessionID  string        `json:"session_id"`
	From       SessionStatus `json:"from"`
	To         SessionStatus `json:"to"`
	LocationID string        `json:"location_id,omitempty"`
	Date       string        `json:"date,omitempty"`
	Time       string        `json:"time,omitempty"`
	Actor      string        `json:"actor,omitempty"`
	OccurredAt time.Time     `json:"occurred_at"`
}
