package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNext_HappyPath(t *testing.T) {
	steps := []struct {
		event SessionEvent
		want  SessionStatus
	}{
		{EventSubmitArtifact, StatusVerificationSubmitted},
		{EventReviewApprove, StatusVerificationApproved},
		{EventSelectLocation, StatusLocationSelected},
		{EventSelectSlot, StatusTimeSelected},
		{EventConfirm, StatusConfirmed},
		{EventMarkCompleted, StatusCompleted},
	}

	status := StatusPendingVerification
	for _, step := range steps {
		next, err := Next(status, step.event)
		require.NoError(t, err, "event %s from %s", step.event, status)
		assert.Equal(t, step.want, next)
		status = next
	}
}

func TestNext_RejectReturnsToPending(t *testing.T) {
	next, err := Next(StatusVerificationSubmitted, EventReviewReject)

	require.NoError(t, err)
	assert.Equal(t, StatusPendingVerification, next)
}

func TestNext_InvalidTransition(t *testing.T) {
	next, err := Next(StatusPendingVerification, EventConfirm)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidTransition))
	assert.Equal(t, StatusPendingVerification, next)

	var te *TransitionError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, EventConfirm, te.Event)
	assert.Equal(t, StatusPendingVerification, te.From)
}

func TestNext_CancelAndExpireFromEveryNonTerminal(t *testing.T) {
	for _, st := range AllStatuses {
		if st.Terminal() {
			continue
		}
		to, err := Next(st, EventCancel)
		require.NoError(t, err, st)
		assert.Equal(t, StatusCancelled, to)

		to, err = Next(st, EventExpire)
		require.NoError(t, err, st)
		assert.Equal(t, StatusExpired, to)
	}
}

func TestNext_TerminalStatesAreImmutable(t *testing.T) {
	events := []SessionEvent{
		EventSubmitArtifact, EventReviewApprove, EventReviewReject, EventSelectLocation,
		EventSelectSlot, EventConfirm, EventMarkCompleted, EventCancel, EventExpire,
	}
	for _, st := range []SessionStatus{StatusCompleted, StatusCancelled, StatusExpired} {
		for _, ev := range events {
			assert.False(t, CanApply(st, ev), "%s should not accept %s", st, ev)
		}
	}
}

func TestNext_ApprovalRequiredBeforeLocation(t *testing.T) {
	assert.False(t, CanApply(StatusPendingVerification, EventSelectLocation))
	assert.False(t, CanApply(StatusVerificationSubmitted, EventSelectLocation))
	assert.True(t, CanApply(StatusVerificationApproved, EventSelectLocation))
}

func TestTransitions_CoverEveryStatus(t *testing.T) {
	for _, st := range AllStatuses {
		_, ok := Transitions[st]
		assert.True(t, ok, "missing row for %s", st)
	}
}

func TestBookingSession_EffectiveStatus(t *testing.T) {
	created := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	s := &BookingSession{Status: StatusConfirmed, CreatedAt: created, ExpiresAt: created.Add(24 * time.Hour)}

	assert.Equal(t, StatusConfirmed, s.EffectiveStatus(created.Add(time.Hour)))
	assert.Equal(t, StatusExpired, s.EffectiveStatus(created.Add(25*time.Hour)))

	s.Status = StatusCompleted
	assert.Equal(t, StatusCompleted, s.EffectiveStatus(created.Add(25*time.Hour)))
}

func TestBookingSession_CloneIsDeep(t *testing.T) {
	chat := int64(42)
	s := &BookingSession{
		ID:           "s1",
		Buyer:        BuyerContext{TelegramChatID: &chat},
		Verification: &Verification{ChallengeGesture: "fist"},
		Meetup:       &Meetup{LocationID: "l1"},
	}

	c := s.Clone()
	c.Verification.ChallengeGesture = "ok_sign"
	c.Meetup.LocationID = "l2"
	*c.Buyer.TelegramChatID = 7

	assert.Equal(t, "fist", s.Verification.ChallengeGesture)
	assert.Equal(t, "l1", s.Meetup.LocationID)
	assert.Equal(t, int64(42), *s.Buyer.TelegramChatID)
}
