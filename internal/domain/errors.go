package domain

import (
	"errors"
	"fmt"
)

var (
	ErrSessionNotFound  = errors.New("session not found")
	ErrLocationNotFound = errors.New("location not found")
)

var (
	ErrInvalidTransition         = errors.New("invalid transition")
	ErrSessionExpired            = errors.New("session expired")
	ErrSlotNoLongerAvailable     = errors.New("slot no longer available")
	ErrOutsideOperatingHours     = errors.New("time is outside operating hours")
	ErrLeadTimeTooShort          = errors.New("lead time too short")
	ErrSlotAfterSessionExpiry    = errors.New("slot ends after the session expires")
	ErrDuplicateConfirmationCode = errors.New("duplicate confirmation code")
	ErrArtifactRequired          = errors.New("verification artifact required")
	ErrReviewAlreadyDecided      = errors.New("review already decided")
	ErrLocationDisabled          = errors.New("location is disabled")
	ErrConcurrentUpdate          = errors.New("session was modified concurrently")
)

var (
	ErrArtifactStoreDisabled = errors.New("artifact storage is not configured")
)

var (
	ErrValidation = errors.New("validation error")
)

// TransitionError is returned when an event is not legal in the current status.
type TransitionError struct {
	From  SessionStatus
	Event SessionEvent
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s: %s is not allowed in status %s", ErrInvalidTransition, e.Event, e.From)
}

func (e *TransitionError) Unwrap() error {
	return ErrInvalidTransition
}
