package domain

type SessionEvent string

const (
	EventSubmitArtifact SessionEvent = "submit_artifact"
	EventReviewApprove  SessionEvent = "review_approve"
	EventReviewReject   SessionEvent = "review_reject"
	EventSelectLocation SessionEvent = "select_location"
	EventSelectSlot     SessionEvent = "select_slot"
	EventConfirm        SessionEvent = "confirm"
	EventMarkCompleted  SessionEvent = "mark_completed"
	EventCancel         SessionEvent = "cancel"
	EventExpire         SessionEvent = "expire"
)

// Transitions is the complete session state flow. Cancel and expire are
// legal from every non-terminal status and are added by init.
var Transitions = map[SessionStatus]map[SessionEvent]SessionStatus{
	StatusPendingVerification: {
		EventSubmitArtifact: StatusVerificationSubmitted,
	},
	StatusVerificationSubmitted: {
		EventReviewApprove: StatusVerificationApproved,
		EventReviewReject:  StatusPendingVerification,
	},
	StatusVerificationApproved: {
		EventSelectLocation: StatusLocationSelected,
	},
	StatusLocationSelected: {
		EventSelectLocation: StatusLocationSelected,
		EventSelectSlot:     StatusTimeSelected,
	},
	StatusTimeSelected: {
		EventSelectLocation: StatusLocationSelected,
		EventSelectSlot:     StatusTimeSelected,
		EventConfirm:        StatusConfirmed,
	},
	StatusConfirmed: {
		EventMarkCompleted: StatusCompleted,
	},
	StatusCompleted: {},
	StatusCancelled: {},
	StatusExpired:   {},
}

func init() {
	for from, events := range Transitions {
		if from.Terminal() {
			continue
		}
		events[EventCancel] = StatusCancelled
		events[EventExpire] = StatusExpired
	}
}

// Next returns the status reached by applying event in from, or a
// *TransitionError wrapping ErrInvalidTransition.
func Next(from SessionStatus, event SessionEvent) (SessionStatus, error) {
	if to, ok := Transitions[from][event]; ok {
		return to, nil
	}
	return from, &TransitionError{From: from, Event: event}
}

func CanApply(from SessionStatus, event SessionEvent) bool {
	_, ok := Transitions[from][event]
	return ok
}
