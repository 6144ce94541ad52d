package domain

import "time"

type SessionStatus string

const (
	StatusPendingVerification   SessionStatus = "pending_verification"
	StatusVerificationSubmitted SessionStatus = "verification_submitted"
	StatusVerificationApproved  SessionStatus = "verification_approved"
	StatusLocationSelected      SessionStatus = "location_selected"
	StatusTimeSelected          SessionStatus = "time_selected"
	StatusConfirmed             SessionStatus = "confirmed"
	StatusCompleted             SessionStatus = "completed"
	StatusCancelled             SessionStatus = "cancelled"
	StatusExpired               SessionStatus = "expired"
)

var AllStatuses = []SessionStatus{
	StatusPendingVerification,
	StatusVerificationSubmitted,
	StatusVerificationApproved,
	StatusLocationSelected,
	StatusTimeSelected,
	StatusConfirmed,
	StatusCompleted,
	StatusCancelled,
	StatusExpired,
}

func (s SessionStatus) Valid() bool {
	for _, st := range AllStatuses {
		if st == s {
			return true
		}
	}
	return false
}

// Terminal statuses never change again.
func (s SessionStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled || s == StatusExpired
}

// HasMeetup reports whether a session in this status carries a meetup record.
func (s SessionStatus) HasMeetup() bool {
	return s == StatusTimeSelected || s == StatusConfirmed || s == StatusCompleted
}

type SecurityLevel string

const (
	SecurityStandard SecurityLevel = "standard"
	SecurityEnhanced SecurityLevel = "enhanced"
	SecurityPremium  SecurityLevel = "premium"
)

func (l SecurityLevel) Valid() bool {
	return l == SecurityStandard || l == SecurityEnhanced || l == SecurityPremium
}

type ReviewState string

const (
	ReviewPending  ReviewState = "pending"
	ReviewUploaded ReviewState = "uploaded"
	ReviewApproved ReviewState = "approved"
	ReviewRejected ReviewState = "rejected"
)

type BuyerContext struct {
	BuyerID        string `json:"buyer_id"`
	Name           string `json:"name"`
	Phone          string `json:"phone"`
	TelegramChatID *int64 `json:"telegram_chat_id,omitempty"`
}

type Verification struct {
	ChallengeGesture string      `json:"challenge_gesture"`
	ArtifactRef      string      `json:"artifact_ref"`
	ReviewState      ReviewState `json:"review_state"`
	SubmittedAt      *time.Time  `json:"submitted_at,omitempty"`
	ReviewedAt       *time.Time  `json:"reviewed_at,omitempty"`
	ReviewedBy       string      `json:"reviewed_by,omitempty"`
	RejectReason     string      `json:"reject_reason,omitempty"`
}

// Meetup is populated once a slot is picked; ConfirmationCode and
// StaffContact stay empty until the slot is committed.
type Meetup struct {
	LocationID       string `json:"location_id"`
	Date             string `json:"date"`
	Time             string `json:"time"`
	ConfirmationCode string `json:"confirmation_code,omitempty"`
	StaffContact     string `json:"staff_contact,omitempty"`
}

type BookingSession struct {
	ID            string        `json:"id"`
	Status        SessionStatus `json:"status"`
	Amount        int64         `json:"amount"`
	Currency      string        `json:"currency"`
	SecurityLevel SecurityLevel `json:"security_level"`
	Buyer         BuyerContext  `json:"buyer"`
	Verification  *Verification `json:"verification,omitempty"`
	LocationID    string        `json:"location_id,omitempty"`
	Meetup        *Meetup       `json:"meetup,omitempty"`
	CancelReason  string        `json:"cancel_reason,omitempty"`
	Version       int           `json:"version"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
	ExpiresAt     time.Time     `json:"expires_at"`
}

// ExpiredAt reports whether the session deadline has passed at now.
// Terminal sessions are never considered expired.
func (s *BookingSession) ExpiredAt(now time.Time) bool {
	return !s.Status.Terminal() && now.After(s.ExpiresAt)
}

// EffectiveStatus is the status a reader should observe at now.
func (s *BookingSession) EffectiveStatus(now time.Time) SessionStatus {
	if s.ExpiredAt(now) {
		return StatusExpired
	}
	return s.Status
}

func (s *BookingSession) Clone() *BookingSession {
	c := *s
	if s.Verification != nil {
		v := *s.Verification
		c.Verification = &v
	}
	if s.Meetup != nil {
		m := *s.Meetup
		c.Meetup = &m
	}
	if s.Buyer.TelegramChatID != nil {
		id := *s.Buyer.TelegramChatID
		c.Buyer.TelegramChatID = &id
	}
	return &c
}

type CreateSessionInput struct {
	Amount        int64
	Currency      string
	SecurityLevel SecurityLevel
	Buyer         BuyerContext
}

type SessionFilter struct {
	Status     SessionStatus
	LocationID string
	Limit      int
	Offset     int
}
