package dto

import (
	"strings"
	"time"

	"github.com/stpnv0/SafeMeet/internal/challenge"
	"github.com/stpnv0/SafeMeet/internal/domain"
)

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

type ChallengeResponse struct {
	Gesture         string `json:"gesture"`
	DisplayIcon     string `json:"display_icon"`
	InstructionText string `json:"instruction_text"`
}

type VerificationResponse struct {
	Challenge    ChallengeResponse `json:"challenge"`
	ArtifactRef  string            `json:"artifact_ref,omitempty"`
	ReviewState  string            `json:"review_state"`
	SubmittedAt  string            `json:"submitted_at,omitempty"`
	ReviewedAt   string            `json:"reviewed_at,omitempty"`
	RejectReason string            `json:"reject_reason,omitempty"`
}

type MeetupResponse struct {
	LocationID       string `json:"location_id"`
	Date             string `json:"date"`
	Time             string `json:"time"`
	ConfirmationCode string `json:"confirmation_code,omitempty"`
	StaffContact     string `json:"staff_contact,omitempty"`
}

type SessionResponse struct {
	ID            string                `json:"id"`
	Status        string                `json:"status"`
	Amount        int64                 `json:"amount"`
	Currency      string                `json:"currency"`
	SecurityLevel string                `json:"security_level"`
	Buyer         BuyerRequest          `json:"buyer"`
	Verification  *VerificationResponse `json:"verification,omitempty"`
	LocationID    string                `json:"location_id,omitempty"`
	Meetup        *MeetupResponse       `json:"meetup,omitempty"`
	CancelReason  string                `json:"cancel_reason,omitempty"`
	Version       int                   `json:"version"`
	CreatedAt     string                `json:"created_at"`
	UpdatedAt     string                `json:"updated_at"`
	ExpiresAt     string                `json:"expires_at"`
}

type TimeWindowResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type LocationResponse struct {
	ID              string                          `json:"id"`
	Name            string                          `json:"name"`
	Address         string                          `json:"address"`
	SafetyLevel     string                          `json:"safety_level"`
	StaffContact    string                          `json:"staff_contact,omitempty"`
	Timezone        string                          `json:"timezone"`
	CapacityPerSlot int                             `json:"capacity_per_slot"`
	Enabled         bool                            `json:"enabled"`
	OperatingHours  map[string][]TimeWindowResponse `json:"operating_hours"`
}

type SlotResponse struct {
	Time     string `json:"time"`
	Status   string `json:"status"`
	Booked   int    `json:"booked"`
	Capacity int    `json:"capacity"`
}

type DaySlotsResponse struct {
	LocationID string         `json:"location_id"`
	Date       string         `json:"date"`
	Slots      []SlotResponse `json:"slots"`
}

func ToSessionResponse(s *domain.BookingSession) SessionResponse {
	resp := SessionResponse{
		ID:            s.ID,
		Status:        string(s.Status),
		Amount:        s.Amount,
		Currency:      s.Currency,
		SecurityLevel: string(s.SecurityLevel),
		Buyer: BuyerRequest{
			BuyerID:        s.Buyer.BuyerID,
			Name:           s.Buyer.Name,
			Phone:          s.Buyer.Phone,
			TelegramChatID: s.Buyer.TelegramChatID,
		},
		LocationID:   s.LocationID,
		CancelReason: s.CancelReason,
		Version:      s.Version,
		CreatedAt:    s.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    s.UpdatedAt.Format(time.RFC3339),
		ExpiresAt:    s.ExpiresAt.Format(time.RFC3339),
	}

	if v := s.Verification; v != nil {
		ch, ok := challenge.Lookup(v.ChallengeGesture)
		if !ok {
			ch = challenge.Challenge{Gesture: v.ChallengeGesture}
		}
		resp.Verification = &VerificationResponse{
			Challenge: ChallengeResponse{
				Gesture:         ch.Gesture,
				DisplayIcon:     ch.DisplayIcon,
				InstructionText: ch.InstructionText,
			},
			ArtifactRef:  v.ArtifactRef,
			ReviewState:  string(v.ReviewState),
			SubmittedAt:  formatOptional(v.SubmittedAt),
			ReviewedAt:   formatOptional(v.ReviewedAt),
			RejectReason: v.RejectReason,
		}
	}

	if m := s.Meetup; m != nil {
		resp.Meetup = &MeetupResponse{
			LocationID:       m.LocationID,
			Date:             m.Date,
			Time:             m.Time,
			ConfirmationCode: m.ConfirmationCode,
			StaffContact:     m.StaffContact,
		}
	}

	return resp
}

func ToSessionResponses(sessions []*domain.BookingSession) []SessionResponse {
	resp := make([]SessionResponse, 0, len(sessions))
	for _, s := range sessions {
		resp = append(resp, ToSessionResponse(s))
	}
	return resp
}

func ToLocationResponse(l *domain.Location) LocationResponse {
	hours := make(map[string][]TimeWindowResponse, len(l.OperatingHours))
	for wd, windows := range l.OperatingHours {
		out := make([]TimeWindowResponse, 0, len(windows))
		for _, w := range windows {
			out = append(out, TimeWindowResponse{Start: w.Start, End: w.End})
		}
		hours[strings.ToLower(wd.String())] = out
	}

	return LocationResponse{
		ID:              l.ID,
		Name:            l.Name,
		Address:         l.Address,
		SafetyLevel:     string(l.SafetyLevel),
		StaffContact:    l.StaffContact,
		Timezone:        l.Timezone,
		CapacityPerSlot: l.CapacityPerSlot,
		Enabled:         l.Enabled,
		OperatingHours:  hours,
	}
}

func formatOptional(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339)
}
