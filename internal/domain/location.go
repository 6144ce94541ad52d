package domain

import (
	"strings"
	"time"
)

type SafetyLevel string

const (
	SafetyStandard      SafetyLevel = "standard"
	SafetyHigh          SafetyLevel = "high"
	SafetyPoliceStation SafetyLevel = "police_station"
)

// TimeWindow is a half-open [Start, End) interval in "HH:MM" local time.
type TimeWindow struct {
	Start string `json:"start" yaml:"start"`
	End   string `json:"end"   yaml:"end"`
}

type Location struct {
	ID              string                        `json:"id"`
	Name            string                        `json:"name"`
	Address         string                        `json:"address"`
	SafetyLevel     SafetyLevel                   `json:"safety_level"`
	StaffContact    string                        `json:"staff_contact"`
	Timezone        string                        `json:"timezone"`
	OperatingHours  map[time.Weekday][]TimeWindow `json:"operating_hours"`
	CapacityPerSlot int                           `json:"capacity_per_slot"`
	Enabled         bool                          `json:"enabled"`
	CreatedAt       time.Time                     `json:"created_at"`
	UpdatedAt       time.Time                     `json:"updated_at"`
}

// Zone resolves the location timezone, falling back to UTC.
func (l *Location) Zone() *time.Location {
	if l.Timezone == "" {
		return time.UTC
	}
	tz, err := time.LoadLocation(l.Timezone)
	if err != nil {
		return time.UTC
	}
	return tz
}

func (l *Location) Capacity() int {
	if l.CapacityPerSlot <= 0 {
		return 1
	}
	return l.CapacityPerSlot
}

func (l *Location) Clone() *Location {
	c := *l
	if l.OperatingHours != nil {
		c.OperatingHours = make(map[time.Weekday][]TimeWindow, len(l.OperatingHours))
		for wd, windows := range l.OperatingHours {
			c.OperatingHours[wd] = append([]TimeWindow(nil), windows...)
		}
	}
	return &c
}

// ParseWeekday accepts full English day names in any case ("monday").
func ParseWeekday(name string) (time.Weekday, bool) {
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		if strings.EqualFold(wd.String(), strings.TrimSpace(name)) {
			return wd, true
		}
	}
	return 0, false
}

type CreateLocationInput struct {
	Name            string
	Address         string
	SafetyLevel     SafetyLevel
	StaffContact    string
	Timezone        string
	OperatingHours  map[time.Weekday][]TimeWindow
	CapacityPerSlot int
}

type SlotState string

const (
	SlotHeld      SlotState = "held"
	SlotCompleted SlotState = "completed"
	SlotReleased  SlotState = "released"
)

// SlotBooking is one occupied (location, date, time) unit owned by a session.
type SlotBooking struct {
	ID               string    `json:"id"`
	SessionID        string    `json:"session_id"`
	LocationID       string    `json:"location_id"`
	Date             string    `json:"date"`
	Time             string    `json:"time"`
	ConfirmationCode string    `json:"confirmation_code"`
	State            SlotState `json:"state"`
	ExpiresAt        time.Time `json:"expires_at"`
	CreatedAt        time.Time `json:"created_at"`
}

// ActiveAt reports whether the booking still occupies its slot at now.
func (b *SlotBooking) ActiveAt(now time.Time) bool {
	switch b.State {
	case SlotCompleted:
		return true
	case SlotHeld:
		return !now.After(b.ExpiresAt)
	default:
		return false
	}
}
