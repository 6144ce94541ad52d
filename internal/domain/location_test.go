package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseWeekday(t *testing.T) {
	wd, ok := ParseWeekday("Monday")
	assert.True(t, ok)
	assert.Equal(t, time.Monday, wd)

	wd, ok = ParseWeekday(" sunday ")
	assert.True(t, ok)
	assert.Equal(t, time.Sunday, wd)

	_, ok = ParseWeekday("mon")
	assert.False(t, ok)
}

func TestSlotBooking_ActiveAt(t *testing.T) {
	now := time.Date(2026, 5, 14, 8, 0, 0, 0, time.UTC)

	held := SlotBooking{State: SlotHeld, ExpiresAt: now}
	assert.True(t, held.ActiveAt(now))
	assert.False(t, held.ActiveAt(now.Add(time.Second)))

	done := SlotBooking{State: SlotCompleted, ExpiresAt: now}
	assert.True(t, done.ActiveAt(now.Add(time.Hour)))

	released := SlotBooking{State: SlotReleased, ExpiresAt: now.Add(time.Hour)}
	assert.False(t, released.ActiveAt(now))
}

func TestLocation_CloneIsDeep(t *testing.T) {
	l := &Location{OperatingHours: map[time.Weekday][]TimeWindow{time.Monday: {{Start: "09:00", End: "10:00"}}}}

	c := l.Clone()
	c.OperatingHours[time.Monday][0].Start = "08:00"

	assert.Equal(t, "09:00", l.OperatingHours[time.Monday][0].Start)
	assert.Equal(t, 1, (&Location{}).Capacity())
	assert.Equal(t, time.UTC, (&Location{Timezone: "Nowhere/Land"}).Zone())
}
