package service

import (
	"context"
	"fmt"
	"time"

	"github.com/stpnv0/SafeMeet/internal/domain"
	"github.com/stpnv0/SafeMeet/internal/service/ports"
	"github.com/stpnv0/SafeMeet/internal/slot"
)

// SlotAvailability is one row of the slot picker.
type SlotAvailability struct {
	Time     string
	Status   slot.Classification
	Booked   int
	Capacity int
}

type AvailabilityService struct {
	locationRepo ports.LocationRepo
	slotRepo     ports.SlotRepo
	rules        Rules
	now          func() time.Time
}

func NewAvailabilityService(locationRepo ports.LocationRepo, slotRepo ports.SlotRepo, rules Rules) *AvailabilityService {
	return &AvailabilityService{
		locationRepo: locationRepo,
		slotRepo:     slotRepo,
		rules:        rules,
		now:          time.Now,
	}
}

// BookedSlots counts confirmed or completed bookings per time for one day.
func (s *AvailabilityService) BookedSlots(ctx context.Context, locationID, date string) (map[string]int, error) {
	loc, err := s.locationRepo.GetByID(ctx, locationID)
	if err != nil {
		return nil, fmt.Errorf("get location: %w", err)
	}
	if _, err = slot.ParseDate(date, loc.Zone()); err != nil {
		return nil, err
	}

	booked, err := s.slotRepo.BookedSlots(ctx, locationID, date, s.now())
	if err != nil {
		return nil, fmt.Errorf("load booked slots: %w", err)
	}
	return booked, nil
}

// DaySlots classifies every grid slot of the day.
func (s *AvailabilityService) DaySlots(ctx context.Context, locationID, date string) ([]SlotAvailability, error) {
	loc, err := s.locationRepo.GetByID(ctx, locationID)
	if err != nil {
		return nil, fmt.Errorf("get location: %w", err)
	}
	if !loc.Enabled {
		return nil, domain.ErrLocationDisabled
	}

	times, err := slot.Candidates(loc, date, s.rules.SlotStep)
	if err != nil {
		return nil, err
	}

	now := s.now()
	booked, err := s.slotRepo.BookedSlots(ctx, locationID, date, now)
	if err != nil {
		return nil, fmt.Errorf("load booked slots: %w", err)
	}

	out := make([]SlotAvailability, 0, len(times))
	for _, t := range times {
		c, err := slot.Classify(loc, date, t, booked, now, s.rules.MinLeadTime)
		if err != nil {
			return nil, err
		}
		out = append(out, SlotAvailability{
			Time:     t,
			Status:   c,
			Booked:   booked[t],
			Capacity: loc.Capacity(),
		})
	}
	return out, nil
}
