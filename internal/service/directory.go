package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/stpnv0/SafeMeet/internal/domain"
	"github.com/stpnv0/SafeMeet/internal/service/ports"
	"github.com/stpnv0/SafeMeet/internal/slot"
)

// DirectoryService is the read-only operator view over sessions.
type DirectoryService struct {
	sessionRepo  ports.SessionRepo
	locationRepo ports.LocationRepo
	slotRepo     ports.SlotRepo
	rules        Rules
	now          func() time.Time
}

func NewDirectoryService(
	sessionRepo ports.SessionRepo,
	locationRepo ports.LocationRepo,
	slotRepo ports.SlotRepo,
	rules Rules,
) *DirectoryService {
	return &DirectoryService{
		sessionRepo:  sessionRepo,
		locationRepo: locationRepo,
		slotRepo:     slotRepo,
		rules:        rules,
		now:          time.Now,
	}
}

func (s *DirectoryService) Sessions(ctx context.Context, filter domain.SessionFilter) ([]*domain.BookingSession, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, filter.Status)
	}
	filter.Limit, filter.Offset = page(filter.Limit, filter.Offset)

	sessions, err := s.sessionRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	now := s.now()
	for _, sess := range sessions {
		sess.Status = sess.EffectiveStatus(now)
	}
	return sessions, nil
}

func (s *DirectoryService) Stats(ctx context.Context) (*domain.DirectoryStats, error) {
	now := s.now()

	counts, err := s.sessionRepo.CountByStatus(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("count sessions: %w", err)
	}
	byStatus := make(map[domain.SessionStatus]int, len(domain.AllStatuses))
	for _, st := range domain.AllStatuses {
		byStatus[st] = counts[st]
	}

	utilization, err := s.utilization(ctx, now)
	if err != nil {
		return nil, err
	}

	throughput, err := s.sessionRepo.CompletedThroughput(ctx)
	if err != nil {
		return nil, fmt.Errorf("completed throughput: %w", err)
	}
	for i := range throughput {
		if throughput[i].Count > 0 {
			throughput[i].Average = float64(throughput[i].Total) / float64(throughput[i].Count)
		}
	}

	return &domain.DirectoryStats{
		ByStatus:    byStatus,
		Utilization: utilization,
		Throughput:  throughput,
	}, nil
}

func (s *DirectoryService) utilization(ctx context.Context, now time.Time) ([]domain.LocationUtilization, error) {
	locations, err := s.locationRepo.List(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}

	byDate := make(map[string]map[string]int)
	out := make([]domain.LocationUtilization, 0, len(locations))
	for _, loc := range locations {
		date := now.In(loc.Zone()).Format(slot.DateLayout)

		active, ok := byDate[date]
		if !ok {
			active, err = s.slotRepo.ActiveByLocation(ctx, date, now)
			if err != nil {
				return nil, fmt.Errorf("count active slots: %w", err)
			}
			byDate[date] = active
		}

		times, err := slot.Candidates(loc, date, s.rules.SlotStep)
		if err != nil {
			return nil, err
		}

		u := domain.LocationUtilization{
			LocationID:   loc.ID,
			LocationName: loc.Name,
			Date:         date,
			Booked:       active[loc.ID],
			Capacity:     len(times) * loc.Capacity(),
		}
		if u.Capacity > 0 {
			u.Percent = math.Round(float64(u.Booked)/float64(u.Capacity)*10000) / 100
		}
		out = append(out, u)
	}

	return out, nil
}
