package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/SafeMeet/internal/domain"
	"github.com/stpnv0/SafeMeet/internal/service/ports"
	"github.com/stpnv0/SafeMeet/internal/slot"
	"github.com/wb-go/wbf/logger"
)

type LocationService struct {
	repo   ports.LocationRepo
	logger logger.Logger
}

func NewLocationService(repo ports.LocationRepo, logger logger.Logger) *LocationService {
	return &LocationService{
		repo:   repo,
		logger: logger,
	}
}

func (s *LocationService) Create(ctx context.Context, input domain.CreateLocationInput) (*domain.Location, error) {
	loc, err := buildLocation(uuid.New().String(), input)
	if err != nil {
		return nil, err
	}

	if err = s.repo.Create(ctx, loc); err != nil {
		return nil, fmt.Errorf("create location: %w", err)
	}

	s.logger.Info("location created",
		logger.String("location_id", loc.ID),
		logger.String("name", loc.Name),
	)

	return loc, nil
}

// Seed inserts locations that are not stored yet, keeping existing rows.
func (s *LocationService) Seed(ctx context.Context, seeds map[string]domain.CreateLocationInput) error {
	for id, input := range seeds {
		loc, err := buildLocation(id, input)
		if err != nil {
			return fmt.Errorf("seed location %s: %w", id, err)
		}
		if err = s.repo.Ensure(ctx, loc); err != nil {
			return fmt.Errorf("seed location %s: %w", id, err)
		}
	}

	if len(seeds) > 0 {
		s.logger.Info("locations seeded", logger.Int("count", len(seeds)))
	}
	return nil
}

func (s *LocationService) GetByID(ctx context.Context, id string) (*domain.Location, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *LocationService) List(ctx context.Context, onlyEnabled bool) ([]*domain.Location, error) {
	return s.repo.List(ctx, onlyEnabled)
}

func (s *LocationService) SetEnabled(ctx context.Context, id string, enabled bool) (*domain.Location, error) {
	loc, err := s.repo.SetEnabled(ctx, id, enabled)
	if err != nil {
		return nil, fmt.Errorf("set location enabled: %w", err)
	}

	s.logger.Info("location availability changed",
		logger.String("location_id", id),
		logger.Any("enabled", enabled),
	)

	return loc, nil
}

func buildLocation(id string, input domain.CreateLocationInput) (*domain.Location, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if strings.TrimSpace(input.Address) == "" {
		return nil, fmt.Errorf("%w: address is required", domain.ErrValidation)
	}
	if input.CapacityPerSlot < 0 {
		return nil, fmt.Errorf("%w: capacity_per_slot must not be negative", domain.ErrValidation)
	}
	if err := slot.ValidateHours(input.OperatingHours); err != nil {
		return nil, err
	}

	level := input.SafetyLevel
	if level == "" {
		level = domain.SafetyStandard
	}
	switch level {
	case domain.SafetyStandard, domain.SafetyHigh, domain.SafetyPoliceStation:
	default:
		return nil, fmt.Errorf("%w: unknown safety level %q", domain.ErrValidation, level)
	}

	tz := input.Timezone
	if tz == "" {
		tz = "UTC"
	}
	if _, err := time.LoadLocation(tz); err != nil {
		return nil, fmt.Errorf("%w: unknown timezone %q", domain.ErrValidation, tz)
	}

	capacity := input.CapacityPerSlot
	if capacity == 0 {
		capacity = 1
	}

	now := time.Now().UTC()
	return &domain.Location{
		ID:              id,
		Name:            name,
		Address:         strings.TrimSpace(input.Address),
		SafetyLevel:     level,
		StaffContact:    input.StaffContact,
		Timezone:        tz,
		OperatingHours:  input.OperatingHours,
		CapacityPerSlot: capacity,
		Enabled:         true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}
