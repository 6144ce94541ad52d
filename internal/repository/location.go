package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/stpnv0/SafeMeet/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const locationColumns = `id, name, address, safety_level, staff_contact, timezone,
		operating_hours, capacity_per_slot, enabled, created_at, updated_at`

type LocationRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewLocationRepo(db *dbpg.DB) *LocationRepository {
	return &LocationRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *LocationRepository) Create(ctx context.Context, l *domain.Location) error {
	query := `INSERT INTO locations (` + locationColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	return r.insert(ctx, query, l)
}

// Ensure inserts the location unless a row with the same id exists.
func (r *LocationRepository) Ensure(ctx context.Context, l *domain.Location) error {
	query := `INSERT INTO locations (` + locationColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			  ON CONFLICT (id) DO NOTHING`
	return r.insert(ctx, query, l)
}

func (r *LocationRepository) insert(ctx context.Context, query string, l *domain.Location) error {
	hours, err := json.Marshal(l.OperatingHours)
	if err != nil {
		return fmt.Errorf("marshal operating hours: %w", err)
	}

	_, err = r.db.ExecWithRetry(
		ctx, r.strategy, query,
		l.ID, l.Name, l.Address, l.SafetyLevel, l.StaffContact, l.Timezone,
		string(hours), l.CapacityPerSlot, l.Enabled, l.CreatedAt, l.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: location %s already exists", domain.ErrValidation, l.ID)
		}
		return fmt.Errorf("insert location: %w", err)
	}

	return nil
}

func (r *LocationRepository) GetByID(ctx context.Context, id string) (*domain.Location, error) {
	query := `SELECT ` + locationColumns + ` FROM locations WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get location: %w", err)
	}

	l, err := scanLocation(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrLocationNotFound
		}
		return nil, fmt.Errorf("scan location: %w", err)
	}

	return l, nil
}

func (r *LocationRepository) List(ctx context.Context, onlyEnabled bool) ([]*domain.Location, error) {
	query := `SELECT ` + locationColumns + `
			  FROM locations
			  WHERE ($1 = FALSE OR enabled)
			  ORDER BY name`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, onlyEnabled)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	defer rows.Close()

	var res []*domain.Location
	for rows.Next() {
		l, err := scanLocation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan location: %w", err)
		}
		res = append(res, l)
	}

	return res, rows.Err()
}

func (r *LocationRepository) SetEnabled(ctx context.Context, id string, enabled bool) (*domain.Location, error) {
	query := `UPDATE locations
			  SET enabled = $2, updated_at = now()
			  WHERE id = $1
			  RETURNING ` + locationColumns

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id, enabled)
	if err != nil {
		return nil, fmt.Errorf("update location: %w", err)
	}

	l, err := scanLocation(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrLocationNotFound
		}
		return nil, fmt.Errorf("scan location: %w", err)
	}

	return l, nil
}

func scanLocation(row scanner) (*domain.Location, error) {
	var l domain.Location
	var hours []byte
	if err := row.Scan(
		&l.ID, &l.Name, &l.Address, &l.SafetyLevel, &l.StaffContact, &l.Timezone,
		&hours, &l.CapacityPerSlot, &l.Enabled, &l.CreatedAt, &l.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if len(hours) > 0 {
		if err := json.Unmarshal(hours, &l.OperatingHours); err != nil {
			return nil, fmt.Errorf("unmarshal operating hours: %w", err)
		}
	}

	return &l, nil
}
