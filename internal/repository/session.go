package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/stpnv0/SafeMeet/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const sessionColumns = `id, status, amount, currency, security_level, buyer, verification,
		COALESCE(location_id, ''), meetup, cancel_reason, version, created_at, updated_at, expires_at`

type SessionRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewSessionRepo(db *dbpg.DB) *SessionRepository {
	return &SessionRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *SessionRepository) Create(ctx context.Context, s *domain.BookingSession) error {
	args, err := sessionDocs(s)
	if err != nil {
		return err
	}

	query := `INSERT INTO sessions (id, status, amount, currency, security_level, buyer, verification,
				submitted_at, location_id, meetup, cancel_reason, version, created_at, updated_at, expires_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NULLIF($9, ''), $10, $11, $12, $13, $14, $15)`

	_, err = r.db.ExecWithRetry(
		ctx, r.strategy, query,
		s.ID, s.Status, s.Amount, s.Currency, s.SecurityLevel, args.buyer, args.verification,
		args.submittedAt, s.LocationID, args.meetup, s.CancelReason, s.Version,
		s.CreatedAt, s.UpdatedAt, s.ExpiresAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: session %s already exists", domain.ErrValidation, s.ID)
		}
		return fmt.Errorf("insert session: %w", err)
	}

	return nil
}

func (r *SessionRepository) GetByID(ctx context.Context, id string) (*domain.BookingSession, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	s, err := scanSession(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("scan session: %w", err)
	}

	return s, nil
}

// Update stores s if the row still has expectedVersion and moves the
// session's slot booking along with terminal statuses.
func (r *SessionRepository) Update(ctx context.Context, s *domain.BookingSession, expectedVersion int) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err = updateSession(ctx, tx, s, expectedVersion); err != nil {
		return err
	}

	var slotQuery string
	switch s.Status {
	case domain.StatusCompleted:
		slotQuery = `UPDATE slot_bookings SET state = 'completed' WHERE session_id = $1 AND state = 'held'`
	case domain.StatusCancelled, domain.StatusExpired:
		slotQuery = `UPDATE slot_bookings SET state = 'released' WHERE session_id = $1 AND state <> 'released'`
	}
	if slotQuery != "" {
		if _, err = tx.ExecContext(ctx, slotQuery, s.ID); err != nil {
			return fmt.Errorf("update slot booking: %w", err)
		}
	}

	return tx.Commit()
}

// Confirm commits the slot booking and the confirmed session in one
// transaction. The location row lock serializes confirms for the same place.
func (r *SessionRepository) Confirm(ctx context.Context, s *domain.BookingSession, expectedVersion int, b *domain.SlotBooking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	// Блокируем площадку, чтобы параллельные подтверждения шли по очереди
	var capacity int
	lockQuery := `SELECT capacity_per_slot FROM locations WHERE id = $1 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, lockQuery, b.LocationID).Scan(&capacity); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrLocationNotFound
		}
		return fmt.Errorf("lock location: %w", err)
	}

	var taken int
	activeQuery := `SELECT COUNT(*) FROM slot_bookings
					WHERE location_id = $1 AND slot_date = $2::date AND slot_time = $3
					  AND ` + fmt.Sprintf(activeBooking, "$4")
	if err = tx.QueryRowContext(ctx, activeQuery, b.LocationID, b.Date, b.Time, b.CreatedAt).Scan(&taken); err != nil {
		return fmt.Errorf("count slot bookings: %w", err)
	}

	if capacity <= 0 {
		capacity = 1
	}
	if taken >= capacity {
		return domain.ErrSlotNoLongerAvailable
	}

	insertQuery := `INSERT INTO slot_bookings (id, session_id, location_id, slot_date, slot_time,
						confirmation_code, state, expires_at, created_at)
					VALUES ($1, $2, $3, $4::date, $5, $6, $7, $8, $9)`
	if _, err = tx.ExecContext(
		ctx, insertQuery,
		b.ID, b.SessionID, b.LocationID, b.Date, b.Time,
		b.ConfirmationCode, b.State, b.ExpiresAt, b.CreatedAt,
	); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateConfirmationCode
		}
		return fmt.Errorf("insert slot booking: %w", err)
	}

	if err = updateSession(ctx, tx, s, expectedVersion); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *SessionRepository) List(ctx context.Context, f domain.SessionFilter) ([]*domain.BookingSession, error) {
	query := `SELECT ` + sessionColumns + `
			  FROM sessions
			  WHERE ($1::text = '' OR status = $1)
			    AND ($2::text = '' OR location_id = $2)
			  ORDER BY created_at DESC, id
			  LIMIT $3 OFFSET $4`

	return r.list(ctx, query, string(f.Status), f.LocationID, limitArg(f.Limit), f.Offset)
}

// ListAwaitingReview skips sessions already past their deadline.
func (r *SessionRepository) ListAwaitingReview(ctx context.Context, now time.Time, limit, offset int) ([]*domain.BookingSession, error) {
	query := `SELECT ` + sessionColumns + `
			  FROM sessions
			  WHERE status = $1 AND expires_at >= $2
			  ORDER BY COALESCE(submitted_at, created_at), id
			  LIMIT $3 OFFSET $4`

	return r.list(ctx, query, domain.StatusVerificationSubmitted, now, limitArg(limit), offset)
}

func (r *SessionRepository) ListExpirable(ctx context.Context, now time.Time, limit int) ([]*domain.BookingSession, error) {
	query := `SELECT ` + sessionColumns + `
			  FROM sessions
			  WHERE status <> ALL($1) AND expires_at < $2
			  ORDER BY expires_at
			  LIMIT $3`

	return r.list(ctx, query, pq.Array(terminalStatuses()), now, limitArg(limit))
}

func (r *SessionRepository) CountByStatus(ctx context.Context, now time.Time) (map[domain.SessionStatus]int, error) {
	query := `SELECT CASE WHEN status <> ALL($1) AND expires_at < $2 THEN $3 ELSE status END AS effective,
				COUNT(*)
			  FROM sessions
			  GROUP BY effective`

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		pq.Array(terminalStatuses()), now, domain.StatusExpired,
	)
	if err != nil {
		return nil, fmt.Errorf("count sessions by status: %w", err)
	}
	defer rows.Close()

	counts := make(map[domain.SessionStatus]int)
	for rows.Next() {
		var status domain.SessionStatus
		var n int
		if err = rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("scan status count: %w", err)
		}
		counts[status] = n
	}

	return counts, rows.Err()
}

func (r *SessionRepository) CompletedThroughput(ctx context.Context) ([]domain.Throughput, error) {
	query := `SELECT currency, COUNT(*), COALESCE(SUM(amount), 0)
			  FROM sessions
			  WHERE status = $1
			  GROUP BY currency
			  ORDER BY currency`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, domain.StatusCompleted)
	if err != nil {
		return nil, fmt.Errorf("completed throughput: %w", err)
	}
	defer rows.Close()

	var res []domain.Throughput
	for rows.Next() {
		var t domain.Throughput
		if err = rows.Scan(&t.Currency, &t.Count, &t.Total); err != nil {
			return nil, fmt.Errorf("scan throughput: %w", err)
		}
		res = append(res, t)
	}

	return res, rows.Err()
}

func (r *SessionRepository) list(ctx context.Context, query string, args ...any) ([]*domain.BookingSession, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var res []*domain.BookingSession
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		res = append(res, s)
	}

	return res, rows.Err()
}

func updateSession(ctx context.Context, tx txExecer, s *domain.BookingSession, expectedVersion int) error {
	args, err := sessionDocs(s)
	if err != nil {
		return err
	}

	query := `UPDATE sessions
			  SET status = $2, verification = $3, submitted_at = $4, location_id = NULLIF($5, ''),
			      meetup = $6, cancel_reason = $7, version = version + 1, updated_at = $8
			  WHERE id = $1 AND version = $9`
	res, err := tx.ExecContext(
		ctx, query,
		s.ID, s.Status, args.verification, args.submittedAt, s.LocationID,
		args.meetup, s.CancelReason, s.UpdatedAt, expectedVersion,
	)
	if err != nil {
		return fmt.Errorf("update session: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("session rows affected: %w", err)
	}
	if rows > 0 {
		return nil
	}

	// Строка не обновилась: сессии нет или версия уже другая
	var exists bool
	checkQuery := `SELECT EXISTS (SELECT 1 FROM sessions WHERE id = $1)`
	if err = tx.QueryRowContext(ctx, checkQuery, s.ID).Scan(&exists); err != nil {
		return fmt.Errorf("check session: %w", err)
	}
	if !exists {
		return domain.ErrSessionNotFound
	}
	return domain.ErrConcurrentUpdate
}

type sessionArgs struct {
	buyer        string
	verification any
	meetup       any
	submittedAt  *time.Time
}

func sessionDocs(s *domain.BookingSession) (sessionArgs, error) {
	var args sessionArgs

	buyer, err := json.Marshal(s.Buyer)
	if err != nil {
		return args, fmt.Errorf("marshal buyer: %w", err)
	}
	args.buyer = string(buyer)

	if args.verification, err = jsonDoc(s.Verification); err != nil {
		return args, fmt.Errorf("marshal verification: %w", err)
	}
	if args.meetup, err = jsonDoc(s.Meetup); err != nil {
		return args, fmt.Errorf("marshal meetup: %w", err)
	}
	if s.Verification != nil {
		args.submittedAt = s.Verification.SubmittedAt
	}

	return args, nil
}

func scanSession(row scanner) (*domain.BookingSession, error) {
	var s domain.BookingSession
	var buyer, verification, meetup []byte
	if err := row.Scan(
		&s.ID, &s.Status, &s.Amount, &s.Currency, &s.SecurityLevel, &buyer, &verification,
		&s.LocationID, &meetup, &s.CancelReason, &s.Version, &s.CreatedAt, &s.UpdatedAt, &s.ExpiresAt,
	); err != nil {
		return nil, err
	}

	if len(buyer) > 0 {
		if err := json.Unmarshal(buyer, &s.Buyer); err != nil {
			return nil, fmt.Errorf("unmarshal buyer: %w", err)
		}
	}
	if len(verification) > 0 {
		s.Verification = &domain.Verification{}
		if err := json.Unmarshal(verification, s.Verification); err != nil {
			return nil, fmt.Errorf("unmarshal verification: %w", err)
		}
	}
	if len(meetup) > 0 {
		s.Meetup = &domain.Meetup{}
		if err := json.Unmarshal(meetup, s.Meetup); err != nil {
			return nil, fmt.Errorf("unmarshal meetup: %w", err)
		}
	}

	return &s, nil
}

func terminalStatuses() []string {
	var out []string
	for _, st := range domain.AllStatuses {
		if st.Terminal() {
			out = append(out, string(st))
		}
	}
	return out
}
