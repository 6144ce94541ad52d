package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/SafeMeet/internal/domain"
	"github.com/stpnv0/SafeMeet/internal/service/ports"
	"github.com/stpnv0/SafeMeet/internal/slot"
	"github.com/wb-go/wbf/logger"
)

// Rules holds the booking parameters that operators may tune.
type Rules struct {
	SessionTTL   time.Duration
	MinLeadTime  time.Duration
	SlotStep     time.Duration
	CodeAttempts int
}

func DefaultRules() Rules {
	return Rules{
		SessionTTL:   24 * time.Hour,
		MinLeadTime:  slot.MinLeadTime,
		SlotStep:     slot.DefaultStep,
		CodeAttempts: 5,
	}
}

type SessionService struct {
	sessionRepo  ports.SessionRepo
	locationRepo ports.LocationRepo
	slotRepo     ports.SlotRepo
	locker       ports.Locker
	publisher    ports.EventPublisher
	notifier     ports.SessionNotifier
	challenges   ports.ChallengeGenerator
	codes        ports.CodeGenerator
	artifacts    ports.ArtifactStore
	rules        Rules
	logger       logger.Logger
	now          func() time.Time
}

func NewSessionService(
	sessionRepo ports.SessionRepo,
	locationRepo ports.LocationRepo,
	slotRepo ports.SlotRepo,
	locker ports.Locker,
	publisher ports.EventPublisher,
	notifier ports.SessionNotifier,
	challenges ports.ChallengeGenerator,
	codes ports.CodeGenerator,
	artifacts ports.ArtifactStore,
	rules Rules,
	logger logger.Logger,
) *SessionService {
	return &SessionService{
		sessionRepo:  sessionRepo,
		locationRepo: locationRepo,
		slotRepo:     slotRepo,
		locker:       locker,
		publisher:    publisher,
		notifier:     notifier,
		challenges:   challenges,
		codes:        codes,
		artifacts:    artifacts,
		rules:        rules,
		logger:       logger,
		now:          time.Now,
	}
}

func (s *SessionService) Create(ctx context.Context, in domain.CreateSessionInput) (*domain.BookingSession, error) {
	if in.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", domain.ErrValidation)
	}
	currency := strings.ToUpper(strings.TrimSpace(in.Currency))
	if len(currency) != 3 {
		return nil, fmt.Errorf("%w: currency must be a 3-letter ISO code", domain.ErrValidation)
	}
	level := in.SecurityLevel
	if level == "" {
		level = domain.SecurityStandard
	}
	if !level.Valid() {
		return nil, fmt.Errorf("%w: unknown security level %q", domain.ErrValidation, level)
	}

	now := s.now().UTC()
	ch := s.challenges.Generate()
	sess := &domain.BookingSession{
		ID:            uuid.New().String(),
		Status:        domain.StatusPendingVerification,
		Amount:        in.Amount,
		Currency:      currency,
		SecurityLevel: level,
		Buyer:         in.Buyer,
		Verification: &domain.Verification{
			ChallengeGesture: ch.Gesture,
			ReviewState:      domain.ReviewPending,
		},
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
		ExpiresAt: now.Add(s.rules.SessionTTL),
	}

	if err := s.sessionRepo.Create(ctx, sess); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	s.logger.Info("session created",
		logger.String("session_id", sess.ID),
		logger.String("gesture", ch.Gesture),
		logger.Int64("amount", sess.Amount),
		logger.String("currency", sess.Currency),
	)

	return sess, nil
}

// Get returns the current snapshot, persisting expiry if the deadline passed.
func (s *SessionService) Get(ctx context.Context, id string) (*domain.BookingSession, error) {
	unlock, err := s.lock(ctx, id)
	if err != nil {
		return nil, err
	}
	defer unlock()

	sess, err := s.sessionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	if sess.ExpiredAt(s.now()) {
		return s.expire(ctx, sess)
	}
	return sess, nil
}

func (s *SessionService) SubmitArtifact(ctx context.Context, id, artifactRef string) (*domain.BookingSession, error) {
	ref := strings.TrimSpace(artifactRef)
	return s.transition(ctx, id, domain.EventSubmitArtifact, "buyer", func(next *domain.BookingSession) error {
		if ref == "" {
			return domain.ErrArtifactRequired
		}
		now := s.now().UTC()
		next.Verification.ArtifactRef = ref
		next.Verification.ReviewState = domain.ReviewUploaded
		next.Verification.SubmittedAt = &now
		next.Verification.ReviewedAt = nil
		next.Verification.ReviewedBy = ""
		return nil
	})
}

// UploadArtifact stores the photo and submits its reference.
func (s *SessionService) UploadArtifact(ctx context.Context, id string, r io.Reader, filename string) (*domain.BookingSession, error) {
	if s.artifacts == nil {
		return nil, domain.ErrArtifactStoreDisabled
	}

	// статус проверяем до загрузки, чтобы не плодить лишние файлы
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.Status == domain.StatusExpired {
		return nil, domain.ErrSessionExpired
	}
	if !domain.CanApply(current.Status, domain.EventSubmitArtifact) {
		return nil, &domain.TransitionError{From: current.Status, Event: domain.EventSubmitArtifact}
	}

	ref, err := s.artifacts.Upload(ctx, id, r, filename)
	if err != nil {
		return nil, fmt.Errorf("upload artifact: %w", err)
	}

	return s.SubmitArtifact(ctx, id, ref)
}

func (s *SessionService) Approve(ctx context.Context, id, reviewer string) (*domain.BookingSession, error) {
	return s.decide(ctx, id, reviewer, domain.EventReviewApprove, func(next *domain.BookingSession) error {
		next.Verification.ReviewState = domain.ReviewApproved
		next.Verification.RejectReason = ""
		return nil
	})
}

func (s *SessionService) Reject(ctx context.Context, id, reviewer, reason string) (*domain.BookingSession, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, fmt.Errorf("%w: reject reason is required", domain.ErrValidation)
	}
	return s.decide(ctx, id, reviewer, domain.EventReviewReject, func(next *domain.BookingSession) error {
		next.Verification.ReviewState = domain.ReviewRejected
		next.Verification.RejectReason = reason
		return nil
	})
}

func (s *SessionService) decide(
	ctx context.Context,
	id, reviewer string,
	event domain.SessionEvent,
	apply func(next *domain.BookingSession) error,
) (*domain.BookingSession, error) {
	return s.transitionWith(ctx, id, event, reviewer, func(cur *domain.BookingSession) error {
		if cur.Status == domain.StatusVerificationSubmitted {
			return nil
		}
		if v := cur.Verification; v != nil && (v.ReviewState == domain.ReviewApproved || v.ReviewState == domain.ReviewRejected) {
			return domain.ErrReviewAlreadyDecided
		}
		return nil
	}, func(next *domain.BookingSession) error {
		now := s.now().UTC()
		next.Verification.ReviewedAt = &now
		next.Verification.ReviewedBy = reviewer
		return apply(next)
	})
}

func (s *SessionService) SelectLocation(ctx context.Context, id, locationID string) (*domain.BookingSession, error) {
	loc, err := s.locationRepo.GetByID(ctx, locationID)
	if err != nil {
		return nil, fmt.Errorf("get location: %w", err)
	}
	if !loc.Enabled {
		return nil, domain.ErrLocationDisabled
	}

	return s.transition(ctx, id, domain.EventSelectLocation, "buyer", func(next *domain.BookingSession) error {
		next.LocationID = loc.ID
		next.Meetup = nil
		return nil
	})
}

func (s *SessionService) SelectSlot(ctx context.Context, id, date, clock string) (*domain.BookingSession, error) {
	clock, err := slot.NormalizeClock(clock)
	if err != nil {
		return nil, err
	}
	if !slot.OnGrid(clock, s.rules.SlotStep) {
		return nil, fmt.Errorf("%w: time %s is not on the %s slot grid", domain.ErrValidation, clock, s.rules.SlotStep)
	}

	return s.transition(ctx, id, domain.EventSelectSlot, "buyer", func(next *domain.BookingSession) error {
		loc, err := s.usableLocation(ctx, next.LocationID)
		if err != nil {
			return err
		}
		if err := s.classify(ctx, loc, date, clock); err != nil {
			return err
		}
		if err := s.beforeDeadline(next, loc, date, clock); err != nil {
			return err
		}
		next.Meetup = &domain.Meetup{LocationID: loc.ID, Date: date, Time: clock}
		return nil
	})
}

// Confirm re-validates the chosen slot and commits it with a fresh code.
func (s *SessionService) Confirm(ctx context.Context, id string) (*domain.BookingSession, error) {
	unlock, err := s.lock(ctx, id)
	if err != nil {
		return nil, err
	}
	defer unlock()

	cur, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	to, err := domain.Next(cur.Status, domain.EventConfirm)
	if err != nil {
		return nil, err
	}

	m := cur.Meetup
	loc, err := s.usableLocation(ctx, m.LocationID)
	if err != nil {
		return nil, err
	}
	if err = s.classify(ctx, loc, m.Date, m.Time); err != nil {
		return nil, err
	}
	if err = s.beforeDeadline(cur, loc, m.Date, m.Time); err != nil {
		return nil, err
	}

	attempts := s.rules.CodeAttempts
	if attempts <= 0 {
		attempts = 1
	}

	for i := 0; i < attempts; i++ {
		code, err := s.codes.Generate()
		if err != nil {
			return nil, fmt.Errorf("generate confirmation code: %w", err)
		}

		now := s.now().UTC()
		next := cur.Clone()
		next.Status = to
		next.UpdatedAt = now
		next.Meetup.ConfirmationCode = code
		next.Meetup.StaffContact = loc.StaffContact

		booking := &domain.SlotBooking{
			ID:               uuid.New().String(),
			SessionID:        next.ID,
			LocationID:       loc.ID,
			Date:             m.Date,
			Time:             m.Time,
			ConfirmationCode: code,
			State:            domain.SlotHeld,
			ExpiresAt:        next.ExpiresAt,
			CreatedAt:        now,
		}

		err = s.sessionRepo.Confirm(ctx, next, cur.Version, booking)
		if errors.Is(err, domain.ErrDuplicateConfirmationCode) {
			s.logger.Warn("confirmation code collision, retrying",
				logger.String("session_id", id),
				logger.Int("attempt", i+1),
			)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("confirm session: %w", err)
		}

		next.Version = cur.Version + 1
		s.committed(ctx, next, cur.Status, domain.EventConfirm, "buyer")
		go s.notifier.NotifyConfirmed(context.WithoutCancel(ctx), next.Clone(), loc)

		return next, nil
	}

	return nil, fmt.Errorf("confirm session after %d attempts: %w", attempts, domain.ErrDuplicateConfirmationCode)
}

func (s *SessionService) MarkCompleted(ctx context.Context, id, operator string) (*domain.BookingSession, error) {
	return s.transition(ctx, id, domain.EventMarkCompleted, operator, nil)
}

// Cancel is idempotent on cancelled sessions. Cancelling an expired session
// reports ErrSessionExpired.
func (s *SessionService) Cancel(ctx context.Context, id, reason, actor string) (*domain.BookingSession, error) {
	unlock, err := s.lock(ctx, id)
	if err != nil {
		return nil, err
	}
	defer unlock()

	cur, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if cur.Status == domain.StatusCancelled {
		return cur, nil
	}

	return s.apply(ctx, cur, domain.EventCancel, actor, func(next *domain.BookingSession) error {
		next.CancelReason = strings.TrimSpace(reason)
		return nil
	})
}

// ExpireStale moves every session past its deadline to expired.
func (s *SessionService) ExpireStale(ctx context.Context, limit int) ([]*domain.BookingSession, error) {
	stale, err := s.sessionRepo.ListExpirable(ctx, s.now(), limit)
	if err != nil {
		return nil, fmt.Errorf("list expirable sessions: %w", err)
	}

	expired := make([]*domain.BookingSession, 0, len(stale))
	for _, st := range stale {
		sess, err := s.Get(ctx, st.ID)
		if err != nil {
			s.logger.Error("failed to expire session",
				logger.String("session_id", st.ID),
				logger.String("error", err.Error()),
			)
			continue
		}
		if sess.Status == domain.StatusExpired {
			expired = append(expired, sess)
		}
	}

	return expired, nil
}

func (s *SessionService) transition(
	ctx context.Context,
	id string,
	event domain.SessionEvent,
	actor string,
	mutate func(next *domain.BookingSession) error,
) (*domain.BookingSession, error) {
	return s.transitionWith(ctx, id, event, actor, nil, mutate)
}

func (s *SessionService) transitionWith(
	ctx context.Context,
	id string,
	event domain.SessionEvent,
	actor string,
	precheck func(cur *domain.BookingSession) error,
	mutate func(next *domain.BookingSession) error,
) (*domain.BookingSession, error) {
	unlock, err := s.lock(ctx, id)
	if err != nil {
		return nil, err
	}
	defer unlock()

	cur, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if precheck != nil {
		if err = precheck(cur); err != nil {
			return nil, err
		}
	}

	return s.apply(ctx, cur, event, actor, mutate)
}

// apply must be called with the session lock held.
func (s *SessionService) apply(
	ctx context.Context,
	cur *domain.BookingSession,
	event domain.SessionEvent,
	actor string,
	mutate func(next *domain.BookingSession) error,
) (*domain.BookingSession, error) {
	to, err := domain.Next(cur.Status, event)
	if err != nil {
		return nil, err
	}

	next := cur.Clone()
	if mutate != nil {
		if err = mutate(next); err != nil {
			return nil, err
		}
	}
	next.Status = to
	next.UpdatedAt = s.now().UTC()
	if !to.HasMeetup() {
		next.Meetup = nil
	}

	if err = s.sessionRepo.Update(ctx, next, cur.Version); err != nil {
		return nil, fmt.Errorf("update session: %w", err)
	}
	next.Version = cur.Version + 1

	s.committed(ctx, next, cur.Status, event, actor)
	s.notify(ctx, next, event)

	return next, nil
}

// load reads the session and applies lazy expiry. Must hold the lock.
func (s *SessionService) load(ctx context.Context, id string) (*domain.BookingSession, error) {
	sess, err := s.sessionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	if sess.Status == domain.StatusExpired {
		return nil, domain.ErrSessionExpired
	}
	if sess.ExpiredAt(s.now()) {
		if _, err = s.expire(ctx, sess); err != nil {
			return nil, err
		}
		return nil, domain.ErrSessionExpired
	}
	return sess, nil
}

func (s *SessionService) expire(ctx context.Context, cur *domain.BookingSession) (*domain.BookingSession, error) {
	next, err := s.apply(ctx, cur, domain.EventExpire, "system", nil)
	if err != nil {
		return nil, fmt.Errorf("expire session: %w", err)
	}
	return next, nil
}

func (s *SessionService) lock(ctx context.Context, id string) (func(), error) {
	unlock, err := s.locker.Lock(ctx, "session:"+id)
	if err != nil {
		return nil, fmt.Errorf("lock session: %w", err)
	}
	return unlock, nil
}

func (s *SessionService) usableLocation(ctx context.Context, id string) (*domain.Location, error) {
	loc, err := s.locationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get location: %w", err)
	}
	if !loc.Enabled {
		return nil, domain.ErrLocationDisabled
	}
	return loc, nil
}

func (s *SessionService) classify(ctx context.Context, loc *domain.Location, date, clock string) error {
	if _, err := slot.ParseDate(date, loc.Zone()); err != nil {
		return err
	}
	now := s.now()
	booked, err := s.slotRepo.BookedSlots(ctx, loc.ID, date, now)
	if err != nil {
		return fmt.Errorf("load booked slots: %w", err)
	}
	c, err := slot.Classify(loc, date, clock, booked, now, s.rules.MinLeadTime)
	if err != nil {
		return err
	}
	return slot.Err(c)
}

// beforeDeadline rejects slots ending after ExpiresAt, when the held booking
// lapses and the session can no longer be completed.
func (s *SessionService) beforeDeadline(sess *domain.BookingSession, loc *domain.Location, date, clock string) error {
	start, err := slot.Start(loc, date, clock)
	if err != nil {
		return err
	}
	step := s.rules.SlotStep
	if step <= 0 {
		step = slot.DefaultStep
	}
	if end := start.Add(step); end.After(sess.ExpiresAt) {
		return fmt.Errorf("%w: slot ends %s, session expires %s", domain.ErrSlotAfterSessionExpiry,
			end.UTC().Format(time.RFC3339), sess.ExpiresAt.UTC().Format(time.RFC3339))
	}
	return nil
}

func (s *SessionService) committed(ctx context.Context, next *domain.BookingSession, from domain.SessionStatus, event domain.SessionEvent, actor string) {
	s.logger.Info("session transition",
		logger.String("session_id", next.ID),
		logger.String("event", string(event)),
		logger.String("from", string(from)),
		logger.String("to", string(next.Status)),
		logger.String("actor", actor),
	)

	evt := domain.LifecycleEvent{
		ID:         uuid.New().String(),
		Type:       event,
		SessionID:  next.ID,
		From:       from,
		To:         next.Status,
		LocationID: next.LocationID,
		Actor:      actor,
		OccurredAt: next.UpdatedAt,
	}
	if next.Meetup != nil {
		evt.Date = next.Meetup.Date
		evt.Time = next.Meetup.Time
	}

	if err := s.publisher.Publish(context.WithoutCancel(ctx), evt); err != nil {
		s.logger.Error("failed to publish session event",
			logger.String("session_id", next.ID),
			logger.String("event", string(event)),
			logger.String("error", err.Error()),
		)
	}
}

func (s *SessionService) notify(ctx context.Context, next *domain.BookingSession, event domain.SessionEvent) {
	snapshot := next.Clone()
	bg := context.WithoutCancel(ctx)

	switch event {
	case domain.EventReviewApprove:
		go s.notifier.NotifyReviewApproved(bg, snapshot)
	case domain.EventReviewReject:
		go s.notifier.NotifyReviewRejected(bg, snapshot)
	case domain.EventCancel:
		go s.notifier.NotifyCancelled(bg, snapshot)
	case domain.EventExpire:
		go s.notifier.NotifyExpired(bg, snapshot)
	}
}
