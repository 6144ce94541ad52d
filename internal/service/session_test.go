package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stpnv0/SafeMeet/internal/challenge"
	"github.com/stpnv0/SafeMeet/internal/confirmation"
	"github.com/stpnv0/SafeMeet/internal/domain"
	"github.com/stpnv0/SafeMeet/internal/events"
	"github.com/stpnv0/SafeMeet/internal/lock"
	"github.com/stpnv0/SafeMeet/internal/repository/memory"
	"github.com/stpnv0/SafeMeet/internal/service/ports"
	"github.com/stpnv0/SafeMeet/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

// 2026-05-14 is a Thursday.
var testNow = time.Date(2026, 5, 14, 8, 0, 0, 0, time.UTC)

const testDate = "2026-05-14"

type testClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *testClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = t
}

type nopNotifier struct{}

func (nopNotifier) NotifyReviewApproved(context.Context, *domain.BookingSession) {}
func (nopNotifier) NotifyReviewRejected(context.Context, *domain.BookingSession) {}
func (nopNotifier) NotifyConfirmed(context.Context, *domain.BookingSession, *domain.Location) {}
func (nopNotifier) NotifyCancelled(context.Context, *domain.BookingSession) {}
func (nopNotifier) NotifyExpired(context.Context, *domain.BookingSession) {}

type recordingPublisher struct {
	mu     sync.Mutex
	events []domain.LifecycleEvent
}

func (p *recordingPublisher) Publish(_ context.Context, e domain.LifecycleEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return nil
}

func (p *recordingPublisher) types() []domain.SessionEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]domain.SessionEvent, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}

type fixture struct {
	svc       *SessionService
	store     *memory.Store
	clock     *testClock
	publisher *recordingPublisher
}

func dailyHours(start, end string) map[time.Weekday][]domain.TimeWindow {
	hours := make(map[time.Weekday][]domain.TimeWindow)
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		hours[wd] = []domain.TimeWindow{{Start: start, End: end}}
	}
	return hours
}

func newFixture(t *testing.T, codes ports.CodeGenerator) *fixture {
	t.Helper()
	store := memory.New()
	ctx := context.Background()

	require.NoError(t, store.Locations().Create(ctx, &domain.Location{
		ID:              "loc-1",
		Name:            "Central Police Station",
		Address:         "Main st. 1",
		SafetyLevel:     domain.SafetyPoliceStation,
		StaffContact:    "+49 30 1234",
		Timezone:        "UTC",
		OperatingHours:  dailyHours("10:00", "20:00"),
		CapacityPerSlot: 1,
		Enabled:         true,
	}))
	require.NoError(t, store.Locations().Create(ctx, &domain.Location{
		ID:              "loc-off",
		Name:            "Closed Mall",
		Address:         "Side st. 9",
		Timezone:        "UTC",
		OperatingHours:  dailyHours("10:00", "20:00"),
		CapacityPerSlot: 1,
		Enabled:         false,
	}))

	if codes == nil {
		codes = confirmation.NewGenerator()
	}
	clock := &testClock{t: testNow}
	pub := &recordingPublisher{}

	svc := NewSessionService(
		store.Sessions(),
		store.Locations(),
		store.Slots(),
		lock.NewLocalLocker(),
		pub,
		nopNotifier{},
		challenge.NewGenerator(),
		codes,
		nil,
		DefaultRules(),
		newTestLogger(t),
	)
	svc.now = clock.Now

	return &fixture{svc: svc, store: store, clock: clock, publisher: pub}
}

func (f *fixture) create(t *testing.T) *domain.BookingSession {
	t.Helper()
	s, err := f.svc.Create(context.Background(), domain.CreateSessionInput{
		Amount:   125050,
		Currency: "eur",
		Buyer:    domain.BuyerContext{BuyerID: "buyer-1", Name: "Alice"},
	})
	require.NoError(t, err)
	return s
}

func (f *fixture) approved(t *testing.T) *domain.BookingSession {
	t.Helper()
	ctx := context.Background()
	s := f.create(t)

	_, err := f.svc.SubmitArtifact(ctx, s.ID, "uploads/photo-1.jpg")
	require.NoError(t, err)
	s, err = f.svc.Approve(ctx, s.ID, "reviewer-1")
	require.NoError(t, err)
	return s
}

func (f *fixture) timeSelected(t *testing.T, clock string) *domain.BookingSession {
	t.Helper()
	ctx := context.Background()
	s := f.approved(t)

	_, err := f.svc.SelectLocation(ctx, s.ID, "loc-1")
	require.NoError(t, err)
	s, err = f.svc.SelectSlot(ctx, s.ID, testDate, clock)
	require.NoError(t, err)
	return s
}

func assertMeetupInvariant(t *testing.T, s *domain.BookingSession) {
	t.Helper()
	assert.Equal(t, s.Status.HasMeetup(), s.Meetup != nil, "status %s meetup %+v", s.Status, s.Meetup)
}

func TestSessionService_HappyPath(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	s := f.create(t)
	assert.Equal(t, domain.StatusPendingVerification, s.Status)
	assert.Equal(t, "EUR", s.Currency)
	assert.Equal(t, domain.SecurityStandard, s.SecurityLevel)
	assert.Equal(t, testNow.Add(24*time.Hour), s.ExpiresAt)
	require.NotNil(t, s.Verification)
	_, ok := challenge.Lookup(s.Verification.ChallengeGesture)
	assert.True(t, ok)
	gesture := s.Verification.ChallengeGesture
	assertMeetupInvariant(t, s)

	s, err := f.svc.SubmitArtifact(ctx, s.ID, "uploads/photo-1.jpg")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusVerificationSubmitted, s.Status)
	assert.Equal(t, domain.ReviewUploaded, s.Verification.ReviewState)
	assertMeetupInvariant(t, s)

	s, err = f.svc.Approve(ctx, s.ID, "reviewer-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusVerificationApproved, s.Status)
	assert.Equal(t, domain.ReviewApproved, s.Verification.ReviewState)
	assert.Equal(t, "reviewer-1", s.Verification.ReviewedBy)
	assertMeetupInvariant(t, s)

	s, err = f.svc.SelectLocation(ctx, s.ID, "loc-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusLocationSelected, s.Status)
	assertMeetupInvariant(t, s)

	s, err = f.svc.SelectSlot(ctx, s.ID, testDate, "14:00")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusTimeSelected, s.Status)
	assert.Empty(t, s.Meetup.ConfirmationCode)
	assertMeetupInvariant(t, s)

	s, err = f.svc.Confirm(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, s.Status)
	assert.True(t, confirmation.Valid(s.Meetup.ConfirmationCode))
	assert.Equal(t, "+49 30 1234", s.Meetup.StaffContact)
	assertMeetupInvariant(t, s)

	s, err = f.svc.MarkCompleted(ctx, s.ID, "operator-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, s.Status)
	assert.Equal(t, gesture, s.Verification.ChallengeGesture)
	assertMeetupInvariant(t, s)

	stored, err := f.svc.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, s.Version, stored.Version)
	assert.Equal(t, 7, stored.Version)

	assert.Equal(t, []domain.SessionEvent{
		domain.EventSubmitArtifact, domain.EventReviewApprove, domain.EventSelectLocation,
		domain.EventSelectSlot, domain.EventConfirm, domain.EventMarkCompleted,
	}, f.publisher.types())
}

func TestSessionService_Create_Validation(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	_, err := f.svc.Create(ctx, domain.CreateSessionInput{Amount: 0, Currency: "EUR"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = f.svc.Create(ctx, domain.CreateSessionInput{Amount: 100, Currency: "EURO"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = f.svc.Create(ctx, domain.CreateSessionInput{Amount: 100, Currency: "EUR", SecurityLevel: "max"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	s, err := f.svc.Create(ctx, domain.CreateSessionInput{Amount: 100, Currency: "USD", SecurityLevel: domain.SecurityPremium})
	require.NoError(t, err)
	assert.Equal(t, domain.SecurityPremium, s.SecurityLevel)
}

func TestSessionService_SubmitArtifact_RequiresRef(t *testing.T) {
	f := newFixture(t, nil)
	s := f.create(t)

	_, err := f.svc.SubmitArtifact(context.Background(), s.ID, "   ")

	assert.ErrorIs(t, err, domain.ErrArtifactRequired)
	got, err := f.svc.Get(context.Background(), s.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPendingVerification, got.Status)
}

func TestSessionService_RejectKeepsChallenge(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	s := f.create(t)
	gesture := s.Verification.ChallengeGesture

	_, err := f.svc.SubmitArtifact(ctx, s.ID, "uploads/blurry.jpg")
	require.NoError(t, err)

	_, err = f.svc.Reject(ctx, s.ID, "reviewer-1", "")
	assert.ErrorIs(t, err, domain.ErrValidation)

	s, err = f.svc.Reject(ctx, s.ID, "reviewer-1", "gesture not visible")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPendingVerification, s.Status)
	assert.Equal(t, domain.ReviewRejected, s.Verification.ReviewState)
	assert.Equal(t, "gesture not visible", s.Verification.RejectReason)
	assert.Equal(t, gesture, s.Verification.ChallengeGesture)

	_, err = f.svc.Approve(ctx, s.ID, "reviewer-2")
	assert.ErrorIs(t, err, domain.ErrReviewAlreadyDecided)

	s, err = f.svc.SubmitArtifact(ctx, s.ID, "uploads/sharp.jpg")
	require.NoError(t, err)
	assert.Equal(t, domain.ReviewUploaded, s.Verification.ReviewState)

	s, err = f.svc.Approve(ctx, s.ID, "reviewer-2")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusVerificationApproved, s.Status)
	assert.Equal(t, gesture, s.Verification.ChallengeGesture)
}

func TestSessionService_ReviewDecisionErrors(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	fresh := f.create(t)
	_, err := f.svc.Approve(ctx, fresh.ID, "reviewer-1")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	approved := f.approved(t)
	_, err = f.svc.Approve(ctx, approved.ID, "reviewer-1")
	assert.ErrorIs(t, err, domain.ErrReviewAlreadyDecided)
	_, err = f.svc.Reject(ctx, approved.ID, "reviewer-1", "changed my mind")
	assert.ErrorIs(t, err, domain.ErrReviewAlreadyDecided)

	_, err = f.svc.Approve(ctx, "missing", "reviewer-1")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestSessionService_SelectLocation_Guards(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	pending := f.create(t)
	_, err := f.svc.SelectLocation(ctx, pending.ID, "loc-1")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	approved := f.approved(t)
	_, err = f.svc.SelectLocation(ctx, approved.ID, "loc-off")
	assert.ErrorIs(t, err, domain.ErrLocationDisabled)

	_, err = f.svc.SelectLocation(ctx, approved.ID, "nowhere")
	assert.ErrorIs(t, err, domain.ErrLocationNotFound)
}

func TestSessionService_SelectSlot_Scenarios(t *testing.T) {
	tests := []struct {
		name    string
		now     time.Time
		clock   string
		wantErr error
	}{
		{"lead time too short", time.Date(2026, 5, 14, 9, 0, 0, 0, time.UTC), "10:30", domain.ErrLeadTimeTooShort},
		{"lead time met", time.Date(2026, 5, 14, 8, 0, 0, 0, time.UTC), "10:30", nil},
		{"outside hours", time.Date(2026, 5, 14, 8, 0, 0, 0, time.UTC), "21:00", domain.ErrOutsideOperatingHours},
		{"off the grid", time.Date(2026, 5, 14, 8, 0, 0, 0, time.UTC), "10:15", domain.ErrValidation},
		{"malformed time", time.Date(2026, 5, 14, 8, 0, 0, 0, time.UTC), "ten", domain.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, nil)
			f.clock.Set(tt.now)
			ctx := context.Background()
			s := f.approved(t)
			_, err := f.svc.SelectLocation(ctx, s.ID, "loc-1")
			require.NoError(t, err)

			got, err := f.svc.SelectSlot(ctx, s.ID, testDate, tt.clock)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				stored, getErr := f.svc.Get(ctx, s.ID)
				require.NoError(t, getErr)
				assert.Equal(t, domain.StatusLocationSelected, stored.Status)
				assert.Nil(t, stored.Meetup)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.StatusTimeSelected, got.Status)
			assert.Equal(t, tt.clock, got.Meetup.Time)
		})
	}
}

func TestSessionService_SelectSlot_AfterSessionDeadline(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	s := f.approved(t)
	_, err := f.svc.SelectLocation(ctx, s.ID, "loc-1")
	require.NoError(t, err)

	// created at 2026-05-14 08:00, expires 2026-05-15 08:00
	_, err = f.svc.SelectSlot(ctx, s.ID, "2026-05-17", "14:00")
	assert.ErrorIs(t, err, domain.ErrSlotAfterSessionExpiry)

	_, err = f.svc.SelectSlot(ctx, s.ID, "2026-05-15", "10:00")
	assert.ErrorIs(t, err, domain.ErrSlotAfterSessionExpiry)

	stored, err := f.svc.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusLocationSelected, stored.Status)
	assert.Nil(t, stored.Meetup)
}

func TestSessionService_SlotEndingAtDeadlineCanBeCompleted(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	f.clock.Set(time.Date(2026, 5, 13, 14, 30, 0, 0, time.UTC))
	s := f.timeSelected(t, "14:00")
	require.Equal(t, time.Date(2026, 5, 14, 14, 30, 0, 0, time.UTC), s.ExpiresAt)

	_, err := f.svc.SelectSlot(ctx, s.ID, testDate, "14:30")
	assert.ErrorIs(t, err, domain.ErrSlotAfterSessionExpiry)

	confirmed, err := f.svc.Confirm(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, "14:00", confirmed.Meetup.Time)

	f.clock.Set(time.Date(2026, 5, 14, 14, 10, 0, 0, time.UTC))
	done, err := f.svc.MarkCompleted(ctx, s.ID, "staff-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, done.Status)
}

func TestSessionService_Confirm_RechecksSessionDeadline(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	f.clock.Set(time.Date(2026, 5, 13, 14, 30, 0, 0, time.UTC))
	s := f.timeSelected(t, "14:00")

	f.svc.rules.SlotStep = time.Hour

	_, err := f.svc.Confirm(ctx, s.ID)
	assert.ErrorIs(t, err, domain.ErrSlotAfterSessionExpiry)

	stored, err := f.svc.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusTimeSelected, stored.Status)
}

func TestSessionService_SelectSlot_MalformedDate(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	s := f.approved(t)
	_, err := f.svc.SelectLocation(ctx, s.ID, "loc-1")
	require.NoError(t, err)

	_, err = f.svc.SelectSlot(ctx, s.ID, "14/05/2026", "14:00")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestSessionService_BackNavigation(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	s := f.timeSelected(t, "14:00")

	s, err := f.svc.SelectSlot(ctx, s.ID, testDate, "15:30")
	require.NoError(t, err)
	assert.Equal(t, "15:30", s.Meetup.Time)

	s, err = f.svc.SelectLocation(ctx, s.ID, "loc-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusLocationSelected, s.Status)
	assertMeetupInvariant(t, s)
}

func TestSessionService_ConcurrentConfirm_ExactlyOneWins(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	first := f.timeSelected(t, "14:00")
	second := f.timeSelected(t, "14:00")

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, id := range []string{first.ID, second.ID} {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			_, errs[i] = f.svc.Confirm(ctx, id)
		}(i, id)
	}
	wg.Wait()

	wins := 0
	for _, err := range errs {
		if err == nil {
			wins++
			continue
		}
		assert.ErrorIs(t, err, domain.ErrSlotNoLongerAvailable)
	}
	assert.Equal(t, 1, wins)

	statuses := map[domain.SessionStatus]int{}
	for _, id := range []string{first.ID, second.ID} {
		s, err := f.svc.Get(ctx, id)
		require.NoError(t, err)
		statuses[s.Status]++
		assertMeetupInvariant(t, s)
	}
	assert.Equal(t, map[domain.SessionStatus]int{domain.StatusConfirmed: 1, domain.StatusTimeSelected: 1}, statuses)

	booked, err := f.store.Slots().BookedSlots(ctx, "loc-1", testDate, f.clock.Now())
	require.NoError(t, err)
	assert.Equal(t, 1, booked["14:00"])
}

func TestSessionService_LoserCanRepickSlot(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	first := f.timeSelected(t, "14:00")
	second := f.timeSelected(t, "14:00")

	_, err := f.svc.Confirm(ctx, first.ID)
	require.NoError(t, err)

	_, err = f.svc.Confirm(ctx, second.ID)
	require.ErrorIs(t, err, domain.ErrSlotNoLongerAvailable)

	_, err = f.svc.SelectSlot(ctx, second.ID, testDate, "14:00")
	assert.ErrorIs(t, err, domain.ErrSlotNoLongerAvailable)

	_, err = f.svc.SelectSlot(ctx, second.ID, testDate, "14:30")
	require.NoError(t, err)
	confirmed, err := f.svc.Confirm(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, confirmed.Status)
}

func TestSessionService_Confirm_LeadTimeRechecked(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	s := f.timeSelected(t, "10:30")

	f.clock.Set(testNow.Add(time.Hour))
	_, err := f.svc.Confirm(ctx, s.ID)

	assert.ErrorIs(t, err, domain.ErrLeadTimeTooShort)
	got, err := f.svc.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusTimeSelected, got.Status)
}

func TestSessionService_Confirm_RequiresTimeSelected(t *testing.T) {
	f := newFixture(t, nil)
	s := f.approved(t)

	_, err := f.svc.Confirm(context.Background(), s.ID)

	var te *domain.TransitionError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, domain.StatusVerificationApproved, te.From)
	assert.Equal(t, domain.EventConfirm, te.Event)
}

func TestSessionService_Confirm_RetriesCodeCollision(t *testing.T) {
	codes := mocks.NewMockCodeGenerator(t)
	f := newFixture(t, codes)
	ctx := context.Background()

	first := f.timeSelected(t, "14:00")
	second := f.timeSelected(t, "15:00")

	codes.EXPECT().Generate().Return("AAAAAA", nil).Times(2)
	codes.EXPECT().Generate().Return("BBBBBB", nil).Once()

	_, err := f.svc.Confirm(ctx, first.ID)
	require.NoError(t, err)

	s, err := f.svc.Confirm(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, "BBBBBB", s.Meetup.ConfirmationCode)
}

func TestSessionService_Confirm_ExhaustsAttempts(t *testing.T) {
	codes := mocks.NewMockCodeGenerator(t)
	f := newFixture(t, codes)
	ctx := context.Background()

	first := f.timeSelected(t, "14:00")
	second := f.timeSelected(t, "15:00")

	codes.EXPECT().Generate().Return("AAAAAA", nil)

	_, err := f.svc.Confirm(ctx, first.ID)
	require.NoError(t, err)

	_, err = f.svc.Confirm(ctx, second.ID)
	assert.ErrorIs(t, err, domain.ErrDuplicateConfirmationCode)
	got, err := f.svc.Get(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusTimeSelected, got.Status)
	codes.AssertNumberOfCalls(t, "Generate", 1+DefaultRules().CodeAttempts)
}

func TestSessionService_Expiry(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	s := f.approved(t)
	_, err := f.svc.SelectLocation(ctx, s.ID, "loc-1")
	require.NoError(t, err)

	f.clock.Set(s.ExpiresAt.Add(time.Second))

	_, err = f.svc.SelectSlot(ctx, s.ID, "2026-05-16", "14:00")
	assert.ErrorIs(t, err, domain.ErrSessionExpired)

	got, err := f.svc.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusExpired, got.Status)
	assertMeetupInvariant(t, got)

	_, err = f.svc.Cancel(ctx, s.ID, "too late", "buyer")
	assert.ErrorIs(t, err, domain.ErrSessionExpired)

	assert.Contains(t, f.publisher.types(), domain.EventExpire)
}

func TestSessionService_ExpiryReleasesHeldSlot(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	s := f.timeSelected(t, "14:00")
	_, err := f.svc.Confirm(ctx, s.ID)
	require.NoError(t, err)

	expired, err := f.svc.ExpireStale(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, expired)

	f.clock.Set(s.ExpiresAt.Add(time.Minute))
	expired, err = f.svc.ExpireStale(ctx, 10)
	require.NoError(t, err)
	require.Len(t, expired, 1)
	assert.Equal(t, s.ID, expired[0].ID)
	assert.Equal(t, domain.StatusExpired, expired[0].Status)

	active, err := f.store.Slots().ActiveByLocation(ctx, testDate, testNow)
	require.NoError(t, err)
	assert.Empty(t, active)
}

func TestSessionService_CancelIsIdempotent(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	s := f.create(t)

	first, err := f.svc.Cancel(ctx, s.ID, "changed mind", "buyer")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, first.Status)
	assert.Equal(t, "changed mind", first.CancelReason)

	second, err := f.svc.Cancel(ctx, s.ID, "again", "buyer")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, second.Status)
	assert.Equal(t, first.Version, second.Version)
	assert.Equal(t, "changed mind", second.CancelReason)
}

func TestSessionService_CancelReleasesOwnSlotOnly(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	a := f.timeSelected(t, "14:00")
	b := f.timeSelected(t, "15:00")
	_, err := f.svc.Confirm(ctx, a.ID)
	require.NoError(t, err)
	_, err = f.svc.Confirm(ctx, b.ID)
	require.NoError(t, err)

	cancelled, err := f.svc.Cancel(ctx, a.ID, "", "operator-1")
	require.NoError(t, err)
	assertMeetupInvariant(t, cancelled)

	booked, err := f.store.Slots().BookedSlots(ctx, "loc-1", testDate, f.clock.Now())
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"15:00": 1}, booked)

	c := f.timeSelected(t, "14:00")
	_, err = f.svc.Confirm(ctx, c.ID)
	assert.NoError(t, err)
}

func TestSessionService_TerminalStatesAreFinal(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	s := f.timeSelected(t, "14:00")
	_, err := f.svc.Confirm(ctx, s.ID)
	require.NoError(t, err)
	_, err = f.svc.MarkCompleted(ctx, s.ID, "operator-1")
	require.NoError(t, err)

	_, err = f.svc.Cancel(ctx, s.ID, "", "buyer")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	_, err = f.svc.MarkCompleted(ctx, s.ID, "operator-1")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	f.clock.Set(s.ExpiresAt.Add(time.Hour))
	got, err := f.svc.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, got.Status)
}

func TestSessionService_MarkCompletedRequiresConfirmed(t *testing.T) {
	f := newFixture(t, nil)
	s := f.timeSelected(t, "14:00")

	_, err := f.svc.MarkCompleted(context.Background(), s.ID, "operator-1")

	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestSessionService_UploadArtifact(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	store := mocks.NewMockArtifactStore(t)
	f.svc.artifacts = store
	s := f.create(t)

	store.EXPECT().
		Upload(mock.Anything, s.ID, mock.Anything, "selfie.jpg").
		Return("safemeet/verifications/"+s.ID+"_selfie", nil)

	got, err := f.svc.UploadArtifact(ctx, s.ID, strings.NewReader("jpeg bytes"), "selfie.jpg")

	require.NoError(t, err)
	assert.Equal(t, domain.StatusVerificationSubmitted, got.Status)
	assert.Equal(t, "safemeet/verifications/"+s.ID+"_selfie", got.Verification.ArtifactRef)
}

func TestSessionService_UploadArtifact_WrongStatusSkipsUpload(t *testing.T) {
	f := newFixture(t, nil)
	store := mocks.NewMockArtifactStore(t)
	f.svc.artifacts = store
	s := f.approved(t)

	_, err := f.svc.UploadArtifact(context.Background(), s.ID, strings.NewReader("jpeg"), "selfie.jpg")

	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestSessionService_UploadArtifact_Disabled(t *testing.T) {
	f := newFixture(t, nil)
	s := f.create(t)

	_, err := f.svc.UploadArtifact(context.Background(), s.ID, strings.NewReader("jpeg"), "selfie.jpg")

	assert.ErrorIs(t, err, domain.ErrArtifactStoreDisabled)
}

func TestSessionService_Create_RepoError(t *testing.T) {
	sessionRepo := mocks.NewMockSessionRepo(t)
	challenges := mocks.NewMockChallengeGenerator(t)

	svc := NewSessionService(
		sessionRepo, mocks.NewMockLocationRepo(t), mocks.NewMockSlotRepo(t),
		mocks.NewMockLocker(t), events.Noop{}, nopNotifier{},
		challenges, mocks.NewMockCodeGenerator(t), nil,
		DefaultRules(), newTestLogger(t),
	)

	challenges.EXPECT().Generate().Return(challenge.Challenge{Gesture: "fist"})
	sessionRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(errors.New("db down"))

	_, err := svc.Create(context.Background(), domain.CreateSessionInput{Amount: 100, Currency: "EUR"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "create session")
}

func TestSessionService_LockFailure(t *testing.T) {
	locker := mocks.NewMockLocker(t)

	svc := NewSessionService(
		mocks.NewMockSessionRepo(t), mocks.NewMockLocationRepo(t), mocks.NewMockSlotRepo(t),
		locker, events.Noop{}, nopNotifier{},
		mocks.NewMockChallengeGenerator(t), mocks.NewMockCodeGenerator(t), nil,
		DefaultRules(), newTestLogger(t),
	)

	locker.EXPECT().Lock(mock.Anything, "session:s1").Return(nil, context.DeadlineExceeded)

	_, err := svc.Cancel(context.Background(), "s1", "", "buyer")

	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestSessionService_ConcurrentUpdateSurfaces(t *testing.T) {
	sessionRepo := mocks.NewMockSessionRepo(t)
	locker := mocks.NewMockLocker(t)

	svc := NewSessionService(
		sessionRepo, mocks.NewMockLocationRepo(t), mocks.NewMockSlotRepo(t),
		locker, events.Noop{}, nopNotifier{},
		mocks.NewMockChallengeGenerator(t), mocks.NewMockCodeGenerator(t), nil,
		DefaultRules(), newTestLogger(t),
	)
	svc.now = func() time.Time { return testNow }

	sess := &domain.BookingSession{
		ID:           "s1",
		Status:       domain.StatusPendingVerification,
		Verification: &domain.Verification{ChallengeGesture: "fist", ReviewState: domain.ReviewPending},
		Version:      3,
		ExpiresAt:    testNow.Add(time.Hour),
	}
	locker.EXPECT().Lock(mock.Anything, "session:s1").Return(func() {}, nil)
	sessionRepo.EXPECT().GetByID(mock.Anything, "s1").Return(sess, nil)
	sessionRepo.EXPECT().Update(mock.Anything, mock.Anything, 3).Return(domain.ErrConcurrentUpdate)

	_, err := svc.SubmitArtifact(context.Background(), "s1", "ref")

	assert.ErrorIs(t, err, domain.ErrConcurrentUpdate)
}
