package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stpnv0/SafeMeet/internal/domain"
	"github.com/stpnv0/SafeMeet/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReviewService_Pending(t *testing.T) {
	sessionRepo := mocks.NewMockSessionRepo(t)
	decider := mocks.NewMockReviewDecider(t)
	artifacts := mocks.NewMockArtifactStore(t)
	log := newTestLogger(t)

	svc := NewReviewService(sessionRepo, decider, artifacts, log)

	submitted := testNow.Add(-time.Hour)
	sessions := []*domain.BookingSession{
		{
			ID:            "s1",
			Status:        domain.StatusVerificationSubmitted,
			SecurityLevel: domain.SecurityEnhanced,
			ExpiresAt:     testNow.Add(23 * time.Hour),
			Verification: &domain.Verification{
				ChallengeGesture: "peace_sign",
				ArtifactRef:      "safemeet/verifications/s1_selfie",
				ReviewState:      domain.ReviewUploaded,
				SubmittedAt:      &submitted,
			},
		},
	}

	sessionRepo.EXPECT().ListAwaitingReview(mock.Anything, mock.Anything, defaultPageSize, 0).Return(sessions, nil)
	artifacts.EXPECT().URL("safemeet/verifications/s1_selfie").Return("https://res.cloudinary.com/demo/image/upload/s1_selfie")

	items, err := svc.Pending(context.Background(), 0, -5)

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "s1", items[0].SessionID)
	assert.Equal(t, "peace_sign", items[0].ChallengeGesture)
	assert.Equal(t, "enhanced", items[0].SecurityLevel)
	assert.Equal(t, submitted.Format(time.RFC3339), items[0].SubmittedAt)
	assert.Equal(t, "https://res.cloudinary.com/demo/image/upload/s1_selfie", items[0].ArtifactURL)
}

func TestReviewService_Pending_WithoutArtifactStore(t *testing.T) {
	sessionRepo := mocks.NewMockSessionRepo(t)
	svc := NewReviewService(sessionRepo, mocks.NewMockReviewDecider(t), nil, newTestLogger(t))

	sessionRepo.EXPECT().ListAwaitingReview(mock.Anything, mock.Anything, 10, 20).Return([]*domain.BookingSession{
		{ID: "s1", Verification: &domain.Verification{ArtifactRef: "external/ref-1"}},
	}, nil)

	items, err := svc.Pending(context.Background(), 10, 20)

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "external/ref-1", items[0].ArtifactRef)
	assert.Empty(t, items[0].ArtifactURL)
}

func TestReviewService_Pending_RepoError(t *testing.T) {
	sessionRepo := mocks.NewMockSessionRepo(t)
	svc := NewReviewService(sessionRepo, mocks.NewMockReviewDecider(t), nil, newTestLogger(t))

	sessionRepo.EXPECT().ListAwaitingReview(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("db error"))

	_, err := svc.Pending(context.Background(), 10, 0)

	assert.Error(t, err)
}

func TestReviewService_Approve(t *testing.T) {
	decider := mocks.NewMockReviewDecider(t)
	svc := NewReviewService(mocks.NewMockSessionRepo(t), decider, nil, newTestLogger(t))

	approved := &domain.BookingSession{ID: "s1", Status: domain.StatusVerificationApproved}
	decider.EXPECT().Approve(mock.Anything, "s1", "reviewer-1").Return(approved, nil)

	got, err := svc.Approve(context.Background(), "s1", "reviewer-1")

	require.NoError(t, err)
	assert.Equal(t, domain.StatusVerificationApproved, got.Status)
}

func TestReviewService_Reject_AlreadyDecided(t *testing.T) {
	decider := mocks.NewMockReviewDecider(t)
	svc := NewReviewService(mocks.NewMockSessionRepo(t), decider, nil, newTestLogger(t))

	decider.EXPECT().Reject(mock.Anything, "s1", "reviewer-1", "blurry").Return(nil, domain.ErrReviewAlreadyDecided)

	_, err := svc.Reject(context.Background(), "s1", "reviewer-1", "blurry")

	assert.ErrorIs(t, err, domain.ErrReviewAlreadyDecided)
}

func TestReviewService_QueueWithSessionService(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	svc := NewReviewService(f.store.Sessions(), f.svc, nil, newTestLogger(t))
	svc.now = f.clock.Now

	first := f.create(t)
	second := f.create(t)
	f.create(t)

	_, err := f.svc.SubmitArtifact(ctx, second.ID, "ref-2")
	require.NoError(t, err)
	f.clock.Set(testNow.Add(time.Minute))
	_, err = f.svc.SubmitArtifact(ctx, first.ID, "ref-1")
	require.NoError(t, err)

	items, err := svc.Pending(ctx, 10, 0)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, second.ID, items[0].SessionID)
	assert.Equal(t, first.ID, items[1].SessionID)

	_, err = svc.Approve(ctx, second.ID, "reviewer-1")
	require.NoError(t, err)
	_, err = svc.Reject(ctx, first.ID, "reviewer-1", "face covered")
	require.NoError(t, err)

	items, err = svc.Pending(ctx, 10, 0)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestReviewService_PendingSkipsExpiredSessions(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	svc := NewReviewService(f.store.Sessions(), f.svc, nil, newTestLogger(t))
	svc.now = f.clock.Now

	stale := f.create(t)
	_, err := f.svc.SubmitArtifact(ctx, stale.ID, "ref-stale")
	require.NoError(t, err)

	f.clock.Set(testNow.Add(2 * time.Hour))
	fresh := f.create(t)
	_, err = f.svc.SubmitArtifact(ctx, fresh.ID, "ref-fresh")
	require.NoError(t, err)

	f.clock.Set(stale.ExpiresAt.Add(time.Minute))

	items, err := svc.Pending(ctx, 10, 0)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, fresh.ID, items[0].SessionID)
}
