package service

import (
	"context"
	"fmt"
	"time"

	"github.com/stpnv0/SafeMeet/internal/domain"
	"github.com/stpnv0/SafeMeet/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const defaultPageSize = 50

type ReviewService struct {
	sessionRepo ports.SessionRepo
	decider     ports.ReviewDecider
	artifacts   ports.ArtifactStore
	logger      logger.Logger
	now         func() time.Time
}

func NewReviewService(
	sessionRepo ports.SessionRepo,
	decider ports.ReviewDecider,
	artifacts ports.ArtifactStore,
	logger logger.Logger,
) *ReviewService {
	return &ReviewService{
		sessionRepo: sessionRepo,
		decider:     decider,
		artifacts:   artifacts,
		logger:      logger,
		now:         time.Now,
	}
}

// Pending lists submitted verifications, oldest submission first. Sessions
// past their deadline are left out since they can no longer be decided.
func (s *ReviewService) Pending(ctx context.Context, limit, offset int) ([]domain.PendingReview, error) {
	limit, offset = page(limit, offset)

	sessions, err := s.sessionRepo.ListAwaitingReview(ctx, s.now(), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list pending reviews: %w", err)
	}

	out := make([]domain.PendingReview, 0, len(sessions))
	for _, sess := range sessions {
		v := sess.Verification
		if v == nil {
			continue
		}
		item := domain.PendingReview{
			SessionID:        sess.ID,
			ChallengeGesture: v.ChallengeGesture,
			ArtifactRef:      v.ArtifactRef,
			SecurityLevel:    string(sess.SecurityLevel),
			ExpiresAt:        sess.ExpiresAt.Format(time.RFC3339),
		}
		if v.SubmittedAt != nil {
			item.SubmittedAt = v.SubmittedAt.Format(time.RFC3339)
		}
		if s.artifacts != nil && v.ArtifactRef != "" {
			item.ArtifactURL = s.artifacts.URL(v.ArtifactRef)
		}
		out = append(out, item)
	}

	return out, nil
}

func (s *ReviewService) Approve(ctx context.Context, sessionID, reviewer string) (*domain.BookingSession, error) {
	sess, err := s.decider.Approve(ctx, sessionID, reviewer)
	if err != nil {
		return nil, err
	}

	s.logger.Info("verification approved",
		logger.String("session_id", sessionID),
		logger.String("reviewer", reviewer),
	)
	return sess, nil
}

func (s *ReviewService) Reject(ctx context.Context, sessionID, reviewer, reason string) (*domain.BookingSession, error) {
	sess, err := s.decider.Reject(ctx, sessionID, reviewer, reason)
	if err != nil {
		return nil, err
	}

	s.logger.Info("verification rejected",
		logger.String("session_id", sessionID),
		logger.String("reviewer", reviewer),
		logger.String("reason", reason),
	)
	return sess, nil
}

func page(limit, offset int) (int, int) {
	if limit <= 0 || limit > 500 {
		limit = defaultPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
