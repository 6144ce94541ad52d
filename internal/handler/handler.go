package handler

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/stpnv0/SafeMeet/internal/domain"
	"github.com/stpnv0/SafeMeet/internal/handler/dto"
	"github.com/stpnv0/SafeMeet/internal/middleware"
	"github.com/stpnv0/SafeMeet/internal/service"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

type SessionSvc interface {
	Create(ctx context.Context, input domain.CreateSessionInput) (*domain.BookingSession, error)
	Get(ctx context.Context, id string) (*domain.BookingSession, error)
	SubmitArtifact(ctx context.Context, id string, artifactRef string) (*domain.BookingSession, error)
	UploadArtifact(ctx context.Context, id string, r io.Reader, filename string) (*domain.BookingSession, error)
	SelectLocation(ctx context.Context, id string, locationID string) (*domain.BookingSession, error)
	SelectSlot(ctx context.Context, id string, date string, clock string) (*domain.BookingSession, error)
	Confirm(ctx context.Context, id string) (*domain.BookingSession, error)
	Cancel(ctx context.Context, id string, reason string, actor string) (*domain.BookingSession, error)
	MarkCompleted(ctx context.Context, id string, operator string) (*domain.BookingSession, error)
}

type LocationSvc interface {
	Create(ctx context.Context, input domain.CreateLocationInput) (*domain.Location, error)
	List(ctx context.Context, onlyEnabled bool) ([]*domain.Location, error)
	SetEnabled(ctx context.Context, id string, enabled bool) (*domain.Location, error)
}

type AvailabilitySvc interface {
	DaySlots(ctx context.Context, locationID string, date string) ([]service.SlotAvailability, error)
}

type ReviewSvc interface {
	Pending(ctx context.Context, limit int, offset int) ([]domain.PendingReview, error)
	Approve(ctx context.Context, sessionID string, reviewer string) (*domain.BookingSession, error)
	Reject(ctx context.Context, sessionID string, reviewer string, reason string) (*domain.BookingSession, error)
}

type DirectorySvc interface {
	Sessions(ctx context.Context, filter domain.SessionFilter) ([]*domain.BookingSession, error)
	Stats(ctx context.Context) (*domain.DirectoryStats, error)
}

type Handler struct {
	sessionService      SessionSvc
	locationService     LocationSvc
	availabilityService AvailabilitySvc
	reviewService       ReviewSvc
	directoryService    DirectorySvc
	logger              logger.Logger
}

func NewHandler(
	sessionService SessionSvc,
	locationService LocationSvc,
	availabilityService AvailabilitySvc,
	reviewService ReviewSvc,
	directoryService DirectorySvc,
	logger logger.Logger,
) *Handler {
	return &Handler{
		sessionService:      sessionService,
		locationService:     locationService,
		availabilityService: availabilityService,
		reviewService:       reviewService,
		directoryService:    directoryService,
		logger:              logger,
	}
}

type errorMapping struct {
	err    error
	status int
	code   string
}

// Order matters: ErrSessionExpired is checked before the generic transition error.
var errorMappings = []errorMapping{
	{domain.ErrSessionNotFound, http.StatusNotFound, "SESSION_NOT_FOUND"},
	{domain.ErrLocationNotFound, http.StatusNotFound, "LOCATION_NOT_FOUND"},
	{domain.ErrSessionExpired, http.StatusConflict, "SESSION_EXPIRED"},
	{domain.ErrSlotNoLongerAvailable, http.StatusConflict, "SLOT_NO_LONGER_AVAILABLE"},
	{domain.ErrReviewAlreadyDecided, http.StatusConflict, "REVIEW_ALREADY_DECIDED"},
	{domain.ErrConcurrentUpdate, http.StatusConflict, "CONCURRENT_UPDATE"},
	{domain.ErrLocationDisabled, http.StatusConflict, "LOCATION_DISABLED"},
	{domain.ErrInvalidTransition, http.StatusConflict, "INVALID_TRANSITION"},
	{domain.ErrOutsideOperatingHours, http.StatusUnprocessableEntity, "OUTSIDE_OPERATING_HOURS"},
	{domain.ErrLeadTimeTooShort, http.StatusUnprocessableEntity, "LEAD_TIME_TOO_SHORT"},
	{domain.ErrSlotAfterSessionExpiry, http.StatusUnprocessableEntity, "SLOT_AFTER_SESSION_EXPIRY"},
	{domain.ErrArtifactRequired, http.StatusUnprocessableEntity, "ARTIFACT_REQUIRED"},
	{domain.ErrValidation, http.StatusBadRequest, "VALIDATION_FAILED"},
	{domain.ErrDuplicateConfirmationCode, http.StatusServiceUnavailable, "CODE_GENERATION_FAILED"},
	{domain.ErrArtifactStoreDisabled, http.StatusNotImplemented, "ARTIFACT_STORE_DISABLED"},
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set(middleware.ErrorKey, err.Error())

	for _, m := range errorMappings {
		if errors.Is(err, m.err) {
			c.JSON(m.status, dto.ErrorResponse{Error: err.Error(), Code: m.code})
			return
		}
	}

	h.logger.LogAttrs(c.Request.Context(), logger.ErrorLevel, "request failed",
		logger.String("request_id", c.GetString(middleware.RequestIDKey)),
		logger.String("path", c.Request.URL.Path),
		logger.String("error", err.Error()),
	)
	c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error", Code: "INTERNAL"})
}

func badRequest(c *ginext.Context, msg string) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: msg, Code: "VALIDATION_FAILED"})
}

// sessionID reads and validates the :id path parameter.
func sessionID(c *ginext.Context) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		badRequest(c, "invalid session id")
		return "", false
	}
	return id, true
}

func actor(c *ginext.Context) string {
	if a := c.GetString(middleware.ActorKey); a != "" {
		return a
	}
	return "operator"
}
