package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/stpnv0/SafeMeet/internal/domain"
	"github.com/stpnv0/SafeMeet/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

// Reviews

func (h *Handler) PendingReviews(c *ginext.Context) {
	limit, offset, ok := pagination(c)
	if !ok {
		return
	}

	items, err := h.reviewService.Pending(c.Request.Context(), limit, offset)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

func (h *Handler) ApproveReview(c *ginext.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	s, err := h.reviewService.Approve(c.Request.Context(), id, actor(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSessionResponse(s))
}

func (h *Handler) RejectReview(c *ginext.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	var req dto.RejectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	s, err := h.reviewService.Reject(c.Request.Context(), id, actor(c), req.Reason)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSessionResponse(s))
}

// Sessions

func (h *Handler) CompleteSession(c *ginext.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	s, err := h.sessionService.MarkCompleted(c.Request.Context(), id, actor(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSessionResponse(s))
}

func (h *Handler) AdminCancelSession(c *ginext.Context) {
	h.cancel(c, actor(c))
}

func (h *Handler) ListSessions(c *ginext.Context) {
	limit, offset, ok := pagination(c)
	if !ok {
		return
	}

	filter := domain.SessionFilter{
		Status:     domain.SessionStatus(c.Query("status")),
		LocationID: c.Query("location_id"),
		Limit:      limit,
		Offset:     offset,
	}

	sessions, err := h.directoryService.Sessions(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSessionResponses(sessions))
}

func (h *Handler) Stats(c *ginext.Context) {
	stats, err := h.directoryService.Stats(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// Locations

func (h *Handler) CreateLocation(c *ginext.Context) {
	var req dto.CreateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	hours := make(map[time.Weekday][]domain.TimeWindow, len(req.OperatingHours))
	for day, windows := range req.OperatingHours {
		wd, ok := domain.ParseWeekday(day)
		if !ok {
			badRequest(c, "unknown weekday "+strconv.Quote(day))
			return
		}
		for _, w := range windows {
			hours[wd] = append(hours[wd], domain.TimeWindow{Start: w.Start, End: w.End})
		}
	}

	input := domain.CreateLocationInput{
		Name:            req.Name,
		Address:         req.Address,
		SafetyLevel:     domain.SafetyLevel(strings.ToLower(req.SafetyLevel)),
		StaffContact:    req.StaffContact,
		Timezone:        req.Timezone,
		OperatingHours:  hours,
		CapacityPerSlot: req.CapacityPerSlot,
	}

	loc, err := h.locationService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToLocationResponse(loc))
}

func (h *Handler) AllLocations(c *ginext.Context) {
	locations, err := h.locationService.List(c.Request.Context(), false)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.LocationResponse, 0, len(locations))
	for _, l := range locations {
		resp = append(resp, dto.ToLocationResponse(l))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) SetLocationEnabled(c *ginext.Context) {
	var req dto.SetLocationEnabledRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	loc, err := h.locationService.SetEnabled(c.Request.Context(), c.Param("id"), *req.Enabled)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToLocationResponse(loc))
}

func pagination(c *ginext.Context) (int, int, bool) {
	limit, err := queryInt(c, "limit")
	if err != nil {
		badRequest(c, "limit must be an integer")
		return 0, 0, false
	}
	offset, err := queryInt(c, "offset")
	if err != nil {
		badRequest(c, "offset must be an integer")
		return 0, 0, false
	}
	return limit, offset, true
}

func queryInt(c *ginext.Context, key string) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}
