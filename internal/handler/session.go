package handler

import (
	"net/http"

	"github.com/stpnv0/SafeMeet/internal/domain"
	"github.com/stpnv0/SafeMeet/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

const maxPhotoSize = 10 << 20

func (h *Handler) CreateSession(c *ginext.Context) {
	var req dto.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	input := domain.CreateSessionInput{
		Amount:        req.Amount,
		Currency:      req.Currency,
		SecurityLevel: domain.SecurityLevel(req.SecurityLevel),
		Buyer: domain.BuyerContext{
			BuyerID:        req.Buyer.BuyerID,
			Name:           req.Buyer.Name,
			Phone:          req.Buyer.Phone,
			TelegramChatID: req.Buyer.TelegramChatID,
		},
	}

	s, err := h.sessionService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToSessionResponse(s))
}

func (h *Handler) GetSession(c *ginext.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	s, err := h.sessionService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSessionResponse(s))
}

func (h *Handler) SubmitArtifact(c *ginext.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	var req dto.SubmitArtifactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	s, err := h.sessionService.SubmitArtifact(c.Request.Context(), id, req.ArtifactRef)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSessionResponse(s))
}

func (h *Handler) UploadArtifact(c *ginext.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	fh, err := c.FormFile("photo")
	if err != nil {
		badRequest(c, "multipart field \"photo\" is required")
		return
	}
	if fh.Size > maxPhotoSize {
		c.JSON(http.StatusRequestEntityTooLarge, dto.ErrorResponse{Error: "photo is too large", Code: "PHOTO_TOO_LARGE"})
		return
	}

	f, err := fh.Open()
	if err != nil {
		h.handleError(c, err)
		return
	}
	defer f.Close()

	s, err := h.sessionService.UploadArtifact(c.Request.Context(), id, f, fh.Filename)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSessionResponse(s))
}

func (h *Handler) SelectLocation(c *ginext.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	var req dto.SelectLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	s, err := h.sessionService.SelectLocation(c.Request.Context(), id, req.LocationID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSessionResponse(s))
}

func (h *Handler) SelectSlot(c *ginext.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	var req dto.SelectSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	s, err := h.sessionService.SelectSlot(c.Request.Context(), id, req.Date, req.Time)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSessionResponse(s))
}

func (h *Handler) ConfirmSession(c *ginext.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	s, err := h.sessionService.Confirm(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSessionResponse(s))
}

func (h *Handler) CancelSession(c *ginext.Context) {
	h.cancel(c, "buyer")
}

func (h *Handler) cancel(c *ginext.Context, by string) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	var req dto.CancelRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
	}

	s, err := h.sessionService.Cancel(c.Request.Context(), id, req.Reason, by)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSessionResponse(s))
}

// Locations

func (h *Handler) ListLocations(c *ginext.Context) {
	locations, err := h.locationService.List(c.Request.Context(), true)
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

func (h *Handler) LocationSlots(c *ginext.Context) {
	locationID := c.Param("id")
	date := c.Query("date")
	if date == "" {
		badRequest(c, "query parameter \"date\" is required")
		return
	}

	slots, err := h.availabilityService.DaySlots(c.Request.Context(), locationID, date)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := dto.DaySlotsResponse{
		LocationID: locationID,
		Date:       date,
		Slots:      make([]dto.SlotResponse, 0, len(slots)),
	}
	for _, s := range slots {
		resp.Slots = append(resp.Slots, dto.SlotResponse{
			Time:     s.Time,
			Status:   string(s.Status),
			Booked:   s.Booked,
			Capacity: s.Capacity,
		})
	}

	c.JSON(http.StatusOK, resp)
}
