package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateSession(c *ginext.Context)
	GetSession(c *ginext.Context)
	SubmitArtifact(c *ginext.Context)
	UploadArtifact(c *ginext.Context)
	SelectLocation(c *ginext.Context)
	SelectSlot(c *ginext.Context)
	ConfirmSession(c *ginext.Context)
	CancelSession(c *ginext.Context)
	ListLocations(c *ginext.Context)
	LocationSlots(c *ginext.Context)

	PendingReviews(c *ginext.Context)
	ApproveReview(c *ginext.Context)
	RejectReview(c *ginext.Context)
	CompleteSession(c *ginext.Context)
	AdminCancelSession(c *ginext.Context)
	ListSessions(c *ginext.Context)
	Stats(c *ginext.Context)
	CreateLocation(c *ginext.Context)
	AllLocations(c *ginext.Context)
	SetLocationEnabled(c *ginext.Context)
}

// Middlewares groups the chains applied to every route, buyer routes and
// operator routes.
type Middlewares struct {
	Global []ginext.HandlerFunc
	Buyer  []ginext.HandlerFunc
	Admin  []ginext.HandlerFunc
}

func InitRouter(mode string, h Handler, mw Middlewares) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw.Global...)

	api := router.Group("/api", mw.Buyer...)
	{
		// Sessions
		api.POST("/sessions", h.CreateSession)
		api.GET("/sessions/:id", h.GetSession)
		api.POST("/sessions/:id/verification", h.SubmitArtifact)
		api.POST("/sessions/:id/verification/upload", h.UploadArtifact)
		api.POST("/sessions/:id/location", h.SelectLocation)
		api.POST("/sessions/:id/slot", h.SelectSlot)
		api.POST("/sessions/:id/confirm", h.ConfirmSession)
		api.POST("/sessions/:id/cancel", h.CancelSession)

		// Locations
		api.GET("/locations", h.ListLocations)
		api.GET("/locations/:id/slots", h.LocationSlots)
	}

	admin := router.Group("/api/admin", mw.Admin...)
	{
		admin.GET("/reviews", h.PendingReviews)
		admin.POST("/reviews/:id/approve", h.ApproveReview)
		admin.POST("/reviews/:id/reject", h.RejectReview)

		admin.GET("/sessions", h.ListSessions)
		admin.POST("/sessions/:id/complete", h.CompleteSession)
		admin.POST("/sessions/:id/cancel", h.AdminCancelSession)
		admin.GET("/stats", h.Stats)

		admin.GET("/locations", h.AllLocations)
		admin.POST("/locations", h.CreateLocation)
		admin.PATCH("/locations/:id", h.SetLocationEnabled)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
