package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateEvent(c *ginext.Context)
	GetEvent(c *ginext.Context)
	ListEvents(c *ginext.Context)
	Mint(c *ginext.Context)
	GetToken(c *ginext.Context)
	ListTokens(c *ginext.Context)
	Transfer(c *ginext.Context)
	TokensOf(c *ginext.Context)
	GetMinter(c *ginext.Context)
	GrantMinter(c *ginext.Context)
	RevokeMinter(c *ginext.Context)
	Stats(c *ginext.Context)
	CheckIn(c *ginext.Context)
}

type AuthHandler interface {
	Login(c *ginext.Context)
}

// Guards holds the per-group middleware. A nil Webhook leaves the check-in
// route unregistered.
type Guards struct {
	Auth    ginext.HandlerFunc
	Webhook ginext.HandlerFunc
}

func InitRouter(mode string, h Handler, auth AuthHandler, guards Guards, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		api.POST("/auth", auth.Login)

		// Reads
		api.GET("/events", h.ListEvents)
		api.GET("/events/:id", h.GetEvent)
		api.GET("/tokens", h.ListTokens)
		api.GET("/tokens/:id", h.GetToken)
		api.GET("/accounts/:account/tokens", h.TokensOf)
		api.GET("/minters/:account", h.GetMinter)
		api.GET("/stats", h.Stats)
	}

	authed := router.Group("/api", guards.Auth)
	{
		authed.POST("/events", h.CreateEvent)
		authed.POST("/events/:id/mint", h.Mint)
		authed.POST("/tokens/:id/transfer", h.Transfer)
		authed.PUT("/minters/:account", h.GrantMinter)
		authed.DELETE("/minters/:account", h.RevokeMinter)
	}

	if guards.Webhook != nil {
		router.POST("/api/webhooks/check-in", guards.Webhook, h.CheckIn)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
