package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/traittune/sharing/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	v1 := router.Group("/api/v1")
	{
		// Link issuing (JWT subject or API key with sharer_user_id)
		v1.POST("/links/email", middleware.Auth(authCfg), handler.CreateEmailLink)
		v1.POST("/links/onetime", middleware.Auth(authCfg), handler.CreateOnetimeLink)
		v1.POST("/links/public", middleware.Auth(authCfg), handler.CreatePublicLink)
		v1.POST("/links/qr", middleware.Auth(authCfg), handler.CreateQRLink)

		// Link lookup (public read access)
		v1.GET("/links/:id", handler.GetLink)
		v1.GET("/links/token/:token", handler.GetLinkByToken)
		v1.GET("/links/:id/qr", handler.RenderLinkQR)

		// Link lifecycle (JWT callers must own the link)
		v1.PATCH("/links/:id/status", middleware.Auth(authCfg), handler.UpdateLinkStatus)
		v1.POST("/links/:id/dispatch-confirmation", middleware.APIKeyAuth(authCfg), handler.ConfirmDispatch)

		// Event log
		v1.POST("/links/:id/events", middleware.Auth(authCfg), handler.LogEvent)
		v1.GET("/links/:id/events", handler.GetEvents)

		// QR scans
		v1.POST("/qr/scan", handler.ResolveScan)

		// Bonus ledger
		v1.GET("/users/:user_id/bonus", handler.GetBalance)
		v1.GET("/users/:user_id/bonus/transactions", handler.GetTransactions)
		v1.POST("/users/:user_id/bonus/awards", middleware.APIKeyAuth(authCfg), handler.AwardTokens)

		// Share summary
		v1.GET("/users/:user_id/share-summary", handler.GetShareSummary)
	}
}
