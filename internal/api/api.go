package api

import (
	"net/http"

	analyticsHandler "echoaid-server/internal/analytics/handler"
	callsHandler "echoaid-server/internal/calls/handler"
	routingHandler "echoaid-server/internal/routing/handler"
	verificationHandler "echoaid-server/internal/verification/handler"
	voiceHandler "echoaid-server/internal/voice/handler"

	"github.com/gin-gonic/gin"
)

type API struct {
	router              *gin.RouterGroup
	routingHandler      routingHandler.Handler
	callsHandler        callsHandler.Handler
	verificationHandler verificationHandler.Handler
	voiceHandler        voiceHandler.Handler
	analyticsHandler    analyticsHandler.Handler
}

func New(
	router *gin.RouterGroup,
	routingHandler routingHandler.Handler,
	callsHandler callsHandler.Handler,
	verificationHandler verificationHandler.Handler,
	voiceHandler voiceHandler.Handler,
	analyticsHandler analyticsHandler.Handler,
) API {
	return API{
		router:              router,
		routingHandler:      routingHandler,
		callsHandler:        callsHandler,
		verificationHandler: verificationHandler,
		voiceHandler:        voiceHandler,
		analyticsHandler:    analyticsHandler,
	}
}

func (a *API) RegisterRoutes() {
	a.Health()

	apiGroup := a.router.Group("/api")
	{
		apiGroup.POST("/routing/route", a.routingHandler.HandleRoute)

		callsGroup := apiGroup.Group("/calls")
		callsGroup.POST("/transfer", a.callsHandler.HandleTransfer)
		callsGroup.POST("/callback", a.callsHandler.HandleScheduleCallback)
		callsGroup.POST("/missed", a.callsHandler.HandleMissedCall)

		verificationGroup := apiGroup.Group("/verification")
		verificationGroup.POST("/verify", a.verificationHandler.HandleVerify)
		verificationGroup.GET("/status/:session_id", a.verificationHandler.HandleStatus)

		voiceGroup := apiGroup.Group("/voice")
		voiceGroup.POST("/process", a.voiceHandler.HandleProcess)
		voiceGroup.POST("/intent", a.voiceHandler.HandleIntent)
		voiceGroup.POST("/synthesize", a.voiceHandler.HandleSynthesize)

		apiGroup.GET("/analytics/daily", a.analyticsHandler.HandleDaily)
	}

	// Twilio posts call events here; responses are TwiML.
	webhookGroup := a.router.Group("/webhooks/voice")
	webhookGroup.POST("/incoming", a.callsHandler.HandleIncomingWebhook)
	webhookGroup.POST("/collect", a.voiceHandler.HandleCollectWebhook)
	webhookGroup.POST("/status", a.callsHandler.HandleStatusWebhook)
}

func (a *API) Health() {
	a.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
}
