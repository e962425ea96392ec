package handler

import (
	"net/http"

	"echoaid-server/internal/observability"
	"echoaid-server/internal/routing/processor"
	"echoaid-server/internal/store"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	processor processor.RoutingProcessor
	logger    *observability.Logger
}

func New(processor processor.RoutingProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// RouteRequest represents the HTTP request for routing a caller's need
type RouteRequest struct {
	SessionID string            `json:"session_id" binding:"required"`
	Intent    string            `json:"intent"`
	Entities  []processor.Entity `json:"entities"`
	Location  *store.Location   `json:"location,omitempty"`
}

// HandleRoute handles POST /api/routing/route
func (h *Handler) HandleRoute(c *gin.Context) {
	ctx := c.Request.Context()

	var req RouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error(ctx, "failed to bind routing request", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	result := h.processor.Route(ctx, req.SessionID, req.Intent, req.Entities, req.Location)
	c.JSON(http.StatusOK, result)
}
