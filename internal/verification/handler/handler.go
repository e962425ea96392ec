package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"echoaid-server/internal/observability"
	"echoaid-server/internal/store"
	"echoaid-server/internal/verification/processor"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	processor processor.VerificationProcessor
	logger    *observability.Logger
}

func New(processor processor.VerificationProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// VerifyRequest represents the HTTP request for initiating a verification
type VerifyRequest struct {
	SessionID string          `json:"session_id" binding:"required"`
	Type      string          `json:"type" binding:"required"`
	Data      json.RawMessage `json:"data" binding:"required"`
}

// HandleVerify handles POST /api/verification/verify
func (h *Handler) HandleVerify(c *gin.Context) {
	ctx := c.Request.Context()

	var req VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error(ctx, "failed to bind verification request", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	result := h.processor.Verify(ctx, req.SessionID, req.Type, req.Data)
	c.JSON(http.StatusOK, result)
}

// HandleStatus handles GET /api/verification/status/:session_id
func (h *Handler) HandleStatus(c *gin.Context) {
	ctx := c.Request.Context()

	sessionID := c.Param("session_id")
	status, err := h.processor.GetStatus(ctx, sessionID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
			return
		}
		h.logger.Error(ctx, "failed to get verification status", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, status)
}
