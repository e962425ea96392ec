package handler

import (
	"net/http"
	"time"

	"echoaid-server/internal/analytics/processor"
	"echoaid-server/internal/observability"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	processor processor.AnalyticsProcessor
	logger    *observability.Logger
}

func New(processor processor.AnalyticsProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// HandleDaily handles GET /api/analytics/daily. An optional date query
// parameter (2006-01-02) selects the day; default is today.
func (h *Handler) HandleDaily(c *gin.Context) {
	ctx := c.Request.Context()

	var date time.Time
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
			return
		}
		date = parsed
	}

	metrics, err := h.processor.GetDailySnapshot(ctx, date)
	if err != nil {
		h.logger.Error(ctx, "failed to get daily analytics", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, metrics)
}
