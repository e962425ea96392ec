package handler

import (
	"fmt"
	"net/http"
	"time"

	"echoaid-server/internal/calls/processor"
	"echoaid-server/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/twilio/twilio-go/twiml"
)

// twimlLanguages maps our language codes onto Twilio Say/Gather codes.
var twimlLanguages = map[string]string{
	"hi": "hi-IN",
	"en": "en-IN",
	"ta": "ta-IN",
	"bn": "bn-IN",
	"te": "te-IN",
	"mr": "mr-IN",
	"kn": "kn-IN",
}

type Handler struct {
	processor processor.CallProcessor
	logger    *observability.Logger
}

func New(processor processor.CallProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// HandleIncomingWebhook handles POST /webhooks/voice/incoming. Twilio
// posts form-encoded call details and expects TwiML back.
func (h *Handler) HandleIncomingWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	fromNumber := c.PostForm("From")
	callSid := c.PostForm("CallSid")
	language := c.Query("language")

	result := h.processor.HandleIncomingCall(ctx, fromNumber, callSid, language)

	say := &twiml.VoiceSay{
		Message:  result.Message,
		Language: twimlLanguage(result.Language),
	}
	gather := &twiml.VoiceGather{
		Input:         "speech",
		Action:        fmt.Sprintf("/webhooks/voice/collect?session_id=%s", result.SessionID),
		Method:        "POST",
		Language:      twimlLanguage(result.Language),
		SpeechTimeout: "auto",
		InnerElements: []twiml.Element{say},
	}

	doc, err := twiml.Voice([]twiml.Element{gather})
	if err != nil {
		h.logger.Error(ctx, "failed to render voice response", err)
		c.String(http.StatusInternalServerError, "")
		return
	}
	c.Header("Content-Type", "text/xml")
	c.String(http.StatusOK, doc)
}

// HandleStatusWebhook handles POST /webhooks/voice/status. A terminal
// status without an answer counts as a missed call and books a return
// call.
func (h *Handler) HandleStatusWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	fromNumber := c.PostForm("From")
	callStatus := c.PostForm("CallStatus")

	switch callStatus {
	case "no-answer", "busy", "failed":
		if _, err := h.processor.HandleMissedCall(ctx, fromNumber, time.Now()); err != nil {
			h.logger.Error(ctx, "failed to handle missed call", err)
		}
	}
	c.Status(http.StatusOK)
}

// TransferRequest represents the HTTP request for transferring a call
type TransferRequest struct {
	SessionID  string `json:"session_id" binding:"required"`
	ProviderID string `json:"provider_id" binding:"required"`
	Reason     string `json:"reason"`
	Urgency    string `json:"urgency"`
}

// HandleTransfer handles POST /api/calls/transfer
func (h *Handler) HandleTransfer(c *gin.Context) {
	ctx := c.Request.Context()

	var req TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error(ctx, "failed to bind transfer request", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	result := h.processor.TransferCall(ctx, req.SessionID, req.ProviderID, req.Reason, req.Urgency)
	c.JSON(http.StatusOK, result)
}

// CallbackRequest represents the HTTP request for scheduling a callback
type CallbackRequest struct {
	SessionID     string     `json:"session_id" binding:"required"`
	ProviderID    string     `json:"provider_id"`
	PreferredTime *time.Time `json:"preferred_time,omitempty"`
	Urgency       string     `json:"urgency"`
}

// HandleScheduleCallback handles POST /api/calls/callback
func (h *Handler) HandleScheduleCallback(c *gin.Context) {
	ctx := c.Request.Context()

	var req CallbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error(ctx, "failed to bind callback request", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	result := h.processor.ScheduleCallback(ctx, req.SessionID, req.ProviderID, req.PreferredTime, req.Urgency)
	c.JSON(http.StatusOK, result)
}

// MissedCallRequest represents the HTTP request for reporting a missed call
type MissedCallRequest struct {
	PhoneNumber string     `json:"phone_number" binding:"required"`
	Timestamp   *time.Time `json:"timestamp,omitempty"`
}

// HandleMissedCall handles POST /api/calls/missed
func (h *Handler) HandleMissedCall(c *gin.Context) {
	ctx := c.Request.Context()

	var req MissedCallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error(ctx, "failed to bind missed call request", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	timestamp := time.Now()
	if req.Timestamp != nil {
		timestamp = *req.Timestamp
	}

	result, err := h.processor.HandleMissedCall(ctx, req.PhoneNumber, timestamp)
	if err != nil {
		h.logger.Error(ctx, "failed to handle missed call", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, result)
}

func twimlLanguage(language string) string {
	if code, ok := twimlLanguages[language]; ok {
		return code
	}
	return twimlLanguages["hi"]
}
