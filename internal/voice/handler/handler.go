package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"echoaid-server/internal/observability"
	routingprocessor "echoaid-server/internal/routing/processor"
	"echoaid-server/internal/voice/processor"

	"github.com/gin-gonic/gin"
	"github.com/twilio/twilio-go/twiml"
)

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
	processor processor.VoiceProcessor
	routing   routingprocessor.RoutingProcessor
	logger    *observability.Logger
}

func New(processor processor.VoiceProcessor, routing routingprocessor.RoutingProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		routing:   routing,
		logger:    logger,
	}
}

// HandleCollectWebhook handles POST /webhooks/voice/collect. Twilio
// posts the speech recognition result of the last gather; the utterance
// is classified, routed, and the routing response spoken back inside a
// new gather.
func (h *Handler) HandleCollectWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	sessionID := c.Query("session_id")
	speech := c.PostForm("SpeechResult")
	language := c.DefaultQuery("language", "hi")
	confidence, err := strconv.ParseFloat(c.PostForm("Confidence"), 64)
	if err != nil {
		confidence = 0
	}

	intent := h.processor.RecognizeIntent(ctx, speech, sessionID, language, confidence)

	entities := make([]routingprocessor.Entity, 0, len(intent.Entities))
	for _, e := range intent.Entities {
		entities = append(entities, routingprocessor.Entity{
			Type:       e.Type,
			Value:      e.Value,
			Confidence: e.Confidence,
		})
	}
	result := h.routing.Route(ctx, sessionID, intent.Intent, entities, nil)

	say := &twiml.VoiceSay{
		Message:  result.Response,
		Language: twimlLanguage(language),
	}
	gather := &twiml.VoiceGather{
		Input:         "speech",
		Action:        fmt.Sprintf("/webhooks/voice/collect?session_id=%s&language=%s", sessionID, language),
		Method:        "POST",
		Language:      twimlLanguage(language),
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

// ProcessRequest represents the HTTP request for processing recorded audio
type ProcessRequest struct {
	AudioURL  string `json:"audio_url" binding:"required"`
	SessionID string `json:"session_id" binding:"required"`
	Language  string `json:"language"`
}

// HandleProcess handles POST /api/voice/process
func (h *Handler) HandleProcess(c *gin.Context) {
	ctx := c.Request.Context()

	var req ProcessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error(ctx, "failed to bind voice process request", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	result, err := h.processor.ProcessVoiceInput(ctx, req.AudioURL, req.SessionID, req.Language)
	if err != nil {
		h.logger.Error(ctx, "failed to process voice input", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// IntentRequest represents the HTTP request for classifying a transcript
type IntentRequest struct {
	Text       string  `json:"text" binding:"required"`
	SessionID  string  `json:"session_id" binding:"required"`
	Language   string  `json:"language"`
	Confidence float64 `json:"confidence"`
}

// HandleIntent handles POST /api/voice/intent
func (h *Handler) HandleIntent(c *gin.Context) {
	ctx := c.Request.Context()

	var req IntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error(ctx, "failed to bind intent request", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	result := h.processor.RecognizeIntent(ctx, req.Text, req.SessionID, req.Language, req.Confidence)
	c.JSON(http.StatusOK, result)
}

// SynthesizeRequest represents the HTTP request for speech synthesis
type SynthesizeRequest struct {
	Text     string `json:"text" binding:"required"`
	Language string `json:"language"`
	Voice    string `json:"voice"`
}

// HandleSynthesize handles POST /api/voice/synthesize
func (h *Handler) HandleSynthesize(c *gin.Context) {
	ctx := c.Request.Context()

	var req SynthesizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error(ctx, "failed to bind synthesize request", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	audio, err := h.processor.GenerateVoiceResponse(ctx, req.Text, req.Language, req.Voice)
	if err != nil {
		h.logger.Error(ctx, "failed to synthesize speech", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.Data(http.StatusOK, "audio/mpeg", audio)
}

func twimlLanguage(language string) string {
	if code, ok := twimlLanguages[language]; ok {
		return code
	}
	return twimlLanguages["hi"]
}
