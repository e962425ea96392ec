package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"echoaid-server/internal/observability"
	"echoaid-server/internal/store"

	"github.com/google/uuid"
)

const (
	speakingRate = 0.9

	// Whisper reports no per-utterance confidence; transcripts carry a
	// fixed one.
	transcriptConfidence = 0.9
)

// fallbackIntent is returned whenever classification fails or the model
// output cannot be parsed. The caller always gets a usable directive.
var fallbackIntent = IntentResult{
	Intent:  "help_general",
	Actions: []string{"provide_general_help"},
}

// voiceSpec picks the synthesis voice for a language.
type voiceSpec struct {
	languageCode string
	name         string
}

var voices = map[string]voiceSpec{
	"hi": {"hi-IN", "hi-IN-Wavenet-A"},
	"en": {"en-IN", "en-IN-Wavenet-A"},
	"ta": {"ta-IN", "ta-IN-Wavenet-A"},
	"bn": {"bn-IN", "bn-IN-Wavenet-A"},
	"te": {"te-IN", "te-IN-Standard-A"},
	"mr": {"mr-IN", "mr-IN-Wavenet-A"},
	"kn": {"kn-IN", "kn-IN-Wavenet-A"},
}

var fallbackVoice = voices["en"]

// Transcriber turns recorded audio into text.
type Transcriber interface {
	Transcribe(ctx context.Context, audio io.Reader, language string) (string, error)
}

// IntentClassifier returns the raw model output for an utterance. The
// system prompt pins the output to a single JSON object.
type IntentClassifier interface {
	Classify(ctx context.Context, systemPrompt string, userText string) (string, error)
}

// SpeechSynthesizer renders text to MP3 audio.
type SpeechSynthesizer interface {
	Synthesize(ctx context.Context, text string, languageCode string, voiceName string, speakingRate float64) ([]byte, error)
}

// VoiceStore defines the database operations required by VoiceProcessor
type VoiceStore interface {
	GetSessionByID(ctx context.Context, sessionID string) (store.VoiceSession, error)
	CreateInteraction(ctx context.Context, params store.CreateInteractionParams) (store.VoiceInteraction, error)
}

// IntentResult is the classifier's JSON contract.
type IntentResult struct {
	Intent         string                    `json:"intent"`
	Entities       []store.InteractionEntity `json:"entities"`
	EmotionalState string                    `json:"emotionalState,omitempty"`
	Actions        []string                  `json:"actions"`
}

// VoiceInputResult is the outcome of one processed utterance.
type VoiceInputResult struct {
	Success    bool         `json:"success"`
	Transcript string       `json:"transcript"`
	Language   string       `json:"language"`
	Intent     IntentResult `json:"intent"`
}

type VoiceProcessor struct {
	store           VoiceStore
	transcriber     Transcriber
	classifier      IntentClassifier
	synthesizer     SpeechSynthesizer
	httpClient      *http.Client
	defaultLanguage string
	logger          *observability.Logger
}

func New(store VoiceStore, transcriber Transcriber, classifier IntentClassifier, synthesizer SpeechSynthesizer, defaultLanguage string, logger *observability.Logger) VoiceProcessor {
	return VoiceProcessor{
		store:           store,
		transcriber:     transcriber,
		classifier:      classifier,
		synthesizer:     synthesizer,
		httpClient:      &http.Client{Timeout: 30 * time.Second},
		defaultLanguage: defaultLanguage,
		logger:          logger,
	}
}

// ProcessVoiceInput fetches the recorded utterance, transcribes it, and
// classifies the intent. One interaction row is written per utterance.
func (p *VoiceProcessor) ProcessVoiceInput(ctx context.Context, audioURL string, sessionID string, language string) (VoiceInputResult, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "session_id", Value: sessionID},
	)
	if language == "" {
		language = p.defaultLanguage
	}

	audio, err := p.fetchAudio(ctx, audioURL)
	if err != nil {
		return VoiceInputResult{}, err
	}
	defer audio.Close()

	transcript, err := p.transcriber.Transcribe(ctx, audio, language)
	if err != nil {
		return VoiceInputResult{}, fmt.Errorf("failed to transcribe voice input: %w", err)
	}

	intent := p.RecognizeIntent(ctx, transcript, sessionID, language, transcriptConfidence)

	return VoiceInputResult{
		Success:    true,
		Transcript: transcript,
		Language:   language,
		Intent:     intent,
	}, nil
}

// RecognizeIntent classifies an utterance against the session context.
// Classification never fails outward: a model error or malformed output
// yields the general-help fallback.
func (p *VoiceProcessor) RecognizeIntent(ctx context.Context, text string, sessionID string, language string, confidence float64) IntentResult {
	session, err := p.store.GetSessionByID(ctx, sessionID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		p.logger.Error(ctx, "failed to load session context for intent recognition", err)
	}

	result := fallbackIntent
	raw, err := p.classifier.Classify(ctx, buildSystemPrompt(session, language), text)
	if err != nil {
		p.logger.Error(ctx, "intent classification failed", err)
	} else if parsed, parseErr := parseIntentResult(raw); parseErr != nil {
		p.logger.Error(ctx, "failed to parse intent classification", parseErr)
	} else {
		result = parsed
	}

	_, err = p.store.CreateInteraction(ctx, store.CreateInteractionParams{
		InteractionID: fmt.Sprintf("int_%d_%s", time.Now().UnixMilli(), uuid.NewString()[:8]),
		SessionID:     sessionID,
		UserInput: store.InteractionInput{
			Transcript: text,
			Language:   language,
			Confidence: confidence,
		},
		AIResponse: store.InteractionResponse{
			Intent:   result.Intent,
			Entities: result.Entities,
			Actions:  result.Actions,
		},
	})
	if err != nil {
		p.logger.Error(ctx, "failed to persist interaction", err)
	}

	return result
}

// GenerateVoiceResponse renders the response text as MP3 audio using
// the per-language default voice, or the explicit voice when given.
func (p *VoiceProcessor) GenerateVoiceResponse(ctx context.Context, text string, language string, voiceName string) ([]byte, error) {
	voice, ok := voices[language]
	if !ok {
		voice = fallbackVoice
	}
	if voiceName != "" {
		voice.name = voiceName
	}

	audio, err := p.synthesizer.Synthesize(ctx, text, voice.languageCode, voice.name, speakingRate)
	if err != nil {
		return nil, fmt.Errorf("failed to generate voice response: %w", err)
	}
	return audio, nil
}

func (p *VoiceProcessor) fetchAudio(ctx context.Context, audioURL string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, audioURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build audio request: %w", err)
	}
	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch audio: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("failed to fetch audio: status %d", resp.StatusCode)
	}
	return resp.Body, nil
}

// buildSystemPrompt assembles the classifier instructions with whatever
// session context exists.
func buildSystemPrompt(session store.VoiceSession, language string) string {
	var b strings.Builder
	b.WriteString("You are EchoAid, a voice assistant that helps underserved callers in India access welfare schemes and social services. ")
	b.WriteString("Classify the caller's utterance and respond with a single JSON object, nothing else: ")
	b.WriteString(`{"intent": string, "entities": [{"type": string, "value": string, "confidence": number}], "emotionalState": string, "actions": [string]}. `)
	b.WriteString("The intent must be one of: employment, shelter, food, healthcare, legal_aid, emergency, general_help. ")
	b.WriteString("Use entity type urgency when the caller signals time pressure.\n")

	fmt.Fprintf(&b, "Caller language: %s.\n", language)
	if session.UserProfile.Name != "" {
		fmt.Fprintf(&b, "Caller name: %s.\n", session.UserProfile.Name)
	}
	if session.UserProfile.Category != "" {
		fmt.Fprintf(&b, "Caller category: %s.\n", session.UserProfile.Category)
	}
	if !session.Location.IsZero() {
		fmt.Fprintf(&b, "Caller location: %s, %s.\n", session.Location.District, session.Location.State)
	}
	return b.String()
}

// parseIntentResult decodes the model output, tolerating markdown code
// fences around the JSON.
func parseIntentResult(raw string) (IntentResult, error) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	var result IntentResult
	if err := json.Unmarshal([]byte(cleaned), &result); err != nil {
		return IntentResult{}, fmt.Errorf("failed to decode intent result: %w", err)
	}
	if result.Intent == "" {
		return IntentResult{}, fmt.Errorf("intent result missing intent")
	}
	if result.Entities == nil {
		result.Entities = []store.InteractionEntity{}
	}
	if result.Actions == nil {
		result.Actions = []string{}
	}
	return result, nil
}
