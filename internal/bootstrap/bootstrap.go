package bootstrap

import (
	"context"
	"fmt"

	"echoaid-server/internal/config"
	"echoaid-server/internal/jobs"
	"echoaid-server/internal/localization"
	"echoaid-server/internal/observability"
	"echoaid-server/internal/store"

	analyticsHandler "echoaid-server/internal/analytics/handler"
	analyticsProcessor "echoaid-server/internal/analytics/processor"
	callsHandler "echoaid-server/internal/calls/handler"
	callsProcessor "echoaid-server/internal/calls/processor"
	"echoaid-server/internal/clients/googleai"
	"echoaid-server/internal/clients/googletts"
	"echoaid-server/internal/clients/openai"
	"echoaid-server/internal/clients/twilio"
	routingHandler "echoaid-server/internal/routing/handler"
	routingProcessor "echoaid-server/internal/routing/processor"
	verificationHandler "echoaid-server/internal/verification/handler"
	verificationProcessor "echoaid-server/internal/verification/processor"
	voiceHandler "echoaid-server/internal/voice/handler"
	voiceProcessor "echoaid-server/internal/voice/processor"
)

// Dependencies holds all initialized application dependencies
type Dependencies struct {
	// Core
	Store  store.Store
	Logger *observability.Logger

	// Handlers
	RoutingHandler      routingHandler.Handler
	CallsHandler        callsHandler.Handler
	VerificationHandler verificationHandler.Handler
	VoiceHandler        voiceHandler.Handler
	AnalyticsHandler    analyticsHandler.Handler

	// Clients needing cleanup
	JobClient      *jobs.Client
	GoogleAIClient *googleai.Client
}

// Initialize sets up all application dependencies
func Initialize(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Logger: logger,
	}

	// Initialize database store
	var err error
	deps.Store, err = store.New(cfg.Database.ConnectionString(), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	messages := localization.New()

	// Initialize clients
	deps.JobClient = jobs.NewClient(cfg.Redis.Addr, logger)

	twilioClient := twilio.New(
		cfg.Telephony.AccountSID,
		cfg.Telephony.AuthToken,
		cfg.Telephony.CallerNumber,
		cfg.Telephony.VoiceWebhook,
		logger,
	)

	openaiClient := openai.New(cfg.Services.OpenAIAPIKey, logger)

	var classifier voiceProcessor.IntentClassifier = openaiClient
	if cfg.Services.IntentProvider == "gemini" {
		deps.GoogleAIClient, err = googleai.New(ctx, cfg.Services.GoogleAIAPIKey, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create Google AI client: %w", err)
		}
		classifier = deps.GoogleAIClient
	}

	ttsClient, err := googletts.New(ctx, cfg.Services.GoogleTTSKey, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create text-to-speech client: %w", err)
	}

	// Initialize processors and handlers
	routing := routingProcessor.New(&deps.Store, logger)
	deps.RoutingHandler = routingHandler.New(routing, logger)

	calls := callsProcessor.New(&deps.Store, twilioClient, deps.JobClient, messages, cfg.Localization.DefaultLanguage, logger)
	deps.CallsHandler = callsHandler.New(calls, logger)

	verification := verificationProcessor.New(&deps.Store, verificationProcessor.Config{
		VoiceConsentStrictTier: cfg.Verification.VoiceConsentStrictTier,
	}, logger)
	deps.VerificationHandler = verificationHandler.New(verification, logger)

	voice := voiceProcessor.New(&deps.Store, openaiClient, classifier, ttsClient, cfg.Localization.DefaultLanguage, logger)
	deps.VoiceHandler = voiceHandler.New(voice, routing, logger)

	analytics := analyticsProcessor.New(&deps.Store, logger)
	deps.AnalyticsHandler = analyticsHandler.New(analytics, logger)

	return deps, nil
}

// Cleanup releases client connections
func (d *Dependencies) Cleanup() {
	if d.JobClient != nil {
		if err := d.JobClient.Close(); err != nil {
			d.Logger.Error(context.Background(), "failed to close job client", err)
		}
	}
	if d.GoogleAIClient != nil {
		if err := d.GoogleAIClient.Close(); err != nil {
			d.Logger.Error(context.Background(), "failed to close Google AI client", err)
		}
	}
}
