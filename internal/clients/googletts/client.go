package googletts

import (
	"context"
	"encoding/base64"
	"fmt"

	"echoaid-server/internal/observability"

	"google.golang.org/api/option"
	texttospeech "google.golang.org/api/texttospeech/v1"
)

// Client wraps the Google Cloud Text-to-Speech REST API.
type Client struct {
	service *texttospeech.Service
	logger  *observability.Logger
}

func New(ctx context.Context, apiKey string, logger *observability.Logger) (*Client, error) {
	service, err := texttospeech.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create text-to-speech service: %w", err)
	}
	return &Client{
		service: service,
		logger:  logger,
	}, nil
}

// Synthesize renders text to MP3 audio with the given voice.
func (c *Client) Synthesize(ctx context.Context, text string, languageCode string, voiceName string, speakingRate float64) ([]byte, error) {
	resp, err := c.service.Text.Synthesize(&texttospeech.SynthesizeSpeechRequest{
		Input: &texttospeech.SynthesisInput{Text: text},
		Voice: &texttospeech.VoiceSelectionParams{
			LanguageCode: languageCode,
			Name:         voiceName,
		},
		AudioConfig: &texttospeech.AudioConfig{
			AudioEncoding: "MP3",
			SpeakingRate:  speakingRate,
		},
	}).Context(ctx).Do()
	if err != nil {
		c.logger.Error(ctx, "failed to synthesize speech", err)
		return nil, fmt.Errorf("failed to synthesize speech: %w", err)
	}

	audio, err := base64.StdEncoding.DecodeString(resp.AudioContent)
	if err != nil {
		return nil, fmt.Errorf("failed to decode synthesized audio: %w", err)
	}
	return audio, nil
}
