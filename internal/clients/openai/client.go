package openai

import (
	"context"
	"fmt"
	"io"

	"echoaid-server/internal/observability"

	"github.com/openai/openai-go"
	openaiOption "github.com/openai/openai-go/option"
)

// Client wraps the OpenAI API for speech transcription and intent
// classification.
type Client struct {
	api    openai.Client
	logger *observability.Logger
}

func New(apiKey string, logger *observability.Logger) *Client {
	options := []openaiOption.RequestOption{
		openaiOption.WithAPIKey(apiKey),
	}
	return &Client{
		api:    openai.NewClient(options...),
		logger: logger,
	}
}

// Transcribe runs Whisper over the audio and returns the transcript.
// The language hint is optional.
func (c *Client) Transcribe(ctx context.Context, audio io.Reader, language string) (string, error) {
	params := openai.AudioTranscriptionNewParams{
		File:  audio,
		Model: openai.AudioModelWhisper1,
	}
	if language != "" {
		params.Language = openai.String(language)
	}

	transcription, err := c.api.Audio.Transcriptions.New(ctx, params)
	if err != nil {
		c.logger.Error(ctx, "failed to transcribe audio", err)
		return "", fmt.Errorf("failed to transcribe audio: %w", err)
	}
	return transcription.Text, nil
}

// Classify sends the system prompt and utterance to the chat model and
// returns the raw model output. The prompt instructs the model to
// answer with a single JSON object; parsing stays with the caller.
func (c *Client) Classify(ctx context.Context, systemPrompt string, userText string) (string, error) {
	completion, err := c.api.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModelGPT4o,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userText),
		},
		Temperature: openai.Float(0.3),
	})
	if err != nil {
		c.logger.Error(ctx, "failed to classify utterance", err)
		return "", fmt.Errorf("failed to classify utterance: %w", err)
	}
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("empty completion response")
	}
	return completion.Choices[0].Message.Content, nil
}
