package googleai

import (
	"context"
	"fmt"
	"strings"

	"echoaid-server/internal/observability"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const classifierModel = "gemini-1.5-flash"

// Client wraps the Gemini API for intent classification. It is the
// configuration-selected alternative to the OpenAI classifier.
type Client struct {
	client *genai.Client
	logger *observability.Logger
}

func New(ctx context.Context, apiKey string, logger *observability.Logger) (*Client, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Google AI client: %w", err)
	}
	return &Client{
		client: client,
		logger: logger,
	}, nil
}

func (c *Client) Close() error {
	return c.client.Close()
}

// Classify sends the system prompt and utterance to Gemini and returns
// the raw model output. The model is pinned to JSON responses.
func (c *Client) Classify(ctx context.Context, systemPrompt string, userText string) (string, error) {
	model := c.client.GenerativeModel(classifierModel)
	model.ResponseMIMEType = "application/json"
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemPrompt)},
	}

	resp, err := model.GenerateContent(ctx, genai.Text(userText))
	if err != nil {
		c.logger.Error(ctx, "failed to classify utterance", err)
		return "", fmt.Errorf("failed to classify utterance: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("empty model response")
	}

	var out strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			out.WriteString(string(text))
		}
	}
	return out.String(), nil
}
