package twilio

import (
	"context"
	"fmt"

	"echoaid-server/internal/observability"

	twilioclient "github.com/twilio/twilio-go"
	twilioapi "github.com/twilio/twilio-go/rest/api/v2010"
)

// Client places outbound calls through the Twilio REST API. Call
// content comes from the voice webhook, which serves TwiML when Twilio
// connects the call.
type Client struct {
	api          *twilioclient.RestClient
	callerNumber string
	voiceWebhook string
	logger       *observability.Logger
}

func New(accountSID, authToken, callerNumber, voiceWebhook string, logger *observability.Logger) *Client {
	api := twilioclient.NewRestClientWithParams(twilioclient.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
	return &Client{
		api:          api,
		callerNumber: callerNumber,
		voiceWebhook: voiceWebhook,
		logger:       logger,
	}
}

// Dial places an outbound call to the number and returns the call SID.
func (c *Client) Dial(ctx context.Context, toNumber string) (string, error) {
	params := &twilioapi.CreateCallParams{}
	params.SetTo(toNumber)
	params.SetFrom(c.callerNumber)
	params.SetUrl(c.voiceWebhook)

	resp, err := c.api.Api.CreateCall(params)
	if err != nil {
		c.logger.Error(ctx, "failed to create outbound call", err)
		return "", fmt.Errorf("failed to create outbound call: %w", err)
	}

	callSid := ""
	if resp.Sid != nil {
		callSid = *resp.Sid
	}
	c.logger.Info(ctx, fmt.Sprintf("placed outbound call %s to %s", callSid, toNumber))
	return callSid, nil
}
