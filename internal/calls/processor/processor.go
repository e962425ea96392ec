package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"echoaid-server/internal/jobs"
	"echoaid-server/internal/localization"
	"echoaid-server/internal/observability"
	"echoaid-server/internal/store"

	"github.com/google/uuid"
)

// Urgency levels for transfers and callbacks.
const (
	UrgencyEmergency = "emergency"
	UrgencyUrgent    = "urgent"
	UrgencyNormal    = "normal"
)

// Callback deadlines per urgency tier. An unknown urgency gets the
// widest window.
const (
	callbackWindowEmergency = 5 * time.Minute
	callbackWindowUrgent    = 30 * time.Minute
	callbackWindowNormal    = 2 * time.Hour
	callbackWindowDefault   = 4 * time.Hour

	sessionReuseWindow      = 24 * time.Hour
	missedCallHistoryWindow = 7 * 24 * time.Hour
	missedCallCallbackDelay = 2 * time.Minute
)

var ErrProviderNotFound = errors.New("provider not found")

// Dialer places an outbound call and returns the call SID. The
// production implementation goes through Twilio; tests inject doubles.
type Dialer interface {
	Dial(ctx context.Context, toNumber string) (string, error)
}

// CallbackScheduler defers callback execution to the task queue.
type CallbackScheduler interface {
	EnqueueCallbackExecution(ctx context.Context, payload jobs.CallbackJobPayload) error
	EnqueueMissedCallCallback(ctx context.Context, payload jobs.MissedCallJobPayload) error
}

// CallStore defines the database operations required by CallProcessor
type CallStore interface {
	GetSessionByID(ctx context.Context, sessionID string) (store.VoiceSession, error)
	GetRecentSessionByPhone(ctx context.Context, phoneNumber string, activeSince time.Time) (store.VoiceSession, error)
	CreateSession(ctx context.Context, params store.CreateSessionParams) (store.VoiceSession, error)
	TouchSession(ctx context.Context, sessionID string, status string) error
	GetProviderByID(ctx context.Context, providerID string) (store.ServiceProvider, error)
	CreateCallLog(ctx context.Context, params store.CreateCallLogParams) (store.CallLog, error)
	UpdateLatestCallStatus(ctx context.Context, sessionID string, status string, duration *int) error
	ListRecentCallsByPhone(ctx context.Context, fromNumber string, since time.Time) ([]store.CallLog, error)
}

// IncomingCallResult is the orchestrator's answer to a new inbound
// call: the session to continue on and the greeting to speak.
type IncomingCallResult struct {
	Success         bool   `json:"success"`
	SessionID       string `json:"sessionId,omitempty"`
	Message         string `json:"message"`
	IsReturningUser bool   `json:"isReturningUser"`
	Language        string `json:"language,omitempty"`
}

// TransferResult is the outcome of a transfer attempt.
type TransferResult struct {
	Success       bool     `json:"success"`
	Message       string   `json:"message"`
	TransferredTo string   `json:"transferredTo,omitempty"`
	CallSid       string   `json:"callSid,omitempty"`
	Actions       []string `json:"actions,omitempty"`
}

// CallbackResult is the outcome of scheduling a callback.
type CallbackResult struct {
	Success         bool      `json:"success"`
	Message         string    `json:"message"`
	ScheduledTime   time.Time `json:"scheduledTime,omitempty"`
	ReferenceNumber string    `json:"referenceNumber,omitempty"`
}

// MissedCallResult acknowledges a missed call and the promised return
// call.
type MissedCallResult struct {
	Success       bool      `json:"success"`
	SessionID     string    `json:"sessionId,omitempty"`
	CallbackTime  time.Time `json:"callbackTime,omitempty"`
	PreviousCalls int       `json:"previousCalls"`
}

type CallProcessor struct {
	store           CallStore
	dialer          Dialer
	scheduler       CallbackScheduler
	messages        *localization.Messages
	defaultLanguage string
	logger          *observability.Logger
	now             func() time.Time
}

func New(store CallStore, dialer Dialer, scheduler CallbackScheduler, messages *localization.Messages, defaultLanguage string, logger *observability.Logger) CallProcessor {
	return CallProcessor{
		store:           store,
		dialer:          dialer,
		scheduler:       scheduler,
		messages:        messages,
		defaultLanguage: defaultLanguage,
		logger:          logger,
		now:             time.Now,
	}
}

// HandleIncomingCall answers an inbound call: reuse the caller's
// session if one was active within 24 hours, otherwise open a new one,
// log the call, and pick the localized greeting. On any failure the
// caller still hears the fixed Hindi greeting; the call is never
// dropped silently.
func (p *CallProcessor) HandleIncomingCall(ctx context.Context, fromNumber string, callSid string, language string) IncomingCallResult {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "from_number", Value: fromNumber},
		observability.Field{Key: "call_sid", Value: callSid},
	)
	if language == "" {
		language = p.defaultLanguage
	}

	result, err := p.answerCall(ctx, fromNumber, callSid, language)
	if err != nil {
		p.logger.Error(ctx, "failed to handle incoming call", err)
		return IncomingCallResult{
			Success: false,
			Message: localization.HindiFallbackGreeting,
		}
	}
	return result
}

func (p *CallProcessor) answerCall(ctx context.Context, fromNumber string, callSid string, language string) (IncomingCallResult, error) {
	now := p.now()

	var session store.VoiceSession
	isReturning := false

	existing, err := p.store.GetRecentSessionByPhone(ctx, fromNumber, now.Add(-sessionReuseWindow))
	switch {
	case err == nil:
		session = existing
		isReturning = true
		if session.Language != "" {
			language = session.Language
		}
		if err := p.store.TouchSession(ctx, session.SessionID, store.SessionStatusActive); err != nil {
			return IncomingCallResult{}, fmt.Errorf("failed to reactivate session: %w", err)
		}
	case errors.Is(err, store.ErrNotFound):
		session, err = p.store.CreateSession(ctx, store.CreateSessionParams{
			SessionID:   newSessionID("session"),
			PhoneNumber: fromNumber,
			Language:    language,
			Status:      store.SessionStatusActive,
			CreatedAt:   now,
		})
		if err != nil {
			return IncomingCallResult{}, fmt.Errorf("failed to create session: %w", err)
		}
	default:
		return IncomingCallResult{}, fmt.Errorf("failed to look up recent session: %w", err)
	}

	_, err = p.store.CreateCallLog(ctx, store.CreateCallLogParams{
		LogID:      newLogID(),
		SessionID:  session.SessionID,
		CallType:   store.CallTypeInbound,
		FromNumber: fromNumber,
		CallSid:    callSid,
		Status:     store.CallStatusConnected,
	})
	if err != nil {
		return IncomingCallResult{}, fmt.Errorf("failed to log inbound call: %w", err)
	}

	return IncomingCallResult{
		Success:         true,
		SessionID:       session.SessionID,
		Message:         p.messages.Welcome(language, isReturning),
		IsReturningUser: isReturning,
		Language:        language,
	}, nil
}

// TransferCall hands the caller to a provider. An unavailable provider
// triggers one alternative lookup; with no alternative the caller gets
// the all-busy message and fallback actions instead of a dropped call.
func (p *CallProcessor) TransferCall(ctx context.Context, sessionID string, providerID string, reason string, urgency string) TransferResult {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "session_id", Value: sessionID},
		observability.Field{Key: "provider_id", Value: providerID},
	)

	session, err := p.store.GetSessionByID(ctx, sessionID)
	if err != nil {
		p.logger.Error(ctx, "failed to load session for transfer", err)
		return TransferResult{Success: false, Message: p.messages.TransferError(p.defaultLanguage)}
	}
	language := p.sessionLanguage(session)

	provider, err := p.store.GetProviderByID(ctx, providerID)
	if err != nil {
		p.logger.Error(ctx, "failed to load provider for transfer", err)
		return TransferResult{Success: false, Message: p.messages.TransferError(language)}
	}

	if !p.isProviderAvailable(provider, urgency) {
		alternative, err := p.findAlternativeProvider(ctx, provider, urgency)
		if err != nil {
			p.logger.Error(ctx, "failed to find alternative provider", err)
			return TransferResult{Success: false, Message: p.messages.TransferError(language)}
		}
		if alternative == nil {
			return TransferResult{
				Success: false,
				Message: p.messages.AllProvidersBusy(language),
				Actions: []string{"schedule_callback", "record_message", "emergency_transfer"},
			}
		}
		return p.executeTransfer(ctx, session, *alternative, language, true)
	}

	return p.executeTransfer(ctx, session, provider, language, false)
}

// executeTransfer logs the attempt, dials out, and patches the log with
// the outcome.
func (p *CallProcessor) executeTransfer(ctx context.Context, session store.VoiceSession, provider store.ServiceProvider, language string, isAlternative bool) TransferResult {
	_, err := p.store.CreateCallLog(ctx, store.CreateCallLogParams{
		LogID:      newLogID(),
		SessionID:  session.SessionID,
		CallType:   store.CallTypeTransfer,
		FromNumber: session.PhoneNumber.String,
		ToNumber:   provider.Contact.Phone,
		Status:     store.CallStatusAttempting,
		TransferredTo: store.TransferTarget{
			ProviderID:    provider.ProviderID,
			ProviderName:  provider.Name,
			ContactPerson: provider.Contact.ContactPerson,
		},
	})
	if err != nil {
		p.logger.Error(ctx, "failed to log transfer attempt", err)
		return TransferResult{Success: false, Message: p.messages.TransferError(language)}
	}

	callSid, dialErr := p.dialer.Dial(ctx, provider.Contact.Phone)
	if dialErr != nil {
		p.logger.Error(ctx, "transfer dial failed", dialErr)
		if err := p.store.UpdateLatestCallStatus(ctx, session.SessionID, store.CallStatusFailed, nil); err != nil {
			p.logger.Error(ctx, "failed to mark transfer as failed", err)
		}
		return TransferResult{
			Success: false,
			Message: p.messages.TransferFailed(language),
			Actions: []string{"schedule_callback", "record_message"},
		}
	}

	if err := p.store.UpdateLatestCallStatus(ctx, session.SessionID, store.CallStatusConnected, nil); err != nil {
		p.logger.Error(ctx, "failed to mark transfer as connected", err)
	}
	if err := p.store.TouchSession(ctx, session.SessionID, store.SessionStatusTransferred); err != nil {
		p.logger.Error(ctx, "failed to mark session as transferred", err)
	}

	return TransferResult{
		Success:       true,
		Message:       p.messages.TransferConnecting(language, isAlternative),
		TransferredTo: provider.Name,
		CallSid:       callSid,
	}
}

// isProviderAvailable requires capacity headroom and acceptable hours.
// An emergency bypasses the hours check, as does a 24x7 provider.
func (p *CallProcessor) isProviderAvailable(provider store.ServiceProvider, urgency string) bool {
	if provider.Capacity.CurrentLoad >= provider.Capacity.MaxCapacity {
		return false
	}
	if urgency == UrgencyEmergency || provider.Availability.Emergency24x7 {
		return true
	}
	switch provider.Availability.Hours {
	case "24x7":
		return true
	case "business_hours":
		hour := p.now().Hour()
		return hour >= 9 && hour <= 18
	default:
		return true
	}
}

// findAlternativeProvider is an extension point for rerouting to a
// comparable provider. No alternative is offered yet; callers fall
// through to the callback path.
func (p *CallProcessor) findAlternativeProvider(ctx context.Context, unavailable store.ServiceProvider, urgency string) (*store.ServiceProvider, error) {
	return nil, nil
}

// ScheduleCallback books a deferred return call. The deadline comes
// from the caller's preferred time or the urgency tier, whichever is
// given.
func (p *CallProcessor) ScheduleCallback(ctx context.Context, sessionID string, providerID string, preferredTime *time.Time, urgency string) CallbackResult {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "session_id", Value: sessionID},
	)

	session, err := p.store.GetSessionByID(ctx, sessionID)
	if err != nil {
		p.logger.Error(ctx, "failed to load session for callback", err)
		return CallbackResult{Success: false, Message: p.messages.CallbackFailed(p.defaultLanguage)}
	}
	language := p.sessionLanguage(session)

	scheduledTime := p.callbackDeadline(urgency)
	if preferredTime != nil {
		scheduledTime = *preferredTime
	}
	reference := p.newCallbackReference()

	_, err = p.store.CreateCallLog(ctx, store.CreateCallLogParams{
		LogID:         newLogID(),
		SessionID:     sessionID,
		CallType:      store.CallTypeScheduledCallback,
		FromNumber:    session.PhoneNumber.String,
		Status:        store.CallStatusScheduled,
		ScheduledTime: scheduledTime,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to log scheduled callback", err)
		return CallbackResult{Success: false, Message: p.messages.CallbackFailed(language)}
	}

	err = p.scheduler.EnqueueCallbackExecution(ctx, jobs.CallbackJobPayload{
		SessionID:    sessionID,
		PhoneNumber:  session.PhoneNumber.String,
		ProviderID:   providerID,
		Reference:    reference,
		Urgency:      urgency,
		ScheduledFor: scheduledTime,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to enqueue callback", err)
		return CallbackResult{Success: false, Message: p.messages.CallbackFailed(language)}
	}

	return CallbackResult{
		Success:         true,
		Message:         p.messages.CallbackConfirmation(language, scheduledTime),
		ScheduledTime:   scheduledTime,
		ReferenceNumber: reference,
	}
}

// HandleMissedCall opens a pending session for a caller we could not
// answer and promises a return call two minutes out.
func (p *CallProcessor) HandleMissedCall(ctx context.Context, phoneNumber string, timestamp time.Time) (MissedCallResult, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "from_number", Value: phoneNumber},
	)
	now := p.now()
	if timestamp.IsZero() {
		timestamp = now
	}

	history, err := p.store.ListRecentCallsByPhone(ctx, phoneNumber, now.Add(-missedCallHistoryWindow))
	if err != nil {
		return MissedCallResult{}, fmt.Errorf("failed to load call history: %w", err)
	}

	session, err := p.store.CreateSession(ctx, store.CreateSessionParams{
		SessionID:   newSessionID("missed"),
		PhoneNumber: phoneNumber,
		Language:    p.defaultLanguage,
		Status:      store.SessionStatusMissedCallPending,
		CreatedAt:   timestamp,
	})
	if err != nil {
		return MissedCallResult{}, fmt.Errorf("failed to create missed call session: %w", err)
	}

	callbackTime := now.Add(missedCallCallbackDelay)

	_, err = p.store.CreateCallLog(ctx, store.CreateCallLogParams{
		LogID:         newLogID(),
		SessionID:     session.SessionID,
		CallType:      store.CallTypeScheduledCallback,
		FromNumber:    phoneNumber,
		Status:        store.CallStatusScheduled,
		ScheduledTime: callbackTime,
	})
	if err != nil {
		return MissedCallResult{}, fmt.Errorf("failed to log missed call callback: %w", err)
	}

	err = p.scheduler.EnqueueMissedCallCallback(ctx, jobs.MissedCallJobPayload{
		SessionID:    session.SessionID,
		PhoneNumber:  phoneNumber,
		ScheduledFor: callbackTime,
	})
	if err != nil {
		return MissedCallResult{}, fmt.Errorf("failed to enqueue missed call callback: %w", err)
	}

	return MissedCallResult{
		Success:       true,
		SessionID:     session.SessionID,
		CallbackTime:  callbackTime,
		PreviousCalls: len(history),
	}, nil
}

func (p *CallProcessor) callbackDeadline(urgency string) time.Time {
	now := p.now()
	switch urgency {
	case UrgencyEmergency:
		return now.Add(callbackWindowEmergency)
	case UrgencyUrgent:
		return now.Add(callbackWindowUrgent)
	case UrgencyNormal:
		return now.Add(callbackWindowNormal)
	default:
		return now.Add(callbackWindowDefault)
	}
}

func (p *CallProcessor) sessionLanguage(session store.VoiceSession) string {
	if session.Language != "" {
		return session.Language
	}
	return p.defaultLanguage
}

// newCallbackReference builds a reference the caller can quote: CB plus
// the last six digits of the current epoch milliseconds.
func (p *CallProcessor) newCallbackReference() string {
	digits := strconv.FormatInt(p.now().UnixMilli(), 10)
	return "CB" + digits[len(digits)-6:]
}

func newSessionID(prefix string) string {
	return fmt.Sprintf("%s_%d_%s", prefix, time.Now().UnixMilli(), uuid.NewString()[:8])
}

func newLogID() string {
	return fmt.Sprintf("log_%d_%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}
