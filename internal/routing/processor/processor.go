package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"echoaid-server/internal/observability"
	"echoaid-server/internal/store"
)

// Intent is the classified purpose of a caller's utterance. The set is
// closed; anything unrecognized routes to general help.
type Intent string

const (
	IntentEmployment Intent = "employment"
	IntentShelter    Intent = "shelter"
	IntentFood       Intent = "food"
	IntentHealthcare Intent = "healthcare"
	IntentLegalAid   Intent = "legal_aid"
	IntentEmergency  Intent = "emergency"
	IntentGeneral    Intent = "general_help"
)

// ParseIntent maps a raw intent string to the closed set. Unknown or
// missing intents fall through to general help, never an error.
func ParseIntent(s string) Intent {
	switch Intent(s) {
	case IntentEmployment, IntentShelter, IntentFood, IntentHealthcare, IntentLegalAid, IntentEmergency:
		return Intent(s)
	default:
		return IntentGeneral
	}
}

// Entity is a typed, confidence-scored fragment extracted from an
// utterance by the intent classifier.
type Entity struct {
	Type       string  `json:"type"`
	Value      string  `json:"value"`
	Confidence float64 `json:"confidence"`
}

// RoutingResult is the directive handed back to the call orchestrator:
// matched reference data, a spoken response, and the next actions.
type RoutingResult struct {
	Success       bool                     `json:"success"`
	Intent        Intent                   `json:"intent"`
	Urgent        bool                     `json:"urgent,omitempty"`
	EmergencyType string                   `json:"emergencyType,omitempty"`
	Schemes       []store.WelfareScheme    `json:"schemes,omitempty"`
	Providers     []store.ServiceProvider  `json:"providers,omitempty"`
	Contacts      []store.EmergencyContact `json:"contacts,omitempty"`
	Response      string                   `json:"response"`
	Actions       []string                 `json:"actions"`
}

// RoutingStore defines the database operations required by RoutingProcessor
type RoutingStore interface {
	GetSessionByID(ctx context.Context, sessionID string) (store.VoiceSession, error)
	ListVerifiedActiveProviders(ctx context.Context) ([]store.ServiceProvider, error)
	ListActiveSchemesByCategory(ctx context.Context, category string) ([]store.WelfareScheme, error)
	ListActiveContactsByCategory(ctx context.Context, category string) ([]store.EmergencyContact, error)
}

const (
	maxRankedProviders = 3
	maxMatchedSchemes  = 5
	maxContacts        = 3
)

// Shelter urgency tokens, matched case-insensitively against urgency
// entity values.
var urgencyTokens = []string{"urgent", "immediate", "tonight"}

// emergencyKeywordTable maps emergency categories to trigger keywords.
// Iteration order is the declared order; the first matching entry wins.
var emergencyKeywordTable = []struct {
	category string
	keywords []string
}{
	{"medical", []string{"sick", "injured", "hospital", "doctor", "pain", "bleeding"}},
	{"police", []string{"crime", "theft", "violence", "assault", "robbery", "harassment"}},
	{"mental_health", []string{"suicide", "depression", "anxiety", "mental", "counseling"}},
	{"domestic_violence", []string{"abuse", "violence", "domestic", "beaten", "threatened"}},
	{"legal", []string{"arrest", "detention", "legal", "court", "lawyer"}},
}

type RoutingProcessor struct {
	store  RoutingStore
	logger *observability.Logger
}

func New(store RoutingStore, logger *observability.Logger) RoutingProcessor {
	return RoutingProcessor{
		store:  store,
		logger: logger,
	}
}

// Route dispatches on the classified intent and produces a routing
// directive. Any failure is converted into the generic connect-to-human
// result; routing never propagates an error to the caller.
func (p *RoutingProcessor) Route(ctx context.Context, sessionID string, intent string, entities []Entity, location *store.Location) RoutingResult {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "session_id", Value: sessionID},
		observability.Field{Key: "intent", Value: intent},
	)

	session, err := p.store.GetSessionByID(ctx, sessionID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		p.logger.Error(ctx, "failed to load session context for routing", err)
		return fallbackResult()
	}

	var profile *store.UserProfile
	if session.UserProfile != (store.UserProfile{}) {
		profile = &session.UserProfile
	}
	if location == nil && !session.Location.IsZero() {
		location = &session.Location
	}

	var result RoutingResult
	switch ParseIntent(intent) {
	case IntentEmployment:
		result, err = p.routeEmployment(ctx, profile, location)
	case IntentShelter:
		result, err = p.routeShelter(ctx, entities, profile, location)
	case IntentFood:
		result = routeFoodAssistance()
	case IntentHealthcare:
		result = routeHealthcare()
	case IntentLegalAid:
		result = routeLegalAid()
	case IntentEmergency:
		result, err = p.routeEmergency(ctx, entities)
	default:
		result = routeGeneralHelp()
	}
	if err != nil {
		p.logger.Error(ctx, "routing failed", err)
		return fallbackResult()
	}
	return result
}

func (p *RoutingProcessor) routeEmployment(ctx context.Context, profile *store.UserProfile, location *store.Location) (RoutingResult, error) {
	schemes, err := p.findWelfareSchemes(ctx, "employment")
	if err != nil {
		return RoutingResult{}, err
	}

	providers, err := p.findServiceProviders(ctx, providerQuery{
		services:     []string{"employment", "job_placement", "skill_training"},
		location:     location,
		userCategory: profileCategory(profile),
	})
	if err != nil {
		return RoutingResult{}, err
	}

	return RoutingResult{
		Success:   true,
		Intent:    IntentEmployment,
		Schemes:   schemes,
		Providers: providers,
		Response:  generateEmploymentResponse(schemes, providers),
		Actions:   []string{"provide_schemes", "connect_to_provider", "schedule_callback"},
	}, nil
}

func (p *RoutingProcessor) routeShelter(ctx context.Context, entities []Entity, profile *store.UserProfile, location *store.Location) (RoutingResult, error) {
	isUrgent := hasUrgencyEntity(entities)

	providers, err := p.findServiceProviders(ctx, providerQuery{
		services:     []string{"shelter", "temporary_housing", "night_shelter"},
		location:     location,
		userCategory: profileCategory(profile),
		emergency:    isUrgent,
	})
	if err != nil {
		return RoutingResult{}, err
	}

	schemes, err := p.findWelfareSchemes(ctx, "shelter")
	if err != nil {
		return RoutingResult{}, err
	}

	actions := []string{"provide_options", "schedule_visit"}
	if isUrgent {
		actions = []string{"immediate_transfer", "provide_directions"}
	}

	return RoutingResult{
		Success:   true,
		Intent:    IntentShelter,
		Urgent:    isUrgent,
		Providers: providers,
		Schemes:   schemes,
		Response:  generateShelterResponse(providers, isUrgent),
		Actions:   actions,
	}, nil
}

func (p *RoutingProcessor) routeEmergency(ctx context.Context, entities []Entity) (RoutingResult, error) {
	emergencyType := classifyEmergency(entities)

	contacts, err := p.findEmergencyContacts(ctx, emergencyType)
	if err != nil {
		return RoutingResult{}, err
	}

	return RoutingResult{
		Success:       true,
		Intent:        IntentEmergency,
		EmergencyType: emergencyType,
		Contacts:      contacts,
		Response:      generateEmergencyResponse(),
		Actions:       []string{"immediate_transfer", "provide_emergency_numbers"},
	}, nil
}

// findWelfareSchemes returns active schemes in the category, capped at
// maxMatchedSchemes in insertion order. Eligibility and location
// narrowing is an extension point; today every scheme passes.
func (p *RoutingProcessor) findWelfareSchemes(ctx context.Context, category string) ([]store.WelfareScheme, error) {
	schemes, err := p.store.ListActiveSchemesByCategory(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("failed to find welfare schemes: %w", err)
	}
	if len(schemes) > maxMatchedSchemes {
		schemes = schemes[:maxMatchedSchemes]
	}
	return schemes, nil
}

type providerQuery struct {
	services     []string
	location     *store.Location
	userCategory string
	emergency    bool
}

// findServiceProviders filters the verified, active provider directory
// and ranks the survivors by rating and remaining capacity.
func (p *RoutingProcessor) findServiceProviders(ctx context.Context, q providerQuery) ([]store.ServiceProvider, error) {
	providers, err := p.store.ListVerifiedActiveProviders(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to find service providers: %w", err)
	}

	matched := make([]store.ServiceProvider, 0, len(providers))
	for _, provider := range providers {
		if !hasAnyService(provider.Services, q.services) {
			continue
		}
		if q.location != nil &&
			(provider.Location.State != q.location.State || provider.Location.District != q.location.District) {
			continue
		}
		if q.userCategory != "" && !provider.Specializations.Contains(q.userCategory) {
			continue
		}
		if q.emergency && !provider.Availability.Emergency24x7 {
			continue
		}
		matched = append(matched, provider)
	}

	// Descending by weighted score; stable so ties keep input order.
	sort.SliceStable(matched, func(i, j int) bool {
		return providerScore(matched[i]) > providerScore(matched[j])
	})

	if len(matched) > maxRankedProviders {
		matched = matched[:maxRankedProviders]
	}
	return matched, nil
}

// providerScore weighs verification rating at 70% and remaining
// capacity headroom at 30%.
func providerScore(p store.ServiceProvider) float64 {
	headroom := 0.0
	if p.Capacity.MaxCapacity > 0 {
		headroom = float64(p.Capacity.MaxCapacity-p.Capacity.CurrentLoad) / float64(p.Capacity.MaxCapacity)
	}
	return p.Verification.Rating*0.7 + headroom*0.3
}

func (p *RoutingProcessor) findEmergencyContacts(ctx context.Context, category string) ([]store.EmergencyContact, error) {
	contacts, err := p.store.ListActiveContactsByCategory(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("failed to find emergency contacts: %w", err)
	}

	sort.SliceStable(contacts, func(i, j int) bool {
		if contacts[i].Priority != contacts[j].Priority {
			return contacts[i].Priority < contacts[j].Priority
		}
		return coverageScore(contacts[i].Coverage) > coverageScore(contacts[j].Coverage)
	})

	if len(contacts) > maxContacts {
		contacts = contacts[:maxContacts]
	}
	return contacts, nil
}

// coverageScore prefers local contacts: district over state over
// national.
func coverageScore(coverage string) int {
	switch coverage {
	case store.CoverageDistrict:
		return 3
	case store.CoverageState:
		return 2
	default:
		return 1
	}
}

// classifyEmergency scans entity values against the keyword table in
// declared order; the first matching entry wins. Unmatched input is
// classified as general.
func classifyEmergency(entities []Entity) string {
	for _, entity := range entities {
		value := strings.ToLower(entity.Value)
		for _, row := range emergencyKeywordTable {
			for _, keyword := range row.keywords {
				if strings.Contains(value, keyword) {
					return row.category
				}
			}
		}
	}
	return "general"
}

func hasUrgencyEntity(entities []Entity) bool {
	for _, entity := range entities {
		if entity.Type != "urgency" {
			continue
		}
		value := strings.ToLower(entity.Value)
		for _, token := range urgencyTokens {
			if strings.Contains(value, token) {
				return true
			}
		}
	}
	return false
}

func hasAnyService(services store.StringArray, wanted []string) bool {
	for _, service := range wanted {
		if services.Contains(service) {
			return true
		}
	}
	return false
}

func profileCategory(profile *store.UserProfile) string {
	if profile == nil {
		return ""
	}
	return profile.Category
}

// fallbackResult is the generic connect-to-human directive produced
// when routing fails for any reason.
func fallbackResult() RoutingResult {
	return RoutingResult{
		Success:  false,
		Response: "I'm having trouble understanding your request. Let me connect you with someone who can help.",
		Actions:  []string{"transfer_to_human"},
	}
}
