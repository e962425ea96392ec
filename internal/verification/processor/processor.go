package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"echoaid-server/internal/observability"
	"echoaid-server/internal/store"

	"github.com/google/uuid"
)

// Trust tiers assigned to a caller's asserted identity.
const (
	TrustLevelNone     = "none"
	TrustLevelBasic    = "basic"
	TrustLevelVerified = "verified"
)

// Verification methods. Every method is usable without an identity
// document; that is the point of the system.
const (
	MethodSelfDeclaration     = "self_declaration"
	MethodCommunityReferral   = "community_referral"
	MethodVoiceConsent        = "voice_consent"
	MethodDocumentAlternative = "document_alternative"
)

var ErrInvalidVerificationType = errors.New("invalid verification type")

// situationCategories maps situation keywords to caller categories.
// Checked in declared order; the first keyword contained in the
// situation text wins.
var situationCategories = []struct {
	keyword  string
	category string
}{
	{"homeless", "homeless"},
	{"migrant", "migrant"},
	{"unemployed", "unemployed"},
	{"transgender", "trans"},
	{"undocumented", "undocumented"},
	{"refugee", "refugee"},
	{"domestic_violence", "domestic_violence_survivor"},
}

// knownOrganizations are community organizations whose referrals earn
// the verified tier. Matched case-insensitively as substrings.
var knownOrganizations = []string{
	"Aajeevika", "SEWA", "Goonj", "Akshaya Patra", "Smile Foundation",
	"CRY", "Teach for India", "Pratham", "Helpage India",
}

// Consent keyword sets for voice-consent analysis.
var (
	affirmativeKeywords = []string{"agree", "consent", "understand", "yes", "allow"}
	negativeKeywords    = []string{"no", "don't"}
)

// acceptableDocuments is the whitelist of non-Aadhaar document kinds.
var acceptableDocuments = []string{
	"ration_card", "voter_id", "bank_passbook", "school_id",
	"employment_card", "pension_card", "disability_certificate",
}

// SelfDeclaration is the most inclusive verification payload.
type SelfDeclaration struct {
	Name             string `json:"name"`
	Age              *int   `json:"age,omitempty"`
	Location         string `json:"location,omitempty"`
	Situation        string `json:"situation"`
	NeedsDescription string `json:"needsDescription"`
	ConsentToHelp    bool   `json:"consentToHelp"`
}

// ReferredUser describes the person a community referral vouches for.
type ReferredUser struct {
	Name             string `json:"name"`
	Situation        string `json:"situation"`
	NeedsDescription string `json:"needsDescription"`
}

// CommunityReferral is a verification vouched for by a community
// worker or organization.
type CommunityReferral struct {
	ReferrerName         string       `json:"referrerName"`
	ReferrerContact      string       `json:"referrerContact"`
	ReferrerOrganization string       `json:"referrerOrganization,omitempty"`
	UserDetails          ReferredUser `json:"userDetails"`
	RelationshipToUser   string       `json:"relationshipToUser"`
}

// VoiceConsent is a recorded spoken consent.
type VoiceConsent struct {
	ConsentText string `json:"consentText"`
	AudioURL    string `json:"audioUrl,omitempty"`
	ConsentType string `json:"consentType"`
	Timestamp   int64  `json:"timestamp"`
}

// DocumentAlternative is a non-Aadhaar document assertion.
type DocumentAlternative struct {
	DocumentType        string `json:"documentType"`
	DocumentNumber      string `json:"documentNumber,omitempty"`
	IssuingAuthority    string `json:"issuingAuthority,omitempty"`
	HasPhysicalDocument bool   `json:"hasPhysicalDocument"`
	CanProvideDetails   bool   `json:"canProvideDetails"`
}

// ConsentRecord is the stored outcome of a voice-consent analysis.
type ConsentRecord struct {
	Type      string `json:"type"`
	Timestamp int64  `json:"timestamp"`
	AudioURL  string `json:"audioUrl,omitempty"`
	IsValid   bool   `json:"isValid"`
}

// AcceptedDocument is the stored outcome of a document check.
type AcceptedDocument struct {
	Type        string `json:"type"`
	HasPhysical bool   `json:"hasPhysical"`
	TrustLevel  string `json:"trustLevel"`
}

// Result is the structured outcome of any verification attempt.
// Validation failures are returned here, never as errors.
type Result struct {
	Success            bool               `json:"success"`
	VerificationID     string             `json:"verificationId,omitempty"`
	Method             string             `json:"method,omitempty"`
	TrustLevel         string             `json:"trustLevel,omitempty"`
	Message            string             `json:"message"`
	RequiredFields     []string           `json:"requiredFields,omitempty"`
	AlternativeMethods []string           `json:"alternativeMethods,omitempty"`
	Profile            *store.UserProfile `json:"userProfile,omitempty"`
	ConsentRecord      *ConsentRecord     `json:"consentRecord,omitempty"`
	AcceptedDocument   *AcceptedDocument  `json:"acceptedDocument,omitempty"`
}

// Status reports whether a session has completed verification.
type Status struct {
	Verified   bool   `json:"verified"`
	Method     string `json:"method,omitempty"`
	TrustLevel string `json:"trustLevel"`
	VerifiedAt *int64 `json:"verifiedAt,omitempty"`
}

// VerificationStore defines the database operations required by VerificationProcessor
type VerificationStore interface {
	GetSessionByID(ctx context.Context, sessionID string) (store.VoiceSession, error)
	UpdateSessionProfile(ctx context.Context, sessionID string, profile store.UserProfile) error
}

// Config holds verification policy knobs.
type Config struct {
	// VoiceConsentStrictTier downgrades invalid voice consents to the
	// basic tier. Off by default: the original behavior reports
	// verified even when the consent analysis fails.
	VoiceConsentStrictTier bool
}

type VerificationProcessor struct {
	store  VerificationStore
	config Config
	logger *observability.Logger
}

func New(store VerificationStore, config Config, logger *observability.Logger) VerificationProcessor {
	return VerificationProcessor{
		store:  store,
		config: config,
		logger: logger,
	}
}

// Verify dispatches on the verification type, applies the matching
// validator, and merges the resulting profile fragment into the
// session. Any internal failure collapses to a retry-with-alternatives
// result.
func (p *VerificationProcessor) Verify(ctx context.Context, sessionID string, verificationType string, data json.RawMessage) Result {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "session_id", Value: sessionID},
		observability.Field{Key: "verification_type", Value: verificationType},
	)

	result, err := p.process(ctx, verificationType, data)
	if err != nil {
		p.logger.Error(ctx, "verification failed", err)
		return Result{
			Success:            false,
			Message:            "Verification failed. Let's try a different method.",
			AlternativeMethods: []string{MethodSelfDeclaration, MethodCommunityReferral},
		}
	}

	// Failed validations report back without touching the session.
	if result.Success {
		if err := p.applyToSession(ctx, sessionID, result); err != nil {
			p.logger.Error(ctx, "failed to apply verification to session", err)
			return Result{
				Success:            false,
				Message:            "Verification failed. Let's try a different method.",
				AlternativeMethods: []string{MethodSelfDeclaration, MethodCommunityReferral},
			}
		}
	}

	return result
}

func (p *VerificationProcessor) process(ctx context.Context, verificationType string, data json.RawMessage) (Result, error) {
	switch verificationType {
	case MethodSelfDeclaration:
		var payload SelfDeclaration
		if err := json.Unmarshal(data, &payload); err != nil {
			return Result{}, fmt.Errorf("failed to decode self declaration: %w", err)
		}
		return p.ProcessSelfDeclaration(ctx, payload), nil
	case MethodCommunityReferral:
		var payload CommunityReferral
		if err := json.Unmarshal(data, &payload); err != nil {
			return Result{}, fmt.Errorf("failed to decode community referral: %w", err)
		}
		return p.ProcessCommunityReferral(ctx, payload), nil
	case MethodVoiceConsent:
		var payload VoiceConsent
		if err := json.Unmarshal(data, &payload); err != nil {
			return Result{}, fmt.Errorf("failed to decode voice consent: %w", err)
		}
		return p.ProcessVoiceConsent(ctx, payload), nil
	case MethodDocumentAlternative:
		var payload DocumentAlternative
		if err := json.Unmarshal(data, &payload); err != nil {
			return Result{}, fmt.Errorf("failed to decode document payload: %w", err)
		}
		return p.ProcessAlternativeDocument(ctx, payload), nil
	default:
		return Result{}, ErrInvalidVerificationType
	}
}

// ProcessSelfDeclaration validates the declaration and assigns the
// basic trust tier.
func (p *VerificationProcessor) ProcessSelfDeclaration(ctx context.Context, declaration SelfDeclaration) Result {
	if missing := missingDeclarationFields(declaration); len(missing) > 0 {
		return Result{
			Success:        false,
			Message:        "Please provide more information to help us assist you better.",
			RequiredFields: missing,
		}
	}

	verificationID := newVerificationID("self")
	return Result{
		Success:        true,
		VerificationID: verificationID,
		Method:         MethodSelfDeclaration,
		TrustLevel:     TrustLevelBasic,
		Message:        "Thank you for providing your information. We'll help you access the services you need.",
		Profile: &store.UserProfile{
			Name:               declaration.Name,
			Age:                declaration.Age,
			Category:           categorizeSituation(declaration.Situation),
			VerificationMethod: MethodSelfDeclaration,
			TrustLevel:         TrustLevelBasic,
		},
	}
}

// ProcessCommunityReferral assigns the verified tier when the referrer
// belongs to a known organization, basic otherwise. Always succeeds.
func (p *VerificationProcessor) ProcessCommunityReferral(ctx context.Context, referral CommunityReferral) Result {
	trustLevel := TrustLevelBasic
	if isKnownOrganization(referral.ReferrerOrganization) {
		trustLevel = TrustLevelVerified
	}

	verificationID := newVerificationID("comm")
	return Result{
		Success:        true,
		VerificationID: verificationID,
		Method:         MethodCommunityReferral,
		TrustLevel:     trustLevel,
		Message:        "Thank you for the referral. We'll prioritize assistance based on community recommendation.",
		Profile: &store.UserProfile{
			Name:               referral.UserDetails.Name,
			Category:           categorizeSituation(referral.UserDetails.Situation),
			VerificationMethod: MethodCommunityReferral,
			CommunityReferral:  referral.ReferrerName,
			TrustLevel:         trustLevel,
		},
	}
}

// ProcessVoiceConsent analyzes the consent transcript. The trust tier
// stays verified even for an invalid consent unless the strict policy
// is enabled.
func (p *VerificationProcessor) ProcessVoiceConsent(ctx context.Context, consent VoiceConsent) Result {
	isValid := analyzeConsentText(consent.ConsentText)

	trustLevel := TrustLevelVerified
	if p.config.VoiceConsentStrictTier && !isValid {
		trustLevel = TrustLevelBasic
	}

	message := "Your consent has been recorded. We can now provide personalized assistance."
	if !isValid {
		message = "We need clearer consent to proceed. Let me explain what we're asking for."
	}

	verificationID := newVerificationID("voice")
	return Result{
		Success:        isValid,
		VerificationID: verificationID,
		Method:         MethodVoiceConsent,
		TrustLevel:     trustLevel,
		Message:        message,
		ConsentRecord: &ConsentRecord{
			Type:      consent.ConsentType,
			Timestamp: consent.Timestamp,
			AudioURL:  consent.AudioURL,
			IsValid:   isValid,
		},
	}
}

// ProcessAlternativeDocument checks the document type against the
// whitelist. A physical copy earns the verified tier.
func (p *VerificationProcessor) ProcessAlternativeDocument(ctx context.Context, document DocumentAlternative) Result {
	if !isAcceptableDocument(document.DocumentType) {
		return Result{
			Success:            false,
			Method:             MethodDocumentAlternative,
			TrustLevel:         TrustLevelNone,
			Message:            "This document type is not sufficient. Let's try self-declaration instead.",
			AlternativeMethods: []string{MethodSelfDeclaration},
		}
	}

	trustLevel := TrustLevelBasic
	message := "We can work with the information you've provided."
	if document.HasPhysicalDocument {
		trustLevel = TrustLevelVerified
		message = "Thank you. Your document is acceptable for verification."
	}

	verificationID := newVerificationID("doc")
	return Result{
		Success:        true,
		VerificationID: verificationID,
		Method:         MethodDocumentAlternative,
		TrustLevel:     trustLevel,
		Message:        message,
		AcceptedDocument: &AcceptedDocument{
			Type:        document.DocumentType,
			HasPhysical: document.HasPhysicalDocument,
			TrustLevel:  trustLevel,
		},
	}
}

// GetStatus reports the verification state of a session.
func (p *VerificationProcessor) GetStatus(ctx context.Context, sessionID string) (Status, error) {
	session, err := p.store.GetSessionByID(ctx, sessionID)
	if err != nil {
		return Status{}, err
	}

	profile := session.UserProfile
	if profile.VerificationMethod == "" {
		return Status{Verified: false, TrustLevel: TrustLevelNone}, nil
	}
	trustLevel := profile.TrustLevel
	if trustLevel == "" {
		trustLevel = TrustLevelBasic
	}
	return Status{
		Verified:   true,
		Method:     profile.VerificationMethod,
		TrustLevel: trustLevel,
		VerifiedAt: profile.VerifiedAt,
	}, nil
}

// applyToSession merges the verification's profile fragment into the
// session profile and stamps verifiedAt/verificationId. The merge is
// shallow: new non-empty fields overwrite old ones.
func (p *VerificationProcessor) applyToSession(ctx context.Context, sessionID string, result Result) error {
	session, err := p.store.GetSessionByID(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("failed to load session for verification: %w", err)
	}

	merged := session.UserProfile
	if result.Profile != nil {
		if merged.TrustLevel == TrustLevelVerified && result.Profile.TrustLevel == TrustLevelBasic {
			p.logger.Warn(ctx, "verification downgrades trust tier of session profile")
		}
		mergeProfile(&merged, *result.Profile)
	}

	now := time.Now().UnixMilli()
	merged.VerifiedAt = &now
	merged.VerificationID = result.VerificationID

	if err := p.store.UpdateSessionProfile(ctx, sessionID, merged); err != nil {
		return fmt.Errorf("failed to persist verified profile: %w", err)
	}
	return nil
}

func mergeProfile(dst *store.UserProfile, src store.UserProfile) {
	if src.Name != "" {
		dst.Name = src.Name
	}
	if src.Age != nil {
		dst.Age = src.Age
	}
	if src.Gender != "" {
		dst.Gender = src.Gender
	}
	if src.Category != "" {
		dst.Category = src.Category
	}
	if src.VerificationMethod != "" {
		dst.VerificationMethod = src.VerificationMethod
	}
	if src.CommunityReferral != "" {
		dst.CommunityReferral = src.CommunityReferral
	}
	if src.TrustLevel != "" {
		dst.TrustLevel = src.TrustLevel
	}
}

func missingDeclarationFields(declaration SelfDeclaration) []string {
	var missing []string
	if declaration.Name == "" {
		missing = append(missing, "name")
	}
	if declaration.Situation == "" {
		missing = append(missing, "situation")
	}
	if declaration.NeedsDescription == "" {
		missing = append(missing, "needsDescription")
	}
	if !declaration.ConsentToHelp {
		missing = append(missing, "consentToHelp")
	}
	return missing
}

// categorizeSituation maps a free-text situation onto a fixed category
// set; the first keyword match in table order wins.
func categorizeSituation(situation string) string {
	lower := strings.ToLower(situation)
	for _, row := range situationCategories {
		if strings.Contains(lower, row.keyword) {
			return row.category
		}
	}
	return "general"
}

func isKnownOrganization(organization string) bool {
	if organization == "" {
		return false
	}
	lower := strings.ToLower(organization)
	for _, org := range knownOrganizations {
		if strings.Contains(lower, strings.ToLower(org)) {
			return true
		}
	}
	return false
}

// analyzeConsentText requires at least one affirmative keyword and no
// negative keyword in the transcript.
func analyzeConsentText(consentText string) bool {
	lower := strings.ToLower(consentText)

	hasConsent := false
	for _, keyword := range affirmativeKeywords {
		if strings.Contains(lower, keyword) {
			hasConsent = true
			break
		}
	}
	if !hasConsent {
		return false
	}

	for _, keyword := range negativeKeywords {
		if strings.Contains(lower, keyword) {
			return false
		}
	}
	return true
}

func isAcceptableDocument(documentType string) bool {
	for _, doc := range acceptableDocuments {
		if doc == documentType {
			return true
		}
	}
	return false
}

func newVerificationID(prefix string) string {
	return fmt.Sprintf("%s_%d_%s", prefix, time.Now().UnixMilli(), uuid.NewString()[:8])
}
