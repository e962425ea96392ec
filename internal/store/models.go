package store

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// Session statuses
const (
	SessionStatusActive            = "active"
	SessionStatusCompleted         = "completed"
	SessionStatusTransferred       = "transferred"
	SessionStatusMissedCallPending = "missed_call_pending"
)

// Call types
const (
	CallTypeInbound           = "inbound"
	CallTypeOutbound          = "outbound"
	CallTypeTransfer          = "transfer"
	CallTypeScheduledCallback = "scheduled_callback"
)

// Call statuses
const (
	CallStatusConnected  = "connected"
	CallStatusFailed     = "failed"
	CallStatusBusy       = "busy"
	CallStatusNoAnswer   = "no_answer"
	CallStatusAttempting = "attempting"
	CallStatusScheduled  = "scheduled"
)

// Provider types
const (
	ProviderTypeNGO        = "ngo"
	ProviderTypeGovernment = "government"
	ProviderTypeHelpline   = "helpline"
	ProviderTypeEmergency  = "emergency"
)

// Emergency contact coverage scopes
const (
	CoverageNational = "national"
	CoverageState    = "state"
	CoverageDistrict = "district"
)

// scanJSON unmarshals a JSONB column value into dest. A NULL column
// leaves dest at its zero value.
func scanJSON(dest interface{}, value interface{}) error {
	if value == nil {
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("incompatible type %T for JSONB column", value)
	}
	if len(bytes) == 0 || string(bytes) == "null" {
		return nil
	}
	return json.Unmarshal(bytes, dest)
}

// JSONB is a custom type for free-form JSONB fields
type JSONB map[string]interface{}

// Value implements the driver.Valuer interface for JSONB
func (j JSONB) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

// Scan implements the sql.Scanner interface for JSONB
func (j *JSONB) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}
	result := make(JSONB)
	if err := scanJSON(&result, value); err != nil {
		return err
	}
	*j = result
	return nil
}

// StringArray is a custom type for PostgreSQL text[] arrays
type StringArray []string

// Value implements the driver.Valuer interface for StringArray
func (a StringArray) Value() (driver.Value, error) {
	if a == nil {
		return nil, nil
	}
	if len(a) == 0 {
		return "{}", nil
	}
	// PostgreSQL array format: {item1,item2,item3}
	return "{" + strings.Join(a, ",") + "}", nil
}

// Scan implements the sql.Scanner interface for StringArray
func (a *StringArray) Scan(value interface{}) error {
	if value == nil {
		*a = nil
		return nil
	}

	var str string
	switch v := value.(type) {
	case []byte:
		str = string(v)
	case string:
		str = v
	default:
		return fmt.Errorf("unsupported type for StringArray: %T", value)
	}

	if str == "" || str == "{}" {
		*a = []string{}
		return nil
	}

	str = strings.Trim(str, "{}")
	if str == "" {
		*a = []string{}
		return nil
	}

	*a = strings.Split(str, ",")
	return nil
}

// Contains reports whether the array holds the given element.
func (a StringArray) Contains(s string) bool {
	for _, v := range a {
		if v == s {
			return true
		}
	}
	return false
}

// LocalizedText maps a language code to a translated string. At minimum
// the en and hi entries are populated for curated reference data.
type LocalizedText map[string]string

// Value implements the driver.Valuer interface for LocalizedText
func (t LocalizedText) Value() (driver.Value, error) {
	if t == nil {
		return nil, nil
	}
	return json.Marshal(t)
}

// Scan implements the sql.Scanner interface for LocalizedText
func (t *LocalizedText) Scan(value interface{}) error {
	if value == nil {
		*t = nil
		return nil
	}
	result := make(LocalizedText)
	if err := scanJSON(&result, value); err != nil {
		return err
	}
	*t = result
	return nil
}

// In returns the translation for the language code, falling back to
// Hindi and then English.
func (t LocalizedText) In(language string) string {
	if s, ok := t[language]; ok && s != "" {
		return s
	}
	if s, ok := t["hi"]; ok && s != "" {
		return s
	}
	return t["en"]
}

// Coordinates is a lat/lng pair embedded in location JSONB.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Location describes where a caller or provider is. State and district
// are the matching keys; coordinates are informational only.
type Location struct {
	State       string       `json:"state"`
	District    string       `json:"district"`
	Address     string       `json:"address,omitempty"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
}

func (l Location) Value() (driver.Value, error) {
	if l == (Location{}) {
		return nil, nil
	}
	return json.Marshal(l)
}

func (l *Location) Scan(value interface{}) error {
	*l = Location{}
	return scanJSON(l, value)
}

// IsZero reports whether the location carries no data.
func (l Location) IsZero() bool {
	return l == (Location{})
}

// UserProfile is the per-caller profile embedded in a voice session.
// Verification merges fields into it shallowly.
type UserProfile struct {
	Name               string `json:"name,omitempty"`
	Age                *int   `json:"age,omitempty"`
	Gender             string `json:"gender,omitempty"`
	Category           string `json:"category,omitempty"`
	VerificationMethod string `json:"verificationMethod,omitempty"`
	CommunityReferral  string `json:"communityReferral,omitempty"`
	VerifiedAt         *int64 `json:"verifiedAt,omitempty"`
	VerificationID     string `json:"verificationId,omitempty"`
	TrustLevel         string `json:"trustLevel,omitempty"`
}

func (p UserProfile) Value() (driver.Value, error) {
	if p == (UserProfile{}) {
		return nil, nil
	}
	return json.Marshal(p)
}

func (p *UserProfile) Scan(value interface{}) error {
	*p = UserProfile{}
	return scanJSON(p, value)
}

// ProviderContact holds a provider's contact channels.
type ProviderContact struct {
	Phone         string `json:"phone"`
	WhatsApp      string `json:"whatsapp,omitempty"`
	Email         string `json:"email,omitempty"`
	Website       string `json:"website,omitempty"`
	ContactPerson string `json:"contactPerson,omitempty"`
}

func (c ProviderContact) Value() (driver.Value, error) {
	return json.Marshal(c)
}

func (c *ProviderContact) Scan(value interface{}) error {
	*c = ProviderContact{}
	return scanJSON(c, value)
}

// ProviderAvailability describes when a provider can take calls.
type ProviderAvailability struct {
	Hours         string   `json:"hours"`
	Days          []string `json:"days"`
	Emergency24x7 bool     `json:"emergency24x7"`
}

func (a ProviderAvailability) Value() (driver.Value, error) {
	return json.Marshal(a)
}

func (a *ProviderAvailability) Scan(value interface{}) error {
	*a = ProviderAvailability{}
	return scanJSON(a, value)
}

// ProviderCapacity holds current load against maximum capacity.
// currentLoad <= maxCapacity is curated externally; reads only here.
type ProviderCapacity struct {
	CurrentLoad int    `json:"currentLoad"`
	MaxCapacity int    `json:"maxCapacity"`
	WaitTime    string `json:"waitTime"`
}

func (c ProviderCapacity) Value() (driver.Value, error) {
	return json.Marshal(c)
}

func (c *ProviderCapacity) Scan(value interface{}) error {
	*c = ProviderCapacity{}
	return scanJSON(c, value)
}

// ProviderVerification records who vetted the provider and its rating.
type ProviderVerification struct {
	IsVerified       bool    `json:"isVerified"`
	VerifiedBy       string  `json:"verifiedBy"`
	VerificationDate int64   `json:"verificationDate"`
	Rating           float64 `json:"rating"` // 0-5
}

func (v ProviderVerification) Value() (driver.Value, error) {
	return json.Marshal(v)
}

func (v *ProviderVerification) Scan(value interface{}) error {
	*v = ProviderVerification{}
	return scanJSON(v, value)
}

// ApplicationProcess describes how a caller applies to a scheme.
type ApplicationProcess struct {
	Steps                   []string `json:"steps"`
	DocumentsRequired       []string `json:"documentsRequired"`
	AlternativeVerification []string `json:"alternativeVerification"`
}

func (p ApplicationProcess) Value() (driver.Value, error) {
	return json.Marshal(p)
}

func (p *ApplicationProcess) Scan(value interface{}) error {
	*p = ApplicationProcess{}
	return scanJSON(p, value)
}

// SchemeContact holds helpline and office details for a scheme.
type SchemeContact struct {
	Helpline string         `json:"helpline,omitempty"`
	Website  string         `json:"website,omitempty"`
	Offices  []SchemeOffice `json:"offices,omitempty"`
}

// SchemeOffice is one physical office for a scheme.
type SchemeOffice struct {
	Location string `json:"location"`
	Address  string `json:"address"`
	Phone    string `json:"phone"`
}

func (c SchemeContact) Value() (driver.Value, error) {
	return json.Marshal(c)
}

func (c *SchemeContact) Scan(value interface{}) error {
	*c = SchemeContact{}
	return scanJSON(c, value)
}

// TransferTarget records which provider a call was handed to.
type TransferTarget struct {
	ProviderID    string `json:"providerId"`
	ProviderName  string `json:"providerName"`
	ContactPerson string `json:"contactPerson,omitempty"`
}

func (t TransferTarget) Value() (driver.Value, error) {
	if t == (TransferTarget{}) {
		return nil, nil
	}
	return json.Marshal(t)
}

func (t *TransferTarget) Scan(value interface{}) error {
	*t = TransferTarget{}
	return scanJSON(t, value)
}

// InteractionInput is the caller half of a voice interaction.
type InteractionInput struct {
	AudioURL   string  `json:"audioUrl,omitempty"`
	Transcript string  `json:"transcript"`
	Language   string  `json:"language"`
	Confidence float64 `json:"confidence"`
}

func (i InteractionInput) Value() (driver.Value, error) {
	return json.Marshal(i)
}

func (i *InteractionInput) Scan(value interface{}) error {
	*i = InteractionInput{}
	return scanJSON(i, value)
}

// InteractionEntity is a typed, confidence-scored fragment extracted
// from an utterance.
type InteractionEntity struct {
	Type       string  `json:"type"`
	Value      string  `json:"value"`
	Confidence float64 `json:"confidence"`
}

// InteractionResponse is the system half of a voice interaction.
type InteractionResponse struct {
	Intent       string              `json:"intent"`
	Entities     []InteractionEntity `json:"entities"`
	ResponseText string              `json:"responseText"`
	AudioURL     string              `json:"audioUrl,omitempty"`
	Actions      []string            `json:"actions"`
}

func (r InteractionResponse) Value() (driver.Value, error) {
	return json.Marshal(r)
}

func (r *InteractionResponse) Scan(value interface{}) error {
	*r = InteractionResponse{}
	return scanJSON(r, value)
}
