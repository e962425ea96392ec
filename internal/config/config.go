package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

var ErrEmptyEnvironmentVariable = errors.New("empty environment variable")

// Config holds all application configuration
type Config struct {
	Database     DatabaseConfig
	Services     ServicesConfig
	Telephony    TelephonyConfig
	Redis        RedisConfig
	Localization LocalizationConfig
	Verification VerificationConfig
	Server       ServerConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Username string
	Password string
	Name     string
}

// ServicesConfig holds external service API keys and configuration
type ServicesConfig struct {
	OpenAIAPIKey   string
	GoogleAIAPIKey string
	GoogleTTSKey   string
	IntentProvider string // "openai" or "gemini"
	WebAppURI      string
}

// TelephonyConfig holds Twilio account settings
type TelephonyConfig struct {
	AccountSID   string
	AuthToken    string
	CallerNumber string
	VoiceWebhook string // URL Twilio requests TwiML from on outbound calls
}

// RedisConfig holds the task queue backend settings
type RedisConfig struct {
	Addr string
}

// LocalizationConfig holds language defaults for voice responses
type LocalizationConfig struct {
	DefaultLanguage string
}

// VerificationConfig holds identity verification policy knobs
type VerificationConfig struct {
	// VoiceConsentStrictTier downgrades the trust tier of an invalid
	// voice consent to basic instead of reporting verified.
	VoiceConsentStrictTier bool
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port int
}

// Load reads and validates all required environment variables
func Load() (*Config, error) {
	// Load env.local in non-production environments
	if os.Getenv("GO_ENV") != "production" {
		if err := godotenv.Load("env.local"); err != nil {
			return nil, fmt.Errorf("failed to load env.local: %w", err)
		}
	}

	cfg := &Config{}

	// Database configuration
	var err error
	if cfg.Database.Host, err = requireEnv("DB_HOST"); err != nil {
		return nil, err
	}
	if cfg.Database.Username, err = requireEnv("DB_USERNAME"); err != nil {
		return nil, err
	}
	if cfg.Database.Password, err = requireEnv("DB_PASSWORD"); err != nil {
		return nil, err
	}
	if cfg.Database.Name, err = requireEnv("DB_NAME"); err != nil {
		return nil, err
	}

	// External services
	if cfg.Services.OpenAIAPIKey, err = requireEnv("OPENAI_API_KEY"); err != nil {
		return nil, err
	}
	if cfg.Services.GoogleAIAPIKey, err = requireEnv("GOOGLE_AI_API_KEY"); err != nil {
		return nil, err
	}
	if cfg.Services.GoogleTTSKey, err = requireEnv("GOOGLE_TTS_API_KEY"); err != nil {
		return nil, err
	}
	cfg.Services.IntentProvider = getEnvWithDefault("INTENT_PROVIDER", "openai")
	if cfg.Services.IntentProvider != "openai" && cfg.Services.IntentProvider != "gemini" {
		return nil, fmt.Errorf("unsupported INTENT_PROVIDER %q", cfg.Services.IntentProvider)
	}
	if cfg.Services.WebAppURI, err = requireEnv("WEBAPP_URI"); err != nil {
		return nil, err
	}

	// Telephony configuration
	if cfg.Telephony.AccountSID, err = requireEnv("TWILIO_ACCOUNT_SID"); err != nil {
		return nil, err
	}
	if cfg.Telephony.AuthToken, err = requireEnv("TWILIO_AUTH_TOKEN"); err != nil {
		return nil, err
	}
	if cfg.Telephony.CallerNumber, err = requireEnv("TWILIO_CALLER_NUMBER"); err != nil {
		return nil, err
	}
	if cfg.Telephony.VoiceWebhook, err = requireEnv("TWILIO_VOICE_WEBHOOK"); err != nil {
		return nil, err
	}

	// Task queue configuration
	cfg.Redis.Addr = getEnvWithDefault("REDIS_HOST", "localhost:6379")

	// Localization
	cfg.Localization.DefaultLanguage = getEnvWithDefault("DEFAULT_LANGUAGE", "hi")

	// Verification policy
	cfg.Verification.VoiceConsentStrictTier = getEnvWithDefault("VOICE_CONSENT_STRICT_TIER", "false") == "true"

	// Server configuration
	serverPort, err := requireEnv("SERVER_PORT")
	if err != nil {
		return nil, err
	}
	cfg.Server.Port, err = strconv.Atoi(serverPort)
	if err != nil {
		return nil, fmt.Errorf("failed to parse SERVER_PORT: %w", err)
	}

	return cfg, nil
}

// ConnectionString returns a PostgreSQL connection string
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s",
		c.Username, c.Password, c.Host, c.Name)
}

// requireEnv retrieves an environment variable or returns an error if empty
func requireEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is not set: %w", key, ErrEmptyEnvironmentVariable)
	}
	return value, nil
}

// getEnvWithDefault retrieves an environment variable or returns a default value
func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
