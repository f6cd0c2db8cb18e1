package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration
type Config struct {
	Port          string
	Env           string
	PublicBaseURL string
	LogLevel      string
	LogFormat     string

	DatabaseURL string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisTLS      bool
	SessionTTL    time.Duration

	// Reservio booking API
	ReservioBaseURL    string
	ReservioAPIKey     string
	ReservioBusinessID string
	// ReservioResourceID optionally pins availability queries to one
	// staff resource of the business.
	ReservioResourceID string
	ReservioTimeout    time.Duration

	// VenuesJSON optionally lists additional bookable venues as a JSON
	// array of {"id","name"} objects. When empty the single business
	// identified by ReservioBusinessID is used.
	VenuesJSON string

	// BusinessHours is the human-readable opening hours shown in
	// business-info replies; Reservio does not expose them.
	BusinessHours string

	// TwilioAuthToken validates webhook signatures. Empty disables
	// validation (local development only).
	TwilioAuthToken string

	// Conversation behavior
	DefaultLanguage string
	Timezone        string
	SlotPageSize    int
	NearbyWindow    time.Duration

	// Gemini LLM
	GeminiAPIKey string
	GeminiModel  string
	LLMTimeout   time.Duration

	// SendGrid email notifications
	SendGridAPIKey    string
	SendGridFromEmail string
	SendGridFromName  string
	NotifyEmail       string
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Port:          getEnv("PORT", "8080"),
		Env:           getEnv("ENV", "development"),
		PublicBaseURL: getEnv("PUBLIC_BASE_URL", ""),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFormat:     strings.ToLower(strings.TrimSpace(getEnv("LOG_FORMAT", "json"))),

		DatabaseURL: getEnv("DATABASE_URL", ""),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvAsInt("REDIS_DB", 0),
		RedisTLS:      getEnvAsBool("REDIS_TLS", false),
		SessionTTL:    getEnvAsDuration("SESSION_TTL", 30*time.Minute),

		ReservioBaseURL:    getEnv("RESERVIO_BASE_URL", "https://api.reservio.com/v2"),
		ReservioAPIKey:     getEnv("RESERVIO_API_KEY", ""),
		ReservioBusinessID: getEnv("RESERVIO_BUSINESS_ID", ""),
		ReservioResourceID: getEnv("RESERVIO_RESOURCE_ID", ""),
		ReservioTimeout:    getEnvAsDuration("RESERVIO_TIMEOUT", 15*time.Second),

		VenuesJSON: getEnv("VENUES_JSON", ""),

		BusinessHours:   getEnv("BUSINESS_HOURS", ""),
		TwilioAuthToken: getEnv("TWILIO_AUTH_TOKEN", ""),

		DefaultLanguage: getEnv("DEFAULT_LANGUAGE", "en"),
		Timezone:        getEnv("BOOKING_TIMEZONE", "Europe/Prague"),
		SlotPageSize:    getEnvAsInt("SLOT_PAGE_SIZE", 10),
		NearbyWindow:    getEnvAsDuration("NEARBY_SLOT_WINDOW", 90*time.Minute),

		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		LLMTimeout:   getEnvAsDuration("LLM_TIMEOUT", 10*time.Second),

		SendGridAPIKey:    getEnv("SENDGRID_API_KEY", ""),
		SendGridFromEmail: getEnv("SENDGRID_FROM_EMAIL", ""),
		SendGridFromName:  getEnv("SENDGRID_FROM_NAME", "Salon Booking"),
		NotifyEmail:       getEnv("NOTIFY_EMAIL", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}
