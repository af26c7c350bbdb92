package config

import (
	"os"
	"strconv"
	"time"

	usecasecontract "github.com/mikiasgoitom/HomeStay/internal/usecase/contract"
)

// Config holds application configuration values.
type Config struct {
	Port                     string
	AppBaseURL               string
	JWTSecret                string
	MongoURI                 string
	MongoDBName              string
	RedisURL                 string
	RevocationStore          string
	LogLevel                 string
	LogFormat                string
	LogFile                  string
	RateLimitPerSecond       float64
	SessionTokenTTL          time.Duration
	ReviewTokenTTL           time.Duration
	BookingSurchargeFactor   float64
	EnforceGuestCapacity     bool
	IssueReviewLinkOnBooking bool
	NotificationTimeout      time.Duration
	AdminUsername            string
	AdminEmail               string
	AdminPassword            string
	GoogleClientID           string
	GoogleClientSecret       string
	Email                    EmailConfig
}

// EmailConfig holds the SMTP settings of the notification sink.
type EmailConfig struct {
	Host        string
	Port        int
	Username    string
	AppPassword string
	From        string
}

// NewConfig creates a new Config instance, loading values from environment variables.
func NewConfig() *Config {
	return &Config{
		Port:                     getEnv("PORT", "8080"),
		AppBaseURL:               getEnv("APP_BASE_URL", "http://localhost:8080"),
		JWTSecret:                getEnv("JWT_SECRET", ""),
		MongoURI:                 getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDBName:              getEnv("MONGODB_DB_NAME", "homestay"),
		RedisURL:                 getEnv("REDIS_URL", ""),
		RevocationStore:          getEnv("REVOCATION_STORE", "memory"),
		LogLevel:                 getEnv("LOG_LEVEL", "info"),
		LogFormat:                getEnv("LOG_FORMAT", "text"),
		LogFile:                  getEnv("LOG_FILE", ""),
		RateLimitPerSecond:       getEnvAsFloat("RATE_LIMIT_PER_SECOND", 10),
		SessionTokenTTL:          time.Minute * time.Duration(getEnvAsInt("SESSION_TOKEN_TTL_MINUTES", 60)),
		ReviewTokenTTL:           time.Hour * time.Duration(getEnvAsInt("REVIEW_TOKEN_TTL_HOURS", 168)), // 7 days
		BookingSurchargeFactor:   getEnvAsFloat("BOOKING_SURCHARGE_FACTOR", 1.04),
		EnforceGuestCapacity:     getEnvAsBool("ENFORCE_GUEST_CAPACITY", true),
		IssueReviewLinkOnBooking: getEnvAsBool("ISSUE_REVIEW_LINK_ON_BOOKING", true),
		NotificationTimeout:      time.Second * time.Duration(getEnvAsInt("NOTIFICATION_TIMEOUT_SECONDS", 10)),
		AdminUsername:            getEnv("ADMIN_USERNAME", "admin"),
		AdminEmail:               getEnv("ADMIN_EMAIL", "admin@homestay.local"),
		AdminPassword:            getEnv("ADMIN_PASSWORD", ""),
		GoogleClientID:           getEnv("GOOGLE_CLIENT_ID", ""),
		GoogleClientSecret:       getEnv("GOOGLE_CLIENT_SECRET", ""),
		Email: EmailConfig{
			Host:        getEnv("EMAIL_HOST", "smtp.gmail.com"),
			Port:        getEnvAsInt("EMAIL_PORT", 587),
			Username:    getEnv("EMAIL_USERNAME", ""),
			AppPassword: getEnv("EMAIL_APP_PASSWORD", ""),
			From:        getEnv("EMAIL_FROM", ""),
		},
	}
}

var _ usecasecontract.IConfigProvider = (*Config)(nil)

// GetAppBaseURL returns the base URL of the application.
func (c *Config) GetAppBaseURL() string {
	return c.AppBaseURL
}

// GetSessionTokenTTL returns how long session tokens stay valid.
func (c *Config) GetSessionTokenTTL() time.Duration {
	return c.SessionTokenTTL
}

// GetReviewTokenTTL returns how long review links stay valid.
func (c *Config) GetReviewTokenTTL() time.Duration {
	return c.ReviewTokenTTL
}

func (c *Config) GetBookingSurchargeFactor() float64 {
	if c.BookingSurchargeFactor <= 0 {
		return 1
	}
	return c.BookingSurchargeFactor
}

func (c *Config) GetEnforceGuestCapacity() bool {
	return c.EnforceGuestCapacity
}

func (c *Config) GetIssueReviewLinkOnBooking() bool {
	return c.IssueReviewLinkOnBooking
}

// GetNotificationTimeout bounds a single email dispatch.
func (c *Config) GetNotificationTimeout() time.Duration {
	if c.NotificationTimeout <= 0 {
		return 10 * time.Second
	}
	return c.NotificationTimeout
}

func (c *Config) GetInitialAdmin() (string, string, string) {
	return c.AdminUsername, c.AdminEmail, c.AdminPassword
}

func (c *Config) GetGoogleClientID() string {
	return c.GoogleClientID
}

func (c *Config) GetGoogleClientSecret() string {
	return c.GoogleClientSecret
}

// Helper function to get an environment variable or return a default value.
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as an integer or return a default value.
func getEnvAsInt(name string, fallback int) int {
	valueStr := getEnv(name, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

func getEnvAsFloat(name string, fallback float64) float64 {
	valueStr := getEnv(name, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as a boolean or return a default value.
func getEnvAsBool(name string, fallback bool) bool {
	valStr := getEnv(name, "")
	if val, err := strconv.ParseBool(valStr); err == nil {
		return val
	}
	return fallback
}
