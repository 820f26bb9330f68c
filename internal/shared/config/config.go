package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Mail drivers
const (
	MailDriverSMTP = "smtp"
	MailDriverLog  = "log"
)

// SMTP security modes
const (
	SMTPSecuritySTARTTLS = "starttls"
	SMTPSecurityTLS      = "tls"
	SMTPSecurityNone     = "none"
)

// ErrInvalid is returned when a configuration value is present but unusable.
var ErrInvalid = errors.New("invalid configuration")

// MissingError lists required environment variables that were not set.
type MissingError struct {
	Keys []string
}

func (e *MissingError) Error() string {
	return "missing required environment variables: " + strings.Join(e.Keys, ", ")
}

// Config holds all configuration for our application
type Config struct {
	// Server configuration
	Port           string
	GinMode        string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	MaxHeaderBytes int

	// Logging
	LogLevel string

	Mail      MailConfig
	Business  BusinessConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
}

// MailConfig holds the sender account and relay settings
type MailConfig struct {
	Driver     string
	Sender     string
	Password   string
	AdminEmail string
	SMTPHost   string
	SMTPPort   int
	Security   string
	Timeout    time.Duration
}

// BusinessConfig holds the contact details printed in every email
type BusinessConfig struct {
	Name    string
	Website string
	Phone   string
	Email   string
}

// RedisConfig holds Redis configuration. An empty Addr disables Redis.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	Enabled         bool          `json:"enabled"`
	WindowDuration  time.Duration `json:"window_duration"`
	BookingRequests int           `json:"booking_requests"`
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		Port:           getEnv("PORT", "5000"),
		GinMode:        getEnv("GIN_MODE", "debug"),
		ReadTimeout:    getDurationEnv("READ_TIMEOUT", 15*time.Second),
		WriteTimeout:   getDurationEnv("WRITE_TIMEOUT", 30*time.Second),
		IdleTimeout:    getDurationEnv("IDLE_TIMEOUT", 60*time.Second),
		MaxHeaderBytes: getIntEnv("MAX_HEADER_BYTES", 1<<20), // 1 MB

		LogLevel: getEnv("LOG_LEVEL", "info"),

		Mail: MailConfig{
			Driver:     strings.ToLower(getEnv("MAIL_DRIVER", MailDriverSMTP)),
			Sender:     os.Getenv("EMAIL"),
			Password:   os.Getenv("EMAIL_PASSWORD"),
			AdminEmail: os.Getenv("ADMIN_EMAIL"),
			SMTPHost:   getEnv("SMTP_HOST", "smtp.gmail.com"),
			SMTPPort:   getIntEnv("SMTP_PORT", 587),
			Security:   strings.ToLower(getEnv("SMTP_SECURITY", SMTPSecuritySTARTTLS)),
			Timeout:    getDurationEnv("SMTP_TIMEOUT", 30*time.Second),
		},

		Business: BusinessConfig{
			Name:    getEnv("BUSINESS_NAME", "Anjani Catering Services"),
			Website: getEnv("BUSINESS_WEBSITE", "https://anjanicateringservices.netlify.app/"),
			Phone:   getEnv("BUSINESS_PHONE", "+91-9752973526"),
			Email:   getEnv("BUSINESS_EMAIL", "akashraikwar763@gmail.com"),
		},

		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getIntEnv("REDIS_DB", 0),
		},

		RateLimit: RateLimitConfig{
			Enabled:         getBoolEnv("RATE_LIMIT_ENABLED", false),
			WindowDuration:  getDurationEnv("RATE_LIMIT_WINDOW_DURATION", time.Minute),
			BookingRequests: getIntEnv("RATE_LIMIT_BOOKING_REQUESTS", 5),
		},
	}
}

// Validate reports missing or unusable settings. The server must not start
// when it returns an error.
func (c *Config) Validate() error {
	var missing []string
	if c.Mail.Sender == "" {
		missing = append(missing, "EMAIL")
	}
	if c.Mail.Password == "" {
		missing = append(missing, "EMAIL_PASSWORD")
	}
	if c.Mail.AdminEmail == "" {
		missing = append(missing, "ADMIN_EMAIL")
	}
	if len(missing) > 0 {
		return &MissingError{Keys: missing}
	}

	switch c.Mail.Driver {
	case MailDriverSMTP, MailDriverLog:
	default:
		return fmt.Errorf("%w: MAIL_DRIVER %q", ErrInvalid, c.Mail.Driver)
	}

	switch c.Mail.Security {
	case SMTPSecuritySTARTTLS, SMTPSecurityTLS, SMTPSecurityNone:
	default:
		return fmt.Errorf("%w: SMTP_SECURITY %q", ErrInvalid, c.Mail.Security)
	}

	if c.Mail.SMTPPort <= 0 || c.Mail.SMTPPort > 65535 {
		return fmt.Errorf("%w: SMTP_PORT must be between 1 and 65535", ErrInvalid)
	}

	if c.RateLimit.Enabled {
		if c.Redis.Addr == "" {
			return fmt.Errorf("%w: RATE_LIMIT_ENABLED requires REDIS_ADDR", ErrInvalid)
		}
		if c.RateLimit.BookingRequests <= 0 || c.RateLimit.WindowDuration < time.Second {
			return fmt.Errorf("%w: rate limit window must be at least 1s with a positive request budget", ErrInvalid)
		}
	}

	return nil
}

// getEnv gets an environment variable with a fallback value
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// getIntEnv gets an integer environment variable with a fallback value
func getIntEnv(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return fallback
}

// getDurationEnv gets a duration environment variable with a fallback value
func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return fallback
}

// getBoolEnv gets a boolean environment variable with a fallback value
func getBoolEnv(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return fallback
}

// IsProduction returns true if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.GinMode == "release"
}

// GetServerAddress returns the full server address
func (c *Config) GetServerAddress() string {
	return ":" + c.Port
}

// SMTPAddress returns host:port of the mail relay
func (c *Config) SMTPAddress() string {
	return c.Mail.SMTPHost + ":" + strconv.Itoa(c.Mail.SMTPPort)
}
