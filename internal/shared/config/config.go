package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the storefront
type Config struct {
	// Server configuration
	Port           string
	GinMode        string
	APIVersion     string
	APIPrefix      string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	MaxHeaderBytes int

	// Redis configuration (optional: caching + rate limiting only)
	Redis RedisConfig

	// JWT configuration (stub login tokens)
	JWT JWTConfig

	// Rate limiting
	RateLimit RateLimitConfig

	// Mock data provider latencies
	Provider ProviderConfig

	// Booking flow
	Booking BookingConfig

	// Stub login
	Auth AuthConfig

	// Ticket QR rendering
	QR QRConfig

	// Logging
	LogLevel string
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     string
	Password string
	DB       int
	Addr     string

	// TTL for cached catalog reads
	CacheTTL time.Duration
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	JWTExpiresIn     time.Duration
	RefreshExpiresIn time.Duration
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	Enabled         bool          `json:"enabled"`
	WindowDuration  time.Duration `json:"window_duration"`
	DefaultRequests int           `json:"default_requests"`
	PublicRequests  int           `json:"public_requests"`
	AuthRequests    int           `json:"auth_requests"`
	BookingRequests int           `json:"booking_requests"`
	HealthRequests  int           `json:"health_requests"`
}

// ProviderConfig holds the artificial latencies of the mock data services.
// The mock provider stands in for real network calls; tests set these to zero.
type ProviderConfig struct {
	EventListDelay   time.Duration
	EventDetailDelay time.Duration
	LayoutDelay      time.Duration
	NewsListDelay    time.Duration
	NewsDetailDelay  time.Duration

	// Seed for the deterministic seat grid generator
	LayoutSeed int64
}

// BookingConfig holds booking flow configuration
type BookingConfig struct {
	MaxSeatsPerBooking int
	PaymentDelay       time.Duration
	SessionTTL         time.Duration
}

// AuthConfig holds the stub login configuration
type AuthConfig struct {
	LoginDelay time.Duration
}

// QRConfig holds the third-party QR rendering endpoint configuration
type QRConfig struct {
	BaseURL string
	Size    string
}

// Load loads configuration from environment variables
func Load() *Config {
	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		GinMode:        getEnv("GIN_MODE", "debug"),
		APIVersion:     getEnv("API_VERSION", "v1"),
		APIPrefix:      getEnv("API_PREFIX", "/api"),
		ReadTimeout:    getEnvAsDuration("READ_TIMEOUT", 15*time.Second),
		WriteTimeout:   getEnvAsDuration("WRITE_TIMEOUT", 15*time.Second),
		IdleTimeout:    getEnvAsDuration("IDLE_TIMEOUT", 60*time.Second),
		MaxHeaderBytes: getEnvAsInt("MAX_HEADER_BYTES", 1<<20),

		Redis: RedisConfig{
			Enabled:  getEnvAsBool("REDIS_ENABLED", false),
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
			CacheTTL: getEnvAsDuration("REDIS_CACHE_TTL", 5*time.Minute),
		},

		JWT: JWTConfig{
			Secret:           getEnv("JWT_SECRET", "dev-secret-change-me"),
			JWTExpiresIn:     getEnvAsDuration("JWT_EXPIRES_IN", 15*time.Minute),
			RefreshExpiresIn: getEnvAsDuration("JWT_REFRESH_EXPIRES_IN", 7*24*time.Hour),
		},

		RateLimit: RateLimitConfig{
			Enabled:         getEnvAsBool("RATE_LIMIT_ENABLED", false),
			WindowDuration:  getEnvAsDuration("RATE_LIMIT_WINDOW", time.Minute),
			DefaultRequests: getEnvAsInt("RATE_LIMIT_DEFAULT", 60),
			PublicRequests:  getEnvAsInt("RATE_LIMIT_PUBLIC", 120),
			AuthRequests:    getEnvAsInt("RATE_LIMIT_AUTH", 10),
			BookingRequests: getEnvAsInt("RATE_LIMIT_BOOKING", 30),
			HealthRequests:  getEnvAsInt("RATE_LIMIT_HEALTH", 300),
		},

		// Defaults mirror the latencies of the original mock services
		Provider: ProviderConfig{
			EventListDelay:   getEnvAsDuration("MOCK_EVENT_LIST_DELAY", 500*time.Millisecond),
			EventDetailDelay: getEnvAsDuration("MOCK_EVENT_DETAIL_DELAY", 300*time.Millisecond),
			LayoutDelay:      getEnvAsDuration("MOCK_LAYOUT_DELAY", 400*time.Millisecond),
			NewsListDelay:    getEnvAsDuration("MOCK_NEWS_LIST_DELAY", 200*time.Millisecond),
			NewsDetailDelay:  getEnvAsDuration("MOCK_NEWS_DETAIL_DELAY", 100*time.Millisecond),
			LayoutSeed:       getEnvAsInt64("MOCK_LAYOUT_SEED", 20240915),
		},

		Booking: BookingConfig{
			MaxSeatsPerBooking: getEnvAsInt("MAX_SEATS_PER_BOOKING", 10),
			PaymentDelay:       getEnvAsDuration("PAYMENT_SIM_DELAY", 2*time.Second),
			SessionTTL:         getEnvAsDuration("BOOKING_SESSION_TTL", 30*time.Minute),
		},

		Auth: AuthConfig{
			LoginDelay: getEnvAsDuration("LOGIN_SIM_DELAY", 1500*time.Millisecond),
		},

		QR: QRConfig{
			BaseURL: getEnv("QR_BASE_URL", "https://api.qrserver.com/v1/create-qr-code/"),
			Size:    getEnv("QR_SIZE", "200x200"),
		},

		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	cfg.Redis.Addr = cfg.Redis.Host + ":" + cfg.Redis.Port

	return cfg
}

// GetServerAddress returns the full server address
func (c *Config) GetServerAddress() string {
	return ":" + c.Port
}

// GetAPIBasePath returns the versioned API base path
func (c *Config) GetAPIBasePath() string {
	return c.APIPrefix + "/" + c.APIVersion
}

// Helper functions for reading environment variables

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
