package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server ServerConfig `json:"server"`

	// MySQL configuration
	Database DatabaseConfig `json:"database"`

	// MongoDB / GridFS configuration (attachments, post media)
	MongoDB MongoConfig `json:"mongodb"`

	// Email verification (OTP) configuration
	Verification VerificationConfig `json:"verification"`

	// Dream-bottle matching configuration
	Matching MatchingConfig `json:"matching"`

	// Notification dispatch configuration
	Notification NotificationConfig `json:"notification"`

	// AI assistant configuration
	Assistant AssistantConfig `json:"assistant"`

	// Logging configuration
	Logging LoggingConfig `json:"logging"`
}

// ServerConfig contains the listen ports of each service binary
type ServerConfig struct {
	ChatServicePort  string `json:"chat_service_port"`
	MatchServicePort string `json:"match_service_port"`
	UserServicePort  string `json:"user_service_port"`
	MediaServicePort string `json:"media_service_port"`
	MediaBaseURL     string `json:"media_base_url"`
	Environment      string `json:"environment"` // development, staging, production
}

// DatabaseConfig contains MySQL connection configuration
type DatabaseConfig struct {
	Host         string `json:"host"`
	Port         string `json:"port"`
	Username     string `json:"username"`
	Password     string `json:"password"`
	DatabaseName string `json:"database_name"`
	MaxOpenConns int    `json:"max_open_conns"`
	MaxIdleConns int    `json:"max_idle_conns"`
}

// MongoConfig contains MongoDB connection configuration
type MongoConfig struct {
	Host     string `json:"host"`
	Port     string `json:"port"`
	Username string `json:"username"`
	Password string `json:"password"`
	Database string `json:"database"`
}

// VerificationConfig controls the e-mail OTP flow and the domain allow-list.
// AllowedDomains holds the e-mail domains accepted at registration
// (hospital / medical-school domains).
type VerificationConfig struct {
	AllowedDomains []string      `json:"allowed_domains"`
	CodeTTL        time.Duration `json:"code_ttl"`
	FromEmail      string        `json:"from_email"`
	Enabled        bool          `json:"enabled"`
}

// MatchingConfig controls the dream-bottle state machine timings.
type MatchingConfig struct {
	WaitWindow    time.Duration `json:"wait_window"`    // delay before the single match check
	RecencyWindow time.Duration `json:"recency_window"` // how fresh a candidate bottle must be
}

// NotificationConfig contains notification dispatch configuration
type NotificationConfig struct {
	Workers           int  `json:"workers"`
	ChannelBufferSize int  `json:"channel_buffer_size"`
	Enabled           bool `json:"enabled"`
}

// AssistantConfig selects the assistant backend. When Provider is "genai"
// a real model client is wired; anything else gets the simulated gateway.
type AssistantConfig struct {
	Provider string `json:"provider"`
	Model    string `json:"model"`
	APIKey   string `json:"-"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `json:"level"`  // debug, info, warn, error
	Format string `json:"format"` // json, console
}

// LoadConfig reads .env if present, then builds the config from environment
// variables with development defaults.
func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			ChatServicePort:  getEnv("CHAT_SERVICE_PORT", "7003"),
			MatchServicePort: getEnv("MATCH_SERVICE_PORT", "7005"),
			UserServicePort:  getEnv("USER_SERVICE_PORT", "7001"),
			MediaServicePort: getEnv("MEDIA_SERVICE_PORT", "8080"),
			Environment:      getEnv("ENVIRONMENT", "development"),
		},
		Database: DatabaseConfig{
			Host:         getEnv("MYSQL_HOST", "localhost"),
			Port:         getEnv("MYSQL_PORT", "3306"),
			Username:     getEnv("MYSQL_USERNAME", "medlink"),
			Password:     getEnv("MYSQL_PASSWORD", "medlink123"),
			DatabaseName: getEnv("MYSQL_DATABASE", "medlink"),
			MaxOpenConns: getEnvInt("MYSQL_MAX_OPEN_CONNS", 25),
			MaxIdleConns: getEnvInt("MYSQL_MAX_IDLE_CONNS", 5),
		},
		MongoDB: MongoConfig{
			Host:     getEnv("MONGO_HOST", "localhost"),
			Port:     getEnv("MONGO_PORT", "27017"),
			Username: getEnv("MONGO_USERNAME", "admin"),
			Password: getEnv("MONGO_PASSWORD", "admin123"),
			Database: getEnv("MONGO_DATABASE", "medlink"),
		},
		Verification: VerificationConfig{
			AllowedDomains: splitList(getEnv("ALLOWED_EMAIL_DOMAINS", "hospital.org,medschool.edu,clinic.net")),
			CodeTTL:        getEnvDuration("VERIFICATION_CODE_TTL", 10*time.Minute),
			FromEmail:      getEnv("VERIFICATION_FROM_EMAIL", "noreply@medlink.local"),
			Enabled:        getEnv("VERIFICATION_ENABLED", "true") == "true",
		},
		Matching: MatchingConfig{
			WaitWindow:    getEnvDuration("BOTTLE_WAIT_WINDOW", 15*time.Second),
			RecencyWindow: getEnvDuration("BOTTLE_RECENCY_WINDOW", 5*time.Second),
		},
		Notification: NotificationConfig{
			Workers:           getEnvInt("NOTIF_WORKERS", 5),
			ChannelBufferSize: getEnvInt("NOTIF_BUFFER", 1000),
			Enabled:           getEnv("NOTIF_ENABLED", "true") == "true",
		},
		Assistant: AssistantConfig{
			Provider: getEnv("ASSISTANT_PROVIDER", "simulated"),
			Model:    getEnv("ASSISTANT_MODEL", "gemini-2.0-flash"),
			APIKey:   getEnv("GEMINI_API_KEY", ""),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "console"),
		},
	}

	cfg.Server.MediaBaseURL = getEnv("MEDIA_BASE_URL",
		fmt.Sprintf("http://localhost:%s/media", cfg.Server.MediaServicePort))

	return cfg
}

// DSN builds the MySQL connection string.
func (cfg *Config) DSN() string {
	if cfg.Database.Host == "" {
		cfg.Database.Host = "localhost"
	}
	if cfg.Database.Port == "" {
		cfg.Database.Port = "3306"
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.Database.Username,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DatabaseName,
	)
}

// GetMongoURI builds the MongoDB connection string.
func (cfg *Config) GetMongoURI() string {
	if cfg.MongoDB.Username == "" {
		return fmt.Sprintf("mongodb://%s:%s", cfg.MongoDB.Host, cfg.MongoDB.Port)
	}
	return fmt.Sprintf("mongodb://%s:%s@%s:%s",
		cfg.MongoDB.Username,
		cfg.MongoDB.Password,
		cfg.MongoDB.Host,
		cfg.MongoDB.Port,
	)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(strings.ToLower(p))
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
