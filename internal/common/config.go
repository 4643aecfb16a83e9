package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Queue    QueueConfig
	AI       AIConfig
	TTS      TTSConfig
	Storage  StorageConfig
	Agent    AgentConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Addr            string
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
}

// QueueConfig bounds the in-process grading queue.
type QueueConfig struct {
	MaxConcurrent int
	MaxQueueSize  int
}

// AIConfig holds grading-provider configuration
type AIConfig struct {
	BaseURL    string
	APIKey     string
	Model      string
	Timeout    time.Duration
	MaxRetries int
	BaseDelay  time.Duration
}

// TTSConfig holds speech-synthesis configuration
type TTSConfig struct {
	BaseURL string
	APIKey  string
	Voice   string
	Timeout time.Duration
}

// StorageConfig holds object-storage configuration
type StorageConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Region    string
	UseSSL    bool
	PublicURL string
}

// AgentConfig holds capture-station agent configuration
type AgentConfig struct {
	ServerURL    string
	DBPath       string
	SpoolDir     string
	BatchSize    int
	SyncInterval time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Server: ServerConfig{
			Addr:            getEnv("HTTP_ADDR", ":8080"),
			RequestTimeout:  getEnvAsDuration("HTTP_REQUEST_TIMEOUT", 60*time.Second),
			ShutdownTimeout: getEnvAsDuration("HTTP_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Queue: QueueConfig{
			// Deliberately low defaults: each in-flight job holds decoded
			// image payloads in memory and one connection to the provider.
			MaxConcurrent: getEnvAsInt("AI_MAX_CONCURRENT", 2),
			MaxQueueSize:  getEnvAsInt("AI_MAX_QUEUE_SIZE", 10),
		},
		AI: AIConfig{
			BaseURL:    getEnv("AI_BASE_URL", "https://generativelanguage.googleapis.com"),
			APIKey:     getEnv("AI_API_KEY", ""),
			Model:      getEnv("AI_MODEL", "gemini-2.5-flash"),
			Timeout:    getEnvAsDuration("AI_TIMEOUT", 120*time.Second),
			MaxRetries: getEnvAsInt("AI_MAX_RETRIES", 3),
			BaseDelay:  getEnvAsDuration("AI_RETRY_BASE_DELAY", 2*time.Second),
		},
		TTS: TTSConfig{
			BaseURL: getEnv("TTS_BASE_URL", ""),
			APIKey:  getEnv("TTS_API_KEY", ""),
			Voice:   getEnv("TTS_VOICE", "en-US-neutral"),
			Timeout: getEnvAsDuration("TTS_TIMEOUT", 60*time.Second),
		},
		Storage: StorageConfig{
			Endpoint:  getEnv("STORAGE_ENDPOINT", ""),
			AccessKey: getEnv("STORAGE_ACCESS_KEY", ""),
			SecretKey: getEnv("STORAGE_SECRET_KEY", ""),
			Bucket:    getEnv("STORAGE_BUCKET", "papertalk-submissions"),
			Region:    getEnv("STORAGE_REGION", "us-east-1"),
			UseSSL:    getEnvAsBool("STORAGE_USE_SSL", true),
			PublicURL: getEnv("STORAGE_PUBLIC_URL", ""),
		},
		Agent: AgentConfig{
			ServerURL:    getEnv("PAPERTALK_SERVER_URL", "http://localhost:8080"),
			DBPath:       getEnv("AGENT_DB_PATH", "papertalk-agent.db"),
			SpoolDir:     getEnv("AGENT_SPOOL_DIR", ""),
			BatchSize:    getEnvAsInt("SUBMISSION_BATCH_SIZE", 5),
			SyncInterval: getEnvAsDuration("AGENT_SYNC_INTERVAL", 30*time.Second),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
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

// Validate validates the loaded configuration for the server daemon.
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if c.AI.APIKey == "" {
		return NewAppError("CONFIG_ERROR", "AI_API_KEY is required", ErrInvalidInput)
	}
	if c.Server.Addr == "" {
		return NewAppError("CONFIG_ERROR", "HTTP_ADDR is required", ErrInvalidInput)
	}
	if c.Queue.MaxConcurrent <= 0 || c.Queue.MaxQueueSize <= 0 {
		return NewAppError("CONFIG_ERROR", "queue bounds must be positive", ErrInvalidInput)
	}
	return nil
}
