package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Mail     MailConfig
	Gemini   GeminiConfig
	Qdrant   QdrantConfig
	Worker   WorkerConfig
	Auth     AuthConfig
	Stats    StatsConfig
}

type ServerConfig struct {
	Port     string
	Env      string
	LogLevel string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// MailConfig selects the transport for tier result emails. Provider is
// "smtp", "ses" or empty; empty means SMTP when its credentials are set.
type MailConfig struct {
	Provider     string
	From         string
	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	SESRegion    string
}

type GeminiConfig struct {
	APIKey     string
	Model      string
	EmbedModel string
}

type QdrantConfig struct {
	URL        string
	APIKey     string
	Collection string
	VectorSize uint64
}

type WorkerConfig struct {
	Concurrency      int
	QueueSize        int
	PollInterval     time.Duration
	StaleAfter       time.Duration
	RetryMaxAttempts int
}

type AuthConfig struct {
	SessionTTL    time.Duration
	SignupEnabled bool
}

type StatsConfig struct {
	CacheTTL time.Duration
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using default values.")
	}

	return &Config{
		Server: ServerConfig{
			Port:     getEnv("PORT", "3000"),
			Env:      getEnv("ENV", "development"),
			LogLevel: getEnv("LOG_LEVEL", "info"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "desishub_assessment"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Mail: MailConfig{
			Provider:     getEnv("MAIL_PROVIDER", ""),
			From:         getEnv("SMTP_FROM", "Desishub <no-reply@desishub.local>"),
			SMTPHost:     getEnv("SMTP_HOST", ""),
			SMTPPort:     getEnvAsInt("SMTP_PORT", 587),
			SMTPUser:     getEnv("SMTP_USER", ""),
			SMTPPassword: getEnv("SMTP_PASS", ""),
			SESRegion:    getEnv("SES_REGION", "us-east-1"),
		},
		Gemini: GeminiConfig{
			APIKey:     getEnv("GEMINI_API_KEY", ""),
			Model:      getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
			EmbedModel: getEnv("GEMINI_EMBED_MODEL", "text-embedding-004"),
		},
		Qdrant: QdrantConfig{
			URL:        getEnv("QDRANT_URL", ""),
			APIKey:     getEnv("QDRANT_API_KEY", ""),
			Collection: getEnv("QDRANT_COLLECTION", "candidate_profiles"),
			VectorSize: uint64(getEnvAsInt("QDRANT_VECTOR_SIZE", 768)),
		},
		Worker: WorkerConfig{
			Concurrency:      getEnvAsInt("WORKER_CONCURRENCY", 3),
			QueueSize:        getEnvAsInt("WORKER_QUEUE_SIZE", 100),
			PollInterval:     getEnvAsDuration("WORKER_POLL_INTERVAL", "10s"),
			StaleAfter:       getEnvAsDuration("WORKER_STALE_AFTER", "15m"),
			RetryMaxAttempts: getEnvAsInt("RETRY_MAX_ATTEMPTS", 3),
		},
		Auth: AuthConfig{
			SessionTTL:    getEnvAsDuration("SESSION_TTL", "24h"),
			SignupEnabled: getEnvAsBool("ADMIN_SIGNUP_ENABLED", true),
		},
		Stats: StatsConfig{
			CacheTTL: getEnvAsDuration("STATS_CACHE_TTL", "60s"),
		},
	}
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}

// IsProduction reports whether the service runs with production defaults.
func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
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

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}
