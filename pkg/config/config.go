package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration
type Config struct {
	Server     ServerConfig
	Paths      PathsConfig
	Media      MediaConfig
	Recognizer RecognizerConfig
	Translator TranslatorConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	Storage    StorageConfig
	Events     EventsConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string        `envconfig:"PORT" default:"8001"`
	Host            string        `envconfig:"HOST" default:"0.0.0.0"`
	Environment     string        `envconfig:"ENVIRONMENT" default:"development"`
	LogLevel        string        `envconfig:"LOG_LEVEL" default:"info"`
	AllowedOrigins  []string      `envconfig:"ALLOWED_ORIGINS" default:"*"`
	ShutdownTimeout int           `envconfig:"SHUTDOWN_TIMEOUT" default:"10"`
	MaxUploadSize   string        `envconfig:"MAX_UPLOAD_SIZE" default:"2G"`
	ProcessTimeout  time.Duration `envconfig:"PROCESS_TIMEOUT" default:"30m"`
}

// PathsConfig holds the local directories used by the pipeline
type PathsConfig struct {
	UploadDir string `envconfig:"UPLOAD_DIR" default:"uploads"`
	OutputDir string `envconfig:"OUTPUT_DIR" default:"outputs"`
	// WorkDir holds temporary audio files; defaults to UploadDir.
	WorkDir string `envconfig:"WORK_DIR"`
}

// MediaConfig holds external media tool settings
type MediaConfig struct {
	FFmpegBinary string `envconfig:"FFMPEG_BINARY" default:"ffmpeg"`
}

// RecognizerConfig selects and configures the speech recognizer
type RecognizerConfig struct {
	Provider       string        `envconfig:"RECOGNIZER" default:"whisper"`
	MaxConcurrent  int           `envconfig:"MAX_CONCURRENT_TRANSCRIPTIONS" default:"2"`
	WhisperBinary  string        `envconfig:"WHISPER_BINARY" default:"whisper"`
	WhisperModel   string        `envconfig:"WHISPER_MODEL" default:"base"`
	AssemblyAPIKey string        `envconfig:"ASSEMBLYAI_API_KEY"`
	AssemblyURL    string        `envconfig:"ASSEMBLYAI_BASE_URL"`
	PollInterval   time.Duration `envconfig:"ASSEMBLYAI_POLL_INTERVAL" default:"2s"`
	PollMaxWait    time.Duration `envconfig:"ASSEMBLYAI_POLL_MAX_WAIT" default:"20m"`
}

// TranslatorConfig selects and configures the segment translator
type TranslatorConfig struct {
	// Provider defaults to groq when GROQ_API_KEY is set, otherwise none.
	Provider      string        `envconfig:"TRANSLATOR"`
	Timeout       time.Duration `envconfig:"TRANSLATE_TIMEOUT" default:"30s"`
	GroqAPIKey    string        `envconfig:"GROQ_API_KEY"`
	GroqBaseURL   string        `envconfig:"GROQ_API_URL" default:"https://api.groq.com"`
	GroqModel     string        `envconfig:"GROQ_MODEL" default:"llama-3.1-8b-instant"`
	GoogleAPIKey  string        `envconfig:"GOOGLE_TRANSLATE_API_KEY"`
	GoogleBaseURL string        `envconfig:"GOOGLE_TRANSLATE_URL"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Driver      string `envconfig:"DB_DRIVER" default:"memory"`
	Host        string `envconfig:"DB_HOST" default:"localhost"`
	Port        string `envconfig:"DB_PORT" default:"5432"`
	User        string `envconfig:"DB_USER" default:"postgres"`
	Password    string `envconfig:"DB_PASSWORD" default:"postgres"`
	Name        string `envconfig:"DB_NAME" default:"video_subtitler"`
	SSLMode     string `envconfig:"DB_SSLMODE" default:"disable"`
	MaxConns    int    `envconfig:"DB_MAX_CONNS" default:"25"`
	MinConns    int    `envconfig:"DB_MIN_CONNS" default:"5"`
	AutoMigrate bool   `envconfig:"DB_AUTO_MIGRATE" default:"false"`
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Enabled  bool          `envconfig:"REDIS_ENABLED" default:"false"`
	Host     string        `envconfig:"REDIS_HOST" default:"localhost"`
	Port     string        `envconfig:"REDIS_PORT" default:"6379"`
	Password string        `envconfig:"REDIS_PASSWORD"`
	DB       int           `envconfig:"REDIS_DB" default:"0"`
	LockTTL  time.Duration `envconfig:"LOCK_TTL" default:"1h"`
}

// StorageConfig holds subtitle output storage configuration
type StorageConfig struct {
	Type            string `envconfig:"STORAGE_TYPE" default:"local"` // "local" or "minio"
	Endpoint        string `envconfig:"STORAGE_ENDPOINT" default:"localhost:9000"`
	AccessKeyID     string `envconfig:"STORAGE_ACCESS_KEY" default:"minioadmin"`
	SecretAccessKey string `envconfig:"STORAGE_SECRET_KEY" default:"minioadmin"`
	BucketName      string `envconfig:"STORAGE_BUCKET" default:"subtitles"`
	UseSSL          bool   `envconfig:"STORAGE_USE_SSL" default:"false"`
}

// EventsConfig holds the optional job event broker
type EventsConfig struct {
	AMQPURL string `envconfig:"AMQP_URL"`
	Queue   string `envconfig:"AMQP_QUEUE" default:"video.subtitle.jobs"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: failed to read .env file: %v", err)
	}

	config := &Config{}
	// Sections are processed one by one so keys stay unprefixed (PORT, not SERVER_PORT).
	sections := []interface{}{
		&config.Server,
		&config.Paths,
		&config.Media,
		&config.Recognizer,
		&config.Translator,
		&config.Database,
		&config.Redis,
		&config.Storage,
		&config.Events,
	}
	for _, section := range sections {
		if err := envconfig.Process("", section); err != nil {
			return nil, fmt.Errorf("failed to process environment: %w", err)
		}
	}
	config.normalize()

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) normalize() {
	c.Recognizer.Provider = strings.ToLower(strings.TrimSpace(c.Recognizer.Provider))
	c.Translator.Provider = strings.ToLower(strings.TrimSpace(c.Translator.Provider))
	if c.Translator.Provider == "" {
		c.Translator.Provider = "none"
		if c.Translator.GroqAPIKey != "" {
			c.Translator.Provider = "groq"
		}
	}
	c.Database.Driver = strings.ToLower(strings.TrimSpace(c.Database.Driver))
	c.Storage.Type = strings.ToLower(strings.TrimSpace(c.Storage.Type))
	if c.Paths.WorkDir == "" {
		c.Paths.WorkDir = c.Paths.UploadDir
	}
	if c.Recognizer.MaxConcurrent < 1 {
		c.Recognizer.MaxConcurrent = 1
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.Recognizer.Provider {
	case "whisper":
	case "assemblyai":
		if c.Recognizer.AssemblyAPIKey == "" {
			return fmt.Errorf("ASSEMBLYAI_API_KEY is required when RECOGNIZER=assemblyai")
		}
	default:
		return fmt.Errorf("unknown RECOGNIZER %q", c.Recognizer.Provider)
	}

	switch c.Translator.Provider {
	case "groq", "none":
	case "google":
		if c.Translator.GoogleAPIKey == "" {
			return fmt.Errorf("GOOGLE_TRANSLATE_API_KEY is required when TRANSLATOR=google")
		}
	default:
		return fmt.Errorf("unknown TRANSLATOR %q", c.Translator.Provider)
	}

	switch c.Database.Driver {
	case "memory", "postgres":
	default:
		return fmt.Errorf("unknown DB_DRIVER %q", c.Database.Driver)
	}

	switch c.Storage.Type {
	case "local":
	case "minio":
		if c.Storage.BucketName == "" {
			return fmt.Errorf("STORAGE_BUCKET is required when STORAGE_TYPE=minio")
		}
	default:
		return fmt.Errorf("unknown STORAGE_TYPE %q", c.Storage.Type)
	}

	if c.Paths.UploadDir == "" || c.Paths.OutputDir == "" {
		return fmt.Errorf("UPLOAD_DIR and OUTPUT_DIR must not be empty")
	}
	return nil
}

// GetDatabaseDSN returns the database connection string
func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", c.Redis.Host, c.Redis.Port)
}

// EnsureDirs creates the upload, output and work directories
func (c *Config) EnsureDirs() error {
	for _, dir := range []string{c.Paths.UploadDir, c.Paths.OutputDir, c.Paths.WorkDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	return nil
}
