package common

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Queue    QueueConfig
	OCR      OCRConfig
	Classify ClassifyConfig
	Intake   IntakeConfig
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

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr    string
	MetricsAddr string
}

// QueueConfig holds NATS-related configuration
type QueueConfig struct {
	URL            string
	UploadSubject  string
	AuditSubject   string
	ProcessTimeout time.Duration
}

// OCRConfig holds text-extraction configuration. Tessdata must point at an
// existing directory whenever the OCR fallback runs; that is checked at
// invocation time, not here.
type OCRConfig struct {
	Tesseract         string
	Pdftoppm          string
	TessdataDir       string
	Language          string
	DPI               int
	PSM               int
	OEM               int
	BinarizeThreshold int
	MinEmbeddedChars  int
	MaxPages          int
	Timeout           time.Duration
	TSVConfidence     bool
}

// ClassifyConfig holds the classifier rule-table source.
type ClassifyConfig struct {
	RulesPath string // empty -> embedded default table
}

// IntakeConfig holds the drop-directory watcher settings. An empty Dir
// disables intake.
type IntakeConfig struct {
	Dir         string
	DefaultType string
	InitialScan bool
	Debounce    time.Duration
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
			GRPCAddr:    getEnv("GRPC_ADDR", ":8080"),
			MetricsAddr: getEnv("METRICS_ADDR", ":9090"),
		},
		Queue: QueueConfig{
			URL:            getEnv("NATS_URL", ""),
			UploadSubject:  getEnv("NATS_UPLOAD_SUBJECT", "documents.uploaded"),
			AuditSubject:   getEnv("NATS_AUDIT_SUBJECT", "documents.audit"),
			ProcessTimeout: getEnvAsDuration("PROCESS_TIMEOUT", 5*time.Minute),
		},
		OCR: OCRConfig{
			Tesseract:         getEnv("TESSERACT_CMD", "tesseract"),
			Pdftoppm:          getEnv("PDFTOPPM_CMD", "pdftoppm"),
			TessdataDir:       getEnv("TESSDATA_PREFIX", ""),
			Language:          getEnv("OCR_LANG", "spa+eng"),
			DPI:               getEnvAsInt("OCR_DPI", 300),
			PSM:               getEnvAsInt("OCR_PSM", 6),
			OEM:               getEnvAsInt("OCR_OEM", 1),
			BinarizeThreshold: getEnvAsInt("OCR_BINARIZE_THRESHOLD", 160),
			MinEmbeddedChars:  getEnvAsInt("MIN_EMBEDDED_CHARS", 200),
			MaxPages:          getEnvAsInt("OCR_MAX_PAGES", 0),
			Timeout:           getEnvAsDuration("OCR_TIMEOUT", 2*time.Minute),
			TSVConfidence:     getEnvAsBool("OCR_TSV_CONFIDENCE", true),
		},
		Classify: ClassifyConfig{
			RulesPath: getEnv("TYPE_RULES_PATH", ""),
		},
		Intake: IntakeConfig{
			Dir:         getEnv("INTAKE_DIR", ""),
			DefaultType: getEnv("INTAKE_DEFAULT_TYPE", "CONTRACT"),
			InitialScan: getEnvAsBool("INTAKE_INITIAL_SCAN", true),
			Debounce:    getEnvAsDuration("INTAKE_DEBOUNCE", 500*time.Millisecond),
		},
	}
}

// Validate checks configuration needed before the process can start at all.
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return WrapError(ErrConfig, "validate config", fmt.Errorf("DB_URL is required"))
	}
	if c.Server.GRPCAddr == "" {
		return WrapError(ErrConfig, "validate config", fmt.Errorf("GRPC_ADDR is required"))
	}
	return nil
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
