package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Storage drivers accepted by FRIENDLYLINK_STORAGE_DRIVER.
const (
	DriverJSON     = "json"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
	DriverS3       = "s3"
	DriverMemory   = "memory"
)

// Config captures process level configuration for the FriendlyLink CLI.
type Config struct {
	LogLevel       string
	MetricsFile    string
	SeedSample     bool
	StorageTimeout time.Duration

	Storage Storage
	Kafka   Kafka
}

// Storage selects and configures the persistence backend.
type Storage struct {
	Driver string

	DataDir       string
	ElderlyFile   string
	VolunteerFile string
	PairFile      string

	SQLitePath  string
	DatabaseURL string

	Redis RedisConfig
	S3    S3Config
}

// RedisConfig holds connection settings for the redis backend.
type RedisConfig struct {
	URL          string
	Key          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// S3Config holds bucket settings for the s3 backend. Endpoint enables
// S3-compatible servers with path-style addressing.
type S3Config struct {
	Bucket   string
	Prefix   string
	Region   string
	Endpoint string
}

// Kafka configures change-event publishing. Empty Brokers disables it.
type Kafka struct {
	Brokers []string
	Topic   string
}

var DefaultStorageTimeout = 10 * time.Second

// FromEnv builds a Config from environment variables so main stays lean.
func FromEnv() Config {
	dataDir := envOr("FRIENDLYLINK_DATA_DIR", "data")

	timeout := DefaultStorageTimeout
	if raw := os.Getenv("FRIENDLYLINK_STORAGE_TIMEOUT"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil && d > 0 {
			timeout = d
		}
	}

	return Config{
		LogLevel:       envOr("LOG_LEVEL", "info"),
		MetricsFile:    os.Getenv("FRIENDLYLINK_METRICS_FILE"),
		SeedSample:     strings.EqualFold(os.Getenv("FRIENDLYLINK_SEED_SAMPLE"), "true"),
		StorageTimeout: timeout,
		Storage: Storage{
			Driver:        strings.ToLower(envOr("FRIENDLYLINK_STORAGE_DRIVER", DriverJSON)),
			DataDir:       dataDir,
			ElderlyFile:   envOr("FRIENDLYLINK_ELDERLY_FILE", filepath.Join(dataDir, "elderly.json")),
			VolunteerFile: envOr("FRIENDLYLINK_VOLUNTEER_FILE", filepath.Join(dataDir, "volunteers.json")),
			PairFile:      envOr("FRIENDLYLINK_PAIR_FILE", filepath.Join(dataDir, "pairs.json")),
			SQLitePath:    envOr("FRIENDLYLINK_SQLITE_PATH", filepath.Join(dataDir, "friendlylink.db")),
			DatabaseURL:   os.Getenv("DATABASE_URL"),
			Redis: RedisConfig{
				URL:          os.Getenv("REDIS_URL"),
				Key:          envOr("FRIENDLYLINK_REDIS_KEY", "friendlylink:state"),
				PoolSize:     10,
				MinIdleConns: 1,
				DialTimeout:  5 * time.Second,
				ReadTimeout:  3 * time.Second,
				WriteTimeout: 3 * time.Second,
			},
			S3: S3Config{
				Bucket:   os.Getenv("FRIENDLYLINK_S3_BUCKET"),
				Prefix:   envOr("FRIENDLYLINK_S3_PREFIX", "friendlylink/"),
				Region:   envOr("FRIENDLYLINK_S3_REGION", "us-east-1"),
				Endpoint: os.Getenv("FRIENDLYLINK_S3_ENDPOINT"),
			},
		},
		Kafka: Kafka{
			Brokers: splitList(os.Getenv("KAFKA_BROKERS")),
			Topic:   envOr("KAFKA_REGISTRY_TOPIC", "friendlylink.registry.changes"),
		},
	}
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
