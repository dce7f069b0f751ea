package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	MongoURI           string
	Port               string
	DBName             string
	ProductsCollection string
	PostsCollection    string
	OpsLogCollection   string
	PostsDir           string
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration

	// Retry policy for bulk writes
	RetryMaxAttempts     int
	RetryInitialInterval time.Duration
	RetryMaxInterval     time.Duration

	// Ingest worker pool
	Workers       int
	QueueSize     int
	BatchSize     int
	FlushInterval time.Duration
}

func LoadConfig() (*Config, error) {
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	cfg := &Config{
		MongoURI:           mongoURI,
		Port:               port,
		DBName:             getEnv("DB_NAME", "catalog_db"),
		ProductsCollection: getEnv("COLLECTION_PRODUCTS", "products"),
		PostsCollection:    getEnv("COLLECTION_POSTS", "posts"),
		OpsLogCollection:   getEnv("COLLECTION_OPS_LOG", "operation_logs"),
		PostsDir:           getEnv("POSTS_DIR", "_posts"),
		ReadTimeout:        getEnvDuration("SERVER_READ_TIMEOUT", 10*time.Second),
		WriteTimeout:       getEnvDuration("SERVER_WRITE_TIMEOUT", 10*time.Second),

		RetryMaxAttempts:     getEnvInt("RETRY_MAX_ATTEMPTS", 3),
		RetryInitialInterval: getEnvDuration("RETRY_INITIAL_INTERVAL", 100*time.Millisecond),
		RetryMaxInterval:     getEnvDuration("RETRY_MAX_INTERVAL", 2*time.Second),

		Workers:       getEnvInt("INGEST_WORKERS", 4),
		QueueSize:     getEnvInt("INGEST_QUEUE_SIZE", 256),
		BatchSize:     getEnvInt("INGEST_BATCH_SIZE", 500),
		FlushInterval: getEnvDuration("INGEST_FLUSH_INTERVAL", 2*time.Second),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.MongoURI == "" {
		return fmt.Errorf("MONGO_URI is required")
	}
	if c.RetryMaxAttempts < 1 {
		return fmt.Errorf("RETRY_MAX_ATTEMPTS must be >= 1")
	}
	if c.RetryInitialInterval > c.RetryMaxInterval {
		return fmt.Errorf("RETRY_INITIAL_INTERVAL must not exceed RETRY_MAX_INTERVAL")
	}
	if c.Workers < 1 {
		return fmt.Errorf("INGEST_WORKERS must be >= 1")
	}
	if c.BatchSize < 1 {
		return fmt.Errorf("INGEST_BATCH_SIZE must be >= 1")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return fallback
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		return fallback
	}
	return val
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	valStr := os.Getenv(key)
	if valStr == "" {
		return fallback
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		// Try parsing as duration string? e.g. "10s"
		d, err := time.ParseDuration(valStr)
		if err == nil {
			return d
		}
		return fallback
	}
	return time.Duration(val) * time.Second
}
