package config

import (
	"os"
	"strconv"
)

// StoreConfig selects and configures the key-value backing store that holds
// the document collection. Driver is one of "file", "memory", or "postgres".
type StoreConfig struct {
	Driver string
	// Path to the JSON state file; only used when Driver == "file".
	FilePath string
	// Postgres settings; only used when Driver == "postgres".
	PostgresDSN        string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
}

// MinIOConfig holds object storage settings for uploaded document files.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// AdminConfig holds the mock admin credential pair. There is deliberately no
// real authentication behind this; it gates the manage/upload surface only.
type AdminConfig struct {
	Username string
	Password string
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables.
type AppConfig struct {
	AppHost string
	Port    string
	Seed    bool
	Store   StoreConfig
	MinIO   MinIOConfig
	Admin   AdminConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// Real environment variables take precedence over the .env file.
func Load() *AppConfig {
	return &AppConfig{
		AppHost: getEnv("APP_HOST", "localhost:8080"),
		Port:    getEnv("PORT", "8080"),
		Seed:    getEnvBool("SEED_ON_START", true),
		Store: StoreConfig{
			Driver:             getEnv("KV_DRIVER", "file"),
			FilePath:           getEnv("KV_FILE_PATH", "data/sdgportal.json"),
			PostgresDSN:        getEnv("POSTGRES_DSN", ""),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeSec: getEnvInt("DB_CONN_MAX_LIFETIME_SEC", 300),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", ""),
			AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey: getEnv("MINIO_SECRET_KEY", ""),
			Bucket:    getEnv("MINIO_BUCKET", "sdg-documents"),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
		},
		Admin: AdminConfig{
			Username: getEnv("ADMIN_USERNAME", "admin"),
			Password: getEnv("ADMIN_PASSWORD", "sdg2024"),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
