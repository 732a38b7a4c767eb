package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Store drivers.
const (
	DriverMongo  = "mongo"
	DriverMemory = "memory"
)

type Config struct {
	Port        string
	LogLevel    string
	CorsOrigins string

	StoreDriver string
	MongoURI    string
	DBName      string
	DBTimeout   time.Duration

	TokenSecret  string
	JWTRateLimit int

	Minio MinioConfig
}

type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	PublicURL string
}

// Enabled reports whether an image store endpoint was configured.
func (m MinioConfig) Enabled() bool {
	return m.Endpoint != ""
}

// Load reads .env when present and then the process environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using environment variables")
	}
	return FromEnv()
}

// FromEnv builds the configuration from environment variables alone.
func FromEnv() (Config, error) {
	cfg := Config{
		Port:        GetEnv("PORT", "5000"),
		LogLevel:    GetEnv("LOG_LEVEL", "info"),
		CorsOrigins: GetEnv("CORS_ORIGINS", "*"),
		StoreDriver: GetEnv("STORE_DRIVER", DriverMongo),
		DBName:      GetEnv("DB_NAME", "artistryDB"),
		TokenSecret: GetEnv("ACCESS_TOKEN_SECRET"),
		Minio: MinioConfig{
			Endpoint:  GetEnv("MINIO_ENDPOINT"),
			AccessKey: GetEnv("MINIO_ACCESS_KEY", "minioadmin"),
			SecretKey: GetEnv("MINIO_SECRET_KEY", "minioadmin"),
			Bucket:    GetEnv("MINIO_BUCKET", "class-images"),
			PublicURL: GetEnv("MINIO_PUBLIC_URL"),
		},
	}

	var err error
	if cfg.DBTimeout, err = time.ParseDuration(GetEnv("DB_TIMEOUT", "10s")); err != nil {
		return Config{}, fmt.Errorf("DB_TIMEOUT: %w", err)
	}
	if cfg.JWTRateLimit, err = strconv.Atoi(GetEnv("JWT_RATE_LIMIT", "30")); err != nil {
		return Config{}, fmt.Errorf("JWT_RATE_LIMIT: %w", err)
	}
	if cfg.Minio.UseSSL, err = strconv.ParseBool(GetEnv("MINIO_USE_SSL", "false")); err != nil {
		return Config{}, fmt.Errorf("MINIO_USE_SSL: %w", err)
	}

	switch cfg.StoreDriver {
	case DriverMemory:
	case DriverMongo:
		cfg.MongoURI = mongoURI()
		if cfg.MongoURI == "" {
			return Config{}, fmt.Errorf("MONGO_URI or DB_USER/DB_PASS/DB_CLUSTER must be set")
		}
	default:
		return Config{}, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}

	if cfg.TokenSecret == "" {
		return Config{}, fmt.Errorf("ACCESS_TOKEN_SECRET must be set")
	}

	return cfg, nil
}

// mongoURI prefers MONGO_URI and otherwise builds an Atlas SRV URI from the
// credential parts.
func mongoURI() string {
	if uri := GetEnv("MONGO_URI"); uri != "" {
		return uri
	}
	user, pass, cluster := GetEnv("DB_USER"), GetEnv("DB_PASS"), GetEnv("DB_CLUSTER")
	if user == "" || pass == "" || cluster == "" {
		return ""
	}
	return fmt.Sprintf("mongodb+srv://%s:%s@%s/?retryWrites=true&w=majority", user, pass, cluster)
}

// GetEnv returns the variable's value, or the first default when it is unset
// or empty.
func GetEnv(key string, defaultValue ...string) string {
	value := os.Getenv(key)
	if value == "" && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}
