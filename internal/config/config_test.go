package config

import (
	"strings"
	"testing"
	"time"
)

// Tests here use t.Setenv and therefore cannot run in parallel.

func setBaseEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "MONGO_URI", "DB_USER", "DB_PASS", "DB_CLUSTER", "DB_NAME",
		"DB_TIMEOUT", "JWT_RATE_LIMIT", "MINIO_ENDPOINT", "MINIO_USE_SSL",
		"MINIO_BUCKET", "CORS_ORIGINS",
	} {
		t.Setenv(key, "")
	}
	t.Setenv("STORE_DRIVER", DriverMemory)
	t.Setenv("ACCESS_TOKEN_SECRET", "secret")
}

func TestFromEnvDefaults(t *testing.T) {
	setBaseEnv(t)

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv() error: %v", err)
	}
	if cfg.Port != "5000" {
		t.Errorf("Port = %q, want 5000", cfg.Port)
	}
	if cfg.DBTimeout != 10*time.Second {
		t.Errorf("DBTimeout = %v, want 10s", cfg.DBTimeout)
	}
	if cfg.JWTRateLimit != 30 {
		t.Errorf("JWTRateLimit = %d, want 30", cfg.JWTRateLimit)
	}
	if cfg.DBName != "artistryDB" || cfg.Minio.Bucket != "class-images" || cfg.CorsOrigins != "*" {
		t.Errorf("defaults = %+v", cfg)
	}
	if cfg.Minio.Enabled() {
		t.Error("Minio.Enabled() = true without endpoint")
	}
}

func TestFromEnvBuildsAtlasURI(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("STORE_DRIVER", DriverMongo)
	t.Setenv("DB_USER", "artist")
	t.Setenv("DB_PASS", "pw")
	t.Setenv("DB_CLUSTER", "cluster0.example.mongodb.net")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv() error: %v", err)
	}
	want := "mongodb+srv://artist:pw@cluster0.example.mongodb.net/?retryWrites=true&w=majority"
	if cfg.MongoURI != want {
		t.Errorf("MongoURI = %q, want %q", cfg.MongoURI, want)
	}
}

func TestFromEnvPrefersMongoURI(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("STORE_DRIVER", DriverMongo)
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("DB_USER", "ignored")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv() error: %v", err)
	}
	if cfg.MongoURI != "mongodb://localhost:27017" {
		t.Errorf("MongoURI = %q", cfg.MongoURI)
	}
}

func TestFromEnvErrors(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{"missing secret", map[string]string{"ACCESS_TOKEN_SECRET": ""}, "ACCESS_TOKEN_SECRET"},
		{"mongo without uri", map[string]string{"STORE_DRIVER": DriverMongo}, "MONGO_URI"},
		{"unknown driver", map[string]string{"STORE_DRIVER": "redis"}, "STORE_DRIVER"},
		{"bad timeout", map[string]string{"DB_TIMEOUT": "soon"}, "DB_TIMEOUT"},
		{"bad rate limit", map[string]string{"JWT_RATE_LIMIT": "many"}, "JWT_RATE_LIMIT"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setBaseEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := FromEnv()
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("FromEnv() error = %v, want mention of %s", err, tt.wantErr)
			}
		})
	}
}

func TestGetEnv(t *testing.T) {
	t.Setenv("ARTISTRY_TEST_SET", "value")

	if got := GetEnv("ARTISTRY_TEST_SET", "default"); got != "value" {
		t.Errorf("GetEnv(set) = %q, want value", got)
	}
	if got := GetEnv("ARTISTRY_TEST_UNSET_KEY", "default"); got != "default" {
		t.Errorf("GetEnv(unset) = %q, want default", got)
	}
	t.Setenv("ARTISTRY_TEST_EMPTY", "")
	if got := GetEnv("ARTISTRY_TEST_EMPTY", "default"); got != "default" {
		t.Errorf("GetEnv(empty) = %q, want default", got)
	}
	if got := GetEnv("ARTISTRY_TEST_UNSET_KEY"); got != "" {
		t.Errorf("GetEnv(unset, no default) = %q, want empty", got)
	}
}
