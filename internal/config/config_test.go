package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SERVER_PORT", "")
	t.Setenv("DB_QUERY_TIMEOUT", "")

	cfg := Load()
	if cfg.Server.Port != "8010" {
		t.Fatalf("expected default port 8010, got %q", cfg.Server.Port)
	}
	if cfg.Database.QueryTimeout != 10*time.Second {
		t.Fatalf("expected default query timeout 10s, got %v", cfg.Database.QueryTimeout)
	}
	if cfg.MinIO.PresignExpiry != 15*time.Minute {
		t.Fatalf("expected default presign expiry 15m, got %v", cfg.MinIO.PresignExpiry)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("DB_MAX_OPEN_CONNS", "7")
	t.Setenv("DB_QUERY_TIMEOUT", "2s")
	t.Setenv("AWS_USE_SSL", "true")

	cfg := Load()
	if cfg.Server.Port != "9000" {
		t.Fatalf("expected port 9000, got %q", cfg.Server.Port)
	}
	if cfg.Database.MaxOpenConns != 7 {
		t.Fatalf("expected 7 open conns, got %d", cfg.Database.MaxOpenConns)
	}
	if cfg.Database.QueryTimeout != 2*time.Second {
		t.Fatalf("expected 2s query timeout, got %v", cfg.Database.QueryTimeout)
	}
	if !cfg.MinIO.UseSSL {
		t.Fatalf("expected UseSSL to be true")
	}
}

func TestLoadIgnoresMalformedValues(t *testing.T) {
	t.Setenv("DB_MAX_IDLE_CONNS", "many")
	t.Setenv("SERVER_READ_TIMEOUT", "soon")

	cfg := Load()
	if cfg.Database.MaxIdleConns != 5 {
		t.Fatalf("expected fallback of 5 idle conns, got %d", cfg.Database.MaxIdleConns)
	}
	if cfg.Server.ReadTimeout != 30*time.Second {
		t.Fatalf("expected fallback read timeout, got %v", cfg.Server.ReadTimeout)
	}
}

func TestValidate(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{Host: "db", DBName: "venue_booking"},
		MinIO:    MinIOConfig{Endpoint: "minio:9000", AccessKeyID: "key", SecretAccessKey: "secret"},
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}

	cfg.MinIO.AccessKeyID = ""
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error for missing access key")
	}
}

func TestDSN(t *testing.T) {
	d := DatabaseConfig{Host: "h", Port: "1", User: "u", Password: "p", DBName: "n", SSLMode: "disable"}
	want := "host=h port=1 user=u password=p dbname=n sslmode=disable TimeZone=UTC connect_timeout=10"
	if got := d.DSN(); got != want {
		t.Fatalf("DSN() = %q, want %q", got, want)
	}
}
