package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HTTP_ADDR", "")
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DATABASE_NAME", "")
	t.Setenv("BCRYPT_SALT_ROUNDS", "")
	t.Setenv("SHUTDOWN_TIMEOUT", "")
	t.Setenv("MONGO_CONNECT_TIMEOUT", "")
	c := Load()
	if c.HTTPAddr != ":8080" {
		t.Fatalf("HTTPAddr default")
	}
	if c.DatabaseURL != "" {
		t.Fatalf("DatabaseURL default")
	}
	if c.DatabaseName != "bike-store" {
		t.Fatalf("DatabaseName default")
	}
	if c.BcryptSaltRounds != 10 {
		t.Fatalf("BcryptSaltRounds default")
	}
	if c.ShutdownTimeout != 15*time.Second {
		t.Fatalf("ShutdownTimeout default")
	}
	if c.ConnectTimeout != 10*time.Second {
		t.Fatalf("ConnectTimeout default")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_URL", "mongodb://localhost:27017")
	t.Setenv("DATABASE_NAME", "bikes-test")
	t.Setenv("BCRYPT_SALT_ROUNDS", "12")
	t.Setenv("SHUTDOWN_TIMEOUT", "2")
	t.Setenv("MONGO_CONNECT_TIMEOUT", "3")
	c := Load()
	if c.HTTPAddr != ":9090" {
		t.Fatalf("HTTPAddr env")
	}
	if c.DatabaseURL != "mongodb://localhost:27017" {
		t.Fatalf("DatabaseURL env")
	}
	if c.DatabaseName != "bikes-test" {
		t.Fatalf("DatabaseName env")
	}
	if c.BcryptSaltRounds != 12 {
		t.Fatalf("BcryptSaltRounds env")
	}
	if c.ShutdownTimeout != 2*time.Second {
		t.Fatalf("ShutdownTimeout env")
	}
	if c.ConnectTimeout != 3*time.Second {
		t.Fatalf("ConnectTimeout env")
	}
}

func TestPortOverridesAddr(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("PORT", "3000")
	c := Load()
	if c.HTTPAddr != ":3000" {
		t.Fatalf("expected PORT to win, got %q", c.HTTPAddr)
	}
}
