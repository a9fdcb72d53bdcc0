package config

import (
	"path/filepath"
	"testing"
)

func TestLoadAppliesDefaults(t *testing.T) {
	config, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	if config.Port != "8080" {
		t.Fatalf("expected default port 8080, got %q", config.Port)
	}
	if config.DatabasePath != filepath.Join("data", "liftlog.db") {
		t.Fatalf("expected default database path, got %q", config.DatabasePath)
	}
	if config.Timezone != "UTC" {
		t.Fatalf("expected default timezone UTC, got %q", config.Timezone)
	}

	location, err := config.Location()
	if err != nil {
		t.Fatalf("resolve location: %v", err)
	}
	if location.String() != "UTC" {
		t.Fatalf("expected UTC location, got %q", location)
	}
}

func TestLoadReadsEnvironmentOverrides(t *testing.T) {
	t.Setenv("LIFTLOG_PORT", "9090")
	t.Setenv("LIFTLOG_DATABASE_PATH", "/tmp/liftlog-test.db")
	t.Setenv("LIFTLOG_ALLOWED_ORIGINS", " https://app.example.com , https://staging.example.com ")

	config, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	if config.Port != "9090" {
		t.Fatalf("expected overridden port 9090, got %q", config.Port)
	}
	if config.DatabasePath != "/tmp/liftlog-test.db" {
		t.Fatalf("expected overridden database path, got %q", config.DatabasePath)
	}

	origins := config.Origins()
	if len(origins) != 2 {
		t.Fatalf("expected two trusted origins, got %#v", origins)
	}
	if origins[0] != "https://app.example.com" || origins[1] != "https://staging.example.com" {
		t.Fatalf("expected trimmed origins in order, got %#v", origins)
	}
}

func TestLocationRejectsUnknownTimezone(t *testing.T) {
	config := &Config{Timezone: "Mars/Olympus"}
	if _, err := config.Location(); err == nil {
		t.Fatal("expected error for unknown timezone")
	}
}
