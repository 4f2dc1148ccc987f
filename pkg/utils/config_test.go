package utils

import (
	"reflect"
	"testing"
	"time"
)

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("SITE_KEYWORDS", "rpg, indie,,co-op ")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://games.example.com")
	t.Setenv("RATE_LIMIT_WINDOW_SECONDS", "30")

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if config.App.Port != "9090" {
		t.Errorf("Expected port 9090, got %q", config.App.Port)
	}
	if config.Database.Host != "db.internal" {
		t.Errorf("Expected DB host db.internal, got %q", config.Database.Host)
	}
	if want := []string{"rpg", "indie", "co-op"}; !reflect.DeepEqual(config.Site.Keywords, want) {
		t.Errorf("Expected keywords %v, got %v", want, config.Site.Keywords)
	}
	if len(config.HTTP.CORSAllowedOrigins) != 1 {
		t.Errorf("Expected one CORS origin, got %v", config.HTTP.CORSAllowedOrigins)
	}
	if config.HTTP.RateLimitWindow != 30*time.Second {
		t.Errorf("Expected 30s window, got %v", config.HTTP.RateLimitWindow)
	}
	if config.Session.ExpiryHours != 24 {
		t.Errorf("Expected default session expiry 24h, got %d", config.Session.ExpiryHours)
	}
}

func TestSplitList(t *testing.T) {
	if got := splitList(""); got != nil {
		t.Errorf("Expected nil for empty input, got %v", got)
	}
	if got := splitList(" a ,b"); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("Expected [a b], got %v", got)
	}
}
