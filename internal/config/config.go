package config

import (
	"fmt"
	"os"
	"time"
)

// Config holds everything the console needs from the environment.
// The backend API owns all data; the only thing we configure locally is
// how to reach it and how to sign our cookies.
type Config struct {
	// APIBaseURL is the dashboard API root, e.g. http://localhost:3000/api/dashboard
	APIBaseURL string

	// ListenAddr is the address the console listens on.
	ListenAddr string

	// CookieSecret signs the flash and token cookies (HMAC-SHA256).
	CookieSecret []byte

	// CookieSecure marks cookies Secure (prod: true, behind TLS).
	CookieSecure bool

	// APITimeout bounds every outbound API call. The backend publishes no
	// timeout of its own, so we impose one here.
	APITimeout time.Duration
}

func FromEnv() (Config, error) {
	base := os.Getenv("API_BASE_URL")
	if base == "" {
		return Config{}, fmt.Errorf("API_BASE_URL environment variable is required")
	}

	secret := os.Getenv("COOKIE_SECRET")
	if secret == "" {
		return Config{}, fmt.Errorf("COOKIE_SECRET environment variable is required")
	}

	timeout := 15 * time.Second
	if v := os.Getenv("API_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid API_TIMEOUT %q: %w", v, err)
		}
		timeout = d
	}

	return Config{
		APIBaseURL:   base,
		ListenAddr:   envOr("LISTEN_ADDR", ":8081"),
		CookieSecret: []byte(secret),
		CookieSecure: os.Getenv("COOKIE_SECURE") == "true",
		APITimeout:   timeout,
	}, nil
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
