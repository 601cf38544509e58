package config

import (
	"os"
	"strings"
	"time"
)

type Env struct {
	AppAddr          string
	GinMode          string
	DBDSN            string
	JWTSecret        string
	CheckoutBaseURL  string
	CartPollInterval time.Duration
}

func LoadEnv() Env {
	appAddr := strings.TrimSpace(os.Getenv("APP_ADDR"))
	if appAddr == "" {
		appAddr = ":8080"
	}

	dsn := strings.TrimSpace(os.Getenv("DB_DSN"))

	secret := strings.TrimSpace(os.Getenv("JWT_SECRET"))
	if secret == "" {
		secret = "super-secret-key-change-me"
	}

	checkoutBase := strings.TrimSpace(os.Getenv("CHECKOUT_BASE_URL"))
	if checkoutBase == "" {
		checkoutBase = "http://localhost:3000"
	}

	poll := 3 * time.Second
	if raw := strings.TrimSpace(os.Getenv("CART_POLL_INTERVAL")); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil && d > 0 {
			poll = d
		}
	}

	return Env{
		AppAddr:          appAddr,
		GinMode:          strings.TrimSpace(os.Getenv("GIN_MODE")),
		DBDSN:            dsn,
		JWTSecret:        secret,
		CheckoutBaseURL:  strings.TrimRight(checkoutBase, "/"),
		CartPollInterval: poll,
	}
}
