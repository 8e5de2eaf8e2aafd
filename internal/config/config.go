package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"time"
)

type Config struct {
	Addr    string
	DevMode bool

	// DatabaseURL switches the store to Postgres; SQLitePath is the
	// default file-backed store.
	DatabaseURL string
	SQLitePath  string

	RecaptchaSiteKey   string
	RecaptchaSecretKey string
	RecaptchaVerifyURL string
	VerifyTimeout      time.Duration

	SessionSecret []byte
	SessionTTL    time.Duration

	AttemptWindow time.Duration
	AttemptMax    int

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	EmailAPIKey string
	EmailSender string
}

func Load() (*Config, error) {
	secret, err := loadOrCreateSecret()
	if err != nil {
		return nil, fmt.Errorf("session secret: %w", err)
	}

	return &Config{
		Addr:    GetEnvAsString("ADDR", ":8080"),
		DevMode: GetEnvAsBool("DEV_MODE", false),

		DatabaseURL: os.Getenv("DATABASE_URL"),
		SQLitePath:  GetEnvAsString("SQLITE_PATH", "app.db"),

		RecaptchaSiteKey:   os.Getenv("RECAPTCHA_SITE_KEY"),
		RecaptchaSecretKey: os.Getenv("RECAPTCHA_SECRET_KEY"),
		RecaptchaVerifyURL: GetEnvAsString("RECAPTCHA_VERIFY_URL", "https://www.google.com/recaptcha/api/siteverify"),
		VerifyTimeout:      GetEnvAsDuration("RECAPTCHA_TIMEOUT", 5*time.Second),

		SessionSecret: secret,
		SessionTTL:    GetEnvAsDuration("SESSION_TTL", 30*24*time.Hour),

		AttemptWindow: GetEnvAsDuration("ATTEMPT_WINDOW", 15*time.Minute),
		AttemptMax:    GetEnvAsInt("ATTEMPT_MAX", 10),

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       GetEnvAsInt("REDIS_DB", 0),

		EmailAPIKey: os.Getenv("EMAIL_API_KEY"),
		EmailSender: os.Getenv("EMAIL_SENDER"),
	}, nil
}

// loadOrCreateSecret returns the session signing secret. It prefers
// SESSION_SECRET, then the secret file, and generates and persists a new
// one when neither exists so sessions survive restarts.
func loadOrCreateSecret() ([]byte, error) {
	if value := os.Getenv("SESSION_SECRET"); value != "" {
		return []byte(value), nil
	}

	path := GetEnvAsString("SESSION_SECRET_FILE", "session.secret")
	if data, err := os.ReadFile(path); err == nil && len(data) > 0 {
		return data, nil
	}

	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return nil, err
	}
	secret := []byte(hex.EncodeToString(raw))

	if err := os.WriteFile(path, secret, 0o600); err != nil {
		return nil, err
	}
	return secret, nil
}
