package config

import (
	"fmt"
	"os"
)

type Config struct {
	BaseURL  string // public origin, used for receipt URLs and payment callbacks
	Addr     string
	DBDSN    string
	AdminKey AdminKeyConfig
	Paystack PaystackConfig
	SMTP     SMTPConfig
	SMS      SMSConfig

	AlertEmail        string // low-stock alerts go here (empty disables)
	LowStockThreshold int
}

type AdminKeyConfig struct {
	// KeyHash is a bcrypt hash of the dashboard key. Key is the plaintext
	// fallback for local dev; production should only set ADMIN_KEY_HASH.
	KeyHash string
	Key     string
}

type PaystackConfig struct {
	SecretKey   string
	BaseURL     string
	CallbackURL string
}

type SMTPConfig struct {
	Host          string
	Port          string
	User          string
	Pass          string
	From          string
	FromName      string
	TLSMode       string // "", "tls", "starttls"
	SkipVerifyTLS bool
}

type SMSConfig struct {
	SenderID string
	APIKey   string
	BaseURL  string
}

func FromEnv() (Config, error) {
	cfg := Config{
		BaseURL: envOr("BASE_URL", "http://localhost:8080"),
		Addr:    envOr("ADDR", ":8080"),
		DBDSN:   os.Getenv("DB_DSN"),
		AdminKey: AdminKeyConfig{
			KeyHash: os.Getenv("ADMIN_KEY_HASH"),
			Key:     os.Getenv("ADMIN_KEY"),
		},
		Paystack: PaystackConfig{
			SecretKey:   os.Getenv("PAYSTACK_SECRET_KEY"),
			BaseURL:     envOr("PAYSTACK_BASE_URL", "https://api.paystack.co"),
			CallbackURL: os.Getenv("PAYSTACK_CALLBACK_URL"),
		},
		SMTP: SMTPConfig{
			Host:          os.Getenv("SMTP_HOST"),
			Port:          envOr("SMTP_PORT", "1025"),
			User:          os.Getenv("SMTP_USER"),
			Pass:          os.Getenv("SMTP_PASS"),
			From:          envOr("SMTP_FROM", "no-reply@local.test"),
			FromName:      envOr("SMTP_FROM_NAME", "VoucherHub"),
			TLSMode:       os.Getenv("SMTP_TLS_MODE"),
			SkipVerifyTLS: os.Getenv("SMTP_SKIP_VERIFY_TLS") == "1",
		},
		SMS: SMSConfig{
			SenderID: envOr("SMS_SENDER_ID", "VoucherHub"),
			APIKey:   os.Getenv("SMS_API_KEY"),
			BaseURL:  os.Getenv("SMS_BASE_URL"),
		},
		AlertEmail:        os.Getenv("ADMIN_ALERT_EMAIL"),
		LowStockThreshold: intOr("LOW_STOCK_THRESHOLD", 10),
	}

	if cfg.DBDSN == "" {
		return Config{}, fmt.Errorf("DB_DSN environment variable is required")
	}
	if cfg.AdminKey.KeyHash == "" && cfg.AdminKey.Key == "" {
		return Config{}, fmt.Errorf("ADMIN_KEY_HASH or ADMIN_KEY is required")
	}
	return cfg, nil
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func intOr(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	var n int
	if _, err := fmt.Sscanf(v, "%d", &n); err != nil || n < 0 {
		return def
	}
	return n
}
