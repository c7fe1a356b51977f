package main

import (
	"context"
	"log"
	"os"

	"log/slog"

	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/authenticcheckers/waecvoucherpfront/internal/config"
	apphttp "github.com/authenticcheckers/waecvoucherpfront/internal/http"
	"github.com/authenticcheckers/waecvoucherpfront/internal/mailer"
	"github.com/authenticcheckers/waecvoucherpfront/internal/modules/payments"
	"github.com/authenticcheckers/waecvoucherpfront/internal/sms"
	"github.com/authenticcheckers/waecvoucherpfront/internal/storage"
)

func main() {
	// Load .env file (ignore error if not found - prod uses real env vars)
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatal(err)
	}
	if cfg.Paystack.CallbackURL == "" {
		cfg.Paystack.CallbackURL = cfg.BaseURL + "/payment/success"
	}

	db, err := gorm.Open(mysql.Open(cfg.DBDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	var provider payments.Provider
	if cfg.Paystack.SecretKey != "" {
		provider = payments.NewPaystack(cfg.Paystack)
	} else {
		logger.Warn("PAYSTACK_SECRET_KEY not set, using mock gateway")
		provider = payments.NewMock()
	}

	store, err := storage.FromEnv(context.Background())
	if err != nil {
		log.Fatalf("failed to init storage: %v", err)
	}
	logger.Info("storage ready", "driver", store.Driver)

	var smsProvider sms.SMSProvider
	if cfg.SMS.APIKey != "" && cfg.SMS.BaseURL != "" {
		smsProvider = sms.NewHTTPProvider(cfg.SMS)
	}

	var mailSvc mailer.Service
	if cfg.SMTP.Host != "" {
		mailSvc = mailer.NewSMTPMailer(cfg.SMTP)
	}

	r := apphttp.NewRouter(apphttp.Deps{
		Logger:   logger,
		DB:       db,
		Cfg:      cfg,
		Provider: provider,
		Storage:  store.Storage,
		SMS:      smsProvider,
		Mailer:   mailSvc,
	})

	logger.Info("listening", "addr", cfg.Addr)
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
