package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"storefront-backend/internal/config"
	"storefront-backend/internal/kvstore"
	"storefront-backend/internal/logger"
	"storefront-backend/internal/mailer"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// The mail worker drains the Redis queue and delivers over SMTP. It runs
// as a separate process from the API server.
func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	logger.Setup(cfg.LogLevel)
	logg := logger.New()

	if cfg.RedisURL == "" {
		logrus.Fatal("REDIS_URL is required for the mail worker")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	redisClient, err := kvstore.DialRedis(ctx, cfg.RedisURL)
	if err != nil {
		logrus.Fatal("Failed to connect to redis:", err)
	}
	queue := mailer.NewRedisQueue(redisClient)

	var sender mailer.Sender
	if cfg.SMTPUsername != "" {
		sender = mailer.NewSMTPSender(mailer.SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUsername,
			Password: cfg.SMTPPassword,
			From:     cfg.SMTPFrom,
		})
	} else {
		logg.Warn("SMTP_USERNAME is empty; emails will be logged, not delivered")
		sender = mailer.NewLogSender(logg)
	}

	worker := mailer.NewWorker(queue, sender, logg)

	logrus.Info("Mail worker started")
	if err := worker.Run(ctx); err != nil && ctx.Err() == nil {
		logrus.Fatal("Mail worker stopped:", err)
	}
	logrus.Info("Mail worker shut down")
}
