package main

import (
	"context"
	"log"

	"storefront-backend/internal/api/routes"
	"storefront-backend/internal/config"
	"storefront-backend/internal/database"
	"storefront-backend/internal/kvstore"
	"storefront-backend/internal/logger"
	"storefront-backend/internal/mailer"
	"storefront-backend/internal/payment"
	"storefront-backend/internal/plans"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

//	@title			Storefront Backend API
//	@version		1.0
//	@description	Multitenant storefront backend: OTP-verified identity, domain-resolved stores, products, brands, orders and payments.

//	@contact.name	API Support
//	@contact.email	support@example.com

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:8000
//	@BasePath	/

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.

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

	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		logrus.Fatal("Failed to initialize database:", err)
	}

	// Key-value store: Redis when configured, in-process memory otherwise.
	var kv kvstore.Store
	var mail mailer.Enqueuer
	if cfg.RedisURL != "" {
		redisClient, err := kvstore.DialRedis(context.Background(), cfg.RedisURL)
		if err != nil {
			logrus.Fatal("Failed to connect to redis:", err)
		}
		kv = kvstore.NewRedisStore(redisClient)
		mail = mailer.NewRedisQueue(redisClient)
	} else {
		logg.Warn("REDIS_URL is empty; using in-memory kv store and inline mail delivery")
		kv = kvstore.NewMemoryStore()
		mail = mailer.NewSyncEnqueuer(mailer.NewLogSender(logg))
	}

	catalog, err := plans.Load(cfg.PlansConfigPath)
	if err != nil {
		logrus.Fatal("Failed to load plans catalog:", err)
	}

	gateway := payment.NewPaystack(cfg.PaystackSecretKey, cfg.PaystackBaseURL)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := routes.SetupRoutes(routes.Dependencies{
		DB:      db,
		KV:      kv,
		Mail:    mail,
		Gateway: gateway,
		Plans:   catalog,
		Log:     logg,
	}, cfg)

	port := cfg.Port
	if port == "" {
		port = "8000"
	}

	logrus.Infof("Starting server on port %s", port)
	if err := router.Run(":" + port); err != nil {
		logrus.Fatal("Failed to start server:", err)
	}
}
