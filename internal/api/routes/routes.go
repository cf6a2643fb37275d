package routes

import (
	"storefront-backend/internal/api/handlers"
	"storefront-backend/internal/api/middleware"
	"storefront-backend/internal/auth"
	"storefront-backend/internal/config"
	"storefront-backend/internal/database/models"
	"storefront-backend/internal/kvstore"
	"storefront-backend/internal/logger"
	"storefront-backend/internal/mailer"
	"storefront-backend/internal/payment"
	"storefront-backend/internal/plans"
	"storefront-backend/internal/repository"
	"storefront-backend/internal/service"
	"storefront-backend/internal/tenancy"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "storefront-backend/docs" // swagger docs
)

// Dependencies carries the externally-constructed collaborators the route
// tree needs: the database, the key-value store and the mail enqueuer.
type Dependencies struct {
	DB      *gorm.DB
	KV      kvstore.Store
	Mail    mailer.Enqueuer
	Gateway payment.Gateway
	Plans   *plans.Catalog
	Log     *logger.Logger
}

// SetupRoutes configures all the routes for the application
func SetupRoutes(deps Dependencies, cfg *config.Config) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	validate := validator.New()

	// Repositories
	storeRepo := repository.NewStoreRepository(deps.DB)
	userRepo := repository.NewUserRepository(deps.DB)
	memberRepo := repository.NewStoreMemberRepository(deps.DB)
	productRepo := repository.NewProductRepository(deps.DB)
	brandRepo := repository.NewBrandRepository(deps.DB)
	orderRepo := repository.NewOrderRepository(deps.DB)
	paymentRepo := repository.NewPaymentRepository(deps.DB)

	// Tenancy
	resolver := tenancy.NewResolver(storeRepo)
	access := tenancy.NewAccess(memberRepo)
	limits := tenancy.NewLimits(productRepo, orderRepo)

	// Token manager
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.RefreshSecret, cfg.AccessTokenTTL(), cfg.RefreshTokenTTL())

	// Services
	otpService := service.NewOTPService(deps.KV, deps.Mail, cfg.OTPTTL(), cfg.OTPResendInterval(), deps.Log)
	authService := service.NewAuthService(userRepo, otpService, tokens, deps.Mail, validate, deps.Log)
	oauthService := service.NewOAuthService(userRepo, cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleRedirectURI, deps.Log)
	storeService := service.NewStoreService(storeRepo, memberRepo, deps.Plans, validate)
	productService := service.NewProductService(productRepo, limits, validate)
	brandService := service.NewBrandService(brandRepo, validate)
	orderService := service.NewOrderService(orderRepo, productRepo, limits, validate)
	paymentService := service.NewPaymentService(paymentRepo, orderRepo, deps.Gateway, orderService, validate)

	// Handlers
	healthHandler := handlers.NewHealthHandler(deps.DB, deps.KV)
	authHandler := handlers.NewAuthHandler(authService)
	oauthHandler := handlers.NewOAuthHandler(oauthService, authService)
	storeHandler := handlers.NewStoreHandler(storeService)
	productHandler := handlers.NewProductHandler(productService)
	brandHandler := handlers.NewBrandHandler(brandService)
	orderHandler := handlers.NewOrderHandler(orderService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)

	requireAuth := auth.RequireAuth(tokens, userRepo)
	resolveStore := tenancy.ResolveStore(resolver)
	requireStaff := tenancy.RequireRole(access, models.StoreRoleStaff)
	requireAdmin := tenancy.RequireRole(access, models.StoreRoleAdmin)

	// Health
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Auth (public)
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
		authGroup.POST("/verify-otp", authHandler.VerifyOTP)
		authGroup.POST("/resend-otp", authHandler.ResendOTP)
		authGroup.GET("/otp-status/:email", authHandler.OTPStatus)
		authGroup.POST("/refresh-token", authHandler.Refresh)
		authGroup.POST("/reset-password/request", authHandler.RequestPasswordReset)
		authGroup.POST("/reset-password/confirm", authHandler.ConfirmPasswordReset)
		authGroup.GET("/google/login", oauthHandler.GoogleLogin)
		authGroup.GET("/google/callback", oauthHandler.GoogleCallback)

		authGroup.POST("/change-password", requireAuth, authHandler.ChangePassword)
	}

	// Profile (authenticated)
	router.GET("/profile", requireAuth, authHandler.GetProfile)
	router.PUT("/profile", requireAuth, authHandler.UpdateProfile)

	// Store provisioning and listing (authenticated, not store-scoped)
	router.POST("/stores", requireAuth, storeHandler.CreateStore)
	router.GET("/stores/mine", requireAuth, storeHandler.ListMyStores)

	// Store-scoped routes resolve the tenant from the request domain.
	storeScoped := router.Group("")
	storeScoped.Use(resolveStore)
	{
		storeScoped.GET("/stores/current", storeHandler.GetCurrentStore)

		// Public storefront reads and guest checkout
		storeScoped.GET("/products", productHandler.ListProducts)
		storeScoped.GET("/products/:id", productHandler.GetProduct)
		storeScoped.GET("/brands", brandHandler.ListBrands)
		storeScoped.POST("/orders", orderHandler.CreateOrder)
		storeScoped.POST("/payments/init", paymentHandler.InitPayment)
		storeScoped.GET("/payments/verify/:reference", paymentHandler.VerifyPayment)

		// Staff-and-up writes
		staff := storeScoped.Group("", requireAuth, requireStaff)
		{
			staff.POST("/products", productHandler.CreateProduct)
			staff.PUT("/products/:id", productHandler.UpdateProduct)
			staff.POST("/brands", brandHandler.CreateBrand)
			staff.PUT("/brands/:id", brandHandler.UpdateBrand)
			staff.GET("/orders", orderHandler.ListOrders)
			staff.GET("/orders/:id", orderHandler.GetOrder)
			staff.POST("/orders/:id/cancel", orderHandler.CancelOrder)
		}

		// Admin-and-up deletes
		admin := storeScoped.Group("", requireAuth, requireAdmin)
		{
			admin.DELETE("/products/:id", productHandler.DeleteProduct)
			admin.DELETE("/brands/:id", brandHandler.DeleteBrand)
		}
	}

	return router
}
