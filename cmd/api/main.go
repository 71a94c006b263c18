package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/mahin-rahman/greenbasket/internal/auth"
	"github.com/mahin-rahman/greenbasket/internal/config"
	"github.com/mahin-rahman/greenbasket/internal/database"
	"github.com/mahin-rahman/greenbasket/internal/handlers"
	"github.com/mahin-rahman/greenbasket/internal/middleware"
	"github.com/mahin-rahman/greenbasket/internal/repositories"
	"github.com/mahin-rahman/greenbasket/internal/routes"
	"github.com/mahin-rahman/greenbasket/internal/services"
	pkglogger "github.com/mahin-rahman/greenbasket/pkg/logger"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger.Info("configuration loaded", slog.String("env", cfg.Server.Env))

	db, err := database.NewConnection(&cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Migrate(logger); err != nil {
		logger.Error("failed to run migrations", slog.Any("error", err))
		os.Exit(1)
	}

	tokenManager := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenExpiry)
	auditLogger := pkglogger.NewAuditLogger(logger)

	// Repositories
	userRepo := repositories.NewUserRepository(db)
	productCategoryRepo := repositories.NewProductCategoryRepository(db)
	productSubCategoryRepo := repositories.NewProductSubCategoryRepository(db)
	productRepo := repositories.NewProductRepository(db)
	shopRepo := repositories.NewShopRepository(db)
	salesPointRepo := repositories.NewSalesPointRepository(db)
	productSalePointRepo := repositories.NewProductSalePointRepository(db)
	orderRepo := repositories.NewOrderRepository(db)
	orderProductRepo := repositories.NewOrderProductRepository(db)
	promoBannerRepo := repositories.NewPromoBannerRepository(db)
	promoBannerProductRepo := repositories.NewPromoBannerProductRepository(db)
	recipeRepo := repositories.NewRecipeRepository(db)
	testimonialRepo := repositories.NewTestimonialRepository(db)
	contactRepo := repositories.NewContactRepository(db)

	// Services
	authService := services.NewAuthService(userRepo, tokenManager, logger, auditLogger)
	googleService := services.NewGoogleService(
		cfg.Google.ClientID,
		cfg.Google.ClientSecret,
		cfg.GoogleRedirectURI(),
		userRepo,
		tokenManager,
		logger,
		auditLogger,
	)

	var contactNotifier services.ContactNotifier = services.NoopContactNotifier{}
	if cfg.Email.FromAddress != "" {
		notifier, err := services.NewSESContactNotifier(
			cfg.Email.AWSRegion,
			cfg.Email.FromAddress,
			cfg.Email.ContactTo,
			logger,
		)
		if err != nil {
			logger.Error("failed to initialize email notifier", slog.Any("error", err))
			os.Exit(1)
		}
		contactNotifier = notifier
	}

	// Handlers
	h := routes.Handlers{
		Auth:                 handlers.NewAuthHandler(authService, googleService),
		Users:                handlers.NewUserHandler(userRepo, authService),
		ProductCategories:    handlers.NewProductCategoryHandler(productCategoryRepo),
		ProductSubCategories: handlers.NewProductSubCategoryHandler(productSubCategoryRepo),
		Products:             handlers.NewProductHandler(productRepo),
		Shops:                handlers.NewShopHandler(shopRepo),
		SalesPoints:          handlers.NewSalesPointHandler(salesPointRepo),
		ProductSalePoints:    handlers.NewProductSalePointHandler(productSalePointRepo),
		Orders:               handlers.NewOrderHandler(orderRepo),
		OrderProducts:        handlers.NewOrderProductHandler(orderProductRepo),
		PromoBanners:         handlers.NewPromoBannerHandler(promoBannerRepo),
		PromoBannerProducts:  handlers.NewPromoBannerProductHandler(promoBannerProductRepo),
		Recipes:              handlers.NewRecipeHandler(recipeRepo),
		Testimonials:         handlers.NewTestimonialHandler(testimonialRepo),
		Contact:              handlers.NewContactHandler(contactRepo, contactNotifier, logger),
	}

	// Router
	router := chi.NewRouter()
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(middleware.SecurityHeaders(cfg.Server.Env))
	router.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	router.Use(middleware.SecureLogger(logger))
	router.Use(chimiddleware.Recoverer)
	router.Use(chimiddleware.Timeout(60 * time.Second))

	routes.RegisterRoutes(router, h, tokenManager)

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		w.Header().Set("Content-Type", "application/json")
		if err := db.HealthCheck(ctx); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"status":"unhealthy","database":"down"}`))
			return
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy","database":"up"}`))
	})

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("starting server", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	logger.Info("shutdown signal received")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	logger.Info("server stopped gracefully")
}
