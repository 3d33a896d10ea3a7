package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"techmart-backend/common/errors"
	"techmart-backend/common/logger"
	"techmart-backend/config"
	"techmart-backend/controllers"
	"techmart-backend/database"
	"techmart-backend/kafka"
	"techmart-backend/middleware"
	"techmart-backend/repository"
	"techmart-backend/routes"
	"techmart-backend/services/ai"
	"techmart-backend/services/auth"
	"techmart-backend/services/ratelimit"
	"techmart-backend/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Env)
	defer logger.Log.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Relational store: users, refresh tokens, orders.
	pg, err := database.ConnectPostgres(cfg)
	if err != nil {
		logger.Log.Fatal("postgres connection failed", zap.Error(err))
	}

	// Catalog store: products, categories.
	mongoDB, closeMongo, err := database.ConnectMongo(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		logger.Log.Fatal("mongo connection failed", zap.Error(err))
	}
	defer closeMongo()

	// Client-state region: carts, wishlists, sessions.
	region, err := buildRegion(cfg)
	if err != nil {
		logger.Log.Fatal("state backend init failed", zap.Error(err))
	}

	carts := store.NewCartStore(region)
	wishlists := store.NewWishlistStore(region)
	sessions := store.NewSessionStore(region)

	userRepo := repository.NewUserRepository(pg)
	tokenRepo := repository.NewRefreshTokenRepository(pg)
	orderRepo := repository.NewOrderRepository(pg)
	productRepo := repository.NewProductRepository(mongoDB)
	categoryRepo := repository.NewCategoryRepository(mongoDB)

	tokenSvc := auth.NewTokenService(cfg.JWTSecret)
	authSvc := auth.NewService(userRepo, tokenRepo, tokenSvc)

	producer := kafka.NewProducer(strings.Split(cfg.KafkaBrokers, ","), cfg.KafkaTopic, logger.Log)
	defer producer.Close()

	// The chat service runs without a generator when no API key is
	// configured; generation calls then fail and the controller serves
	// the fallback greeting.
	var gen ai.Generator
	if cfg.GeminiAPIKey != "" {
		client, err := ai.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			logger.Log.Fatal("gemini client init failed", zap.Error(err))
		}
		gen = client
	}
	chatSvc := ai.NewService(gen, logger.Log)

	chatLimiter := ratelimit.New(cfg.ChatRateLimit, cfg.ChatRateWindow)
	chatLimiter.StartJanitor(ctx, 5*time.Minute)

	ctrl := routes.Controllers{
		AI:       controllers.NewAIController(chatSvc),
		Cart:     controllers.NewCartController(carts, orderRepo, producer),
		Wishlist: controllers.NewWishlistController(wishlists, carts),
		Auth:     controllers.NewAuthController(authSvc, sessions),
		Product:  controllers.NewProductController(productRepo),
		Category: controllers.NewCategoryController(categoryRepo),
		Order:    controllers.NewOrderController(orderRepo),
	}

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(logger.RequestLogger())
	router.Use(errors.ErrorMiddleware())
	router.Use(middleware.SecurityHeaders())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.Register(router, ctrl, tokenSvc, chatLimiter)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Log.Info("server listening", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal("server failed", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Log.Info("shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Fatal("shutdown error", zap.Error(err))
	}
	logger.Log.Info("server stopped")
}

// buildRegion picks the client-state backend. Redis is the default; the
// file backend exists for single-node deployments without Redis.
func buildRegion(cfg *config.Config) (store.Region, error) {
	if cfg.StateBackend == "file" {
		return store.NewFileRegion(cfg.StateDir)
	}

	client, err := database.NewRedisClient(cfg.RedisURL)
	if err != nil {
		return nil, err
	}
	return store.NewRedisRegion(client, cfg.StateTTL), nil
}
