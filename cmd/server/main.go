package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"mindtrack/internal/assess"
	"mindtrack/internal/cache"
	"mindtrack/internal/config"
	"mindtrack/internal/repository"
	"mindtrack/internal/service"
	"mindtrack/internal/transport/rest"
	"mindtrack/internal/transport/ws"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		logger.Fatal("failed to connect to mongodb", zap.Error(err))
	}
	if err := mongoClient.Ping(ctx, nil); err != nil {
		logger.Fatal("failed to ping mongodb", zap.Error(err))
	}
	db := mongoClient.Database(cfg.MongoDatabase)

	redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Fatal("failed to ping redis", zap.Error(err))
	}

	userRepo := repository.NewUserRepo(db)
	responseRepo := repository.NewResponseRepo(db)
	assessmentRepo := repository.NewAssessmentRepo(db)
	progressRepo := repository.NewProgressRepo(db)
	surveyRepo := repository.NewSurveyRepo(db)

	assessmentCache := cache.NewAssessmentCache(redisClient)
	trendCache := cache.NewTrendCache(redisClient, cfg.TrendCacheTTL)

	hub := ws.NewHub(logger)
	go hub.Run()

	engine := assess.DefaultConfig()
	if cfg.CrisisResource != "" {
		engine.CrisisResource = cfg.CrisisResource
	}

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL, logger)
	userService := service.NewUserService(userRepo, progressRepo, assessmentRepo, logger)
	questionnaireService := service.NewQuestionnaireService(
		responseRepo, assessmentRepo, assessmentCache, trendCache, hub, engine, logger)
	predictionService := service.NewPredictionService(assessmentRepo, assessmentCache, trendCache, logger)
	statsService := service.NewStatsService(surveyRepo, logger)

	router := rest.NewRouter(&rest.Container{
		Config:         cfg,
		Auth:           authService,
		Users:          userService,
		Questionnaires: questionnaireService,
		Predictions:    predictionService,
		Stats:          statsService,
		Socket:         ws.NewHandler(hub, authService, logger),
	})

	server := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		logger.Info("server listening", zap.String("port", cfg.HTTPPort))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
	if err := mongoClient.Disconnect(shutdownCtx); err != nil {
		logger.Error("mongodb disconnect failed", zap.Error(err))
	}
	if err := redisClient.Close(); err != nil {
		logger.Error("redis close failed", zap.Error(err))
	}
}
