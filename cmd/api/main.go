package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/mikiasgoitom/HomeStay/internal/domain/contract"
	handlerHttp "github.com/mikiasgoitom/HomeStay/internal/handler/http"
	redisclient "github.com/mikiasgoitom/HomeStay/internal/infrastructure/cache"
	"github.com/mikiasgoitom/HomeStay/internal/infrastructure/config"
	database "github.com/mikiasgoitom/HomeStay/internal/infrastructure/database"
	"github.com/mikiasgoitom/HomeStay/internal/infrastructure/external_services"
	"github.com/mikiasgoitom/HomeStay/internal/infrastructure/jwt"
	"github.com/mikiasgoitom/HomeStay/internal/infrastructure/logger"
	passwordservice "github.com/mikiasgoitom/HomeStay/internal/infrastructure/password_service"
	randomgenerator "github.com/mikiasgoitom/HomeStay/internal/infrastructure/random_generator"
	"github.com/mikiasgoitom/HomeStay/internal/infrastructure/repository/mongodb"
	"github.com/mikiasgoitom/HomeStay/internal/infrastructure/store"
	"github.com/mikiasgoitom/HomeStay/internal/infrastructure/uuidgen"
	"github.com/mikiasgoitom/HomeStay/internal/infrastructure/validator"
	"github.com/mikiasgoitom/HomeStay/internal/usecase"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	appConfig := config.NewConfig()
	appLogger := logger.NewLogger(logger.Options{
		Level:  appConfig.LogLevel,
		Format: appConfig.LogFormat,
		File:   appConfig.LogFile,
	})

	if appConfig.JWTSecret == "" {
		appLogger.Fatalf("JWT_SECRET environment variable not set")
	}

	// Establish MongoDB connection
	mongoClient, err := database.NewMongoDBClient(appConfig.MongoURI)
	if err != nil {
		appLogger.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer mongoClient.Disconnect()

	db := mongoClient.Database(appConfig.MongoDBName)
	indexCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := mongodb.EnsureIndexes(indexCtx, db); err != nil {
		appLogger.Warnf("Failed to ensure indexes: %v", err)
	}
	cancel()

	// Register custom validators
	validator.RegisterCustomValidators()

	// Dependency Injection: Repositories
	userRepo := mongodb.NewMongoUserRepository(db.Collection("users"))
	homeRepo := mongodb.NewHomeRepository(db)
	bookingRepo := mongodb.NewBookingRepository(db)

	// Dependency Injection: Services
	hasher := passwordservice.NewHasher()
	jwtManager, err := jwt.NewJWTManager(appConfig.JWTSecret, appConfig.GetSessionTokenTTL(), appConfig.GetReviewTokenTTL())
	if err != nil {
		appLogger.Fatalf("Failed to create token manager: %v", err)
	}
	tokenService := jwt.NewTokenService(jwtManager)
	mailService := external_services.NewEmailService(
		appConfig.Email.Host, appConfig.Email.Port, appConfig.Email.Username,
		appConfig.Email.AppPassword, appConfig.Email.From, appLogger,
	)
	randomGenerator := randomgenerator.NewRandomGenerator()
	appValidator := validator.NewValidator()
	uuidGenerator := uuidgen.NewGenerator()

	// Revocation store: REVOCATION_STORE=mongo, else Redis when configured, otherwise process memory
	var revocation contract.IRevocationStore = store.NewMemoryRevocationStore(hasher)
	var homeCache contract.IHomeCache
	if appConfig.RedisURL != "" {
		rdb, err := redisclient.NewRedisFromURL(context.Background(), appConfig.RedisURL)
		if err != nil {
			appLogger.Warnf("Redis unavailable, using in-memory revocation and no cache: %v", err)
		} else {
			defer redisclient.Close(rdb)
			revocation = store.NewRedisRevocationStore(rdb, hasher)
			homeCache = store.NewHomeCacheStore(rdb)
		}
	}
	if appConfig.RevocationStore == "mongo" {
		revocation = mongodb.NewRevocationRepository(db.Collection("revoked_tokens"), hasher)
	}
	appLogger.Infof("Using %T for token revocation", revocation)

	// Dependency Injection: Usecases
	authGuard := usecase.NewAuthGuard(tokenService, revocation, appLogger)
	userUsecase := usecase.NewUserUsecase(userRepo, revocation, hasher, tokenService, appLogger, appConfig, appValidator, uuidGenerator, randomGenerator)
	homeUsecase := usecase.NewHomeUseCase(homeRepo, userRepo, bookingRepo, uuidGenerator, appLogger)
	if homeCache != nil {
		homeUsecase.SetHomeCache(homeCache)
	}
	bookingUsecase := usecase.NewBookingUseCase(bookingRepo, homeRepo, tokenService, mailService, uuidGenerator, appValidator, appConfig, appLogger)
	reviewUsecase := usecase.NewReviewUseCase(tokenService, bookingRepo, homeUsecase, appLogger)

	bootCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := userUsecase.EnsureInitialAdmin(bootCtx); err != nil {
		appLogger.Errorf("Failed to bootstrap admin user: %v", err)
	}
	cancel()

	// Setup API routes
	router := gin.New()
	router.Use(gin.Recovery())
	appRouter := handlerHttp.NewRouter(
		userUsecase, homeUsecase, bookingUsecase, reviewUsecase,
		authGuard, appLogger, appConfig, appConfig.RateLimitPerSecond,
	)
	appRouter.SetupRoutes(router)

	// Start the server
	appLogger.Infof("Server running on port %s", appConfig.Port)
	if err := router.Run(":" + appConfig.Port); err != nil {
		appLogger.Fatalf("Failed to start server: %v", err)
	}
}
