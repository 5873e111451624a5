package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/noah-isme/siaga-go-api/internal/config"
	"github.com/noah-isme/siaga-go-api/internal/database"
	"github.com/noah-isme/siaga-go-api/internal/handler"
	"github.com/noah-isme/siaga-go-api/internal/middleware"
	"github.com/noah-isme/siaga-go-api/internal/models"
	"github.com/noah-isme/siaga-go-api/internal/repository"
	"github.com/noah-isme/siaga-go-api/internal/router"
	"github.com/noah-isme/siaga-go-api/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	db, err := database.ConnectPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Module{},
		&models.VideoCompletion{},
		&models.Quiz{},
		&models.QuizAttempt{},
		&models.DrillParticipation{},
		&models.Alert{},
		&models.EmergencyContact{},
		&models.DisasterPrediction{},
	); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	// Redis and NATS are optional; without them the API serves from the
	// database and alerts stay node-local.
	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		redisClient, err = database.ConnectRedis(cfg.RedisURL)
		if err != nil {
			log.Fatalf("failed to connect to redis: %v", err)
		}
		defer redisClient.Close()
	} else {
		logger.Warn().Msg("redis url not configured, alert caching disabled")
	}

	var natsConn *nats.Conn
	if cfg.NATSUrl != "" {
		natsConn, err = database.ConnectNATS(cfg.NATSUrl)
		if err != nil {
			log.Fatalf("failed to connect to nats: %v", err)
		}
		defer natsConn.Close()
	} else {
		logger.Warn().Msg("nats url not configured, alert fan-out disabled")
	}

	validate := validator.New(validator.WithRequiredStructEnabled())

	userRepo := repository.NewUserRepository(db)
	moduleRepo := repository.NewModuleRepository(db)
	completionRepo := repository.NewCompletionRepository(db)
	quizRepo := repository.NewQuizRepository(db)
	attemptRepo := repository.NewAttemptRepository(db)
	drillRepo := repository.NewDrillRepository(db)
	alertRepo := repository.NewAlertRepository(db)
	contactRepo := repository.NewContactRepository(db)
	predictionRepo := repository.NewPredictionRepository(db)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL, logger)
	userService := service.NewUserService(userRepo, logger)
	moduleService := service.NewModuleService(moduleRepo)
	completionService := service.NewCompletionService(completionRepo, moduleRepo, logger)
	quizService := service.NewQuizService(quizRepo, logger)
	attemptService := service.NewAttemptService(attemptRepo, logger)
	drillService := service.NewDrillService(drillRepo, logger)
	alertService := service.NewAlertService(alertRepo, redisClient, cfg.AlertCacheTTL, natsConn, cfg.AlertSubject, logger)
	contactService := service.NewContactService(contactRepo, logger)
	predictionService := service.NewPredictionService(predictionRepo, logger)
	progressService := service.NewProgressService(userRepo, moduleRepo, completionRepo, attemptRepo, drillRepo, quizRepo, alertRepo, logger)
	seedService := service.NewSeedService(userRepo, moduleRepo, quizRepo, contactRepo, logger)

	runCtx, stopConsumers := context.WithCancel(context.Background())
	defer stopConsumers()
	alertService.Start(runCtx)

	if cfg.SeedDefaults {
		if err := seedService.EnsureDefaults(runCtx); err != nil {
			log.Fatalf("failed to seed default data: %v", err)
		}
	}

	authHandler := handler.NewAuthHandler(authService, validate, logger)
	userHandler := handler.NewUserHandler(userService, validate, logger)
	moduleHandler := handler.NewModuleHandler(moduleService, logger)
	completionHandler := handler.NewCompletionHandler(completionService, validate, logger)
	quizHandler := handler.NewQuizHandler(quizService, validate, logger)
	attemptHandler := handler.NewAttemptHandler(attemptService, validate, logger)
	drillHandler := handler.NewDrillHandler(drillService, validate, logger)
	alertHandler := handler.NewAlertHandler(alertService, validate, logger)
	contactHandler := handler.NewContactHandler(contactService, validate, logger)
	predictionHandler := handler.NewPredictionHandler(predictionService, logger)
	progressHandler := handler.NewProgressHandler(progressService, logger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
	})

	middleware.Register(app, middleware.Config{Logger: &logger})
	router.Register(app, cfg, router.Dependencies{
		AuthHandler:       authHandler,
		UserHandler:       userHandler,
		ModuleHandler:     moduleHandler,
		CompletionHandler: completionHandler,
		QuizHandler:       quizHandler,
		AttemptHandler:    attemptHandler,
		DrillHandler:      drillHandler,
		AlertHandler:      alertHandler,
		ContactHandler:    contactHandler,
		PredictionHandler: predictionHandler,
		ProgressHandler:   progressHandler,
		JWTMiddleware:     middleware.JWTProtected(cfg.JWTSecret, userRepo),
		PredictLimiter:    middleware.RateLimit("predict", 30, time.Minute),
	})

	go func() {
		if err := app.Listen(cfg.HTTPAddress()); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	waitForShutdown(app, stopConsumers)
}

func waitForShutdown(app *fiber.App, stopConsumers context.CancelFunc) {
	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-shutdownCtx.Done()

	stopConsumers()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}

	log.Println("server stopped")
}
