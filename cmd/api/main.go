package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"alfredoptarigan/studybuddy/internal/config"
	"alfredoptarigan/studybuddy/internal/handlers"
	"alfredoptarigan/studybuddy/internal/repositories"
	"alfredoptarigan/studybuddy/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	setupLogger(cfg)
	log.Info().Str("env", cfg.Server.Env).Msg("Config loaded successfully")

	// Initialize repositories
	roster, err := repositories.NewRosterRepository(cfg.Matcher.RosterPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load partner roster")
	}
	log.Info().Int("partners", roster.Count()).Msg("Roster loaded")

	sessionRepo := initSessionRepository(cfg)
	log.Info().Msg("Repositories initialized successfully")

	// Initialize services
	storageService := services.NewStorageService(cfg.Storage.UploadPath, cfg.Storage.MaxFileSize)
	if err := storageService.EnsureUploadDir(); err != nil {
		log.Fatal().Err(err).Msg("Failed to create upload directory")
	}

	chat, err := services.NewChatClient(context.Background(), cfg.LLM)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize LLM client")
	}
	log.Info().Str("provider", chat.Name()).Msg("LLM client initialized")

	scorer, err := services.NewSimilarityScorer(cfg.Matcher.SimilarityMode)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to select similarity scorer")
	}
	log.Info().Str("scorer", scorer.Name()).Msg("Similarity scorer selected")

	studyBuddy := services.NewStudyBuddyService(
		services.NewResumeParser(),
		services.NewSkillDetector(),
		services.NewQuizGenerator(chat),
		services.NewQuizEvaluator(chat),
		services.NewPartnerMatcher(roster, scorer),
		services.StudyBuddyOptions{
			SkillLimit:         cfg.Quiz.SkillLimit,
			QuestionCount:      cfg.Quiz.QuestionCount,
			AllowedEmailDomain: cfg.Quiz.AllowedEmailDomain,
		},
	)
	log.Info().Msg("Services initialized successfully")

	// Initialize Handlers
	sessions := handlers.NewSessionManager(sessionRepo, cfg.Session.TTL, cfg.Session.CookieSecure)
	uploadHandler := handlers.NewUploadHandler(sessions, storageService, studyBuddy)
	quizHandler := handlers.NewQuizHandler(sessions, studyBuddy)
	matchHandler := handlers.NewMatchHandler(sessions, studyBuddy)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "StudyBuddy API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: cfg.LLM.Timeout + 30*time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize) + 1<<20,
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	// Routes
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	app.Get("/", uploadHandler.HandleLanding)
	app.Post("/", uploadHandler.HandleUpload)
	app.Get("/quiz", quizHandler.HandleGetQuiz)
	app.Post("/quiz", quizHandler.HandleSubmitQuiz)
	app.Get("/studybuddy_result", matchHandler.HandleGetMatch)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Info().Msg("Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Error().Err(err).Msg("Server forced to shutdown")
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Info().Str("addr", addr).Msg("Server starting")

	if err := app.Listen(addr); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server")
	}
}

func setupLogger(cfg *config.Config) {
	level, err := zerolog.ParseLevel(cfg.Server.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339

	if cfg.IsDevelopment() {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"})
	}
}

// initSessionRepository prefers Redis when configured and falls back to
// process memory if it cannot be reached.
func initSessionRepository(cfg *config.Config) repositories.SessionRepository {
	if cfg.Session.Backend == "redis" {
		client, err := config.InitRedis(cfg)
		if err == nil {
			log.Info().Msg("Using Redis session store")
			return repositories.NewRedisSessionRepository(client, cfg.Session.TTL)
		}
		log.Error().Err(err).Msg("Redis unavailable, using in-memory sessions")
	}
	return repositories.NewMemorySessionRepository(cfg.Session.TTL)
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}

	if code >= fiber.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.Path()).Msg("Request failed")
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
