package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	pkgvalidator "github.com/johnquangdev/video-subtitler/pkg/validator"

	"github.com/johnquangdev/video-subtitler/internal/adapter/handler"
	"github.com/johnquangdev/video-subtitler/internal/adapter/repository"
	"github.com/johnquangdev/video-subtitler/internal/domain/repositories"
	"github.com/johnquangdev/video-subtitler/internal/infrastructure/cache"
	"github.com/johnquangdev/video-subtitler/internal/infrastructure/database"
	"github.com/johnquangdev/video-subtitler/internal/infrastructure/events"
	"github.com/johnquangdev/video-subtitler/internal/infrastructure/storage"
	"github.com/johnquangdev/video-subtitler/internal/usecase/video"
	pkgai "github.com/johnquangdev/video-subtitler/pkg/ai"
	"github.com/johnquangdev/video-subtitler/pkg/config"
	"github.com/johnquangdev/video-subtitler/pkg/media"
)

// @title           Video Subtitle API
// @version         1.0
// @description     Upload a video, transcribe its speech, optionally translate it and download SRT subtitles.

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @BasePath  /

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := cfg.EnsureDirs(); err != nil {
		log.Fatalf("Failed to create directories: %v", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()
	e.HTTPErrorHandler = handler.NewHTTPErrorHandler(logger, cfg.Server.MaxUploadSize)

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	e.Use(middleware.RequestID())

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human} | ${id}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	e.Use(middleware.BodyLimit(cfg.Server.MaxUploadSize))

	// Initialize dependencies
	log.Println("🔧 Initializing dependencies...")
	ctx, stopBackground := context.WithCancel(context.Background())
	defer stopBackground()

	// Initialize repositories
	log.Println("⚙️  Initializing repositories...")
	var (
		uploadRepo repositories.UploadRepository
		jobRepo    repositories.JobRepository
	)
	switch cfg.Database.Driver {
	case "postgres":
		log.Println("📦 Connecting to database...")
		db, err := database.NewPostgresDB(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer database.CloseDB(db)

		if cfg.Database.AutoMigrate {
			if err := database.AutoMigrate(db); err != nil {
				log.Fatalf("Failed to run migrations: %v", err)
			}
		} else {
			log.Println("🔄 Skipping migrations; set DB_AUTO_MIGRATE=true to apply them on startup")
		}
		uploadRepo = repository.NewUploadRepository(db)
		jobRepo = repository.NewJobRepository(db)
	default:
		log.Println("⚠️  Using in-memory repositories; uploads are forgotten on restart")
		uploadRepo = repository.NewMemoryUploadRepository()
		jobRepo = repository.NewMemoryJobRepository()
	}

	// Processing lock
	var locker video.Locker
	if cfg.Redis.Enabled {
		log.Println("📦 Connecting to Redis...")
		redisClient, err := cache.NewRedisClient(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		locker = cache.NewRedisLocker(redisClient, cfg.Redis.LockTTL, logger)
	} else {
		memLocker := cache.NewMemoryLocker(cfg.Redis.LockTTL)
		go memLocker.RunCleanup(ctx, 5*time.Minute)
		locker = memLocker
	}

	// Subtitle storage
	var subtitles video.SubtitleStore
	switch cfg.Storage.Type {
	case "minio":
		log.Println("🗄️  Connecting to MinIO...")
		store, err := storage.NewMinIOStore(ctx, &cfg.Storage)
		if err != nil {
			log.Fatalf("Failed to initialize MinIO: %v", err)
		}
		subtitles = store
	default:
		subtitles = storage.NewLocalStore(cfg.Paths.OutputDir)
	}

	// Initialize AI components
	log.Println("🤖 Initializing AI components...")
	var recognizer video.Recognizer
	switch cfg.Recognizer.Provider {
	case "assemblyai":
		recognizer = pkgai.NewAssemblyAIRecognizer(&cfg.Recognizer, logger)
	default:
		recognizer = pkgai.NewWhisperRecognizer(&cfg.Recognizer)
	}

	var translator video.Translator
	switch cfg.Translator.Provider {
	case "groq":
		translator = pkgai.NewGroqTranslator(&cfg.Translator)
	case "google":
		gt, err := pkgai.NewGoogleTranslator(ctx, &cfg.Translator)
		if err != nil {
			log.Fatalf("Failed to initialize Google Translate: %v", err)
		}
		defer gt.Close()
		translator = gt
	default:
		translator = pkgai.NoopTranslator{}
	}

	var publisher video.EventPublisher
	if cfg.Events.AMQPURL != "" {
		log.Println("🐇 Connecting to RabbitMQ...")
		p, err := events.NewRabbitMQPublisher(cfg.Events.AMQPURL, cfg.Events.Queue)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer p.Close()
		publisher = p
	}

	videoService := video.NewService(video.Dependencies{
		Uploads:    uploadRepo,
		Jobs:       jobRepo,
		Extractor:  media.NewExtractor(cfg.Media.FFmpegBinary),
		Recognizer: video.NewGuardedRecognizer(recognizer, cfg.Recognizer.MaxConcurrent),
		Translator: translator,
		Subtitles:  subtitles,
		Locker:     locker,
		Events:     publisher,
	}, video.Options{
		UploadDir:        cfg.Paths.UploadDir,
		WorkDir:          cfg.Paths.WorkDir,
		ProcessTimeout:   cfg.Server.ProcessTimeout,
		TranslateTimeout: cfg.Translator.Timeout,
		RecognizerName:   cfg.Recognizer.Provider,
		TranslatorName:   cfg.Translator.Provider,
	}, logger)

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(handler.NewVideoHandler(videoService, logger))
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🎙️ Recognizer: %s (max %d concurrent)", cfg.Recognizer.Provider, cfg.Recognizer.MaxConcurrent)
		log.Printf("🌐 Translator: %s", cfg.Translator.Provider)
		log.Printf("🔗 Health check: http://%s/api/health", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("❌ Server forced to shutdown: %v", err)
		return
	}

	log.Println("✅ Server stopped gracefully")
}

// newLogger builds a zap logger at LOG_LEVEL
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	if cfg.Server.Environment == "development" {
		zcfg = zap.NewDevelopmentConfig()
	}
	level, err := zap.ParseAtomicLevel(cfg.Server.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", cfg.Server.LogLevel, err)
	}
	zcfg.Level = level
	return zcfg.Build()
}
