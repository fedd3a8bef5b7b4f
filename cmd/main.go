package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/stephenzhang0529/ai-app-server/internal/handlers"
	"github.com/stephenzhang0529/ai-app-server/internal/jwt"
	"github.com/stephenzhang0529/ai-app-server/internal/llm"
	"github.com/stephenzhang0529/ai-app-server/internal/logger"
	"github.com/stephenzhang0529/ai-app-server/internal/middlewares"
	"github.com/stephenzhang0529/ai-app-server/internal/repositories"
	"github.com/stephenzhang0529/ai-app-server/internal/services"

	_ "github.com/stephenzhang0529/ai-app-server/docs"
	httpSwagger "github.com/swaggo/http-swagger"
	_ "modernc.org/sqlite"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title ai-app-server API
// @version 1.0.0
// @description Backend for the multi-page AI chat application: accounts, chat history, game leaderboard and inference proxy
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		sqlitePath,
		redisHost, redisPort, redisDB, redisPassword,
		kafkaAddr, kafkaTopic,
		llmBaseURL, llmAPIKey,
		adminUsername,
		jwtSecret, jwtExp, jwtRefreshExp,
		createDefaultUser, defaultUsername, defaultPassword, defaultEmail,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		sqlitePath,
		redisHost, redisPort, redisDB, redisPassword,
		kafkaAddr, kafkaTopic,
		llmBaseURL, llmAPIKey,
		adminUsername,
		jwtSecret, jwtExp, jwtRefreshExp,
		createDefaultUser, defaultUsername, defaultPassword, defaultEmail,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns all
// application, storage, Redis, Kafka, inference, and JWT configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	sqlitePath string,
	redisHost string, redisPort, redisDB int, redisPassword string,
	kafkaAddr, kafkaTopic string,
	llmBaseURL, llmAPIKey string,
	adminUsername string,
	jwtSecretKey string, jwtExpSecond, jwtRefreshExpSecond int,
	createDefaultUser bool, defaultUsername, defaultPassword, defaultEmail string,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// SQLite config
	sqlitePath = getEnv("SQLITE_PATH", "ai_app.db")

	// Redis config, optional. An empty host selects the in-memory
	// refresh token store.
	redisHost = getEnv("REDIS_HOST", "")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")

	// Kafka config, optional. An empty address disables activity events.
	kafkaAddr = getEnv("KAFKA_ADDR", "")
	kafkaTopic = getEnv("KAFKA_TOPIC", "user-activity")

	// Inference API config
	llmBaseURL = getEnv("LLM_BASE_URL", "https://api.siliconflow.cn/v1")
	llmAPIKey = getEnv("LLM_API_KEY", "")

	// Admin account name; the matching user gets the admin claim.
	adminUsername = getEnv("ADMIN_USERNAME", "admin")

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "3600")); err != nil {
		return
	}
	if jwtRefreshExpSecond, err = strconv.Atoi(getEnv("JWT_REFRESH_EXP_SECOND", "604800")); err != nil {
		return
	}

	// Default user bootstrap
	createDefaultUser = getEnv("APP_CREATE_DEFAULT_USER", "false") == "true"
	defaultUsername = getEnv("DEFAULT_USERNAME", "admin")
	defaultPassword = getEnv("DEFAULT_PASSWORD", "admin123")
	defaultEmail = getEnv("DEFAULT_EMAIL", "admin@example.com")

	return
}

// run initializes the logger, database, token store, Kafka writer, and HTTP
// server. It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	sqlitePath string,
	redisHost string, redisPort, redisDB int, redisPassword string,
	kafkaAddr, kafkaTopic string,
	llmBaseURL, llmAPIKey string,
	adminUsername string,
	jwtSecretKey string, jwtExpSecond, jwtRefreshExpSecond int,
	createDefaultUser bool, defaultUsername, defaultPassword, defaultEmail string,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to SQLite
	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", sqlitePath)
	logger.Log.Infof("Opening SQLite database: %s", sqlitePath)

	db, err := sqlx.ConnectContext(ctx, "sqlite", dsn)
	if err != nil {
		logger.Log.Fatal("SQLite open error:", err)
	}
	defer db.Close()
	if err := repositories.CreateSchema(ctx, db); err != nil {
		logger.Log.Fatal("schema creation failed:", err)
	}

	// Refresh token store: Redis when configured, in-memory otherwise
	var tokenStore jwt.TokenStore
	if redisHost != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%d", redisHost, redisPort),
			Password: redisPassword,
			DB:       redisDB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Log.Fatal("Redis connection error:", err)
		}
		defer rdb.Close()
		tokenStore = jwt.NewRedisTokenStore(rdb)
	} else {
		logger.Log.Info("REDIS_HOST not set, using in-memory refresh token store")
		tokenStore = jwt.NewMemoryTokenStore()
	}

	// Kafka writer for activity events, optional
	var kafkaWriter services.KafkaWriter
	if kafkaAddr != "" {
		w := &kafka.Writer{
			Addr:     kafka.TCP(kafkaAddr),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer w.Close()
		kafkaWriter = w
	} else {
		logger.Log.Info("KAFKA_ADDR not set, activity events disabled")
	}

	// Initialize JWT service
	tokenSvc := jwt.NewWithStore(
		jwtSecretKey,
		time.Duration(jwtExpSecond)*time.Second,
		time.Duration(jwtRefreshExpSecond)*time.Second,
		tokenStore,
	)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	sessionWriteRepo := repositories.NewSessionWriteRepository(db)
	sessionReadRepo := repositories.NewSessionReadRepository(db)
	scoreWriteRepo := repositories.NewScoreWriteRepository(db)
	scoreReadRepo := repositories.NewScoreReadRepository(db)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokenSvc, kafkaWriter, adminUsername)
	historyService := services.NewHistoryService(sessionWriteRepo, sessionReadRepo, kafkaWriter)
	leaderboardService := services.NewLeaderboardService(scoreWriteRepo, scoreReadRepo, kafkaWriter)
	llmClient := llm.NewClient(llmBaseURL, llmAPIKey)

	if createDefaultUser {
		if err := bootstrapDefaultUser(ctx, authService, defaultUsername, defaultEmail, defaultPassword); err != nil {
			logger.Log.Fatal("default user bootstrap failed:", err)
		}
	}

	// Initialize handlers
	registerHandler := handlers.NewRegisterHandler(authService)
	loginHandler := handlers.NewLoginHandler(authService)
	refreshHandler := handlers.NewRefreshHandler(authService)
	changePasswordHandler := handlers.NewChangePasswordHandler(authService, tokenSvc)
	listUsersHandler := handlers.NewListUsersHandler(authService, tokenSvc)
	deleteUserHandler := handlers.NewDeleteUserHandler(authService, tokenSvc)
	saveSessionHandler := handlers.NewSaveSessionHandler(historyService, tokenSvc)
	searchHandler := handlers.NewSearchHandler(historyService, tokenSvc)
	recordScoreHandler := handlers.NewRecordScoreHandler(leaderboardService, tokenSvc)
	leaderboardHandler := handlers.NewLeaderboardHandler(leaderboardService)
	chatHandler := handlers.NewChatHandler(llmClient, tokenSvc)
	imageHandler := handlers.NewGenerateImageHandler(llmClient, tokenSvc)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	r.Route("/api/v1", func(r chi.Router) {
		// Public routes
		r.Post("/register", registerHandler)
		r.Post("/login", loginHandler)
		r.Post("/refresh", refreshHandler)
		r.Get("/leaderboard", leaderboardHandler)

		// Protected routes with JWT middleware
		r.Group(func(r chi.Router) {
			r.Use(middlewares.AuthMiddleware(tokenSvc))

			r.Post("/password", changePasswordHandler)
			r.Get("/users", listUsersHandler)
			r.Delete("/users/{id}", deleteUserHandler)
			r.Get("/history/search", searchHandler)
			r.Post("/scores", recordScoreHandler)
			r.Post("/chat", chatHandler)
			r.Post("/images", imageHandler)

			// Session save runs inside a request-scoped transaction.
			r.Group(func(r chi.Router) {
				r.Use(middlewares.TxMiddleware(db))
				r.Post("/history", saveSessionHandler)
			})
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

// bootstrapDefaultUser creates the configured default account on first start.
// An already registered username is not an error.
func bootstrapDefaultUser(ctx context.Context, svc *services.AuthService, username, email, password string) error {
	_, err := svc.Register(ctx, username, email, password)
	switch {
	case err == nil:
		logger.Log.Infof("Default user %q created", username)
		return nil
	case errors.Is(err, services.ErrUsernameTaken), errors.Is(err, services.ErrEmailTaken):
		logger.Log.Infof("Default user %q already exists", username)
		return nil
	default:
		return err
	}
}
