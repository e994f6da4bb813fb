package main

import (
	"context"
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
	"gopkg.in/gomail.v2"

	"github.com/abertanha/movie-diary/internal/facades"
	"github.com/abertanha/movie-diary/internal/handlers"
	"github.com/abertanha/movie-diary/internal/jwt"
	"github.com/abertanha/movie-diary/internal/logger"
	"github.com/abertanha/movie-diary/internal/middlewares"
	"github.com/abertanha/movie-diary/internal/password"
	"github.com/abertanha/movie-diary/internal/repositories"
	"github.com/abertanha/movie-diary/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// config holds all process-wide configuration, constructed once at startup.
type config struct {
	appHost  string
	appPort  string
	logLevel string

	pgHost         string
	pgPort         int
	pgUser         string
	pgPassword     string
	pgDB           string
	pgMaxOpenConns int
	pgMaxIdleConns int

	redisHost         string
	redisPort         int
	redisDB           int
	redisPassword     string
	redisPoolSize     int
	redisMinIdleConns int

	kafkaBroker string
	kafkaTopic  string

	tmdbAPIKey       string
	tmdbBaseURL      string
	tmdbCacheExpSecs int

	smtpHost     string
	smtpPort     int
	smtpUser     string
	smtpPassword string
	mailFrom     string
	frontendURL  string

	jwtSecretKey string
	jwtExpSecond int
}

// @title movie-diary API
// @version 1.0.0
// @description Personal movie diary: collection CRUD, auth and metadata suggestions
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
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

// parseConfig loads environment variables from a file and builds the
// process configuration. The metadata API key is required: without it the
// suggestion endpoint cannot work at all, so startup fails fast.
func parseConfig(path string) (*config, error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getEnvInt := func(key string, defaultValue int) (int, error) {
		return strconv.Atoi(getEnv(key, strconv.Itoa(defaultValue)))
	}

	cfg := &config{
		appHost:  getEnv("APP_HOST", "localhost"),
		appPort:  getEnv("APP_PORT", "8080"),
		logLevel: getEnv("APP_LOG_LEVEL", "info"),

		pgHost:     getEnv("POSTGRES_HOST", "localhost"),
		pgUser:     getEnv("POSTGRES_USER", "user"),
		pgPassword: getEnv("POSTGRES_PASSWORD", "password"),
		pgDB:       getEnv("POSTGRES_DB", "moviediary"),

		redisHost:     getEnv("REDIS_HOST", "localhost"),
		redisPassword: getEnv("REDIS_PASSWORD", ""),

		kafkaBroker: getEnv("KAFKA_BROKER", ""),
		kafkaTopic:  getEnv("KAFKA_TOPIC", "collection-events"),

		tmdbAPIKey:  getEnv("TMDB_API_KEY", ""),
		tmdbBaseURL: getEnv("TMDB_BASE_URL", facades.DefaultTMDBBaseURL),

		smtpHost:     getEnv("SMTP_HOST", ""),
		smtpUser:     getEnv("SMTP_USER", ""),
		smtpPassword: getEnv("SMTP_PASSWORD", ""),
		mailFrom:     getEnv("MAIL_FROM", "no-reply@moviediary.local"),
		frontendURL:  getEnv("FRONTEND_URL", "http://localhost:3000"),

		jwtSecretKey: getEnv("JWT_SECRET_KEY", "my_super_secret_key"),
	}

	if cfg.tmdbAPIKey == "" {
		return nil, fmt.Errorf("TMDB_API_KEY is required")
	}

	var err error
	if cfg.pgPort, err = getEnvInt("POSTGRES_PORT", 5432); err != nil {
		return nil, err
	}
	if cfg.pgMaxOpenConns, err = getEnvInt("POSTGRES_MAX_OPEN_CONNS", 16); err != nil {
		return nil, err
	}
	if cfg.pgMaxIdleConns, err = getEnvInt("POSTGRES_MAX_IDLE_CONNS", 8); err != nil {
		return nil, err
	}
	if cfg.redisPort, err = getEnvInt("REDIS_PORT", 6379); err != nil {
		return nil, err
	}
	if cfg.redisDB, err = getEnvInt("REDIS_DB", 0); err != nil {
		return nil, err
	}
	if cfg.redisPoolSize, err = getEnvInt("REDIS_POOL_SIZE", 10); err != nil {
		return nil, err
	}
	if cfg.redisMinIdleConns, err = getEnvInt("REDIS_MIN_IDLE_CONNS", 2); err != nil {
		return nil, err
	}
	if cfg.tmdbCacheExpSecs, err = getEnvInt("TMDB_CACHE_EXP_SECOND", 600); err != nil {
		return nil, err
	}
	if cfg.smtpPort, err = getEnvInt("SMTP_PORT", 587); err != nil {
		return nil, err
	}
	if cfg.jwtExpSecond, err = getEnvInt("JWT_EXP_SECOND", 86400); err != nil {
		return nil, err
	}

	return cfg, nil
}

// run initializes the logger, database, Redis, Kafka, SMTP and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg *config) error {
	if err := logger.Initialize(cfg.logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.pgUser, cfg.pgPassword, cfg.pgHost, cfg.pgPort, cfg.pgDB)
	logger.Log.Infof("Connecting to PostgreSQL: %s:%d/%s", cfg.pgHost, cfg.pgPort, cfg.pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Fatal("PostgreSQL connection error:", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.pgMaxOpenConns)
	db.SetMaxIdleConns(cfg.pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Fatal("PostgreSQL ping failed:", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.redisHost, cfg.redisPort),
		Password:     cfg.redisPassword,
		DB:           cfg.redisDB,
		PoolSize:     cfg.redisPoolSize,
		MinIdleConns: cfg.redisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Fatal("Redis connection error:", err)
	}
	defer rdb.Close()

	// Kafka writer, optional: without a broker collection events are skipped
	var kafkaWriter services.KafkaWriter
	if cfg.kafkaBroker != "" {
		w := &kafka.Writer{
			Addr:     kafka.TCP(cfg.kafkaBroker),
			Topic:    cfg.kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer w.Close()
		kafkaWriter = w
	} else {
		logger.Log.Warn("KAFKA_BROKER not set, collection events disabled")
	}

	// SMTP mailer, optional: without a host registration skips the mail
	var mailer services.ConfirmationSender
	if cfg.smtpHost != "" {
		dialer := gomail.NewDialer(cfg.smtpHost, cfg.smtpPort, cfg.smtpUser, cfg.smtpPassword)
		mailer = facades.NewMailer(dialer, cfg.mailFrom, cfg.frontendURL)
	} else {
		logger.Log.Warn("SMTP_HOST not set, confirmation mails disabled")
	}

	// Initialize JWT service and password hasher
	jwtSvc := jwt.New(
		jwt.WithSecretKey(cfg.jwtSecretKey),
		jwt.WithExpiration(time.Duration(cfg.jwtExpSecond)*time.Second),
	)
	hasher := password.New()

	// Initialize repositories and facades
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	movieReadRepo := repositories.NewMovieReadRepository(db)
	movieWriteRepo := repositories.NewMovieWriteRepository(db)
	suggestionCache := repositories.NewSuggestionCacheRepository(rdb, time.Duration(cfg.tmdbCacheExpSecs)*time.Second)
	tmdb := facades.NewTMDBFacade(&http.Client{}, cfg.tmdbAPIKey, cfg.tmdbBaseURL)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, hasher, jwtSvc, mailer)
	movieService := services.NewMovieService(movieReadRepo, movieWriteRepo, kafkaWriter)
	suggestionService := services.NewSuggestionService(tmdb, suggestionCache)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.CORSMiddleware())
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	// Public routes
	r.Get("/health", handlers.NewHealthHandler())
	r.Post("/user/register", handlers.NewRegisterHandler(authService))
	r.Post("/auth/login", handlers.NewLoginHandler(authService))
	r.Get("/auth/verify-email", handlers.NewVerifyEmailHandler(authService))

	// Protected routes with JWT middleware
	r.Group(func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(jwtSvc))
		r.Post("/movie", handlers.NewCreateMovieHandler(movieService, jwtSvc))
		r.Get("/movie", handlers.NewListMoviesHandler(movieService, jwtSvc))
		r.Get("/movie/tmdb/movie", handlers.NewSuggestMoviesHandler(suggestionService, jwtSvc))
		r.Get("/movie/{id}", handlers.NewGetMovieHandler(movieService, jwtSvc))
		r.Patch("/movie/{id}", handlers.NewUpdateMovieHandler(movieService, jwtSvc))
		r.Delete("/movie/{id}", handlers.NewDeleteMovieHandler(movieService, jwtSvc))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.appHost, cfg.appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.appHost, cfg.appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.appHost, cfg.appPort)
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
