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
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	_ "github.com/jackc/pgx/v5/stdlib"

	_ "github.com/sbilibin2017/course-platform/docs"
	"github.com/sbilibin2017/course-platform/internal/handlers"
	"github.com/sbilibin2017/course-platform/internal/jwt"
	"github.com/sbilibin2017/course-platform/internal/logger"
	"github.com/sbilibin2017/course-platform/internal/middlewares"
	"github.com/sbilibin2017/course-platform/internal/migrations"
	"github.com/sbilibin2017/course-platform/internal/repositories"
	"github.com/sbilibin2017/course-platform/internal/services"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// config holds everything read from the environment.
type config struct {
	AppHost  string
	AppPort  string
	LogLevel string

	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int

	RedisHost         string // empty disables the cache
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int
	RedisExpSecond    int

	KafkaBrokers []string // empty disables domain events
	KafkaTopic   string

	JWTSecretKey string
	JWTExpSecond int

	AuthRateLimitRPS   float64
	AuthRateLimitBurst int

	BlogRequireAuth bool
}

// @title course-platform API
// @version 1.0.0
// @description Course catalogue, enrollments and blog backend
// @host localhost:5000
// @BasePath /api
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
	fmt.Printf("Version: %s\nCommit: %s\nBuild: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns
// the application, database, Redis, Kafka, JWT and HTTP configuration.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getInt := func(key, defaultValue string) (int, error) {
		v, err := strconv.Atoi(getEnv(key, defaultValue))
		if err != nil {
			return 0, fmt.Errorf("%s: %w", key, err)
		}
		return v, nil
	}

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "5000")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	cfg.PGHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PGUser = getEnv("POSTGRES_USER", "user")
	cfg.PGPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PGDB = getEnv("POSTGRES_DB", "database")
	if cfg.PGPort, err = getInt("POSTGRES_PORT", "5432"); err != nil {
		return
	}
	if cfg.PGMaxOpenConns, err = getInt("POSTGRES_MAX_OPEN_CONNS", "16"); err != nil {
		return
	}
	if cfg.PGMaxIdleConns, err = getInt("POSTGRES_MAX_IDLE_CONNS", "8"); err != nil {
		return
	}

	// Redis config
	cfg.RedisHost = getEnv("REDIS_HOST", "")
	if cfg.RedisPort, err = getInt("REDIS_PORT", "6379"); err != nil {
		return
	}
	if cfg.RedisDB, err = getInt("REDIS_DB", "0"); err != nil {
		return
	}
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.RedisPoolSize, err = getInt("REDIS_POOL_SIZE", "10"); err != nil {
		return
	}
	if cfg.RedisMinIdleConns, err = getInt("REDIS_MIN_IDLE_CONNS", "2"); err != nil {
		return
	}
	if cfg.RedisExpSecond, err = getInt("REDIS_EXP_SECOND", "60"); err != nil {
		return
	}

	// Kafka config
	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		for _, b := range strings.Split(brokers, ",") {
			if b = strings.TrimSpace(b); b != "" {
				cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
			}
		}
	}
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", "course-platform.events")

	// JWT config
	cfg.JWTSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if cfg.JWTExpSecond, err = getInt("JWT_EXP_SECOND", "86400"); err != nil {
		return
	}

	// HTTP config
	if cfg.AuthRateLimitRPS, err = strconv.ParseFloat(getEnv("AUTH_RATE_LIMIT_RPS", "5"), 64); err != nil {
		err = fmt.Errorf("AUTH_RATE_LIMIT_RPS: %w", err)
		return
	}
	if cfg.AuthRateLimitBurst, err = getInt("AUTH_RATE_LIMIT_BURST", "10"); err != nil {
		return
	}
	if cfg.BlogRequireAuth, err = strconv.ParseBool(getEnv("BLOG_REQUIRE_AUTH", "false")); err != nil {
		err = fmt.Errorf("BLOG_REQUIRE_AUTH: %w", err)
		return
	}

	return
}

// run initializes the logger, database, optional Redis and Kafka clients and
// the HTTP server. It blocks until ctx is cancelled or a shutdown signal arrives.
func run(ctx context.Context, cfg config) error {
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	log := logger.Log
	log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.PGUser, cfg.PGPassword, cfg.PGHost, cfg.PGPort, cfg.PGDB)
	log.Infow("Connecting to PostgreSQL", "host", cfg.PGHost, "port", cfg.PGPort, "db", cfg.PGDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("PostgreSQL ping failed: %w", err)
	}

	if err := migrations.Run(db.DB); err != nil {
		return fmt.Errorf("migrations failed: %w", err)
	}
	log.Info("Database migrations applied")

	// Connect to Redis
	var cache services.Cache
	if cfg.RedisHost != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
			Password:     cfg.RedisPassword,
			DB:           cfg.RedisDB,
			PoolSize:     cfg.RedisPoolSize,
			MinIdleConns: cfg.RedisMinIdleConns,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("Redis connection error: %w", err)
		}
		defer rdb.Close()
		cache = repositories.NewCacheRepository(rdb, time.Duration(cfg.RedisExpSecond)*time.Second)
		log.Infow("Redis cache enabled", "addr", rdb.Options().Addr)
	} else {
		log.Info("REDIS_HOST not set, read-through cache disabled")
	}

	// Kafka writer
	var events services.EventPublisher
	if len(cfg.KafkaBrokers) > 0 {
		writer := &kafka.Writer{
			Addr:                   kafka.TCP(cfg.KafkaBrokers...),
			Topic:                  cfg.KafkaTopic,
			Balancer:               &kafka.Hash{},
			BatchTimeout:           10 * time.Millisecond,
			WriteTimeout:           2 * time.Second,
			MaxAttempts:            3,
			AllowAutoTopicCreation: true,
		}
		defer writer.Close()
		events = services.NewKafkaEventPublisher(writer)
		log.Infow("Kafka events enabled", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	} else {
		log.Info("KAFKA_BROKERS not set, domain events disabled")
	}

	tokens := jwt.New(
		jwt.WithSecretKey(cfg.JWTSecretKey),
		jwt.WithExpiration(time.Duration(cfg.JWTExpSecond)*time.Second),
	)

	registry := newMetricsRegistry()
	metrics, err := middlewares.NewMetrics(registry)
	if err != nil {
		return fmt.Errorf("failed to register metrics: %w", err)
	}
	metricsHandler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})

	r := newRouter(cfg, db, cache, events, tokens, metrics, metricsHandler, log)

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("HTTP server shutdown error", "error", err)
	}

	log.Info("HTTP server stopped gracefully")
	return nil
}

// newRouter builds repositories, services and handlers and mounts them.
// cache and events may be nil.
func newRouter(
	cfg config,
	db *sqlx.DB,
	cache services.Cache,
	events services.EventPublisher,
	tokens *jwt.JWT,
	metrics *middlewares.Metrics,
	metricsHandler http.Handler,
	log *zap.SugaredLogger,
) http.Handler {
	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	courseReadRepo := repositories.NewCourseReadRepository(db)
	courseWriteRepo := repositories.NewCourseWriteRepository(db)
	enrollmentReadRepo := repositories.NewEnrollmentReadRepository(db, middlewares.GetTxFromContext)
	enrollmentWriteRepo := repositories.NewEnrollmentWriteRepository(db, middlewares.GetTxFromContext)
	postReadRepo := repositories.NewBlogPostReadRepository(db)
	postWriteRepo := repositories.NewBlogPostWriteRepository(db)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokens, events)
	courseService := services.NewCourseService(courseReadRepo, courseWriteRepo, cache, events)
	// enrollment changes share the request transaction, so their events wait for its commit
	var enrollmentEvents services.EventPublisher
	if events != nil {
		enrollmentEvents = services.NewAfterCommitPublisher(events, middlewares.AfterCommit)
	}
	enrollmentService := services.NewEnrollmentService(courseReadRepo, enrollmentReadRepo, enrollmentWriteRepo, enrollmentEvents)
	blogService := services.NewBlogService(postReadRepo, postWriteRepo, cache, events)

	authMiddleware := middlewares.AuthMiddleware(tokens)
	rateLimiter := middlewares.NewIPRateLimiter(cfg.AuthRateLimitRPS, cfg.AuthRateLimitBurst)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.RealIP)
	r.Use(middlewares.LoggingMiddleware(log))
	r.Use(middlewares.RecoverMiddleware)
	r.Use(metrics.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	notFound := handlers.NewNotFoundHandler()
	r.NotFound(notFound)
	r.MethodNotAllowed(notFound)

	r.Route("/api", func(r chi.Router) {
		r.Use(chimiddleware.SetHeader("Content-Type", "application/json"))

		r.Get("/health", handlers.NewHealthHandler())

		r.Route("/auth", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(middlewares.RateLimitMiddleware(rateLimiter))
				r.Post("/register", handlers.NewRegisterHandler(authService))
				r.Post("/login", handlers.NewLoginHandler(authService))
			})
			r.With(authMiddleware).Get("/me", handlers.NewMeHandler(authService))
		})

		r.Route("/courses", func(r chi.Router) {
			r.Get("/", handlers.NewListCoursesHandler(courseService))
			r.Get("/{id}", handlers.NewGetCourseHandler(courseService))
			r.With(authMiddleware).Post("/", handlers.NewCreateCourseHandler(courseService))
		})

		r.Route("/enrollments", func(r chi.Router) {
			r.Use(authMiddleware)
			r.With(middlewares.TxMiddleware(db, "Failed to fetch enrollments")).
				Get("/", handlers.NewListEnrollmentsHandler(enrollmentService))
			r.With(middlewares.TxMiddleware(db, "Failed to enroll")).
				Post("/{courseId}", handlers.NewEnrollHandler(enrollmentService))
			r.With(middlewares.TxMiddleware(db, "Failed to unenroll")).
				Delete("/{enrollmentId}", handlers.NewUnenrollHandler(enrollmentService))
		})

		r.Route("/blog", func(r chi.Router) {
			r.Get("/", handlers.NewListPostsHandler(blogService))
			r.Get("/{slug}", handlers.NewGetPostHandler(blogService))
			if cfg.BlogRequireAuth {
				r.With(authMiddleware).Post("/", handlers.NewCreatePostHandler(blogService))
			} else {
				log.Warn("POST /api/blog is mounted without authentication; set BLOG_REQUIRE_AUTH=true to guard it")
				r.Post("/", handlers.NewCreatePostHandler(blogService))
			}
		})
	})

	r.Handle("/metrics", metricsHandler)

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	return r
}

// newMetricsRegistry returns a registry with the Go and process collectors.
func newMetricsRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	return reg
}
