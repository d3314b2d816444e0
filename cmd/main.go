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
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-library-backend/internal/handlers"
	"github.com/sbilibin2017/gw-library-backend/internal/jwt"
	"github.com/sbilibin2017/gw-library-backend/internal/logger"
	"github.com/sbilibin2017/gw-library-backend/internal/middlewares"
	"github.com/sbilibin2017/gw-library-backend/internal/models"
	"github.com/sbilibin2017/gw-library-backend/internal/repositories"
	"github.com/sbilibin2017/gw-library-backend/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/sbilibin2017/gw-library-backend/docs"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title gw-library-backend API
// @version 1.0.0
// @description Backend service for managing a library catalog, users and borrowing workflow
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
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns, redisExpSecond,
		kafkaBrokers, kafkaTopic,
		jwtSecret, jwtExpSecond,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns, redisExpSecond,
		kafkaBrokers, kafkaTopic,
		jwtSecret, jwtExpSecond,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s, Commit: %s, Build: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns
// all application, database, Redis, Kafka, logging, and JWT configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns, redisExpSecond int,
	kafkaBrokers, kafkaTopic string,
	jwtSecretKey string, jwtExpSecond int,
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

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "database")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	redisHost = getEnv("REDIS_HOST", "localhost")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")
	if redisPoolSize, err = strconv.Atoi(getEnv("REDIS_POOL_SIZE", "10")); err != nil {
		return
	}
	if redisMinIdleConns, err = strconv.Atoi(getEnv("REDIS_MIN_IDLE_CONNS", "2")); err != nil {
		return
	}
	if redisExpSecond, err = strconv.Atoi(getEnv("REDIS_EXP_SECOND", "60")); err != nil {
		return
	}

	// Kafka config, empty brokers disable event publishing
	kafkaBrokers = getEnv("KAFKA_BROKERS", "")
	kafkaTopic = getEnv("KAFKA_TOPIC", "loan-events")

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "3600")); err != nil {
		return
	}

	return
}

// run initializes the logger, database, Redis, Kafka writer, and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns, redisExpSecond int,
	kafkaBrokers, kafkaTopic string,
	jwtSecretKey string, jwtExpSecond int,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	logger.Log.Infof("Connecting to PostgreSQL: %s:%d/%s", pgHost, pgPort, pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Errorw("PostgreSQL connection error", "error", err)
		return err
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Errorw("PostgreSQL ping failed", "error", err)
		return err
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password:     redisPassword,
		DB:           redisDB,
		PoolSize:     redisPoolSize,
		MinIdleConns: redisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Errorw("Redis connection error", "error", err)
		return err
	}
	defer rdb.Close()

	// Kafka writer for loan events, optional
	var kafkaWriter services.KafkaWriter
	if kafkaBrokers != "" {
		w := &kafka.Writer{
			Addr:     kafka.TCP(strings.Split(kafkaBrokers, ",")...),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer w.Close()
		kafkaWriter = w
		logger.Log.Infof("Kafka writer initialized for topic %s", kafkaTopic)
	}

	// Initialize JWT service
	jwtSvc := jwt.New(jwtSecretKey, time.Duration(jwtExpSecond)*time.Second)

	// Wall clock for loan timestamps and overdue checks
	clock := services.Clock(time.Now)

	// Initialize repositories
	bookReadRepo := repositories.NewBookReadRepository(db, middlewares.GetTxFromContext)
	bookWriteRepo := repositories.NewBookWriteRepository(db, middlewares.GetTxFromContext)
	userReadRepo := repositories.NewUserReadRepository(db, middlewares.GetTxFromContext)
	userWriteRepo := repositories.NewUserWriteRepository(db, middlewares.GetTxFromContext)
	txnReadRepo := repositories.NewTransactionReadRepository(db, middlewares.GetTxFromContext)
	txnWriteRepo := repositories.NewTransactionWriteRepository(db, middlewares.GetTxFromContext)
	analyticsRepo := repositories.NewAnalyticsReadRepository(db)
	cacheRepo := repositories.NewAnalyticsCacheRepository(rdb, time.Duration(redisExpSecond)*time.Second)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, jwtSvc)
	userService := services.NewUserService(userReadRepo, userWriteRepo)
	bookService := services.NewBookService(bookReadRepo, bookWriteRepo)
	loanService := services.NewLoanService(bookReadRepo, bookWriteRepo, userReadRepo, txnReadRepo, txnWriteRepo, kafkaWriter, clock)
	transactionService := services.NewTransactionService(txnReadRepo, txnReadRepo)
	analyticsService := services.NewAnalyticsService(analyticsRepo, cacheRepo, txnReadRepo, clock)

	// Initialize handlers
	registerHandler := handlers.NewRegisterHandler(authService)
	loginHandler := handlers.NewLoginHandler(authService)
	createBookHandler := handlers.NewCreateBookHandler(bookService)
	getBookHandler := handlers.NewGetBookHandler(bookService)
	searchBooksHandler := handlers.NewSearchBooksHandler(bookService)
	updateBookHandler := handlers.NewUpdateBookHandler(bookService)
	deleteBookHandler := handlers.NewDeleteBookHandler(bookService)
	borrowHandler := handlers.NewBorrowBookHandler(loanService, clock)
	returnHandler := handlers.NewReturnBookHandler(loanService)
	borrowedHandler := handlers.NewBorrowedBooksHandler(analyticsService, clock)
	overdueHandler := handlers.NewOverdueBooksHandler(analyticsService, clock)
	listTransactionsHandler := handlers.NewListTransactionsHandler(transactionService, clock)
	getTransactionHandler := handlers.NewGetTransactionHandler(transactionService)
	popularBooksHandler := handlers.NewPopularBooksHandler(analyticsService)
	popularAuthorsHandler := handlers.NewPopularAuthorsHandler(analyticsService)
	analysisHandler := handlers.NewTransactionsAnalysisHandler(analyticsService, clock)
	listUsersHandler := handlers.NewListUsersHandler(userService)
	getUserHandler := handlers.NewGetUserHandler(userService)
	updateUserHandler := handlers.NewUpdateUserHandler(userService)
	deleteUserHandler := handlers.NewDeleteUserHandler(userService)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	r.Route("/api/v1", func(r chi.Router) {
		// Public routes
		r.Post("/register", registerHandler)
		r.Post("/login", loginHandler)

		// Authenticated routes
		r.Group(func(r chi.Router) {
			r.Use(middlewares.AuthMiddleware(jwtSvc))

			r.Get("/books", searchBooksHandler)
			r.Get("/books/borrowed", borrowedHandler)
			r.Get("/books/borrowed/overdue", overdueHandler)
			r.Get("/books/{bookID}", getBookHandler)

			// The borrow/return workflow runs inside a per-request
			// transaction so inventory and loan writes land together.
			r.Group(func(r chi.Router) {
				r.Use(middlewares.TxMiddleware(db))
				r.Post("/books/{bookID}/borrow", borrowHandler)
				r.Post("/books/{bookID}/return", returnHandler)
			})

			r.Get("/transactions", listTransactionsHandler)
			r.Get("/transactions/{transactionID}", getTransactionHandler)

			r.Get("/analytics/popular-books", popularBooksHandler)
			r.Get("/analytics/popular-authors", popularAuthorsHandler)
			r.Get("/analytics/transactions", analysisHandler)
		})

		// Librarian-only routes
		r.Group(func(r chi.Router) {
			r.Use(middlewares.RoleMiddleware(jwtSvc, models.RoleLibrarian))

			r.Post("/books", createBookHandler)
			r.Put("/books/{bookID}", updateBookHandler)
			r.Delete("/books/{bookID}", deleteBookHandler)

			r.Get("/users", listUsersHandler)
			r.Get("/users/{userID}", getUserHandler)
			r.Put("/users/{userID}", updateUserHandler)
			r.Delete("/users/{userID}", deleteUserHandler)
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
