package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nattawut/office-management/internal"
	"github.com/nattawut/office-management/internal/auth"
	authPostgres "github.com/nattawut/office-management/internal/auth/postgres"
	"github.com/nattawut/office-management/internal/core/events"
	"github.com/nattawut/office-management/internal/customer"
	customerPostgres "github.com/nattawut/office-management/internal/customer/postgres"
	"github.com/nattawut/office-management/internal/employee"
	employeePostgres "github.com/nattawut/office-management/internal/employee/postgres"
	"github.com/nattawut/office-management/internal/transport/middleware"
	"github.com/nattawut/office-management/internal/transport/rest"
	"github.com/nattawut/office-management/internal/user"
	userPostgres "github.com/nattawut/office-management/internal/user/postgres"
	"github.com/nattawut/office-management/pkg/logger"

	"github.com/go-chi/chi"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle API requests`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config *internal.Config
	DB     *sqlx.DB
	Router *chi.Mux
	Logger *slog.Logger
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	slog.Info("Starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:         addr,
		Handler:      deps.Router,
		ReadTimeout:  deps.Config.Server.ReadTimeout,
		WriteTimeout: deps.Config.Server.WriteTimeout,
		IdleTimeout:  deps.Config.Server.IdleTimeout,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		slog.Info("Received signal, shutting down...", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}
		if err := deps.DB.Close(); err != nil {
			slog.Error("Database close error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}

	slog.Info("Server stopped")
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(config.Observability.Logging.Format, config.Observability.Logging.Level)
	appLogger := logger.L()

	db, err := initDB(config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	gdb, err := initGorm(db)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize orm: %w", err)
	}

	bus := events.NewEventBus(appLogger)
	audit := events.AuditLogger(appLogger)
	bus.Subscribe(events.TypeRecordCreated, audit)
	bus.Subscribe(events.TypeRecordUpdated, audit)
	bus.Subscribe(events.TypeRecordDeleted, audit)

	hasher := auth.NewPasswordHasher(config.Security.BCryptCost)
	tokenGen := auth.NewJWTTokenGenerator(config.Security.JWTSecret, config.Security.TokenDuration)

	authRepo := authPostgres.NewRepository(gdb)
	authService := auth.NewService(authRepo, tokenGen, hasher)
	authHandler := auth.NewHandler(authService)

	userRepo := userPostgres.NewUserRepository(gdb)
	userService := user.NewService(userRepo, hasher, bus, appLogger)
	userHandler := user.NewHandler(userService)

	customerRepo := customerPostgres.NewCustomerRepository(gdb)
	customerService := customer.NewService(customerRepo, bus, appLogger)
	customerHandler := customer.NewHandler(customerService)

	employeeRepo := employeePostgres.NewEmployeeRepository(gdb)
	employeeService := employee.NewService(employeeRepo, bus, appLogger)
	employeeHandler := employee.NewHandler(employeeService)

	// The server refuses to start without its initial admin account.
	if err := bootstrapDefaultUsers(gdb, hasher, appLogger); err != nil {
		return nil, fmt.Errorf("failed to bootstrap default users: %w", err)
	}

	var loginLimiter *middleware.RateLimiter
	if config.RateLimit.Enabled {
		loginLimiter = middleware.NewRateLimiter(config.RateLimit.LoginPerSecond, config.RateLimit.LoginBurst)
	}

	router := chi.NewRouter()
	rest.RegisterAllRoutes(router, db.DB, authHandler, userHandler, customerHandler, employeeHandler, loginLimiter, appLogger)

	return &Dependencies{
		Config: config,
		Logger: appLogger,
		DB:     db,
		Router: router,
	}, nil
}

// initDB initializes the database connection pool.
func initDB(cfg internal.DatabaseConfig) (*sqlx.DB, error) {
	const driver = "pgx"

	dbConn, err := sqlx.Connect(driver, cfg.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to open db connection: %w", err)
	}

	dbConn.SetMaxIdleConns(cfg.MaxIdleConns)
	dbConn.SetMaxOpenConns(cfg.MaxOpenConns)
	dbConn.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	dbConn.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	if err := dbConn.Ping(); err != nil {
		_ = dbConn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return dbConn, nil
}

// initGorm layers the ORM over the existing pool so both share connections.
// TranslateError turns driver-specific constraint violations into
// gorm.ErrDuplicatedKey, which the repositories rely on.
func initGorm(db *sqlx.DB) (*gorm.DB, error) {
	return gorm.Open(gormPostgres.New(gormPostgres.Config{
		Conn: db.DB,
	}), &gorm.Config{
		TranslateError: true,
		Logger:         gormLogger.Default.LogMode(gormLogger.Silent),
	})
}
