package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"contrib.go.opencensus.io/integrations/ocsql"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.opencensus.io/plugin/ochttp"

	"github.com/recordhub/recordhub/config"
	"github.com/recordhub/recordhub/internal/database"
	"github.com/recordhub/recordhub/internal/domain"
	httpHandler "github.com/recordhub/recordhub/internal/http"
	"github.com/recordhub/recordhub/internal/http/middleware"
	"github.com/recordhub/recordhub/internal/repository"
	"github.com/recordhub/recordhub/internal/search"
	"github.com/recordhub/recordhub/internal/service"
	"github.com/recordhub/recordhub/pkg/cache"
	"github.com/recordhub/recordhub/pkg/logger"
	"github.com/recordhub/recordhub/pkg/mailer"
	"github.com/recordhub/recordhub/pkg/ratelimiter"
	"github.com/recordhub/recordhub/pkg/tracing"
)

const (
	requestTimeout = 30 * time.Second

	// sign-in and email reset attempts allowed per username and window
	attemptLimit  = 5
	attemptWindow = 5 * time.Minute
)

// AppInterface defines the interface for the App
type AppInterface interface {
	Initialize() error
	Start() error
	Shutdown(ctx context.Context) error

	GetConfig() *config.Config
	GetLogger() logger.Logger
	GetRouter() http.Handler
	GetDB() *sql.DB
	GetMailer() mailer.Mailer
	GetSearchEngine() domain.SearchEngine

	GetUserRepository() domain.UserRepository
	GetTableRepository() domain.TableRepository

	IsServerCreated() bool
	WaitForServerStart(ctx context.Context) bool

	InitTracing() error
	InitDB() error
	InitSearch() error
	InitMailer() error
	InitRepositories() error
	InitServices() error
	InitHandlers() error

	SetShutdownTimeout(timeout time.Duration)
	GetActiveRequestCount() int64
}

// App encapsulates the application dependencies and configuration
type App struct {
	config    *config.Config
	logger    logger.Logger
	db        *sql.DB
	mailer    mailer.Mailer
	engine    domain.SearchEngine
	exporters *tracing.Exporters

	limiter    *ratelimiter.RateLimiter
	tableCache *cache.MemoryCache[*domain.Table]

	userRepo       domain.UserRepository
	tableRepo      domain.TableRepository
	verifyCodeRepo domain.VerifyCodeRepository

	authService       *service.AuthService
	userService       *service.UserService
	verifyCodeService *service.VerifyCodeService
	tableService      *service.TableService
	recordService     *service.RecordDataService

	router chi.Router
	server *http.Server

	serverMu      sync.RWMutex
	serverStarted chan struct{}

	shutdownCtx     context.Context
	shutdownCancel  context.CancelFunc
	activeRequests  int64
	requestWg       sync.WaitGroup
	shutdownTimeout time.Duration
}

// AppOption defines a functional option for configuring the App
type AppOption func(*App)

// WithMockDB configures the app to use a mock database
func WithMockDB(db *sql.DB) AppOption {
	return func(a *App) {
		a.db = db
	}
}

// WithMockMailer configures the app to use a mock mailer
func WithMockMailer(m mailer.Mailer) AppOption {
	return func(a *App) {
		a.mailer = m
	}
}

// WithSearchEngine replaces the configured search backend
func WithSearchEngine(engine domain.SearchEngine) AppOption {
	return func(a *App) {
		a.engine = engine
	}
}

// WithLogger sets a custom logger
func WithLogger(logger logger.Logger) AppOption {
	return func(a *App) {
		a.logger = logger
	}
}

// NewApp creates a new application instance
func NewApp(cfg *config.Config, opts ...AppOption) AppInterface {
	shutdownCtx, shutdownCancel := context.WithCancel(context.Background())

	app := &App{
		config:          cfg,
		logger:          logger.NewLoggerWithLevel(cfg.LogLevel),
		serverStarted:   make(chan struct{}),
		shutdownCtx:     shutdownCtx,
		shutdownCancel:  shutdownCancel,
		shutdownTimeout: 30 * time.Second,
	}

	for _, opt := range opts {
		opt(app)
	}

	return app
}

// InitTracing initializes OpenCensus tracing and metrics exporters
func (a *App) InitTracing() error {
	exporters, err := tracing.InitTracing(&a.config.Tracing, a.logger)
	if err != nil {
		return fmt.Errorf("failed to initialize tracing: %w", err)
	}
	a.exporters = exporters
	return nil
}

// InitDB connects to PostgreSQL, creating the database and schema when missing
func (a *App) InitDB() error {
	if a.db != nil {
		return nil
	}

	dbCfg := &a.config.Database
	a.logger.WithFields(map[string]interface{}{
		"host":    dbCfg.Host,
		"port":    dbCfg.Port,
		"user":    dbCfg.User,
		"dbname":  dbCfg.DBName,
		"sslmode": dbCfg.SSLMode,
	}).Info("Connecting to database")

	if err := database.EnsureDatabaseExists(database.GetPostgresDSN(dbCfg), dbCfg.DBName); err != nil {
		return fmt.Errorf("failed to ensure database exists: %w", err)
	}

	driverName := "postgres"
	if a.config.Tracing.Enabled {
		var err error
		driverName, err = ocsql.Register(driverName, ocsql.WithAllTraceOptions())
		if err != nil {
			return fmt.Errorf("failed to register opencensus sql driver: %w", err)
		}
		a.logger.Info("Database driver wrapped with OpenCensus tracing")
	}

	db, err := sql.Open(driverName, database.GetSystemDSN(dbCfg))
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return fmt.Errorf("failed to ping database: %w", err)
	}

	if err := database.InitializeDatabase(db, a.config.RootUser); err != nil {
		db.Close()
		return fmt.Errorf("failed to initialize database schema: %w", err)
	}

	database.ConfigurePool(db)
	a.db = db
	return nil
}

// InitSearch connects the search engine holding table rows
func (a *App) InitSearch() error {
	if a.engine != nil {
		return nil
	}

	if a.config.Search.Backend == "memory" {
		a.engine = search.NewMemoryEngine()
		a.logger.Warn("Using in-memory search engine, row data is not persisted")
		return nil
	}

	var transport http.RoundTripper = http.DefaultTransport
	if a.config.Tracing.Enabled {
		transport = &ochttp.Transport{Base: transport}
	}

	engine, err := search.NewElasticsearchEngine(a.config.Search, transport, a.logger)
	if err != nil {
		return fmt.Errorf("failed to create search client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := engine.Ping(ctx); err != nil {
		// the cluster may come up after us; requests fail until it does
		a.logger.WithField("error", err.Error()).Warn("Search engine is not reachable")
	}

	a.engine = engine
	return nil
}

// InitMailer initializes the mailer used for verification codes
func (a *App) InitMailer() error {
	if a.mailer != nil {
		return nil
	}

	if a.config.IsDevelopment() {
		a.mailer = mailer.NewConsoleMailer()
		a.logger.Info("Using console mailer for development")
		return nil
	}

	a.mailer = mailer.NewSMTPMailer(&mailer.Config{
		SMTPHost:     a.config.SMTP.Host,
		SMTPPort:     a.config.SMTP.Port,
		SMTPUsername: a.config.SMTP.Username,
		SMTPPassword: a.config.SMTP.Password,
		FromEmail:    a.config.SMTP.FromEmail,
		FromName:     a.config.SMTP.FromName,
		CodeTTL:      a.config.Auth.VerifyCodeMaxAge,
	})
	a.logger.Info("Using SMTP mailer")
	return nil
}

// InitRepositories initializes all repositories
func (a *App) InitRepositories() error {
	if a.db == nil {
		return fmt.Errorf("database must be initialized before repositories")
	}

	a.userRepo = repository.NewUserRepository(a.db)
	a.tableRepo = repository.NewTableRepository(a.db)
	a.verifyCodeRepo = repository.NewVerifyCodeRepository(a.db)
	return nil
}

// InitServices initializes all application services
func (a *App) InitServices() error {
	if a.engine == nil {
		return fmt.Errorf("search engine must be initialized before services")
	}

	a.limiter = ratelimiter.NewRateLimiter()
	a.limiter.SetPolicy(service.SignInNamespace, attemptLimit, attemptWindow)
	a.limiter.SetPolicy(service.ResetNamespace, attemptLimit, attemptWindow)

	a.tableCache = cache.NewMemoryCache[*domain.Table](time.Minute)

	var err error
	a.authService, err = service.NewAuthService(service.AuthServiceConfig{
		Repository:    a.userRepo,
		PrivateKey:    a.config.Security.PasetoPrivateKeyBytes,
		PublicKey:     a.config.Security.PasetoPublicKeyBytes,
		SessionExpiry: a.config.Auth.SessionExpiry,
		RateLimiter:   a.limiter,
		Logger:        a.logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create auth service: %w", err)
	}

	a.verifyCodeService = service.NewVerifyCodeService(service.VerifyCodeServiceConfig{
		Repository: a.verifyCodeRepo,
		Mailer:     a.mailer,
		MaxAge:     a.config.Auth.VerifyCodeMaxAge,
		Logger:     a.logger,
	})

	a.userService = service.NewUserService(service.UserServiceConfig{
		Repository:        a.userRepo,
		VerifyCodeService: a.verifyCodeService,
		RateLimiter:       a.limiter,
		Logger:            a.logger,
	})

	a.tableService = service.NewTableService(service.TableServiceConfig{
		Repository:  a.tableRepo,
		Provisioner: service.NewIndexProvisioner(a.engine, a.logger),
		Cache:       a.tableCache,
		Logger:      a.logger,
	})

	a.recordService = service.NewRecordDataService(service.RecordDataServiceConfig{
		Tables: a.tableRepo,
		Engine: a.engine,
		Cache:  a.tableCache,
		Logger: a.logger,
	})

	return nil
}

// InitHandlers builds the router and registers every route
func (a *App) InitHandlers() error {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(a.gracefulShutdownMiddleware)
	r.Use(chimiddleware.Timeout(requestTimeout))
	r.Use(middleware.CORSMiddleware)
	if a.config.Tracing.Enabled {
		r.Use(middleware.TracingMiddleware)
	}

	requireAuth := middleware.RequireAuth(a.authService, a.logger)

	httpHandler.NewAuthHandler(a.authService, a.logger).RegisterRoutes(r)
	httpHandler.NewUserHandler(a.userService, a.logger).RegisterRoutes(r, requireAuth)
	httpHandler.NewTableHandler(a.tableService, a.logger).RegisterRoutes(r, requireAuth)
	httpHandler.NewRecordDataHandler(a.recordService, a.logger).RegisterRoutes(r, requireAuth)

	a.router = r
	return nil
}

// Start starts the HTTP server
func (a *App) Start() error {
	if a.router == nil {
		return fmt.Errorf("handlers must be initialized before start")
	}

	addr := fmt.Sprintf("%s:%d", a.config.Server.Host, a.config.Server.Port)
	a.logger.WithField("address", addr).Info("Server starting")

	a.serverMu.Lock()
	a.server = &http.Server{
		Addr:              addr,
		Handler:           a.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	serverStarted := a.serverStarted
	a.serverMu.Unlock()

	close(serverStarted)

	var err error
	if a.config.Server.SSL.Enabled {
		a.logger.WithField("cert_file", a.config.Server.SSL.CertFile).Info("SSL enabled")
		err = a.server.ListenAndServeTLS(a.config.Server.SSL.CertFile, a.config.Server.SSL.KeyFile)
	} else {
		err = a.server.ListenAndServe()
	}
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown stops accepting requests, waits for active ones, then releases resources
func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info("Starting graceful shutdown...")
	a.shutdownCancel()

	a.serverMu.RLock()
	server := a.server
	a.serverMu.RUnlock()

	if server == nil {
		return a.cleanupResources(ctx)
	}

	timeout := a.shutdownTimeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < timeout {
			timeout = remaining
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	a.logger.WithField("active_requests", a.GetActiveRequestCount()).
		WithField("timeout", timeout.String()).
		Info("Shutting down HTTP server")

	shutdownErr := server.Shutdown(shutdownCtx)

	requestsDone := make(chan struct{})
	go func() {
		a.requestWg.Wait()
		close(requestsDone)
	}()
	select {
	case <-requestsDone:
	case <-shutdownCtx.Done():
		a.logger.WithField("active_requests", a.GetActiveRequestCount()).Warn("Shutdown timeout reached, forcing shutdown")
	}

	if err := a.cleanupResources(ctx); err != nil && shutdownErr == nil {
		shutdownErr = err
	}

	if shutdownErr != nil {
		a.logger.WithField("error", shutdownErr.Error()).Error("Graceful shutdown completed with errors")
		return shutdownErr
	}
	a.logger.Info("Graceful shutdown completed successfully")
	return nil
}

func (a *App) cleanupResources(ctx context.Context) error {
	if a.limiter != nil {
		a.limiter.Stop()
	}
	if a.tableCache != nil {
		a.tableCache.Stop()
	}

	if a.exporters != nil && a.exporters.MetricsServer != nil {
		if err := a.exporters.MetricsServer.Shutdown(ctx); err != nil {
			a.logger.WithField("error", err.Error()).Warn("Error stopping metrics server")
		}
	}

	if a.db != nil {
		a.logger.Info("Closing database connection")
		if err := a.db.Close(); err != nil {
			a.logger.WithField("error", err.Error()).Error("Error closing database connection")
			return err
		}
	}
	return nil
}

// Initialize sets up all components of the application
func (a *App) Initialize() error {
	a.logger.WithField("version", a.config.Version).Info("Starting recordhub")

	steps := []func() error{
		a.InitTracing,
		a.InitDB,
		a.InitSearch,
		a.InitMailer,
		a.InitRepositories,
		a.InitServices,
		a.InitHandlers,
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}

	a.logger.Info("Application successfully initialized")
	return nil
}

// IsServerCreated safely checks if the server has been created
func (a *App) IsServerCreated() bool {
	a.serverMu.RLock()
	defer a.serverMu.RUnlock()
	return a.server != nil
}

// WaitForServerStart blocks until Start has created the server or ctx expires
func (a *App) WaitForServerStart(ctx context.Context) bool {
	a.serverMu.RLock()
	started := a.serverStarted
	a.serverMu.RUnlock()

	select {
	case <-started:
		return a.IsServerCreated()
	case <-ctx.Done():
		return false
	}
}

func (a *App) GetConfig() *config.Config {
	return a.config
}

func (a *App) GetLogger() logger.Logger {
	return a.logger
}

func (a *App) GetRouter() http.Handler {
	return a.router
}

func (a *App) GetDB() *sql.DB {
	return a.db
}

func (a *App) GetMailer() mailer.Mailer {
	return a.mailer
}

func (a *App) GetSearchEngine() domain.SearchEngine {
	return a.engine
}

func (a *App) GetUserRepository() domain.UserRepository {
	return a.userRepo
}

func (a *App) GetTableRepository() domain.TableRepository {
	return a.tableRepo
}

func (a *App) GetActiveRequestCount() int64 {
	return atomic.LoadInt64(&a.activeRequests)
}

func (a *App) SetShutdownTimeout(timeout time.Duration) {
	a.shutdownTimeout = timeout
}

func (a *App) isShuttingDown() bool {
	select {
	case <-a.shutdownCtx.Done():
		return true
	default:
		return false
	}
}

// gracefulShutdownMiddleware tracks active requests and refuses new ones once shutdown started
func (a *App) gracefulShutdownMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if a.isShuttingDown() {
			httpHandler.WriteJSONError(w, "Server is shutting down", http.StatusServiceUnavailable)
			return
		}

		atomic.AddInt64(&a.activeRequests, 1)
		a.requestWg.Add(1)
		defer func() {
			atomic.AddInt64(&a.activeRequests, -1)
			a.requestWg.Done()
		}()

		next.ServeHTTP(w, r)
	})
}

var _ AppInterface = (*App)(nil)
