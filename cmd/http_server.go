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

	"github.com/go-chi/chi"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	internal "github.com/nominahr/payroll-management/internal"
	"github.com/nominahr/payroll-management/internal/auth"
	authPostgres "github.com/nominahr/payroll-management/internal/auth/postgres"
	"github.com/nominahr/payroll-management/internal/banco"
	bancoPostgres "github.com/nominahr/payroll-management/internal/banco/postgres"
	"github.com/nominahr/payroll-management/internal/core/events"
	"github.com/nominahr/payroll-management/internal/departamento"
	departamentoPostgres "github.com/nominahr/payroll-management/internal/departamento/postgres"
	"github.com/nominahr/payroll-management/internal/direccion"
	direccionPostgres "github.com/nominahr/payroll-management/internal/direccion/postgres"
	"github.com/nominahr/payroll-management/internal/empleado"
	empleadoPostgres "github.com/nominahr/payroll-management/internal/empleado/postgres"
	"github.com/nominahr/payroll-management/internal/nomina"
	nominaPostgres "github.com/nominahr/payroll-management/internal/nomina/postgres"
	"github.com/nominahr/payroll-management/internal/novedad"
	novedadPostgres "github.com/nominahr/payroll-management/internal/novedad/postgres"
	"github.com/nominahr/payroll-management/internal/parametro"
	parametroPostgres "github.com/nominahr/payroll-management/internal/parametro/postgres"
	"github.com/nominahr/payroll-management/internal/persona"
	personaPostgres "github.com/nominahr/payroll-management/internal/persona/postgres"
	"github.com/nominahr/payroll-management/internal/provision"
	provisionPostgres "github.com/nominahr/payroll-management/internal/provision/postgres"
	"github.com/nominahr/payroll-management/internal/rbac"
	rbacPostgres "github.com/nominahr/payroll-management/internal/rbac/postgres"
	"github.com/nominahr/payroll-management/internal/transport"
	"github.com/nominahr/payroll-management/internal/transport/rest"
	"github.com/nominahr/payroll-management/internal/user"
	userPostgres "github.com/nominahr/payroll-management/internal/user/postgres"
	"github.com/nominahr/payroll-management/internal/workspace"
	workspacePostgres "github.com/nominahr/payroll-management/internal/workspace/postgres"
	"github.com/nominahr/payroll-management/pkg/logger"
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

	if err := setupRoutes(deps); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up routes: %v\n", err)
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

func setupRoutes(deps *Dependencies) error {
	// Validate the served API document before accepting traffic.
	if _, err := rest.LoadOpenAPISpec(context.Background(), deps.Config.OpenAPI.SpecPath); err != nil {
		return fmt.Errorf("failed to load OpenAPI spec: %w", err)
	}

	gormDB, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: deps.DB.DB}), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("failed to bind gorm to connection pool: %w", err)
	}

	handlers := buildHandlers(deps, gormDB)
	rest.RegisterAllRoutes(deps.Router, deps.DB.DB, handlers, deps.Logger)
	return nil
}

func buildHandlers(deps *Dependencies, gormDB *gorm.DB) rest.Handlers {
	log := deps.Logger
	base := transport.NewBaseHandler(log)
	eventBus := events.NewEventBus(log)

	// auth and rbac
	rbacRepo := rbacPostgres.NewRepository(gormDB)
	rbacService := rbac.NewService(rbacRepo, log)

	tokenGen := auth.NewJWTTokenGenerator(
		deps.Config.Security.AccessTokenSecret,
		deps.Config.Security.RefreshTokenSecret,
		deps.Config.Security.AccessTokenDuration,
		deps.Config.Security.RefreshTokenDuration,
	)
	authService := auth.NewService(
		authPostgres.NewRepository(gormDB),
		rbacPostgres.NewAuthAdapter(rbacRepo),
		tokenGen,
		deps.Config.Security.BCryptCost,
	)
	authHandler := auth.NewHandler(authService)

	userService := user.NewService(userPostgres.NewRepository(gormDB), authService, rbacService, log)

	// catalogs
	personaService := persona.NewService(personaPostgres.NewRepository(gormDB), log)
	direccionService := direccion.NewService(direccionPostgres.NewRepository(gormDB), log)
	departamentoService := departamento.NewService(departamentoPostgres.NewRepository(gormDB), log)
	bancoService := banco.NewService(bancoPostgres.NewRepository(gormDB), log)
	parametroService := parametro.NewService(parametroPostgres.NewRepository(gormDB), log)
	novedadService := novedad.NewService(novedadPostgres.NewRepository(gormDB), parametroService, log)
	empleadoService := empleado.NewService(
		empleadoPostgres.NewRepository(gormDB),
		personaService, departamentoService, bancoService, log)
	provisionService := provision.NewService(provisionPostgres.NewRepository(gormDB), empleadoService, log)

	// payroll periods and runs
	workspaceService := workspace.NewService(workspacePostgres.NewRepository(gormDB), eventBus, log)
	workspaceService.RegisterEventHandlers(eventBus)
	nominaService := nomina.NewService(
		nominaPostgres.NewRepository(gormDB),
		empleadoService, workspaceService, eventBus, log)

	return rest.Handlers{
		Auth:         authHandler,
		Persona:      persona.NewHandler(base, personaService),
		Direccion:    direccion.NewHandler(base, direccionService),
		Departamento: departamento.NewHandler(base, departamentoService),
		Banco:        banco.NewHandler(base, bancoService),
		Empleado:     empleado.NewHandler(base, empleadoService),
		Parametro:    parametro.NewHandler(base, parametroService),
		Novedad:      novedad.NewHandler(base, novedadService),
		Provision:    provision.NewHandler(base, provisionService),
		Nomina:       nomina.NewHandler(base, nominaService),
		Workspace:    workspace.NewHandler(base, workspaceService),
		RBAC:         rbac.NewHandler(base, rbacService),
		User:         user.NewHandler(base, userService),
	}
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(config.Logging.Format)

	db, err := initDB(config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return &Dependencies{
		Config: config,
		Logger: logger.LoggerWrapper(),
		DB:     db,
		Router: chi.NewRouter(),
	}, nil
}

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
