package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/socialhax/socialhax/internal/config"
	"github.com/socialhax/socialhax/internal/handlers"
	"github.com/socialhax/socialhax/internal/kvstore"
	"github.com/socialhax/socialhax/internal/migrations"
	"github.com/socialhax/socialhax/internal/services"
	"github.com/socialhax/socialhax/internal/storage"
	"go.uber.org/zap"
)

// App структура для управления приложением и его зависимостями.
type App struct {
	cfg    *config.Config
	logger *zap.Logger
	kv     kvstore.Store
	echo   *echo.Echo

	// Handlers
	orderHandler   *handlers.OrderHandler
	fundsHandler   *handlers.FundsHandler
	profileHandler *handlers.ProfileHandler
}

// NewApp создаёт и инициализирует новое приложение.
func NewApp(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	app := &App{
		cfg:    cfg,
		logger: logger,
	}

	if err := app.initStore(ctx); err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	app.initDependencies()
	app.initServer()

	return app, nil
}

// initStore выбирает бэкенд слота ключ-значение: PostgreSQL, Redis
// или память процесса, когда внешнее хранилище не сконфигурировано.
func (app *App) initStore(ctx context.Context) error {
	if app.cfg.DatabaseURI != "" {
		return app.initPostgres(ctx)
	}

	if app.cfg.RedisAddr != "" {
		return app.initRedis(ctx)
	}

	app.logger.Warn("no storage backend configured, state will not survive restarts")
	app.kv = kvstore.NewMemoryStore()
	return nil
}

// initPostgres применяет миграции и подключает пул соединений.
func (app *App) initPostgres(ctx context.Context) error {
	app.logger.Info("running database migrations")
	sqlDB, err := sql.Open("pgx", app.cfg.DatabaseURI)
	if err != nil {
		return fmt.Errorf("unable to open database connection: %w", err)
	}
	defer sqlDB.Close()

	if err := migrations.Run(sqlDB); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	pool, err := pgxpool.New(ctx, app.cfg.DatabaseURI)
	if err != nil {
		return fmt.Errorf("unable to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		return fmt.Errorf("unable to ping database: %w", err)
	}

	app.kv = kvstore.NewPostgresStore(pool)
	app.logger.Info("using postgres storage backend")

	return nil
}

// initRedis подключает клиент Redis и проверяет доступность.
func (app *App) initRedis(ctx context.Context) error {
	store := kvstore.NewRedisStore(app.cfg.RedisAddr)
	if err := store.Ping(ctx); err != nil {
		return fmt.Errorf("unable to ping redis: %w", err)
	}

	app.kv = store
	app.logger.Info("using redis storage backend", zap.String("addr", app.cfg.RedisAddr))

	return nil
}

// initDependencies инициализирует все зависимости приложения (storage, services, handlers).
func (app *App) initDependencies() {
	// Storage layer
	orderStore := storage.NewOrderStore(app.kv, app.logger)
	fundsStore := storage.NewFundsStore(app.kv, app.logger)
	picStore := storage.NewProfilePicStore(app.kv, app.logger)

	// Service layer
	orderService := services.NewOrderService(orderStore)
	fundsService := services.NewFundsService(fundsStore)
	profileService := services.NewProfileService(picStore)

	// Handler layer
	app.orderHandler = handlers.NewOrderHandler(orderService)
	app.fundsHandler = handlers.NewFundsHandler(fundsService)
	app.profileHandler = handlers.NewProfileHandler(profileService)
}

// initServer инициализирует HTTP-сервер и настраивает маршруты.
func (app *App) initServer() {
	e := echo.New()

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.Gzip())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{echo.GET, echo.POST, echo.PUT, echo.DELETE},
	}))

	api := e.Group("/api")

	// Леджер заказов
	api.GET("/orders", app.orderHandler.GetOrders)
	api.POST("/orders", app.orderHandler.CreateOrder)
	api.POST("/orders/reorder", app.orderHandler.ReorderOrders)
	api.PUT("/orders/:id", app.orderHandler.UpdateOrder)
	api.POST("/orders/:id/progress", app.orderHandler.IncrementProgress)
	api.GET("/orders/:id/logs", app.orderHandler.GetProcessLog)

	// Кошелёк
	api.GET("/funds", app.fundsHandler.GetFunds)
	api.POST("/funds", app.fundsHandler.TopUp)

	// Профиль цели и прайс
	api.POST("/profile/picture", app.profileHandler.UploadPicture)
	api.GET("/profile/picture", app.profileHandler.TakePicture)
	api.GET("/profile/:platform/:username", app.profileHandler.GetProfile)
	api.GET("/quote/:platform", app.profileHandler.GetQuote)

	app.echo = e
}

// Start запускает приложение.
func (app *App) Start(ctx context.Context) error {
	app.logger.Info("starting server", zap.String("addr", app.cfg.RunAddress))
	if err := app.echo.Start(app.cfg.RunAddress); err != nil {
		return fmt.Errorf("server stopped: %w", err)
	}

	return nil
}

// Shutdown корректно завершает работу приложения.
func (app *App) Shutdown(ctx context.Context) error {
	app.logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := app.echo.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	if app.kv != nil {
		if err := app.kv.Close(); err != nil {
			app.logger.Warn("failed to close storage backend", zap.Error(err))
		}
	}

	app.logger.Info("server gracefully stopped")
	return nil
}
