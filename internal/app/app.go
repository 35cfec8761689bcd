package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/yungbote/studyforge-backend/internal/db"
	"github.com/yungbote/studyforge-backend/internal/observability"
	"github.com/yungbote/studyforge-backend/internal/platform/logger"
	"github.com/yungbote/studyforge-backend/internal/sse"
)

type App struct {
	Log      *logger.Logger
	DB       *gorm.DB
	Cfg      Config
	Router   *gin.Engine
	Repos    Repos
	Services Services
	Clients  Clients
	SSEHub   *sse.SSEHub

	otelShutdown func(context.Context) error
}

func New(ctx context.Context) (*App, error) {
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	log.Info("Loading environment variables...")
	cfg := LoadConfig(log)

	otelShutdown := observability.InitOTel(ctx, log, observability.OtelConfig{
		ServiceName: cfg.ServiceName,
		Environment: cfg.Env,
		Version:     cfg.Version,
	})

	database, err := db.NewDatabaseService(log)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("init database: %w", err)
	}
	if err := database.AutoMigrateAll(); err != nil {
		log.Sync()
		return nil, fmt.Errorf("automigrate: %w", err)
	}
	theDB := database.DB()

	hub := sse.NewSSEHub(log)

	clients, err := wireClients(log)
	if err != nil {
		log.Sync()
		return nil, err
	}

	reposet := wireRepos(theDB, log)
	serviceset := wireServices(theDB, log, reposet, clients, hub)
	handlerset := wireHandlers(log, serviceset, hub)
	identity := wireMiddleware(log, reposet)
	router := wireRouter(cfg, handlerset, identity)

	return &App{
		Log:          log,
		DB:           theDB,
		Cfg:          cfg,
		Router:       router,
		Repos:        reposet,
		Services:     serviceset,
		Clients:      clients,
		SSEHub:       hub,
		otelShutdown: otelShutdown,
	}, nil
}

// Run serves HTTP until ctx is canceled, then drains in-flight requests.
func (a *App) Run(ctx context.Context) error {
	if a == nil || a.Router == nil {
		return fmt.Errorf("app not initialized")
	}

	if a.Clients.SSEBus != nil {
		if err := a.Clients.SSEBus.StartForwarder(ctx, a.SSEHub.Broadcast); err != nil {
			return fmt.Errorf("start SSE forwarder: %w", err)
		}
		a.Log.Info("SSE bus forwarder started")
	}

	srv := &http.Server{
		Addr:    ":" + a.Cfg.Port,
		Handler: a.Router,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.Log.Info("HTTP server listening", "port", a.Cfg.Port, "env", a.Cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	err := g.Wait()
	a.Close()
	return err
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if a.Clients.SSEBus != nil {
		_ = a.Clients.SSEBus.Close()
	}
	if a.otelShutdown != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = a.otelShutdown(shutdownCtx)
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}
