package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	ginGzip "github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	cachecontrol "go.eigsys.de/gin-cachecontrol/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"lingvo/internal/game"
	"lingvo/internal/store"
)

const sessionCleanupInterval = 10 * time.Minute

func main() {
	_ = godotenv.Load()

	logger = setupLogger(isProductionEnv())
	defer func() { _ = logger.Sync() }()

	cfg, err := loadConfig()
	if err != nil {
		logFatal("Invalid configuration: %v", err)
	}
	logInfo("Starting lingvo in %s mode", map[bool]string{true: "production", false: "development"}[cfg.Production])
	if cfg.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	if !dirExists(cfg.WordsDir) {
		logFatal("Words directory %s does not exist", cfg.WordsDir)
	}
	words, err := game.LoadWordBank(cfg.WordsDir, logger)
	if err != nil {
		logFatal("Failed to load words: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, err := store.Open(ctx, cfg.DatabaseFile, logger)
	if err != nil {
		logFatal("Failed to open database: %v", err)
	}
	defer st.Close()
	if err := st.Migrate(ctx); err != nil {
		logFatal("Failed to apply migrations: %v", err)
	}

	app := newApp(cfg, words, st, logger)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		app.runSessionCleanup(gctx, sessionCleanupInterval)
		return nil
	})
	g.Go(func() error {
		return startServer(gctx, setupRouter(app), cfg.Port)
	})
	if err := g.Wait(); err != nil {
		logger.Error("server stopped", zap.Error(err))
		_ = st.Close()
		os.Exit(1)
	}
	logInfo("Server shutdown complete")
}

// setupRouter builds the gin engine with middleware and every route.
func setupRouter(app *App) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestIDMiddleware(), app.requestLogger())
	router.Use(ginGzip.Gzip(ginGzip.DefaultCompression))
	router.Use(cachecontrol.New(cachecontrol.Config{
		NoStore:        true,
		NoCache:        true,
		MustRevalidate: true,
	}))

	if err := router.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logWarn("Failed to set trusted proxies: %v", err)
	}

	limited := app.rateLimitMiddleware()

	router.POST(RouteRegister, limited, app.registerHandler)
	router.POST(RouteLogin, limited, app.loginHandler)
	router.GET(RouteDayWord, app.dayWordHandler)
	router.GET(RouteValidate, app.validateHandler)
	router.POST(RouteResult, limited, app.requireAuth(), app.resultHandler)
	router.GET(RouteStats, app.requireAuth(), app.statsHandler)
	router.GET(RouteGame, app.gameHandler)
	router.POST(RouteGameGuess, limited, app.optionalAuth(), app.guessHandler)
	router.POST(RouteGameReset, limited, app.resetHandler)
	router.GET(RouteHealthz, app.healthzHandler)

	return router
}

// startServer serves until ctx is cancelled, then shuts down gracefully.
func startServer(ctx context.Context, router *gin.Engine, port string) error {
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	idleConnsClosed := make(chan struct{})
	go func() {
		defer close(idleConnsClosed)
		<-ctx.Done()
		logInfo("Shutdown signal received, shutting down server gracefully...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logWarn("HTTP server Shutdown: %v", err)
		}
	}()

	logInfo("Server starting on http://localhost:%s", port)
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen on :%s: %w", port, err)
	}
	<-idleConnsClosed
	return nil
}
