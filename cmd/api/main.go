package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/BruksfildServices01/pause-manager/internal/audit"
	"github.com/BruksfildServices01/pause-manager/internal/config"
	dbpkg "github.com/BruksfildServices01/pause-manager/internal/db"
	"github.com/BruksfildServices01/pause-manager/internal/idempotency"
	"github.com/BruksfildServices01/pause-manager/internal/routes"
	"github.com/BruksfildServices01/pause-manager/internal/validators"
)

// @title        Pause Manager API
// @version      1.0.0
// @description  Gestion des pauses café, déjeuners, cocktails et réservations de salles.
// @BasePath     /api
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()})))

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		validators.Register(v)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := dbpkg.NewDB(ctx, cfg)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}

	// ======================================================
	// Auditoria assíncrona
	// ======================================================
	auditDispatcher := audit.NewDispatcher(audit.New(db))

	// ======================================================
	// Idempotency-Key (opcional)
	// ======================================================
	var idem idempotency.Store
	if cfg.IdempotencyEnabled() {
		rdb := idempotency.NewClient(cfg.RedisAddr)
		defer rdb.Close()

		if err := rdb.Ping(ctx).Err(); err != nil {
			slog.Warn("redis unreachable, idempotency keys will be ignored until it recovers", "addr", cfg.RedisAddr, "error", err)
		}
		idem = idempotency.NewRedisStore(rdb, cfg.IdempotencyTTL)
	}

	if !cfg.AuthEnabled() {
		slog.Warn("JWT_SECRET not set, API is running without authentication")
	}

	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	routes.RegisterRoutes(r, routes.Deps{
		DB:          db,
		Config:      cfg,
		Audit:       auditDispatcher,
		Idempotency: idem,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server running", "addr", cfg.Addr(), "timezone", cfg.Timezone)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
	}

	// esvazia a fila de auditoria antes de fechar o banco
	auditDispatcher.Close()

	if err := dbpkg.Close(db); err != nil {
		slog.Error("failed to close database", "error", err)
	}
}
