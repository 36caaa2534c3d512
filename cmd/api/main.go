package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/barber-queue/internal/audit"
	"github.com/BruksfildServices01/barber-queue/internal/config"
	dbpkg "github.com/BruksfildServices01/barber-queue/internal/db"
	"github.com/BruksfildServices01/barber-queue/internal/infra/repository"
	"github.com/BruksfildServices01/barber-queue/internal/logging"
	"github.com/BruksfildServices01/barber-queue/internal/metrics"
	"github.com/BruksfildServices01/barber-queue/internal/middleware"
	"github.com/BruksfildServices01/barber-queue/internal/notify"
	"github.com/BruksfildServices01/barber-queue/internal/routes"
	"github.com/BruksfildServices01/barber-queue/internal/timezone"
)

func main() {

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("failed to load config")
	}
	logging.Setup(cfg.Log.Level)
	timezone.SetDefault(cfg.Timezone.Default)

	// 1️⃣ Banco
	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect to database")
	}
	if err := dbpkg.Migrate(db, cfg.Timezone.Default); err != nil {
		logrus.WithError(err).Fatal("failed to migrate database")
	}
	repo := repository.NewGormRepository(db)

	// 2️⃣ Métricas + auditoria
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(reg)
	auditDispatcher := audit.NewDispatcher(audit.New(db), m)

	// 3️⃣ SMS
	notifier, closeNotifier := notify.FromConfig(cfg)
	confirmations := notify.NewDispatcher(notifier, repo)

	// 4️⃣ HTTP
	gin.SetMode(cfg.Server.Mode)
	r := gin.New()
	r.Use(middleware.Logger(), gin.Recovery())

	routes.RegisterRoutes(r, routes.Deps{
		Store:         repo,
		DB:            db,
		Config:        cfg,
		Audit:         auditDispatcher,
		Confirmations: confirmations,
		Metrics:       m,
		Gatherer:      reg,
		Clock:         timezone.SystemClock{},
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logrus.WithField("addr", srv.Addr).Info("server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.WithError(err).Fatal("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logrus.WithError(err).Error("server forced to shutdown")
	}

	confirmations.Close()
	auditDispatcher.Close()
	if err := closeNotifier(); err != nil {
		logrus.WithError(err).Warn("failed to close notifier")
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}

	logrus.Info("server stopped")
}
