package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/barber-queue/internal/audit"
	"github.com/BruksfildServices01/barber-queue/internal/config"
	dbpkg "github.com/BruksfildServices01/barber-queue/internal/db"
	"github.com/BruksfildServices01/barber-queue/internal/infra/cache"
	"github.com/BruksfildServices01/barber-queue/internal/infra/repository"
	"github.com/BruksfildServices01/barber-queue/internal/logging"
	"github.com/BruksfildServices01/barber-queue/internal/notify"
	"github.com/BruksfildServices01/barber-queue/internal/timezone"
	ucBooking "github.com/BruksfildServices01/barber-queue/internal/usecase/booking"
	ucQueue "github.com/BruksfildServices01/barber-queue/internal/usecase/queue"
	"github.com/BruksfildServices01/barber-queue/internal/worker"
)

func main() {

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("failed to load config")
	}
	logging.Setup(cfg.Log.Level)
	timezone.SetDefault(cfg.Timezone.Default)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect to database")
	}
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}()
	repo := repository.NewGormRepository(db)

	auditDispatcher := audit.NewDispatcher(audit.New(db))
	defer auditDispatcher.Close()

	notifier, closeNotifier := notify.FromConfig(cfg)
	defer func() {
		if err := closeNotifier(); err != nil {
			logrus.WithError(err).Warn("failed to close notifier")
		}
	}()

	// claims: redis quando configurado, memória no processo caso contrário
	var claims ucBooking.ReminderClaims
	if cfg.Redis.Addr != "" {
		rdb, err := cache.NewRedisClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			logrus.WithError(err).Fatal("failed to connect to redis")
		}
		defer rdb.Close()
		claims = cache.NewReminderClaims(rdb, cfg.Reminder.ClaimTTL)
	} else {
		logrus.Warn("redis not configured, reminder claims are process-local")
		claims = cache.NewMemoryClaims(cfg.Reminder.ClaimTTL)
	}

	clock := timezone.SystemClock{}
	opts := ucBooking.OptionsFromConfig(cfg)

	w := worker.NewQueueWorker(
		repo,
		ucQueue.NewPromoteDueAppointments(repo, auditDispatcher, clock),
		ucBooking.NewSendReminders(repo, notifier, claims, clock, opts),
		cfg.Worker.Interval,
	)

	w.Start(ctx)
}
