package worker

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/barber-queue/internal/models"
)

// BarberLister lista os tenants que o tick percorre.
type BarberLister interface {
	ListBarbers(ctx context.Context) ([]models.Barber, error)
}

type Promoter interface {
	Execute(ctx context.Context, barberID uint) ([]models.Booking, error)
}

type Reminder interface {
	Execute(ctx context.Context, barberID uint) (int, error)
}

// QueueWorker promove agendamentos vencidos e envia lembretes a cada intervalo.
type QueueWorker struct {
	barbers   BarberLister
	promote   Promoter
	reminders Reminder
	interval  time.Duration
}

func NewQueueWorker(
	barbers BarberLister,
	promote Promoter,
	reminders Reminder,
	interval time.Duration,
) *QueueWorker {
	if interval <= 0 {
		interval = time.Minute
	}
	return &QueueWorker{
		barbers:   barbers,
		promote:   promote,
		reminders: reminders,
		interval:  interval,
	}
}

func (w *QueueWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	logrus.WithField("interval", w.interval.String()).Info("queue worker started")

	w.RunOnce(ctx)
	for {
		select {
		case <-ctx.Done():
			logrus.Info("queue worker stopped")
			return
		case <-ticker.C:
			w.RunOnce(ctx)
		}
	}
}

// RunOnce processa todos os barbeiros; erro de um não interrompe os outros.
func (w *QueueWorker) RunOnce(ctx context.Context) {
	barbers, err := w.barbers.ListBarbers(ctx)
	if err != nil {
		logrus.WithError(err).Error("failed to list barbers")
		return
	}

	var promoted, reminded, failed int

	for _, b := range barbers {
		if ctx.Err() != nil {
			logrus.Info("tick interrupted by context cancellation")
			return
		}

		log := logrus.WithField("barber_id", b.ID)

		list, err := w.promote.Execute(ctx, b.ID)
		if err != nil {
			log.WithError(err).Error("promote due appointments failed")
			failed++
		}
		promoted += len(list)

		if !b.SMSNotificationsEnabled {
			continue
		}

		sent, err := w.reminders.Execute(ctx, b.ID)
		if err != nil {
			log.WithError(err).Error("send reminders failed")
			failed++
		}
		reminded += sent
	}

	entry := logrus.WithFields(logrus.Fields{
		"barbers":  len(barbers),
		"promoted": promoted,
		"reminded": reminded,
		"failed":   failed,
	})
	if failed > 0 {
		entry.Warn("queue tick finished with failures")
		return
	}
	entry.Debug("queue tick finished")
}
