package booking

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	domain "github.com/BruksfildServices01/barber-queue/internal/domain/booking"
	"github.com/BruksfildServices01/barber-queue/internal/timezone"
)

// SendReminders envia o lembrete de quem começa entre ReminderLeadMin e
// ReminderLeadMax minutos. Falhas de envio são logadas e não interrompem o lote.
type SendReminders struct {
	repo     domain.Repository
	notifier ReminderNotifier
	claims   ReminderClaims
	clock    timezone.Clock
	opts     Options
}

func NewSendReminders(
	repo domain.Repository,
	notifier ReminderNotifier,
	claims ReminderClaims,
	clock timezone.Clock,
	opts Options,
) *SendReminders {
	return &SendReminders{
		repo:     repo,
		notifier: notifier,
		claims:   claims,
		clock:    clock,
		opts:     opts,
	}
}

func (uc *SendReminders) Execute(ctx context.Context, barberID uint) (int, error) {
	barber, err := uc.repo.GetBarber(ctx, barberID)
	if err != nil {
		return 0, err
	}
	if !barber.SMSNotificationsEnabled {
		return 0, nil
	}

	now := uc.clock.Now().In(timezone.Location(barber.Timezone))

	list, err := uc.repo.ListBookingsForDate(
		ctx,
		barberID,
		domain.Day(now),
		[]domain.Status{domain.StatusPending, domain.StatusConfirmed},
	)
	if err != nil {
		return 0, err
	}

	sent := 0
	for _, b := range list {
		if b.SMSReminderSent || b.AppointmentTime == nil {
			continue
		}

		start, err := domain.ParseClock(*b.AppointmentTime)
		if err != nil {
			continue
		}
		at := time.Date(now.Year(), now.Month(), now.Day(), start/60, start%60, 0, 0, now.Location())

		lead := at.Sub(now).Minutes()
		if lead < uc.opts.ReminderLeadMin || lead > uc.opts.ReminderLeadMax {
			continue
		}

		log := logrus.WithFields(logrus.Fields{
			"barber_id":  barberID,
			"booking_id": b.ID,
		})

		ok, err := uc.claims.Claim(ctx, b.ID)
		if err != nil {
			log.WithError(err).Warn("reminder claim failed")
			continue
		}
		if !ok {
			continue
		}

		b.Barber = barber
		if err := uc.notifier.NotifyReminder(ctx, b); err != nil {
			log.WithError(err).Warn("reminder not sent")
			if err := uc.claims.Release(ctx, b.ID); err != nil {
				log.WithError(err).Warn("reminder claim release failed")
			}
			continue
		}

		if err := uc.repo.MarkReminderSent(ctx, b.ID); err != nil {
			log.WithError(err).Error("failed to mark reminder sent")
			continue
		}
		sent++
	}

	return sent, nil
}
