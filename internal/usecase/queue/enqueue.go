package queue

import (
	"context"
	"strings"
	"time"

	"github.com/BruksfildServices01/barber-queue/internal/audit"
	"github.com/BruksfildServices01/barber-queue/internal/domain/booking"
	"github.com/BruksfildServices01/barber-queue/internal/models"
	"github.com/BruksfildServices01/barber-queue/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

// EnqueueInput aceita um cliente cadastrado ou nome+telefone de walk-in.
type EnqueueInput struct {
	BarberID uint

	ClientID    *uint
	ClientName  string
	ClientPhone string

	ServiceID *uint
}

// ======================================================
// USE CASE
// ======================================================

type Enqueue struct {
	repo  booking.Repository
	audit *audit.Dispatcher
	clock timezone.Clock
}

func NewEnqueue(
	repo booking.Repository,
	audit *audit.Dispatcher,
	clock timezone.Clock,
) *Enqueue {
	return &Enqueue{
		repo:  repo,
		audit: audit,
		clock: clock,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *Enqueue) Execute(
	ctx context.Context,
	in EnqueueInput,
) (*models.Booking, error) {

	name := strings.TrimSpace(in.ClientName)
	if in.ClientID == nil && name == "" {
		return nil, booking.ErrClientRequired
	}

	var (
		created  *models.Booking
		queueLen int
	)

	err := uc.repo.WithBarberLock(ctx, in.BarberID, func(tx booking.Repository) error {

		// --------------------------------------------------
		// 1️⃣ Cliente e serviço no escopo do barbeiro
		// --------------------------------------------------
		b := &models.Booking{
			BarberID:       in.BarberID,
			Status:         string(booking.StatusWaiting),
			IsWalkin:       true,
			AddedToQueueAt: uc.clock.Now(),
		}

		if in.ClientID != nil {
			client, err := tx.GetClient(ctx, in.BarberID, *in.ClientID)
			if err != nil {
				return err
			}
			b.ClientID = &client.ID
			b.Client = client
		} else {
			b.ClientName = name
			b.ClientPhone = strings.TrimSpace(in.ClientPhone)
		}

		if in.ServiceID != nil {
			svc, err := tx.GetService(ctx, in.BarberID, *in.ServiceID)
			if err != nil {
				return err
			}
			b.ServiceID = &svc.ID
			b.Service = svc
		}

		// --------------------------------------------------
		// 2️⃣ Próxima posição: max + 1
		// --------------------------------------------------
		waiting, err := tx.ListWaiting(ctx, in.BarberID)
		if err != nil {
			return err
		}
		b.QueuePosition = booking.NextPosition(waiting)

		if err := tx.CreateBooking(ctx, b); err != nil {
			return err
		}

		created = b
		queueLen = len(waiting) + 1
		return nil
	})
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3️⃣ Auditoria
	// --------------------------------------------------
	uc.audit.Dispatch(queueEvent(in.BarberID, "booking_enqueued", created.ID, queueLen))

	return created, nil
}

func queueEvent(barberID uint, action string, bookingID uint, queueLen int) audit.Event {
	return audit.Event{
		BarberID: barberID,
		Action:   action,
		Entity:   "booking",
		EntityID: &bookingID,
		Metadata: map[string]any{"queue_length": queueLen},
	}
}

func localNow(clock timezone.Clock, barber *models.Barber) time.Time {
	return clock.Now().In(timezone.Location(barber.Timezone))
}
