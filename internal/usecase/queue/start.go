package queue

import (
	"context"

	"github.com/BruksfildServices01/barber-queue/internal/audit"
	"github.com/BruksfildServices01/barber-queue/internal/domain/booking"
	"github.com/BruksfildServices01/barber-queue/internal/models"
	"github.com/BruksfildServices01/barber-queue/internal/timezone"
)

type StartInput struct {
	BarberID  uint
	BookingID uint
	ServiceID *uint
}

type StartFromQueue struct {
	repo  booking.Repository
	audit *audit.Dispatcher
	clock timezone.Clock
}

func NewStartFromQueue(
	repo booking.Repository,
	audit *audit.Dispatcher,
	clock timezone.Clock,
) *StartFromQueue {
	return &StartFromQueue{
		repo:  repo,
		audit: audit,
		clock: clock,
	}
}

// Execute só aceita o head da fila; a checagem e a transição acontecem sob o mesmo lock.
func (uc *StartFromQueue) Execute(
	ctx context.Context,
	in StartInput,
) (*models.Booking, error) {

	var (
		started  *models.Booking
		queueLen int
	)

	err := uc.repo.WithBarberLock(ctx, in.BarberID, func(tx booking.Repository) error {
		b, err := tx.GetBooking(ctx, in.BarberID, in.BookingID)
		if err != nil {
			return err
		}

		waiting, err := tx.ListWaiting(ctx, in.BarberID)
		if err != nil {
			return err
		}

		head := booking.Head(waiting)
		if head == nil || head.ID != b.ID {
			return booking.ErrNotQueueHead
		}

		var serviceID *uint
		if in.ServiceID != nil && b.ServiceID == nil {
			svc, err := tx.GetService(ctx, in.BarberID, *in.ServiceID)
			if err != nil {
				return err
			}
			serviceID = &svc.ID
			b.Service = svc
		}

		if err := booking.Start(b, serviceID, uc.clock.Now()); err != nil {
			return err
		}
		if err := tx.UpdateBooking(ctx, b); err != nil {
			return err
		}

		// o restante da fila sobe uma posição
		rest := waiting[1:]
		if err := tx.SetQueuePositions(ctx, booking.Renumber(rest)); err != nil {
			return err
		}

		started = b
		queueLen = len(rest)
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(queueEvent(in.BarberID, "booking_started", started.ID, queueLen))

	return started, nil
}
