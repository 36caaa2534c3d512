package queue

import (
	"context"

	"github.com/BruksfildServices01/barber-queue/internal/audit"
	"github.com/BruksfildServices01/barber-queue/internal/domain/booking"
	"github.com/BruksfildServices01/barber-queue/internal/models"
)

type RemoveFromQueue struct {
	repo  booking.Repository
	audit *audit.Dispatcher
}

func NewRemoveFromQueue(
	repo booking.Repository,
	audit *audit.Dispatcher,
) *RemoveFromQueue {
	return &RemoveFromQueue{
		repo:  repo,
		audit: audit,
	}
}

func (uc *RemoveFromQueue) Execute(
	ctx context.Context,
	barberID uint,
	bookingID uint,
) (*models.Booking, error) {

	var (
		removed  *models.Booking
		queueLen int
	)

	err := uc.repo.WithBarberLock(ctx, barberID, func(tx booking.Repository) error {
		b, err := tx.GetBooking(ctx, barberID, bookingID)
		if err != nil {
			return err
		}

		if err := booking.Remove(b); err != nil {
			return err
		}
		if err := tx.UpdateBooking(ctx, b); err != nil {
			return err
		}

		n, err := RenumberWaiting(ctx, tx, barberID)
		if err != nil {
			return err
		}

		removed = b
		queueLen = n
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(queueEvent(barberID, "booking_removed", removed.ID, queueLen))

	return removed, nil
}

// RenumberWaiting recarrega a fila e reatribui 1..n. Deve rodar dentro de WithBarberLock.
func RenumberWaiting(ctx context.Context, tx booking.Repository, barberID uint) (int, error) {
	waiting, err := tx.ListWaiting(ctx, barberID)
	if err != nil {
		return 0, err
	}

	if err := tx.SetQueuePositions(ctx, booking.Renumber(waiting)); err != nil {
		return 0, err
	}
	return len(waiting), nil
}
