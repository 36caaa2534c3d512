package queue

import (
	"context"

	"github.com/BruksfildServices01/barber-queue/internal/audit"
	"github.com/BruksfildServices01/barber-queue/internal/domain/booking"
	"github.com/BruksfildServices01/barber-queue/internal/models"
	"github.com/BruksfildServices01/barber-queue/internal/timezone"
)

// PromoteDueAppointments move pending/confirmed que já chegaram na hora para a fila.
// Posição existente é mantida quando livre, mas a fila é renumerada para 1..n no fim.
// Rodar de novo no mesmo instante não muda nada.
type PromoteDueAppointments struct {
	repo  booking.Repository
	audit *audit.Dispatcher
	clock timezone.Clock
}

func NewPromoteDueAppointments(
	repo booking.Repository,
	audit *audit.Dispatcher,
	clock timezone.Clock,
) *PromoteDueAppointments {
	return &PromoteDueAppointments{
		repo:  repo,
		audit: audit,
		clock: clock,
	}
}

func (uc *PromoteDueAppointments) Execute(
	ctx context.Context,
	barberID uint,
) ([]models.Booking, error) {

	var (
		promoted []models.Booking
		queueLen int
	)

	err := uc.repo.WithBarberLock(ctx, barberID, func(tx booking.Repository) error {
		barber, err := tx.GetBarber(ctx, barberID)
		if err != nil {
			return err
		}

		now := localNow(uc.clock, barber)

		due, err := tx.ListDue(ctx, barberID, booking.Day(now), booking.FormatClock(booking.ClockOf(now)))
		if err != nil {
			return err
		}
		if len(due) == 0 {
			return nil
		}

		waiting, err := tx.ListWaiting(ctx, barberID)
		if err != nil {
			return err
		}

		taken := make(map[int]bool, len(waiting))
		for _, w := range waiting {
			taken[w.QueuePosition] = true
		}
		next := booking.NextPosition(waiting)

		for i := range due {
			b := &due[i]
			if err := booking.Promote(b); err != nil {
				return err
			}

			// posição só é atribuída quando ausente (ou já ocupada)
			if b.QueuePosition == 0 || taken[b.QueuePosition] {
				for taken[next] {
					next++
				}
				b.QueuePosition = next
				next++
			}
			taken[b.QueuePosition] = true

			if err := tx.UpdateBooking(ctx, b); err != nil {
				return err
			}
		}

		// posição herdada pode deixar buraco; a fila volta a ser 1..n
		line, err := tx.ListWaiting(ctx, barberID)
		if err != nil {
			return err
		}
		if err := tx.SetQueuePositions(ctx, booking.Renumber(line)); err != nil {
			return err
		}

		final := make(map[uint]int, len(line))
		for _, w := range line {
			final[w.ID] = w.QueuePosition
		}
		for i := range due {
			due[i].QueuePosition = final[due[i].ID]
		}

		promoted = due
		queueLen = len(line)
		return nil
	})
	if err != nil {
		return nil, err
	}

	for _, b := range promoted {
		uc.audit.Dispatch(queueEvent(barberID, "booking_promoted", b.ID, queueLen))
	}

	return promoted, nil
}
