package booking

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/barber-queue/internal/audit"
	domain "github.com/BruksfildServices01/barber-queue/internal/domain/booking"
	"github.com/BruksfildServices01/barber-queue/internal/models"
	"github.com/BruksfildServices01/barber-queue/internal/usecase/queue"
)

// CancelBooking cancela pelo token público ou pelo id no escopo do barbeiro.
type CancelBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancelBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CancelBooking {
	return &CancelBooking{
		repo:  repo,
		audit: audit,
	}
}

// GetByToken alimenta a página pública de cancelamento.
func (uc *CancelBooking) GetByToken(ctx context.Context, token string) (*models.Booking, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, domain.ErrBookingNotFound
	}
	return uc.repo.GetBookingByToken(ctx, token)
}

func (uc *CancelBooking) ByToken(ctx context.Context, token string) (*models.Booking, error) {
	b, err := uc.GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	return uc.cancel(ctx, b.BarberID, b.ID, "public")
}

func (uc *CancelBooking) ForBarber(ctx context.Context, barberID uint, bookingID uint) (*models.Booking, error) {
	return uc.cancel(ctx, barberID, bookingID, "barber")
}

func (uc *CancelBooking) cancel(
	ctx context.Context,
	barberID uint,
	bookingID uint,
	source string,
) (*models.Booking, error) {

	var (
		cancelled *models.Booking
		queueLen  = -1
	)

	err := uc.repo.WithBarberLock(ctx, barberID, func(tx domain.Repository) error {
		// relê sob lock: o status pode ter mudado desde a busca pelo token
		b, err := tx.GetBooking(ctx, barberID, bookingID)
		if err != nil {
			return err
		}

		wasWaiting := domain.Status(b.Status) == domain.StatusWaiting

		if err := domain.Cancel(b); err != nil {
			return err
		}
		if err := tx.UpdateBooking(ctx, b); err != nil {
			return err
		}

		if wasWaiting {
			if queueLen, err = queue.RenumberWaiting(ctx, tx, barberID); err != nil {
				return err
			}
		}

		cancelled = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	meta := map[string]any{"source": source}
	if queueLen >= 0 {
		meta["queue_length"] = queueLen
	}

	uc.audit.Dispatch(audit.Event{
		BarberID: barberID,
		Action:   "booking_cancelled",
		Entity:   "booking",
		EntityID: &cancelled.ID,
		Metadata: meta,
	})

	return cancelled, nil
}
