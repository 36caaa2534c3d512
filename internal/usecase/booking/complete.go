package booking

import (
	"context"

	"github.com/BruksfildServices01/barber-queue/internal/audit"
	domain "github.com/BruksfildServices01/barber-queue/internal/domain/booking"
	"github.com/BruksfildServices01/barber-queue/internal/models"
	"github.com/BruksfildServices01/barber-queue/internal/timezone"
)

type CompleteInput struct {
	BarberID      uint
	BookingID     uint
	PaymentMethod string

	// Amount substitui o preço do serviço quando informado.
	Amount *float64
	Notes  string
}

type CompleteBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	clock timezone.Clock
}

func NewCompleteBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
	clock timezone.Clock,
) *CompleteBooking {
	return &CompleteBooking{
		repo:  repo,
		audit: audit,
		clock: clock,
	}
}

// Execute finaliza o atendimento e grava a receita na mesma transação.
func (uc *CompleteBooking) Execute(
	ctx context.Context,
	in CompleteInput,
) (*models.Booking, *models.Income, error) {

	method := domain.PaymentMethod(in.PaymentMethod)
	if !method.Valid() {
		return nil, nil, domain.ErrInvalidPaymentMethod
	}
	if in.Amount != nil && *in.Amount <= 0 {
		return nil, nil, domain.ErrInvalidAmount
	}

	var (
		done   *models.Booking
		income *models.Income
	)

	err := uc.repo.WithBarberLock(ctx, in.BarberID, func(tx domain.Repository) error {
		b, err := tx.GetBooking(ctx, in.BarberID, in.BookingID)
		if err != nil {
			return err
		}

		barber, err := tx.GetBarber(ctx, in.BarberID)
		if err != nil {
			return err
		}
		now := uc.clock.Now()

		if err := domain.Complete(b, now); err != nil {
			return err
		}

		// --------------------------------------------------
		// Valor: override ou preço do serviço
		// --------------------------------------------------
		if b.Service == nil && b.ServiceID != nil {
			if b.Service, err = tx.GetService(ctx, in.BarberID, *b.ServiceID); err != nil {
				return err
			}
		}

		var amount float64
		switch {
		case in.Amount != nil:
			amount = *in.Amount
		case b.Service != nil:
			amount = b.Service.Price
		default:
			return domain.ErrAmountRequired
		}

		if err := tx.UpdateBooking(ctx, b); err != nil {
			return err
		}

		inc := &models.Income{
			BarberID:      in.BarberID,
			BookingID:     &b.ID,
			ClientID:      b.ClientID,
			ServiceID:     b.ServiceID,
			IsWalkin:      b.IsWalkin,
			Amount:        amount,
			PaymentMethod: string(method),
			Date:          domain.Day(now.In(timezone.Location(barber.Timezone))),
			Notes:         in.Notes,
		}
		if b.ClientID == nil {
			inc.ClientName = b.ClientName
		}
		if err := tx.CreateIncome(ctx, inc); err != nil {
			return err
		}

		done = b
		income = inc
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BarberID: in.BarberID,
		Action:   "booking_completed",
		Entity:   "booking",
		EntityID: &done.ID,
		Metadata: map[string]any{
			"income_id":      income.ID,
			"amount":         income.Amount,
			"payment_method": income.PaymentMethod,
		},
	})

	return done, income, nil
}
