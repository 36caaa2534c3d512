package income

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barber-queue/internal/domain/booking"
	"github.com/BruksfildServices01/barber-queue/internal/httperr"
	"github.com/BruksfildServices01/barber-queue/internal/models"
)

var (
	ErrIncomeNotFound    = httperr.New(httperr.KindNotFound, "income_not_found")
	ErrNotCredit         = httperr.New(httperr.KindInvalidState, "income_not_credit")
	ErrCreditAlreadyPaid = httperr.New(httperr.KindInvalidState, "credit_already_paid")
)

// MarkCreditPaid quita uma venda fiado.
func MarkCreditPaid(in *models.Income, today time.Time) error {
	if booking.PaymentMethod(in.PaymentMethod) != booking.PaymentCredit {
		return ErrNotCredit
	}
	if in.CreditPaid {
		return ErrCreditAlreadyPaid
	}

	day := booking.Day(today)
	in.CreditPaid = true
	in.CreditPaidDate = &day
	return nil
}

type Repository interface {
	GetBarber(ctx context.Context, barberID uint) (*models.Barber, error)
	GetService(ctx context.Context, barberID uint, serviceID uint) (*models.Service, error)
	GetClient(ctx context.Context, barberID uint, clientID uint) (*models.Client, error)

	CreateIncome(ctx context.Context, in *models.Income) error
	GetIncome(ctx context.Context, barberID uint, incomeID uint) (*models.Income, error)
	UpdateIncome(ctx context.Context, in *models.Income) error
	ListIncomeByDate(ctx context.Context, barberID uint, date time.Time) ([]models.Income, error)

	// ListCredit devolve vendas fiado, não pagas primeiro. paid nil traz todas.
	ListCredit(ctx context.Context, barberID uint, paid *bool) ([]models.Income, error)
}
