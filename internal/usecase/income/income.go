package income

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/barber-queue/internal/audit"
	"github.com/BruksfildServices01/barber-queue/internal/domain/booking"
	domain "github.com/BruksfildServices01/barber-queue/internal/domain/income"
	"github.com/BruksfildServices01/barber-queue/internal/models"
	"github.com/BruksfildServices01/barber-queue/internal/timezone"
)

// RecordInput é uma venda avulsa, sem booking.
type RecordInput struct {
	ClientID      *uint
	ServiceID     *uint
	ClientName    string
	IsWalkin      bool
	Amount        float64
	PaymentMethod string
	Date          string
	Notes         string
}

type Incomes struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	clock timezone.Clock
}

func NewIncomes(
	repo domain.Repository,
	audit *audit.Dispatcher,
	clock timezone.Clock,
) *Incomes {
	return &Incomes{
		repo:  repo,
		audit: audit,
		clock: clock,
	}
}

func (uc *Incomes) Record(ctx context.Context, barberID uint, in RecordInput) (*models.Income, error) {
	method := booking.PaymentMethod(in.PaymentMethod)
	if !method.Valid() {
		return nil, booking.ErrInvalidPaymentMethod
	}
	if in.Amount <= 0 {
		return nil, booking.ErrInvalidAmount
	}

	barber, err := uc.repo.GetBarber(ctx, barberID)
	if err != nil {
		return nil, err
	}

	date := booking.Day(uc.clock.Now().In(timezone.Location(barber.Timezone)))
	if in.Date != "" {
		if date, err = booking.ParseDate(in.Date); err != nil {
			return nil, booking.ErrInvalidDate
		}
	}

	row := &models.Income{
		BarberID:      barberID,
		Amount:        in.Amount,
		PaymentMethod: string(method),
		Date:          date,
		Notes:         in.Notes,
		IsWalkin:      in.IsWalkin,
	}

	if in.ClientID == nil {
		row.ClientName = strings.TrimSpace(in.ClientName)
	} else {
		c, err := uc.repo.GetClient(ctx, barberID, *in.ClientID)
		if err != nil {
			return nil, err
		}
		row.ClientID = &c.ID
	}
	if in.ServiceID != nil {
		s, err := uc.repo.GetService(ctx, barberID, *in.ServiceID)
		if err != nil {
			return nil, err
		}
		row.ServiceID = &s.ID
	}

	if err := uc.repo.CreateIncome(ctx, row); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BarberID: barberID,
		Action:   "income_recorded",
		Entity:   "income",
		EntityID: &row.ID,
		Metadata: map[string]any{
			"amount":         row.Amount,
			"payment_method": row.PaymentMethod,
		},
	})
	return row, nil
}

// ListByDate devolve só as linhas do dia; totais ficam com o cliente da API.
func (uc *Incomes) ListByDate(ctx context.Context, barberID uint, dateStr string) ([]models.Income, error) {
	date, err := booking.ParseDate(dateStr)
	if err != nil {
		return nil, booking.ErrInvalidDate
	}
	return uc.repo.ListIncomeByDate(ctx, barberID, date)
}

func (uc *Incomes) ListCredit(ctx context.Context, barberID uint, paid *bool) ([]models.Income, error) {
	return uc.repo.ListCredit(ctx, barberID, paid)
}

func (uc *Incomes) MarkCreditPaid(ctx context.Context, barberID, incomeID uint) (*models.Income, error) {
	row, err := uc.repo.GetIncome(ctx, barberID, incomeID)
	if err != nil {
		return nil, err
	}

	barber, err := uc.repo.GetBarber(ctx, barberID)
	if err != nil {
		return nil, err
	}

	if err := domain.MarkCreditPaid(row, uc.clock.Now().In(timezone.Location(barber.Timezone))); err != nil {
		return nil, err
	}
	if err := uc.repo.UpdateIncome(ctx, row); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BarberID: barberID,
		Action:   "credit_paid",
		Entity:   "income",
		EntityID: &row.ID,
		Metadata: map[string]any{"amount": row.Amount},
	})
	return row, nil
}
