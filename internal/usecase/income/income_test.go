package income

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-queue/internal/audit"
	"github.com/BruksfildServices01/barber-queue/internal/domain/booking"
	domain "github.com/BruksfildServices01/barber-queue/internal/domain/income"
	"github.com/BruksfildServices01/barber-queue/internal/infra/repository/memory"
	"github.com/BruksfildServices01/barber-queue/internal/models"
	"github.com/BruksfildServices01/barber-queue/internal/timezone"
)

// 23:30 UTC já é o dia seguinte em Joanesburgo
var now = time.Date(2026, 3, 2, 23, 30, 0, 0, time.UTC)

func setup(t *testing.T) (*memory.Repo, models.Barber, *Incomes) {
	t.Helper()
	repo := memory.New()
	d := audit.NewDispatcher()
	t.Cleanup(d.Close)

	barber := repo.AddBarber(models.Barber{Username: "kingcuts", Timezone: "Africa/Johannesburg"})
	return repo, barber, NewIncomes(repo, d, timezone.FixedClock{At: now})
}

func TestRecord_UsesBarberLocalDate(t *testing.T) {
	repo, barber, uc := setup(t)

	row, err := uc.Record(context.Background(), barber.ID, RecordInput{Amount: 50, PaymentMethod: "card"})
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC), row.Date)
	assert.Nil(t, row.BookingID)
	assert.Len(t, repo.Incomes(), 1)
}

func TestRecord_Validation(t *testing.T) {
	repo, barber, uc := setup(t)
	ctx := context.Background()

	_, err := uc.Record(ctx, barber.ID, RecordInput{Amount: 50, PaymentMethod: "voucher"})
	assert.ErrorIs(t, err, booking.ErrInvalidPaymentMethod)

	_, err = uc.Record(ctx, barber.ID, RecordInput{Amount: -1, PaymentMethod: "cash"})
	assert.ErrorIs(t, err, booking.ErrInvalidAmount)

	_, err = uc.Record(ctx, barber.ID, RecordInput{Amount: 10, PaymentMethod: "cash", Date: "02-03-2026"})
	assert.ErrorIs(t, err, booking.ErrInvalidDate)

	missing := uint(77)
	_, err = uc.Record(ctx, barber.ID, RecordInput{Amount: 10, PaymentMethod: "cash", ClientID: &missing})
	assert.ErrorIs(t, err, booking.ErrClientNotFound)

	assert.Empty(t, repo.Incomes())
}

func TestListByDate(t *testing.T) {
	_, barber, uc := setup(t)
	ctx := context.Background()

	_, err := uc.Record(ctx, barber.ID, RecordInput{Amount: 50, PaymentMethod: "cash", Date: "2026-03-01"})
	require.NoError(t, err)
	_, err = uc.Record(ctx, barber.ID, RecordInput{Amount: 70, PaymentMethod: "eft", Date: "2026-03-02"})
	require.NoError(t, err)

	list, err := uc.ListByDate(ctx, barber.ID, "2026-03-01")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 50.0, list[0].Amount)

	_, err = uc.ListByDate(ctx, barber.ID, "")
	assert.ErrorIs(t, err, booking.ErrInvalidDate)
}

func TestCreditLifecycle(t *testing.T) {
	_, barber, uc := setup(t)
	ctx := context.Background()

	credit, err := uc.Record(ctx, barber.ID, RecordInput{Amount: 90, PaymentMethod: "credit", Date: "2026-02-20"})
	require.NoError(t, err)
	cash, err := uc.Record(ctx, barber.ID, RecordInput{Amount: 40, PaymentMethod: "cash"})
	require.NoError(t, err)

	unpaid := false
	list, err := uc.ListCredit(ctx, barber.ID, &unpaid)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, credit.ID, list[0].ID)

	paid, err := uc.MarkCreditPaid(ctx, barber.ID, credit.ID)
	require.NoError(t, err)
	assert.True(t, paid.CreditPaid)
	assert.Equal(t, time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC), *paid.CreditPaidDate)

	_, err = uc.MarkCreditPaid(ctx, barber.ID, credit.ID)
	assert.ErrorIs(t, err, domain.ErrCreditAlreadyPaid)

	_, err = uc.MarkCreditPaid(ctx, barber.ID, cash.ID)
	assert.ErrorIs(t, err, domain.ErrNotCredit)

	other := uc.repo.(*memory.Repo).AddBarber(models.Barber{Username: "other"})
	_, err = uc.MarkCreditPaid(ctx, other.ID, credit.ID)
	assert.ErrorIs(t, err, domain.ErrIncomeNotFound)

	list, err = uc.ListCredit(ctx, barber.ID, &unpaid)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestRecord_WalkinName(t *testing.T) {
	repo, barber, uc := setup(t)
	ctx := context.Background()

	row, err := uc.Record(ctx, barber.ID, RecordInput{
		Amount:        80,
		PaymentMethod: "credit",
		ClientName:    "  Lerato  ",
		IsWalkin:      true,
	})
	require.NoError(t, err)
	assert.Equal(t, "Lerato", row.ClientName)
	assert.True(t, row.IsWalkin)

	client := repo.AddClient(models.Client{BarberID: barber.ID, Name: "Thabo", Phone: "+27821110000"})
	row, err = uc.Record(ctx, barber.ID, RecordInput{
		Amount:        60,
		PaymentMethod: "cash",
		ClientID:      &client.ID,
		ClientName:    "ignored",
	})
	require.NoError(t, err)
	assert.Empty(t, row.ClientName)

	unpaid := false
	list, err := uc.ListCredit(ctx, barber.ID, &unpaid)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Lerato", list[0].ClientName)
}
