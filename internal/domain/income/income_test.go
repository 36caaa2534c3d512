package income

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-queue/internal/models"
)

func TestMarkCreditPaid(t *testing.T) {
	today := time.Date(2026, 3, 2, 15, 30, 0, 0, time.UTC)

	in := &models.Income{PaymentMethod: "credit"}
	require.NoError(t, MarkCreditPaid(in, today))
	assert.True(t, in.CreditPaid)
	assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), *in.CreditPaidDate)

	assert.ErrorIs(t, MarkCreditPaid(in, today), ErrCreditAlreadyPaid)
	assert.ErrorIs(t, MarkCreditPaid(&models.Income{PaymentMethod: "cash"}, today), ErrNotCredit)
}
