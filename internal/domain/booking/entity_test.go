package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-queue/internal/models"
)

func TestValidTransition(t *testing.T) {
	tests := []struct {
		action Action
		from   Status
		want   bool
	}{
		{ActionStart, StatusWaiting, true},
		{ActionStart, StatusPending, false},
		{ActionPromote, StatusPending, true},
		{ActionPromote, StatusConfirmed, true},
		{ActionPromote, StatusWaiting, false},
		{ActionComplete, StatusInProgress, true},
		{ActionComplete, StatusWaiting, false},
		{ActionRemove, StatusWaiting, true},
		{ActionRemove, StatusInProgress, false},
		{ActionCancel, StatusInProgress, true},
		{ActionCancel, StatusCompleted, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ValidTransition(tt.action, tt.from), "%s from %s", tt.action, tt.from)
	}
}

func TestStart_KeepsExistingService(t *testing.T) {
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	existing, other := uint(7), uint(9)
	b := &models.Booking{Status: string(StatusWaiting), ServiceID: &existing}

	require.NoError(t, Start(b, &other, now))

	assert.Equal(t, string(StatusInProgress), b.Status)
	assert.Equal(t, existing, *b.ServiceID)
	assert.Equal(t, now, *b.TimerStartedAt)
}

func TestComplete(t *testing.T) {
	now := time.Date(2026, 3, 2, 10, 40, 0, 0, time.UTC)

	b := &models.Booking{Status: string(StatusWaiting)}
	assert.ErrorIs(t, Complete(b, now), ErrNotInProgress)
	assert.Nil(t, b.TimerEndedAt)

	b.Status = string(StatusInProgress)
	require.NoError(t, Complete(b, now))
	assert.Equal(t, string(StatusCompleted), b.Status)
	assert.Equal(t, now, *b.TimerEndedAt)
}

func TestCancel(t *testing.T) {
	for _, s := range []Status{StatusCompleted, StatusCancelled, StatusRemoved} {
		b := &models.Booking{Status: string(s)}
		assert.ErrorIs(t, Cancel(b), ErrAlreadyTerminal)
		assert.Equal(t, string(s), b.Status)
	}

	b := &models.Booking{Status: string(StatusPending)}
	require.NoError(t, Cancel(b))
	assert.Equal(t, string(StatusCancelled), b.Status)
}

func TestIsDue(t *testing.T) {
	loc := time.FixedZone("SAST", 2*3600)
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, loc)
	today := Day(now)
	tomorrow := today.AddDate(0, 0, 1)
	at := func(s string) *string { return &s }

	assert.True(t, IsDue(&models.Booking{AppointmentDate: &today, AppointmentTime: at("10:00")}, now))
	assert.True(t, IsDue(&models.Booking{AppointmentDate: &today, AppointmentTime: at("09:30")}, now))
	assert.False(t, IsDue(&models.Booking{AppointmentDate: &today, AppointmentTime: at("10:01")}, now))
	assert.False(t, IsDue(&models.Booking{AppointmentDate: &tomorrow, AppointmentTime: at("08:00")}, now))
	assert.False(t, IsDue(&models.Booking{}, now))
}

func TestClock(t *testing.T) {
	m, err := ParseClock("08:05")
	require.NoError(t, err)
	assert.Equal(t, 485, m)
	assert.Equal(t, "08:05", FormatClock(m))

	_, err = ParseClock("25:00")
	assert.Error(t, err)
}

func TestPaymentMethod(t *testing.T) {
	assert.True(t, PaymentEFT.Valid())
	assert.False(t, PaymentMethod("bitcoin").Valid())
}
