package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-queue/internal/audit"
	"github.com/BruksfildServices01/barber-queue/internal/domain/booking"
	domain "github.com/BruksfildServices01/barber-queue/internal/domain/catalog"
	"github.com/BruksfildServices01/barber-queue/internal/infra/repository/memory"
	"github.com/BruksfildServices01/barber-queue/internal/models"
	"github.com/BruksfildServices01/barber-queue/internal/timezone"
	"github.com/BruksfildServices01/barber-queue/internal/usecase/queue"
)

func ptr[T any](v T) *T { return &v }

func setup(t *testing.T) (*memory.Repo, models.Barber, *audit.Dispatcher) {
	t.Helper()
	repo := memory.New()
	d := audit.NewDispatcher()
	t.Cleanup(d.Close)

	barber := repo.AddBarber(models.Barber{
		Username:      "kingcuts",
		WorkStartTime: "08:00",
		WorkEndTime:   "18:00",
	})
	return repo, barber, d
}

func TestServices_CRUD(t *testing.T) {
	repo, barber, d := setup(t)
	uc := NewServices(repo, d)
	ctx := context.Background()

	fade, err := uc.Create(ctx, barber.ID, ServicePatch{Name: ptr(" Fade "), Price: ptr(120.0)})
	require.NoError(t, err)
	assert.Equal(t, "Fade", fade.Name)
	assert.Equal(t, 30, fade.DurationMinutes)

	_, err = uc.Create(ctx, barber.ID, ServicePatch{Name: ptr("Beard"), Price: ptr(80.0), DurationMinutes: ptr(20)})
	require.NoError(t, err)

	_, err = uc.Create(ctx, barber.ID, ServicePatch{Name: ptr("Fade"), Price: ptr(100.0)})
	assert.ErrorIs(t, err, domain.ErrDuplicateServiceName)

	_, err = uc.Create(ctx, barber.ID, ServicePatch{Name: ptr("Kids"), Price: ptr(0.0)})
	assert.ErrorIs(t, err, domain.ErrInvalidPrice)

	_, err = uc.Update(ctx, barber.ID, fade.ID, ServicePatch{DurationMinutes: ptr(-5)})
	assert.ErrorIs(t, err, domain.ErrInvalidDuration)

	updated, err := uc.Update(ctx, barber.ID, fade.ID, ServicePatch{Price: ptr(140.0)})
	require.NoError(t, err)
	assert.Equal(t, 140.0, updated.Price)
	assert.Equal(t, "Fade", updated.Name)

	list, err := uc.List(ctx, barber.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Beard", list[0].Name)

	other := repo.AddBarber(models.Barber{Username: "other"})
	_, err = uc.Update(ctx, other.ID, fade.ID, ServicePatch{Price: ptr(1.0)})
	assert.ErrorIs(t, err, booking.ErrServiceNotFound)
}

func TestServices_DeleteNullsReferences(t *testing.T) {
	repo, barber, d := setup(t)
	uc := NewServices(repo, d)
	ctx := context.Background()

	svc, err := uc.Create(ctx, barber.ID, ServicePatch{Name: ptr("Fade"), Price: ptr(120.0)})
	require.NoError(t, err)

	b := repo.AddBooking(models.Booking{BarberID: barber.ID, ServiceID: &svc.ID, Status: "completed"})

	require.NoError(t, uc.Delete(ctx, barber.ID, svc.ID))
	assert.Nil(t, repo.Booking(b.ID).ServiceID)

	assert.ErrorIs(t, uc.Delete(ctx, barber.ID, svc.ID), booking.ErrServiceNotFound)
}

func TestClients_CreateNormalizesAndRejectsDuplicates(t *testing.T) {
	repo, barber, d := setup(t)
	uc := NewClients(repo, d, nil)
	ctx := context.Background()

	c, _, err := uc.Create(ctx, barber.ID, NewClientInput{ClientPatch: ClientPatch{
		Name:     ptr("Sipho"),
		Surname:  ptr("Nkosi"),
		Phone:    ptr("082-123-4567"),
		AgeGroup: ptr("adult"),
	}})
	require.NoError(t, err)
	assert.Equal(t, "+27821234567", c.Phone)

	_, _, err = uc.Create(ctx, barber.ID, NewClientInput{ClientPatch: ClientPatch{
		Name:  ptr("Other"),
		Phone: ptr("0821234567"),
	}})
	assert.ErrorIs(t, err, domain.ErrDuplicatePhone)

	_, _, err = uc.Create(ctx, barber.ID, NewClientInput{ClientPatch: ClientPatch{
		Name:   ptr("X"),
		Phone:  ptr("0829999999"),
		Gender: ptr("robot"),
	}})
	assert.ErrorIs(t, err, domain.ErrInvalidGender)

	// o próprio telefone não conta como duplicado
	updated, err := uc.Update(ctx, barber.ID, c.ID, ClientPatch{Phone: ptr("+27821234567"), Name: ptr("Sipho J")})
	require.NoError(t, err)
	assert.Equal(t, "Sipho J", updated.Name)

	found, err := uc.List(ctx, barber.ID, "nko")
	require.NoError(t, err)
	assert.Len(t, found, 1)
}

func TestClients_CreateWithAddToQueue(t *testing.T) {
	repo, barber, d := setup(t)
	enqueue := queue.NewEnqueue(repo, d, timezone.FixedClock{At: time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)})
	uc := NewClients(repo, d, enqueue)
	ctx := context.Background()

	c, b, err := uc.Create(ctx, barber.ID, NewClientInput{
		ClientPatch: ClientPatch{Name: ptr("Thabo"), Phone: ptr("0831112222")},
		AddToQueue:  true,
	})
	require.NoError(t, err)
	require.NotNil(t, b)

	assert.Equal(t, c.ID, *b.ClientID)
	assert.Equal(t, 1, b.QueuePosition)
	assert.Equal(t, string(booking.StatusWaiting), b.Status)
}

func TestClients_DeleteNullsReferences(t *testing.T) {
	repo, barber, d := setup(t)
	uc := NewClients(repo, d, nil)
	ctx := context.Background()

	c, _, err := uc.Create(ctx, barber.ID, NewClientInput{ClientPatch: ClientPatch{Name: ptr("A"), Phone: ptr("0820000001")}})
	require.NoError(t, err)
	b := repo.AddBooking(models.Booking{BarberID: barber.ID, ClientID: &c.ID, Status: "cancelled"})

	require.NoError(t, uc.Delete(ctx, barber.ID, c.ID))
	assert.Nil(t, repo.Booking(b.ID).ClientID)
	assert.Empty(t, repo.Clients())
}

func TestSettings_Update(t *testing.T) {
	repo, barber, d := setup(t)
	uc := NewSettings(repo, d)
	ctx := context.Background()

	b, err := uc.Update(ctx, barber.ID, SettingsPatch{
		WorkStartTime:           ptr("9:00"),
		WorkEndTime:             ptr("17:30"),
		SMSNotificationsEnabled: ptr(true),
		Timezone:                ptr("Africa/Johannesburg"),
	})
	require.NoError(t, err)
	assert.Equal(t, "09:00", b.WorkStartTime)

	stored, err := uc.Get(ctx, barber.ID)
	require.NoError(t, err)
	assert.Equal(t, "17:30", stored.WorkEndTime)
	assert.True(t, stored.SMSNotificationsEnabled)

	_, err = uc.Update(ctx, barber.ID, SettingsPatch{WorkEndTime: ptr("08:00")})
	assert.ErrorIs(t, err, domain.ErrInvalidWorkHours)

	_, err = uc.Update(ctx, barber.ID, SettingsPatch{Timezone: ptr("Mars/Olympus")})
	assert.ErrorIs(t, err, domain.ErrInvalidTimezone)

	stored, err = uc.Get(ctx, barber.ID)
	require.NoError(t, err)
	assert.Equal(t, "17:30", stored.WorkEndTime)
	assert.Equal(t, "Africa/Johannesburg", stored.Timezone)
}
