package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-queue/internal/audit"
	"github.com/BruksfildServices01/barber-queue/internal/domain/booking"
	"github.com/BruksfildServices01/barber-queue/internal/infra/repository/memory"
	"github.com/BruksfildServices01/barber-queue/internal/models"
	"github.com/BruksfildServices01/barber-queue/internal/timezone"
)

// 10:00 em Joanesburgo
var now = time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)

type fixture struct {
	repo   *memory.Repo
	barber models.Barber
	clock  timezone.Clock
	audit  *audit.Dispatcher
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	repo := memory.New()
	d := audit.NewDispatcher()
	t.Cleanup(d.Close)

	return &fixture{
		repo: repo,
		barber: repo.AddBarber(models.Barber{
			Username:      "kingcuts",
			WorkStartTime: "08:00",
			WorkEndTime:   "18:00",
			Timezone:      "Africa/Johannesburg",
		}),
		clock: timezone.FixedClock{At: now},
		audit: d,
	}
}

func (f *fixture) enqueue(t *testing.T, name string) *models.Booking {
	t.Helper()
	b, err := NewEnqueue(f.repo, f.audit, f.clock).Execute(context.Background(), EnqueueInput{
		BarberID:    f.barber.ID,
		ClientName:  name,
		ClientPhone: "0820000000",
	})
	require.NoError(t, err)
	return b
}

func positions(t *testing.T, repo *memory.Repo, barberID uint) map[uint]int {
	t.Helper()
	out := map[uint]int{}
	for _, b := range repo.Bookings() {
		if b.BarberID == barberID && b.Status == string(booking.StatusWaiting) {
			out[b.ID] = b.QueuePosition
		}
	}
	return out
}

// assertDense verifica que as posições da fila são exatamente {1..n}.
func assertDense(t *testing.T, repo *memory.Repo, barberID uint) {
	t.Helper()
	pos := positions(t, repo, barberID)
	seen := map[int]bool{}
	for _, p := range pos {
		assert.False(t, seen[p], "duplicate position %d", p)
		seen[p] = true
	}
	for i := 1; i <= len(pos); i++ {
		assert.True(t, seen[i], "missing position %d", i)
	}
}

func TestEnqueue_AssignsMaxPlusOne(t *testing.T) {
	f := newFixture(t)

	a := f.enqueue(t, "Sipho")
	b := f.enqueue(t, "Thabo")

	assert.Equal(t, 1, a.QueuePosition)
	assert.Equal(t, 2, b.QueuePosition)
	assert.Equal(t, string(booking.StatusWaiting), b.Status)
	assert.True(t, b.IsWalkin)
	assert.Equal(t, now, b.AddedToQueueAt)
}

func TestEnqueue_Validation(t *testing.T) {
	f := newFixture(t)
	uc := NewEnqueue(f.repo, f.audit, f.clock)
	ctx := context.Background()

	_, err := uc.Execute(ctx, EnqueueInput{BarberID: f.barber.ID})
	assert.ErrorIs(t, err, booking.ErrClientRequired)

	other := f.repo.AddBarber(models.Barber{Username: "other"})
	foreign := f.repo.AddClient(models.Client{BarberID: other.ID, Name: "X", Phone: "1"})
	_, err = uc.Execute(ctx, EnqueueInput{BarberID: f.barber.ID, ClientID: &foreign.ID})
	assert.ErrorIs(t, err, booking.ErrClientNotFound)

	missing := uint(999)
	_, err = uc.Execute(ctx, EnqueueInput{BarberID: f.barber.ID, ClientName: "A", ServiceID: &missing})
	assert.ErrorIs(t, err, booking.ErrServiceNotFound)

	assert.Empty(t, f.repo.Bookings())
}

func TestEnqueue_ExistingClient(t *testing.T) {
	f := newFixture(t)
	client := f.repo.AddClient(models.Client{BarberID: f.barber.ID, Name: "Lindiwe", Phone: "0831112222"})

	b, err := NewEnqueue(f.repo, f.audit, f.clock).Execute(context.Background(), EnqueueInput{
		BarberID:   f.barber.ID,
		ClientID:   &client.ID,
		ClientName: "ignored",
	})
	require.NoError(t, err)

	assert.Equal(t, client.ID, *b.ClientID)
	assert.Empty(t, b.ClientName)
	assert.Equal(t, "Lindiwe", b.DisplayName())
}

func TestEnqueue_ConcurrentKeepsPositionsDense(t *testing.T) {
	f := newFixture(t)
	uc := NewEnqueue(f.repo, f.audit, f.clock)

	var wg sync.WaitGroup
	for i := 0; i < 25; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.Execute(context.Background(), EnqueueInput{BarberID: f.barber.ID, ClientName: "walk-in"})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Len(t, positions(t, f.repo, f.barber.ID), 25)
	assertDense(t, f.repo, f.barber.ID)
}

func TestStartFromQueue_OnlyHead(t *testing.T) {
	f := newFixture(t)
	first := f.enqueue(t, "A")
	second := f.enqueue(t, "B")
	third := f.enqueue(t, "C")
	svc := f.repo.AddService(models.Service{BarberID: f.barber.ID, Name: "Fade", DurationMinutes: 30, Price: 120})

	uc := NewStartFromQueue(f.repo, f.audit, f.clock)
	ctx := context.Background()

	before := f.repo.Booking(second.ID)
	_, err := uc.Execute(ctx, StartInput{BarberID: f.barber.ID, BookingID: second.ID})
	assert.ErrorIs(t, err, booking.ErrNotQueueHead)
	assert.Equal(t, before, f.repo.Booking(second.ID))

	_, err = uc.Execute(ctx, StartInput{BarberID: f.barber.ID, BookingID: 999})
	assert.ErrorIs(t, err, booking.ErrBookingNotFound)

	started, err := uc.Execute(ctx, StartInput{BarberID: f.barber.ID, BookingID: first.ID, ServiceID: &svc.ID})
	require.NoError(t, err)
	assert.Equal(t, string(booking.StatusInProgress), started.Status)
	assert.Equal(t, now, *started.TimerStartedAt)
	assert.Equal(t, svc.ID, *started.ServiceID)

	// a fila sobe e continua densa
	assert.Equal(t, map[uint]int{second.ID: 1, third.ID: 2}, positions(t, f.repo, f.barber.ID))

	// quem já está em atendimento não é mais head
	_, err = uc.Execute(ctx, StartInput{BarberID: f.barber.ID, BookingID: first.ID})
	assert.ErrorIs(t, err, booking.ErrNotQueueHead)
}

func TestStartFromQueue_ConcurrentStartsOnlyOneWins(t *testing.T) {
	f := newFixture(t)
	head := f.enqueue(t, "A")
	f.enqueue(t, "B")

	uc := NewStartFromQueue(f.repo, f.audit, f.clock)

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		oks  int
		errs []error
	)
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.Execute(context.Background(), StartInput{BarberID: f.barber.ID, BookingID: head.ID})
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				oks++
				return
			}
			errs = append(errs, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, oks)
	for _, err := range errs {
		assert.ErrorIs(t, err, booking.ErrNotQueueHead)
	}
}

func TestRemoveFromQueue_Renumbers(t *testing.T) {
	f := newFixture(t)
	a := f.enqueue(t, "A")
	b := f.enqueue(t, "B")
	c := f.enqueue(t, "C")
	d := f.enqueue(t, "D")

	uc := NewRemoveFromQueue(f.repo, f.audit)
	ctx := context.Background()

	removed, err := uc.Execute(ctx, f.barber.ID, b.ID)
	require.NoError(t, err)
	assert.Equal(t, string(booking.StatusRemoved), removed.Status)

	assert.Equal(t, map[uint]int{a.ID: 1, c.ID: 2, d.ID: 3}, positions(t, f.repo, f.barber.ID))

	_, err = uc.Execute(ctx, f.barber.ID, b.ID)
	assert.ErrorIs(t, err, booking.ErrNotInQueue)

	_, err = uc.Execute(ctx, f.barber.ID, 12345)
	assert.ErrorIs(t, err, booking.ErrBookingNotFound)
}

func TestRemoveFromQueue_ConcurrentRemovals(t *testing.T) {
	f := newFixture(t)
	var ids []uint
	for i := 0; i < 12; i++ {
		ids = append(ids, f.enqueue(t, "walk-in").ID)
	}

	uc := NewRemoveFromQueue(f.repo, f.audit)

	var wg sync.WaitGroup
	for i := 0; i < len(ids); i += 2 {
		wg.Add(1)
		go func(id uint) {
			defer wg.Done()
			_, err := uc.Execute(context.Background(), f.barber.ID, id)
			assert.NoError(t, err)
		}(ids[i])
	}
	wg.Wait()

	pos := positions(t, f.repo, f.barber.ID)
	assert.Len(t, pos, 6)
	assertDense(t, f.repo, f.barber.ID)

	// ordem relativa preservada
	for i := 3; i < len(ids); i += 2 {
		assert.Less(t, pos[ids[i-2]], pos[ids[i]])
	}
}

func TestPromoteDueAppointments(t *testing.T) {
	f := newFixture(t)
	walk := f.enqueue(t, "Walk")

	today := booking.Day(now)
	tomorrow := today.AddDate(0, 0, 1)
	at := func(s string) *string { return &s }

	early := f.repo.AddBooking(models.Booking{BarberID: f.barber.ID, Status: "confirmed", AppointmentDate: &today, AppointmentTime: at("09:30")})
	onTime := f.repo.AddBooking(models.Booking{BarberID: f.barber.ID, Status: "pending", AppointmentDate: &today, AppointmentTime: at("10:00")})
	later := f.repo.AddBooking(models.Booking{BarberID: f.barber.ID, Status: "pending", AppointmentDate: &today, AppointmentTime: at("10:30")})
	nextDay := f.repo.AddBooking(models.Booking{BarberID: f.barber.ID, Status: "confirmed", AppointmentDate: &tomorrow, AppointmentTime: at("08:00")})
	gone := f.repo.AddBooking(models.Booking{BarberID: f.barber.ID, Status: "cancelled", AppointmentDate: &today, AppointmentTime: at("09:00")})

	uc := NewPromoteDueAppointments(f.repo, f.audit, f.clock)

	promoted, err := uc.Execute(context.Background(), f.barber.ID)
	require.NoError(t, err)
	assert.Len(t, promoted, 2)

	assert.Equal(t, map[uint]int{walk.ID: 1, early.ID: 2, onTime.ID: 3}, positions(t, f.repo, f.barber.ID))
	assert.Equal(t, "pending", f.repo.Booking(later.ID).Status)
	assert.Equal(t, "confirmed", f.repo.Booking(nextDay.ID).Status)
	assert.Equal(t, "cancelled", f.repo.Booking(gone.ID).Status)

	// idempotente
	snapshot := f.repo.Bookings()
	again, err := uc.Execute(context.Background(), f.barber.ID)
	require.NoError(t, err)
	assert.Empty(t, again)
	assert.Equal(t, snapshot, f.repo.Bookings())
}

func TestPromoteDueAppointments_StalePositionStaysDense(t *testing.T) {
	f := newFixture(t)
	first := f.enqueue(t, "Ana")
	second := f.enqueue(t, "Bongani")

	today := booking.Day(now)
	hm := "09:00"
	stale := f.repo.AddBooking(models.Booking{
		BarberID:        f.barber.ID,
		Status:          "confirmed",
		AppointmentDate: &today,
		AppointmentTime: &hm,
		QueuePosition:   7,
	})

	promoted, err := NewPromoteDueAppointments(f.repo, f.audit, f.clock).Execute(context.Background(), f.barber.ID)
	require.NoError(t, err)
	require.Len(t, promoted, 1)
	assert.Equal(t, 3, promoted[0].QueuePosition)

	assert.Equal(t, map[uint]int{first.ID: 1, second.ID: 2, stale.ID: 3}, positions(t, f.repo, f.barber.ID))
	assertDense(t, f.repo, f.barber.ID)
}

func TestPromoteDueAppointments_MixedStaleAndFresh(t *testing.T) {
	f := newFixture(t)
	walk := f.enqueue(t, "Ana")

	today := booking.Day(now)
	at := func(s string) *string { return &s }

	// 09:00 herda a posição 2, 09:30 recebe a próxima livre
	kept := f.repo.AddBooking(models.Booking{BarberID: f.barber.ID, Status: "confirmed", AppointmentDate: &today, AppointmentTime: at("09:00"), QueuePosition: 2})
	fresh := f.repo.AddBooking(models.Booking{BarberID: f.barber.ID, Status: "pending", AppointmentDate: &today, AppointmentTime: at("09:30")})

	promoted, err := NewPromoteDueAppointments(f.repo, f.audit, f.clock).Execute(context.Background(), f.barber.ID)
	require.NoError(t, err)
	require.Len(t, promoted, 2)

	assert.Equal(t, map[uint]int{walk.ID: 1, kept.ID: 2, fresh.ID: 3}, positions(t, f.repo, f.barber.ID))
	assertDense(t, f.repo, f.barber.ID)
}

func TestListQueue(t *testing.T) {
	f := newFixture(t)
	uc := NewListQueue(f.repo)

	view, err := uc.Execute(context.Background(), f.barber.ID)
	require.NoError(t, err)
	assert.Nil(t, view.Head)
	assert.NotNil(t, view.Waiting)

	a := f.enqueue(t, "A")
	f.enqueue(t, "B")

	view, err = uc.Execute(context.Background(), f.barber.ID)
	require.NoError(t, err)
	require.NotNil(t, view.Head)
	assert.Equal(t, a.ID, view.Head.ID)
	assert.Len(t, view.Waiting, 2)
}
