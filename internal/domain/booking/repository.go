package booking

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barber-queue/internal/models"
)

type Repository interface {
	// -------- Transaction --------

	// WithBarberLock roda fn numa transação que segura o lock da fila do barbeiro.
	WithBarberLock(
		ctx context.Context,
		barberID uint,
		fn func(tx Repository) error,
	) error

	// -------- Barber --------
	GetBarber(
		ctx context.Context,
		barberID uint,
	) (*models.Barber, error)

	GetBarberByUsername(
		ctx context.Context,
		username string,
	) (*models.Barber, error)

	ListBarbers(
		ctx context.Context,
	) ([]models.Barber, error)

	// -------- Service / Client --------
	GetService(
		ctx context.Context,
		barberID uint,
		serviceID uint,
	) (*models.Service, error)

	GetClient(
		ctx context.Context,
		barberID uint,
		clientID uint,
	) (*models.Client, error)

	GetOrCreateClient(
		ctx context.Context,
		barberID uint,
		name string,
		surname string,
		phone string,
	) (*models.Client, error)

	// -------- Booking --------
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	GetBooking(
		ctx context.Context,
		barberID uint,
		bookingID uint,
	) (*models.Booking, error)

	GetBookingByToken(
		ctx context.Context,
		token string,
	) (*models.Booking, error)

	// ListWaiting devolve a fila ordenada por (queue_position, added_to_queue_at).
	ListWaiting(
		ctx context.Context,
		barberID uint,
	) ([]models.Booking, error)

	// ListDue devolve pending/confirmed da data com appointment_time <= clock.
	ListDue(
		ctx context.Context,
		barberID uint,
		date time.Time,
		clock string,
	) ([]models.Booking, error)

	ListBookingsForDate(
		ctx context.Context,
		barberID uint,
		date time.Time,
		statuses []Status,
	) ([]models.Booking, error)

	SetQueuePositions(
		ctx context.Context,
		changed []*models.Booking,
	) error

	// -------- Notification flags --------
	MarkConfirmationSent(
		ctx context.Context,
		bookingID uint,
	) error

	MarkReminderSent(
		ctx context.Context,
		bookingID uint,
	) error

	// -------- Income (side effect do Complete) --------
	CreateIncome(
		ctx context.Context,
		in *models.Income,
	) error
}
