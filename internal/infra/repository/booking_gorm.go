package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/barber-queue/internal/domain/booking"
	"github.com/BruksfildServices01/barber-queue/internal/httperr"
	"github.com/BruksfildServices01/barber-queue/internal/models"
)

type GormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func notFound(err error, domainErr error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domainErr
	}
	return err
}

// --------------------------------------------------
// Transaction
// --------------------------------------------------

// WithBarberLock serializa mutações da fila com SELECT ... FOR UPDATE na linha do barbeiro.
func (r *GormRepository) WithBarberLock(
	ctx context.Context,
	barberID uint,
	fn func(tx booking.Repository) error,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var barber models.Barber
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id").
			First(&barber, barberID).Error; err != nil {
			return notFound(err, booking.ErrBarberNotFound)
		}

		return fn(&GormRepository{db: tx})
	})
}

// --------------------------------------------------
// Barber
// --------------------------------------------------

func (r *GormRepository) GetBarber(
	ctx context.Context,
	barberID uint,
) (*models.Barber, error) {

	var barber models.Barber
	if err := r.db.WithContext(ctx).First(&barber, barberID).Error; err != nil {
		return nil, notFound(err, booking.ErrBarberNotFound)
	}
	return &barber, nil
}

func (r *GormRepository) GetBarberByUsername(
	ctx context.Context,
	username string,
) (*models.Barber, error) {

	var barber models.Barber
	if err := r.db.WithContext(ctx).
		Where("username = ?", username).
		First(&barber).Error; err != nil {
		return nil, notFound(err, booking.ErrBarberNotFound)
	}
	return &barber, nil
}

func (r *GormRepository) ListBarbers(ctx context.Context) ([]models.Barber, error) {
	var barbers []models.Barber
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&barbers).Error; err != nil {
		return nil, err
	}
	return barbers, nil
}

// --------------------------------------------------
// Service / Client
// --------------------------------------------------

func (r *GormRepository) GetService(
	ctx context.Context,
	barberID uint,
	serviceID uint,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ? AND barber_id = ?", serviceID, barberID).
		First(&svc).Error; err != nil {
		return nil, notFound(err, booking.ErrServiceNotFound)
	}
	return &svc, nil
}

func (r *GormRepository) GetClient(
	ctx context.Context,
	barberID uint,
	clientID uint,
) (*models.Client, error) {

	var client models.Client
	if err := r.db.WithContext(ctx).
		Where("id = ? AND barber_id = ?", clientID, barberID).
		First(&client).Error; err != nil {
		return nil, notFound(err, booking.ErrClientNotFound)
	}
	return &client, nil
}

func (r *GormRepository) GetOrCreateClient(
	ctx context.Context,
	barberID uint,
	name string,
	surname string,
	phone string,
) (*models.Client, error) {

	var client models.Client
	err := r.db.WithContext(ctx).
		Where("barber_id = ? AND phone = ?", barberID, phone).
		First(&client).Error

	if err == nil {
		return &client, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	client = models.Client{
		BarberID: barberID,
		Name:     name,
		Surname:  surname,
		Phone:    phone,
	}

	if err := r.db.WithContext(ctx).Create(&client).Error; err != nil {
		return nil, err
	}

	return &client, nil
}

// --------------------------------------------------
// Booking
// --------------------------------------------------

func (r *GormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return bookingWriteErr(r.db.WithContext(ctx).Omit(clause.Associations).Create(b).Error)
}

func (r *GormRepository) UpdateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return bookingWriteErr(r.db.WithContext(ctx).Omit(clause.Associations).Save(b).Error)
}

const waitingPositionIndex = "idx_bookings_waiting_position"

// bookingWriteErr traduz a colisão no índice idx_bookings_waiting_position.
// Conflito de horário é checado no use case, sob o lock do barbeiro.
func bookingWriteErr(err error) error {
	if httperr.IsUniqueViolation(err) && httperr.ConstraintName(err) == waitingPositionIndex {
		return booking.ErrInvalidState
	}
	return err
}

func (r *GormRepository) withBookingRelations(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Client").
		Preload("Service").
		Preload("Barber")
}

func (r *GormRepository) GetBooking(
	ctx context.Context,
	barberID uint,
	bookingID uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.withBookingRelations(ctx).
		Where("id = ? AND barber_id = ?", bookingID, barberID).
		First(&b).Error; err != nil {
		return nil, notFound(err, booking.ErrBookingNotFound)
	}
	return &b, nil
}

func (r *GormRepository) GetBookingByToken(
	ctx context.Context,
	token string,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.withBookingRelations(ctx).
		Where("cancellation_token = ?", token).
		First(&b).Error; err != nil {
		return nil, notFound(err, booking.ErrBookingNotFound)
	}
	return &b, nil
}

func (r *GormRepository) ListWaiting(
	ctx context.Context,
	barberID uint,
) ([]models.Booking, error) {

	var queue []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Service").
		Where("barber_id = ? AND status = ?", barberID, string(booking.StatusWaiting)).
		Order("queue_position ASC, added_to_queue_at ASC, id ASC").
		Find(&queue).Error; err != nil {
		return nil, err
	}
	return queue, nil
}

func (r *GormRepository) ListDue(
	ctx context.Context,
	barberID uint,
	date time.Time,
	clock string,
) ([]models.Booking, error) {

	var due []models.Booking
	if err := r.db.WithContext(ctx).
		Where(
			"barber_id = ? AND status IN ? AND appointment_date = ? AND appointment_time <= ?",
			barberID,
			booking.StatusStrings([]booking.Status{booking.StatusPending, booking.StatusConfirmed}),
			date.Format(booking.DateLayout),
			clock,
		).
		Order("appointment_time ASC, id ASC").
		Find(&due).Error; err != nil {
		return nil, err
	}
	return due, nil
}

func (r *GormRepository) ListBookingsForDate(
	ctx context.Context,
	barberID uint,
	date time.Time,
	statuses []booking.Status,
) ([]models.Booking, error) {

	q := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Service").
		Where("barber_id = ? AND appointment_date = ?", barberID, date.Format(booking.DateLayout))

	if len(statuses) > 0 {
		q = q.Where("status IN ?", booking.StatusStrings(statuses))
	}

	var list []models.Booking
	if err := q.Order("appointment_time ASC, id ASC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// SetQueuePositions grava na ordem recebida; Renumber só desce posições,
// então o índice único parcial nunca colide no meio do caminho.
func (r *GormRepository) SetQueuePositions(
	ctx context.Context,
	changed []*models.Booking,
) error {

	for _, b := range changed {
		if err := r.db.WithContext(ctx).
			Model(&models.Booking{}).
			Where("id = ?", b.ID).
			Update("queue_position", b.QueuePosition).Error; err != nil {
			if httperr.IsUniqueViolation(err) {
				return booking.ErrInvalidState
			}
			return err
		}
	}
	return nil
}

// --------------------------------------------------
// Notification flags
// --------------------------------------------------

func (r *GormRepository) MarkConfirmationSent(ctx context.Context, bookingID uint) error {
	return r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ?", bookingID).
		Update("sms_confirmation_sent", true).Error
}

func (r *GormRepository) MarkReminderSent(ctx context.Context, bookingID uint) error {
	return r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ?", bookingID).
		Update("sms_reminder_sent", true).Error
}

// --------------------------------------------------
// Income
// --------------------------------------------------

func (r *GormRepository) CreateIncome(
	ctx context.Context,
	in *models.Income,
) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(in).Error
}

// Compile-time check
var _ booking.Repository = (*GormRepository)(nil)
