package booking

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barber-queue/internal/audit"
	domain "github.com/BruksfildServices01/barber-queue/internal/domain/booking"
	"github.com/BruksfildServices01/barber-queue/internal/models"
	"github.com/BruksfildServices01/barber-queue/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	BarberID uint

	ClientID    *uint
	ClientName  string
	ClientPhone string

	ServiceID *uint

	Date   string
	Time   string
	Status string

	// AllowOverlap libera a checagem de conflito de horário.
	AllowOverlap bool
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	clock timezone.Clock
	opts  Options
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	clock timezone.Clock,
	opts Options,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
		clock: clock,
		opts:  opts,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Booking, error) {

	// --------------------------------------------------
	// 1️⃣ Data / hora / status
	// --------------------------------------------------
	date, err := domain.ParseDate(in.Date)
	if err != nil {
		return nil, domain.ErrInvalidDate
	}
	start, err := domain.ParseClock(in.Time)
	if err != nil {
		return nil, domain.ErrInvalidTime
	}

	status := domain.Status(in.Status)
	switch status {
	case "":
		status = domain.StatusConfirmed
	case domain.StatusPending, domain.StatusConfirmed:
	default:
		return nil, domain.ErrInvalidStatus
	}

	name := strings.TrimSpace(in.ClientName)
	if in.ClientID == nil && name == "" {
		return nil, domain.ErrClientRequired
	}

	var created *models.Booking

	err = uc.repo.WithBarberLock(ctx, in.BarberID, func(tx domain.Repository) error {

		// --------------------------------------------------
		// 2️⃣ Cliente e serviço
		// --------------------------------------------------
		b := &models.Booking{
			BarberID:          in.BarberID,
			Status:            string(status),
			AppointmentDate:   &date,
			AppointmentTime:   strPtr(domain.FormatClock(start)),
			AddedToQueueAt:    uc.clock.Now(),
			CancellationToken: strPtr(uuid.NewString()),
		}

		if in.ClientID != nil {
			client, err := tx.GetClient(ctx, in.BarberID, *in.ClientID)
			if err != nil {
				return err
			}
			b.ClientID = &client.ID
			b.Client = client
		} else {
			b.ClientName = name
			b.ClientPhone = strings.TrimSpace(in.ClientPhone)
		}

		if in.ServiceID != nil {
			svc, err := tx.GetService(ctx, in.BarberID, *in.ServiceID)
			if err != nil {
				return err
			}
			b.ServiceID = &svc.ID
			b.Service = svc
		}

		// --------------------------------------------------
		// 3️⃣ Conflito de horário
		// --------------------------------------------------
		if !in.AllowOverlap {
			existing, err := tx.ListBookingsForDate(ctx, in.BarberID, date, domain.NonTerminalStatuses)
			if err != nil {
				return err
			}

			duration := serviceDuration(b.Service, uc.opts.Granularity)
			if domain.Conflicts(uc.opts.OverlapMode, start, duration, occupied(existing, uc.opts.Granularity)) {
				return domain.ErrTimeConflict
			}
		}

		// --------------------------------------------------
		// 4️⃣ Criação
		// --------------------------------------------------
		if err := tx.CreateBooking(ctx, b); err != nil {
			return err
		}

		created = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 5️⃣ Auditoria
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		BarberID: in.BarberID,
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: &created.ID,
		Metadata: map[string]any{
			"date":          in.Date,
			"time":          *created.AppointmentTime,
			"status":        created.Status,
			"allow_overlap": in.AllowOverlap,
		},
	})

	return created, nil
}
