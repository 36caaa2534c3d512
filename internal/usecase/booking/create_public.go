package booking

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barber-queue/internal/audit"
	domain "github.com/BruksfildServices01/barber-queue/internal/domain/booking"
	"github.com/BruksfildServices01/barber-queue/internal/models"
	"github.com/BruksfildServices01/barber-queue/internal/timezone"
	"github.com/BruksfildServices01/barber-queue/internal/validators"
)

type PublicBookingInput struct {
	Username  string
	ServiceID uint
	Date      string
	Time      string
	Name      string
	Phone     string
}

// CreatePublicBooking é a entrada pública: cria pending com token de cancelamento.
type CreatePublicBooking struct {
	repo          domain.Repository
	audit         *audit.Dispatcher
	clock         timezone.Clock
	confirmations ConfirmationSender
	opts          Options
}

func NewCreatePublicBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
	clock timezone.Clock,
	confirmations ConfirmationSender,
	opts Options,
) *CreatePublicBooking {
	return &CreatePublicBooking{
		repo:          repo,
		audit:         audit,
		clock:         clock,
		confirmations: confirmations,
		opts:          opts,
	}
}

func (uc *CreatePublicBooking) Execute(
	ctx context.Context,
	in PublicBookingInput,
) (*models.Booking, error) {

	// --------------------------------------------------
	// 1️⃣ Barbeiro e janela de datas no fuso dele
	// --------------------------------------------------
	barber, err := uc.repo.GetBarberByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}

	date, err := domain.ParseDate(in.Date)
	if err != nil {
		return nil, domain.ErrInvalidDate
	}
	clock, err := domain.ParseClock(in.Time)
	if err != nil {
		return nil, domain.ErrInvalidTime
	}

	now := uc.clock.Now().In(timezone.Location(barber.Timezone))
	today := domain.Day(now)
	if date.Before(today) || date.After(today.AddDate(0, 0, uc.opts.MaxAdvanceDays)) {
		return nil, domain.ErrDateOutOfRange
	}

	name, surname := validators.SplitName(in.Name)
	phone := validators.NormalizePhone(in.Phone)
	if name == "" || phone == "" {
		return nil, domain.ErrClientRequired
	}

	var created *models.Booking

	err = uc.repo.WithBarberLock(ctx, barber.ID, func(tx domain.Repository) error {

		// --------------------------------------------------
		// 2️⃣ Serviço + slot ainda disponível
		// --------------------------------------------------
		svc, err := tx.GetService(ctx, barber.ID, in.ServiceID)
		if err != nil {
			return err
		}

		existing, err := tx.ListBookingsForDate(ctx, barber.ID, date, domain.NonTerminalStatuses)
		if err != nil {
			return err
		}

		slots := domain.AvailableSlots(domain.SlotQuery{
			WorkStart:   barber.WorkStartTime,
			WorkEnd:     barber.WorkEndTime,
			DurationMin: svc.DurationMinutes,
			Granularity: uc.opts.Granularity,
			Mode:        uc.opts.OverlapMode,
			Booked:      occupied(existing, uc.opts.Granularity),
		})
		if !containsSlot(slots, domain.FormatClock(clock)) {
			return domain.ErrTimeConflict
		}

		// --------------------------------------------------
		// 3️⃣ Cliente (get or create por telefone)
		// --------------------------------------------------
		client, err := tx.GetOrCreateClient(ctx, barber.ID, name, surname, phone)
		if err != nil {
			return err
		}

		// --------------------------------------------------
		// 4️⃣ Booking pending
		// --------------------------------------------------
		b := &models.Booking{
			BarberID:          barber.ID,
			ClientID:          &client.ID,
			ServiceID:         &svc.ID,
			Status:            string(domain.StatusPending),
			AppointmentDate:   &date,
			AppointmentTime:   strPtr(domain.FormatClock(clock)),
			AddedToQueueAt:    uc.clock.Now(),
			CancellationToken: strPtr(uuid.NewString()),
		}

		if err := tx.CreateBooking(ctx, b); err != nil {
			return err
		}

		b.Client = client
		b.Service = svc
		b.Barber = barber
		created = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BarberID: barber.ID,
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: &created.ID,
		Metadata: map[string]any{"source": "public"},
	})

	// --------------------------------------------------
	// 5️⃣ SMS depois do commit (fire-and-forget)
	// --------------------------------------------------
	if barber.SMSNotificationsEnabled && uc.confirmations != nil {
		uc.confirmations.SendConfirmation(*created)
	}

	return created, nil
}

func containsSlot(slots []string, slot string) bool {
	for _, s := range slots {
		if s == slot {
			return true
		}
	}
	return false
}
