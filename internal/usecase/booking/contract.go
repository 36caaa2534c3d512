package booking

import (
	"context"

	"github.com/BruksfildServices01/barber-queue/internal/config"
	domain "github.com/BruksfildServices01/barber-queue/internal/domain/booking"
	"github.com/BruksfildServices01/barber-queue/internal/models"
)

// ConfirmationSender recebe bookings recém-criados para o SMS de confirmação.
// Não bloqueia e não devolve erro: falha de envio nunca desfaz a criação.
type ConfirmationSender interface {
	SendConfirmation(b models.Booking)
}

type ReminderNotifier interface {
	NotifyReminder(ctx context.Context, b models.Booking) error
}

// ReminderClaims evita lembrete duplicado entre execuções sobrepostas do worker.
type ReminderClaims interface {
	Claim(ctx context.Context, bookingID uint) (bool, error)
	Release(ctx context.Context, bookingID uint) error
}

type Options struct {
	Granularity    int
	OverlapMode    domain.OverlapMode
	MaxAdvanceDays int

	ReminderLeadMin float64
	ReminderLeadMax float64
}

func DefaultOptions() Options {
	return Options{
		Granularity:     domain.DefaultGranularity,
		OverlapMode:     domain.OverlapInstant,
		MaxAdvanceDays:  14,
		ReminderLeadMin: 9,
		ReminderLeadMax: 11,
	}
}

// OptionsFromConfig aplica os valores configurados; zeros ficam no default.
func OptionsFromConfig(cfg *config.Config) Options {
	opts := DefaultOptions()

	if cfg.Slots.GranularityMinutes > 0 {
		opts.Granularity = cfg.Slots.GranularityMinutes
	}
	opts.OverlapMode = domain.ParseOverlapMode(cfg.Slots.OverlapMode)

	if cfg.Booking.MaxAdvanceDays > 0 {
		opts.MaxAdvanceDays = cfg.Booking.MaxAdvanceDays
	}
	if cfg.Reminder.LeadMaxMinutes > 0 && cfg.Reminder.LeadMinMinutes <= cfg.Reminder.LeadMaxMinutes {
		opts.ReminderLeadMin = cfg.Reminder.LeadMinMinutes
		opts.ReminderLeadMax = cfg.Reminder.LeadMaxMinutes
	}
	return opts
}
