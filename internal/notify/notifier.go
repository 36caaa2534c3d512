package notify

import (
	"context"
	"errors"
	"fmt"

	"github.com/BruksfildServices01/barber-queue/internal/domain/booking"
	"github.com/BruksfildServices01/barber-queue/internal/models"
	"github.com/BruksfildServices01/barber-queue/internal/validators"
)

// ErrNotConfigured indica que nenhum transporte de SMS está ligado.
var ErrNotConfigured = errors.New("notify: sms transport not configured")

// Notifier envia os SMS de confirmação e lembrete. nil significa sucesso.
type Notifier interface {
	NotifyConfirmation(ctx context.Context, b models.Booking) error
	NotifyReminder(ctx context.Context, b models.Booking) error
}

type Kind string

const (
	KindConfirmation Kind = "confirmation"
	KindReminder     Kind = "reminder"
)

// SMSRequest é o payload publicado para o gateway de SMS.
type SMSRequest struct {
	Kind      Kind   `json:"kind"`
	BookingID uint   `json:"booking_id"`
	BarberID  uint   `json:"barber_id"`
	To        string `json:"to"`
	Body      string `json:"body"`
}

// Messages monta os textos a partir do booking.
type Messages struct {
	SiteURL string
}

func (m Messages) Confirmation(b models.Booking) SMSRequest {
	body := fmt.Sprintf(
		"Hi %s, your appointment with %s is confirmed for %s at %s. To cancel: %s/cancel/%s",
		b.DisplayName(),
		barberName(b),
		appointmentDate(b),
		appointmentTime(b),
		m.SiteURL,
		token(b),
	)
	return m.request(KindConfirmation, b, body)
}

func (m Messages) Reminder(b models.Booking) SMSRequest {
	body := fmt.Sprintf(
		"Hi %s, your appointment with %s starts in 10 minutes at %s. See you soon!",
		b.DisplayName(),
		barberName(b),
		appointmentTime(b),
	)
	return m.request(KindReminder, b, body)
}

func (m Messages) request(kind Kind, b models.Booking, body string) SMSRequest {
	return SMSRequest{
		Kind:      kind,
		BookingID: b.ID,
		BarberID:  b.BarberID,
		To:        validators.NormalizePhone(b.DisplayPhone()),
		Body:      body,
	}
}

func barberName(b models.Booking) string {
	if b.Barber == nil {
		return "your barber"
	}
	return b.Barber.Username
}

func appointmentDate(b models.Booking) string {
	if b.AppointmentDate == nil {
		return ""
	}
	return b.AppointmentDate.Format(booking.DateLayout)
}

func appointmentTime(b models.Booking) string {
	if b.AppointmentTime == nil {
		return ""
	}
	return *b.AppointmentTime
}

func token(b models.Booking) string {
	if b.CancellationToken == nil {
		return ""
	}
	return *b.CancellationToken
}
