package booking

import (
	"time"

	"github.com/BruksfildServices01/barber-queue/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Start move o head da fila para in_progress. A checagem de head é do use case.
func Start(b *models.Booking, serviceID *uint, now time.Time) error {
	if !ValidTransition(ActionStart, Status(b.Status)) {
		return ErrNotInQueue
	}

	if b.ServiceID == nil && serviceID != nil {
		b.ServiceID = serviceID
	}
	b.Status = string(StatusInProgress)
	b.TimerStartedAt = &now
	return nil
}

func Complete(b *models.Booking, now time.Time) error {
	if !ValidTransition(ActionComplete, Status(b.Status)) {
		return ErrNotInProgress
	}

	b.Status = string(StatusCompleted)
	b.TimerEndedAt = &now
	return nil
}

func Remove(b *models.Booking) error {
	if !ValidTransition(ActionRemove, Status(b.Status)) {
		return ErrNotInQueue
	}

	b.Status = string(StatusRemoved)
	return nil
}

func Cancel(b *models.Booking) error {
	if Status(b.Status).IsTerminal() {
		return ErrAlreadyTerminal
	}
	if !ValidTransition(ActionCancel, Status(b.Status)) {
		return ErrInvalidState
	}

	b.Status = string(StatusCancelled)
	return nil
}

// Promote leva um agendamento vencido para a fila. Posição é atribuída depois.
func Promote(b *models.Booking) error {
	if !ValidTransition(ActionPromote, Status(b.Status)) {
		return ErrInvalidState
	}

	b.Status = string(StatusWaiting)
	return nil
}

// IsDue indica se o agendamento já chegou na hora, em relação a now (já no fuso do barbeiro).
func IsDue(b *models.Booking, now time.Time) bool {
	if b.AppointmentDate == nil || b.AppointmentTime == nil {
		return false
	}
	if !Day(*b.AppointmentDate).Equal(Day(now)) {
		return false
	}
	return *b.AppointmentTime <= FormatClock(ClockOf(now))
}
