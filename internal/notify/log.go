package notify

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/barber-queue/internal/models"
)

// LogNotifier só registra o que seria enviado e devolve ErrNotConfigured,
// então as flags sms_*_sent nunca são marcadas.
type LogNotifier struct {
	messages Messages
}

func NewLogNotifier(messages Messages) *LogNotifier {
	return &LogNotifier{messages: messages}
}

func (n *LogNotifier) NotifyConfirmation(_ context.Context, b models.Booking) error {
	return n.log(n.messages.Confirmation(b))
}

func (n *LogNotifier) NotifyReminder(_ context.Context, b models.Booking) error {
	return n.log(n.messages.Reminder(b))
}

func (n *LogNotifier) log(req SMSRequest) error {
	logrus.WithFields(logrus.Fields{
		"kind":       req.Kind,
		"booking_id": req.BookingID,
		"to":         req.To,
		"body":       req.Body,
	}).Info("sms not configured, message not sent")
	return ErrNotConfigured
}
