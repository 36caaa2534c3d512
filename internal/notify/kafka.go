package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/barber-queue/internal/models"
)

// MessageWriter é o subconjunto de *kafka.Writer usado aqui.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		BatchTimeout: 50 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
	}
}

// KafkaNotifier publica SMSRequest no tópico do gateway de SMS.
type KafkaNotifier struct {
	writer   MessageWriter
	messages Messages
}

func NewKafkaNotifier(writer MessageWriter, messages Messages) *KafkaNotifier {
	return &KafkaNotifier{writer: writer, messages: messages}
}

func (n *KafkaNotifier) NotifyConfirmation(ctx context.Context, b models.Booking) error {
	return n.publish(ctx, n.messages.Confirmation(b))
}

func (n *KafkaNotifier) NotifyReminder(ctx context.Context, b models.Booking) error {
	return n.publish(ctx, n.messages.Reminder(b))
}

func (n *KafkaNotifier) publish(ctx context.Context, req SMSRequest) error {
	if req.To == "" {
		return fmt.Errorf("notify: booking %d has no phone", req.BookingID)
	}

	data, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("notify: marshal sms request: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatUint(uint64(req.BookingID), 10)),
		Value: data,
		Time:  time.Now(),
	}

	if err := n.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("notify: publish %s for booking %d: %w", req.Kind, req.BookingID, err)
	}

	logrus.WithFields(logrus.Fields{
		"kind":       req.Kind,
		"booking_id": req.BookingID,
	}).Info("sms request published")
	return nil
}

func (n *KafkaNotifier) Close() error {
	return n.writer.Close()
}
