package notify

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/barber-queue/internal/models"
)

// FlagStore marca a flag de confirmação depois de um envio bem sucedido.
type FlagStore interface {
	MarkConfirmationSent(ctx context.Context, bookingID uint) error
}

// Dispatcher envia confirmações fora da request; falhas só são logadas.
type Dispatcher struct {
	notifier Notifier
	flags    FlagStore
	timeout  time.Duration
	queue    chan models.Booking
	wg       sync.WaitGroup

	mu     sync.RWMutex
	closed bool
}

func NewDispatcher(notifier Notifier, flags FlagStore) *Dispatcher {
	d := &Dispatcher{
		notifier: notifier,
		flags:    flags,
		timeout:  10 * time.Second,
		queue:    make(chan models.Booking, 100),
	}

	d.wg.Add(1)
	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()

	for b := range d.queue {
		d.confirm(b)
	}
}

func (d *Dispatcher) confirm(b models.Booking) {
	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()

	log := logrus.WithFields(logrus.Fields{
		"booking_id": b.ID,
		"barber_id":  b.BarberID,
	})

	if err := d.notifier.NotifyConfirmation(ctx, b); err != nil {
		log.WithError(err).Warn("booking confirmation not sent")
		return
	}

	if err := d.flags.MarkConfirmationSent(ctx, b.ID); err != nil {
		log.WithError(err).Error("failed to mark confirmation sent")
	}
}

// SendConfirmation enfileira sem bloquear; fila cheia ou dispatcher fechado descarta com aviso.
func (d *Dispatcher) SendConfirmation(b models.Booking) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		logrus.WithField("booking_id", b.ID).Warn("confirmation dispatcher closed, dropping sms")
		return
	}

	select {
	case d.queue <- b:
	default:
		logrus.WithField("booking_id", b.ID).Warn("confirmation queue full, dropping sms")
	}
}

func (d *Dispatcher) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	close(d.queue)
	d.mu.Unlock()

	d.wg.Wait()
}
