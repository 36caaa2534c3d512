package audit

import (
	"sync"

	"github.com/sirupsen/logrus"
)

type Event struct {
	BarberID uint
	Action   string
	Entity   string
	EntityID *uint
	Metadata map[string]any
}

// Sink recebe cada evento despachado.
type Sink interface {
	Record(ev Event) error
}

type Dispatcher struct {
	sinks []Sink
	queue chan Event
	wg    sync.WaitGroup

	mu     sync.RWMutex
	closed bool
}

func NewDispatcher(sinks ...Sink) *Dispatcher {
	d := &Dispatcher{
		sinks: sinks,
		queue: make(chan Event, 100), // buffer seguro
	}

	d.wg.Add(1)
	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()

	for ev := range d.queue {
		for _, s := range d.sinks {
			if err := s.Record(ev); err != nil {
				logrus.WithFields(logrus.Fields{
					"action":    ev.Action,
					"barber_id": ev.BarberID,
					"error":     err.Error(),
				}).Warn("audit sink failed")
			}
		}
	}
}

// Dispatch nunca bloqueia; depois do Close o evento é descartado.
func (d *Dispatcher) Dispatch(ev Event) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		logrus.WithField("action", ev.Action).Warn("audit dispatcher closed, dropping event")
		return
	}

	select {
	case d.queue <- ev:
		// enviado
	default:
		// fila cheia → descartamos audit (nunca quebrar API)
		logrus.WithField("action", ev.Action).Warn("audit queue full, dropping event")
	}
}

// Close drena a fila e espera o worker terminar. Chamadas extras não fazem nada.
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
