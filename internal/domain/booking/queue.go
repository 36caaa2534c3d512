package booking

import (
	"sort"

	"github.com/BruksfildServices01/barber-queue/internal/models"
)

// SortQueue ordena por (queue_position, added_to_queue_at); id desempata.
func SortQueue(q []models.Booking) {
	sort.SliceStable(q, func(i, j int) bool {
		a, b := q[i], q[j]
		if a.QueuePosition != b.QueuePosition {
			return a.QueuePosition < b.QueuePosition
		}
		if !a.AddedToQueueAt.Equal(b.AddedToQueueAt) {
			return a.AddedToQueueAt.Before(b.AddedToQueueAt)
		}
		return a.ID < b.ID
	})
}

// Head devolve o primeiro da fila já ordenada, ou nil.
func Head(q []models.Booking) *models.Booking {
	if len(q) == 0 {
		return nil
	}
	return &q[0]
}

// NextPosition é max(queue_position) + 1, ou 1 com a fila vazia.
func NextPosition(q []models.Booking) int {
	maxPos := 0
	for _, b := range q {
		if b.QueuePosition > maxPos {
			maxPos = b.QueuePosition
		}
	}
	return maxPos + 1
}

// Renumber reatribui 1..n na ordem da fila e devolve os que mudaram.
func Renumber(q []models.Booking) []*models.Booking {
	SortQueue(q)

	var changed []*models.Booking
	for i := range q {
		want := i + 1
		if q[i].QueuePosition != want {
			q[i].QueuePosition = want
			changed = append(changed, &q[i])
		}
	}
	return changed
}
