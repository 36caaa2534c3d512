package booking

import (
	domain "github.com/BruksfildServices01/barber-queue/internal/domain/booking"
	"github.com/BruksfildServices01/barber-queue/internal/models"
)

// occupied converte bookings com horário em intervalos ocupados.
// Sem serviço, a duração assumida é a granularidade.
func occupied(list []models.Booking, granularity int) []domain.Occupied {
	out := make([]domain.Occupied, 0, len(list))
	for _, b := range list {
		if b.AppointmentTime == nil {
			continue
		}
		start, err := domain.ParseClock(*b.AppointmentTime)
		if err != nil {
			continue
		}
		out = append(out, domain.Occupied{
			Start:       start,
			DurationMin: serviceDuration(b.Service, granularity),
		})
	}
	return out
}

func serviceDuration(s *models.Service, fallback int) int {
	if s != nil && s.DurationMinutes > 0 {
		return s.DurationMinutes
	}
	return fallback
}

func strPtr(s string) *string {
	return &s
}
