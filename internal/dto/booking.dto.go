package dto

import (
	"github.com/BruksfildServices01/barber-queue/internal/domain/booking"
	"github.com/BruksfildServices01/barber-queue/internal/models"
)

// PublicBookingDTO é o que a página pública de cancelamento enxerga.
type PublicBookingDTO struct {
	ID                uint   `json:"id"`
	Status            string `json:"status"`
	BarberName        string `json:"barber_name"`
	ClientName        string `json:"client_name"`
	ServiceName       string `json:"service_name,omitempty"`
	Date              string `json:"date,omitempty"`
	Time              string `json:"time,omitempty"`
	CancellationToken string `json:"cancellation_token,omitempty"`
}

func NewPublicBooking(b *models.Booking) PublicBookingDTO {
	out := PublicBookingDTO{
		ID:         b.ID,
		Status:     b.Status,
		ClientName: b.DisplayName(),
	}
	if b.Barber != nil {
		out.BarberName = b.Barber.Name
	}
	if b.Service != nil {
		out.ServiceName = b.Service.Name
	}
	if b.AppointmentDate != nil {
		out.Date = b.AppointmentDate.Format(booking.DateLayout)
	}
	if b.AppointmentTime != nil {
		out.Time = *b.AppointmentTime
	}
	return out
}

// WithToken é usado só na resposta da criação pública.
func (d PublicBookingDTO) WithToken(b *models.Booking) PublicBookingDTO {
	if b.CancellationToken != nil {
		d.CancellationToken = *b.CancellationToken
	}
	return d
}

// CompleteDTO junta o booking concluído com a receita gerada.
type CompleteDTO struct {
	Booking *models.Booking `json:"booking"`
	Income  *models.Income  `json:"income"`
}

type SlotsDTO struct {
	Date  string   `json:"date"`
	Slots []string `json:"slots"`
}
