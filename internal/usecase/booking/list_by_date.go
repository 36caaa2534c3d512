package booking

import (
	"context"

	domain "github.com/BruksfildServices01/barber-queue/internal/domain/booking"
	"github.com/BruksfildServices01/barber-queue/internal/models"
)

type ListBookingsByDate struct {
	repo domain.Repository
}

func NewListBookingsByDate(repo domain.Repository) *ListBookingsByDate {
	return &ListBookingsByDate{repo: repo}
}

func (uc *ListBookingsByDate) Execute(
	ctx context.Context,
	barberID uint,
	dateStr string,
) ([]models.Booking, error) {

	date, err := domain.ParseDate(dateStr)
	if err != nil {
		return nil, domain.ErrInvalidDate
	}

	list, err := uc.repo.ListBookingsForDate(ctx, barberID, date, nil)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []models.Booking{}
	}
	return list, nil
}
