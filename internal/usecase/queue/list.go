package queue

import (
	"context"

	"github.com/BruksfildServices01/barber-queue/internal/domain/booking"
	"github.com/BruksfildServices01/barber-queue/internal/models"
)

type QueueView struct {
	Head    *models.Booking  `json:"head"`
	Waiting []models.Booking `json:"waiting"`
}

type ListQueue struct {
	repo booking.Repository
}

func NewListQueue(repo booking.Repository) *ListQueue {
	return &ListQueue{repo: repo}
}

func (uc *ListQueue) Execute(ctx context.Context, barberID uint) (*QueueView, error) {
	waiting, err := uc.repo.ListWaiting(ctx, barberID)
	if err != nil {
		return nil, err
	}

	if waiting == nil {
		waiting = []models.Booking{}
	}

	return &QueueView{
		Head:    booking.Head(waiting),
		Waiting: waiting,
	}, nil
}
