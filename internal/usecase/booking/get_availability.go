package booking

import (
	"context"
	"errors"

	domain "github.com/BruksfildServices01/barber-queue/internal/domain/booking"
)

type AvailabilityInput struct {
	Username  string
	Date      string
	ServiceID uint
}

// GetAvailability calcula os slots livres. Data inválida ou serviço fora do
// escopo do barbeiro resultam em lista vazia, não em erro.
type GetAvailability struct {
	repo domain.Repository
	opts Options
}

func NewGetAvailability(repo domain.Repository, opts Options) *GetAvailability {
	return &GetAvailability{repo: repo, opts: opts}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in AvailabilityInput,
) ([]string, error) {

	barber, err := uc.repo.GetBarberByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}

	date, err := domain.ParseDate(in.Date)
	if err != nil {
		return []string{}, nil
	}

	svc, err := uc.repo.GetService(ctx, barber.ID, in.ServiceID)
	if errors.Is(err, domain.ErrServiceNotFound) {
		return []string{}, nil
	}
	if err != nil {
		return nil, err
	}

	booked, err := uc.repo.ListBookingsForDate(ctx, barber.ID, date, domain.BlockingStatuses)
	if err != nil {
		return nil, err
	}

	return domain.AvailableSlots(domain.SlotQuery{
		WorkStart:   barber.WorkStartTime,
		WorkEnd:     barber.WorkEndTime,
		DurationMin: svc.DurationMinutes,
		Granularity: uc.opts.Granularity,
		Mode:        uc.opts.OverlapMode,
		Booked:      occupied(booked, uc.opts.Granularity),
	}), nil
}
