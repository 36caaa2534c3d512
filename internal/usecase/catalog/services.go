package catalog

import (
	"context"

	"github.com/BruksfildServices01/barber-queue/internal/audit"
	domain "github.com/BruksfildServices01/barber-queue/internal/domain/catalog"
	"github.com/BruksfildServices01/barber-queue/internal/models"
)

const defaultDuration = 30

// ServicePatch: campos nil ficam como estão.
type ServicePatch struct {
	Name            *string
	Description     *string
	DurationMinutes *int
	Price           *float64
}

type Services struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewServices(repo domain.Repository, audit *audit.Dispatcher) *Services {
	return &Services{repo: repo, audit: audit}
}

func (uc *Services) List(ctx context.Context, barberID uint) ([]models.Service, error) {
	return uc.repo.ListServices(ctx, barberID)
}

func (uc *Services) Create(ctx context.Context, barberID uint, p ServicePatch) (*models.Service, error) {
	s := &models.Service{
		BarberID:        barberID,
		DurationMinutes: defaultDuration,
	}
	apply(s, p)

	if err := uc.save(ctx, s, true); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(serviceEvent(barberID, "service_created", s))
	return s, nil
}

func (uc *Services) Update(ctx context.Context, barberID, serviceID uint, p ServicePatch) (*models.Service, error) {
	s, err := uc.repo.GetService(ctx, barberID, serviceID)
	if err != nil {
		return nil, err
	}
	apply(s, p)

	if err := uc.save(ctx, s, false); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(serviceEvent(barberID, "service_updated", s))
	return s, nil
}

func (uc *Services) Delete(ctx context.Context, barberID, serviceID uint) error {
	if err := uc.repo.DeleteService(ctx, barberID, serviceID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		BarberID: barberID,
		Action:   "service_deleted",
		Entity:   "service",
		EntityID: &serviceID,
	})
	return nil
}

func (uc *Services) save(ctx context.Context, s *models.Service, create bool) error {
	if err := domain.ValidateService(s); err != nil {
		return err
	}

	taken, err := uc.repo.ServiceNameTaken(ctx, s.BarberID, s.Name, s.ID)
	if err != nil {
		return err
	}
	if taken {
		return domain.ErrDuplicateServiceName
	}

	if create {
		return uc.repo.CreateService(ctx, s)
	}
	return uc.repo.UpdateService(ctx, s)
}

func apply(s *models.Service, p ServicePatch) {
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.Description != nil {
		s.Description = *p.Description
	}
	if p.DurationMinutes != nil {
		s.DurationMinutes = *p.DurationMinutes
	}
	if p.Price != nil {
		s.Price = *p.Price
	}
}

func serviceEvent(barberID uint, action string, s *models.Service) audit.Event {
	return audit.Event{
		BarberID: barberID,
		Action:   action,
		Entity:   "service",
		EntityID: &s.ID,
		Metadata: map[string]any{
			"name":     s.Name,
			"duration": s.DurationMinutes,
			"price":    s.Price,
		},
	}
}
