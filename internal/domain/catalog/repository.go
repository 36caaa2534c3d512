package catalog

import (
	"context"

	"github.com/BruksfildServices01/barber-queue/internal/models"
)

type Repository interface {
	// -------- Barber --------
	GetBarber(ctx context.Context, barberID uint) (*models.Barber, error)
	UpdateBarber(ctx context.Context, b *models.Barber) error

	// -------- Service --------
	ListServices(ctx context.Context, barberID uint) ([]models.Service, error)
	GetService(ctx context.Context, barberID uint, serviceID uint) (*models.Service, error)
	ServiceNameTaken(ctx context.Context, barberID uint, name string, exceptID uint) (bool, error)
	CreateService(ctx context.Context, s *models.Service) error
	UpdateService(ctx context.Context, s *models.Service) error

	// DeleteService anula service_id em bookings e incomes antes de apagar.
	DeleteService(ctx context.Context, barberID uint, serviceID uint) error

	// -------- Client --------
	ListClients(ctx context.Context, barberID uint, query string) ([]models.Client, error)
	GetClient(ctx context.Context, barberID uint, clientID uint) (*models.Client, error)
	PhoneTaken(ctx context.Context, barberID uint, phone string, exceptID uint) (bool, error)
	CreateClient(ctx context.Context, c *models.Client) error
	UpdateClient(ctx context.Context, c *models.Client) error

	// DeleteClient anula client_id em bookings e incomes antes de apagar.
	DeleteClient(ctx context.Context, barberID uint, clientID uint) error
}
