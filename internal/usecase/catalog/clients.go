package catalog

import (
	"context"

	"github.com/BruksfildServices01/barber-queue/internal/audit"
	domain "github.com/BruksfildServices01/barber-queue/internal/domain/catalog"
	"github.com/BruksfildServices01/barber-queue/internal/models"
	"github.com/BruksfildServices01/barber-queue/internal/usecase/queue"
	"github.com/BruksfildServices01/barber-queue/internal/validators"
)

// Enqueuer é satisfeito por *queue.Enqueue.
type Enqueuer interface {
	Execute(ctx context.Context, in queue.EnqueueInput) (*models.Booking, error)
}

type ClientPatch struct {
	Name     *string
	Surname  *string
	Phone    *string
	AgeGroup *string
	Gender   *string
}

type NewClientInput struct {
	ClientPatch

	// AddToQueue coloca o cliente recém-criado no fim da fila.
	AddToQueue bool
	ServiceID  *uint
}

type Clients struct {
	repo    domain.Repository
	audit   *audit.Dispatcher
	enqueue Enqueuer
}

func NewClients(repo domain.Repository, audit *audit.Dispatcher, enqueue Enqueuer) *Clients {
	return &Clients{repo: repo, audit: audit, enqueue: enqueue}
}

func (uc *Clients) List(ctx context.Context, barberID uint, query string) ([]models.Client, error) {
	return uc.repo.ListClients(ctx, barberID, query)
}

func (uc *Clients) Get(ctx context.Context, barberID, clientID uint) (*models.Client, error) {
	return uc.repo.GetClient(ctx, barberID, clientID)
}

// Create devolve também o booking quando AddToQueue está ligado.
func (uc *Clients) Create(
	ctx context.Context,
	barberID uint,
	in NewClientInput,
) (*models.Client, *models.Booking, error) {

	c := &models.Client{BarberID: barberID}
	applyClient(c, in.ClientPatch)

	if err := uc.save(ctx, c, true); err != nil {
		return nil, nil, err
	}
	uc.audit.Dispatch(clientEvent(barberID, "client_created", c))

	if !in.AddToQueue || uc.enqueue == nil {
		return c, nil, nil
	}

	b, err := uc.enqueue.Execute(ctx, queue.EnqueueInput{
		BarberID:  barberID,
		ClientID:  &c.ID,
		ServiceID: in.ServiceID,
	})
	if err != nil {
		return c, nil, err
	}
	return c, b, nil
}

func (uc *Clients) Update(ctx context.Context, barberID, clientID uint, p ClientPatch) (*models.Client, error) {
	c, err := uc.repo.GetClient(ctx, barberID, clientID)
	if err != nil {
		return nil, err
	}
	applyClient(c, p)

	if err := uc.save(ctx, c, false); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(clientEvent(barberID, "client_updated", c))
	return c, nil
}

func (uc *Clients) Delete(ctx context.Context, barberID, clientID uint) error {
	if err := uc.repo.DeleteClient(ctx, barberID, clientID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		BarberID: barberID,
		Action:   "client_deleted",
		Entity:   "client",
		EntityID: &clientID,
	})
	return nil
}

func (uc *Clients) save(ctx context.Context, c *models.Client, create bool) error {
	if err := domain.ValidateClient(c); err != nil {
		return err
	}
	c.Phone = validators.NormalizePhone(c.Phone)

	taken, err := uc.repo.PhoneTaken(ctx, c.BarberID, c.Phone, c.ID)
	if err != nil {
		return err
	}
	if taken {
		return domain.ErrDuplicatePhone
	}

	if create {
		return uc.repo.CreateClient(ctx, c)
	}
	return uc.repo.UpdateClient(ctx, c)
}

func applyClient(c *models.Client, p ClientPatch) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Surname != nil {
		c.Surname = *p.Surname
	}
	if p.Phone != nil {
		c.Phone = *p.Phone
	}
	if p.AgeGroup != nil {
		c.AgeGroup = *p.AgeGroup
	}
	if p.Gender != nil {
		c.Gender = *p.Gender
	}
}

func clientEvent(barberID uint, action string, c *models.Client) audit.Event {
	return audit.Event{
		BarberID: barberID,
		Action:   action,
		Entity:   "client",
		EntityID: &c.ID,
		Metadata: map[string]any{"name": c.FullName()},
	}
}
