package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/barber-queue/internal/domain/booking"
	"github.com/BruksfildServices01/barber-queue/internal/domain/catalog"
	"github.com/BruksfildServices01/barber-queue/internal/httperr"
	"github.com/BruksfildServices01/barber-queue/internal/models"
)

// --------------------------------------------------
// Barber settings
// --------------------------------------------------

func (r *GormRepository) UpdateBarber(ctx context.Context, b *models.Barber) error {
	return r.db.WithContext(ctx).
		Model(b).
		Select("work_start_time", "work_end_time", "sms_notifications_enabled", "timezone").
		Updates(b).Error
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (r *GormRepository) ListServices(ctx context.Context, barberID uint) ([]models.Service, error) {
	var services []models.Service
	if err := r.db.WithContext(ctx).
		Where("barber_id = ?", barberID).
		Order("name ASC").
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (r *GormRepository) ServiceNameTaken(
	ctx context.Context,
	barberID uint,
	name string,
	exceptID uint,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Service{}).
		Where("barber_id = ? AND name = ? AND id <> ?", barberID, name, exceptID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormRepository) CreateService(ctx context.Context, s *models.Service) error {
	if err := r.db.WithContext(ctx).Create(s).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			return catalog.ErrDuplicateServiceName
		}
		return err
	}
	return nil
}

func (r *GormRepository) UpdateService(ctx context.Context, s *models.Service) error {
	if err := r.db.WithContext(ctx).Save(s).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			return catalog.ErrDuplicateServiceName
		}
		return err
	}
	return nil
}

// DeleteService aplica a política: service_id vira NULL em bookings e incomes.
func (r *GormRepository) DeleteService(ctx context.Context, barberID uint, serviceID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.
			Where("id = ? AND barber_id = ?", serviceID, barberID).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Find(&models.Service{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return booking.ErrServiceNotFound
		}

		if err := tx.Model(&models.Booking{}).
			Where("service_id = ? AND barber_id = ?", serviceID, barberID).
			Update("service_id", nil).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.Income{}).
			Where("service_id = ? AND barber_id = ?", serviceID, barberID).
			Update("service_id", nil).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Service{}, serviceID).Error
	})
}

// --------------------------------------------------
// Client
// --------------------------------------------------

func (r *GormRepository) ListClients(
	ctx context.Context,
	barberID uint,
	query string,
) ([]models.Client, error) {

	q := r.db.WithContext(ctx).Where("barber_id = ?", barberID)

	if query != "" {
		like := "%" + query + "%"
		q = q.Where("(name ILIKE ? OR surname ILIKE ? OR phone ILIKE ?)", like, like, like)
	}

	var clients []models.Client
	if err := q.Order("name ASC, surname ASC").Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

func (r *GormRepository) PhoneTaken(
	ctx context.Context,
	barberID uint,
	phone string,
	exceptID uint,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Client{}).
		Where("barber_id = ? AND phone = ? AND id <> ?", barberID, phone, exceptID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormRepository) CreateClient(ctx context.Context, c *models.Client) error {
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			return catalog.ErrDuplicatePhone
		}
		return err
	}
	return nil
}

func (r *GormRepository) UpdateClient(ctx context.Context, c *models.Client) error {
	if err := r.db.WithContext(ctx).Save(c).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			return catalog.ErrDuplicatePhone
		}
		return err
	}
	return nil
}

// DeleteClient aplica a política: client_id vira NULL em bookings e incomes.
func (r *GormRepository) DeleteClient(ctx context.Context, barberID uint, clientID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.
			Where("id = ? AND barber_id = ?", clientID, barberID).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Find(&models.Client{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return booking.ErrClientNotFound
		}

		if err := tx.Model(&models.Booking{}).
			Where("client_id = ? AND barber_id = ?", clientID, barberID).
			Update("client_id", nil).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.Income{}).
			Where("client_id = ? AND barber_id = ?", clientID, barberID).
			Update("client_id", nil).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Client{}, clientID).Error
	})
}

var _ catalog.Repository = (*GormRepository)(nil)
