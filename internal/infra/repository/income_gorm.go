package repository

import (
	"context"
	"time"

	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/barber-queue/internal/domain/booking"
	"github.com/BruksfildServices01/barber-queue/internal/domain/income"
	"github.com/BruksfildServices01/barber-queue/internal/models"
)

func (r *GormRepository) GetIncome(
	ctx context.Context,
	barberID uint,
	incomeID uint,
) (*models.Income, error) {

	var in models.Income
	if err := r.db.WithContext(ctx).
		Where("id = ? AND barber_id = ?", incomeID, barberID).
		First(&in).Error; err != nil {
		return nil, notFound(err, income.ErrIncomeNotFound)
	}
	return &in, nil
}

func (r *GormRepository) UpdateIncome(ctx context.Context, in *models.Income) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(in).Error
}

func (r *GormRepository) ListIncomeByDate(
	ctx context.Context,
	barberID uint,
	date time.Time,
) ([]models.Income, error) {

	var list []models.Income
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Service").
		Where("barber_id = ? AND date = ?", barberID, date.Format(booking.DateLayout)).
		Order("created_at ASC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *GormRepository) ListCredit(
	ctx context.Context,
	barberID uint,
	paid *bool,
) ([]models.Income, error) {

	q := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Service").
		Where("barber_id = ? AND payment_method = ?", barberID, string(booking.PaymentCredit))

	if paid != nil {
		q = q.Where("credit_paid = ?", *paid)
	}

	var list []models.Income
	if err := q.Order("credit_paid ASC, date DESC, id DESC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

var _ income.Repository = (*GormRepository)(nil)
