package audit

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-queue/internal/models"
)

const (
	defaultLimit = 50
	maxLimit     = 200
)

// Query filtra audit_logs sempre no escopo de um barbeiro.
// From/To são dias civis; To é inclusivo.
type Query struct {
	BarberID uint
	Action   string
	Entity   string
	EntityID *uint
	From     *time.Time
	To       *time.Time
	Page     int
	Limit    int
}

type Page struct {
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
	Total int64             `json:"total"`
	Logs  []models.AuditLog `json:"logs"`
}

func (q Query) normalized() Query {
	if q.Page <= 0 {
		q.Page = 1
	}
	if q.Limit <= 0 || q.Limit > maxLimit {
		q.Limit = defaultLimit
	}
	return q
}

// List devolve a página mais recente primeiro.
func (l *Logger) List(ctx context.Context, q Query) (*Page, error) {
	q = q.normalized()

	tx := l.db.WithContext(ctx).
		Model(&models.AuditLog{}).
		Where("barber_id = ?", q.BarberID)

	if q.Action != "" {
		tx = tx.Where("action = ?", q.Action)
	}
	if q.Entity != "" {
		tx = tx.Where("entity = ?", q.Entity)
	}
	if q.EntityID != nil {
		tx = tx.Where("entity_id = ?", *q.EntityID)
	}
	if q.From != nil {
		tx = tx.Where("created_at >= ?", *q.From)
	}
	if q.To != nil {
		tx = tx.Where("created_at < ?", q.To.AddDate(0, 0, 1))
	}

	var total int64
	if err := tx.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, err
	}

	logs := []models.AuditLog{}
	if err := tx.Session(&gorm.Session{}).
		Order("created_at DESC, id DESC").
		Limit(q.Limit).
		Offset((q.Page - 1) * q.Limit).
		Find(&logs).Error; err != nil {
		return nil, err
	}

	return &Page{Page: q.Page, Limit: q.Limit, Total: total, Logs: logs}, nil
}
