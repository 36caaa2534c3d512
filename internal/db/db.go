package db

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/BruksfildServices01/barber-queue/internal/config"
	"github.com/BruksfildServices01/barber-queue/internal/models"
)

// indexes que o AutoMigrate não sabe expressar
var extraIndexes = []string{
	// posição é única só entre quem está esperando
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_bookings_waiting_position
        ON bookings (barber_id, queue_position)
        WHERE status = 'waiting'`,

	`CREATE INDEX IF NOT EXISTS idx_bookings_barber_date
        ON bookings (barber_id, appointment_date)`,
}

func NewDB(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.Database.URL), &gorm.Config{
		PrepareStmt: true,
		Logger:      logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	return db, nil
}

func Migrate(db *gorm.DB, defaultTimezone string) error {
	if err := db.AutoMigrate(
		&models.Barber{},
		&models.Service{},
		&models.Client{},
		&models.Booking{},
		&models.Income{},
		&models.AuditLog{},
	); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	for _, stmt := range extraIndexes {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("create index: %w", err)
		}
	}

	res := db.Exec(`
        UPDATE barbers
        SET timezone = ?
        WHERE timezone IS NULL OR timezone = ''
    `, defaultTimezone)
	if res.Error != nil {
		return fmt.Errorf("backfill timezone: %w", res.Error)
	}
	if res.RowsAffected > 0 {
		logrus.WithField("rows", res.RowsAffected).Info("barber timezone backfilled")
	}

	return nil
}
