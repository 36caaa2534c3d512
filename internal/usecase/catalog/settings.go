package catalog

import (
	"context"

	"github.com/BruksfildServices01/barber-queue/internal/audit"
	domain "github.com/BruksfildServices01/barber-queue/internal/domain/catalog"
	"github.com/BruksfildServices01/barber-queue/internal/models"
)

type SettingsPatch struct {
	WorkStartTime           *string
	WorkEndTime             *string
	SMSNotificationsEnabled *bool
	Timezone                *string
}

type Settings struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewSettings(repo domain.Repository, audit *audit.Dispatcher) *Settings {
	return &Settings{repo: repo, audit: audit}
}

func (uc *Settings) Get(ctx context.Context, barberID uint) (*models.Barber, error) {
	return uc.repo.GetBarber(ctx, barberID)
}

func (uc *Settings) Update(ctx context.Context, barberID uint, p SettingsPatch) (*models.Barber, error) {
	b, err := uc.repo.GetBarber(ctx, barberID)
	if err != nil {
		return nil, err
	}

	if p.WorkStartTime != nil {
		b.WorkStartTime = *p.WorkStartTime
	}
	if p.WorkEndTime != nil {
		b.WorkEndTime = *p.WorkEndTime
	}
	if p.SMSNotificationsEnabled != nil {
		b.SMSNotificationsEnabled = *p.SMSNotificationsEnabled
	}
	if p.Timezone != nil {
		b.Timezone = *p.Timezone
	}

	if err := domain.ValidateSettings(b); err != nil {
		return nil, err
	}
	if err := uc.repo.UpdateBarber(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BarberID: barberID,
		Action:   "settings_updated",
		Entity:   "barber",
		EntityID: &b.ID,
		Metadata: map[string]any{
			"work_start_time":           b.WorkStartTime,
			"work_end_time":             b.WorkEndTime,
			"sms_notifications_enabled": b.SMSNotificationsEnabled,
			"timezone":                  b.Timezone,
		},
	})
	return b, nil
}
