package models

import "time"

// Barber é o limite de tenancy: toda consulta do core é filtrada por barber_id.
type Barber struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"size:150;uniqueIndex;not null" json:"username"`
	Name     string `gorm:"size:100" json:"name"`
	Phone    string `gorm:"size:20" json:"phone"`

	WorkStartTime string `gorm:"size:5;default:'08:00'" json:"work_start_time"`
	WorkEndTime   string `gorm:"size:5;default:'18:00'" json:"work_end_time"`

	SMSNotificationsEnabled bool   `gorm:"default:true" json:"sms_notifications_enabled"`
	Timezone                string `gorm:"size:64" json:"timezone"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
