package models

import "time"

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BarberID uint    `gorm:"not null;index" json:"barber_id"`
	Barber   *Barber `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	ClientID *uint   `json:"client_id"`
	Client   *Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client,omitempty"`

	ServiceID *uint    `json:"service_id"`
	Service   *Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service,omitempty"`

	// walk-in sem cadastro
	ClientName  string `gorm:"size:200" json:"client_name,omitempty"`
	ClientPhone string `gorm:"size:20" json:"client_phone,omitempty"`

	AppointmentDate *time.Time `gorm:"type:date;index" json:"appointment_date,omitempty"`
	AppointmentTime *string    `gorm:"size:5" json:"appointment_time,omitempty"`

	AddedToQueueAt time.Time  `gorm:"not null" json:"added_to_queue_at"`
	TimerStartedAt *time.Time `json:"timer_started_at,omitempty"`
	TimerEndedAt   *time.Time `json:"timer_ended_at,omitempty"`

	Status        string `gorm:"size:20;not null;default:'waiting';index" json:"status"`
	QueuePosition int    `gorm:"not null;default:0" json:"queue_position"`
	IsWalkin      bool   `gorm:"not null" json:"is_walkin"`

	CancellationToken *string `gorm:"size:100;uniqueIndex" json:"-"`

	SMSConfirmationSent bool `gorm:"not null" json:"sms_confirmation_sent"`
	SMSReminderSent     bool `gorm:"not null" json:"sms_reminder_sent"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DisplayName devolve o nome do cliente cadastrado ou do walk-in.
func (b Booking) DisplayName() string {
	if b.Client != nil {
		return b.Client.FullName()
	}
	return b.ClientName
}

// DisplayPhone segue a mesma regra de DisplayName.
func (b Booking) DisplayPhone() string {
	if b.Client != nil {
		return b.Client.Phone
	}
	return b.ClientPhone
}
