package models

import "time"

type Income struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	BarberID uint `gorm:"not null;index" json:"barber_id"`

	BookingID *uint `gorm:"index" json:"booking_id"`
	ClientID  *uint `json:"client_id"`
	ServiceID *uint `json:"service_id"`

	// walk-in sem cadastro
	ClientName string `gorm:"size:200" json:"client_name"`
	IsWalkin   bool   `gorm:"not null;default:false" json:"is_walkin"`

	Client  *Client  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client,omitempty"`
	Service *Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service,omitempty"`

	Amount        float64   `gorm:"type:numeric(10,2);not null" json:"amount"`
	PaymentMethod string    `gorm:"size:10;not null;default:'cash'" json:"payment_method"`
	Date          time.Time `gorm:"type:date;not null;index" json:"date"`
	Notes         string    `gorm:"type:text" json:"notes"`

	CreditPaid     bool       `gorm:"not null" json:"credit_paid"`
	CreditPaidDate *time.Time `gorm:"type:date" json:"credit_paid_date,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
