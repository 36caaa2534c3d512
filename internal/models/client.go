package models

import "time"

// Cliente simples, sem login, vinculado ao barbeiro
type Client struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	BarberID uint `gorm:"not null;uniqueIndex:idx_clients_barber_phone" json:"barber_id"`

	Name    string `gorm:"size:100;not null" json:"name"`
	Surname string `gorm:"size:100" json:"surname"`
	Phone   string `gorm:"size:20;not null;uniqueIndex:idx_clients_barber_phone" json:"phone"`

	AgeGroup string `gorm:"size:10" json:"age_group,omitempty"`
	Gender   string `gorm:"size:10" json:"gender,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c Client) FullName() string {
	if c.Surname == "" {
		return c.Name
	}
	return c.Name + " " + c.Surname
}
