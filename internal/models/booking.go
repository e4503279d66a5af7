package models

import (
	"time"

	"gorm.io/gorm"
)

type Booking struct {
	ID              string  `gorm:"primaryKey;size:36" json:"id"`
	CustomerName    string  `gorm:"size:150;not null" json:"customerName"`
	CustomerPhone   string  `gorm:"size:30;not null;index" json:"customerPhone"`
	CustomerEmail   *string `gorm:"size:150" json:"customerEmail"`
	CustomerAddress string  `gorm:"type:text;not null" json:"customerAddress"`
	Latitude        *string `gorm:"size:30" json:"latitude"`
	Longitude       *string `gorm:"size:30" json:"longitude"`
	ServiceType     string  `gorm:"size:100;not null" json:"serviceType"`
	PreferredDate   string  `gorm:"size:20;not null" json:"preferredDate"`
	PreferredTime   string  `gorm:"size:20;not null" json:"preferredTime"`
	Details         *string `gorm:"type:text" json:"details"`

	Status string `gorm:"size:20;not null;default:'pending'" json:"status"`

	CreatedAt time.Time `json:"createdAt"`
}

func (b *Booking) BeforeCreate(*gorm.DB) error {
	assignID(&b.ID)
	return nil
}
