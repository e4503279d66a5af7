package models

import (
	"time"

	"gorm.io/gorm"
)

// AdminUser is the only identity allowed through the authenticated API.
type AdminUser struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	Username     string    `gorm:"size:100;uniqueIndex;not null" json:"username"`
	PasswordHash string    `gorm:"column:password;size:255;not null" json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (u *AdminUser) BeforeCreate(*gorm.DB) error {
	assignID(&u.ID)
	return nil
}

// StaffUser is a secondary account record managed by admins.
type StaffUser struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	Username     string    `gorm:"size:100;uniqueIndex;not null" json:"username"`
	PasswordHash string    `gorm:"column:password;size:255;not null" json:"-"`
	Name         string    `gorm:"size:150;not null" json:"name"`
	Role         string    `gorm:"size:100;not null" json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (u *StaffUser) BeforeCreate(*gorm.DB) error {
	assignID(&u.ID)
	return nil
}
