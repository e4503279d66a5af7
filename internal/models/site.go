package models

import (
	"time"

	"gorm.io/gorm"
)

// ContactInfo is a single-row table keyed by SingletonID.
type ContactInfo struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Phone     string    `gorm:"size:50;not null" json:"phone"`
	Whatsapp  string    `gorm:"size:50;not null" json:"whatsapp"`
	Email     string    `gorm:"size:150;not null" json:"email"`
	Facebook  string    `gorm:"not null" json:"facebook"`
	Instagram string    `gorm:"not null" json:"instagram"`
	Tiktok    string    `gorm:"type:text" json:"tiktok"`
	Linkedin  string    `gorm:"type:text" json:"linkedin"`
	Twitter   string    `gorm:"type:text" json:"twitter"`
	Youtube   string    `gorm:"type:text" json:"youtube"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (ContactInfo) TableName() string { return "contact_info" }

func (c *ContactInfo) BeforeCreate(*gorm.DB) error {
	c.ID = SingletonID
	return nil
}

// Branding is a single-row table keyed by SingletonID.
type Branding struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	BrandName string    `gorm:"size:150;not null" json:"brandName"`
	LogoURL   string    `gorm:"type:text" json:"logoUrl"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Branding) TableName() string { return "branding" }

func (b *Branding) BeforeCreate(*gorm.DB) error {
	b.ID = SingletonID
	return nil
}
