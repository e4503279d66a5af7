package models

import (
	"time"

	"gorm.io/gorm"
)

type AuditLog struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	ActorID *string `gorm:"size:36" json:"actorId"`
	Action  string  `gorm:"size:50;not null;index" json:"action"`

	Entity   string  `gorm:"size:50;index" json:"entity"`
	EntityID *string `gorm:"size:36" json:"entityId"`
	Metadata string  `gorm:"type:text" json:"metadata"`

	CreatedAt time.Time `gorm:"index" json:"createdAt"`
}

func (l *AuditLog) BeforeCreate(*gorm.DB) error {
	assignID(&l.ID)
	return nil
}
