package audit

import (
	"context"
	"encoding/json"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/quickfixx-site/internal/models"
)

type Logger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

func (l *Logger) Log(ctx context.Context, ev Event) error {
	var metaJSON string
	if ev.Metadata != nil {
		if b, err := json.Marshal(ev.Metadata); err == nil {
			metaJSON = string(b)
		}
	}

	row := models.AuditLog{
		Action:   ev.Action,
		Entity:   ev.Entity,
		Metadata: metaJSON,
	}
	if ev.ActorID != "" {
		row.ActorID = &ev.ActorID
	}
	if ev.EntityID != "" {
		row.EntityID = &ev.EntityID
	}

	return l.db.WithContext(ctx).Create(&row).Error
}
