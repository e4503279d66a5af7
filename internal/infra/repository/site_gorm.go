package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/quickfixx-site/internal/models"
)

// singletonRepository stores a table that holds one row keyed by models.SingletonID.
type singletonRepository[T any] struct {
	db *gorm.DB
}

func (r singletonRepository[T]) Get(ctx context.Context) (*T, error) {
	var out T
	if err := r.db.WithContext(ctx).
		Where("id = ?", models.SingletonID).
		First(&out).Error; err != nil {
		return nil, notFound(err)
	}
	return &out, nil
}

// Upsert inserts the row or overwrites every column of the existing one.
func (r singletonRepository[T]) Upsert(ctx context.Context, row *T) (*T, error) {
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(row).Error; err != nil {
		return nil, err
	}
	return r.Get(ctx)
}

type ContactInfoGormRepository struct {
	singletonRepository[models.ContactInfo]
}

func NewContactInfoGormRepository(db *gorm.DB) *ContactInfoGormRepository {
	return &ContactInfoGormRepository{singletonRepository[models.ContactInfo]{db: db}}
}

type BrandingGormRepository struct {
	singletonRepository[models.Branding]
}

func NewBrandingGormRepository(db *gorm.DB) *BrandingGormRepository {
	return &BrandingGormRepository{singletonRepository[models.Branding]{db: db}}
}
