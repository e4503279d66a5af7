package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/quickfixx-site/internal/models"
)

type ServiceGormRepository struct {
	crudRepository[models.Service]
}

func NewServiceGormRepository(db *gorm.DB) *ServiceGormRepository {
	return &ServiceGormRepository{crudRepository[models.Service]{db: db}}
}

type PackageGormRepository struct {
	crudRepository[models.Package]
}

func NewPackageGormRepository(db *gorm.DB) *PackageGormRepository {
	return &PackageGormRepository{crudRepository[models.Package]{db: db}}
}

type GalleryGormRepository struct {
	crudRepository[models.Gallery]
}

func NewGalleryGormRepository(db *gorm.DB) *GalleryGormRepository {
	return &GalleryGormRepository{crudRepository[models.Gallery]{db: db}}
}

type TestimonialGormRepository struct {
	crudRepository[models.Testimonial]
}

func NewTestimonialGormRepository(db *gorm.DB) *TestimonialGormRepository {
	return &TestimonialGormRepository{crudRepository[models.Testimonial]{db: db}}
}

type StaffGormRepository struct {
	crudRepository[models.Staff]
}

func NewStaffGormRepository(db *gorm.DB) *StaffGormRepository {
	return &StaffGormRepository{crudRepository[models.Staff]{db: db}}
}

// GetByEmployeeID is an exact, case-sensitive match on the public employee id.
func (r *StaffGormRepository) GetByEmployeeID(
	ctx context.Context,
	employeeID string,
) (*models.Staff, error) {

	var member models.Staff
	if err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		First(&member).Error; err != nil {
		return nil, notFound(err)
	}
	return &member, nil
}
