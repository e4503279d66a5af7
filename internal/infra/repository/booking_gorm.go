package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/quickfixx-site/internal/domain/booking"
	"github.com/BruksfildServices01/quickfixx-site/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

func (r *BookingGormRepository) List(ctx context.Context) ([]models.Booking, error) {
	bookings := []models.Booking{}
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingGormRepository) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	var b models.Booking
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&b).Error; err != nil {
		return nil, notFound(err)
	}
	return &b, nil
}

func (r *BookingGormRepository) ListByPhone(
	ctx context.Context,
	phone string,
) ([]models.Booking, error) {

	bookings := []models.Booking{}
	if err := r.db.WithContext(ctx).
		Where("customer_phone = ?", phone).
		Order("created_at ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingGormRepository) Create(ctx context.Context, b *models.Booking) error {
	return r.db.WithContext(ctx).Create(b).Error
}

// UpdateStatus is a single-row write; concurrent updates are last-write-wins.
func (r *BookingGormRepository) UpdateStatus(
	ctx context.Context,
	id string,
	status string,
) (*models.Booking, error) {

	res := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	return r.GetByID(ctx, id)
}

func (r *BookingGormRepository) Delete(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Booking{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
