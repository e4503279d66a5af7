package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/quickfixx-site/internal/models"
)

// --------------------------------------------------
// Admin users
// --------------------------------------------------

// ErrAdminExists is returned by CreateFirst once any admin has been stored.
var ErrAdminExists = errors.New("admin user already exists")

type AdminUserGormRepository struct {
	db *gorm.DB
}

func NewAdminUserGormRepository(db *gorm.DB) *AdminUserGormRepository {
	return &AdminUserGormRepository{db: db}
}

func (r *AdminUserGormRepository) GetByID(ctx context.Context, id string) (*models.AdminUser, error) {
	var u models.AdminUser
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

func (r *AdminUserGormRepository) GetByUsername(
	ctx context.Context,
	username string,
) (*models.AdminUser, error) {

	var u models.AdminUser
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&u).Error; err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

func (r *AdminUserGormRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.AdminUser{}).Count(&n).Error
	return n, err
}

func (r *AdminUserGormRepository) Create(ctx context.Context, u *models.AdminUser) error {
	return r.db.WithContext(ctx).Create(u).Error
}

// CreateFirst inserts u only while the table is empty. Concurrent callers are
// serialised by a table lock on Postgres and by the single writer on SQLite.
func (r *AdminUserGormRepository) CreateFirst(ctx context.Context, u *models.AdminUser) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if tx.Dialector.Name() == "postgres" {
			if err := tx.Exec("LOCK TABLE admin_users IN SHARE ROW EXCLUSIVE MODE").Error; err != nil {
				return err
			}
		}

		var n int64
		if err := tx.Model(&models.AdminUser{}).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return ErrAdminExists
		}
		return tx.Create(u).Error
	})
}

func (r *AdminUserGormRepository) UpdatePassword(
	ctx context.Context,
	id string,
	passwordHash string,
) (*models.AdminUser, error) {

	res := r.db.WithContext(ctx).
		Model(&models.AdminUser{}).
		Where("id = ?", id).
		Update("password", passwordHash)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.GetByID(ctx, id)
}

// --------------------------------------------------
// Staff users
// --------------------------------------------------

type StaffUserGormRepository struct {
	db *gorm.DB
}

func NewStaffUserGormRepository(db *gorm.DB) *StaffUserGormRepository {
	return &StaffUserGormRepository{db: db}
}

func (r *StaffUserGormRepository) List(ctx context.Context) ([]models.StaffUser, error) {
	users := []models.StaffUser{}
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *StaffUserGormRepository) GetByUsername(
	ctx context.Context,
	username string,
) (*models.StaffUser, error) {

	var u models.StaffUser
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&u).Error; err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

func (r *StaffUserGormRepository) Create(ctx context.Context, u *models.StaffUser) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *StaffUserGormRepository) Delete(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.StaffUser{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
