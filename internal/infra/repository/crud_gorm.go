package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound is returned when an id (or lookup key) does not resolve to a row.
var ErrNotFound = errors.New("record not found")

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// crudRepository implements the list/get/create/update/delete contract shared by
// every entity table keyed by a string id.
type crudRepository[T any] struct {
	db *gorm.DB
}

func (r crudRepository[T]) List(ctx context.Context) ([]T, error) {
	out := []T{}
	if err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// ListActive returns only rows with is_active = true.
func (r crudRepository[T]) ListActive(ctx context.Context) ([]T, error) {
	out := []T{}
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r crudRepository[T]) GetByID(ctx context.Context, id string) (*T, error) {
	var out T
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&out).Error; err != nil {
		return nil, notFound(err)
	}
	return &out, nil
}

func (r crudRepository[T]) Create(ctx context.Context, row *T) error {
	return r.db.WithContext(ctx).Create(row).Error
}

// Update loads the row, lets apply mutate it and writes every column back.
// An error from apply aborts the update without touching storage. A row
// deleted in the meantime yields ErrNotFound; it is never re-inserted.
func (r crudRepository[T]) Update(
	ctx context.Context,
	id string,
	apply func(*T) error,
) (*T, error) {

	row, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := apply(row); err != nil {
		return nil, err
	}

	res := r.db.WithContext(ctx).
		Model(row).
		Where("id = ?", id).
		Select("*").
		Updates(row)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return row, nil
}

// Delete reports whether a row was removed.
func (r crudRepository[T]) Delete(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(new(T))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
