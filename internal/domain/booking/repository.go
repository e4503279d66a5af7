package booking

import (
	"context"

	"github.com/BruksfildServices01/quickfixx-site/internal/models"
)

type Repository interface {
	List(ctx context.Context) ([]models.Booking, error)

	GetByID(
		ctx context.Context,
		id string,
	) (*models.Booking, error)

	ListByPhone(
		ctx context.Context,
		phone string,
	) ([]models.Booking, error)

	Create(
		ctx context.Context,
		b *models.Booking,
	) error

	UpdateStatus(
		ctx context.Context,
		id string,
		status string,
	) (*models.Booking, error)

	Delete(
		ctx context.Context,
		id string,
	) (bool, error)
}
