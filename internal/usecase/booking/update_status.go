package booking

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/quickfixx-site/internal/audit"
	domain "github.com/BruksfildServices01/quickfixx-site/internal/domain/booking"
	"github.com/BruksfildServices01/quickfixx-site/internal/httperr"
	"github.com/BruksfildServices01/quickfixx-site/internal/infra/repository"
	"github.com/BruksfildServices01/quickfixx-site/internal/models"
)

type UpdateBookingStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateBookingStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateBookingStatus {
	return &UpdateBookingStatus{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateBookingStatus) Execute(
	ctx context.Context,
	actorID string,
	bookingID string,
	rawStatus string,
) (*models.Booking, error) {

	status, err := domain.ParseStatus(rawStatus)
	if err != nil {
		return nil, err
	}

	b, err := uc.repo.UpdateStatus(ctx, bookingID, string(status))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, httperr.ErrBusiness("booking_not_found")
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  actorID,
		Action:   "booking_status_updated",
		Entity:   "booking",
		EntityID: b.ID,
		Metadata: map[string]any{"status": b.Status, "custom": !status.Known()},
	})

	return b, nil
}
