package booking

import (
	"context"

	"github.com/BruksfildServices01/quickfixx-site/internal/audit"
	domain "github.com/BruksfildServices01/quickfixx-site/internal/domain/booking"
	"github.com/BruksfildServices01/quickfixx-site/internal/httperr"
)

type DeleteBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteBooking {
	return &DeleteBooking{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeleteBooking) Execute(
	ctx context.Context,
	actorID string,
	bookingID string,
) error {

	removed, err := uc.repo.Delete(ctx, bookingID)
	if err != nil {
		return err
	}
	if !removed {
		return httperr.ErrBusiness("booking_not_found")
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  actorID,
		Action:   "booking_deleted",
		Entity:   "booking",
		EntityID: bookingID,
	})

	return nil
}
