package booking

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/quickfixx-site/internal/audit"
	domain "github.com/BruksfildServices01/quickfixx-site/internal/domain/booking"
	"github.com/BruksfildServices01/quickfixx-site/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	CustomerName    string
	CustomerPhone   string
	CustomerEmail   *string
	CustomerAddress string

	Latitude  *string
	Longitude *string

	ServiceType   string
	PreferredDate string
	PreferredTime string
	Details       *string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		audit: audit,
	}
}

// Execute stores a public booking request. The status is always the initial
// one regardless of what the caller sent.
func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	b := &models.Booking{
		CustomerName:    strings.TrimSpace(in.CustomerName),
		CustomerPhone:   strings.TrimSpace(in.CustomerPhone),
		CustomerEmail:   trimOptional(in.CustomerEmail),
		CustomerAddress: strings.TrimSpace(in.CustomerAddress),
		Latitude:        trimOptional(in.Latitude),
		Longitude:       trimOptional(in.Longitude),
		ServiceType:     strings.TrimSpace(in.ServiceType),
		PreferredDate:   strings.TrimSpace(in.PreferredDate),
		PreferredTime:   strings.TrimSpace(in.PreferredTime),
		Details:         trimOptional(in.Details),
		Status:          string(domain.InitialStatus()),
	}

	if err := uc.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: b.ID,
		Metadata: map[string]any{"serviceType": b.ServiceType},
	})

	return b, nil
}

// empty optional strings are stored as NULL
func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
