package booking

import (
	"context"
	"strings"

	domain "github.com/BruksfildServices01/quickfixx-site/internal/domain/booking"
	"github.com/BruksfildServices01/quickfixx-site/internal/httperr"
	"github.com/BruksfildServices01/quickfixx-site/internal/models"
)

type SearchBookingsByPhone struct {
	repo domain.Repository
}

func NewSearchBookingsByPhone(repo domain.Repository) *SearchBookingsByPhone {
	return &SearchBookingsByPhone{repo: repo}
}

// Execute returns every booking whose phone equals the given one exactly.
func (uc *SearchBookingsByPhone) Execute(
	ctx context.Context,
	phone string,
) ([]models.Booking, error) {

	phone = strings.TrimSpace(phone)
	if phone == "" {
		return nil, httperr.ErrBusiness("phone_required")
	}

	return uc.repo.ListByPhone(ctx, phone)
}
