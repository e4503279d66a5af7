package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/quickfixx-site/internal/audit"
	domain "github.com/BruksfildServices01/quickfixx-site/internal/domain/booking"
	"github.com/BruksfildServices01/quickfixx-site/internal/httperr"
	"github.com/BruksfildServices01/quickfixx-site/internal/httpresp"
	"github.com/BruksfildServices01/quickfixx-site/internal/infra/repository"
	"github.com/BruksfildServices01/quickfixx-site/internal/middleware"
	"github.com/BruksfildServices01/quickfixx-site/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	repo *repository.BookingGormRepository

	create       *booking.CreateBooking
	updateStatus *booking.UpdateBookingStatus
	searchPhone  *booking.SearchBookingsByPhone
	remove       *booking.DeleteBooking
}

func NewBookingHandler(repo *repository.BookingGormRepository, audit *audit.Dispatcher) *BookingHandler {
	return &BookingHandler{
		repo:         repo,
		create:       booking.NewCreateBooking(repo, audit),
		updateStatus: booking.NewUpdateBookingStatus(repo, audit),
		searchPhone:  booking.NewSearchBookingsByPhone(repo),
		remove:       booking.NewDeleteBooking(repo, audit),
	}
}

// ======================================================
// REQUESTS
// ======================================================

// CreateBookingRequest has no status field; new bookings always start pending.
type CreateBookingRequest struct {
	CustomerName    string  `json:"customerName" binding:"required,notblank"`
	CustomerPhone   string  `json:"customerPhone" binding:"required,notblank"`
	CustomerEmail   *string `json:"customerEmail"`
	CustomerAddress string  `json:"customerAddress" binding:"required,notblank"`
	Latitude        *string `json:"latitude"`
	Longitude       *string `json:"longitude"`
	ServiceType     string  `json:"serviceType" binding:"required,notblank"`
	PreferredDate   string  `json:"preferredDate" binding:"required,notblank"`
	PreferredTime   string  `json:"preferredTime" binding:"required,notblank"`
	Details         *string `json:"details"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// PUBLIC
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Invalid(c, err)
		return
	}

	b, err := h.create.Execute(c.Request.Context(), booking.CreateBookingInput{
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		CustomerEmail:   req.CustomerEmail,
		CustomerAddress: req.CustomerAddress,
		Latitude:        req.Latitude,
		Longitude:       req.Longitude,
		ServiceType:     req.ServiceType,
		PreferredDate:   req.PreferredDate,
		PreferredTime:   req.PreferredTime,
		Details:         req.Details,
	})
	if err != nil {
		writeWriteError(c, err, "failed_to_create_booking", "", "")
		return
	}

	httpresp.Created(c, b)
}

// SearchByPhone lets customers look up their own requests by exact phone.
func (h *BookingHandler) SearchByPhone(c *gin.Context) {
	bookings, err := h.searchPhone.Execute(c.Request.Context(), c.Param("phone"))
	if err != nil {
		if be, ok := httperr.AsBusiness(err); ok {
			httperr.BadRequest(c, be.Code, "Phone is required")
			return
		}
		writeReadError(c, err, "", "")
		return
	}

	httpresp.List(c, bookings)
}

// ======================================================
// ADMIN
// ======================================================

func (h *BookingHandler) List(c *gin.Context) {
	bookings, err := h.repo.List(c.Request.Context())
	if err != nil {
		writeReadError(c, err, "", "")
		return
	}

	httpresp.List(c, bookings)
}

// Statuses lists the values the back-office offers. Other non-empty values
// are still accepted by UpdateStatus.
func (h *BookingHandler) Statuses(c *gin.Context) {
	httpresp.List(c, domain.KnownStatuses())
}

func (h *BookingHandler) Get(c *gin.Context) {
	b, err := h.repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeReadError(c, err, "booking_not_found", "Booking not found")
		return
	}

	httpresp.OK(c, b)
}

func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	var req UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Invalid(c, err)
		return
	}

	b, err := h.updateStatus.Execute(
		c.Request.Context(),
		middleware.AdminID(c),
		c.Param("id"),
		req.Status,
	)
	if err != nil {
		h.writeBookingError(c, err)
		return
	}

	httpresp.OK(c, b)
}

func (h *BookingHandler) Delete(c *gin.Context) {
	err := h.remove.Execute(c.Request.Context(), middleware.AdminID(c), c.Param("id"))
	if err != nil {
		h.writeBookingError(c, err)
		return
	}

	httpresp.NoContent(c)
}

func (h *BookingHandler) writeBookingError(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "booking_not_found"), errors.Is(err, repository.ErrNotFound):
		httperr.NotFound(c, "booking_not_found", "Booking not found")
	case httperr.IsBusiness(err, "status_required"):
		httperr.BadRequest(c, "status_required", "Status is required")
	default:
		_ = c.Error(err)
		httperr.Write(c, http.StatusInternalServerError, "internal_error", err.Error())
	}
}
