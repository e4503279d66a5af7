package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/quickfixx-site/internal/audit"
	"github.com/BruksfildServices01/quickfixx-site/internal/httperr"
	"github.com/BruksfildServices01/quickfixx-site/internal/httpresp"
	"github.com/BruksfildServices01/quickfixx-site/internal/infra/repository"
	"github.com/BruksfildServices01/quickfixx-site/internal/middleware"
	"github.com/BruksfildServices01/quickfixx-site/internal/models"
)

type TestimonialHandler struct {
	repo  *repository.TestimonialGormRepository
	audit *audit.Dispatcher
}

func NewTestimonialHandler(repo *repository.TestimonialGormRepository, audit *audit.Dispatcher) *TestimonialHandler {
	return &TestimonialHandler{repo: repo, audit: audit}
}

// --------- Requests ---------

type CreateTestimonialRequest struct {
	CustomerName string `json:"customerName" binding:"required,notblank"`
	Rating       *int   `json:"rating" binding:"required,min=1,max=5"`
	Comment      string `json:"comment" binding:"required,notblank"`
	ServiceType  string `json:"serviceType" binding:"required,notblank"`
	IsActive     *bool  `json:"isActive"`
}

type UpdateTestimonialRequest struct {
	CustomerName *string `json:"customerName" binding:"omitempty,notblank"`
	Rating       *int    `json:"rating" binding:"omitempty,min=1,max=5"`
	Comment      *string `json:"comment" binding:"omitempty,notblank"`
	ServiceType  *string `json:"serviceType" binding:"omitempty,notblank"`
	IsActive     *bool   `json:"isActive"`
}

// --------- Handlers ---------

func (h *TestimonialHandler) List(c *gin.Context) {
	var (
		items []models.Testimonial
		err   error
	)
	if activeOnly(c) {
		items, err = h.repo.ListActive(c.Request.Context())
	} else {
		items, err = h.repo.List(c.Request.Context())
	}
	if err != nil {
		writeReadError(c, err, "", "")
		return
	}

	httpresp.List(c, items)
}

func (h *TestimonialHandler) Get(c *gin.Context) {
	item, err := h.repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeReadError(c, err, "testimonial_not_found", "Testimonial not found")
		return
	}

	httpresp.OK(c, item)
}

func (h *TestimonialHandler) Create(c *gin.Context) {
	var req CreateTestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Invalid(c, err)
		return
	}

	item := models.Testimonial{
		CustomerName: trimmed(req.CustomerName),
		Rating:       *req.Rating,
		Comment:      trimmed(req.Comment),
		ServiceType:  trimmed(req.ServiceType),
		IsActive:     boolOr(req.IsActive, true),
	}

	if err := h.repo.Create(c.Request.Context(), &item); err != nil {
		writeWriteError(c, err, "failed_to_create_testimonial", "", "")
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorID:  middleware.AdminID(c),
		Action:   "testimonial_created",
		Entity:   "testimonial",
		EntityID: item.ID,
	})

	httpresp.Created(c, item)
}

func (h *TestimonialHandler) Update(c *gin.Context) {
	var req UpdateTestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Invalid(c, err)
		return
	}

	item, err := h.repo.Update(c.Request.Context(), c.Param("id"), func(t *models.Testimonial) error {
		if req.CustomerName != nil {
			t.CustomerName = trimmed(*req.CustomerName)
		}
		if req.Rating != nil {
			t.Rating = *req.Rating
		}
		if req.Comment != nil {
			t.Comment = trimmed(*req.Comment)
		}
		if req.ServiceType != nil {
			t.ServiceType = trimmed(*req.ServiceType)
		}
		if req.IsActive != nil {
			t.IsActive = *req.IsActive
		}
		return nil
	})
	if err != nil {
		writeWriteError(c, err, "failed_to_update_testimonial", "testimonial_not_found", "Testimonial not found")
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorID:  middleware.AdminID(c),
		Action:   "testimonial_updated",
		Entity:   "testimonial",
		EntityID: item.ID,
	})

	httpresp.OK(c, item)
}

func (h *TestimonialHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	removed, err := h.repo.Delete(c.Request.Context(), id)
	if err != nil {
		writeReadError(c, err, "", "")
		return
	}
	if !removed {
		httperr.NotFound(c, "testimonial_not_found", "Testimonial not found")
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorID:  middleware.AdminID(c),
		Action:   "testimonial_deleted",
		Entity:   "testimonial",
		EntityID: id,
	})

	httpresp.NoContent(c)
}
