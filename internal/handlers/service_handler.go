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

type ServiceHandler struct {
	repo  *repository.ServiceGormRepository
	audit *audit.Dispatcher
}

func NewServiceHandler(repo *repository.ServiceGormRepository, audit *audit.Dispatcher) *ServiceHandler {
	return &ServiceHandler{repo: repo, audit: audit}
}

// --------- Requests ---------

type CreateServiceRequest struct {
	Title       string   `json:"title" binding:"required,notblank"`
	Description string   `json:"description" binding:"required,notblank"`
	Price       *int     `json:"price" binding:"required,min=0"`
	ImageURL    string   `json:"imageUrl" binding:"required,notblank"`
	ImageURLs   []string `json:"imageUrls" binding:"items_notblank"`
	Category    string   `json:"category" binding:"required,notblank"`
	IsActive    *bool    `json:"isActive"`
}

type UpdateServiceRequest struct {
	Title       *string   `json:"title" binding:"omitempty,notblank"`
	Description *string   `json:"description" binding:"omitempty,notblank"`
	Price       *int      `json:"price" binding:"omitempty,min=0"`
	ImageURL    *string   `json:"imageUrl" binding:"omitempty,notblank"`
	ImageURLs   *[]string `json:"imageUrls" binding:"omitempty,items_notblank"`
	Category    *string   `json:"category" binding:"omitempty,notblank"`
	IsActive    *bool     `json:"isActive"`
}

// --------- Handlers ---------

func (h *ServiceHandler) List(c *gin.Context) {
	var (
		services []models.Service
		err      error
	)
	if activeOnly(c) {
		services, err = h.repo.ListActive(c.Request.Context())
	} else {
		services, err = h.repo.List(c.Request.Context())
	}
	if err != nil {
		writeReadError(c, err, "", "")
		return
	}

	httpresp.List(c, services)
}

func (h *ServiceHandler) Get(c *gin.Context) {
	svc, err := h.repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeReadError(c, err, "service_not_found", "Service not found")
		return
	}

	httpresp.OK(c, svc)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Invalid(c, err)
		return
	}

	svc := models.Service{
		Title:       trimmed(req.Title),
		Description: trimmed(req.Description),
		Price:       *req.Price,
		ImageURL:    trimmed(req.ImageURL),
		ImageURLs:   trimList(req.ImageURLs),
		Category:    trimmed(req.Category),
		IsActive:    boolOr(req.IsActive, true),
	}

	if err := h.repo.Create(c.Request.Context(), &svc); err != nil {
		writeWriteError(c, err, "failed_to_create_service", "", "")
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorID:  middleware.AdminID(c),
		Action:   "service_created",
		Entity:   "service",
		EntityID: svc.ID,
	})

	httpresp.Created(c, svc)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Invalid(c, err)
		return
	}

	svc, err := h.repo.Update(c.Request.Context(), c.Param("id"), func(s *models.Service) error {
		if req.Title != nil {
			s.Title = trimmed(*req.Title)
		}
		if req.Description != nil {
			s.Description = trimmed(*req.Description)
		}
		if req.Price != nil {
			s.Price = *req.Price
		}
		if req.ImageURL != nil {
			s.ImageURL = trimmed(*req.ImageURL)
		}
		if req.ImageURLs != nil {
			s.ImageURLs = trimList(*req.ImageURLs)
		}
		if req.Category != nil {
			s.Category = trimmed(*req.Category)
		}
		if req.IsActive != nil {
			s.IsActive = *req.IsActive
		}
		return nil
	})
	if err != nil {
		writeWriteError(c, err, "failed_to_update_service", "service_not_found", "Service not found")
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorID:  middleware.AdminID(c),
		Action:   "service_updated",
		Entity:   "service",
		EntityID: svc.ID,
	})

	httpresp.OK(c, svc)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	removed, err := h.repo.Delete(c.Request.Context(), id)
	if err != nil {
		writeReadError(c, err, "", "")
		return
	}
	if !removed {
		httperr.NotFound(c, "service_not_found", "Service not found")
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorID:  middleware.AdminID(c),
		Action:   "service_deleted",
		Entity:   "service",
		EntityID: id,
	})

	httpresp.NoContent(c)
}
