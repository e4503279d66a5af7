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

type StaffHandler struct {
	repo  *repository.StaffGormRepository
	audit *audit.Dispatcher
}

func NewStaffHandler(repo *repository.StaffGormRepository, audit *audit.Dispatcher) *StaffHandler {
	return &StaffHandler{repo: repo, audit: audit}
}

// --------- Requests ---------

type CreateStaffRequest struct {
	EmployeeID string   `json:"employeeId" binding:"required,notblank"`
	Name       string   `json:"name" binding:"required,notblank"`
	Role       string   `json:"role" binding:"required,notblank"`
	Bio        string   `json:"bio" binding:"required,notblank"`
	ImageURL   string   `json:"imageUrl" binding:"required,notblank"`
	Expertise  []string `json:"expertise" binding:"required,items_notblank"`
	IsActive   *bool    `json:"isActive"`
}

type UpdateStaffRequest struct {
	EmployeeID *string   `json:"employeeId" binding:"omitempty,notblank"`
	Name       *string   `json:"name" binding:"omitempty,notblank"`
	Role       *string   `json:"role" binding:"omitempty,notblank"`
	Bio        *string   `json:"bio" binding:"omitempty,notblank"`
	ImageURL   *string   `json:"imageUrl" binding:"omitempty,notblank"`
	Expertise  *[]string `json:"expertise" binding:"omitempty,items_notblank"`
	IsActive   *bool     `json:"isActive"`
}

// --------- Handlers ---------

func (h *StaffHandler) List(c *gin.Context) {
	var (
		members []models.Staff
		err     error
	)
	if activeOnly(c) {
		members, err = h.repo.ListActive(c.Request.Context())
	} else {
		members, err = h.repo.List(c.Request.Context())
	}
	if err != nil {
		writeReadError(c, err, "", "")
		return
	}

	httpresp.List(c, members)
}

func (h *StaffHandler) Get(c *gin.Context) {
	member, err := h.repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeReadError(c, err, "staff_not_found", "Staff member not found")
		return
	}

	httpresp.OK(c, member)
}

// GetByEmployeeID backs the public badge verification page.
func (h *StaffHandler) GetByEmployeeID(c *gin.Context) {
	member, err := h.repo.GetByEmployeeID(c.Request.Context(), c.Param("employeeId"))
	if err != nil {
		writeReadError(c, err, "staff_not_found", "Staff member not found")
		return
	}

	httpresp.OK(c, member)
}

func (h *StaffHandler) Create(c *gin.Context) {
	var req CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Invalid(c, err)
		return
	}

	member := models.Staff{
		EmployeeID: trimmed(req.EmployeeID),
		Name:       trimmed(req.Name),
		Role:       trimmed(req.Role),
		Bio:        trimmed(req.Bio),
		ImageURL:   trimmed(req.ImageURL),
		Expertise:  trimList(req.Expertise),
		IsActive:   boolOr(req.IsActive, true),
	}

	if err := h.repo.Create(c.Request.Context(), &member); err != nil {
		writeWriteError(c, err, "failed_to_create_staff", "", "")
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorID:  middleware.AdminID(c),
		Action:   "staff_created",
		Entity:   "staff",
		EntityID: member.ID,
		Metadata: map[string]any{"employeeId": member.EmployeeID},
	})

	httpresp.Created(c, member)
}

func (h *StaffHandler) Update(c *gin.Context) {
	var req UpdateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Invalid(c, err)
		return
	}

	member, err := h.repo.Update(c.Request.Context(), c.Param("id"), func(s *models.Staff) error {
		if req.EmployeeID != nil {
			s.EmployeeID = trimmed(*req.EmployeeID)
		}
		if req.Name != nil {
			s.Name = trimmed(*req.Name)
		}
		if req.Role != nil {
			s.Role = trimmed(*req.Role)
		}
		if req.Bio != nil {
			s.Bio = trimmed(*req.Bio)
		}
		if req.ImageURL != nil {
			s.ImageURL = trimmed(*req.ImageURL)
		}
		if req.Expertise != nil {
			s.Expertise = trimList(*req.Expertise)
		}
		if req.IsActive != nil {
			s.IsActive = *req.IsActive
		}
		return nil
	})
	if err != nil {
		writeWriteError(c, err, "failed_to_update_staff", "staff_not_found", "Staff member not found")
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorID:  middleware.AdminID(c),
		Action:   "staff_updated",
		Entity:   "staff",
		EntityID: member.ID,
	})

	httpresp.OK(c, member)
}

func (h *StaffHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	removed, err := h.repo.Delete(c.Request.Context(), id)
	if err != nil {
		writeReadError(c, err, "", "")
		return
	}
	if !removed {
		httperr.NotFound(c, "staff_not_found", "Staff member not found")
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorID:  middleware.AdminID(c),
		Action:   "staff_deleted",
		Entity:   "staff",
		EntityID: id,
	})

	httpresp.NoContent(c)
}
