package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/quickfixx-site/internal/audit"
	"github.com/BruksfildServices01/quickfixx-site/internal/httperr"
	"github.com/BruksfildServices01/quickfixx-site/internal/httpresp"
	"github.com/BruksfildServices01/quickfixx-site/internal/infra/repository"
	"github.com/BruksfildServices01/quickfixx-site/internal/middleware"
	"github.com/BruksfildServices01/quickfixx-site/internal/models"
)

// StaffAccountHandler manages staff login records. They never gate routes.
type StaffAccountHandler struct {
	repo  *repository.StaffUserGormRepository
	audit *audit.Dispatcher
}

func NewStaffAccountHandler(repo *repository.StaffUserGormRepository, audit *audit.Dispatcher) *StaffAccountHandler {
	return &StaffAccountHandler{repo: repo, audit: audit}
}

type CreateStaffAccountRequest struct {
	Username string `json:"username" binding:"required,notblank,min=3"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"required,notblank"`
	Role     string `json:"role" binding:"required,notblank"`
}

// ======================================================
// LIST
// ======================================================
func (h *StaffAccountHandler) List(c *gin.Context) {
	users, err := h.repo.List(c.Request.Context())
	if err != nil {
		writeReadError(c, err, "", "")
		return
	}

	httpresp.List(c, users)
}

// ======================================================
// CREATE
// ======================================================
func (h *StaffAccountHandler) Create(c *gin.Context) {
	var req CreateStaffAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Invalid(c, err)
		return
	}

	username := strings.TrimSpace(req.Username)

	if _, err := h.repo.GetByUsername(c.Request.Context(), username); err == nil {
		httperr.BadRequest(c, "username_taken", "Username already exists")
		return
	} else if !errors.Is(err, repository.ErrNotFound) {
		writeReadError(c, err, "", "")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Failed to hash password")
		return
	}

	user := models.StaffUser{
		Username:     username,
		PasswordHash: string(hashed),
		Name:         trimmed(req.Name),
		Role:         trimmed(req.Role),
	}
	if err := h.repo.Create(c.Request.Context(), &user); err != nil {
		writeWriteError(c, err, "failed_to_create_staff_account", "", "")
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorID:  middleware.AdminID(c),
		Action:   "staff_account_created",
		Entity:   "staff_user",
		EntityID: user.ID,
		Metadata: map[string]any{"username": user.Username},
	})

	httpresp.Created(c, user)
}

// ======================================================
// DELETE
// ======================================================
func (h *StaffAccountHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	removed, err := h.repo.Delete(c.Request.Context(), id)
	if err != nil {
		writeReadError(c, err, "", "")
		return
	}
	if !removed {
		httperr.NotFound(c, "staff_account_not_found", "Staff account not found")
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorID:  middleware.AdminID(c),
		Action:   "staff_account_deleted",
		Entity:   "staff_user",
		EntityID: id,
	})

	httpresp.NoContent(c)
}
