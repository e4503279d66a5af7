package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/quickfixx-site/internal/audit"
	"github.com/BruksfildServices01/quickfixx-site/internal/config"
	"github.com/BruksfildServices01/quickfixx-site/internal/dto"
	"github.com/BruksfildServices01/quickfixx-site/internal/httperr"
	"github.com/BruksfildServices01/quickfixx-site/internal/httpresp"
	"github.com/BruksfildServices01/quickfixx-site/internal/infra/repository"
	"github.com/BruksfildServices01/quickfixx-site/internal/middleware"
	"github.com/BruksfildServices01/quickfixx-site/internal/models"
	"github.com/BruksfildServices01/quickfixx-site/internal/session"
)

type AuthHandler struct {
	admins   *repository.AdminUserGormRepository
	sessions *session.Manager
	config   *config.Config
	audit    *audit.Dispatcher
}

func NewAuthHandler(
	admins *repository.AdminUserGormRepository,
	sessions *session.Manager,
	cfg *config.Config,
	audit *audit.Dispatcher,
) *AuthHandler {
	return &AuthHandler{
		admins:   admins,
		sessions: sessions,
		config:   cfg,
		audit:    audit,
	}
}

// --------- Requests ---------

type RegisterRequest struct {
	Username string `json:"username" binding:"required,notblank"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" binding:"required,eqfield=NewPassword"`
}

// --------- Handlers ---------

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Invalid(c, err)
		return
	}

	user, err := h.admins.GetByUsername(c.Request.Context(), strings.TrimSpace(req.Username))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			httperr.Unauthorized(c, "invalid_credentials", "Invalid username or password")
			return
		}
		writeReadError(c, err, "", "")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Invalid username or password")
		return
	}

	token, err := h.sessions.Issue(c.Request.Context(), user.ID)
	if err != nil {
		_ = c.Error(err)
		httperr.Internal(c, "failed_to_create_session", "Failed to create session")
		return
	}

	h.setSessionCookie(c, token, int(h.sessions.TTL().Seconds()))

	h.audit.Dispatch(audit.Event{
		ActorID:  user.ID,
		Action:   "admin_login",
		Entity:   "admin_user",
		EntityID: user.ID,
	})

	httpresp.OK(c, dto.AuthUserDTO{
		User:  dto.NewAdminDTO(user),
		Token: token,
	})
}

// Logout revokes the session when a store is configured and always clears
// the cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	if token := middleware.SessionToken(c, h.config.SessionCookie); token != "" {
		if err := h.sessions.Revoke(c.Request.Context(), token); err != nil {
			_ = c.Error(err)
		}
	}

	h.setSessionCookie(c, "", -1)

	httpresp.OK(c, dto.MessageDTO{Message: "Logged out"})
}

func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.admins.GetByID(c.Request.Context(), middleware.AdminID(c))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			httperr.Unauthorized(c, "unauthorized", "Unauthorized")
			return
		}
		writeReadError(c, err, "", "")
		return
	}

	httpresp.OK(c, dto.AuthUserDTO{User: dto.NewAdminDTO(user)})
}

// Register creates an admin account. Anyone may create the first one; after
// that only a signed-in admin can.
func (h *AuthHandler) Register(c *gin.Context) {
	actorID := middleware.AdminID(c)
	if actorID == "" {
		count, err := h.admins.Count(c.Request.Context())
		if err != nil {
			writeReadError(c, err, "", "")
			return
		}
		if count > 0 {
			httperr.Unauthorized(c, "unauthorized", "Unauthorized")
			return
		}
	}

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Invalid(c, err)
		return
	}

	username := strings.TrimSpace(req.Username)

	if _, err := h.admins.GetByUsername(c.Request.Context(), username); err == nil {
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

	user := models.AdminUser{
		Username:     username,
		PasswordHash: string(hashed),
	}

	// Anonymous callers may only bootstrap the first admin.
	if actorID == "" {
		err = h.admins.CreateFirst(c.Request.Context(), &user)
	} else {
		err = h.admins.Create(c.Request.Context(), &user)
	}
	if errors.Is(err, repository.ErrAdminExists) {
		httperr.Unauthorized(c, "unauthorized", "Unauthorized")
		return
	}
	if err != nil {
		writeWriteError(c, err, "failed_to_create_user", "", "")
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorID:  actorID,
		Action:   "admin_registered",
		Entity:   "admin_user",
		EntityID: user.ID,
		Metadata: map[string]any{"username": user.Username},
	})

	httpresp.Created(c, dto.MessageDTO{Message: "Admin user created"})
}

func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Invalid(c, err)
		return
	}

	adminID := middleware.AdminID(c)

	user, err := h.admins.GetByID(c.Request.Context(), adminID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			httperr.Unauthorized(c, "unauthorized", "Unauthorized")
			return
		}
		writeReadError(c, err, "", "")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		httperr.Unauthorized(c, "invalid_current_password", "Current password is incorrect")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Failed to hash password")
		return
	}

	if _, err := h.admins.UpdatePassword(c.Request.Context(), adminID, string(hashed)); err != nil {
		writeWriteError(c, err, "failed_to_update_password", "", "")
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorID:  adminID,
		Action:   "password_changed",
		Entity:   "admin_user",
		EntityID: adminID,
	})

	httpresp.OK(c, dto.MessageDTO{Message: "Password updated"})
}

// --------- Cookie ---------

func (h *AuthHandler) setSessionCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.config.SessionCookie, value, maxAge, "/", "", h.config.CookieSecure, true)
}
