package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/quickfixx-site/internal/audit"
	"github.com/BruksfildServices01/quickfixx-site/internal/dto"
	"github.com/BruksfildServices01/quickfixx-site/internal/httperr"
	"github.com/BruksfildServices01/quickfixx-site/internal/httpresp"
	"github.com/BruksfildServices01/quickfixx-site/internal/infra/repository"
	"github.com/BruksfildServices01/quickfixx-site/internal/middleware"
	"github.com/BruksfildServices01/quickfixx-site/internal/models"
)

// SiteHandler manages the single-row contact and branding settings.
type SiteHandler struct {
	contact      *repository.ContactInfoGormRepository
	branding     *repository.BrandingGormRepository
	defaultBrand string
	audit        *audit.Dispatcher
}

func NewSiteHandler(
	contact *repository.ContactInfoGormRepository,
	branding *repository.BrandingGormRepository,
	defaultBrand string,
	audit *audit.Dispatcher,
) *SiteHandler {
	return &SiteHandler{
		contact:      contact,
		branding:     branding,
		defaultBrand: defaultBrand,
		audit:        audit,
	}
}

// --------- Requests ---------

type UpdateContactRequest struct {
	Phone     *string `json:"phone" binding:"omitempty,notblank"`
	Whatsapp  *string `json:"whatsapp" binding:"omitempty,notblank"`
	Email     *string `json:"email" binding:"omitempty,email"`
	Facebook  *string `json:"facebook" binding:"omitempty,notblank"`
	Instagram *string `json:"instagram" binding:"omitempty,notblank"`
	Tiktok    *string `json:"tiktok"`
	Linkedin  *string `json:"linkedin"`
	Twitter   *string `json:"twitter"`
	Youtube   *string `json:"youtube"`
}

type UpdateBrandingRequest struct {
	BrandName *string `json:"brandName" binding:"omitempty,notblank"`
	LogoURL   *string `json:"logoUrl"`
}

// --------- Contact ---------

// GetContact answers null until the contact details are first saved.
func (h *SiteHandler) GetContact(c *gin.Context) {
	info, err := h.contact.Get(c.Request.Context())
	if errors.Is(err, repository.ErrNotFound) {
		httpresp.OK(c, nil)
		return
	}
	if err != nil {
		writeReadError(c, err, "", "")
		return
	}

	httpresp.OK(c, info)
}

// UpdateContact merges the body into the stored row (or an empty one) and
// upserts it. The merged row must carry every required field.
func (h *SiteHandler) UpdateContact(c *gin.Context) {
	var req UpdateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Invalid(c, err)
		return
	}

	info, err := h.contact.Get(c.Request.Context())
	if errors.Is(err, repository.ErrNotFound) {
		info, err = &models.ContactInfo{}, nil
	}
	if err != nil {
		writeReadError(c, err, "", "")
		return
	}

	mergeString(&info.Phone, req.Phone)
	mergeString(&info.Whatsapp, req.Whatsapp)
	mergeString(&info.Email, req.Email)
	mergeString(&info.Facebook, req.Facebook)
	mergeString(&info.Instagram, req.Instagram)
	mergeString(&info.Tiktok, req.Tiktok)
	mergeString(&info.Linkedin, req.Linkedin)
	mergeString(&info.Twitter, req.Twitter)
	mergeString(&info.Youtube, req.Youtube)

	if info.Phone == "" || info.Whatsapp == "" || info.Email == "" ||
		info.Facebook == "" || info.Instagram == "" {
		httperr.BadRequest(c, "contact_incomplete", "phone, whatsapp, email, facebook and instagram are required")
		return
	}

	saved, err := h.contact.Upsert(c.Request.Context(), info)
	if err != nil {
		writeWriteError(c, err, "failed_to_update_contact", "", "")
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorID:  middleware.AdminID(c),
		Action:   "contact_updated",
		Entity:   "contact_info",
		EntityID: saved.ID,
	})

	httpresp.OK(c, saved)
}

// --------- Branding ---------

// GetBranding falls back to the configured brand name and no logo.
func (h *SiteHandler) GetBranding(c *gin.Context) {
	b, err := h.branding.Get(c.Request.Context())
	if errors.Is(err, repository.ErrNotFound) {
		httpresp.OK(c, dto.DefaultBrandingDTO{BrandName: h.defaultBrand})
		return
	}
	if err != nil {
		writeReadError(c, err, "", "")
		return
	}

	httpresp.OK(c, b)
}

func (h *SiteHandler) UpdateBranding(c *gin.Context) {
	var req UpdateBrandingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Invalid(c, err)
		return
	}

	b, err := h.currentBranding(c)
	if err != nil {
		writeReadError(c, err, "", "")
		return
	}

	mergeString(&b.BrandName, req.BrandName)
	mergeString(&b.LogoURL, req.LogoURL)

	saved, err := h.branding.Upsert(c.Request.Context(), b)
	if err != nil {
		writeWriteError(c, err, "failed_to_update_branding", "", "")
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorID:  middleware.AdminID(c),
		Action:   "branding_updated",
		Entity:   "branding",
		EntityID: saved.ID,
		Metadata: map[string]any{"brandName": saved.BrandName},
	})

	httpresp.OK(c, saved)
}

func (h *SiteHandler) currentBranding(c *gin.Context) (*models.Branding, error) {
	b, err := h.branding.Get(c.Request.Context())
	if errors.Is(err, repository.ErrNotFound) {
		return &models.Branding{
			ID:        models.SingletonID,
			BrandName: h.defaultBrand,
		}, nil
	}
	return b, err
}

func mergeString(dst *string, v *string) {
	if v != nil {
		*dst = trimmed(*v)
	}
}
