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

type GalleryHandler struct {
	repo  *repository.GalleryGormRepository
	audit *audit.Dispatcher
}

func NewGalleryHandler(repo *repository.GalleryGormRepository, audit *audit.Dispatcher) *GalleryHandler {
	return &GalleryHandler{repo: repo, audit: audit}
}

// --------- Requests ---------

type CreateGalleryRequest struct {
	BeforeImageURL string `json:"beforeImageUrl"`
	AfterImageURL  string `json:"afterImageUrl"`
	VideoURL       string `json:"videoUrl"`
	Title          string `json:"title" binding:"required,notblank"`
	Description    string `json:"description" binding:"required,notblank"`
	IsActive       *bool  `json:"isActive"`
}

type UpdateGalleryRequest struct {
	BeforeImageURL *string `json:"beforeImageUrl"`
	AfterImageURL  *string `json:"afterImageUrl"`
	VideoURL       *string `json:"videoUrl"`
	Title          *string `json:"title" binding:"omitempty,notblank"`
	Description    *string `json:"description" binding:"omitempty,notblank"`
	IsActive       *bool   `json:"isActive"`
}

func checkGalleryMedia(g *models.Gallery) error {
	if !g.HasMedia() {
		return httperr.ErrBusinessf("media_required", "at least one of beforeImageUrl, afterImageUrl or videoUrl is required")
	}
	return nil
}

// --------- Handlers ---------

func (h *GalleryHandler) List(c *gin.Context) {
	var (
		items []models.Gallery
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

func (h *GalleryHandler) Get(c *gin.Context) {
	item, err := h.repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeReadError(c, err, "gallery_not_found", "Gallery item not found")
		return
	}

	httpresp.OK(c, item)
}

func (h *GalleryHandler) Create(c *gin.Context) {
	var req CreateGalleryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Invalid(c, err)
		return
	}

	item := models.Gallery{
		BeforeImageURL: trimmed(req.BeforeImageURL),
		AfterImageURL:  trimmed(req.AfterImageURL),
		VideoURL:       trimmed(req.VideoURL),
		Title:          trimmed(req.Title),
		Description:    trimmed(req.Description),
		IsActive:       boolOr(req.IsActive, true),
	}

	if err := checkGalleryMedia(&item); err != nil {
		writeWriteError(c, err, "", "", "")
		return
	}

	if err := h.repo.Create(c.Request.Context(), &item); err != nil {
		writeWriteError(c, err, "failed_to_create_gallery", "", "")
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorID:  middleware.AdminID(c),
		Action:   "gallery_created",
		Entity:   "gallery",
		EntityID: item.ID,
	})

	httpresp.Created(c, item)
}

func (h *GalleryHandler) Update(c *gin.Context) {
	var req UpdateGalleryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Invalid(c, err)
		return
	}

	item, err := h.repo.Update(c.Request.Context(), c.Param("id"), func(g *models.Gallery) error {
		if req.BeforeImageURL != nil {
			g.BeforeImageURL = trimmed(*req.BeforeImageURL)
		}
		if req.AfterImageURL != nil {
			g.AfterImageURL = trimmed(*req.AfterImageURL)
		}
		if req.VideoURL != nil {
			g.VideoURL = trimmed(*req.VideoURL)
		}
		if req.Title != nil {
			g.Title = trimmed(*req.Title)
		}
		if req.Description != nil {
			g.Description = trimmed(*req.Description)
		}
		if req.IsActive != nil {
			g.IsActive = *req.IsActive
		}
		return checkGalleryMedia(g)
	})
	if err != nil {
		writeWriteError(c, err, "failed_to_update_gallery", "gallery_not_found", "Gallery item not found")
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorID:  middleware.AdminID(c),
		Action:   "gallery_updated",
		Entity:   "gallery",
		EntityID: item.ID,
	})

	httpresp.OK(c, item)
}

func (h *GalleryHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	removed, err := h.repo.Delete(c.Request.Context(), id)
	if err != nil {
		writeReadError(c, err, "", "")
		return
	}
	if !removed {
		httperr.NotFound(c, "gallery_not_found", "Gallery item not found")
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorID:  middleware.AdminID(c),
		Action:   "gallery_deleted",
		Entity:   "gallery",
		EntityID: id,
	})

	httpresp.NoContent(c)
}
