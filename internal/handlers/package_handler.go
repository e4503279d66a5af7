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

type PackageHandler struct {
	repo  *repository.PackageGormRepository
	audit *audit.Dispatcher
}

func NewPackageHandler(repo *repository.PackageGormRepository, audit *audit.Dispatcher) *PackageHandler {
	return &PackageHandler{repo: repo, audit: audit}
}

// --------- Requests ---------

type CreatePackageRequest struct {
	Name            string   `json:"name" binding:"required,notblank"`
	Description     string   `json:"description" binding:"required,notblank"`
	OriginalPrice   *int     `json:"originalPrice" binding:"required,min=0"`
	DiscountedPrice *int     `json:"discountedPrice" binding:"required,min=0"`
	Features        []string `json:"features" binding:"required,items_notblank"`
	IsPopular       *bool    `json:"isPopular"`
	IsActive        *bool    `json:"isActive"`
}

type UpdatePackageRequest struct {
	Name            *string   `json:"name" binding:"omitempty,notblank"`
	Description     *string   `json:"description" binding:"omitempty,notblank"`
	OriginalPrice   *int      `json:"originalPrice" binding:"omitempty,min=0"`
	DiscountedPrice *int      `json:"discountedPrice" binding:"omitempty,min=0"`
	Features        *[]string `json:"features" binding:"omitempty,items_notblank"`
	IsPopular       *bool     `json:"isPopular"`
	IsActive        *bool     `json:"isActive"`
}

// checkPackagePrices enforces discountedPrice <= originalPrice.
func checkPackagePrices(p *models.Package) error {
	if p.DiscountedPrice > p.OriginalPrice {
		return httperr.ErrBusinessf("invalid_price", "discountedPrice must not exceed originalPrice")
	}
	return nil
}

// --------- Handlers ---------

func (h *PackageHandler) List(c *gin.Context) {
	var (
		packages []models.Package
		err      error
	)
	if activeOnly(c) {
		packages, err = h.repo.ListActive(c.Request.Context())
	} else {
		packages, err = h.repo.List(c.Request.Context())
	}
	if err != nil {
		writeReadError(c, err, "", "")
		return
	}

	httpresp.List(c, packages)
}

func (h *PackageHandler) Get(c *gin.Context) {
	pkg, err := h.repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeReadError(c, err, "package_not_found", "Package not found")
		return
	}

	httpresp.OK(c, pkg)
}

func (h *PackageHandler) Create(c *gin.Context) {
	var req CreatePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Invalid(c, err)
		return
	}

	pkg := models.Package{
		Name:            trimmed(req.Name),
		Description:     trimmed(req.Description),
		OriginalPrice:   *req.OriginalPrice,
		DiscountedPrice: *req.DiscountedPrice,
		Features:        trimList(req.Features),
		IsPopular:       boolOr(req.IsPopular, false),
		IsActive:        boolOr(req.IsActive, true),
	}

	if err := checkPackagePrices(&pkg); err != nil {
		writeWriteError(c, err, "", "", "")
		return
	}

	if err := h.repo.Create(c.Request.Context(), &pkg); err != nil {
		writeWriteError(c, err, "failed_to_create_package", "", "")
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorID:  middleware.AdminID(c),
		Action:   "package_created",
		Entity:   "package",
		EntityID: pkg.ID,
	})

	httpresp.Created(c, pkg)
}

func (h *PackageHandler) Update(c *gin.Context) {
	var req UpdatePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Invalid(c, err)
		return
	}

	pkg, err := h.repo.Update(c.Request.Context(), c.Param("id"), func(p *models.Package) error {
		if req.Name != nil {
			p.Name = trimmed(*req.Name)
		}
		if req.Description != nil {
			p.Description = trimmed(*req.Description)
		}
		if req.OriginalPrice != nil {
			p.OriginalPrice = *req.OriginalPrice
		}
		if req.DiscountedPrice != nil {
			p.DiscountedPrice = *req.DiscountedPrice
		}
		if req.Features != nil {
			p.Features = trimList(*req.Features)
		}
		if req.IsPopular != nil {
			p.IsPopular = *req.IsPopular
		}
		if req.IsActive != nil {
			p.IsActive = *req.IsActive
		}
		return checkPackagePrices(p)
	})
	if err != nil {
		writeWriteError(c, err, "failed_to_update_package", "package_not_found", "Package not found")
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorID:  middleware.AdminID(c),
		Action:   "package_updated",
		Entity:   "package",
		EntityID: pkg.ID,
	})

	httpresp.OK(c, pkg)
}

func (h *PackageHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	removed, err := h.repo.Delete(c.Request.Context(), id)
	if err != nil {
		writeReadError(c, err, "", "")
		return
	}
	if !removed {
		httperr.NotFound(c, "package_not_found", "Package not found")
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorID:  middleware.AdminID(c),
		Action:   "package_deleted",
		Entity:   "package",
		EntityID: id,
	})

	httpresp.NoContent(c)
}
