package dto

import (
	"time"

	"github.com/BruksfildServices01/quickfixx-site/internal/models"
)

type AdminDTO struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewAdminDTO(u *models.AdminUser) AdminDTO {
	return AdminDTO{
		ID:        u.ID,
		Username:  u.Username,
		CreatedAt: u.CreatedAt,
	}
}

type AuthUserDTO struct {
	User  AdminDTO `json:"user"`
	Token string   `json:"token,omitempty"`
}

type MessageDTO struct {
	Message string `json:"message"`
}

type StaffQRCodeDTO struct {
	QRCode string `json:"qrCode"`
	URL    string `json:"url"`
}

type UploadDTO struct {
	URL string `json:"url"`
}

// DefaultBrandingDTO is served before any branding row has been saved.
type DefaultBrandingDTO struct {
	BrandName string `json:"brandName"`
	LogoURL   string `json:"logoUrl"`
}
