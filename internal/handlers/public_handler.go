package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/quickfixx-site/internal/dto"
	"github.com/BruksfildServices01/quickfixx-site/internal/httperr"
	"github.com/BruksfildServices01/quickfixx-site/internal/httpresp"
	"github.com/BruksfildServices01/quickfixx-site/internal/qrcode"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

// PublicHandler serves unauthenticated helpers that are not tied to a table.
type PublicHandler struct {
	qrSize int
}

// NewPublicHandler renders QR codes qrSize pixels wide (400 when <= 0).
func NewPublicHandler(qrSize int) *PublicHandler {
	return &PublicHandler{qrSize: qrSize}
}

////////////////////////////////////////////////////////
// STAFF QR CODE
////////////////////////////////////////////////////////

// StaffQRCode renders the badge QR for an employee id. The id is not looked
// up, so codes can be printed before the profile is published.
func (h *PublicHandler) StaffQRCode(c *gin.Context) {
	employeeID := c.Param("employeeId")

	target := qrcode.StaffURL(requestScheme(c), c.Request.Host, employeeID)

	img, err := qrcode.DataURL(target, h.qrSize)
	if err != nil {
		_ = c.Error(err)
		httperr.Internal(c, "qr_generation_failed", "Failed to generate QR code")
		return
	}

	httpresp.OK(c, dto.StaffQRCodeDTO{
		QRCode: img,
		URL:    target,
	})
}

func requestScheme(c *gin.Context) string {
	if proto := c.GetHeader("X-Forwarded-Proto"); proto != "" {
		return strings.ToLower(strings.TrimSpace(strings.Split(proto, ",")[0]))
	}
	if c.Request.TLS != nil {
		return "https"
	}
	return "http"
}
