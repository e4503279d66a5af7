package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/quickfixx-site/internal/audit"
	"github.com/BruksfildServices01/quickfixx-site/internal/dto"
	"github.com/BruksfildServices01/quickfixx-site/internal/httperr"
	"github.com/BruksfildServices01/quickfixx-site/internal/httpresp"
	"github.com/BruksfildServices01/quickfixx-site/internal/media"
	"github.com/BruksfildServices01/quickfixx-site/internal/middleware"
)

const maxUploadBytes = 10 << 20

var uploadFolders = map[string]bool{
	"uploads":  true,
	"services": true,
	"staff":    true,
	"gallery":  true,
	"branding": true,
}

// UploadHandler turns admin image uploads into public WebP URLs.
type UploadHandler struct {
	store media.Store
	audit *audit.Dispatcher
	now   func() time.Time
}

// NewUploadHandler accepts a nil store; uploads then answer 503.
func NewUploadHandler(store media.Store, audit *audit.Dispatcher) *UploadHandler {
	return &UploadHandler{store: store, audit: audit, now: time.Now}
}

func (h *UploadHandler) Upload(c *gin.Context) {
	if h.store == nil {
		httperr.Unavailable(c, "uploads_disabled", "File storage is not configured")
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadBytes)

	fh, err := c.FormFile("file")
	if err != nil {
		if isBodyTooLarge(err) {
			httperr.Write(c, http.StatusRequestEntityTooLarge, "file_too_large", "Uploads are limited to 10 MiB")
			return
		}
		httperr.BadRequest(c, "file_required", "Multipart field \"file\" is required")
		return
	}

	f, err := fh.Open()
	if err != nil {
		httperr.BadRequest(c, "file_unreadable", err.Error())
		return
	}
	defer f.Close()

	data, err := media.Process(f, media.DefaultMaxWidth)
	if err != nil {
		if errors.Is(err, media.ErrUnsupportedImage) {
			httperr.BadRequest(c, "unsupported_image", "Only JPEG, PNG, GIF and WebP images are accepted")
			return
		}
		if errors.Is(err, media.ErrImageTooLarge) {
			httperr.Write(c, http.StatusRequestEntityTooLarge, "image_too_large", "Image dimensions are too large")
			return
		}
		_ = c.Error(err)
		httperr.BadRequest(c, "invalid_image", err.Error())
		return
	}

	folder := c.DefaultPostForm("folder", "uploads")
	if !uploadFolders[folder] {
		folder = "uploads"
	}
	key := media.NewKey(folder, h.now())

	url, err := h.store.Put(c.Request.Context(), key, media.ContentTypeWebP, data)
	if err != nil {
		_ = c.Error(err)
		httperr.Internal(c, "upload_failed", "Failed to store file")
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorID:  middleware.AdminID(c),
		Action:   "file_uploaded",
		Entity:   "upload",
		Metadata: map[string]any{"key": key, "size": len(data)},
	})

	httpresp.Created(c, dto.UploadDTO{URL: url})
}

func isBodyTooLarge(err error) bool {
	var mbe *http.MaxBytesError
	return errors.As(err, &mbe)
}
