package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/quickfixx-site/internal/models"
)

func validService() map[string]any {
	return map[string]any{
		"title":       "Plumbing",
		"description": "Leaks and drains",
		"price":       80,
		"imageUrl":    "https://img.test/p.jpg",
		"category":    "Home",
	}
}

func TestMutationsRequireSession(t *testing.T) {
	s := newServer(t)

	w := s.do(http.MethodPost, "/api/services", validService(), "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "unauthorized", errorCode(t, w))

	w = s.do(http.MethodPatch, "/api/packages/x", map[string]any{"name": "n"}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.do(http.MethodDelete, "/api/staff/x", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.do(http.MethodGet, "/api/bookings", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var n int64
	require.NoError(t, s.db.Model(&models.Service{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestServiceLifecycle(t *testing.T) {
	s := newServer(t)
	token := s.login()

	w := s.do(http.MethodGet, "/api/services", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())

	w = s.do(http.MethodPost, "/api/services", validService(), token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created models.Service
	decode(t, w, &created)
	assert.NotEmpty(t, created.ID)
	assert.True(t, created.IsActive)
	assert.Equal(t, []string{}, created.ImageURLs)

	w = s.do(http.MethodGet, "/api/services/"+created.ID, nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = s.do(http.MethodPatch, "/api/services/"+created.ID, map[string]any{
		"title":    "Emergency plumbing",
		"isActive": false,
	}, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var updated models.Service
	decode(t, w, &updated)
	assert.Equal(t, "Emergency plumbing", updated.Title)
	assert.Equal(t, 80, updated.Price)
	assert.False(t, updated.IsActive)

	w = s.do(http.MethodGet, "/api/services?active=true", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())

	w = s.do(http.MethodGet, "/api/services", nil, "")
	var all []models.Service
	decode(t, w, &all)
	assert.Len(t, all, 1)

	w = s.do(http.MethodDelete, "/api/services/"+created.ID, nil, token)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = s.do(http.MethodDelete, "/api/services/"+created.ID, nil, token)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(http.MethodGet, "/api/services/"+created.ID, nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "service_not_found", errorCode(t, w))
}

func TestServiceValidation(t *testing.T) {
	s := newServer(t)
	token := s.login()

	body := validService()
	delete(body, "price")
	w := s.do(http.MethodPost, "/api/services", body, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_request", errorCode(t, w))

	body = validService()
	body["price"] = -1
	w = s.do(http.MethodPost, "/api/services", body, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	body = validService()
	body["title"] = "   "
	w = s.do(http.MethodPost, "/api/services", body, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(http.MethodPatch, "/api/services/missing", map[string]any{"title": "x"}, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPackagePrices(t *testing.T) {
	s := newServer(t)
	token := s.login()

	w := s.do(http.MethodPost, "/api/packages", map[string]any{
		"name":            "Starter",
		"description":     "Three jobs",
		"originalPrice":   100,
		"discountedPrice": 120,
		"features":        []string{"a"},
	}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_price", errorCode(t, w))

	w = s.do(http.MethodPost, "/api/packages", map[string]any{
		"name":            "Starter",
		"description":     "Three jobs",
		"originalPrice":   100,
		"discountedPrice": 80,
		"features":        []string{"a", "b"},
	}, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var pkg models.Package
	decode(t, w, &pkg)
	assert.False(t, pkg.IsPopular)
	assert.True(t, pkg.IsActive)
	assert.Equal(t, []string{"a", "b"}, pkg.Features)

	w = s.do(http.MethodPatch, "/api/packages/"+pkg.ID, map[string]any{"originalPrice": 50}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_price", errorCode(t, w))

	w = s.do(http.MethodGet, "/api/packages/"+pkg.ID, nil, "")
	decode(t, w, &pkg)
	assert.Equal(t, 100, pkg.OriginalPrice)
}

func TestStaffByEmployeeID(t *testing.T) {
	s := newServer(t)
	token := s.login()

	w := s.do(http.MethodPost, "/api/staff", map[string]any{
		"employeeId": "QF001",
		"name":       "Alex",
		"role":       "Technician",
		"bio":        "Fixes things",
		"imageUrl":   "https://img.test/a.jpg",
		"expertise":  []string{"Plumbing"},
	}, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = s.do(http.MethodGet, "/api/staff/employee/QF001", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var member models.Staff
	decode(t, w, &member)
	assert.Equal(t, "Alex", member.Name)

	w = s.do(http.MethodGet, "/api/staff/employee/qf001", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(http.MethodGet, "/api/staff/employee/QF999", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGalleryRequiresMedia(t *testing.T) {
	s := newServer(t)
	token := s.login()

	w := s.do(http.MethodPost, "/api/gallery", map[string]any{
		"title":       "Kitchen",
		"description": "Before and after",
	}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "media_required", errorCode(t, w))

	w = s.do(http.MethodPost, "/api/gallery", map[string]any{
		"title":       "Kitchen",
		"description": "Before and after",
		"videoUrl":    "https://video.test/k.mp4",
	}, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var item models.Gallery
	decode(t, w, &item)

	w = s.do(http.MethodPatch, "/api/gallery/"+item.ID, map[string]any{"videoUrl": ""}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(http.MethodPatch, "/api/gallery/"+item.ID, map[string]any{
		"videoUrl":      "",
		"afterImageUrl": "https://img.test/after.jpg",
	}, token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestTestimonialRating(t *testing.T) {
	s := newServer(t)
	token := s.login()

	body := map[string]any{
		"customerName": "Jordan",
		"rating":       6,
		"comment":      "Great",
		"serviceType":  "Plumbing",
	}
	w := s.do(http.MethodPost, "/api/testimonials", body, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	body["rating"] = 5
	w = s.do(http.MethodPost, "/api/testimonials", body, token)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = s.do(http.MethodGet, "/api/testimonials?active=true", nil, "")
	var items []models.Testimonial
	decode(t, w, &items)
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Rating)
}
