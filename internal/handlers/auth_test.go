package handlers_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/quickfixx-site/internal/models"
	"github.com/BruksfildServices01/quickfixx-site/internal/session"
)

func TestLogin(t *testing.T) {
	s := newServer(t)
	s.seedAdmin()

	w := s.do(http.MethodPost, "/api/auth/login", map[string]string{
		"username": testUsername,
		"password": "wrong",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "invalid_credentials", errorCode(t, w))

	w = s.do(http.MethodPost, "/api/auth/login", map[string]string{
		"username": "nobody",
		"password": testPassword,
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.do(http.MethodPost, "/api/auth/login", map[string]string{
		"username": testUsername,
		"password": testPassword,
	}, "")
	require.Equal(t, http.StatusOK, w.Code)

	var cookie *http.Cookie
	for _, ck := range w.Result().Cookies() {
		if ck.Name == s.cfg.SessionCookie {
			cookie = ck
		}
	}
	require.NotNil(t, cookie)
	assert.True(t, cookie.HttpOnly)
	assert.NotEmpty(t, cookie.Value)

	var out struct {
		User struct {
			Username string `json:"username"`
		} `json:"user"`
	}
	decode(t, w, &out)
	assert.Equal(t, testUsername, out.User.Username)
	assert.NotContains(t, w.Body.String(), "password")
}

func TestMeAndLogout(t *testing.T) {
	s := newServer(t)
	token := s.login()

	w := s.do(http.MethodGet, "/api/auth/me", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.do(http.MethodGet, "/api/auth/me", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), testUsername)

	w = s.do(http.MethodPost, "/api/auth/logout", nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	w = s.do(http.MethodGet, "/api/auth/me", nil, token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestChangePassword(t *testing.T) {
	s := newServer(t)
	token := s.login()

	w := s.do(http.MethodPatch, "/api/auth/change-password", map[string]string{
		"currentPassword": testPassword,
		"newPassword":     "s3cret-pass",
		"confirmPassword": "different",
	}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_request", errorCode(t, w))

	w = s.do(http.MethodPatch, "/api/auth/change-password", map[string]string{
		"currentPassword": "not-it",
		"newPassword":     "s3cret-pass",
		"confirmPassword": "s3cret-pass",
	}, token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "invalid_current_password", errorCode(t, w))

	w = s.do(http.MethodPatch, "/api/auth/change-password", map[string]string{
		"currentPassword": testPassword,
		"newPassword":     "s3cret-pass",
		"confirmPassword": "s3cret-pass",
	}, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = s.do(http.MethodPost, "/api/auth/login", map[string]string{
		"username": testUsername,
		"password": testPassword,
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.do(http.MethodPost, "/api/auth/login", map[string]string{
		"username": testUsername,
		"password": "s3cret-pass",
	}, "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRegisterBootstrap(t *testing.T) {
	s := newServer(t)

	w := s.do(http.MethodPost, "/api/auth/register", map[string]string{
		"username": "owner",
		"password": "owner-pass",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = s.do(http.MethodPost, "/api/auth/register", map[string]string{
		"username": "intruder",
		"password": "intruder-pass",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.do(http.MethodPost, "/api/auth/login", map[string]string{
		"username": "owner",
		"password": "owner-pass",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)
	var out struct {
		Token string `json:"token"`
	}
	decode(t, w, &out)

	w = s.do(http.MethodPost, "/api/auth/register", map[string]string{
		"username": "second",
		"password": "second-pass",
	}, out.Token)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = s.do(http.MethodPost, "/api/auth/register", map[string]string{
		"username": "second",
		"password": "second-pass",
	}, out.Token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "username_taken", errorCode(t, w))
}

func TestConcurrentBootstrapCreatesOneAdmin(t *testing.T) {
	s := newServer(t)

	const callers = 4
	codes := make([]int, callers)

	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			body := fmt.Sprintf(`{"username":"owner%d","password":"owner-pass"}`, i)
			req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			s.engine.ServeHTTP(w, req)
			codes[i] = w.Code
		}(i)
	}
	wg.Wait()

	created := 0
	for _, code := range codes {
		if code == http.StatusCreated {
			created++
			continue
		}
		assert.Equal(t, http.StatusUnauthorized, code)
	}
	assert.Equal(t, 1, created)

	var n int64
	require.NoError(t, s.db.Model(&models.AdminUser{}).Count(&n).Error)
	assert.EqualValues(t, 1, n)
}

func TestStaffAccounts(t *testing.T) {
	s := newServer(t)
	token := s.login()

	w := s.do(http.MethodPost, "/api/staff-accounts", map[string]string{
		"username": "ab",
		"password": "secret1",
		"name":     "Sam",
		"role":     "tech",
	}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(http.MethodPost, "/api/staff-accounts", map[string]string{
		"username": "sam",
		"password": "secret1",
		"name":     "Sam",
		"role":     "tech",
	}, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.NotContains(t, w.Body.String(), "secret1")

	var created struct {
		ID string `json:"id"`
	}
	decode(t, w, &created)

	w = s.do(http.MethodGet, "/api/staff-accounts", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"sam"`)

	w = s.do(http.MethodDelete, "/api/staff-accounts/"+created.ID, nil, token)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = s.do(http.MethodDelete, "/api/staff-accounts/"+created.ID, nil, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSignedTokenForUnknownAdminIsRejected(t *testing.T) {
	s := newServer(t, withStatelessSessions())

	token, err := session.NewManager(testSecret, time.Hour, nil).Issue(context.Background(), "nobody")
	require.NoError(t, err)

	w := s.do(http.MethodPost, "/api/services", validService(), token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.do(http.MethodGet, "/api/auth/me", nil, token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// an unknown subject does not count as signed in for bootstrap either
	s.seedAdmin()
	w = s.do(http.MethodPost, "/api/auth/register", map[string]string{
		"username": "intruder",
		"password": "intruder-pass",
	}, token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var n int64
	require.NoError(t, s.db.Model(&models.Service{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestDeletedAdminLosesAccess(t *testing.T) {
	s := newServer(t, withStatelessSessions())
	token := s.login()

	require.NoError(t, s.db.Where("username = ?", testUsername).Delete(&models.AdminUser{}).Error)

	w := s.do(http.MethodGet, "/api/bookings", nil, token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
