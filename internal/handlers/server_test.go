package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/quickfixx-site/internal/config"
	"github.com/BruksfildServices01/quickfixx-site/internal/db/dbtest"
	"github.com/BruksfildServices01/quickfixx-site/internal/infra/repository"
	"github.com/BruksfildServices01/quickfixx-site/internal/media"
	"github.com/BruksfildServices01/quickfixx-site/internal/models"
	"github.com/BruksfildServices01/quickfixx-site/internal/routes"
	"github.com/BruksfildServices01/quickfixx-site/internal/session"
)

const (
	testUsername = "admin"
	testPassword = "admin123"
)

type testServer struct {
	t      *testing.T
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
}

type serverOption func(*routes.Deps)

const testSecret = "test-secret"

// withStatelessSessions drops the revocation store so any well-signed token
// passes the session check on its own.
func withStatelessSessions() serverOption {
	return func(d *routes.Deps) {
		d.Sessions = session.NewManager(testSecret, d.Config.SessionTTL, nil)
	}
}

func withMedia(store media.Store) serverOption {
	return func(d *routes.Deps) { d.Media = store }
}

func newServer(t *testing.T, opts ...serverOption) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	cfg := &config.Config{
		SessionCookie:    "qf_session",
		SessionTTL:       time.Hour,
		DefaultBrandName: "Quickfixx",
	}

	deps := routes.Deps{
		DB:       dbtest.Open(t),
		Config:   cfg,
		Sessions: session.NewManager(testSecret, cfg.SessionTTL, session.NewRedisStore(client)),
	}
	for _, opt := range opts {
		opt(&deps)
	}

	r := gin.New()
	routes.RegisterRoutes(r, deps)

	return &testServer{t: t, engine: r, db: deps.DB, cfg: cfg}
}

func (s *testServer) do(method, path string, body any, token string) *httptest.ResponseRecorder {
	s.t.Helper()

	var rdr io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(s.t, err)
		rdr = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, rdr)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

// seedAdmin stores the test admin directly, bypassing registration.
func (s *testServer) seedAdmin() {
	s.t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(s.t, err)

	require.NoError(s.t, repository.NewAdminUserGormRepository(s.db).Create(
		context.Background(),
		&models.AdminUser{Username: testUsername, PasswordHash: string(hashed)},
	))
}

// login seeds the admin and returns a bearer token.
func (s *testServer) login() string {
	s.t.Helper()
	s.seedAdmin()

	w := s.do(http.MethodPost, "/api/auth/login", map[string]string{
		"username": testUsername,
		"password": testPassword,
	}, "")
	require.Equal(s.t, http.StatusOK, w.Code, w.Body.String())

	var out struct {
		Token string `json:"token"`
	}
	decode(s.t, w, &out)
	require.NotEmpty(s.t, out.Token)
	return out.Token
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}

type apiError struct {
	ErrorCode string `json:"error_code"`
	Message   string `json:"message"`
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var e apiError
	decode(t, w, &e)
	return e.ErrorCode
}
