package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"tasker/internal/auth"
	"tasker/internal/config"
	"tasker/internal/errors"
	"tasker/internal/handler"
	"tasker/internal/model"
)

// stubAuthService verifies tokens with a real signer and resolves them to a
// fixed user, standing in for the database-backed service.
type stubAuthService struct {
	jwt  *auth.JWTService
	user *model.User
}

func (s *stubAuthService) Register(ctx context.Context, name, surname, email, password string) (*model.User, error) {
	return s.user, nil
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, error) {
	return s.jwt.Issue(email, time.Hour)
}

func (s *stubAuthService) Authenticate(ctx context.Context, token string) (*model.User, error) {
	if _, err := s.jwt.Decode(token); err != nil {
		return nil, errors.ErrUnauthenticated
	}
	return s.user, nil
}

func (s *stubAuthService) Logout(ctx context.Context, token string) (bool, error) {
	if _, err := s.jwt.Decode(token); err != nil {
		return false, errors.ErrUnauthenticated
	}
	return true, nil
}

type stubTaskService struct{}

func (stubTaskService) Create(ctx context.Context, ownerID uuid.UUID, name, content string) (*model.Task, error) {
	return &model.Task{ID: uuid.New(), UserID: ownerID, Name: name, Content: content}, nil
}

func (stubTaskService) List(ctx context.Context, ownerID uuid.UUID) ([]model.Task, error) {
	return []model.Task{}, nil
}

func (stubTaskService) Get(ctx context.Context, ownerID, taskID uuid.UUID) (*model.Task, error) {
	return nil, errors.ErrTaskNotFound
}

func (stubTaskService) Edit(ctx context.Context, ownerID, taskID uuid.UUID, name, content string) (*model.Task, error) {
	return nil, errors.ErrTaskNotFound
}

func (stubTaskService) Delete(ctx context.Context, ownerID, taskID uuid.UUID) (bool, error) {
	return false, errors.ErrTaskNotFound
}

func newTestRouter() (*echo.Echo, *auth.JWTService) {
	cfg := &config.Config{
		JWTSecret:         "router-test-secret",
		JWTAlgorithm:      "HS256",
		RequestsPerMinute: 100,
	}
	jwtService := auth.NewJWTService(cfg.JWTSecret, cfg.JWTAlgorithm)
	owner := &model.User{ID: uuid.New(), Email: "ann@example.com", IsActive: true}
	authService := &stubAuthService{jwt: jwtService, user: owner}

	e := echo.New()
	Register(e, cfg, handler.NewAuthHandler(authService), handler.NewTaskHandler(stubTaskService{}), authService)
	return e, jwtService
}

// A token issued by the signer must pass both the jwt gate and the
// CurrentUser middleware when presented with the standard Bearer scheme.
func TestRouter_SecuredRoutesAcceptBearerToken(t *testing.T) {
	e, jwtService := newTestRouter()

	token, err := jwtService.Issue("ann@example.com", time.Hour)
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"tasks":[]}`, rec.Body.String())

	req = httptest.NewRequest(http.MethodPost, "/logout", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())
}

func TestRouter_SecuredRoutesRejectBadTokens(t *testing.T) {
	e, _ := newTestRouter()

	stranger := auth.NewJWTService("another-secret", "HS256")
	forged, err := stranger.Issue("ann@example.com", time.Hour)
	assert.NoError(t, err)

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"garbage token", "Bearer not-a-jwt"},
		{"wrong signing key", "Bearer " + forged},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestRouter_PublicRoutesNeedNoToken(t *testing.T) {
	e, _ := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
