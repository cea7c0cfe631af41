package handler

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnshulBytes112/DsceAlumniConnect/internal/domain"
	"github.com/AnshulBytes112/DsceAlumniConnect/internal/domain/dto"
	"github.com/AnshulBytes112/DsceAlumniConnect/internal/middleware"
	"github.com/AnshulBytes112/DsceAlumniConnect/internal/service"
)

type stubProfileService struct {
	user        *domain.User
	err         error
	lastReplace bool
	lastUserID  uuid.UUID
}

func (s *stubProfileService) GetProfile(_ context.Context, id uuid.UUID) (*domain.User, error) {
	s.lastUserID = id
	return s.user, s.err
}

func (s *stubProfileService) GetProfileByEmail(context.Context, string) (*domain.User, error) {
	return s.user, s.err
}

func (s *stubProfileService) UpdateProfile(_ context.Context, id uuid.UUID, _ *dto.ProfileUpdateRequest) (*domain.User, error) {
	s.lastUserID = id
	return s.user, s.err
}

func (s *stubProfileService) UpdateProfilePicture(_ context.Context, id uuid.UUID, _ *service.Upload) (*domain.User, error) {
	s.lastUserID = id
	return s.user, s.err
}

func (s *stubProfileService) UpdateProfileFromResume(_ context.Context, id uuid.UUID, _ *service.Upload, replaceExisting bool) (*domain.User, error) {
	s.lastUserID = id
	s.lastReplace = replaceExisting
	return s.user, s.err
}

func (s *stubProfileService) ReparseResume(_ context.Context, id uuid.UUID, replaceExisting bool) (*domain.User, error) {
	s.lastUserID = id
	s.lastReplace = replaceExisting
	return s.user, s.err
}

// identityInjector stands in for the session middleware.
func identityInjector(user *domain.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		if user != nil {
			c.Set(middleware.IdentityKey, user)
		}
		c.Next()
	}
}

func newProfileRouter(svc *stubProfileService, identity *domain.User) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(identityInjector(identity))
	h := NewProfileHandler(svc)
	router.GET("/profile", h.GetProfile)
	router.PUT("/profile", h.UpdateProfile)
	router.POST("/profile/resume", h.UploadResume)
	router.POST("/profile/resume/reparse", h.ReparseResume)
	return router
}

func resumeForm(t *testing.T) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("resume", "cv.pdf")
	require.NoError(t, err)
	_, err = part.Write([]byte("%PDF-1.4"))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return &body, w.FormDataContentType()
}

func TestProfileRequiresIdentity(t *testing.T) {
	router := newProfileRouter(&stubProfileService{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetProfile(t *testing.T) {
	user := &domain.User{ID: uuid.New(), Email: "asha@example.com"}
	svc := &stubProfileService{user: user}
	router := newProfileRouter(svc, user)

	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, user.ID, svc.lastUserID)
}

func TestUploadResumeReplaceFlag(t *testing.T) {
	user := &domain.User{ID: uuid.New(), Email: "asha@example.com"}

	tests := []struct {
		name  string
		query string
		want  bool
	}{
		{"default false", "", false},
		{"explicit true", "?replaceExisting=true", true},
		{"explicit false", "?replaceExisting=false", false},
		{"garbage falls back to false", "?replaceExisting=sure", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubProfileService{user: user}
			router := newProfileRouter(svc, user)

			body, contentType := resumeForm(t)
			req := httptest.NewRequest(http.MethodPost, "/profile/resume"+tt.query, body)
			req.Header.Set("Content-Type", contentType)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.want, svc.lastReplace)
		})
	}
}

func TestUploadResumeMissingFile(t *testing.T) {
	user := &domain.User{ID: uuid.New()}
	router := newProfileRouter(&stubProfileService{user: user}, user)

	req := httptest.NewRequest(http.MethodPost, "/profile/resume", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestReparseResumeNotFound(t *testing.T) {
	user := &domain.User{ID: uuid.New()}
	router := newProfileRouter(&stubProfileService{err: domain.ErrNotFound}, user)

	req := httptest.NewRequest(http.MethodPost, "/profile/resume/reparse", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
